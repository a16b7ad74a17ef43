package checks

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/deploykit/shipcheck/internal/probe"
)

type stubChecker struct {
	name string
	fn   func(*probe.Probe) (*CheckResult, error)
}

var _ Checker = (*stubChecker)(nil)

func (s *stubChecker) Name() string       { return s.name }
func (s *stubChecker) Category() Category { return CategorySubsystem }
func (s *stubChecker) Check(p *probe.Probe) (*CheckResult, error) {
	return s.fn(p)
}

func passing(name string) *stubChecker {
	return &stubChecker{name: name, fn: func(*probe.Probe) (*CheckResult, error) {
		return &CheckResult{Name: name, Category: CategorySubsystem, Passed: true, Summary: name + " ok"}, nil
	}}
}

func TestRunnerProducesOneResultPerChecker(t *testing.T) {
	checkers := []Checker{passing("a"), passing("b"), passing("c")}
	r := &Runner{Probe: probe.New(t.TempDir())}

	results := r.Run(checkers)
	require.Len(t, results, len(checkers))
	for i, res := range results {
		require.Equal(t, checkers[i].Name(), res.Name)
	}
}

func TestRunnerIsolatesCheckerError(t *testing.T) {
	failing := &stubChecker{name: "boom", fn: func(*probe.Probe) (*CheckResult, error) {
		return nil, errors.New("unreadable file: permission denied")
	}}
	checkers := []Checker{passing("a"), failing, passing("b")}

	r := &Runner{Probe: probe.New(t.TempDir())}
	results := r.Run(checkers)

	require.Len(t, results, 3)
	require.True(t, results[0].Passed)
	require.False(t, results[1].Passed)
	require.Contains(t, results[1].Summary, "permission denied")
	require.True(t, results[2].Passed, "a fault must not prevent later checks from running")
}

func TestRunnerIsolatesPanic(t *testing.T) {
	panicking := &stubChecker{name: "panics", fn: func(*probe.Probe) (*CheckResult, error) {
		panic("index out of range")
	}}
	checkers := []Checker{panicking, passing("after")}

	r := &Runner{Probe: probe.New(t.TempDir())}
	results := r.Run(checkers)

	require.Len(t, results, 2)
	require.False(t, results[0].Passed)
	require.Contains(t, results[0].Summary, "index out of range")
	require.True(t, results[1].Passed)
}

func TestRunnerNilResultBecomesFailure(t *testing.T) {
	broken := &stubChecker{name: "nil-result", fn: func(*probe.Probe) (*CheckResult, error) {
		return nil, nil
	}}

	r := &Runner{Probe: probe.New(t.TempDir())}
	results := r.Run([]Checker{broken})
	require.Len(t, results, 1)
	require.False(t, results[0].Passed)
}

func TestRunnerProgressOrder(t *testing.T) {
	checkers := []Checker{passing("first"), passing("second"), passing("third")}

	var seen []string
	r := &Runner{
		Probe:    probe.New(t.TempDir()),
		Progress: func(res *CheckResult) { seen = append(seen, res.Name) },
	}
	r.Run(checkers)
	require.Equal(t, []string{"first", "second", "third"}, seen)
}

func TestRunnerParallelPreservesOrder(t *testing.T) {
	var checkers []Checker
	names := []string{"a", "b", "c", "d", "e", "f", "g", "h"}
	for _, n := range names {
		checkers = append(checkers, passing(n))
	}

	var seen []string
	r := &Runner{
		Probe:    probe.New(t.TempDir()),
		Parallel: true,
		Workers:  3,
		Progress: func(res *CheckResult) { seen = append(seen, res.Name) },
	}
	results := r.Run(checkers)

	require.Len(t, results, len(names))
	for i, res := range results {
		require.Equal(t, names[i], res.Name)
	}
	require.Equal(t, names, seen, "progress must follow registration order even when execution is concurrent")
}

func TestRunnerIdempotentAgainstUnchangedTree(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("# p\n"), 0o644))

	checkers, err := Build(DefaultCatalogue())
	require.NoError(t, err)

	r := &Runner{Probe: probe.New(dir)}
	first := r.Run(checkers)
	second := r.Run(checkers)

	require.Len(t, second, len(first))
	for i := range first {
		require.Equal(t, first[i].Name, second[i].Name)
		require.Equal(t, first[i].Passed, second[i].Passed)
		require.Equal(t, first[i].Summary, second[i].Summary)
	}
}

func TestRunnerMonotonicOnAddedFile(t *testing.T) {
	dir := t.TempDir()
	checkers, err := Build(DefaultCatalogue())
	require.NoError(t, err)
	r := &Runner{Probe: probe.New(dir)}

	before := r.Run(checkers)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "quick-start.sh"), []byte("#!/bin/sh\n"), 0o644))
	after := r.Run(checkers)

	for i := range before {
		if before[i].Name == "layout/quick-start.sh" {
			require.False(t, before[i].Passed)
			require.True(t, after[i].Passed)
			continue
		}
		require.Equal(t, before[i].Passed, after[i].Passed, "unrelated check %s changed outcome", before[i].Name)
	}
}
