package checks

import (
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/deploykit/shipcheck/internal/probe"
)

// DefaultWorkers bounds concurrent checks when parallel execution is enabled
// without an explicit worker count.
const DefaultWorkers = 4

// ProgressFunc observes each result as it is emitted, in registration order.
// It exists for console progress lines and has no effect on the results.
type ProgressFunc func(*CheckResult)

// Runner executes a catalogue of checkers against one project tree. Every
// checker produces exactly one CheckResult per run: a fault inside a checker
// (returned error or panic) is downgraded to a failed result for that checker
// alone and never prevents the remaining checkers from running.
type Runner struct {
	Probe    *probe.Probe
	Progress ProgressFunc
	// Parallel runs checkers concurrently. Results are still delivered in
	// registration order, so reports stay deterministic.
	Parallel bool
	// Workers bounds concurrency when Parallel is set; DefaultWorkers when <= 0.
	Workers int
}

// Run executes every checker once, in registration order, and returns one
// result per checker in that same order.
func (r *Runner) Run(checkers []Checker) []*CheckResult {
	results := make([]*CheckResult, len(checkers))

	if r.Parallel && len(checkers) > 1 {
		g := new(errgroup.Group)
		workers := r.Workers
		if workers <= 0 {
			workers = DefaultWorkers
		}
		g.SetLimit(workers)
		for i, c := range checkers {
			g.Go(func() error {
				results[i] = r.runOne(c)
				return nil
			})
		}
		_ = g.Wait() // runOne never returns an error; faults become failed results
		r.emit(results)
		return results
	}

	for i, c := range checkers {
		results[i] = r.runOne(c)
		if r.Progress != nil {
			r.Progress(results[i])
		}
	}
	return results
}

func (r *Runner) emit(results []*CheckResult) {
	if r.Progress == nil {
		return
	}
	for _, res := range results {
		r.Progress(res)
	}
}

// runOne evaluates a single checker with full fault isolation.
func (r *Runner) runOne(c Checker) (result *CheckResult) {
	start := time.Now()
	defer func() {
		if p := recover(); p != nil {
			result = failedResult(c, fmt.Sprintf("check %s panicked: %v", c.Name(), p))
		}
		result.Duration = time.Since(start)
		slog.Debug("check completed",
			"name", result.Name,
			"passed", result.Passed,
			"duration", result.Duration)
	}()

	res, err := c.Check(r.Probe)
	if err != nil {
		return failedResult(c, err.Error())
	}
	if res == nil {
		return failedResult(c, fmt.Sprintf("check %s returned no result", c.Name()))
	}
	return res
}

func failedResult(c Checker, reason string) *CheckResult {
	return &CheckResult{
		Name:     c.Name(),
		Category: c.Category(),
		Passed:   false,
		Summary:  reason,
	}
}
