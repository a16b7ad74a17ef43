package checks

import (
	"fmt"

	"github.com/deploykit/shipcheck/internal/probe"
)

// SubsystemChecker asserts that a named directory exists and counts its
// matching entries. An existing-but-empty directory still passes with count
// 0: the check answers "is the subsystem wired up", not "is it populated".
type SubsystemChecker struct {
	name      string
	category  Category
	dir       string
	exts      []string
	countDirs bool
	label     string
}

// SubsystemArgs holds the construction parameters for a SubsystemChecker.
type SubsystemArgs struct {
	Name     string
	Category Category
	// Dir is the directory whose presence is required, relative to the root.
	Dir string
	// Extensions filters counted entries (e.g. ".yml"); ignored when
	// CountDirs is set.
	Extensions []string
	// CountDirs counts subdirectories instead of files.
	CountDirs bool
	// Label is the plural noun used in the summary (e.g. "playbooks").
	Label string
}

var _ Checker = (*SubsystemChecker)(nil)

// NewSubsystemChecker returns a directory-presence checker.
func NewSubsystemChecker(args SubsystemArgs) *SubsystemChecker {
	label := args.Label
	if label == "" {
		label = "entries"
	}
	return &SubsystemChecker{
		name:      args.Name,
		category:  args.Category,
		dir:       args.Dir,
		exts:      args.Extensions,
		countDirs: args.CountDirs,
		label:     label,
	}
}

func (c *SubsystemChecker) Name() string       { return c.name }
func (c *SubsystemChecker) Category() Category { return c.category }

func (c *SubsystemChecker) Check(p *probe.Probe) (*CheckResult, error) {
	if !p.IsDir(c.dir) {
		return &CheckResult{
			Name:     c.name,
			Category: c.category,
			Passed:   false,
			Summary:  fmt.Sprintf("%s directory missing", c.dir),
		}, nil
	}

	var count int
	if c.countDirs {
		count = len(p.ListDirs(c.dir))
	} else {
		count = len(p.List(c.dir, c.exts...))
	}

	return &CheckResult{
		Name:     c.name,
		Category: c.category,
		Passed:   true,
		Summary:  fmt.Sprintf("Found %d %s", count, c.label),
		Count:    count,
	}, nil
}
