// Package checks defines the audit check catalogue and the runner that
// executes it against a project tree.
package checks

import (
	"time"

	"github.com/deploykit/shipcheck/internal/probe"
)

// Category groups checks for progress output and reporting.
type Category string

const (
	CategoryLayout        Category = "layout"
	CategorySyntax        Category = "syntax"
	CategorySubsystem     Category = "subsystem"
	CategoryDocumentation Category = "docs"
	CategoryCI            Category = "ci"
)

// Title returns the section heading used when announcing a category's checks.
func (c Category) Title() string {
	switch c {
	case CategoryLayout:
		return "Project layout"
	case CategorySyntax:
		return "YAML syntax"
	case CategorySubsystem:
		return "Subsystems"
	case CategoryDocumentation:
		return "Documentation"
	case CategoryCI:
		return "CI workflows"
	default:
		return string(c)
	}
}

// CheckResult holds the outcome of a single audit check.
type CheckResult struct {
	// Name is a stable check identifier used in output and downstream processing.
	Name string
	// Category is the check's catalogue group.
	Category Category
	// Passed indicates whether the check met its acceptance criteria.
	Passed bool
	// Summary is a human-readable one-line result. For failed checks it is
	// the reason string that ends up in the audit report.
	Summary string
	// Count carries an optional informational item count for presence checks.
	Count int
	// Duration is the check's wall time, recorded by the runner.
	Duration time.Duration
}

// Checker runs a single audit check against a project tree.
type Checker interface {
	Name() string
	Category() Category
	Check(p *probe.Probe) (*CheckResult, error)
}
