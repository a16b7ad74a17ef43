// Package reporting renders audit results for humans and CI systems.
package reporting

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/deploykit/shipcheck/internal/checks"
	"github.com/deploykit/shipcheck/internal/scoring"
)

const dividerWidth = 50

// ProgressPrinter emits one console line per check as it completes, with a
// heading whenever the category changes. It is strictly an observer: the
// results it receives are not altered.
type ProgressPrinter struct {
	w       io.Writer
	started bool
	last    checks.Category
}

// NewProgressPrinter returns a printer writing to w.
func NewProgressPrinter(w io.Writer) *ProgressPrinter {
	return &ProgressPrinter{w: w}
}

// Print writes the progress line for one result.
//
//nolint:errcheck // write errors to the console are not actionable
func (p *ProgressPrinter) Print(res *checks.CheckResult) {
	if !p.started || res.Category != p.last {
		if p.started {
			fmt.Fprintln(p.w)
		}
		fmt.Fprintf(p.w, "Checking %s...\n", strings.ToLower(res.Category.Title()))
		p.started = true
		p.last = res.Category
	}

	icon := "✓"
	if !res.Passed {
		icon = "✗"
	}
	fmt.Fprintf(p.w, "  %s %s\n", icon, res.Summary)
}

// InterpretRating returns the verdict prose for a rating.
func InterpretRating(r scoring.Rating) string {
	switch r {
	case scoring.RatingExcellent:
		return "Excellent! Project is ready for use."
	case scoring.RatingGood:
		return "Good! Minor issues to address."
	default:
		return "Project needs improvement."
	}
}

// WriteSummary renders the aggregate report: pass/fail counts, the ordered
// failure reasons, a per-category table, the success rate to one decimal
// place, and the verdict label.
//
//nolint:errcheck // write errors to the console are not actionable
func WriteSummary(w io.Writer, results []*checks.CheckResult, report *scoring.Report, verdict scoring.Verdict) {
	divider := strings.Repeat("=", dividerWidth)

	fmt.Fprintf(w, "\n%s\n", divider)
	fmt.Fprintf(w, " AUDIT RESULTS\n")
	fmt.Fprintf(w, "%s\n", divider)
	fmt.Fprintf(w, "✓ Passed: %d\n", report.Passed)
	fmt.Fprintf(w, "✗ Failed: %d\n", report.Failed)

	if len(report.Errors) > 0 {
		fmt.Fprintf(w, "\nErrors:\n")
		for _, reason := range report.Errors {
			fmt.Fprintf(w, "  - %s\n", reason)
		}
	}

	writeCategoryTable(w, results)

	fmt.Fprintf(w, "\nSuccess rate: %.1f%%\n", verdict.SuccessRate)
	fmt.Fprintf(w, "%s\n", InterpretRating(verdict.Rating))
}

// writeCategoryTable prints per-category pass/fail counts in catalogue order.
//
//nolint:errcheck
func writeCategoryTable(w io.Writer, results []*checks.CheckResult) {
	if len(results) == 0 {
		return
	}

	type tally struct {
		category checks.Category
		passed   int
		failed   int
	}
	var order []checks.Category
	byCategory := map[checks.Category]*tally{}
	for _, r := range results {
		t, ok := byCategory[r.Category]
		if !ok {
			t = &tally{category: r.Category}
			byCategory[r.Category] = t
			order = append(order, r.Category)
		}
		if r.Passed {
			t.passed++
		} else {
			t.failed++
		}
	}

	nameWidth := len("Category")
	for _, c := range order {
		if w := runewidth.StringWidth(c.Title()); w > nameWidth {
			nameWidth = w
		}
	}

	fmt.Fprintf(w, "\n%s  %s  %s\n", padRight("Category", nameWidth), "Passed", "Failed")
	fmt.Fprintf(w, "%s\n", strings.Repeat("─", nameWidth+16))
	for _, c := range order {
		t := byCategory[c]
		fmt.Fprintf(w, "%s  %6d  %6d\n", padRight(c.Title(), nameWidth), t.passed, t.failed)
	}
}

// padRight pads s with spaces so its terminal display width reaches width.
func padRight(s string, width int) string {
	sw := runewidth.StringWidth(s)
	if sw >= width {
		return s
	}
	return s + strings.Repeat(" ", width-sw)
}
