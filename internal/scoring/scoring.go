// Package scoring folds check results into an audit report and derives the
// readiness verdict from it.
package scoring

import (
	"fmt"
	"strings"

	"github.com/deploykit/shipcheck/internal/checks"
)

// Rating is the three-tier qualitative readiness label.
type Rating string

const (
	RatingExcellent        Rating = "Excellent"
	RatingGood             Rating = "Good"
	RatingNeedsImprovement Rating = "Needs Improvement"

	// DefaultExcellentThreshold is the success rate (percent) at or above
	// which a project is rated Excellent.
	DefaultExcellentThreshold = 90.0
	// DefaultAcceptThreshold is the success rate (percent) at or above which
	// the audit accepts the project. It is also the Good rating boundary.
	DefaultAcceptThreshold = 70.0
)

var ratingRank = map[Rating]int{
	RatingNeedsImprovement: 0,
	RatingGood:             1,
	RatingExcellent:        2,
}

func (r Rating) String() string {
	return string(r)
}

// AtLeast returns true if r is at or above the target rating.
func (r Rating) AtLeast(target Rating) bool {
	return ratingRank[r] >= ratingRank[target]
}

// ParseRating converts a string flag value to a Rating.
func ParseRating(s string) (Rating, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "excellent":
		return RatingExcellent, nil
	case "good":
		return RatingGood, nil
	case "needs-improvement":
		return RatingNeedsImprovement, nil
	default:
		return RatingNeedsImprovement, fmt.Errorf("invalid rating %q: must be excellent, good, or needs-improvement", s)
	}
}

// Thresholds holds the success-rate boundaries (in percent) for the verdict.
type Thresholds struct {
	Excellent float64
	Accept    float64
}

// DefaultThresholds returns the standard 90/70 boundaries.
func DefaultThresholds() Thresholds {
	return Thresholds{Excellent: DefaultExcellentThreshold, Accept: DefaultAcceptThreshold}
}

// Report is the aggregate outcome of one audit run. It is produced once per
// run by Aggregate and never mutated afterwards; no state survives a run.
type Report struct {
	Passed int
	Failed int
	// Errors holds one reason string per failed check, in execution order.
	Errors []string
}

// Aggregate folds check results into a Report. Reasons are appended in
// encounter order, so len(Errors) always equals Failed.
func Aggregate(results []*checks.CheckResult) *Report {
	report := &Report{}
	for _, r := range results {
		if r.Passed {
			report.Passed++
			continue
		}
		report.Failed++
		report.Errors = append(report.Errors, r.Summary)
	}
	return report
}

// Total returns the number of checks the report covers.
func (r *Report) Total() int {
	return r.Passed + r.Failed
}

// SuccessRate returns the pass percentage. An empty report (no checks
// executed) is defined as 0 rather than dividing by zero.
func (r *Report) SuccessRate() float64 {
	total := r.Total()
	if total == 0 {
		return 0
	}
	return float64(r.Passed) / float64(total) * 100
}

// Verdict is the qualitative and binary judgment derived from a Report.
type Verdict struct {
	SuccessRate float64
	Rating      Rating
	Accept      bool
}

// Decide maps a report's success rate onto a rating and an accept decision.
// The accept boundary is inclusive: a rate exactly at Thresholds.Accept
// passes.
func Decide(report *Report, th Thresholds) Verdict {
	rate := report.SuccessRate()
	rating := RatingNeedsImprovement
	switch {
	case rate >= th.Excellent:
		rating = RatingExcellent
	case rate >= th.Accept:
		rating = RatingGood
	}
	return Verdict{
		SuccessRate: rate,
		Rating:      rating,
		Accept:      rate >= th.Accept,
	}
}
