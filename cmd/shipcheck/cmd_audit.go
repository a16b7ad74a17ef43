package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/deploykit/shipcheck/internal/checks"
	"github.com/deploykit/shipcheck/internal/probe"
	"github.com/deploykit/shipcheck/internal/projectconfig"
	"github.com/deploykit/shipcheck/internal/reporting"
	"github.com/deploykit/shipcheck/internal/scoring"
)

func newAuditCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "audit [project-path]",
		Short: "Audit a project tree and report its readiness",
		Long: `Audit a project tree by running every check in the catalogue and scoring
the outcomes.

Checks run in catalogue order and are individually fault-isolated: one
check's failure never prevents the remaining checks from running. The audit
accepts the project when the success rate reaches the accept threshold
(70% by default, configurable via .shipcheck.yaml in the project tree).

With no arguments, audits the current directory:
  shipcheck audit                 # audit .
  shipcheck audit /srv/project    # audit a specific tree
  shipcheck audit --format json   # machine-readable report
  shipcheck audit --junit out.xml # JUnit XML for CI`,
		Args:          cobra.MaximumNArgs(1),
		RunE:          runAudit,
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	cmd.Flags().String("format", "text", "Output format: text | json")
	cmd.Flags().String("junit", "", "Write a JUnit XML report to this path")
	cmd.Flags().Bool("parallel", false, "Run checks concurrently (reports stay in catalogue order)")
	cmd.Flags().Int("workers", 0, "Concurrent checks when --parallel is set")
	return cmd
}

// --- JSON output structs ---

type auditJSONReport struct {
	Timestamp   string          `json:"timestamp"`
	Root        string          `json:"root"`
	Passed      int             `json:"passed"`
	Failed      int             `json:"failed"`
	SuccessRate float64         `json:"successRate"`
	Rating      string          `json:"rating"`
	Accept      bool            `json:"accept"`
	Checks      []checkItemJSON `json:"checks"`
	Errors      []string        `json:"errors,omitempty"`
}

type checkItemJSON struct {
	Name       string `json:"name"`
	Category   string `json:"category"`
	Passed     bool   `json:"passed"`
	Summary    string `json:"summary"`
	Count      int    `json:"count,omitempty"`
	DurationMs int64  `json:"durationMs"`
}

func runAudit(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}
	if format != "text" && format != "json" {
		return fmt.Errorf("invalid format %q: expected text or json", format)
	}

	root := "."
	if len(args) > 0 {
		root = args[0]
	}
	if !filepath.IsAbs(root) {
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("getting working directory: %w", err)
		}
		root = filepath.Join(wd, root)
	}

	// Precondition: the target root must exist before any check runs.
	info, err := os.Stat(root)
	if errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("project path %s does not exist", root)
	} else if err != nil {
		return fmt.Errorf("checking project path: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("project path %s is not a directory", root)
	}

	cfg, err := projectconfig.Load(root)
	if err != nil {
		return err
	}

	checkers, err := checks.Build(cfg.Catalogue())
	if err != nil {
		return err
	}
	if len(checkers) == 0 {
		return fmt.Errorf("check catalogue is empty: nothing to audit")
	}

	runner := &checks.Runner{
		Probe:    probe.New(root),
		Parallel: cfg.Audit.Parallel != nil && *cfg.Audit.Parallel,
		Workers:  cfg.Audit.Workers,
	}
	if cmd.Flags().Changed("parallel") {
		runner.Parallel, _ = cmd.Flags().GetBool("parallel")
	}
	if cmd.Flags().Changed("workers") {
		runner.Workers, _ = cmd.Flags().GetInt("workers")
	}

	w := cmd.OutOrStdout()
	if format == "text" {
		progress := reporting.NewProgressPrinter(w)
		runner.Progress = progress.Print
	}

	results := runner.Run(checkers)
	report := scoring.Aggregate(results)
	verdict := scoring.Decide(report, scoring.Thresholds{
		Excellent: cfg.Thresholds.Excellent,
		Accept:    cfg.Thresholds.Accept,
	})

	if junitPath, _ := cmd.Flags().GetString("junit"); junitPath != "" {
		if err := reporting.WriteJUnitXML(junitPath, root, results, report); err != nil {
			return fmt.Errorf("writing JUnit report: %w", err)
		}
	}

	switch format {
	case "json":
		if err := outputAuditJSON(cmd, root, results, report, verdict); err != nil {
			return err
		}
	default:
		reporting.WriteSummary(w, results, report, verdict)
	}

	if !verdict.Accept {
		return &AuditFailureError{
			Message: fmt.Sprintf("audit rejected: success rate %.1f%% is below the accept threshold %.1f%%",
				verdict.SuccessRate, cfg.Thresholds.Accept),
		}
	}
	return nil
}

// outputAuditJSON marshals the audit report as JSON to the command's stdout.
func outputAuditJSON(cmd *cobra.Command, root string, results []*checks.CheckResult, report *scoring.Report, verdict scoring.Verdict) error {
	jsonReport := auditJSONReport{
		Timestamp:   time.Now().UTC().Format(time.RFC3339Nano),
		Root:        root,
		Passed:      report.Passed,
		Failed:      report.Failed,
		SuccessRate: verdict.SuccessRate,
		Rating:      string(verdict.Rating),
		Accept:      verdict.Accept,
		Errors:      report.Errors,
		Checks:      make([]checkItemJSON, 0, len(results)),
	}
	for _, r := range results {
		jsonReport.Checks = append(jsonReport.Checks, checkItemJSON{
			Name:       r.Name,
			Category:   string(r.Category),
			Passed:     r.Passed,
			Summary:    r.Summary,
			Count:      r.Count,
			DurationMs: r.Duration.Milliseconds(),
		})
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(jsonReport); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	_, err := fmt.Fprint(cmd.OutOrStdout(), buf.String())
	return err
}
