// Package wizard provides the interactive form behind `shipcheck init`.
package wizard

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/template"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"
)

// ConfigSpec holds all fields collected during the interactive wizard.
type ConfigSpec struct {
	ExcellentThreshold float64
	AcceptThreshold    float64
	Parallel           bool
	Workers            int
}

const configTemplate = `# shipcheck project configuration
thresholds:
  excellent: {{ .ExcellentThreshold }}
  accept: {{ .AcceptThreshold }}
audit:
  parallel: {{ .Parallel }}
  workers: {{ .Workers }}
`

// RunConfigWizard runs an interactive huh form to collect audit settings.
func RunConfigWizard(in io.Reader, out io.Writer) (*ConfigSpec, error) {
	var (
		excellentRaw = "90"
		acceptRaw    = "70"
		parallel     bool
		workersRaw   = "4"
	)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Excellent threshold").
				Description("Success rate (%) at or above which the project rates Excellent").
				Value(&excellentRaw).
				Validate(validateRate),
			huh.NewInput().
				Title("Accept threshold").
				Description("Success rate (%) at or above which the audit passes").
				Value(&acceptRaw).
				Validate(validateRate),
			huh.NewConfirm().
				Title("Run checks in parallel?").
				Value(&parallel),
			huh.NewInput().
				Title("Workers").
				Description("Concurrent checks when parallel execution is enabled").
				Value(&workersRaw).
				Validate(validateWorkers),
		),
	).
		WithInput(in).
		WithOutput(out)

	// Use accessible mode for non-TTY input (e.g., tests, piped input).
	if f, ok := in.(*os.File); !ok || !term.IsTerminal(int(f.Fd())) {
		form = form.WithAccessible(true)
	}

	if err := form.Run(); err != nil {
		return nil, fmt.Errorf("wizard failed: %w", err)
	}

	excellent, _ := strconv.ParseFloat(strings.TrimSpace(excellentRaw), 64)
	accept, _ := strconv.ParseFloat(strings.TrimSpace(acceptRaw), 64)
	workers, _ := strconv.Atoi(strings.TrimSpace(workersRaw))

	if accept > excellent {
		return nil, fmt.Errorf("accept threshold (%.1f) cannot exceed the excellent threshold (%.1f)", accept, excellent)
	}

	return &ConfigSpec{
		ExcellentThreshold: excellent,
		AcceptThreshold:    accept,
		Parallel:           parallel,
		Workers:            workers,
	}, nil
}

// GenerateConfigYAML renders a .shipcheck.yaml from the given spec.
func GenerateConfigYAML(spec *ConfigSpec) (string, error) {
	tmpl, err := template.New("shipcheckyaml").Parse(configTemplate)
	if err != nil {
		return "", fmt.Errorf("failed to parse template: %w", err)
	}

	var buf strings.Builder
	if err := tmpl.Execute(&buf, spec); err != nil {
		return "", fmt.Errorf("failed to render template: %w", err)
	}
	return buf.String(), nil
}

func validateRate(s string) error {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return fmt.Errorf("enter a number")
	}
	if v <= 0 || v > 100 {
		return fmt.Errorf("must be between 0 and 100")
	}
	return nil
}

func validateWorkers(s string) error {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("enter a whole number")
	}
	if v < 1 {
		return fmt.Errorf("must be at least 1")
	}
	return nil
}
