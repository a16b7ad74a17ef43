// Package projectconfig provides the ProjectConfig struct and loader for
// .shipcheck.yaml project-level configuration files.
package projectconfig

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/deploykit/shipcheck/internal/checks"
)

// ConfigFileName is the file the loader searches for.
const ConfigFileName = ".shipcheck.yaml"

// Default values for project configuration. These are the single source of
// truth; New() references them and no other code should duplicate them.
const (
	DefaultExcellentThreshold = 90.0
	DefaultAcceptThreshold    = 70.0

	DefaultWorkers = 4
)

// ThresholdsConfig holds the verdict boundaries in percent.
type ThresholdsConfig struct {
	Excellent float64 `yaml:"excellent,omitempty"`
	Accept    float64 `yaml:"accept,omitempty"`
}

// AuditConfig holds execution parameters for the audit run.
type AuditConfig struct {
	Parallel *bool `yaml:"parallel,omitempty"`
	Workers  int   `yaml:"workers,omitempty"`
}

// ProjectConfig is the top-level configuration loaded from .shipcheck.yaml.
type ProjectConfig struct {
	Thresholds ThresholdsConfig `yaml:"thresholds,omitempty"`
	Audit      AuditConfig      `yaml:"audit,omitempty"`
	// Checks replaces the built-in catalogue when non-empty. Entries are
	// pure data: {name, category, kind, params}.
	Checks []checks.CheckSpec `yaml:"checks,omitempty"`
}

// New returns a ProjectConfig with all hard-coded defaults populated.
func New() *ProjectConfig {
	return &ProjectConfig{
		Thresholds: ThresholdsConfig{
			Excellent: DefaultExcellentThreshold,
			Accept:    DefaultAcceptThreshold,
		},
		Audit: AuditConfig{
			Parallel: boolPtr(false),
			Workers:  DefaultWorkers,
		},
	}
}

// Catalogue returns the configured check catalogue, falling back to the
// built-in one when the config does not declare its own.
func (c *ProjectConfig) Catalogue() []checks.CheckSpec {
	if len(c.Checks) > 0 {
		return c.Checks
	}
	return checks.DefaultCatalogue()
}

// Load finds .shipcheck.yaml by walking up from startDir (max 10 levels),
// unmarshals it, and fills in missing fields with defaults.
// If no config file is found, returns defaults with a nil error.
// Real I/O errors (e.g. permission denied) are returned to the caller.
func Load(startDir string) (*ProjectConfig, error) {
	cfg := New()

	data, err := findConfigFile(startDir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil // no file found → return defaults
		}
		return nil, fmt.Errorf("loading %s: %w", ConfigFileName, err)
	}

	var fileCfg ProjectConfig
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", ConfigFileName, err)
	}

	mergeConfig(cfg, &fileCfg)
	return cfg, nil
}

// findConfigFile walks up from dir looking for .shipcheck.yaml (max 10
// levels). Returns os.ErrNotExist if no config file is found. Propagates real
// I/O errors (e.g. permission denied) instead of silently swallowing them.
func findConfigFile(dir string) ([]byte, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving path %q: %w", dir, err)
	}
	dir = absDir

	for i := 0; i < 10; i++ {
		p := filepath.Join(dir, ConfigFileName)
		data, err := os.ReadFile(p)
		if err == nil {
			return data, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("reading %q: %w", p, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break // reached filesystem root
		}
		dir = parent
	}
	return nil, os.ErrNotExist
}

// mergeConfig overlays non-zero values from src onto dst.
func mergeConfig(dst, src *ProjectConfig) {
	if src.Thresholds.Excellent != 0 {
		dst.Thresholds.Excellent = src.Thresholds.Excellent
	}
	if src.Thresholds.Accept != 0 {
		dst.Thresholds.Accept = src.Thresholds.Accept
	}

	if src.Audit.Parallel != nil {
		dst.Audit.Parallel = src.Audit.Parallel
	}
	if src.Audit.Workers != 0 {
		dst.Audit.Workers = src.Audit.Workers
	}

	if len(src.Checks) > 0 {
		dst.Checks = src.Checks
	}
}

func boolPtr(b bool) *bool { return &b }
