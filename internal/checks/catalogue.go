package checks

import (
	"fmt"

	"github.com/go-viper/mapstructure/v2"
)

// Kind selects the predicate a catalogue entry is built from.
type Kind string

const (
	KindFile            Kind = "file"
	KindYAMLSyntax      Kind = "yaml_syntax"
	KindSubsystem       Kind = "subsystem"
	KindComposeServices Kind = "compose_services"
	KindDocCoverage     Kind = "doc_coverage"
)

// CheckSpec is one catalogue entry: pure configuration data naming a check
// and the parameters its predicate is built from. The catalogue is fixed at
// process start; specs are not added or removed at runtime.
type CheckSpec struct {
	Name     string         `yaml:"name"`
	Category Category       `yaml:"category"`
	Kind     Kind           `yaml:"kind"`
	Params   map[string]any `yaml:"params,omitempty"`
}

// Create builds the checker a spec describes. Kind-specific parameters are
// decoded from the spec's params map.
func Create(spec CheckSpec) (Checker, error) {
	switch spec.Kind {
	case KindFile:
		var v *struct {
			Path string `mapstructure:"path"`
		}
		if err := mapstructure.Decode(spec.Params, &v); err != nil {
			return nil, fmt.Errorf("check %s: %w", spec.Name, err)
		}
		if v == nil || v.Path == "" {
			return nil, fmt.Errorf("check %s: kind %s requires a path param", spec.Name, spec.Kind)
		}
		return NewFileChecker(spec.Name, spec.Category, v.Path), nil

	case KindYAMLSyntax:
		var v *struct {
			Path string `mapstructure:"path"`
		}
		if err := mapstructure.Decode(spec.Params, &v); err != nil {
			return nil, fmt.Errorf("check %s: %w", spec.Name, err)
		}
		if v == nil || v.Path == "" {
			return nil, fmt.Errorf("check %s: kind %s requires a path param", spec.Name, spec.Kind)
		}
		return NewYAMLSyntaxChecker(spec.Name, spec.Category, v.Path), nil

	case KindSubsystem:
		var v *struct {
			Dir        string   `mapstructure:"dir"`
			Extensions []string `mapstructure:"extensions"`
			CountDirs  bool     `mapstructure:"count_dirs"`
			Label      string   `mapstructure:"label"`
		}
		if err := mapstructure.Decode(spec.Params, &v); err != nil {
			return nil, fmt.Errorf("check %s: %w", spec.Name, err)
		}
		if v == nil || v.Dir == "" {
			return nil, fmt.Errorf("check %s: kind %s requires a dir param", spec.Name, spec.Kind)
		}
		return NewSubsystemChecker(SubsystemArgs{
			Name:       spec.Name,
			Category:   spec.Category,
			Dir:        v.Dir,
			Extensions: v.Extensions,
			CountDirs:  v.CountDirs,
			Label:      v.Label,
		}), nil

	case KindComposeServices:
		var v *struct {
			Path string `mapstructure:"path"`
		}
		if err := mapstructure.Decode(spec.Params, &v); err != nil {
			return nil, fmt.Errorf("check %s: %w", spec.Name, err)
		}
		if v == nil || v.Path == "" {
			return nil, fmt.Errorf("check %s: kind %s requires a path param", spec.Name, spec.Kind)
		}
		return NewComposeServicesChecker(spec.Name, spec.Category, v.Path), nil

	case KindDocCoverage:
		var v *struct {
			Files  []string `mapstructure:"files"`
			Readme string   `mapstructure:"readme"`
		}
		if err := mapstructure.Decode(spec.Params, &v); err != nil {
			return nil, fmt.Errorf("check %s: %w", spec.Name, err)
		}
		if v == nil || len(v.Files) == 0 {
			return nil, fmt.Errorf("check %s: kind %s requires a files param", spec.Name, spec.Kind)
		}
		return NewDocCoverageChecker(spec.Name, v.Files, v.Readme), nil

	default:
		return nil, fmt.Errorf("check %s: %q is not a valid check kind", spec.Name, spec.Kind)
	}
}

// Build materializes an ordered catalogue into checkers, preserving
// registration order. Duplicate names are rejected so every result maps back
// to exactly one catalogue entry.
func Build(specs []CheckSpec) ([]Checker, error) {
	seen := make(map[string]bool, len(specs))
	checkers := make([]Checker, 0, len(specs))
	for _, spec := range specs {
		if spec.Name == "" {
			return nil, fmt.Errorf("catalogue entry of kind %q has no name", spec.Kind)
		}
		if seen[spec.Name] {
			return nil, fmt.Errorf("duplicate check name %q", spec.Name)
		}
		seen[spec.Name] = true

		c, err := Create(spec)
		if err != nil {
			return nil, err
		}
		checkers = append(checkers, c)
	}
	return checkers, nil
}

// DefaultCatalogue returns the built-in catalogue in registration order,
// which is also execution and report order.
func DefaultCatalogue() []CheckSpec {
	specs := []CheckSpec{}

	for _, path := range []string{
		"README.md",
		"config.cfg",
		"deploy",
		"quick-start.sh",
		"docker-compose.yml",
		"Dockerfile",
		"main.yml",
	} {
		specs = append(specs, CheckSpec{
			Name:     "layout/" + path,
			Category: CategoryLayout,
			Kind:     KindFile,
			Params:   map[string]any{"path": path},
		})
	}

	for _, path := range []string{"config.cfg", "docker-compose.yml", "main.yml"} {
		specs = append(specs, CheckSpec{
			Name:     "syntax/" + path,
			Category: CategorySyntax,
			Kind:     KindYAMLSyntax,
			Params:   map[string]any{"path": path},
		})
	}

	specs = append(specs,
		CheckSpec{
			Name:     "ansible/playbooks",
			Category: CategorySubsystem,
			Kind:     KindSubsystem,
			Params:   map[string]any{"dir": "playbooks", "extensions": []string{".yml"}, "label": "playbooks"},
		},
		CheckSpec{
			Name:     "ansible/roles",
			Category: CategorySubsystem,
			Kind:     KindSubsystem,
			Params:   map[string]any{"dir": "roles", "count_dirs": true, "label": "roles"},
		},
		CheckSpec{
			Name:     "docker/dockerfile",
			Category: CategorySubsystem,
			Kind:     KindFile,
			Params:   map[string]any{"path": "Dockerfile"},
		},
		CheckSpec{
			Name:     "docker/services",
			Category: CategorySubsystem,
			Kind:     KindComposeServices,
			Params:   map[string]any{"path": "docker-compose.yml"},
		},
		CheckSpec{
			Name:     "monitoring/configs",
			Category: CategorySubsystem,
			Kind:     KindSubsystem,
			Params:   map[string]any{"dir": "monitoring", "extensions": []string{".yml"}, "label": "monitoring config files"},
		},
		CheckSpec{
			Name:     "security/docs",
			Category: CategorySubsystem,
			Kind:     KindSubsystem,
			Params:   map[string]any{"dir": "security", "extensions": []string{".md"}, "label": "security files"},
		},
		CheckSpec{
			Name:     "scripts/files",
			Category: CategorySubsystem,
			Kind:     KindSubsystem,
			Params:   map[string]any{"dir": "scripts", "extensions": []string{".sh", ".py"}, "label": "scripts"},
		},
		CheckSpec{
			Name:     "docs/coverage",
			Category: CategoryDocumentation,
			Kind:     KindDocCoverage,
			Params: map[string]any{
				"files": []string{
					"README.md",
					"QUICK_START.md",
					"USER_FRIENDLY.md",
					"ADVANCED_FEATURES.md",
					"CONTRIBUTING.md",
					"PROJECT_INFO.md",
				},
				"readme": "README.md",
			},
		},
		CheckSpec{
			Name:     "ci/workflows",
			Category: CategoryCI,
			Kind:     KindSubsystem,
			Params:   map[string]any{"dir": ".github/workflows", "extensions": []string{".yml"}, "label": "workflow files"},
		},
	)

	return specs
}
