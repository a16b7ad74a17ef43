package checks

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/deploykit/shipcheck/internal/probe"
)

// YAMLSyntaxChecker asserts that a file parses as YAML. Only parseability is
// checked; the document's contents are not interpreted. yaml.v3 fault
// messages carry line numbers, which flow into the fail reason unchanged.
type YAMLSyntaxChecker struct {
	name     string
	category Category
	path     string
}

var _ Checker = (*YAMLSyntaxChecker)(nil)

// NewYAMLSyntaxChecker returns a checker asserting that path parses as YAML.
func NewYAMLSyntaxChecker(name string, category Category, path string) *YAMLSyntaxChecker {
	return &YAMLSyntaxChecker{name: name, category: category, path: path}
}

func (c *YAMLSyntaxChecker) Name() string       { return c.name }
func (c *YAMLSyntaxChecker) Category() Category { return c.category }

func (c *YAMLSyntaxChecker) Check(p *probe.Probe) (*CheckResult, error) {
	data, err := p.ReadFile(c.path)
	if err != nil {
		return c.failed(err), nil
	}
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return c.failed(err), nil
	}
	return &CheckResult{
		Name:     c.name,
		Category: c.category,
		Passed:   true,
		Summary:  fmt.Sprintf("%s syntax valid", c.path),
	}, nil
}

func (c *YAMLSyntaxChecker) failed(err error) *CheckResult {
	return &CheckResult{
		Name:     c.name,
		Category: c.category,
		Passed:   false,
		Summary:  fmt.Sprintf("YAML syntax error in %s: %v", c.path, err),
	}
}
