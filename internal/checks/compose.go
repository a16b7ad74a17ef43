package checks

import (
	"fmt"
	"strings"

	"github.com/deploykit/shipcheck/internal/probe"
	"github.com/deploykit/shipcheck/internal/validation"
)

// ComposeServicesChecker asserts that the container-composition file declares
// a non-empty top-level services mapping. A missing file, a parse fault, and
// a schema violation all fail this check; unrelated checks keep running.
type ComposeServicesChecker struct {
	name     string
	category Category
	path     string
}

var _ Checker = (*ComposeServicesChecker)(nil)

// NewComposeServicesChecker returns a checker validating the compose file at path.
func NewComposeServicesChecker(name string, category Category, path string) *ComposeServicesChecker {
	return &ComposeServicesChecker{name: name, category: category, path: path}
}

func (c *ComposeServicesChecker) Name() string       { return c.name }
func (c *ComposeServicesChecker) Category() Category { return c.category }

func (c *ComposeServicesChecker) Check(p *probe.Probe) (*CheckResult, error) {
	data, err := p.ReadFile(c.path)
	if err != nil {
		return c.failed(fmt.Sprintf("Error in %s: %v", c.path, err)), nil
	}

	if errs := validation.ValidateComposeBytes(data); len(errs) > 0 {
		return c.failed(fmt.Sprintf("%s: %s", c.path, strings.Join(errs, "; "))), nil
	}

	services := validation.ComposeServices(data)
	return &CheckResult{
		Name:     c.name,
		Category: c.category,
		Passed:   true,
		Summary:  fmt.Sprintf("Found %d services in %s", len(services), c.path),
		Count:    len(services),
	}, nil
}

func (c *ComposeServicesChecker) failed(reason string) *CheckResult {
	return &CheckResult{
		Name:     c.name,
		Category: c.category,
		Passed:   false,
		Summary:  reason,
	}
}
