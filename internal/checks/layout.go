package checks

import (
	"fmt"

	"github.com/deploykit/shipcheck/internal/probe"
)

// FileChecker asserts that a single required path exists at the project root.
// Each required path gets its own checker so partial layout failures are
// reported individually.
type FileChecker struct {
	name     string
	category Category
	path     string
}

var _ Checker = (*FileChecker)(nil)

// NewFileChecker returns a checker asserting that path exists.
func NewFileChecker(name string, category Category, path string) *FileChecker {
	return &FileChecker{name: name, category: category, path: path}
}

func (c *FileChecker) Name() string       { return c.name }
func (c *FileChecker) Category() Category { return c.category }

func (c *FileChecker) Check(p *probe.Probe) (*CheckResult, error) {
	if !p.Exists(c.path) {
		return &CheckResult{
			Name:     c.name,
			Category: c.category,
			Passed:   false,
			Summary:  fmt.Sprintf("Missing file: %s", c.path),
		}, nil
	}
	return &CheckResult{
		Name:     c.name,
		Category: c.category,
		Passed:   true,
		Summary:  fmt.Sprintf("%s present", c.path),
	}, nil
}
