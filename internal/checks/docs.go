package checks

import (
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/deploykit/shipcheck/internal/probe"
)

// DocCoverageChecker counts how many of a fixed list of documentation files
// exist. Coverage is informational only and never fails the audit, so this
// checker always passes regardless of the count. When the readme is present
// its Markdown section count is reported as an extra detail.
type DocCoverageChecker struct {
	name   string
	files  []string
	readme string
}

var _ Checker = (*DocCoverageChecker)(nil)

// NewDocCoverageChecker returns a coverage checker over files. readme names
// the file whose sections are counted; empty disables section counting.
func NewDocCoverageChecker(name string, files []string, readme string) *DocCoverageChecker {
	return &DocCoverageChecker{name: name, files: files, readme: readme}
}

func (c *DocCoverageChecker) Name() string       { return c.name }
func (c *DocCoverageChecker) Category() Category { return CategoryDocumentation }

func (c *DocCoverageChecker) Check(p *probe.Probe) (*CheckResult, error) {
	found := 0
	for _, f := range c.files {
		if p.Exists(f) {
			found++
		}
	}

	summary := fmt.Sprintf("Found %d/%d documentation files", found, len(c.files))
	if c.readme != "" {
		if data, err := p.ReadFile(c.readme); err == nil {
			summary = fmt.Sprintf("%s (%s: %d sections)", summary, c.readme, countSections(data))
		}
	}

	return &CheckResult{
		Name:     c.name,
		Category: CategoryDocumentation,
		Passed:   true, // coverage is a recommendation, not a requirement
		Summary:  summary,
		Count:    found,
	}, nil
}

// countSections parses Markdown bytes and counts heading nodes.
func countSections(source []byte) int {
	md := goldmark.New()
	doc := md.Parser().Parse(text.NewReader(source))

	count := 0
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if _, ok := n.(*ast.Heading); ok {
			count++
		}
		return ast.WalkContinue, nil
	})
	return count
}
