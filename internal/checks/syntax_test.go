package checks

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/deploykit/shipcheck/internal/probe"
)

func TestYAMLSyntaxCheckerValid(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "main.yml"), []byte("- hosts: all\n  tasks: []\n"), 0o644))

	c := NewYAMLSyntaxChecker("syntax/main.yml", CategorySyntax, "main.yml")
	result, err := c.Check(probe.New(dir))
	require.NoError(t, err)
	require.True(t, result.Passed)
	require.Contains(t, result.Summary, "syntax valid")
}

func TestYAMLSyntaxCheckerInvalid(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "main.yml"), []byte("key: [unclosed\n  bad indent: x\n"), 0o644))

	c := NewYAMLSyntaxChecker("syntax/main.yml", CategorySyntax, "main.yml")
	result, err := c.Check(probe.New(dir))
	require.NoError(t, err)
	require.False(t, result.Passed)
	require.Contains(t, result.Summary, "YAML syntax error in main.yml")
}

func TestYAMLSyntaxCheckerMissingFile(t *testing.T) {
	dir := t.TempDir()

	c := NewYAMLSyntaxChecker("syntax/config.cfg", CategorySyntax, "config.cfg")
	result, err := c.Check(probe.New(dir))
	require.NoError(t, err)
	require.False(t, result.Passed)
	require.Contains(t, result.Summary, "config.cfg")
}
