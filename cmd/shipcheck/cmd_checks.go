package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/deploykit/shipcheck/internal/projectconfig"
)

func newChecksCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "checks [project-path]",
		Short: "List the effective check catalogue without running it",
		Long: `List the checks an audit of the given project would run, in execution
order. The catalogue comes from .shipcheck.yaml when present, otherwise
the built-in defaults are shown.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runChecks,
	}
	return cmd
}

func runChecks(cmd *cobra.Command, args []string) error {
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

	cfg, err := projectconfig.Load(root)
	if err != nil {
		return err
	}
	specs := cfg.Catalogue()

	w := cmd.OutOrStdout()

	nameWidth := len("NAME")
	categoryWidth := len("CATEGORY")
	for _, s := range specs {
		if l := runewidth.StringWidth(s.Name); l > nameWidth {
			nameWidth = l
		}
		if l := runewidth.StringWidth(string(s.Category)); l > categoryWidth {
			categoryWidth = l
		}
	}

	fmt.Fprintf(w, "%s  %s  %s\n",
		runewidth.FillRight("NAME", nameWidth),
		runewidth.FillRight("CATEGORY", categoryWidth),
		"KIND")
	for _, s := range specs {
		fmt.Fprintf(w, "%s  %s  %s\n",
			runewidth.FillRight(s.Name, nameWidth),
			runewidth.FillRight(string(s.Category), categoryWidth),
			string(s.Kind))
	}
	fmt.Fprintf(w, "\n%d checks\n", len(specs))
	return nil
}
