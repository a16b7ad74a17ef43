package main

import (
	"log/slog"

	"github.com/spf13/cobra"
)

var version = "dev"

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shipcheck",
		Short: "Shipcheck - readiness audits for deployable project trees",
		Long: `Shipcheck is a command-line tool that audits the on-disk layout and
configuration artifacts of a deployable project.

It runs a fixed catalogue of structural checks (required files, YAML syntax,
subsystem directories, compose services, CI workflows), aggregates the
outcomes into a success rate, and accepts or rejects the project against a
configurable threshold.`,
		Version:      version,
		SilenceUsage: true,
	}

	debugLogging := cmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	cmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if *debugLogging {
			slog.SetLogLoggerLevel(slog.LevelDebug)
		}
	}

	// Add subcommands
	cmd.AddCommand(newAuditCommand())
	cmd.AddCommand(newChecksCommand())
	cmd.AddCommand(newInitCommand())

	return cmd
}

func execute() error {
	rootCmd := newRootCommand()
	return rootCmd.Execute()
}
