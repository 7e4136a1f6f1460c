/*
Copyright © 2025 3 Leaps <info@3leaps.net>
*/
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/fulmenhq/docsweep/pkg/buildinfo"
	"github.com/fulmenhq/docsweep/pkg/exitcode"
	"github.com/fulmenhq/docsweep/pkg/logger"
	"github.com/spf13/cobra"
)

// ErrIssuesFound is returned by a sweep that completed with findings. It maps
// to a failing exit status without being logged as an error.
var ErrIssuesFound = errors.New("issues found")

// newRootCommand creates a fresh root command instance.
// This factory pattern allows tests to create isolated command trees without shared state.
func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "docsweep",
		Short: "Find dead docs, broken sidebar links and unused assets in an Astro docs site",
		Long: `docsweep cross-references the sidebar links declared in astro.config.mjs
with the pages under src/content/docs and the images under src/assets and public.
It reports dead files, broken links, likely typos and unused assets, and exits
non-zero when anything is found so it can gate CI.

Examples:
   docsweep                         # Sweep the current directory
   docsweep check ./site            # Sweep another project
   docsweep check --format markdown # Markdown report for a CI summary
   docsweep config                  # Show the effective layout configuration`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return initializeLogger(cmd)
		},
		RunE: runCheck,
	}

	// Add global flags
	cmd.PersistentFlags().String("log-level", "info", "Set log level (trace|debug|info|warn|error)")
	cmd.PersistentFlags().Bool("json", false, "Output logs in JSON format")
	cmd.PersistentFlags().Bool("no-color", false, "Disable colored output")

	// A bare `docsweep` is a check of the current directory
	addCheckFlags(cmd)

	cmd.Version = buildinfo.Version()
	cmd.SetVersionTemplate("docsweep {{.Version}}\n")

	return cmd
}

// registerSubcommands adds all subcommands to the root command.
// This is called from init() for production and can be called explicitly in tests.
func registerSubcommands(cmd *cobra.Command) {
	cmd.AddCommand(newCheckCommand())
	cmd.AddCommand(newConfigCommand())
	cmd.AddCommand(newVersionCommand())
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = newRootCommand()

func init() {
	registerSubcommands(rootCmd)
}

// Execute runs the root command and exits non-zero on findings or failure.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		if !errors.Is(err, ErrIssuesFound) {
			logger.Error("Command execution failed", logger.Err(err))
		}
		os.Exit(exitcode.Failure)
	}
}

// initializeLogger sets up the logger based on command flags. Logs go to the
// command's error stream so the report on stdout stays clean.
func initializeLogger(cmd *cobra.Command) error {
	logLevelStr, _ := cmd.Flags().GetString("log-level")
	jsonLogs, _ := cmd.Flags().GetBool("json")
	noColor, _ := cmd.Flags().GetBool("no-color")

	config := logger.Config{
		Level:     logger.ParseLevel(logLevelStr),
		UseColor:  !noColor && os.Getenv("NO_COLOR") == "",
		JSON:      jsonLogs,
		Component: "docsweep",
		Output:    cmd.ErrOrStderr(),
	}

	if err := logger.Initialize(config); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	return nil
}
