/*
Copyright © 2025 3 Leaps <info@3leaps.net>
*/
package cmd

import (
	"fmt"

	"github.com/fulmenhq/docsweep/pkg/config"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config [root]",
		Short: "Print the effective layout configuration as YAML",
		Long: `Print the configuration a check of [root] would use: built-in defaults,
overridden by .docsweep.yaml, DOCSWEEP_* environment variables and flags.
The output is a valid .docsweep.yaml.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runConfig,
	}
	cmd.Flags().String("nav-config", "", "Navigation config file, relative to root")
	cmd.Flags().String("content-dir", "", "Documentation content directory, relative to root")
	return cmd
}

func runConfig(cmd *cobra.Command, args []string) error {
	target := "."
	if len(args) > 0 {
		target = args[0]
	}

	cfg, err := config.Load(target, cmd.Flags())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if cfg.Source != "" {
		_, _ = fmt.Fprintf(out, "# source: %s\n", cfg.Source)
	} else {
		_, _ = fmt.Fprintln(out, "# source: built-in defaults")
	}
	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return enc.Close()
}
