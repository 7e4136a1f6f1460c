/*
Copyright © 2025 3 Leaps <info@3leaps.net>
*/
package cmd

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/fulmenhq/docsweep/internal/report"
	"github.com/fulmenhq/docsweep/internal/sweep"
	"github.com/fulmenhq/docsweep/pkg/config"
	"github.com/fulmenhq/docsweep/pkg/logger"
	"github.com/fulmenhq/docsweep/pkg/safeio"
	"github.com/spf13/cobra"
)

func newCheckCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [root]",
		Short: "Sweep a docs site for dead files, broken links, typos and unused assets",
		Long: `Sweep the project at [root] (default: current directory).

Exit status is 0 when nothing is found and 1 when any issue is reported or
the sweep cannot run (for example when astro.config.mjs is missing).`,
		Args: cobra.MaximumNArgs(1),
		RunE: runCheck,
	}
	addCheckFlags(cmd)
	return cmd
}

func addCheckFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("format", "f", "text", "Report format (text|markdown|json|html)")
	cmd.Flags().StringP("output", "o", "", "Write the report to a file instead of stdout")
	cmd.Flags().Bool("respect-ignore", false, "Skip .gitignore/.docsweepignore paths when scanning for asset references")
	cmd.Flags().String("nav-config", "", "Navigation config file, relative to root (default astro.config.mjs)")
	cmd.Flags().String("content-dir", "", "Documentation content directory, relative to root (default src/content/docs)")
}

func runCheck(cmd *cobra.Command, args []string) error {
	target := "."
	if len(args) > 0 {
		target = args[0]
	}

	formatStr, _ := cmd.Flags().GetString("format")
	outputPath, _ := cmd.Flags().GetString("output")

	format, err := report.ParseFormat(formatStr)
	if err != nil {
		return err
	}
	if outputPath != "" {
		if outputPath, err = safeio.CleanUserPath(outputPath); err != nil {
			return fmt.Errorf("invalid --output path: %w", err)
		}
	}

	cfg, err := config.Load(target, cmd.Flags())
	if err != nil {
		return err
	}
	if cfg.Source != "" {
		logger.Debug("Loaded project config", logger.String("path", cfg.Source))
	}
	if cfg.References.RespectIgnore {
		logger.Debug("Reference scan honours ignore files")
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	rep, err := sweep.NewEngine(cfg).Run(ctx, target)
	if err != nil {
		return err
	}

	if err := writeReport(cmd.OutOrStdout(), outputPath, format, rep); err != nil {
		return err
	}

	if !rep.Findings.Empty() {
		logger.Debug("Sweep found issues", logger.Int("total", rep.Findings.Total()))
		return ErrIssuesFound
	}
	return nil
}

// writeReport renders to stdout, or to path when one is given
func writeReport(stdout io.Writer, path string, format report.Format, rep *sweep.Report) error {
	var buf bytes.Buffer
	out := stdout
	if path != "" {
		out = &buf
	}

	w, err := report.New(format, out)
	if err != nil {
		return err
	}
	if _, err := w.Write(rep); err != nil {
		return fmt.Errorf("failed to write %s report: %w", format, err)
	}

	if path != "" {
		if err := safeio.WriteReportFile(path, buf.Bytes()); err != nil {
			return fmt.Errorf("failed to write report to %s: %w", path, err)
		}
		logger.Info(fmt.Sprintf("Report written to %s", path), logger.String("format", string(format)))
	}
	return nil
}
