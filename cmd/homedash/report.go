package main

import (
	"bytes"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/homedash/homedash/internal/report"
)

// NewReportCmd creates the report command.
func NewReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Render a Markdown summary of the dashboard state",
		Long: `Report renders a GitHub Flavored Markdown summary of the current
dashboard: profile, shortcut tables per category, background, and focus
mode. Useful for documentation or for reviewing a setup before migrating
it to another machine.

Examples:
  # Print the summary to stdout
  homedash report

  # Write the summary to a file
  homedash report -o dashboard.md`,
		RunE: runReportCmd,
	}

	cmd.Flags().StringP("output", "o", "", "Write the report to this file instead of stdout")

	return cmd
}

// runReportCmd executes the report command.
func runReportCmd(cmd *cobra.Command, _ []string) error {
	output, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}

	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	shortcuts := a.loadShortcuts()
	snap := &report.Snapshot{
		Profile:     a.profile.Load(),
		Shortcuts:   shortcuts,
		Categories:  a.shortcuts.ListCategories(shortcuts),
		Background:  a.background.Load(cmd.Context()),
		FocusMode:   a.focus.Load(),
		GeneratedAt: time.Now(),
	}

	var buf bytes.Buffer
	if err := report.NewMarkdownWriter(&buf).Write(snap); err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}

	if err := writeOutput(cmd, output, buf.Bytes()); err != nil {
		return err
	}
	if output != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", output)
	}
	return nil
}
