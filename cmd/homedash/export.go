package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/homedash/homedash/internal/backup"
)

// NewExportCmd creates the export command.
func NewExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export all dashboard data as JSON",
		Long: `Export writes a JSON backup of shortcuts, profile, and focus mode.

The document can be restored on any installation with "homedash import".
Binary background media is not included in the backup; it stays in the
blob store of the installation that created it.

Examples:
  # Print the backup to stdout
  homedash export

  # Write to a file
  homedash export -o backup.json

  # Write to the conventional date-stamped file name
  homedash export --dated`,
		RunE: runExportCmd,
	}

	cmd.Flags().StringP("output", "o", "", "Write the backup to this file instead of stdout")
	cmd.Flags().Bool("dated", false, "Write to the date-stamped default file name")

	return cmd
}

// runExportCmd executes the export command.
func runExportCmd(cmd *cobra.Command, _ []string) error {
	output, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}
	dated, err := cmd.Flags().GetBool("dated")
	if err != nil {
		return err
	}
	if output != "" && dated {
		return fmt.Errorf("--output and --dated cannot be used together")
	}
	if dated {
		output = backup.ExportFileName(time.Now())
	}

	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	data, err := a.backup.ExportAll()
	if err != nil {
		return err
	}
	data = append(data, '\n')

	if err := writeOutput(cmd, output, data); err != nil {
		return err
	}
	if output != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "Exported dashboard data to %s\n", output)
	}
	return nil
}
