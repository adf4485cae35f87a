package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

// NewImportCmd creates the import command.
func NewImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Restore dashboard data from a JSON backup",
		Long: `Import restores shortcuts, profile, and focus mode from a backup file
created with "homedash export". Use "-" to read from stdin.

The import is lenient: recognized fields are validated and applied
independently, so a backup carrying only shortcuts restores just the
shortcuts. Only an unparseable document is rejected outright.`,
		Args: cobra.ExactArgs(1),
		RunE: runImportCmd,
	}
}

// runImportCmd executes the import command.
func runImportCmd(cmd *cobra.Command, args []string) error {
	data, err := readInput(cmd, args[0])
	if err != nil {
		return err
	}

	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	ok, results := a.backup.Import(data)
	if !ok {
		return errors.New("import failed: not a valid backup document")
	}

	out := cmd.OutOrStdout()
	applied := 0
	for _, res := range results {
		if res.Valid {
			fmt.Fprintf(out, "Restored %s\n", res.Field)
			applied++
		} else {
			fmt.Fprintf(out, "Skipped %s: %s\n", res.Field, res.Reason)
		}
	}
	if applied == 0 {
		fmt.Fprintln(out, "Nothing to restore: no recognized fields in the backup")
	}
	return nil
}
