package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

// NewResetCmd creates the reset command.
func NewResetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Reset shortcuts, profile, and focus mode to defaults",
		Long: `Reset restores the default shortcut set, the default profile, and turns
focus mode off. The background configuration and app-launch preferences
are left as they are.

This cannot be undone; export a backup first if in doubt.`,
		RunE: runResetCmd,
	}

	cmd.Flags().BoolP("force", "f", false, "Confirm the reset")

	return cmd
}

// runResetCmd executes the reset command.
func runResetCmd(cmd *cobra.Command, _ []string) error {
	force, err := cmd.Flags().GetBool("force")
	if err != nil {
		return err
	}
	if !force {
		return errors.New("reset discards your shortcuts and profile; re-run with --force to confirm")
	}

	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	a.backup.ResetAll()
	fmt.Fprintln(cmd.OutOrStdout(), "Dashboard data reset to defaults")
	return nil
}
