// Package main provides the entry point for the homedash CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for homedash.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "homedash",
		Short: "Manage the persisted state of your start-page dashboard",
		Long: `homedash manages the persisted state of a personal start-page dashboard:
user-defined shortcuts, the profile header, background settings, and the
focus-mode flag.

All state lives locally under your data directory (XDG data home by
default). Small settings are stored as JSON documents; large background
media is kept in an embedded SQLite blob store.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().String("data-dir", "", "Override the storage root directory")
	cmd.PersistentFlags().StringP("config", "c", "", "Configuration file path (default: .homedash in current or home directory)")

	// Add subcommands
	cmd.AddCommand(NewListCmd())
	cmd.AddCommand(NewAddCmd())
	cmd.AddCommand(NewRemoveCmd())
	cmd.AddCommand(NewFocusCmd())
	cmd.AddCommand(NewBackgroundCmd())
	cmd.AddCommand(NewExportCmd())
	cmd.AddCommand(NewImportCmd())
	cmd.AddCommand(NewResetCmd())
	cmd.AddCommand(NewReportCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
