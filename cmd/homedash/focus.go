package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewFocusCmd creates the focus command.
func NewFocusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "focus [on|off]",
		Short: "Show or toggle focus mode",
		Long: `Focus mode hides the entertainment category from the dashboard.
Without an argument, the current state is printed.`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"on", "off"},
		RunE:      runFocusCmd,
	}
}

// runFocusCmd executes the focus command.
func runFocusCmd(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	if len(args) == 0 {
		state := "off"
		if a.focus.Load() {
			state = "on"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Focus mode is %s\n", state)
		return nil
	}

	switch args[0] {
	case "on":
		a.focus.Save(true)
		fmt.Fprintln(cmd.OutOrStdout(), "Focus mode enabled")
	case "off":
		a.focus.Save(false)
		fmt.Fprintln(cmd.OutOrStdout(), "Focus mode disabled")
	default:
		return fmt.Errorf("invalid argument %q (expected on or off)", args[0])
	}
	return nil
}
