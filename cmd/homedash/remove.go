package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

// NewRemoveCmd creates the remove command.
func NewRemoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove [shortcut-id]",
		Short: "Remove a shortcut or a whole category",
		Long: `Remove deletes the shortcut with the given ID, or every shortcut in a
category when --category is used. Removing a category's last shortcut
removes the category itself; nothing else references categories.

Use "homedash list --ids" to find shortcut IDs.

Examples:
  # Remove one shortcut
  homedash remove shortcut_1756702800000_a1b2c3d4e

  # Remove an entire category
  homedash remove --category "Giải trí"`,
		Args: cobra.MaximumNArgs(1),
		RunE: runRemoveCmd,
	}

	cmd.Flags().String("category", "", "Remove every shortcut in this category")

	return cmd
}

// runRemoveCmd executes the remove command.
func runRemoveCmd(cmd *cobra.Command, args []string) error {
	category, err := cmd.Flags().GetString("category")
	if err != nil {
		return err
	}
	if category == "" && len(args) == 0 {
		return errors.New("specify a shortcut ID or --category")
	}
	if category != "" && len(args) > 0 {
		return errors.New("specify either a shortcut ID or --category, not both")
	}

	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	shortcuts := a.loadShortcuts()

	if category != "" {
		updated := a.shortcuts.DeleteCategory(shortcuts, category)
		removed := len(shortcuts) - len(updated)
		if removed == 0 {
			return fmt.Errorf("no shortcuts in category %q", category)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Removed %d shortcut(s) from %q\n", removed, category)
		return nil
	}

	id := args[0]
	updated := a.shortcuts.Delete(shortcuts, id)
	if len(updated) == len(shortcuts) {
		return fmt.Errorf("no shortcut with ID %q", id)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Removed shortcut %s\n", id)
	return nil
}
