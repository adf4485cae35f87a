package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/homedash/homedash/internal/model"
)

// NewListCmd creates the list command.
func NewListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [query]",
		Short: "List shortcuts grouped by category",
		Long: `List prints the stored shortcuts grouped by category.

A fresh installation is seeded with the default shortcut set on first use.
The stored focus-mode flag is respected: when focus mode is on, the
entertainment category is hidden unless --all is given.

Examples:
  # List all visible shortcuts
  homedash list

  # Search shortcuts by title, description, category, or keyword
  homedash list chat

  # Include categories hidden by focus mode
  homedash list --all`,
		Args: cobra.MaximumNArgs(1),
		RunE: runListCmd,
	}

	cmd.Flags().BoolP("all", "a", false, "Ignore focus mode and list every category")
	cmd.Flags().Bool("ids", false, "Show shortcut IDs")

	return cmd
}

// runListCmd executes the list command.
func runListCmd(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	showAll, err := cmd.Flags().GetBool("all")
	if err != nil {
		return err
	}
	showIDs, err := cmd.Flags().GetBool("ids")
	if err != nil {
		return err
	}

	shortcuts := a.loadShortcuts()
	if !showAll {
		shortcuts = model.VisibleShortcuts(shortcuts, a.focus.Load())
	}
	if len(args) == 1 {
		shortcuts = model.FilterShortcuts(shortcuts, args[0])
	}

	if len(shortcuts) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No shortcuts found.")
		return nil
	}

	out := cmd.OutOrStdout()
	grouped := model.GroupByCategory(shortcuts)
	for _, category := range a.shortcuts.ListCategories(shortcuts) {
		fmt.Fprintf(out, "%s\n", category)
		fmt.Fprintf(out, "%s\n", strings.Repeat("-", len([]rune(category))))
		for _, s := range grouped[category] {
			if showIDs {
				fmt.Fprintf(out, "  %-24s %-12s %s\n", s.Title, "["+s.ID+"]", s.URL)
			} else {
				fmt.Fprintf(out, "  %-24s %s\n", s.Title, s.URL)
			}
		}
		fmt.Fprintln(out)
	}
	return nil
}
