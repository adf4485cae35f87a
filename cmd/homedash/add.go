package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/homedash/homedash/internal/model"
	"github.com/homedash/homedash/internal/repository"
)

// NewAddCmd creates the add command.
func NewAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a shortcut",
		Long: `Add creates a new shortcut and persists the updated collection.

Web shortcuts need an http(s) URL. App shortcuts use a custom protocol URL
(e.g. "discord://") and may carry a web fallback used when the protocol
cannot be handled.

Examples:
  # Add a web shortcut
  homedash add --title "Hacker News" --url https://news.ycombinator.com --category "Công việc"

  # Add an app shortcut with a web fallback
  homedash add --title Slack --type app --url slack:// --fallback https://app.slack.com --category "Công việc"`,
		RunE: runAddCmd,
	}

	cmd.Flags().StringP("title", "t", "", "Shortcut title (required)")
	cmd.Flags().StringP("url", "u", "", "Primary URL (required)")
	cmd.Flags().String("type", string(model.ShortcutTypeWeb), "Shortcut type: web or app")
	cmd.Flags().String("category", model.CategoryWork, "Category name")
	cmd.Flags().String("icon", "Link", "Symbolic icon name")
	cmd.Flags().StringP("description", "d", "", "Tooltip description")
	cmd.Flags().String("fallback", "", "Web fallback URL for app shortcuts")
	cmd.Flags().StringSliceP("keyword", "k", nil, "Search keyword (repeatable)")

	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("url")

	return cmd
}

// runAddCmd executes the add command.
func runAddCmd(cmd *cobra.Command, _ []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	shortcut, err := shortcutFromFlags(cmd)
	if err != nil {
		return err
	}
	if err := shortcut.Validate(); err != nil {
		return fmt.Errorf("invalid shortcut: %w", err)
	}

	shortcuts := a.loadShortcuts()
	a.shortcuts.Add(shortcuts, shortcut)

	fmt.Fprintf(cmd.OutOrStdout(), "Added %q (%s)\n", shortcut.Title, shortcut.ID)
	return nil
}

// shortcutFromFlags builds a shortcut with a freshly generated ID.
func shortcutFromFlags(cmd *cobra.Command) (model.Shortcut, error) {
	flags := cmd.Flags()

	title, err := flags.GetString("title")
	if err != nil {
		return model.Shortcut{}, err
	}
	url, err := flags.GetString("url")
	if err != nil {
		return model.Shortcut{}, err
	}
	shortcutType, err := flags.GetString("type")
	if err != nil {
		return model.Shortcut{}, err
	}
	category, err := flags.GetString("category")
	if err != nil {
		return model.Shortcut{}, err
	}
	icon, err := flags.GetString("icon")
	if err != nil {
		return model.Shortcut{}, err
	}
	description, err := flags.GetString("description")
	if err != nil {
		return model.Shortcut{}, err
	}
	fallback, err := flags.GetString("fallback")
	if err != nil {
		return model.Shortcut{}, err
	}
	keywords, err := flags.GetStringSlice("keyword")
	if err != nil {
		return model.Shortcut{}, err
	}

	return model.Shortcut{
		ID:          repository.GenerateID(),
		Title:       title,
		Icon:        icon,
		Category:    category,
		Description: description,
		URL:         url,
		Type:        model.ShortcutType(shortcutType),
		FallbackURL: fallback,
		Keywords:    keywords,
	}, nil
}
