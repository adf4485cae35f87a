package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/homedash/homedash/internal/model"
	"github.com/homedash/homedash/internal/storage"
)

// NewBackgroundCmd creates the background command with its subcommands.
func NewBackgroundCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "background",
		Short: "Show or change the dashboard background",
	}

	cmd.AddCommand(newBackgroundShowCmd())
	cmd.AddCommand(newBackgroundSetCmd())
	cmd.AddCommand(newBackgroundResetCmd())

	return cmd
}

// newBackgroundShowCmd creates the "background show" subcommand.
func newBackgroundShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the current background configuration",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			cfg := a.background.Load(cmd.Context())
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Type:  %s\n", cfg.Type)
			switch cfg.Type {
			case model.BackgroundNone:
			case model.BackgroundColor, model.BackgroundGradient:
				fmt.Fprintf(out, "Value: %s\n", cfg.Value)
			default:
				payload, _ := a.refs.Resolve(cfg.Value)
				fmt.Fprintf(out, "Media: %s stored\n", model.FormatFileSize(int64(len(payload))))
			}
			fmt.Fprintf(out, "Blur:  %d\n", cfg.Blur)
			fmt.Fprintf(out, "Dim:   %d\n", cfg.Dim)
			return nil
		},
	}
}

// newBackgroundSetCmd creates the "background set" subcommand.
func newBackgroundSetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Set the background to a color, gradient, or media file",
		Long: `Set persists a new background configuration.

Colors and gradients are stored directly. Media files are validated, moved
into the blob store, and referenced indirectly so large images and video
never hit the small-value store's size ceiling.

Examples:
  # Solid color
  homedash background set --color "#1a1a2e"

  # Built-in gradient preset
  homedash background set --gradient Sunset

  # Image or video file with dimming
  homedash background set --file ~/Pictures/wallpaper.png --dim 30`,
		RunE: runBackgroundSetCmd,
	}

	cmd.Flags().String("color", "", "CSS color value")
	cmd.Flags().String("gradient", "", "Gradient preset name or CSS gradient expression")
	cmd.Flags().String("file", "", "Path to an image, GIF, or video file")
	cmd.Flags().Int("blur", 0, "Backdrop blur strength (0-10)")
	cmd.Flags().Int("dim", 0, "Darkening overlay percentage (0-100)")

	return cmd
}

// runBackgroundSetCmd executes the "background set" subcommand.
func runBackgroundSetCmd(cmd *cobra.Command, _ []string) error {
	color, err := cmd.Flags().GetString("color")
	if err != nil {
		return err
	}
	gradient, err := cmd.Flags().GetString("gradient")
	if err != nil {
		return err
	}
	file, err := cmd.Flags().GetString("file")
	if err != nil {
		return err
	}
	blur, err := cmd.Flags().GetInt("blur")
	if err != nil {
		return err
	}
	dim, err := cmd.Flags().GetInt("dim")
	if err != nil {
		return err
	}

	if countSet(color, gradient, file) != 1 {
		return errors.New("specify exactly one of --color, --gradient, or --file")
	}

	// The editing surface owns range clamping; stored values are trusted.
	blur = clamp(blur, 0, 10)
	dim = clamp(dim, 0, 100)

	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	cfg := model.BackgroundConfig{Blur: blur, Dim: dim}

	switch {
	case color != "":
		cfg.Type = model.BackgroundColor
		cfg.Value = color
	case gradient != "":
		cfg.Type = model.BackgroundGradient
		cfg.Value = resolveGradient(gradient)
	default:
		mediaType, err := registerBackgroundFile(a.refs, file, &cfg)
		if err != nil {
			return err
		}
		cfg.Type = model.BackgroundTypeForMedia(mediaType)
	}

	a.background.Save(cmd.Context(), cfg)

	// Save never reports failure; confirm by reading back.
	stored := a.background.Load(cmd.Context())
	if stored.Type != cfg.Type {
		return errors.New("background was not persisted (see log output)")
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Background set to %s\n", cfg.Type)
	return nil
}

// registerBackgroundFile validates a media file and registers its content
// as a transient blob reference on cfg.
func registerBackgroundFile(refs *storage.Registry, path string, cfg *model.BackgroundConfig) (model.MediaType, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("failed to read background file: %w", err)
	}

	mediaType, err := model.ValidateBackgroundFile(path, info.Size())
	if err != nil {
		return "", err
	}

	data, err := os.ReadFile(path) //nolint:gosec // User-provided media path is intentional
	if err != nil {
		return "", fmt.Errorf("failed to read background file: %w", err)
	}

	cfg.Value = refs.Register(data)
	return mediaType, nil
}

// resolveGradient maps a preset name to its CSS value; anything else is
// used verbatim as a CSS gradient expression.
func resolveGradient(name string) string {
	for _, preset := range model.GradientPresets {
		if preset.Name == name {
			return preset.Value
		}
	}
	return name
}

// newBackgroundResetCmd creates the "background reset" subcommand.
func newBackgroundResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Reset the background to the default",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			a.background.Reset(cmd.Context())
			fmt.Fprintln(cmd.OutOrStdout(), "Background reset")
			return nil
		},
	}
}

// countSet counts non-empty strings.
func countSet(values ...string) int {
	n := 0
	for _, v := range values {
		if v != "" {
			n++
		}
	}
	return n
}

// clamp limits v to the inclusive range [lo, hi].
func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
