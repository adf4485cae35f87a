package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/homedash/homedash/internal/backup"
	"github.com/homedash/homedash/internal/config"
	"github.com/homedash/homedash/internal/model"
	"github.com/homedash/homedash/internal/repository"
	"github.com/homedash/homedash/internal/storage"
)

// kvSubdir is the subdirectory of the data dir holding the small-value
// store; the blob store database sits directly in the data dir.
const kvSubdir = "kv"

// app wires the stores, repositories, and services for one command
// invocation. Commands create it in RunE and must Close it when done.
type app struct {
	cfg    *config.Config
	logger *slog.Logger

	kv    *storage.FileStore
	blobs *storage.BlobStore
	refs  *storage.Registry

	shortcuts  *repository.ShortcutRepository
	profile    *repository.ProfileRepository
	background *repository.BackgroundRepository
	focus      *repository.FocusRepository
	prefs      *repository.PreferenceRepository
	backup     *backup.Service
}

// newApp builds the application from the command's flags.
func newApp(cmd *cobra.Command) (*app, error) {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration error: %w", err)
	}

	logger := setupLogger(cfg.Verbose)
	slog.SetDefault(logger)

	kv, err := storage.NewFileStore(filepath.Join(cfg.DataDir, kvSubdir), storage.DefaultFileStoreOptions())
	if err != nil {
		return nil, fmt.Errorf("failed to open small-value store: %w", err)
	}

	blobs, err := storage.OpenBlobStore(cfg.DataDir, storage.DefaultBlobOptions())
	if err != nil {
		return nil, fmt.Errorf("failed to open blob store: %w", err)
	}

	tag, err := cfg.LanguageTag()
	if err != nil {
		_ = blobs.Close()
		return nil, err
	}

	refs := storage.NewRegistry()
	shortcuts := repository.NewShortcutRepository(kv, logger, repository.WithCategoryLocale(tag))
	profile := repository.NewProfileRepository(kv, logger)
	focus := repository.NewFocusRepository(kv, logger)

	return &app{
		cfg:        cfg,
		logger:     logger,
		kv:         kv,
		blobs:      blobs,
		refs:       refs,
		shortcuts:  shortcuts,
		profile:    profile,
		background: repository.NewBackgroundRepository(kv, blobs, refs, logger),
		focus:      focus,
		prefs:      repository.NewPreferenceRepository(kv, logger),
		backup:     backup.NewService(shortcuts, profile, focus, logger),
	}, nil
}

// Close releases the blob store connection.
func (a *app) Close() error {
	return a.blobs.Close()
}

// loadShortcuts returns the stored collection, seeding the defaults on a
// fresh installation when seeding is enabled.
func (a *app) loadShortcuts() []model.Shortcut {
	shortcuts := a.shortcuts.Load()
	if shortcuts != nil {
		return shortcuts
	}
	if !a.cfg.SeedDefaults {
		return []model.Shortcut{}
	}

	a.logger.Info("no shortcuts stored, seeding defaults")
	shortcuts = model.DefaultShortcuts()
	a.shortcuts.Save(shortcuts)
	return shortcuts
}

// buildConfig builds the configuration from defaults, the optional config
// file, and flags, in increasing priority.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewConfig()

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		configPath, _ = cmd.Root().PersistentFlags().GetString("config")
	}

	if path := config.FindConfigFile(configPath); path != "" {
		file, err := config.LoadConfigFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
		file.Apply(cfg)
		cfg.ConfigFilePath = path
	} else if configPath != "" {
		return nil, fmt.Errorf("%w: %s", config.ErrConfigNotFound, configPath)
	}

	if dataDir, err := cmd.Flags().GetString("data-dir"); err == nil && dataDir != "" {
		cfg.DataDir = dataDir
	}

	cfg.Verbose = getVerboseFlag(cmd)
	return cfg, nil
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// setupLogger creates a structured logger based on verbosity setting.
func setupLogger(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	handler := slog.NewTextHandler(os.Stderr, opts)
	return slog.New(handler)
}

// readInput reads a file argument, or the command's stdin when the
// argument is "-".
func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return data, nil
	}

	data, err := os.ReadFile(path) //nolint:gosec // User-provided path is intentional
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return data, nil
}

// writeOutput writes data to a file, creating parent directories, or to
// the command's stdout when path is empty.
func writeOutput(cmd *cobra.Command, path string, data []byte) error {
	if path == "" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
