package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// TestLoadConfigFile tests YAML config file loading.
func TestLoadConfigFile(t *testing.T) {
	t.Parallel()

	t.Run("loads all fields", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), ".homedash")
		content := "dataDir: /srv/homedash\nlocale: en\nseedDefaults: false\n"
		if err := os.WriteFile(path, []byte(content), 0600); err != nil {
			t.Fatalf("failed to write config file: %v", err)
		}

		f, err := LoadConfigFile(path)
		if err != nil {
			t.Fatalf("failed to load config file: %v", err)
		}
		if f.DataDir != "/srv/homedash" {
			t.Errorf("dataDir = %q, want /srv/homedash", f.DataDir)
		}
		if f.Locale != "en" {
			t.Errorf("locale = %q, want en", f.Locale)
		}
		if f.SeedDefaults == nil || *f.SeedDefaults {
			t.Error("expected seedDefaults false")
		}
	})

	t.Run("missing file returns ErrConfigNotFound", func(t *testing.T) {
		t.Parallel()

		_, err := LoadConfigFile(filepath.Join(t.TempDir(), "nope"))
		if !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("expected ErrConfigNotFound, got %v", err)
		}
	})

	t.Run("invalid YAML returns an error", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), ".homedash")
		if err := os.WriteFile(path, []byte("dataDir: [unclosed"), 0600); err != nil {
			t.Fatalf("failed to write config file: %v", err)
		}

		if _, err := LoadConfigFile(path); err == nil {
			t.Error("expected error for invalid YAML")
		}
	})
}

// TestFileApply tests merging file settings onto a config.
func TestFileApply(t *testing.T) {
	t.Parallel()

	t.Run("set fields override", func(t *testing.T) {
		t.Parallel()

		seed := false
		f := File{DataDir: "/srv/homedash", Locale: "en", SeedDefaults: &seed}

		cfg := NewConfig()
		f.Apply(cfg)

		if cfg.DataDir != "/srv/homedash" {
			t.Errorf("dataDir not applied: %q", cfg.DataDir)
		}
		if cfg.Locale != "en" {
			t.Errorf("locale not applied: %q", cfg.Locale)
		}
		if cfg.SeedDefaults {
			t.Error("seedDefaults not applied")
		}
	})

	t.Run("unset fields keep defaults", func(t *testing.T) {
		t.Parallel()

		cfg := NewConfig()
		defaultDir := cfg.DataDir

		var f File
		f.Apply(cfg)

		if cfg.DataDir != defaultDir {
			t.Errorf("dataDir changed by empty file: %q", cfg.DataDir)
		}
		if cfg.Locale != DefaultLocale {
			t.Errorf("locale changed by empty file: %q", cfg.Locale)
		}
		if !cfg.SeedDefaults {
			t.Error("seedDefaults changed by empty file")
		}
	})
}

// TestFindConfigFile tests config file discovery.
func TestFindConfigFile(t *testing.T) {
	t.Parallel()

	t.Run("explicit existing path is returned", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "custom.yaml")
		if err := os.WriteFile(path, []byte("locale: en\n"), 0600); err != nil {
			t.Fatalf("failed to write config file: %v", err)
		}

		if got := FindConfigFile(path); got != path {
			t.Errorf("FindConfigFile() = %q, want %q", got, path)
		}
	})

	t.Run("explicit missing path returns empty", func(t *testing.T) {
		t.Parallel()

		if got := FindConfigFile(filepath.Join(t.TempDir(), "nope")); got != "" {
			t.Errorf("expected empty result, got %q", got)
		}
	})
}
