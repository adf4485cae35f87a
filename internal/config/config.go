package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
	"golang.org/x/text/language"
)

// Default configuration values.
const (
	// AppName is the application name used for XDG directory paths.
	AppName = "homedash"

	// DefaultLocale orders category names. The built-in categories are
	// Vietnamese, so Vietnamese collation is the default.
	DefaultLocale = "vi"
)

// Config holds all configuration options for homedash. It is populated from
// CLI flags and the optional config file, then passed through the
// application via dependency injection rather than global state.
type Config struct {
	// DataDir is the storage root: the small-value store lives in a
	// subdirectory and the blob store database sits next to it. This is
	// the single profile that owns all persisted state.
	DataDir string

	// ConfigFilePath is the path to the configuration file. If empty, the
	// tool searches for .homedash in the current directory and then in
	// the user's home directory.
	ConfigFilePath string

	// Locale is the BCP 47 tag used to collate category names.
	Locale string

	// SeedDefaults controls whether a fresh installation is seeded with
	// the default shortcut set on first load.
	SeedDefaults bool

	// Verbose enables detailed log output using slog.LevelDebug.
	// When false, only warnings and errors are logged.
	Verbose bool
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		DataDir:      XDGDataDir(),
		Locale:       DefaultLocale,
		SeedDefaults: true,
	}
}

// XDGDataDir returns the XDG data directory for homedash.
// On Linux: ~/.local/share/homedash
// On macOS: ~/Library/Application Support/homedash
// On Windows: %LOCALAPPDATA%\homedash
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// XDGConfigDir returns the XDG config directory for homedash.
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// LanguageTag parses the configured locale.
func (c *Config) LanguageTag() (language.Tag, error) {
	tag, err := language.Parse(c.Locale)
	if err != nil {
		return language.Und, ErrInvalidLocale
	}
	return tag, nil
}

// Validate checks if the configuration is valid. It returns the first
// error found: fixing one often makes the rest irrelevant.
func (c *Config) Validate() error {
	if c.DataDir == "" {
		return ErrNoDataDir
	}
	if _, err := language.Parse(c.Locale); err != nil {
		return ErrInvalidLocale
	}
	return nil
}
