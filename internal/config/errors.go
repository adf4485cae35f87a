package config

import "errors"

// Configuration validation errors.
// Package-level sentinel errors so callers can use errors.Is() while still
// getting human-readable messages.
var (
	// ErrNoDataDir is returned when the data directory is empty. Every
	// operation needs a storage root; there is no in-memory-only mode on
	// the CLI surface.
	ErrNoDataDir = errors.New("no data directory configured")

	// ErrInvalidLocale is returned when the locale cannot be parsed as a
	// BCP 47 language tag.
	ErrInvalidLocale = errors.New("invalid locale: must be a BCP 47 language tag")
)
