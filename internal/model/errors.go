package model

import "errors"

// Validation errors.
// These are package-level sentinel errors so callers can use errors.Is()
// for programmatic handling while still getting human-readable messages.
var (
	// ErrEmptyTitle is returned when a shortcut has no title.
	ErrEmptyTitle = errors.New("shortcut title must not be empty")

	// ErrEmptyURL is returned when a shortcut has no URL.
	ErrEmptyURL = errors.New("shortcut URL must not be empty")

	// ErrInvalidWebURL is returned when a web-type shortcut's URL is not
	// an http(s) URL.
	ErrInvalidWebURL = errors.New("web shortcut URL must start with http:// or https://")

	// ErrInvalidAppURL is returned when an app-type shortcut's URL has no
	// custom URL scheme (e.g. "discord://").
	ErrInvalidAppURL = errors.New("app shortcut URL must use a scheme like app://")

	// ErrInvalidShortcutType is returned when a shortcut's type is neither
	// "web" nor "app".
	ErrInvalidShortcutType = errors.New("shortcut type must be web or app")

	// ErrInvalidAvatarMode is returned when an avatar configuration carries
	// an unknown mode tag.
	ErrInvalidAvatarMode = errors.New("avatar mode must be url or file")

	// ErrMissingAvatarSource is returned when the field selected by the
	// avatar mode is empty.
	ErrMissingAvatarSource = errors.New("avatar source for the selected mode is empty")

	// ErrUnsupportedMediaFile is returned when an uploaded file's type is
	// not accepted for avatars or backgrounds.
	ErrUnsupportedMediaFile = errors.New("unsupported media file type")

	// ErrMediaFileTooLarge is returned when an uploaded file exceeds the
	// size limit for its media kind.
	ErrMediaFileTooLarge = errors.New("media file exceeds size limit")
)
