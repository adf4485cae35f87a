package model

import (
	"regexp"
	"strings"
)

// ShortcutType distinguishes web shortcuts from app-protocol shortcuts.
type ShortcutType string

const (
	// ShortcutTypeWeb is a shortcut whose URL opens in the browser.
	ShortcutTypeWeb ShortcutType = "web"

	// ShortcutTypeApp is a shortcut whose URL invokes an external
	// application via a custom URL scheme, with an optional web fallback.
	ShortcutTypeApp ShortcutType = "app"
)

// Shortcut is a user-defined link shown as a clickable tile on the
// dashboard grid.
type Shortcut struct {
	// ID uniquely identifies the shortcut within the collection.
	// It is stable across edits; only delete removes it.
	ID string `json:"id"`

	// Title is the display name on the tile.
	Title string `json:"title"`

	// Icon is a symbolic icon name resolved by the rendering layer.
	// Unresolvable names fall back to a generic icon there.
	Icon string `json:"icon"`

	// Category is a soft grouping key. Deleting the last shortcut of a
	// category removes the category with no further side effects.
	Category string `json:"category"`

	// Description is optional tooltip text and may contain paragraph breaks.
	Description string `json:"description"`

	// URL is the primary target: an http(s) URL for web shortcuts, or a
	// custom-scheme URL (e.g. "discord://") for app shortcuts.
	URL string `json:"url"`

	// Type selects web or app launch behavior.
	Type ShortcutType `json:"type"`

	// FallbackURL is an optional web URL used when the app protocol fails.
	// Only meaningful for app shortcuts.
	FallbackURL string `json:"fallbackUrl,omitempty"`

	// Keywords are optional search aids for the command palette.
	Keywords []string `json:"keywords,omitempty"`
}

var (
	// webURLPattern matches http and https URLs.
	webURLPattern = regexp.MustCompile(`^https?://`)

	// appURLPattern matches custom protocol URLs such as "discord://".
	appURLPattern = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9+.-]*://`)
)

// IsWebURL reports whether the URL is a valid http(s) URL.
func IsWebURL(url string) bool {
	return webURLPattern.MatchString(url)
}

// IsAppURL reports whether the URL uses a custom protocol scheme.
func IsAppURL(url string) bool {
	return appURLPattern.MatchString(url)
}

// Validate checks the shortcut's invariants: a non-empty title, a non-empty
// URL matching the shortcut type, and a known type tag. ID uniqueness is a
// collection-level invariant enforced by the repository.
func (s *Shortcut) Validate() error {
	if strings.TrimSpace(s.Title) == "" {
		return ErrEmptyTitle
	}
	if s.URL == "" {
		return ErrEmptyURL
	}

	switch s.Type {
	case ShortcutTypeWeb:
		if !IsWebURL(s.URL) {
			return ErrInvalidWebURL
		}
	case ShortcutTypeApp:
		if !IsAppURL(s.URL) {
			return ErrInvalidAppURL
		}
	default:
		return ErrInvalidShortcutType
	}
	return nil
}

// searchText returns the lowercased text searched by FilterShortcuts.
func (s *Shortcut) searchText() string {
	parts := make([]string, 0, 3+len(s.Keywords))
	parts = append(parts, s.Title, s.Description, s.Category)
	parts = append(parts, s.Keywords...)
	return strings.ToLower(strings.Join(parts, " "))
}

// FilterShortcuts returns the shortcuts matching a search query.
// The query is matched case-insensitively against title, description,
// category, and keywords. An empty query returns the input unchanged.
func FilterShortcuts(shortcuts []Shortcut, query string) []Shortcut {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return shortcuts
	}

	var matched []Shortcut
	for _, s := range shortcuts {
		if strings.Contains(s.searchText(), q) {
			matched = append(matched, s)
		}
	}
	return matched
}

// GroupByCategory groups shortcuts by their category, preserving the
// collection order within each group.
func GroupByCategory(shortcuts []Shortcut) map[string][]Shortcut {
	grouped := make(map[string][]Shortcut)
	for _, s := range shortcuts {
		grouped[s.Category] = append(grouped[s.Category], s)
	}
	return grouped
}

// VisibleShortcuts returns the shortcuts visible under the given focus-mode
// state. Focus mode hides the entertainment category.
func VisibleShortcuts(shortcuts []Shortcut, focusMode bool) []Shortcut {
	if !focusMode {
		return shortcuts
	}

	var visible []Shortcut
	for _, s := range shortcuts {
		if s.Category != CategoryEntertainment {
			visible = append(visible, s)
		}
	}
	return visible
}
