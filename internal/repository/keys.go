package repository

// Small-value store keys. Each key holds an independent JSON document.
// The shortcuts key carries a version suffix because its schema is the most
// likely to evolve; the others predate that convention and keep their
// original names for compatibility with existing installations.
const (
	// shortcutsKey holds the ordered shortcut collection.
	shortcutsKey = "home.shortcuts.v1"

	// profileKey holds the single profile record.
	profileKey = "dashboard_profile"

	// focusModeKey holds the focus-mode boolean flag.
	focusModeKey = "dashboard_focus_mode"

	// backgroundKey holds the background configuration. The same key is
	// mirrored in the blob store.
	backgroundKey = "dashboard_background"

	// preferencesKey holds the shortcut-id to launch-preference mapping.
	preferencesKey = "app_launch_preferences"
)

// backgroundBlobKey is the blob store key holding the binary background
// payload referenced by the "blob:stored" sentinel.
const backgroundBlobKey = "background_blob"
