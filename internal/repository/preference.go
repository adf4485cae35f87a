package repository

import (
	"log/slog"
	"time"

	"github.com/homedash/homedash/internal/model"
	"github.com/homedash/homedash/internal/storage"
)

// PreferenceRepository persists "remember my choice" decisions for launching
// app-type shortcuts, keyed by shortcut ID.
type PreferenceRepository struct {
	kv     storage.KV
	logger *slog.Logger
}

// NewPreferenceRepository creates a PreferenceRepository over the given store.
func NewPreferenceRepository(kv storage.KV, logger *slog.Logger) *PreferenceRepository {
	return &PreferenceRepository{kv: kv, logger: logger}
}

// Load returns the full preference mapping. Missing or corrupt data yields
// an empty mapping.
func (r *PreferenceRepository) Load() map[string]model.LaunchPreference {
	return storage.Load(r.kv, r.logger, preferencesKey, map[string]model.LaunchPreference{})
}

// ShouldAutoLaunch reports whether the user opted to launch the given
// shortcut's app protocol without confirmation.
func (r *PreferenceRepository) ShouldAutoLaunch(shortcutID string) bool {
	pref, ok := r.Load()[shortcutID]
	return ok && pref.AutoLaunch
}

// SetAutoLaunch records the auto-launch decision for a shortcut.
func (r *PreferenceRepository) SetAutoLaunch(shortcutID string, autoLaunch bool) {
	prefs := r.Load()
	prefs[shortcutID] = model.LaunchPreference{
		AutoLaunch: autoLaunch,
		Timestamp:  time.Now().UnixMilli(),
	}
	storage.Save(r.kv, r.logger, preferencesKey, prefs)
}

// Clear removes the preference recorded for a shortcut.
func (r *PreferenceRepository) Clear(shortcutID string) {
	prefs := r.Load()
	delete(prefs, shortcutID)
	storage.Save(r.kv, r.logger, preferencesKey, prefs)
}

// ClearAll removes every recorded preference.
func (r *PreferenceRepository) ClearAll() {
	if err := r.kv.Delete(preferencesKey); err != nil {
		r.logger.Warn("failed to clear app launch preferences", "error", err)
	}
}
