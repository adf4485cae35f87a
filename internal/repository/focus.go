package repository

import (
	"log/slog"

	"github.com/homedash/homedash/internal/storage"
)

// FocusRepository persists the focus-mode flag. When the flag is on, the
// rendering layer hides the entertainment category group.
type FocusRepository struct {
	kv     storage.KV
	logger *slog.Logger
}

// NewFocusRepository creates a FocusRepository over the given store.
func NewFocusRepository(kv storage.KV, logger *slog.Logger) *FocusRepository {
	return &FocusRepository{kv: kv, logger: logger}
}

// Load returns the stored flag, defaulting to off.
func (r *FocusRepository) Load() bool {
	return storage.Load(r.kv, r.logger, focusModeKey, false)
}

// Save persists the flag.
func (r *FocusRepository) Save(enabled bool) {
	storage.Save(r.kv, r.logger, focusModeKey, enabled)
}

// Reset turns focus mode off.
func (r *FocusRepository) Reset() {
	r.Save(false)
}
