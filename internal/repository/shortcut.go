package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/homedash/homedash/internal/model"
	"github.com/homedash/homedash/internal/storage"
)

// ShortcutRepository persists the ordered shortcut collection.
//
// Collections are treated as immutable values: mutating operations take the
// current collection, persist the result, and return it. Callers must adopt
// the returned slice as the new source of truth and discard their input
// reference.
type ShortcutRepository struct {
	kv       storage.KV
	logger   *slog.Logger
	collator *collate.Collator
}

// ShortcutOption configures a ShortcutRepository.
type ShortcutOption func(*ShortcutRepository)

// WithCategoryLocale sets the locale used to order category names.
// The default is Vietnamese, matching the built-in categories.
func WithCategoryLocale(tag language.Tag) ShortcutOption {
	return func(r *ShortcutRepository) {
		r.collator = collate.New(tag)
	}
}

// NewShortcutRepository creates a ShortcutRepository over the given store.
func NewShortcutRepository(kv storage.KV, logger *slog.Logger, opts ...ShortcutOption) *ShortcutRepository {
	r := &ShortcutRepository{
		kv:       kv,
		logger:   logger,
		collator: collate.New(language.Vietnamese),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Load returns the stored shortcut collection.
// It returns nil when nothing is stored yet, which is distinct from a
// stored empty collection: nil tells the caller to seed defaults.
// Corrupt stored data is logged and treated identically to nothing stored.
func (r *ShortcutRepository) Load() []model.Shortcut {
	data, err := r.kv.Get(shortcutsKey)
	if err != nil {
		if !errors.Is(err, storage.ErrKeyNotFound) {
			r.logger.Warn("failed to load shortcuts", "error", err)
		}
		return nil
	}

	var shortcuts []model.Shortcut
	if err := json.Unmarshal(data, &shortcuts); err != nil {
		r.logger.Warn("corrupt shortcut collection, treating as unseeded", "error", err)
		return nil
	}
	if shortcuts == nil {
		// A stored "null" document still counts as a stored empty list.
		shortcuts = []model.Shortcut{}
	}
	return shortcuts
}

// Save persists the full collection, overwriting the stored one.
func (r *ShortcutRepository) Save(shortcuts []model.Shortcut) {
	storage.Save(r.kv, r.logger, shortcutsKey, shortcuts)
}

// Add appends a shortcut, persists, and returns the new collection.
func (r *ShortcutRepository) Add(shortcuts []model.Shortcut, s model.Shortcut) []model.Shortcut {
	updated := make([]model.Shortcut, 0, len(shortcuts)+1)
	updated = append(updated, shortcuts...)
	updated = append(updated, s)
	r.Save(updated)
	return updated
}

// ShortcutUpdate carries the fields of a partial shortcut update.
// Nil fields are left unchanged; non-nil fields replace the current value.
type ShortcutUpdate struct {
	Title       *string
	Icon        *string
	Category    *string
	Description *string
	URL         *string
	Type        *model.ShortcutType
	FallbackURL *string
	Keywords    []string
}

// apply merges the update into a shortcut, leaving the ID untouched.
func (u *ShortcutUpdate) apply(s model.Shortcut) model.Shortcut {
	if u.Title != nil {
		s.Title = *u.Title
	}
	if u.Icon != nil {
		s.Icon = *u.Icon
	}
	if u.Category != nil {
		s.Category = *u.Category
	}
	if u.Description != nil {
		s.Description = *u.Description
	}
	if u.URL != nil {
		s.URL = *u.URL
	}
	if u.Type != nil {
		s.Type = *u.Type
	}
	if u.FallbackURL != nil {
		s.FallbackURL = *u.FallbackURL
	}
	if u.Keywords != nil {
		s.Keywords = u.Keywords
	}
	return s
}

// Update merges the partial update into the entry matching id, persists,
// and returns the new collection. Entries not matching id pass through
// unchanged; an unknown id leaves the collection as-is (still persisted).
func (r *ShortcutRepository) Update(shortcuts []model.Shortcut, id string, update ShortcutUpdate) []model.Shortcut {
	updated := make([]model.Shortcut, 0, len(shortcuts))
	for _, s := range shortcuts {
		if s.ID == id {
			s = update.apply(s)
		}
		updated = append(updated, s)
	}
	r.Save(updated)
	return updated
}

// Delete removes the entry matching id, persists, and returns the new
// collection.
func (r *ShortcutRepository) Delete(shortcuts []model.Shortcut, id string) []model.Shortcut {
	updated := make([]model.Shortcut, 0, len(shortcuts))
	for _, s := range shortcuts {
		if s.ID != id {
			updated = append(updated, s)
		}
	}
	r.Save(updated)
	return updated
}

// DeleteCategory removes all entries in the given category, persists, and
// returns the new collection. Categories are soft grouping keys: removing a
// category's last entry removes the category itself with no other effects.
func (r *ShortcutRepository) DeleteCategory(shortcuts []model.Shortcut, category string) []model.Shortcut {
	updated := make([]model.Shortcut, 0, len(shortcuts))
	for _, s := range shortcuts {
		if s.Category != category {
			updated = append(updated, s)
		}
	}
	r.Save(updated)
	return updated
}

// ListCategories derives the unique categories of the collection in
// locale-collated order, for populating category pickers.
func (r *ShortcutRepository) ListCategories(shortcuts []model.Shortcut) []string {
	seen := make(map[string]struct{}, len(shortcuts))
	categories := make([]string, 0, len(shortcuts))
	for _, s := range shortcuts {
		if _, ok := seen[s.Category]; ok {
			continue
		}
		seen[s.Category] = struct{}{}
		categories = append(categories, s.Category)
	}

	r.collator.SortStrings(categories)
	return categories
}

// idAlphabet is the character set for the random part of generated IDs.
const idAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// GenerateID returns a collision-resistant shortcut ID: a millisecond
// timestamp prefix plus a random suffix. Cryptographic strength is not
// required; uniqueness within a session is what matters.
func GenerateID() string {
	var suffix strings.Builder
	for range 9 {
		suffix.WriteByte(idAlphabet[rand.IntN(len(idAlphabet))])
	}
	return fmt.Sprintf("shortcut_%d_%s", time.Now().UnixMilli(), suffix.String())
}
