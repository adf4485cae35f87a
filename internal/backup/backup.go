package backup

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/homedash/homedash/internal/model"
	"github.com/homedash/homedash/internal/repository"
)

// Archive is the export file format: a single UTF-8 JSON document holding
// all small-value state. Binary background payloads are not included; they
// live in the blob store and are not portable through this format.
type Archive struct {
	Shortcuts  []model.Shortcut `json:"shortcuts"`
	Profile    model.Profile    `json:"profile"`
	FocusMode  bool             `json:"focusMode"`
	ExportedAt time.Time        `json:"exportedAt"`
}

// Service composes the repositories into backup, restore, and reset
// operations.
type Service struct {
	shortcuts *repository.ShortcutRepository
	profile   *repository.ProfileRepository
	focus     *repository.FocusRepository
	logger    *slog.Logger
}

// NewService creates a backup Service over the given repositories.
func NewService(
	shortcuts *repository.ShortcutRepository,
	profile *repository.ProfileRepository,
	focus *repository.FocusRepository,
	logger *slog.Logger,
) *Service {
	return &Service{
		shortcuts: shortcuts,
		profile:   profile,
		focus:     focus,
		logger:    logger,
	}
}

// ExportAll serializes the current state into a pretty-printed JSON
// document. An unseeded installation exports the default shortcut set, so
// the backup is always a complete snapshot of what the user sees.
func (s *Service) ExportAll() ([]byte, error) {
	shortcuts := s.shortcuts.Load()
	if shortcuts == nil {
		shortcuts = model.DefaultShortcuts()
	}

	archive := Archive{
		Shortcuts:  shortcuts,
		Profile:    s.profile.Load(),
		FocusMode:  s.focus.Load(),
		ExportedAt: time.Now().UTC(),
	}

	data, err := json.MarshalIndent(archive, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode backup document: %w", err)
	}
	return data, nil
}

// ImportAll restores state from an exported document.
//
// It returns false only when the document is unparseable or its root is not
// a JSON object; in that case nothing is modified. Otherwise each recognized
// field is validated and applied independently — absent or ill-typed fields
// are skipped, not fatal — and true is returned regardless of how many
// fields were actually restored.
func (s *Service) ImportAll(data []byte) bool {
	applied, _ := s.Import(data)
	return applied
}

// Import is ImportAll with the per-field validation results exposed, so the
// caller can report what was restored and what was skipped.
func (s *Service) Import(data []byte) (bool, []FieldResult) {
	fields, results, err := validateArchive(data)
	if err != nil {
		s.logger.Warn("rejecting backup document", "error", err)
		return false, nil
	}

	if fields.Shortcuts != nil {
		s.shortcuts.Save(*fields.Shortcuts)
	}
	if fields.Profile != nil {
		s.profile.Save(*fields.Profile)
	}
	if fields.FocusMode != nil {
		s.focus.Save(*fields.FocusMode)
	}

	for _, res := range results {
		if !res.Valid {
			s.logger.Warn("skipped backup field", "field", res.Field, "reason", res.Reason)
		}
	}
	return true, results
}

// ResetAll restores shortcuts, profile, and focus mode to their defaults.
//
// TODO: the settings UI labels this "reset all data", but the background
// configuration and app-launch preferences are not reset here. Whether they
// should be needs a product decision before widening the scope.
func (s *Service) ResetAll() {
	s.shortcuts.Save(model.DefaultShortcuts())
	s.profile.Reset()
	s.focus.Reset()
}

// ExportFileName returns the conventional download name for an export
// created at the given time, embedding the date. The importer does not
// depend on this convention.
func ExportFileName(t time.Time) string {
	return fmt.Sprintf("dashboard-backup-%s.json", t.Format("2006-01-02"))
}
