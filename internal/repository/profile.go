package repository

import (
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/homedash/homedash/internal/model"
	"github.com/homedash/homedash/internal/storage"
)

// ProfileRepository persists the single profile record.
type ProfileRepository struct {
	kv     storage.KV
	logger *slog.Logger
}

// NewProfileRepository creates a ProfileRepository over the given store.
func NewProfileRepository(kv storage.KV, logger *slog.Logger) *ProfileRepository {
	return &ProfileRepository{kv: kv, logger: logger}
}

// storedProfile is the on-disk shape of the profile record. It carries both
// the current structured avatar and the first-generation flat avatarUrl
// field so legacy records can be detected on load.
type storedProfile struct {
	Name      string              `json:"name"`
	Bio       string              `json:"bio"`
	Avatar    *model.AvatarConfig `json:"avatar,omitempty"`
	AvatarURL string              `json:"avatarUrl,omitempty"`
}

// Load returns the stored profile, falling back to the default profile on
// missing or corrupt data so callers always get a usable record.
//
// Legacy records that carry a flat avatarUrl and no structured avatar are
// upgraded in place and persisted back, so the migration runs at most once
// per record: a second Load returns the already-structured profile.
func (r *ProfileRepository) Load() model.Profile {
	data, err := r.kv.Get(profileKey)
	if err != nil {
		if !errors.Is(err, storage.ErrKeyNotFound) {
			r.logger.Warn("failed to load profile, using default", "error", err)
		}
		return model.DefaultProfile()
	}

	var stored storedProfile
	if err := json.Unmarshal(data, &stored); err != nil {
		r.logger.Warn("corrupt profile record, using default", "error", err)
		return model.DefaultProfile()
	}

	if stored.AvatarURL != "" && stored.Avatar == nil {
		migrated := r.migrateLegacy(stored)
		r.Save(migrated)
		return migrated
	}

	profile := model.Profile{
		Name: stored.Name,
		Bio:  stored.Bio,
	}
	if stored.Avatar != nil {
		profile.Avatar = *stored.Avatar
	} else {
		profile.Avatar = model.DefaultProfile().Avatar
	}
	return profile
}

// migrateLegacy upgrades a first-generation record to the structured avatar
// representation. Missing name/bio fall back to the defaults.
func (r *ProfileRepository) migrateLegacy(stored storedProfile) model.Profile {
	def := model.DefaultProfile()

	name := stored.Name
	if name == "" {
		name = def.Name
	}
	bio := stored.Bio
	if bio == "" {
		bio = def.Bio
	}

	r.logger.Info("migrating legacy profile record to structured avatar format")
	return model.Profile{
		Name: name,
		Bio:  bio,
		Avatar: model.AvatarConfig{
			Mode:      model.AvatarModeURL,
			URL:       stored.AvatarURL,
			MediaType: model.MediaTypeImage,
		},
	}
}

// Save persists the profile.
func (r *ProfileRepository) Save(profile model.Profile) {
	storage.Save(r.kv, r.logger, profileKey, profile)
}

// Reset restores and returns the default profile.
func (r *ProfileRepository) Reset() model.Profile {
	def := model.DefaultProfile()
	r.Save(def)
	return def
}
