package repository

import (
	"context"
	"encoding/json"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/homedash/homedash/internal/model"
	"github.com/homedash/homedash/internal/storage"
)

// BackgroundRepository reconciles the two storage tiers for the background
// configuration.
//
// Lightweight values (colors, gradients) persist to both tiers directly.
// Large binary backgrounds arrive as transient blob references: the payload
// is moved into the blob store under a fixed key and the persisted config
// carries the "blob:stored" sentinel instead. The write order is payload
// first, sentinel-substituted config second, so a crash between the two
// leaves the sentinel unpersisted rather than pointing at a missing blob.
type BackgroundRepository struct {
	kv     storage.KV
	blobs  *storage.BlobStore
	refs   *storage.Registry
	logger *slog.Logger
}

// NewBackgroundRepository creates a BackgroundRepository over the given
// stores and transient-reference registry.
func NewBackgroundRepository(kv storage.KV, blobs *storage.BlobStore, refs *storage.Registry, logger *slog.Logger) *BackgroundRepository {
	return &BackgroundRepository{
		kv:     kv,
		blobs:  blobs,
		refs:   refs,
		logger: logger,
	}
}

// Save persists the background configuration across both tiers.
//
// Failures are logged, never returned: a failed save leaves the prior
// stored value intact and the user retries. In particular, an unresolvable
// transient reference (including the literal sentinel, which shares the
// blob prefix) turns the save into a no-op.
func (r *BackgroundRepository) Save(ctx context.Context, cfg model.BackgroundConfig) {
	if storage.IsTransientRef(cfg.Value) {
		r.saveBlobBacked(ctx, cfg)
		return
	}
	r.savePlain(ctx, cfg)
}

// saveBlobBacked moves a transient payload into the blob store and persists
// the sentinel-substituted config.
func (r *BackgroundRepository) saveBlobBacked(ctx context.Context, cfg model.BackgroundConfig) {
	payload, err := r.refs.Resolve(cfg.Value)
	if err != nil {
		r.logger.Error("failed to resolve background blob reference, keeping previous background",
			"error", err)
		return
	}

	// The payload must be durable before any config points at it.
	if err := r.blobs.SetItem(ctx, backgroundBlobKey, payload); err != nil {
		r.logger.Error("failed to store background payload, keeping previous background",
			"error", err)
		return
	}

	stored := cfg
	stored.Value = storage.StoredSentinel

	data, err := json.Marshal(stored)
	if err != nil {
		r.logger.Error("failed to encode background config", "error", err)
		return
	}
	if err := r.blobs.SetItem(ctx, backgroundKey, data); err != nil {
		r.logger.Error("failed to mirror background config to blob store", "error", err)
	}
	storage.Save(r.kv, r.logger, backgroundKey, stored)
}

// savePlain persists a color/gradient/empty config to both tiers and drops
// any stale binary payload so orphaned media does not linger once the user
// switches to a lightweight background.
func (r *BackgroundRepository) savePlain(ctx context.Context, cfg model.BackgroundConfig) {
	storage.Save(r.kv, r.logger, backgroundKey, cfg)

	data, err := json.Marshal(cfg)
	if err != nil {
		r.logger.Error("failed to encode background config", "error", err)
		return
	}

	// The mirror write and the stale payload delete touch independent keys.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return r.blobs.SetItem(gctx, backgroundKey, data)
	})
	g.Go(func() error {
		return r.blobs.DeleteItem(gctx, backgroundBlobKey)
	})
	if err := g.Wait(); err != nil {
		r.logger.Error("failed to update blob store for background", "error", err)
	}
}

// Load returns the stored background configuration, re-materializing a
// fresh transient reference for blob-backed backgrounds.
//
// The blob store's copy is the primary source of truth; the small-value
// store's copy only serves installations that predate the blob store.
// A sentinel without its payload means data loss and degrades to the
// default config rather than exposing the broken sentinel to renderers.
func (r *BackgroundRepository) Load(ctx context.Context) model.BackgroundConfig {
	cfg, ok := r.loadStored(ctx)
	if !ok {
		return model.DefaultBackground()
	}

	if cfg.Value != storage.StoredSentinel {
		return cfg
	}

	payload, err := r.blobs.GetItem(ctx, backgroundBlobKey)
	if err != nil {
		r.logger.Warn("failed to load background payload, using default", "error", err)
		return model.DefaultBackground()
	}
	if payload == nil {
		r.logger.Warn("background payload missing despite stored sentinel, using default")
		return model.DefaultBackground()
	}

	cfg.Value = r.refs.Register(payload)
	return cfg
}

// loadStored reads the persisted config from the blob mirror, falling back
// to the small-value store. The second return value reports whether any
// config was found.
func (r *BackgroundRepository) loadStored(ctx context.Context) (model.BackgroundConfig, bool) {
	data, err := r.blobs.GetItem(ctx, backgroundKey)
	if err != nil {
		r.logger.Warn("failed to read background config from blob store", "error", err)
	}
	if data != nil {
		var cfg model.BackgroundConfig
		jsonErr := json.Unmarshal(data, &cfg)
		if jsonErr == nil {
			return cfg, true
		}
		r.logger.Warn("corrupt background config in blob store, trying small-value store", "error", jsonErr)
	}

	raw, err := r.kv.Get(backgroundKey)
	if err != nil {
		return model.BackgroundConfig{}, false
	}
	var cfg model.BackgroundConfig
	if err := json.Unmarshal(raw, &cfg); err != nil {
		r.logger.Warn("corrupt background config, using default", "error", err)
		return model.BackgroundConfig{}, false
	}
	return cfg, true
}

// Reset restores and returns the default background configuration.
func (r *BackgroundRepository) Reset(ctx context.Context) model.BackgroundConfig {
	def := model.DefaultBackground()
	r.Save(ctx, def)
	return def
}
