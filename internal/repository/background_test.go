package repository

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/homedash/homedash/internal/model"
	"github.com/homedash/homedash/internal/storage"
)

// backgroundFixture bundles the stores a background repository needs.
type backgroundFixture struct {
	repo  *BackgroundRepository
	kv    *storage.MemoryStore
	blobs *storage.BlobStore
	refs  *storage.Registry
}

// newBackgroundFixture creates a background repository over fresh stores.
func newBackgroundFixture(t *testing.T) *backgroundFixture {
	t.Helper()

	kv := storage.NewMemoryStore()
	blobs, err := storage.OpenBlobStore(t.TempDir(), storage.DefaultBlobOptions())
	if err != nil {
		t.Fatalf("failed to open blob store: %v", err)
	}
	t.Cleanup(func() {
		_ = blobs.Close()
	})

	refs := storage.NewRegistry()
	return &backgroundFixture{
		repo:  NewBackgroundRepository(kv, blobs, refs, slog.New(slog.DiscardHandler)),
		kv:    kv,
		blobs: blobs,
		refs:  refs,
	}
}

// TestBackgroundRepositoryPlain tests color and gradient backgrounds.
func TestBackgroundRepositoryPlain(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("nothing stored returns default", func(t *testing.T) {
		t.Parallel()

		f := newBackgroundFixture(t)
		got := f.repo.Load(ctx)
		if got != model.DefaultBackground() {
			t.Errorf("expected default background, got %+v", got)
		}
	})

	t.Run("color roundtrip", func(t *testing.T) {
		t.Parallel()

		f := newBackgroundFixture(t)
		in := model.BackgroundConfig{
			Type:  model.BackgroundColor,
			Value: "#1a1a2e",
			Blur:  3,
			Dim:   40,
		}
		f.repo.Save(ctx, in)

		got := f.repo.Load(ctx)
		if got != in {
			t.Errorf("expected %+v, got %+v", in, got)
		}
	})

	t.Run("gradient roundtrip", func(t *testing.T) {
		t.Parallel()

		f := newBackgroundFixture(t)
		in := model.BackgroundConfig{
			Type:  model.BackgroundGradient,
			Value: model.GradientPresets[0].Value,
		}
		f.repo.Save(ctx, in)

		got := f.repo.Load(ctx)
		if got != in {
			t.Errorf("expected %+v, got %+v", in, got)
		}
	})

	t.Run("falls back to small-value store when blob mirror is absent", func(t *testing.T) {
		t.Parallel()

		f := newBackgroundFixture(t)
		// Simulate an installation that predates the blob store mirror.
		doc := `{"type":"color","value":"#abcdef","blur":1,"dim":20}`
		if err := f.kv.Set("dashboard_background", []byte(doc)); err != nil {
			t.Fatalf("failed to seed small-value store: %v", err)
		}

		got := f.repo.Load(ctx)
		if got.Type != model.BackgroundColor || got.Value != "#abcdef" {
			t.Errorf("fallback config lost: %+v", got)
		}
		if got.Blur != 1 || got.Dim != 20 {
			t.Errorf("blur/dim lost: %+v", got)
		}
	})
}

// TestBackgroundRepositoryBlobBacked tests media-backed backgrounds.
func TestBackgroundRepositoryBlobBacked(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("save and load roundtrip through the blob store", func(t *testing.T) {
		t.Parallel()

		f := newBackgroundFixture(t)
		payload := bytes.Repeat([]byte{0xCC}, 2048)
		ref := f.refs.Register(payload)

		f.repo.Save(ctx, model.BackgroundConfig{
			Type:  model.BackgroundImage,
			Value: ref,
			Blur:  2,
			Dim:   10,
		})

		got := f.repo.Load(ctx)
		if got.Type != model.BackgroundImage || got.Blur != 2 || got.Dim != 10 {
			t.Errorf("config fields lost: %+v", got)
		}
		if got.Value == storage.StoredSentinel {
			t.Fatal("sentinel leaked to the caller")
		}
		if !strings.HasPrefix(got.Value, "blob:mem:") {
			t.Fatalf("expected fresh transient reference, got %q", got.Value)
		}

		resolved, err := f.refs.Resolve(got.Value)
		if err != nil {
			t.Fatalf("returned reference does not resolve: %v", err)
		}
		if !bytes.Equal(resolved, payload) {
			t.Error("payload changed across save/load")
		}
	})

	t.Run("persisted config carries the sentinel, not the reference", func(t *testing.T) {
		t.Parallel()

		f := newBackgroundFixture(t)
		ref := f.refs.Register([]byte("video bytes"))
		f.repo.Save(ctx, model.BackgroundConfig{Type: model.BackgroundVideo, Value: ref})

		raw, err := f.kv.Get("dashboard_background")
		if err != nil {
			t.Fatalf("config not persisted: %v", err)
		}
		if !bytes.Contains(raw, []byte(`"blob:stored"`)) {
			t.Errorf("expected sentinel in stored config, got %s", raw)
		}
		if bytes.Contains(raw, []byte(ref)) {
			t.Error("transient reference leaked into stored config")
		}
	})

	t.Run("unresolvable reference leaves previous background intact", func(t *testing.T) {
		t.Parallel()

		f := newBackgroundFixture(t)
		prior := model.BackgroundConfig{Type: model.BackgroundColor, Value: "#101010"}
		f.repo.Save(ctx, prior)

		f.repo.Save(ctx, model.BackgroundConfig{
			Type:  model.BackgroundImage,
			Value: "blob:mem:from-a-previous-session",
		})

		got := f.repo.Load(ctx)
		if got != prior {
			t.Errorf("prior background lost: %+v", got)
		}
	})

	t.Run("saving a config that already carries the sentinel is a no-op", func(t *testing.T) {
		t.Parallel()

		f := newBackgroundFixture(t)
		prior := model.BackgroundConfig{Type: model.BackgroundColor, Value: "#101010"}
		f.repo.Save(ctx, prior)

		// The sentinel shares the blob prefix, so it routes through the
		// blob-backed path and fails to resolve.
		f.repo.Save(ctx, model.BackgroundConfig{
			Type:  model.BackgroundImage,
			Value: storage.StoredSentinel,
		})

		got := f.repo.Load(ctx)
		if got != prior {
			t.Errorf("prior background lost: %+v", got)
		}
	})

	t.Run("sentinel without payload degrades to default", func(t *testing.T) {
		t.Parallel()

		f := newBackgroundFixture(t)
		doc := `{"type":"image","value":"blob:stored","blur":0,"dim":0}`
		if err := f.kv.Set("dashboard_background", []byte(doc)); err != nil {
			t.Fatalf("failed to seed config: %v", err)
		}

		got := f.repo.Load(ctx)
		if got != model.DefaultBackground() {
			t.Errorf("expected default for orphaned sentinel, got %+v", got)
		}
	})

	t.Run("switching to a plain background drops the stale payload", func(t *testing.T) {
		t.Parallel()

		f := newBackgroundFixture(t)
		ref := f.refs.Register([]byte("image bytes"))
		f.repo.Save(ctx, model.BackgroundConfig{Type: model.BackgroundImage, Value: ref})

		f.repo.Save(ctx, model.BackgroundConfig{Type: model.BackgroundColor, Value: "#222222"})

		payload, err := f.blobs.GetItem(ctx, "background_blob")
		if err != nil {
			t.Fatalf("failed to check payload: %v", err)
		}
		if payload != nil {
			t.Error("stale payload not removed after switching to a plain background")
		}
	})
}

// TestBackgroundRepositoryReset tests restoring the default background.
func TestBackgroundRepositoryReset(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newBackgroundFixture(t)

	ref := f.refs.Register([]byte("image bytes"))
	f.repo.Save(ctx, model.BackgroundConfig{Type: model.BackgroundImage, Value: ref})

	got := f.repo.Reset(ctx)
	if got != model.DefaultBackground() {
		t.Errorf("reset did not return default, got %+v", got)
	}

	stored := f.repo.Load(ctx)
	if stored != model.DefaultBackground() {
		t.Errorf("reset was not persisted, got %+v", stored)
	}

	payload, err := f.blobs.GetItem(ctx, "background_blob")
	if err != nil {
		t.Fatalf("failed to check payload: %v", err)
	}
	if payload != nil {
		t.Error("payload not removed on reset")
	}
}
