package storage

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
)

// setupTestBlobStore creates a temporary blob store for testing.
func setupTestBlobStore(t *testing.T) *BlobStore {
	t.Helper()

	bs, err := OpenBlobStore(t.TempDir(), DefaultBlobOptions())
	if err != nil {
		t.Fatalf("failed to open blob store: %v", err)
	}
	t.Cleanup(func() {
		_ = bs.Close()
	})
	return bs
}

// TestOpenBlobStore tests blob store opening and creation.
func TestOpenBlobStore(t *testing.T) {
	t.Parallel()

	t.Run("creates database in new directory", func(t *testing.T) {
		t.Parallel()

		dbDir := filepath.Join(t.TempDir(), "data", "nested")
		bs, err := OpenBlobStore(dbDir, DefaultBlobOptions())
		if err != nil {
			t.Fatalf("failed to open blob store: %v", err)
		}
		defer bs.Close()

		if _, err := os.Stat(filepath.Join(dbDir, "homedash.db")); os.IsNotExist(err) {
			t.Error("database file was not created")
		}
	})

	t.Run("opening is idempotent", func(t *testing.T) {
		t.Parallel()

		dbDir := t.TempDir()

		bs1, err := OpenBlobStore(dbDir, DefaultBlobOptions())
		if err != nil {
			t.Fatalf("failed to open blob store: %v", err)
		}
		if err := bs1.Close(); err != nil {
			t.Fatalf("failed to close blob store: %v", err)
		}

		bs2, err := OpenBlobStore(dbDir, DefaultBlobOptions())
		if err != nil {
			t.Fatalf("failed to reopen blob store: %v", err)
		}
		defer bs2.Close()
	})

	t.Run("CreateIfNotExists=false returns error when database does not exist", func(t *testing.T) {
		t.Parallel()

		opts := BlobOptions{
			CreateIfNotExists: false,
			EnableWAL:         true,
		}

		_, err := OpenBlobStore(filepath.Join(t.TempDir(), "nowhere"), opts)
		if err == nil {
			t.Fatal("expected error when database does not exist")
		}
	})

	t.Run("entries survive reopen", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		dbDir := t.TempDir()

		bs1, err := OpenBlobStore(dbDir, DefaultBlobOptions())
		if err != nil {
			t.Fatalf("failed to open blob store: %v", err)
		}
		payload := []byte{0x89, 0x50, 0x4E, 0x47}
		if err := bs1.SetItem(ctx, "background_blob", payload); err != nil {
			t.Fatalf("failed to store payload: %v", err)
		}
		if err := bs1.Close(); err != nil {
			t.Fatalf("failed to close blob store: %v", err)
		}

		bs2, err := OpenBlobStore(dbDir, DefaultBlobOptions())
		if err != nil {
			t.Fatalf("failed to reopen blob store: %v", err)
		}
		defer bs2.Close()

		got, err := bs2.GetItem(ctx, "background_blob")
		if err != nil {
			t.Fatalf("failed to read payload: %v", err)
		}
		if !bytes.Equal(got, payload) {
			t.Errorf("payload changed across reopen: got %v, want %v", got, payload)
		}
	})
}

// TestBlobStoreItems tests item-level operations.
func TestBlobStoreItems(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("set and get roundtrip", func(t *testing.T) {
		t.Parallel()

		bs := setupTestBlobStore(t)

		payload := bytes.Repeat([]byte{0xAB}, 1024)
		if err := bs.SetItem(ctx, "background_blob", payload); err != nil {
			t.Fatalf("failed to store payload: %v", err)
		}

		got, err := bs.GetItem(ctx, "background_blob")
		if err != nil {
			t.Fatalf("failed to read payload: %v", err)
		}
		if !bytes.Equal(got, payload) {
			t.Error("stored payload does not match")
		}
	})

	t.Run("get missing key returns nil without error", func(t *testing.T) {
		t.Parallel()

		bs := setupTestBlobStore(t)

		got, err := bs.GetItem(ctx, "missing")
		if err != nil {
			t.Fatalf("expected no error for missing key, got %v", err)
		}
		if got != nil {
			t.Errorf("expected nil payload for missing key, got %d bytes", len(got))
		}
	})

	t.Run("set overwrites previous payload", func(t *testing.T) {
		t.Parallel()

		bs := setupTestBlobStore(t)

		if err := bs.SetItem(ctx, "k", []byte("first")); err != nil {
			t.Fatalf("failed to store first payload: %v", err)
		}
		if err := bs.SetItem(ctx, "k", []byte("second")); err != nil {
			t.Fatalf("failed to store second payload: %v", err)
		}

		got, err := bs.GetItem(ctx, "k")
		if err != nil {
			t.Fatalf("failed to read payload: %v", err)
		}
		if string(got) != "second" {
			t.Errorf("expected overwritten payload, got %q", string(got))
		}
	})

	t.Run("delete removes payload", func(t *testing.T) {
		t.Parallel()

		bs := setupTestBlobStore(t)

		if err := bs.SetItem(ctx, "k", []byte("payload")); err != nil {
			t.Fatalf("failed to store payload: %v", err)
		}
		if err := bs.DeleteItem(ctx, "k"); err != nil {
			t.Fatalf("failed to delete payload: %v", err)
		}

		got, err := bs.GetItem(ctx, "k")
		if err != nil {
			t.Fatalf("unexpected error after delete: %v", err)
		}
		if got != nil {
			t.Error("expected payload gone after delete")
		}
	})

	t.Run("delete missing key is not an error", func(t *testing.T) {
		t.Parallel()

		bs := setupTestBlobStore(t)

		if err := bs.DeleteItem(ctx, "never-stored"); err != nil {
			t.Errorf("expected no error deleting missing key, got %v", err)
		}
	})
}
