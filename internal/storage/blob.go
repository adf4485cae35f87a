package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver
)

// blobDatabaseFile is the name of the SQLite database file inside the
// data directory.
const blobDatabaseFile = "homedash.db"

// blobSchemaVersion is the current schema version, tracked via
// PRAGMA user_version. Opening an older database upgrades it in place
// without losing existing entries.
const blobSchemaVersion = 1

// BlobStore provides SQLite-based storage for large binary payloads such as
// background images and video, plus a mirror of the background configuration.
// It exists alongside the small-value store because string-keyed storage
// imposes a practical size ceiling unsuitable for multi-megabyte media.
//
// Each operation runs in its own implicit transaction; SQLite serializes
// concurrent calls, so no locking is required at this layer.
type BlobStore struct {
	// db is the underlying SQL database connection.
	db *sql.DB

	// dbPath is the path to the SQLite database file.
	dbPath string
}

// BlobOptions configures BlobStore behavior.
type BlobOptions struct {
	// CreateIfNotExists creates the database file if it doesn't exist.
	CreateIfNotExists bool

	// EnableWAL enables Write-Ahead Logging for better concurrent performance.
	EnableWAL bool
}

// DefaultBlobOptions returns the default blob store options.
func DefaultBlobOptions() BlobOptions {
	return BlobOptions{
		CreateIfNotExists: true,
		EnableWAL:         true,
	}
}

// OpenBlobStore opens or creates a BlobStore in the specified directory.
// Opening is idempotent: an existing store is reused, and an older schema
// is upgraded in place.
func OpenBlobStore(dbDir string, opts BlobOptions) (*BlobStore, error) {
	dbPath := filepath.Join(dbDir, blobDatabaseFile)

	if !opts.CreateIfNotExists {
		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrBlobStoreNotFound, dbPath)
		} else if err != nil {
			return nil, fmt.Errorf("failed to check database path: %w", err)
		}
	} else {
		if err := os.MkdirAll(dbDir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	// modernc.org/sqlite connection string: mode=rw prevents creating new
	// files, mode=rwc allows creation.
	var dsn string
	if opts.CreateIfNotExists {
		dsn = dbPath + "?mode=rwc"
	} else {
		dsn = dbPath + "?mode=rw"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite only supports one writer; a single connection avoids
	// SQLITE_BUSY errors under concurrent store calls.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	bs := &BlobStore{
		db:     db,
		dbPath: dbPath,
	}

	if opts.EnableWAL {
		if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	if err := bs.migrate(context.Background()); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to migrate blob store schema: %w", err)
	}

	return bs, nil
}

// Close closes the database connection.
func (bs *BlobStore) Close() error {
	return bs.db.Close()
}

// Path returns the path to the database file.
func (bs *BlobStore) Path() string {
	return bs.dbPath
}

// migrate brings the schema up to blobSchemaVersion. Upgrades must preserve
// existing entries, so each step only adds structure.
func (bs *BlobStore) migrate(ctx context.Context) error {
	var version int
	if err := bs.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&version); err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}

	if version >= blobSchemaVersion {
		return nil
	}

	if version < 1 {
		schema := `
		CREATE TABLE IF NOT EXISTS background_store (
			key TEXT PRIMARY KEY,
			value BLOB NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		`
		if _, err := bs.db.ExecContext(ctx, schema); err != nil {
			return fmt.Errorf("failed to create object store: %w", err)
		}
	}

	if _, err := bs.db.ExecContext(ctx, fmt.Sprintf("PRAGMA user_version = %d", blobSchemaVersion)); err != nil {
		return fmt.Errorf("failed to update schema version: %w", err)
	}
	return nil
}

// SetItem stores a binary payload under key, overwriting any previous value.
func (bs *BlobStore) SetItem(ctx context.Context, key string, value []byte) error {
	query := `
	INSERT INTO background_store (key, value)
	VALUES (?, ?)
	ON CONFLICT(key) DO UPDATE SET
		value = excluded.value,
		updated_at = CURRENT_TIMESTAMP
	`

	if _, err := bs.db.ExecContext(ctx, query, key, value); err != nil {
		return fmt.Errorf("failed to store blob %s: %w", key, err)
	}
	return nil
}

// GetItem retrieves the payload stored under key.
// A missing key returns (nil, nil), not an error: an empty store is a
// normal state, not a failure.
func (bs *BlobStore) GetItem(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := bs.db.QueryRowContext(ctx, "SELECT value FROM background_store WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get blob %s: %w", key, err)
	}
	return value, nil
}

// DeleteItem removes the payload stored under key. A missing key is not
// an error.
func (bs *BlobStore) DeleteItem(ctx context.Context, key string) error {
	if _, err := bs.db.ExecContext(ctx, "DELETE FROM background_store WHERE key = ?", key); err != nil {
		return fmt.Errorf("failed to delete blob %s: %w", key, err)
	}
	return nil
}
