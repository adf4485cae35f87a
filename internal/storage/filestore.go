package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultMaxValueSize is the size ceiling for a single small-value entry.
// 5MB mirrors the per-origin quota that string-keyed browser storage
// typically imposes; anything larger belongs in the blob store.
const DefaultMaxValueSize = 5 * 1024 * 1024

// FileStore implements KV with one JSON document per key under a directory.
// Writes are atomic (write to a temp file, then rename) so a crash mid-write
// leaves the previous value intact rather than a truncated document.
type FileStore struct {
	// dir is the directory holding one file per key.
	dir string

	// maxValueSize is the size ceiling for a single value in bytes.
	maxValueSize int
}

// FileStoreOptions configures FileStore behavior.
type FileStoreOptions struct {
	// MaxValueSize is the size ceiling for a single value in bytes.
	// Zero means DefaultMaxValueSize.
	MaxValueSize int
}

// DefaultFileStoreOptions returns the default file store options.
func DefaultFileStoreOptions() FileStoreOptions {
	return FileStoreOptions{
		MaxValueSize: DefaultMaxValueSize,
	}
}

// NewFileStore creates a FileStore rooted at dir, creating the directory
// if needed.
func NewFileStore(dir string, opts FileStoreOptions) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create store directory: %w", err)
	}

	maxSize := opts.MaxValueSize
	if maxSize <= 0 {
		maxSize = DefaultMaxValueSize
	}

	return &FileStore{
		dir:          dir,
		maxValueSize: maxSize,
	}, nil
}

// Get returns the value stored under key, or ErrKeyNotFound.
func (fs *FileStore) Get(key string) ([]byte, error) {
	data, err := os.ReadFile(fs.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrKeyNotFound, key)
		}
		return nil, fmt.Errorf("failed to read key %s: %w", key, err)
	}
	return data, nil
}

// Set stores the value under key. Values above the size ceiling are
// rejected with ErrValueTooLarge.
func (fs *FileStore) Set(key string, value []byte) error {
	if len(value) > fs.maxValueSize {
		return fmt.Errorf("%w: %d bytes (limit %d)", ErrValueTooLarge, len(value), fs.maxValueSize)
	}

	path := fs.path(key)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, value, 0600); err != nil {
		return fmt.Errorf("failed to write key %s: %w", key, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("failed to commit key %s: %w", key, err)
	}
	return nil
}

// Delete removes the value stored under key. A missing key is not an error.
func (fs *FileStore) Delete(key string) error {
	if err := os.Remove(fs.path(key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete key %s: %w", key, err)
	}
	return nil
}

// path returns the file path for a key. Keys are sanitized so that a key
// can never escape the store directory.
func (fs *FileStore) path(key string) string {
	return filepath.Join(fs.dir, sanitizeKey(key)+".json")
}

// sanitizeKey maps a storage key to a safe file name.
func sanitizeKey(key string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, key)
}
