package storage

import (
	"encoding/json"
	"errors"
	"log/slog"
)

// KV is the small-value store: a synchronous key/value abstraction holding
// JSON documents below a practical size ceiling. Implementations must return
// ErrKeyNotFound from Get when nothing is stored under a key.
//
// The store is deliberately schema-less; versioning is the caller's
// responsibility per key (e.g. the "home.shortcuts.v1" key).
type KV interface {
	// Get returns the raw value stored under key, or ErrKeyNotFound.
	Get(key string) ([]byte, error)

	// Set stores the value under key, overwriting any previous value.
	Set(key string, value []byte) error

	// Delete removes the value stored under key. Deleting a missing key
	// is not an error.
	Delete(key string) error
}

// Load reads the JSON document stored under key and decodes it into T.
// An unavailable medium, a missing key, or corrupt JSON all degrade to the
// caller-supplied default: persistence failures must never surface as errors
// to the presentation layer.
func Load[T any](kv KV, logger *slog.Logger, key string, def T) T {
	data, err := kv.Get(key)
	if err != nil {
		if !errors.Is(err, ErrKeyNotFound) {
			logger.Warn("failed to read from small-value store, using default",
				"key", key, "error", err)
		}
		return def
	}

	var value T
	if err := json.Unmarshal(data, &value); err != nil {
		// Corrupt stored JSON is treated identically to "nothing stored".
		logger.Warn("corrupt value in small-value store, using default",
			"key", key, "error", err)
		return def
	}
	return value
}

// Save encodes the value as JSON and stores it under key. Failures are
// logged and reported as a boolean so callers can carry on with in-memory
// state; the previous stored value remains intact.
func Save[T any](kv KV, logger *slog.Logger, key string, value T) bool {
	data, err := json.Marshal(value)
	if err != nil {
		logger.Error("failed to encode value for small-value store",
			"key", key, "error", err)
		return false
	}

	if err := kv.Set(key, data); err != nil {
		logger.Error("failed to write to small-value store",
			"key", key, "error", err)
		return false
	}
	return true
}
