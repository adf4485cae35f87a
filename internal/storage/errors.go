package storage

import "errors"

// Storage errors.
// These errors are returned by the store implementations and allow callers
// to distinguish "nothing stored" from genuine failures via errors.Is().
var (
	// ErrKeyNotFound is returned by KV.Get when no value is stored under the
	// requested key. Callers use this to tell "nothing stored yet" apart from
	// a read failure, which matters when deciding whether to seed defaults.
	ErrKeyNotFound = errors.New("key not found")

	// ErrValueTooLarge is returned by the small-value store when a value
	// exceeds the configured size ceiling. Large payloads belong in the
	// blob store instead.
	ErrValueTooLarge = errors.New("value exceeds small-value store size limit")

	// ErrUnknownReference is returned when a transient blob reference cannot
	// be resolved. References are session-scoped: a reference persisted in a
	// previous run can never resolve again.
	ErrUnknownReference = errors.New("unknown transient blob reference")

	// ErrBlobStoreNotFound is returned by OpenBlobStore when the database
	// does not exist and CreateIfNotExists is false.
	ErrBlobStoreNotFound = errors.New("blob store database not found")
)
