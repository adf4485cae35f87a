package storage

import (
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
)

const (
	// TransientPrefix marks a background value as a blob reference rather
	// than a literal renderable value (color, gradient, URL).
	TransientPrefix = "blob:"

	// transientRefPrefix is the prefix of session-scoped references minted
	// by the Registry.
	transientRefPrefix = "blob:mem:"

	// StoredSentinel is the persisted stand-in for a blob-backed value.
	// It means "the real payload lives in the blob store under a fixed key"
	// and must never be handed to a renderer as a literal value.
	StoredSentinel = "blob:stored"
)

// IsTransientRef reports whether a background value is a blob reference.
// Note that the StoredSentinel shares the prefix: resolving it always fails,
// which protects against persisting the sentinel as if it were a payload.
func IsTransientRef(value string) bool {
	return strings.HasPrefix(value, TransientPrefix)
}

// Registry holds transient blob references: short-lived, in-memory pointers
// to binary payloads, valid only for the current session until persisted.
// It is the Go counterpart of a browser object URL.
type Registry struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		blobs: make(map[string][]byte),
	}
}

// Register stores a payload and returns a fresh transient reference for it.
func (r *Registry) Register(data []byte) string {
	ref := transientRefPrefix + uuid.NewString()

	r.mu.Lock()
	defer r.mu.Unlock()
	r.blobs[ref] = data
	return ref
}

// Resolve returns the payload behind a transient reference.
// References from a previous session, released references, and the
// StoredSentinel all fail with ErrUnknownReference.
func (r *Registry) Resolve(ref string) ([]byte, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	data, ok := r.blobs[ref]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownReference, ref)
	}
	return data, nil
}

// Release drops a reference and its payload. Releasing an unknown
// reference is a no-op.
func (r *Registry) Release(ref string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.blobs, ref)
}
