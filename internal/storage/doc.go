// Package storage provides the two persistence tiers used by the dashboard:
// a small-value key/value store for JSON documents and a SQLite-backed blob
// store for large binary payloads such as background images and video.
// It also provides a session-scoped registry for transient blob references.
package storage
