// Package backup serializes the dashboard's repositories into a single JSON
// document for export, restores them from such a document with lenient
// per-field validation, and resets them to defaults.
package backup
