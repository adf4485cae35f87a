// Package repository implements the persistence operations for each domain
// entity: shortcut CRUD, profile load/save with legacy migration, dual-tier
// background storage, the focus-mode flag, and app-launch preferences.
//
// Repositories are deliberately forgiving: a missing medium or corrupt
// stored data degrades to defaults, and write failures are logged rather
// than propagated, so the dashboard always renders with at least default
// data instead of crashing on a persistence error.
package repository
