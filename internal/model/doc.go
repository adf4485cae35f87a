// Package model defines the dashboard's domain types: shortcuts, the user
// profile with its avatar configuration, background configuration, and
// app-launch preferences, together with their validation rules and the
// default seed data shown on first run.
package model
