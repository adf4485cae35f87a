// Package report renders a human-readable summary of the dashboard state.
// The Markdown output is meant for documentation and for eyeballing a
// backup before importing it elsewhere.
package report
