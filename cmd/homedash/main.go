// Package main provides the entry point for the homedash CLI.
//
// homedash manages the persisted state of a personal start-page dashboard:
// shortcuts, profile, background, and focus mode, stored under the user's
// data directory.
//
// Usage:
//
//	homedash list
//	homedash export -o backup.json
//	homedash import backup.json
//
// See --help for all available options.
package main

// main is the entry point for homedash.
func main() {
	Execute()
}
