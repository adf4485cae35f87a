// Package config provides configuration for homedash: storage locations,
// locale for category ordering, and default seeding behavior, populated
// from CLI flags and an optional .homedash yaml file.
package config
