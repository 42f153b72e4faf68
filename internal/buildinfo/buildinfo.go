// Package buildinfo carries version identifiers stamped at build time.
package buildinfo

// Version is the semantic version of buildcfg, set at build time via -ldflags.
var Version = "dev"

// Build is the git commit hash or build identifier, set at build time via -ldflags.
var Build = "unknown"
