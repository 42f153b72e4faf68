package app

import "buildcfg/internal/buildinfo"

// Version is the semantic version of buildcfg, set at build time via -ldflags.
var Version = buildinfo.Version

// Build is the git commit hash or build identifier, set at build time via -ldflags.
var Build = buildinfo.Build
