package version

import "runtime"

// Populated at build time via -ldflags "-X hmacchallenge/pkg/version.Version=...".
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
	GoVersion = runtime.Version()
)
