// Package version exposes build metadata stamped in via -ldflags.
package version

import (
	"fmt"
	"runtime/debug"
)

// These variables are populated at build time via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Build is the metadata reported by `makan version` and GET /api/version.
type Build struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

// Current resolves the running build. Builds without ldflags fall back to the
// module version recorded by the toolchain.
func Current() Build {
	v := Version
	if v == "dev" {
		if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
			v = info.Main.Version
		}
	}
	return Build{Version: v, Commit: Commit, Date: Date}
}

func (b Build) String() string {
	return fmt.Sprintf("%s (commit %s, built %s)", b.Version, b.Commit, b.Date)
}

// Info returns a human-friendly version string.
func Info() string {
	return Current().String()
}
