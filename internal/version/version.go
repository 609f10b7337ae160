// Package version holds build metadata injected via ldflags:
//
//	go build -ldflags "-X git.home.luguber.info/inful/docgarden/internal/version.Version=v0.3.0"
package version

import "fmt"

// Version contains the application version.
var Version = "unknown"

// BuildInfo contains additional build metadata.
var (
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// String returns the version line printed by --version.
func String() string {
	return fmt.Sprintf("docgarden %s (commit %s, built %s)", Version, GitCommit, BuildTime)
}
