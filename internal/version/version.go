// Package version provides build-time version information for graybmp.
// Version information is injected at build time using ldflags.
package version

import (
	"fmt"
	"runtime"
)

var (
	// Version is the semantic version of the application.
	// Injected at build time via: -ldflags "-X github.com/anas-shakeel/graybmp/internal/version.Version=x.y.z".
	Version = "dev"

	// Commit is the git commit hash of the build.
	Commit = "unknown"
)

// String returns a human-readable version string.
func String() string {
	platform := fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH)
	if len(Commit) >= 8 {
		return fmt.Sprintf("graybmp version %s (commit: %s, %s, %s)", Version, Commit[:8], runtime.Version(), platform)
	}
	return fmt.Sprintf("graybmp version %s (%s, %s)", Version, runtime.Version(), platform)
}
