// Package version holds build metadata injected at release time via -ldflags.
package version

var (
	// Version is the semantic version of the build
	Version = "dev"

	// Commit is the git commit the binary was built from
	Commit = "none"

	// BuildTime is the UTC timestamp of the build
	BuildTime = "unknown"
)
