// Package branch classifies git refs into the two release channels the CI
// matrix distinguishes: stable maintenance branches and the development branch.
package branch

import "strings"

// stableMarker is the naming convention for stable maintenance branches
// (e.g. "haproxy-2.8"). Anything else is treated as development.
const stableMarker = "haproxy-"

// Runner images per channel. Stable branches pin their images so that a
// point release never moves under a maintenance branch; development tracks
// whatever GitHub currently aliases as latest.
const (
	LinuxStable = "ubuntu-22.04"
	LinuxDevel  = "ubuntu-latest"
	MacOSStable = "macos-12"
	MacOSDevel  = "macos-latest"
)

// Stable reports whether ref names a stable maintenance branch.
func Stable(ref string) bool {
	return strings.Contains(ref, stableMarker)
}

// LinuxOS returns the runner image for the Linux leg of the matrix.
func LinuxOS(ref string) string {
	if Stable(ref) {
		return LinuxStable
	}

	return LinuxDevel
}

// MacOS returns the runner image for the macOS leg of the matrix.
func MacOS(ref string) string {
	if Stable(ref) {
		return MacOSStable
	}

	return MacOSDevel
}
