// Package lccollect holds application-level metadata shared by the
// CLI and the library packages.
package lccollect

var (
	// Version is the application version, set by build flags.
	Version = "v0.1.0"

	// Build is the build timestamp, set by build flags.
	Build = "n/a"
)
