package version

import (
	"fmt"

	"github.com/fatih/color"
)

// Version information for the nmscript CLI.
// These variables can be overridden at build time via -ldflags.

const (
	major = 0
	minor = 1
	patch = 0
)

var (
	versionMajorColor = color.New(color.FgYellow, color.Bold)
	versionMinorColor = color.New(color.FgGreen, color.Bold)
	versionPatchColor = color.New(color.FgBlue, color.Bold)

	// Version is the semantic version of the CLI, colorized for terminals.
	Version = versionMajorColor.Sprintf("%d", major) + "." +
		versionMinorColor.Sprintf("%d", minor) + "." +
		versionPatchColor.Sprintf("%d", patch)

	// GitCommit is an optional git commit hash.
	GitCommit = ""

	// BuildDate is an optional build date in ISO-8601.
	BuildDate = ""
)

// Plain returns the version without ANSI color codes.
func Plain() string {
	return fmt.Sprintf("%d.%d.%d", major, minor, patch)
}
