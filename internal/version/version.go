// Package version carries build metadata for the omnicode CLI.
package version

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/fatih/color"
)

// These variables can be overridden at build time via -ldflags.
var (
	// Version is the semantic version of the CLI.
	Version = "0.1.0-dev"

	// GitCommit is an optional git commit hash.
	GitCommit = ""

	// BuildDate is an optional build date in ISO-8601.
	BuildDate = ""
)

var (
	majorColor = color.New(color.FgYellow, color.Bold)
	minorColor = color.New(color.FgGreen, color.Bold)
	patchColor = color.New(color.FgBlue, color.Bold)
)

// Colored renders Version with each numeric component highlighted. Any
// pre-release suffix is kept as is.
func Colored() string {
	core, suffix, _ := strings.Cut(Version, "-")
	parts := strings.SplitN(core, ".", 3)
	if len(parts) != 3 {
		return Version
	}
	out := majorColor.Sprint(parts[0]) + "." + minorColor.Sprint(parts[1]) + "." + patchColor.Sprint(parts[2])
	if suffix != "" {
		out += "-" + suffix
	}
	return out
}

// Short returns the first 7 characters of GitCommit.
func Short() string {
	if len(GitCommit) > 7 {
		return GitCommit[:7]
	}
	return GitCommit
}

// Describe is the line printed by `omnicode version`.
func Describe(name string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s", name, Colored())
	if c := Short(); c != "" {
		fmt.Fprintf(&b, " (%s)", c)
	}
	if BuildDate != "" {
		fmt.Fprintf(&b, " built %s", BuildDate)
	}
	fmt.Fprintf(&b, " %s/%s", runtime.GOOS, runtime.GOARCH)
	return b.String()
}
