// Package version holds the rtfdoc release metadata shown by --version.
package version

import "fmt"

// Set by the release build with -ldflags "-X".
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// String formats the metadata for the root command's version template.
func String() string {
	return fmt.Sprintf("%s (commit %s, built %s)", Version, Commit, Date)
}
