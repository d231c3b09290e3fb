// Package misc keeps program identity values set at build time.
package misc

// Set with -ldflags "-X tpledit/misc.version=... -X tpledit/misc.gitHash=..."
var (
	version = "dev"
	gitHash = "unknown"
)

const appName = "tpledit"

// GetVersion returns program version.
func GetVersion() string {
	return version
}

// GetGitHash returns git commit program was built from.
func GetGitHash() string {
	return gitHash
}

// GetAppName returns program name, used to name logs and reports.
func GetAppName() string {
	return appName
}
