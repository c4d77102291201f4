// Package buildinfo carries the version identity stamped into release
// binaries at link time.
package buildinfo

import "fmt"

var (
	// overridden via ldflags on release builds
	version = "<version>"
	commit  = "<commit>"
)

// Version returns the stamped release version, or "<version>" for
// development builds.
func Version() string {
	return version
}

func Commit() string {
	return commit
}

// IsDev reports whether this binary was built outside the release
// pipeline.
func IsDev() bool {
	return version == "<version>"
}

// UserAgent identifies this binary on every outbound API request.
func UserAgent() string {
	if IsDev() {
		return "nimbus-mcp/dev"
	}
	return fmt.Sprintf("nimbus-mcp/%s", version)
}
