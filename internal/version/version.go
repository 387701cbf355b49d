// Package version carries build metadata injected with -ldflags.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// readBuildInfo is swapped in tests.
var readBuildInfo = debug.ReadBuildInfo

// resolved prefers ldflags values and falls back to what `go install`
// records in the binary.
func resolved() (version, commit string) {
	version, commit = Version, Commit
	info, ok := readBuildInfo()
	if !ok {
		return version, commit
	}
	if version == "dev" && info.Main.Version != "" && info.Main.Version != "(devel)" {
		version = info.Main.Version
	}
	if commit == "none" {
		for _, setting := range info.Settings {
			if setting.Key == "vcs.revision" && setting.Value != "" {
				commit = setting.Value
				if len(commit) > 12 {
					commit = commit[:12]
				}
			}
		}
	}
	return version, commit
}

// String renders the build metadata for `suno version`.
func String() string {
	version, commit := resolved()
	return fmt.Sprintf("suno %s (commit=%s, date=%s, go=%s, arch=%s/%s)",
		version, commit, Date, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
