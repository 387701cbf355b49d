package version

import (
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/require"
)

func withBuild(t *testing.T, version, commit, date string, info *debug.BuildInfo) {
	t.Helper()
	origVersion, origCommit, origDate, origRead := Version, Commit, Date, readBuildInfo
	t.Cleanup(func() {
		Version, Commit, Date, readBuildInfo = origVersion, origCommit, origDate, origRead
	})
	Version, Commit, Date = version, commit, date
	readBuildInfo = func() (*debug.BuildInfo, bool) { return info, info != nil }
}

func TestStringIncludesLdflagsMetadata(t *testing.T) {
	withBuild(t, "1.2.3", "abc123", "2026-02-18", &debug.BuildInfo{Main: debug.Module{Version: "v9.9.9"}})

	got := String()
	require.Contains(t, got, "suno 1.2.3")
	require.Contains(t, got, "commit=abc123")
	require.Contains(t, got, "date=2026-02-18")
	require.Contains(t, got, "go=")
	require.Contains(t, got, "arch=")
}

func TestStringFallsBackToBuildInfo(t *testing.T) {
	withBuild(t, "dev", "none", "unknown", &debug.BuildInfo{
		Main: debug.Module{Version: "v0.4.0"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "0123456789abcdef0123"},
		},
	})

	got := String()
	require.Contains(t, got, "suno v0.4.0")
	require.Contains(t, got, "commit=0123456789ab,")
}

func TestStringIgnoresDevelBuildInfo(t *testing.T) {
	withBuild(t, "dev", "none", "unknown", &debug.BuildInfo{Main: debug.Module{Version: "(devel)"}})
	require.Contains(t, String(), "suno dev (commit=none")

	withBuild(t, "dev", "none", "unknown", nil)
	require.Contains(t, String(), "suno dev (commit=none")
}
