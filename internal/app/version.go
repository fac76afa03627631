package app

import (
	"runtime/debug"
	"strings"
)

// Build metadata, overridden with -ldflags "-X .../internal/app.Version=v1.2.0".
var (
	Version   = "dev"
	Commit    = ""
	BuildTime = ""
)

// BuildVersion describes the running binary for the startup log line. When
// ldflags left Commit or BuildTime empty they are read from the VCS stamp the
// Go toolchain embeds.
func BuildVersion() string {
	commit, built := Commit, BuildTime
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			switch {
			case s.Key == "vcs.revision" && commit == "":
				commit = s.Value
			case s.Key == "vcs.time" && built == "":
				built = s.Value
			}
		}
	}
	return formatVersion(Version, commit, built)
}

func formatVersion(version, commit, built string) string {
	if len(commit) > 12 {
		commit = commit[:12]
	}
	parts := []string{version}
	if commit != "" {
		parts = append(parts, "commit "+commit)
	}
	if built != "" {
		parts = append(parts, "built "+built)
	}
	return strings.Join(parts, ", ")
}
