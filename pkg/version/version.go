package version

import (
	"runtime/debug"
)

var (
	// Version is the semantic version of the build.
	Version = "0.0.0"

	// Revision is the VCS revision of the build.
	Revision = ""
)

//nolint:gochecknoinits // Build info is only available at runtime.
func init() {
	info, ok := debug.ReadBuildInfo()
	if ok {
		fromBuildInfo(info)
	}

	if Revision == "" {
		Revision = "unknown"
	}
}

func fromBuildInfo(info *debug.BuildInfo) {
	if Version == "0.0.0" && info.Main.Version != "" && info.Main.Version != "(devel)" {
		Version = info.Main.Version
	}

	if Revision == "" {
		for _, s := range info.Settings {
			if s.Key == "vcs.revision" {
				Revision = s.Value
			}
		}
	}
}

// String returns the version and revision.
func String() string {
	return Version + "+" + Revision
}
