package dynaudnorm

import (
	"runtime/debug"
	"strings"
)

// Build types reported by Fingerprint.BuildType.
const (
	BuildRelease = "release"
	BuildDebug   = "debug"
)

// buildTypeFromSettings reports BuildDebug for binaries built with the race
// detector or with optimizations (-N) or inlining (-l) turned off.
func buildTypeFromSettings(settings []debug.BuildSetting) string {
	for _, s := range settings {
		switch s.Key {
		case "-race":
			if s.Value == "true" {
				return BuildDebug
			}
		case "-gcflags":
			for _, f := range strings.Fields(s.Value) {
				// Package patterns prefix the first flag: "all=-N".
				if _, flag, ok := strings.Cut(f, "="); ok {
					f = flag
				}
				if f == "-N" || f == "-l" {
					return BuildDebug
				}
			}
		}
	}
	return BuildRelease
}

func captureBuildType() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return BuildRelease
	}
	return buildTypeFromSettings(info.Settings)
}
