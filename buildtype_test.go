package dynaudnorm

import (
	"runtime/debug"
	"testing"
)

func TestBuildTypeFromSettings(t *testing.T) {
	tests := []struct {
		name     string
		settings []debug.BuildSetting
		want     string
	}{
		{"no settings", nil, BuildRelease},
		{"plain build", []debug.BuildSetting{{Key: "-compiler", Value: "gc"}, {Key: "CGO_ENABLED", Value: "1"}}, BuildRelease},
		{"race", []debug.BuildSetting{{Key: "-race", Value: "true"}}, BuildDebug},
		{"race off", []debug.BuildSetting{{Key: "-race", Value: "false"}}, BuildRelease},
		{"delve flags", []debug.BuildSetting{{Key: "-gcflags", Value: "all=-N -l"}}, BuildDebug},
		{"no inlining", []debug.BuildSetting{{Key: "-gcflags", Value: "-l"}}, BuildDebug},
		{"unrelated gcflags", []debug.BuildSetting{{Key: "-gcflags", Value: "-m=2"}}, BuildRelease},
		{"ldflags only", []debug.BuildSetting{{Key: "-ldflags", Value: "-N -l"}}, BuildRelease},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := buildTypeFromSettings(tt.settings); got != tt.want {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestEnvironment_BuildType(t *testing.T) {
	env := Environment()
	if env.BuildType() != captureBuildType() {
		t.Errorf("expected %s, got %s", captureBuildType(), env.BuildType())
	}
	if env.Debug() != (env.BuildType() == BuildDebug) {
		t.Errorf("Debug() disagrees with BuildType() %s", env.BuildType())
	}
}
