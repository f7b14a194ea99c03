package dynaudnorm

import (
	"runtime/debug"
	"strings"
)

// Set by the linker:
//
//	go build -ldflags "-X 'github.com/iwen-conf/go-dynaudnorm.buildDate=$(date -u '+%b %e %Y')' \
//	                   -X 'github.com/iwen-conf/go-dynaudnorm.buildTime=$(date -u '+%H:%M:%S')'"
var (
	buildDate string
	buildTime string
)

const unknownTimestamp = "unknown"

// Timestamp is the build date and time exactly as the build reported them.
// Neither string is parsed or validated.
type Timestamp struct {
	Date string
	Time string
}

// resolveTimestamp picks the first complete source: linker flags, then the
// C compiler, then the VCS commit time. It always returns non-empty strings.
func resolveTimestamp(linker, compiler Timestamp, vcsTime string) Timestamp {
	if linker.Date != "" && linker.Time != "" {
		return linker
	}
	if compiler.Date != "" && compiler.Time != "" {
		return compiler
	}
	if date, clock, ok := strings.Cut(vcsTime, "T"); ok && date != "" && clock != "" {
		return Timestamp{Date: date, Time: clock}
	}
	return Timestamp{Date: unknownTimestamp, Time: unknownTimestamp}
}

func vcsTime() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	for _, s := range info.Settings {
		if s.Key == "vcs.time" {
			return s.Value
		}
	}
	return ""
}

func captureTimestamp() Timestamp {
	date, clock := compilerTimestamp()
	return resolveTimestamp(
		Timestamp{Date: buildDate, Time: buildTime},
		Timestamp{Date: date, Time: clock},
		vcsTime(),
	)
}
