package dynaudnorm

import (
	"fmt"
	"go/version"
	"math"
	"regexp"
	"strconv"
)

// ToolchainDescriptor is the compiler's self-identification for one build.
// Which fields matter depends on Family:
//
//	FamilyIntel      Version (__INTEL_COMPILER, e.g. 1600)
//	FamilyMicrosoft  Version (_MSC_VER) and FullVersion (_MSC_FULL_VER)
//	FamilyGNU        Major, Minor, Patch (__GNUC__ triple)
//	FamilyGo         GoVersion (runtime.Version())
type ToolchainDescriptor struct {
	Family      Family
	Version     int
	FullVersion int
	Major       int
	Minor       int
	Patch       int
	GoVersion   string
}

// minGoRelease is the oldest Go toolchain accepted for pure-Go builds. It
// tracks the go directive in go.mod.
const minGoRelease = "go1.24.11"

type iclThreshold struct {
	min   int
	label string
}

// Ordered from highest to lowest; the first threshold not above the
// version wins.
var iclThresholds = []iclThreshold{
	{1600, "ICL 16.x"},
	{1500, "ICL 15.x"},
	{1400, "ICL 14.x"},
	{1300, "ICL 13.x"},
	{1200, "ICL 12.x"},
	{1100, "ICL 11.x"},
	{1000, "ICL 10.x"},
}

// msvcBuild matches an inclusive _MSC_FULL_VER range.
type msvcBuild struct {
	min, max int
	label    string
}

func exact(full int, label string) msvcBuild { return msvcBuild{full, full, label} }

// Keyed by _MSC_VER. Within a release the entries are tried in order.
var msvcReleases = map[int][]msvcBuild{
	1910: {
		{191025017, 191025019, "MSVC 2017.2"},
	},
	1900: {
		exact(190023026, "MSVC 2015"),
		exact(190023506, "MSVC 2015.1"),
		exact(190023918, "MSVC 2015.2"),
		{190024210, 190024215, "MSVC 2015.3"},
	},
	1800: {
		exact(180021005, "MSVC 2013"),
		exact(180030501, "MSVC 2013.2"),
		exact(180030723, "MSVC 2013.3"),
		exact(180031101, "MSVC 2013.4"),
		exact(180040629, "MSVC 2013.5"),
	},
	1700: {
		exact(170050727, "MSVC 2012"),
		exact(170051106, "MSVC 2012.1"),
		exact(170060315, "MSVC 2012.2"),
		exact(170060610, "MSVC 2012.3"),
		exact(170061030, "MSVC 2012.4"),
	},
	1600: {
		{160040219, math.MaxInt, "MSVC 2010-SP1"},
		{math.MinInt, 160040218, "MSVC 2010"},
	},
	1500: {
		{150030729, math.MaxInt, "MSVC 2008-SP1"},
		{math.MinInt, 150030728, "MSVC 2008"},
	},
}

// ClassifyToolchain maps a descriptor to exactly one compiler label, or
// fails with an *UnsupportedEnvironmentError. It never guesses.
func ClassifyToolchain(d ToolchainDescriptor) (string, error) {
	switch d.Family {
	case FamilyIntel:
		return classifyIntel(d.Version)
	case FamilyMicrosoft:
		return classifyMicrosoft(d.Version, d.FullVersion)
	case FamilyGNU:
		return classifyGNU(d.Major, d.Minor, d.Patch)
	case FamilyGo:
		return classifyGo(d.GoVersion)
	default:
		return "", unsupported(KindToolchain, "family %s", d.Family)
	}
}

func classifyIntel(v int) (string, error) {
	for _, t := range iclThresholds {
		if v >= t.min {
			return t.label, nil
		}
	}
	return "", unsupported(KindToolchain, "__INTEL_COMPILER=%d", v)
}

func classifyMicrosoft(msc, full int) (string, error) {
	builds, ok := msvcReleases[msc]
	if !ok {
		return "", unsupported(KindToolchain, "_MSC_VER=%d", msc)
	}
	for _, b := range builds {
		if full >= b.min && full <= b.max {
			return b.label, nil
		}
	}
	return "", unsupported(KindToolchainVersion, "_MSC_VER=%d _MSC_FULL_VER=%d", msc, full)
}

func classifyGNU(major, minor, patch int) (string, error) {
	if major < 0 || minor < 0 || patch < 0 {
		return "", unsupported(KindToolchainVersion, "__GNUC__=%d.%d.%d", major, minor, patch)
	}
	return fmt.Sprintf("GCC %d.%d.%d", major, minor, patch), nil
}

func classifyGo(v string) (string, error) {
	if !version.IsValid(v) {
		return "", unsupported(KindToolchainVersion, "go version %q", v)
	}
	if version.Compare(v, minGoRelease) < 0 {
		return "", unsupported(KindToolchainVersion, "go version %s is older than %s", v, minGoRelease)
	}
	return "Go " + v[len("go"):], nil
}

var gccgoVersionRE = regexp.MustCompile(`\)\s*(\d+)\.(\d+)\.(\d+)\s*$`)

// gccgoDescriptor extracts the trailing GCC triple from a gccgo
// runtime.Version() string such as "go1.18 gccgo (GCC) 12.2.0" or
// "go1.18 gccgo (Debian 12.2.0-14) 12.2.0".
func gccgoDescriptor(runtimeVersion string) ToolchainDescriptor {
	m := gccgoVersionRE.FindStringSubmatch(runtimeVersion)
	if m == nil {
		return ToolchainDescriptor{Family: FamilyGNU, Major: -1, Minor: -1, Patch: -1}
	}
	major, _ := strconv.Atoi(m[1])
	minor, _ := strconv.Atoi(m[2])
	patch, _ := strconv.Atoi(m[3])
	return ToolchainDescriptor{Family: FamilyGNU, Major: major, Minor: minor, Patch: patch}
}

// goToolchainDescriptor describes the Go compiler itself, for builds that
// link no native code.
func goToolchainDescriptor(compiler, runtimeVersion string) ToolchainDescriptor {
	switch compiler {
	case "gc":
		return ToolchainDescriptor{Family: FamilyGo, GoVersion: runtimeVersion}
	case "gccgo":
		return gccgoDescriptor(runtimeVersion)
	default:
		return ToolchainDescriptor{Family: FamilyUnknown}
	}
}
