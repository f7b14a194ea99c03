package dynaudnorm

import "fmt"

// Fingerprint identifies the environment a binary was built in. It is a
// value type with no setters; copies are safe to share between goroutines.
type Fingerprint struct {
	version      SemanticVersion
	timestamp    Timestamp
	toolchain    ToolchainDescriptor
	compiler     string
	architecture string
	buildType    string
}

// Resolve classifies a toolchain and target architecture and combines them
// with a build timestamp. It fails if either classification fails.
func Resolve(tc ToolchainDescriptor, goarch string, ts Timestamp) (Fingerprint, error) {
	compiler, err := ClassifyToolchain(tc)
	if err != nil {
		return Fingerprint{}, err
	}
	arch, err := ClassifyArchitecture(goarch)
	if err != nil {
		return Fingerprint{}, err
	}
	return Fingerprint{
		version:      CurrentVersion(),
		timestamp:    ts,
		toolchain:    tc,
		compiler:     compiler,
		architecture: arch,
		buildType:    BuildRelease,
	}, nil
}

// MustResolve is like Resolve but panics if the environment is unsupported.
func MustResolve(tc ToolchainDescriptor, goarch string, ts Timestamp) Fingerprint {
	fp, err := Resolve(tc, goarch, ts)
	if err != nil {
		panic(err)
	}
	return fp
}

func (f Fingerprint) Version() SemanticVersion       { return f.version }
func (f Fingerprint) BuildDate() string              { return f.timestamp.Date }
func (f Fingerprint) BuildTime() string              { return f.timestamp.Time }
func (f Fingerprint) Timestamp() Timestamp           { return f.timestamp }
func (f Fingerprint) Toolchain() ToolchainDescriptor { return f.toolchain }
func (f Fingerprint) Compiler() string               { return f.compiler }
func (f Fingerprint) Architecture() string           { return f.architecture }
func (f Fingerprint) BuildType() string              { return f.buildType }

// Debug reports whether the binary was built for debugging rather than
// release.
func (f Fingerprint) Debug() bool { return f.buildType == BuildDebug }

func (f Fingerprint) withBuildType(bt string) Fingerprint {
	f.buildType = bt
	return f
}

func (f Fingerprint) String() string {
	return fmt.Sprintf("v%s built: %s %s, compiler: %s, arch: %s, %s",
		f.version, f.timestamp.Date, f.timestamp.Time, f.compiler, f.architecture, f.buildType)
}
