package dynaudnorm

import "runtime"

// environment is resolved during package initialization and never written
// again. A toolchain missing from the allow-list stops the program here.
var environment = MustResolve(probeToolchain(), runtime.GOARCH, captureTimestamp()).
	withBuildType(captureBuildType())

// The target label comes from a build-constrained file, so an unsupported
// GOARCH never compiles. Both classifications must agree.
func init() {
	if environment.architecture != targetArch {
		panic(unsupported(KindArchitecture, "GOARCH=%s classified as %s, built for %s",
			runtime.GOARCH, environment.architecture, targetArch))
	}
}

// Environment returns the fingerprint of the running binary.
func Environment() Fingerprint {
	return environment
}
