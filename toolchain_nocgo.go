//go:build !cgo

package dynaudnorm

import "runtime"

func probeToolchain() ToolchainDescriptor {
	return goToolchainDescriptor(runtime.Compiler, runtime.Version())
}

// Pure-Go builds have no compiler-supplied timestamp.
func compilerTimestamp() (date, time string) {
	return "", ""
}
