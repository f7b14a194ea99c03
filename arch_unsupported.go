//go:build !amd64 && !386

// Only amd64 and 386 targets are supported. This file compiles on every
// other GOARCH and stops the build there.

package dynaudnorm

var _ = architecture_is_not_supported
