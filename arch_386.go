//go:build 386

package dynaudnorm

const targetArch = "x86"
