//go:build amd64

package dynaudnorm

const targetArch = "x64"
