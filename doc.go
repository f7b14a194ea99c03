// Package dynaudnorm identifies the build of the Dynamic Audio Normalizer
// library: its release version, the compiler that produced it, the target
// architecture and the build timestamp.
//
// # Fingerprint
//
// The fingerprint is resolved once while the package initializes and is
// read-only afterwards; [Environment] returns a copy that is safe to share.
// The compiler label comes from an allow-list. A toolchain, compiler
// release or GOARCH that is not on it is rejected:
//
//   - GOARCH other than amd64 or 386 does not compile.
//   - With cgo, an unknown C compiler or an Intel compiler older than 10.0
//     does not compile.
//   - Any other toolchain outside the allow-list makes package
//     initialization panic with an [*UnsupportedEnvironmentError]. Release
//     builds catch this earlier by running "dynaudnorm-env check" (see the
//     Makefile).
//
// With cgo enabled the label describes the C compiler, read from its
// predefined macros. Pure-Go builds describe the Go toolchain.
//
// # Timestamp
//
// The build date and time are opaque strings. They are taken from linker
// flags when present:
//
//	go build -ldflags "-X 'github.com/iwen-conf/go-dynaudnorm.buildDate=Jan  1 2017' \
//	                   -X 'github.com/iwen-conf/go-dynaudnorm.buildTime=12:00:00'"
//
// and otherwise from the C compiler, the VCS commit time, or "unknown".
// The C compiler's stamp is taken when cgo compiles this package, and the
// go build cache reuses that object until the package or its toolchain
// changes; it can predate the link by days. Release builds therefore go
// through "make build", which always sets the linker flags.
//
// [Fingerprint.BuildType] reports "debug" for race-enabled builds or builds
// with -gcflags -N or -l, and "release" otherwise.
//
// # Reports
//
// [CollectReport] extends the fingerprint with module, binary and host
// details for "about" screens and crash reports; [Reporter] posts such a
// report to a diagnostics collector.
package dynaudnorm
