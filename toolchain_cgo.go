//go:build cgo

package dynaudnorm

/*
#if defined(__INTEL_COMPILER)
#if (__INTEL_COMPILER < 1000)
#error Compiler is not supported!
#endif
#define DYNAUDNORM_FAMILY 1
#define DYNAUDNORM_VERSION __INTEL_COMPILER
#elif defined(_MSC_VER)
#define DYNAUDNORM_FAMILY 2
#define DYNAUDNORM_VERSION _MSC_VER
#define DYNAUDNORM_FULL_VERSION _MSC_FULL_VER
#elif defined(__GNUC__)
#define DYNAUDNORM_FAMILY 3
#define DYNAUDNORM_MAJOR __GNUC__
#define DYNAUDNORM_MINOR __GNUC_MINOR__
#define DYNAUDNORM_PATCH __GNUC_PATCHLEVEL__
#else
#error Compiler is not supported!
#endif

#ifndef DYNAUDNORM_VERSION
#define DYNAUDNORM_VERSION 0
#endif
#ifndef DYNAUDNORM_FULL_VERSION
#define DYNAUDNORM_FULL_VERSION 0
#endif
#ifndef DYNAUDNORM_MAJOR
#define DYNAUDNORM_MAJOR 0
#define DYNAUDNORM_MINOR 0
#define DYNAUDNORM_PATCH 0
#endif

enum {
	dynaudnorm_family = DYNAUDNORM_FAMILY,
	dynaudnorm_version = DYNAUDNORM_VERSION,
	dynaudnorm_full_version = DYNAUDNORM_FULL_VERSION,
	dynaudnorm_major = DYNAUDNORM_MAJOR,
	dynaudnorm_minor = DYNAUDNORM_MINOR,
	dynaudnorm_patch = DYNAUDNORM_PATCH
};

static const char *dynaudnorm_build_date(void) { return __DATE__; }
static const char *dynaudnorm_build_time(void) { return __TIME__; }
*/
import "C"

// probeToolchain reports the C compiler that built the native half of this
// package. The values are fixed when cgo compiles the preamble above; an
// unknown vendor, or an Intel compiler below 10.0, fails there. MSVC
// release tables are checked by ClassifyToolchain.
func probeToolchain() ToolchainDescriptor {
	return ToolchainDescriptor{
		Family:      Family(C.dynaudnorm_family),
		Version:     int(C.dynaudnorm_version),
		FullVersion: int(C.dynaudnorm_full_version),
		Major:       int(C.dynaudnorm_major),
		Minor:       int(C.dynaudnorm_minor),
		Patch:       int(C.dynaudnorm_patch),
	}
}

func compilerTimestamp() (date, time string) {
	return C.GoString(C.dynaudnorm_build_date()), C.GoString(C.dynaudnorm_build_time())
}
