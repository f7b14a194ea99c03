package dynaudnorm

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedEnvironment      = errors.New("unsupported build environment")
	ErrUnsupportedToolchain        = fmt.Errorf("%w: compiler is not supported", ErrUnsupportedEnvironment)
	ErrUnsupportedToolchainVersion = fmt.Errorf("%w: compiler version is not supported yet", ErrUnsupportedEnvironment)
	ErrUnsupportedArchitecture     = fmt.Errorf("%w: architecture is not supported", ErrUnsupportedEnvironment)
	ErrInvalidServerResponse       = errors.New("invalid server response")
	ErrEndpointRequired            = errors.New("endpoint is required")
)

// EnvironmentErrorKind tells which part of the build environment was rejected.
type EnvironmentErrorKind int

const (
	KindToolchain EnvironmentErrorKind = iota
	KindToolchainVersion
	KindArchitecture
)

func (k EnvironmentErrorKind) String() string {
	switch k {
	case KindToolchain:
		return "toolchain"
	case KindToolchainVersion:
		return "toolchain version"
	case KindArchitecture:
		return "architecture"
	default:
		return "unknown"
	}
}

// UnsupportedEnvironmentError reports a toolchain or target that is not on the
// allow-list. It unwraps to the matching sentinel.
type UnsupportedEnvironmentError struct {
	Kind   EnvironmentErrorKind
	Detail string
}

func (e *UnsupportedEnvironmentError) Error() string {
	if e.Detail == "" {
		return e.sentinel().Error()
	}
	return e.sentinel().Error() + " (" + e.Detail + ")"
}

func (e *UnsupportedEnvironmentError) Unwrap() error {
	return e.sentinel()
}

func (e *UnsupportedEnvironmentError) sentinel() error {
	switch e.Kind {
	case KindToolchainVersion:
		return ErrUnsupportedToolchainVersion
	case KindArchitecture:
		return ErrUnsupportedArchitecture
	default:
		return ErrUnsupportedToolchain
	}
}

func unsupported(kind EnvironmentErrorKind, format string, args ...any) error {
	return &UnsupportedEnvironmentError{Kind: kind, Detail: fmt.Sprintf(format, args...)}
}
