package dynaudnorm

import (
	"errors"
	"testing"
)

func TestUnsupportedEnvironmentError_Unwrap(t *testing.T) {
	tests := []struct {
		kind EnvironmentErrorKind
		want error
	}{
		{KindToolchain, ErrUnsupportedToolchain},
		{KindToolchainVersion, ErrUnsupportedToolchainVersion},
		{KindArchitecture, ErrUnsupportedArchitecture},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			err := &UnsupportedEnvironmentError{Kind: tt.kind, Detail: "x"}
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v in chain of %v", tt.want, err)
			}
			if !errors.Is(err, ErrUnsupportedEnvironment) {
				t.Errorf("expected ErrUnsupportedEnvironment in chain of %v", err)
			}
		})
	}
}

func TestUnsupportedEnvironmentError_Message(t *testing.T) {
	err := &UnsupportedEnvironmentError{Kind: KindArchitecture, Detail: "GOARCH=arm64"}
	want := "unsupported build environment: architecture is not supported (GOARCH=arm64)"
	if err.Error() != want {
		t.Errorf("expected %q, got %q", want, err.Error())
	}

	bare := &UnsupportedEnvironmentError{Kind: KindToolchain}
	if bare.Error() != ErrUnsupportedToolchain.Error() {
		t.Errorf("expected %q, got %q", ErrUnsupportedToolchain.Error(), bare.Error())
	}
}

func TestEnvironmentErrorKind_String(t *testing.T) {
	if got := EnvironmentErrorKind(99).String(); got != "unknown" {
		t.Errorf("expected unknown, got %s", got)
	}
}
