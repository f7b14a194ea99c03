package dynaudnorm

import (
	"errors"
	"runtime"
	"testing"
)

func TestClassifyArchitecture(t *testing.T) {
	tests := []struct {
		goarch string
		want   string
	}{
		{"amd64", "x64"},
		{"386", "x86"},
	}

	for _, tt := range tests {
		t.Run(tt.goarch, func(t *testing.T) {
			got, err := ClassifyArchitecture(tt.goarch)
			if err != nil {
				t.Fatalf("ClassifyArchitecture(%q): %v", tt.goarch, err)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestClassifyArchitecture_Unsupported(t *testing.T) {
	for _, goarch := range []string{"arm64", "arm", "riscv64", "ppc64le", "wasm", "x86_64", ""} {
		t.Run(goarch, func(t *testing.T) {
			label, err := ClassifyArchitecture(goarch)
			if label != "" {
				t.Errorf("expected no label, got %q", label)
			}
			if !errors.Is(err, ErrUnsupportedArchitecture) {
				t.Errorf("expected ErrUnsupportedArchitecture, got %v", err)
			}
		})
	}
}

func TestTargetArchMatchesClassifier(t *testing.T) {
	got, err := ClassifyArchitecture(runtime.GOARCH)
	if err != nil {
		t.Fatalf("ClassifyArchitecture(%q): %v", runtime.GOARCH, err)
	}
	if got != targetArch {
		t.Errorf("build-constrained label %q disagrees with classifier %q", targetArch, got)
	}
}
