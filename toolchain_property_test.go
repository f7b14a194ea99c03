package dynaudnorm

import (
	"errors"
	"fmt"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestProperty_IntelThresholds(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("highest matching threshold wins", prop.ForAll(
		func(v int) bool {
			label, err := ClassifyToolchain(ToolchainDescriptor{Family: FamilyIntel, Version: v})
			if err != nil {
				return false
			}
			generation := v / 100
			if generation > 16 {
				generation = 16
			}
			return label == fmt.Sprintf("ICL %d.x", generation)
		},
		gen.IntRange(1000, 99999),
	))

	properties.Property("versions below the floor fail", prop.ForAll(
		func(v int) bool {
			label, err := ClassifyToolchain(ToolchainDescriptor{Family: FamilyIntel, Version: v})
			return label == "" && errors.Is(err, ErrUnsupportedToolchain)
		},
		gen.IntRange(-100000, 999),
	))

	properties.TestingRun(t)
}

func TestProperty_GNUSynthesizesLabel(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("label is built from the triple", prop.ForAll(
		func(major, minor, patch int) bool {
			label, err := ClassifyToolchain(ToolchainDescriptor{Family: FamilyGNU, Major: major, Minor: minor, Patch: patch})
			return err == nil && label == fmt.Sprintf("GCC %d.%d.%d", major, minor, patch)
		},
		gen.IntRange(0, 99),
		gen.IntRange(0, 99),
		gen.IntRange(0, 99),
	))

	properties.TestingRun(t)
}

func TestProperty_MicrosoftFailsClosed(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("unlisted _MSC_VER is rejected", prop.ForAll(
		func(msc, full int) bool {
			label, err := ClassifyToolchain(ToolchainDescriptor{Family: FamilyMicrosoft, Version: msc, FullVersion: full})
			return label == "" && errors.Is(err, ErrUnsupportedToolchain)
		},
		gen.IntRange(0, 3000).SuchThat(func(v int) bool {
			_, listed := msvcReleases[v]
			return !listed
		}),
		gen.IntRange(0, 999999999),
	))

	properties.Property("unlisted 2015 builds are rejected", prop.ForAll(
		func(full int) bool {
			label, err := ClassifyToolchain(ToolchainDescriptor{Family: FamilyMicrosoft, Version: 1900, FullVersion: full})
			return label == "" && errors.Is(err, ErrUnsupportedToolchainVersion)
		},
		gen.IntRange(190000000, 190099999).SuchThat(func(v int) bool {
			switch {
			case v == 190023026, v == 190023506, v == 190023918:
				return false
			case v >= 190024210 && v <= 190024215:
				return false
			}
			return true
		}),
	))

	properties.TestingRun(t)
}

func TestProperty_Deterministic(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("same descriptor, same outcome", prop.ForAll(
		func(family, v, full, major int) bool {
			tc := ToolchainDescriptor{
				Family:      Family(family),
				Version:     v,
				FullVersion: full,
				Major:       major,
				GoVersion:   "go1.25.3",
			}
			l1, err1 := ClassifyToolchain(tc)
			l2, err2 := ClassifyToolchain(tc)
			if (err1 == nil) != (err2 == nil) || l1 != l2 {
				return false
			}
			// Exactly one of label or error.
			return (l1 == "") == (err1 != nil)
		},
		gen.IntRange(0, 5),
		gen.IntRange(900, 2000),
		gen.IntRange(150000000, 192000000),
		gen.IntRange(-1, 20),
	))

	properties.TestingRun(t)
}
