package dynaudnorm

import "strings"

// Family identifies a compiler vendor.
type Family int

const (
	FamilyUnknown Family = iota
	FamilyIntel
	FamilyMicrosoft
	FamilyGNU
	FamilyGo
)

func (f Family) String() string {
	switch f {
	case FamilyIntel:
		return "icl"
	case FamilyMicrosoft:
		return "msvc"
	case FamilyGNU:
		return "gnu"
	case FamilyGo:
		return "go"
	default:
		return "unknown"
	}
}

// ParseFamily maps a family name (as printed by String, or a common alias)
// back to its Family. Unrecognized names yield FamilyUnknown.
func ParseFamily(name string) Family {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "icl", "intel", "icc":
		return FamilyIntel
	case "msvc", "microsoft", "cl":
		return FamilyMicrosoft
	case "gnu", "gcc":
		return FamilyGNU
	case "go", "gc":
		return FamilyGo
	default:
		return FamilyUnknown
	}
}
