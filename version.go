package dynaudnorm

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// Release version of the library. Bump these by hand when cutting a release.
const (
	VersionMajor uint = 2
	VersionMinor uint = 10
	VersionPatch uint = 3
)

// SemanticVersion is a major.minor.patch release identifier.
type SemanticVersion struct {
	Major uint
	Minor uint
	Patch uint
}

// CurrentVersion returns the version of this library.
func CurrentVersion() SemanticVersion {
	return SemanticVersion{Major: VersionMajor, Minor: VersionMinor, Patch: VersionPatch}
}

func (v SemanticVersion) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// Semver returns v as a *semver.Version for comparisons.
func (v SemanticVersion) Semver() *semver.Version {
	return semver.New(uint64(v.Major), uint64(v.Minor), uint64(v.Patch), "", "")
}

// Satisfies reports whether v meets a constraint such as "^2.10" or ">= 2.9, < 3".
func (v SemanticVersion) Satisfies(constraint string) (bool, error) {
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return false, fmt.Errorf("parse constraint %q: %w", constraint, err)
	}
	return c.Check(v.Semver()), nil
}

// VersionInfo returns a one-line description of this build.
func VersionInfo() string {
	env := Environment()
	return fmt.Sprintf("%s (built %s %s, compiler: %s, arch: %s, %s)",
		env.Version(), env.BuildDate(), env.BuildTime(), env.Compiler(), env.Architecture(), env.BuildType())
}
