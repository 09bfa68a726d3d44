// Package version parses and compares VSS release versions and reads them
// from vehicle trees and schemas.
package version

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/sdv-edge/vehicle-model-go/pkg/vss"
)

// Current is the VSS release of the generated tree.
const Current = vss.Version

// ErrNoVersion is returned when a tree or schema does not state a version.
var ErrNoVersion = errors.New("no VSS version")

// VSSVersion is a parsed "major.minor" or "major.minor.patch" release.
type VSSVersion struct {
	Major uint32
	Minor uint32
	Patch uint32
}

// Parse parses a "major.minor" or "major.minor.patch" version string.
func Parse(s string) (VSSVersion, error) {
	parts := strings.Split(s, ".")
	if len(parts) < 2 || len(parts) > 3 {
		return VSSVersion{}, fmt.Errorf("invalid version %q: expected major.minor[.patch]", s)
	}

	var nums [3]uint32
	names := [3]string{"major", "minor", "patch"}
	for i, p := range parts {
		n, err := strconv.ParseUint(p, 10, 32)
		if err != nil || p == "" {
			return VSSVersion{}, fmt.Errorf("invalid version %q: bad %s component", s, names[i])
		}
		nums[i] = uint32(n)
	}
	return VSSVersion{Major: nums[0], Minor: nums[1], Patch: nums[2]}, nil
}

// MustParse is like Parse but panics on error.
func MustParse(s string) VSSVersion {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}

// CurrentVersion returns Current parsed.
func CurrentVersion() VSSVersion {
	return MustParse(Current)
}

// String returns "major.minor", with ".patch" appended when it is not zero.
func (v VSSVersion) String() string {
	if v.Patch == 0 {
		return fmt.Sprintf("%d.%d", v.Major, v.Minor)
	}
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// Compatible returns true if the other version has the same major version.
func (v VSSVersion) Compatible(other VSSVersion) bool {
	return v.Major == other.Major
}

// Less orders versions by major, minor and patch.
func (v VSSVersion) Less(other VSSVersion) bool {
	if v.Major != other.Major {
		return v.Major < other.Major
	}
	if v.Minor != other.Minor {
		return v.Minor < other.Minor
	}
	return v.Patch < other.Patch
}

// FromVehicle reads Vehicle.VersionVSS. Major and Minor must be set; an
// unset Patch reads as 0.
func FromVehicle(v *vss.Vehicle) (VSSVersion, error) {
	major, ok := v.VersionVSS.Major.Value()
	if !ok {
		return VSSVersion{}, fmt.Errorf("%w: %s unset", ErrNoVersion, v.VersionVSS.Major.Path())
	}
	minor, ok := v.VersionVSS.Minor.Value()
	if !ok {
		return VSSVersion{}, fmt.Errorf("%w: %s unset", ErrNoVersion, v.VersionVSS.Minor.Path())
	}
	patch, _ := v.VersionVSS.Patch.Value()
	return VSSVersion{Major: major, Minor: minor, Patch: patch}, nil
}

// Stamp writes ver into Vehicle.VersionVSS.
func Stamp(v *vss.Vehicle, ver VSSVersion) {
	v.VersionVSS.Major.Set(ver.Major)
	v.VersionVSS.Minor.Set(ver.Minor)
	v.VersionVSS.Patch.Set(ver.Patch)
}

// FromSchema reads the top-level version of a YAML schema.
func FromSchema(data []byte) (VSSVersion, error) {
	var head struct {
		Version string `yaml:"version"`
	}
	if err := yaml.Unmarshal(data, &head); err != nil {
		return VSSVersion{}, fmt.Errorf("parsing schema: %w", err)
	}
	if head.Version == "" {
		return VSSVersion{}, ErrNoVersion
	}
	return Parse(head.Version)
}
