// Package inspect navigates and edits a vehicle tree by path.
//
// The inspect package offers a unified interface for:
//   - Parsing path expressions (e.g., "Cabin.Seat.Row1.Pos1.Position")
//   - Resolving paths to nodes, with a cache for repeated lookups
//   - Reading and writing data points from strings
//   - Formatting output for display
package inspect

import (
	"errors"
	"strings"

	"github.com/sdv-edge/vehicle-model-go/pkg/vss"
)

// Path errors.
var (
	ErrEmptyPath   = errors.New("empty path")
	ErrInvalidPath = errors.New("invalid path format")
)

// Path is a parsed tree path relative to the root.
type Path struct {
	// Segments are the node names below the root. Empty for the root.
	Segments []string

	// Raw stores the original input string.
	Raw string
}

// ParsePath parses a path expression.
//
// Supported formats:
//   - "Vehicle.Cabin.Seat.Row1.Pos1.Position" - absolute, dotted
//   - "Cabin.Seat.Row1.Pos1.Position" - the root name is optional
//   - "Cabin/Seat/Row1/Pos1/Position" - slash separators
//   - "Vehicle" or "." - the root
//
// Collection instances are addressed by their member names (Row1, Pos2,
// Left).
func ParsePath(input string) (*Path, error) {
	raw := input
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, ErrEmptyPath
	}
	if input == "." || input == "/" {
		return &Path{Raw: raw}, nil
	}

	normalized := strings.ReplaceAll(input, "/", ".")
	parts := strings.Split(normalized, ".")
	for _, part := range parts {
		if !validSegment(part) {
			return nil, ErrInvalidPath
		}
	}
	if parts[0] == vss.RootName {
		parts = parts[1:]
	}
	return &Path{Segments: parts, Raw: raw}, nil
}

func validSegment(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
		default:
			return false
		}
	}
	return true
}

// IsRoot reports whether the path addresses the root.
func (p *Path) IsRoot() bool {
	return len(p.Segments) == 0
}

// Relative returns the dotted path below the root.
func (p *Path) Relative() string {
	return strings.Join(p.Segments, ".")
}

// String returns the absolute dotted path.
func (p *Path) String() string {
	if p.IsRoot() {
		return vss.RootName
	}
	return vss.RootName + "." + p.Relative()
}

// Parent returns the path one level up. The parent of the root is the root.
func (p *Path) Parent() *Path {
	if p.IsRoot() {
		return p
	}
	return &Path{Segments: p.Segments[:len(p.Segments)-1]}
}

// Last returns the final segment, or the root name.
func (p *Path) Last() string {
	if p.IsRoot() {
		return vss.RootName
	}
	return p.Segments[len(p.Segments)-1]
}
