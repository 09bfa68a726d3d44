package main

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/sdv-edge/vehicle-model-go/pkg/model"
)

// RawSchema represents a VSS tree loaded from YAML.
type RawSchema struct {
	Version string   `yaml:"version"`
	Root    *RawNode `yaml:"root"`
}

// RawNode represents a branch or data point definition.
type RawNode struct {
	Name        string        `yaml:"name"`
	Kind        string        `yaml:"kind"`     // "branch", "sensor", "actuator", "attribute"
	DataType    string        `yaml:"datatype"` // VSS spelling, e.g. "uint8", "string[]"
	Unit        string        `yaml:"unit"`
	Min         string        `yaml:"min"`
	Max         string        `yaml:"max"`
	Allowed     []string      `yaml:"allowed"`
	Description string        `yaml:"description"`
	Comment     string        `yaml:"comment"`
	Instances   []RawInstance `yaml:"instances"` // collection levels, outermost first
	Children    []*RawNode    `yaml:"children"`
}

// RawInstance describes one level of a multi-instance branch: either a
// numeric range ("Row" 1..2 yields Row1, Row2) or a list of names.
type RawInstance struct {
	Range string   `yaml:"range"`
	Low   int      `yaml:"low"`
	High  int      `yaml:"high"`
	Names []string `yaml:"names"`
}

// IsBranch reports whether the node is a branch.
func (n *RawNode) IsBranch() bool {
	return n.Kind == "branch"
}

// Members returns the instance names of the level.
func (r RawInstance) Members() []string {
	if r.Range == "" {
		return r.Names
	}
	out := make([]string, 0, r.High-r.Low+1)
	for i := r.Low; i <= r.High; i++ {
		out = append(out, r.Range+strconv.Itoa(i))
	}
	return out
}

// ParseSchema parses and validates a schema from YAML bytes.
func ParseSchema(data []byte) (*RawSchema, error) {
	var s RawSchema
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing schema: %w", err)
	}
	if s.Root == nil {
		return nil, fmt.Errorf("schema missing root")
	}
	if err := Validate(&s); err != nil {
		return nil, err
	}
	return &s, nil
}

// LoadSchema loads and parses a schema from a file.
func LoadSchema(path string) (*RawSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return ParseSchema(data)
}

// Validate checks the structural rules the generated code relies on.
func Validate(s *RawSchema) error {
	if s.Version == "" {
		return fmt.Errorf("schema missing version")
	}
	if !s.Root.IsBranch() {
		return fmt.Errorf("root %s must be a branch", s.Root.Name)
	}
	if len(s.Root.Instances) > 0 {
		return fmt.Errorf("root %s cannot have instances", s.Root.Name)
	}
	return validateNode(s.Root, s.Root.Name)
}

// reservedNames are promoted methods of model.Branch that a child field
// would shadow.
var reservedNames = map[string]bool{
	"Branch": true, "Name": true, "Parent": true, "Path": true, "Kind": true,
	"Children": true, "Child": true, "Subscribe": true,
}

func validateNode(n *RawNode, path string) error {
	if !isIdentifier(n.Name) {
		return fmt.Errorf("%s: name %q is not a Go identifier", path, n.Name)
	}
	kind, err := model.ParseKind(n.Kind)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	if kind.IsLeaf() {
		if _, err := model.ParseDataType(n.DataType); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		for _, bound := range []string{n.Min, n.Max} {
			if bound == "" {
				continue
			}
			if _, err := strconv.ParseFloat(bound, 64); err != nil {
				return fmt.Errorf("%s: invalid bound %q", path, bound)
			}
		}
		if len(n.Children) > 0 || len(n.Instances) > 0 {
			return fmt.Errorf("%s: %s cannot have children or instances", path, n.Kind)
		}
		return nil
	}

	for i, inst := range n.Instances {
		if err := validateInstance(inst, i == len(n.Instances)-1); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
	}

	seen := make(map[string]bool, len(n.Children))
	for _, c := range n.Children {
		if seen[c.Name] {
			return fmt.Errorf("%s: duplicate child %s", path, c.Name)
		}
		if reservedNames[c.Name] {
			return fmt.Errorf("%s: child name %s is reserved", path, c.Name)
		}
		seen[c.Name] = true
		if err := validateNode(c, path+"."+c.Name); err != nil {
			return err
		}
	}
	return nil
}

func validateInstance(inst RawInstance, last bool) error {
	switch {
	case inst.Range != "" && len(inst.Names) > 0:
		return fmt.Errorf("instance level has both range and names")
	case inst.Range != "":
		if !isIdentifier(inst.Range) {
			return fmt.Errorf("range name %q is not a Go identifier", inst.Range)
		}
		if inst.Low > inst.High {
			return fmt.Errorf("range %s has low %d > high %d", inst.Range, inst.Low, inst.High)
		}
	case len(inst.Names) > 0:
		if !last {
			return fmt.Errorf("named instances must be the innermost level")
		}
		seen := make(map[string]bool, len(inst.Names))
		for _, name := range inst.Names {
			if !isIdentifier(name) || seen[name] {
				return fmt.Errorf("invalid or duplicate instance name %q", name)
			}
			seen[name] = true
		}
	default:
		return fmt.Errorf("instance level needs a range or names")
	}
	return nil
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z', r == '_':
		case r >= '0' && r <= '9' && i > 0:
		default:
			return false
		}
	}
	return s[0] >= 'A' && s[0] <= 'Z'
}
