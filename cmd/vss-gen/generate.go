package main

import (
	"fmt"
	"strings"

	"github.com/sdv-edge/vehicle-model-go/pkg/model"
)

// DefaultModelImport is the import path of the node runtime.
const DefaultModelImport = "github.com/sdv-edge/vehicle-model-go/pkg/model"

// GeneratedFile is one rendered Go source file.
type GeneratedFile struct {
	Name string
	Code string
}

// Generator renders a schema into Go source files.
type Generator struct {
	Package     string
	ModelImport string
}

// Generate renders the root branch into <root>_gen.go and every top-level
// branch with its descendants into <branch>_gen.go.
func (g *Generator) Generate(s *RawSchema) ([]GeneratedFile, error) {
	modelImport := g.ModelImport
	if modelImport == "" {
		modelImport = DefaultModelImport
	}

	root := s.Root
	files := []GeneratedFile{}

	rootDecls := []declData{{Branch: buildBranch(root, root.Name, nil)}}
	code, err := renderFile(g.Package, modelImport, rootDecls)
	if err != nil {
		return nil, err
	}
	files = append(files, GeneratedFile{Name: goFileName(root.Name) + "_gen.go", Code: code})

	for _, c := range root.Children {
		if !c.IsBranch() {
			continue
		}
		var decls []declData
		collectDecls(c, root.Name+"."+c.Name, []string{c.Name}, &decls)
		code, err := renderFile(g.Package, modelImport, decls)
		if err != nil {
			return nil, fmt.Errorf("generating %s: %w", c.Name, err)
		}
		files = append(files, GeneratedFile{Name: goFileName(c.Name) + "_gen.go", Code: code})
	}
	return files, nil
}

func renderFile(pkg, modelImport string, decls []declData) (code string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
		}
	}()
	var b strings.Builder
	renderTemplate(&b, "file", fileData{
		Package:     pkg,
		ModelImport: modelImport,
		Decls:       decls,
	})
	return b.String(), nil
}

// collectDecls appends the declarations of n and its descendants in
// pre-order: collection levels first, then the branch type itself.
func collectDecls(n *RawNode, path string, segments []string, decls *[]declData) {
	base := typeName(segments)
	for _, lvl := range buildLevels(n, path, base) {
		*decls = append(*decls, declData{Level: lvl})
	}
	*decls = append(*decls, declData{Branch: buildBranch(n, path, segments)})
	for _, c := range n.Children {
		if c.IsBranch() {
			collectDecls(c, path+"."+c.Name, append(append([]string(nil), segments...), c.Name), decls)
		}
	}
}

func buildBranch(n *RawNode, path string, segments []string) *branchData {
	b := &branchData{
		Name:        typeName(segments),
		Path:        path,
		Description: singleLine(n.Description),
	}
	if segments == nil {
		b.Name = n.Name
	}
	for _, c := range n.Children {
		childSegments := append(append([]string(nil), segments...), c.Name)
		if c.IsBranch() {
			t := typeName(childSegments)
			if len(c.Instances) > 0 {
				t += "Collection"
			}
			b.Fields = append(b.Fields, fieldData{
				Name:   c.Name,
				GoType: "*" + t,
				Ctor:   "New" + t,
			})
			continue
		}
		vt := goValueType(c.DataType)
		b.Fields = append(b.Fields, fieldData{
			Name:      c.Name,
			GoType:    "*model.DataPoint[" + vt + "]",
			Leaf:      true,
			Ctor:      leafConstructor(c.Kind),
			ValueType: vt,
			Options:   leafOptions(c),
		})
	}
	return b
}

// buildLevels returns the collection level types of n, outermost first. The
// outermost level is <base>Collection, inner levels are named after the
// enclosing range (<base>Row), and the innermost level holds <base> values.
func buildLevels(n *RawNode, path, base string) []*levelData {
	var levels []*levelData
	for i, inst := range n.Instances {
		lvl := &levelData{
			Name:    base + "Collection",
			Path:    path,
			Elem:    base,
			Members: inst.Members(),
			Range:   inst.Range,
			Low:     inst.Low,
			High:    inst.High,
		}
		if i > 0 {
			lvl.Scope = n.Instances[i-1].Range
			lvl.Name = base + lvl.Scope
		}
		if i+1 < len(n.Instances) {
			lvl.Elem = base + inst.Range
		}
		levels = append(levels, lvl)
	}
	return levels
}

func leafConstructor(kind string) string {
	switch kind {
	case "sensor":
		return "NewSensor"
	case "actuator":
		return "NewActuator"
	default:
		return "NewAttribute"
	}
}

func leafOptions(n *RawNode) []string {
	var opts []string
	if n.Unit != "" {
		opts = append(opts, fmt.Sprintf("model.Unit(%q)", n.Unit))
	}
	if n.Min != "" {
		opts = append(opts, "model.Min("+n.Min+")")
	}
	if n.Max != "" {
		opts = append(opts, "model.Max("+n.Max+")")
	}
	if len(n.Allowed) > 0 {
		opts = append(opts, "model.Allowed("+quoteList(n.Allowed)+")")
	}
	if d := singleLine(n.Description); d != "" {
		opts = append(opts, fmt.Sprintf("model.Description(%q)", d))
	}
	if c := singleLine(n.Comment); c != "" {
		opts = append(opts, fmt.Sprintf("model.Comment(%q)", c))
	}
	return opts
}

// goValueType maps a VSS data type to the Go type of its values.
func goValueType(dt string) string {
	t, err := model.ParseDataType(dt)
	if err != nil {
		return "any"
	}
	elem := t.Elem()
	var name string
	switch elem {
	case model.DataTypeBoolean:
		name = "bool"
	case model.DataTypeFloat:
		name = "float32"
	case model.DataTypeDouble:
		name = "float64"
	default:
		name = elem.String()
	}
	if t.IsArray() {
		return "[]" + name
	}
	return name
}

// typeName joins path segments below the root: Cabin.Door.Window becomes
// CabinDoorWindow.
func typeName(segments []string) string {
	return strings.Join(segments, "")
}

func singleLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// goFileName converts "CurrentLocation" to "current_location" and
// "VersionVSS" to "version_vss".
func goFileName(name string) string {
	var result strings.Builder
	for i, r := range name {
		if i > 0 && r >= 'A' && r <= 'Z' {
			prev := rune(name[i-1])
			nextLower := i+1 < len(name) && name[i+1] >= 'a' && name[i+1] <= 'z'
			if (prev >= 'a' && prev <= 'z') || (prev >= '0' && prev <= '9') || (prev >= 'A' && prev <= 'Z' && nextLower) {
				result.WriteByte('_')
			}
		}
		result.WriteRune(r)
	}
	return strings.ToLower(result.String())
}
