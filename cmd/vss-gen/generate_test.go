package main

import (
	"bytes"
	"go/ast"
	"go/format"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"golang.org/x/tools/imports"
)

func generateMinimal(t *testing.T) map[string]string {
	t.Helper()
	s, err := ParseSchema([]byte(minimalSchema))
	if err != nil {
		t.Fatalf("ParseSchema failed: %v", err)
	}
	gen := &Generator{Package: "vss"}
	files, err := gen.Generate(s)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	out := make(map[string]string, len(files))
	for _, f := range files {
		out[f.Name] = f.Code
	}
	return out
}

func TestGenerateFileSplit(t *testing.T) {
	files := generateMinimal(t)

	var names []string
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)
	if strings.Join(names, ",") != "cabin_gen.go,vehicle_gen.go" {
		t.Errorf("unexpected files %v", names)
	}

	for name, code := range files {
		mustContain(t, code, "// Code generated by vss-gen. DO NOT EDIT.")
		mustContain(t, code, "package vss")
		mustContain(t, code, `import "github.com/sdv-edge/vehicle-model-go/pkg/model"`)
		if _, err := format.Source([]byte(code)); err != nil {
			t.Errorf("%s is not valid Go: %v", name, err)
		}
	}
}

func TestGenerateRootBranch(t *testing.T) {
	code := generateMinimal(t)["vehicle_gen.go"]

	mustContain(t, code, "// Vehicle models the Vehicle branch.")
	mustContain(t, code, "// High-level vehicle data.")
	mustContain(t, code, "type Vehicle struct {")
	mustContain(t, code, "*model.Branch")
	mustContain(t, code, "Speed *model.DataPoint[float32]")
	mustContain(t, code, "Cabin *Cabin")
	mustContain(t, code, "func NewVehicle(name string, parent model.Node) *Vehicle {")
	mustContain(t, code, "n.Branch = model.NewBranch(n, name, parent)")
	mustContain(t, code, `n.Speed = model.NewSensor[float32]("Speed", n,`)
	mustContain(t, code, `model.Unit("km/h"),`)
	mustContain(t, code, "model.Min(0),")
	mustContain(t, code, "model.Max(250.5),")
	mustContain(t, code, `model.Description("Vehicle speed."),`)
	mustContain(t, code, `n.Cabin = NewCabin("Cabin", n)`)

	// Descendants live in their own file.
	mustNotContain(t, code, "type Cabin struct")
}

func TestGenerateCollectionLevels(t *testing.T) {
	code := generateMinimal(t)["cabin_gen.go"]

	mustContain(t, code, "Door *CabinDoorCollection")
	mustContain(t, code, `n.Door = NewCabinDoorCollection("Door", n)`)

	// Outer range level.
	mustContain(t, code, "// CabinDoorCollection holds the instances of the Vehicle.Cabin.Door branch.")
	mustContain(t, code, "type CabinDoorCollection struct {")
	mustContain(t, code, "Row1 *CabinDoorRow")
	mustContain(t, code, "instances *model.Range[*CabinDoorRow]")
	mustContain(t, code, `n.Row2 = NewCabinDoorRow("Row2", n)`)
	mustContain(t, code, `n.instances = model.NewRange(n, "Row", 1, n.Row1, n.Row2)`)
	mustContain(t, code, "func (n *CabinDoorCollection) Row(index int) (*CabinDoorRow, error) {")
	mustContain(t, code, "// Row returns the instance with the given Row index in [1, 2].")

	// Inner dictionary level.
	mustContain(t, code, "// CabinDoorRow holds the instances of the Vehicle.Cabin.Door branch within one Row.")
	mustContain(t, code, "Left *CabinDoor")
	mustContain(t, code, "instances *model.Dictionary[*CabinDoor]")
	mustContain(t, code, `n.instances = model.NewDictionary(n, []string{"Left", "Right"}, n.Left, n.Right)`)
	mustContain(t, code, "func (n *CabinDoorRow) Element(key string) (*CabinDoor, error) {")
	mustContain(t, code, "// Element returns the instance named key, one of Left, Right.")

	// Element branch.
	mustContain(t, code, "// CabinDoor models the Vehicle.Cabin.Door branch.")
	mustContain(t, code, "// All doors.")
	mustContain(t, code, `n.IsOpen = model.NewActuator[bool]("IsOpen", n)`)

	// Arrays and allowed values.
	mustContain(t, code, "SeatPosCount *model.DataPoint[[]uint8]")
	mustContain(t, code, `model.Allowed("A", "B"),`)
	mustContain(t, code, `n.SeatPosCount = model.NewAttribute[[]uint8]("SeatPosCount", n,`)

	// Levels precede the element type.
	if strings.Index(code, "type CabinDoorCollection") > strings.Index(code, "type CabinDoor struct") {
		t.Error("expected collection levels before the element type")
	}
}

func TestGoValueType(t *testing.T) {
	tests := map[string]string{
		"boolean":  "bool",
		"int8":     "int8",
		"uint32":   "uint32",
		"float":    "float32",
		"double":   "float64",
		"string":   "string",
		"string[]": "[]string",
		"uint8[]":  "[]uint8",
		"float[]":  "[]float32",
	}
	for in, want := range tests {
		if got := goValueType(in); got != want {
			t.Errorf("goValueType(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestGoFileName(t *testing.T) {
	tests := map[string]string{
		"Cabin":                 "cabin",
		"OBD":                   "obd",
		"ADAS":                  "adas",
		"CurrentLocation":       "current_location",
		"VersionVSS":            "version_vss",
		"VehicleIdentification": "vehicle_identification",
	}
	for in, want := range tests {
		if got := goFileName(in); got != want {
			t.Errorf("goFileName(%q) = %q, want %q", in, got, want)
		}
	}
}

// TestCheckedInCodeIsCurrent renders the VSS schema the way the generator
// writes it and compares the result with the checked-in files.
func TestCheckedInCodeIsCurrent(t *testing.T) {
	s, err := LoadSchema(schemaPath(t))
	if err != nil {
		t.Fatalf("LoadSchema failed: %v", err)
	}
	gen := &Generator{Package: "vss"}
	files, err := gen.Generate(s)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	vssDir := filepath.Dir(filepath.Dir(schemaPath(t)))
	checkedIn, err := filepath.Glob(filepath.Join(vssDir, "*_gen.go"))
	if err != nil {
		t.Fatal(err)
	}
	if len(checkedIn) != len(files) {
		t.Errorf("generated %d files, %d checked in", len(files), len(checkedIn))
	}

	for _, f := range files {
		path := filepath.Join(vssDir, f.Name)
		want, err := os.ReadFile(path)
		if err != nil {
			t.Errorf("%s: %v", f.Name, err)
			continue
		}
		got, err := imports.Process(path, []byte(f.Code), nil)
		if err != nil {
			t.Errorf("%s: goimports: %v", f.Name, err)
			continue
		}
		if !bytes.Equal(got, want) {
			t.Errorf("%s is stale at line %d; run go generate ./pkg/vss", f.Name, firstDiffLine(got, want))
		}
	}
}

// TestCheckedInDeclarations compares the declared identifiers, which points
// at missing types or fields when the golden comparison fails.
func TestCheckedInDeclarations(t *testing.T) {
	s, err := LoadSchema(schemaPath(t))
	if err != nil {
		t.Fatalf("LoadSchema failed: %v", err)
	}
	files, err := (&Generator{Package: "vss"}).Generate(s)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	vssDir := filepath.Dir(filepath.Dir(schemaPath(t)))
	for _, f := range files {
		want, err := os.ReadFile(filepath.Join(vssDir, f.Name))
		if err != nil {
			t.Errorf("%s: %v", f.Name, err)
			continue
		}
		got := declNames(t, f.Name, f.Code)
		exp := declNames(t, f.Name, string(want))
		if strings.Join(got, ",") != strings.Join(exp, ",") {
			t.Errorf("%s declares different identifiers than generated", f.Name)
		}
	}
}

func firstDiffLine(a, b []byte) int {
	al := bytes.Split(a, []byte("\n"))
	bl := bytes.Split(b, []byte("\n"))
	for i := 0; i < len(al) && i < len(bl); i++ {
		if !bytes.Equal(al[i], bl[i]) {
			return i + 1
		}
	}
	return min(len(al), len(bl)) + 1
}

func TestSingleLine(t *testing.T) {
	got := singleLine("IEC 62196,  GBT refers to\n  GB/T 20234. ")
	if got != "IEC 62196, GBT refers to GB/T 20234." {
		t.Errorf("singleLine = %q", got)
	}
}

func declNames(t *testing.T, name, src string) []string {
	t.Helper()
	file, err := parser.ParseFile(token.NewFileSet(), name, src, 0)
	if err != nil {
		t.Fatalf("parsing %s: %v", name, err)
	}
	var names []string
	for _, d := range file.Decls {
		switch decl := d.(type) {
		case *ast.FuncDecl:
			names = append(names, decl.Name.Name)
		case *ast.GenDecl:
			for _, spec := range decl.Specs {
				if ts, ok := spec.(*ast.TypeSpec); ok {
					names = append(names, ts.Name.Name)
					if st, ok := ts.Type.(*ast.StructType); ok {
						for _, field := range st.Fields.List {
							for _, id := range field.Names {
								names = append(names, ts.Name.Name+"."+id.Name)
							}
						}
					}
				}
			}
		}
	}
	return names
}

func mustContain(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Errorf("output does not contain %q\nOutput (first 3000 chars):\n%s", substr, truncate(output, 3000))
	}
}

func mustNotContain(t *testing.T, output, substr string) {
	t.Helper()
	if strings.Contains(output, substr) {
		t.Errorf("output should not contain %q", substr)
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
