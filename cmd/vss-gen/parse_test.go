package main

import (
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// schemaPath returns the absolute path of the checked-in VSS schema.
func schemaPath(t *testing.T) string {
	t.Helper()
	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("cannot determine test file path")
	}
	return filepath.Join(filepath.Dir(thisFile), "..", "..", "pkg", "vss", "schema", "vss.yaml")
}

const minimalSchema = `
version: "3.0"
root:
  name: Vehicle
  kind: branch
  description: "High-level vehicle data."
  children:
    - name: Speed
      kind: sensor
      datatype: float
      unit: "km/h"
      min: 0
      max: 250.5
      description: "Vehicle speed."
    - name: Cabin
      kind: branch
      children:
        - name: Door
          kind: branch
          description: "All doors."
          instances:
            - range: Row
              low: 1
              high: 2
            - names: [Left, Right]
          children:
            - name: IsOpen
              kind: actuator
              datatype: boolean
        - name: SeatPosCount
          kind: attribute
          datatype: "uint8[]"
          allowed: ["A", "B"]
`

func TestParseSchema_Minimal(t *testing.T) {
	s, err := ParseSchema([]byte(minimalSchema))
	if err != nil {
		t.Fatalf("ParseSchema failed: %v", err)
	}

	if s.Version != "3.0" {
		t.Errorf("version = %q, want 3.0", s.Version)
	}
	if s.Root.Name != "Vehicle" || !s.Root.IsBranch() {
		t.Fatalf("unexpected root %+v", s.Root)
	}
	if len(s.Root.Children) != 2 {
		t.Fatalf("len(children) = %d, want 2", len(s.Root.Children))
	}

	speed := s.Root.Children[0]
	if speed.DataType != "float" || speed.Unit != "km/h" {
		t.Errorf("unexpected speed %+v", speed)
	}
	if speed.Min != "0" || speed.Max != "250.5" {
		t.Errorf("bounds = %q..%q, want 0..250.5", speed.Min, speed.Max)
	}

	door := s.Root.Children[1].Children[0]
	if len(door.Instances) != 2 {
		t.Fatalf("len(instances) = %d, want 2", len(door.Instances))
	}
	if got := strings.Join(door.Instances[0].Members(), ","); got != "Row1,Row2" {
		t.Errorf("row members = %s", got)
	}
	if got := strings.Join(door.Instances[1].Members(), ","); got != "Left,Right" {
		t.Errorf("name members = %s", got)
	}
}

func TestParseSchema_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "MissingRoot",
			yaml:    `version: "3.0"`,
			wantErr: "missing root",
		},
		{
			name: "MissingVersion",
			yaml: `
root:
  name: Vehicle
  kind: branch
`,
			wantErr: "missing version",
		},
		{
			name: "UnknownKind",
			yaml: `
version: "3.0"
root:
  name: Vehicle
  kind: branch
  children:
    - name: Speed
      kind: signal
`,
			wantErr: "unknown node kind",
		},
		{
			name: "UnknownDataType",
			yaml: `
version: "3.0"
root:
  name: Vehicle
  kind: branch
  children:
    - name: Speed
      kind: sensor
      datatype: decimal
`,
			wantErr: "unknown data type",
		},
		{
			name: "DuplicateChild",
			yaml: `
version: "3.0"
root:
  name: Vehicle
  kind: branch
  children:
    - name: Speed
      kind: sensor
      datatype: float
    - name: Speed
      kind: sensor
      datatype: float
`,
			wantErr: "duplicate child Speed",
		},
		{
			name: "ReservedName",
			yaml: `
version: "3.0"
root:
  name: Vehicle
  kind: branch
  children:
    - name: Path
      kind: attribute
      datatype: string
`,
			wantErr: "reserved",
		},
		{
			name: "InvertedRange",
			yaml: `
version: "3.0"
root:
  name: Vehicle
  kind: branch
  children:
    - name: Seat
      kind: branch
      instances:
        - range: Row
          low: 3
          high: 1
`,
			wantErr: "low 3 > high 1",
		},
		{
			name: "NamesNotInnermost",
			yaml: `
version: "3.0"
root:
  name: Vehicle
  kind: branch
  children:
    - name: Door
      kind: branch
      instances:
        - names: [Left, Right]
        - range: Row
          low: 1
          high: 2
`,
			wantErr: "innermost",
		},
		{
			name: "BadBound",
			yaml: `
version: "3.0"
root:
  name: Vehicle
  kind: branch
  children:
    - name: Speed
      kind: sensor
      datatype: float
      min: low
`,
			wantErr: "invalid bound",
		},
		{
			name: "LeafWithChildren",
			yaml: `
version: "3.0"
root:
  name: Vehicle
  kind: branch
  children:
    - name: Speed
      kind: sensor
      datatype: float
      children:
        - name: Unit
          kind: attribute
          datatype: string
`,
			wantErr: "cannot have children",
		},
		{
			name: "LowercaseName",
			yaml: `
version: "3.0"
root:
  name: Vehicle
  kind: branch
  children:
    - name: speed
      kind: sensor
      datatype: float
`,
			wantErr: "not a Go identifier",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSchema([]byte(tt.yaml))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadSchema_CheckedIn(t *testing.T) {
	s, err := LoadSchema(schemaPath(t))
	if err != nil {
		t.Fatalf("LoadSchema failed: %v", err)
	}
	if s.Version != "3.0" {
		t.Errorf("version = %q, want 3.0", s.Version)
	}

	var branches, leaves int
	var count func(n *RawNode)
	count = func(n *RawNode) {
		if n.IsBranch() {
			branches++
		} else {
			leaves++
		}
		for _, c := range n.Children {
			count(c)
		}
	}
	count(s.Root)

	// Schema nodes, before instances are expanded.
	if branches != 107 {
		t.Errorf("branches = %d, want 107", branches)
	}
	if leaves != 458 {
		t.Errorf("leaves = %d, want 458", leaves)
	}
}

func TestLoadSchema_MissingFile(t *testing.T) {
	_, err := LoadSchema(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}
