package inspect

import (
	"errors"
	"reflect"
	"testing"
)

func TestParsePath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []string
		wantErr error
	}{
		{name: "absolute dotted", input: "Vehicle.Cabin.Seat.Row1.Pos1.Position", want: []string{"Cabin", "Seat", "Row1", "Pos1", "Position"}},
		{name: "relative dotted", input: "Cabin.Seat.Row1", want: []string{"Cabin", "Seat", "Row1"}},
		{name: "slash separators", input: "Cabin/Door/Row1/Left/IsOpen", want: []string{"Cabin", "Door", "Row1", "Left", "IsOpen"}},
		{name: "mixed separators", input: "Vehicle/Cabin.Door", want: []string{"Cabin", "Door"}},
		{name: "surrounding space", input: "  Speed  ", want: []string{"Speed"}},
		{name: "root by name", input: "Vehicle", want: nil},
		{name: "root by dot", input: ".", want: nil},
		{name: "root by slash", input: "/", want: nil},
		{name: "underscore and digits", input: "OBD.O2WR.Sensor1", want: []string{"OBD", "O2WR", "Sensor1"}},
		{name: "empty", input: "", wantErr: ErrEmptyPath},
		{name: "blank", input: "   ", wantErr: ErrEmptyPath},
		{name: "leading dot", input: ".Cabin", wantErr: ErrInvalidPath},
		{name: "trailing dot", input: "Cabin.", wantErr: ErrInvalidPath},
		{name: "double dot", input: "Cabin..Door", wantErr: ErrInvalidPath},
		{name: "leading slash", input: "/Cabin", wantErr: ErrInvalidPath},
		{name: "space inside", input: "Cabin. Door", wantErr: ErrInvalidPath},
		{name: "brackets", input: "Cabin.Seat[1]", wantErr: ErrInvalidPath},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePath(tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ParsePath(%q) error = %v, want %v", tt.input, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParsePath(%q) unexpected error: %v", tt.input, err)
			}
			if !reflect.DeepEqual(got.Segments, tt.want) && !(len(got.Segments) == 0 && len(tt.want) == 0) {
				t.Errorf("Segments = %v, want %v", got.Segments, tt.want)
			}
			if got.Raw != tt.input {
				t.Errorf("Raw = %q, want %q", got.Raw, tt.input)
			}
		})
	}
}

func TestPathString(t *testing.T) {
	p, err := ParsePath("Cabin/Seat/Row1")
	if err != nil {
		t.Fatal(err)
	}
	if got := p.String(); got != "Vehicle.Cabin.Seat.Row1" {
		t.Errorf("String() = %q", got)
	}
	if got := p.Relative(); got != "Cabin.Seat.Row1" {
		t.Errorf("Relative() = %q", got)
	}
	if got := p.Last(); got != "Row1" {
		t.Errorf("Last() = %q", got)
	}
	if got := p.Parent().String(); got != "Vehicle.Cabin.Seat" {
		t.Errorf("Parent() = %q", got)
	}
	if p.IsRoot() {
		t.Error("IsRoot() = true")
	}

	root, _ := ParsePath("Vehicle")
	if !root.IsRoot() || root.String() != "Vehicle" || root.Last() != "Vehicle" || root.Parent() != root {
		t.Errorf("unexpected root path %+v", root)
	}
}
