package inspect

import (
	"strings"
	"testing"

	"github.com/sdv-edge/vehicle-model-go/pkg/model"
	"github.com/sdv-edge/vehicle-model-go/pkg/vss"
)

func TestFormatValue(t *testing.T) {
	f := NewFormatter()

	tests := []struct {
		value any
		unit  string
		want  string
	}{
		{nil, "mm", "(unset)"},
		{uint16(500), "mm", "500 mm"},
		{float32(42.5), "percent", "42.5 %"},
		{true, "", "true"},
		{"FM", "", `"FM"`},
		{[]string{"a", "b"}, "", `["a", "b"]`},
	}
	for _, tt := range tests {
		if got := f.FormatValue(tt.value, tt.unit); got != tt.want {
			t.Errorf("FormatValue(%v, %q) = %q, want %q", tt.value, tt.unit, got, tt.want)
		}
	}
}

func TestFormatMetadata(t *testing.T) {
	lo, hi := 0.0, 100.0
	tests := []struct {
		name string
		meta model.Metadata
		want string
	}{
		{
			name: "open range",
			meta: model.Metadata{Type: model.DataTypeUint16, Kind: model.KindActuator, Unit: "mm", Min: &lo},
			want: "uint16 actuator, mm, [0, -]",
		},
		{
			name: "closed range",
			meta: model.Metadata{Type: model.DataTypeFloat, Kind: model.KindActuator, Unit: "percent", Min: &lo, Max: &hi},
			want: "float actuator, percent, [0, 100]",
		},
		{
			name: "allowed values",
			meta: model.Metadata{Type: model.DataTypeString, Kind: model.KindSensor, Allowed: []string{"A", "B"}},
			want: "string sensor, {A|B}",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatMetadata(tt.meta); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatNode(t *testing.T) {
	insp := NewInspector(vss.New())
	f := NewFormatter()

	rows, err := insp.List(mustPath(t, "Cabin.Seat"))
	if err != nil {
		t.Fatal(err)
	}
	if got := f.FormatNode(rows[0]); got != "Row1/ (3 children)" {
		t.Errorf("branch line = %q", got)
	}

	info, err := insp.Write(mustPath(t, "Cabin.Seat.Row1.Pos1.Position"), "500")
	if err != nil {
		t.Fatal(err)
	}
	if got := f.FormatNode(*info); got != "Position = 500 mm (uint16 actuator, mm, [0, -])" {
		t.Errorf("leaf line = %q", got)
	}

	f.ShowMetadata = false
	f.ShowDescription = true
	got := f.FormatNode(*info)
	if !strings.HasPrefix(got, "Position = 500 mm - ") {
		t.Errorf("description line = %q", got)
	}

	unset, err := insp.Read(mustPath(t, "Speed"))
	if err != nil {
		t.Fatal(err)
	}
	f.ShowDescription = false
	if got := f.FormatNode(*unset); got != "Speed = (unset)" {
		t.Errorf("unset line = %q", got)
	}
}

func TestFormatListAndTree(t *testing.T) {
	insp := NewInspector(vss.New())
	f := NewFormatter()

	if got := f.FormatList(nil); got != "  (no children)\n" {
		t.Errorf("empty list = %q", got)
	}

	rows, _ := insp.List(mustPath(t, "Cabin.Seat"))
	want := "  Row1/ (3 children)\n  Row2/ (3 children)\n"
	if got := f.FormatList(rows); got != want {
		t.Errorf("list = %q, want %q", got, want)
	}

	tree, err := insp.Tree(mustPath(t, "Cabin.Seat"), 1)
	if err != nil {
		t.Fatal(err)
	}
	want = "Seat/ (2 children)\n  Row1/ (3 children) ...\n  Row2/ (3 children) ...\n"
	if got := f.FormatTree(tree); got != want {
		t.Errorf("tree = %q, want %q", got, want)
	}

	f.IndentWidth = 4
	if got := f.Indent(2, "x"); got != "        x" {
		t.Errorf("indent = %q", got)
	}
}
