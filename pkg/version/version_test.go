package version

import (
	"errors"
	"testing"

	"github.com/sdv-edge/vehicle-model-go/pkg/vss"
)

func TestParse_Valid(t *testing.T) {
	tests := []struct {
		input string
		want  VSSVersion
	}{
		{"3.0", VSSVersion{3, 0, 0}},
		{"3.1", VSSVersion{3, 1, 0}},
		{"4.0.1", VSSVersion{4, 0, 1}},
		{"10.23.7", VSSVersion{10, 23, 7}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			v, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) returned error: %v", tt.input, err)
			}
			if v != tt.want {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.input, v, tt.want)
			}
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []string{
		"",
		"3",
		"abc",
		"3.0.0.1",
		"3.x",
		"-1.0",
		"3..1",
	}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			if _, err := Parse(input); err == nil {
				t.Errorf("Parse(%q) should return error", input)
			}
		})
	}
}

func TestString(t *testing.T) {
	tests := map[VSSVersion]string{
		{3, 0, 0}: "3.0",
		{3, 1, 2}: "3.1.2",
		{4, 0, 0}: "4.0",
	}
	for v, want := range tests {
		if got := v.String(); got != want {
			t.Errorf("%+v.String() = %q, want %q", v, got, want)
		}
	}
}

func TestCompatibleAndLess(t *testing.T) {
	v30 := MustParse("3.0")
	v31 := MustParse("3.1")
	v40 := MustParse("4.0")

	if !v30.Compatible(v31) || v30.Compatible(v40) {
		t.Error("compatibility should follow the major version")
	}
	if !v30.Less(v31) || !v31.Less(v40) || v40.Less(v30) || v30.Less(v30) {
		t.Error("unexpected ordering")
	}
	if !MustParse("3.0").Less(MustParse("3.0.1")) {
		t.Error("patch should order")
	}
}

func TestMustParsePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustParse should panic on invalid input")
		}
	}()
	MustParse("three")
}

func TestCurrent(t *testing.T) {
	if CurrentVersion().String() != vss.Version {
		t.Errorf("CurrentVersion() = %s, want %s", CurrentVersion(), vss.Version)
	}
}

func TestFromVehicle(t *testing.T) {
	v := vss.New()
	if _, err := FromVehicle(v); !errors.Is(err, ErrNoVersion) {
		t.Fatalf("expected ErrNoVersion, got %v", err)
	}

	v.VersionVSS.Major.Set(3)
	if _, err := FromVehicle(v); !errors.Is(err, ErrNoVersion) {
		t.Fatalf("expected ErrNoVersion with minor unset, got %v", err)
	}

	v.VersionVSS.Minor.Set(0)
	got, err := FromVehicle(v)
	if err != nil {
		t.Fatal(err)
	}
	if got != (VSSVersion{3, 0, 0}) {
		t.Errorf("FromVehicle = %+v", got)
	}

	Stamp(v, MustParse("3.1.4"))
	got, _ = FromVehicle(v)
	if got.String() != "3.1.4" {
		t.Errorf("after Stamp = %s", got)
	}
}

func TestFromSchema(t *testing.T) {
	got, err := FromSchema(vss.Schema())
	if err != nil {
		t.Fatalf("FromSchema failed: %v", err)
	}
	if got != CurrentVersion() {
		t.Errorf("schema version %s, want %s", got, CurrentVersion())
	}

	if _, err := FromSchema([]byte("root: {}\n")); !errors.Is(err, ErrNoVersion) {
		t.Errorf("expected ErrNoVersion, got %v", err)
	}
	if _, err := FromSchema([]byte("version: [unclosed")); err == nil {
		t.Error("expected parse error")
	}
}
