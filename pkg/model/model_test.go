package model

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"
)

type testVehicle struct {
	*Branch

	Speed *DataPoint[float32]
	VIN   *DataPoint[string]
	Seat  *testSeatCollection
}

func newTestVehicle() *testVehicle {
	n := &testVehicle{}
	n.Branch = NewBranch(n, "Vehicle", nil)
	n.Speed = NewSensor[float32]("Speed", n, Unit("km/h"), Min(0), Max(250), Description("Vehicle speed."))
	n.VIN = NewAttribute[string]("VIN", n)
	n.Seat = newTestSeatCollection("Seat", n)
	return n
}

type testSeatCollection struct {
	*Branch

	Row1 *testSeat
	Row2 *testSeat

	instances *Range[*testSeat]
}

func newTestSeatCollection(name string, parent Node) *testSeatCollection {
	n := &testSeatCollection{}
	n.Branch = NewBranch(n, name, parent)
	n.Row1 = newTestSeat("Row1", n)
	n.Row2 = newTestSeat("Row2", n)
	n.instances = NewRange(n, "Row", 1, n.Row1, n.Row2)
	return n
}

type testSeat struct {
	*Branch

	Position  *DataPoint[uint16]
	IsBelted  *DataPoint[bool]
	Positions *DataPoint[[]uint8]
}

func newTestSeat(name string, parent Node) *testSeat {
	n := &testSeat{}
	n.Branch = NewBranch(n, name, parent)
	n.Position = NewActuator[uint16]("Position", n, Unit("mm"))
	n.IsBelted = NewSensor[bool]("IsBelted", n)
	n.Positions = NewAttribute[[]uint8]("Positions", n)
	return n
}

func TestNodeIdentity(t *testing.T) {
	v := newTestVehicle()

	t.Run("Root", func(t *testing.T) {
		if v.Name() != "Vehicle" {
			t.Errorf("expected name Vehicle, got %s", v.Name())
		}
		if v.Parent() != nil {
			t.Errorf("expected nil parent, got %v", v.Parent())
		}
		if v.Kind() != KindBranch {
			t.Errorf("expected branch, got %s", v.Kind())
		}
	})

	t.Run("ParentIsConstructor", func(t *testing.T) {
		if v.Seat.Parent() != Node(v) {
			t.Error("expected Seat parent to be the vehicle")
		}
		if v.Seat.Row2.Position.Parent() != Node(v.Seat.Row2) {
			t.Error("expected Position parent to be Row2")
		}
		if Root(v.Seat.Row1.IsBelted) != Node(v) {
			t.Error("expected root to be the vehicle")
		}
	})

	t.Run("Path", func(t *testing.T) {
		if got := v.Seat.Row2.Position.Path(); got != "Vehicle.Seat.Row2.Position" {
			t.Errorf("unexpected path %s", got)
		}
	})

	t.Run("ChildrenInDeclarationOrder", func(t *testing.T) {
		var names []string
		for _, c := range v.Children() {
			names = append(names, c.Name())
		}
		want := []string{"Speed", "VIN", "Seat"}
		if !reflect.DeepEqual(names, want) {
			t.Errorf("expected %v, got %v", want, names)
		}
	})

	t.Run("LeafKinds", func(t *testing.T) {
		if v.Speed.Kind() != KindSensor || v.VIN.Kind() != KindAttribute || v.Seat.Row1.Position.Kind() != KindActuator {
			t.Error("unexpected leaf kinds")
		}
		if v.Speed.Children() != nil {
			t.Error("expected leaf without children")
		}
	})
}

func TestDuplicateChildPanics(t *testing.T) {
	v := newTestVehicle()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic for duplicate child name")
		}
		if msg := fmt.Sprint(r); !strings.Contains(msg, "duplicate child Speed in Vehicle") {
			t.Errorf("unexpected panic %q", msg)
		}
	}()
	NewSensor[float32]("Speed", v)
}

func TestLeafParentPanics(t *testing.T) {
	v := newTestVehicle()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic when attaching to a data point")
		}
		if msg := fmt.Sprint(r); !strings.Contains(msg, "cannot hold child Inner") {
			t.Errorf("unexpected panic %q", msg)
		}
	}()
	NewSensor[bool]("Inner", v.Speed)
}

func TestFind(t *testing.T) {
	v := newTestVehicle()

	n, err := Find(v, "Seat.Row1.IsBelted")
	if err != nil {
		t.Fatalf("Find failed: %v", err)
	}
	if n != Node(v.Seat.Row1.IsBelted) {
		t.Error("expected the pre-built IsBelted node")
	}

	again, _ := Find(v, "Seat.Row1.IsBelted")
	if again != n {
		t.Error("expected identical node on repeated lookup")
	}

	if n, _ := Find(v, ""); n != Node(v) {
		t.Error("expected empty path to return the start node")
	}

	_, err = Find(v, "Seat.Row3")
	if !errors.Is(err, ErrNodeNotFound) {
		t.Errorf("expected ErrNodeNotFound, got %v", err)
	}

	_, err = Find(v, "Speed.Unit")
	if !errors.Is(err, ErrNodeNotFound) {
		t.Errorf("expected ErrNodeNotFound below a leaf, got %v", err)
	}
}

func TestWalkAndCount(t *testing.T) {
	v := newTestVehicle()

	branches, leaves := Count(v)
	if branches != 4 {
		t.Errorf("expected 4 branches, got %d", branches)
	}
	if leaves != 8 {
		t.Errorf("expected 8 leaves, got %d", leaves)
	}

	var visited []string
	err := Walk(v, func(n Node) error {
		visited = append(visited, n.Name())
		if n.Name() == "Row1" {
			return SkipBranch
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Walk failed: %v", err)
	}
	want := []string{"Vehicle", "Speed", "VIN", "Seat", "Row1", "Row2", "Position", "IsBelted", "Positions"}
	if !reflect.DeepEqual(visited, want) {
		t.Errorf("expected %v, got %v", want, visited)
	}

	stop := errors.New("stop")
	if err := Walk(v, func(Node) error { return stop }); !errors.Is(err, stop) {
		t.Errorf("expected walk error to propagate, got %v", err)
	}

	if got := len(Leaves(v.Seat)); got != 6 {
		t.Errorf("expected 6 seat leaves, got %d", got)
	}
}

func TestDataPointValue(t *testing.T) {
	v := newTestVehicle()

	if _, ok := v.Speed.Value(); ok {
		t.Error("expected no value before Set")
	}
	if !v.Speed.Timestamp().IsZero() {
		t.Error("expected zero timestamp before Set")
	}

	v.Speed.Set(300)
	got, ok := v.Speed.Value()
	if !ok || got != 300 {
		t.Errorf("expected 300 (range is not enforced), got %v %v", got, ok)
	}
	if v.Speed.Timestamp().IsZero() {
		t.Error("expected timestamp after Set")
	}

	v.Speed.Reset()
	if _, ok := v.Speed.Get(); ok {
		t.Error("expected no value after Reset")
	}
}

func TestDataPointMetadata(t *testing.T) {
	v := newTestVehicle()
	meta := v.Speed.Metadata()

	if meta.Type != DataTypeFloat {
		t.Errorf("expected float, got %s", meta.Type)
	}
	if meta.Unit != "km/h" || meta.Description != "Vehicle speed." {
		t.Errorf("unexpected metadata %+v", meta)
	}
	if meta.Min == nil || *meta.Min != 0 || meta.Max == nil || *meta.Max != 250 {
		t.Errorf("unexpected range %v..%v", meta.Min, meta.Max)
	}
	if v.Seat.Row1.Positions.Metadata().Type != DataTypeUint8Array {
		t.Error("expected uint8[] data type")
	}
	if v.VIN.Metadata().HasRange() {
		t.Error("expected VIN without range")
	}
}

func TestSubscribe(t *testing.T) {
	v := newTestVehicle()

	var rootEvents, seatEvents []string
	cancel := v.Subscribe(SubscriberFunc(func(l Leaf) {
		rootEvents = append(rootEvents, l.Path())
	}))
	v.Seat.Subscribe(SubscriberFunc(func(l Leaf) {
		seatEvents = append(seatEvents, l.Path())
	}))

	v.Seat.Row1.Position.Set(100)
	v.Seat.Row1.Position.Set(100) // unchanged
	v.Speed.Set(50)

	if len(rootEvents) != 2 {
		t.Errorf("expected 2 root events, got %v", rootEvents)
	}
	if len(seatEvents) != 1 || seatEvents[0] != "Vehicle.Seat.Row1.Position" {
		t.Errorf("unexpected seat events %v", seatEvents)
	}

	cancel()
	v.Speed.Set(60)
	if len(rootEvents) != 2 {
		t.Errorf("expected no events after cancel, got %v", rootEvents)
	}
}

func TestArrayValuesAreCopied(t *testing.T) {
	v := newTestVehicle()
	positions := v.Seat.Row1.Positions

	var events int
	v.Subscribe(SubscriberFunc(func(Leaf) { events++ }))

	in := []uint8{1, 2, 3}
	positions.Set(in)
	in[0] = 9
	got, _ := positions.Value()
	if !reflect.DeepEqual(got, []uint8{1, 2, 3}) {
		t.Fatalf("stored value changed with caller slice: %v", got)
	}

	// Editing the input in place and setting it again is a change.
	positions.Set(in)
	if events != 2 {
		t.Errorf("expected 2 events, got %d", events)
	}

	got[1] = 7
	again, _ := positions.Value()
	if !reflect.DeepEqual(again, []uint8{9, 2, 3}) {
		t.Errorf("stored value changed through returned slice: %v", again)
	}
}

func TestKindAndDataTypeNames(t *testing.T) {
	for _, name := range []string{"branch", "sensor", "actuator", "attribute"} {
		k, err := ParseKind(name)
		if err != nil {
			t.Fatalf("ParseKind(%s): %v", name, err)
		}
		if k.String() != name {
			t.Errorf("expected %s, got %s", name, k)
		}
	}
	if _, err := ParseKind("signal"); err == nil {
		t.Error("expected error for unknown kind")
	}

	for _, name := range []string{"boolean", "int8", "uint32", "float", "double", "string", "string[]", "uint8[]"} {
		dt, err := ParseDataType(name)
		if err != nil {
			t.Fatalf("ParseDataType(%s): %v", name, err)
		}
		if dt.String() != name {
			t.Errorf("expected %s, got %s", name, dt)
		}
	}
	if _, err := ParseDataType("unknown"); err == nil {
		t.Error("expected error for unknown data type")
	}
	if DataTypeStringArray.Elem() != DataTypeString || !DataTypeUint8Array.IsArray() || DataTypeUint8.IsArray() {
		t.Error("unexpected array helpers")
	}
}
