package persistence

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sdv-edge/vehicle-model-go/pkg/model"
	"github.com/sdv-edge/vehicle-model-go/pkg/vss"
)

func populated(t *testing.T) *vss.Vehicle {
	t.Helper()
	v := vss.New()
	row, err := v.Cabin.Seat.Row(1)
	if err != nil {
		t.Fatal(err)
	}
	seat, err := row.Pos(1)
	if err != nil {
		t.Fatal(err)
	}
	seat.Position.Set(500)
	seat.Backrest.Lumbar.Support.Set(33.5)
	seat.IsOccupied.Set(true)
	v.Speed.Set(88.25)
	v.VehicleIdentification.VIN.Set("WVWZZZ1JZXW000001")
	v.Cabin.Infotainment.Media.Played.Source.Set("FM")
	return v
}

func TestCapture(t *testing.T) {
	snap := Capture(populated(t))

	if snap.Version != SnapshotVersion || snap.VSSVersion != vss.Version {
		t.Errorf("unexpected header %d/%s", snap.Version, snap.VSSVersion)
	}
	if len(snap.Values) != 6 {
		t.Errorf("len(Values) = %d, want 6: %v", len(snap.Values), snap.Paths())
	}
	if got := snap.Values["Vehicle.Cabin.Seat.Row1.Pos1.Position"]; got != uint16(500) {
		t.Errorf("Position = %v (%T)", got, got)
	}
	if snap.Paths()[0] != "Vehicle.Cabin.Infotainment.Media.Played.Source" {
		t.Errorf("paths not sorted: %v", snap.Paths())
	}
}

func TestSnapshotStoreRoundTrip(t *testing.T) {
	dir := t.TempDir()
	store := NewSnapshotStore(filepath.Join(dir, "nested", "snapshot.json"))

	if err := store.Save(Capture(populated(t))); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if _, err := os.Stat(store.Path() + ".tmp"); !os.IsNotExist(err) {
		t.Error("temporary file left behind")
	}

	snap, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if snap.SavedAt.IsZero() || time.Since(snap.SavedAt) > time.Minute {
		t.Errorf("SavedAt = %v", snap.SavedAt)
	}

	fresh := vss.New()
	result, err := Restore(fresh, snap)
	if err != nil {
		t.Fatalf("Restore() error = %v", err)
	}
	if !result.OK() || result.Applied != 6 {
		t.Fatalf("unexpected result %+v", result)
	}

	row, _ := fresh.Cabin.Seat.Row(1)
	seat, _ := row.Pos(1)
	if got, _ := seat.Position.Value(); got != 500 {
		t.Errorf("Position = %d", got)
	}
	if got, _ := seat.Backrest.Lumbar.Support.Value(); got != 33.5 {
		t.Errorf("Lumbar.Support = %v", got)
	}
	if got, _ := seat.IsOccupied.Value(); !got {
		t.Error("IsOccupied not restored")
	}
	if got, _ := fresh.VehicleIdentification.VIN.Value(); got != "WVWZZZ1JZXW000001" {
		t.Errorf("VIN = %q", got)
	}

	// Values that were never set stay unset.
	if _, ok := seat.Height.Value(); ok {
		t.Error("Height should stay unset")
	}
}

func TestRestoreReportsProblems(t *testing.T) {
	snap := &Snapshot{
		Version:    SnapshotVersion,
		VSSVersion: "3.1",
		Values: map[string]any{
			"Vehicle.Speed":                         float64(42),
			"Vehicle.Cabin.Seat.Row3.Pos1.Position": float64(1),
			"Vehicle.Cabin.Seat":                    "branch",
			"Truck.Speed":                           float64(1),
			"Vehicle.Cabin.Seat.Row1.Pos1.IsBelted": "perhaps",
			"Vehicle.Cabin.Seat.Row1.Pos1.Position": float64(-3),
			"Vehicle.Cabin.Seat.Row1.Pos1.Heating":  float64(-20),
		},
	}

	v := vss.New()
	result, err := Restore(v, snap)
	if err != nil {
		t.Fatalf("Restore() error = %v", err)
	}
	if result.Applied != 2 {
		t.Errorf("Applied = %d, want 2", result.Applied)
	}
	wantUnknown := []string{"Truck.Speed", "Vehicle.Cabin.Seat", "Vehicle.Cabin.Seat.Row3.Pos1.Position"}
	if len(result.Unknown) != len(wantUnknown) {
		t.Fatalf("Unknown = %v, want %v", result.Unknown, wantUnknown)
	}
	for i := range wantUnknown {
		if result.Unknown[i] != wantUnknown[i] {
			t.Errorf("Unknown[%d] = %q, want %q", i, result.Unknown[i], wantUnknown[i])
		}
	}
	for _, p := range []string{"Vehicle.Cabin.Seat.Row1.Pos1.IsBelted", "Vehicle.Cabin.Seat.Row1.Pos1.Position"} {
		if result.Failed[p] == nil {
			t.Errorf("expected failure for %s", p)
		}
	}
	if !errors.Is(result.Failed["Vehicle.Cabin.Seat.Row1.Pos1.Position"], model.ErrValueType) {
		t.Errorf("Position failure = %v", result.Failed["Vehicle.Cabin.Seat.Row1.Pos1.Position"])
	}
	if result.OK() {
		t.Error("OK() should be false")
	}
	if got, _ := v.Speed.Value(); got != 42 {
		t.Errorf("Speed = %v", got)
	}
}

func TestRestoreRejectsVersions(t *testing.T) {
	v := vss.New()

	_, err := Restore(v, &Snapshot{Version: 2})
	if !errors.Is(err, ErrSnapshotVersion) {
		t.Errorf("expected ErrSnapshotVersion, got %v", err)
	}

	_, err = Restore(v, &Snapshot{
		Version:    SnapshotVersion,
		VSSVersion: "4.0",
		Values:     map[string]any{"Vehicle.Speed": float64(1)},
	})
	if !errors.Is(err, ErrVSSVersion) {
		t.Errorf("expected ErrVSSVersion, got %v", err)
	}
	if _, ok := v.Speed.Value(); ok {
		t.Error("rejected snapshot must not write values")
	}

	_, err = Restore(v, &Snapshot{Version: SnapshotVersion, VSSVersion: "three"})
	if !errors.Is(err, ErrVSSVersion) {
		t.Errorf("expected ErrVSSVersion, got %v", err)
	}
}

func TestSnapshotStoreMissingAndClear(t *testing.T) {
	dir := t.TempDir()
	store := NewSnapshotStore(filepath.Join(dir, "snapshot.json"))

	got, err := store.Load()
	if err != nil || got != nil {
		t.Fatalf("Load() = %v, %v; want nil, nil", got, err)
	}

	if err := store.Clear(); err != nil {
		t.Fatalf("Clear() on missing file: %v", err)
	}

	if err := store.Save(&Snapshot{}); err != nil {
		t.Fatal(err)
	}
	got, err = store.Load()
	if err != nil {
		t.Fatal(err)
	}
	if got.Values == nil {
		t.Error("Values should be initialized")
	}
	if err := store.Clear(); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(store.Path()); !os.IsNotExist(err) {
		t.Error("snapshot file should be gone")
	}
}

func TestSnapshotStoreCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshot.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := NewSnapshotStore(path).Load(); err == nil {
		t.Error("expected decode error")
	}
}
