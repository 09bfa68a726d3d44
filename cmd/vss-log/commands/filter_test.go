package commands

import (
	"path/filepath"
	"testing"

	"github.com/sdv-edge/vehicle-model-go/pkg/log"
)

func readAll(t *testing.T, path string) []log.Event {
	t.Helper()
	r, err := log.NewReader(path)
	if err != nil {
		t.Fatalf("NewReader: %v", err)
	}
	defer r.Close()
	events, err := r.All()
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	return events
}

func TestRunFilterBySession(t *testing.T) {
	path := writeLog(t, sampleEvents())
	out := filepath.Join(t.TempDir(), "client.vlog")

	n, err := RunFilter(path, out, log.Filter{SessionID: clientSession})
	if err != nil {
		t.Fatalf("RunFilter: %v", err)
	}
	if n != 2 {
		t.Errorf("wrote %d events, want 2", n)
	}

	events := readAll(t, out)
	if len(events) != 2 {
		t.Fatalf("read %d events, want 2", len(events))
	}
	for _, e := range events {
		if e.SessionID != clientSession {
			t.Errorf("unexpected session %s", e.SessionID)
		}
	}
	if events[1].Error == nil || events[1].Error.Code != "OUT_OF_RANGE" {
		t.Errorf("error payload lost: %+v", events[1])
	}
}

func TestRunFilterByProcedure(t *testing.T) {
	path := writeLog(t, sampleEvents())
	out := filepath.Join(t.TempDir(), "move.vlog")

	n, err := RunFilter(path, out, log.Filter{Procedure: "Seats/Move"})
	if err != nil {
		t.Fatalf("RunFilter: %v", err)
	}
	if n != 2 {
		t.Errorf("wrote %d events, want the client and server record", n)
	}
	for _, e := range readAll(t, out) {
		if e.RPC == nil || e.RPC.RequestID != "req-1" {
			t.Errorf("unexpected event %+v", e)
		}
	}
}

func TestRunFilterNoMatches(t *testing.T) {
	path := writeLog(t, sampleEvents())
	out := filepath.Join(t.TempDir(), "empty.vlog")

	n, err := RunFilter(path, out, log.Filter{PathPrefix: "Vehicle.Powertrain"})
	if err != nil {
		t.Fatalf("RunFilter: %v", err)
	}
	if n != 0 {
		t.Errorf("wrote %d events, want 0", n)
	}
	if events := readAll(t, out); len(events) != 0 {
		t.Errorf("read %d events, want 0", len(events))
	}
}

func TestRunFilterMissingInput(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.vlog")
	if _, err := RunFilter(filepath.Join(t.TempDir(), "missing.vlog"), out, log.Filter{}); err == nil {
		t.Error("expected error for missing input")
	}
}
