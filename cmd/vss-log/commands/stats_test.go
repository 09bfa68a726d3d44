package commands

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/sdv-edge/vehicle-model-go/pkg/log"
)

func TestCollect(t *testing.T) {
	stats, err := Collect(writeLog(t, sampleEvents()))
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}

	if stats.TotalEvents != 5 {
		t.Errorf("TotalEvents = %d, want 5", stats.TotalEvents)
	}
	if stats.EventsByLayer[log.LayerRPC] != 3 || stats.EventsByLayer[log.LayerSignal] != 2 {
		t.Errorf("EventsByLayer = %v", stats.EventsByLayer)
	}
	if stats.EventsByCategory[log.CategoryError] != 1 {
		t.Errorf("EventsByCategory = %v", stats.EventsByCategory)
	}
	if stats.Errors != 1 {
		t.Errorf("Errors = %d, want 1", stats.Errors)
	}
	if len(stats.Sessions) != 2 {
		t.Fatalf("len(Sessions) = %d, want 2", len(stats.Sessions))
	}
	if s := stats.Sessions[clientSession]; s.Events != 2 || s.Role != log.RoleClient {
		t.Errorf("client session = %+v", s)
	}
	if got := stats.TimeRange.End.Sub(stats.TimeRange.Start); got != time.Second {
		t.Errorf("time range = %v, want 1s", got)
	}

	move := stats.Procedures[moveProcedure]
	if move == nil {
		t.Fatal("no stats for Move")
	}
	if move.Calls != 2 || move.ByStatus["OK"] != 2 {
		t.Errorf("Move stats = %+v", move)
	}
	if move.Mean() != time.Millisecond || move.MaxDuration != 1500*time.Microsecond {
		t.Errorf("mean %v max %v", move.Mean(), move.MaxDuration)
	}
	if stats.Signals["Vehicle.Speed"] != 1 {
		t.Errorf("Signals = %v", stats.Signals)
	}
}

func TestRunStats(t *testing.T) {
	var buf bytes.Buffer
	if err := RunStats(writeLog(t, sampleEvents()), &buf); err != nil {
		t.Fatalf("RunStats: %v", err)
	}
	output := buf.String()

	for _, want := range []string{
		"Total Events: 5",
		"RPC:",
		"SIGNAL:",
		"Seats/Move",
		"2 calls, mean 1.000ms",
		"OUT_OF_RANGE",
		"Signals: 2 changed",
		"Sessions: 2",
		"[c0ffee00] CLIENT, 2 events",
		"Errors: 1",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in output:\n%s", want, output)
		}
	}
}

func TestRunStatsEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := RunStats(writeLog(t, nil), &buf); err != nil {
		t.Fatalf("RunStats: %v", err)
	}
	if !strings.Contains(buf.String(), "Total Events: 0") {
		t.Errorf("unexpected output:\n%s", buf.String())
	}
	if strings.Contains(buf.String(), "Time Range") {
		t.Error("empty log should not print a time range")
	}
}

func TestProcedureStatsMeanZero(t *testing.T) {
	if got := (&ProcedureStats{}).Mean(); got != 0 {
		t.Errorf("Mean() = %v, want 0", got)
	}
}
