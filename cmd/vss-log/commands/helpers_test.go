package commands

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/sdv-edge/vehicle-model-go/pkg/log"
)

const (
	clientSession = "c0ffee00-1111-2222-3333-444455556666"
	serverSession = "5eed0000-aaaa-bbbb-cccc-ddddeeeeffff"
	moveProcedure = "/sdv.edge.comfort.seats.v1.Seats/Move"
)

var baseTime = time.Date(2026, 3, 2, 8, 30, 0, 0, time.UTC)

// sampleEvents is one client call, its server side record, two signal
// changes and a failed call.
func sampleEvents() []log.Event {
	return []log.Event{
		{
			Timestamp: baseTime,
			SessionID: clientSession,
			Direction: log.DirectionOut,
			Layer:     log.LayerRPC,
			Category:  log.CategoryCall,
			LocalRole: log.RoleClient,
			RPC: &log.RPCEvent{
				Procedure: moveProcedure,
				RequestID: "req-1",
				Status:    "OK",
				Duration:  1500 * time.Microsecond,
				Request:   map[string]any{"base": 500},
			},
		},
		{
			Timestamp:  baseTime.Add(time.Millisecond),
			SessionID:  serverSession,
			Direction:  log.DirectionIn,
			Layer:      log.LayerRPC,
			Category:   log.CategoryCall,
			LocalRole:  log.RoleServer,
			RemoteAddr: "127.0.0.1:40112",
			RPC: &log.RPCEvent{
				Procedure: moveProcedure,
				RequestID: "req-1",
				Status:    "OK",
				Duration:  500 * time.Microsecond,
			},
		},
		{
			Timestamp: baseTime.Add(2 * time.Millisecond),
			SessionID: serverSession,
			Direction: log.DirectionIn,
			Layer:     log.LayerSignal,
			Category:  log.CategoryChange,
			Signal: &log.SignalEvent{
				Path:     "Vehicle.Cabin.Seat.Row1.Pos1.Position",
				DataType: "uint16",
				Value:    uint16(500),
			},
		},
		{
			Timestamp: baseTime.Add(3 * time.Millisecond),
			SessionID: serverSession,
			Direction: log.DirectionIn,
			Layer:     log.LayerSignal,
			Category:  log.CategoryChange,
			Signal: &log.SignalEvent{
				Path:     "Vehicle.Speed",
				DataType: "float",
				Value:    float32(42.5),
			},
		},
		{
			Timestamp: baseTime.Add(time.Second),
			SessionID: clientSession,
			Direction: log.DirectionOut,
			Layer:     log.LayerRPC,
			Category:  log.CategoryError,
			LocalRole: log.RoleClient,
			RPC: &log.RPCEvent{
				Procedure: "/sdv.edge.comfort.seats.v1.Seats/MoveComponent",
				Status:    "OUT_OF_RANGE",
				Duration:  2 * time.Millisecond,
			},
			Error: &log.ErrorEventData{
				Layer:   log.LayerRPC,
				Message: "seat row 3 out of range",
				Code:    "OUT_OF_RANGE",
			},
		},
	}
}

// writeLog writes events to a fresh log file and returns its path.
func writeLog(t *testing.T, events []log.Event) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "events.vlog")
	logger, err := log.NewFileLogger(path)
	if err != nil {
		t.Fatalf("NewFileLogger: %v", err)
	}
	for _, e := range events {
		logger.Log(e)
	}
	if err := logger.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	return path
}
