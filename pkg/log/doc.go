// Package log captures seat service calls and signal changes as a
// machine-readable event trace.
//
// It is separate from operational logging (slog). Events are recorded at two
// layers:
//   - RPC: unary calls to and from the seat service (RPCEvent)
//   - Signal: value changes of data points in the vehicle tree (SignalEvent)
//
// Errors at either layer carry an ErrorEventData payload.
//
// # Basic Usage
//
//	// Console output during development
//	logger := log.NewSlogAdapter(slog.Default())
//
//	// Binary capture for later analysis
//	file, _ := log.NewFileLogger("/var/log/sdv/seats.vlog")
//
//	// Both at once
//	logger = log.NewMultiLogger(logger, file)
//
//	// Record every change below the cabin
//	cancel := vehicle.Cabin.Subscribe(log.NewSignalRecorder(logger, "sim"))
//	defer cancel()
//
// # File Format
//
// Log files are a stream of CBOR-encoded events with integer keys. The vss-log
// command views, filters and summarizes them.
package log
