// Package commands implements the vss-log CLI commands.
package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/sdv-edge/vehicle-model-go/pkg/log"
)

// timeLayout is the timestamp format of view and export output.
const timeLayout = "2006-01-02T15:04:05.000000Z"

// formatEvent writes a human-readable representation of the event to w.
func formatEvent(w io.Writer, event log.Event) {
	// Header line: timestamp [session] DIRECTION LAYER Type
	ts := event.Timestamp.UTC().Format(timeLayout)
	session := shortenID(event.SessionID)

	var typeLabel string
	switch {
	case event.RPC != nil:
		typeLabel = procedureName(event.RPC.Procedure)
	case event.Signal != nil:
		typeLabel = event.Signal.Path
	case event.Error != nil:
		typeLabel = "Error"
	default:
		typeLabel = "Unknown"
	}

	fmt.Fprintf(w, "%s [%s] %-3s %-6s %s\n", ts, session, event.Direction, event.Layer, typeLabel)

	switch {
	case event.RPC != nil:
		formatRPCDetails(w, event)
	case event.Signal != nil:
		formatSignalDetails(w, event.Signal)
	}
	if event.Error != nil {
		formatErrorDetails(w, event.Error)
	}

	fmt.Fprintln(w) // Blank line between events
}

// shortenID returns the first 8 characters of a session ID.
func shortenID(id string) string {
	if len(id) >= 8 {
		return id[:8]
	}
	return id
}

// procedureName strips the service from a procedure:
// /sdv.edge.comfort.seats.v1.Seats/Move becomes Seats/Move.
func procedureName(procedure string) string {
	trimmed := strings.TrimPrefix(procedure, "/")
	service, method, ok := strings.Cut(trimmed, "/")
	if !ok {
		return procedure
	}
	if i := strings.LastIndex(service, "."); i >= 0 {
		service = service[i+1:]
	}
	return service + "/" + method
}

func formatRPCDetails(w io.Writer, event log.Event) {
	rpc := event.RPC
	fmt.Fprintf(w, "  Role: %s", event.LocalRole)
	if event.RemoteAddr != "" {
		fmt.Fprintf(w, "  Peer: %s", event.RemoteAddr)
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  Status: %s  Duration: %s\n", rpc.Status, formatDuration(rpc.Duration))
	if rpc.RequestID != "" {
		fmt.Fprintf(w, "  RequestID: %s\n", rpc.RequestID)
	}
	if rpc.Request != nil {
		fmt.Fprintf(w, "  Request: %s\n", formatPayload(rpc.Request))
	}
	if rpc.Reply != nil {
		fmt.Fprintf(w, "  Reply: %s\n", formatPayload(rpc.Reply))
	}
}

func formatSignalDetails(w io.Writer, sig *log.SignalEvent) {
	if sig.DataType != "" {
		fmt.Fprintf(w, "  Value: %v (%s)\n", sig.Value, sig.DataType)
		return
	}
	fmt.Fprintf(w, "  Value: %v\n", sig.Value)
}

// formatErrorDetails writes error details.
func formatErrorDetails(w io.Writer, err *log.ErrorEventData) {
	fmt.Fprintf(w, "  Layer: %s\n", err.Layer)
	fmt.Fprintf(w, "  Message: %s\n", err.Message)
	if err.Code != "" {
		fmt.Fprintf(w, "  Code: %s\n", err.Code)
	}
	if err.Context != "" {
		fmt.Fprintf(w, "  Context: %s\n", err.Context)
	}
}

func formatPayload(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(data)
}

// formatDuration formats a duration for display.
func formatDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%.3fus", float64(d.Nanoseconds())/1000)
	}
	if d < time.Second {
		return fmt.Sprintf("%.3fms", float64(d.Microseconds())/1000)
	}
	return fmt.Sprintf("%.3fs", d.Seconds())
}

// ParseLayerFlag parses a layer string from command-line flag (case-insensitive).
func ParseLayerFlag(s string) (log.Layer, error) {
	l, ok := log.ParseLayer(strings.ToUpper(s))
	if !ok {
		return 0, fmt.Errorf("invalid layer: %s (must be rpc or signal)", s)
	}
	return l, nil
}

// ParseDirectionFlag parses a direction string from command-line flag (case-insensitive).
func ParseDirectionFlag(s string) (log.Direction, error) {
	switch strings.ToLower(s) {
	case "in":
		return log.DirectionIn, nil
	case "out":
		return log.DirectionOut, nil
	default:
		return 0, fmt.Errorf("invalid direction: %s (must be in or out)", s)
	}
}

// ParseCategoryFlag parses a category string from command-line flag (case-insensitive).
func ParseCategoryFlag(s string) (log.Category, error) {
	c, ok := log.ParseCategory(strings.ToUpper(s))
	if !ok {
		return 0, fmt.Errorf("invalid category: %s (must be call, change, or error)", s)
	}
	return c, nil
}

// FilterOptions holds the filter flags shared by view, export and filter.
type FilterOptions struct {
	Session   string
	TimeStart string
	TimeEnd   string
	Layer     string
	Direction string
	Category  string
	Procedure string
	Path      string
}

// Build converts the options into a log.Filter.
func (o FilterOptions) Build() (log.Filter, error) {
	filter := log.Filter{
		SessionID:  o.Session,
		Procedure:  o.Procedure,
		PathPrefix: o.Path,
	}

	if o.TimeStart != "" {
		t, err := time.Parse(time.RFC3339, o.TimeStart)
		if err != nil {
			return filter, fmt.Errorf("invalid time-start format: %w", err)
		}
		filter.TimeStart = &t
	}
	if o.TimeEnd != "" {
		t, err := time.Parse(time.RFC3339, o.TimeEnd)
		if err != nil {
			return filter, fmt.Errorf("invalid time-end format: %w", err)
		}
		filter.TimeEnd = &t
	}
	if o.Layer != "" {
		l, err := ParseLayerFlag(o.Layer)
		if err != nil {
			return filter, err
		}
		filter.Layer = &l
	}
	if o.Direction != "" {
		d, err := ParseDirectionFlag(o.Direction)
		if err != nil {
			return filter, err
		}
		filter.Direction = &d
	}
	if o.Category != "" {
		c, err := ParseCategoryFlag(o.Category)
		if err != nil {
			return filter, err
		}
		filter.Category = &c
	}
	return filter, nil
}

// RunView executes the view command.
func RunView(path string, filter log.Filter, output io.Writer) error {
	reader, err := log.NewFilteredReader(path, filter)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		formatEvent(output, event)
	}
	return nil
}
