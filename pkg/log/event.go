package log

import "time"

// Event is a single captured RPC call or signal change.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the event occurred (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// SessionID identifies the process run that produced the event (UUID).
	SessionID string `cbor:"2,keyasint"`

	// Direction indicates message flow relative to the local process.
	Direction Direction `cbor:"3,keyasint"`

	// Layer where the event was captured.
	Layer Layer `cbor:"4,keyasint"`

	// Category classifies the event type.
	Category Category `cbor:"5,keyasint"`

	// LocalRole indicates whether the process is the seat client or server.
	LocalRole Role `cbor:"6,keyasint,omitempty"`

	// RemoteAddr is the peer address (host:port), if known.
	RemoteAddr string `cbor:"7,keyasint,omitempty"`

	// Type-specific payload (one of these will be set).
	RPC    *RPCEvent       `cbor:"10,keyasint,omitempty"`
	Signal *SignalEvent    `cbor:"11,keyasint,omitempty"`
	Error  *ErrorEventData `cbor:"12,keyasint,omitempty"`
}

// Direction indicates the direction of message flow.
type Direction uint8

const (
	// DirectionIn indicates an incoming request, reply or value.
	DirectionIn Direction = 0
	// DirectionOut indicates an outgoing request or reply.
	DirectionOut Direction = 1
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirectionIn:
		return "IN"
	case DirectionOut:
		return "OUT"
	default:
		return "UNKNOWN"
	}
}

// Layer indicates where the event was captured.
type Layer uint8

const (
	// LayerRPC is the seat service call layer.
	LayerRPC Layer = 0
	// LayerSignal is the vehicle tree.
	LayerSignal Layer = 1
)

// String returns the layer name.
func (l Layer) String() string {
	switch l {
	case LayerRPC:
		return "RPC"
	case LayerSignal:
		return "SIGNAL"
	default:
		return "UNKNOWN"
	}
}

// ParseLayer returns the layer for a name as printed by String.
func ParseLayer(s string) (Layer, bool) {
	switch s {
	case "RPC", "rpc":
		return LayerRPC, true
	case "SIGNAL", "signal":
		return LayerSignal, true
	}
	return 0, false
}

// Category classifies the event type.
type Category uint8

const (
	// CategoryCall indicates a completed unary call.
	CategoryCall Category = 0
	// CategoryChange indicates a data point value change.
	CategoryChange Category = 1
	// CategoryError indicates an error event.
	CategoryError Category = 2
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryCall:
		return "CALL"
	case CategoryChange:
		return "CHANGE"
	case CategoryError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseCategory returns the category for a name as printed by String.
func ParseCategory(s string) (Category, bool) {
	switch s {
	case "CALL", "call":
		return CategoryCall, true
	case "CHANGE", "change":
		return CategoryChange, true
	case "ERROR", "error":
		return CategoryError, true
	}
	return 0, false
}

// Role indicates which side of the seat service the process is on.
type Role uint8

const (
	// RoleClient indicates a seat service consumer.
	RoleClient Role = 0
	// RoleServer indicates a seat service implementation.
	RoleServer Role = 1
)

// String returns the role name.
func (r Role) String() string {
	switch r {
	case RoleClient:
		return "CLIENT"
	case RoleServer:
		return "SERVER"
	default:
		return "UNKNOWN"
	}
}

// RPCEvent captures one unary call.
type RPCEvent struct {
	// Procedure is the full procedure name, e.g. /sdv.edge.comfort.seats.v1.Seats/Move.
	Procedure string `cbor:"1,keyasint"`

	// RequestID correlates client and server records of the same call.
	RequestID string `cbor:"2,keyasint,omitempty"`

	// Status is the gRPC status name (OK, OUT_OF_RANGE, ...).
	Status string `cbor:"3,keyasint"`

	// Duration of the call. Stored as nanoseconds.
	Duration time.Duration `cbor:"4,keyasint"`

	// Request is a CBOR-compatible rendering of the request message.
	Request any `cbor:"5,keyasint,omitempty"`

	// Reply is a CBOR-compatible rendering of the reply message.
	Reply any `cbor:"6,keyasint,omitempty"`
}

// SignalEvent captures a data point value change.
type SignalEvent struct {
	// Path is the dotted data point path.
	Path string `cbor:"1,keyasint"`

	// DataType is the VSS data type name.
	DataType string `cbor:"2,keyasint,omitempty"`

	// Value is the new value.
	Value any `cbor:"3,keyasint"`
}

// ErrorEventData captures errors at any layer.
type ErrorEventData struct {
	// Layer where the error occurred.
	Layer Layer `cbor:"1,keyasint"`

	// Message is the error message.
	Message string `cbor:"2,keyasint"`

	// Code is the status name (if applicable).
	Code string `cbor:"3,keyasint,omitempty"`

	// Context describes what operation was being performed.
	Context string `cbor:"4,keyasint,omitempty"`
}
