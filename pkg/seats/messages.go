package seats

import (
	"errors"
	"fmt"
	"strings"

	"google.golang.org/protobuf/encoding/protowire"
)

// ErrNotMessage is returned by Codec for values that are not seat messages.
var ErrNotMessage = errors.New("not a seat service message")

// Message is implemented by every request and reply of the service.
type Message interface {
	appendWire(b []byte) []byte
	consumeWire(b []byte) error
}

// SeatLocation addresses a seat by row and index within the row, both
// starting at 1 for the front-left seat.
type SeatLocation struct {
	Row   uint32
	Index uint32
}

// Position holds per-mille positions of the seat components.
type Position struct {
	Base          int32
	Cushion       int32
	Lumbar        int32
	SideBolster   int32
	HeadRestraint int32
}

// Seat is a located seat with its position.
type Seat struct {
	Location *SeatLocation
	Position *Position
}

// SeatComponent names an adjustable part of a seat.
type SeatComponent int32

const (
	SeatComponentBase          SeatComponent = 0
	SeatComponentCushion       SeatComponent = 1
	SeatComponentLumbar        SeatComponent = 2
	SeatComponentSideBolster   SeatComponent = 3
	SeatComponentHeadRestraint SeatComponent = 4
)

var componentNames = map[SeatComponent]string{
	SeatComponentBase:          "BASE",
	SeatComponentCushion:       "CUSHION",
	SeatComponentLumbar:        "LUMBAR",
	SeatComponentSideBolster:   "SIDE_BOLSTER",
	SeatComponentHeadRestraint: "HEAD_RESTRAINT",
}

// String returns the enum value name.
func (c SeatComponent) String() string {
	if name, ok := componentNames[c]; ok {
		return name
	}
	return fmt.Sprintf("SeatComponent(%d)", int32(c))
}

// ParseSeatComponent accepts enum names case-insensitively, with or without
// the underscore (side_bolster, sidebolster, SIDE_BOLSTER).
func ParseSeatComponent(s string) (SeatComponent, error) {
	norm := strings.ReplaceAll(strings.ToUpper(strings.TrimSpace(s)), "-", "_")
	for c, name := range componentNames {
		if norm == name || norm == strings.ReplaceAll(name, "_", "") {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown seat component %q", s)
}

// MoveRequest asks the service to move a seat.
type MoveRequest struct {
	Seat *Seat
}

// MoveReply is empty.
type MoveReply struct{}

// MoveComponentRequest asks the service to move one component of a seat.
type MoveComponentRequest struct {
	Seat      *SeatLocation
	Component SeatComponent
	Position  int32
}

// MoveComponentReply is empty.
type MoveComponentReply struct{}

// CurrentPositionRequest addresses the seat to read.
type CurrentPositionRequest struct {
	Row   uint32
	Index uint32
}

// CurrentPositionReply carries the seat with its current position.
type CurrentPositionReply struct {
	Seat *Seat
}

// GetLocation returns the location or nil.
func (m *Seat) GetLocation() *SeatLocation {
	if m == nil {
		return nil
	}
	return m.Location
}

// GetPosition returns the position or nil.
func (m *Seat) GetPosition() *Position {
	if m == nil {
		return nil
	}
	return m.Position
}

// GetSeat returns the seat or nil.
func (m *MoveRequest) GetSeat() *Seat {
	if m == nil {
		return nil
	}
	return m.Seat
}

// GetSeat returns the seat location or nil.
func (m *MoveComponentRequest) GetSeat() *SeatLocation {
	if m == nil {
		return nil
	}
	return m.Seat
}

// GetSeat returns the seat or nil.
func (m *CurrentPositionReply) GetSeat() *Seat {
	if m == nil {
		return nil
	}
	return m.Seat
}

// String renders the location as "row/index".
func (m *SeatLocation) String() string {
	if m == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%d/%d", m.Row, m.Index)
}

// Component returns the position of one component.
func (m *Position) Component(c SeatComponent) (int32, bool) {
	if m == nil {
		return 0, false
	}
	switch c {
	case SeatComponentBase:
		return m.Base, true
	case SeatComponentCushion:
		return m.Cushion, true
	case SeatComponentLumbar:
		return m.Lumbar, true
	case SeatComponentSideBolster:
		return m.SideBolster, true
	case SeatComponentHeadRestraint:
		return m.HeadRestraint, true
	}
	return 0, false
}

// --- Wire encoding ---
//
// Field numbers follow seats.proto of the service catalog. Zero scalars and
// nil messages are omitted, unknown fields are skipped.

func appendUint(b []byte, num protowire.Number, v uint64) []byte {
	if v == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, v)
}

// appendInt encodes int32 the way protobuf does: negative values are sign
// extended to 64 bits.
func appendInt(b []byte, num protowire.Number, v int32) []byte {
	return appendUint(b, num, uint64(int64(v)))
}

func appendMessage(b []byte, num protowire.Number, m Message, present bool) []byte {
	if !present {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, m.appendWire(nil))
}

// fieldFunc decodes one field. It returns the number of bytes consumed, 0
// for fields it does not know, or a negative protowire error code.
type fieldFunc func(num protowire.Number, typ protowire.Type, b []byte) int

func consumeFields(b []byte, field fieldFunc) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]

		m := field(num, typ, b)
		if m == 0 {
			m = protowire.ConsumeFieldValue(num, typ, b)
		}
		if m < 0 {
			return fmt.Errorf("field %d: %w", num, protowire.ParseError(m))
		}
		b = b[m:]
	}
	return nil
}

func consumeUint32(typ protowire.Type, b []byte, dst *uint32) int {
	if typ != protowire.VarintType {
		return 0
	}
	v, n := protowire.ConsumeVarint(b)
	if n > 0 {
		*dst = uint32(v)
	}
	return n
}

func consumeInt32(typ protowire.Type, b []byte, dst *int32) int {
	if typ != protowire.VarintType {
		return 0
	}
	v, n := protowire.ConsumeVarint(b)
	if n > 0 {
		*dst = int32(v)
	}
	return n
}

func consumeMessage(typ protowire.Type, b []byte, m Message) (int, error) {
	if typ != protowire.BytesType {
		return 0, nil
	}
	v, n := protowire.ConsumeBytes(b)
	if n < 0 {
		return n, nil
	}
	return n, m.consumeWire(v)
}

func (m *SeatLocation) appendWire(b []byte) []byte {
	if m == nil {
		return b
	}
	b = appendUint(b, 1, uint64(m.Row))
	return appendUint(b, 2, uint64(m.Index))
}

func (m *SeatLocation) consumeWire(b []byte) error {
	*m = SeatLocation{}
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) int {
		switch num {
		case 1:
			return consumeUint32(typ, b, &m.Row)
		case 2:
			return consumeUint32(typ, b, &m.Index)
		}
		return 0
	})
}

func (m *Position) appendWire(b []byte) []byte {
	if m == nil {
		return b
	}
	b = appendInt(b, 1, m.Base)
	b = appendInt(b, 2, m.Cushion)
	b = appendInt(b, 3, m.Lumbar)
	b = appendInt(b, 4, m.SideBolster)
	return appendInt(b, 5, m.HeadRestraint)
}

func (m *Position) consumeWire(b []byte) error {
	*m = Position{}
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) int {
		switch num {
		case 1:
			return consumeInt32(typ, b, &m.Base)
		case 2:
			return consumeInt32(typ, b, &m.Cushion)
		case 3:
			return consumeInt32(typ, b, &m.Lumbar)
		case 4:
			return consumeInt32(typ, b, &m.SideBolster)
		case 5:
			return consumeInt32(typ, b, &m.HeadRestraint)
		}
		return 0
	})
}

func (m *Seat) appendWire(b []byte) []byte {
	if m == nil {
		return b
	}
	b = appendMessage(b, 1, m.Location, m.Location != nil)
	return appendMessage(b, 2, m.Position, m.Position != nil)
}

func (m *Seat) consumeWire(b []byte) error {
	*m = Seat{}
	var err error
	perr := consumeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) int {
		var n int
		switch num {
		case 1:
			if m.Location == nil {
				m.Location = &SeatLocation{}
			}
			n, err = consumeMessage(typ, b, m.Location)
		case 2:
			if m.Position == nil {
				m.Position = &Position{}
			}
			n, err = consumeMessage(typ, b, m.Position)
		}
		if err != nil {
			return -1
		}
		return n
	})
	if err != nil {
		return err
	}
	return perr
}

func (m *MoveRequest) appendWire(b []byte) []byte {
	if m == nil {
		return b
	}
	return appendMessage(b, 1, m.Seat, m.Seat != nil)
}

func (m *MoveRequest) consumeWire(b []byte) error {
	*m = MoveRequest{}
	return consumeSingle(b, 1, func() Message {
		m.Seat = &Seat{}
		return m.Seat
	})
}

func (m *MoveReply) appendWire(b []byte) []byte { return b }

func (m *MoveReply) consumeWire(b []byte) error {
	return consumeFields(b, func(protowire.Number, protowire.Type, []byte) int { return 0 })
}

func (m *MoveComponentRequest) appendWire(b []byte) []byte {
	if m == nil {
		return b
	}
	b = appendMessage(b, 1, m.Seat, m.Seat != nil)
	b = appendInt(b, 2, int32(m.Component))
	return appendInt(b, 3, m.Position)
}

func (m *MoveComponentRequest) consumeWire(b []byte) error {
	*m = MoveComponentRequest{}
	var err error
	perr := consumeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) int {
		switch num {
		case 1:
			if m.Seat == nil {
				m.Seat = &SeatLocation{}
			}
			var n int
			n, err = consumeMessage(typ, b, m.Seat)
			if err != nil {
				return -1
			}
			return n
		case 2:
			var v int32
			n := consumeInt32(typ, b, &v)
			m.Component = SeatComponent(v)
			return n
		case 3:
			return consumeInt32(typ, b, &m.Position)
		}
		return 0
	})
	if err != nil {
		return err
	}
	return perr
}

func (m *MoveComponentReply) appendWire(b []byte) []byte { return b }

func (m *MoveComponentReply) consumeWire(b []byte) error {
	return consumeFields(b, func(protowire.Number, protowire.Type, []byte) int { return 0 })
}

func (m *CurrentPositionRequest) appendWire(b []byte) []byte {
	if m == nil {
		return b
	}
	b = appendUint(b, 1, uint64(m.Row))
	return appendUint(b, 2, uint64(m.Index))
}

func (m *CurrentPositionRequest) consumeWire(b []byte) error {
	*m = CurrentPositionRequest{}
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) int {
		switch num {
		case 1:
			return consumeUint32(typ, b, &m.Row)
		case 2:
			return consumeUint32(typ, b, &m.Index)
		}
		return 0
	})
}

func (m *CurrentPositionReply) appendWire(b []byte) []byte {
	if m == nil {
		return b
	}
	return appendMessage(b, 1, m.Seat, m.Seat != nil)
}

func (m *CurrentPositionReply) consumeWire(b []byte) error {
	*m = CurrentPositionReply{}
	return consumeSingle(b, 1, func() Message {
		m.Seat = &Seat{}
		return m.Seat
	})
}

// consumeSingle decodes messages whose only known field is the embedded
// message at field number num.
func consumeSingle(b []byte, num protowire.Number, target func() Message) error {
	var err error
	var msg Message
	perr := consumeFields(b, func(n protowire.Number, typ protowire.Type, b []byte) int {
		if n != num {
			return 0
		}
		if msg == nil {
			msg = target()
		}
		var used int
		used, err = consumeMessage(typ, b, msg)
		if err != nil {
			return -1
		}
		return used
	})
	if err != nil {
		return err
	}
	return perr
}
