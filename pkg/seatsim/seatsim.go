// Package seatsim implements the comfort seats service on top of a vehicle
// tree. Seat positions are kept in the Cabin.Seat data points, so anything
// subscribed to the tree observes the moves.
package seatsim

import (
	"context"
	"math"
	"sync"

	"connectrpc.com/connect"

	"github.com/sdv-edge/vehicle-model-go/pkg/seats"
	"github.com/sdv-edge/vehicle-model-go/pkg/vss"
)

// MaxPosition is the upper bound of a per-mille component position.
const MaxPosition = 1000

// headrestStep is the per-mille resolution of Headrest.Height, which holds
// uint8 values in [0, 250].
const headrestStep = 4

// Simulator serves seats.Handler from the seats of a vehicle tree.
type Simulator struct {
	mu         sync.Mutex
	vehicle    *vss.Vehicle
	components map[seats.SeatComponent]bool
}

// Option configures a Simulator.
type Option func(*Simulator)

// WithComponents limits the adjustable components. MoveComponent answers
// NOT_FOUND for the others and Move leaves them untouched.
func WithComponents(components ...seats.SeatComponent) Option {
	return func(s *Simulator) {
		s.components = make(map[seats.SeatComponent]bool, len(components))
		for _, c := range components {
			s.components[c] = true
		}
	}
}

// New creates a Simulator over v.
func New(v *vss.Vehicle, opts ...Option) *Simulator {
	s := &Simulator{vehicle: v}
	WithComponents(
		seats.SeatComponentBase,
		seats.SeatComponentCushion,
		seats.SeatComponentLumbar,
		seats.SeatComponentSideBolster,
		seats.SeatComponentHeadRestraint,
	)(s)
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Vehicle returns the simulated tree.
func (s *Simulator) Vehicle() *vss.Vehicle {
	return s.vehicle
}

// Move sets every supported component of the seat to the requested position.
func (s *Simulator) Move(_ context.Context, req *seats.MoveRequest) (*seats.MoveReply, error) {
	loc := req.GetSeat().GetLocation()
	if loc == nil {
		return nil, seats.Errorf(connect.CodeInvalidArgument, "seat location is required")
	}
	seat, err := s.seat(loc.Row, loc.Index)
	if err != nil {
		return nil, err
	}
	pos := req.GetSeat().GetPosition()
	if pos == nil {
		pos = &seats.Position{}
	}

	for c := range s.components {
		v, _ := pos.Component(c)
		if err := checkPosition(c, v); err != nil {
			return nil, err
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for c := range s.components {
		v, _ := pos.Component(c)
		write(seat, c, v)
	}
	return &seats.MoveReply{}, nil
}

// MoveComponent sets one component of the seat.
func (s *Simulator) MoveComponent(_ context.Context, req *seats.MoveComponentRequest) (*seats.MoveComponentReply, error) {
	loc := req.GetSeat()
	if loc == nil {
		return nil, seats.Errorf(connect.CodeInvalidArgument, "seat location is required")
	}
	seat, err := s.seat(loc.Row, loc.Index)
	if err != nil {
		return nil, err
	}
	if !s.components[req.Component] {
		return nil, seats.Errorf(connect.CodeNotFound, "seat %s has no component %s", loc, req.Component)
	}
	if err := checkPosition(req.Component, req.Position); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	write(seat, req.Component, req.Position)
	return &seats.MoveComponentReply{}, nil
}

// CurrentPosition reads the seat position back from the tree. Components
// that were never set report 0.
func (s *Simulator) CurrentPosition(_ context.Context, req *seats.CurrentPositionRequest) (*seats.CurrentPositionReply, error) {
	seat, err := s.seat(req.Row, req.Index)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	pos := &seats.Position{}
	for c := range s.components {
		setComponent(pos, c, read(seat, c))
	}
	return &seats.CurrentPositionReply{Seat: &seats.Seat{
		Location: &seats.SeatLocation{Row: req.Row, Index: req.Index},
		Position: pos,
	}}, nil
}

// seat resolves a location through the Row and Pos accessors. Index errors
// map to OUT_OF_RANGE.
func (s *Simulator) seat(row, index uint32) (*vss.CabinSeat, error) {
	r, err := s.vehicle.Cabin.Seat.Row(clampIndex(row))
	if err != nil {
		return nil, seats.Errorf(connect.CodeOutOfRange, "seat %d/%d: %v", row, index, err)
	}
	seat, err := r.Pos(clampIndex(index))
	if err != nil {
		return nil, seats.Errorf(connect.CodeOutOfRange, "seat %d/%d: %v", row, index, err)
	}
	return seat, nil
}

// clampIndex converts a wire index to int. Values past MaxInt32 stay out
// of range.
func clampIndex(v uint32) int {
	if v > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(v)
}

func checkPosition(c seats.SeatComponent, v int32) error {
	if v < 0 || v > MaxPosition {
		return seats.Errorf(connect.CodeInvalidArgument, "%s position %d outside [0, %d]", c, v, MaxPosition)
	}
	return nil
}

func write(seat *vss.CabinSeat, c seats.SeatComponent, v int32) {
	switch c {
	case seats.SeatComponentBase:
		seat.Position.Set(uint16(v))
	case seats.SeatComponentCushion:
		seat.Seating.Length.Set(uint16(v))
	case seats.SeatComponentLumbar:
		seat.Backrest.Lumbar.Support.Set(float32(v) / 10)
	case seats.SeatComponentSideBolster:
		seat.Backrest.SideBolster.Support.Set(float32(v) / 10)
	case seats.SeatComponentHeadRestraint:
		seat.Headrest.Height.Set(uint8((v + headrestStep/2) / headrestStep))
	}
}

func read(seat *vss.CabinSeat, c seats.SeatComponent) int32 {
	switch c {
	case seats.SeatComponentBase:
		v, _ := seat.Position.Value()
		return int32(v)
	case seats.SeatComponentCushion:
		v, _ := seat.Seating.Length.Value()
		return int32(v)
	case seats.SeatComponentLumbar:
		v, _ := seat.Backrest.Lumbar.Support.Value()
		return int32(math.Round(float64(v) * 10))
	case seats.SeatComponentSideBolster:
		v, _ := seat.Backrest.SideBolster.Support.Value()
		return int32(math.Round(float64(v) * 10))
	case seats.SeatComponentHeadRestraint:
		v, _ := seat.Headrest.Height.Value()
		return int32(v) * headrestStep
	}
	return 0
}

func setComponent(p *seats.Position, c seats.SeatComponent, v int32) {
	switch c {
	case seats.SeatComponentBase:
		p.Base = v
	case seats.SeatComponentCushion:
		p.Cushion = v
	case seats.SeatComponentLumbar:
		p.Lumbar = v
	case seats.SeatComponentSideBolster:
		p.SideBolster = v
	case seats.SeatComponentHeadRestraint:
		p.HeadRestraint = v
	}
}

var _ seats.Handler = (*Simulator)(nil)
