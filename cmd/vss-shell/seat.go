package main

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/sdv-edge/vehicle-model-go/pkg/seats"
)

// seatCallTimeout bounds every seat service call.
const seatCallTimeout = 5 * time.Second

func (s *Shell) cmdSeat(ctx context.Context, args []string) {
	if len(args) < 1 {
		fmt.Fprintln(s.out, "Usage: seat move|component|position <row> <index> ...")
		return
	}
	switch args[0] {
	case "move":
		s.cmdSeatMove(ctx, args[1:])
	case "component":
		s.cmdSeatComponent(ctx, args[1:])
	case "position", "pos":
		s.cmdSeatPosition(ctx, args[1:])
	default:
		fmt.Fprintf(s.out, "Unknown seat command: %s\n", args[0])
	}
}

// service returns the seat service, connecting on first use.
func (s *Shell) service(ctx context.Context) (seatService, error) {
	if s.seats != nil {
		return s.seats, nil
	}
	if s.connect == nil {
		return nil, errNoSeatService
	}
	svc, url, err := s.connect(ctx)
	if err != nil {
		return nil, err
	}
	s.seats, s.seatsURL = svc, url
	fmt.Fprintf(s.out, "Connected to seat service at %s\n", url)
	return svc, nil
}

// parseLocation parses <row> <index>.
func parseLocation(args []string) (*seats.SeatLocation, error) {
	if len(args) < 2 {
		return nil, fmt.Errorf("row and index required")
	}
	row, err := strconv.ParseUint(args[0], 10, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid row %q", args[0])
	}
	index, err := strconv.ParseUint(args[1], 10, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid index %q", args[1])
	}
	return &seats.SeatLocation{Row: uint32(row), Index: uint32(index)}, nil
}

func parsePerMille(s string) (int32, error) {
	v, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid position %q", s)
	}
	return int32(v), nil
}

func (s *Shell) cmdSeatMove(ctx context.Context, args []string) {
	if len(args) != 7 {
		fmt.Fprintln(s.out, "Usage: seat move <row> <index> <base> <cushion> <lumbar> <side-bolster> <head-restraint>")
		return
	}
	loc, err := parseLocation(args)
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	var values [5]int32
	for i, raw := range args[2:] {
		if values[i], err = parsePerMille(raw); err != nil {
			fmt.Fprintf(s.out, "Error: %v\n", err)
			return
		}
	}
	seat := &seats.Seat{
		Location: loc,
		Position: &seats.Position{
			Base:          values[0],
			Cushion:       values[1],
			Lumbar:        values[2],
			SideBolster:   values[3],
			HeadRestraint: values[4],
		},
	}

	svc, err := s.service(ctx)
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	callCtx, cancel := context.WithTimeout(ctx, seatCallTimeout)
	defer cancel()
	if _, err := svc.Move(callCtx, seat); err != nil {
		s.printCallError("Move", err)
		return
	}
	fmt.Fprintf(s.out, "Moved seat %s\n", loc)
	s.mirrorSeat(ctx, seat)
}

func (s *Shell) cmdSeatComponent(ctx context.Context, args []string) {
	if len(args) != 4 {
		fmt.Fprintln(s.out, "Usage: seat component <row> <index> <component> <position>")
		fmt.Fprintln(s.out, "  components: base, cushion, lumbar, side_bolster, head_restraint")
		return
	}
	loc, err := parseLocation(args)
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	component, err := seats.ParseSeatComponent(args[2])
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	position, err := parsePerMille(args[3])
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}

	svc, err := s.service(ctx)
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	callCtx, cancel := context.WithTimeout(ctx, seatCallTimeout)
	defer cancel()
	if _, err := svc.MoveComponent(callCtx, loc, component, position); err != nil {
		s.printCallError("MoveComponent", err)
		return
	}
	fmt.Fprintf(s.out, "Moved %s of seat %s to %d\n", component, loc, position)

	if _, err := s.mirror.MoveComponent(ctx, &seats.MoveComponentRequest{
		Seat:      loc,
		Component: component,
		Position:  position,
	}); err != nil {
		fmt.Fprintf(s.out, "Warning: local tree not updated: %v\n", err)
	}
}

func (s *Shell) cmdSeatPosition(ctx context.Context, args []string) {
	loc, err := parseLocation(args)
	if err != nil {
		fmt.Fprintln(s.out, "Usage: seat position <row> <index>")
		return
	}

	svc, err := s.service(ctx)
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	callCtx, cancel := context.WithTimeout(ctx, seatCallTimeout)
	defer cancel()
	reply, err := svc.CurrentPosition(callCtx, loc.Row, loc.Index)
	if err != nil {
		s.printCallError("CurrentPosition", err)
		return
	}

	pos := reply.GetSeat().GetPosition()
	if pos == nil {
		pos = &seats.Position{}
	}
	fmt.Fprintf(s.out, "Seat %s:\n", loc)
	fmt.Fprintf(s.out, "  %-16s %d\n", "base:", pos.Base)
	fmt.Fprintf(s.out, "  %-16s %d\n", "cushion:", pos.Cushion)
	fmt.Fprintf(s.out, "  %-16s %d\n", "lumbar:", pos.Lumbar)
	fmt.Fprintf(s.out, "  %-16s %d\n", "side bolster:", pos.SideBolster)
	fmt.Fprintf(s.out, "  %-16s %d\n", "head restraint:", pos.HeadRestraint)

	s.mirrorSeat(ctx, &seats.Seat{Location: loc, Position: pos})
}

// mirrorSeat writes a seat position into the local tree.
func (s *Shell) mirrorSeat(ctx context.Context, seat *seats.Seat) {
	if _, err := s.mirror.Move(ctx, &seats.MoveRequest{Seat: seat}); err != nil {
		fmt.Fprintf(s.out, "Warning: local tree not updated: %v\n", err)
	}
}

func (s *Shell) printCallError(procedure string, err error) {
	fmt.Fprintf(s.out, "%s failed: %s: %v\n", procedure, seats.StatusName(err), err)
}
