package seatsim

import (
	"context"
	"net/http"
	"testing"

	"connectrpc.com/connect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sdv-edge/vehicle-model-go/pkg/model"
	"github.com/sdv-edge/vehicle-model-go/pkg/seats"
	"github.com/sdv-edge/vehicle-model-go/pkg/transport"
	"github.com/sdv-edge/vehicle-model-go/pkg/vss"
)

func frontLeft(t *testing.T, v *vss.Vehicle) *vss.CabinSeat {
	t.Helper()
	row, err := v.Cabin.Seat.Row(1)
	require.NoError(t, err)
	seat, err := row.Pos(1)
	require.NoError(t, err)
	return seat
}

func moveRequest(row, index uint32, pos *seats.Position) *seats.MoveRequest {
	return &seats.MoveRequest{Seat: &seats.Seat{
		Location: &seats.SeatLocation{Row: row, Index: index},
		Position: pos,
	}}
}

func TestMoveWritesTree(t *testing.T) {
	v := vss.New()
	sim := New(v)
	ctx := context.Background()

	_, err := sim.Move(ctx, moveRequest(1, 1, &seats.Position{
		Base:          500,
		Cushion:       250,
		Lumbar:        333,
		SideBolster:   1000,
		HeadRestraint: 600,
	}))
	require.NoError(t, err)

	seat := frontLeft(t, v)
	base, ok := seat.Position.Value()
	assert.True(t, ok)
	assert.Equal(t, uint16(500), base)

	cushion, _ := seat.Seating.Length.Value()
	assert.Equal(t, uint16(250), cushion)

	lumbar, _ := seat.Backrest.Lumbar.Support.Value()
	assert.InDelta(t, 33.3, lumbar, 0.001)

	bolster, _ := seat.Backrest.SideBolster.Support.Value()
	assert.InDelta(t, 100, bolster, 0.001)

	head, _ := seat.Headrest.Height.Value()
	assert.Equal(t, uint8(150), head)

	reply, err := sim.CurrentPosition(ctx, &seats.CurrentPositionRequest{Row: 1, Index: 1})
	require.NoError(t, err)
	assert.Equal(t, &seats.SeatLocation{Row: 1, Index: 1}, reply.GetSeat().GetLocation())
	assert.Equal(t, &seats.Position{
		Base:          500,
		Cushion:       250,
		Lumbar:        333,
		SideBolster:   1000,
		HeadRestraint: 600,
	}, reply.GetSeat().GetPosition())
}

func TestHeadRestraintResolution(t *testing.T) {
	tests := []struct {
		in, want int32
	}{
		{0, 0},
		{1, 0},
		{2, 4},
		{500, 500},
		{998, 1000},
		{1000, 1000},
	}
	for _, tt := range tests {
		sim := New(vss.New())
		_, err := sim.MoveComponent(context.Background(), &seats.MoveComponentRequest{
			Seat:      &seats.SeatLocation{Row: 2, Index: 3},
			Component: seats.SeatComponentHeadRestraint,
			Position:  tt.in,
		})
		require.NoError(t, err)
		reply, err := sim.CurrentPosition(context.Background(), &seats.CurrentPositionRequest{Row: 2, Index: 3})
		require.NoError(t, err)
		assert.Equal(t, tt.want, reply.Seat.Position.HeadRestraint, "input %d", tt.in)
	}
}

func TestCurrentPositionUnset(t *testing.T) {
	sim := New(vss.New())
	reply, err := sim.CurrentPosition(context.Background(), &seats.CurrentPositionRequest{Row: 2, Index: 2})
	require.NoError(t, err)
	assert.Equal(t, &seats.Position{}, reply.Seat.Position)
}

func TestMoveComponentTouchesOneDataPoint(t *testing.T) {
	v := vss.New()
	sim := New(v)

	var changed []string
	cancel := v.Cabin.Seat.Subscribe(model.SubscriberFunc(func(leaf model.Leaf) {
		changed = append(changed, leaf.Path())
	}))
	defer cancel()

	_, err := sim.MoveComponent(context.Background(), &seats.MoveComponentRequest{
		Seat:      &seats.SeatLocation{Row: 1, Index: 2},
		Component: seats.SeatComponentCushion,
		Position:  700,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Vehicle.Cabin.Seat.Row1.Pos2.Seating.Length"}, changed)
}

func TestErrors(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name string
		call func(*Simulator) error
		want connect.Code
	}{
		{
			name: "move row out of range",
			call: func(s *Simulator) error {
				_, err := s.Move(ctx, moveRequest(3, 1, &seats.Position{}))
				return err
			},
			want: connect.CodeOutOfRange,
		},
		{
			name: "move index zero",
			call: func(s *Simulator) error {
				_, err := s.Move(ctx, moveRequest(1, 0, &seats.Position{}))
				return err
			},
			want: connect.CodeOutOfRange,
		},
		{
			name: "move huge index",
			call: func(s *Simulator) error {
				_, err := s.Move(ctx, moveRequest(1, 1<<31+5, &seats.Position{}))
				return err
			},
			want: connect.CodeOutOfRange,
		},
		{
			name: "move without location",
			call: func(s *Simulator) error {
				_, err := s.Move(ctx, &seats.MoveRequest{})
				return err
			},
			want: connect.CodeInvalidArgument,
		},
		{
			name: "move position too large",
			call: func(s *Simulator) error {
				_, err := s.Move(ctx, moveRequest(1, 1, &seats.Position{Lumbar: 1001}))
				return err
			},
			want: connect.CodeInvalidArgument,
		},
		{
			name: "move negative position",
			call: func(s *Simulator) error {
				_, err := s.Move(ctx, moveRequest(1, 1, &seats.Position{Base: -1}))
				return err
			},
			want: connect.CodeInvalidArgument,
		},
		{
			name: "component unknown",
			call: func(s *Simulator) error {
				_, err := s.MoveComponent(ctx, &seats.MoveComponentRequest{
					Seat:      &seats.SeatLocation{Row: 1, Index: 1},
					Component: seats.SeatComponent(9),
				})
				return err
			},
			want: connect.CodeNotFound,
		},
		{
			name: "component seat absent",
			call: func(s *Simulator) error {
				_, err := s.MoveComponent(ctx, &seats.MoveComponentRequest{
					Seat:      &seats.SeatLocation{Row: 1, Index: 4},
					Component: seats.SeatComponentBase,
				})
				return err
			},
			want: connect.CodeOutOfRange,
		},
		{
			name: "position seat absent",
			call: func(s *Simulator) error {
				_, err := s.CurrentPosition(ctx, &seats.CurrentPositionRequest{Row: 0, Index: 1})
				return err
			},
			want: connect.CodeOutOfRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call(New(vss.New()))
			require.Error(t, err)
			assert.Equal(t, tt.want, seats.CodeOf(err))
		})
	}
}

func TestInvalidMoveLeavesTreeUntouched(t *testing.T) {
	v := vss.New()
	sim := New(v)
	_, err := sim.Move(context.Background(), moveRequest(1, 1, &seats.Position{Base: 100, HeadRestraint: 2000}))
	require.Error(t, err)

	_, ok := frontLeft(t, v).Position.Value()
	assert.False(t, ok)
}

func TestWithComponents(t *testing.T) {
	v := vss.New()
	sim := New(v, WithComponents(seats.SeatComponentBase))
	ctx := context.Background()

	_, err := sim.MoveComponent(ctx, &seats.MoveComponentRequest{
		Seat:      &seats.SeatLocation{Row: 1, Index: 1},
		Component: seats.SeatComponentLumbar,
		Position:  10,
	})
	assert.Equal(t, connect.CodeNotFound, seats.CodeOf(err))

	// Unsupported components are neither validated nor written.
	_, err = sim.Move(ctx, moveRequest(1, 1, &seats.Position{Base: 10, Lumbar: 5000}))
	require.NoError(t, err)
	_, ok := frontLeft(t, v).Backrest.Lumbar.Support.Value()
	assert.False(t, ok)
	assert.Same(t, v, sim.Vehicle())
}

func TestServedOverGRPC(t *testing.T) {
	v := vss.New()
	mux := http.NewServeMux()
	mux.Handle(seats.NewHandler(New(v)))

	srv, err := transport.NewServer(transport.ServerConfig{Address: "127.0.0.1:0", Handler: mux})
	require.NoError(t, err)
	require.NoError(t, srv.Start(context.Background()))
	t.Cleanup(func() { _ = srv.Stop() })

	client, err := seats.NewClient(seats.ClientConfig{BaseURL: srv.URL()})
	require.NoError(t, err)
	ctx := context.Background()

	_, err = client.MoveComponent(ctx, &seats.SeatLocation{Row: 2, Index: 1}, seats.SeatComponentBase, 800)
	require.NoError(t, err)

	reply, err := client.CurrentPosition(ctx, 2, 1)
	require.NoError(t, err)
	assert.Equal(t, int32(800), reply.GetSeat().GetPosition().Base)

	_, err = client.CurrentPosition(ctx, 5, 1)
	assert.Equal(t, connect.CodeOutOfRange, seats.CodeOf(err))

	_, err = client.Move(ctx, &seats.Seat{
		Location: &seats.SeatLocation{Row: 1, Index: 1},
		Position: &seats.Position{Cushion: -4},
	})
	assert.Equal(t, connect.CodeInvalidArgument, seats.CodeOf(err))
}
