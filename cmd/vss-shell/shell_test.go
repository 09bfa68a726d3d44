package main

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"path/filepath"
	"testing"

	"connectrpc.com/connect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sdv-edge/vehicle-model-go/pkg/persistence"
	"github.com/sdv-edge/vehicle-model-go/pkg/seats"
	"github.com/sdv-edge/vehicle-model-go/pkg/seatsim"
	"github.com/sdv-edge/vehicle-model-go/pkg/transport"
	"github.com/sdv-edge/vehicle-model-go/pkg/vss"
)

// fakeSeats records calls and answers with reply or err.
type fakeSeats struct {
	moves      []*seats.Seat
	components []seats.SeatComponent
	reply      *seats.CurrentPositionReply
	err        error
}

func (f *fakeSeats) Move(_ context.Context, seat *seats.Seat) (*seats.MoveReply, error) {
	f.moves = append(f.moves, seat)
	if f.err != nil {
		return nil, f.err
	}
	return &seats.MoveReply{}, nil
}

func (f *fakeSeats) MoveComponent(_ context.Context, _ *seats.SeatLocation, c seats.SeatComponent, _ int32) (*seats.MoveComponentReply, error) {
	f.components = append(f.components, c)
	if f.err != nil {
		return nil, f.err
	}
	return &seats.MoveComponentReply{}, nil
}

func (f *fakeSeats) CurrentPosition(context.Context, uint32, uint32) (*seats.CurrentPositionReply, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.reply, nil
}

func fakeConnect(svc seatService) connectFunc {
	return func(context.Context) (seatService, string, error) {
		return svc, "http://fake:50051", nil
	}
}

func newTestShell(t *testing.T, connect connectFunc) (*Shell, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	store := persistence.NewSnapshotStore(filepath.Join(t.TempDir(), "snapshot.json"))
	sh := NewShell(&out, vss.New(), store, connect)
	t.Cleanup(sh.Close)
	return sh, &out
}

// exec runs a command line and returns its output.
func exec(t *testing.T, sh *Shell, out *bytes.Buffer, line string) string {
	t.Helper()
	out.Reset()
	assert.True(t, sh.Execute(context.Background(), line))
	return out.String()
}

func TestListAndTree(t *testing.T) {
	sh, out := newTestShell(t, nil)

	got := exec(t, sh, out, "ls Cabin.Seat")
	assert.Equal(t, "Vehicle.Cabin.Seat:\n  Row1/ (3 children)\n  Row2/ (3 children)\n", got)

	got = exec(t, sh, out, "tree Cabin/Seat 1")
	assert.Contains(t, got, "Seat/ (2 children)")
	assert.Contains(t, got, "  Row1/ (3 children)")

	assert.Contains(t, exec(t, sh, out, "tree Cabin x"), "Invalid depth: x")
	assert.Contains(t, exec(t, sh, out, "ls Cabin.Seat.Row3"), "Error:")
	assert.Contains(t, exec(t, sh, out, "ls Cabin..Seat"), "Invalid path")
}

func TestGetSet(t *testing.T) {
	sh, out := newTestShell(t, nil)

	assert.Equal(t, "Speed = (unset) (float sensor, km/h)\n", exec(t, sh, out, "get Speed"))
	assert.Equal(t, "Position = 420 mm (uint16 actuator, mm, [0, -])\n",
		exec(t, sh, out, "set Cabin.Seat.Row1.Pos1.Position 420"))

	got, ok := sh.vehicle.Cabin.Seat.Row1.Pos1.Position.Value()
	assert.True(t, ok)
	assert.Equal(t, uint16(420), got)

	assert.Contains(t, exec(t, sh, out, "set Cabin.Seat.Row1.Pos1.Position -1"), "Error:")
	assert.Contains(t, exec(t, sh, out, "get Cabin.Seat"), "not a data point")
	assert.Contains(t, exec(t, sh, out, "get"), "Usage: get <path>")
	assert.Contains(t, exec(t, sh, out, "set Speed"), "Usage: set <path> <value>")

	// String values keep their spaces.
	exec(t, sh, out, "set Cabin.Infotainment.Media.Played.Source Radio One")
	src, _ := sh.vehicle.Cabin.Infotainment.Media.Played.Source.Value()
	assert.Equal(t, "Radio One", src)
}

func TestWatch(t *testing.T) {
	sh, out := newTestShell(t, nil)

	assert.Equal(t, "Watching Vehicle.Cabin.Seat.Row1.Pos1.Position\n",
		exec(t, sh, out, "watch Cabin.Seat.Row1.Pos1.Position"))
	assert.Contains(t, exec(t, sh, out, "watch Vehicle.Cabin.Seat.Row1.Pos1.Position"), "Already watching")

	got := exec(t, sh, out, "set Cabin.Seat.Row1.Pos1.Position 300")
	assert.Contains(t, got, "[WATCH] Vehicle.Cabin.Seat.Row1.Pos1.Position = 300 mm")

	// Siblings under the same parent are filtered out.
	got = exec(t, sh, out, "set Cabin.Seat.Row1.Pos1.Height 10")
	assert.NotContains(t, got, "[WATCH]")

	exec(t, sh, out, "watch Cabin.Seat.Row2")
	got = exec(t, sh, out, "set Cabin.Seat.Row2.Pos3.IsBelted true")
	assert.Contains(t, got, "[WATCH] Vehicle.Cabin.Seat.Row2.Pos3.IsBelted = true")

	assert.Equal(t, "Watching:\n  Vehicle.Cabin.Seat.Row1.Pos1.Position\n  Vehicle.Cabin.Seat.Row2\n",
		exec(t, sh, out, "watch"))

	assert.Contains(t, exec(t, sh, out, "unwatch Cabin.Seat.Row2"), "Stopped watching Vehicle.Cabin.Seat.Row2")
	assert.NotContains(t, exec(t, sh, out, "set Cabin.Seat.Row2.Pos3.IsBelted false"), "[WATCH]")
	assert.Contains(t, exec(t, sh, out, "unwatch Cabin.Seat.Row2"), "Not watching")

	exec(t, sh, out, "unwatch")
	assert.Equal(t, "No watches\n", exec(t, sh, out, "watch"))
}

func TestSaveLoad(t *testing.T) {
	sh, out := newTestShell(t, nil)

	exec(t, sh, out, "set Speed 42.5")
	exec(t, sh, out, "set Cabin.Seat.Row1.Pos2.Position 250")
	assert.Contains(t, exec(t, sh, out, "save"), "Saved 2 values")

	fresh := NewShell(out, vss.New(), sh.store, nil)
	t.Cleanup(fresh.Close)
	assert.Contains(t, exec(t, fresh, out, "load"), "Restored 2 values")

	speed, ok := fresh.vehicle.Speed.Value()
	assert.True(t, ok)
	assert.InDelta(t, 42.5, speed, 0.001)
	pos, _ := fresh.vehicle.Cabin.Seat.Row1.Pos2.Position.Value()
	assert.Equal(t, uint16(250), pos)
}

func TestLoadWithoutSnapshot(t *testing.T) {
	sh, out := newTestShell(t, nil)
	assert.Contains(t, exec(t, sh, out, "load"), "No snapshot at")

	noStore := NewShell(out, vss.New(), nil, nil)
	assert.Equal(t, "No snapshot file configured\n", exec(t, noStore, out, "save"))
}

func TestSeatWithoutService(t *testing.T) {
	sh, out := newTestShell(t, nil)
	assert.Contains(t, exec(t, sh, out, "seat position 1 1"), errNoSeatService.Error())
}

func TestSeatMoveMirrorsTree(t *testing.T) {
	fake := &fakeSeats{}
	sh, out := newTestShell(t, fakeConnect(fake))

	got := exec(t, sh, out, "seat move 1 1 500 0 500 0 1000")
	assert.Contains(t, got, "Connected to seat service at http://fake:50051")
	assert.Contains(t, got, "Moved seat")
	require.Len(t, fake.moves, 1)
	assert.Equal(t, int32(1000), fake.moves[0].Position.HeadRestraint)

	base, _ := sh.vehicle.Cabin.Seat.Row1.Pos1.Position.Value()
	assert.Equal(t, uint16(500), base)

	assert.Contains(t, exec(t, sh, out, "seat move 1 1 500"), "Usage: seat move")
	assert.Contains(t, exec(t, sh, out, "seat move 1 x 1 2 3 4 5"), "invalid index")
	assert.Len(t, fake.moves, 1)
}

func TestSeatComponent(t *testing.T) {
	fake := &fakeSeats{}
	sh, out := newTestShell(t, fakeConnect(fake))

	got := exec(t, sh, out, "seat component 2 3 lumbar 400")
	assert.Contains(t, got, "Moved LUMBAR of seat")
	assert.Equal(t, []seats.SeatComponent{seats.SeatComponentLumbar}, fake.components)

	lumbar, _ := sh.vehicle.Cabin.Seat.Row2.Pos3.Backrest.Lumbar.Support.Value()
	assert.InDelta(t, 40, lumbar, 0.001)

	assert.Contains(t, exec(t, sh, out, "seat component 1 1 armrest 1"), "unknown seat component")
}

func TestSeatPosition(t *testing.T) {
	fake := &fakeSeats{reply: &seats.CurrentPositionReply{Seat: &seats.Seat{
		Location: &seats.SeatLocation{Row: 1, Index: 2},
		Position: &seats.Position{Base: 120, Cushion: 30},
	}}}
	sh, out := newTestShell(t, fakeConnect(fake))

	got := exec(t, sh, out, "seat position 1 2")
	assert.Contains(t, got, "base:            120")
	assert.Contains(t, got, "cushion:         30")

	length, _ := sh.vehicle.Cabin.Seat.Row1.Pos2.Seating.Length.Value()
	assert.Equal(t, uint16(30), length)
}

func TestSeatCallError(t *testing.T) {
	fake := &fakeSeats{err: connect.NewError(connect.CodeOutOfRange, errors.New("row 9"))}
	sh, out := newTestShell(t, fakeConnect(fake))

	got := exec(t, sh, out, "seat component 9 1 base 10")
	assert.Contains(t, got, "MoveComponent failed: OUT_OF_RANGE")
	_, set := sh.vehicle.Cabin.Seat.Row1.Pos1.Position.Value()
	assert.False(t, set)
}

func TestSeatAgainstSimulator(t *testing.T) {
	remote := vss.New()
	mux := http.NewServeMux()
	mux.Handle(seats.NewHandler(seatsim.New(remote)))
	srv, err := transport.NewServer(transport.ServerConfig{Address: "127.0.0.1:0", Handler: mux})
	require.NoError(t, err)
	require.NoError(t, srv.Start(context.Background()))
	t.Cleanup(func() { _ = srv.Stop() })

	connectSim := func(context.Context) (seatService, string, error) {
		c, err := seats.NewClient(seats.ClientConfig{BaseURL: srv.URL()})
		return c, srv.URL(), err
	}
	sh, out := newTestShell(t, connectSim)

	exec(t, sh, out, "watch Cabin.Seat.Row2.Pos1")
	exec(t, sh, out, "seat component 2 1 base 640")

	remoteBase, _ := remote.Cabin.Seat.Row2.Pos1.Position.Value()
	assert.Equal(t, uint16(640), remoteBase)

	got := exec(t, sh, out, "seat position 2 1")
	assert.Contains(t, got, "base:            640")

	assert.Contains(t, exec(t, sh, out, "seat position 3 1"), "OUT_OF_RANGE")
}

func TestUnknownAndQuit(t *testing.T) {
	sh, out := newTestShell(t, nil)
	assert.Contains(t, exec(t, sh, out, "fly"), "Unknown command: fly")
	assert.Contains(t, exec(t, sh, out, "seat fly"), "Unknown seat command: fly")
	assert.True(t, sh.Execute(context.Background(), "   "))
	assert.False(t, sh.Execute(context.Background(), "quit"))
}

func TestStatus(t *testing.T) {
	sh, out := newTestShell(t, fakeConnect(&fakeSeats{}))
	exec(t, sh, out, "set Speed 10")

	got := exec(t, sh, out, "status")
	assert.Contains(t, got, "(1 set)")
	assert.Contains(t, got, "not connected")

	exec(t, sh, out, "seat component 1 1 base 1")
	assert.Contains(t, exec(t, sh, out, "status"), "Seat service:   http://fake:50051")
}
