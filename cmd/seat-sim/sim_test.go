package main

import (
	"context"
	"path/filepath"
	"testing"

	"connectrpc.com/connect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vsslog "github.com/sdv-edge/vehicle-model-go/pkg/log"
	"github.com/sdv-edge/vehicle-model-go/pkg/seats"
	"github.com/sdv-edge/vehicle-model-go/pkg/version"
)

func TestParseComponents(t *testing.T) {
	all, err := parseComponents("")
	require.NoError(t, err)
	assert.Nil(t, all)

	got, err := parseComponents("base, side-bolster,HEAD_RESTRAINT")
	require.NoError(t, err)
	assert.Equal(t, []seats.SeatComponent{
		seats.SeatComponentBase,
		seats.SeatComponentSideBolster,
		seats.SeatComponentHeadRestraint,
	}, got)

	_, err = parseComponents("base,armrest")
	assert.Error(t, err)
}

func TestNewAppRejectsUnknownComponent(t *testing.T) {
	_, err := newApp(Config{Address: "127.0.0.1:0", Components: "armrest"})
	assert.Error(t, err)
}

func TestNewAppStampsVersion(t *testing.T) {
	a, err := newApp(Config{Address: "127.0.0.1:0"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.close() })

	got, err := version.FromVehicle(a.vehicle)
	require.NoError(t, err)
	assert.Equal(t, version.CurrentVersion(), got)
	assert.NotEmpty(t, a.sessionID)
}

func TestServeAndLog(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "seat-sim.vlog")
	a, err := newApp(Config{
		Address:    "127.0.0.1:0",
		Components: "base,lumbar",
		EventLog:   logPath,
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, a.start(ctx))
	assert.Nil(t, a.advertiser)

	client, err := seats.NewClient(seats.ClientConfig{BaseURL: a.server.URL()})
	require.NoError(t, err)

	loc := &seats.SeatLocation{Row: 1, Index: 1}
	_, err = client.MoveComponent(ctx, loc, seats.SeatComponentBase, 700)
	require.NoError(t, err)

	_, err = client.MoveComponent(ctx, loc, seats.SeatComponentCushion, 100)
	assert.Equal(t, connect.CodeNotFound, seats.CodeOf(err))

	reply, err := client.CurrentPosition(ctx, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, int32(700), reply.GetSeat().GetPosition().Base)

	require.NoError(t, a.stop())

	reader, err := vsslog.NewReader(logPath)
	require.NoError(t, err)
	defer reader.Close()
	events, err := reader.All()
	require.NoError(t, err)

	var calls, failures, changes int
	for _, e := range events {
		assert.Equal(t, a.sessionID, e.SessionID)
		switch {
		case e.Signal != nil:
			changes++
			assert.Equal(t, "Vehicle.Cabin.Seat.Row1.Pos1.Position", e.Signal.Path)
		case e.Error != nil:
			failures++
			assert.Equal(t, "NOT_FOUND", e.Error.Code)
		case e.RPC != nil:
			calls++
			assert.Equal(t, vsslog.RoleServer, e.LocalRole)
		}
	}
	assert.Equal(t, 2, calls)
	assert.Equal(t, 1, failures)
	assert.Equal(t, 1, changes)
}
