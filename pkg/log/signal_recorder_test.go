package log

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sdv-edge/vehicle-model-go/pkg/vss"
)

func TestSignalRecorderLogsChanges(t *testing.T) {
	v := vss.New()
	rec := &recordingLogger{}
	cancel := v.Cabin.Subscribe(NewSignalRecorder(rec, "test-session"))
	defer cancel()

	seat, err := v.Cabin.Seat.Row(1)
	require.NoError(t, err)
	driver, err := seat.Pos(1)
	require.NoError(t, err)

	driver.Position.Set(420)
	driver.Position.Set(420) // unchanged, not recorded
	v.Speed.Set(30)          // outside the subscribed branch

	events := rec.Events()
	require.Len(t, events, 1)

	e := events[0]
	assert.Equal(t, "test-session", e.SessionID)
	assert.Equal(t, LayerSignal, e.Layer)
	assert.Equal(t, CategoryChange, e.Category)
	assert.Equal(t, DirectionIn, e.Direction)
	require.NotNil(t, e.Signal)
	assert.Equal(t, "Vehicle.Cabin.Seat.Row1.Pos1.Position", e.Signal.Path)
	assert.Equal(t, "uint16", e.Signal.DataType)
	assert.Equal(t, uint16(420), e.Signal.Value)
	assert.WithinDuration(t, time.Now(), e.Timestamp, time.Minute)
}

func TestSignalRecorderStopsAfterCancel(t *testing.T) {
	v := vss.New()
	rec := &recordingLogger{}
	cancel := v.Subscribe(NewSignalRecorder(rec, "s"))

	v.Speed.Set(10)
	cancel()
	v.Speed.Set(20)

	assert.Len(t, rec.Events(), 1)
}

func TestSignalRecorderNilLogger(t *testing.T) {
	v := vss.New()
	cancel := v.Subscribe(NewSignalRecorder(nil, "s"))
	defer cancel()
	v.Speed.Set(1)
}
