package log

import (
	"time"

	"github.com/sdv-edge/vehicle-model-go/pkg/model"
)

// SignalRecorder logs every value change of the data points below the branch
// it is subscribed to.
type SignalRecorder struct {
	logger    Logger
	sessionID string
	now       func() time.Time
}

// NewSignalRecorder creates a recorder that tags events with sessionID.
func NewSignalRecorder(logger Logger, sessionID string) *SignalRecorder {
	return &SignalRecorder{
		logger:    OrNoop(logger),
		sessionID: sessionID,
		now:       time.Now,
	}
}

// OnValueChanged implements model.Subscriber.
func (r *SignalRecorder) OnValueChanged(leaf model.Leaf) {
	v, _ := leaf.Get()
	ts := leaf.Timestamp()
	if ts.IsZero() {
		ts = r.now()
	}
	r.logger.Log(Event{
		Timestamp: ts,
		SessionID: r.sessionID,
		Direction: DirectionIn,
		Layer:     LayerSignal,
		Category:  CategoryChange,
		Signal: &SignalEvent{
			Path:     leaf.Path(),
			DataType: leaf.Metadata().Type.String(),
			Value:    v,
		},
	})
}

var _ model.Subscriber = (*SignalRecorder)(nil)
