package log

import "testing"

func TestMultiLoggerFansOut(t *testing.T) {
	a, b := &recordingLogger{}, &recordingLogger{}
	m := NewMultiLogger(a, nil, b)

	m.Log(Event{SessionID: "one"})
	m.Log(Event{SessionID: "two"})

	for name, rec := range map[string]*recordingLogger{"a": a, "b": b} {
		events := rec.Events()
		if len(events) != 2 {
			t.Fatalf("%s: got %d events, want 2", name, len(events))
		}
		if events[0].SessionID != "one" || events[1].SessionID != "two" {
			t.Errorf("%s: wrong order %+v", name, events)
		}
	}
}

func TestMultiLoggerEmpty(t *testing.T) {
	NewMultiLogger().Log(Event{})
}
