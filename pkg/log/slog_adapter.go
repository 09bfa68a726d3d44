package log

import (
	"context"
	"fmt"
	"log/slog"
)

// SlogAdapter writes events to an slog.Logger at Debug level.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter creates a SlogAdapter writing to logger.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger}
}

// Log writes the event.
func (a *SlogAdapter) Log(event Event) {
	attrs := []slog.Attr{
		slog.String("session", event.SessionID),
		slog.String("direction", event.Direction.String()),
		slog.String("layer", event.Layer.String()),
		slog.String("category", event.Category.String()),
		slog.String("role", event.LocalRole.String()),
	}
	if event.RemoteAddr != "" {
		attrs = append(attrs, slog.String("remote", event.RemoteAddr))
	}

	switch {
	case event.RPC != nil:
		attrs = append(attrs,
			slog.String("procedure", event.RPC.Procedure),
			slog.String("status", event.RPC.Status),
			slog.Duration("duration", event.RPC.Duration),
		)
		if event.RPC.RequestID != "" {
			attrs = append(attrs, slog.String("request_id", event.RPC.RequestID))
		}
	case event.Signal != nil:
		attrs = append(attrs,
			slog.String("path", event.Signal.Path),
			slog.String("value", fmt.Sprint(event.Signal.Value)),
		)
	case event.Error != nil:
		attrs = append(attrs,
			slog.String("error_layer", event.Error.Layer.String()),
			slog.String("error_msg", event.Error.Message),
		)
		if event.Error.Code != "" {
			attrs = append(attrs, slog.String("error_code", event.Error.Code))
		}
		if event.Error.Context != "" {
			attrs = append(attrs, slog.String("error_context", event.Error.Context))
		}
	}

	a.logger.LogAttrs(context.Background(), slog.LevelDebug, "vehicle", attrs...)
}

var _ Logger = (*SlogAdapter)(nil)
