package seats

import (
	"context"
	"time"

	"connectrpc.com/connect"

	"github.com/sdv-edge/vehicle-model-go/pkg/log"
)

// LoggingInterceptor records every unary call, client or server side, as a
// log.Event tagged with sessionID.
func LoggingInterceptor(logger log.Logger, sessionID string) connect.Interceptor {
	logger = log.OrNoop(logger)
	return connect.UnaryInterceptorFunc(func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			start := time.Now()
			res, err := next(ctx, req)
			duration := time.Since(start)

			spec := req.Spec()
			event := log.Event{
				Timestamp:  start,
				SessionID:  sessionID,
				Direction:  log.DirectionIn,
				Layer:      log.LayerRPC,
				Category:   log.CategoryCall,
				LocalRole:  log.RoleServer,
				RemoteAddr: req.Peer().Addr,
				RPC: &log.RPCEvent{
					Procedure: spec.Procedure,
					RequestID: req.Header().Get(RequestIDHeader),
					Status:    StatusName(err),
					Duration:  duration,
					Request:   Describe(req.Any()),
				},
			}
			if spec.IsClient {
				event.Direction = log.DirectionOut
				event.LocalRole = log.RoleClient
			}
			// On failure connect passes a typed nil response.
			if err == nil && res != nil {
				event.RPC.Reply = Describe(res.Any())
			}
			if err != nil {
				event.Category = log.CategoryError
				event.Error = &log.ErrorEventData{
					Layer:   log.LayerRPC,
					Message: err.Error(),
					Code:    StatusName(err),
					Context: spec.Procedure,
				}
			}
			logger.Log(event)
			return res, err
		}
	})
}

// Describe renders a message as a map with snake_case keys, suitable for
// CBOR and JSON. Unknown values yield nil.
func Describe(v any) map[string]any {
	switch m := v.(type) {
	case *SeatLocation:
		if m == nil {
			return nil
		}
		return map[string]any{"row": m.Row, "index": m.Index}
	case *Position:
		if m == nil {
			return nil
		}
		return map[string]any{
			"base":           m.Base,
			"cushion":        m.Cushion,
			"lumbar":         m.Lumbar,
			"side_bolster":   m.SideBolster,
			"head_restraint": m.HeadRestraint,
		}
	case *Seat:
		if m == nil {
			return nil
		}
		out := map[string]any{}
		if loc := Describe(m.Location); loc != nil {
			out["location"] = loc
		}
		if pos := Describe(m.Position); pos != nil {
			out["position"] = pos
		}
		return out
	case *MoveRequest:
		return map[string]any{"seat": Describe(m.GetSeat())}
	case *MoveComponentRequest:
		if m == nil {
			return nil
		}
		return map[string]any{
			"seat":      Describe(m.Seat),
			"component": m.Component.String(),
			"position":  m.Position,
		}
	case *CurrentPositionRequest:
		if m == nil {
			return nil
		}
		return map[string]any{"row": m.Row, "index": m.Index}
	case *CurrentPositionReply:
		return map[string]any{"seat": Describe(m.GetSeat())}
	case *MoveReply, *MoveComponentReply:
		return map[string]any{}
	}
	return nil
}
