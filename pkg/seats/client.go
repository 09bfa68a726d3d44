package seats

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"connectrpc.com/connect"
	"github.com/google/uuid"

	"github.com/sdv-edge/vehicle-model-go/pkg/transport"
)

// ServiceName is the fully-qualified name of the seat service.
const ServiceName = "sdv.edge.comfort.seats.v1.Seats"

// Procedure paths.
const (
	MoveProcedure            = "/" + ServiceName + "/Move"
	MoveComponentProcedure   = "/" + ServiceName + "/MoveComponent"
	CurrentPositionProcedure = "/" + ServiceName + "/CurrentPosition"
)

// RequestIDHeader carries a per-call identifier for log correlation.
const RequestIDHeader = "x-request-id"

// ClientConfig configures a seat service client.
type ClientConfig struct {
	// BaseURL of the service or the middleware sidecar, e.g.
	// http://localhost:50051. Required.
	BaseURL string

	// HTTPClient sends the requests (default: transport.NewHTTPClient).
	// It must support HTTP/2.
	HTTPClient connect.HTTPClient

	// Metadata is sent as request headers on every call, for example
	// dapr-app-id to route through a Dapr sidecar.
	Metadata map[string]string

	// Interceptors wrap every call, e.g. LoggingInterceptor.
	Interceptors []connect.Interceptor
}

// Client calls the seat service. It is safe for concurrent use.
type Client struct {
	metadata        http.Header
	move            *connect.Client[MoveRequest, MoveReply]
	moveComponent   *connect.Client[MoveComponentRequest, MoveComponentReply]
	currentPosition *connect.Client[CurrentPositionRequest, CurrentPositionReply]
}

// NewClient creates a client speaking the gRPC protocol.
func NewClient(config ClientConfig) (*Client, error) {
	if config.BaseURL == "" {
		return nil, fmt.Errorf("BaseURL is required")
	}
	if config.HTTPClient == nil {
		config.HTTPClient = transport.NewHTTPClient(transport.ClientConfig{})
	}
	base := strings.TrimRight(config.BaseURL, "/")

	opts := []connect.ClientOption{
		connect.WithGRPC(),
		connect.WithCodec(Codec{}),
	}
	if len(config.Interceptors) > 0 {
		opts = append(opts, connect.WithInterceptors(config.Interceptors...))
	}

	md := make(http.Header, len(config.Metadata))
	for k, v := range config.Metadata {
		md.Set(k, v)
	}

	return &Client{
		metadata: md,
		move: connect.NewClient[MoveRequest, MoveReply](
			config.HTTPClient, base+MoveProcedure, opts...),
		moveComponent: connect.NewClient[MoveComponentRequest, MoveComponentReply](
			config.HTTPClient, base+MoveComponentProcedure, opts...),
		currentPosition: connect.NewClient[CurrentPositionRequest, CurrentPositionReply](
			config.HTTPClient, base+CurrentPositionProcedure, opts...),
	}, nil
}

// Move sets the desired position of a seat.
func (c *Client) Move(ctx context.Context, seat *Seat) (*MoveReply, error) {
	return call(ctx, c, c.move, &MoveRequest{Seat: seat})
}

// MoveComponent sets the position of one component of the seat at loc.
func (c *Client) MoveComponent(ctx context.Context, loc *SeatLocation, component SeatComponent, position int32) (*MoveComponentReply, error) {
	return call(ctx, c, c.moveComponent, &MoveComponentRequest{
		Seat:      loc,
		Component: component,
		Position:  position,
	})
}

// CurrentPosition reads the position of the seat at row and index.
func (c *Client) CurrentPosition(ctx context.Context, row, index uint32) (*CurrentPositionReply, error) {
	return call(ctx, c, c.currentPosition, &CurrentPositionRequest{Row: row, Index: index})
}

func call[Req, Res any](ctx context.Context, c *Client, client *connect.Client[Req, Res], msg *Req) (*Res, error) {
	req := connect.NewRequest(msg)
	for k, vs := range c.metadata {
		req.Header()[k] = append([]string(nil), vs...)
	}
	id, ok := RequestIDFromContext(ctx)
	if !ok {
		id = uuid.NewString()
	}
	req.Header().Set(RequestIDHeader, id)

	res, err := client.CallUnary(ctx, req)
	if err != nil {
		return nil, err
	}
	return res.Msg, nil
}

type requestIDKey struct{}

// WithRequestID returns a context whose calls carry id instead of a fresh
// random request ID.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFromContext returns the ID set by WithRequestID.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(requestIDKey{}).(string)
	return id, ok && id != ""
}
