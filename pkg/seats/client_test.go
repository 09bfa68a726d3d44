package seats

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"sync"
	"testing"

	"connectrpc.com/connect"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sdv-edge/vehicle-model-go/pkg/log"
	"github.com/sdv-edge/vehicle-model-go/pkg/transport"
)

// fakeSeats serves a single seat at row 1, index 1.
type fakeSeats struct {
	mu       sync.Mutex
	position Position
	moves    []*MoveComponentRequest
}

func (f *fakeSeats) Move(_ context.Context, req *MoveRequest) (*MoveReply, error) {
	loc := req.GetSeat().GetLocation()
	if loc == nil || loc.Row != 1 || loc.Index != 1 {
		return nil, Errorf(connect.CodeOutOfRange, "seat %s not present", loc)
	}
	pos := req.GetSeat().GetPosition()
	if pos == nil || pos.Base > 1000 {
		return nil, Errorf(connect.CodeInvalidArgument, "invalid position")
	}
	f.mu.Lock()
	f.position = *pos
	f.mu.Unlock()
	return &MoveReply{}, nil
}

func (f *fakeSeats) MoveComponent(_ context.Context, req *MoveComponentRequest) (*MoveComponentReply, error) {
	if req.Component == SeatComponentHeadRestraint {
		return nil, Errorf(connect.CodeNotFound, "no head restraint")
	}
	f.mu.Lock()
	f.moves = append(f.moves, req)
	f.mu.Unlock()
	return nil, nil
}

func (f *fakeSeats) CurrentPosition(_ context.Context, req *CurrentPositionRequest) (*CurrentPositionReply, error) {
	if req.Row != 1 || req.Index != 1 {
		return nil, Errorf(connect.CodeOutOfRange, "seat %d/%d not present", req.Row, req.Index)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	pos := f.position
	return &CurrentPositionReply{Seat: &Seat{
		Location: &SeatLocation{Row: 1, Index: 1},
		Position: &pos,
	}}, nil
}

type recordingLogger struct {
	mu     sync.Mutex
	events []log.Event
}

func (r *recordingLogger) Log(e log.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

func (r *recordingLogger) Events() []log.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]log.Event(nil), r.events...)
}

type testEnv struct {
	server  *transport.Server
	headers chan http.Header
}

func startService(t *testing.T, impl Handler, opts ...connect.HandlerOption) *testEnv {
	t.Helper()
	env := &testEnv{headers: make(chan http.Header, 16)}

	path, h := NewHandler(impl, opts...)
	mux := http.NewServeMux()
	mux.Handle(path, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case env.headers <- r.Header.Clone():
		default:
		}
		h.ServeHTTP(w, r)
	}))

	srv, err := transport.NewServer(transport.ServerConfig{Address: "127.0.0.1:0", Handler: mux})
	require.NoError(t, err)
	require.NoError(t, srv.Start(context.Background()))
	t.Cleanup(func() { _ = srv.Stop() })
	env.server = srv
	return env
}

func newTestClient(t *testing.T, env *testEnv, config ClientConfig) *Client {
	t.Helper()
	config.BaseURL = env.server.URL()
	c, err := NewClient(config)
	require.NoError(t, err)
	return c
}

func TestClientMoveAndCurrentPosition(t *testing.T) {
	env := startService(t, &fakeSeats{})
	c := newTestClient(t, env, ClientConfig{})
	ctx := context.Background()

	want := &Position{Base: 300, Cushion: 400, Lumbar: 500, SideBolster: 600, HeadRestraint: 700}
	_, err := c.Move(ctx, &Seat{Location: &SeatLocation{Row: 1, Index: 1}, Position: want})
	require.NoError(t, err)

	reply, err := c.CurrentPosition(ctx, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, &SeatLocation{Row: 1, Index: 1}, reply.GetSeat().GetLocation())
	assert.Equal(t, want, reply.GetSeat().GetPosition())
}

func TestClientMoveComponent(t *testing.T) {
	impl := &fakeSeats{}
	env := startService(t, impl)
	c := newTestClient(t, env, ClientConfig{})

	reply, err := c.MoveComponent(context.Background(), &SeatLocation{Row: 1, Index: 1}, SeatComponentLumbar, 250)
	require.NoError(t, err)
	assert.NotNil(t, reply)

	impl.mu.Lock()
	defer impl.mu.Unlock()
	require.Len(t, impl.moves, 1)
	assert.Equal(t, SeatComponentLumbar, impl.moves[0].Component)
	assert.Equal(t, int32(250), impl.moves[0].Position)
}

func TestClientSurfacesRemoteStatus(t *testing.T) {
	env := startService(t, &fakeSeats{})
	c := newTestClient(t, env, ClientConfig{})
	ctx := context.Background()

	_, err := c.CurrentPosition(ctx, 3, 1)
	require.Error(t, err)
	assert.Equal(t, connect.CodeOutOfRange, CodeOf(err))
	assert.Equal(t, "OUT_OF_RANGE", StatusName(err))

	var connectErr *connect.Error
	require.True(t, errors.As(err, &connectErr))
	assert.Equal(t, "seat 3/1 not present", connectErr.Message())

	_, err = c.Move(ctx, &Seat{Location: &SeatLocation{Row: 1, Index: 1}, Position: &Position{Base: 1001}})
	assert.Equal(t, connect.CodeInvalidArgument, CodeOf(err))

	_, err = c.MoveComponent(ctx, &SeatLocation{Row: 1, Index: 1}, SeatComponentHeadRestraint, 10)
	assert.Equal(t, connect.CodeNotFound, CodeOf(err))
}

func TestClientSendsMetadata(t *testing.T) {
	env := startService(t, &fakeSeats{})
	c := newTestClient(t, env, ClientConfig{Metadata: map[string]string{"dapr-app-id": "seatservice"}})

	_, err := c.CurrentPosition(context.Background(), 1, 1)
	require.NoError(t, err)

	h := <-env.headers
	assert.Equal(t, "seatservice", h.Get("dapr-app-id"))
	assert.True(t, strings.HasPrefix(h.Get("Content-Type"), "application/grpc"), h.Get("Content-Type"))
	_, err = uuid.Parse(h.Get(RequestIDHeader))
	assert.NoError(t, err, "request id %q", h.Get(RequestIDHeader))

	_, err = c.CurrentPosition(WithRequestID(context.Background(), "fixed-id"), 1, 1)
	require.NoError(t, err)
	h = <-env.headers
	assert.Equal(t, "fixed-id", h.Get(RequestIDHeader))
}

func TestUnimplementedHandler(t *testing.T) {
	env := startService(t, UnimplementedHandler{})
	c := newTestClient(t, env, ClientConfig{})
	ctx := context.Background()

	_, err := c.Move(ctx, &Seat{})
	assert.Equal(t, connect.CodeUnimplemented, CodeOf(err))
	_, err = c.MoveComponent(ctx, nil, SeatComponentBase, 0)
	assert.Equal(t, connect.CodeUnimplemented, CodeOf(err))
	_, err = c.CurrentPosition(ctx, 1, 1)
	assert.Equal(t, connect.CodeUnimplemented, CodeOf(err))
}

func TestLoggingInterceptorBothSides(t *testing.T) {
	serverLog := &recordingLogger{}
	clientLog := &recordingLogger{}

	env := startService(t, &fakeSeats{},
		connect.WithInterceptors(LoggingInterceptor(serverLog, "server-session")))
	c := newTestClient(t, env, ClientConfig{
		Interceptors: []connect.Interceptor{LoggingInterceptor(clientLog, "client-session")},
	})

	ctx := WithRequestID(context.Background(), "req-1")
	_, err := c.CurrentPosition(ctx, 1, 1)
	require.NoError(t, err)
	_, err = c.CurrentPosition(ctx, 2, 9)
	require.Error(t, err)

	client := clientLog.Events()
	require.Len(t, client, 2)
	assert.Equal(t, "client-session", client[0].SessionID)
	assert.Equal(t, log.RoleClient, client[0].LocalRole)
	assert.Equal(t, log.DirectionOut, client[0].Direction)
	assert.Equal(t, log.CategoryCall, client[0].Category)
	assert.Equal(t, CurrentPositionProcedure, client[0].RPC.Procedure)
	assert.Equal(t, "req-1", client[0].RPC.RequestID)
	assert.Equal(t, "OK", client[0].RPC.Status)
	assert.Equal(t, map[string]any{"row": uint32(1), "index": uint32(1)}, client[0].RPC.Request)
	assert.NotNil(t, client[0].RPC.Reply)

	assert.Equal(t, log.CategoryError, client[1].Category)
	assert.Equal(t, "OUT_OF_RANGE", client[1].RPC.Status)
	require.NotNil(t, client[1].Error)
	assert.Equal(t, "OUT_OF_RANGE", client[1].Error.Code)

	server := serverLog.Events()
	require.Len(t, server, 2)
	assert.Equal(t, log.RoleServer, server[0].LocalRole)
	assert.Equal(t, log.DirectionIn, server[0].Direction)
	assert.Equal(t, "req-1", server[0].RPC.RequestID)
	assert.NotEmpty(t, server[0].RemoteAddr)
	assert.Equal(t, "OUT_OF_RANGE", server[1].RPC.Status)
}

func TestLoggingInterceptorKeepsErrorStatus(t *testing.T) {
	serverLog := &recordingLogger{}
	env := startService(t, &fakeSeats{},
		connect.WithInterceptors(LoggingInterceptor(serverLog, "s")))
	c := newTestClient(t, env, ClientConfig{})
	ctx := context.Background()
	seat := &SeatLocation{Row: 1, Index: 1}

	_, err := c.CurrentPosition(ctx, 2, 9)
	assert.Equal(t, connect.CodeOutOfRange, CodeOf(err), "got %v", err)

	_, err = c.MoveComponent(ctx, seat, SeatComponentHeadRestraint, 10)
	assert.Equal(t, connect.CodeNotFound, CodeOf(err), "got %v", err)

	_, err = c.Move(ctx, &Seat{Location: seat, Position: &Position{Base: 1001}})
	assert.Equal(t, connect.CodeInvalidArgument, CodeOf(err), "got %v", err)

	events := serverLog.Events()
	require.Len(t, events, 3)
	for _, e := range events {
		assert.Equal(t, log.CategoryError, e.Category)
		assert.Nil(t, e.RPC.Reply)
		require.NotNil(t, e.Error)
	}
	assert.Equal(t, "OUT_OF_RANGE", events[0].Error.Code)
	assert.Equal(t, "NOT_FOUND", events[1].Error.Code)
	assert.Equal(t, "INVALID_ARGUMENT", events[2].Error.Code)
}

func TestNewClientRequiresBaseURL(t *testing.T) {
	_, err := NewClient(ClientConfig{})
	assert.Error(t, err)
}

func TestClientUnreachable(t *testing.T) {
	c, err := NewClient(ClientConfig{BaseURL: "http://127.0.0.1:1"})
	require.NoError(t, err)

	_, err = c.CurrentPosition(context.Background(), 1, 1)
	require.Error(t, err)
	assert.Equal(t, connect.CodeUnavailable, CodeOf(err))
}

func TestStatusName(t *testing.T) {
	assert.Equal(t, "OK", StatusName(nil))
	assert.Equal(t, "UNKNOWN", StatusName(errors.New("plain")))
	assert.Equal(t, "NOT_FOUND", StatusName(Errorf(connect.CodeNotFound, "x")))
}

func TestDescribe(t *testing.T) {
	got := Describe(&MoveComponentRequest{Seat: &SeatLocation{Row: 1, Index: 2}, Component: SeatComponentCushion, Position: 10})
	assert.Equal(t, map[string]any{
		"seat":      map[string]any{"row": uint32(1), "index": uint32(2)},
		"component": "CUSHION",
		"position":  int32(10),
	}, got)
	assert.Nil(t, Describe("other"))
	assert.Equal(t, map[string]any{}, Describe(&MoveReply{}))
}
