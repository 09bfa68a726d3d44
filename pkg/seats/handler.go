package seats

import (
	"context"
	"errors"
	"net/http"

	"connectrpc.com/connect"
)

// Handler implements the seat service. Returned errors should carry a
// connect code (see Errorf); other errors are reported as UNKNOWN.
type Handler interface {
	Move(context.Context, *MoveRequest) (*MoveReply, error)
	MoveComponent(context.Context, *MoveComponentRequest) (*MoveComponentReply, error)
	CurrentPosition(context.Context, *CurrentPositionRequest) (*CurrentPositionReply, error)
}

// NewHandler returns the path prefix to mount and an http.Handler serving
// impl over the gRPC, gRPC-Web and Connect protocols.
//
//	mux := http.NewServeMux()
//	mux.Handle(seats.NewHandler(impl))
func NewHandler(impl Handler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append(opts, connect.WithCodec(Codec{}))

	mux := http.NewServeMux()
	mux.Handle(MoveProcedure, unary(MoveProcedure, impl.Move, opts))
	mux.Handle(MoveComponentProcedure, unary(MoveComponentProcedure, impl.MoveComponent, opts))
	mux.Handle(CurrentPositionProcedure, unary(CurrentPositionProcedure, impl.CurrentPosition, opts))
	return "/" + ServiceName + "/", mux
}

func unary[Req, Res any](procedure string, fn func(context.Context, *Req) (*Res, error), opts []connect.HandlerOption) *connect.Handler {
	return connect.NewUnaryHandler(procedure, func(ctx context.Context, req *connect.Request[Req]) (*connect.Response[Res], error) {
		res, err := fn(ctx, req.Msg)
		if err != nil {
			return nil, err
		}
		if res == nil {
			res = new(Res)
		}
		return connect.NewResponse(res), nil
	}, opts...)
}

// UnimplementedHandler answers every call with UNIMPLEMENTED. Embed it to
// implement a subset of the service.
type UnimplementedHandler struct{}

// Move returns UNIMPLEMENTED.
func (UnimplementedHandler) Move(context.Context, *MoveRequest) (*MoveReply, error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New(ServiceName+".Move is not implemented"))
}

// MoveComponent returns UNIMPLEMENTED.
func (UnimplementedHandler) MoveComponent(context.Context, *MoveComponentRequest) (*MoveComponentReply, error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New(ServiceName+".MoveComponent is not implemented"))
}

// CurrentPosition returns UNIMPLEMENTED.
func (UnimplementedHandler) CurrentPosition(context.Context, *CurrentPositionRequest) (*CurrentPositionReply, error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New(ServiceName+".CurrentPosition is not implemented"))
}

var _ Handler = UnimplementedHandler{}
