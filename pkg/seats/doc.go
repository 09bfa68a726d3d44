// Package seats is a client and server binding for the comfort seats
// service of the COVESA Vehicle Service Catalog
// (sdv.edge.comfort.seats.v1.Seats).
//
// The service has three unary procedures:
//
//   - Move: set the desired position of every component of a seat
//   - MoveComponent: set the position of one seat component
//   - CurrentPosition: read the current position of a seat
//
// Positions are per-mille values in [0, 1000]. Calls use the gRPC protocol
// over cleartext HTTP/2; messages use the protobuf binary encoding.
//
// The client is a passthrough. It does not retry and adds no backoff; a
// non-OK status is returned as a *connect.Error whose code follows the
// service contract:
//
//	Move             OK, OUT_OF_RANGE, INVALID_ARGUMENT, INTERNAL
//	MoveComponent    OK, OUT_OF_RANGE, NOT_FOUND, INVALID_ARGUMENT, INTERNAL
//	CurrentPosition  OK, OUT_OF_RANGE
package seats
