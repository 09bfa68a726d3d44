// Package transport carries the seat service over cleartext HTTP/2 (h2c).
//
// In-vehicle middleware (native or Dapr sidecar) speaks gRPC without TLS,
// so both ends use HTTP/2 with prior knowledge:
//
//	┌────────────────────────────────┐
//	│   gRPC (connect, protobuf)     │
//	├────────────────────────────────┤
//	│   HTTP/2 cleartext (h2c)       │
//	├────────────────────────────────┤
//	│           TCP                  │
//	└────────────────────────────────┘
//
// NewHTTPClient returns an http.Client suitable for connect clients and
// Server serves any http.Handler, typically the one built by seats.NewHandler.
package transport
