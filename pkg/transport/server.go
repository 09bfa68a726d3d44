package transport

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
)

// DefaultAddress is the listen address of the seat service.
const DefaultAddress = ":50051"

// ServerConfig configures an h2c server.
type ServerConfig struct {
	// Address to listen on (e.g., ":50051" or "127.0.0.1:0").
	Address string

	// Handler serves requests. Required.
	Handler http.Handler

	// ReadHeaderTimeout bounds reading request headers (default: 10s).
	ReadHeaderTimeout time.Duration

	// ShutdownTimeout bounds graceful shutdown in Stop (default: 5s).
	ShutdownTimeout time.Duration

	// OnError is called when serving fails after Start returned.
	OnError func(err error)
}

// Server serves an http.Handler over cleartext HTTP/2 and HTTP/1.1.
type Server struct {
	config   ServerConfig
	server   *http.Server
	listener net.Listener

	conns   map[net.Conn]struct{}
	connsMu sync.RWMutex

	running atomic.Bool
	done    chan struct{}
	wg      sync.WaitGroup
}

// NewServer creates a server; it does not listen until Start.
func NewServer(config ServerConfig) (*Server, error) {
	if config.Handler == nil {
		return nil, fmt.Errorf("Handler is required")
	}
	if config.Address == "" {
		config.Address = DefaultAddress
	}
	if config.ReadHeaderTimeout == 0 {
		config.ReadHeaderTimeout = 10 * time.Second
	}
	if config.ShutdownTimeout == 0 {
		config.ShutdownTimeout = 5 * time.Second
	}

	s := &Server{
		config: config,
		conns:  make(map[net.Conn]struct{}),
	}
	s.server = &http.Server{
		Handler:           h2c.NewHandler(config.Handler, &http2.Server{}),
		ReadHeaderTimeout: config.ReadHeaderTimeout,
	}
	return s, nil
}

// Start listens on the configured address and serves in the background.
// The server stops when ctx is cancelled or Stop is called.
func (s *Server) Start(ctx context.Context) error {
	if s.running.Load() {
		return fmt.Errorf("server already running")
	}

	listener, err := net.Listen("tcp", s.config.Address)
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}
	s.listener = &trackingListener{Listener: listener, server: s}
	s.done = make(chan struct{})
	s.running.Store(true)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		err := s.server.Serve(s.listener)
		if err != nil && !errors.Is(err, http.ErrServerClosed) && s.config.OnError != nil {
			s.config.OnError(err)
		}
	}()

	go func(done <-chan struct{}) {
		select {
		case <-ctx.Done():
			_ = s.Stop()
		case <-done:
		}
	}(s.done)

	return nil
}

// Stop shuts the server down gracefully, closing remaining connections
// after the shutdown timeout.
func (s *Server) Stop() error {
	if !s.running.CompareAndSwap(true, false) {
		return nil
	}
	close(s.done)

	ctx, cancel := context.WithTimeout(context.Background(), s.config.ShutdownTimeout)
	defer cancel()

	err := s.server.Shutdown(ctx)
	if errors.Is(err, context.DeadlineExceeded) {
		err = s.server.Close()
	}
	s.wg.Wait()
	return err
}

// Addr returns the listen address, or nil before Start.
func (s *Server) Addr() net.Addr {
	if s.listener != nil {
		return s.listener.Addr()
	}
	return nil
}

// URL returns the http:// base URL clients use to reach the server.
func (s *Server) URL() string {
	addr := s.Addr()
	if addr == nil {
		return ""
	}
	return "http://" + addr.String()
}

// ConnectionCount returns the number of open client connections.
func (s *Server) ConnectionCount() int {
	s.connsMu.RLock()
	defer s.connsMu.RUnlock()
	return len(s.conns)
}

// trackingListener records accepted connections until they are closed.
// h2c hijacks HTTP/2 connections, so http.Server.ConnState cannot be used.
type trackingListener struct {
	net.Listener
	server *Server
}

func (l *trackingListener) Accept() (net.Conn, error) {
	conn, err := l.Listener.Accept()
	if err != nil {
		return nil, err
	}
	tc := &trackedConn{Conn: conn, server: l.server}
	l.server.connsMu.Lock()
	l.server.conns[tc] = struct{}{}
	l.server.connsMu.Unlock()
	return tc, nil
}

type trackedConn struct {
	net.Conn
	server *Server
	once   sync.Once
}

func (c *trackedConn) Close() error {
	c.once.Do(func() {
		c.server.connsMu.Lock()
		delete(c.server.conns, c)
		c.server.connsMu.Unlock()
	})
	return c.Conn.Close()
}
