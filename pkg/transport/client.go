package transport

import (
	"context"
	"crypto/tls"
	"net"
	"net/http"
	"time"

	"golang.org/x/net/http2"
)

// ClientConfig configures the h2c HTTP client.
type ClientConfig struct {
	// ConnectTimeout bounds TCP connection setup (default: 5s).
	ConnectTimeout time.Duration

	// ReadIdleTimeout enables HTTP/2 health-check pings after this much
	// idle time on a connection. Zero disables pings.
	ReadIdleTimeout time.Duration

	// PingTimeout closes a connection when a health-check ping is not
	// answered in time (default: 15s when pings are enabled).
	PingTimeout time.Duration
}

// DefaultConnectTimeout is used when ClientConfig.ConnectTimeout is zero.
const DefaultConnectTimeout = 5 * time.Second

// NewHTTPClient returns an HTTP client that speaks HTTP/2 over plain TCP.
// Only http:// URLs are supported.
func NewHTTPClient(config ClientConfig) *http.Client {
	if config.ConnectTimeout == 0 {
		config.ConnectTimeout = DefaultConnectTimeout
	}
	dialer := &net.Dialer{Timeout: config.ConnectTimeout}

	return &http.Client{
		Transport: &http2.Transport{
			AllowHTTP: true,
			DialTLSContext: func(ctx context.Context, network, addr string, _ *tls.Config) (net.Conn, error) {
				return dialer.DialContext(ctx, network, addr)
			},
			ReadIdleTimeout: config.ReadIdleTimeout,
			PingTimeout:     config.PingTimeout,
		},
	}
}
