// Package config resolves how applications reach the seat service from the
// environment and an optional .env file.
package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables.
const (
	EnvMiddlewareType     = "SDV_MIDDLEWARE_TYPE"
	EnvSeatServiceAddress = "SDV_SEATSERVICE_ADDRESS"
	EnvDaprGRPCPort       = "DAPR_GRPC_PORT"
	EnvSeatServiceAppID   = "SDV_SEATSERVICE_APP_ID"
	EnvDiscovery          = "SDV_DISCOVERY"
	EnvEventLog           = "SDV_EVENT_LOG"
)

// Defaults.
const (
	DefaultDaprGRPCPort     = 50001
	DefaultSeatServiceAppID = "seatservice"
)

// DaprAppIDHeader is the call metadata key routing a call through the Dapr
// sidecar.
const DaprAppIDHeader = "dapr-app-id"

// Middleware selects how the seat service is reached.
type Middleware string

const (
	// MiddlewareNative calls the seat service directly.
	MiddlewareNative Middleware = "native"

	// MiddlewareDapr calls the local Dapr sidecar, which forwards by app ID.
	MiddlewareDapr Middleware = "dapr"
)

// Errors.
var (
	ErrUnknownMiddleware = errors.New("unknown middleware type")
	ErrNoSeatService     = errors.New("no seat service address configured")
	ErrInvalidAddress    = errors.New("invalid seat service address")
	ErrInvalidPort       = errors.New("invalid port")
)

// Config is the resolved middleware configuration.
type Config struct {
	Middleware Middleware

	// SeatServiceAddress is host:port or a URL of the seat service when
	// calling it natively.
	SeatServiceAddress string

	// DaprGRPCPort is the sidecar port in Dapr mode.
	DaprGRPCPort int

	// SeatServiceAppID is the Dapr app ID of the seat service.
	SeatServiceAppID string

	// Discovery enables mDNS lookup when no native address is configured.
	Discovery bool

	// EventLog is the path of the CBOR event log, empty to disable it.
	EventLog string
}

// Load reads the given .env files (".env" when none are named) without
// overriding variables already set, then resolves the configuration from
// the environment. Missing .env files are not an error.
func Load(files ...string) (*Config, error) {
	_ = godotenv.Load(files...)
	return FromEnv(os.Getenv)
}

// FromEnv resolves the configuration through getenv.
func FromEnv(getenv func(string) string) (*Config, error) {
	get := func(key string) string { return strings.TrimSpace(getenv(key)) }

	cfg := &Config{
		Middleware:         Middleware(strings.ToLower(firstNonEmpty(get(EnvMiddlewareType), string(MiddlewareNative)))),
		SeatServiceAddress: get(EnvSeatServiceAddress),
		SeatServiceAppID:   firstNonEmpty(get(EnvSeatServiceAppID), DefaultSeatServiceAppID),
		DaprGRPCPort:       DefaultDaprGRPCPort,
		EventLog:           get(EnvEventLog),
	}

	if raw := get(EnvDaprGRPCPort); raw != "" {
		port, err := strconv.Atoi(raw)
		if err != nil || port < 1 || port > 65535 {
			return nil, fmt.Errorf("%s: %w %q", EnvDaprGRPCPort, ErrInvalidPort, raw)
		}
		cfg.DaprGRPCPort = port
	}

	if raw := get(EnvDiscovery); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", EnvDiscovery, err)
		}
		cfg.Discovery = v
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the middleware type and the native address.
func (c *Config) Validate() error {
	switch c.Middleware {
	case MiddlewareNative:
		if c.SeatServiceAddress != "" {
			if _, err := normalizeURL(c.SeatServiceAddress); err != nil {
				return err
			}
		}
	case MiddlewareDapr:
		if c.SeatServiceAppID == "" {
			return fmt.Errorf("%s is empty", EnvSeatServiceAppID)
		}
	default:
		return fmt.Errorf("%w %q", ErrUnknownMiddleware, c.Middleware)
	}
	return nil
}

// SeatServiceURL returns the base URL seat calls go to. In native mode
// without an address it returns ErrNoSeatService; callers with Discovery
// set look the service up instead.
func (c *Config) SeatServiceURL() (string, error) {
	switch c.Middleware {
	case MiddlewareDapr:
		return "http://127.0.0.1:" + strconv.Itoa(c.DaprGRPCPort), nil
	case MiddlewareNative:
		if c.SeatServiceAddress == "" {
			return "", ErrNoSeatService
		}
		return normalizeURL(c.SeatServiceAddress)
	}
	return "", fmt.Errorf("%w %q", ErrUnknownMiddleware, c.Middleware)
}

// Metadata returns the headers sent with every seat call.
func (c *Config) Metadata() map[string]string {
	if c.Middleware == MiddlewareDapr {
		return map[string]string{DaprAppIDHeader: c.SeatServiceAppID}
	}
	return nil
}

// normalizeURL accepts host:port, grpc://host:port or http://host:port and
// returns an http URL.
func normalizeURL(addr string) (string, error) {
	rest := addr
	for _, scheme := range []string{"http://", "grpc://"} {
		if strings.HasPrefix(rest, scheme) {
			rest = strings.TrimPrefix(rest, scheme)
			break
		}
	}
	rest = strings.TrimSuffix(rest, "/")
	host, port, err := net.SplitHostPort(rest)
	if err != nil {
		return "", fmt.Errorf("%w %q: %v", ErrInvalidAddress, addr, err)
	}
	if p, err := strconv.Atoi(port); err != nil || p < 1 || p > 65535 {
		return "", fmt.Errorf("%w %q: %w %q", ErrInvalidAddress, addr, ErrInvalidPort, port)
	}
	if host == "" {
		host = "127.0.0.1"
	}
	return "http://" + net.JoinHostPort(host, port), nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
