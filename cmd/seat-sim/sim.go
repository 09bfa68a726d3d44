package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net"
	"net/http"
	"os"
	"strings"

	"connectrpc.com/connect"
	"github.com/google/uuid"

	"github.com/sdv-edge/vehicle-model-go/pkg/discovery"
	vsslog "github.com/sdv-edge/vehicle-model-go/pkg/log"
	"github.com/sdv-edge/vehicle-model-go/pkg/seats"
	"github.com/sdv-edge/vehicle-model-go/pkg/seatsim"
	"github.com/sdv-edge/vehicle-model-go/pkg/transport"
	"github.com/sdv-edge/vehicle-model-go/pkg/version"
	"github.com/sdv-edge/vehicle-model-go/pkg/vss"
)

// Config holds the simulator configuration.
type Config struct {
	Address    string
	Instance   string
	AppID      string
	Interface  string
	Advertise  bool
	Components string
	EventLog   string
	Verbose    bool
}

// app is a running simulator.
type app struct {
	config    Config
	sessionID string
	vehicle   *vss.Vehicle

	server      *transport.Server
	advertiser  discovery.Advertiser
	fileLogger  *vsslog.FileLogger
	unsubscribe func()
}

// parseComponents turns a comma-separated list into seat components. An
// empty list selects every component.
func parseComponents(list string) ([]seats.SeatComponent, error) {
	if strings.TrimSpace(list) == "" {
		return nil, nil
	}
	var out []seats.SeatComponent
	for _, name := range strings.Split(list, ",") {
		c, err := seats.ParseSeatComponent(name)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// newApp builds the vehicle tree, the event loggers and the seat handler.
// Nothing listens until start.
func newApp(config Config) (*app, error) {
	components, err := parseComponents(config.Components)
	if err != nil {
		return nil, err
	}

	a := &app{
		config:    config,
		sessionID: uuid.NewString(),
		vehicle:   vss.New(),
	}
	version.Stamp(a.vehicle, version.CurrentVersion())

	var loggers []vsslog.Logger
	if config.Verbose {
		handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
		loggers = append(loggers, vsslog.NewSlogAdapter(slog.New(handler)))
	}
	if config.EventLog != "" {
		a.fileLogger, err = vsslog.NewFileLogger(config.EventLog)
		if err != nil {
			return nil, fmt.Errorf("failed to create event log: %w", err)
		}
		loggers = append(loggers, a.fileLogger)
	}
	logger := vsslog.NewMultiLogger(loggers...)

	a.unsubscribe = a.vehicle.Cabin.Seat.Subscribe(vsslog.NewSignalRecorder(logger, a.sessionID))

	var opts []seatsim.Option
	if len(components) > 0 {
		opts = append(opts, seatsim.WithComponents(components...))
	}
	path, handler := seats.NewHandler(
		seatsim.New(a.vehicle, opts...),
		connect.WithInterceptors(seats.LoggingInterceptor(logger, a.sessionID)),
	)
	mux := http.NewServeMux()
	mux.Handle(path, handler)

	a.server, err = transport.NewServer(transport.ServerConfig{
		Address: config.Address,
		Handler: mux,
		OnError: func(err error) {
			log.Printf("Server error: %v", err)
		},
	})
	if err != nil {
		a.close()
		return nil, err
	}
	return a, nil
}

// start serves the seat service and, when enabled, announces it over mDNS.
func (a *app) start(ctx context.Context) error {
	if err := a.server.Start(ctx); err != nil {
		return err
	}
	if !a.config.Advertise {
		return nil
	}

	tcp, ok := a.server.Addr().(*net.TCPAddr)
	if !ok {
		return errors.New("server address is not TCP")
	}
	adv := discovery.NewMDNSAdvertiser(discovery.AdvertiserConfig{
		Interface: a.config.Interface,
		TTL:       discovery.DefaultAdvertiserConfig().TTL,
	})
	info := &discovery.ServiceInfo{
		InstanceName: a.config.Instance,
		Port:         uint16(tcp.Port),
		API:          discovery.DefaultAPI,
		VSSVersion:   version.Current,
		AppID:        a.config.AppID,
	}
	if err := adv.Advertise(ctx, info); err != nil {
		return fmt.Errorf("failed to advertise: %w", err)
	}
	a.advertiser = adv
	return nil
}

// stop withdraws the announcement, stops the server and flushes the event
// log.
func (a *app) stop() error {
	var errs []error
	if a.advertiser != nil {
		errs = append(errs, a.advertiser.Stop())
	}
	errs = append(errs, a.server.Stop())
	errs = append(errs, a.close())
	return errors.Join(errs...)
}

func (a *app) close() error {
	if a.unsubscribe != nil {
		a.unsubscribe()
		a.unsubscribe = nil
	}
	if a.fileLogger != nil {
		err := a.fileLogger.Close()
		if dropped := a.fileLogger.Dropped(); dropped > 0 {
			log.Printf("Warning: %d events could not be logged", dropped)
		}
		return err
	}
	return nil
}
