// Command vss-shell is an interactive shell for the VSS vehicle tree and
// the comfort seats service.
//
// The tree is local to the shell. Seat commands call the seat service and
// copy the reported positions into Vehicle.Cabin.Seat, so watches on seat
// paths show remote moves.
//
// Usage:
//
//	vss-shell [flags]
//
// Flags:
//
//	-seats string      Seat service address (host:port or URL)
//	-discover          Look up the seat service over mDNS
//	-env string        .env file with SDV_* settings (default ".env")
//	-event-log string  CBOR event log file
//	-snapshot string   Snapshot file for save/load (default "vss-snapshot.json")
//
// Without -seats the address comes from SDV_SEATSERVICE_ADDRESS, or from the
// Dapr sidecar when SDV_MIDDLEWARE_TYPE=dapr.
//
// Examples:
//
//	# Talk to a local seat-sim
//	vss-shell -seats localhost:50051
//
//	# Find the seat service on the network and log everything
//	vss-shell -discover -event-log shell.vlog
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"strings"

	"connectrpc.com/connect"
	"github.com/chzyer/readline"
	"github.com/google/uuid"

	"github.com/sdv-edge/vehicle-model-go/pkg/config"
	"github.com/sdv-edge/vehicle-model-go/pkg/discovery"
	vsslog "github.com/sdv-edge/vehicle-model-go/pkg/log"
	"github.com/sdv-edge/vehicle-model-go/pkg/persistence"
	"github.com/sdv-edge/vehicle-model-go/pkg/seats"
	"github.com/sdv-edge/vehicle-model-go/pkg/version"
	"github.com/sdv-edge/vehicle-model-go/pkg/vss"
)

var (
	seatsAddr    = flag.String("seats", "", "Seat service address (host:port or URL)")
	discover     = flag.Bool("discover", false, "Look up the seat service over mDNS")
	envFile      = flag.String("env", ".env", ".env file with SDV_* settings")
	eventLog     = flag.String("event-log", "", "CBOR event log file")
	snapshotFile = flag.String("snapshot", "vss-snapshot.json", "Snapshot file for save/load")
)

func main() {
	flag.Parse()
	log.SetFlags(log.Ltime)

	cfg, err := config.Load(*envFile)
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	if *seatsAddr != "" {
		cfg.Middleware = config.MiddlewareNative
		cfg.SeatServiceAddress = *seatsAddr
		if err := cfg.Validate(); err != nil {
			log.Fatalf("Invalid -seats: %v", err)
		}
	}
	if *discover {
		cfg.Discovery = true
	}
	if *eventLog != "" {
		cfg.EventLog = *eventLog
	}

	sessionID := uuid.NewString()
	var logger vsslog.Logger = vsslog.NoopLogger{}
	var fileLogger *vsslog.FileLogger
	if cfg.EventLog != "" {
		fileLogger, err = vsslog.NewFileLogger(cfg.EventLog)
		if err != nil {
			log.Fatalf("Failed to create event log: %v", err)
		}
		logger = fileLogger
	}

	vehicle := vss.New()
	version.Stamp(vehicle, version.CurrentVersion())
	unsubscribe := vehicle.Subscribe(vsslog.NewSignalRecorder(logger, sessionID))

	completer := &pathCompleter{}
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "vss> ",
		AutoComplete:    completer,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		log.Fatalf("Failed to create readline: %v", err)
	}
	log.SetOutput(rl.Stderr())

	sh := NewShell(rl.Stdout(), vehicle, persistence.NewSnapshotStore(*snapshotFile), seatConnector(cfg, logger, sessionID))
	completer.inspector = sh.Inspector()

	fmt.Fprintf(rl.Stdout(), "Vehicle Shell (VSS %s, session %s)\n", version.Current, sessionID[:8])
	if cfg.EventLog != "" {
		fmt.Fprintf(rl.Stdout(), "Event logging to: %s\n", cfg.EventLog)
	}

	ctx, cancel := context.WithCancel(context.Background())
	run(ctx, rl, sh)
	cancel()

	sh.Close()
	unsubscribe()
	_ = rl.Close()
	if fileLogger != nil {
		if err := fileLogger.Close(); err != nil {
			log.Printf("Error closing event log: %v", err)
		}
	}
}

// run reads command lines until EOF or quit.
func run(ctx context.Context, rl *readline.Instance, sh *Shell) {
	sh.printHelp()
	for {
		line, err := rl.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) {
				continue
			}
			if !errors.Is(err, io.EOF) {
				log.Printf("Read error: %v", err)
			}
			fmt.Fprintln(rl.Stdout(), "Exiting...")
			return
		}
		if !sh.Execute(ctx, strings.TrimSpace(line)) {
			return
		}
	}
}

// seatConnector resolves the seat service URL from cfg, falling back to
// mDNS when discovery is enabled, and creates a logging client.
func seatConnector(cfg *config.Config, logger vsslog.Logger, sessionID string) connectFunc {
	return func(ctx context.Context) (seatService, string, error) {
		url, err := cfg.SeatServiceURL()
		if errors.Is(err, config.ErrNoSeatService) && cfg.Discovery {
			url, err = discoverSeatService(ctx)
		}
		if err != nil {
			return nil, "", err
		}
		client, err := seats.NewClient(seats.ClientConfig{
			BaseURL:      url,
			Metadata:     cfg.Metadata(),
			Interceptors: []connect.Interceptor{seats.LoggingInterceptor(logger, sessionID)},
		})
		if err != nil {
			return nil, "", err
		}
		return client, url, nil
	}
}

func discoverSeatService(ctx context.Context) (string, error) {
	browser := discovery.NewMDNSBrowser(discovery.BrowserConfig{API: discovery.DefaultAPI})
	defer browser.Stop()

	log.Printf("Browsing for %s...", discovery.ServiceType)
	svc, err := discovery.FindSeatService(ctx, browser, discovery.BrowseTimeout)
	if err != nil {
		return "", fmt.Errorf("seat service discovery: %w", err)
	}
	log.Printf("Found %s (VSS %s)", svc.InstanceName, svc.VSSVersion)
	return svc.URL(), nil
}
