// Command seat-sim serves the comfort seats API from a simulated vehicle
// tree.
//
// Seat moves are written to Vehicle.Cabin.Seat, so vss-shell sees them both
// through the seat commands and as signal changes. The service is announced
// as _sdv-seats._tcp over mDNS unless -advertise=false.
//
// Usage:
//
//	seat-sim [flags]
//
// Flags:
//
//	-addr string        Listen address (default ":50051")
//	-instance string    mDNS instance name (default "seat-sim")
//	-app-id string      Dapr app ID announced in TXT records (default "seatservice")
//	-interface string   Network interface for mDNS (default: all)
//	-advertise          Announce the service over mDNS (default true)
//	-components string  Adjustable components, e.g. base,lumbar (default: all)
//	-event-log string   CBOR event log file
//	-verbose            Print every call and signal change
//
// Examples:
//
//	# Serve on the default port with an event log
//	seat-sim -event-log seat-sim.vlog
//
//	# Only the seat base moves, no mDNS
//	seat-sim -components base -advertise=false
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/sdv-edge/vehicle-model-go/pkg/config"
	"github.com/sdv-edge/vehicle-model-go/pkg/transport"
	"github.com/sdv-edge/vehicle-model-go/pkg/version"
)

var cfg Config

func init() {
	flag.StringVar(&cfg.Address, "addr", transport.DefaultAddress, "Listen address")
	flag.StringVar(&cfg.Instance, "instance", "seat-sim", "mDNS instance name")
	flag.StringVar(&cfg.AppID, "app-id", config.DefaultSeatServiceAppID, "Dapr app ID announced in TXT records")
	flag.StringVar(&cfg.Interface, "interface", "", "Network interface for mDNS (default: all)")
	flag.BoolVar(&cfg.Advertise, "advertise", true, "Announce the service over mDNS")
	flag.StringVar(&cfg.Components, "components", "", "Adjustable components, e.g. base,lumbar (default: all)")
	flag.StringVar(&cfg.EventLog, "event-log", "", "CBOR event log file")
	flag.BoolVar(&cfg.Verbose, "verbose", false, "Print every call and signal change")
}

func main() {
	flag.Parse()
	log.SetFlags(log.Ltime | log.Lmicroseconds)

	if cfg.EventLog == "" {
		if env, err := config.Load(); err == nil {
			cfg.EventLog = env.EventLog
		}
	}

	log.Println("Seat Service Simulator")
	log.Println("======================")
	log.Printf("VSS version: %s", version.Current)

	a, err := newApp(cfg)
	if err != nil {
		log.Fatalf("Failed to create simulator: %v", err)
	}
	log.Printf("Session: %s", a.sessionID)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := a.start(ctx); err != nil {
		_ = a.stop()
		log.Fatalf("Failed to start: %v", err)
	}
	log.Printf("Serving at %s", a.server.URL())
	if a.advertiser != nil {
		log.Printf("Advertising %q as _sdv-seats._tcp", cfg.Instance)
	}
	if cfg.EventLog != "" {
		log.Printf("Event logging to: %s", cfg.EventLog)
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh

	log.Printf("Received signal: %v", sig)
	log.Println("Shutting down...")

	if err := a.stop(); err != nil {
		log.Printf("Error stopping: %v", err)
	}
	log.Println("Goodbye!")
}
