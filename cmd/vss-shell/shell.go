package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/sdv-edge/vehicle-model-go/pkg/inspect"
	"github.com/sdv-edge/vehicle-model-go/pkg/model"
	"github.com/sdv-edge/vehicle-model-go/pkg/persistence"
	"github.com/sdv-edge/vehicle-model-go/pkg/seats"
	"github.com/sdv-edge/vehicle-model-go/pkg/seatsim"
	"github.com/sdv-edge/vehicle-model-go/pkg/vss"
)

// seatService is the part of seats.Client the shell uses.
type seatService interface {
	Move(ctx context.Context, seat *seats.Seat) (*seats.MoveReply, error)
	MoveComponent(ctx context.Context, loc *seats.SeatLocation, component seats.SeatComponent, position int32) (*seats.MoveComponentReply, error)
	CurrentPosition(ctx context.Context, row, index uint32) (*seats.CurrentPositionReply, error)
}

// connectFunc resolves the seat service on first use.
type connectFunc func(ctx context.Context) (seatService, string, error)

// errNoSeatService is returned by seat commands when no connectFunc is set.
var errNoSeatService = errors.New("no seat service configured (use -seats or -discover)")

// defaultTreeDepth is the depth of "tree" without an explicit depth.
const defaultTreeDepth = 2

// Shell executes commands against a local vehicle tree and a remote seat
// service.
type Shell struct {
	out       io.Writer
	vehicle   *vss.Vehicle
	inspector *inspect.Inspector
	formatter *inspect.Formatter
	store     *persistence.SnapshotStore

	// mirror writes seat positions reported by the service into the local
	// tree.
	mirror *seatsim.Simulator

	connect  connectFunc
	seats    seatService
	seatsURL string

	mu      sync.Mutex
	watches map[string]func()
}

// NewShell creates a shell over v writing to out. connect may be nil when
// no seat service is available.
func NewShell(out io.Writer, v *vss.Vehicle, store *persistence.SnapshotStore, connect connectFunc) *Shell {
	return &Shell{
		out:       out,
		vehicle:   v,
		inspector: inspect.NewInspector(v),
		formatter: inspect.NewFormatter(),
		store:     store,
		mirror:    seatsim.New(v),
		connect:   connect,
		watches:   make(map[string]func()),
	}
}

// Inspector returns the inspector used for paths and completion.
func (s *Shell) Inspector() *inspect.Inspector {
	return s.inspector
}

// Execute runs one command line. It returns false when the shell should
// exit.
func (s *Shell) Execute(ctx context.Context, line string) bool {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return true
	}
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "help", "?":
		s.printHelp()
	case "ls", "list":
		s.cmdList(args)
	case "tree":
		s.cmdTree(args)
	case "get", "read", "r":
		s.cmdGet(args)
	case "set", "write", "w":
		s.cmdSet(args)
	case "watch":
		s.cmdWatch(args)
	case "unwatch":
		s.cmdUnwatch(args)
	case "seat":
		s.cmdSeat(ctx, args)
	case "save":
		s.cmdSave()
	case "load":
		s.cmdLoad()
	case "status":
		s.cmdStatus()
	case "quit", "exit", "q":
		fmt.Fprintln(s.out, "Exiting...")
		return false
	default:
		fmt.Fprintf(s.out, "Unknown command: %s (type 'help' for commands)\n", cmd)
	}
	return true
}

// Close cancels all watches.
func (s *Shell) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for path, cancel := range s.watches {
		cancel()
		delete(s.watches, path)
	}
}

func (s *Shell) printHelp() {
	fmt.Fprintln(s.out, `
Vehicle Shell Commands:
  Tree:
    ls [path]              - List the children of a branch
    tree [path] [depth]    - Show a subtree (default depth 2, -1 for all)
    get <path>             - Read a data point
    set <path> <value>     - Write a data point
    watch <path>           - Print changes of a data point or below a branch
    unwatch [path]         - Stop watching (all paths when omitted)

  Seats:
    seat move <row> <index> <base> <cushion> <lumbar> <side-bolster> <head-restraint>
    seat component <row> <index> <component> <position>
    seat position <row> <index>
                           - Positions are per mille (0-1000)

  Snapshots:
    save                   - Save all set values
    load                   - Restore saved values

  General:
    status                 - Show shell status
    help                   - Show this help
    quit                   - Exit

  Path Format:
    Vehicle.Cabin.Seat.Row1.Pos1.Position, Cabin.Seat.Row1.Pos1 or Cabin/Seat`)
}

// parsePath parses an optional path argument; no argument is the root.
func (s *Shell) parsePath(args []string) (*inspect.Path, bool) {
	expr := ""
	if len(args) > 0 {
		expr = args[0]
	}
	p, err := inspect.ParsePath(expr)
	if err != nil {
		fmt.Fprintf(s.out, "Invalid path %q: %v\n", expr, err)
		return nil, false
	}
	return p, true
}

func (s *Shell) cmdList(args []string) {
	p, ok := s.parsePath(args)
	if !ok {
		return
	}
	nodes, err := s.inspector.List(p)
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(s.out, "%s:\n", p)
	fmt.Fprint(s.out, s.formatter.FormatList(nodes))
}

func (s *Shell) cmdTree(args []string) {
	p, ok := s.parsePath(args)
	if !ok {
		return
	}
	depth := defaultTreeDepth
	if len(args) > 1 {
		d, err := strconv.Atoi(args[1])
		if err != nil {
			fmt.Fprintf(s.out, "Invalid depth: %s\n", args[1])
			return
		}
		depth = d
	}
	t, err := s.inspector.Tree(p, depth)
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	fmt.Fprint(s.out, s.formatter.FormatTree(t))
}

func (s *Shell) cmdGet(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(s.out, "Usage: get <path>")
		return
	}
	p, ok := s.parsePath(args)
	if !ok {
		return
	}
	info, err := s.inspector.Read(p)
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintln(s.out, s.formatter.FormatNode(*info))
}

func (s *Shell) cmdSet(args []string) {
	if len(args) < 2 {
		fmt.Fprintln(s.out, "Usage: set <path> <value>")
		return
	}
	p, ok := s.parsePath(args)
	if !ok {
		return
	}
	// String values may contain spaces.
	info, err := s.inspector.Write(p, strings.Join(args[1:], " "))
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintln(s.out, s.formatter.FormatNode(*info))
}

// subscriber is implemented by every generated branch.
type subscriber interface {
	Subscribe(model.Subscriber) (cancel func())
}

func (s *Shell) cmdWatch(args []string) {
	if len(args) < 1 {
		s.printWatches()
		return
	}
	p, ok := s.parsePath(args)
	if !ok {
		return
	}
	n, err := s.inspector.Resolve(p)
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}

	path := n.Path()
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.watches[path]; exists {
		fmt.Fprintf(s.out, "Already watching %s\n", path)
		return
	}

	// Data points are watched through their parent branch.
	target, only := n, ""
	if n.Kind().IsLeaf() {
		target, only = n.Parent(), path
	}
	sub, ok := target.(subscriber)
	if !ok {
		fmt.Fprintf(s.out, "Cannot watch %s\n", path)
		return
	}
	s.watches[path] = sub.Subscribe(model.SubscriberFunc(func(leaf model.Leaf) {
		if only != "" && leaf.Path() != only {
			return
		}
		v, _ := leaf.Get()
		fmt.Fprintf(s.out, "[WATCH] %s = %s\n", leaf.Path(), s.formatter.FormatValue(v, leaf.Metadata().Unit))
	}))
	fmt.Fprintf(s.out, "Watching %s\n", path)
}

func (s *Shell) cmdUnwatch(args []string) {
	if len(args) == 0 {
		s.Close()
		fmt.Fprintln(s.out, "Stopped all watches")
		return
	}
	p, ok := s.parsePath(args)
	if !ok {
		return
	}
	path := p.String()

	s.mu.Lock()
	defer s.mu.Unlock()
	cancel, ok := s.watches[path]
	if !ok {
		fmt.Fprintf(s.out, "Not watching %s\n", path)
		return
	}
	cancel()
	delete(s.watches, path)
	fmt.Fprintf(s.out, "Stopped watching %s\n", path)
}

func (s *Shell) printWatches() {
	paths := s.watchedPaths()
	if len(paths) == 0 {
		fmt.Fprintln(s.out, "No watches")
		return
	}
	fmt.Fprintln(s.out, "Watching:")
	for _, p := range paths {
		fmt.Fprintf(s.out, "  %s\n", p)
	}
}

func (s *Shell) watchedPaths() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	paths := make([]string, 0, len(s.watches))
	for p := range s.watches {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

func (s *Shell) cmdSave() {
	if s.store == nil {
		fmt.Fprintln(s.out, "No snapshot file configured")
		return
	}
	snap := persistence.Capture(s.vehicle)
	if err := s.store.Save(snap); err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(s.out, "Saved %d values to %s\n", len(snap.Values), s.store.Path())
}

func (s *Shell) cmdLoad() {
	if s.store == nil {
		fmt.Fprintln(s.out, "No snapshot file configured")
		return
	}
	snap, err := s.store.Load()
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	if snap == nil {
		fmt.Fprintf(s.out, "No snapshot at %s\n", s.store.Path())
		return
	}
	result, err := persistence.Restore(s.vehicle, snap)
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(s.out, "Restored %d values from %s (saved %s)\n",
		result.Applied, s.store.Path(), snap.SavedAt.Format("2006-01-02 15:04:05"))
	for _, p := range result.Unknown {
		fmt.Fprintf(s.out, "  unknown path: %s\n", p)
	}
	failed := make([]string, 0, len(result.Failed))
	for p := range result.Failed {
		failed = append(failed, p)
	}
	sort.Strings(failed)
	for _, p := range failed {
		fmt.Fprintf(s.out, "  %s: %v\n", p, result.Failed[p])
	}
}

func (s *Shell) cmdStatus() {
	set := 0
	for _, leaf := range model.Leaves(s.vehicle) {
		if _, ok := leaf.Get(); ok {
			set++
		}
	}
	ver, _ := s.vehicle.VersionVSS.Major.Value()
	minor, _ := s.vehicle.VersionVSS.Minor.Value()

	fmt.Fprintln(s.out, "Shell Status:")
	fmt.Fprintf(s.out, "  VSS version:    %d.%d\n", ver, minor)
	fmt.Fprintf(s.out, "  Data points:    %d (%d set)\n", len(model.Leaves(s.vehicle)), set)
	fmt.Fprintf(s.out, "  Watches:        %d\n", len(s.watchedPaths()))
	if s.seatsURL != "" {
		fmt.Fprintf(s.out, "  Seat service:   %s\n", s.seatsURL)
	} else {
		fmt.Fprintln(s.out, "  Seat service:   not connected")
	}
	if s.store != nil {
		fmt.Fprintf(s.out, "  Snapshot file:  %s\n", s.store.Path())
	}
}
