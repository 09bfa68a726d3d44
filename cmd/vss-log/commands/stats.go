package commands

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/sdv-edge/vehicle-model-go/pkg/log"
)

// Stats holds aggregate statistics about a log file.
type Stats struct {
	TotalEvents       int
	EventsByLayer     map[log.Layer]int
	EventsByCategory  map[log.Category]int
	EventsByDirection map[log.Direction]int
	Sessions          map[string]*SessionStats
	Procedures        map[string]*ProcedureStats
	Signals           map[string]int
	Errors            int
	TimeRange         struct {
		Start time.Time
		End   time.Time
	}
}

// SessionStats holds statistics for a single process run.
type SessionStats struct {
	FirstSeen time.Time
	LastSeen  time.Time
	Events    int
	Role      log.Role
}

// ProcedureStats holds call statistics for one procedure.
type ProcedureStats struct {
	Calls         int
	ByStatus      map[string]int
	TotalDuration time.Duration
	MaxDuration   time.Duration
}

// Mean returns the mean call duration.
func (p *ProcedureStats) Mean() time.Duration {
	if p.Calls == 0 {
		return 0
	}
	return p.TotalDuration / time.Duration(p.Calls)
}

// Collect reads every event of the log file into Stats.
func Collect(path string) (*Stats, error) {
	reader, err := log.NewReader(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	stats := &Stats{
		EventsByLayer:     make(map[log.Layer]int),
		EventsByCategory:  make(map[log.Category]int),
		EventsByDirection: make(map[log.Direction]int),
		Sessions:          make(map[string]*SessionStats),
		Procedures:        make(map[string]*ProcedureStats),
		Signals:           make(map[string]int),
	}

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read event: %w", err)
		}
		stats.add(event)
	}
	return stats, nil
}

func (s *Stats) add(event log.Event) {
	s.TotalEvents++
	s.EventsByLayer[event.Layer]++
	s.EventsByCategory[event.Category]++
	s.EventsByDirection[event.Direction]++

	if s.TimeRange.Start.IsZero() || event.Timestamp.Before(s.TimeRange.Start) {
		s.TimeRange.Start = event.Timestamp
	}
	if event.Timestamp.After(s.TimeRange.End) {
		s.TimeRange.End = event.Timestamp
	}

	sess, ok := s.Sessions[event.SessionID]
	if !ok {
		sess = &SessionStats{FirstSeen: event.Timestamp, LastSeen: event.Timestamp, Role: event.LocalRole}
		s.Sessions[event.SessionID] = sess
	}
	sess.Events++
	if event.Timestamp.After(sess.LastSeen) {
		sess.LastSeen = event.Timestamp
	}

	if event.RPC != nil {
		p, ok := s.Procedures[event.RPC.Procedure]
		if !ok {
			p = &ProcedureStats{ByStatus: make(map[string]int)}
			s.Procedures[event.RPC.Procedure] = p
		}
		p.Calls++
		p.ByStatus[event.RPC.Status]++
		p.TotalDuration += event.RPC.Duration
		if event.RPC.Duration > p.MaxDuration {
			p.MaxDuration = event.RPC.Duration
		}
	}
	if event.Signal != nil {
		s.Signals[event.Signal.Path]++
	}
	if event.Error != nil {
		s.Errors++
	}
}

// RunStats analyzes the log file and prints statistics.
func RunStats(path string, w io.Writer) error {
	stats, err := Collect(path)
	if err != nil {
		return err
	}
	printStats(w, stats)
	return nil
}

// maxSignals is the number of most changed signals printed.
const maxSignals = 10

func printStats(w io.Writer, stats *Stats) {
	fmt.Fprintln(w, "=== Vehicle Event Log Statistics ===")
	fmt.Fprintln(w)

	if stats.TotalEvents > 0 {
		fmt.Fprintf(w, "Time Range: %s to %s\n",
			stats.TimeRange.Start.Format(time.RFC3339),
			stats.TimeRange.End.Format(time.RFC3339))
		fmt.Fprintf(w, "Duration:   %s\n", stats.TimeRange.End.Sub(stats.TimeRange.Start).Round(time.Second))
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Total Events: %d\n", stats.TotalEvents)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Events by Layer:")
	for _, layer := range []log.Layer{log.LayerRPC, log.LayerSignal} {
		if count := stats.EventsByLayer[layer]; count > 0 {
			fmt.Fprintf(w, "  %-12s %d\n", layer.String()+":", count)
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Events by Category:")
	for _, cat := range []log.Category{log.CategoryCall, log.CategoryChange, log.CategoryError} {
		if count := stats.EventsByCategory[cat]; count > 0 {
			fmt.Fprintf(w, "  %-12s %d\n", cat.String()+":", count)
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Events by Direction:")
	for _, dir := range []log.Direction{log.DirectionIn, log.DirectionOut} {
		if count := stats.EventsByDirection[dir]; count > 0 {
			fmt.Fprintf(w, "  %-12s %d\n", dir.String()+":", count)
		}
	}
	fmt.Fprintln(w)

	if len(stats.Procedures) > 0 {
		fmt.Fprintln(w, "Calls:")
		for _, name := range sortedKeys(stats.Procedures) {
			p := stats.Procedures[name]
			fmt.Fprintf(w, "  %-28s %d calls, mean %s, max %s\n",
				procedureName(name), p.Calls, formatDuration(p.Mean()), formatDuration(p.MaxDuration))
			for _, status := range sortedKeys(p.ByStatus) {
				fmt.Fprintf(w, "    %-26s %d\n", status, p.ByStatus[status])
			}
		}
		fmt.Fprintln(w)
	}

	if len(stats.Signals) > 0 {
		paths := sortedKeys(stats.Signals)
		sort.SliceStable(paths, func(i, j int) bool {
			return stats.Signals[paths[i]] > stats.Signals[paths[j]]
		})
		if len(paths) > maxSignals {
			paths = paths[:maxSignals]
		}
		fmt.Fprintf(w, "Signals: %d changed\n", len(stats.Signals))
		for _, p := range paths {
			fmt.Fprintf(w, "  %-50s %d\n", p, stats.Signals[p])
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Sessions: %d\n", len(stats.Sessions))
	if len(stats.Sessions) > 0 {
		type sessionInfo struct {
			id    string
			stats *SessionStats
		}
		sessions := make([]sessionInfo, 0, len(stats.Sessions))
		for id, ss := range stats.Sessions {
			sessions = append(sessions, sessionInfo{id, ss})
		}
		sort.Slice(sessions, func(i, j int) bool {
			return sessions[i].stats.FirstSeen.Before(sessions[j].stats.FirstSeen)
		})

		fmt.Fprintln(w)
		for _, s := range sessions {
			duration := s.stats.LastSeen.Sub(s.stats.FirstSeen).Round(time.Millisecond)
			fmt.Fprintf(w, "  [%s] %s, %d events, duration %s\n", shortenID(s.id), s.stats.Role, s.stats.Events, duration)
		}
	}

	if stats.Errors > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Errors: %d\n", stats.Errors)
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
