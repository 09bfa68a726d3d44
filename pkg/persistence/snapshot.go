package persistence

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/sdv-edge/vehicle-model-go/pkg/model"
	"github.com/sdv-edge/vehicle-model-go/pkg/version"
)

// SnapshotVersion is the current version of the snapshot file format.
const SnapshotVersion = 1

// Errors.
var (
	ErrSnapshotVersion = errors.New("unsupported snapshot version")
	ErrVSSVersion      = errors.New("incompatible VSS version")
)

// Snapshot holds the values of a tree at one point in time.
type Snapshot struct {
	// Version is the snapshot file format version.
	Version int `json:"version"`

	// VSSVersion is the VSS release of the captured tree.
	VSSVersion string `json:"vss_version"`

	// SavedAt is when the snapshot was taken.
	SavedAt time.Time `json:"saved_at"`

	// Values maps absolute data point paths to their values.
	Values map[string]any `json:"values"`
}

// Paths returns the snapshot paths, sorted.
func (s *Snapshot) Paths() []string {
	paths := make([]string, 0, len(s.Values))
	for p := range s.Values {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// Capture records every data point below root that has a value.
func Capture(root model.Node) *Snapshot {
	snap := &Snapshot{
		Version:    SnapshotVersion,
		VSSVersion: version.Current,
		SavedAt:    time.Now(),
		Values:     make(map[string]any),
	}
	for _, leaf := range model.Leaves(root) {
		if v, ok := leaf.Get(); ok {
			snap.Values[leaf.Path()] = v
		}
	}
	return snap
}

// RestoreResult reports what Restore did.
type RestoreResult struct {
	// Applied is the number of values written.
	Applied int

	// Unknown lists snapshot paths without a data point in the tree.
	Unknown []string

	// Failed maps paths to the error of values that could not be set.
	Failed map[string]error
}

// OK reports whether every value was applied.
func (r *RestoreResult) OK() bool {
	return len(r.Unknown) == 0 && len(r.Failed) == 0
}

// Restore writes the snapshot values into the tree rooted at root. It fails
// without writing anything when the snapshot format or its VSS major
// version does not match.
func Restore(root model.Node, snap *Snapshot) (*RestoreResult, error) {
	if snap.Version != SnapshotVersion {
		return nil, fmt.Errorf("%w: %d", ErrSnapshotVersion, snap.Version)
	}
	if snap.VSSVersion != "" {
		v, err := version.Parse(snap.VSSVersion)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrVSSVersion, err)
		}
		if !v.Compatible(version.CurrentVersion()) {
			return nil, fmt.Errorf("%w: snapshot %s, tree %s", ErrVSSVersion, v, version.Current)
		}
	}

	result := &RestoreResult{Failed: make(map[string]error)}
	prefix := root.Path() + "."
	for _, path := range snap.Paths() {
		if !strings.HasPrefix(path, prefix) {
			result.Unknown = append(result.Unknown, path)
			continue
		}
		n, err := model.Find(root, strings.TrimPrefix(path, prefix))
		if err != nil {
			result.Unknown = append(result.Unknown, path)
			continue
		}
		leaf, ok := n.(model.Leaf)
		if !ok {
			result.Unknown = append(result.Unknown, path)
			continue
		}
		if err := leaf.SetAny(snap.Values[path]); err != nil {
			result.Failed[path] = err
			continue
		}
		result.Applied++
	}
	return result, nil
}

// SnapshotStore manages persistence of snapshots to a JSON file.
type SnapshotStore struct {
	mu   sync.Mutex
	path string
}

// NewSnapshotStore creates a new snapshot store.
func NewSnapshotStore(path string) *SnapshotStore {
	return &SnapshotStore{path: path}
}

// Path returns the file path of the store.
func (s *SnapshotStore) Path() string {
	return s.path
}

// Save persists the snapshot to disk.
func (s *SnapshotStore) Save(snap *Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return err
	}

	snap.Version = SnapshotVersion
	if snap.SavedAt.IsZero() {
		snap.SavedAt = time.Now()
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return err
	}

	// Write through a temporary file so a crash never leaves half a snapshot.
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}

// Load reads the snapshot from disk. Numbers decode as json.Number and are
// converted to the data point type by Restore.
// Returns nil, nil if the file doesn't exist.
func (s *SnapshotStore) Load() (*Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	snap := &Snapshot{}
	if err := dec.Decode(snap); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", s.path, err)
	}
	if snap.Values == nil {
		snap.Values = make(map[string]any)
	}
	return snap, nil
}

// Clear removes the snapshot file.
func (s *SnapshotStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
