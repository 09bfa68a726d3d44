package inspect

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sdv-edge/vehicle-model-go/pkg/model"
	"github.com/sdv-edge/vehicle-model-go/pkg/vss"
)

func mustPath(t *testing.T, s string) *Path {
	t.Helper()
	p, err := ParsePath(s)
	require.NoError(t, err)
	return p
}

func TestResolveReturnsTreeNodes(t *testing.T) {
	v := vss.New()
	insp := NewInspector(v)
	assert.Same(t, v, insp.Root())

	n, err := insp.Resolve(mustPath(t, "Cabin.Seat.Row1.Pos2.Position"))
	require.NoError(t, err)

	row, err := v.Cabin.Seat.Row(1)
	require.NoError(t, err)
	seat, err := row.Pos(2)
	require.NoError(t, err)
	assert.Same(t, seat.Position, n)

	root, err := insp.Resolve(mustPath(t, "Vehicle"))
	require.NoError(t, err)
	assert.Same(t, v, root)
}

func TestResolveUsesCache(t *testing.T) {
	insp := NewInspectorWithCache(vss.New(), 2)

	for _, p := range []string{"Speed", "Vehicle.Speed", "Cabin", "Body"} {
		_, err := insp.ResolveString(p)
		require.NoError(t, err)
	}
	// Speed and Vehicle.Speed share a key; Body evicted Speed.
	assert.Equal(t, 2, insp.CacheLen())

	first, err := insp.ResolveString("Cabin.Door.Row1.Left")
	require.NoError(t, err)
	second, err := insp.ResolveString("Cabin/Door/Row1/Left")
	require.NoError(t, err)
	assert.Same(t, first, second)

	uncached := NewInspectorWithCache(vss.New(), 0)
	_, err = uncached.ResolveString("Speed")
	require.NoError(t, err)
	assert.Zero(t, uncached.CacheLen())
}

func TestResolveErrors(t *testing.T) {
	insp := NewInspector(vss.New())

	_, err := insp.ResolveString("Cabin.Seat.Row3")
	assert.True(t, errors.Is(err, model.ErrNodeNotFound), "got %v", err)

	_, err = insp.ResolveString("Cabin..Seat")
	assert.True(t, errors.Is(err, ErrInvalidPath), "got %v", err)

	// Failed lookups are not cached.
	assert.Zero(t, insp.CacheLen())

	// The branch resolves and stays cached even though Read rejects it.
	_, err = insp.Read(mustPath(t, "Cabin.Seat"))
	assert.True(t, errors.Is(err, ErrNotLeaf), "got %v", err)
	assert.Equal(t, 1, insp.CacheLen())
}

func TestReadWrite(t *testing.T) {
	v := vss.New()
	insp := NewInspector(v)
	path := mustPath(t, "Cabin.Seat.Row1.Pos1.Position")

	info, err := insp.Read(path)
	require.NoError(t, err)
	assert.False(t, info.HasValue)
	assert.Equal(t, model.KindActuator, info.Kind)
	assert.Equal(t, model.DataTypeUint16, info.Meta.Type)
	assert.Equal(t, "mm", info.Meta.Unit)

	info, err = insp.Write(path, "420")
	require.NoError(t, err)
	assert.True(t, info.HasValue)
	assert.Equal(t, uint16(420), info.Value)
	assert.False(t, info.Timestamp.IsZero())

	row, _ := v.Cabin.Seat.Row(1)
	seat, _ := row.Pos(1)
	got, ok := seat.Position.Value()
	assert.True(t, ok)
	assert.Equal(t, uint16(420), got)

	_, err = insp.Write(path, "-1")
	assert.Error(t, err)
	_, err = insp.Write(mustPath(t, "Cabin"), "1")
	assert.True(t, errors.Is(err, ErrNotLeaf))

	info, err = insp.Write(mustPath(t, "Cabin.Infotainment.Media.Played.Source"), "FM")
	require.NoError(t, err)
	assert.Equal(t, "FM", info.Value)
}

func TestList(t *testing.T) {
	insp := NewInspector(vss.New())

	rows, err := insp.List(mustPath(t, "Cabin.Seat"))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Row1", rows[0].Name)
	assert.Equal(t, "Vehicle.Cabin.Seat.Row2", rows[1].Path)
	assert.Equal(t, model.KindBranch, rows[0].Kind)
	assert.Equal(t, 3, rows[0].Children)

	leaf, err := insp.List(mustPath(t, "Speed"))
	require.NoError(t, err)
	require.Len(t, leaf, 1)
	assert.Equal(t, "Speed", leaf[0].Name)
	assert.Equal(t, "km/h", leaf[0].Meta.Unit)
}

func TestTreeDepth(t *testing.T) {
	insp := NewInspector(vss.New())

	tree, err := insp.Tree(mustPath(t, "Cabin.Seat"), 1)
	require.NoError(t, err)
	require.Len(t, tree.Children, 2)
	for _, row := range tree.Children {
		assert.True(t, row.Truncated)
		assert.Empty(t, row.Children)
	}

	full, err := insp.Tree(mustPath(t, "Cabin.Seat.Row1.Pos1.Headrest"), -1)
	require.NoError(t, err)
	assert.False(t, full.Truncated)

	var count func(*TreeNode) int
	count = func(n *TreeNode) int {
		total := 1
		for _, c := range n.Children {
			total += count(c)
		}
		return total
	}
	row, _ := insp.ResolveString("Cabin.Seat.Row1.Pos1.Headrest")
	branches, leaves := model.Count(row)
	assert.Equal(t, branches+leaves, count(full))

	leafTree, err := insp.Tree(mustPath(t, "Speed"), 0)
	require.NoError(t, err)
	assert.False(t, leafTree.Truncated)
}

func TestComplete(t *testing.T) {
	insp := NewInspector(vss.New())

	assert.Equal(t, []string{"Vehicle.Cabin."}, insp.Complete("Cab"))
	assert.Equal(t, []string{"Vehicle."}, insp.Complete("Vehicle"))
	assert.Equal(t, []string{"Vehicle.Cabin.Seat.Row1.", "Vehicle.Cabin.Seat.Row2."}, insp.Complete("Vehicle.Cabin.Seat.R"))
	assert.Equal(t, []string{"Vehicle.Cabin.Seat.Row1.Pos1.Position"}, insp.Complete("Cabin/Seat/Row1/Pos1/Posi"))
	assert.Nil(t, insp.Complete("Nope.X"))

	all := insp.Complete("")
	assert.Contains(t, all, "Vehicle.Speed")
	for _, c := range all {
		assert.True(t, strings.HasPrefix(c, "Vehicle."), c)
	}
}
