package inspect

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/sdv-edge/vehicle-model-go/pkg/model"
)

// Inspector errors.
var (
	ErrNotLeaf   = errors.New("not a data point")
	ErrNotBranch = errors.New("not a branch")
)

// DefaultCacheSize is the number of resolved paths an Inspector remembers.
const DefaultCacheSize = 1024

// Inspector reads, writes and lists the nodes of a tree by path.
// It is safe for concurrent use.
type Inspector struct {
	root  model.Node
	cache *lru.Cache[string, model.Node]
}

// NewInspector creates an Inspector over the tree rooted at root.
func NewInspector(root model.Node) *Inspector {
	return NewInspectorWithCache(root, DefaultCacheSize)
}

// NewInspectorWithCache creates an Inspector remembering up to size
// resolved paths. A size below 1 disables caching.
func NewInspectorWithCache(root model.Node, size int) *Inspector {
	i := &Inspector{root: root}
	if size > 0 {
		// lru.New only fails for non-positive sizes.
		i.cache, _ = lru.New[string, model.Node](size)
	}
	return i
}

// Root returns the inspected tree root.
func (i *Inspector) Root() model.Node {
	return i.root
}

// CacheLen returns the number of cached paths.
func (i *Inspector) CacheLen() int {
	if i.cache == nil {
		return 0
	}
	return i.cache.Len()
}

// NodeInfo describes a node for display.
type NodeInfo struct {
	Name     string
	Path     string
	Kind     model.Kind
	Children int

	// Data point fields, zero for branches.
	Meta      model.Metadata
	Value     any
	HasValue  bool
	Timestamp time.Time
}

// TreeNode is a node with its descendants up to a depth limit.
type TreeNode struct {
	NodeInfo
	Children []*TreeNode

	// Truncated is set when the node has children below the depth limit.
	Truncated bool
}

// Resolve returns the node at path.
func (i *Inspector) Resolve(path *Path) (model.Node, error) {
	key := path.Relative()
	if i.cache != nil {
		if n, ok := i.cache.Get(key); ok {
			return n, nil
		}
	}
	n, err := model.Find(i.root, key)
	if err != nil {
		return nil, err
	}
	if i.cache != nil {
		i.cache.Add(key, n)
	}
	return n, nil
}

// ResolveString parses and resolves a path expression.
func (i *Inspector) ResolveString(expr string) (model.Node, error) {
	p, err := ParsePath(expr)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", err, expr)
	}
	return i.Resolve(p)
}

// Leaf returns the data point at path.
func (i *Inspector) Leaf(path *Path) (model.Leaf, error) {
	n, err := i.Resolve(path)
	if err != nil {
		return nil, err
	}
	leaf, ok := n.(model.Leaf)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotLeaf, n.Path())
	}
	return leaf, nil
}

// Read returns the current state of the data point at path.
func (i *Inspector) Read(path *Path) (*NodeInfo, error) {
	leaf, err := i.Leaf(path)
	if err != nil {
		return nil, err
	}
	info := describe(leaf)
	return &info, nil
}

// Write parses value according to the data type of the data point at path
// and stores it. Metadata such as min/max is not enforced.
func (i *Inspector) Write(path *Path, value string) (*NodeInfo, error) {
	leaf, err := i.Leaf(path)
	if err != nil {
		return nil, err
	}
	if err := leaf.SetString(value); err != nil {
		return nil, fmt.Errorf("%s: %w", leaf.Path(), err)
	}
	info := describe(leaf)
	return &info, nil
}

// List describes the children of the node at path. For a data point it
// describes the data point itself.
func (i *Inspector) List(path *Path) ([]NodeInfo, error) {
	n, err := i.Resolve(path)
	if err != nil {
		return nil, err
	}
	if n.Kind().IsLeaf() {
		return []NodeInfo{describe(n)}, nil
	}
	children := n.Children()
	out := make([]NodeInfo, 0, len(children))
	for _, c := range children {
		out = append(out, describe(c))
	}
	return out, nil
}

// Tree returns the subtree at path down to depth levels below it. A depth
// below 0 means unlimited.
func (i *Inspector) Tree(path *Path, depth int) (*TreeNode, error) {
	n, err := i.Resolve(path)
	if err != nil {
		return nil, err
	}
	return buildTree(n, depth), nil
}

func buildTree(n model.Node, depth int) *TreeNode {
	t := &TreeNode{NodeInfo: describe(n)}
	children := n.Children()
	if len(children) == 0 {
		return t
	}
	if depth == 0 {
		t.Truncated = true
		return t
	}
	for _, c := range children {
		t.Children = append(t.Children, buildTree(c, depth-1))
	}
	return t
}

// Complete returns the absolute paths of the children of the deepest
// complete prefix of partial whose names start with the last segment.
// Branch candidates end with a dot.
func (i *Inspector) Complete(partial string) []string {
	partial = strings.TrimSpace(partial)
	parentExpr, stem := "", partial
	if idx := strings.LastIndexAny(partial, "./"); idx >= 0 {
		parentExpr, stem = partial[:idx], partial[idx+1:]
	}

	parent := i.root
	if parentExpr != "" {
		n, err := i.ResolveString(parentExpr)
		if err != nil {
			return nil
		}
		parent = n
	} else if stem == i.root.Name() {
		return []string{i.root.Path() + "."}
	}

	var out []string
	for _, c := range parent.Children() {
		if !strings.HasPrefix(c.Name(), stem) {
			continue
		}
		p := c.Path()
		if !c.Kind().IsLeaf() {
			p += "."
		}
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

func describe(n model.Node) NodeInfo {
	info := NodeInfo{
		Name:     n.Name(),
		Path:     n.Path(),
		Kind:     n.Kind(),
		Children: len(n.Children()),
	}
	if leaf, ok := n.(model.Leaf); ok {
		info.Meta = leaf.Metadata()
		info.Value, info.HasValue = leaf.Get()
		info.Timestamp = leaf.Timestamp()
	}
	return info
}
