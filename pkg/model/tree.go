package model

import (
	"errors"
	"fmt"
	"strings"
)

// SkipBranch is returned by a WalkFunc to skip the children of a branch.
var SkipBranch = errors.New("skip branch")

// WalkFunc is called for every node visited by Walk.
type WalkFunc func(n Node) error

// Walk visits n and its descendants in pre-order, children in declaration
// order. Returning SkipBranch skips the children of the current node; any
// other error stops the walk and is returned.
func Walk(n Node, fn WalkFunc) error {
	err := walk(n, fn)
	if errors.Is(err, SkipBranch) {
		return nil
	}
	return err
}

func walk(n Node, fn WalkFunc) error {
	if err := fn(n); err != nil {
		return err
	}
	for _, c := range n.Children() {
		if err := walk(c, fn); err != nil && !errors.Is(err, SkipBranch) {
			return err
		}
	}
	return nil
}

// Root returns the root of the tree containing n.
func Root(n Node) Node {
	for n.Parent() != nil {
		n = n.Parent()
	}
	return n
}

// Find resolves a dotted path relative to n. An empty path returns n.
func Find(n Node, path string) (Node, error) {
	if path == "" {
		return n, nil
	}
	cur := n
	for _, name := range strings.Split(path, ".") {
		next, ok := child(cur, name)
		if !ok {
			return nil, fmt.Errorf("%w: %s.%s", ErrNodeNotFound, cur.Path(), name)
		}
		cur = next
	}
	return cur, nil
}

func child(n Node, name string) (Node, bool) {
	if b, ok := n.(interface{ Child(string) (Node, bool) }); ok {
		return b.Child(name)
	}
	for _, c := range n.Children() {
		if c.Name() == name {
			return c, true
		}
	}
	return nil, false
}

// Count returns the number of branches and leaves in the tree below and
// including n.
func Count(n Node) (branches, leaves int) {
	_ = Walk(n, func(n Node) error {
		if n.Kind().IsLeaf() {
			leaves++
		} else {
			branches++
		}
		return nil
	})
	return branches, leaves
}

// Leaves returns every data point below n in walk order.
func Leaves(n Node) []Leaf {
	var out []Leaf
	_ = Walk(n, func(n Node) error {
		if l, ok := n.(Leaf); ok {
			out = append(out, l)
		}
		return nil
	})
	return out
}
