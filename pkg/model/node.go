package model

import (
	"fmt"
	"strings"
	"sync"
)

// Kind classifies a node of the tree.
type Kind uint8

const (
	// KindBranch groups other nodes.
	KindBranch Kind = iota

	// KindSensor is a measured, read-only data point.
	KindSensor

	// KindActuator is a commandable data point.
	KindActuator

	// KindAttribute is a static configuration data point.
	KindAttribute
)

// String returns the VSS spelling of the kind.
func (k Kind) String() string {
	switch k {
	case KindBranch:
		return "branch"
	case KindSensor:
		return "sensor"
	case KindActuator:
		return "actuator"
	case KindAttribute:
		return "attribute"
	default:
		return "unknown"
	}
}

// IsLeaf reports whether nodes of this kind carry a value.
func (k Kind) IsLeaf() bool {
	return k == KindSensor || k == KindActuator || k == KindAttribute
}

// ParseKind parses a VSS node type name.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(s) {
	case "branch":
		return KindBranch, nil
	case "sensor":
		return KindSensor, nil
	case "actuator":
		return KindActuator, nil
	case "attribute":
		return KindAttribute, nil
	}
	return 0, fmt.Errorf("unknown node kind %q", s)
}

// Node is an element of the vehicle tree.
//
// Only Branch embedders and DataPoint values implement Node.
type Node interface {
	// Name returns the name given at construction.
	Name() string

	// Parent returns the node that constructed this one, or nil for the root.
	Parent() Node

	// Path returns the dot-separated names from the root to this node.
	Path() string

	// Kind returns the node classification.
	Kind() Kind

	// Children returns the child nodes in declaration order.
	Children() []Node

	info() *nodeInfo
}

// nodeInfo holds the identity shared by all nodes.
type nodeInfo struct {
	name   string
	parent Node
}

// Name returns the node name.
func (n *nodeInfo) Name() string {
	return n.name
}

// Parent returns the parent node.
func (n *nodeInfo) Parent() Node {
	return n.parent
}

// Path returns the dotted path of the node.
func (n *nodeInfo) Path() string {
	if n.parent == nil {
		return n.name
	}
	return n.parent.Path() + "." + n.name
}

func (n *nodeInfo) info() *nodeInfo {
	return n
}

// container is implemented by nodes that can hold children.
type container interface {
	attach(name string, child Node)
}

// notifier is implemented by nodes that fan out value changes.
type notifier interface {
	notify(leaf Leaf)
}

// Subscriber receives value changes of data points below a branch.
type Subscriber interface {
	// OnValueChanged is called after the value of leaf changed.
	OnValueChanged(leaf Leaf)
}

// SubscriberFunc adapts a function to the Subscriber interface.
type SubscriberFunc func(leaf Leaf)

// OnValueChanged calls f(leaf).
func (f SubscriberFunc) OnValueChanged(leaf Leaf) {
	f(leaf)
}

type subscription struct {
	id  uint64
	sub Subscriber
}

// Branch is the embeddable base of every branch type.
type Branch struct {
	nodeInfo

	mu          sync.RWMutex
	children    []Node
	byName      map[string]Node
	subscribers []subscription
	nextID      uint64
}

// NewBranch creates the branch state for self and attaches self to parent.
//
// self is the value embedding the returned *Branch; it becomes the child
// recorded in parent. A nil parent makes self a root.
func NewBranch(self Node, name string, parent Node) *Branch {
	b := &Branch{
		nodeInfo: nodeInfo{name: name, parent: parent},
		byName:   make(map[string]Node),
	}
	if parent != nil {
		attachTo(parent, name, self)
	}
	return b
}

// attachTo records child under parent as name. The name is passed in since
// child may still be under construction. Structural errors in the tree are
// programming errors and panic.
func attachTo(parent Node, name string, child Node) {
	c, ok := parent.(container)
	if !ok {
		panic(fmt.Sprintf("model: %s cannot hold child %s", parent.Path(), name))
	}
	c.attach(name, child)
}

func (b *Branch) attach(name string, child Node) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, exists := b.byName[name]; exists {
		panic(fmt.Sprintf("model: duplicate child %s in %s", name, b.Path()))
	}
	b.byName[name] = child
	b.children = append(b.children, child)
}

// Kind returns KindBranch.
func (b *Branch) Kind() Kind {
	return KindBranch
}

// Children returns the children in declaration order.
func (b *Branch) Children() []Node {
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := make([]Node, len(b.children))
	copy(out, b.children)
	return out
}

// Child returns the direct child with the given name.
func (b *Branch) Child(name string) (Node, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	n, ok := b.byName[name]
	return n, ok
}

// Subscribe registers s for value changes of every data point below the
// branch. The returned function removes the subscription.
func (b *Branch) Subscribe(s Subscriber) (cancel func()) {
	b.mu.Lock()
	b.nextID++
	id := b.nextID
	b.subscribers = append(b.subscribers, subscription{id: id, sub: s})
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		for i, entry := range b.subscribers {
			if entry.id == id {
				b.subscribers = append(b.subscribers[:i], b.subscribers[i+1:]...)
				return
			}
		}
	}
}

func (b *Branch) notify(leaf Leaf) {
	b.mu.RLock()
	subs := make([]Subscriber, len(b.subscribers))
	for i, entry := range b.subscribers {
		subs[i] = entry.sub
	}
	b.mu.RUnlock()

	for _, s := range subs {
		s.OnValueChanged(leaf)
	}
}
