package model

import (
	"reflect"
	"sync"
	"time"
)

// Value lists the Go types a data point can hold.
type Value interface {
	bool | int8 | int16 | int32 | int64 | uint8 | uint16 | uint32 | uint64 |
		float32 | float64 | string |
		[]bool | []int8 | []int16 | []int32 | []int64 | []uint8 | []uint16 | []uint32 | []uint64 |
		[]float32 | []float64 | []string
}

// Leaf is the type-erased view of a data point.
type Leaf interface {
	Node

	// Metadata returns the data point description.
	Metadata() Metadata

	// Get returns the current value and whether one was set.
	Get() (any, bool)

	// SetAny sets the value from a Go value of a compatible type.
	SetAny(v any) error

	// SetString parses s according to the data type and sets the value.
	SetString(s string) error

	// Timestamp returns the time of the last Set, or the zero time.
	Timestamp() time.Time
}

// DataPoint is a typed leaf of the tree.
type DataPoint[T Value] struct {
	nodeInfo
	meta Metadata

	mu        sync.RWMutex
	value     T
	valid     bool
	timestamp time.Time
}

// NewSensor creates a sensor data point and attaches it to parent.
func NewSensor[T Value](name string, parent Node, opts ...Option) *DataPoint[T] {
	return newDataPoint[T](KindSensor, name, parent, opts)
}

// NewActuator creates an actuator data point and attaches it to parent.
func NewActuator[T Value](name string, parent Node, opts ...Option) *DataPoint[T] {
	return newDataPoint[T](KindActuator, name, parent, opts)
}

// NewAttribute creates an attribute data point and attaches it to parent.
func NewAttribute[T Value](name string, parent Node, opts ...Option) *DataPoint[T] {
	return newDataPoint[T](KindAttribute, name, parent, opts)
}

func newDataPoint[T Value](kind Kind, name string, parent Node, opts []Option) *DataPoint[T] {
	d := &DataPoint[T]{
		nodeInfo: nodeInfo{name: name, parent: parent},
		meta:     Metadata{Type: dataTypeOf[T](), Kind: kind},
	}
	for _, opt := range opts {
		opt(&d.meta)
	}
	if parent != nil {
		attachTo(parent, name, d)
	}
	return d
}

// cloneValue copies array values so the stored value never aliases a
// caller's slice.
func cloneValue[T Value](v T) T {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice || rv.IsNil() {
		return v
	}
	c := reflect.MakeSlice(rv.Type(), rv.Len(), rv.Len())
	reflect.Copy(c, rv)
	return c.Interface().(T)
}

// Kind returns the role of the data point.
func (d *DataPoint[T]) Kind() Kind {
	return d.meta.Kind
}

// Children returns nil; data points are leaves.
func (d *DataPoint[T]) Children() []Node {
	return nil
}

// Metadata returns a copy of the data point metadata.
func (d *DataPoint[T]) Metadata() Metadata {
	m := d.meta
	if m.Allowed != nil {
		m.Allowed = append([]string(nil), m.Allowed...)
	}
	return m
}

// Value returns the current value and whether one was set.
func (d *DataPoint[T]) Value() (T, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return cloneValue(d.value), d.valid
}

// Timestamp returns the time of the last Set.
func (d *DataPoint[T]) Timestamp() time.Time {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.timestamp
}

// Set stores v. Subscribers of every ancestor branch are notified when the
// value differs from the previous one. Metadata is not enforced.
func (d *DataPoint[T]) Set(v T) {
	v = cloneValue(v)
	d.mu.Lock()
	changed := !d.valid || !reflect.DeepEqual(d.value, v)
	d.value = v
	d.valid = true
	d.timestamp = time.Now()
	d.mu.Unlock()

	if changed {
		d.propagate()
	}
}

// Reset clears the value without notifying subscribers.
func (d *DataPoint[T]) Reset() {
	d.mu.Lock()
	defer d.mu.Unlock()

	var zero T
	d.value = zero
	d.valid = false
	d.timestamp = time.Time{}
}

// Get returns the current value as any.
func (d *DataPoint[T]) Get() (any, bool) {
	v, ok := d.Value()
	if !ok {
		return nil, false
	}
	return v, true
}

// SetAny sets the value from v. Numeric values are converted when they fit
// the data type; []any is converted element-wise.
func (d *DataPoint[T]) SetAny(v any) error {
	t, err := coerce[T](v)
	if err != nil {
		return err
	}
	d.Set(t)
	return nil
}

// SetString parses s according to the data type and sets the value.
func (d *DataPoint[T]) SetString(s string) error {
	t, err := parseValue[T](s)
	if err != nil {
		return err
	}
	d.Set(t)
	return nil
}

func (d *DataPoint[T]) propagate() {
	for p := d.parent; p != nil; p = p.Parent() {
		if n, ok := p.(notifier); ok {
			n.notify(d)
		}
	}
}
