package model

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// Model errors.
var (
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrUnknownKey      = errors.New("unknown instance key")
	ErrValueType       = errors.New("invalid value for data type")
	ErrNodeNotFound    = errors.New("node not found")
)

// IndexError reports an index outside the bounds of a collection.
type IndexError struct {
	Collection string
	Dimension  string
	Index      int
	Low        int
	High       int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%s: %s index %d out of range [%d, %d]",
		e.Collection, e.Dimension, e.Index, e.Low, e.High)
}

// Unwrap returns ErrIndexOutOfRange.
func (e *IndexError) Unwrap() error {
	return ErrIndexOutOfRange
}

// KeyError reports an instance name a dictionary does not hold.
type KeyError struct {
	Collection string
	Key        string
	Keys       []string
}

func (e *KeyError) Error() string {
	return fmt.Sprintf("%s: unknown instance %q, expected one of %s",
		e.Collection, e.Key, strings.Join(e.Keys, ", "))
}

// Unwrap returns ErrUnknownKey.
func (e *KeyError) Unwrap() error {
	return ErrUnknownKey
}

// CheckRange returns an *IndexError when index is outside [low, high].
func CheckRange(collection, dimension string, index, low, high int) error {
	if index < low || index > high {
		return &IndexError{
			Collection: collection,
			Dimension:  dimension,
			Index:      index,
			Low:        low,
			High:       high,
		}
	}
	return nil
}

// Range addresses pre-built instances by a contiguous numeric index.
type Range[T Node] struct {
	owner     Node
	dimension string
	low       int
	items     []T
}

// NewRange creates a range over items; items[0] has index low.
func NewRange[T Node](owner Node, dimension string, low int, items ...T) *Range[T] {
	return &Range[T]{
		owner:     owner,
		dimension: dimension,
		low:       low,
		items:     items,
	}
}

// At returns the instance at index.
func (r *Range[T]) At(index int) (T, error) {
	low, high := r.Bounds()
	if err := CheckRange(r.owner.Path(), r.dimension, index, low, high); err != nil {
		var zero T
		return zero, err
	}
	return r.items[index-low], nil
}

// Bounds returns the inclusive index bounds.
func (r *Range[T]) Bounds() (low, high int) {
	return r.low, r.low + len(r.items) - 1
}

// Dimension returns the name of the index, e.g. "Row".
func (r *Range[T]) Dimension() string {
	return r.dimension
}

// Items returns the instances in index order.
func (r *Range[T]) Items() []T {
	return slices.Clone(r.items)
}

// Dictionary addresses pre-built instances by name.
type Dictionary[T Node] struct {
	owner Node
	keys  []string
	items map[string]T
}

// NewDictionary creates a dictionary mapping keys[i] to items[i].
func NewDictionary[T Node](owner Node, keys []string, items ...T) *Dictionary[T] {
	if len(keys) != len(items) {
		panic(fmt.Sprintf("model: %s has %d keys for %d instances", owner.Path(), len(keys), len(items)))
	}
	d := &Dictionary[T]{
		owner: owner,
		keys:  keys,
		items: make(map[string]T, len(items)),
	}
	for i, key := range keys {
		d.items[key] = items[i]
	}
	return d
}

// Element returns the instance named key.
func (d *Dictionary[T]) Element(key string) (T, error) {
	item, ok := d.items[key]
	if !ok {
		var zero T
		return zero, &KeyError{
			Collection: d.owner.Path(),
			Key:        key,
			Keys:       slices.Clone(d.keys),
		}
	}
	return item, nil
}

// Keys returns the instance names in declaration order.
func (d *Dictionary[T]) Keys() []string {
	return slices.Clone(d.keys)
}
