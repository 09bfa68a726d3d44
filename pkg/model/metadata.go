package model

import (
	"fmt"
	"strings"
)

// DataType is the VSS data type of a data point.
type DataType uint8

const (
	DataTypeUnknown DataType = iota
	DataTypeBoolean
	DataTypeInt8
	DataTypeInt16
	DataTypeInt32
	DataTypeInt64
	DataTypeUint8
	DataTypeUint16
	DataTypeUint32
	DataTypeUint64
	DataTypeFloat
	DataTypeDouble
	DataTypeString
	DataTypeBooleanArray
	DataTypeInt8Array
	DataTypeInt16Array
	DataTypeInt32Array
	DataTypeInt64Array
	DataTypeUint8Array
	DataTypeUint16Array
	DataTypeUint32Array
	DataTypeUint64Array
	DataTypeFloatArray
	DataTypeDoubleArray
	DataTypeStringArray
)

var dataTypeNames = []string{
	"unknown", "boolean", "int8", "int16", "int32", "int64",
	"uint8", "uint16", "uint32", "uint64", "float", "double", "string",
	"boolean[]", "int8[]", "int16[]", "int32[]", "int64[]",
	"uint8[]", "uint16[]", "uint32[]", "uint64[]", "float[]", "double[]", "string[]",
}

// String returns the VSS spelling of the data type.
func (d DataType) String() string {
	if int(d) < len(dataTypeNames) {
		return dataTypeNames[d]
	}
	return "unknown"
}

// IsArray reports whether the data type is an array variant.
func (d DataType) IsArray() bool {
	return d >= DataTypeBooleanArray && d <= DataTypeStringArray
}

// Elem returns the element type of an array data type, or d itself.
func (d DataType) Elem() DataType {
	if !d.IsArray() {
		return d
	}
	return d - DataTypeBooleanArray + DataTypeBoolean
}

// ParseDataType parses a VSS data type name such as "uint8" or "string[]".
func ParseDataType(s string) (DataType, error) {
	s = strings.TrimSpace(s)
	for i, name := range dataTypeNames {
		if i > 0 && name == s {
			return DataType(i), nil
		}
	}
	return DataTypeUnknown, fmt.Errorf("unknown data type %q", s)
}

// Metadata describes a data point. All fields are informational.
type Metadata struct {
	// Type is the VSS data type of the value.
	Type DataType

	// Kind is the role of the data point.
	Kind Kind

	// Unit is the VSS unit, e.g. "km/h" or "percent".
	Unit string

	// Min and Max are the documented value range. Nil means unbounded.
	Min *float64
	Max *float64

	// Allowed lists the documented values for enumerated strings.
	Allowed []string

	// Description is the one-line VSS description.
	Description string

	// Comment carries additional VSS notes.
	Comment string
}

// HasRange reports whether a minimum or maximum is documented.
func (m Metadata) HasRange() bool {
	return m.Min != nil || m.Max != nil
}

// Option sets a Metadata field when constructing a data point.
type Option func(*Metadata)

// Unit sets the unit.
func Unit(unit string) Option {
	return func(m *Metadata) { m.Unit = unit }
}

// Min sets the documented minimum.
func Min(v float64) Option {
	return func(m *Metadata) { m.Min = &v }
}

// Max sets the documented maximum.
func Max(v float64) Option {
	return func(m *Metadata) { m.Max = &v }
}

// Allowed sets the documented allowed values.
func Allowed(values ...string) Option {
	return func(m *Metadata) { m.Allowed = values }
}

// Description sets the description.
func Description(s string) Option {
	return func(m *Metadata) { m.Description = s }
}

// Comment sets the comment.
func Comment(s string) Option {
	return func(m *Metadata) { m.Comment = s }
}
