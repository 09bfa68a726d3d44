package model

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

func dataTypeOf[T Value]() DataType {
	var zero T
	switch any(zero).(type) {
	case bool:
		return DataTypeBoolean
	case int8:
		return DataTypeInt8
	case int16:
		return DataTypeInt16
	case int32:
		return DataTypeInt32
	case int64:
		return DataTypeInt64
	case uint8:
		return DataTypeUint8
	case uint16:
		return DataTypeUint16
	case uint32:
		return DataTypeUint32
	case uint64:
		return DataTypeUint64
	case float32:
		return DataTypeFloat
	case float64:
		return DataTypeDouble
	case string:
		return DataTypeString
	case []bool:
		return DataTypeBooleanArray
	case []int8:
		return DataTypeInt8Array
	case []int16:
		return DataTypeInt16Array
	case []int32:
		return DataTypeInt32Array
	case []int64:
		return DataTypeInt64Array
	case []uint8:
		return DataTypeUint8Array
	case []uint16:
		return DataTypeUint16Array
	case []uint32:
		return DataTypeUint32Array
	case []uint64:
		return DataTypeUint64Array
	case []float32:
		return DataTypeFloatArray
	case []float64:
		return DataTypeDoubleArray
	case []string:
		return DataTypeStringArray
	}
	return DataTypeUnknown
}

// parseValue parses the textual form of a value. Arrays are written as
// comma-separated elements, optionally enclosed in brackets.
func parseValue[T Value](s string) (T, error) {
	var zero T
	var (
		v   any
		err error
	)
	s = strings.TrimSpace(s)
	switch any(zero).(type) {
	case bool:
		v, err = strconv.ParseBool(s)
	case int8:
		v, err = parseInt[int8](s, 8)
	case int16:
		v, err = parseInt[int16](s, 16)
	case int32:
		v, err = parseInt[int32](s, 32)
	case int64:
		v, err = parseInt[int64](s, 64)
	case uint8:
		v, err = parseUint[uint8](s, 8)
	case uint16:
		v, err = parseUint[uint16](s, 16)
	case uint32:
		v, err = parseUint[uint32](s, 32)
	case uint64:
		v, err = parseUint[uint64](s, 64)
	case float32:
		v, err = parseFloat[float32](s, 32)
	case float64:
		v, err = parseFloat[float64](s, 64)
	case string:
		v = unquote(s)
	case []bool:
		v, err = parseList(s, strconv.ParseBool)
	case []int8:
		v, err = parseList(s, func(e string) (int8, error) { return parseInt[int8](e, 8) })
	case []int16:
		v, err = parseList(s, func(e string) (int16, error) { return parseInt[int16](e, 16) })
	case []int32:
		v, err = parseList(s, func(e string) (int32, error) { return parseInt[int32](e, 32) })
	case []int64:
		v, err = parseList(s, func(e string) (int64, error) { return parseInt[int64](e, 64) })
	case []uint8:
		v, err = parseList(s, func(e string) (uint8, error) { return parseUint[uint8](e, 8) })
	case []uint16:
		v, err = parseList(s, func(e string) (uint16, error) { return parseUint[uint16](e, 16) })
	case []uint32:
		v, err = parseList(s, func(e string) (uint32, error) { return parseUint[uint32](e, 32) })
	case []uint64:
		v, err = parseList(s, func(e string) (uint64, error) { return parseUint[uint64](e, 64) })
	case []float32:
		v, err = parseList(s, func(e string) (float32, error) { return parseFloat[float32](e, 32) })
	case []float64:
		v, err = parseList(s, func(e string) (float64, error) { return parseFloat[float64](e, 64) })
	case []string:
		v, err = parseList(s, func(e string) (string, error) { return unquote(e), nil })
	}
	if err != nil {
		return zero, fmt.Errorf("%w: %s from %q", ErrValueType, dataTypeOf[T](), s)
	}
	return v.(T), nil
}

func parseInt[T int8 | int16 | int32 | int64](s string, bits int) (T, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, bits)
	return T(n), err
}

func parseUint[T uint8 | uint16 | uint32 | uint64](s string, bits int) (T, error) {
	n, err := strconv.ParseUint(strings.TrimSpace(s), 10, bits)
	return T(n), err
}

func parseFloat[T float32 | float64](s string, bits int) (T, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), bits)
	return T(f), err
}

func parseList[E any](s string, parse func(string) (E, error)) ([]E, error) {
	s = strings.TrimSuffix(strings.TrimPrefix(s, "["), "]")
	out := []E{}
	if strings.TrimSpace(s) == "" {
		return out, nil
	}
	for _, part := range strings.Split(s, ",") {
		e, err := parse(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

func unquote(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		if u, err := strconv.Unquote(s); err == nil {
			return u
		}
	}
	return s
}

// coerce converts v to T. Values already of type T pass through, numbers are
// converted when they are exact in T, strings are parsed, and []any is
// converted element-wise.
func coerce[T Value](v any) (T, error) {
	var zero T
	if t, ok := v.(T); ok {
		return t, nil
	}
	if s, ok := v.(string); ok {
		return parseValue[T](s)
	}
	if items, ok := v.([]any); ok {
		out, err := coerceList[T](items)
		if err != nil {
			return zero, err
		}
		return out, nil
	}

	f, ok := toFloat(v)
	if !ok {
		return zero, fmt.Errorf("%w: %s from %T", ErrValueType, dataTypeOf[T](), v)
	}
	var out any
	switch any(zero).(type) {
	case int8:
		out, ok = fitInt[int8](f, math.MinInt8, math.MaxInt8)
	case int16:
		out, ok = fitInt[int16](f, math.MinInt16, math.MaxInt16)
	case int32:
		out, ok = fitInt[int32](f, math.MinInt32, math.MaxInt32)
	case int64:
		out, ok = fitInt[int64](f, math.MinInt64, math.MaxInt64)
	case uint8:
		out, ok = fitInt[uint8](f, 0, math.MaxUint8)
	case uint16:
		out, ok = fitInt[uint16](f, 0, math.MaxUint16)
	case uint32:
		out, ok = fitInt[uint32](f, 0, math.MaxUint32)
	case uint64:
		out, ok = fitInt[uint64](f, 0, math.MaxUint64)
	case float32:
		out, ok = float32(f), true
	case float64:
		out, ok = f, true
	default:
		ok = false
	}
	if !ok {
		return zero, fmt.Errorf("%w: %s from %v", ErrValueType, dataTypeOf[T](), v)
	}
	return out.(T), nil
}

func coerceList[T Value](items []any) (T, error) {
	var zero T
	var (
		out any
		err error
	)
	switch any(zero).(type) {
	case []bool:
		out, err = coerceEach[bool](items)
	case []int8:
		out, err = coerceEach[int8](items)
	case []int16:
		out, err = coerceEach[int16](items)
	case []int32:
		out, err = coerceEach[int32](items)
	case []int64:
		out, err = coerceEach[int64](items)
	case []uint8:
		out, err = coerceEach[uint8](items)
	case []uint16:
		out, err = coerceEach[uint16](items)
	case []uint32:
		out, err = coerceEach[uint32](items)
	case []uint64:
		out, err = coerceEach[uint64](items)
	case []float32:
		out, err = coerceEach[float32](items)
	case []float64:
		out, err = coerceEach[float64](items)
	case []string:
		out, err = coerceEach[string](items)
	default:
		return zero, fmt.Errorf("%w: %s from list", ErrValueType, dataTypeOf[T]())
	}
	if err != nil {
		return zero, err
	}
	return out.(T), nil
}

func coerceEach[E Value](items []any) ([]E, error) {
	out := make([]E, 0, len(items))
	for _, item := range items {
		e, err := coerce[E](item)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}
	return 0, false
}

func fitInt[T int8 | int16 | int32 | int64 | uint8 | uint16 | uint32 | uint64](f, lo, hi float64) (T, bool) {
	if f != math.Trunc(f) || f < lo || f > hi {
		return 0, false
	}
	return T(f), true
}

// FormatValue renders a value in the textual form accepted by SetString.
func FormatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case []string:
		quoted := make([]string, len(x))
		for i, s := range x {
			quoted[i] = strconv.Quote(s)
		}
		return "[" + strings.Join(quoted, ", ") + "]"
	case []uint8:
		parts := make([]string, len(x))
		for i, b := range x {
			parts[i] = strconv.FormatUint(uint64(b), 10)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	}
	s := fmt.Sprint(v)
	if strings.HasPrefix(s, "[") {
		return "[" + strings.Join(strings.Fields(strings.Trim(s, "[]")), ", ") + "]"
	}
	return s
}
