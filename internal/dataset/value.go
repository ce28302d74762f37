package dataset

import (
	"strconv"
)

// ValueKind tags the scalar held by a Value.
type ValueKind uint8

const (
	KindString ValueKind = iota
	KindNumber
	KindBool
)

// Value is one cell of a record.
type Value struct {
	kind ValueKind
	str  string
	num  float64
	flag bool
}

// String builds a text value.
func String(s string) Value { return Value{kind: KindString, str: s} }

// Number builds a numeric value.
func Number(n float64) Value { return Value{kind: KindNumber, num: n} }

// Bool builds a boolean value.
func Bool(b bool) Value { return Value{kind: KindBool, flag: b} }

// Kind reports which scalar the value holds.
func (v Value) Kind() ValueKind { return v.kind }

// Number returns the numeric payload and whether the value is numeric.
func (v Value) Number() (float64, bool) {
	if v.kind != KindNumber {
		return 0, false
	}
	return v.num, true
}

// Bool returns the boolean payload and whether the value is boolean.
func (v Value) Bool() (bool, bool) {
	if v.kind != KindBool {
		return false, false
	}
	return v.flag, true
}

// Text returns the natural textual representation of the value.
//
// Numbers use the shortest decimal that round-trips (113.9, 324074).
func (v Value) Text() string {
	switch v.kind {
	case KindNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.flag)
	default:
		return v.str
	}
}

// MarshalText lets values serialize as their natural text.
func (v Value) MarshalText() ([]byte, error) {
	return []byte(v.Text()), nil
}
