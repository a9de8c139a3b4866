// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 SpaceNote Authors

// Package models defines the domain entities shared across the application:
// users, spaces with their field schemas, notes, comments, and the closed
// value union stored inside a note's fields payload.
package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// Kind identifies which variant a [Value] holds. The set is closed: a note
// field can only ever contain a string, an integer, a float, a boolean, a
// list of strings, or null.
type Kind int

const (
	KindNull Kind = iota
	KindString
	KindInt
	KindFloat
	KindBool
	KindStringList
)

// String returns the lower-case name of the kind, matching the wire-level
// type names used in error messages.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindStringList:
		return "string list"
	default:
		return "unknown"
	}
}

// ErrUnsupportedValue is returned when decoding a field value whose shape is
// outside the closed variant set (for example a nested object, or a list
// containing non-string elements).
var ErrUnsupportedValue = errors.New("unsupported field value")

// Value is a tagged union over the closed set of shapes a custom field can
// hold. The zero Value is null.
//
// Values round-trip through JSON without coercion: integers stay integers,
// floats stay floats, and a stored list comes back element for element.
// Absent fields stay absent; key order inside a fields payload is not
// significant.
type Value struct {
	kind Kind
	str  string
	num  int64
	flt  float64
	bit  bool
	list []string
}

// Null returns the null Value.
func Null() Value { return Value{} }

// String wraps s as a string Value.
func String(s string) Value { return Value{kind: KindString, str: s} }

// Int wraps i as an integer Value.
func Int(i int64) Value { return Value{kind: KindInt, num: i} }

// Float wraps f as a float Value.
func Float(f float64) Value { return Value{kind: KindFloat, flt: f} }

// Bool wraps b as a boolean Value.
func Bool(b bool) Value { return Value{kind: KindBool, bit: b} }

// StringList wraps l as a string-list Value. The slice is copied so later
// mutations of l do not leak into the Value.
func StringList(l []string) Value {
	cp := make([]string, len(l))
	copy(cp, l)
	return Value{kind: KindStringList, list: cp}
}

// Kind reports which variant the value holds.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether the value is null.
func (v Value) IsNull() bool { return v.kind == KindNull }

// AsString returns the string variant. ok is false for any other kind.
func (v Value) AsString() (string, bool) { return v.str, v.kind == KindString }

// AsInt returns the integer variant. ok is false for any other kind.
func (v Value) AsInt() (int64, bool) { return v.num, v.kind == KindInt }

// AsFloat returns the numeric payload as a float64. It accepts both the
// float and the integer variant, since an integer is always a valid reading
// of a numeric field.
func (v Value) AsFloat() (float64, bool) {
	switch v.kind {
	case KindFloat:
		return v.flt, true
	case KindInt:
		return float64(v.num), true
	default:
		return 0, false
	}
}

// AsBool returns the boolean variant. ok is false for any other kind.
func (v Value) AsBool() (bool, bool) { return v.bit, v.kind == KindBool }

// AsStringList returns a copy of the string-list variant.
func (v Value) AsStringList() ([]string, bool) {
	if v.kind != KindStringList {
		return nil, false
	}
	cp := make([]string, len(v.list))
	copy(cp, v.list)
	return cp, true
}

// Any unwraps the value into its natural Go representation: nil, string,
// int64, float64, bool, or []string.
func (v Value) Any() any {
	switch v.kind {
	case KindString:
		return v.str
	case KindInt:
		return v.num
	case KindFloat:
		return v.flt
	case KindBool:
		return v.bit
	case KindStringList:
		cp := make([]string, len(v.list))
		copy(cp, v.list)
		return cp
	default:
		return nil
	}
}

// Equal reports whether two values hold the same variant with the same
// payload.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindString:
		return v.str == other.str
	case KindInt:
		return v.num == other.num
	case KindFloat:
		return v.flt == other.flt
	case KindBool:
		return v.bit == other.bit
	case KindStringList:
		if len(v.list) != len(other.list) {
			return false
		}
		for i := range v.list {
			if v.list[i] != other.list[i] {
				return false
			}
		}
		return true
	default:
		return true
	}
}

// MarshalJSON encodes the value as its natural JSON shape.
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Any())
}

// UnmarshalJSON decodes any of the supported JSON shapes. Numbers are kept
// exact: a token without a fraction or exponent becomes an integer,
// everything else a float. Unsupported shapes (objects, mixed lists) fail
// with [ErrUnsupportedValue].
func (v *Value) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return err
	}

	parsed, err := FromAny(raw)
	if err != nil {
		return err
	}

	*v = parsed
	return nil
}

// FromAny converts a dynamically typed value (as produced by encoding/json
// with UseNumber, or by yaml.v3) into a Value. It returns
// [ErrUnsupportedValue] for anything outside the closed variant set.
func FromAny(raw any) (Value, error) {
	switch val := raw.(type) {
	case nil:
		return Null(), nil
	case string:
		return String(val), nil
	case bool:
		return Bool(val), nil
	case int:
		return Int(int64(val)), nil
	case int32:
		return Int(int64(val)), nil
	case int64:
		return Int(val), nil
	case float64:
		return Float(val), nil
	case json.Number:
		if i, err := val.Int64(); err == nil {
			return Int(i), nil
		}
		f, err := val.Float64()
		if err != nil {
			return Value{}, fmt.Errorf("%w: malformed number %q", ErrUnsupportedValue, val.String())
		}
		return Float(f), nil
	case []string:
		return StringList(val), nil
	case []any:
		list := make([]string, 0, len(val))
		for _, item := range val {
			s, ok := item.(string)
			if !ok {
				return Value{}, fmt.Errorf("%w: list elements must be strings, got %T", ErrUnsupportedValue, item)
			}
			list = append(list, s)
		}
		return StringList(list), nil
	default:
		return Value{}, fmt.Errorf("%w: %T", ErrUnsupportedValue, raw)
	}
}

// FieldMap is the open-ended fields payload of a note: field name to value.
// It may contain a subset, a superset, or none of the fields declared in the
// owning space's schema.
type FieldMap map[string]Value

// Clone returns a shallow copy of the map. Values are immutable, so a
// shallow copy is a safe snapshot.
func (m FieldMap) Clone() FieldMap {
	if m == nil {
		return nil
	}
	cp := make(FieldMap, len(m))
	for k, v := range m {
		cp[k] = v
	}
	return cp
}

// Equal reports whether two field maps contain the same keys with equal
// values.
func (m FieldMap) Equal(other FieldMap) bool {
	if len(m) != len(other) {
		return false
	}
	for k, v := range m {
		ov, ok := other[k]
		if !ok || !v.Equal(ov) {
			return false
		}
	}
	return true
}
