package model

import (
	"fmt"
	"strconv"
)

// ValueKind represents the type of an attribute value
type ValueKind uint8

const (
	KindFloat ValueKind = iota
	KindInt
	KindString
)

// TypeChar returns the single-character type code used in the text format
func (k ValueKind) TypeChar() byte {
	switch k {
	case KindFloat:
		return 'f'
	case KindInt:
		return 'i'
	default:
		return 'Z'
	}
}

// KindFromChar maps a type code character to a ValueKind
func KindFromChar(c byte) (ValueKind, error) {
	switch c {
	case 'f':
		return KindFloat, nil
	case 'i':
		return KindInt, nil
	case 'Z':
		return KindString, nil
	default:
		return 0, fmt.Errorf("unknown attribute type code %q", string(c))
	}
}

// Value represents a typed attribute value
type Value struct {
	kind ValueKind
	str  string
	i64  int64
	f64  float64
}

// Helper functions to create typed values
func FloatValue(f float64) Value {
	return Value{kind: KindFloat, f64: f}
}

func IntValue(i int64) Value {
	return Value{kind: KindInt, i64: i}
}

func StringValue(s string) Value {
	return Value{kind: KindString, str: s}
}

// ParseValue decodes a raw value string according to the type code.
// Decoding failure is an error, never a silent default.
func ParseValue(typeChar byte, raw string) (Value, error) {
	kind, err := KindFromChar(typeChar)
	if err != nil {
		return Value{}, err
	}
	switch kind {
	case KindFloat:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return Value{}, fmt.Errorf("invalid float value %q: %w", raw, err)
		}
		return FloatValue(f), nil
	case KindInt:
		i, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return Value{}, fmt.Errorf("invalid integer value %q: %w", raw, err)
		}
		return IntValue(i), nil
	default:
		return StringValue(raw), nil
	}
}

// Kind returns the value's type
func (v Value) Kind() ValueKind {
	return v.kind
}

// Decode methods
func (v Value) AsFloat() (float64, error) {
	if v.kind != KindFloat {
		return 0, fmt.Errorf("value is not a float")
	}
	return v.f64, nil
}

func (v Value) AsInt() (int64, error) {
	if v.kind != KindInt {
		return 0, fmt.Errorf("value is not an int")
	}
	return v.i64, nil
}

func (v Value) AsString() (string, error) {
	if v.kind != KindString {
		return "", fmt.Errorf("value is not a string")
	}
	return v.str, nil
}

// Text renders the raw value as it appears in the text format
func (v Value) Text() string {
	switch v.kind {
	case KindFloat:
		return strconv.FormatFloat(v.f64, 'g', -1, 64)
	case KindInt:
		return strconv.FormatInt(v.i64, 10)
	default:
		return v.str
	}
}

// Any returns the decoded value as an untyped interface, used by renderers
// that emit JSON
func (v Value) Any() any {
	switch v.kind {
	case KindFloat:
		return v.f64
	case KindInt:
		return v.i64
	default:
		return v.str
	}
}

// Attribute is a typed key/value pair attached to nodes, edges and paths
type Attribute struct {
	Tag   string
	Value Value
}

// String renders the attribute as a tag:type:value triplet
func (a Attribute) String() string {
	return fmt.Sprintf("%s:%c:%s", a.Tag, a.Value.Kind().TypeChar(), a.Value.Text())
}

// ParseAttribute parses a tag:type:value triplet
func ParseAttribute(s string) (Attribute, error) {
	first := -1
	second := -1
	for i := 0; i < len(s); i++ {
		if s[i] == ':' {
			if first < 0 {
				first = i
			} else {
				second = i
				break
			}
		}
	}
	if first <= 0 || second < 0 || second != first+2 {
		return Attribute{}, fmt.Errorf("invalid attribute %q: want tag:type:value", s)
	}
	value, err := ParseValue(s[first+1], s[second+1:])
	if err != nil {
		return Attribute{}, fmt.Errorf("attribute %q: %w", s[:first], err)
	}
	return Attribute{Tag: s[:first], Value: value}, nil
}

// IsAttributeToken reports whether a whitespace token has the shape of an
// attribute triplet. Used to tell trailing attributes apart from an optional
// literal sequence field.
func IsAttributeToken(s string) bool {
	first := -1
	for i := 0; i < len(s); i++ {
		if s[i] == ':' {
			first = i
			break
		}
	}
	if first <= 0 || first+2 >= len(s) {
		return false
	}
	if s[first+2] != ':' {
		return false
	}
	switch s[first+1] {
	case 'f', 'i', 'Z':
		return true
	}
	return false
}
