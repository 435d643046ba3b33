package store

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// ValueKind discriminates the variants of a property Value.
type ValueKind int

// Value kinds.
const (
	KindUnset ValueKind = iota
	KindInt
	KindDouble
	KindString
	KindStruct
)

func (k ValueKind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindDouble:
		return "double"
	case KindString:
		return "string"
	case KindStruct:
		return "struct"
	default:
		return "unset"
	}
}

// Value is a tagged property value. The zero Value is unset.
type Value struct {
	kind ValueKind
	i    int64
	d    float64
	s    string
	j    json.RawMessage
}

// IntValue returns an int-kind Value.
func IntValue(v int64) Value { return Value{kind: KindInt, i: v} }

// DoubleValue returns a double-kind Value.
func DoubleValue(v float64) Value { return Value{kind: KindDouble, d: v} }

// StringValue returns a string-kind Value.
func StringValue(v string) Value { return Value{kind: KindString, s: v} }

// StructValue returns a struct-kind Value holding raw JSON.
func StructValue(raw json.RawMessage) Value { return Value{kind: KindStruct, j: raw} }

// Kind reports the value's variant.
func (v Value) Kind() ValueKind { return v.kind }

// Int returns the int payload; zero for other kinds.
func (v Value) Int() int64 { return v.i }

// Double returns the double payload; zero for other kinds.
func (v Value) Double() float64 { return v.d }

// String returns the string payload for string values, and a debug
// rendering for the rest.
func (v Value) String() string {
	switch v.kind {
	case KindString:
		return v.s
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindDouble:
		return strconv.FormatFloat(v.d, 'g', -1, 64)
	case KindStruct:
		return string(v.j)
	default:
		return ""
	}
}

// Struct returns the raw JSON payload; nil for other kinds.
func (v Value) Struct() json.RawMessage { return v.j }

// jsonValue is the wire form used by JSON-backed stores.
type jsonValue struct {
	Int    *int64          `json:"int,omitempty"`
	Double *float64        `json:"double,omitempty"`
	String *string         `json:"string,omitempty"`
	Struct json.RawMessage `json:"struct,omitempty"`
}

// MarshalJSON implements json.Marshaler.
func (v Value) MarshalJSON() ([]byte, error) {
	var w jsonValue
	switch v.kind {
	case KindUnset:
	case KindInt:
		w.Int = &v.i
	case KindDouble:
		w.Double = &v.d
	case KindString:
		w.String = &v.s
	case KindStruct:
		w.Struct = v.j
	}
	return json.Marshal(w)
}

// UnmarshalJSON implements json.Unmarshaler.
func (v *Value) UnmarshalJSON(data []byte) error {
	var w jsonValue
	if err := json.Unmarshal(data, &w); err != nil {
		return fmt.Errorf("decode property value: %w", err)
	}
	switch {
	case w.Int != nil:
		*v = IntValue(*w.Int)
	case w.Double != nil:
		*v = DoubleValue(*w.Double)
	case w.String != nil:
		*v = StringValue(*w.String)
	case w.Struct != nil:
		*v = StructValue(w.Struct)
	default:
		*v = Value{}
	}
	return nil
}
