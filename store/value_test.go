package store

import (
	"encoding/json"
	"testing"
)

func TestValue_Kinds(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		kind ValueKind
		str  string
	}{
		{"int", IntValue(42), KindInt, "42"},
		{"double", DoubleValue(0.5), KindDouble, "0.5"},
		{"string", StringValue("train"), KindString, "train"},
		{"struct", StructValue(json.RawMessage(`{"k":1}`)), KindStruct, `{"k":1}`},
		{"unset", Value{}, KindUnset, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.v.Kind() != tt.kind {
				t.Errorf("Kind() = %v, want %v", tt.v.Kind(), tt.kind)
			}
			if tt.v.String() != tt.str {
				t.Errorf("String() = %q, want %q", tt.v.String(), tt.str)
			}
		})
	}
}

func TestValue_JSONRoundTrip(t *testing.T) {
	in := map[string]Value{
		"span":   IntValue(7),
		"ratio":  DoubleValue(0.25),
		"split":  StringValue("eval"),
		"config": StructValue(json.RawMessage(`{"shuffle":true}`)),
	}

	data, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var out map[string]Value
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if out["span"].Int() != 7 {
		t.Errorf("span = %v", out["span"])
	}
	if out["ratio"].Double() != 0.25 {
		t.Errorf("ratio = %v", out["ratio"])
	}
	if out["split"].String() != "eval" {
		t.Errorf("split = %v", out["split"])
	}
	if string(out["config"].Struct()) != `{"shuffle":true}` {
		t.Errorf("config = %s", out["config"].Struct())
	}
}

func TestRecord_Clone(t *testing.T) {
	rec := &Record{
		ID:         1,
		TypeID:     2,
		URI:        "/x",
		Properties: map[string]Value{"span": IntValue(1)},
	}
	c := rec.Clone()

	c.URI = "/y"
	c.Properties["span"] = IntValue(9)

	if rec.URI != "/x" {
		t.Errorf("clone mutation leaked into original URI: %q", rec.URI)
	}
	if rec.Properties["span"].Int() != 1 {
		t.Errorf("clone mutation leaked into original properties")
	}
}
