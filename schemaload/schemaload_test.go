package schemaload

import (
	"testing"

	jv "github.com/reoring/jsvalidate"
)

func TestLoad_JSONPreservesPropertyOrder(t *testing.T) {
	v, err := Load([]byte(`{"z":1,"a":2}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	om, ok := v.(*jv.OM)
	if !ok {
		t.Fatalf("expected *jv.OM for a JSON object, got %T", v)
	}
	var got []string
	for k := range om.Keys() {
		got = append(got, k)
	}
	if len(got) != 2 || got[0] != "z" || got[1] != "a" {
		t.Fatalf("expected declaration order [z a], got %v", got)
	}
}

func TestLoad_YAMLFallback(t *testing.T) {
	v, err := Load([]byte("type: object\nproperties:\n  name:\n    type: string\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m, ok := v.(map[string]any)
	if !ok {
		t.Fatalf("expected map[string]any for YAML input, got %T", v)
	}
	if m["type"] != "object" {
		t.Fatalf("expected type: object, got %v", m["type"])
	}
}

func TestLoad_CompilesToWorkingSchema(t *testing.T) {
	v, err := Load([]byte(`{"type":"integer","minimum":0}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	schema := jv.Compile(v)
	validator := jv.NewValidator(schema, nil)
	if !validator.Int(5) {
		t.Fatalf("expected 5 to satisfy the loaded schema")
	}
}
