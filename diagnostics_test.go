package jsvalidate

import "testing"

func TestRecorder_RecordsIssueOnFirstFailureOnly(t *testing.T) {
	schema := compileSchema(t, `{"type":"integer"}`)
	v := NewValidator(schema, nil)
	rec := NewRecorder(v)

	if rec.String("nope") {
		t.Fatalf("expected invalid")
	}
	if rec.Int(1) {
		t.Fatalf("expected invalid: sticky")
	}
	if len(rec.Issues()) != 1 {
		t.Fatalf("expected exactly one recorded issue, got %d", len(rec.Issues()))
	}
}

func TestRecorder_NestedObjectPath(t *testing.T) {
	schema := compileSchema(t, `{
		"type":"object",
		"properties": {
			"user": {
				"type":"object",
				"properties": {"age": {"type":"integer"}}
			}
		}
	}`)
	v := NewValidator(schema, nil)
	rec := NewRecorder(v)

	rec.StartObject()
	rec.Key("user")
	rec.StartObject()
	rec.Key("age")
	rec.String("not-a-number")
	rec.EndObject(1)
	rec.EndObject(1)

	issues := rec.Issues()
	if len(issues) != 1 {
		t.Fatalf("expected exactly one issue, got %d", len(issues))
	}
	if issues[0].Path != "/user/age" {
		t.Fatalf("expected path /user/age, got %q", issues[0].Path)
	}
}

func TestRecorder_ArrayElementPath(t *testing.T) {
	schema := compileSchema(t, `{"type":"array","items":{"type":"integer"}}`)
	v := NewValidator(schema, nil)
	rec := NewRecorder(v)

	rec.StartArray()
	rec.Int(1)
	rec.String("oops")
	rec.EndArray(2)

	issues := rec.Issues()
	if len(issues) != 1 {
		t.Fatalf("expected exactly one issue, got %d", len(issues))
	}
	if issues[0].Path != "/1" {
		t.Fatalf("expected path /1, got %q", issues[0].Path)
	}
}
