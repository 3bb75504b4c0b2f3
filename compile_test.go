package jsvalidate

import "testing"

func mustCompileJSON(t *testing.T, jsonSrc string) *SchemaNode {
	t.Helper()
	v, err := parseTestJSON(jsonSrc)
	if err != nil {
		t.Fatalf("parsing schema fixture: %v", err)
	}
	return Compile(v)
}

func TestCompile_TypelessAcceptsAll(t *testing.T) {
	n := mustCompileJSON(t, `{}`)
	if n.types != typeAll {
		t.Fatalf("expected all-types mask, got %b", n.types)
	}
}

func TestCompile_TypeNumberImpliesInteger(t *testing.T) {
	n := mustCompileJSON(t, `{"type":"number"}`)
	if !n.types.allowsInteger() || !n.types.allowsNumber() {
		t.Fatalf("type:number should allow both integer and number kinds")
	}
}

func TestCompile_RequiredIgnoresUnknownNames(t *testing.T) {
	n := mustCompileJSON(t, `{"properties":{"a":{}},"required":["a","ghost"]}`)
	if n.requiredCount != 1 {
		t.Fatalf("expected requiredCount 1, got %d", n.requiredCount)
	}
}

func TestCompile_MalformedPatternNeverMatches(t *testing.T) {
	n := mustCompileJSON(t, `{"pattern":"("}`)
	if n.pattern.MatchString("anything") {
		t.Fatalf("malformed pattern should never match")
	}
}

func TestCompile_DependenciesResolveToIndices(t *testing.T) {
	n := mustCompileJSON(t, `{"properties":{"a":{},"b":{}},"dependencies":{"a":["b"]}}`)
	if !n.hasDependency {
		t.Fatalf("expected hasDependency true")
	}
	if len(n.properties[0].deps) != 1 || n.properties[0].deps[0] != 1 {
		t.Fatalf("expected a's deps to point at b's index, got %v", n.properties[0].deps)
	}
}

func TestCompile_SchemaValuedDependencyIgnored(t *testing.T) {
	n := mustCompileJSON(t, `{"properties":{"a":{}},"dependencies":{"a":{"properties":{"c":{}}}}}`)
	if n.hasDependency {
		t.Fatalf("schema-valued dependency should be ignored, not tracked")
	}
}

func TestCompile_TupleItemsAndAdditionalItemsForbidden(t *testing.T) {
	n := mustCompileJSON(t, `{"items":[{"type":"integer"},{"type":"string"}],"additionalItems":false}`)
	if !n.hasTuple || len(n.tupleItems) != 2 {
		t.Fatalf("expected a 2-element tuple")
	}
	if n.additionalItems != additionalItemsForbidden {
		t.Fatalf("expected additionalItems forbidden")
	}
}

func TestCompile_NeverMutatesInput(t *testing.T) {
	v, err := parseTestJSON(`{"enum":[1,2,3]}`)
	if err != nil {
		t.Fatal(err)
	}
	before, _ := v.(*OM).Get("enum")
	beforeLen := len(before.([]any))
	Compile(v)
	after, _ := v.(*OM).Get("enum")
	if len(after.([]any)) != beforeLen {
		t.Fatalf("compile mutated input enum slice")
	}
}
