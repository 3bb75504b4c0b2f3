package source

import (
	"io"
	"testing"

	eng "github.com/reoring/jsvalidate/internal/engine"
)

func drainKinds(t *testing.T, ts eng.TokenSource) []eng.Kind {
	t.Helper()
	var kinds []eng.Kind
	for {
		tok, err := ts.NextToken()
		if err == io.EOF {
			return kinds
		}
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		kinds = append(kinds, tok.Kind)
	}
}

func TestJSONSource_ObjectShape(t *testing.T) {
	ts := NewBytes([]byte(`{"a":1,"b":[true,null]}`))
	kinds := drainKinds(t, ts)
	want := []eng.Kind{
		eng.KindBeginObject,
		eng.KindKey, eng.KindNumber,
		eng.KindKey, eng.KindBeginArray, eng.KindBool, eng.KindNull, eng.KindEndArray,
		eng.KindEndObject,
	}
	if len(kinds) != len(want) {
		t.Fatalf("expected %d tokens, got %d: %v", len(want), len(kinds), kinds)
	}
	for i, k := range want {
		if kinds[i] != k {
			t.Fatalf("token %d: expected kind %d, got %d", i, k, kinds[i])
		}
	}
}

func TestJSONSource_MaxDepthRejectsDeepNesting(t *testing.T) {
	ts := NewBytes([]byte(`{"a":{"b":{"c":1}}}`), WithMaxDepth(2))
	var lastErr error
	for {
		_, err := ts.NextToken()
		if err != nil {
			lastErr = err
			break
		}
	}
	if lastErr != ErrMaxDepthExceeded {
		t.Fatalf("expected ErrMaxDepthExceeded, got %v", lastErr)
	}
}

func TestJSONSource_KeyVsStringValueDisambiguation(t *testing.T) {
	ts := NewBytes([]byte(`{"key":"value"}`))
	first, err := ts.NextToken()
	if err != nil || first.Kind != eng.KindBeginObject {
		t.Fatalf("expected begin object")
	}
	second, err := ts.NextToken()
	if err != nil || second.Kind != eng.KindKey || second.String != "key" {
		t.Fatalf("expected key token %q, got %+v", "key", second)
	}
	third, err := ts.NextToken()
	if err != nil || third.Kind != eng.KindString || third.String != "value" {
		t.Fatalf("expected string value token, got %+v", third)
	}
}
