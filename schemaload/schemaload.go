// Package schemaload loads a schema document from JSON or YAML bytes into
// the generic value Compile expects (SPEC_FULL.md §3, §4: format-sniffing
// stays at the edge so the compiler itself only ever sees a generic JSON
// value). JSON is decoded through the same token stream the validator's
// source package uses, into an order-preserving *jsvalidate.OM, so
// patternProperties tie-breaking (spec.md §9.2) sees declaration order.
// YAML, whose mapping order this package does not attempt to preserve, is
// decoded with gopkg.in/yaml.v3 into plain map[string]any.
package schemaload

import (
	"bytes"
	"fmt"
	"strconv"

	jv "github.com/reoring/jsvalidate"
	eng "github.com/reoring/jsvalidate/internal/engine"
	src "github.com/reoring/jsvalidate/source"
	"gopkg.in/yaml.v3"
)

// Load decodes data, trying JSON first and falling back to YAML.
func Load(data []byte) (any, error) {
	if looksLikeJSON(data) {
		if v, err := decodeJSON(data); err == nil {
			return v, nil
		}
	}
	var y any
	if err := yaml.Unmarshal(data, &y); err != nil {
		return nil, fmt.Errorf("schemaload: not valid JSON or YAML: %w", err)
	}
	return y, nil
}

func looksLikeJSON(data []byte) bool {
	t := bytes.TrimSpace(data)
	return len(t) > 0 && (t[0] == '{' || t[0] == '[')
}

func decodeJSON(data []byte) (any, error) {
	ts := src.NewBytes(data)
	tok, err := ts.NextToken()
	if err != nil {
		return nil, err
	}
	return decodeValue(ts, tok)
}

func decodeValue(ts eng.TokenSource, tok eng.Token) (any, error) {
	switch tok.Kind {
	case eng.KindBeginObject:
		return decodeObject(ts)
	case eng.KindBeginArray:
		return decodeArray(ts)
	case eng.KindString:
		return tok.String, nil
	case eng.KindNumber:
		f, err := strconv.ParseFloat(tok.Number, 64)
		if err != nil {
			return nil, err
		}
		return f, nil
	case eng.KindBool:
		return tok.Bool, nil
	case eng.KindNull:
		return nil, nil
	default:
		return nil, fmt.Errorf("schemaload: unexpected token")
	}
}

func decodeObject(ts eng.TokenSource) (any, error) {
	om := jv.NewOM()
	for {
		tok, err := ts.NextToken()
		if err != nil {
			return nil, err
		}
		if tok.Kind == eng.KindEndObject {
			return om, nil
		}
		if tok.Kind != eng.KindKey {
			return nil, fmt.Errorf("schemaload: expected object key")
		}
		vt, err := ts.NextToken()
		if err != nil {
			return nil, err
		}
		v, err := decodeValue(ts, vt)
		if err != nil {
			return nil, err
		}
		om.Set(tok.String, v)
	}
}

func decodeArray(ts eng.TokenSource) (any, error) {
	arr := []any{}
	for {
		tok, err := ts.NextToken()
		if err != nil {
			return nil, err
		}
		if tok.Kind == eng.KindEndArray {
			return arr, nil
		}
		v, err := decodeValue(ts, tok)
		if err != nil {
			return nil, err
		}
		arr = append(arr, v)
	}
}
