package jsvalidate

import (
	"bytes"
	"encoding/json"
	"io"
)

// parseTestJSON decodes a JSON literal into the generic value shape Compile
// accepts, preserving object key order via *OM the same way schemaload.Load
// does. Kept local to this package's tests to avoid a test-only import of
// schemaload (which itself depends on this package).
func parseTestJSON(src string) (any, error) {
	dec := json.NewDecoder(bytes.NewReader([]byte(src)))
	dec.UseNumber()
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	return decodeTestValue(dec, tok)
}

func decodeTestValue(dec *json.Decoder, tok json.Token) (any, error) {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return decodeTestObject(dec)
		case '[':
			return decodeTestArray(dec)
		}
	case string:
		return t, nil
	case json.Number:
		f, err := t.Float64()
		return f, err
	case bool:
		return t, nil
	case nil:
		return nil, nil
	}
	return nil, io.ErrUnexpectedEOF
}

func decodeTestObject(dec *json.Decoder) (any, error) {
	om := NewOM()
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key := keyTok.(string)
		valTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		v, err := decodeTestValue(dec, valTok)
		if err != nil {
			return nil, err
		}
		om.Set(key, v)
	}
	if _, err := dec.Token(); err != nil { // closing '}'
		return nil, err
	}
	return om, nil
}

func decodeTestArray(dec *json.Decoder) (any, error) {
	arr := []any{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		v, err := decodeTestValue(dec, tok)
		if err != nil {
			return nil, err
		}
		arr = append(arr, v)
	}
	if _, err := dec.Token(); err != nil { // closing ']'
		return nil, err
	}
	return arr, nil
}
