//go:build gojson

// Package gojson provides a Source driver backed by github.com/goccy/go-json
// instead of encoding/json, for callers that want its faster tokenizer.
package gojson

import (
	"bytes"
	"errors"
	"io"
	"strconv"

	j "github.com/goccy/go-json"

	eng "github.com/reoring/jsvalidate/internal/engine"
)

type containerKind int

const (
	kindObject containerKind = iota
	kindArray
)

type frame struct {
	kind         containerKind
	expectingKey bool
}

// Option configures a token source, mirroring source.Option.
type Option func(*source)

// WithMaxDepth rejects documents nested deeper than n containers. A depth
// of 0 (the default) means no limit.
func WithMaxDepth(n int) Option {
	return func(s *source) { s.maxDepth = n }
}

// ErrMaxDepthExceeded is returned by NextToken once nesting exceeds the
// limit set by WithMaxDepth.
var ErrMaxDepthExceeded = errors.New("gojson: maximum nesting depth exceeded")

type source struct {
	dec      *j.Decoder
	stack    []frame
	maxDepth int
}

// NewReader wraps an io.Reader into an engine.TokenSource using go-json.
func NewReader(r io.Reader, opts ...Option) eng.TokenSource {
	dec := j.NewDecoder(r)
	dec.UseNumber()
	s := &source{dec: dec}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewBytes wraps a byte slice into an engine.TokenSource using go-json.
func NewBytes(b []byte, opts ...Option) eng.TokenSource {
	return NewReader(bytes.NewReader(b), opts...)
}

func (s *source) NextToken() (eng.Token, error) {
	tok, err := s.dec.Token()
	if err != nil {
		if err == io.EOF {
			return eng.Token{}, io.EOF
		}
		return eng.Token{}, err
	}
	switch v := tok.(type) {
	case j.Delim:
		switch v {
		case '{':
			if s.maxDepth > 0 && len(s.stack) >= s.maxDepth {
				return eng.Token{}, ErrMaxDepthExceeded
			}
			s.stack = append(s.stack, frame{kind: kindObject, expectingKey: true})
			return eng.Token{Kind: eng.KindBeginObject}, nil
		case '}':
			s.pop()
			return eng.Token{Kind: eng.KindEndObject}, nil
		case '[':
			if s.maxDepth > 0 && len(s.stack) >= s.maxDepth {
				return eng.Token{}, ErrMaxDepthExceeded
			}
			s.stack = append(s.stack, frame{kind: kindArray})
			return eng.Token{Kind: eng.KindBeginArray}, nil
		case ']':
			s.pop()
			return eng.Token{Kind: eng.KindEndArray}, nil
		}
	case string:
		if s.expectingKey() {
			s.consumeKey()
			return eng.Token{Kind: eng.KindKey, String: v}, nil
		}
		s.consumeValue()
		return eng.Token{Kind: eng.KindString, String: v}, nil
	case j.Number:
		s.consumeValue()
		return eng.Token{Kind: eng.KindNumber, Number: string(v)}, nil
	case float64:
		s.consumeValue()
		return eng.Token{Kind: eng.KindNumber, Number: strconv.FormatFloat(v, 'g', -1, 64)}, nil
	case bool:
		s.consumeValue()
		return eng.Token{Kind: eng.KindBool, Bool: v}, nil
	case nil:
		s.consumeValue()
		return eng.Token{Kind: eng.KindNull}, nil
	}
	return eng.Token{}, io.ErrUnexpectedEOF
}

func (s *source) pop() {
	if n := len(s.stack); n > 0 {
		s.stack = s.stack[:n-1]
	}
	s.consumeValue()
}

func (s *source) expectingKey() bool {
	if n := len(s.stack); n > 0 {
		top := &s.stack[n-1]
		return top.kind == kindObject && top.expectingKey
	}
	return false
}

func (s *source) consumeKey() {
	if n := len(s.stack); n > 0 {
		s.stack[n-1].expectingKey = false
	}
}

func (s *source) consumeValue() {
	if n := len(s.stack); n > 0 {
		top := &s.stack[n-1]
		if top.kind == kindObject {
			top.expectingKey = true
		}
	}
}
