package jsvalidate

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	eng "github.com/reoring/jsvalidate/internal/engine"
)

// EventReceiver is the SAX event set spec.md §6 defines, in the shape both
// Validator and Recorder implement. Drive targets this interface so either
// can consume a token stream produced by an external tokenizer.
type EventReceiver interface {
	Null() bool
	Bool(b bool) bool
	Int(i int) bool
	Uint(u uint) bool
	Int64(i int64) bool
	Uint64(u uint64) bool
	Double(d float64) bool
	String(s string) bool
	StartObject() bool
	Key(name string) bool
	EndObject(memberCount int) bool
	StartArray() bool
	EndArray(elementCount int) bool
}

// Drive replays an engine.TokenSource into recv, counting object members
// and array elements along the way so EndObject/EndArray receive the counts
// spec.md §6 requires as payload — the tokenizer itself (an external
// collaborator per spec.md §1) is not expected to track these.
//
// Drive is a convenience: the core Validator never assumes any particular
// tokenizer exists. It stops at the first tokenizer error, or once the
// receiver reports invalid, whichever comes first.
func Drive(ts eng.TokenSource, recv EventReceiver) (bool, error) {
	var counts []int
	bump := func() {
		if n := len(counts); n > 0 {
			counts[n-1]++
		}
	}
	valid := true
	for {
		tok, err := ts.NextToken()
		if err != nil {
			if err == io.EOF {
				return valid, nil
			}
			return valid, err
		}
		switch tok.Kind {
		case eng.KindBeginObject:
			valid = recv.StartObject()
			counts = append(counts, 0)
		case eng.KindEndObject:
			n := counts[len(counts)-1]
			counts = counts[:len(counts)-1]
			valid = recv.EndObject(n)
			bump()
		case eng.KindBeginArray:
			valid = recv.StartArray()
			counts = append(counts, 0)
		case eng.KindEndArray:
			n := counts[len(counts)-1]
			counts = counts[:len(counts)-1]
			valid = recv.EndArray(n)
			bump()
		case eng.KindKey:
			valid = recv.Key(tok.String)
		case eng.KindString:
			valid = recv.String(tok.String)
			bump()
		case eng.KindBool:
			valid = recv.Bool(tok.Bool)
			bump()
		case eng.KindNull:
			valid = recv.Null()
			bump()
		case eng.KindNumber:
			valid = driveNumber(recv, tok.Number)
			bump()
		default:
			return valid, fmt.Errorf("jsvalidate: unknown token kind %d", tok.Kind)
		}
		if !valid {
			return false, nil
		}
	}
}

// driveNumber picks Int64/Uint64/Double based on the decimal text's shape,
// matching the SAX table's split between integer-kind and double-kind
// scalar events (spec.md §6).
func driveNumber(recv EventReceiver, text string) bool {
	if !strings.ContainsAny(text, ".eE") {
		if i, err := strconv.ParseInt(text, 10, 64); err == nil {
			return recv.Int64(i)
		}
		if u, err := strconv.ParseUint(text, 10, 64); err == nil {
			return recv.Uint64(u)
		}
	}
	d, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return recv.Double(0)
	}
	return recv.Double(d)
}
