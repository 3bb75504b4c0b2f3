package jsvalidate

import (
	"encoding/json"
	"math"
)

// asFloat64 accepts the handful of numeric representations a decoded schema
// value might carry (float64 from a plain map[string]any, json.Number from
// a decoder configured with UseNumber, or a plain int) and normalizes to
// float64, the representation schema.go stores minimum/maximum/multipleOf
// in (spec.md §3.1: "stored as double").
func asFloat64(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// asUint64 accepts a non-negative numeric schema value and normalizes it to
// uint64, used for minLength/maxLength/minItems/.../maxProperties. Negative
// or fractional values are rejected (spec.md §4.1: "out-of-range values
// leave defaults unchanged").
func asUint64(v any) (uint64, bool) {
	f, ok := asFloat64(v)
	if !ok || f < 0 || f != math.Trunc(f) || f >= math.MaxUint64 {
		return 0, false
	}
	return uint64(f), true
}
