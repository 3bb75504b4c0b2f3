package jsvalidate

import "github.com/elliotchance/orderedmap/v3"

// OM is an order-preserving JSON object value. The schema compiler accepts
// it wherever spec.md speaks of "a parsed JSON value representing a schema":
// declaration order matters for patternProperties tie-breaking (spec.md
// §4.2), so schemaload.Load produces *OM for objects instead of the
// unordered map[string]any that plain encoding/json.Unmarshal would give.
// Compile also accepts map[string]any directly for callers who already have
// one; property order is then the sorted key order, which is deterministic
// but not necessarily the original declaration order.
//
// OM is an alias for elliotchance/orderedmap's generic map (see DESIGN.md
// for where the corpus already reaches for this library) rather than a
// hand-rolled container.
type OM = orderedmap.OrderedMap[string, any]

// NewOM creates an empty ordered object.
func NewOM() *OM { return orderedmap.NewOrderedMap[string, any]() }

// omKeys returns o's keys in insertion order.
func omKeys(o *OM) []string {
	if o == nil {
		return nil
	}
	keys := make([]string, 0, o.Len())
	for el := o.Front(); el != nil; el = el.Next() {
		keys = append(keys, el.Key)
	}
	return keys
}

// jsonEqual reports whether a and b are equal under JSON structural
// equality: same kind, same members (object key order irrelevant), same
// array length and elementwise-equal elements, numerically equal numbers.
// Used by enum membership (spec.md §3.1) and uniqueItems (SPEC_FULL.md §4).
// The kind-by-kind comparison mirrors the shape of an Equal function found
// in the corpus for the same problem (JSON Schema enum/const comparison),
// simplified here since this validator's values are always the plain
// any/bool/string/float64/[]any/object shape schemaload's token loop
// produces, never arbitrary Go structs, so there is no need for the
// reflect-based generality that function has.
func jsonEqual(a, b any) bool {
	switch av := a.(type) {
	case nil:
		return b == nil
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case float64:
		bv, ok := asFloat64(b)
		return ok && av == bv
	case []any:
		bv, ok := b.([]any)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !jsonEqual(av[i], bv[i]) {
				return false
			}
		}
		return true
	case map[string]any:
		return jsonEqualObject(keysOf(av), func(k string) (any, bool) { v, ok := av[k]; return v, ok }, b)
	case *OM:
		return jsonEqualObject(omKeys(av), av.Get, b)
	default:
		if f, ok := asFloat64(a); ok {
			return jsonEqual(f, b)
		}
		return false
	}
}

func jsonEqualObject(aKeys []string, aGet func(string) (any, bool), b any) bool {
	var bKeys []string
	var bGet func(string) (any, bool)
	switch bv := b.(type) {
	case map[string]any:
		bKeys = keysOf(bv)
		bGet = func(k string) (any, bool) { v, ok := bv[k]; return v, ok }
	case *OM:
		bKeys = omKeys(bv)
		bGet = bv.Get
	default:
		return false
	}
	if len(aKeys) != len(bKeys) {
		return false
	}
	for _, k := range aKeys {
		av, _ := aGet(k)
		bv, ok := bGet(k)
		if !ok || !jsonEqual(av, bv) {
			return false
		}
	}
	return true
}

func keysOf(m map[string]any) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
