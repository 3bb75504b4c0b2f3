package jsvalidate

import "sort"

// Compile builds an owned SchemaNode tree from a parsed schema value
// (spec.md §4.1). Compilation never fails: a non-object input, or any
// malformed keyword, degrades to a permissive node/default rather than
// returning an error.
func Compile(v any) *SchemaNode {
	_, get, ok := asObject(v)
	if !ok {
		return newSchemaNode()
	}

	n := newSchemaNode()

	if raw, ok := get("type"); ok {
		if mask, ok := compileTypeKeyword(raw); ok {
			n.types = mask
		}
	}

	if raw, ok := get("enum"); ok {
		if arr, ok := raw.([]any); ok && len(arr) > 0 {
			n.enum = deepCopySlice(arr)
		}
	}

	if raw, ok := get("allOf"); ok {
		if arr, ok := raw.([]any); ok && len(arr) > 0 {
			n.allOf = compileEach(arr)
		}
	}
	if raw, ok := get("anyOf"); ok {
		if arr, ok := raw.([]any); ok && len(arr) > 0 {
			n.anyOf = compileEach(arr)
		}
	}
	if raw, ok := get("oneOf"); ok {
		if arr, ok := raw.([]any); ok && len(arr) > 0 {
			n.oneOf = compileEach(arr)
		}
	}
	if raw, ok := get("not"); ok {
		n.not = Compile(raw)
	}

	compileObjectKeywords(n, get)
	compileArrayKeywords(n, get)
	compileStringKeywords(n, get)
	compileNumberKeywords(n, get)

	return n
}

func compileTypeKeyword(raw any) (TypeSet, bool) {
	switch t := raw.(type) {
	case string:
		if bit, ok := typeSetFromName(t); ok {
			return bit, true
		}
	case []any:
		var mask TypeSet
		found := false
		for _, item := range t {
			if s, ok := item.(string); ok {
				if bit, ok := typeSetFromName(s); ok {
					mask |= bit
					found = true
				}
			}
		}
		if found {
			return mask, true
		}
	}
	return 0, false
}

func compileEach(items []any) []*SchemaNode {
	out := make([]*SchemaNode, 0, len(items))
	for _, item := range items {
		out = append(out, Compile(item))
	}
	return out
}

func compileObjectKeywords(n *SchemaNode, get func(string) (any, bool)) {
	propIndex := map[string]int{}

	if raw, ok := get("properties"); ok {
		if pkeys, pget, ok := asObject(raw); ok {
			for _, name := range pkeys {
				val, _ := pget(name)
				n.properties = append(n.properties, namedProperty{name: name, schema: Compile(val)})
				propIndex[name] = len(n.properties) - 1
			}
		}
	}

	if raw, ok := get("required"); ok {
		if arr, ok := raw.([]any); ok {
			for _, item := range arr {
				name, ok := item.(string)
				if !ok {
					continue
				}
				idx, ok := propIndex[name]
				if !ok {
					// Names not listed in properties are silently ignored
					// (spec.md §4.1, "design choice inherited from source").
					continue
				}
				if !n.properties[idx].required {
					n.properties[idx].required = true
					n.requiredCount++
				}
			}
		}
	}

	if raw, ok := get("dependencies"); ok {
		if dkeys, dget, ok := asObject(raw); ok {
			for _, from := range dkeys {
				val, _ := dget(from)
				arr, ok := val.([]any)
				if !ok {
					// Object-valued (schema-valued) dependencies are
					// recognized but unimplemented (spec.md §4.1, §9.1).
					continue
				}
				fromIdx, ok := propIndex[from]
				if !ok {
					continue
				}
				for _, item := range arr {
					target, ok := item.(string)
					if !ok {
						continue
					}
					if toIdx, ok := propIndex[target]; ok {
						n.properties[fromIdx].deps = append(n.properties[fromIdx].deps, toIdx)
						n.hasDependency = true
					}
				}
			}
		}
	}

	if raw, ok := get("patternProperties"); ok {
		if pkeys, pget, ok := asObject(raw); ok {
			for _, expr := range pkeys {
				val, _ := pget(expr)
				n.patternProperties = append(n.patternProperties, patternProperty{
					pattern: CompilePattern(expr),
					schema:  Compile(val),
				})
			}
		}
	}

	if raw, ok := get("additionalProperties"); ok {
		switch ap := raw.(type) {
		case bool:
			if ap {
				n.additionalProperties = additionalAllowed
			} else {
				n.additionalProperties = additionalForbidden
			}
		default:
			if _, _, ok := asObject(raw); ok {
				n.additionalProperties = additionalSchema
				n.additionalPropSchema = Compile(raw)
			}
		}
	}

	if raw, ok := get("minProperties"); ok {
		if u, ok := asUint64(raw); ok {
			n.minProperties = u
		}
	}
	if raw, ok := get("maxProperties"); ok {
		if u, ok := asUint64(raw); ok {
			n.maxProperties = u
		}
	}
}

func compileArrayKeywords(n *SchemaNode, get func(string) (any, bool)) {
	if raw, ok := get("items"); ok {
		switch it := raw.(type) {
		case []any:
			n.hasTuple = true
			n.tupleItems = compileEach(it)
		default:
			n.items = Compile(raw)
		}
	}

	if raw, ok := get("additionalItems"); ok {
		if b, ok := raw.(bool); ok {
			if b {
				n.additionalItems = additionalItemsAllowed
			} else {
				n.additionalItems = additionalItemsForbidden
			}
		}
		// An object value is accepted syntactically but treated as
		// "allowed" (spec.md §9.3): additionalItemsAllowed is the default.
	}

	if raw, ok := get("minItems"); ok {
		if u, ok := asUint64(raw); ok {
			n.minItems = u
		}
	}
	if raw, ok := get("maxItems"); ok {
		if u, ok := asUint64(raw); ok {
			n.maxItems = u
		}
	}
	if raw, ok := get("uniqueItems"); ok {
		if b, ok := raw.(bool); ok {
			n.uniqueItems = b
		}
	}
}

func compileStringKeywords(n *SchemaNode, get func(string) (any, bool)) {
	if raw, ok := get("minLength"); ok {
		if u, ok := asUint64(raw); ok {
			n.minLength = u
		}
	}
	if raw, ok := get("maxLength"); ok {
		if u, ok := asUint64(raw); ok {
			n.maxLength = u
		}
	}
	if raw, ok := get("pattern"); ok {
		if s, ok := raw.(string); ok {
			n.pattern = CompilePattern(s)
		}
	}
}

func compileNumberKeywords(n *SchemaNode, get func(string) (any, bool)) {
	if raw, ok := get("minimum"); ok {
		if f, ok := asFloat64(raw); ok {
			n.minimum = f
		}
	}
	if raw, ok := get("maximum"); ok {
		if f, ok := asFloat64(raw); ok {
			n.maximum = f
		}
	}
	if raw, ok := get("exclusiveMinimum"); ok {
		if b, ok := raw.(bool); ok {
			n.exclusiveMinimum = b
		}
	}
	if raw, ok := get("exclusiveMaximum"); ok {
		if b, ok := raw.(bool); ok {
			n.exclusiveMaximum = b
		}
	}
	if raw, ok := get("multipleOf"); ok {
		if f, ok := asFloat64(raw); ok {
			n.multipleOf = f
			n.hasMultipleOf = true
		}
	}
}

// asObject normalizes the two object representations Compile accepts:
// *OM (order-preserving, produced by schemaload.Load) and map[string]any
// (order lost; keys are sorted for determinism, per invariant 1 in
// spec.md §8). It returns the object's keys in iteration order, an
// accessor, and whether v was an object at all.
func asObject(v any) (keys []string, get func(string) (any, bool), ok bool) {
	switch o := v.(type) {
	case *OM:
		if o == nil {
			return nil, nil, false
		}
		return omKeys(o), o.Get, true
	case map[string]any:
		ks := keysOf(o)
		sort.Strings(ks)
		return ks, func(k string) (any, bool) { val, ok := o[k]; return val, ok }, true
	default:
		return nil, nil, false
	}
}

func deepCopySlice(arr []any) []any {
	out := make([]any, len(arr))
	for i, v := range arr {
		out[i] = deepCopyValue(v)
	}
	return out
}

func deepCopyValue(v any) any {
	switch t := v.(type) {
	case []any:
		return deepCopySlice(t)
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = deepCopyValue(val)
		}
		return out
	case *OM:
		out := NewOM()
		for el := t.Front(); el != nil; el = el.Next() {
			out.Set(el.Key, deepCopyValue(el.Value))
		}
		return out
	default:
		return v
	}
}
