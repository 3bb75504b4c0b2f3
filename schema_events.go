package jsvalidate

import "math"

// forbidden is an internal-only node whose type mask has no bits set, used
// where a value must be rejected outright regardless of its kind (an array
// element past a closed tuple's length when additionalItems is forbidden).
// It is distinct from the empty-schema sentinel and is never reachable
// through Compile.
var forbidden = &SchemaNode{}

func (n *SchemaNode) enumOK(v any) bool {
	if len(n.enum) == 0 {
		return true
	}
	for _, e := range n.enum {
		if jsonEqual(e, v) {
			return true
		}
	}
	return false
}

func (n *SchemaNode) numericRangeOK(f float64) bool {
	if n.exclusiveMinimum {
		if f <= n.minimum {
			return false
		}
	} else if f < n.minimum {
		return false
	}
	if n.exclusiveMaximum {
		if f >= n.maximum {
			return false
		}
	} else if f > n.maximum {
		return false
	}
	if n.hasMultipleOf {
		// math.Mod(f, 0) is NaN, and NaN != 0 is true, so a multipleOf of 0
		// rejects every value rather than being skipped (spec.md §4.2: no
		// exception carved out for a zero divisor).
		if math.Mod(f, n.multipleOf) != 0 {
			return false
		}
	}
	return true
}

func (n *SchemaNode) checkNull(ctx *context) bool {
	ctx.ensureSubValidators()
	return n.types.allows(TypeNull) && n.enumOK(nil)
}

func (n *SchemaNode) checkBool(ctx *context, b bool) bool {
	ctx.ensureSubValidators()
	return n.types.allows(TypeBoolean) && n.enumOK(b)
}

// checkInteger validates a value of kind integer, which satisfies both the
// integer and the number bit of the type mask (spec.md §3.1, §4.2).
func (n *SchemaNode) checkInteger(ctx *context, f float64) bool {
	ctx.ensureSubValidators()
	if !n.types.allowsInteger() {
		return false
	}
	return n.numericRangeOK(f) && n.enumOK(f)
}

// checkDouble validates a value of kind double, which satisfies the number
// bit only (spec.md §4.2).
func (n *SchemaNode) checkDouble(ctx *context, f float64) bool {
	ctx.ensureSubValidators()
	if !n.types.allowsNumber() {
		return false
	}
	return n.numericRangeOK(f) && n.enumOK(f)
}

func (n *SchemaNode) checkString(ctx *context, s string) bool {
	ctx.ensureSubValidators()
	if !n.types.allows(TypeString) {
		return false
	}
	l := uint64(len(s))
	if l < n.minLength || l > n.maxLength {
		return false
	}
	if n.pattern != nil && !n.pattern.MatchString(s) {
		return false
	}
	return n.enumOK(s)
}

func (n *SchemaNode) startObject(ctx *context) bool {
	ctx.ensureSubValidators()
	if !n.types.allows(TypeObject) {
		return false
	}
	ctx.requiredSeenCount = 0
	ctx.ensureDependencyBitset()
	return true
}

// key resolves an object member name to the schema that governs its value,
// in the precedence order spec.md §4.2 mandates: named property, then
// pattern property (first match, declaration order — see spec.md §9.2),
// then the additional-property policy.
func (n *SchemaNode) key(ctx *context, name string) bool {
	if !n.types.allows(TypeObject) {
		return false
	}
	for i := range n.properties {
		p := &n.properties[i]
		if p.name != name {
			continue
		}
		ctx.valueSchema = p.schema
		if p.required {
			ctx.requiredSeenCount++
		}
		ctx.ensureDependencyBitset()
		if ctx.dependencySeen != nil {
			ctx.dependencySeen[i] = true
		}
		return true
	}
	for _, pp := range n.patternProperties {
		if pp.pattern.MatchString(name) {
			ctx.valueSchema = pp.schema
			return true
		}
	}
	switch n.additionalProperties {
	case additionalSchema:
		ctx.valueSchema = n.additionalPropSchema
		return true
	case additionalForbidden:
		return false
	default:
		ctx.valueSchema = sentinel
		return true
	}
}

func (n *SchemaNode) endObject(ctx *context, memberCount int) bool {
	if !n.types.allows(TypeObject) {
		return false
	}
	ok := ctx.requiredSeenCount == n.requiredCount
	mc := uint64(memberCount)
	if mc < n.minProperties || mc > n.maxProperties {
		ok = false
	}
	if n.hasDependency && ctx.dependencySeen != nil {
		for i := range n.properties {
			if !ctx.dependencySeen[i] {
				continue
			}
			for _, dep := range n.properties[i].deps {
				if !ctx.dependencySeen[dep] {
					ok = false
				}
			}
		}
	}
	return ok
}

func (n *SchemaNode) startArray(ctx *context) bool {
	ctx.ensureSubValidators()
	if !n.types.allows(TypeArray) {
		return false
	}
	ctx.arrayElementIndex = 0
	ctx.inArray = true
	return true
}

func (n *SchemaNode) endArray(ctx *context, elementCount int) bool {
	if !n.types.allows(TypeArray) {
		return false
	}
	ctx.inArray = false
	ec := uint64(elementCount)
	if ec < n.minItems || ec > n.maxItems {
		return false
	}
	if n.uniqueItems && ctx.duplicateFound {
		return false
	}
	return true
}

// beginValue implements array-element lookahead (spec.md §4.2): tuple-item
// dispatch by position, list-item schema applied uniformly, or the
// additional-items policy once the tuple is exhausted. It is a no-op
// outside of array position; Key already set value-schema for object
// position.
func (n *SchemaNode) beginValue(ctx *context) {
	if !ctx.inArray {
		return
	}
	idx := ctx.arrayElementIndex
	ctx.arrayElementIndex++
	switch {
	case n.hasTuple:
		if idx < len(n.tupleItems) {
			ctx.valueSchema = n.tupleItems[idx]
		} else if n.additionalItems == additionalItemsAllowed {
			ctx.valueSchema = sentinel
		} else {
			ctx.valueSchema = forbidden
		}
	case n.items != nil:
		ctx.valueSchema = n.items
	default:
		ctx.valueSchema = sentinel
	}
}

// endValue evaluates the allOf/anyOf/oneOf/not laws against this context's
// sub-validators (spec.md §4.2). It is the AND of every combinator check;
// a schema with no combinators configured passes vacuously.
func (n *SchemaNode) endValue(ctx *context) bool {
	return ctx.evalCombinators()
}
