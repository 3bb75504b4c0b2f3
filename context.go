package jsvalidate

// context is the per-value scratch state pushed for each JSON value
// currently being validated (spec.md §3.2). One is pushed on entering a
// value and popped on leaving it; its sub-validators are destroyed with it.
type context struct {
	schema *SchemaNode

	// valueSchema is lookahead: the schema node to push when the NEXT value
	// begins. Set by beginValue for arrays and by Key for objects.
	valueSchema *SchemaNode

	subsReady bool
	allOfSubs []*Validator
	anyOfSubs []*Validator
	oneOfSubs []*Validator
	notSub    *Validator

	requiredSeenCount int
	arrayElementIndex int
	dependencySeen    []bool
	inArray           bool

	// uniqueSeen/duplicateFound support the supplemented uniqueItems
	// keyword (SPEC_FULL.md §4). Only scalar elements are compared: since
	// the validator never materializes a value's subtree, an object- or
	// array-valued element cannot be captured for later comparison and is
	// simply not checked for duplication.
	uniqueSeen     []any
	duplicateFound bool
}

func newContext(schema *SchemaNode) *context {
	return &context{schema: schema}
}

// ensureSubValidators lazily creates one Validator per combinator child, the
// first time any event (other than Key) reaches this context (spec.md
// §3.2, §4.2).
func (c *context) ensureSubValidators() {
	if c.subsReady {
		return
	}
	c.subsReady = true
	s := c.schema
	if len(s.allOf) > 0 {
		c.allOfSubs = make([]*Validator, len(s.allOf))
		for i, child := range s.allOf {
			c.allOfSubs[i] = newSubValidator(child)
		}
	}
	if len(s.anyOf) > 0 {
		c.anyOfSubs = make([]*Validator, len(s.anyOf))
		for i, child := range s.anyOf {
			c.anyOfSubs[i] = newSubValidator(child)
		}
	}
	if len(s.oneOf) > 0 {
		c.oneOfSubs = make([]*Validator, len(s.oneOf))
		for i, child := range s.oneOf {
			c.oneOfSubs[i] = newSubValidator(child)
		}
	}
	if s.not != nil {
		c.notSub = newSubValidator(s.not)
	}
}

// liveSubValidators returns every sub-validator currently attached to this
// context, for event broadcast (spec.md §4.4 step 4).
func (c *context) liveSubValidators() []*Validator {
	if !c.subsReady {
		return nil
	}
	total := len(c.allOfSubs) + len(c.anyOfSubs) + len(c.oneOfSubs)
	if c.notSub != nil {
		total++
	}
	if total == 0 {
		return nil
	}
	out := make([]*Validator, 0, total)
	out = append(out, c.allOfSubs...)
	out = append(out, c.anyOfSubs...)
	out = append(out, c.oneOfSubs...)
	if c.notSub != nil {
		out = append(out, c.notSub)
	}
	return out
}

// evalCombinators applies the allOf/anyOf/oneOf/not laws (spec.md §4.2,
// EndValue) to this context's sub-validators. It returns true when no
// combinator was configured (vacuous pass, spec.md §8 invariant 4).
func (c *context) evalCombinators() bool {
	if !c.subsReady {
		return true
	}
	ok := true
	for _, sub := range c.allOfSubs {
		if !sub.IsValid() {
			ok = false
		}
	}
	if len(c.anyOfSubs) > 0 {
		any := false
		for _, sub := range c.anyOfSubs {
			if sub.IsValid() {
				any = true
				break
			}
		}
		if !any {
			ok = false
		}
	}
	if len(c.oneOfSubs) > 0 {
		count := 0
		for _, sub := range c.oneOfSubs {
			if sub.IsValid() {
				count++
			}
		}
		if count != 1 {
			ok = false
		}
	}
	if c.notSub != nil && c.notSub.IsValid() {
		ok = false
	}
	return ok
}

// ensureDependencyBitset ensures the dependency-seen bitset exists, sized to
// the node's property list (spec.md §4.2, StartObject).
func (c *context) ensureDependencyBitset() {
	if c.schema.hasDependency && c.dependencySeen == nil {
		c.dependencySeen = make([]bool, len(c.schema.properties))
	}
}
