package jsvalidate

// Sink receives every SAX event a Validator processes, after that event has
// been checked against the schema, as a pass-through (spec.md §2, §6). A
// Validator with a nil Sink simply drops events after validating them.
type Sink interface {
	Null()
	Bool(b bool)
	Int(i int)
	Uint(u uint)
	Int64(i int64)
	Uint64(u uint64)
	Double(d float64)
	String(s string)
	StartObject()
	Key(name string)
	EndObject(memberCount int)
	StartArray()
	EndArray(elementCount int)
}

// Validator drives a stack of contexts against a compiled schema tree,
// event by event (spec.md §4.4). It is single-threaded and synchronous: an
// event call completes all of its work, including recursive broadcast into
// sub-validators, before returning. A compiled SchemaNode tree may be
// shared by many Validator instances, including across goroutines, as long
// as each owns its own stack.
type Validator struct {
	root  *SchemaNode
	sink  Sink
	stack []*context
	valid bool
}

// NewValidator creates a streaming validator rooted at root. sink may be
// nil.
func NewValidator(root *SchemaNode, sink Sink) *Validator {
	if root == nil {
		root = sentinel
	}
	return &Validator{root: root, sink: sink, valid: true}
}

// newSubValidator creates the inner validator instances allOf/anyOf/oneOf/
// not attach to a context (spec.md §4.3). Sub-validators have no sink of
// their own; only the outer validator forwards to the pass-through sink.
func newSubValidator(root *SchemaNode) *Validator {
	return &Validator{root: root, valid: true}
}

// IsValid reports the cumulative validity flag.
func (v *Validator) IsValid() bool { return v.valid }

// Reset clears the context stack and marks the validator valid again
// (spec.md §6).
func (v *Validator) Reset() {
	v.stack = nil
	v.valid = true
}

func (v *Validator) top() *context { return v.stack[len(v.stack)-1] }

// beginPush implements spec.md §4.4 step 2 for every value-bearing event
// (everything but Key): push a context for the root schema if the stack is
// empty, otherwise let the current top schema's beginValue set lookahead
// and push a context for it.
func (v *Validator) beginPush() *context {
	if len(v.stack) == 0 {
		ctx := newContext(v.root)
		v.stack = append(v.stack, ctx)
		return ctx
	}
	top := v.top()
	top.schema.beginValue(top)
	vs := top.valueSchema
	top.valueSchema = nil
	if vs == nil {
		vs = forbidden
	}
	ctx := newContext(vs)
	v.stack = append(v.stack, ctx)
	return ctx
}

// closeTop implements spec.md §4.4 step 6 for closing events: evaluate the
// top schema's EndValue (combinator laws) and pop only on success. The
// "multi-type indirection marker" spec.md reserves for future type-union
// expansion is never set by this implementation, so the second pop it
// describes never triggers.
func (v *Validator) closeTop() {
	ctx := v.top()
	if ctx.schema.endValue(ctx) {
		v.stack = v.stack[:len(v.stack)-1]
	} else {
		v.valid = false
	}
}

// recordArrayScalar feeds the supplemented uniqueItems check (SPEC_FULL.md
// §4): if the context one level below the one just pushed is an array
// position with uniqueItems set, compare value against every scalar sibling
// seen so far.
func (v *Validator) recordArrayScalar(value any) {
	if len(v.stack) < 2 {
		return
	}
	parent := v.stack[len(v.stack)-2]
	if !parent.inArray || !parent.schema.uniqueItems {
		return
	}
	for _, seen := range parent.uniqueSeen {
		if jsonEqual(seen, value) {
			parent.duplicateFound = true
			break
		}
	}
	parent.uniqueSeen = append(parent.uniqueSeen, value)
}

// broadcastEvent forwards one event to every sub-validator live on any
// context currently on the stack (spec.md §4.4 step 4), including the
// context just pushed for this event.
func (v *Validator) broadcastEvent(call func(sub *Validator)) {
	for _, ctx := range v.stack {
		for _, sub := range ctx.liveSubValidators() {
			call(sub)
		}
	}
}

func (v *Validator) Null() bool {
	if !v.valid {
		return false
	}
	ctx := v.beginPush()
	v.recordArrayScalar(nil)
	if !ctx.schema.checkNull(ctx) {
		v.valid = false
	}
	v.broadcastEvent(func(sub *Validator) { sub.Null() })
	if v.sink != nil {
		v.sink.Null()
	}
	v.closeTop()
	return v.valid
}

func (v *Validator) Bool(b bool) bool {
	if !v.valid {
		return false
	}
	ctx := v.beginPush()
	v.recordArrayScalar(b)
	if !ctx.schema.checkBool(ctx, b) {
		v.valid = false
	}
	v.broadcastEvent(func(sub *Validator) { sub.Bool(b) })
	if v.sink != nil {
		v.sink.Bool(b)
	}
	v.closeTop()
	return v.valid
}

func (v *Validator) integer(f float64, broadcast func(sub *Validator), forward func()) bool {
	if !v.valid {
		return false
	}
	ctx := v.beginPush()
	v.recordArrayScalar(f)
	if !ctx.schema.checkInteger(ctx, f) {
		v.valid = false
	}
	v.broadcastEvent(broadcast)
	forward()
	v.closeTop()
	return v.valid
}

func (v *Validator) Int(i int) bool {
	return v.integer(float64(i),
		func(sub *Validator) { sub.Int(i) },
		func() {
			if v.sink != nil {
				v.sink.Int(i)
			}
		})
}

func (v *Validator) Uint(u uint) bool {
	return v.integer(float64(u),
		func(sub *Validator) { sub.Uint(u) },
		func() {
			if v.sink != nil {
				v.sink.Uint(u)
			}
		})
}

func (v *Validator) Int64(i int64) bool {
	return v.integer(float64(i),
		func(sub *Validator) { sub.Int64(i) },
		func() {
			if v.sink != nil {
				v.sink.Int64(i)
			}
		})
}

func (v *Validator) Uint64(u uint64) bool {
	return v.integer(float64(u),
		func(sub *Validator) { sub.Uint64(u) },
		func() {
			if v.sink != nil {
				v.sink.Uint64(u)
			}
		})
}

func (v *Validator) Double(d float64) bool {
	if !v.valid {
		return false
	}
	ctx := v.beginPush()
	v.recordArrayScalar(d)
	if !ctx.schema.checkDouble(ctx, d) {
		v.valid = false
	}
	v.broadcastEvent(func(sub *Validator) { sub.Double(d) })
	if v.sink != nil {
		v.sink.Double(d)
	}
	v.closeTop()
	return v.valid
}

func (v *Validator) String(s string) bool {
	if !v.valid {
		return false
	}
	ctx := v.beginPush()
	v.recordArrayScalar(s)
	if !ctx.schema.checkString(ctx, s) {
		v.valid = false
	}
	v.broadcastEvent(func(sub *Validator) { sub.String(s) })
	if v.sink != nil {
		v.sink.String(s)
	}
	v.closeTop()
	return v.valid
}

func (v *Validator) StartObject() bool {
	if !v.valid {
		return false
	}
	ctx := v.beginPush()
	if !ctx.schema.startObject(ctx) {
		v.valid = false
	}
	v.broadcastEvent(func(sub *Validator) { sub.StartObject() })
	if v.sink != nil {
		v.sink.StartObject()
	}
	return v.valid
}

// Key resolves a member name against the current top-of-stack schema
// (spec.md §4.2, §4.4: "BeginValue is not called; the key is a name, not a
// value"). It does not push or pop.
func (v *Validator) Key(name string) bool {
	if !v.valid {
		return false
	}
	ctx := v.top()
	if !ctx.schema.key(ctx, name) {
		v.valid = false
	}
	v.broadcastEvent(func(sub *Validator) { sub.Key(name) })
	if v.sink != nil {
		v.sink.Key(name)
	}
	return v.valid
}

func (v *Validator) EndObject(memberCount int) bool {
	if !v.valid {
		return false
	}
	ctx := v.top()
	if !ctx.schema.endObject(ctx, memberCount) {
		v.valid = false
	}
	v.broadcastEvent(func(sub *Validator) { sub.EndObject(memberCount) })
	if v.sink != nil {
		v.sink.EndObject(memberCount)
	}
	v.closeTop()
	return v.valid
}

func (v *Validator) StartArray() bool {
	if !v.valid {
		return false
	}
	ctx := v.beginPush()
	if !ctx.schema.startArray(ctx) {
		v.valid = false
	}
	v.broadcastEvent(func(sub *Validator) { sub.StartArray() })
	if v.sink != nil {
		v.sink.StartArray()
	}
	return v.valid
}

func (v *Validator) EndArray(elementCount int) bool {
	if !v.valid {
		return false
	}
	ctx := v.top()
	if !ctx.schema.endArray(ctx, elementCount) {
		v.valid = false
	}
	v.broadcastEvent(func(sub *Validator) { sub.EndArray(elementCount) })
	if v.sink != nil {
		v.sink.EndArray(elementCount)
	}
	v.closeTop()
	return v.valid
}
