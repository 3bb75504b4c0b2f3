package jsvalidate

import "math"

// TypeSet is a bitset over the seven JSON-Schema kinds recognized by this
// validator (spec.md §3.1).
type TypeSet uint8

const (
	TypeNull TypeSet = 1 << iota
	TypeBoolean
	TypeObject
	TypeArray
	TypeString
	TypeNumber
	TypeInteger

	typeAll = TypeNull | TypeBoolean | TypeObject | TypeArray | TypeString | TypeNumber | TypeInteger
)

// typeSetFromName maps a JSON Schema "type" keyword value to its bit. An
// unrecognized name yields (0, false) and the compiler ignores it (spec.md
// §4.1: "unrecognized name -> ignored").
func typeSetFromName(name string) (TypeSet, bool) {
	switch name {
	case "null":
		return TypeNull, true
	case "boolean":
		return TypeBoolean, true
	case "object":
		return TypeObject, true
	case "array":
		return TypeArray, true
	case "string":
		return TypeString, true
	case "number":
		// "number" implies both number and integer bits (spec.md §3.1).
		return TypeNumber | TypeInteger, true
	case "integer":
		return TypeInteger, true
	default:
		return 0, false
	}
}

// allowsInteger reports whether a value of kind integer satisfies this type
// mask. An integer value satisfies both the integer and the number bit
// (spec.md §3.1).
func (t TypeSet) allowsInteger() bool { return t&(TypeInteger|TypeNumber) != 0 }

// allowsNumber reports whether a value of kind double (non-integer number)
// satisfies this type mask. A double satisfies the number bit only
// (spec.md §4.2: "Double as number only").
func (t TypeSet) allowsNumber() bool { return t&TypeNumber != 0 }

func (t TypeSet) allows(bit TypeSet) bool { return t&bit != 0 }

// additionalPolicy describes how StartObject/Key/EndObject treat member
// names not covered by named or pattern properties.
type additionalPolicy int

const (
	additionalAllowed additionalPolicy = iota
	additionalForbidden
	additionalSchema
)

// additionalItemsPolicy describes how array elements beyond a tuple's
// length are treated.
type additionalItemsPolicy int

const (
	additionalItemsAllowed additionalItemsPolicy = iota
	additionalItemsForbidden
)

// namedProperty is one entry of a schema node's "properties" keyword.
type namedProperty struct {
	name     string
	schema   *SchemaNode
	required bool
	// deps holds indices into the owning node's properties slice: sibling
	// properties that must also be present whenever this one is (spec.md
	// §3.1, dependency-set; only string-array-valued "dependencies" are
	// represented here).
	deps []int
}

// patternProperty is one entry of a schema node's "patternProperties"
// keyword.
type patternProperty struct {
	pattern *PatternMatcher
	schema  *SchemaNode
}

// SchemaNode is the immutable compiled representation of one JSON Schema
// object (spec.md §3.1). It is constructed once, by Compile, and never
// mutated afterward. It owns every schema node reachable only through it;
// the one exception is the shared typeless sentinel (see Sentinel below),
// which many nodes reference but none of them own.
type SchemaNode struct {
	types TypeSet

	enum []any // deep-copied literal JSON values; nil means "no enum constraint"

	allOf []*SchemaNode
	anyOf []*SchemaNode
	oneOf []*SchemaNode
	not   *SchemaNode

	// object constraints
	properties            []namedProperty
	requiredCount         int
	patternProperties     []patternProperty
	additionalProperties  additionalPolicy
	additionalPropSchema  *SchemaNode
	minProperties         uint64
	maxProperties         uint64
	hasDependency         bool

	// array constraints
	items                  *SchemaNode // list-item form
	tupleItems             []*SchemaNode
	hasTuple               bool
	additionalItems        additionalItemsPolicy
	minItems               uint64
	maxItems               uint64
	uniqueItems            bool // SPEC_FULL.md §4: supplemented Draft 4 keyword

	// string constraints
	minLength uint64
	maxLength uint64
	pattern   *PatternMatcher

	// number constraints
	minimum          float64
	maximum          float64
	exclusiveMinimum bool
	exclusiveMaximum bool
	multipleOf       float64
	hasMultipleOf    bool
}

// newSchemaNode returns a node with every default spec.md §3.1 specifies:
// all-types mask, minProperties/minItems/minLength = 0, max* = +Inf,
// minimum = -Inf, maximum = +Inf, additional properties/items allowed.
func newSchemaNode() *SchemaNode {
	return &SchemaNode{
		types:         typeAll,
		maxProperties: math.MaxUint64,
		maxItems:      math.MaxUint64,
		maxLength:     math.MaxUint64,
		minimum:       math.Inf(-1),
		maximum:       math.Inf(1),
	}
}

// sentinel is the process-wide typeless node: an immutable, shared node
// equivalent to the empty schema object `{}`. It is referenced wherever
// "no constraint" is needed (additional properties/items allowed with no
// schema, list-item-less arrays) but is never owned by its referrers
// (spec.md §3.1, §4.1).
var sentinel = newSchemaNode()

// Sentinel returns the shared typeless schema node.
func Sentinel() *SchemaNode { return sentinel }
