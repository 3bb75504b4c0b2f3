package jsvalidate

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes describing why a value failed to validate against a schema
// node. These are used only by the diagnostics wrapper (see diagnostics.go);
// the core Validator never surfaces them, matching spec.md's single
// aggregate boolean.
const (
	CodeInvalidType   = "invalid_type"
	CodeRequired      = "required"
	CodeAdditional    = "additional_property"
	CodeDependency    = "dependency"
	CodeTooSmall      = "too_small"
	CodeTooBig        = "too_big"
	CodeTooShort      = "too_short"
	CodeTooLong       = "too_long"
	CodePattern       = "pattern"
	CodeInvalidEnum   = "invalid_enum"
	CodeMultipleOf    = "multiple_of"
	CodeCombinator    = "combinator"
	CodeUniqueItems   = "unique_items"
	CodeItemCount     = "item_count"
	CodePropertyCount = "property_count"
)

// Issue represents one point where a document diverged from its schema.
type Issue struct {
	Path    string // JSON Pointer to the offending value, e.g. /items/2/price.
	Code    string // One of the codes above.
	Message string
}

// Issues is a collection of validation issues that implements error.
type Issues []Issue

// Error renders a short human-readable summary, capping the number of
// issues actually spelled out so a document with hundreds of violations
// doesn't produce an unreadable error string.
func (iss Issues) Error() string {
	const limit = 3
	if len(iss) == 0 {
		return ""
	}
	shown := iss
	if len(shown) > limit {
		shown = shown[:limit]
	}
	parts := make([]string, len(shown))
	for i, it := range shown {
		parts[i] = fmt.Sprintf("%s at %s", it.Code, it.Path)
	}
	msg := strings.Join(parts, "; ")
	if rest := len(iss) - len(shown); rest > 0 {
		msg += fmt.Sprintf("; ... (total %d)", len(iss))
	}
	return msg
}

// AppendIssues grows dst with more, allocating dst if it was nil.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = make(Issues, 0, len(more))
	}
	return append(dst, more...)
}

// AsIssues unwraps err into an Issues value, if it (or something it wraps)
// is one.
func AsIssues(err error) (Issues, bool) {
	var iss Issues
	if err != nil && errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}
