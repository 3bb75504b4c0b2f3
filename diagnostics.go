package jsvalidate

import (
	"strconv"
	"strings"
)

// Recorder decorates a Validator to collect Issues, the richer diagnostics
// spec.md §7 anticipates ("Consumers who need richer diagnostics must wrap
// the validator") without touching the core's single sticky boolean. It
// tracks the JSON Pointer path of the value currently being validated and
// appends one Issue the first time validity flips to false, with a
// best-effort code inferred from which event category caused the flip —
// the core Validator does not expose a finer-grained cause than "invalid".
type Recorder struct {
	v        *Validator
	frames   []recFrame
	segments []string
	issues   Issues
	wasValid bool
}

type recFrame struct {
	isArray    bool
	nextIndex  int
	pendingKey string
}

// NewRecorder wraps v. v should not be driven directly once wrapped; drive
// it exclusively through the Recorder so the path tracking stays in sync.
func NewRecorder(v *Validator) *Recorder {
	return &Recorder{v: v, wasValid: true}
}

// IsValid delegates to the wrapped Validator.
func (r *Recorder) IsValid() bool { return r.v.IsValid() }

// Issues returns every issue recorded so far.
func (r *Recorder) Issues() Issues { return r.issues }

func (r *Recorder) currentPath() string {
	// segments[0] is the root value's own (empty) segment and is not part
	// of the pointer.
	if len(r.segments) <= 1 {
		return "/"
	}
	return "/" + strings.Join(r.segments[1:], "/")
}

func (r *Recorder) checkTransition(code string) {
	if r.wasValid && !r.v.IsValid() {
		p := r.currentPath()
		r.issues = AppendIssues(r.issues, Issue{Path: p, Code: code, Message: code + " at " + p})
		r.wasValid = false
	}
}

func (r *Recorder) enterValue() {
	seg := ""
	if n := len(r.frames); n > 0 {
		top := &r.frames[n-1]
		if top.isArray {
			seg = strconv.Itoa(top.nextIndex)
		} else {
			seg = top.pendingKey
		}
	}
	r.segments = append(r.segments, seg)
}

func (r *Recorder) leaveValue() {
	r.segments = r.segments[:len(r.segments)-1]
	if n := len(r.frames); n > 0 {
		top := &r.frames[n-1]
		if top.isArray {
			top.nextIndex++
		} else {
			top.pendingKey = ""
		}
	}
}

func (r *Recorder) pushFrame(isArray bool) { r.frames = append(r.frames, recFrame{isArray: isArray}) }
func (r *Recorder) popFrame()              { r.frames = r.frames[:len(r.frames)-1] }

func (r *Recorder) Null() bool {
	r.enterValue()
	ok := r.v.Null()
	r.checkTransition(CodeInvalidType)
	r.leaveValue()
	return ok
}

func (r *Recorder) Bool(b bool) bool {
	r.enterValue()
	ok := r.v.Bool(b)
	r.checkTransition(CodeInvalidType)
	r.leaveValue()
	return ok
}

func (r *Recorder) Int(i int) bool {
	r.enterValue()
	ok := r.v.Int(i)
	r.checkTransition(CodeInvalidType)
	r.leaveValue()
	return ok
}

func (r *Recorder) Uint(u uint) bool {
	r.enterValue()
	ok := r.v.Uint(u)
	r.checkTransition(CodeInvalidType)
	r.leaveValue()
	return ok
}

func (r *Recorder) Int64(i int64) bool {
	r.enterValue()
	ok := r.v.Int64(i)
	r.checkTransition(CodeInvalidType)
	r.leaveValue()
	return ok
}

func (r *Recorder) Uint64(u uint64) bool {
	r.enterValue()
	ok := r.v.Uint64(u)
	r.checkTransition(CodeInvalidType)
	r.leaveValue()
	return ok
}

func (r *Recorder) Double(d float64) bool {
	r.enterValue()
	ok := r.v.Double(d)
	r.checkTransition(CodeInvalidType)
	r.leaveValue()
	return ok
}

func (r *Recorder) String(s string) bool {
	r.enterValue()
	ok := r.v.String(s)
	r.checkTransition(CodeInvalidType)
	r.leaveValue()
	return ok
}

func (r *Recorder) StartObject() bool {
	r.enterValue()
	ok := r.v.StartObject()
	r.checkTransition(CodeInvalidType)
	r.pushFrame(false)
	return ok
}

func (r *Recorder) Key(name string) bool {
	ok := r.v.Key(name)
	r.checkTransition(CodeAdditional)
	if n := len(r.frames); n > 0 {
		r.frames[n-1].pendingKey = name
	}
	return ok
}

func (r *Recorder) EndObject(memberCount int) bool {
	ok := r.v.EndObject(memberCount)
	r.checkTransition(CodeRequired)
	r.popFrame()
	r.leaveValue()
	return ok
}

func (r *Recorder) StartArray() bool {
	r.enterValue()
	ok := r.v.StartArray()
	r.checkTransition(CodeInvalidType)
	r.pushFrame(true)
	return ok
}

func (r *Recorder) EndArray(elementCount int) bool {
	ok := r.v.EndArray(elementCount)
	r.checkTransition(CodeItemCount)
	r.popFrame()
	r.leaveValue()
	return ok
}
