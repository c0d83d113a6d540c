package evaluator

import "github.com/kiidax/nablajs/internal/runtime"

// CompletionType is the discriminator of a CompletionRecord (spec §4.5):
// Normal completion lets execution fall through to the next statement;
// the other four are abrupt completions that unwind the statement list
// currently executing until something catches them.
type CompletionType int

const (
	Normal CompletionType = iota
	Break
	Continue
	Return
	Throw
)

func (t CompletionType) String() string {
	switch t {
	case Normal:
		return "normal"
	case Break:
		return "break"
	case Continue:
		return "continue"
	case Return:
		return "return"
	case Throw:
		return "throw"
	default:
		return "unknown"
	}
}

// Completion is this interpreter's completion record (spec §4.5): a type
// tag, an optional value (the thrown value for Throw, the returned value
// for Return, the last expression value for Normal), and an optional
// Target label for a labelled break/continue.
type Completion struct {
	Type   CompletionType
	Value  runtime.Value
	Target string
}

// normalCompletion wraps v as a Normal completion; most statement
// executors end with this.
func normalCompletion(v runtime.Value) *Completion {
	return &Completion{Type: Normal, Value: v}
}

// isAbrupt reports whether c is anything other than Normal (spec's
// "abrupt completion").
func (c *Completion) isAbrupt() bool {
	return c != nil && c.Type != Normal
}

// targetsLabel reports whether an abrupt break/continue completion is
// aimed at label (or is unlabelled, matching any enclosing loop/switch).
func (c *Completion) targetsLabel(label string) bool {
	return c.Target == "" || c.Target == label
}
