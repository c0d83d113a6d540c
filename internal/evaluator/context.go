package evaluator

import "github.com/kiidax/nablajs/internal/runtime"

// frame is one entry of the evaluator's call-frame stack: the lexical
// environment in effect, the `this` binding, the strict-mode flag, and
// the owning script (for resolving AST string-table indices).
type frame struct {
	env    *runtime.Environment
	this   runtime.Value
	strict bool
	script *Script
}

// pushFrame enters the call frame f.
func (in *Interpreter) pushFrame(f *frame) {
	in.frames = append(in.frames, f)
}

// popFrame exits the current call frame.
func (in *Interpreter) popFrame() {
	in.frames = in.frames[:len(in.frames)-1]
}

// current returns the active frame.
func (in *Interpreter) current() *frame {
	return in.frames[len(in.frames)-1]
}

// Env returns the current lexical environment.
func (in *Interpreter) Env() *runtime.Environment { return in.current().env }

// SetEnv replaces the current frame's lexical environment; used when
// entering/leaving a `with` or `catch` scope.
func (in *Interpreter) SetEnv(env *runtime.Environment) { in.current().env = env }

// This returns the current `this` binding.
func (in *Interpreter) This() runtime.Value { return in.current().this }

// Strict reports whether the current frame executes in strict mode. This
// engine always runs non-strict per the targeted ES3 subset; the flag
// exists so FunctionRecord.Strict and the frame plumbing are ready for
// an eventual "use strict" extension without reshaping the call path.
func (in *Interpreter) Strict() bool { return in.current().strict }

// Script returns the owning Script of the current frame, for resolving
// Identifier/StringLiteral string-table indices.
func (in *Interpreter) Script() *Script { return in.current().script }
