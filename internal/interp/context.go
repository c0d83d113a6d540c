// Package interp is the embedder-facing entry point (spec §6): it wires
// internal/lexer, internal/parser, internal/builtins, and
// internal/evaluator together into a single Context a host program
// constructs once and calls Eval against, repeatedly, for as long as the
// process runs. Grounded on the teacher's internal/interp package, which
// plays the same role for its own lexer/parser/semantic/evaluator stack.
package interp

import (
	"io"
	"os"

	"github.com/kiidax/nablajs/internal/builtins"
	"github.com/kiidax/nablajs/internal/evaluator"
	"github.com/kiidax/nablajs/internal/runtime"
)

// Context is an opaque handle onto one global environment (spec §6:
// "Context: opaque handle"). Every script evaluated through it shares the
// same global object, so declarations from one Eval call are visible to
// the next, matching the CLI's "positional script files are executed in
// order in a shared Context" requirement.
type Context struct {
	in *evaluator.Interpreter
}

// New constructs a Context with a fresh global environment. extensions
// controls whether the non-standard embedder globals (print, load, read,
// quit, evalcx) are installed; the CLI passes false under --no-extensions.
// evalcx builds its sandbox with builtins.Install(false), not through New.
func New(output io.Writer, extensions bool) *Context {
	in := builtins.Install(extensions)
	in.SetOutput(output)
	return &Context{in: in}
}

// SetOutput redirects where print and other output-producing built-ins
// write.
func (c *Context) SetOutput(w io.Writer) { c.in.SetOutput(w) }

// Global exposes the underlying global object for embedders that need to
// install additional host bindings before running script source.
func (c *Context) Global() *runtime.Object { return c.in.Global }

// Eval parses and evaluates source (spec §6: "Context.eval(source, name)
// → optional string"). It returns the ToString of the result and true, or
// ("", false) if the result is undefined or evaluation failed. Go-idiom
// callers that need the raw Value and error should use EvalValue instead.
func (c *Context) Eval(source, name string) (string, bool) {
	v, err := c.EvalValue(source, name)
	if err != nil {
		return "", false
	}
	if v == runtime.Undefined {
		return "", false
	}
	s, err := runtime.ToString(c.in, v)
	if err != nil {
		return "", false
	}
	return s, true
}

// EvalValue parses and evaluates source, returning the raw completion
// value or the error from a parse failure or an uncaught thrown
// exception (spec §7: the embedder's eval return path consumes the
// thread-local exception slot and surfaces it as failure).
func (c *Context) EvalValue(source, name string) (runtime.Value, error) {
	return builtins.EvalSource(c.in, source, name)
}

// RunFile reads and evaluates the named script file, used by the CLI's
// positional-file execution mode (spec §6).
func (c *Context) RunFile(path string) (runtime.Value, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return c.EvalValue(string(data), path)
}
