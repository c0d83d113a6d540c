package evaluator

import (
	"fmt"
	"io"
	"os"

	"github.com/kiidax/nablajs/pkg/ast"

	"github.com/kiidax/nablajs/internal/runtime"
)

// Script owns one parsed program together with the string table its
// Identifier/StringLiteral nodes index into (spec §6: "Script = {program,
// string table}").
type Script struct {
	Name    string
	Program *ast.Program
	Strings *ast.StringTable
}

// Ident resolves an *ast.Identifier against this script's string table.
func (s *Script) Ident(id *ast.Identifier) string { return s.Strings.Lookup(id.Index) }

// Str resolves an *ast.StringLiteral against this script's string table.
func (s *Script) Str(lit *ast.StringLiteral) string { return s.Strings.Lookup(lit.Index) }

// Builtins collects every prototype and constructor the global
// environment installs (spec §4.7); the builtins package populates this
// at startup and hands it to NewInterpreter.
type Builtins struct {
	ObjectProto         *runtime.Object
	FunctionProto       *runtime.Object
	ArrayProto          *runtime.Object
	StringProto         *runtime.Object
	NumberProto         *runtime.Object
	BooleanProto        *runtime.Object
	DateProto           *runtime.Object
	RegExpProto         *runtime.Object
	ErrorProto          *runtime.Object
	TypeErrorProto      *runtime.Object
	ReferenceErrorProto *runtime.Object
	SyntaxErrorProto    *runtime.Object
	RangeErrorProto     *runtime.Object

	ErrorCtor          *runtime.Object
	TypeErrorCtor      *runtime.Object
	ReferenceErrorCtor *runtime.Object
	SyntaxErrorCtor    *runtime.Object
	RangeErrorCtor     *runtime.Object
	ArrayCtor          *runtime.Object
}

// Interpreter is the tree-walking evaluator (spec §4.5); it implements
// runtime.Realm so the object model can call back into it for accessors
// and function invocation (see runtime.Realm's doc comment for why this
// split exists).
type Interpreter struct {
	Global   *runtime.Object
	GlobalEnv *runtime.Environment
	Builtins Builtins
	protos   runtime.Prototypes

	frames    []*frame
	callStack *CallStack
	out       io.Writer

	// MaxStatements, when non-zero, aborts execution with a RangeError
	// once this many statements have run, guarding the embedder against
	// runaway scripts (spec §5 resource model). Zero means unlimited.
	MaxStatements int
	stmtCount     int
}

// NewInterpreter creates an interpreter whose global object is already
// populated by the builtins package (see internal/builtins.Install).
func NewInterpreter(global *runtime.Object, globalEnv *runtime.Environment, b Builtins) *Interpreter {
	in := &Interpreter{
		Global:    global,
		GlobalEnv: globalEnv,
		Builtins:  b,
		protos: runtime.Prototypes{
			Boolean: b.BooleanProto,
			Number:  b.NumberProto,
			String:  b.StringProto,
		},
		callStack: NewCallStack(0),
		out:       os.Stdout,
	}
	in.pushFrame(&frame{env: globalEnv, this: global})
	return in
}

// SetOutput redirects the `print`/console-style built-ins' output stream.
func (in *Interpreter) SetOutput(w io.Writer) { in.out = w }

// Output returns the configured output writer.
func (in *Interpreter) Output() io.Writer { return in.out }

// Prototypes exposes the wrapper-object prototypes ToObject needs.
func (in *Interpreter) Prototypes() runtime.Prototypes { return in.protos }

// RunScript evaluates every statement of s.Program in the global
// environment and returns the completion value of the last statement
// that produced one (the value `eval` and the CLI report), or an error
// if execution threw uncaught.
func (in *Interpreter) RunScript(s *Script) (runtime.Value, error) {
	in.current().script = s
	var last runtime.Value = runtime.Undefined
	hoist(in, s, s.Program.Body, in.Env())
	for _, stmt := range s.Program.Body {
		c, err := in.execStatement(stmt)
		if err != nil {
			return nil, err
		}
		switch c.Type {
		case Throw:
			return nil, in.completionToError(c)
		case Return, Break, Continue:
			// A top-level break/continue/return is a syntax error the
			// parser should have caught; treat defensively as normal.
		}
		if c.Value != nil {
			last = c.Value
		}
	}
	return last, nil
}

// completionToError converts an uncaught Throw completion into a Go
// error for the embedder boundary (spec §7).
func (in *Interpreter) completionToError(c *Completion) error {
	return &runtime.ThrownValue{Value: c.Value}
}

// throwTypeError builds a Throw completion wrapping a real TypeError
// instance rooted at Builtins.TypeErrorProto.
func (in *Interpreter) throwTypeError(format string, args ...any) *Completion {
	return in.throwNamed(in.Builtins.TypeErrorProto, "TypeError", format, args...)
}

func (in *Interpreter) throwReferenceError(format string, args ...any) *Completion {
	return in.throwNamed(in.Builtins.ReferenceErrorProto, "ReferenceError", format, args...)
}

func (in *Interpreter) throwSyntaxError(format string, args ...any) *Completion {
	return in.throwNamed(in.Builtins.SyntaxErrorProto, "SyntaxError", format, args...)
}

func (in *Interpreter) throwRangeError(format string, args ...any) *Completion {
	return in.throwNamed(in.Builtins.RangeErrorProto, "RangeError", format, args...)
}

func (in *Interpreter) throwNamed(proto *runtime.Object, name, format string, args ...any) *Completion {
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	errObj := runtime.NewObject(proto)
	errObj.Class = "Error"
	errObj.DefineHidden("message", runtime.Str(msg))
	errObj.DefineHidden("name", runtime.Str(name))
	return &Completion{Type: Throw, Value: errObj}
}

// throwGoError converts a Go-level carrier error (runtime.TypeError,
// runtime.ReferenceError, runtime.SyntaxError, or runtime.ThrownValue)
// into the matching Throw completion. Any other error is treated as a
// host failure and returned unconverted via ok=false.
func (in *Interpreter) throwGoError(err error) (*Completion, bool) {
	switch e := err.(type) {
	case *runtime.TypeError:
		return in.throwTypeError("%s", e.Message), true
	case *runtime.ReferenceError:
		return in.throwReferenceError("%s", e.Message), true
	case *runtime.SyntaxError:
		return in.throwSyntaxError("%s", e.Message), true
	case *runtime.RangeError:
		return in.throwRangeError("%s", e.Message), true
	case *runtime.ThrownValue:
		return &Completion{Type: Throw, Value: e.Value}, true
	default:
		return nil, false
	}
}

// abrupt converts any error from a runtime-layer call into a completion,
// panicking only never: unrecognized errors become a generic thrown
// Error so execution can always unwind via completions rather than Go
// panics.
func (in *Interpreter) abrupt(err error) *Completion {
	if c, ok := in.throwGoError(err); ok {
		return c
	}
	return in.throwNamed(in.Builtins.ErrorProto, "Error", "%s", err.Error())
}
