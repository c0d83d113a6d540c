// Package builtins installs the standard library surface (spec §4.7) onto
// a fresh global object: Object, Function, Array, String, Number, Boolean,
// Math, Date, RegExp, and the Error constructor hierarchy, plus the
// global functions an embedded script expects (print, eval's supporting
// globals, etc.). Each file here is grounded on the corresponding
// domain file in the teacher's builtins package (internal/interp/builtins),
// adapted from DWScript's flat built-in-procedure model to ECMAScript's
// prototype-chain method model.
package builtins

import (
	"github.com/kiidax/nablajs/internal/evaluator"
	"github.com/kiidax/nablajs/internal/runtime"
)

// thisOf returns the `this` binding a NativeFunc call received (args[0],
// per runtime.NativeFunc's documented convention).
func thisOf(args []runtime.Value) runtime.Value {
	if len(args) == 0 {
		return runtime.Undefined
	}
	return args[0]
}

// arg returns the i-th real argument (0-based, after `this`), or
// undefined when the call did not supply it.
func arg(args []runtime.Value, i int) runtime.Value {
	if i+1 < len(args) {
		return args[i+1]
	}
	return runtime.Undefined
}

// argc returns the number of real arguments (excluding `this`).
func argc(args []runtime.Value) int {
	if len(args) == 0 {
		return 0
	}
	return len(args) - 1
}

// method installs a native method on proto as a non-enumerable, writable,
// configurable data property, the conventional shape for prototype
// methods (spec §4.7).
func method(in *evaluator.Interpreter, proto *runtime.Object, name string, length int, fn runtime.NativeFunc) {
	proto.DefineHidden(name, in.NativeFunction(name, length, fn))
}

// thisObject coerces this to an Object, raising TypeError for
// undefined/null receivers (the common guard every Object/Array/String
// prototype method needs).
func thisObject(in *evaluator.Interpreter, args []runtime.Value) (*runtime.Object, error) {
	return runtime.ToObject(in, in.Prototypes(), thisOf(args))
}

// indexName renders the canonical string form of a numeric array index,
// the property-name shape array-exotic objects store indices under.
func indexName(i int) string {
	return runtime.Int(int64(i)).String()
}
