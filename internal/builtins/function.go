package builtins

import (
	"github.com/kiidax/nablajs/internal/evaluator"
	"github.com/kiidax/nablajs/internal/runtime"
)

// installFunction builds Function.prototype and the Function constructor
// (spec §4.7 Function). Function.prototype.bind is a documented
// extension beyond the §6 minimum operator set (see SPEC_FULL.md §4).
func installFunction(in *evaluator.Interpreter, proto *runtime.Object) *runtime.Object {
	proto.Host = &runtime.FunctionRecord{Native: func(runtime.Realm, []runtime.Value) (runtime.Value, error) {
		return runtime.Undefined, nil
	}, Name: "Empty"}

	method(in, proto, "toString", 0, func(realm runtime.Realm, args []runtime.Value) (runtime.Value, error) {
		fn, ok := thisOf(args).(*runtime.Object)
		if !ok {
			return nil, runtime.NewTypeError("Function.prototype.toString called on incompatible receiver")
		}
		fr, ok := fn.Host.(*runtime.FunctionRecord)
		if !ok {
			return nil, runtime.NewTypeError("Function.prototype.toString called on incompatible receiver")
		}
		name := fr.Name
		return runtime.Str("function " + name + "() { [native code] }"), nil
	})

	method(in, proto, "apply", 2, func(realm runtime.Realm, args []runtime.Value) (runtime.Value, error) {
		fn, ok := thisOf(args).(*runtime.Object)
		if !ok || !runtime.IsFunctionObject(fn) {
			return nil, runtime.NewTypeError("value is not a function")
		}
		thisArg := arg(args, 0)
		var callArgs []runtime.Value
		if arr := arg(args, 1); arr != runtime.Undefined && arr != runtime.Null {
			arrObj, ok := arr.(*runtime.Object)
			if !ok {
				return nil, runtime.NewTypeError("second argument to apply must be an array-like object")
			}
			n := runtime.ArrayLength(arrObj)
			callArgs = make([]runtime.Value, n)
			for i := uint32(0); i < n; i++ {
				v, err := arrObj.Get(realm, runtime.Int(int64(i)).String())
				if err != nil {
					return nil, err
				}
				callArgs[i] = v
			}
		}
		return fn.Call(realm, thisArg, callArgs)
	})

	method(in, proto, "call", 1, func(realm runtime.Realm, args []runtime.Value) (runtime.Value, error) {
		fn, ok := thisOf(args).(*runtime.Object)
		if !ok || !runtime.IsFunctionObject(fn) {
			return nil, runtime.NewTypeError("value is not a function")
		}
		thisArg := arg(args, 0)
		var callArgs []runtime.Value
		if argc(args) > 1 {
			callArgs = args[2:]
		}
		return fn.Call(realm, thisArg, callArgs)
	})

	method(in, proto, "bind", 1, func(realm runtime.Realm, args []runtime.Value) (runtime.Value, error) {
		target, ok := thisOf(args).(*runtime.Object)
		if !ok || !runtime.IsFunctionObject(target) {
			return nil, runtime.NewTypeError("value is not a function")
		}
		boundThis := arg(args, 0)
		var boundArgs []runtime.Value
		if argc(args) > 1 {
			boundArgs = append(boundArgs, args[2:]...)
		}
		bound := in.NativeFunction("bound", 0, func(realm runtime.Realm, callArgs []runtime.Value) (runtime.Value, error) {
			full := append(append([]runtime.Value{}, boundArgs...), callArgs[1:]...)
			return target.Call(realm, boundThis, full)
		})
		return bound, nil
	})

	ctor := in.NativeFunction("Function", 1, func(realm runtime.Realm, args []runtime.Value) (runtime.Value, error) {
		return nil, runtime.NewTypeError("Function constructor from source text is not supported")
	})
	ctor.DefineHidden("prototype", proto)
	proto.DefineHidden("constructor", ctor)
	return ctor
}
