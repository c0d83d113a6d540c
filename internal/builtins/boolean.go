package builtins

import (
	"github.com/kiidax/nablajs/internal/evaluator"
	"github.com/kiidax/nablajs/internal/runtime"
)

// installBoolean builds Boolean.prototype and the Boolean constructor
// (spec §4.7 Boolean).
func installBoolean(in *evaluator.Interpreter, proto *runtime.Object) *runtime.Object {
	thisBoolean := func(args []runtime.Value) (bool, error) {
		if b, ok := thisOf(args).(*runtime.BooleanValue); ok {
			return b.Value, nil
		}
		if o, ok := thisOf(args).(*runtime.Object); ok {
			if v, ok := runtime.WrappedPrimitive(o); ok {
				if b, ok := v.(*runtime.BooleanValue); ok {
					return b.Value, nil
				}
			}
		}
		return false, runtime.NewTypeError("Boolean.prototype method called on incompatible receiver")
	}

	method(in, proto, "valueOf", 0, func(realm runtime.Realm, args []runtime.Value) (runtime.Value, error) {
		b, err := thisBoolean(args)
		if err != nil {
			return nil, err
		}
		return runtime.Bool(b), nil
	})
	method(in, proto, "toString", 0, func(realm runtime.Realm, args []runtime.Value) (runtime.Value, error) {
		b, err := thisBoolean(args)
		if err != nil {
			return nil, err
		}
		if b {
			return runtime.Str("true"), nil
		}
		return runtime.Str("false"), nil
	})

	ctor := in.NativeFunction("Boolean", 1, func(realm runtime.Realm, args []runtime.Value) (runtime.Value, error) {
		b := runtime.Bool(runtime.ToBoolean(arg(args, 0)))
		if inst, ok := thisOf(args).(*runtime.Object); ok {
			inst.Class = "Boolean"
			runtime.SetWrappedPrimitive(inst, b)
			return inst, nil
		}
		return b, nil
	})
	ctor.DefineHidden("prototype", proto)
	proto.DefineHidden("constructor", ctor)
	return ctor
}
