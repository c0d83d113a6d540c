package builtins

import (
	"github.com/kiidax/nablajs/internal/evaluator"
	"github.com/kiidax/nablajs/internal/runtime"
)

// errorKind describes one constructor in the Error hierarchy (spec §4.7
// Error, TypeError, ReferenceError, SyntaxError, RangeError): each gets
// its own prototype chained to Error.prototype and a constructor that
// both `Ctor(msg)` and `new Ctor(msg)` build identically.
type errorKind struct {
	name  string
	proto **runtime.Object
	ctor  **runtime.Object
}

// installErrors builds the Error constructor hierarchy and wires every
// evaluator.Builtins.*ErrorProto/*ErrorCtor field (used by the evaluator's
// throwTypeError/throwReferenceError/throwSyntaxError/throwRangeError
// helpers to construct real thrown Error instances).
func installErrors(in *evaluator.Interpreter, objectProto *runtime.Object, b *evaluator.Builtins) {
	errorProto := runtime.NewObject(objectProto)
	errorProto.Class = "Error"
	errorProto.DefineHidden("name", runtime.Str("Error"))
	errorProto.DefineHidden("message", runtime.Str(""))
	method(in, errorProto, "toString", 0, func(realm runtime.Realm, args []runtime.Value) (runtime.Value, error) {
		o, err := thisObject(in, args)
		if err != nil {
			return nil, err
		}
		nameVal, err := o.Get(realm, "name")
		if err != nil {
			return nil, err
		}
		name, err := runtime.ToString(realm, nameVal)
		if err != nil {
			return nil, err
		}
		msgVal, err := o.Get(realm, "message")
		if err != nil {
			return nil, err
		}
		msg, err := runtime.ToString(realm, msgVal)
		if err != nil {
			return nil, err
		}
		if msg == "" {
			return runtime.Str(name), nil
		}
		if name == "" {
			return runtime.Str(msg), nil
		}
		return runtime.Str(name + ": " + msg), nil
	})

	errorCtor := buildErrorCtor(in, "Error", errorProto)
	b.ErrorProto = errorProto
	b.ErrorCtor = errorCtor

	kinds := []errorKind{
		{"TypeError", &b.TypeErrorProto, &b.TypeErrorCtor},
		{"ReferenceError", &b.ReferenceErrorProto, &b.ReferenceErrorCtor},
		{"SyntaxError", &b.SyntaxErrorProto, &b.SyntaxErrorCtor},
		{"RangeError", &b.RangeErrorProto, &b.RangeErrorCtor},
	}
	for _, k := range kinds {
		proto := runtime.NewObject(errorProto)
		proto.Class = "Error"
		proto.DefineHidden("name", runtime.Str(k.name))
		proto.DefineHidden("message", runtime.Str(""))
		ctor := buildErrorCtor(in, k.name, proto)
		*k.proto = proto
		*k.ctor = ctor
	}
}

func buildErrorCtor(in *evaluator.Interpreter, name string, proto *runtime.Object) *runtime.Object {
	ctor := in.NativeFunction(name, 1, func(realm runtime.Realm, args []runtime.Value) (runtime.Value, error) {
		errObj := runtime.NewObject(proto)
		errObj.Class = "Error"
		if argc(args) > 0 && arg(args, 0) != runtime.Undefined {
			msg, err := runtime.ToString(realm, arg(args, 0))
			if err != nil {
				return nil, err
			}
			errObj.DefineHidden("message", runtime.Str(msg))
		}
		return errObj, nil
	})
	ctor.DefineHidden("prototype", proto)
	proto.DefineHidden("constructor", ctor)
	return ctor
}
