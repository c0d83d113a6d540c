package runtime

// NativeFunc is the Go implementation of a built-in function. Per spec
// §4.7, args[0] conveys the `this` value and the real arguments begin at
// args[1]; a native function returns (nil, err) to signal a pending
// exception, matching the "may return nil to signal exception pending"
// convention (here using Go's error channel instead of a bare nil/true
// sentinel pair, since Go already has one).
type NativeFunc func(realm Realm, args []Value) (Value, error)

// FunctionRecord is the host-data payload for Function objects (spec §3:
// "either native_code ... or {code, scope, script, strict}"). Exactly one
// of Native or Code is set.
type FunctionRecord struct {
	Native NativeFunc

	Code   any // *ast.FunctionNode; typed any here to avoid runtime depending on pkg/ast's evaluator-facing helpers
	Scope  *Environment
	Script any // *Script (defined in the evaluator/interp layer); any to avoid an import cycle
	Strict bool
	Name   string
}

func (f *FunctionRecord) hostData() {}

// IsFunctionObject reports whether v is a callable Object.
func IsFunctionObject(v Value) bool {
	o, ok := v.(*Object)
	if !ok {
		return false
	}
	_, ok = o.Host.(*FunctionRecord)
	return ok
}

// AsFunctionRecord extracts the FunctionRecord from a callable object.
func AsFunctionRecord(v Value) (*FunctionRecord, bool) {
	o, ok := v.(*Object)
	if !ok {
		return nil, false
	}
	fr, ok := o.Host.(*FunctionRecord)
	return fr, ok
}

// Call implements spec §4.2 Call: dispatch to the embedded Function
// record via the realm, which knows how to run both native and
// AST-bodied functions.
func (o *Object) Call(realm Realm, this Value, args []Value) (Value, error) {
	if _, ok := o.Host.(*FunctionRecord); !ok {
		return nil, NewTypeError("value is not callable")
	}
	return realm.CallFunction(o, this, args)
}

// Construct implements spec §4.2 Construct: a fresh object inheriting
// from callee.prototype (or Object.prototype when that is not an object)
// is created and passed as `this`; if the function returns an object,
// that object is the result, otherwise the fresh object is.
func (o *Object) Construct(realm Realm, objectProto *Object, args []Value) (Value, error) {
	if _, ok := o.Host.(*FunctionRecord); !ok {
		return nil, NewTypeError("value is not a constructor")
	}
	proto := objectProto
	if protoVal, err := o.Get(realm, "prototype"); err == nil {
		if p, ok := protoVal.(*Object); ok {
			proto = p
		}
	}
	instance := NewObject(proto)
	result, err := realm.CallFunction(o, instance, args)
	if err != nil {
		return nil, err
	}
	if resObj, ok := result.(*Object); ok {
		return resObj, nil
	}
	return instance, nil
}
