package builtins

import (
	"github.com/kiidax/nablajs/internal/evaluator"
	"github.com/kiidax/nablajs/internal/runtime"
)

// installObject builds Object.prototype and the Object constructor (spec
// §4.7 Object). Called with no arguments or `undefined`/`null`, Object()
// returns a fresh plain object; called with any other value, it coerces
// via ToObject; `new Object(...)` behaves the same way.
func installObject(in *evaluator.Interpreter, proto *runtime.Object) *runtime.Object {
	toStringFn := func(realm runtime.Realm, args []runtime.Value) (runtime.Value, error) {
		o, err := runtime.ToObject(realm, in.Prototypes(), thisOf(args))
		if err != nil {
			return nil, err
		}
		class := o.Class
		if class == "" {
			class = "Object"
		}
		return runtime.Str("[object " + class + "]"), nil
	}
	method(in, proto, "toString", 0, toStringFn)
	method(in, proto, "toLocaleString", 0, toStringFn)
	method(in, proto, "valueOf", 0, func(realm runtime.Realm, args []runtime.Value) (runtime.Value, error) {
		return thisObject(in, args)
	})
	method(in, proto, "hasOwnProperty", 1, func(realm runtime.Realm, args []runtime.Value) (runtime.Value, error) {
		o, err := thisObject(in, args)
		if err != nil {
			return nil, err
		}
		name, err := runtime.ToString(realm, arg(args, 0))
		if err != nil {
			return nil, err
		}
		return runtime.Bool(o.HasOwnProperty(name)), nil
	})
	method(in, proto, "isPrototypeOf", 1, func(realm runtime.Realm, args []runtime.Value) (runtime.Value, error) {
		other, ok := arg(args, 0).(*runtime.Object)
		if !ok {
			return runtime.False, nil
		}
		self, ok := thisOf(args).(*runtime.Object)
		if !ok {
			return runtime.False, nil
		}
		for cur := other.Proto; cur != nil; cur = cur.Proto {
			if cur == self {
				return runtime.True, nil
			}
		}
		return runtime.False, nil
	})
	method(in, proto, "propertyIsEnumerable", 1, func(realm runtime.Realm, args []runtime.Value) (runtime.Value, error) {
		o, err := thisObject(in, args)
		if err != nil {
			return nil, err
		}
		name, err := runtime.ToString(realm, arg(args, 0))
		if err != nil {
			return nil, err
		}
		p, ok := o.OwnProperty(name)
		return runtime.Bool(ok && p.Attrs.Has(runtime.Enumerable)), nil
	})

	ctor := in.NativeFunction("Object", 1, func(realm runtime.Realm, args []runtime.Value) (runtime.Value, error) {
		v := arg(args, 0)
		if v == runtime.Undefined || v == runtime.Null {
			return runtime.NewObject(proto), nil
		}
		return runtime.ToObject(realm, in.Prototypes(), v)
	})
	ctor.DefineHidden("prototype", proto)
	proto.DefineHidden("constructor", ctor)

	method(in, ctor, "getPrototypeOf", 1, func(realm runtime.Realm, args []runtime.Value) (runtime.Value, error) {
		o, ok := arg(args, 0).(*runtime.Object)
		if !ok {
			return nil, runtime.NewTypeError("Object.getPrototypeOf called on non-object")
		}
		if o.Proto == nil {
			return runtime.Null, nil
		}
		return o.Proto, nil
	})

	method(in, ctor, "keys", 1, func(realm runtime.Realm, args []runtime.Value) (runtime.Value, error) {
		o, ok := arg(args, 0).(*runtime.Object)
		if !ok {
			return nil, runtime.NewTypeError("Object.keys called on non-object")
		}
		names := o.EnumerableOwnNames()
		arr := runtime.NewArray(in.Builtins.ArrayProto, uint32(len(names)))
		for i, name := range names {
			arr.DefineDataProperty(indexName(i), runtime.Str(name))
		}
		return arr, nil
	})

	method(in, ctor, "create", 2, func(realm runtime.Realm, args []runtime.Value) (runtime.Value, error) {
		var protoArg *runtime.Object
		v0 := arg(args, 0)
		if o, ok := v0.(*runtime.Object); ok {
			protoArg = o
		} else if v0 != runtime.Null {
			return nil, runtime.NewTypeError("Object prototype may only be an Object or null")
		}
		obj := runtime.NewObject(protoArg)
		if props, ok := arg(args, 1).(*runtime.Object); ok {
			if err := definePropertiesFrom(in, realm, obj, props); err != nil {
				return nil, err
			}
		}
		return obj, nil
	})

	method(in, ctor, "defineProperty", 3, func(realm runtime.Realm, args []runtime.Value) (runtime.Value, error) {
		o, ok := arg(args, 0).(*runtime.Object)
		if !ok {
			return nil, runtime.NewTypeError("Object.defineProperty called on non-object")
		}
		name, err := runtime.ToString(realm, arg(args, 1))
		if err != nil {
			return nil, err
		}
		desc, ok := arg(args, 2).(*runtime.Object)
		if !ok {
			return nil, runtime.NewTypeError("property descriptor must be an object")
		}
		if err := defineFromDescriptor(realm, o, name, desc); err != nil {
			return nil, err
		}
		return o, nil
	})

	method(in, ctor, "getOwnPropertyDescriptor", 2, func(realm runtime.Realm, args []runtime.Value) (runtime.Value, error) {
		o, ok := arg(args, 0).(*runtime.Object)
		if !ok {
			return nil, runtime.NewTypeError("Object.getOwnPropertyDescriptor called on non-object")
		}
		name, err := runtime.ToString(realm, arg(args, 1))
		if err != nil {
			return nil, err
		}
		p, ok := o.OwnProperty(name)
		if !ok {
			return runtime.Undefined, nil
		}
		return descriptorOf(in, p), nil
	})

	return ctor
}

// definePropertiesFrom applies each own enumerable property of props as a
// descriptor onto obj, the shared implementation behind Object.create's
// second argument and a natural home for Object.defineProperties should
// the surface grow to need it.
func definePropertiesFrom(in *evaluator.Interpreter, realm runtime.Realm, obj *runtime.Object, props *runtime.Object) error {
	for _, name := range props.EnumerableOwnNames() {
		v, err := props.Get(realm, name)
		if err != nil {
			return err
		}
		desc, ok := v.(*runtime.Object)
		if !ok {
			return runtime.NewTypeError("property descriptor must be an object")
		}
		if err := defineFromDescriptor(realm, obj, name, desc); err != nil {
			return err
		}
	}
	return nil
}

// defineFromDescriptor reads the value/get/set/writable/enumerable/
// configurable fields a descriptor object may carry and installs the
// matching Property on o (spec §4.7 Object.defineProperty).
func defineFromDescriptor(realm runtime.Realm, o *runtime.Object, name string, desc *runtime.Object) error {
	getV, hasGet := desc.OwnProperty("get")
	setV, hasSet := desc.OwnProperty("set")
	if hasGet || hasSet {
		var getter, setter *runtime.Object
		if hasGet {
			getter, _ = getV.Value.(*runtime.Object)
		}
		if hasSet {
			setter, _ = setV.Value.(*runtime.Object)
		}
		attrs := attrsFromDescriptor(desc)
		o.DefineOwnProperty(name, runtime.AccessorProperty(getter, setter, attrs))
		return nil
	}
	var value runtime.Value = runtime.Undefined
	if vp, ok := desc.OwnProperty("value"); ok {
		value = vp.Value
	}
	attrs := attrsFromDescriptor(desc)
	o.DefineOwnProperty(name, runtime.DataProperty(value, attrs))
	return nil
}

func attrsFromDescriptor(desc *runtime.Object) runtime.PropertyAttr {
	var attrs runtime.PropertyAttr
	if boolField(desc, "writable") {
		attrs |= runtime.Writable
	}
	if boolField(desc, "enumerable") {
		attrs |= runtime.Enumerable
	}
	if boolField(desc, "configurable") {
		attrs |= runtime.Configurable
	}
	return attrs
}

func boolField(desc *runtime.Object, name string) bool {
	p, ok := desc.OwnProperty(name)
	if !ok {
		return false
	}
	return runtime.ToBoolean(p.Value)
}

// descriptorOf renders p as the plain object shape
// Object.getOwnPropertyDescriptor returns.
func descriptorOf(in *evaluator.Interpreter, p *runtime.Property) *runtime.Object {
	d := runtime.NewObject(in.Builtins.ObjectProto)
	if p.IsAccessor() {
		if p.Getter != nil {
			d.DefineDataProperty("get", p.Getter)
		} else {
			d.DefineDataProperty("get", runtime.Undefined)
		}
		if p.Setter != nil {
			d.DefineDataProperty("set", p.Setter)
		} else {
			d.DefineDataProperty("set", runtime.Undefined)
		}
	} else {
		d.DefineDataProperty("value", p.Value)
	}
	d.DefineDataProperty("writable", runtime.Bool(p.Attrs.Has(runtime.Writable)))
	d.DefineDataProperty("enumerable", runtime.Bool(p.Attrs.Has(runtime.Enumerable)))
	d.DefineDataProperty("configurable", runtime.Bool(p.Attrs.Has(runtime.Configurable)))
	return d
}
