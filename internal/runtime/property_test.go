package runtime

import "testing"

func nativeFunctionObject(fn NativeFunc) *Object {
	o := NewObject(nil)
	o.Host = &FunctionRecord{Native: fn}
	o.Class = "Function"
	return o
}

// ============================================================================
// Accessor properties (spec §3 Property, §4.2 Get/Put)
// ============================================================================

func TestAccessorPropertyGetInvokesGetterWithThis(t *testing.T) {
	var sawThis Value
	getter := nativeFunctionObject(func(realm Realm, args []Value) (Value, error) {
		sawThis = args[0]
		return Str("gotten"), nil
	})
	o := NewObject(nil)
	o.DefineOwnProperty("x", AccessorProperty(getter, nil, Enumerable|Configurable))

	v, err := o.Get(fakeRealm{}, "x")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if sv := v.(*StringValue); sv.Value != "gotten" {
		t.Errorf("Get(x) = %v, want \"gotten\"", v)
	}
	if sawThis != Value(o) {
		t.Errorf("getter was not called with this=o")
	}
}

func TestAccessorPropertySetInvokesSetter(t *testing.T) {
	var received Value
	setter := nativeFunctionObject(func(realm Realm, args []Value) (Value, error) {
		received = args[1]
		return Undefined, nil
	})
	o := NewObject(nil)
	o.DefineOwnProperty("x", AccessorProperty(nil, setter, Enumerable|Configurable))

	if err := o.Put(fakeRealm{}, "x", Int(7), true); err != nil {
		t.Fatalf("Put returned error: %v", err)
	}
	iv, ok := received.(*IntegerValue)
	if !ok || iv.Value != 7 {
		t.Errorf("setter received %v, want 7", received)
	}
}

func TestAccessorWithNoGetterReturnsUndefined(t *testing.T) {
	o := NewObject(nil)
	setter := nativeFunctionObject(func(realm Realm, args []Value) (Value, error) { return Undefined, nil })
	o.DefineOwnProperty("writeOnly", AccessorProperty(nil, setter, Enumerable|Configurable))

	v, err := o.Get(fakeRealm{}, "writeOnly")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if v != Undefined {
		t.Errorf("Get of getter-less accessor = %v, want undefined", v)
	}
}

func TestInheritedAccessorSetterCalledOnReceiver(t *testing.T) {
	var sawThis Value
	setter := nativeFunctionObject(func(realm Realm, args []Value) (Value, error) {
		sawThis = args[0]
		return Undefined, nil
	})
	base := NewObject(nil)
	base.DefineOwnProperty("x", AccessorProperty(nil, setter, Enumerable|Configurable))
	derived := NewObject(base)

	if err := derived.Put(fakeRealm{}, "x", Int(1), true); err != nil {
		t.Fatalf("Put returned error: %v", err)
	}
	if sawThis != Value(derived) {
		t.Errorf("inherited setter ran with this=%v, want derived receiver", sawThis)
	}
	if derived.HasOwnProperty("x") {
		t.Errorf("Put through an inherited accessor should not create an own data property")
	}
}
