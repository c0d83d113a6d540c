package runtime

import "testing"

// fakeRealm is a minimal Realm for tests that never exercise accessor
// properties or Function.Call.
type fakeRealm struct{}

func (fakeRealm) CallFunction(fn *Object, this Value, args []Value) (Value, error) {
	fr, ok := fn.Host.(*FunctionRecord)
	if !ok || fr.Native == nil {
		return nil, NewTypeError("value is not callable")
	}
	return fr.Native(fakeRealm{}, append([]Value{this}, args...))
}

// ============================================================================
// Own vs inherited property lookup (spec §4.2, §8 hasOwnProperty invariant)
// ============================================================================

func TestObjectGetPropertyWalksPrototypeChain(t *testing.T) {
	base := NewObject(nil)
	base.DefineDataProperty("greeting", Str("hi"))

	derived := NewObject(base)

	if _, ok := derived.OwnProperty("greeting"); ok {
		t.Fatalf("derived should not own \"greeting\"")
	}
	prop, owner := derived.GetProperty("greeting")
	if prop == nil {
		t.Fatalf("GetProperty did not find inherited property")
	}
	if owner != base {
		t.Errorf("owner = %v, want base object", owner)
	}
}

func TestObjectHasOwnPropertyMatchesDescriptor(t *testing.T) {
	o := NewObject(nil)
	o.DefineDataProperty("x", Int(1))

	if !o.HasOwnProperty("x") {
		t.Fatalf("HasOwnProperty(x) = false, want true")
	}
	if _, ok := o.OwnProperty("missing"); ok {
		t.Errorf("OwnProperty(missing) reported found")
	}
	if o.HasOwnProperty("missing") {
		t.Errorf("HasOwnProperty(missing) = true, want false")
	}
}

func TestObjectEnumerableOwnNamesInsertionOrder(t *testing.T) {
	o := NewObject(nil)
	o.DefineDataProperty("z", Int(1))
	o.DefineDataProperty("a", Int(2))
	o.DefineHidden("hidden", Int(3))
	o.DefineDataProperty("m", Int(4))

	got := o.EnumerableOwnNames()
	want := []string{"z", "a", "m"}
	if len(got) != len(want) {
		t.Fatalf("EnumerableOwnNames() = %v, want %v", got, want)
	}
	for i, name := range want {
		if got[i] != name {
			t.Errorf("EnumerableOwnNames()[%d] = %q, want %q", i, got[i], name)
		}
	}
}

// ============================================================================
// Put / CanPut (spec §4.2)
// ============================================================================

func TestObjectPutOwnWritableDataProperty(t *testing.T) {
	o := NewObject(nil)
	o.DefineDataProperty("x", Int(1))

	if err := o.Put(fakeRealm{}, "x", Int(2), true); err != nil {
		t.Fatalf("Put returned error: %v", err)
	}
	p, _ := o.OwnProperty("x")
	iv, ok := p.Value.(*IntegerValue)
	if !ok || iv.Value != 2 {
		t.Errorf("x = %v, want 2", p.Value)
	}
}

func TestObjectPutCreatesOwnPropertyShadowingInherited(t *testing.T) {
	base := NewObject(nil)
	base.DefineDataProperty("x", Int(1))
	derived := NewObject(base)

	if err := derived.Put(fakeRealm{}, "x", Int(5), true); err != nil {
		t.Fatalf("Put returned error: %v", err)
	}
	if !derived.HasOwnProperty("x") {
		t.Fatalf("derived did not gain its own shadowing property")
	}
	bp, _ := base.OwnProperty("x")
	if iv := bp.Value.(*IntegerValue); iv.Value != 1 {
		t.Errorf("base.x mutated to %v, want unchanged 1", iv.Value)
	}
}

func TestObjectPutNonWritableFailsSilentlyOrThrows(t *testing.T) {
	o := NewObject(nil)
	o.DefineOwnProperty("x", DataProperty(Int(1), Enumerable|Configurable))

	if err := o.Put(fakeRealm{}, "x", Int(2), false); err != nil {
		t.Errorf("non-throwing Put on non-writable property returned error: %v", err)
	}
	p, _ := o.OwnProperty("x")
	if iv := p.Value.(*IntegerValue); iv.Value != 1 {
		t.Errorf("non-writable property was mutated to %v", iv.Value)
	}

	if err := o.Put(fakeRealm{}, "x", Int(3), true); err == nil {
		t.Errorf("doThrow Put on non-writable property did not return an error")
	}
}

func TestObjectPutOnNonExtensibleFailsToCreate(t *testing.T) {
	o := NewObject(nil)
	o.Extensible = false

	if err := o.Put(fakeRealm{}, "new", Int(1), false); err != nil {
		t.Errorf("non-throwing Put on non-extensible object returned error: %v", err)
	}
	if o.HasOwnProperty("new") {
		t.Errorf("non-extensible object gained a new property")
	}
	if err := o.Put(fakeRealm{}, "new", Int(1), true); err == nil {
		t.Errorf("doThrow Put on non-extensible object did not error")
	}
}

// ============================================================================
// Delete (spec §4.2)
// ============================================================================

func TestObjectDeleteConfigurableSucceeds(t *testing.T) {
	o := NewObject(nil)
	o.DefineDataProperty("x", Int(1))

	ok, err := o.Delete("x", true)
	if err != nil || !ok {
		t.Fatalf("Delete(x) = (%v, %v), want (true, nil)", ok, err)
	}
	if o.HasOwnProperty("x") {
		t.Errorf("x still present after Delete")
	}
}

func TestObjectDeleteNonConfigurable(t *testing.T) {
	o := NewObject(nil)
	o.DefineOwnProperty("x", DataProperty(Int(1), Writable|Enumerable))

	ok, err := o.Delete("x", false)
	if err != nil {
		t.Fatalf("non-throwing Delete returned error: %v", err)
	}
	if ok {
		t.Errorf("Delete of non-configurable property reported success")
	}
	if !o.HasOwnProperty("x") {
		t.Errorf("non-configurable property was removed")
	}

	if _, err := o.Delete("x", true); err == nil {
		t.Errorf("doThrow Delete of non-configurable property did not error")
	}
}

// ============================================================================
// hasOwnProperty / getOwnPropertyDescriptor invariant (spec §8)
// ============================================================================

func TestHasOwnPropertyMatchesOwnPropertyInvariant(t *testing.T) {
	o := NewObject(nil)
	names := []string{"a", "b", "c"}
	for _, n := range names {
		o.DefineDataProperty(n, Null)
	}
	o.Delete("b", true)

	for _, n := range []string{"a", "b", "c", "d"} {
		_, descriptorOk := o.OwnProperty(n)
		hasOwn := o.HasOwnProperty(n)
		if descriptorOk != hasOwn {
			t.Errorf("name %q: OwnProperty ok=%v but HasOwnProperty=%v", n, descriptorOk, hasOwn)
		}
	}
}
