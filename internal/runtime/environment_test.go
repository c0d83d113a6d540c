package runtime

import "testing"

// ============================================================================
// Declarative environment chain resolution (spec §4.4)
// ============================================================================

func TestLookupEnvironmentWalksOuterChain(t *testing.T) {
	outer := NewDeclarativeEnvironment(nil)
	outer.CreateMutableBinding(fakeRealm{}, "x", false)

	inner := NewDeclarativeEnvironment(outer)
	inner.CreateMutableBinding(fakeRealm{}, "y", false)

	if found := LookupEnvironment(fakeRealm{}, inner, "x"); found != outer {
		t.Errorf("lookup of outer-only binding found %v, want outer", found)
	}
	if found := LookupEnvironment(fakeRealm{}, inner, "y"); found != inner {
		t.Errorf("lookup of inner binding found %v, want inner", found)
	}
	if found := LookupEnvironment(fakeRealm{}, inner, "z"); found != nil {
		t.Errorf("lookup of unbound name found %v, want nil", found)
	}
}

func TestSetMutableBindingRejectsImmutable(t *testing.T) {
	env := NewDeclarativeEnvironment(nil)
	env.CreateImmutableBinding("CONST", Int(1))

	if err := env.SetMutableBinding(fakeRealm{}, "CONST", Int(2), false); err != nil {
		t.Errorf("non-throwing write to immutable binding returned error: %v", err)
	}
	v, _ := env.GetBindingValue(fakeRealm{}, "CONST", false)
	if iv := v.(*IntegerValue); iv.Value != 1 {
		t.Errorf("CONST = %v, want unchanged 1", iv.Value)
	}

	if err := env.SetMutableBinding(fakeRealm{}, "CONST", Int(2), true); err == nil {
		t.Errorf("doThrow write to immutable binding did not error")
	}
}

func TestGetBindingValueUnresolvedReference(t *testing.T) {
	env := NewDeclarativeEnvironment(nil)

	v, err := env.GetBindingValue(fakeRealm{}, "missing", false)
	if err != nil {
		t.Fatalf("non-throwing GetBindingValue returned error: %v", err)
	}
	if v != Undefined {
		t.Errorf("GetBindingValue(missing, doThrow=false) = %v, want undefined", v)
	}

	if _, err := env.GetBindingValue(fakeRealm{}, "missing", true); err == nil {
		t.Errorf("doThrow GetBindingValue of unresolved name did not error")
	}
}

func TestDeleteBindingRespectsDeletableFlag(t *testing.T) {
	env := NewDeclarativeEnvironment(nil)
	env.CreateMutableBinding(fakeRealm{}, "nonDeletable", false)
	env.bindings["catchParam"] = &Binding{Value: Int(1), Deletable: true}
	env.order = append(env.order, "catchParam")

	ok, err := env.DeleteBinding("nonDeletable")
	if err != nil || ok {
		t.Errorf("DeleteBinding(nonDeletable) = (%v, %v), want (false, nil)", ok, err)
	}
	ok, err = env.DeleteBinding("catchParam")
	if err != nil || !ok {
		t.Errorf("DeleteBinding(catchParam) = (%v, %v), want (true, nil)", ok, err)
	}
	if env.HasBinding(fakeRealm{}, "catchParam") {
		t.Errorf("catchParam still bound after delete")
	}
}

// ============================================================================
// Object-backed environments (the global environment, `with`)
// ============================================================================

func TestObjectEnvironmentDelegatesToTargetObject(t *testing.T) {
	global := NewObject(nil)
	env := NewObjectEnvironment(global, nil, false)

	if err := env.SetMutableBinding(fakeRealm{}, "g", Str("hi"), true); err != nil {
		t.Fatalf("SetMutableBinding returned error: %v", err)
	}
	if !global.HasOwnProperty("g") {
		t.Fatalf("object-backed write did not land on the target object")
	}
	v, err := env.GetBindingValue(fakeRealm{}, "g", true)
	if err != nil {
		t.Fatalf("GetBindingValue returned error: %v", err)
	}
	if sv := v.(*StringValue); sv.Value != "hi" {
		t.Errorf("g = %v, want \"hi\"", v)
	}
}

func TestWithEnvironmentProvidesThis(t *testing.T) {
	target := NewObject(nil)
	withEnv := NewObjectEnvironment(target, nil, true)
	globalEnv := NewObjectEnvironment(NewObject(nil), nil, false)

	if v, ok := withEnv.ImplicitThisValue(); !ok || v != Value(target) {
		t.Errorf("with-environment ImplicitThisValue = (%v, %v), want (target, true)", v, ok)
	}
	if _, ok := globalEnv.ImplicitThisValue(); ok {
		t.Errorf("plain object environment should not provide this")
	}
}
