package runtime

import "fmt"

// Binding is one slot of a declarative Environment record (spec §4.4):
// a value plus the mutability and deletability flags that distinguish
// `var`/function bindings (mutable, non-deletable) from `catch` clause
// parameters (mutable, deletable) and named function expression self-
// bindings (immutable).
type Binding struct {
	Value     Value
	Immutable bool
	Deletable bool
}

// Environment is either a declarative record (a plain name -> Binding
// map, used for function/block/catch scopes) or an object-backed record
// (properties of a backing Object stand in for bindings, used for the
// global environment and `with` statements). Compare to the teacher's
// Environment in internal/interp/runtime/environment.go, which is always
// store-backed; this engine needs the two-kind split because ECMAScript's
// global object and `with` bindings must be visible as ordinary object
// properties as well as identifiers.
type Environment struct {
	outer *Environment

	// Declarative record fields.
	bindings map[string]*Binding
	order    []string

	// Object-backed record fields.
	object      *Object
	provideThis bool
}

// NewDeclarativeEnvironment creates a new declarative scope enclosed by
// outer (outer may be nil for the outermost scope).
func NewDeclarativeEnvironment(outer *Environment) *Environment {
	return &Environment{outer: outer, bindings: make(map[string]*Binding)}
}

// NewObjectEnvironment creates an object-backed scope (the global
// environment, or a `with` statement's scope) whose bindings are the
// enumerable-irrelevant properties of obj. provideThis controls whether
// `this` resolves to obj inside the scope (true only for `with`, per
// spec §4.4).
func NewObjectEnvironment(obj *Object, outer *Environment, provideThis bool) *Environment {
	return &Environment{outer: outer, object: obj, provideThis: provideThis}
}

// Outer returns the enclosing environment, or nil at the outermost scope.
func (e *Environment) Outer() *Environment { return e.outer }

// ObjectRecord returns the backing object of an object-backed
// environment, or nil for a declarative one.
func (e *Environment) ObjectRecord() *Object { return e.object }

// ProvidesThis reports whether this environment supplies its own `this`
// binding (true only for `with` scopes).
func (e *Environment) ProvidesThis() bool { return e.provideThis }

// HasBinding reports whether name is bound directly in this record
// (spec §4.4 HasBinding), without searching outer scopes.
func (e *Environment) HasBinding(realm Realm, name string) bool {
	if e.object != nil {
		return e.object.HasOwnProperty(name)
	}
	_, ok := e.bindings[name]
	return ok
}

// CreateMutableBinding installs a new mutable binding in this record
// (spec §4.4 CreateMutableBinding), used for `var` and function
// declaration hoisting.
func (e *Environment) CreateMutableBinding(realm Realm, name string, deletable bool) error {
	if e.object != nil {
		attrs := Writable | Enumerable
		if deletable {
			attrs |= Configurable
		}
		e.object.DefineOwnProperty(name, DataProperty(Undefined, attrs))
		return nil
	}
	if _, exists := e.bindings[name]; !exists {
		e.order = append(e.order, name)
	}
	e.bindings[name] = &Binding{Value: Undefined, Deletable: deletable}
	return nil
}

// CreateImmutableBinding installs an immutable declarative binding (spec
// §4.4), used for a named function expression's own-name binding.
func (e *Environment) CreateImmutableBinding(name string, v Value) {
	if _, exists := e.bindings[name]; !exists {
		e.order = append(e.order, name)
	}
	e.bindings[name] = &Binding{Value: v, Immutable: true}
}

// SetMutableBinding assigns name in this record (spec §4.4
// SetMutableBinding). doThrow controls whether writing an immutable
// binding raises TypeError or fails silently.
func (e *Environment) SetMutableBinding(realm Realm, name string, v Value, doThrow bool) error {
	if e.object != nil {
		return e.object.Put(realm, name, v, doThrow)
	}
	b, ok := e.bindings[name]
	if !ok {
		e.bindings[name] = &Binding{Value: v}
		e.order = append(e.order, name)
		return nil
	}
	if b.Immutable {
		if doThrow {
			return NewTypeError("assignment to constant variable '%s'", name)
		}
		return nil
	}
	b.Value = v
	return nil
}

// GetBindingValue reads name from this record (spec §4.4
// GetBindingValue). doThrow controls whether reading an unresolvable
// reference raises ReferenceError.
func (e *Environment) GetBindingValue(realm Realm, name string, doThrow bool) (Value, error) {
	if e.object != nil {
		if !e.object.HasOwnProperty(name) {
			if doThrow {
				return nil, NewReferenceError("%s is not defined", name)
			}
			return Undefined, nil
		}
		return e.object.Get(realm, name)
	}
	b, ok := e.bindings[name]
	if !ok {
		if doThrow {
			return nil, NewReferenceError("%s is not defined", name)
		}
		return Undefined, nil
	}
	return b.Value, nil
}

// DeleteBinding removes name from this record (spec §4.4 DeleteBinding).
func (e *Environment) DeleteBinding(name string) (bool, error) {
	if e.object != nil {
		return e.object.Delete(name, false)
	}
	b, ok := e.bindings[name]
	if !ok {
		return true, nil
	}
	if !b.Deletable {
		return false, nil
	}
	delete(e.bindings, name)
	for i, n := range e.order {
		if n == name {
			e.order = append(e.order[:i], e.order[i+1:]...)
			break
		}
	}
	return true, nil
}

// ImplicitThisValue returns the `this` value this record supplies when it
// is the innermost environment providing one, or (nil, false) if it does
// not participate (spec §4.4; only `with` object environments do).
func (e *Environment) ImplicitThisValue() (Value, bool) {
	if e.object != nil && e.provideThis {
		return e.object, true
	}
	return nil, false
}

// LookupEnvironment walks the scope chain starting at e and returns the
// innermost environment record that HasBinding(name), or nil if none
// does (the unresolvable-reference case). This is the engine's
// equivalent of the spec's GetIdentifierReference algorithm.
func LookupEnvironment(realm Realm, e *Environment, name string) *Environment {
	for cur := e; cur != nil; cur = cur.outer {
		if cur.HasBinding(realm, name) {
			return cur
		}
	}
	return nil
}

// String renders an environment for diagnostics; not part of the spec.
func (e *Environment) String() string {
	if e.object != nil {
		return fmt.Sprintf("ObjectEnvironment(%s)", e.object.classOrDefault())
	}
	return fmt.Sprintf("DeclarativeEnvironment(%d bindings)", len(e.bindings))
}
