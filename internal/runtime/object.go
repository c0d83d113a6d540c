package runtime

import "fmt"

// HostData discriminates the exotic behaviors an Object may have (spec
// §3: "a single host_data Value slot"). Exactly one concrete type
// implements this per Object; a nil HostData means an ordinary object.
type HostData interface {
	hostData()
}

// Object is the interpreter's universal heap value: a prototype pointer,
// an insertion-ordered property map, an extensibility flag, and a
// host-data slot that discriminates Function/Array/Date/RegExp/Context
// exotic behavior (spec §3).
type Object struct {
	Proto      *Object
	Extensible bool
	Host       HostData

	props *propertyMap

	// Class is a diagnostic label ("Object", "Array", "Function", ...)
	// used by Object.prototype.toString and error messages; it has no
	// effect on property resolution.
	Class string
}

func (o *Object) Kind() string { return "OBJECT" }

func (o *Object) String() string {
	return fmt.Sprintf("[object %s]", o.classOrDefault())
}

func (o *Object) classOrDefault() string {
	if o.Class != "" {
		return o.Class
	}
	return "Object"
}

// NewObject creates a plain, extensible object with the given prototype
// (which may be nil).
func NewObject(proto *Object) *Object {
	return &Object{Proto: proto, Extensible: true, props: newPropertyMap(), Class: "Object"}
}

// OwnProperty returns the Property stored directly on o, ignoring the
// prototype chain.
func (o *Object) OwnProperty(name string) (*Property, bool) {
	return o.props.get(name)
}

// HasOwnProperty reports whether o has an own property named name.
func (o *Object) HasOwnProperty(name string) bool {
	_, ok := o.props.get(name)
	return ok
}

// GetProperty walks o then o.Proto then up the prototype chain, returning
// the first Property found (spec §4.2 GetProperty).
func (o *Object) GetProperty(name string) (*Property, *Object) {
	for cur := o; cur != nil; cur = cur.Proto {
		if p, ok := cur.props.get(name); ok {
			return p, cur
		}
	}
	return nil, nil
}

// OwnPropertyNames returns o's own property names in insertion order.
func (o *Object) OwnPropertyNames() []string {
	return o.props.names()
}

// EnumerableOwnNames returns o's own enumerable property names in
// insertion order. spec §9(a) restricts for-in (and similar enumeration)
// to own properties only, not inherited ones.
func (o *Object) EnumerableOwnNames() []string {
	var out []string
	for _, name := range o.props.names() {
		if p, _ := o.props.get(name); p.Attrs.Has(Enumerable) {
			out = append(out, name)
		}
	}
	return out
}

// defineOwnProperty installs p as an own property, bypassing the
// CanPut/writability checks that Put performs. Used for object/array
// literal construction and internal setup of built-ins.
func (o *Object) defineOwnProperty(name string, p *Property) {
	o.props.set(name, p)
}

// DefineDataProperty installs an own data property with DefaultDataAttrs.
// Used throughout builtins construction (spec §4.7).
func (o *Object) DefineDataProperty(name string, v Value) {
	o.defineOwnProperty(name, DataProperty(v, DefaultDataAttrs))
}

// DefineOwnProperty installs an own Property with explicit attributes,
// as used by Object.defineProperty.
func (o *Object) DefineOwnProperty(name string, p *Property) {
	o.defineOwnProperty(name, p)
}

// DefineHidden installs a non-enumerable, writable, configurable data
// property; the conventional shape for built-in methods and constructors
// hung off prototypes so `for...in` does not surface them.
func (o *Object) DefineHidden(name string, v Value) {
	o.defineOwnProperty(name, DataProperty(v, Writable|Configurable))
}

// DefineConstant installs a non-writable, non-enumerable, non-configurable
// property, for things like Math.PI and Number.MAX_VALUE.
func (o *Object) DefineConstant(name string, v Value) {
	o.defineOwnProperty(name, DataProperty(v, 0))
}
