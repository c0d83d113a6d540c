package runtime

// Get implements spec §4.2 Get: undefined for a missing property, the
// stored value for a data property, the getter's result for an accessor
// property (called with this=o), and the string-exotic numeric-index
// shortcut for String wrapper objects.
func (o *Object) Get(realm Realm, name string) (Value, error) {
	if s, ok := o.Host.(*StringExoticData); ok {
		if v, handled := stringExoticGet(s, name); handled {
			return v, nil
		}
	}
	p, _ := o.GetProperty(name)
	if p == nil {
		return Undefined, nil
	}
	if p.IsAccessor() {
		if p.Getter == nil {
			return Undefined, nil
		}
		return p.Getter.Call(realm, o, nil)
	}
	return p.Value, nil
}

// canPut reports whether a Put of name on o is permitted, per the
// CanPut half of spec §4.2's CanPut/Put pair, and returns the property
// (if any) found along the prototype chain plus whether it is an own
// property.
func (o *Object) canPut(name string) (prop *Property, owner *Object, ok bool) {
	p, owner := o.GetProperty(name)
	if p == nil {
		return nil, nil, o.Extensible
	}
	if p.IsAccessor() {
		return p, owner, p.Setter != nil
	}
	return p, owner, p.Attrs.Has(Writable)
}

// Put implements spec §4.2 Put: overwrite an own writable data property;
// invoke an (inherited or own) accessor's setter on o; shadow an
// inherited writable data property with a new own property; fail (and
// optionally raise TypeError per doThrow) for non-writable properties or
// writes to a non-extensible object. Array-length maintenance (§3) is
// applied afterward when o is array-exotic.
func (o *Object) Put(realm Realm, name string, v Value, doThrow bool) error {
	if own, ok := o.props.get(name); ok && !own.IsAccessor() {
		if !own.Attrs.Has(Writable) {
			if doThrow {
				return NewTypeError("cannot assign to read only property '%s'", name)
			}
			return nil
		}
		own.Value = v
		return o.afterPut(realm, name, v, doThrow)
	}

	p, owner, ok := o.canPut(name)
	if !ok {
		if doThrow {
			if p != nil {
				return NewTypeError("cannot assign to read only property '%s'", name)
			}
			return NewTypeError("object is not extensible")
		}
		return nil
	}
	if p != nil && p.IsAccessor() {
		_, err := p.Setter.Call(realm, o, []Value{v})
		return err
	}
	if p != nil && owner != o {
		// Shadow an inherited writable data property with a new own one.
		o.defineOwnProperty(name, DataProperty(v, DefaultDataAttrs))
		return o.afterPut(realm, name, v, doThrow)
	}
	// No existing property anywhere: create a new own data property.
	o.defineOwnProperty(name, DataProperty(v, DefaultDataAttrs))
	return o.afterPut(realm, name, v, doThrow)
}

// afterPut applies array-exotic length maintenance after an ordinary
// property write lands.
func (o *Object) afterPut(realm Realm, name string, v Value, doThrow bool) error {
	if arr, ok := o.Host.(*ArrayExoticData); ok {
		return arrayAfterPut(realm, o, arr, name, v, doThrow)
	}
	return nil
}

// Delete implements spec §4.2 Delete: removes a Configurable own
// property; for a non-configurable one, fails silently or raises
// TypeError depending on doThrow.
func (o *Object) Delete(name string, doThrow bool) (bool, error) {
	p, ok := o.props.get(name)
	if !ok {
		return true, nil
	}
	if !p.Attrs.Has(Configurable) {
		if doThrow {
			return false, NewTypeError("property '%s' is non-configurable and cannot be deleted", name)
		}
		return false, nil
	}
	o.props.delete(name)
	return true, nil
}

// DefaultValue implements spec §4.2 DefaultValue: tries toString then
// valueOf (or the reverse for hint=="number"), raising TypeError if
// neither returns a primitive. Date instances default to "string" hint
// regardless of the caller's request, per spec §4.2.
func (o *Object) DefaultValue(realm Realm, hint string) (Value, error) {
	if _, isDate := o.Host.(*DateData); isDate {
		hint = "string"
	}
	if hint == "" {
		hint = "number"
	}
	order := []string{"valueOf", "toString"}
	if hint == "string" {
		order = []string{"toString", "valueOf"}
	}
	for _, name := range order {
		p, _ := o.GetProperty(name)
		if p == nil {
			continue
		}
		fn, err := o.Get(realm, name)
		if err != nil {
			return nil, err
		}
		fnObj, ok := fn.(*Object)
		if !ok {
			continue
		}
		if _, ok := fnObj.Host.(*FunctionRecord); !ok {
			continue
		}
		result, err := fnObj.Call(realm, o, nil)
		if err != nil {
			return nil, err
		}
		if !IsObjectValue(result) {
			return result, nil
		}
	}
	return nil, NewTypeError("cannot convert object to primitive value")
}

// IsObjectValue reports whether v is an *Object.
func IsObjectValue(v Value) bool {
	_, ok := v.(*Object)
	return ok
}
