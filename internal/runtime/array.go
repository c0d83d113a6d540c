package runtime

import (
	"strconv"
)

// ArrayExoticData marks an Object as array-exotic (spec §3): writes to
// numeric-index properties promote the own "length" property, and writes
// to "length" truncate (deleting indices >= the new length) or merely
// reserve capacity.
type ArrayExoticData struct{}

func (a *ArrayExoticData) hostData() {}

// IsArrayIndex reports whether name is a canonical array index string
// (spec §3: a non-negative integer below 2^32-1, written without leading
// zeros except "0" itself) and returns its numeric value.
func IsArrayIndex(name string) (uint32, bool) {
	if name == "" {
		return 0, false
	}
	if name == "0" {
		return 0, true
	}
	if name[0] == '0' {
		return 0, false
	}
	for _, c := range name {
		if c < '0' || c > '9' {
			return 0, false
		}
	}
	n, err := strconv.ParseUint(name, 10, 64)
	if err != nil || n >= 1<<32-1 {
		return 0, false
	}
	return uint32(n), true
}

// NewArray creates an array-exotic object with the given prototype and an
// own, non-enumerable "length" property initialized to n.
func NewArray(proto *Object, n uint32) *Object {
	o := NewObject(proto)
	o.Host = &ArrayExoticData{}
	o.Class = "Array"
	o.defineOwnProperty("length", DataProperty(Float(float64(n)), Writable))
	return o
}

// arrayAfterPut implements the array-exotic half of Put (spec §3):
// writing a canonical index name bumps "length" when necessary; writing
// "length" itself truncates any own indices at or above the new value.
func arrayAfterPut(realm Realm, o *Object, _ *ArrayExoticData, name string, v Value, doThrow bool) error {
	if name == "length" {
		n, err := ToUint32(realm, v)
		if err != nil {
			return err
		}
		for _, existing := range o.props.names() {
			idx, ok := IsArrayIndex(existing)
			if ok && idx >= n {
				o.props.delete(existing)
			}
		}
		if lp, ok := o.props.get("length"); ok {
			lp.Value = Float(float64(n))
		}
		return nil
	}
	idx, ok := IsArrayIndex(name)
	if !ok {
		return nil
	}
	lp, ok := o.props.get("length")
	if !ok {
		return nil
	}
	cur, _ := NumberOf(lp.Value)
	if float64(idx) >= cur {
		lp.Value = Float(float64(idx) + 1)
	}
	return nil
}

// ArrayLength reads the current numeric value of an array-exotic object's
// "length" property, defaulting to 0 if absent or non-numeric.
func ArrayLength(o *Object) uint32 {
	p, ok := o.OwnProperty("length")
	if !ok {
		return 0
	}
	n, _ := NumberOf(p.Value)
	if n < 0 {
		return 0
	}
	return uint32(n)
}

// IsArray reports whether v is an array-exotic object.
func IsArray(v Value) bool {
	o, ok := v.(*Object)
	if !ok {
		return false
	}
	_, ok = o.Host.(*ArrayExoticData)
	return ok
}

// JoinArrayIndices returns the entries of names that are canonical array
// indices, in their given order; not part of the object model proper, but
// grounded here since it depends only on IsArrayIndex.
func JoinArrayIndices(names []string) []string {
	var out []string
	for _, n := range names {
		if _, ok := IsArrayIndex(n); ok {
			out = append(out, n)
		}
	}
	return out
}

// formatIndex returns the canonical string form of a numeric array index.
func formatIndex(i uint32) string {
	return strconv.FormatUint(uint64(i), 10)
}
