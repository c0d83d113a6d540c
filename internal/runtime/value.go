// Package runtime implements the core value and object model of the
// interpreter: the seven-variant tagged Value union, the prototype-based
// Object, Property records with attribute flags, and the declarative and
// object-backed Environment chain (spec.md §3, §4.1-§4.4).
package runtime

import "strconv"

// Value is implemented by every runtime value. The seven variants named in
// spec §3 are Undefined, Null, *BooleanValue, *IntegerValue, *FloatValue,
// *StringValue, and *Object.
type Value interface {
	// Kind returns the internal type tag (e.g. "INTEGER", "STRING").
	// Conversions.TypeOf (spec §4.6) maps several kinds onto the same
	// ECMAScript typeof string (INTEGER and FLOAT both report "number").
	Kind() string
	// String returns a debug representation; ECMAScript ToString
	// semantics live in conversions.go, not here.
	String() string
}

// Undefined is the single value of the Undefined type.
type undefinedValue struct{}

func (undefinedValue) Kind() string   { return "UNDEFINED" }
func (undefinedValue) String() string { return "undefined" }

// Undefined is the canonical undefined singleton (spec §6: init()
// "initialize...canonical singletons (undefined, null, true, false)").
var Undefined Value = undefinedValue{}

// Null is the single value of the Null type.
type nullValue struct{}

func (nullValue) Kind() string   { return "NULL" }
func (nullValue) String() string { return "null" }

// Null is the canonical null singleton.
var Null Value = nullValue{}

// BooleanValue is the Boolean type.
type BooleanValue struct {
	Value bool
}

func (b *BooleanValue) Kind() string { return "BOOLEAN" }
func (b *BooleanValue) String() string {
	if b.Value {
		return "true"
	}
	return "false"
}

// True and False are the canonical boolean singletons.
var (
	True  Value = &BooleanValue{Value: true}
	False Value = &BooleanValue{Value: false}
)

// Bool returns the canonical True or False singleton for v.
func Bool(v bool) Value {
	if v {
		return True
	}
	return False
}

// IntegerValue is the small-integer variant of the Number type, for
// integral values that fit exactly in an int64, so that ToString/arithmetic
// can skip floating-point formatting (spec §3: "integer (fits in a
// pointer-sized small-int)"). Integral numbers can also be held as a
// FloatValue; array lengths, for one, are stored that way.
type IntegerValue struct {
	Value int64
}

func (i *IntegerValue) Kind() string   { return "INTEGER" }
func (i *IntegerValue) String() string { return strconv.FormatInt(i.Value, 10) }

// Int creates an IntegerValue.
func Int(v int64) Value { return &IntegerValue{Value: v} }

// FloatValue is the double variant of the Number type. Every value that
// does not fit exactly in an int64 (including NaN and ±Infinity) uses it.
type FloatValue struct {
	Value float64
}

func (f *FloatValue) Kind() string   { return "FLOAT" }
func (f *FloatValue) String() string { return formatNumber(f.Value) }

// Float creates a FloatValue.
func Float(v float64) Value { return &FloatValue{Value: v} }

// StringValue is an interned, immutable string (spec §3 "string
// (reference to an immutable string object)"; see strings.go for the
// interning table).
type StringValue struct {
	Value string
}

func (s *StringValue) Kind() string   { return "STRING" }
func (s *StringValue) String() string { return s.Value }

// Str interns and returns a StringValue for s.
func Str(s string) Value { return Intern(s) }

// IsNumber reports whether v is an IntegerValue or FloatValue.
func IsNumber(v Value) bool {
	switch v.(type) {
	case *IntegerValue, *FloatValue:
		return true
	default:
		return false
	}
}

// NumberOf returns v's numeric payload as a float64, for IntegerValue and
// FloatValue only.
func NumberOf(v Value) (float64, bool) {
	switch n := v.(type) {
	case *IntegerValue:
		return float64(n.Value), true
	case *FloatValue:
		return n.Value, true
	default:
		return 0, false
	}
}
