package runtime

import (
	"math"
	"strconv"
	"strings"
)

// ToBoolean implements spec §4.6 ToBoolean: false for undefined, null,
// false, +0, -0, NaN, and "", true otherwise.
func ToBoolean(v Value) bool {
	switch t := v.(type) {
	case nil:
		return false
	case undefinedValue:
		return false
	case nullValue:
		return false
	case *BooleanValue:
		return t.Value
	case *IntegerValue:
		return t.Value != 0
	case *FloatValue:
		return t.Value != 0 && !math.IsNaN(t.Value)
	case *StringValue:
		return t.Value != ""
	case *Object:
		return true
	default:
		return true
	}
}

// ToNumber implements spec §4.6 ToNumber, including the whitespace- and
// sign-tolerant numeric string parsing a compliant strtod performs (an
// Open Question the interpreter resolves by trimming ASCII and Unicode
// space before handing the remainder to strconv.ParseFloat).
func ToNumber(realm Realm, v Value) (float64, error) {
	switch t := v.(type) {
	case nil, undefinedValue:
		return math.NaN(), nil
	case nullValue:
		return 0, nil
	case *BooleanValue:
		if t.Value {
			return 1, nil
		}
		return 0, nil
	case *IntegerValue:
		return float64(t.Value), nil
	case *FloatValue:
		return t.Value, nil
	case *StringValue:
		return stringToNumber(t.Value), nil
	case *Object:
		prim, err := t.DefaultValue(realm, "number")
		if err != nil {
			return 0, err
		}
		return ToNumber(realm, prim)
	default:
		return math.NaN(), nil
	}
}

// stringToNumber implements the ToNumber string grammar: optional
// surrounding whitespace, then a decimal literal, a hex literal, or
// Infinity (with optional sign); an empty (after trimming) string is 0;
// anything else is NaN.
func stringToNumber(s string) float64 {
	t := strings.TrimSpace(s)
	if t == "" {
		return 0
	}
	neg := false
	rest := t
	if len(rest) > 0 && (rest[0] == '+' || rest[0] == '-') {
		neg = rest[0] == '-'
		rest = rest[1:]
	}
	if rest == "Infinity" {
		if neg {
			return math.Inf(-1)
		}
		return math.Inf(1)
	}
	if len(t) > 1 && (strings.HasPrefix(t, "0x") || strings.HasPrefix(t, "0X")) {
		n, err := strconv.ParseUint(t[2:], 16, 64)
		if err != nil {
			return math.NaN()
		}
		return float64(n)
	}
	f, err := strconv.ParseFloat(t, 64)
	if err != nil {
		return math.NaN()
	}
	return f
}

// ToInt32 implements spec §4.6 ToInt32: ToNumber then wraparound modulo
// 2^32, reinterpreted as signed.
func ToInt32(realm Realm, v Value) (int32, error) {
	f, err := ToNumber(realm, v)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) || f == 0 {
		return 0, nil
	}
	n := math.Mod(math.Trunc(f), 4294967296)
	if n < 0 {
		n += 4294967296
	}
	if n >= 2147483648 {
		n -= 4294967296
	}
	return int32(n), nil
}

// ToUint32 implements spec §4.6 ToUint32, used for array length
// maintenance and the bitwise unsigned-shift operator.
func ToUint32(realm Realm, v Value) (uint32, error) {
	f, err := ToNumber(realm, v)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) || f == 0 {
		return 0, nil
	}
	n := math.Mod(math.Trunc(f), 4294967296)
	if n < 0 {
		n += 4294967296
	}
	return uint32(n), nil
}

// ToString implements spec §4.6 ToString.
func ToString(realm Realm, v Value) (string, error) {
	switch t := v.(type) {
	case nil, undefinedValue:
		return "undefined", nil
	case nullValue:
		return "null", nil
	case *BooleanValue:
		if t.Value {
			return "true", nil
		}
		return "false", nil
	case *IntegerValue:
		return strconv.FormatInt(t.Value, 10), nil
	case *FloatValue:
		return formatNumber(t.Value), nil
	case *StringValue:
		return t.Value, nil
	case *Object:
		prim, err := t.DefaultValue(realm, "string")
		if err != nil {
			return "", err
		}
		return ToString(realm, prim)
	default:
		return "", nil
	}
}

// ToObject implements spec §4.6 ToObject, wrapping primitives in their
// corresponding wrapper exotic object using the realm-supplied
// prototypes. undefined and null have no object form and raise
// TypeError.
func ToObject(realm Realm, protos Prototypes, v Value) (*Object, error) {
	switch t := v.(type) {
	case nil, undefinedValue, nullValue:
		return nil, NewTypeError("cannot convert undefined or null to object")
	case *BooleanValue:
		o := NewObject(protos.Boolean)
		o.Class = "Boolean"
		o.Host = &primitiveWrapper{Value: t}
		return o, nil
	case *IntegerValue, *FloatValue:
		o := NewObject(protos.Number)
		o.Class = "Number"
		o.Host = &primitiveWrapper{Value: v}
		return o, nil
	case *StringValue:
		return NewStringObject(protos.String, t.Value), nil
	case *Object:
		return t, nil
	default:
		return nil, NewTypeError("cannot convert value to object")
	}
}

// Prototypes collects the wrapper-object prototypes ToObject needs; the
// evaluator's global object supplies the concrete values at startup.
type Prototypes struct {
	Boolean *Object
	Number  *Object
	String  *Object
}

// primitiveWrapper stores the wrapped primitive for Boolean/Number
// wrapper objects (String uses the richer StringExoticData instead,
// since it also needs numeric-index character access).
type primitiveWrapper struct{ Value Value }

func (p *primitiveWrapper) hostData() {}

// WrappedPrimitive extracts the primitive a Boolean/Number wrapper object
// holds, if o is one.
func WrappedPrimitive(o *Object) (Value, bool) {
	p, ok := o.Host.(*primitiveWrapper)
	if !ok {
		return nil, false
	}
	return p.Value, true
}

// SetWrappedPrimitive turns o into a Boolean/Number wrapper object around v,
// the shape `new Boolean(...)`/`new Number(...)` construct (spec §4.6
// ToObject).
func SetWrappedPrimitive(o *Object, v Value) {
	o.Host = &primitiveWrapper{Value: v}
}

// TypeOf implements spec §4.6 TypeOf (the `typeof` operator's result
// string).
func TypeOf(v Value) string {
	switch t := v.(type) {
	case nil, undefinedValue:
		return "undefined"
	case nullValue:
		return "object"
	case *BooleanValue:
		return "boolean"
	case *IntegerValue, *FloatValue:
		return "number"
	case *StringValue:
		return "string"
	case *Object:
		if IsFunctionObject(t) {
			return "function"
		}
		return "object"
	default:
		return "object"
	}
}

// StrictEquals implements spec §4.6 strict equality (===): same type and
// same value, with the usual NaN and +0/-0 number rules, reference
// identity for objects.
func StrictEquals(a, b Value) bool {
	if IsNumber(a) && IsNumber(b) {
		na, _ := NumberOf(a)
		nb, _ := NumberOf(b)
		return na == nb
	}
	switch at := a.(type) {
	case nil, undefinedValue:
		_, bok := b.(undefinedValue)
		return bok || b == nil
	case nullValue:
		_, bok := b.(nullValue)
		return bok
	case *BooleanValue:
		bt, ok := b.(*BooleanValue)
		return ok && at.Value == bt.Value
	case *StringValue:
		bt, ok := b.(*StringValue)
		return ok && at.Value == bt.Value
	case *Object:
		bt, ok := b.(*Object)
		return ok && at == bt
	}
	return false
}

// AbstractEquals implements spec §4.6 abstract equality (==), including
// the cross-type numeric/string/boolean coercions and object-to-primitive
// coercion, per the ES3 algorithm.
func AbstractEquals(realm Realm, a, b Value) (bool, error) {
	aIsNullish := isNullish(a)
	bIsNullish := isNullish(b)
	if aIsNullish || bIsNullish {
		return aIsNullish && bIsNullish, nil
	}
	if IsNumber(a) && IsNumber(b) {
		return StrictEquals(a, b), nil
	}
	_, aStr := a.(*StringValue)
	_, bStr := b.(*StringValue)
	if aStr && bStr {
		return StrictEquals(a, b), nil
	}
	if IsNumber(a) && bStr {
		nb, err := ToNumber(realm, b)
		if err != nil {
			return false, err
		}
		na, _ := NumberOf(a)
		return na == nb, nil
	}
	if aStr && IsNumber(b) {
		na, err := ToNumber(realm, a)
		if err != nil {
			return false, err
		}
		nb, _ := NumberOf(b)
		return na == nb, nil
	}
	if _, ok := a.(*BooleanValue); ok {
		na, err := ToNumber(realm, a)
		if err != nil {
			return false, err
		}
		return AbstractEquals(realm, Float(na), b)
	}
	if _, ok := b.(*BooleanValue); ok {
		nb, err := ToNumber(realm, b)
		if err != nil {
			return false, err
		}
		return AbstractEquals(realm, a, Float(nb))
	}
	aObj, aIsObj := a.(*Object)
	bObj, bIsObj := b.(*Object)
	if (IsNumber(a) || aStr) && bIsObj {
		prim, err := bObj.DefaultValue(realm, "")
		if err != nil {
			return false, err
		}
		return AbstractEquals(realm, a, prim)
	}
	if aIsObj && (IsNumber(b) || bStr) {
		prim, err := aObj.DefaultValue(realm, "")
		if err != nil {
			return false, err
		}
		return AbstractEquals(realm, prim, b)
	}
	if aIsObj && bIsObj {
		return aObj == bObj, nil
	}
	return false, nil
}

func isNullish(v Value) bool {
	if v == nil {
		return true
	}
	switch v.(type) {
	case undefinedValue, nullValue:
		return true
	}
	return false
}
