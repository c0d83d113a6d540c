package runtime

import (
	"math"
	"testing"
)

// ============================================================================
// ToBoolean (spec §4.6)
// ============================================================================

func TestToBoolean(t *testing.T) {
	tests := []struct {
		name string
		in   Value
		want bool
	}{
		{"undefined", Undefined, false},
		{"null", Null, false},
		{"false", False, false},
		{"true", True, true},
		{"zero int", Int(0), false},
		{"nonzero int", Int(1), true},
		{"negative zero float", Float(math.Copysign(0, -1)), false},
		{"NaN", Float(math.NaN()), false},
		{"nonzero float", Float(1.5), true},
		{"empty string", Str(""), false},
		{"nonempty string", Str("0"), true},
		{"object", NewObject(nil), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToBoolean(tt.in); got != tt.want {
				t.Errorf("ToBoolean(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

// ============================================================================
// ToNumber (spec §4.6)
// ============================================================================

func TestToNumber(t *testing.T) {
	tests := []struct {
		name    string
		in      Value
		want    float64
		wantNaN bool
	}{
		{"undefined is NaN", Undefined, 0, true},
		{"null is zero", Null, 0, false},
		{"true is one", True, 1, false},
		{"false is zero", False, 0, false},
		{"integer passthrough", Int(42), 42, false},
		{"float passthrough", Float(3.5), 3.5, false},
		{"numeric string", Str("  42 "), 42, false},
		{"signed numeric string", Str("-3.5"), -3.5, false},
		{"empty string is zero", Str("   "), 0, false},
		{"garbage string is NaN", Str("not a number"), 0, true},
		{"hex string", Str("0x10"), 16, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToNumber(fakeRealm{}, tt.in)
			if err != nil {
				t.Fatalf("ToNumber returned error: %v", err)
			}
			if tt.wantNaN {
				if !math.IsNaN(got) {
					t.Errorf("ToNumber(%v) = %v, want NaN", tt.in, got)
				}
				return
			}
			if got != tt.want {
				t.Errorf("ToNumber(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

// ============================================================================
// ToString (spec §4.6, §8 number round-trip property)
// ============================================================================

func TestToString(t *testing.T) {
	tests := []struct {
		name string
		in   Value
		want string
	}{
		{"undefined", Undefined, "undefined"},
		{"null", Null, "null"},
		{"true", True, "true"},
		{"false", False, "false"},
		{"integer", Int(42), "42"},
		{"NaN", Float(math.NaN()), "NaN"},
		{"positive infinity", Float(math.Inf(1)), "Infinity"},
		{"negative infinity", Float(math.Inf(-1)), "-Infinity"},
		{"string passthrough", Str("hi"), "hi"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToString(fakeRealm{}, tt.in)
			if err != nil {
				t.Fatalf("ToString returned error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ToString(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNumberRoundTripViaToStringToNumber(t *testing.T) {
	for _, n := range []float64{0, 1, -1, 42, 3.5, 1e21, -1e-7} {
		s, err := ToString(fakeRealm{}, Float(n))
		if err != nil {
			t.Fatalf("ToString(%v) returned error: %v", n, err)
		}
		back, err := ToNumber(fakeRealm{}, Str(s))
		if err != nil {
			t.Fatalf("ToNumber(%q) returned error: %v", s, err)
		}
		if back != n {
			t.Errorf("round trip %v -> %q -> %v, want %v", n, s, back, n)
		}
	}
}

// ============================================================================
// ToObject (spec §4.6)
// ============================================================================

func TestToObjectWrapsPrimitives(t *testing.T) {
	protos := Prototypes{Boolean: NewObject(nil), Number: NewObject(nil), String: NewObject(nil)}

	o, err := ToObject(fakeRealm{}, protos, Int(5))
	if err != nil {
		t.Fatalf("ToObject(int) returned error: %v", err)
	}
	if o.Proto != protos.Number {
		t.Errorf("wrapped Number object has wrong prototype")
	}

	o, err = ToObject(fakeRealm{}, protos, Str("hi"))
	if err != nil {
		t.Fatalf("ToObject(string) returned error: %v", err)
	}
	if _, ok := o.Host.(*StringExoticData); !ok {
		t.Errorf("wrapped String object is not string-exotic")
	}
}

func TestToObjectRejectsNullish(t *testing.T) {
	protos := Prototypes{}
	if _, err := ToObject(fakeRealm{}, protos, Undefined); err == nil {
		t.Errorf("ToObject(undefined) did not error")
	}
	if _, err := ToObject(fakeRealm{}, protos, Null); err == nil {
		t.Errorf("ToObject(null) did not error")
	}
}

// ============================================================================
// TypeOf (spec §4.6, drives the `typeof` operator)
// ============================================================================

func TestTypeOf(t *testing.T) {
	tests := []struct {
		name string
		in   Value
		want string
	}{
		{"undefined", Undefined, "undefined"},
		{"null is object", Null, "object"},
		{"boolean", True, "boolean"},
		{"integer", Int(1), "number"},
		{"float", Float(1.5), "number"},
		{"string", Str("x"), "string"},
		{"plain object", NewObject(nil), "object"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TypeOf(tt.in); got != tt.want {
				t.Errorf("TypeOf(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

// ============================================================================
// Strict and abstract equality (spec §4.6, §8 NaN/+0/-0 property)
// ============================================================================

func TestStrictEqualsNaNAndZero(t *testing.T) {
	if StrictEquals(Float(math.NaN()), Float(math.NaN())) {
		t.Errorf("NaN === NaN should be false")
	}
	if !StrictEquals(Float(0), Float(math.Copysign(0, -1))) {
		t.Errorf("+0 === -0 should be true")
	}
	if !StrictEquals(Int(1), Float(1)) {
		t.Errorf("1 === 1.0 (integer vs float) should be true")
	}
	a := NewObject(nil)
	b := NewObject(nil)
	if StrictEquals(a, b) {
		t.Errorf("distinct objects should not be strictly equal")
	}
	if !StrictEquals(a, a) {
		t.Errorf("an object should be strictly equal to itself")
	}
}

func TestAbstractEqualsNullUndefined(t *testing.T) {
	eq, err := AbstractEquals(fakeRealm{}, Null, Undefined)
	if err != nil {
		t.Fatalf("AbstractEquals returned error: %v", err)
	}
	if !eq {
		t.Errorf("null == undefined should be true")
	}
	eq, err = AbstractEquals(fakeRealm{}, Null, Int(0))
	if err != nil {
		t.Fatalf("AbstractEquals returned error: %v", err)
	}
	if eq {
		t.Errorf("null == 0 should be false")
	}
}

func TestAbstractEqualsStringNumberCoercion(t *testing.T) {
	eq, err := AbstractEquals(fakeRealm{}, Str("42"), Int(42))
	if err != nil {
		t.Fatalf("AbstractEquals returned error: %v", err)
	}
	if !eq {
		t.Errorf("\"42\" == 42 should be true")
	}
}

func TestAbstractEqualsBooleanCoercion(t *testing.T) {
	eq, err := AbstractEquals(fakeRealm{}, True, Int(1))
	if err != nil {
		t.Fatalf("AbstractEquals returned error: %v", err)
	}
	if !eq {
		t.Errorf("true == 1 should be true")
	}
}
