package runtime

import "testing"

// ============================================================================
// String-exotic numeric index access (spec §3 String-exotic)
// ============================================================================

func TestStringExoticObjectIndexAndLength(t *testing.T) {
	o := NewStringObject(nil, "abc")

	lp, ok := o.OwnProperty("length")
	if !ok {
		t.Fatalf("String wrapper object has no own length property")
	}
	if lp.Attrs.Has(Writable) {
		t.Errorf("length property should be non-writable")
	}
	iv := lp.Value.(*IntegerValue)
	if iv.Value != 3 {
		t.Errorf("length = %v, want 3", iv.Value)
	}

	v, err := o.Get(fakeRealm{}, "1")
	if err != nil {
		t.Fatalf("Get(1) returned error: %v", err)
	}
	if sv := v.(*StringValue); sv.Value != "b" {
		t.Errorf("o[1] = %v, want \"b\"", v)
	}

	v, err = o.Get(fakeRealm{}, "9")
	if err != nil {
		t.Fatalf("Get(9) returned error: %v", err)
	}
	if v != Undefined {
		t.Errorf("out-of-range index = %v, want undefined", v)
	}
}

func TestStringCharAtAndCharCodeAt(t *testing.T) {
	if got := StringCharAt("abc", 1); got != "b" {
		t.Errorf("StringCharAt(abc, 1) = %q, want %q", got, "b")
	}
	if got := StringCharAt("abc", 10); got != "" {
		t.Errorf("StringCharAt(abc, 10) = %q, want empty", got)
	}

	code, ok := StringCharCodeAt("abc", 1)
	if !ok || code != 98 {
		t.Errorf("StringCharCodeAt(abc, 1) = (%v, %v), want (98, true)", code, ok)
	}
	if _, ok := StringCharCodeAt("abc", -1); ok {
		t.Errorf("StringCharCodeAt with negative index reported ok")
	}
}
