package runtime

import "testing"

// ============================================================================
// IsArrayIndex (spec §4.3 array-index grammar)
// ============================================================================

func TestIsArrayIndex(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		wantIdx uint32
		wantOk  bool
	}{
		{"zero", "0", 0, true},
		{"ordinary index", "42", 42, true},
		{"leading zero rejected", "01", 0, false},
		{"non-digit rejected", "1a", 0, false},
		{"empty rejected", "", 0, false},
		{"max index minus one", "4294967294", 4294967294, true},
		{"at the 2^32-1 boundary is rejected", "4294967295", 0, false},
		{"negative-looking string rejected", "-1", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx, ok := IsArrayIndex(tt.in)
			if ok != tt.wantOk {
				t.Fatalf("IsArrayIndex(%q) ok = %v, want %v", tt.in, ok, tt.wantOk)
			}
			if ok && idx != tt.wantIdx {
				t.Errorf("IsArrayIndex(%q) = %v, want %v", tt.in, idx, tt.wantIdx)
			}
		})
	}
}

// ============================================================================
// Array-exotic length maintenance (spec §3, §8 "new Array(n)" invariant)
// ============================================================================

func TestNewArrayLengthAndNoIndices(t *testing.T) {
	a := NewArray(nil, 5)
	if got := ArrayLength(a); got != 5 {
		t.Errorf("ArrayLength(new Array(5)) = %v, want 5", got)
	}
	if names := a.EnumerableOwnNames(); len(names) != 0 {
		t.Errorf("new Array(5) has enumerable names %v, want none", names)
	}
}

func TestArrayIndexWritePromotesLength(t *testing.T) {
	a := NewArray(nil, 0)
	if err := a.Put(fakeRealm{}, "0", Int(1), true); err != nil {
		t.Fatalf("Put(0) returned error: %v", err)
	}
	if err := a.Put(fakeRealm{}, "1", Int(2), true); err != nil {
		t.Fatalf("Put(1) returned error: %v", err)
	}
	if err := a.Put(fakeRealm{}, "2", Int(3), true); err != nil {
		t.Fatalf("Put(2) returned error: %v", err)
	}
	if got := ArrayLength(a); got != 3 {
		t.Errorf("ArrayLength after 3 pushes = %v, want 3", got)
	}
}

func TestArrayLengthWriteTruncatesIndices(t *testing.T) {
	a := NewArray(nil, 0)
	for i := 0; i < 5; i++ {
		a.Put(fakeRealm{}, formatIndex(uint32(i)), Int(int64(i)), true)
	}
	if err := a.Put(fakeRealm{}, "length", Int(2), true); err != nil {
		t.Fatalf("Put(length, 2) returned error: %v", err)
	}
	if got := ArrayLength(a); got != 2 {
		t.Errorf("ArrayLength after truncation = %v, want 2", got)
	}
	for _, idx := range []string{"2", "3", "4"} {
		if a.HasOwnProperty(idx) {
			t.Errorf("index %q survived truncation", idx)
		}
	}
	for _, idx := range []string{"0", "1"} {
		if !a.HasOwnProperty(idx) {
			t.Errorf("index %q was wrongly truncated", idx)
		}
	}
}

func TestIsArrayDistinguishesArraysFromPlainObjects(t *testing.T) {
	if IsArray(NewObject(nil)) {
		t.Errorf("a plain object reported as array")
	}
	if !IsArray(NewArray(nil, 0)) {
		t.Errorf("an array-exotic object not reported as array")
	}
	if IsArray(Int(1)) {
		t.Errorf("a non-object value reported as array")
	}
}
