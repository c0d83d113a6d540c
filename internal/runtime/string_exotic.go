package runtime

import "unicode/utf8"

// StringExoticData marks a String wrapper object (spec §3): numeric-index
// property names resolve to individual characters of the wrapped string,
// and "length" is a non-writable own property fixed at construction.
type StringExoticData struct {
	Value string
	runes []rune
}

func (s *StringExoticData) hostData() {}

// NewStringObject creates a String-exotic wrapper object for s.
func NewStringObject(proto *Object, s string) *Object {
	o := NewObject(proto)
	data := &StringExoticData{Value: s, runes: []rune(s)}
	o.Host = data
	o.Class = "String"
	o.defineOwnProperty("length", DataProperty(Int(int64(len(data.runes))), 0))
	return o
}

// stringExoticGet resolves String-exotic own properties that are not
// stored in the ordinary property map: numeric character indices. It
// reports handled=false for any other name, letting the caller fall back
// to ordinary Get.
func stringExoticGet(s *StringExoticData, name string) (v Value, handled bool) {
	idx, ok := IsArrayIndex(name)
	if !ok {
		return nil, false
	}
	if int(idx) >= len(s.runes) {
		return Undefined, true
	}
	return Str(string(s.runes[idx])), true
}

// StringCharAt returns the character (as a one-rune string) at position i
// of s, or "" if out of range, per spec §4.7 String.prototype.charAt.
func StringCharAt(s string, i int) string {
	runes := []rune(s)
	if i < 0 || i >= len(runes) {
		return ""
	}
	return string(runes[i])
}

// StringCharCodeAt returns the UTF-16 code unit semantics approximated by
// this engine's rune-based string model: the Unicode code point at
// position i. Non-BMP characters are represented as a single element
// rather than a surrogate pair.
func StringCharCodeAt(s string, i int) (float64, bool) {
	runes := []rune(s)
	if i < 0 || i >= len(runes) {
		return 0, false
	}
	return float64(runes[i]), true
}

// RuneLen returns the number of Unicode code points in s, the unit used
// for String "length" and index access throughout this engine.
func RuneLen(s string) int {
	return utf8.RuneCountInString(s)
}
