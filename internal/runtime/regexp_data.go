package runtime

import "regexp"

// RegExpData is the host-data payload for RegExp instances (spec §4.7).
// The actual matching engine is an external collaborator represented by
// Go's regexp package (see internal/builtins/regexp.go), per the
// Non-goal that treats the pattern-matching engine as out of scope for
// this interpreter's own code.
type RegExpData struct {
	Source     string
	Global     bool
	IgnoreCase bool
	Multiline  bool
	Compiled   *regexp.Regexp
}

func (r *RegExpData) hostData() {}

// NewRegExpObject creates a RegExp instance wrapping a compiled pattern,
// installing the own "source"/"global"/"ignoreCase"/"multiline" constant
// properties and a writable "lastIndex" used by the global-search cursor
// (spec §4.7).
func NewRegExpObject(proto *Object, source string, global, ignoreCase, multiline bool, compiled *regexp.Regexp) *Object {
	o := NewObject(proto)
	o.Host = &RegExpData{Source: source, Global: global, IgnoreCase: ignoreCase, Multiline: multiline, Compiled: compiled}
	o.Class = "RegExp"
	o.defineOwnProperty("source", DataProperty(Str(source), 0))
	o.defineOwnProperty("global", DataProperty(Bool(global), 0))
	o.defineOwnProperty("ignoreCase", DataProperty(Bool(ignoreCase), 0))
	o.defineOwnProperty("multiline", DataProperty(Bool(multiline), 0))
	o.defineOwnProperty("lastIndex", DataProperty(Int(0), Writable))
	return o
}

// AsRegExpData extracts the RegExpData host payload from v, if v is a
// RegExp instance.
func AsRegExpData(v Value) (*RegExpData, bool) {
	o, ok := v.(*Object)
	if !ok {
		return nil, false
	}
	r, ok := o.Host.(*RegExpData)
	return r, ok
}
