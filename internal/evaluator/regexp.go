package evaluator

import (
	"regexp"

	"github.com/kiidax/nablajs/internal/runtime"
)

// newRegExp compiles a regular-expression literal via Go's RE2-based
// regexp package (the external pattern-matching engine this
// interpreter treats as an out-of-scope collaborator). The RegExp
// constructor in internal/builtins/regexp.go compiles its patterns
// separately.
func (in *Interpreter) newRegExp(pattern, flags string) (runtime.Value, *Completion) {
	global := false
	ignoreCase := false
	multiline := false
	for _, f := range flags {
		switch f {
		case 'g':
			global = true
		case 'i':
			ignoreCase = true
		case 'm':
			multiline = true
		}
	}
	goPattern := translateRegexFlags(pattern, ignoreCase, multiline)
	compiled, err := regexp.Compile(goPattern)
	if err != nil {
		return nil, in.throwSyntaxError("invalid regular expression: %s", err.Error())
	}
	obj := runtime.NewRegExpObject(in.Builtins.RegExpProto, pattern, global, ignoreCase, multiline, compiled)
	return obj, nil
}

func translateRegexFlags(pattern string, ignoreCase, multiline bool) string {
	prefix := ""
	if ignoreCase {
		prefix += "i"
	}
	if multiline {
		prefix += "m"
	}
	if prefix == "" {
		return pattern
	}
	return "(?" + prefix + ")" + pattern
}
