package builtins

import (
	"regexp"

	"github.com/kiidax/nablajs/internal/evaluator"
	"github.com/kiidax/nablajs/internal/runtime"
)

// compileRegExp parses a JS-style g/i/m flag string and compiles pattern
// with Go's RE2-based regexp package, the external pattern-matching
// engine this interpreter treats as an out-of-scope collaborator (see
// internal/evaluator/regexp.go, which compiles literals the same way).
func compileRegExp(in *evaluator.Interpreter, pattern, flags string) (*runtime.Object, error) {
	global, ignoreCase, multiline := false, false, false
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
	goPattern := pattern
	prefix := ""
	if ignoreCase {
		prefix += "i"
	}
	if multiline {
		prefix += "m"
	}
	if prefix != "" {
		goPattern = "(?" + prefix + ")" + pattern
	}
	compiled, err := regexp.Compile(goPattern)
	if err != nil {
		return nil, runtime.NewSyntaxError("invalid regular expression: %s", err.Error())
	}
	return runtime.NewRegExpObject(in.Builtins.RegExpProto, pattern, global, ignoreCase, multiline, compiled), nil
}

// installRegExp builds RegExp.prototype and the RegExp constructor (spec
// §4.7 RegExp).
func installRegExp(in *evaluator.Interpreter, proto *runtime.Object) *runtime.Object {
	method(in, proto, "toString", 0, func(realm runtime.Realm, args []runtime.Value) (runtime.Value, error) {
		re, ok := runtime.AsRegExpData(thisOf(args))
		if !ok {
			return nil, runtime.NewTypeError("RegExp.prototype.toString called on incompatible receiver")
		}
		flags := ""
		if re.Global {
			flags += "g"
		}
		if re.IgnoreCase {
			flags += "i"
		}
		if re.Multiline {
			flags += "m"
		}
		return runtime.Str("/" + re.Source + "/" + flags), nil
	})

	method(in, proto, "test", 1, func(realm runtime.Realm, args []runtime.Value) (runtime.Value, error) {
		re, ok := runtime.AsRegExpData(thisOf(args))
		if !ok {
			return nil, runtime.NewTypeError("RegExp.prototype.test called on incompatible receiver")
		}
		s, err := runtime.ToString(realm, arg(args, 0))
		if err != nil {
			return nil, err
		}
		return runtime.Bool(re.Compiled.MatchString(s)), nil
	})

	method(in, proto, "exec", 1, func(realm runtime.Realm, args []runtime.Value) (runtime.Value, error) {
		self, ok := thisOf(args).(*runtime.Object)
		if !ok {
			return nil, runtime.NewTypeError("RegExp.prototype.exec called on incompatible receiver")
		}
		re, ok := runtime.AsRegExpData(self)
		if !ok {
			return nil, runtime.NewTypeError("RegExp.prototype.exec called on incompatible receiver")
		}
		s, err := runtime.ToString(realm, arg(args, 0))
		if err != nil {
			return nil, err
		}
		start := 0
		if re.Global {
			lv, err := self.Get(realm, "lastIndex")
			if err != nil {
				return nil, err
			}
			n, _ := runtime.NumberOf(lv)
			start = int(n)
		}
		if start < 0 || start > len(s) {
			if re.Global {
				self.Put(realm, "lastIndex", runtime.Int(0), true)
			}
			return runtime.Null, nil
		}
		loc := re.Compiled.FindStringSubmatchIndex(s[start:])
		if loc == nil {
			if re.Global {
				self.Put(realm, "lastIndex", runtime.Int(0), true)
			}
			return runtime.Null, nil
		}
		if re.Global {
			self.Put(realm, "lastIndex", runtime.Int(int64(start+loc[1])), true)
		}
		result := runtime.NewArray(in.Builtins.ArrayProto, 0)
		for i := 0; i*2 < len(loc); i++ {
			lo, hi := loc[i*2], loc[i*2+1]
			var v runtime.Value = runtime.Undefined
			if lo >= 0 {
				v = runtime.Str(s[start+lo : start+hi])
			}
			if err := result.Put(realm, indexName(i), v, true); err != nil {
				return nil, err
			}
		}
		if err := result.Put(realm, "index", runtime.Int(int64(start+loc[0])), true); err != nil {
			return nil, err
		}
		if err := result.Put(realm, "input", runtime.Str(s), true); err != nil {
			return nil, err
		}
		return result, nil
	})

	ctor := in.NativeFunction("RegExp", 2, func(realm runtime.Realm, args []runtime.Value) (runtime.Value, error) {
		if re, ok := runtime.AsRegExpData(arg(args, 0)); ok && argc(args) < 2 {
			return compileRegExp(in, re.Source, flagsOf(re))
		}
		pattern, err := runtime.ToString(realm, arg(args, 0))
		if err != nil {
			return nil, err
		}
		flags := ""
		if argc(args) > 1 {
			flags, err = runtime.ToString(realm, arg(args, 1))
			if err != nil {
				return nil, err
			}
		}
		return compileRegExp(in, pattern, flags)
	})
	ctor.DefineHidden("prototype", proto)
	proto.DefineHidden("constructor", ctor)
	return ctor
}

func flagsOf(re *runtime.RegExpData) string {
	flags := ""
	if re.Global {
		flags += "g"
	}
	if re.IgnoreCase {
		flags += "i"
	}
	if re.Multiline {
		flags += "m"
	}
	return flags
}
