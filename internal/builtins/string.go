package builtins

import (
	"math"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/kiidax/nablajs/internal/evaluator"
	"github.com/kiidax/nablajs/internal/runtime"
)

// installString builds String.prototype and the String constructor (spec
// §4.7 String). toLowerCase/toUpperCase route all input through
// golang.org/x/text/cases rather than strings.ToLower/ToUpper, since
// simple byte-wise case folding mishandles the locale-independent but
// multi-byte Unicode cases the examples' text-processing code guards
// against.
func installString(in *evaluator.Interpreter, proto *runtime.Object) *runtime.Object {
	thisString := func(realm runtime.Realm, args []runtime.Value) (string, error) {
		if s, ok := thisOf(args).(*runtime.StringValue); ok {
			return s.Value, nil
		}
		o, ok := thisOf(args).(*runtime.Object)
		if ok {
			if sd, ok := o.Host.(*runtime.StringExoticData); ok {
				return sd.Value, nil
			}
		}
		return runtime.ToString(realm, thisOf(args))
	}

	method(in, proto, "toString", 0, func(realm runtime.Realm, args []runtime.Value) (runtime.Value, error) {
		s, err := thisString(realm, args)
		if err != nil {
			return nil, err
		}
		return runtime.Str(s), nil
	})
	method(in, proto, "valueOf", 0, func(realm runtime.Realm, args []runtime.Value) (runtime.Value, error) {
		s, err := thisString(realm, args)
		if err != nil {
			return nil, err
		}
		return runtime.Str(s), nil
	})

	method(in, proto, "charAt", 1, func(realm runtime.Realm, args []runtime.Value) (runtime.Value, error) {
		s, err := thisString(realm, args)
		if err != nil {
			return nil, err
		}
		i, err := runtime.ToNumber(realm, arg(args, 0))
		if err != nil {
			return nil, err
		}
		return runtime.Str(runtime.StringCharAt(s, int(i))), nil
	})

	method(in, proto, "charCodeAt", 1, func(realm runtime.Realm, args []runtime.Value) (runtime.Value, error) {
		s, err := thisString(realm, args)
		if err != nil {
			return nil, err
		}
		i, err := runtime.ToNumber(realm, arg(args, 0))
		if err != nil {
			return nil, err
		}
		code, ok := runtime.StringCharCodeAt(s, int(i))
		if !ok {
			return runtime.Float(math.NaN()), nil
		}
		return runtime.Float(code), nil
	})

	method(in, proto, "concat", 1, func(realm runtime.Realm, args []runtime.Value) (runtime.Value, error) {
		s, err := thisString(realm, args)
		if err != nil {
			return nil, err
		}
		var b strings.Builder
		b.WriteString(s)
		for i := 0; i < argc(args); i++ {
			part, err := runtime.ToString(realm, arg(args, i))
			if err != nil {
				return nil, err
			}
			b.WriteString(part)
		}
		return runtime.Str(b.String()), nil
	})

	method(in, proto, "indexOf", 1, func(realm runtime.Realm, args []runtime.Value) (runtime.Value, error) {
		s, err := thisString(realm, args)
		if err != nil {
			return nil, err
		}
		search, err := runtime.ToString(realm, arg(args, 0))
		if err != nil {
			return nil, err
		}
		start := 0
		if argc(args) > 1 {
			f, err := runtime.ToNumber(realm, arg(args, 1))
			if err != nil {
				return nil, err
			}
			start = int(f)
		}
		runes := []rune(s)
		if start < 0 {
			start = 0
		}
		if start > len(runes) {
			start = len(runes)
		}
		searchRunes := []rune(search)
		for i := start; i+len(searchRunes) <= len(runes); i++ {
			if string(runes[i:i+len(searchRunes)]) == search {
				return runtime.Int(int64(i)), nil
			}
		}
		return runtime.Int(-1), nil
	})

	method(in, proto, "lastIndexOf", 1, func(realm runtime.Realm, args []runtime.Value) (runtime.Value, error) {
		s, err := thisString(realm, args)
		if err != nil {
			return nil, err
		}
		search, err := runtime.ToString(realm, arg(args, 0))
		if err != nil {
			return nil, err
		}
		idx := strings.LastIndex(s, search)
		if idx < 0 {
			return runtime.Int(-1), nil
		}
		return runtime.Int(int64(len([]rune(s[:idx])))), nil
	})

	method(in, proto, "slice", 2, func(realm runtime.Realm, args []runtime.Value) (runtime.Value, error) {
		s, err := thisString(realm, args)
		if err != nil {
			return nil, err
		}
		runes := []rune(s)
		n := len(runes)
		start, err := sliceIndex(realm, arg(args, 0), n, 0)
		if err != nil {
			return nil, err
		}
		end, err := sliceIndex(realm, arg(args, 1), n, n)
		if err != nil {
			return nil, err
		}
		if end < start {
			end = start
		}
		return runtime.Str(string(runes[start:end])), nil
	})

	method(in, proto, "substring", 2, func(realm runtime.Realm, args []runtime.Value) (runtime.Value, error) {
		s, err := thisString(realm, args)
		if err != nil {
			return nil, err
		}
		runes := []rune(s)
		n := len(runes)
		start, err := substringIndex(realm, arg(args, 0), n, 0)
		if err != nil {
			return nil, err
		}
		end, err := substringIndex(realm, arg(args, 1), n, n)
		if err != nil {
			return nil, err
		}
		if start > end {
			start, end = end, start
		}
		return runtime.Str(string(runes[start:end])), nil
	})

	method(in, proto, "toLowerCase", 0, func(realm runtime.Realm, args []runtime.Value) (runtime.Value, error) {
		s, err := thisString(realm, args)
		if err != nil {
			return nil, err
		}
		return runtime.Str(cases.Lower(language.Und).String(s)), nil
	})
	method(in, proto, "toLocaleLowerCase", 0, func(realm runtime.Realm, args []runtime.Value) (runtime.Value, error) {
		s, err := thisString(realm, args)
		if err != nil {
			return nil, err
		}
		return runtime.Str(cases.Lower(language.Und).String(s)), nil
	})
	method(in, proto, "toUpperCase", 0, func(realm runtime.Realm, args []runtime.Value) (runtime.Value, error) {
		s, err := thisString(realm, args)
		if err != nil {
			return nil, err
		}
		return runtime.Str(cases.Upper(language.Und).String(s)), nil
	})
	method(in, proto, "toLocaleUpperCase", 0, func(realm runtime.Realm, args []runtime.Value) (runtime.Value, error) {
		s, err := thisString(realm, args)
		if err != nil {
			return nil, err
		}
		return runtime.Str(cases.Upper(language.Und).String(s)), nil
	})

	method(in, proto, "trim", 0, func(realm runtime.Realm, args []runtime.Value) (runtime.Value, error) {
		s, err := thisString(realm, args)
		if err != nil {
			return nil, err
		}
		return runtime.Str(strings.TrimSpace(s)), nil
	})

	method(in, proto, "split", 2, func(realm runtime.Realm, args []runtime.Value) (runtime.Value, error) {
		s, err := thisString(realm, args)
		if err != nil {
			return nil, err
		}
		result := runtime.NewArray(in.Builtins.ArrayProto, 0)
		sepArg := arg(args, 0)
		var parts []string
		if re, ok := runtime.AsRegExpData(sepArg); ok {
			parts = re.Compiled.Split(s, -1)
		} else if sepArg == runtime.Undefined {
			parts = []string{s}
		} else {
			sep, err := runtime.ToString(realm, sepArg)
			if err != nil {
				return nil, err
			}
			if sep == "" {
				for _, r := range s {
					parts = append(parts, string(r))
				}
			} else {
				parts = strings.Split(s, sep)
			}
		}
		for i, p := range parts {
			if err := result.Put(realm, indexName(i), runtime.Str(p), true); err != nil {
				return nil, err
			}
		}
		return result, nil
	})

	method(in, proto, "search", 1, func(realm runtime.Realm, args []runtime.Value) (runtime.Value, error) {
		s, err := thisString(realm, args)
		if err != nil {
			return nil, err
		}
		re, ok := runtime.AsRegExpData(arg(args, 0))
		if !ok {
			pattern, err := runtime.ToString(realm, arg(args, 0))
			if err != nil {
				return nil, err
			}
			v, err := compileRegExp(in, pattern, "")
			if err != nil {
				return nil, err
			}
			re, _ = runtime.AsRegExpData(v)
		}
		loc := re.Compiled.FindStringIndex(s)
		if loc == nil {
			return runtime.Int(-1), nil
		}
		return runtime.Int(int64(len([]rune(s[:loc[0]])))), nil
	})

	method(in, proto, "match", 1, func(realm runtime.Realm, args []runtime.Value) (runtime.Value, error) {
		s, err := thisString(realm, args)
		if err != nil {
			return nil, err
		}
		re, ok := runtime.AsRegExpData(arg(args, 0))
		if !ok {
			pattern, err := runtime.ToString(realm, arg(args, 0))
			if err != nil {
				return nil, err
			}
			v, err := compileRegExp(in, pattern, "")
			if err != nil {
				return nil, err
			}
			re, _ = runtime.AsRegExpData(v)
		}
		if re.Global {
			all := re.Compiled.FindAllString(s, -1)
			if all == nil {
				return runtime.Null, nil
			}
			result := runtime.NewArray(in.Builtins.ArrayProto, 0)
			for i, m := range all {
				if err := result.Put(realm, indexName(i), runtime.Str(m), true); err != nil {
					return nil, err
				}
			}
			return result, nil
		}
		loc := re.Compiled.FindStringSubmatch(s)
		if loc == nil {
			return runtime.Null, nil
		}
		result := runtime.NewArray(in.Builtins.ArrayProto, 0)
		for i, m := range loc {
			if err := result.Put(realm, indexName(i), runtime.Str(m), true); err != nil {
				return nil, err
			}
		}
		return result, nil
	})

	method(in, proto, "replace", 2, func(realm runtime.Realm, args []runtime.Value) (runtime.Value, error) {
		s, err := thisString(realm, args)
		if err != nil {
			return nil, err
		}
		replacement := arg(args, 1)
		replFn, replIsFn := replacement.(*runtime.Object)
		if re, ok := runtime.AsRegExpData(arg(args, 0)); ok {
			doReplace := func(match []int) string {
				matched := s[match[0]:match[1]]
				if replIsFn && runtime.IsFunctionObject(replFn) {
					callArgs := []runtime.Value{runtime.Str(matched), runtime.Int(int64(len([]rune(s[:match[0]])))), runtime.Str(s)}
					v, err := replFn.Call(realm, runtime.Undefined, callArgs)
					if err != nil {
						return matched
					}
					r, _ := runtime.ToString(realm, v)
					return r
				}
				replStr, _ := runtime.ToString(realm, replacement)
				return replStr
			}
			if re.Global {
				var b strings.Builder
				last := 0
				for _, match := range re.Compiled.FindAllStringSubmatchIndex(s, -1) {
					b.WriteString(s[last:match[0]])
					b.WriteString(doReplace(match[:2]))
					last = match[1]
				}
				b.WriteString(s[last:])
				return runtime.Str(b.String()), nil
			}
			match := re.Compiled.FindStringIndex(s)
			if match == nil {
				return runtime.Str(s), nil
			}
			return runtime.Str(s[:match[0]] + doReplace(match) + s[match[1]:]), nil
		}
		search, err := runtime.ToString(realm, arg(args, 0))
		if err != nil {
			return nil, err
		}
		idx := strings.Index(s, search)
		if idx < 0 {
			return runtime.Str(s), nil
		}
		var replStr string
		if replIsFn && runtime.IsFunctionObject(replFn) {
			v, err := replFn.Call(realm, runtime.Undefined, []runtime.Value{runtime.Str(search), runtime.Int(int64(len([]rune(s[:idx])))), runtime.Str(s)})
			if err != nil {
				return nil, err
			}
			replStr, _ = runtime.ToString(realm, v)
		} else {
			replStr, err = runtime.ToString(realm, replacement)
			if err != nil {
				return nil, err
			}
		}
		return runtime.Str(s[:idx] + replStr + s[idx+len(search):]), nil
	})

	ctor := in.NativeFunction("String", 1, func(realm runtime.Realm, args []runtime.Value) (runtime.Value, error) {
		s := ""
		if argc(args) > 0 {
			var err error
			s, err = runtime.ToString(realm, arg(args, 0))
			if err != nil {
				return nil, err
			}
		}
		if _, ok := thisOf(args).(*runtime.Object); ok {
			return runtime.NewStringObject(proto, s), nil
		}
		return runtime.Str(s), nil
	})
	ctor.DefineHidden("prototype", proto)
	proto.DefineHidden("constructor", ctor)

	fromCharCode := in.NativeFunction("fromCharCode", 1, func(realm runtime.Realm, args []runtime.Value) (runtime.Value, error) {
		var b strings.Builder
		for i := 0; i < argc(args); i++ {
			n, err := runtime.ToNumber(realm, arg(args, i))
			if err != nil {
				return nil, err
			}
			b.WriteRune(rune(int(n)))
		}
		return runtime.Str(b.String()), nil
	})
	ctor.DefineHidden("fromCharCode", fromCharCode)
	return ctor
}

// substringIndex implements String.prototype.substring's clamp-don't-wrap
// index handling, distinct from slice's negative-index relative handling.
func substringIndex(realm runtime.Realm, v runtime.Value, length, def int) (int, error) {
	if v == runtime.Undefined {
		return def, nil
	}
	f, err := runtime.ToNumber(realm, v)
	if err != nil {
		return 0, err
	}
	if f != f { // NaN
		return 0, nil
	}
	i := int(f)
	if i < 0 {
		i = 0
	}
	if i > length {
		i = length
	}
	return i, nil
}
