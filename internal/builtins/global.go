package builtins

import (
	"fmt"
	"math"
	"os"
	goruntime "runtime"
	"strconv"
	"strings"

	"github.com/kiidax/nablajs/internal/evaluator"
	"github.com/kiidax/nablajs/internal/runtime"
)

// Install builds a fresh global object, populates it with the full
// standard library surface (spec §4.7), and returns a ready-to-run
// Interpreter bound to it. extensions controls whether the non-standard
// extension globals (spec §6: print, load, read, quit, evalcx) are
// installed alongside the minimum built-in list; a Context constructed
// for sandboxed eval of untrusted source should pass false. Grounded on
// the teacher's internal/interp.New entry point, which performs the same
// one-shot "build environment, register built-ins, hand back a runnable
// interpreter" sequence.
func Install(extensions bool) *evaluator.Interpreter {
	objectProto := runtime.NewObject(nil)
	objectProto.Class = "Object"

	functionProto := runtime.NewObject(objectProto)
	functionProto.Class = "Function"

	arrayProto := runtime.NewArray(objectProto, 0)
	stringProto := runtime.NewStringObject(objectProto, "")
	numberProto := runtime.NewObject(objectProto)
	numberProto.Class = "Number"
	booleanProto := runtime.NewObject(objectProto)
	booleanProto.Class = "Boolean"
	dateProto := runtime.NewObject(objectProto)
	dateProto.Class = "Date"
	regExpProto := runtime.NewObject(objectProto)
	regExpProto.Class = "RegExp"

	global := runtime.NewObject(objectProto)
	global.Class = "global"
	globalEnv := runtime.NewObjectEnvironment(global, nil, false)

	b := evaluator.Builtins{
		ObjectProto:   objectProto,
		FunctionProto: functionProto,
		ArrayProto:    arrayProto,
		StringProto:   stringProto,
		NumberProto:   numberProto,
		BooleanProto:  booleanProto,
		DateProto:     dateProto,
		RegExpProto:   regExpProto,
	}

	in := evaluator.NewInterpreter(global, globalEnv, b)

	objectCtor := installObject(in, objectProto)
	functionCtor := installFunction(in, functionProto)
	arrayCtor := installArray(in, arrayProto)
	stringCtor := installString(in, stringProto)
	numberCtor := installNumber(in, numberProto)
	booleanCtor := installBoolean(in, booleanProto)
	mathObj := installMath(in, objectProto)
	dateCtor := installDate(in, dateProto)
	regExpCtor := installRegExp(in, regExpProto)
	installErrors(in, objectProto, &in.Builtins)
	in.Builtins.ArrayCtor = arrayCtor

	global.DefineHidden("Object", objectCtor)
	global.DefineHidden("Function", functionCtor)
	global.DefineHidden("Array", arrayCtor)
	global.DefineHidden("String", stringCtor)
	global.DefineHidden("Number", numberCtor)
	global.DefineHidden("Boolean", booleanCtor)
	global.DefineHidden("Math", mathObj)
	global.DefineHidden("Date", dateCtor)
	global.DefineHidden("RegExp", regExpCtor)
	global.DefineHidden("Error", in.Builtins.ErrorCtor)
	global.DefineHidden("TypeError", in.Builtins.TypeErrorCtor)
	global.DefineHidden("ReferenceError", in.Builtins.ReferenceErrorCtor)
	global.DefineHidden("SyntaxError", in.Builtins.SyntaxErrorCtor)
	global.DefineHidden("RangeError", in.Builtins.RangeErrorCtor)

	global.DefineHidden("NaN", runtime.Float(math.NaN()))
	global.DefineHidden("Infinity", runtime.Float(math.Inf(1)))
	global.DefineHidden("undefined", runtime.Undefined)

	installGlobalFunctions(in, global)
	installEval(in, global)
	if extensions {
		installExtensionGlobals(in, global)
	}
	return in
}

// installGlobalFunctions installs isNaN, isFinite, parseInt and
// parseFloat, plus gc and meminfo (spec §6); print and the other
// extension globals are installed by installExtensionGlobals. gc and
// meminfo are host-GC shims grounded on the teacher's embedder-facing
// diagnostics, adapted here since Go's garbage collector is not under
// script control the way the teacher's host runtime's was.
func installGlobalFunctions(in *evaluator.Interpreter, global *runtime.Object) {
	gc := in.NativeFunction("gc", 0, func(realm runtime.Realm, args []runtime.Value) (runtime.Value, error) {
		goruntime.GC()
		return runtime.Undefined, nil
	})
	global.DefineHidden("gc", gc)

	meminfo := in.NativeFunction("meminfo", 0, func(realm runtime.Realm, args []runtime.Value) (runtime.Value, error) {
		var stats goruntime.MemStats
		goruntime.ReadMemStats(&stats)
		obj := runtime.NewObject(in.Builtins.ObjectProto)
		obj.DefineDataProperty("heapAlloc", runtime.Float(float64(stats.HeapAlloc)))
		obj.DefineDataProperty("heapSys", runtime.Float(float64(stats.HeapSys)))
		return obj, nil
	})
	global.DefineHidden("meminfo", meminfo)

	isNaN := in.NativeFunction("isNaN", 1, func(realm runtime.Realm, args []runtime.Value) (runtime.Value, error) {
		n, err := runtime.ToNumber(realm, arg(args, 0))
		if err != nil {
			return nil, err
		}
		return runtime.Bool(math.IsNaN(n)), nil
	})
	global.DefineHidden("isNaN", isNaN)

	isFinite := in.NativeFunction("isFinite", 1, func(realm runtime.Realm, args []runtime.Value) (runtime.Value, error) {
		n, err := runtime.ToNumber(realm, arg(args, 0))
		if err != nil {
			return nil, err
		}
		return runtime.Bool(!math.IsNaN(n) && !math.IsInf(n, 0)), nil
	})
	global.DefineHidden("isFinite", isFinite)

	parseIntFn := in.NativeFunction("parseInt", 2, func(realm runtime.Realm, args []runtime.Value) (runtime.Value, error) {
		s, err := runtime.ToString(realm, arg(args, 0))
		if err != nil {
			return nil, err
		}
		radix := 0
		if argc(args) > 1 {
			r, err := runtime.ToNumber(realm, arg(args, 1))
			if err != nil {
				return nil, err
			}
			radix = int(r)
		}
		return runtime.Float(parseIntString(s, radix)), nil
	})
	global.DefineHidden("parseInt", parseIntFn)

	parseFloatFn := in.NativeFunction("parseFloat", 1, func(realm runtime.Realm, args []runtime.Value) (runtime.Value, error) {
		s, err := runtime.ToString(realm, arg(args, 0))
		if err != nil {
			return nil, err
		}
		return runtime.Float(parseFloatString(s)), nil
	})
	global.DefineHidden("parseFloat", parseFloatFn)
}

// installExtensionGlobals wires the non-standard embedder extension
// globals (spec §6: print, load, read, quit, evalcx) that a Context may
// opt out of when evaluating untrusted source. Grounded on the
// teacher's cmd/dwscript/cmd/run.go CLI-facing I/O helpers, adapted from
// file-oriented script execution to these finer-grained primitives.
func installExtensionGlobals(in *evaluator.Interpreter, global *runtime.Object) {
	print := in.NativeFunction("print", 1, func(realm runtime.Realm, args []runtime.Value) (runtime.Value, error) {
		for i := 0; i < argc(args); i++ {
			s, err := runtime.ToString(realm, arg(args, i))
			if err != nil {
				return nil, err
			}
			if i > 0 {
				fmt.Fprint(in.Output(), " ")
			}
			fmt.Fprint(in.Output(), s)
		}
		fmt.Fprintln(in.Output())
		return runtime.Undefined, nil
	})
	global.DefineHidden("print", print)

	read := in.NativeFunction("read", 1, func(realm runtime.Realm, args []runtime.Value) (runtime.Value, error) {
		path, err := runtime.ToString(realm, arg(args, 0))
		if err != nil {
			return nil, err
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, runtime.NewTypeError("read: %s", err.Error())
		}
		return runtime.Str(string(data)), nil
	})
	global.DefineHidden("read", read)

	load := in.NativeFunction("load", 1, func(realm runtime.Realm, args []runtime.Value) (runtime.Value, error) {
		path, err := runtime.ToString(realm, arg(args, 0))
		if err != nil {
			return nil, err
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, runtime.NewTypeError("load: %s", err.Error())
		}
		return EvalSource(in, string(data), path)
	})
	global.DefineHidden("load", load)

	quit := in.NativeFunction("quit", 1, func(realm runtime.Realm, args []runtime.Value) (runtime.Value, error) {
		code := 0
		if argc(args) > 0 {
			n, err := runtime.ToNumber(realm, arg(args, 0))
			if err != nil {
				return nil, err
			}
			code = int(n)
		}
		os.Exit(code)
		return runtime.Undefined, nil
	})
	global.DefineHidden("quit", quit)

	evalcx := in.NativeFunction("evalcx", 1, func(realm runtime.Realm, args []runtime.Value) (runtime.Value, error) {
		src, err := runtime.ToString(realm, arg(args, 0))
		if err != nil {
			return nil, err
		}
		if src == "" {
			return Install(false).Global, nil
		}
		sandbox := Install(false)
		return EvalSource(sandbox, src, "<evalcx>")
	})
	global.DefineHidden("evalcx", evalcx)
}

// parseIntString implements the global parseInt function (spec §4.7):
// skip leading whitespace, an optional sign, an optional "0x"/"0X" radix
// prefix when radix is 0 or 16, then the longest prefix of digits valid
// in the radix; NaN if no digits are found.
func parseIntString(s string, radix int) float64 {
	t := strings.TrimSpace(s)
	neg := false
	if len(t) > 0 && (t[0] == '+' || t[0] == '-') {
		neg = t[0] == '-'
		t = t[1:]
	}
	if (radix == 0 || radix == 16) && (strings.HasPrefix(t, "0x") || strings.HasPrefix(t, "0X")) {
		t = t[2:]
		radix = 16
	} else if radix == 0 {
		radix = 10
	}
	end := 0
	for end < len(t) && digitValue(t[end]) < radix {
		end++
	}
	if end == 0 {
		return math.NaN()
	}
	n, err := strconv.ParseInt(t[:end], radix, 64)
	if err != nil {
		f, ferr := strconv.ParseFloat(t[:end], 64)
		if ferr != nil {
			return math.NaN()
		}
		if neg {
			return -f
		}
		return f
	}
	if neg {
		return -float64(n)
	}
	return float64(n)
}

func digitValue(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'z':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'Z':
		return int(c-'A') + 10
	default:
		return 99
	}
}

// parseFloatString implements the global parseFloat function (spec
// §4.7): the longest numeric-literal prefix of s after leading
// whitespace, or NaN.
func parseFloatString(s string) float64 {
	t := strings.TrimSpace(s)
	if strings.HasPrefix(t, "Infinity") || strings.HasPrefix(t, "+Infinity") {
		return math.Inf(1)
	}
	if strings.HasPrefix(t, "-Infinity") {
		return math.Inf(-1)
	}
	end := 0
	seenDigit, seenDot, seenExp := false, false, false
	for end < len(t) {
		c := t[end]
		switch {
		case c >= '0' && c <= '9':
			seenDigit = true
		case c == '.' && !seenDot && !seenExp:
			seenDot = true
		case (c == 'e' || c == 'E') && seenDigit && !seenExp:
			seenExp = true
		case (c == '+' || c == '-') && (end == 0 || t[end-1] == 'e' || t[end-1] == 'E'):
		default:
			goto done
		}
		end++
	}
done:
	if !seenDigit {
		return math.NaN()
	}
	for ; end > 0; end-- {
		f, err := strconv.ParseFloat(t[:end], 64)
		if err == nil {
			return f
		}
		if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
			return f
		}
	}
	return math.NaN()
}
