package builtins

import (
	"math"
	"strconv"

	"github.com/kiidax/nablajs/internal/evaluator"
	"github.com/kiidax/nablajs/internal/runtime"
)

// installNumber builds Number.prototype, its static constants, and the
// Number constructor (spec §4.7 Number).
func installNumber(in *evaluator.Interpreter, proto *runtime.Object) *runtime.Object {
	thisNumber := func(realm runtime.Realm, args []runtime.Value) (float64, error) {
		if runtime.IsNumber(thisOf(args)) {
			n, _ := runtime.NumberOf(thisOf(args))
			return n, nil
		}
		if o, ok := thisOf(args).(*runtime.Object); ok {
			if v, ok := runtime.WrappedPrimitive(o); ok {
				n, _ := runtime.NumberOf(v)
				return n, nil
			}
		}
		return 0, runtime.NewTypeError("Number.prototype method called on incompatible receiver")
	}

	method(in, proto, "valueOf", 0, func(realm runtime.Realm, args []runtime.Value) (runtime.Value, error) {
		n, err := thisNumber(realm, args)
		if err != nil {
			return nil, err
		}
		return numberValue(n), nil
	})

	method(in, proto, "toString", 1, func(realm runtime.Realm, args []runtime.Value) (runtime.Value, error) {
		n, err := thisNumber(realm, args)
		if err != nil {
			return nil, err
		}
		radix := 10
		if argc(args) > 0 && arg(args, 0) != runtime.Undefined {
			r, err := runtime.ToNumber(realm, arg(args, 0))
			if err != nil {
				return nil, err
			}
			radix = int(r)
		}
		if radix == 10 {
			return runtime.Str(formatNumberLiteral(n)), nil
		}
		if n != math.Trunc(n) || math.IsNaN(n) || math.IsInf(n, 0) {
			return runtime.Str(formatNumberLiteral(n)), nil
		}
		return runtime.Str(strconv.FormatInt(int64(n), radix)), nil
	})

	method(in, proto, "toLocaleString", 0, func(realm runtime.Realm, args []runtime.Value) (runtime.Value, error) {
		n, err := thisNumber(realm, args)
		if err != nil {
			return nil, err
		}
		return runtime.Str(formatNumberLiteral(n)), nil
	})

	method(in, proto, "toFixed", 1, func(realm runtime.Realm, args []runtime.Value) (runtime.Value, error) {
		n, err := thisNumber(realm, args)
		if err != nil {
			return nil, err
		}
		digits := 0
		if argc(args) > 0 {
			d, err := runtime.ToNumber(realm, arg(args, 0))
			if err != nil {
				return nil, err
			}
			digits = int(d)
		}
		if digits < 0 || digits > 20 {
			return nil, runtime.NewRangeError("toFixed() digits argument must be between 0 and 20")
		}
		return runtime.Str(strconv.FormatFloat(n, 'f', digits, 64)), nil
	})

	method(in, proto, "toPrecision", 1, func(realm runtime.Realm, args []runtime.Value) (runtime.Value, error) {
		n, err := thisNumber(realm, args)
		if err != nil {
			return nil, err
		}
		if arg(args, 0) == runtime.Undefined {
			return runtime.Str(formatNumberLiteral(n)), nil
		}
		p, err := runtime.ToNumber(realm, arg(args, 0))
		if err != nil {
			return nil, err
		}
		return runtime.Str(strconv.FormatFloat(n, 'g', int(p), 64)), nil
	})

	ctor := in.NativeFunction("Number", 1, func(realm runtime.Realm, args []runtime.Value) (runtime.Value, error) {
		n := 0.0
		if argc(args) > 0 {
			var err error
			n, err = runtime.ToNumber(realm, arg(args, 0))
			if err != nil {
				return nil, err
			}
		}
		v := numberValue(n)
		if inst, ok := thisOf(args).(*runtime.Object); ok {
			inst.Class = "Number"
			runtime.SetWrappedPrimitive(inst, v)
			return inst, nil
		}
		return v, nil
	})
	ctor.DefineHidden("prototype", proto)
	proto.DefineHidden("constructor", ctor)

	ctor.DefineConstant("MAX_VALUE", runtime.Float(math.MaxFloat64))
	ctor.DefineConstant("MIN_VALUE", runtime.Float(math.SmallestNonzeroFloat64))
	ctor.DefineConstant("NaN", runtime.Float(math.NaN()))
	ctor.DefineConstant("POSITIVE_INFINITY", runtime.Float(math.Inf(1)))
	ctor.DefineConstant("NEGATIVE_INFINITY", runtime.Float(math.Inf(-1)))
	return ctor
}

// numberValue picks the Int or Float representation the way numeric
// literals in expressions.go do, so Number(x) results print the same way
// source-literal numbers do.
func numberValue(n float64) runtime.Value {
	if n == math.Trunc(n) && !math.IsInf(n, 0) && !math.IsNaN(n) && n >= -9.0071992547409920e+15 && n <= 9.0071992547409920e+15 {
		return runtime.Int(int64(n))
	}
	return runtime.Float(n)
}

func formatNumberLiteral(n float64) string {
	return runtime.Float(n).String()
}
