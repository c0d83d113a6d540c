package builtins

import (
	"math"
	"math/rand"

	"github.com/kiidax/nablajs/internal/evaluator"
	"github.com/kiidax/nablajs/internal/runtime"
)

// installMath builds the Math object (spec §4.7 Math): a plain object,
// not a constructor, with constant properties and single/two-argument
// numeric methods.
func installMath(in *evaluator.Interpreter, proto *runtime.Object) *runtime.Object {
	m := runtime.NewObject(proto)
	m.Class = "Math"

	m.DefineConstant("E", runtime.Float(math.E))
	m.DefineConstant("LN10", runtime.Float(math.Ln10))
	m.DefineConstant("LN2", runtime.Float(math.Ln2))
	m.DefineConstant("LOG2E", runtime.Float(math.Log2E))
	m.DefineConstant("LOG10E", runtime.Float(math.Log10E))
	m.DefineConstant("PI", runtime.Float(math.Pi))
	m.DefineConstant("SQRT1_2", runtime.Float(math.Sqrt(0.5)))
	m.DefineConstant("SQRT2", runtime.Float(math.Sqrt2))

	unary := func(name string, fn func(float64) float64) {
		method(in, m, name, 1, func(realm runtime.Realm, args []runtime.Value) (runtime.Value, error) {
			n, err := runtime.ToNumber(realm, arg(args, 0))
			if err != nil {
				return nil, err
			}
			return runtime.Float(fn(n)), nil
		})
	}
	unary("abs", math.Abs)
	unary("ceil", math.Ceil)
	unary("floor", math.Floor)
	unary("round", func(f float64) float64 { return math.Floor(f + 0.5) })
	unary("sqrt", math.Sqrt)
	unary("sin", math.Sin)
	unary("cos", math.Cos)
	unary("tan", math.Tan)
	unary("asin", math.Asin)
	unary("acos", math.Acos)
	unary("atan", math.Atan)
	unary("exp", math.Exp)
	unary("log", math.Log)

	method(in, m, "pow", 2, func(realm runtime.Realm, args []runtime.Value) (runtime.Value, error) {
		base, err := runtime.ToNumber(realm, arg(args, 0))
		if err != nil {
			return nil, err
		}
		exp, err := runtime.ToNumber(realm, arg(args, 1))
		if err != nil {
			return nil, err
		}
		return runtime.Float(math.Pow(base, exp)), nil
	})

	method(in, m, "atan2", 2, func(realm runtime.Realm, args []runtime.Value) (runtime.Value, error) {
		y, err := runtime.ToNumber(realm, arg(args, 0))
		if err != nil {
			return nil, err
		}
		x, err := runtime.ToNumber(realm, arg(args, 1))
		if err != nil {
			return nil, err
		}
		return runtime.Float(math.Atan2(y, x)), nil
	})

	method(in, m, "max", 2, func(realm runtime.Realm, args []runtime.Value) (runtime.Value, error) {
		if argc(args) == 0 {
			return runtime.Float(math.Inf(-1)), nil
		}
		best := math.Inf(-1)
		for i := 0; i < argc(args); i++ {
			n, err := runtime.ToNumber(realm, arg(args, i))
			if err != nil {
				return nil, err
			}
			if math.IsNaN(n) {
				return runtime.Float(math.NaN()), nil
			}
			if n > best {
				best = n
			}
		}
		return runtime.Float(best), nil
	})

	method(in, m, "min", 2, func(realm runtime.Realm, args []runtime.Value) (runtime.Value, error) {
		if argc(args) == 0 {
			return runtime.Float(math.Inf(1)), nil
		}
		best := math.Inf(1)
		for i := 0; i < argc(args); i++ {
			n, err := runtime.ToNumber(realm, arg(args, i))
			if err != nil {
				return nil, err
			}
			if math.IsNaN(n) {
				return runtime.Float(math.NaN()), nil
			}
			if n < best {
				best = n
			}
		}
		return runtime.Float(best), nil
	})

	method(in, m, "random", 0, func(realm runtime.Realm, args []runtime.Value) (runtime.Value, error) {
		return runtime.Float(rand.Float64()), nil
	})

	return m
}
