package builtins

import (
	"sort"
	"strings"

	"github.com/kiidax/nablajs/internal/evaluator"
	"github.com/kiidax/nablajs/internal/runtime"
)

// installArray builds Array.prototype and the Array constructor (spec
// §4.7 Array). The method set covers the ES3 minimum (join, reverse,
// sort, slice, concat, push/pop/shift/unshift) plus map/filter/reduce/
// indexOf/forEach/every/some, a documented supplement grounded on the
// widely implemented post-ES3 additions (see SPEC_FULL.md §4).
func installArray(in *evaluator.Interpreter, proto *runtime.Object) *runtime.Object {
	method(in, proto, "toString", 0, func(realm runtime.Realm, args []runtime.Value) (runtime.Value, error) {
		return arrayJoin(in, realm, args, ",")
	})

	method(in, proto, "join", 1, func(realm runtime.Realm, args []runtime.Value) (runtime.Value, error) {
		sep := ","
		if arg(args, 0) != runtime.Undefined {
			s, err := runtime.ToString(realm, arg(args, 0))
			if err != nil {
				return nil, err
			}
			sep = s
		}
		return arrayJoin(in, realm, args, sep)
	})

	method(in, proto, "push", 1, func(realm runtime.Realm, args []runtime.Value) (runtime.Value, error) {
		o, err := thisObject(in, args)
		if err != nil {
			return nil, err
		}
		n := runtime.ArrayLength(o)
		for i := 0; i < argc(args); i++ {
			if err := o.Put(realm, indexName(int(n)), arg(args, i), true); err != nil {
				return nil, err
			}
			n++
		}
		return runtime.Float(float64(n)), nil
	})

	method(in, proto, "pop", 0, func(realm runtime.Realm, args []runtime.Value) (runtime.Value, error) {
		o, err := thisObject(in, args)
		if err != nil {
			return nil, err
		}
		n := runtime.ArrayLength(o)
		if n == 0 {
			return runtime.Undefined, nil
		}
		last := indexName(int(n - 1))
		v, err := o.Get(realm, last)
		if err != nil {
			return nil, err
		}
		if _, err := o.Delete(last, false); err != nil {
			return nil, err
		}
		if err := o.Put(realm, "length", runtime.Float(float64(n-1)), true); err != nil {
			return nil, err
		}
		return v, nil
	})

	method(in, proto, "shift", 0, func(realm runtime.Realm, args []runtime.Value) (runtime.Value, error) {
		o, err := thisObject(in, args)
		if err != nil {
			return nil, err
		}
		n := runtime.ArrayLength(o)
		if n == 0 {
			return runtime.Undefined, nil
		}
		first, err := o.Get(realm, indexName(0))
		if err != nil {
			return nil, err
		}
		for i := uint32(1); i < n; i++ {
			v, err := o.Get(realm, indexName(int(i)))
			if err != nil {
				return nil, err
			}
			if err := o.Put(realm, indexName(int(i-1)), v, true); err != nil {
				return nil, err
			}
		}
		if _, err := o.Delete(indexName(int(n-1)), false); err != nil {
			return nil, err
		}
		if err := o.Put(realm, "length", runtime.Float(float64(n-1)), true); err != nil {
			return nil, err
		}
		return first, nil
	})

	method(in, proto, "unshift", 1, func(realm runtime.Realm, args []runtime.Value) (runtime.Value, error) {
		o, err := thisObject(in, args)
		if err != nil {
			return nil, err
		}
		n := runtime.ArrayLength(o)
		k := uint32(argc(args))
		for i := n; i > 0; i-- {
			v, err := o.Get(realm, indexName(int(i-1)))
			if err != nil {
				return nil, err
			}
			if err := o.Put(realm, indexName(int(i-1+k)), v, true); err != nil {
				return nil, err
			}
		}
		for i := 0; i < int(k); i++ {
			if err := o.Put(realm, indexName(i), arg(args, i), true); err != nil {
				return nil, err
			}
		}
		total := n + k
		if err := o.Put(realm, "length", runtime.Float(float64(total)), true); err != nil {
			return nil, err
		}
		return runtime.Float(float64(total)), nil
	})

	method(in, proto, "splice", 2, func(realm runtime.Realm, args []runtime.Value) (runtime.Value, error) {
		o, err := thisObject(in, args)
		if err != nil {
			return nil, err
		}
		n := int(runtime.ArrayLength(o))
		start, err := sliceIndex(realm, arg(args, 0), n, 0)
		if err != nil {
			return nil, err
		}
		deleteCount := n - start
		if argc(args) > 1 {
			f, err := runtime.ToNumber(realm, arg(args, 1))
			if err != nil {
				return nil, err
			}
			deleteCount = int(f)
			if deleteCount < 0 {
				deleteCount = 0
			}
			if deleteCount > n-start {
				deleteCount = n - start
			}
		}
		items := make([]runtime.Value, n)
		for i := 0; i < n; i++ {
			items[i], err = o.Get(realm, indexName(i))
			if err != nil {
				return nil, err
			}
		}
		removed := runtime.NewArray(in.Builtins.ArrayProto, uint32(deleteCount))
		for i := 0; i < deleteCount; i++ {
			if err := removed.Put(realm, indexName(i), items[start+i], true); err != nil {
				return nil, err
			}
		}
		var insert []runtime.Value
		for i := 2; i < argc(args); i++ {
			insert = append(insert, arg(args, i))
		}
		rebuilt := append(append(append([]runtime.Value{}, items[:start]...), insert...), items[start+deleteCount:]...)
		for i, v := range rebuilt {
			if err := o.Put(realm, indexName(i), v, true); err != nil {
				return nil, err
			}
		}
		for i := len(rebuilt); i < n; i++ {
			if _, err := o.Delete(indexName(i), false); err != nil {
				return nil, err
			}
		}
		if err := o.Put(realm, "length", runtime.Float(float64(len(rebuilt))), true); err != nil {
			return nil, err
		}
		return removed, nil
	})

	method(in, proto, "reverse", 0, func(realm runtime.Realm, args []runtime.Value) (runtime.Value, error) {
		o, err := thisObject(in, args)
		if err != nil {
			return nil, err
		}
		n := runtime.ArrayLength(o)
		for i, j := uint32(0), n; i < j; i, j = i+1, j-1 {
			lo, hi := indexName(int(i)), indexName(int(j-1))
			if i == j-1 {
				break
			}
			vLo, err := o.Get(realm, lo)
			if err != nil {
				return nil, err
			}
			vHi, err := o.Get(realm, hi)
			if err != nil {
				return nil, err
			}
			if err := o.Put(realm, lo, vHi, true); err != nil {
				return nil, err
			}
			if err := o.Put(realm, hi, vLo, true); err != nil {
				return nil, err
			}
		}
		return o, nil
	})

	method(in, proto, "slice", 2, func(realm runtime.Realm, args []runtime.Value) (runtime.Value, error) {
		o, err := thisObject(in, args)
		if err != nil {
			return nil, err
		}
		n := int(runtime.ArrayLength(o))
		start, err := sliceIndex(realm, arg(args, 0), n, 0)
		if err != nil {
			return nil, err
		}
		end, err := sliceIndex(realm, arg(args, 1), n, n)
		if err != nil {
			return nil, err
		}
		result := runtime.NewArray(in.Builtins.ArrayProto, 0)
		out := 0
		for i := start; i < end; i++ {
			v, err := o.Get(realm, indexName(i))
			if err != nil {
				return nil, err
			}
			if err := result.Put(realm, indexName(out), v, true); err != nil {
				return nil, err
			}
			out++
		}
		return result, nil
	})

	method(in, proto, "concat", 1, func(realm runtime.Realm, args []runtime.Value) (runtime.Value, error) {
		result := runtime.NewArray(in.Builtins.ArrayProto, 0)
		out := 0
		appendOne := func(v runtime.Value) error {
			if runtime.IsArray(v) {
				arrObj := v.(*runtime.Object)
				n := runtime.ArrayLength(arrObj)
				for i := uint32(0); i < n; i++ {
					item, err := arrObj.Get(realm, indexName(int(i)))
					if err != nil {
						return err
					}
					if err := result.Put(realm, indexName(out), item, true); err != nil {
						return err
					}
					out++
				}
				return nil
			}
			if err := result.Put(realm, indexName(out), v, true); err != nil {
				return err
			}
			out++
			return nil
		}
		if err := appendOne(thisOf(args)); err != nil {
			return nil, err
		}
		for i := 0; i < argc(args); i++ {
			if err := appendOne(arg(args, i)); err != nil {
				return nil, err
			}
		}
		return result, nil
	})

	method(in, proto, "indexOf", 1, func(realm runtime.Realm, args []runtime.Value) (runtime.Value, error) {
		o, err := thisObject(in, args)
		if err != nil {
			return nil, err
		}
		n := int(runtime.ArrayLength(o))
		target := arg(args, 0)
		start := 0
		if argc(args) > 1 {
			f, err := runtime.ToNumber(realm, arg(args, 1))
			if err != nil {
				return nil, err
			}
			start = int(f)
			if start < 0 {
				start += n
			}
		}
		for i := start; i < n; i++ {
			if i < 0 {
				continue
			}
			v, err := o.Get(realm, indexName(i))
			if err != nil {
				return nil, err
			}
			if runtime.StrictEquals(v, target) {
				return runtime.Int(int64(i)), nil
			}
		}
		return runtime.Int(-1), nil
	})

	method(in, proto, "forEach", 1, func(realm runtime.Realm, args []runtime.Value) (runtime.Value, error) {
		_, err := arrayIterate(in, realm, args, func(v runtime.Value, i int, fn *runtime.Object, thisArg runtime.Value) (runtime.Value, error) {
			_, err := fn.Call(realm, thisArg, []runtime.Value{v, runtime.Float(float64(i))})
			return nil, err
		})
		return runtime.Undefined, err
	})

	method(in, proto, "map", 1, func(realm runtime.Realm, args []runtime.Value) (runtime.Value, error) {
		result := runtime.NewArray(in.Builtins.ArrayProto, 0)
		n, err := arrayIterate(in, realm, args, func(v runtime.Value, i int, fn *runtime.Object, thisArg runtime.Value) (runtime.Value, error) {
			mapped, err := fn.Call(realm, thisArg, []runtime.Value{v, runtime.Float(float64(i))})
			if err != nil {
				return nil, err
			}
			return mapped, result.Put(realm, indexName(i), mapped, true)
		})
		_ = n
		return result, err
	})

	method(in, proto, "filter", 1, func(realm runtime.Realm, args []runtime.Value) (runtime.Value, error) {
		result := runtime.NewArray(in.Builtins.ArrayProto, 0)
		out := 0
		_, err := arrayIterate(in, realm, args, func(v runtime.Value, i int, fn *runtime.Object, thisArg runtime.Value) (runtime.Value, error) {
			keep, err := fn.Call(realm, thisArg, []runtime.Value{v, runtime.Float(float64(i))})
			if err != nil {
				return nil, err
			}
			if runtime.ToBoolean(keep) {
				if err := result.Put(realm, indexName(out), v, true); err != nil {
					return nil, err
				}
				out++
			}
			return nil, nil
		})
		return result, err
	})

	method(in, proto, "every", 1, func(realm runtime.Realm, args []runtime.Value) (runtime.Value, error) {
		all := true
		_, err := arrayIterate(in, realm, args, func(v runtime.Value, i int, fn *runtime.Object, thisArg runtime.Value) (runtime.Value, error) {
			r, err := fn.Call(realm, thisArg, []runtime.Value{v, runtime.Float(float64(i))})
			if err != nil {
				return nil, err
			}
			if !runtime.ToBoolean(r) {
				all = false
			}
			return nil, nil
		})
		return runtime.Bool(all), err
	})

	method(in, proto, "some", 1, func(realm runtime.Realm, args []runtime.Value) (runtime.Value, error) {
		any := false
		_, err := arrayIterate(in, realm, args, func(v runtime.Value, i int, fn *runtime.Object, thisArg runtime.Value) (runtime.Value, error) {
			r, err := fn.Call(realm, thisArg, []runtime.Value{v, runtime.Float(float64(i))})
			if err != nil {
				return nil, err
			}
			if runtime.ToBoolean(r) {
				any = true
			}
			return nil, nil
		})
		return runtime.Bool(any), err
	})

	method(in, proto, "reduce", 1, func(realm runtime.Realm, args []runtime.Value) (runtime.Value, error) {
		o, err := thisObject(in, args)
		if err != nil {
			return nil, err
		}
		fn, ok := arg(args, 0).(*runtime.Object)
		if !ok || !runtime.IsFunctionObject(fn) {
			return nil, runtime.NewTypeError("Array.prototype.reduce callback must be a function")
		}
		n := int(runtime.ArrayLength(o))
		i := 0
		var acc runtime.Value
		if argc(args) > 1 {
			acc = arg(args, 1)
		} else {
			if n == 0 {
				return nil, runtime.NewTypeError("reduce of empty array with no initial value")
			}
			acc, err = o.Get(realm, indexName(0))
			if err != nil {
				return nil, err
			}
			i = 1
		}
		for ; i < n; i++ {
			v, err := o.Get(realm, indexName(i))
			if err != nil {
				return nil, err
			}
			acc, err = fn.Call(realm, runtime.Undefined, []runtime.Value{acc, v, runtime.Float(float64(i))})
			if err != nil {
				return nil, err
			}
		}
		return acc, nil
	})

	method(in, proto, "sort", 1, func(realm runtime.Realm, args []runtime.Value) (runtime.Value, error) {
		o, err := thisObject(in, args)
		if err != nil {
			return nil, err
		}
		n := int(runtime.ArrayLength(o))
		items := make([]runtime.Value, n)
		for i := 0; i < n; i++ {
			items[i], err = o.Get(realm, indexName(i))
			if err != nil {
				return nil, err
			}
		}
		cmpFn, _ := arg(args, 0).(*runtime.Object)
		var sortErr error
		sort.SliceStable(items, func(i, j int) bool {
			if sortErr != nil {
				return false
			}
			if cmpFn != nil && runtime.IsFunctionObject(cmpFn) {
				r, err := cmpFn.Call(realm, runtime.Undefined, []runtime.Value{items[i], items[j]})
				if err != nil {
					sortErr = err
					return false
				}
				n, _ := runtime.ToNumber(realm, r)
				return n < 0
			}
			si, err := runtime.ToString(realm, items[i])
			if err != nil {
				sortErr = err
				return false
			}
			sj, err := runtime.ToString(realm, items[j])
			if err != nil {
				sortErr = err
				return false
			}
			return si < sj
		})
		if sortErr != nil {
			return nil, sortErr
		}
		for i, v := range items {
			if err := o.Put(realm, indexName(i), v, true); err != nil {
				return nil, err
			}
		}
		return o, nil
	})

	ctor := in.NativeFunction("Array", 1, func(realm runtime.Realm, args []runtime.Value) (runtime.Value, error) {
		if argc(args) == 1 {
			if n, ok := arg(args, 0).(*runtime.FloatValue); ok {
				return runtime.NewArray(proto, uint32(n.Value)), nil
			}
			if n, ok := arg(args, 0).(*runtime.IntegerValue); ok {
				if n.Value < 0 {
					return nil, runtime.NewRangeError("invalid array length")
				}
				return runtime.NewArray(proto, uint32(n.Value)), nil
			}
		}
		arr := runtime.NewArray(proto, 0)
		for i := 0; i < argc(args); i++ {
			if err := arr.Put(realm, indexName(i), arg(args, i), true); err != nil {
				return nil, err
			}
		}
		return arr, nil
	})
	ctor.DefineHidden("prototype", proto)
	proto.DefineHidden("constructor", ctor)

	isArrayFn := in.NativeFunction("isArray", 1, func(realm runtime.Realm, args []runtime.Value) (runtime.Value, error) {
		return runtime.Bool(runtime.IsArray(arg(args, 0))), nil
	})
	ctor.DefineHidden("isArray", isArrayFn)
	return ctor
}

func arrayJoin(in *evaluator.Interpreter, realm runtime.Realm, args []runtime.Value, sep string) (runtime.Value, error) {
	o, err := thisObject(in, args)
	if err != nil {
		return nil, err
	}
	n := int(runtime.ArrayLength(o))
	parts := make([]string, n)
	for i := 0; i < n; i++ {
		v, err := o.Get(realm, indexName(i))
		if err != nil {
			return nil, err
		}
		if v == runtime.Undefined || v == runtime.Null {
			parts[i] = ""
			continue
		}
		s, err := runtime.ToString(realm, v)
		if err != nil {
			return nil, err
		}
		parts[i] = s
	}
	return runtime.Str(strings.Join(parts, sep)), nil
}

func sliceIndex(realm runtime.Realm, v runtime.Value, length, def int) (int, error) {
	if v == runtime.Undefined {
		return def, nil
	}
	f, err := runtime.ToNumber(realm, v)
	if err != nil {
		return 0, err
	}
	i := int(f)
	if i < 0 {
		i += length
	}
	if i < 0 {
		i = 0
	}
	if i > length {
		i = length
	}
	return i, nil
}

func arrayIterate(in *evaluator.Interpreter, realm runtime.Realm, args []runtime.Value, step func(v runtime.Value, i int, fn *runtime.Object, thisArg runtime.Value) (runtime.Value, error)) (int, error) {
	o, err := thisObject(in, args)
	if err != nil {
		return 0, err
	}
	fn, ok := arg(args, 0).(*runtime.Object)
	if !ok || !runtime.IsFunctionObject(fn) {
		return 0, runtime.NewTypeError("callback must be a function")
	}
	thisArg := arg(args, 1)
	n := int(runtime.ArrayLength(o))
	for i := 0; i < n; i++ {
		v, err := o.Get(realm, indexName(i))
		if err != nil {
			return i, err
		}
		if _, err := step(v, i, fn, thisArg); err != nil {
			return i, err
		}
	}
	return n, nil
}
