package evaluator

import (
	"github.com/kiidax/nablajs/pkg/ast"

	"github.com/kiidax/nablajs/internal/runtime"
)

// evalExpr evaluates one expression node. A non-nil Completion is always
// of Type Throw; expressions cannot themselves Break/Continue/Return.
func (in *Interpreter) evalExpr(expr ast.Expression) (runtime.Value, *Completion) {
	script := in.Script()
	switch n := expr.(type) {
	case *ast.NullLiteral:
		return runtime.Null, nil
	case *ast.BooleanLiteral:
		return runtime.Bool(n.Value), nil
	case *ast.NumberLiteral:
		return numberLiteralValue(n.Value), nil
	case *ast.StringLiteral:
		return runtime.Str(script.Str(n)), nil
	case *ast.RegExpLiteral:
		return in.newRegExp(n.Pattern, n.Flags)
	case *ast.Identifier:
		return in.evalIdentifier(script.Ident(n))
	case *ast.ThisExpression:
		return in.This(), nil
	case *ast.ArrayLiteral:
		return in.evalArrayLiteral(n)
	case *ast.ObjectLiteral:
		return in.evalObjectLiteral(n)
	case *ast.FunctionExpression:
		return in.evalFunctionExpression(n), nil
	case *ast.SequenceExpression:
		var v runtime.Value
		for _, e := range n.Expressions {
			var c *Completion
			v, c = in.evalExpr(e)
			if c != nil {
				return nil, c
			}
		}
		return v, nil
	case *ast.UnaryExpression:
		return in.evalUnary(n)
	case *ast.UpdateExpression:
		return in.evalUpdate(n)
	case *ast.BinaryExpression:
		return in.evalBinary(n)
	case *ast.LogicalExpression:
		return in.evalLogical(n)
	case *ast.ConditionalExpression:
		test, c := in.evalExpr(n.Test)
		if c != nil {
			return nil, c
		}
		if runtime.ToBoolean(test) {
			return in.evalExpr(n.Consequent)
		}
		return in.evalExpr(n.Alternate)
	case *ast.AssignmentExpression:
		return in.evalAssignment(n)
	case *ast.MemberExpression:
		v, _, _, c := in.evalMember(n)
		return v, c
	case *ast.CallExpression:
		return in.evalCall(n)
	case *ast.NewExpression:
		return in.evalNew(n)
	default:
		return nil, in.throwSyntaxError("unsupported expression kind")
	}
}

// numberLiteralValue reduces an integral literal to the IntegerValue
// fast path (spec §3: integers are a small-int representation, not a
// distinct ECMAScript type).
func numberLiteralValue(f float64) runtime.Value {
	if i := int64(f); float64(i) == f {
		return runtime.Int(i)
	}
	return runtime.Float(f)
}

func (in *Interpreter) evalIdentifier(name string) (runtime.Value, *Completion) {
	env := runtime.LookupEnvironment(in, in.Env(), name)
	if env == nil {
		return nil, in.throwReferenceError("%s is not defined", name)
	}
	v, err := env.GetBindingValue(in, name, true)
	if err != nil {
		return nil, in.abrupt(err)
	}
	return v, nil
}

// assignIdentifier writes name in the innermost environment that already
// binds it, or — per ES3's implicit global creation for an undeclared
// assignment — creates it on the global object when no scope binds it.
func (in *Interpreter) assignIdentifier(name string, v runtime.Value) error {
	env := runtime.LookupEnvironment(in, in.Env(), name)
	if env == nil {
		return in.GlobalEnv.SetMutableBinding(in, name, v, false)
	}
	return env.SetMutableBinding(in, name, v, true)
}

func (in *Interpreter) evalArrayLiteral(n *ast.ArrayLiteral) (runtime.Value, *Completion) {
	arr := runtime.NewArray(in.Builtins.ArrayProto, uint32(len(n.Elements)))
	for i, el := range n.Elements {
		if el == nil {
			continue
		}
		v, c := in.evalExpr(el)
		if c != nil {
			return nil, c
		}
		arr.DefineDataProperty(indexName(i), v)
	}
	return arr, nil
}

func (in *Interpreter) evalObjectLiteral(n *ast.ObjectLiteral) (runtime.Value, *Completion) {
	obj := runtime.NewObject(in.Builtins.ObjectProto)
	script := in.Script()
	for _, p := range n.Properties {
		key, c := in.propertyKeyName(p.Key, script)
		if c != nil {
			return nil, c
		}
		switch p.Kind {
		case "get", "set":
			fnExpr, ok := p.Value.(*ast.FunctionExpression)
			if !ok {
				return nil, in.throwSyntaxError("accessor property must be a function")
			}
			fn := in.evalFunctionExpression(fnExpr)
			existing, _ := obj.OwnProperty(key)
			var get, set *runtime.Object
			if existing != nil && existing.IsAccessor() {
				get, set = existing.Getter, existing.Setter
			}
			if p.Kind == "get" {
				get = fn
			} else {
				set = fn
			}
			obj.DefineOwnProperty(key, runtime.AccessorProperty(get, set, runtime.Enumerable|runtime.Configurable))
		default:
			v, c := in.evalExpr(p.Value)
			if c != nil {
				return nil, c
			}
			obj.DefineDataProperty(key, v)
		}
	}
	return obj, nil
}

func (in *Interpreter) propertyKeyName(key ast.Expression, script *Script) (string, *Completion) {
	switch k := key.(type) {
	case *ast.Identifier:
		return script.Ident(k), nil
	case *ast.StringLiteral:
		return script.Str(k), nil
	case *ast.NumberLiteral:
		return numberLiteralValue(k.Value).String(), nil
	default:
		v, c := in.evalExpr(key)
		if c != nil {
			return "", c
		}
		s, err := runtime.ToString(in, v)
		if err != nil {
			return "", in.abrupt(err)
		}
		return s, nil
	}
}

func (in *Interpreter) evalFunctionExpression(n *ast.FunctionExpression) *runtime.Object {
	scope := in.Env()
	if n.Function.Id != nil {
		scope = runtime.NewDeclarativeEnvironment(in.Env())
	}
	fn := in.makeFunction(n.Function, in.Script(), scope)
	if n.Function.Id != nil {
		scope.CreateImmutableBinding(in.Script().Ident(n.Function.Id), fn)
	}
	return fn
}

// evalMember evaluates a MemberExpression, returning the property value,
// the base object it was read from (for Call's `this` binding), the
// resolved property name, and any thrown completion.
func (in *Interpreter) evalMember(n *ast.MemberExpression) (runtime.Value, *runtime.Object, string, *Completion) {
	baseVal, c := in.evalExpr(n.Object)
	if c != nil {
		return nil, nil, "", c
	}
	name, c := in.memberPropertyName(n)
	if c != nil {
		return nil, nil, "", c
	}
	obj, err := runtime.ToObject(in, in.Prototypes(), baseVal)
	if err != nil {
		return nil, nil, "", in.abrupt(err)
	}
	v, err := obj.Get(in, name)
	if err != nil {
		return nil, nil, "", in.abrupt(err)
	}
	return v, obj, name, nil
}

func (in *Interpreter) memberPropertyName(n *ast.MemberExpression) (string, *Completion) {
	if !n.Computed {
		id, ok := n.Property.(*ast.Identifier)
		if !ok {
			return "", in.throwSyntaxError("invalid member property")
		}
		return in.Script().Ident(id), nil
	}
	v, c := in.evalExpr(n.Property)
	if c != nil {
		return "", c
	}
	s, err := runtime.ToString(in, v)
	if err != nil {
		return "", in.abrupt(err)
	}
	return s, nil
}

// assignTo stores v into the location denoted by expr, which must be an
// *ast.Identifier or *ast.MemberExpression (spec §4.5 assignment target
// rule).
func (in *Interpreter) assignTo(expr ast.Expression, v runtime.Value) *Completion {
	switch t := expr.(type) {
	case *ast.Identifier:
		name := in.Script().Ident(t)
		if err := in.assignIdentifier(name, v); err != nil {
			return in.abrupt(err)
		}
		return nil
	case *ast.MemberExpression:
		baseVal, c := in.evalExpr(t.Object)
		if c != nil {
			return c
		}
		name, c := in.memberPropertyName(t)
		if c != nil {
			return c
		}
		obj, err := runtime.ToObject(in, in.Prototypes(), baseVal)
		if err != nil {
			return in.abrupt(err)
		}
		if err := obj.Put(in, name, v, false); err != nil {
			return in.abrupt(err)
		}
		return nil
	default:
		return in.throwReferenceError("invalid assignment target")
	}
}
