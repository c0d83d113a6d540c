package evaluator

import (
	"github.com/kiidax/nablajs/pkg/ast"

	"github.com/kiidax/nablajs/internal/runtime"
)

// evalCall implements spec §4.5's Call contract: a MemberExpression
// callee supplies its base object as `this`; any other callee form calls
// with `this` undefined (CallFunction substitutes the global object for
// a non-strict callee, matching spec §4.5's note on that substitution).
func (in *Interpreter) evalCall(n *ast.CallExpression) (runtime.Value, *Completion) {
	var fnVal runtime.Value
	var this runtime.Value = runtime.Undefined
	var c *Completion

	if m, ok := n.Callee.(*ast.MemberExpression); ok {
		var base *runtime.Object
		fnVal, base, _, c = in.evalMember(m)
		if c != nil {
			return nil, c
		}
		this = base
	} else {
		fnVal, c = in.evalExpr(n.Callee)
		if c != nil {
			return nil, c
		}
	}

	fn, ok := fnVal.(*runtime.Object)
	if !ok || !runtime.IsFunctionObject(fn) {
		return nil, in.throwTypeError("value is not a function")
	}

	args, c := in.evalArguments(n.Arguments)
	if c != nil {
		return nil, c
	}
	v, err := fn.Call(in, this, args)
	if err != nil {
		return nil, in.abrupt(err)
	}
	return v, nil
}

func (in *Interpreter) evalNew(n *ast.NewExpression) (runtime.Value, *Completion) {
	calleeVal, c := in.evalExpr(n.Callee)
	if c != nil {
		return nil, c
	}
	ctor, ok := calleeVal.(*runtime.Object)
	if !ok || !runtime.IsFunctionObject(ctor) {
		return nil, in.throwTypeError("value is not a constructor")
	}
	args, c := in.evalArguments(n.Arguments)
	if c != nil {
		return nil, c
	}
	v, err := ctor.Construct(in, in.Builtins.ObjectProto, args)
	if err != nil {
		return nil, in.abrupt(err)
	}
	return v, nil
}

func (in *Interpreter) evalArguments(exprs []ast.Expression) ([]runtime.Value, *Completion) {
	args := make([]runtime.Value, 0, len(exprs))
	for _, e := range exprs {
		v, c := in.evalExpr(e)
		if c != nil {
			return nil, c
		}
		args = append(args, v)
	}
	return args, nil
}
