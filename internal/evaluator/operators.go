package evaluator

import (
	"math"

	"github.com/kiidax/nablajs/pkg/ast"

	"github.com/kiidax/nablajs/internal/runtime"
)

func (in *Interpreter) evalLogical(n *ast.LogicalExpression) (runtime.Value, *Completion) {
	left, c := in.evalExpr(n.Left)
	if c != nil {
		return nil, c
	}
	switch n.Operator {
	case "&&":
		if !runtime.ToBoolean(left) {
			return left, nil
		}
	case "||":
		if runtime.ToBoolean(left) {
			return left, nil
		}
	}
	return in.evalExpr(n.Right)
}

func (in *Interpreter) evalUnary(n *ast.UnaryExpression) (runtime.Value, *Completion) {
	if n.Operator == "delete" {
		return in.evalDelete(n.Argument)
	}
	if n.Operator == "typeof" {
		if id, ok := n.Argument.(*ast.Identifier); ok {
			name := in.Script().Ident(id)
			env := runtime.LookupEnvironment(in, in.Env(), name)
			if env == nil {
				return runtime.Str("undefined"), nil
			}
		}
		v, c := in.evalExpr(n.Argument)
		if c != nil {
			return nil, c
		}
		return runtime.Str(runtime.TypeOf(v)), nil
	}

	v, c := in.evalExpr(n.Argument)
	if c != nil {
		return nil, c
	}
	switch n.Operator {
	case "void":
		return runtime.Undefined, nil
	case "!":
		return runtime.Bool(!runtime.ToBoolean(v)), nil
	case "+":
		f, err := runtime.ToNumber(in, v)
		if err != nil {
			return nil, in.abrupt(err)
		}
		return numberLiteralValue(f), nil
	case "-":
		f, err := runtime.ToNumber(in, v)
		if err != nil {
			return nil, in.abrupt(err)
		}
		return numberLiteralValue(-f), nil
	case "~":
		i32, err := runtime.ToInt32(in, v)
		if err != nil {
			return nil, in.abrupt(err)
		}
		return runtime.Int(int64(^i32)), nil
	default:
		return nil, in.throwSyntaxError("unsupported unary operator %q", n.Operator)
	}
}

func (in *Interpreter) evalDelete(target ast.Expression) (runtime.Value, *Completion) {
	m, ok := target.(*ast.MemberExpression)
	if !ok {
		return runtime.True, nil
	}
	baseVal, c := in.evalExpr(m.Object)
	if c != nil {
		return nil, c
	}
	name, c := in.memberPropertyName(m)
	if c != nil {
		return nil, c
	}
	obj, err := runtime.ToObject(in, in.Prototypes(), baseVal)
	if err != nil {
		return nil, in.abrupt(err)
	}
	ok2, err := obj.Delete(name, false)
	if err != nil {
		return nil, in.abrupt(err)
	}
	return runtime.Bool(ok2), nil
}

func (in *Interpreter) evalUpdate(n *ast.UpdateExpression) (runtime.Value, *Completion) {
	old, c := in.evalExpr(n.Argument)
	if c != nil {
		return nil, c
	}
	oldNum, err := runtime.ToNumber(in, old)
	if err != nil {
		return nil, in.abrupt(err)
	}
	delta := 1.0
	if n.Operator == "--" {
		delta = -1.0
	}
	newVal := numberLiteralValue(oldNum + delta)
	if c := in.assignTo(n.Argument, newVal); c != nil {
		return nil, c
	}
	if n.Prefix {
		return newVal, nil
	}
	return numberLiteralValue(oldNum), nil
}

func (in *Interpreter) evalAssignment(n *ast.AssignmentExpression) (runtime.Value, *Completion) {
	if n.Operator == "=" {
		v, c := in.evalExpr(n.Right)
		if c != nil {
			return nil, c
		}
		if c := in.assignTo(n.Left, v); c != nil {
			return nil, c
		}
		return v, nil
	}
	binOp, ok := compoundBinaryOp[n.Operator]
	if !ok {
		return nil, in.throwSyntaxError("unsupported assignment operator %q", n.Operator)
	}
	left, c := in.evalExpr(n.Left)
	if c != nil {
		return nil, c
	}
	right, c := in.evalExpr(n.Right)
	if c != nil {
		return nil, c
	}
	result, err := in.applyBinaryOp(binOp, left, right)
	if err != nil {
		return nil, in.abrupt(err)
	}
	if c := in.assignTo(n.Left, result); c != nil {
		return nil, c
	}
	return result, nil
}

// compoundBinaryOp maps each `op=` compound-assignment operator to the
// plain binary operator it combines with the existing value, per spec
// §6's AssignmentExpression grammar.
var compoundBinaryOp = map[string]string{
	"+=": "+", "-=": "-", "*=": "*", "/=": "/", "%=": "%",
	"<<=": "<<", ">>=": ">>", ">>>=": ">>>",
	"&=": "&", "|=": "|", "^=": "^",
}

func (in *Interpreter) evalBinary(n *ast.BinaryExpression) (runtime.Value, *Completion) {
	left, c := in.evalExpr(n.Left)
	if c != nil {
		return nil, c
	}
	right, c := in.evalExpr(n.Right)
	if c != nil {
		return nil, c
	}
	switch n.Operator {
	case "instanceof":
		return in.evalInstanceof(left, right)
	case "in":
		return in.evalIn(left, right)
	}
	v, err := in.applyBinaryOp(n.Operator, left, right)
	if err != nil {
		return nil, in.abrupt(err)
	}
	return v, nil
}

func (in *Interpreter) evalInstanceof(left, right runtime.Value) (runtime.Value, *Completion) {
	ctor, ok := right.(*runtime.Object)
	if !ok || !runtime.IsFunctionObject(ctor) {
		return nil, in.throwTypeError("right-hand side of instanceof is not callable")
	}
	protoVal, err := ctor.Get(in, "prototype")
	if err != nil {
		return nil, in.abrupt(err)
	}
	proto, ok := protoVal.(*runtime.Object)
	if !ok {
		return nil, in.throwTypeError("prototype is not an object")
	}
	obj, ok := left.(*runtime.Object)
	if !ok {
		return runtime.False, nil
	}
	for cur := obj.Proto; cur != nil; cur = cur.Proto {
		if cur == proto {
			return runtime.True, nil
		}
	}
	return runtime.False, nil
}

func (in *Interpreter) evalIn(left, right runtime.Value) (runtime.Value, *Completion) {
	obj, ok := right.(*runtime.Object)
	if !ok {
		return nil, in.throwTypeError("cannot use 'in' operator on a non-object")
	}
	name, err := runtime.ToString(in, left)
	if err != nil {
		return nil, in.abrupt(err)
	}
	_, owner := obj.GetProperty(name)
	return runtime.Bool(owner != nil), nil
}

// applyBinaryOp implements spec §4.6's numeric/string/comparison binary
// operator semantics (everything except instanceof/in, which need a
// Completion instead of a plain error for their TypeError cases).
func (in *Interpreter) applyBinaryOp(op string, left, right runtime.Value) (runtime.Value, error) {
	switch op {
	case "+":
		lp, err := toPrimitiveOperand(in, left)
		if err != nil {
			return nil, err
		}
		rp, err := toPrimitiveOperand(in, right)
		if err != nil {
			return nil, err
		}
		_, lStr := lp.(*runtime.StringValue)
		_, rStr := rp.(*runtime.StringValue)
		if lStr || rStr {
			ls, err := runtime.ToString(in, lp)
			if err != nil {
				return nil, err
			}
			rs, err := runtime.ToString(in, rp)
			if err != nil {
				return nil, err
			}
			return runtime.Str(ls + rs), nil
		}
		ln, err := runtime.ToNumber(in, lp)
		if err != nil {
			return nil, err
		}
		rn, err := runtime.ToNumber(in, rp)
		if err != nil {
			return nil, err
		}
		return numberLiteralValue(ln + rn), nil
	case "-", "*", "/", "%":
		ln, rn, err := toNumberPair(in, left, right)
		if err != nil {
			return nil, err
		}
		switch op {
		case "-":
			return numberLiteralValue(ln - rn), nil
		case "*":
			return numberLiteralValue(ln * rn), nil
		case "/":
			return numberLiteralValue(ln / rn), nil
		case "%":
			return numberLiteralValue(math.Mod(ln, rn)), nil
		}
	case "<", ">", "<=", ">=":
		return compareValues(in, op, left, right)
	case "==":
		eq, err := runtime.AbstractEquals(in, left, right)
		if err != nil {
			return nil, err
		}
		return runtime.Bool(eq), nil
	case "!=":
		eq, err := runtime.AbstractEquals(in, left, right)
		if err != nil {
			return nil, err
		}
		return runtime.Bool(!eq), nil
	case "===":
		return runtime.Bool(runtime.StrictEquals(left, right)), nil
	case "!==":
		return runtime.Bool(!runtime.StrictEquals(left, right)), nil
	case "&", "|", "^", "<<", ">>":
		li, err := runtime.ToInt32(in, left)
		if err != nil {
			return nil, err
		}
		ri, err := runtime.ToInt32(in, right)
		if err != nil {
			return nil, err
		}
		switch op {
		case "&":
			return runtime.Int(int64(li & ri)), nil
		case "|":
			return runtime.Int(int64(li | ri)), nil
		case "^":
			return runtime.Int(int64(li ^ ri)), nil
		case "<<":
			return runtime.Int(int64(li << (uint32(ri) & 31))), nil
		case ">>":
			return runtime.Int(int64(li >> (uint32(ri) & 31))), nil
		}
	case ">>>":
		lu, err := runtime.ToUint32(in, left)
		if err != nil {
			return nil, err
		}
		ri, err := runtime.ToInt32(in, right)
		if err != nil {
			return nil, err
		}
		return runtime.Int(int64(lu >> (uint32(ri) & 31))), nil
	}
	return nil, runtime.NewSyntaxError("unsupported binary operator %q", op)
}

func toPrimitiveOperand(realm runtime.Realm, v runtime.Value) (runtime.Value, error) {
	if o, ok := v.(*runtime.Object); ok {
		return o.DefaultValue(realm, "")
	}
	return v, nil
}

func toNumberPair(realm runtime.Realm, left, right runtime.Value) (float64, float64, error) {
	ln, err := runtime.ToNumber(realm, left)
	if err != nil {
		return 0, 0, err
	}
	rn, err := runtime.ToNumber(realm, right)
	if err != nil {
		return 0, 0, err
	}
	return ln, rn, nil
}

// compareValues implements spec §4.6's abstract relational comparison:
// string comparison when both operands are primitive strings, numeric
// comparison (with NaN always comparing false) otherwise.
func compareValues(realm runtime.Realm, op string, left, right runtime.Value) (runtime.Value, error) {
	lp, err := toPrimitiveOperand(realm, left)
	if err != nil {
		return nil, err
	}
	rp, err := toPrimitiveOperand(realm, right)
	if err != nil {
		return nil, err
	}
	ls, lIsStr := lp.(*runtime.StringValue)
	rs, rIsStr := rp.(*runtime.StringValue)
	if lIsStr && rIsStr {
		return runtime.Bool(compareStrings(op, ls.Value, rs.Value)), nil
	}
	ln, err := runtime.ToNumber(realm, lp)
	if err != nil {
		return nil, err
	}
	rn, err := runtime.ToNumber(realm, rp)
	if err != nil {
		return nil, err
	}
	if math.IsNaN(ln) || math.IsNaN(rn) {
		return runtime.False, nil
	}
	switch op {
	case "<":
		return runtime.Bool(ln < rn), nil
	case ">":
		return runtime.Bool(ln > rn), nil
	case "<=":
		return runtime.Bool(ln <= rn), nil
	case ">=":
		return runtime.Bool(ln >= rn), nil
	}
	return runtime.False, nil
}

func compareStrings(op, a, b string) bool {
	switch op {
	case "<":
		return a < b
	case ">":
		return a > b
	case "<=":
		return a <= b
	case ">=":
		return a >= b
	}
	return false
}
