package evaluator

import (
	"github.com/kiidax/nablajs/pkg/ast"

	"github.com/kiidax/nablajs/internal/runtime"
)

// makeFunction builds a Function object for an AST function node,
// capturing scope as its closure environment (spec §3 Function record:
// "{code, scope, script, strict}"). A non-anonymous FunctionExpression's
// own name is bound inside its own closure scope by the caller.
func (in *Interpreter) makeFunction(node *ast.FunctionNode, script *Script, scope *runtime.Environment) *runtime.Object {
	fn := runtime.NewObject(in.Builtins.FunctionProto)
	fn.Class = "Function"
	name := ""
	if node.Id != nil {
		name = script.Ident(node.Id)
	}
	fn.Host = &runtime.FunctionRecord{Code: node, Scope: scope, Script: script, Name: name}
	fn.DefineHidden("length", runtime.Int(int64(len(node.Params))))
	fn.DefineHidden("name", runtime.Str(name))
	proto := runtime.NewObject(in.Builtins.ObjectProto)
	proto.DefineHidden("constructor", fn)
	fn.DefineHidden("prototype", proto)
	return fn
}

// NativeFunction wraps a Go function as a callable Function object, the
// shape every built-in constructor/method installs (spec §4.7).
func (in *Interpreter) NativeFunction(name string, length int, native runtime.NativeFunc) *runtime.Object {
	fn := runtime.NewObject(in.Builtins.FunctionProto)
	fn.Class = "Function"
	fn.Host = &runtime.FunctionRecord{Native: native, Name: name}
	fn.DefineHidden("length", runtime.Int(int64(length)))
	fn.DefineHidden("name", runtime.Str(name))
	return fn
}

// CallFunction implements runtime.Realm: it is the single entry point
// every accessor getter/setter call and every ordinary function/method
// call in the evaluator funnels through.
func (in *Interpreter) CallFunction(fn *runtime.Object, this runtime.Value, args []runtime.Value) (runtime.Value, error) {
	fr, ok := fn.Host.(*runtime.FunctionRecord)
	if !ok {
		return nil, runtime.NewTypeError("value is not callable")
	}
	if fr.Native != nil {
		return fr.Native(in, append([]runtime.Value{this}, args...))
	}
	node, _ := fr.Code.(*ast.FunctionNode)
	script, _ := fr.Script.(*Script)
	scope := fr.Scope
	if node == nil || script == nil {
		return runtime.Undefined, nil
	}
	if err := in.callStack.Push(fr.Name, node.Loc().Start.Line); err != nil {
		return nil, runtime.NewRangeError("%s", err.Error())
	}
	defer in.callStack.Pop()

	callEnv := runtime.NewDeclarativeEnvironment(scope)
	for i, p := range node.Params {
		pname := script.Ident(p)
		var v runtime.Value = runtime.Undefined
		if i < len(args) {
			v = args[i]
		}
		callEnv.CreateMutableBinding(in, pname, false)
		_ = callEnv.SetMutableBinding(in, pname, v, false)
	}
	argsObj := in.makeArguments(fn, args, script)
	callEnv.CreateMutableBinding(in, "arguments", false)
	_ = callEnv.SetMutableBinding(in, "arguments", argsObj, false)

	thisVal := this
	if thisVal == nil || thisVal == runtime.Undefined {
		thisVal = in.Global
	}

	in.pushFrame(&frame{env: callEnv, this: thisVal, strict: fr.Strict, script: script})
	defer in.popFrame()

	hoist(in, script, node.Body.Body, callEnv)
	for _, stmt := range node.Body.Body {
		c, err := in.execStatement(stmt)
		if err != nil {
			return nil, err
		}
		switch c.Type {
		case Return:
			return c.Value, nil
		case Throw:
			return nil, in.completionToError(c)
		case Break, Continue:
			// Break/Continue at the top of a function is a SyntaxError
			// (spec §4.5's Call contract) — the parser should reject an
			// unlabelled break/continue outside any loop/switch, so
			// reaching here means a labelled break/continue named a
			// label that isn't actually enclosing it within this body.
			return nil, in.completionToError(in.throwSyntaxError("illegal break/continue statement"))
		}
	}
	return runtime.Undefined, nil
}

// makeArguments builds the per-call `arguments` array-like object (spec
// §4.5's Function Call contract).
func (in *Interpreter) makeArguments(callee *runtime.Object, args []runtime.Value, _ *Script) *runtime.Object {
	obj := runtime.NewObject(in.Builtins.ObjectProto)
	obj.Class = "Arguments"
	for i, v := range args {
		obj.DefineDataProperty(indexName(i), v)
	}
	obj.DefineHidden("length", runtime.Int(int64(len(args))))
	obj.DefineHidden("callee", callee)
	return obj
}

func indexName(i int) string {
	return runtime.Int(int64(i)).String()
}
