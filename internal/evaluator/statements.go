package evaluator

import (
	"github.com/kiidax/nablajs/pkg/ast"

	"github.com/kiidax/nablajs/internal/runtime"
)

// execStatement dispatches one statement node to its executor (spec
// §4.5). The returned Completion's Value carries the last evaluated
// expression value for Normal completions, matching ECMAScript's
// completion-value propagation (used by `eval` and the REPL).
func (in *Interpreter) execStatement(stmt ast.Statement) (*Completion, error) {
	in.stmtCount++
	if in.MaxStatements > 0 && in.stmtCount > in.MaxStatements {
		return in.throwRangeError("statement budget exceeded"), nil
	}
	switch n := stmt.(type) {
	case *ast.EmptyStatement:
		return normalCompletion(nil), nil
	case *ast.BlockStatement:
		return in.execBlock(n.Body)
	case *ast.ExpressionStatement:
		v, c := in.evalExpr(n.Expression)
		if c != nil {
			return c, nil
		}
		return normalCompletion(v), nil
	case *ast.VariableDeclaration:
		return in.execVarDecl(n)
	case *ast.FunctionDeclaration:
		return normalCompletion(nil), nil // already bound during hoisting
	case *ast.IfStatement:
		return in.execIf(n)
	case *ast.LabeledStatement:
		return in.execLabeled(n)
	case *ast.BreakStatement:
		label := ""
		if n.Label != nil {
			label = in.Script().Ident(n.Label)
		}
		return &Completion{Type: Break, Target: label}, nil
	case *ast.ContinueStatement:
		label := ""
		if n.Label != nil {
			label = in.Script().Ident(n.Label)
		}
		return &Completion{Type: Continue, Target: label}, nil
	case *ast.WithStatement:
		return in.execWith(n)
	case *ast.SwitchStatement:
		return in.execSwitch(n)
	case *ast.ReturnStatement:
		var v runtime.Value = runtime.Undefined
		if n.Argument != nil {
			var c *Completion
			v, c = in.evalExpr(n.Argument)
			if c != nil {
				return c, nil
			}
		}
		return &Completion{Type: Return, Value: v}, nil
	case *ast.ThrowStatement:
		v, c := in.evalExpr(n.Argument)
		if c != nil {
			return c, nil
		}
		return &Completion{Type: Throw, Value: v}, nil
	case *ast.TryStatement:
		return in.execTry(n)
	case *ast.WhileStatement:
		return in.execWhile(n, "")
	case *ast.DoWhileStatement:
		return in.execDoWhile(n, "")
	case *ast.ForStatement:
		return in.execFor(n, "")
	case *ast.ForInStatement:
		return in.execForIn(n, "")
	case *ast.DebuggerStatement:
		return normalCompletion(nil), nil
	default:
		return in.throwSyntaxError("unsupported statement kind"), nil
	}
}

func (in *Interpreter) execBlock(body []ast.Statement) (*Completion, error) {
	var last runtime.Value
	for _, stmt := range body {
		c, err := in.execStatement(stmt)
		if err != nil {
			return nil, err
		}
		if c.Value != nil {
			last = c.Value
		}
		if c.isAbrupt() {
			c.Value = last
			return c, nil
		}
	}
	return normalCompletion(last), nil
}

func (in *Interpreter) execVarDecl(n *ast.VariableDeclaration) (*Completion, error) {
	script := in.Script()
	for _, d := range n.Declarations {
		if d.Init == nil {
			continue
		}
		v, c := in.evalExpr(d.Init)
		if c != nil {
			return c, nil
		}
		name := script.Ident(d.Id)
		if err := in.Env().SetMutableBinding(in, name, v, false); err != nil {
			return in.abrupt(err), nil
		}
	}
	return normalCompletion(nil), nil
}

func (in *Interpreter) execIf(n *ast.IfStatement) (*Completion, error) {
	test, c := in.evalExpr(n.Test)
	if c != nil {
		return c, nil
	}
	if runtime.ToBoolean(test) {
		return in.execStatement(n.Consequent)
	}
	if n.Alternate != nil {
		return in.execStatement(n.Alternate)
	}
	return normalCompletion(nil), nil
}

// execLabeled runs Body, routing loop statements through the label so
// `continue label` and `break label` work, and absorbing a matching
// unlabelled-style break targeted at this exact label for non-loop
// bodies (spec §4.5 Labelled Statement).
func (in *Interpreter) execLabeled(n *ast.LabeledStatement) (*Completion, error) {
	label := in.Script().Ident(n.Label)
	var c *Completion
	var err error
	switch body := n.Body.(type) {
	case *ast.WhileStatement:
		c, err = in.execWhile(body, label)
	case *ast.DoWhileStatement:
		c, err = in.execDoWhile(body, label)
	case *ast.ForStatement:
		c, err = in.execFor(body, label)
	case *ast.ForInStatement:
		c, err = in.execForIn(body, label)
	default:
		c, err = in.execStatement(n.Body)
	}
	if err != nil {
		return nil, err
	}
	if c.Type == Break && c.targetsLabel(label) && c.Target == label {
		return normalCompletion(c.Value), nil
	}
	return c, nil
}

func (in *Interpreter) execWith(n *ast.WithStatement) (*Completion, error) {
	v, c := in.evalExpr(n.Object)
	if c != nil {
		return c, nil
	}
	obj, err := runtime.ToObject(in, in.Prototypes(), v)
	if err != nil {
		return in.abrupt(err), nil
	}
	prev := in.Env()
	in.SetEnv(runtime.NewObjectEnvironment(obj, prev, true))
	defer in.SetEnv(prev)
	return in.execStatement(n.Body)
}

func (in *Interpreter) execSwitch(n *ast.SwitchStatement) (*Completion, error) {
	disc, c := in.evalExpr(n.Discriminant)
	if c != nil {
		return c, nil
	}
	matchIdx := -1
	defaultIdx := -1
	for i, sc := range n.Cases {
		if sc.Test == nil {
			defaultIdx = i
			continue
		}
		tv, c := in.evalExpr(sc.Test)
		if c != nil {
			return c, nil
		}
		if runtime.StrictEquals(disc, tv) {
			matchIdx = i
			break
		}
	}
	start := matchIdx
	if start == -1 {
		start = defaultIdx
	}
	if start == -1 {
		return normalCompletion(nil), nil
	}
	var last runtime.Value
	for i := start; i < len(n.Cases); i++ {
		for _, stmt := range n.Cases[i].Consequent {
			rc, err := in.execStatement(stmt)
			if err != nil {
				return nil, err
			}
			if rc.Value != nil {
				last = rc.Value
			}
			if rc.isAbrupt() {
				if rc.Type == Break && rc.Target == "" {
					return normalCompletion(last), nil
				}
				rc.Value = last
				return rc, nil
			}
		}
	}
	return normalCompletion(last), nil
}

func (in *Interpreter) execTry(n *ast.TryStatement) (*Completion, error) {
	c, err := in.execBlock(n.Block.Body)
	if err != nil {
		return nil, err
	}
	if c.Type == Throw && n.Handler != nil {
		prev := in.Env()
		catchEnv := runtime.NewDeclarativeEnvironment(prev)
		name := in.Script().Ident(n.Handler.Param)
		catchEnv.CreateMutableBinding(in, name, true)
		_ = catchEnv.SetMutableBinding(in, name, c.Value, false)
		in.SetEnv(catchEnv)
		c, err = in.execBlock(n.Handler.Body.Body)
		in.SetEnv(prev)
		if err != nil {
			return nil, err
		}
	}
	if n.Finalizer != nil {
		fc, err := in.execBlock(n.Finalizer.Body)
		if err != nil {
			return nil, err
		}
		if fc.isAbrupt() {
			return fc, nil
		}
	}
	return c, nil
}

func (in *Interpreter) execWhile(n *ast.WhileStatement, label string) (*Completion, error) {
	var last runtime.Value
	for {
		test, c := in.evalExpr(n.Test)
		if c != nil {
			return c, nil
		}
		if !runtime.ToBoolean(test) {
			break
		}
		bc, err := in.execStatement(n.Body)
		if err != nil {
			return nil, err
		}
		if bc.Value != nil {
			last = bc.Value
		}
		if bc.Type == Break && bc.targetsLabel(label) {
			break
		}
		if bc.Type == Continue && bc.targetsLabel(label) {
			continue
		}
		if bc.isAbrupt() {
			bc.Value = last
			return bc, nil
		}
	}
	return normalCompletion(last), nil
}

func (in *Interpreter) execDoWhile(n *ast.DoWhileStatement, label string) (*Completion, error) {
	var last runtime.Value
	for {
		bc, err := in.execStatement(n.Body)
		if err != nil {
			return nil, err
		}
		if bc.Value != nil {
			last = bc.Value
		}
		if bc.Type == Break && bc.targetsLabel(label) {
			break
		}
		if bc.isAbrupt() && !(bc.Type == Continue && bc.targetsLabel(label)) {
			bc.Value = last
			return bc, nil
		}
		test, c := in.evalExpr(n.Test)
		if c != nil {
			return c, nil
		}
		if !runtime.ToBoolean(test) {
			break
		}
	}
	return normalCompletion(last), nil
}

func (in *Interpreter) execFor(n *ast.ForStatement, label string) (*Completion, error) {
	if n.Init != nil {
		switch init := n.Init.(type) {
		case *ast.VariableDeclaration:
			if c, err := in.execVarDecl(init); err != nil || c.isAbrupt() {
				return c, err
			}
		case ast.Expression:
			if _, c := in.evalExpr(init); c != nil {
				return c, nil
			}
		}
	}
	var last runtime.Value
	for {
		if n.Test != nil {
			test, c := in.evalExpr(n.Test)
			if c != nil {
				return c, nil
			}
			if !runtime.ToBoolean(test) {
				break
			}
		}
		bc, err := in.execStatement(n.Body)
		if err != nil {
			return nil, err
		}
		if bc.Value != nil {
			last = bc.Value
		}
		if bc.Type == Break && bc.targetsLabel(label) {
			break
		}
		if bc.isAbrupt() && !(bc.Type == Continue && bc.targetsLabel(label)) {
			bc.Value = last
			return bc, nil
		}
		if n.Update != nil {
			if _, c := in.evalExpr(n.Update); c != nil {
				return c, nil
			}
		}
	}
	return normalCompletion(last), nil
}

// execForIn implements spec §4.5 For-In: enumerate Right's enumerable own
// property names (spec §9(a): own properties only, not inherited ones),
// assigning each in turn to Left before running Body.
func (in *Interpreter) execForIn(n *ast.ForInStatement, label string) (*Completion, error) {
	rv, c := in.evalExpr(n.Right)
	if c != nil {
		return c, nil
	}
	if rv == runtime.Undefined || rv == runtime.Null {
		return normalCompletion(nil), nil
	}
	obj, err := runtime.ToObject(in, in.Prototypes(), rv)
	if err != nil {
		return in.abrupt(err), nil
	}
	names := obj.EnumerableOwnNames()
	var last runtime.Value
	for _, name := range names {
		if c := in.assignForInTarget(n.Left, name); c != nil {
			return c, nil
		}
		bc, err := in.execStatement(n.Body)
		if err != nil {
			return nil, err
		}
		if bc.Value != nil {
			last = bc.Value
		}
		if bc.Type == Break && bc.targetsLabel(label) {
			break
		}
		if bc.isAbrupt() && !(bc.Type == Continue && bc.targetsLabel(label)) {
			bc.Value = last
			return bc, nil
		}
	}
	return normalCompletion(last), nil
}

func (in *Interpreter) assignForInTarget(left ast.Node, name string) *Completion {
	value := runtime.Str(name)
	switch l := left.(type) {
	case *ast.VariableDeclaration:
		id := l.Declarations[0].Id
		bindName := in.Script().Ident(id)
		if err := in.Env().SetMutableBinding(in, bindName, value, false); err != nil {
			return in.abrupt(err)
		}
	case *ast.Identifier:
		bindName := in.Script().Ident(l)
		if err := in.assignIdentifier(bindName, value); err != nil {
			return in.abrupt(err)
		}
	case ast.Expression:
		if c := in.assignTo(l, value); c != nil {
			return c
		}
	}
	return nil
}
