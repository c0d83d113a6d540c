package evaluator

import (
	"github.com/kiidax/nablajs/pkg/ast"

	"github.com/kiidax/nablajs/internal/runtime"
)

// hoist implements spec §4.5's two-pass hoisting: every `var` name
// reachable in body (without descending into nested function bodies)
// gets a mutable binding initialized to undefined, and every function
// declaration reachable the same way is bound eagerly to its function
// value, in source order, with later declarations of the same name
// overwriting earlier ones. Function declarations run after var names
// are created but before any statement executes, so a function
// declaration always wins over a `var` of the same name.
func hoist(in *Interpreter, s *Script, body []ast.Statement, env *runtime.Environment) {
	collectVarNames(s, body, func(name string) {
		if !env.HasBinding(in, name) {
			env.CreateMutableBinding(in, name, false)
		}
	})
	collectFunctionDecls(s, body, func(decl *ast.FunctionDeclaration) {
		name := s.Ident(decl.Function.Id)
		fn := in.makeFunction(decl.Function, s, env)
		env.CreateMutableBinding(in, name, false)
		_ = env.SetMutableBinding(in, name, fn, false)
	})
}

// collectVarNames walks body (and, recursively, every nested statement
// that is not itself a function body) collecting every distinct `var`
// declarator name.
func collectVarNames(s *Script, body []ast.Statement, emit func(name string)) {
	for _, stmt := range body {
		walkVarNames(s, stmt, emit)
	}
}

func walkVarNames(s *Script, stmt ast.Statement, emit func(name string)) {
	switch n := stmt.(type) {
	case *ast.VariableDeclaration:
		for _, d := range n.Declarations {
			emit(s.Ident(d.Id))
		}
	case *ast.BlockStatement:
		collectVarNames(s, n.Body, emit)
	case *ast.IfStatement:
		walkVarNames(s, n.Consequent, emit)
		if n.Alternate != nil {
			walkVarNames(s, n.Alternate, emit)
		}
	case *ast.LabeledStatement:
		walkVarNames(s, n.Body, emit)
	case *ast.WithStatement:
		walkVarNames(s, n.Body, emit)
	case *ast.WhileStatement:
		walkVarNames(s, n.Body, emit)
	case *ast.DoWhileStatement:
		walkVarNames(s, n.Body, emit)
	case *ast.ForStatement:
		if decl, ok := n.Init.(*ast.VariableDeclaration); ok {
			for _, d := range decl.Declarations {
				emit(s.Ident(d.Id))
			}
		}
		walkVarNames(s, n.Body, emit)
	case *ast.ForInStatement:
		if decl, ok := n.Left.(*ast.VariableDeclaration); ok {
			for _, d := range decl.Declarations {
				emit(s.Ident(d.Id))
			}
		}
		walkVarNames(s, n.Body, emit)
	case *ast.TryStatement:
		collectVarNames(s, n.Block.Body, emit)
		if n.Handler != nil {
			collectVarNames(s, n.Handler.Body.Body, emit)
		}
		if n.Finalizer != nil {
			collectVarNames(s, n.Finalizer.Body, emit)
		}
	case *ast.SwitchStatement:
		for _, c := range n.Cases {
			collectVarNames(s, c.Consequent, emit)
		}
	}
	// FunctionDeclaration/FunctionExpression bodies are intentionally not
	// descended into: their own `var`s hoist into their own call frame.
}

// collectFunctionDecls walks body (and, recursively, every nested
// block-like compound statement, mirroring walkVarNames above) looking
// for FunctionDeclaration statements. Like collectVarNames, it does not
// descend into nested function bodies: those get their own hoisting pass
// on entry.
func collectFunctionDecls(s *Script, body []ast.Statement, emit func(*ast.FunctionDeclaration)) {
	for _, stmt := range body {
		walkFunctionDecls(s, stmt, emit)
	}
}

func walkFunctionDecls(s *Script, stmt ast.Statement, emit func(*ast.FunctionDeclaration)) {
	switch n := stmt.(type) {
	case *ast.FunctionDeclaration:
		emit(n)
	case *ast.BlockStatement:
		collectFunctionDecls(s, n.Body, emit)
	case *ast.IfStatement:
		walkFunctionDecls(s, n.Consequent, emit)
		if n.Alternate != nil {
			walkFunctionDecls(s, n.Alternate, emit)
		}
	case *ast.LabeledStatement:
		walkFunctionDecls(s, n.Body, emit)
	case *ast.WithStatement:
		walkFunctionDecls(s, n.Body, emit)
	case *ast.WhileStatement:
		walkFunctionDecls(s, n.Body, emit)
	case *ast.DoWhileStatement:
		walkFunctionDecls(s, n.Body, emit)
	case *ast.ForStatement:
		walkFunctionDecls(s, n.Body, emit)
	case *ast.ForInStatement:
		walkFunctionDecls(s, n.Body, emit)
	case *ast.TryStatement:
		collectFunctionDecls(s, n.Block.Body, emit)
		if n.Handler != nil {
			collectFunctionDecls(s, n.Handler.Body.Body, emit)
		}
		if n.Finalizer != nil {
			collectFunctionDecls(s, n.Finalizer.Body, emit)
		}
	case *ast.SwitchStatement:
		for _, c := range n.Cases {
			collectFunctionDecls(s, c.Consequent, emit)
		}
	}
}
