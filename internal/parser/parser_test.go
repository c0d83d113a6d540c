package parser

import (
	"testing"

	"github.com/kiidax/nablajs/pkg/ast"
)

// ============================================================================
// Parse shape checks (supporting infrastructure, lighter test depth than
// the object model / evaluator core)
// ============================================================================

func TestParseProgramVarDeclaration(t *testing.T) {
	p := New(`var x = 1 + 2;`, "test")
	prog, err := p.ParseProgram()
	if err != nil {
		t.Fatalf("ParseProgram() error: %v", err)
	}
	if len(prog.Body) != 1 {
		t.Fatalf("len(prog.Body) = %d, want 1", len(prog.Body))
	}
	decl, ok := prog.Body[0].(*ast.VariableDeclaration)
	if !ok {
		t.Fatalf("prog.Body[0] = %T, want *ast.VariableDeclaration", prog.Body[0])
	}
	if len(decl.Declarations) != 1 {
		t.Fatalf("len(decl.Declarations) = %d, want 1", len(decl.Declarations))
	}
	if _, ok := decl.Declarations[0].Init.(*ast.BinaryExpression); !ok {
		t.Errorf("Init = %T, want *ast.BinaryExpression", decl.Declarations[0].Init)
	}
}

func TestParseProgramFunctionDeclaration(t *testing.T) {
	p := New(`function add(a, b) { return a + b; }`, "test")
	prog, err := p.ParseProgram()
	if err != nil {
		t.Fatalf("ParseProgram() error: %v", err)
	}
	if len(prog.Body) != 1 {
		t.Fatalf("len(prog.Body) = %d, want 1", len(prog.Body))
	}
	decl, ok := prog.Body[0].(*ast.FunctionDeclaration)
	if !ok {
		t.Fatalf("prog.Body[0] = %T, want *ast.FunctionDeclaration", prog.Body[0])
	}
	fn := decl.Function
	if len(fn.Params) != 2 {
		t.Errorf("len(fn.Params) = %d, want 2", len(fn.Params))
	}
	if len(fn.Body.Body) != 1 {
		t.Fatalf("len(fn.Body.Body) = %d, want 1", len(fn.Body.Body))
	}
	if _, ok := fn.Body.Body[0].(*ast.ReturnStatement); !ok {
		t.Errorf("fn.Body.Body[0] = %T, want *ast.ReturnStatement", fn.Body.Body[0])
	}
}

func TestParseProgramIfElse(t *testing.T) {
	p := New(`if (a) b(); else c();`, "test")
	prog, err := p.ParseProgram()
	if err != nil {
		t.Fatalf("ParseProgram() error: %v", err)
	}
	ifStmt, ok := prog.Body[0].(*ast.IfStatement)
	if !ok {
		t.Fatalf("prog.Body[0] = %T, want *ast.IfStatement", prog.Body[0])
	}
	if ifStmt.Alternate == nil {
		t.Errorf("Alternate is nil, want the else branch")
	}
}

func TestParseProgramAutomaticSemicolonInsertion(t *testing.T) {
	p := New("var a = 1\nvar b = 2\n", "test")
	prog, err := p.ParseProgram()
	if err != nil {
		t.Fatalf("ParseProgram() error: %v", err)
	}
	if len(prog.Body) != 2 {
		t.Fatalf("len(prog.Body) = %d, want 2 (ASI should split these into two statements)", len(prog.Body))
	}
}

func TestParseProgramMissingSemicolonIsSyntaxError(t *testing.T) {
	p := New(`var a = 1 var b = 2`, "test")
	if _, err := p.ParseProgram(); err == nil {
		t.Fatalf("expected a SyntaxError, got nil")
	}
}

func TestParseExpressionOperatorPrecedence(t *testing.T) {
	p := New(`1 + 2 * 3`, "test")
	expr, err := p.ParseExpression()
	if err != nil {
		t.Fatalf("ParseExpression() error: %v", err)
	}
	bin, ok := expr.(*ast.BinaryExpression)
	if !ok {
		t.Fatalf("expr = %T, want *ast.BinaryExpression", expr)
	}
	if _, ok := bin.Right.(*ast.BinaryExpression); !ok {
		t.Errorf("Right = %T, want a nested BinaryExpression for the higher-precedence `2 * 3`", bin.Right)
	}
	if _, ok := bin.Left.(*ast.NumberLiteral); !ok {
		t.Errorf("Left = %T, want *ast.NumberLiteral", bin.Left)
	}
}
