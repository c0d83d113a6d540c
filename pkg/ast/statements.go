package ast

// EmptyStatement has no effect when evaluated.
type EmptyStatement struct{ SourceLocation }

func (*EmptyStatement) stmtNode() {}

// BlockStatement evaluates its Body in order until a non-Normal completion.
type BlockStatement struct {
	SourceLocation
	Body []Statement
}

func (*BlockStatement) stmtNode() {}

// ExpressionStatement evaluates Expression and records its value as the
// completion record's value (so a top-level `eval` returns the last
// expression statement's value).
type ExpressionStatement struct {
	SourceLocation
	Expression Expression
}

func (*ExpressionStatement) stmtNode() {}

// IfStatement branches on ToBoolean(Test). Alternate is nil when there is
// no else-clause.
type IfStatement struct {
	SourceLocation
	Test       Expression
	Consequent Statement
	Alternate  Statement
}

func (*IfStatement) stmtNode() {}

// LabeledStatement attaches Label to Body so that a matching
// break/continue inside Body can target it.
type LabeledStatement struct {
	SourceLocation
	Label *Identifier
	Body  Statement
}

func (*LabeledStatement) stmtNode() {}

// BreakStatement exits the nearest enclosing iteration/switch, or the
// statement labeled Label when Label is non-nil.
type BreakStatement struct {
	SourceLocation
	Label *Identifier
}

func (*BreakStatement) stmtNode() {}

// ContinueStatement restarts the nearest enclosing iteration, or the one
// labeled Label when Label is non-nil.
type ContinueStatement struct {
	SourceLocation
	Label *Identifier
}

func (*ContinueStatement) stmtNode() {}

// WithStatement pushes an object-backed environment over ToObject(Object)
// (with ProvideThis=true) for the duration of Body.
type WithStatement struct {
	SourceLocation
	Object Expression
	Body   Statement
}

func (*WithStatement) stmtNode() {}

// SwitchCase is one `case Test:` (or `default:` when Test is nil) arm of a
// SwitchStatement.
type SwitchCase struct {
	SourceLocation
	Test       Expression // nil for the default case
	Consequent []Statement
}

// SwitchStatement evaluates Discriminant, finds the first Case whose Test
// is strictly equal to it (or Default if none matches), and executes case
// bodies in order, falling through until a Break or other non-Normal
// completion.
type SwitchStatement struct {
	SourceLocation
	Discriminant Expression
	Cases        []*SwitchCase
}

func (*SwitchStatement) stmtNode() {}

// ReturnStatement sets the enclosing function call's completion to Return
// with Argument's value (undefined when Argument is nil).
type ReturnStatement struct {
	SourceLocation
	Argument Expression
}

func (*ReturnStatement) stmtNode() {}

// ThrowStatement evaluates Argument, stores it in the pending-exception
// slot, and sets the completion to Throw.
type ThrowStatement struct {
	SourceLocation
	Argument Expression
}

func (*ThrowStatement) stmtNode() {}

// CatchClause binds the caught value to Param in a fresh declarative
// environment containing only that binding, then evaluates Body.
type CatchClause struct {
	SourceLocation
	Param *Identifier
	Body  *BlockStatement
}

// TryStatement evaluates Block; if it threw and Handler is present, the
// exception is consumed and Handler runs; Finalizer (if present) always
// runs afterward and can replace a pending completion with its own
// non-Normal one (spec §4.5, Try).
type TryStatement struct {
	SourceLocation
	Block     *BlockStatement
	Handler   *CatchClause // nil if no catch clause
	Finalizer *BlockStatement // nil if no finally clause
}

func (*TryStatement) stmtNode() {}

// WhileStatement is a pretest loop.
type WhileStatement struct {
	SourceLocation
	Test Expression
	Body Statement
}

func (*WhileStatement) stmtNode() {}

// DoWhileStatement is a posttest loop.
type DoWhileStatement struct {
	SourceLocation
	Body Statement
	Test Expression
}

func (*DoWhileStatement) stmtNode() {}

// ForStatement is a C-style counted loop. Init may be an Expression, a
// *VariableDeclaration, or nil; Test and Update may be nil.
type ForStatement struct {
	SourceLocation
	Init   Node
	Test   Expression
	Update Expression
	Body   Statement
}

func (*ForStatement) stmtNode() {}

// ForInStatement enumerates the enumerable own property names of
// ToObject(Right), assigning each to Left before evaluating Body. Left is
// an *Identifier, a MemberExpression, or a *VariableDeclaration with a
// single declarator.
type ForInStatement struct {
	SourceLocation
	Left  Node
	Right Expression
	Body  Statement
}

func (*ForInStatement) stmtNode() {}

// DebuggerStatement has no evaluation effect in this implementation.
type DebuggerStatement struct{ SourceLocation }

func (*DebuggerStatement) stmtNode() {}

// VariableDeclarator is one `name` or `name = init` entry of a var
// statement.
type VariableDeclarator struct {
	SourceLocation
	Id   *Identifier
	Init Expression // nil when there is no initializer
}

// VariableDeclaration declares one or more `var` bindings. Kind is always
// "var" (spec §1 excludes let/const-only distinctions).
type VariableDeclaration struct {
	SourceLocation
	Declarations []*VariableDeclarator
	Kind         string
}

func (*VariableDeclaration) stmtNode() {}
