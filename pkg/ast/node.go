package ast

// Node is implemented by every AST node. Loc returns the node's source span.
type Node interface {
	Loc() SourceLocation
}

// Statement is implemented by every statement-kind node enumerated in §6:
// Empty, Block, Expression, If, Labeled, Break, Continue, With, Switch,
// Return, Throw, Try, While, DoWhile, For, ForIn, Debugger,
// FunctionDeclaration, VariableDeclaration.
type Statement interface {
	Node
	stmtNode()
}

// Expression is implemented by every expression-kind node enumerated in §6:
// This, Array, Object, Function, Sequence, Unary, Binary, Assignment,
// Update, Logical, Conditional, New, Call, Member, and the literal kinds.
type Expression interface {
	Node
	exprNode()
}
