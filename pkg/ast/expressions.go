package ast

// ThisExpression evaluates to the current `this` binding.
type ThisExpression struct{ SourceLocation }

func (*ThisExpression) exprNode() {}

// ArrayLiteral constructs a new array, evaluating Elements in source
// order. A nil entry represents an elision (a skipped index).
type ArrayLiteral struct {
	SourceLocation
	Elements []Expression
}

func (*ArrayLiteral) exprNode() {}

// Property is one entry of an ObjectLiteral. Kind is "init", "get", or
// "set"; Key is an *Identifier, *StringLiteral, or *NumberLiteral.
type Property struct {
	SourceLocation
	Key   Expression
	Value Expression
	Kind  string
}

// ObjectLiteral constructs a new object, installing each Property in
// source order. Duplicate keys collapse to the last writer; get/set
// entries install an accessor property.
type ObjectLiteral struct {
	SourceLocation
	Properties []*Property
}

func (*ObjectLiteral) exprNode() {}

// SequenceExpression evaluates Expressions left to right and yields the
// last one's value (the comma operator).
type SequenceExpression struct {
	SourceLocation
	Expressions []Expression
}

func (*SequenceExpression) exprNode() {}

// UnaryExpression applies a prefix unary operator: delete, void, typeof,
// +, -, ~, !.
type UnaryExpression struct {
	SourceLocation
	Operator string
	Argument Expression
}

func (*UnaryExpression) exprNode() {}

// BinaryExpression applies one of the arithmetic, bitwise, shift,
// relational, equality, in, or instanceof operators to Left and Right.
type BinaryExpression struct {
	SourceLocation
	Operator string
	Left     Expression
	Right    Expression
}

func (*BinaryExpression) exprNode() {}

// AssignmentExpression assigns Right (optionally combined with the
// current value of Left via Operator's binary counterpart, for the 11
// compound forms) to Left, which must be an *Identifier or
// *MemberExpression.
type AssignmentExpression struct {
	SourceLocation
	Operator string
	Left     Expression
	Right    Expression
}

func (*AssignmentExpression) exprNode() {}

// UpdateExpression applies ++ or -- to Argument, in prefix or postfix
// position.
type UpdateExpression struct {
	SourceLocation
	Operator string
	Argument Expression
	Prefix   bool
}

func (*UpdateExpression) exprNode() {}

// LogicalExpression short-circuits && and ||.
type LogicalExpression struct {
	SourceLocation
	Operator string
	Left     Expression
	Right    Expression
}

func (*LogicalExpression) exprNode() {}

// ConditionalExpression is the ternary `Test ? Consequent : Alternate`.
type ConditionalExpression struct {
	SourceLocation
	Test       Expression
	Consequent Expression
	Alternate  Expression
}

func (*ConditionalExpression) exprNode() {}

// NewExpression constructs a fresh object via Callee.Construct(Arguments).
type NewExpression struct {
	SourceLocation
	Callee    Expression
	Arguments []Expression
}

func (*NewExpression) exprNode() {}

// CallExpression invokes Callee.Call(Arguments) with a `this` binding
// derived from how Callee was evaluated (spec §4.5, Call contract).
type CallExpression struct {
	SourceLocation
	Callee    Expression
	Arguments []Expression
}

func (*CallExpression) exprNode() {}

// MemberExpression reads Object[Property] (Computed) or Object.Property
// (dotted, Property is an *Identifier treated as a literal name).
type MemberExpression struct {
	SourceLocation
	Object   Expression
	Property Expression
	Computed bool
}

func (*MemberExpression) exprNode() {}
