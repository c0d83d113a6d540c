package ast

// NullLiteral is the literal `null`.
type NullLiteral struct{ SourceLocation }

func (*NullLiteral) exprNode() {}

// BooleanLiteral is the literal `true` or `false`.
type BooleanLiteral struct {
	SourceLocation
	Value bool
}

func (*BooleanLiteral) exprNode() {}

// NumberLiteral is a numeric literal, already parsed to a double (spec
// §3: "double"; integral literals are reduced to the small-int
// representation by the evaluator when they fit, not by the parser).
type NumberLiteral struct {
	SourceLocation
	Value float64
}

func (*NumberLiteral) exprNode() {}

// StringLiteral is a string literal stored as an index into the owning
// Script's string table (spec §6: "String (small-int index into the
// script's string table)").
type StringLiteral struct {
	SourceLocation
	Index int
}

func (*StringLiteral) exprNode() {}

// RegExpLiteral is a regular-expression literal; Pattern and Flags are
// passed through to the external RegExp engine uninterpreted.
type RegExpLiteral struct {
	SourceLocation
	Pattern string
	Flags   string
}

func (*RegExpLiteral) exprNode() {}

// Identifier names a binding to resolve through the environment chain.
// Stored as a string-table index, per spec §6.
type Identifier struct {
	SourceLocation
	Index int
}

func (*Identifier) exprNode() {}
