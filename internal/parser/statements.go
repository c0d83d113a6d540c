package parser

import (
	"github.com/kiidax/nablajs/internal/lexer"
	"github.com/kiidax/nablajs/internal/token"
	"github.com/kiidax/nablajs/pkg/ast"
)

func (p *Parser) parseStatement() (ast.Statement, error) {
	start := p.cur.Pos
	switch p.cur.Kind {
	case token.SEMI:
		p.next()
		return &ast.EmptyStatement{SourceLocation: p.loc(start)}, nil
	case token.LBRACE:
		return p.parseBlock()
	case token.VAR:
		return p.parseVarStatementAsStatement()
	case token.IF:
		return p.parseIf()
	case token.BREAK:
		return p.parseBreakContinue(true)
	case token.CONTINUE:
		return p.parseBreakContinue(false)
	case token.WITH:
		return p.parseWith()
	case token.SWITCH:
		return p.parseSwitch()
	case token.RETURN:
		return p.parseReturn()
	case token.THROW:
		return p.parseThrow()
	case token.TRY:
		return p.parseTry()
	case token.WHILE:
		return p.parseWhile()
	case token.DO:
		return p.parseDoWhile()
	case token.FOR:
		return p.parseFor()
	case token.DEBUGGER:
		p.next()
		if err := p.consumeSemicolon(); err != nil {
			return nil, err
		}
		return &ast.DebuggerStatement{SourceLocation: p.loc(start)}, nil
	case token.FUNCTION:
		return p.parseFunctionDeclaration()
	case token.IDENT:
		if p.peek.Kind == token.COLON {
			return p.parseLabeled()
		}
		return p.parseExpressionStatement()
	default:
		return p.parseExpressionStatement()
	}
}

func (p *Parser) parseBlock() (*ast.BlockStatement, error) {
	start := p.cur.Pos
	if _, err := p.expect(token.LBRACE); err != nil {
		return nil, err
	}
	blk := &ast.BlockStatement{}
	for p.cur.Kind != token.RBRACE && p.cur.Kind != token.EOF {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		blk.Body = append(blk.Body, stmt)
	}
	if _, err := p.expect(token.RBRACE); err != nil {
		return nil, err
	}
	blk.SourceLocation = p.loc(start)
	return blk, nil
}

func (p *Parser) parseVarStatementAsStatement() (ast.Statement, error) {
	decl, err := p.parseVariableDeclaration()
	if err != nil {
		return nil, err
	}
	if err := p.consumeSemicolon(); err != nil {
		return nil, err
	}
	return decl, nil
}

// parseVariableDeclaration parses `var a, b = 1, c;` without consuming the
// trailing semicolon (callers in `for` need the bare declaration).
func (p *Parser) parseVariableDeclaration() (*ast.VariableDeclaration, error) {
	start := p.cur.Pos
	if _, err := p.expect(token.VAR); err != nil {
		return nil, err
	}
	decl := &ast.VariableDeclaration{Kind: "var"}
	for {
		dstart := p.cur.Pos
		nameTok, err := p.expect(token.IDENT)
		if err != nil {
			return nil, err
		}
		id := p.identifierFromLiteral(p.loc(dstart), nameTok.Literal)
		var init ast.Expression
		if p.cur.Kind == token.ASSIGN {
			p.next()
			init, err = p.parseAssignmentExpression()
			if err != nil {
				return nil, err
			}
		}
		decl.Declarations = append(decl.Declarations, &ast.VariableDeclarator{
			SourceLocation: p.loc(dstart),
			Id:             id,
			Init:           init,
		})
		if p.cur.Kind != token.COMMA {
			break
		}
		p.next()
	}
	decl.SourceLocation = p.loc(start)
	return decl, nil
}

func (p *Parser) parseExpressionStatement() (ast.Statement, error) {
	start := p.cur.Pos
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if err := p.consumeSemicolon(); err != nil {
		return nil, err
	}
	return &ast.ExpressionStatement{SourceLocation: p.loc(start), Expression: expr}, nil
}

func (p *Parser) parseIf() (ast.Statement, error) {
	start := p.cur.Pos
	p.next()
	if _, err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}
	test, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	cons, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	var alt ast.Statement
	if p.cur.Kind == token.ELSE {
		p.next()
		alt, err = p.parseStatement()
		if err != nil {
			return nil, err
		}
	}
	return &ast.IfStatement{SourceLocation: p.loc(start), Test: test, Consequent: cons, Alternate: alt}, nil
}

func (p *Parser) parseBreakContinue(isBreak bool) (ast.Statement, error) {
	start := p.cur.Pos
	p.next()
	var label *ast.Identifier
	if p.cur.Kind == token.IDENT && !p.cur.PrecededByNewline {
		label = p.identifierFromLiteral(p.loc(p.cur.Pos), p.cur.Literal)
		p.next()
	}
	if err := p.consumeSemicolon(); err != nil {
		return nil, err
	}
	loc := p.loc(start)
	if isBreak {
		return &ast.BreakStatement{SourceLocation: loc, Label: label}, nil
	}
	return &ast.ContinueStatement{SourceLocation: loc, Label: label}, nil
}

func (p *Parser) parseWith() (ast.Statement, error) {
	start := p.cur.Pos
	p.next()
	if _, err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}
	obj, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	body, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	return &ast.WithStatement{SourceLocation: p.loc(start), Object: obj, Body: body}, nil
}

func (p *Parser) parseSwitch() (ast.Statement, error) {
	start := p.cur.Pos
	p.next()
	if _, err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}
	disc, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LBRACE); err != nil {
		return nil, err
	}
	sw := &ast.SwitchStatement{SourceLocation: p.loc(start), Discriminant: disc}
	for p.cur.Kind != token.RBRACE && p.cur.Kind != token.EOF {
		cstart := p.cur.Pos
		var test ast.Expression
		if p.cur.Kind == token.CASE {
			p.next()
			test, err = p.parseExpression()
			if err != nil {
				return nil, err
			}
		} else if _, err := p.expect(token.DEFAULT); err != nil {
			return nil, err
		}
		if _, err := p.expect(token.COLON); err != nil {
			return nil, err
		}
		sc := &ast.SwitchCase{SourceLocation: p.loc(cstart), Test: test}
		for p.cur.Kind != token.CASE && p.cur.Kind != token.DEFAULT &&
			p.cur.Kind != token.RBRACE && p.cur.Kind != token.EOF {
			stmt, err := p.parseStatement()
			if err != nil {
				return nil, err
			}
			sc.Consequent = append(sc.Consequent, stmt)
		}
		sw.Cases = append(sw.Cases, sc)
	}
	if _, err := p.expect(token.RBRACE); err != nil {
		return nil, err
	}
	return sw, nil
}

func (p *Parser) parseReturn() (ast.Statement, error) {
	start := p.cur.Pos
	p.next()
	var arg ast.Expression
	if p.cur.Kind != token.SEMI && p.cur.Kind != token.RBRACE && p.cur.Kind != token.EOF && !p.cur.PrecededByNewline {
		var err error
		arg, err = p.parseExpression()
		if err != nil {
			return nil, err
		}
	}
	if err := p.consumeSemicolon(); err != nil {
		return nil, err
	}
	return &ast.ReturnStatement{SourceLocation: p.loc(start), Argument: arg}, nil
}

func (p *Parser) parseThrow() (ast.Statement, error) {
	start := p.cur.Pos
	p.next()
	arg, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if err := p.consumeSemicolon(); err != nil {
		return nil, err
	}
	return &ast.ThrowStatement{SourceLocation: p.loc(start), Argument: arg}, nil
}

func (p *Parser) parseTry() (ast.Statement, error) {
	start := p.cur.Pos
	p.next()
	block, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	t := &ast.TryStatement{SourceLocation: p.loc(start), Block: block}
	if p.cur.Kind == token.CATCH {
		cstart := p.cur.Pos
		p.next()
		if _, err := p.expect(token.LPAREN); err != nil {
			return nil, err
		}
		nameTok, err := p.expect(token.IDENT)
		if err != nil {
			return nil, err
		}
		param := p.identifierFromLiteral(p.loc(cstart), nameTok.Literal)
		if _, err := p.expect(token.RPAREN); err != nil {
			return nil, err
		}
		body, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		t.Handler = &ast.CatchClause{SourceLocation: p.loc(cstart), Param: param, Body: body}
	}
	if p.cur.Kind == token.FINALLY {
		p.next()
		fin, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		t.Finalizer = fin
	}
	if t.Handler == nil && t.Finalizer == nil {
		return nil, p.errorf(start, "try statement requires a catch or finally clause")
	}
	return t, nil
}

func (p *Parser) parseWhile() (ast.Statement, error) {
	start := p.cur.Pos
	p.next()
	if _, err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}
	test, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	body, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	return &ast.WhileStatement{SourceLocation: p.loc(start), Test: test, Body: body}, nil
}

func (p *Parser) parseDoWhile() (ast.Statement, error) {
	start := p.cur.Pos
	p.next()
	body, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.WHILE); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}
	test, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	if p.cur.Kind == token.SEMI {
		p.next()
	}
	return &ast.DoWhileStatement{SourceLocation: p.loc(start), Body: body, Test: test}, nil
}

func (p *Parser) parseFor() (ast.Statement, error) {
	start := p.cur.Pos
	p.next()
	if _, err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}

	var init ast.Node
	if p.cur.Kind == token.VAR {
		decl, err := p.parseVariableDeclaration()
		if err != nil {
			return nil, err
		}
		if len(decl.Declarations) == 1 && p.cur.Kind == token.IN {
			return p.finishForIn(start, decl)
		}
		init = decl
	} else if p.cur.Kind != token.SEMI {
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if p.cur.Kind == token.IN {
			return p.finishForIn(start, expr)
		}
		init = expr
	}

	if _, err := p.expect(token.SEMI); err != nil {
		return nil, err
	}
	var test ast.Expression
	if p.cur.Kind != token.SEMI {
		var err error
		test, err = p.parseExpression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(token.SEMI); err != nil {
		return nil, err
	}
	var update ast.Expression
	if p.cur.Kind != token.RPAREN {
		var err error
		update, err = p.parseExpression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	body, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	return &ast.ForStatement{SourceLocation: p.loc(start), Init: init, Test: test, Update: update, Body: body}, nil
}

func (p *Parser) finishForIn(start lexer.Position, left ast.Node) (ast.Statement, error) {
	p.next() // consume `in`
	right, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	body, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	return &ast.ForInStatement{SourceLocation: p.loc(start), Left: left, Right: right, Body: body}, nil
}

func (p *Parser) parseLabeled() (ast.Statement, error) {
	start := p.cur.Pos
	label := p.identifierFromLiteral(p.loc(start), p.cur.Literal)
	p.next()
	p.next() // consume `:`
	body, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	return &ast.LabeledStatement{SourceLocation: p.loc(start), Label: label, Body: body}, nil
}

func (p *Parser) parseFunctionDeclaration() (ast.Statement, error) {
	start := p.cur.Pos
	fn, err := p.parseFunctionNode(true)
	if err != nil {
		return nil, err
	}
	return &ast.FunctionDeclaration{SourceLocation: p.loc(start), Function: fn}, nil
}
