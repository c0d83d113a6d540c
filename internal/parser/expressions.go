package parser

import (
	"strconv"
	"strings"

	"github.com/kiidax/nablajs/internal/token"
	"github.com/kiidax/nablajs/pkg/ast"
)

// parseExpression parses a full expression, including the comma operator.
func (p *Parser) parseExpression() (ast.Expression, error) {
	start := p.cur.Pos
	first, err := p.parseAssignmentExpression()
	if err != nil {
		return nil, err
	}
	if p.cur.Kind != token.COMMA {
		return first, nil
	}
	seq := &ast.SequenceExpression{Expressions: []ast.Expression{first}}
	for p.cur.Kind == token.COMMA {
		p.next()
		e, err := p.parseAssignmentExpression()
		if err != nil {
			return nil, err
		}
		seq.Expressions = append(seq.Expressions, e)
	}
	seq.SourceLocation = p.loc(start)
	return seq, nil
}

var assignOps = map[token.Kind]string{
	token.ASSIGN:     "=",
	token.PLUS_EQ:    "+=",
	token.MINUS_EQ:   "-=",
	token.STAR_EQ:    "*=",
	token.SLASH_EQ:   "/=",
	token.PERCENT_EQ: "%=",
	token.SHL_EQ:     "<<=",
	token.SHR_EQ:     ">>=",
	token.USHR_EQ:    ">>>=",
	token.AND_EQ:     "&=",
	token.OR_EQ:      "|=",
	token.XOR_EQ:     "^=",
}

func (p *Parser) parseAssignmentExpression() (ast.Expression, error) {
	start := p.cur.Pos
	left, err := p.parseConditionalExpression()
	if err != nil {
		return nil, err
	}
	if op, ok := assignOps[p.cur.Kind]; ok {
		p.next()
		right, err := p.parseAssignmentExpression()
		if err != nil {
			return nil, err
		}
		return &ast.AssignmentExpression{SourceLocation: p.loc(start), Operator: op, Left: left, Right: right}, nil
	}
	return left, nil
}

func (p *Parser) parseConditionalExpression() (ast.Expression, error) {
	start := p.cur.Pos
	test, err := p.parseBinaryExpression(0)
	if err != nil {
		return nil, err
	}
	if p.cur.Kind != token.QUESTION {
		return test, nil
	}
	p.next()
	cons, err := p.parseAssignmentExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.COLON); err != nil {
		return nil, err
	}
	alt, err := p.parseAssignmentExpression()
	if err != nil {
		return nil, err
	}
	return &ast.ConditionalExpression{SourceLocation: p.loc(start), Test: test, Consequent: cons, Alternate: alt}, nil
}

// binPrec gives each binary/logical operator's precedence; higher binds
// tighter. Logical && and || are handled alongside the arithmetic/bitwise
// operators here and split into LogicalExpression vs BinaryExpression
// nodes based on the operator.
var binPrec = map[token.Kind]int{
	token.LOGOR:      1,
	token.LOGAND:     2,
	token.OR:         3,
	token.XOR:        4,
	token.AND:        5,
	token.EQ:         6,
	token.NEQ:        6,
	token.SEQ:        6,
	token.SNEQ:       6,
	token.LT:         7,
	token.GT:         7,
	token.LE:         7,
	token.GE:         7,
	token.INSTANCEOF: 7,
	token.IN:         7,
	token.SHL:        8,
	token.SHR:        8,
	token.USHR:       8,
	token.PLUS:       9,
	token.MINUS:      9,
	token.STAR:       10,
	token.SLASH:      10,
	token.PERCENT:    10,
}

var binOpText = map[token.Kind]string{
	token.LOGOR: "||", token.LOGAND: "&&",
	token.OR: "|", token.XOR: "^", token.AND: "&",
	token.EQ: "==", token.NEQ: "!=", token.SEQ: "===", token.SNEQ: "!==",
	token.LT: "<", token.GT: ">", token.LE: "<=", token.GE: ">=",
	token.INSTANCEOF: "instanceof", token.IN: "in",
	token.SHL: "<<", token.SHR: ">>", token.USHR: ">>>",
	token.PLUS: "+", token.MINUS: "-",
	token.STAR: "*", token.SLASH: "/", token.PERCENT: "%",
}

func (p *Parser) parseBinaryExpression(minPrec int) (ast.Expression, error) {
	start := p.cur.Pos
	left, err := p.parseUnaryExpression()
	if err != nil {
		return nil, err
	}
	for {
		prec, ok := binPrec[p.cur.Kind]
		if !ok || prec < minPrec {
			return left, nil
		}
		opKind := p.cur.Kind
		op := binOpText[opKind]
		p.next()
		right, err := p.parseBinaryExpression(prec + 1)
		if err != nil {
			return nil, err
		}
		loc := p.loc(start)
		if opKind == token.LOGAND || opKind == token.LOGOR {
			left = &ast.LogicalExpression{SourceLocation: loc, Operator: op, Left: left, Right: right}
		} else {
			left = &ast.BinaryExpression{SourceLocation: loc, Operator: op, Left: left, Right: right}
		}
	}
}

var unaryOps = map[token.Kind]string{
	token.DELETE: "delete", token.VOID: "void", token.TYPEOF: "typeof",
	token.PLUS: "+", token.MINUS: "-", token.NOT: "~", token.LOGNOT: "!",
}

func (p *Parser) parseUnaryExpression() (ast.Expression, error) {
	start := p.cur.Pos
	if op, ok := unaryOps[p.cur.Kind]; ok {
		p.next()
		arg, err := p.parseUnaryExpression()
		if err != nil {
			return nil, err
		}
		return &ast.UnaryExpression{SourceLocation: p.loc(start), Operator: op, Argument: arg}, nil
	}
	if p.cur.Kind == token.INC || p.cur.Kind == token.DEC {
		op := "++"
		if p.cur.Kind == token.DEC {
			op = "--"
		}
		p.next()
		arg, err := p.parseUnaryExpression()
		if err != nil {
			return nil, err
		}
		return &ast.UpdateExpression{SourceLocation: p.loc(start), Operator: op, Argument: arg, Prefix: true}, nil
	}
	return p.parsePostfixExpression()
}

func (p *Parser) parsePostfixExpression() (ast.Expression, error) {
	start := p.cur.Pos
	expr, err := p.parseLeftHandSideExpression()
	if err != nil {
		return nil, err
	}
	if (p.cur.Kind == token.INC || p.cur.Kind == token.DEC) && !p.cur.PrecededByNewline {
		op := "++"
		if p.cur.Kind == token.DEC {
			op = "--"
		}
		p.next()
		return &ast.UpdateExpression{SourceLocation: p.loc(start), Operator: op, Argument: expr, Prefix: false}, nil
	}
	return expr, nil
}

func (p *Parser) parseLeftHandSideExpression() (ast.Expression, error) {
	start := p.cur.Pos
	var expr ast.Expression
	var err error
	if p.cur.Kind == token.NEW {
		expr, err = p.parseNewExpression()
	} else {
		expr, err = p.parsePrimaryExpression()
	}
	if err != nil {
		return nil, err
	}
	for {
		switch p.cur.Kind {
		case token.DOT:
			p.next()
			nameTok, err := p.expect(token.IDENT)
			if err != nil {
				return nil, err
			}
			prop := p.identifierFromLiteral(p.loc(start), nameTok.Literal)
			expr = &ast.MemberExpression{SourceLocation: p.loc(start), Object: expr, Property: prop, Computed: false}
		case token.LBRACKET:
			p.next()
			idx, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(token.RBRACKET); err != nil {
				return nil, err
			}
			expr = &ast.MemberExpression{SourceLocation: p.loc(start), Object: expr, Property: idx, Computed: true}
		case token.LPAREN:
			args, err := p.parseArguments()
			if err != nil {
				return nil, err
			}
			expr = &ast.CallExpression{SourceLocation: p.loc(start), Callee: expr, Arguments: args}
		default:
			return expr, nil
		}
	}
}

func (p *Parser) parseNewExpression() (ast.Expression, error) {
	start := p.cur.Pos
	p.next() // consume `new`
	var callee ast.Expression
	var err error
	if p.cur.Kind == token.NEW {
		callee, err = p.parseNewExpression()
	} else {
		callee, err = p.parsePrimaryExpression()
	}
	if err != nil {
		return nil, err
	}
	for {
		switch p.cur.Kind {
		case token.DOT:
			p.next()
			nameTok, err := p.expect(token.IDENT)
			if err != nil {
				return nil, err
			}
			prop := p.identifierFromLiteral(p.loc(start), nameTok.Literal)
			callee = &ast.MemberExpression{SourceLocation: p.loc(start), Object: callee, Property: prop, Computed: false}
		case token.LBRACKET:
			p.next()
			idx, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(token.RBRACKET); err != nil {
				return nil, err
			}
			callee = &ast.MemberExpression{SourceLocation: p.loc(start), Object: callee, Property: idx, Computed: true}
		default:
			var args []ast.Expression
			if p.cur.Kind == token.LPAREN {
				args, err = p.parseArguments()
				if err != nil {
					return nil, err
				}
			}
			return &ast.NewExpression{SourceLocation: p.loc(start), Callee: callee, Arguments: args}, nil
		}
	}
}

func (p *Parser) parseArguments() ([]ast.Expression, error) {
	if _, err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}
	var args []ast.Expression
	for p.cur.Kind != token.RPAREN {
		arg, err := p.parseAssignmentExpression()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		if p.cur.Kind == token.COMMA {
			p.next()
			continue
		}
		break
	}
	if _, err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	return args, nil
}

func (p *Parser) parsePrimaryExpression() (ast.Expression, error) {
	start := p.cur.Pos
	switch p.cur.Kind {
	case token.THIS:
		p.next()
		return &ast.ThisExpression{SourceLocation: p.loc(start)}, nil
	case token.NULL:
		p.next()
		return &ast.NullLiteral{SourceLocation: p.loc(start)}, nil
	case token.TRUE:
		p.next()
		return &ast.BooleanLiteral{SourceLocation: p.loc(start), Value: true}, nil
	case token.FALSE:
		p.next()
		return &ast.BooleanLiteral{SourceLocation: p.loc(start), Value: false}, nil
	case token.NUMBER:
		lit := p.cur.Literal
		p.next()
		val, err := parseNumericLiteral(lit)
		if err != nil {
			return nil, p.errorf(start, "invalid number literal %q", lit)
		}
		return &ast.NumberLiteral{SourceLocation: p.loc(start), Value: val}, nil
	case token.STRING:
		lit := p.cur.Literal
		p.next()
		return &ast.StringLiteral{SourceLocation: p.loc(start), Index: p.strs.Intern(lit)}, nil
	case token.REGEXP:
		lit := p.cur.Literal
		p.next()
		pattern, flags := splitRegexLiteral(lit)
		return &ast.RegExpLiteral{SourceLocation: p.loc(start), Pattern: pattern, Flags: flags}, nil
	case token.IDENT:
		lit := p.cur.Literal
		p.next()
		return p.identifierFromLiteral(p.loc(start), lit), nil
	case token.FUNCTION:
		fn, err := p.parseFunctionNode(false)
		if err != nil {
			return nil, err
		}
		return &ast.FunctionExpression{SourceLocation: p.loc(start), Function: fn}, nil
	case token.LPAREN:
		p.next()
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RPAREN); err != nil {
			return nil, err
		}
		return expr, nil
	case token.LBRACKET:
		return p.parseArrayLiteral()
	case token.LBRACE:
		return p.parseObjectLiteral()
	default:
		return nil, p.errorf(start, "unexpected token %q", p.cur.Literal)
	}
}

func parseNumericLiteral(lit string) (float64, error) {
	if strings.HasPrefix(lit, "0x") || strings.HasPrefix(lit, "0X") {
		n, err := strconv.ParseInt(lit[2:], 16, 64)
		return float64(n), err
	}
	return strconv.ParseFloat(lit, 64)
}

func splitRegexLiteral(lit string) (pattern, flags string) {
	end := strings.LastIndexByte(lit, '/')
	return lit[1:end], lit[end+1:]
}

func (p *Parser) parseArrayLiteral() (ast.Expression, error) {
	start := p.cur.Pos
	p.next() // consume [
	arr := &ast.ArrayLiteral{}
	for p.cur.Kind != token.RBRACKET {
		if p.cur.Kind == token.COMMA {
			arr.Elements = append(arr.Elements, nil) // elision
			p.next()
			continue
		}
		elem, err := p.parseAssignmentExpression()
		if err != nil {
			return nil, err
		}
		arr.Elements = append(arr.Elements, elem)
		if p.cur.Kind == token.COMMA {
			p.next()
			continue
		}
		break
	}
	if _, err := p.expect(token.RBRACKET); err != nil {
		return nil, err
	}
	arr.SourceLocation = p.loc(start)
	return arr, nil
}

func (p *Parser) parseObjectLiteral() (ast.Expression, error) {
	start := p.cur.Pos
	p.next() // consume {
	obj := &ast.ObjectLiteral{}
	for p.cur.Kind != token.RBRACE {
		prop, err := p.parseObjectProperty()
		if err != nil {
			return nil, err
		}
		obj.Properties = append(obj.Properties, prop)
		if p.cur.Kind == token.COMMA {
			p.next()
			continue
		}
		break
	}
	if _, err := p.expect(token.RBRACE); err != nil {
		return nil, err
	}
	obj.SourceLocation = p.loc(start)
	return obj, nil
}

func (p *Parser) parseObjectProperty() (*ast.Property, error) {
	start := p.cur.Pos
	kind := "init"
	if p.cur.Kind == token.IDENT && (p.cur.Literal == "get" || p.cur.Literal == "set") &&
		p.peek.Kind != token.COLON && p.peek.Kind != token.COMMA && p.peek.Kind != token.RBRACE {
		kind = p.cur.Literal
		p.next()
	}
	key, err := p.parsePropertyKey()
	if err != nil {
		return nil, err
	}
	if kind == "get" || kind == "set" {
		fn, err := p.parseFunctionNode(false)
		if err != nil {
			return nil, err
		}
		value := &ast.FunctionExpression{SourceLocation: fn.SourceLocation, Function: fn}
		return &ast.Property{SourceLocation: p.loc(start), Key: key, Value: value, Kind: kind}, nil
	}
	if _, err := p.expect(token.COLON); err != nil {
		return nil, err
	}
	value, err := p.parseAssignmentExpression()
	if err != nil {
		return nil, err
	}
	return &ast.Property{SourceLocation: p.loc(start), Key: key, Value: value, Kind: "init"}, nil
}

func (p *Parser) parsePropertyKey() (ast.Expression, error) {
	start := p.cur.Pos
	switch p.cur.Kind {
	case token.IDENT:
		lit := p.cur.Literal
		p.next()
		return p.identifierFromLiteral(p.loc(start), lit), nil
	case token.STRING:
		lit := p.cur.Literal
		p.next()
		return &ast.StringLiteral{SourceLocation: p.loc(start), Index: p.strs.Intern(lit)}, nil
	case token.NUMBER:
		lit := p.cur.Literal
		p.next()
		val, err := parseNumericLiteral(lit)
		if err != nil {
			return nil, p.errorf(start, "invalid number literal %q", lit)
		}
		return &ast.NumberLiteral{SourceLocation: p.loc(start), Value: val}, nil
	default:
		// Reserved words are allowed as property names (e.g. {if: 1}).
		if kw := p.cur.Literal; kw != "" {
			p.next()
			return p.identifierFromLiteral(p.loc(start), kw), nil
		}
		return nil, p.errorf(start, "expected property name, got %q", p.cur.Literal)
	}
}

func (p *Parser) parseFunctionNode(requireName bool) (*ast.FunctionNode, error) {
	start := p.cur.Pos
	if _, err := p.expect(token.FUNCTION); err != nil {
		return nil, err
	}
	fn := &ast.FunctionNode{}
	if p.cur.Kind == token.IDENT {
		idStart := p.cur.Pos
		fn.Id = p.identifierFromLiteral(p.loc(idStart), p.cur.Literal)
		p.next()
	} else if requireName {
		return nil, p.errorf(p.cur.Pos, "function declaration requires a name")
	}
	if _, err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}
	for p.cur.Kind != token.RPAREN {
		pstart := p.cur.Pos
		nameTok, err := p.expect(token.IDENT)
		if err != nil {
			return nil, err
		}
		fn.Params = append(fn.Params, p.identifierFromLiteral(p.loc(pstart), nameTok.Literal))
		if p.cur.Kind == token.COMMA {
			p.next()
			continue
		}
		break
	}
	if _, err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	fn.Body = body
	fn.SourceLocation = p.loc(start)
	return fn, nil
}
