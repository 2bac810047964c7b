package parser

import (
	"curse/internal/ast"
	"curse/internal/token"
)

// symbolKinds maps the token kinds that can stand for a built-in infix
// operator in the `fun` position of an application to their ast.SymbolKind.
var symbolKinds = map[token.Kind]ast.SymbolKind{
	token.PLUS:    ast.SymPlus,
	token.MINUS:   ast.SymMinus,
	token.STAR:    ast.SymStar,
	token.SLASH:   ast.SymSlash,
	token.PERCENT: ast.SymPercent,
	token.DOT:     ast.SymDot,
	token.DOTDOT:  ast.SymDotDot,
	token.SEMI:    ast.SymSemi,
	token.EQEQ:    ast.SymEq,
	token.LT:      ast.SymLt,
	token.GT:      ast.SymGt,
	token.LE:      ast.SymLe,
	token.GE:      ast.SymGe,
}

func startsAtom(k token.Kind) bool {
	if _, ok := symbolKinds[k]; ok {
		return true
	}
	switch k {
	case token.IDENT, token.INTEGER, token.TRUE, token.FALSE, token.LPAREN, token.PIPE, token.LBRACE, token.REF, token.MUT:
		return true
	default:
		return false
	}
}

// parseExpr parses a left-associative chain of ternary applications:
// `a fun1 b fun2 c` parses as `((a fun1 b) fun2 c)`. A lone atom with no
// following fun/rhs pair is returned unwrapped.
func (p *Parser) parseExpr() ast.Expr {
	acc := p.parseAtom()
	for startsAtom(p.cur.Kind) {
		fun := p.parseAtom()
		if !startsAtom(p.cur.Kind) {
			p.errorf(p.cur.Span, "expected a right-hand operand after %s, found %s", describeExpr(fun), p.cur.Kind)
			break
		}
		rhs := p.parseAtom()
		acc = &ast.ApplExpr{Lhs: acc, Fun: fun, Rhs: rhs, Span: acc.ExprSpan().Merge(rhs.ExprSpan())}
	}
	return acc
}

func describeExpr(e ast.Expr) string {
	switch e.(type) {
	case *ast.SymbolExpr:
		return "operator"
	case *ast.IdentExpr:
		return "identifier"
	default:
		return "expression"
	}
}

func (p *Parser) parseAtom() ast.Expr {
	if sym, ok := symbolKinds[p.cur.Kind]; ok {
		tok := p.cur
		p.advance()
		return &ast.SymbolExpr{Op: sym, Span: tok.Span}
	}

	switch p.cur.Kind {
	case token.INTEGER:
		tok := p.cur
		p.advance()
		return &ast.IntegerExpr{Text: tok.Literal, Span: tok.Span}
	case token.TRUE:
		tok := p.cur
		p.advance()
		return &ast.BoolExpr{Value: true, Span: tok.Span}
	case token.FALSE:
		tok := p.cur
		p.advance()
		return &ast.BoolExpr{Value: false, Span: tok.Span}
	case token.IDENT:
		return p.parseIdentOrConstructor()
	case token.LPAREN:
		return p.parseParenOrTuple()
	case token.PIPE:
		return p.parseSingleArmClosure()
	case token.LBRACE:
		return p.parseBraceExpr()
	case token.REF:
		start := p.cur.Span
		p.advance()
		kind := ast.RegionRef
		if p.cur.Kind == token.MUT {
			p.advance()
			kind = ast.RegionRefMut
		}
		body := p.parseAtom()
		return &ast.RegionExpr{Kind: kind, Body: body, Span: start.Merge(body.ExprSpan())}
	case token.MUT:
		start := p.cur.Span
		p.advance()
		body := p.parseAtom()
		return &ast.RegionExpr{Kind: ast.RegionMut, Body: body, Span: start.Merge(body.ExprSpan())}
	default:
		p.errorf(p.cur.Span, "expected an expression, found %s", p.cur.Kind)
		span := p.cur.Span
		p.advance()
		return &ast.IdentExpr{Name: "<error>", Span: span}
	}
}

// parseIdentOrConstructor parses a bare lowercase identifier, a dotted
// path applied to a following atom as a constructor (`Option.Some 1`),
// or a bare capitalized identifier, which always names a choice variant
// (`Some 1`, or `None` with no payload atom following).
func (p *Parser) parseIdentOrConstructor() ast.Expr {
	first := p.parseIdent()
	if p.cur.Kind == token.DOT {
		path := []ast.Ident{first}
		for p.cur.Kind == token.DOT {
			p.advance()
			path = append(path, p.parseIdent())
		}
		inner := p.parseAtom()
		return &ast.ConstructorExpr{Path: path, Inner: inner, Span: first.Span.Merge(inner.ExprSpan())}
	}
	if isUpper(first.Name) && startsAtom(p.cur.Kind) {
		inner := p.parseAtom()
		return &ast.ConstructorExpr{Path: []ast.Ident{first}, Inner: inner, Span: first.Span.Merge(inner.ExprSpan())}
	}
	if isUpper(first.Name) {
		return &ast.ConstructorExpr{Path: []ast.Ident{first}, Inner: &ast.TupleExpr{Span: first.Span}, Span: first.Span}
	}
	return &ast.IdentExpr{Name: first.Name, Span: first.Span}
}

func (p *Parser) parseParenOrTuple() ast.Expr {
	start := p.cur.Span
	p.advance()
	if p.cur.Kind == token.RPAREN {
		end := p.cur.Span
		p.advance()
		return &ast.TupleExpr{Span: start.Merge(end)}
	}
	first := p.parseExpr()
	if p.cur.Kind == token.COMMA {
		elems := []ast.Expr{first}
		for p.cur.Kind == token.COMMA {
			p.advance()
			elems = append(elems, p.parseExpr())
		}
		end := p.expect(token.RPAREN)
		return &ast.TupleExpr{Elements: elems, Span: start.Merge(end.Span)}
	}
	end := p.expect(token.RPAREN)
	return &ast.ParenExpr{Inner: first, Span: start.Merge(end.Span)}
}

func (p *Parser) parseParamList() []ast.Param {
	var params []ast.Param
	for {
		pat := p.parsePat()
		param := ast.Param{Pat: pat, Span: pat.PatSpan()}
		if p.cur.Kind == token.COLON {
			p.advance()
			asc := p.parseType()
			param.Ascription = asc
			param.Span = param.Span.Merge(asc.TypeSpan())
		}
		params = append(params, param)
		if p.cur.Kind == token.COMMA {
			p.advance()
			continue
		}
		break
	}
	return params
}

func (p *Parser) parseArm() ast.Arm {
	start := p.expect(token.PIPE)
	var params []ast.Param
	if p.cur.Kind != token.PIPE {
		params = p.parseParamList()
	}
	p.expect(token.PIPE)
	body := p.parseExpr()
	return ast.Arm{Params: params, Body: body, Span: start.Span.Merge(body.ExprSpan())}
}

func (p *Parser) parseSingleArmClosure() ast.Expr {
	arm := p.parseArm()
	return &ast.ClosureExpr{Arms: []ast.Arm{arm}, Span: arm.Span}
}

// parseBraceExpr disambiguates a brace-delimited closure (starts with a
// PIPE-led arm) from a record literal (starts with a field name or is
// empty).
func (p *Parser) parseBraceExpr() ast.Expr {
	start := p.cur.Span
	if p.peek.Kind == token.PIPE {
		p.advance() // consume '{'
		var arms []ast.Arm
		for p.cur.Kind == token.PIPE {
			arms = append(arms, p.parseArm())
			if p.cur.Kind == token.COMMA {
				p.advance()
			} else {
				break
			}
		}
		end := p.expect(token.RBRACE)
		return &ast.ClosureExpr{Arms: arms, Span: start.Merge(end.Span)}
	}

	p.advance() // consume '{'
	var fields []ast.RecordField
	for p.cur.Kind != token.RBRACE && p.cur.Kind != token.EOF {
		name := p.parseIdent()
		var value ast.Expr
		if p.cur.Kind == token.COLON {
			p.advance()
			value = p.parseExpr()
		}
		fields = append(fields, ast.RecordField{Name: name, Value: value})
		if p.cur.Kind == token.COMMA {
			p.advance()
		} else {
			break
		}
	}
	end := p.expect(token.RBRACE)
	return &ast.RecordExpr{Fields: fields, Span: start.Merge(end.Span)}
}
