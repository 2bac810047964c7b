package parser

import (
	"curse/internal/ast"
	"curse/internal/token"
)

func (p *Parser) parsePat() ast.Pat {
	switch p.cur.Kind {
	case token.IDENT:
		tok := p.cur
		if tok.Literal == "_" {
			p.advance()
			return &ast.WildcardPat{Span: tok.Span}
		}
		first := p.parseIdent()
		if p.cur.Kind == token.DOT {
			path := []ast.Ident{first}
			for p.cur.Kind == token.DOT {
				p.advance()
				path = append(path, p.parseIdent())
			}
			inner := p.parsePatAtomOrNil()
			span := first.Span
			if inner != nil {
				span = span.Merge(inner.PatSpan())
			}
			return &ast.ConstructorPat{Path: path, Inner: inner, Span: span}
		}
		// A capitalized identifier always names a choice variant, e.g.
		// `Some x` (with a payload binder) or `None` (without one) —
		// lowercase names are plain bindings.
		if isUpper(first.Name) {
			inner := p.parsePatAtomOrNil()
			span := first.Span
			if inner != nil {
				span = span.Merge(inner.PatSpan())
			}
			return &ast.ConstructorPat{Path: []ast.Ident{first}, Inner: inner, Span: span}
		}
		return &ast.IdentPat{Name: first.Name, Span: first.Span}
	case token.INTEGER:
		tok := p.cur
		p.advance()
		return &ast.IntegerPat{Text: tok.Literal, Span: tok.Span}
	case token.TRUE:
		tok := p.cur
		p.advance()
		return &ast.BoolPat{Value: true, Span: tok.Span}
	case token.FALSE:
		tok := p.cur
		p.advance()
		return &ast.BoolPat{Value: false, Span: tok.Span}
	case token.LPAREN:
		return p.parseParenOrTuplePat()
	case token.LBRACE:
		return p.parseRecordPat()
	default:
		p.errorf(p.cur.Span, "expected a pattern, found %s", p.cur.Kind)
		span := p.cur.Span
		p.advance()
		return &ast.WildcardPat{Span: span}
	}
}

func startsPatAtom(k token.Kind) bool {
	switch k {
	case token.IDENT, token.INTEGER, token.TRUE, token.FALSE, token.LPAREN, token.LBRACE:
		return true
	default:
		return false
	}
}

func (p *Parser) parsePatAtom() ast.Pat {
	return p.parsePat()
}

// parsePatAtomOrNil returns nil when no further pattern atom follows,
// matching a constructor pattern with no explicit payload binder.
func (p *Parser) parsePatAtomOrNil() ast.Pat {
	if !startsPatAtom(p.cur.Kind) {
		return nil
	}
	return p.parsePatAtom()
}

func isUpper(s string) bool {
	if s == "" {
		return false
	}
	c := s[0]
	return c >= 'A' && c <= 'Z'
}

func (p *Parser) parseParenOrTuplePat() ast.Pat {
	start := p.cur.Span
	p.advance()
	if p.cur.Kind == token.RPAREN {
		end := p.cur.Span
		p.advance()
		return &ast.TuplePat{Span: start.Merge(end)}
	}
	first := p.parsePat()
	if p.cur.Kind == token.COMMA {
		elems := []ast.Pat{first}
		for p.cur.Kind == token.COMMA {
			p.advance()
			elems = append(elems, p.parsePat())
		}
		end := p.expect(token.RPAREN)
		return &ast.TuplePat{Elements: elems, Span: start.Merge(end.Span)}
	}
	p.expect(token.RPAREN)
	return first
}

func (p *Parser) parseRecordPat() ast.Pat {
	start := p.cur.Span
	p.advance()
	var fields []ast.RecordFieldPat
	for p.cur.Kind != token.RBRACE && p.cur.Kind != token.EOF {
		name := p.parseIdent()
		var fpat ast.Pat
		if p.cur.Kind == token.COLON {
			p.advance()
			fpat = p.parsePat()
		}
		fields = append(fields, ast.RecordFieldPat{Name: name, Pat: fpat})
		if p.cur.Kind == token.COMMA {
			p.advance()
		} else {
			break
		}
	}
	end := p.expect(token.RBRACE)
	return &ast.RecordPat{Fields: fields, Span: start.Merge(end.Span)}
}
