package parser

import (
	"curse/internal/ast"
	"curse/internal/token"
)

// parseType parses a binary function type `A B -> C`, a unary function
// type `A -> C`, or a plain type with no arrow. Two juxtaposed type atoms
// followed by `->` form a binary function type; one atom followed by
// `->` forms a unary one.
func (p *Parser) parseType() ast.Type {
	first := p.parseTypeAtom()

	if p.cur.Kind == token.ARROW {
		p.advance()
		out := p.parseType()
		return &ast.FunctionType{Lhs: first, Rhs: nil, Out: out, Span: first.TypeSpan().Merge(out.TypeSpan())}
	}

	if startsTypeAtom(p.cur.Kind) {
		second := p.parseTypeAtom()
		p.expect(token.ARROW)
		out := p.parseType()
		return &ast.FunctionType{Lhs: first, Rhs: second, Out: out, Span: first.TypeSpan().Merge(out.TypeSpan())}
	}

	return first
}

func startsTypeAtom(k token.Kind) bool {
	return k == token.IDENT || k == token.LPAREN || k == token.LBRACE
}

// startsTypeArg is deliberately narrower than startsTypeAtom: a named
// type's generic arguments (`Vec I32`, `Result I32 Error`) are bare
// identifiers only. A parenthesized or brace group immediately following
// a type name is instead the start of a second function-parameter atom
// (`x (x () -> x) -> x`), never a generic argument, so the two cases
// don't need a precedence table to stay unambiguous.
func startsTypeArg(k token.Kind) bool {
	return k == token.IDENT
}

func (p *Parser) parseTypeAtom() ast.Type {
	switch p.cur.Kind {
	case token.LBRACE:
		start := p.cur.Span
		p.advance()
		var fields []ast.RecordTypeField
		for p.cur.Kind != token.RBRACE && p.cur.Kind != token.EOF {
			name := p.parseIdent()
			p.expect(token.COLON)
			ftyp := p.parseType()
			fields = append(fields, ast.RecordTypeField{Name: name, Type: ftyp})
			if p.cur.Kind == token.COMMA {
				p.advance()
			} else {
				break
			}
		}
		end := p.expect(token.RBRACE)
		return &ast.RecordType{Fields: fields, Span: start.Merge(end.Span)}
	case token.LPAREN:
		start := p.cur.Span
		p.advance()
		if p.cur.Kind == token.RPAREN {
			end := p.cur.Span
			p.advance()
			return &ast.TupleType{Span: start.Merge(end)}
		}
		first := p.parseType()
		if p.cur.Kind == token.COMMA {
			elems := []ast.Type{first}
			for p.cur.Kind == token.COMMA {
				p.advance()
				elems = append(elems, p.parseType())
			}
			end := p.expect(token.RPAREN)
			return &ast.TupleType{Elements: elems, Span: start.Merge(end.Span)}
		}
		end := p.expect(token.RPAREN)
		_ = end
		return first
	case token.IDENT:
		name := p.parseIdent()
		var args []ast.Type
		for startsTypeArg(p.cur.Kind) {
			args = append(args, p.parseTypeAtom())
		}
		span := name.Span
		if len(args) > 0 {
			span = span.Merge(args[len(args)-1].TypeSpan())
		}
		return &ast.NamedType{Name: name, Args: args, Span: span}
	default:
		p.errorf(p.cur.Span, "expected a type, found %s", p.cur.Kind)
		span := p.cur.Span
		p.advance()
		return &ast.NamedType{Name: ast.Ident{Name: "<error>", Span: span}, Span: span}
	}
}
