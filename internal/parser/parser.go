// Package parser implements a hand-rolled recursive-descent parser from
// internal/token to internal/ast. Like internal/lexer, it is an external
// collaborator: internal/sema only ever consumes its *ast.Program output.
package parser

import (
	"fmt"

	"curse/internal/ast"
	"curse/internal/lexer"
	"curse/internal/token"
)

// Error is a syntax error encountered while parsing.
type Error struct {
	Message string
	Span    token.Span
}

func (e *Error) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Span.Line, e.Span.Column, e.Message)
}

type Parser struct {
	l    *lexer.Lexer
	cur  token.Token
	peek token.Token

	Errors []*Error
}

func New(l *lexer.Lexer) *Parser {
	p := &Parser{l: l}
	p.advance()
	p.advance()
	return p
}

func Parse(src string) (*ast.Program, []*Error) {
	p := New(lexer.New(src))
	prog := p.ParseProgram()
	return prog, p.Errors
}

func (p *Parser) advance() {
	p.cur = p.peek
	p.peek = p.l.NextToken()
}

func (p *Parser) errorf(span token.Span, format string, args ...any) {
	p.Errors = append(p.Errors, &Error{Message: fmt.Sprintf(format, args...), Span: span})
}

func (p *Parser) expect(k token.Kind) token.Token {
	if p.cur.Kind != k {
		p.errorf(p.cur.Span, "expected %s, found %s", k, p.cur.Kind)
		return p.cur
	}
	tok := p.cur
	p.advance()
	return tok
}

// ParseProgram parses a whole source file, recovering from a malformed
// top-level item by skipping to the next one so later items can still be
// reported on, matching the "never abort on first error" propagation
// policy used everywhere downstream of the parser.
func (p *Parser) ParseProgram() *ast.Program {
	prog := &ast.Program{}
	for p.cur.Kind != token.EOF {
		switch p.cur.Kind {
		case token.FN:
			if def := p.parseFunctionDef(); def != nil {
				prog.FunctionDefs = append(prog.FunctionDefs, def)
			}
		case token.STRUCT:
			if def := p.parseStructDef(); def != nil {
				prog.StructDefs = append(prog.StructDefs, def)
			}
		case token.CHOICE:
			if def := p.parseChoiceDef(); def != nil {
				prog.ChoiceDefs = append(prog.ChoiceDefs, def)
			}
		default:
			p.errorf(p.cur.Span, "expected a top-level definition (fn, struct, or choice), found %s", p.cur.Kind)
			p.advance()
		}
	}
	return prog
}

func (p *Parser) parseIdent() ast.Ident {
	tok := p.expect(token.IDENT)
	return ast.Ident{Name: tok.Literal, Span: tok.Span}
}

func (p *Parser) maybeGenericParams() *ast.GenericParams {
	if p.cur.Kind != token.PIPE {
		return nil
	}
	start := p.cur.Span
	p.advance()
	gp := &ast.GenericParams{}
	gp.Names = append(gp.Names, p.parseIdent())
	for p.cur.Kind == token.COMMA {
		p.advance()
		gp.Names = append(gp.Names, p.parseIdent())
	}
	end := p.expect(token.PIPE)
	gp.Span = start.Merge(end.Span)
	return gp
}

func (p *Parser) parseFunctionDef() *ast.FunctionDef {
	start := p.expect(token.FN)
	name := p.parseIdent()
	generics := p.maybeGenericParams()

	var typ ast.Type
	if p.cur.Kind == token.COLON {
		p.advance()
		typ = p.parseType()
	}
	p.expect(token.EQ)
	body := p.parseExpr()

	return &ast.FunctionDef{
		Name:     name,
		Generics: generics,
		Type:     typ,
		Body:     body,
		Span:     start.Span.Merge(body.ExprSpan()),
	}
}

func (p *Parser) parseStructDef() *ast.StructDef {
	start := p.expect(token.STRUCT)
	name := p.parseIdent()
	generics := p.maybeGenericParams()
	typ := p.parseType()
	return &ast.StructDef{Name: name, Generics: generics, Type: typ, Span: start.Span.Merge(typ.TypeSpan())}
}

func (p *Parser) parseChoiceDef() *ast.ChoiceDef {
	start := p.expect(token.CHOICE)
	name := p.parseIdent()
	generics := p.maybeGenericParams()
	if generics == nil && p.cur.Kind == token.IDENT {
		// Bare generic names between the choice name and its brace:
		// `choice Option T { ... }`.
		gp := &ast.GenericParams{Span: p.cur.Span}
		for p.cur.Kind == token.IDENT {
			gp.Names = append(gp.Names, p.parseIdent())
		}
		gp.Span = gp.Span.Merge(gp.Names[len(gp.Names)-1].Span)
		generics = gp
	}
	p.expect(token.LBRACE)

	var variants []ast.VariantDef
	for p.cur.Kind != token.RBRACE && p.cur.Kind != token.EOF {
		vname := p.parseIdent()
		var vtyp ast.Type
		if startsTypeAtom(p.cur.Kind) {
			vtyp = p.parseType()
		} else {
			vtyp = &ast.TupleType{Span: vname.Span}
		}
		variants = append(variants, ast.VariantDef{Name: vname, Type: vtyp, Span: vname.Span.Merge(vtyp.TypeSpan())})
		if p.cur.Kind == token.COMMA {
			p.advance()
		} else {
			break
		}
	}
	end := p.expect(token.RBRACE)
	return &ast.ChoiceDef{Name: name, Generics: generics, Variants: variants, Span: start.Span.Merge(end.Span)}
}
