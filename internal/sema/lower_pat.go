package sema

import (
	"strconv"

	"curse/internal/ast"
	"curse/internal/diag"
	"curse/internal/hir"
	"curse/internal/types"
)

func (s *Scope) errorPat(span ast.Pat) *hir.Pat {
	return s.ctx.Pats.Alloc(hir.Pat{Kind: hir.PatError, Type: s.ctx.Table.Fresh(), Span: span.PatSpan()})
}

// lowerPat lowers one syntactic pattern, binding any names it introduces
// into the enclosing scope's locals stack. ascribed, when non-nil, seeds
// the pattern's type instead of a fresh variable; callers still unify
// the ascription separately so a mismatch is reported at the ascription
// itself rather than silently trusted.
func (s *Scope) lowerPat(p ast.Pat, ascribed *types.Type) *hir.Pat {
	switch p := p.(type) {
	case *ast.WildcardPat:
		return s.ctx.Pats.Alloc(hir.Pat{Kind: hir.PatWildcard, Type: patType(s, ascribed), Span: p.Span})

	case *ast.IdentPat:
		typ := patType(s, ascribed)
		idx := s.push(p.Name, typ)
		return s.ctx.Pats.Alloc(hir.Pat{Kind: hir.PatBind, BindName: p.Name, BindIndex: idx, Type: typ, Span: p.Span})

	case *ast.IntegerPat:
		if _, err := strconv.ParseInt(p.Text, 10, 32); err != nil {
			s.ctx.report(diag.ParseIntError(p.Span, p.Text))
			return s.errorPat(p)
		}
		return s.ctx.Pats.Alloc(hir.Pat{Kind: hir.PatInt, IntText: p.Text, Type: types.Int(), Span: p.Span})

	case *ast.BoolPat:
		return s.ctx.Pats.Alloc(hir.Pat{Kind: hir.PatBool, Bool: p.Value, Type: types.Bool(), Span: p.Span})

	case *ast.TuplePat:
		if len(p.Elements) == 0 {
			return s.ctx.Pats.Alloc(hir.Pat{Kind: hir.PatTuple, Type: types.Unit(), Span: p.Span})
		}
		elems := make([]*hir.Pat, len(p.Elements))
		elemTypes := make([]types.Type, len(p.Elements))
		for i, el := range p.Elements {
			elems[i] = s.lowerPat(el, nil)
			elemTypes[i] = elems[i].Type
		}
		return s.ctx.Pats.Alloc(hir.Pat{Kind: hir.PatTuple, Elements: elems, Type: types.Tuple(elemTypes...), Span: p.Span})

	case *ast.RecordPat:
		return s.lowerRecordPat(p)

	case *ast.ConstructorPat:
		return s.lowerConstructorPat(p)

	default:
		return s.errorPat(p)
	}
}

func patType(s *Scope, ascribed *types.Type) types.Type {
	if ascribed != nil {
		return *ascribed
	}
	return s.ctx.Table.Fresh()
}

func (s *Scope) lowerRecordPat(p *ast.RecordPat) *hir.Pat {
	fields := make([]hir.RecordFieldPat, len(p.Fields))
	typeFields := make([]types.RecordField, len(p.Fields))
	for i, f := range p.Fields {
		fieldPat := f.Pat
		if fieldPat == nil {
			fieldPat = &ast.IdentPat{Name: f.Name.Name, Span: f.Name.Span}
		}
		lowered := s.lowerPat(fieldPat, nil)
		fields[i] = hir.RecordFieldPat{Name: f.Name.Name, Pat: lowered}
		typeFields[i] = types.RecordField{Name: f.Name.Name, Type: lowered.Type}
	}
	return s.ctx.Pats.Alloc(hir.Pat{Kind: hir.PatRecord, Fields: fields, Type: types.Record(typeFields...), Span: p.Span})
}

func (s *Scope) lowerConstructorPat(p *ast.ConstructorPat) *hir.Pat {
	variantName := p.Path[len(p.Path)-1].Name

	var inner *hir.Pat
	if p.Inner != nil {
		inner = s.lowerPat(p.Inner, nil)
	} else {
		inner = s.ctx.Pats.Alloc(hir.Pat{Kind: hir.PatTuple, Type: types.Unit(), Span: p.Span})
	}

	choiceName, ok := s.ctx.variantOwner[variantName]
	if !ok {
		s.ctx.report(diag.UnknownVariant(p.Span, pathStringPat(p.Path)))
		return s.errorPat(p)
	}
	choice := s.ctx.Choices[choiceName]
	for _, v := range choice.Variants {
		if v.Name == variantName {
			s.ctx.unifyAt(p.Span, v.Type, inner.Type)
			path := make([]string, len(p.Path))
			for i, seg := range p.Path {
				path[i] = seg.Name
			}
			return s.ctx.Pats.Alloc(hir.Pat{
				Kind: hir.PatConstructor, Path: path, Inner: inner,
				Type: types.Named(choiceName), Span: p.Span,
			})
		}
	}
	return s.errorPat(p)
}

func pathStringPat(path []ast.Ident) string {
	out := ""
	for i, seg := range path {
		if i > 0 {
			out += "."
		}
		out += seg.Name
	}
	return out
}
