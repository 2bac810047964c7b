package sema

import (
	"strconv"

	"curse/internal/ast"
	"curse/internal/config"
	"curse/internal/diag"
	"curse/internal/hir"
	"curse/internal/types"
)

func (s *Scope) errorExpr(span ast.Expr) *hir.Expr {
	return s.ctx.Exprs.Alloc(hir.Expr{Kind: hir.ExprError, Type: s.ctx.Table.Fresh(), Span: span.ExprSpan()})
}

// lowerExpr lowers one syntactic expression into a typed HIR node. It
// never returns nil and never stops early: every child of a composite
// expression is lowered even when an earlier sibling already failed, so
// a single mistake never hides downstream errors.
func (s *Scope) lowerExpr(e ast.Expr) *hir.Expr {
	switch e := e.(type) {
	case *ast.ParenExpr:
		return s.lowerExpr(e.Inner)

	case *ast.IntegerExpr:
		if _, err := strconv.ParseInt(e.Text, 10, 32); err != nil {
			s.ctx.report(diag.ParseIntError(e.Span, e.Text))
			return s.errorExpr(e)
		}
		return s.ctx.Exprs.Alloc(hir.Expr{Kind: hir.ExprInt, IntText: e.Text, Type: types.Int(), Span: e.Span})

	case *ast.BoolExpr:
		return s.ctx.Exprs.Alloc(hir.Expr{Kind: hir.ExprBool, Bool: e.Value, Type: types.Bool(), Span: e.Span})

	case *ast.IdentExpr:
		return s.lowerIdent(e)

	case *ast.SymbolExpr:
		return s.lowerSymbol(e)

	case *ast.TupleExpr:
		if len(e.Elements) == 0 {
			return s.ctx.Exprs.Alloc(hir.Expr{Kind: hir.ExprTuple, Type: types.Unit(), Span: e.Span})
		}
		elems := make([]*hir.Expr, len(e.Elements))
		elemTypes := make([]types.Type, len(e.Elements))
		for i, el := range e.Elements {
			elems[i] = s.lowerExpr(el)
			elemTypes[i] = elems[i].Type
		}
		return s.ctx.Exprs.Alloc(hir.Expr{Kind: hir.ExprTuple, Elements: elems, Type: types.Tuple(elemTypes...), Span: e.Span})

	case *ast.ClosureExpr:
		return s.lowerClosure(e)

	case *ast.ApplExpr:
		return s.lowerAppl(e)

	case *ast.RecordExpr:
		return s.lowerRecord(e)

	case *ast.ConstructorExpr:
		return s.lowerConstructor(e)

	case *ast.RegionExpr:
		return s.lowerRegion(e)

	default:
		return s.errorExpr(e)
	}
}

func (s *Scope) lowerIdent(e *ast.IdentExpr) *hir.Expr {
	if idx, typ, ok := s.lookupLocal(e.Name); ok {
		return s.ctx.Exprs.Alloc(hir.Expr{Kind: hir.ExprLocal, LocalName: e.Name, LocalIndex: idx, Type: typ, Span: e.Span})
	}

	if poly, ok := s.globals[e.Name]; ok {
		typ := hir.Instantiate(s.ctx.Table, poly)
		switch e.Name {
		case config.InFuncName:
			return s.ctx.Exprs.Alloc(hir.Expr{Kind: hir.ExprBuiltin, Builtin: hir.BuiltinIn, Type: typ, Span: e.Span})
		case config.PrintFuncName:
			return s.ctx.Exprs.Alloc(hir.Expr{Kind: hir.ExprBuiltin, Builtin: hir.BuiltinPrint, Type: typ, Span: e.Span})
		default:
			return s.ctx.Exprs.Alloc(hir.Expr{Kind: hir.ExprGlobal, GlobalName: e.Name, Type: typ, Span: e.Span})
		}
	}

	s.ctx.report(diag.IdentNotFound(e.Span, e.Name))
	return s.errorExpr(e)
}

var symbolBuiltins = map[ast.SymbolKind]hir.Builtin{
	ast.SymPlus:    hir.BuiltinPlus,
	ast.SymMinus:   hir.BuiltinMinus,
	ast.SymStar:    hir.BuiltinStar,
	ast.SymSlash:   hir.BuiltinSlash,
	ast.SymPercent: hir.BuiltinPercent,
	ast.SymEq:      hir.BuiltinEq,
	ast.SymLt:      hir.BuiltinLt,
	ast.SymGt:      hir.BuiltinGt,
	ast.SymLe:      hir.BuiltinLe,
	ast.SymGe:      hir.BuiltinGe,
}

var arithmeticOps = map[ast.SymbolKind]bool{
	ast.SymPlus: true, ast.SymMinus: true, ast.SymStar: true, ast.SymSlash: true, ast.SymPercent: true,
}

// lowerSymbol types a bare operator used as a value in the `fun` position
// of an application. `;` and `..` are reserved but unimplemented: they
// lower to a diagnostic and an error node rather than guessed semantics.
func (s *Scope) lowerSymbol(e *ast.SymbolExpr) *hir.Expr {
	if e.Op == ast.SymSemi {
		s.ctx.report(diag.UnimplementedSymbol(e.Span, config.SeqSymbol))
		return s.errorExpr(e)
	}
	if e.Op == ast.SymDotDot {
		s.ctx.report(diag.UnimplementedSymbol(e.Span, config.RangeSymbol))
		return s.errorExpr(e)
	}
	if e.Op == ast.SymDot {
		s.ctx.report(diag.UnimplementedSymbol(e.Span, "."))
		return s.errorExpr(e)
	}

	builtin := symbolBuiltins[e.Op]
	var typ types.Type
	if arithmeticOps[e.Op] {
		typ = types.Function(types.Int(), types.Int(), types.Int())
	} else {
		typ = types.Function(types.Int(), types.Int(), types.Bool())
	}
	return s.ctx.Exprs.Alloc(hir.Expr{Kind: hir.ExprBuiltin, Builtin: builtin, Type: typ, Span: e.Span})
}

// lowerAppl lowers the infix application `lhs fun rhs`. All three
// children are always lowered, even when one of them already produced an
// error; the application's own diagnostic (if the `fun` operand does not
// actually accept these operands) is reported separately from whatever
// its children reported.
func (s *Scope) lowerAppl(e *ast.ApplExpr) *hir.Expr {
	lhs := s.lowerExpr(e.Lhs)
	fun := s.lowerExpr(e.Fun)
	rhs := s.lowerExpr(e.Rhs)

	result := s.ctx.Table.Fresh()
	wantFunTy := types.Function(lhs.Type, rhs.Type, result)
	s.ctx.unify(e.Fun, fun.Type, wantFunTy)

	return s.ctx.Exprs.Alloc(hir.Expr{
		Kind: hir.ExprAppl,
		Lhs:  lhs, Fun: fun, Rhs: rhs,
		Type: result,
		Span: e.Span,
	})
}

func (s *Scope) lowerRecord(e *ast.RecordExpr) *hir.Expr {
	fields := make([]hir.RecordFieldExpr, len(e.Fields))
	typeFields := make([]types.RecordField, len(e.Fields))
	for i, f := range e.Fields {
		value := f.Value
		if value == nil {
			value = &ast.IdentExpr{Name: f.Name.Name, Span: f.Name.Span}
		}
		lowered := s.lowerExpr(value)
		fields[i] = hir.RecordFieldExpr{Name: f.Name.Name, Value: lowered}
		typeFields[i] = types.RecordField{Name: f.Name.Name, Type: lowered.Type}
	}
	return s.ctx.Exprs.Alloc(hir.Expr{Kind: hir.ExprRecord, Fields: fields, Type: types.Record(typeFields...), Span: e.Span})
}

func (s *Scope) lowerConstructor(e *ast.ConstructorExpr) *hir.Expr {
	variantName := e.Path[len(e.Path)-1].Name
	inner := s.lowerExpr(e.Inner)

	choiceName, ok := s.ctx.variantOwner[variantName]
	if !ok {
		s.ctx.report(diag.UnknownVariant(e.Span, pathString(e.Path)))
		return s.errorExpr(e)
	}
	choice := s.ctx.Choices[choiceName]
	for _, v := range choice.Variants {
		if v.Name == variantName {
			s.ctx.unify(e.Inner, v.Type, inner.Type)
			path := make([]string, len(e.Path))
			for i, p := range e.Path {
				path[i] = p.Name
			}
			return s.ctx.Exprs.Alloc(hir.Expr{
				Kind: hir.ExprConstructor, Path: path, Inner: inner,
				Type: types.Named(choiceName), Span: e.Span,
			})
		}
	}
	return s.errorExpr(e)
}

func pathString(path []ast.Ident) string {
	out := ""
	for i, p := range path {
		if i > 0 {
			out += "."
		}
		out += p.Name
	}
	return out
}

func (s *Scope) lowerRegion(e *ast.RegionExpr) *hir.Expr {
	body := s.lowerExpr(e.Body)
	var kind hir.RegionKind
	switch e.Kind {
	case ast.RegionRef:
		kind = hir.RegionRef
	case ast.RegionMut:
		kind = hir.RegionMut
	case ast.RegionRefMut:
		kind = hir.RegionRefMut
	}
	return s.ctx.Exprs.Alloc(hir.Expr{Kind: hir.ExprRegion, RegionKind: kind, Body: body, Type: body.Type, Span: e.Span})
}
