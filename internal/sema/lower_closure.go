package sema

import (
	"curse/internal/ast"
	"curse/internal/diag"
	"curse/internal/hir"
	"curse/internal/types"
)

// lowerClosure lowers a (possibly multi-arm) closure literal. Every arm
// is unified against one shared binary function type, so arms that
// disagree on parameter or result types are reported without aborting
// the other arms. The arity is set by the first arm (clamped to the
// binary-always range of 0-2 params); every later arm is checked
// against that arity rather than a fixed constant, so a closure like
// `{ |n| n, |a, b| a }` is reported instead of silently unifying the
// stray arm's unused parameter type away.
func (s *Scope) lowerClosure(e *ast.ClosureExpr) *hir.Expr {
	funTy := types.Function(s.ctx.Table.Fresh(), s.ctx.Table.Fresh(), s.ctx.Table.Fresh())

	arity := 2
	if len(e.Arms) > 0 && len(e.Arms[0].Params) <= 2 {
		arity = len(e.Arms[0].Params)
	}

	arms := make([]hir.Arm, len(e.Arms))
	for i, arm := range e.Arms {
		arms[i] = s.lowerArm(arm, funTy, arity)
	}

	return s.ctx.Exprs.Alloc(hir.Expr{Kind: hir.ExprClosure, Arms: arms, Type: funTy, Span: e.Span})
}

func (s *Scope) lowerArm(arm ast.Arm, funTy types.Type, arity int) hir.Arm {
	child := s.enter()
	defer child.exit()

	if len(arm.Params) != arity {
		s.ctx.report(diag.ArityMismatch(arm.Span, arity, len(arm.Params)))
	}

	var lhsTy, rhsTy types.Type
	var pats []*hir.Pat

	switch len(arm.Params) {
	case 0:
		lhsTy, rhsTy = types.Unit(), types.Unit()
	case 1:
		p := child.lowerParam(arm.Params[0])
		pats = append(pats, p)
		lhsTy, rhsTy = p.Type, types.Unit()
	case 2:
		p0 := child.lowerParam(arm.Params[0])
		p1 := child.lowerParam(arm.Params[1])
		pats = append(pats, p0, p1)
		lhsTy, rhsTy = p0.Type, p1.Type
	default:
		for _, p := range arm.Params {
			pats = append(pats, child.lowerParam(p))
		}
		lhsTy, rhsTy = pats[0].Type, pats[1].Type
	}

	body := child.lowerExpr(arm.Body)

	armTy := types.Function(lhsTy, rhsTy, body.Type)
	s.ctx.unify(arm.Body, funTy, armTy)

	params := make([]hir.Param, len(pats))
	for i, p := range pats {
		var ascription *types.Type
		if arm.Params[i].Ascription != nil {
			t := s.ctx.typeFromAst(arm.Params[i].Ascription, s.typeScope)
			ascription = &t
		}
		params[i] = hir.Param{Pat: p, Ascription: ascription, Span: arm.Params[i].Span}
	}

	return hir.Arm{Params: params, Body: body, Span: arm.Span}
}

func (s *Scope) lowerParam(p ast.Param) *hir.Pat {
	var ascribed *types.Type
	if p.Ascription != nil {
		t := s.ctx.typeFromAst(p.Ascription, s.typeScope)
		ascribed = &t
	}
	pat := s.lowerPat(p.Pat, ascribed)
	if ascribed != nil {
		s.ctx.unifySpan(p.Ascription, *ascribed, pat.Type)
	}
	return pat
}
