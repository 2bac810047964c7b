package usefulness

import (
	"curse/internal/diag"
	"curse/internal/hir"
)

// Check runs exhaustiveness and redundancy analysis over every closure in
// prog's function bodies and returns every diagnostic found, in the order
// its closures are visited. It never mutates prog.
func Check(prog *hir.Program) []*diag.Diagnostic {
	checker := NewChecker(prog)
	var out []*diag.Diagnostic
	report := func(d *diag.Diagnostic) { out = append(out, d) }

	for _, name := range prog.FunctionOrder {
		fn, ok := prog.Functions[name]
		if !ok || fn.HadErrors {
			continue
		}
		walkExpr(checker, fn.Body, report)
	}
	return out
}

func walkExpr(c *Checker, e *hir.Expr, report func(*diag.Diagnostic)) {
	if e == nil {
		return
	}
	switch e.Kind {
	case hir.ExprTuple:
		for _, el := range e.Elements {
			walkExpr(c, el, report)
		}
	case hir.ExprAppl:
		walkExpr(c, e.Lhs, report)
		walkExpr(c, e.Fun, report)
		walkExpr(c, e.Rhs, report)
	case hir.ExprRecord:
		for _, f := range e.Fields {
			walkExpr(c, f.Value, report)
		}
	case hir.ExprConstructor:
		walkExpr(c, e.Inner, report)
	case hir.ExprRegion:
		walkExpr(c, e.Body, report)
	case hir.ExprClosure:
		checkClosure(c, e, report)
	}
}

// checkClosure runs usefulness analysis on one closure's arms, then
// descends into every arm's body so nested closures are checked too.
func checkClosure(c *Checker, e *hir.Expr, report func(*diag.Diagnostic)) {
	if len(e.Arms) == 0 {
		return
	}
	arity := len(e.Arms[0].Params)
	c.CheckArms(arity, e.Arms, report)
	for _, arm := range e.Arms {
		walkExpr(c, arm.Body, report)
	}
}
