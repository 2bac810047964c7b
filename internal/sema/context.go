// Package sema implements the Scope-based lowering and type inference
// engine that turns an *ast.Program into a *hir.Program: identifier
// resolution, constraint generation via internal/types.Unify, and the
// "never abort on first error" accumulation policy used throughout this
// compiler.
package sema

import (
	"curse/internal/ast"
	"curse/internal/diag"
	"curse/internal/hir"
	"curse/internal/token"
	"curse/internal/types"
)

// Context owns every allocation made during one compilation: the
// per-kind HIR arenas, the substitution table, the inference graph, and
// the accumulated diagnostics. Exactly one Context exists per
// compilation, matching the teacher's pattern of a single owning struct
// threaded through every stage of a pipeline.
type Context struct {
	Exprs *hir.Arena[hir.Expr]
	Pats  *hir.Arena[hir.Pat]

	Table *types.Table
	Graph *types.Graph

	Structs map[string]types.Type
	Choices map[string]*hir.ChoiceDef
	// variantOwner maps a variant name to the choice type that declares
	// it, so `Some x` can be resolved without an explicit `Option.Some`
	// path.
	variantOwner map[string]string

	Diagnostics []*diag.Diagnostic
}

func NewContext() *Context {
	return &Context{
		Exprs:        hir.NewArena[hir.Expr](),
		Pats:         hir.NewArena[hir.Pat](),
		Table:        types.NewTable(),
		Graph:        types.NewGraph(),
		Structs:      make(map[string]types.Type),
		Choices:      make(map[string]*hir.ChoiceDef),
		variantOwner: make(map[string]string),
	}
}

func (c *Context) report(d *diag.Diagnostic) {
	c.Diagnostics = append(c.Diagnostics, d)
}

func (c *Context) HadErrors() bool {
	return len(c.Diagnostics) > 0
}

// unify wraps types.Unify, recording a diagnostic at span when it fails.
// It always performs the full structural attempt (per internal/types'
// "attempt every child" policy) before reporting.
func (c *Context) unify(span ast.Expr, want, got types.Type) bool {
	node, ok := types.Unify(c.Table, c.Graph, want, got)
	if !ok {
		c.reportUnifyFailure(span.ExprSpan(), node, want, got)
	}
	return ok
}

func (c *Context) unifySpan(sp ast.Type, want, got types.Type) bool {
	node, ok := types.Unify(c.Table, c.Graph, want, got)
	if !ok {
		c.reportUnifyFailure(sp.TypeSpan(), node, want, got)
	}
	return ok
}

// unifyAt is unifySpan/unify's counterpart for call sites, such as
// pattern lowering, that have a token.Span in hand directly rather than
// an ast.Expr or ast.Type node to pull one from.
func (c *Context) unifyAt(span token.Span, want, got types.Type) bool {
	node, ok := types.Unify(c.Table, c.Graph, want, got)
	if !ok {
		c.reportUnifyFailure(span, node, want, got)
	}
	return ok
}

// reportUnifyFailure reports a failed Unify's conclusion node as a
// cyclic-type diagnostic when the failure was specifically an
// occurs-check (types.Occurs), or as a generic type-mismatch otherwise.
func (c *Context) reportUnifyFailure(span token.Span, node types.NodeID, want, got types.Type) {
	if c.Graph.Node(node).Kind == types.Occurs {
		c.report(diag.CyclicType(span))
		return
	}
	c.report(diag.UnifyError(span, c.Table.Resolve(want).String(), c.Table.Resolve(got).String()))
}

// registerVariant records which choice type owns a variant name. Variant
// constructors share a single global namespace: a variant name declared
// by more than one choice resolves to whichever choice registered it
// last.
func (c *Context) registerVariant(variant, choice string) {
	c.variantOwner[variant] = choice
}
