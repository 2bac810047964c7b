// Package hir defines the typed high-level intermediate representation
// that internal/sema lowers an *ast.Program into, and that
// internal/usefulness and internal/evaluator consume. Every node carries
// its internal/types.Type so later passes never need to re-infer
// anything.
package hir

import (
	"curse/internal/token"
	"curse/internal/types"
)

// ExprKind discriminates the variants of Expr.
type ExprKind int

const (
	ExprInt ExprKind = iota
	ExprBool
	ExprLocal
	ExprGlobal
	ExprBuiltin
	ExprTuple
	ExprRecord
	ExprConstructor
	ExprClosure
	ExprAppl
	ExprRegion
	ExprError
)

// Builtin enumerates the built-in operator/global symbols an ExprBuiltin
// node can name.
type Builtin int

const (
	BuiltinPlus Builtin = iota
	BuiltinMinus
	BuiltinStar
	BuiltinSlash
	BuiltinPercent
	BuiltinEq
	BuiltinLt
	BuiltinGt
	BuiltinLe
	BuiltinGe
	BuiltinIn
	BuiltinPrint
)

// RecordFieldExpr is one field of an ExprRecord.
type RecordFieldExpr struct {
	Name  string
	Value *Expr
}

// Expr is one typed HIR expression node.
type Expr struct {
	Kind ExprKind
	Type types.Type
	Span token.Span

	IntText string // ExprInt
	Bool    bool   // ExprBool

	LocalName  string // ExprLocal
	LocalIndex int    // ExprLocal, position in the lowering Scope's locals stack

	GlobalName string // ExprGlobal

	Builtin Builtin // ExprBuiltin

	Elements []*Expr // ExprTuple

	Fields []RecordFieldExpr // ExprRecord

	Path  []string // ExprConstructor
	Inner *Expr     // ExprConstructor, a unit tuple for a nullary variant

	Arms []Arm // ExprClosure

	Lhs, Fun, Rhs *Expr // ExprAppl

	RegionKind RegionKind // ExprRegion
	Body       *Expr      // ExprRegion
}

// RegionKind mirrors ast.RegionKind at the HIR level.
type RegionKind int

const (
	RegionRef RegionKind = iota
	RegionMut
	RegionRefMut
)

// Arm is one `|pats| body` alternative of a closure, after lowering.
type Arm struct {
	Params []Param
	Body   *Expr
	Span   token.Span
}

// Param is one lowered parameter of an Arm.
type Param struct {
	Pat        *Pat
	Ascription *types.Type
	Span       token.Span
}
