package ast

import "curse/internal/token"

// Expr is any syntactic expression. internal/sema lowers every variant
// into a corresponding internal/hir node.
type Expr interface {
	exprNode()
	ExprSpan() token.Span
}

// ParenExpr is `(e)`, kept distinct from its inner expression only so
// diagnostics can point at the parens when useful; lowering unwraps it.
type ParenExpr struct {
	Inner Expr
	Span  token.Span
}

func (*ParenExpr) exprNode()              {}
func (e *ParenExpr) ExprSpan() token.Span { return e.Span }

// SymbolKind enumerates the built-in infix operators that can appear in
// the `fun` position of an application, e.g. `1 + 2`.
type SymbolKind int

const (
	SymPlus SymbolKind = iota
	SymMinus
	SymStar
	SymSlash
	SymPercent
	SymDot
	SymDotDot
	SymSemi
	SymEq
	SymLt
	SymGt
	SymLe
	SymGe
)

// SymbolExpr is a bare operator used as a value, e.g. the `+` in `1 + 2`
// once parsed as the `fun` child of an Appl.
type SymbolExpr struct {
	Op   SymbolKind
	Span token.Span
}

func (*SymbolExpr) exprNode()              {}
func (e *SymbolExpr) ExprSpan() token.Span { return e.Span }

// IdentExpr references a binding: a local, a global function, or a
// built-in.
type IdentExpr struct {
	Name string
	Span token.Span
}

func (*IdentExpr) exprNode()              {}
func (e *IdentExpr) ExprSpan() token.Span { return e.Span }

// IntegerExpr is an integer literal. The textual form is kept so that
// lowering, not parsing, reports overflow.
type IntegerExpr struct {
	Text string
	Span token.Span
}

func (*IntegerExpr) exprNode()              {}
func (e *IntegerExpr) ExprSpan() token.Span { return e.Span }

// BoolExpr is `True` or `False`.
type BoolExpr struct {
	Value bool
	Span  token.Span
}

func (*BoolExpr) exprNode()              {}
func (e *BoolExpr) ExprSpan() token.Span { return e.Span }

// TupleExpr is `(a, b, c)`. A single-element parenthesized expression is
// a ParenExpr, not a one-element TupleExpr; an empty tuple `()` is the
// unit value.
type TupleExpr struct {
	Elements []Expr
	Span     token.Span
}

func (*TupleExpr) exprNode()              {}
func (e *TupleExpr) ExprSpan() token.Span { return e.Span }

// ClosureExpr is one or more pattern-matching Arms sharing a single
// function type.
type ClosureExpr struct {
	Arms []Arm
	Span token.Span
}

func (*ClosureExpr) exprNode()              {}
func (e *ClosureExpr) ExprSpan() token.Span { return e.Span }

// Arm is `|lpat, rpat| body`, or `|pat| body` for a unary closure.
type Arm struct {
	Params []Param
	Body   Expr
	Span   token.Span
}

// Param is one parameter pattern of an Arm, with an optional type
// ascription.
type Param struct {
	Pat        Pat
	Ascription Type
	Span       token.Span
}

// ApplExpr is an infix application `lhs fun rhs`. Both operands are
// always present; nullary and unary calls use the unit tuple `()` as a
// placeholder operand.
type ApplExpr struct {
	Lhs, Fun, Rhs Expr
	Span          token.Span
}

func (*ApplExpr) exprNode()              {}
func (e *ApplExpr) ExprSpan() token.Span { return e.Span }

// RecordField is one `name: value` entry of a RecordExpr. Value is nil
// for a punned field (`{ name }` short for `{ name: name }`).
type RecordField struct {
	Name  Ident
	Value Expr
}

// RecordExpr is `{ a: 1, b }`.
type RecordExpr struct {
	Fields []RecordField
	Span   token.Span
}

func (*RecordExpr) exprNode()              {}
func (e *RecordExpr) ExprSpan() token.Span { return e.Span }

// ConstructorExpr applies a choice variant's path to an inner value, e.g.
// `Option.Some 1`.
type ConstructorExpr struct {
	Path  []Ident
	Inner Expr
	Span  token.Span
}

func (*ConstructorExpr) exprNode()              {}
func (e *ConstructorExpr) ExprSpan() token.Span { return e.Span }

// RegionKind distinguishes `ref`, `mut`, and `ref mut` regions.
type RegionKind int

const (
	RegionRef RegionKind = iota
	RegionMut
	RegionRefMut
)

// RegionExpr is a `ref`/`mut`/`ref mut` scope-capturing marker around a
// body expression. Borrow/ownership checking is out of scope; the region
// is typed as its body's type.
type RegionExpr struct {
	Kind RegionKind
	Body Expr
	Span token.Span
}

func (*RegionExpr) exprNode()              {}
func (e *RegionExpr) ExprSpan() token.Span { return e.Span }
