package ast

import "curse/internal/token"

// Pat is any syntactic pattern appearing in a closure Arm's parameter
// list.
type Pat interface {
	patNode()
	PatSpan() token.Span
}

// WildcardPat is `_`: matches anything, binds nothing.
type WildcardPat struct {
	Span token.Span
}

func (*WildcardPat) patNode()             {}
func (p *WildcardPat) PatSpan() token.Span { return p.Span }

// IdentPat binds the matched value to a name.
type IdentPat struct {
	Name string
	Span token.Span
}

func (*IdentPat) patNode()             {}
func (p *IdentPat) PatSpan() token.Span { return p.Span }

// IntegerPat matches an exact integer literal.
type IntegerPat struct {
	Text string
	Span token.Span
}

func (*IntegerPat) patNode()             {}
func (p *IntegerPat) PatSpan() token.Span { return p.Span }

// BoolPat matches `True` or `False`.
type BoolPat struct {
	Value bool
	Span  token.Span
}

func (*BoolPat) patNode()             {}
func (p *BoolPat) PatSpan() token.Span { return p.Span }

// TuplePat destructures a tuple value element-wise.
type TuplePat struct {
	Elements []Pat
	Span     token.Span
}

func (*TuplePat) patNode()             {}
func (p *TuplePat) PatSpan() token.Span { return p.Span }

// RecordFieldPat is one field of a RecordPat. Pat is nil for a punned
// field binding (`{ name }`).
type RecordFieldPat struct {
	Name Ident
	Pat  Pat
}

// RecordPat destructures a record value by field name.
type RecordPat struct {
	Fields []RecordFieldPat
	Span   token.Span
}

func (*RecordPat) patNode()             {}
func (p *RecordPat) PatSpan() token.Span { return p.Span }

// ConstructorPat matches a choice variant, e.g. `Some x`, binding the
// variant's payload with Inner.
type ConstructorPat struct {
	Path  []Ident
	Inner Pat
	Span  token.Span
}

func (*ConstructorPat) patNode()             {}
func (p *ConstructorPat) PatSpan() token.Span { return p.Span }
