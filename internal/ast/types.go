package ast

import "curse/internal/token"

// Type is a syntactic type annotation: a named type, a tuple type, or a
// binary function type. Unlike internal/types.Type, this carries no
// inference state at all; internal/sema converts a Type into a
// internal/types.Type during lowering.
type Type interface {
	typeNode()
	TypeSpan() token.Span
}

// NamedType is an identifier optionally applied to generic arguments, e.g.
// `I32`, `Bool`, or `Option T`.
type NamedType struct {
	Name Ident
	Args []Type
	Span token.Span
}

func (*NamedType) typeNode()                 {}
func (t *NamedType) TypeSpan() token.Span { return t.Span }

// TupleType is `(T, U)`.
type TupleType struct {
	Elements []Type
	Span     token.Span
}

func (*TupleType) typeNode()                 {}
func (t *TupleType) TypeSpan() token.Span { return t.Span }

// FunctionType is the binary function type `A B -> C`: a left parameter
// type, a right parameter type, and a return type. Rhs is nil for a
// unary function type `A -> C`.
type FunctionType struct {
	Lhs  Type
	Rhs  Type
	Out  Type
	Span token.Span
}

func (*FunctionType) typeNode()                 {}
func (t *FunctionType) TypeSpan() token.Span { return t.Span }

// RecordTypeField is one `name: Type` entry of a RecordType.
type RecordTypeField struct {
	Name Ident
	Type Type
}

// RecordType is a record payload type, e.g. `{ key: I32, value: T }`, used
// for choice variant payloads and struct aliases.
type RecordType struct {
	Fields []RecordTypeField
	Span   token.Span
}

func (*RecordType) typeNode()                 {}
func (t *RecordType) TypeSpan() token.Span { return t.Span }
