// Package ast defines the syntax tree produced by internal/parser. It is
// an external collaborator relative to the semantic analysis packages:
// internal/sema only ever reads an *ast.Program, it never constructs one.
package ast

import "curse/internal/token"

// Ident is a name occurrence together with the span it was spelled at.
type Ident struct {
	Name string
	Span token.Span
}

// GenericParams is the optional `|T, U|` clause on a function, struct, or
// choice definition. A choice definition may also list its generic names
// bare, as in `choice Option T { ... }`.
type GenericParams struct {
	Names []Ident
	Span  token.Span
}

// Program is the root of a parsed source file.
type Program struct {
	FunctionDefs []*FunctionDef
	StructDefs   []*StructDef
	ChoiceDefs   []*ChoiceDef
}

// FunctionDef is a top-level `fn name : T = body` or `fn name = body`
// definition. Type may be nil when no signature was ascribed, in which
// case lowering infers one from the body alone.
type FunctionDef struct {
	Name     Ident
	Generics *GenericParams
	Type     Type
	Body     Expr
	Span     token.Span
}

// StructDef is `struct Name T` introducing Name as an alias for T.
type StructDef struct {
	Name     Ident
	Generics *GenericParams
	Type     Type
	Span     token.Span
}

// ChoiceDef is `choice Name { Variant T, ... }`, with optional generic
// names after Name.
type ChoiceDef struct {
	Name     Ident
	Generics *GenericParams
	Variants []VariantDef
	Span     token.Span
}

// VariantDef is one `Variant T` arm of a ChoiceDef.
type VariantDef struct {
	Name Ident
	Type Type
	Span token.Span
}
