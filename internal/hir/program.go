package hir

import "curse/internal/types"

// Polytype is a generalized top-level type scheme: TypeVars names the
// variables universally quantified over Type. Instantiating a Polytype
// substitutes each of TypeVars with a fresh variable, which is what lets
// two different call sites of the same function specialize it
// independently (let-polymorphism, limited to top-level signatures).
type Polytype struct {
	TypeVars []int
	Type     types.Type
}

// FunctionDef is a lowered top-level function: its generalized signature
// and its typed body. HadErrors marks a function whose own lowering
// reported at least one diagnostic, so later passes that assume a
// well-typed body (usefulness checking) can skip it instead of running
// over a tree that may contain unresolved inference fallout.
type FunctionDef struct {
	Name      string
	Polytype  Polytype
	Body      *Expr
	HadErrors bool
}

// StructDef is a lowered `struct Name T` alias.
type StructDef struct {
	Name string
	Type types.Type
}

// VariantDef is one lowered variant of a ChoiceDef.
type VariantDef struct {
	Name string
	Type types.Type
}

// ChoiceDef is a lowered `choice Name { ... }` algebraic type.
type ChoiceDef struct {
	Name     string
	Variants []VariantDef
}

// Program is the fully lowered output of a compilation.
type Program struct {
	Functions map[string]*FunctionDef
	Structs   map[string]*StructDef
	Choices   map[string]*ChoiceDef

	// FunctionOrder preserves the source order of function definitions,
	// since Functions is keyed by name for lookup.
	FunctionOrder []string
}

func NewProgram() *Program {
	return &Program{
		Functions: make(map[string]*FunctionDef),
		Structs:   make(map[string]*StructDef),
		Choices:   make(map[string]*ChoiceDef),
	}
}
