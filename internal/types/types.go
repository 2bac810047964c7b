// Package types implements the type universe, substitution table, and
// append-only inference graph used by internal/sema during lowering, plus
// the structural unification algorithm defined over them.
package types

import (
	"fmt"
	"strings"
)

// Kind discriminates the variants of Type.
type Kind int

const (
	KInt Kind = iota
	KBool
	KUnit
	KTuple
	KFunction
	KVar
	KNamed
	KRecord
)

// RecordField is one `name: Type` entry of a record type.
type RecordField struct {
	Name string
	Type Type
}

// Type is the type universe described by spec.md §4.1: primitive types,
// tuples, binary functions, type variables, record types, and
// user-declared named (choice/struct) types.
//
// Type is a plain value, not an arena reference: curse's original HIR
// allocates Type nodes out of an arena because Rust needs an explicit
// owner for borrowed references; Go's garbage collector makes that
// indirection unnecessary; a Type is simply copied or shared by the
// caller like any other composite value.
type Type struct {
	Kind Kind

	Var int // KVar

	Elements []Type // KTuple

	// KFunction. Every function and closure is binary per the calling
	// convention (spec.md's infix application model): a surface-level
	// unary function `A -> B` elaborates to `A () -> B` during lowering,
	// so Rhs is never nil here.
	Lhs *Type
	Rhs *Type
	Out *Type

	Name string        // KNamed
	Args []Type        // KNamed, generic arguments
	Fields []RecordField // KRecord
}

func Int() Type  { return Type{Kind: KInt} }
func Bool() Type { return Type{Kind: KBool} }
func Unit() Type { return Type{Kind: KUnit} }

func Tuple(elems ...Type) Type { return Type{Kind: KTuple, Elements: elems} }

func Function(lhs, rhs, out Type) Type {
	return Type{Kind: KFunction, Lhs: &lhs, Rhs: &rhs, Out: &out}
}

func Var(id int) Type { return Type{Kind: KVar, Var: id} }

func Named(name string, args ...Type) Type { return Type{Kind: KNamed, Name: name, Args: args} }

func Record(fields ...RecordField) Type { return Type{Kind: KRecord, Fields: fields} }

// String renders a Type without resolving any substitution; callers that
// want a fully-resolved rendering should call Table.Resolve first.
func (t Type) String() string {
	switch t.Kind {
	case KInt:
		return "I32"
	case KBool:
		return "Bool"
	case KUnit:
		return "()"
	case KTuple:
		parts := make([]string, len(t.Elements))
		for i, e := range t.Elements {
			parts[i] = e.String()
		}
		return "(" + strings.Join(parts, ", ") + ")"
	case KFunction:
		return fmt.Sprintf("%s %s -> %s", ptrString(t.Lhs), ptrString(t.Rhs), ptrString(t.Out))
	case KVar:
		return fmt.Sprintf("?%d", t.Var)
	case KNamed:
		if len(t.Args) == 0 {
			return t.Name
		}
		parts := make([]string, len(t.Args))
		for i, a := range t.Args {
			parts[i] = a.String()
		}
		return t.Name + " " + strings.Join(parts, " ")
	case KRecord:
		parts := make([]string, len(t.Fields))
		for i, f := range t.Fields {
			parts[i] = f.Name + ": " + f.Type.String()
		}
		return "{ " + strings.Join(parts, ", ") + " }"
	default:
		return "<invalid type>"
	}
}

func ptrString(t *Type) string {
	if t == nil {
		return "<nil>"
	}
	return t.String()
}
