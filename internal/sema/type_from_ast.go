package sema

import (
	"curse/internal/ast"
	"curse/internal/diag"
	"curse/internal/types"
)

// typeFromAst converts a syntactic type annotation into an
// internal/types.Type, resolving generic parameter names through
// typeScope and named user types through the Context's struct/choice
// tables. It never fails outright: an unresolvable name becomes a fresh
// type variable so lowering can keep going, with a diagnostic recorded
// at the offending span.
func (c *Context) typeFromAst(t ast.Type, typeScope map[string]types.Type) types.Type {
	switch t := t.(type) {
	case *ast.NamedType:
		if tv, ok := typeScope[t.Name.Name]; ok {
			return tv
		}
		args := make([]types.Type, len(t.Args))
		for i, a := range t.Args {
			args[i] = c.typeFromAst(a, typeScope)
		}
		switch t.Name.Name {
		case "I32":
			return types.Int()
		case "Bool":
			return types.Bool()
		}
		if st, ok := c.Structs[t.Name.Name]; ok {
			return st
		}
		if _, ok := c.Choices[t.Name.Name]; ok {
			// Generic arguments are parsed (so a signature like
			// `Option I32` still checks syntactically) but choice types
			// are tracked as a single global instantiation per name,
			// matching how lowerConstructor/lowerConstructorPat resolve
			// a variant's payload type; see DESIGN.md.
			_ = args
			return types.Named(t.Name.Name)
		}
		c.report(diag.IdentNotFound(t.Name.Span, t.Name.Name))
		return c.Table.Fresh()

	case *ast.TupleType:
		if len(t.Elements) == 0 {
			return types.Unit()
		}
		elems := make([]types.Type, len(t.Elements))
		for i, e := range t.Elements {
			elems[i] = c.typeFromAst(e, typeScope)
		}
		return types.Tuple(elems...)

	case *ast.FunctionType:
		lhs := c.typeFromAst(t.Lhs, typeScope)
		var rhs types.Type
		if t.Rhs != nil {
			rhs = c.typeFromAst(t.Rhs, typeScope)
		} else {
			rhs = types.Unit()
		}
		out := c.typeFromAst(t.Out, typeScope)
		return types.Function(lhs, rhs, out)

	case *ast.RecordType:
		fields := make([]types.RecordField, len(t.Fields))
		for i, f := range t.Fields {
			fields[i] = types.RecordField{Name: f.Name.Name, Type: c.typeFromAst(f.Type, typeScope)}
		}
		return types.Record(fields...)

	default:
		return c.Table.Fresh()
	}
}
