package hir

import "curse/internal/types"

// Generalize closes over every still-unbound type variable reachable
// from ty, producing the Polytype of a top-level function's signature.
// internal/sema generalizes every signature (the declared type, or a
// fresh variable when none is ascribed) before any body is lowered.
// Generalization is
// deliberately limited to top-level function signatures: nothing nested
// inside a closure body is generalized on its own, matching spec.md's
// explicit Non-goal of higher-rank polymorphism.
func Generalize(table *types.Table, ty types.Type) Polytype {
	seen := map[int]bool{}
	var vars []int
	collectFreeVars(table, ty, seen, &vars)
	return Polytype{TypeVars: vars, Type: ty}
}

func collectFreeVars(table *types.Table, ty types.Type, seen map[int]bool, out *[]int) {
	ty = table.Resolve(ty)
	switch ty.Kind {
	case types.KVar:
		if !seen[ty.Var] {
			seen[ty.Var] = true
			*out = append(*out, ty.Var)
		}
	case types.KTuple:
		for _, e := range ty.Elements {
			collectFreeVars(table, e, seen, out)
		}
	case types.KFunction:
		collectFreeVars(table, *ty.Lhs, seen, out)
		collectFreeVars(table, *ty.Rhs, seen, out)
		collectFreeVars(table, *ty.Out, seen, out)
	case types.KNamed:
		for _, a := range ty.Args {
			collectFreeVars(table, a, seen, out)
		}
	case types.KRecord:
		for _, f := range ty.Fields {
			collectFreeVars(table, f.Type, seen, out)
		}
	}
}

// Instantiate (curse's "monomorphize") substitutes every variable quantified
// by poly with a fresh type variable, producing a fresh, independently
// unifiable copy of the scheme. This is what happens each time a
// polymorphic top-level function is referenced at a use site.
func Instantiate(table *types.Table, poly Polytype) types.Type {
	if len(poly.TypeVars) == 0 {
		return poly.Type
	}
	fresh := make(map[int]types.Type, len(poly.TypeVars))
	for _, v := range poly.TypeVars {
		fresh[v] = table.Fresh()
	}
	return substitute(table, poly.Type, fresh)
}

func substitute(table *types.Table, ty types.Type, fresh map[int]types.Type) types.Type {
	ty = table.Resolve(ty)
	switch ty.Kind {
	case types.KVar:
		if repl, ok := fresh[ty.Var]; ok {
			return repl
		}
		return ty
	case types.KTuple:
		elems := make([]types.Type, len(ty.Elements))
		for i, e := range ty.Elements {
			elems[i] = substitute(table, e, fresh)
		}
		return types.Tuple(elems...)
	case types.KFunction:
		lhs := substitute(table, *ty.Lhs, fresh)
		rhs := substitute(table, *ty.Rhs, fresh)
		out := substitute(table, *ty.Out, fresh)
		return types.Function(lhs, rhs, out)
	case types.KNamed:
		args := make([]types.Type, len(ty.Args))
		for i, a := range ty.Args {
			args[i] = substitute(table, a, fresh)
		}
		return types.Named(ty.Name, args...)
	case types.KRecord:
		fields := make([]types.RecordField, len(ty.Fields))
		for i, f := range ty.Fields {
			fields[i] = types.RecordField{Name: f.Name, Type: substitute(table, f.Type, fresh)}
		}
		return types.Record(fields...)
	default:
		return ty
	}
}
