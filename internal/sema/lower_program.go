package sema

import (
	"curse/internal/ast"
	"curse/internal/hir"
	"curse/internal/types"
)

// Lower runs the whole lowering pipeline over a parsed program: struct
// and choice definitions first (so function signatures can reference
// them), then every function signature (so mutually referencing
// functions can resolve each other), then every function body. It never
// stops at the first error; callers should check ctx.Diagnostics rather
// than a returned error.
func Lower(ctx *Context, prog *ast.Program) *hir.Program {
	registerStructsAndChoices(ctx, prog)

	globals := hir.DefaultGlobals(ctx.Table)
	functionTypeScopes := make(map[string]map[string]types.Type, len(prog.FunctionDefs))
	declaredTypes := make(map[string]types.Type, len(prog.FunctionDefs))

	for _, fn := range prog.FunctionDefs {
		innerScope := genericTypeScope(ctx, fn.Generics)
		functionTypeScopes[fn.Name.Name] = innerScope

		var typ types.Type
		if fn.Type != nil {
			typ = ctx.typeFromAst(fn.Type, innerScope)
		} else {
			typ = ctx.Table.Fresh()
		}
		declaredTypes[fn.Name.Name] = typ
		globals[fn.Name.Name] = hir.Generalize(ctx.Table, typ)
	}

	out := hir.NewProgram()
	for name, st := range ctx.Structs {
		out.Structs[name] = &hir.StructDef{Name: name, Type: st}
	}
	for name, ch := range ctx.Choices {
		out.Choices[name] = ch
	}

	for _, fn := range prog.FunctionDefs {
		before := len(ctx.Diagnostics)

		scope := newRootScope(ctx, functionTypeScopes[fn.Name.Name], globals)
		body := scope.lowerExpr(fn.Body)

		declared := declaredTypes[fn.Name.Name]
		ctx.unify(fn.Body, declared, body.Type)

		out.Functions[fn.Name.Name] = &hir.FunctionDef{
			Name:      fn.Name.Name,
			Polytype:  globals[fn.Name.Name],
			Body:      body,
			HadErrors: len(ctx.Diagnostics) > before,
		}
		out.FunctionOrder = append(out.FunctionOrder, fn.Name.Name)
	}

	return out
}

func genericTypeScope(ctx *Context, generics *ast.GenericParams) map[string]types.Type {
	scope := make(map[string]types.Type)
	if generics == nil {
		return scope
	}
	for _, name := range generics.Names {
		scope[name.Name] = ctx.Table.Fresh()
	}
	return scope
}

func registerStructsAndChoices(ctx *Context, prog *ast.Program) {
	for _, sd := range prog.StructDefs {
		scope := genericTypeScope(ctx, sd.Generics)
		ctx.Structs[sd.Name.Name] = ctx.typeFromAst(sd.Type, scope)
	}

	// Each choice is registered before its variants are typed, so a
	// variant payload can refer back to its own choice (`left: Tree T`
	// inside Tree's own Node variant) without being reported as unknown.
	scopes := make(map[string]map[string]types.Type, len(prog.ChoiceDefs))
	for _, cd := range prog.ChoiceDefs {
		scope := genericTypeScope(ctx, cd.Generics)
		scopes[cd.Name.Name] = scope
		ctx.Choices[cd.Name.Name] = &hir.ChoiceDef{Name: cd.Name.Name}
	}
	for _, cd := range prog.ChoiceDefs {
		def := ctx.Choices[cd.Name.Name]
		scope := scopes[cd.Name.Name]
		for _, v := range cd.Variants {
			vt := ctx.typeFromAst(v.Type, scope)
			def.Variants = append(def.Variants, hir.VariantDef{Name: v.Name.Name, Type: vt})
			ctx.registerVariant(v.Name.Name, cd.Name.Name)
		}
	}
}
