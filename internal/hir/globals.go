package hir

import (
	"curse/internal/config"
	"curse/internal/types"
)

// DefaultGlobals seeds the two built-ins every Scope starts with, ahead
// of any user-defined function:
//
//	in    : x (x () -> y) -> y     pipe a value into a unary closure
//	print : x () -> ()             print a value, yielding unit
//
// Both are polymorphic in x (and, for `in`, also in y), so each call site
// instantiates its own copy via Instantiate.
func DefaultGlobals(table *types.Table) map[string]Polytype {
	globals := make(map[string]Polytype, 2)

	x := table.Fresh()
	y := table.Fresh()
	unaryClosure := types.Function(x, types.Unit(), y)
	inType := types.Function(x, unaryClosure, y)
	globals[config.InFuncName] = Generalize(table, inType)

	px := table.Fresh()
	printType := types.Function(px, types.Unit(), types.Unit())
	globals[config.PrintFuncName] = Generalize(table, printType)

	return globals
}
