package hir

import (
	"testing"

	"curse/internal/types"
)

func TestGeneralizeAndInstantiate(t *testing.T) {
	table := types.NewTable()
	v := table.Fresh()
	ident := types.Function(v, types.Unit(), v) // v () -> v, the shape of `id`

	poly := Generalize(table, ident)
	if len(poly.TypeVars) != 1 {
		t.Fatalf("got %d type vars, want 1", len(poly.TypeVars))
	}

	inst1 := Instantiate(table, poly)
	inst2 := Instantiate(table, poly)

	if inst1.Lhs.Var == inst2.Lhs.Var {
		t.Fatalf("two instantiations shared a type variable: %d", inst1.Lhs.Var)
	}

	g := types.NewGraph()
	if _, ok := types.Unify(table, g, *inst1.Lhs, types.Int()); !ok {
		t.Fatalf("first instantiation should unify freely with Int")
	}
	if _, ok := types.Unify(table, g, *inst2.Lhs, types.Bool()); !ok {
		t.Fatalf("second instantiation should unify freely with Bool, independent of the first")
	}
}

func TestDefaultGlobals(t *testing.T) {
	table := types.NewTable()
	globals := DefaultGlobals(table)
	if _, ok := globals["in"]; !ok {
		t.Errorf("missing built-in global `in`")
	}
	if _, ok := globals["print"]; !ok {
		t.Errorf("missing built-in global `print`")
	}
}
