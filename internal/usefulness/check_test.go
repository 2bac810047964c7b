package usefulness

import (
	"testing"

	"curse/internal/diag"
	"curse/internal/hir"
	"curse/internal/types"
)

// boolArmClosure builds a closure with a single `|True| 0` arm, which is
// non-exhaustive over Bool (missing a False arm) whenever it actually
// gets checked.
func boolArmClosure() *hir.Expr {
	arm := hir.Arm{
		Params: []hir.Param{
			{Pat: &hir.Pat{Kind: hir.PatBool, Bool: true, Type: types.Bool()}},
		},
		Body: &hir.Expr{Kind: hir.ExprInt, IntText: "0", Type: types.Int()},
	}
	return &hir.Expr{
		Kind: hir.ExprClosure,
		Arms: []hir.Arm{arm},
		Type: types.Function(types.Bool(), types.Unit(), types.Int()),
	}
}

// TestCheckSkipsFunctionsThatAlreadyHadLoweringErrors builds a program
// directly (bypassing the parser and sema) with two functions sharing
// the same non-exhaustive closure shape: one marked HadErrors, one not.
// Only the clean one should be checked.
func TestCheckSkipsFunctionsThatAlreadyHadLoweringErrors(t *testing.T) {
	prog := hir.NewProgram()
	prog.Functions["broken"] = &hir.FunctionDef{Name: "broken", Body: boolArmClosure(), HadErrors: true}
	prog.Functions["clean"] = &hir.FunctionDef{Name: "clean", Body: boolArmClosure(), HadErrors: false}
	prog.FunctionOrder = []string{"broken", "clean"}

	diags := Check(prog)
	if len(diags) != 1 {
		t.Fatalf("got %d diagnostics, want 1 (only the clean function checked): %v", len(diags), diags)
	}
	if diags[0].Code != diag.CodeNonExhaustive {
		t.Errorf("code = %v, want %v", diags[0].Code, diag.CodeNonExhaustive)
	}
}
