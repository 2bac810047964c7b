package usefulness

import (
	"testing"

	"curse/internal/diag"
	"curse/internal/parser"
	"curse/internal/sema"
)

func lowerAndCheck(t *testing.T, src string) []*diag.Diagnostic {
	t.Helper()
	prog, errs := parser.Parse(src)
	if len(errs) != 0 {
		t.Fatalf("unexpected parse errors: %v", errs)
	}
	ctx := sema.NewContext()
	out := sema.Lower(ctx, prog)
	if ctx.HadErrors() {
		t.Fatalf("unexpected lowering diagnostics: %v", ctx.Diagnostics)
	}
	return Check(out)
}

func codesOf(diags []*diag.Diagnostic) []diag.Code {
	codes := make([]diag.Code, len(diags))
	for i, d := range diags {
		codes[i] = d.Code
	}
	return codes
}

func TestExhaustiveBoolMatchHasNoDiagnostics(t *testing.T) {
	diags := lowerAndCheck(t, `
fn choose: (Bool) I32 -> I32 = { |True, x| x, |False, x| 0 - x }
`)
	if len(diags) != 0 {
		t.Errorf("unexpected diagnostics: %v", diags)
	}
}

func TestMissingBoolArmIsNonExhaustive(t *testing.T) {
	diags := lowerAndCheck(t, `
fn choose: (Bool) I32 -> I32 = { |True, x| x }
`)
	codes := codesOf(diags)
	if len(codes) != 1 || codes[0] != diag.CodeNonExhaustive {
		t.Errorf("codes = %v, want [%s]", codes, diag.CodeNonExhaustive)
	}
}

func TestWildcardArmCoversEverything(t *testing.T) {
	diags := lowerAndCheck(t, `
fn classify: I32 () -> I32 = { |0| 0, |n| n }
`)
	if len(diags) != 0 {
		t.Errorf("unexpected diagnostics: %v", diags)
	}
}

func TestRedundantArmAfterWildcard(t *testing.T) {
	diags := lowerAndCheck(t, `
fn classify: I32 () -> I32 = { |n| n, |0| 0 }
`)
	codes := codesOf(diags)
	if len(codes) != 1 || codes[0] != diag.CodeRedundantArm {
		t.Errorf("codes = %v, want [%s]", codes, diag.CodeRedundantArm)
	}
}

func TestExhaustiveChoiceMatchHasNoDiagnostics(t *testing.T) {
	diags := lowerAndCheck(t, `
choice Option T { Some T, None, }

fn unwrap_or: (Option) I32 -> I32 = { |Some x, d| x, |None, d| d }
`)
	if len(diags) != 0 {
		t.Errorf("unexpected diagnostics: %v", diags)
	}
}

func TestMissingVariantIsNonExhaustive(t *testing.T) {
	diags := lowerAndCheck(t, `
choice Option T { Some T, None, }

fn unwrap_or: (Option) I32 -> I32 = { |Some x, d| x }
`)
	codes := codesOf(diags)
	if len(codes) != 1 || codes[0] != diag.CodeNonExhaustive {
		t.Errorf("codes = %v, want [%s]", codes, diag.CodeNonExhaustive)
	}
}

func TestDuplicateVariantArmIsRedundant(t *testing.T) {
	diags := lowerAndCheck(t, `
choice Option T { Some T, None, }

fn unwrap_or: (Option) I32 -> I32 = { |Some x, d| x, |Some y, d| y, |None, d| d }
`)
	codes := codesOf(diags)
	if len(codes) != 1 || codes[0] != diag.CodeRedundantArm {
		t.Errorf("codes = %v, want [%s]", codes, diag.CodeRedundantArm)
	}
}

func TestNestedChoiceExhaustiveness(t *testing.T) {
	diags := lowerAndCheck(t, `
choice Tree T { Node { key: I32, value: T, left: Tree T, right: Tree T }, Empty, }

fn depth: (Tree) I32 -> I32 = { |Empty, d| d, |Node { key, value, left, right }, d| d + 1 }
`)
	if len(diags) != 0 {
		t.Errorf("unexpected diagnostics: %v", diags)
	}
}
