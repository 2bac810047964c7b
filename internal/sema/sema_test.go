package sema

import (
	"testing"

	"curse/internal/diag"
	"curse/internal/hir"
	"curse/internal/parser"
)

func lowerSource(t *testing.T, src string) (*Context, *hir.Program) {
	t.Helper()
	prog, errs := parser.Parse(src)
	if len(errs) != 0 {
		t.Fatalf("unexpected parse errors: %v", errs)
	}
	ctx := NewContext()
	out := Lower(ctx, prog)
	return ctx, out
}

func TestFibInfersRecursiveFunctionType(t *testing.T) {
	ctx, out := lowerSource(t, `
fn fib: I32 () -> I32 = {
    |0| 0,
    |1| 1,
    |n| (n - 1 fib ()) + (n - 2 fib ())
}
`)
	if ctx.HadErrors() {
		t.Fatalf("unexpected diagnostics: %v", ctx.Diagnostics)
	}
	fib, ok := out.Functions["fib"]
	if !ok {
		t.Fatalf("fib not found in lowered program")
	}
	got := ctx.Table.Resolve(fib.Polytype.Type).String()
	want := "I32 () -> I32"
	if got != want {
		t.Errorf("fib type = %q, want %q", got, want)
	}
}

func TestTwiceIsPolymorphicAcrossCallSites(t *testing.T) {
	ctx, out := lowerSource(t, `
fn twice |x|: x (x () -> x) -> x = |x, f| (x f ()) f ()

fn use_twice: Bool = True twice (|b| b)
`)
	if ctx.HadErrors() {
		t.Fatalf("unexpected diagnostics: %v", ctx.Diagnostics)
	}
	if _, ok := out.Functions["twice"]; !ok {
		t.Fatalf("twice not found in lowered program")
	}
	if _, ok := out.Functions["use_twice"]; !ok {
		t.Fatalf("use_twice not found in lowered program")
	}
}

func TestClosureArmsMustAgreeOnType(t *testing.T) {
	ctx, _ := lowerSource(t, `
fn bad: I32 () -> I32 = {
    |0| True,
    |n| n
}
`)
	if !ctx.HadErrors() {
		t.Fatalf("expected a type mismatch diagnostic between closure arms, got none")
	}
}

func TestClosureArmsMustAgreeOnArity(t *testing.T) {
	ctx, _ := lowerSource(t, `
fn bad: I32 () -> I32 = {
    |n| n,
    |a, b| a
}
`)
	if !ctx.HadErrors() {
		t.Fatalf("expected an arity-mismatch diagnostic between closure arms, got none")
	}
	for _, d := range ctx.Diagnostics {
		if d.Code == diag.CodeArityMismatch {
			return
		}
	}
	t.Fatalf("expected %s among diagnostics, got %v", diag.CodeArityMismatch, ctx.Diagnostics)
}

func TestUndefinedIdentReportsDiagnostic(t *testing.T) {
	ctx, _ := lowerSource(t, `
fn broken: () -> I32 = mystery
`)
	if !ctx.HadErrors() {
		t.Fatalf("expected an identifier-not-found diagnostic")
	}
}

func TestConstructorAndMatchOverChoice(t *testing.T) {
	ctx, out := lowerSource(t, `
choice Option T {
    Some T,
    None,
}

fn unwrap_or: (Option) I32 -> I32 = {
    |Some x, d| x,
    |None, d| d
}
`)
	if ctx.HadErrors() {
		t.Fatalf("unexpected diagnostics: %v", ctx.Diagnostics)
	}
	if _, ok := out.Functions["unwrap_or"]; !ok {
		t.Fatalf("unwrap_or not found in lowered program")
	}
}

func TestRecordConstructionAndFieldTypes(t *testing.T) {
	ctx, out := lowerSource(t, `
struct Point { x: I32, y: I32 }

fn origin: Point = { x: 0, y: 0 }
`)
	if ctx.HadErrors() {
		t.Fatalf("unexpected diagnostics: %v", ctx.Diagnostics)
	}
	if _, ok := out.Functions["origin"]; !ok {
		t.Fatalf("origin not found in lowered program")
	}
}

func TestNestedConstructorPatternsOverBinaryTree(t *testing.T) {
	ctx, out := lowerSource(t, `
choice Tree T {
    Node { key: I32, value: T, left: Tree T, right: Tree T },
    Empty,
}

fn depth: (Tree) I32 -> I32 = {
    |Empty, d| d,
    |Node { key, value, left, right }, d| d + 1
}
`)
	if ctx.HadErrors() {
		t.Fatalf("unexpected diagnostics: %v", ctx.Diagnostics)
	}
	if _, ok := out.Functions["depth"]; !ok {
		t.Fatalf("depth not found in lowered program")
	}
}
