package evaluator

import (
	"bytes"
	"testing"

	"curse/internal/parser"
	"curse/internal/sema"
)

func lowerForEval(t *testing.T, src string) (*Evaluator, *bytes.Buffer) {
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
	var buf bytes.Buffer
	return New(out, &buf), &buf
}

func TestEvalFibRecursion(t *testing.T) {
	e, _ := lowerForEval(t, `
fn fib: I32 () -> I32 = {
    |0| 0,
    |1| 1,
    |n| (n - 1 fib ()) + (n - 2 fib ())
}

fn result: I32 = 10 fib ()
`)
	v, err := e.RunFunction("result")
	if err != nil {
		t.Fatal(err)
	}
	if v.Kind != ValueInt || v.Int != 55 {
		t.Errorf("result = %v, want 55", v)
	}
}

func TestEvalPrintWritesToStdout(t *testing.T) {
	e, buf := lowerForEval(t, `
fn result: () = 42 print ()
`)
	if _, err := e.RunFunction("result"); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "42\n" {
		t.Errorf("stdout = %q, want %q", got, "42\n")
	}
}

func TestEvalInPipesValueIntoClosure(t *testing.T) {
	e, _ := lowerForEval(t, `
fn result: I32 = 5 in (|x| x * 2)
`)
	v, err := e.RunFunction("result")
	if err != nil {
		t.Fatal(err)
	}
	if v.Kind != ValueInt || v.Int != 10 {
		t.Errorf("result = %v, want 10", v)
	}
}

func TestEvalTwicePolymorphicAcrossCallSites(t *testing.T) {
	e, _ := lowerForEval(t, `
fn twice |x|: x (x () -> x) -> x = |x, f| (x f ()) f ()

fn result: Bool = True twice (|b| b)
`)
	v, err := e.RunFunction("result")
	if err != nil {
		t.Fatal(err)
	}
	if v.Kind != ValueBool || v.Bool != true {
		t.Errorf("result = %v, want True", v)
	}
}
