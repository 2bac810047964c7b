package parser

import (
	"testing"

	"curse/internal/ast"
)

func TestParseFib(t *testing.T) {
	src := `
fn fib: I32 () -> I32 = {
    |0| 0,
    |1| 1,
    |n| (n - 1 fib ()) + (n - 2 fib ())
}
`
	prog, errs := Parse(src)
	if len(errs) != 0 {
		t.Fatalf("unexpected parse errors: %v", errs)
	}
	if len(prog.FunctionDefs) != 1 {
		t.Fatalf("got %d function defs, want 1", len(prog.FunctionDefs))
	}
	fib := prog.FunctionDefs[0]
	if fib.Name.Name != "fib" {
		t.Errorf("name = %q, want fib", fib.Name.Name)
	}
	closure, ok := fib.Body.(*ast.ClosureExpr)
	if !ok {
		t.Fatalf("body is %T, want *ast.ClosureExpr", fib.Body)
	}
	if len(closure.Arms) != 3 {
		t.Fatalf("got %d arms, want 3", len(closure.Arms))
	}
}

func TestParseChoiceAndConstructor(t *testing.T) {
	src := `
choice Option T {
    Some T,
    None,
}

fn unwrap_or: (Option I32) I32 -> I32 = {
    |Some x, _| x,
    |None, d| d
}
`
	prog, errs := Parse(src)
	if len(errs) != 0 {
		t.Fatalf("unexpected parse errors: %v", errs)
	}
	if len(prog.ChoiceDefs) != 1 {
		t.Fatalf("got %d choice defs, want 1", len(prog.ChoiceDefs))
	}
	choice := prog.ChoiceDefs[0]
	if len(choice.Variants) != 2 {
		t.Fatalf("got %d variants, want 2", len(choice.Variants))
	}
	if choice.Variants[0].Name.Name != "Some" {
		t.Errorf("variant 0 name = %q, want Some", choice.Variants[0].Name.Name)
	}
}

func TestParseRecordExprAndType(t *testing.T) {
	src := `
choice Tree T {
    Node { key: I32, value: T },
    Empty,
}

fn leaf: I32 -> Tree I32 = |k| Node { key: k, value: k }
`
	_, errs := Parse(src)
	if len(errs) != 0 {
		t.Fatalf("unexpected parse errors: %v", errs)
	}
}

func TestParseErrorRecovery(t *testing.T) {
	src := `
fn bad = )
fn ok = 1
`
	prog, errs := Parse(src)
	if len(errs) == 0 {
		t.Fatalf("expected a parse error")
	}
	if len(prog.FunctionDefs) != 2 {
		t.Fatalf("got %d function defs, want 2 (parser should recover)", len(prog.FunctionDefs))
	}
}
