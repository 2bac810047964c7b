package compiler

import "testing"

func TestCompileCleanSourceHasNoDiagnosticsAndAProgram(t *testing.T) {
	result := Compile(`fn answer: I32 = 42`)
	if result.HadErrors() {
		t.Fatalf("unexpected diagnostics: %v", result.Diagnostics)
	}
	if result.Program == nil {
		t.Fatal("expected a lowered program")
	}
	if _, ok := result.Program.Functions["answer"]; !ok {
		t.Fatal("expected function \"answer\" in lowered program")
	}
	if result.SessionID == "" {
		t.Fatal("expected a non-empty session id")
	}
}

func TestCompileTwoRunsGetDistinctSessionIDs(t *testing.T) {
	a := Compile(`fn answer: I32 = 42`)
	b := Compile(`fn answer: I32 = 42`)
	if a.SessionID == b.SessionID {
		t.Fatalf("expected distinct session ids, both were %q", a.SessionID)
	}
}
