package diag

import (
	"bytes"
	"testing"

	"curse/internal/token"
)

func TestRenderSortsByPosition(t *testing.T) {
	var buf bytes.Buffer
	diags := []*Diagnostic{
		IdentNotFound(token.Span{Start: 10, Line: 2, Column: 1}, "y"),
		IdentNotFound(token.Span{Start: 1, Line: 1, Column: 1}, "x"),
	}
	Render(&buf, diags, ColorNever)

	out := buf.String()
	xPos := indexOf(out, `"x"`)
	yPos := indexOf(out, `"y"`)
	if xPos < 0 || yPos < 0 || xPos > yPos {
		t.Fatalf("expected x's diagnostic before y's, got:\n%s", out)
	}
}

func TestCodesDeduplicatesAndSorts(t *testing.T) {
	diags := []*Diagnostic{
		IdentNotFound(token.Span{}, "a"),
		IdentNotFound(token.Span{}, "b"),
		ParseIntError(token.Span{}, "99999999999"),
	}
	codes := Codes(diags)
	if len(codes) != 2 {
		t.Fatalf("got %d codes, want 2: %v", len(codes), codes)
	}
}

func indexOf(s, substr string) int {
	for i := 0; i+len(substr) <= len(s); i++ {
		if s[i:i+len(substr)] == substr {
			return i
		}
	}
	return -1
}
