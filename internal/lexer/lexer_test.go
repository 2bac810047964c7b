package lexer

import (
	"testing"

	"curse/internal/token"
)

func TestNextTokenSymbols(t *testing.T) {
	input := `fn twice = x (x -> x) -> x { x x }`

	tests := []struct {
		wantKind token.Kind
		wantLit  string
	}{
		{token.FN, "fn"},
		{token.IDENT, "twice"},
		{token.EQ, "="},
		{token.IDENT, "x"},
		{token.LPAREN, "("},
		{token.IDENT, "x"},
		{token.ARROW, "->"},
		{token.IDENT, "x"},
		{token.RPAREN, ")"},
		{token.ARROW, "->"},
		{token.IDENT, "x"},
		{token.LBRACE, "{"},
		{token.IDENT, "x"},
		{token.IDENT, "x"},
		{token.RBRACE, "}"},
		{token.EOF, ""},
	}

	l := New(input)
	for i, tt := range tests {
		tok := l.NextToken()
		if tok.Kind != tt.wantKind {
			t.Fatalf("token %d: kind = %s, want %s", i, tok.Kind, tt.wantKind)
		}
		if tok.Literal != tt.wantLit {
			t.Fatalf("token %d: literal = %q, want %q", i, tok.Literal, tt.wantLit)
		}
	}
}

func TestNextTokenOperatorsAndComments(t *testing.T) {
	input := "1 + 2 <= 3 // a comment\n.. ; == choice struct True False ref mut"

	var kinds []token.Kind
	l := New(input)
	for {
		tok := l.NextToken()
		kinds = append(kinds, tok.Kind)
		if tok.Kind == token.EOF {
			break
		}
	}

	want := []token.Kind{
		token.INTEGER, token.PLUS, token.INTEGER, token.LE, token.INTEGER,
		token.DOTDOT, token.SEMI, token.EQEQ,
		token.CHOICE, token.STRUCT, token.TRUE, token.FALSE, token.REF, token.MUT,
		token.EOF,
	}
	if len(kinds) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(kinds), len(want), kinds)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("token %d: kind = %s, want %s", i, kinds[i], want[i])
		}
	}
}

func TestLexerTracksLineAndColumn(t *testing.T) {
	l := New("x\ny")
	first := l.NextToken()
	if first.Span.Line != 1 {
		t.Errorf("first token line = %d, want 1", first.Span.Line)
	}
	second := l.NextToken()
	if second.Span.Line != 2 {
		t.Errorf("second token line = %d, want 2", second.Span.Line)
	}
}
