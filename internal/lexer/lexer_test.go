package lexer

import (
	"testing"

	"github.com/kiidax/nablajs/internal/token"
)

// ============================================================================
// Token stream shape (supporting infrastructure, lighter test depth than
// the object model / evaluator core)
// ============================================================================

func TestNextTokenPunctuatorsAndKeywords(t *testing.T) {
	l := New(`var x = 1 + 2;`)
	want := []token.Kind{token.VAR, token.IDENT, token.ASSIGN, token.NUMBER, token.PLUS, token.NUMBER, token.SEMI, token.EOF}
	for i, k := range want {
		tok := l.NextToken()
		if tok.Kind != k {
			t.Fatalf("token %d: kind = %s, want %s (literal %q)", i, tok.Kind, k, tok.Literal)
		}
	}
}

func TestNextTokenStringLiteralUnescapes(t *testing.T) {
	l := New(`"a\nb"`)
	tok := l.NextToken()
	if tok.Kind != token.STRING {
		t.Fatalf("kind = %s, want STRING", tok.Kind)
	}
	if tok.Literal != "a\nb" {
		t.Errorf("literal = %q, want %q", tok.Literal, "a\nb")
	}
}

func TestNextTokenRegexpVsDivisionDisambiguation(t *testing.T) {
	l := New(`(x)/y/g`)
	want := []token.Kind{token.LPAREN, token.IDENT, token.RPAREN, token.SLASH, token.IDENT, token.SLASH, token.IDENT, token.EOF}
	for i, k := range want {
		tok := l.NextToken()
		if tok.Kind != k {
			t.Fatalf("token %d: kind = %s, want %s (a `/` right after an operand is division, not a regexp)", i, tok.Kind, k)
		}
	}
}

func TestNextTokenRegexpLiteralAtExpressionStart(t *testing.T) {
	l := New(`/ab+c/gi`)
	tok := l.NextToken()
	if tok.Kind != token.REGEXP {
		t.Fatalf("kind = %s, want REGEXP", tok.Kind)
	}
	if tok.Literal != "/ab+c/gi" {
		t.Errorf("literal = %q, want %q", tok.Literal, "/ab+c/gi")
	}
}

func TestNextTokenPrecededByNewlineTracksAutomaticSemicolonInsertion(t *testing.T) {
	l := New("a\nb")
	first := l.NextToken()
	if first.PrecededByNewline {
		t.Errorf("first token reported PrecededByNewline = true")
	}
	second := l.NextToken()
	if !second.PrecededByNewline {
		t.Errorf("second token PrecededByNewline = false, want true")
	}
}

func TestNextTokenNumberLiterals(t *testing.T) {
	tests := []struct{ src, want string }{
		{"0x1F", "0x1F"},
		{"3.14", "3.14"},
		{"1e10", "1e10"},
		{"0", "0"},
	}
	for _, tt := range tests {
		l := New(tt.src)
		tok := l.NextToken()
		if tok.Kind != token.NUMBER {
			t.Fatalf("%q: kind = %s, want NUMBER", tt.src, tok.Kind)
		}
		if tok.Literal != tt.want {
			t.Errorf("%q: literal = %q, want %q", tt.src, tok.Literal, tt.want)
		}
	}
}
