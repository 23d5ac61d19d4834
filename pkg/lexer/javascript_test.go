package lexer

import (
	"strings"
	"testing"

	"github.com/lbliii/rosettes/pkg/token"
)

func TestJavaScriptTemplateLiteralInterpolation(t *testing.T) {
	src := "`hello ${name}`"
	toks := collect(JavaScript(), src)

	var sb strings.Builder
	for _, tok := range toks {
		sb.WriteString(tok.Text)
	}
	if sb.String() != src {
		t.Fatalf("round-trip mismatch: got %q, want %q", sb.String(), src)
	}

	foundInterpolStart := false
	foundExprName := false
	foundInterpolEnd := false
	for _, tok := range toks {
		switch {
		case tok.Category == token.StringInterpol && tok.Text == "${":
			foundInterpolStart = true
		case tok.Category == token.Name && tok.Text == "name":
			foundExprName = true
		case tok.Category == token.StringInterpol && tok.Text == "}":
			foundInterpolEnd = true
		}
	}
	if !foundInterpolStart || !foundExprName || !foundInterpolEnd {
		t.Fatalf("expected interpolation markers and expression name, got %v", toks)
	}
}

func TestJavaScriptTemplateLiteralNoInterpolation(t *testing.T) {
	src := "`just text`"
	toks := collect(JavaScript(), src)
	if len(toks) != 1 || toks[0].Category != token.StringInterpolated {
		t.Fatalf("plain template literal should be a single StringInterpolated token, got %v", toks)
	}
}

func TestJavaScriptNestedExpressionInInterpolation(t *testing.T) {
	src := "`sum is ${1 + 2}`"
	var sb strings.Builder
	for _, tok := range collect(JavaScript(), src) {
		sb.WriteString(tok.Text)
	}
	if sb.String() != src {
		t.Fatalf("round-trip mismatch: got %q, want %q", sb.String(), src)
	}
}

func TestJavaScriptArrowFunction(t *testing.T) {
	src := "const f = (x) => x + 1;"
	var sawArrow bool
	for _, tok := range collect(JavaScript(), src) {
		if tok.Category == token.OperatorSymbolic && tok.Text == "=>" {
			sawArrow = true
		}
	}
	if !sawArrow {
		t.Fatal("expected a single => token")
	}
}
