package lexer

import (
	"testing"

	"github.com/lbliii/rosettes/pkg/token"
)

func TestPythonDefHelloClassifiesAsDeclarationThenFunction(t *testing.T) {
	src := "def hello(): pass"
	var cats []token.Category
	var texts []string
	for tok := range Python().Tokenize(src, 0, len(src)) {
		if tok.Category == token.Whitespace {
			continue
		}
		cats = append(cats, tok.Category)
		texts = append(texts, tok.Text)
	}

	want := []struct {
		text string
		cat  token.Category
	}{
		{"def", token.KeywordDeclaration},
		{"hello", token.NameFunction},
		{"(", token.Punctuation},
		{")", token.Punctuation},
		{":", token.OperatorSymbolic},
		{"pass", token.KeywordPlain},
	}
	if len(texts) != len(want) {
		t.Fatalf("got %d significant tokens %v, want %d", len(texts), texts, len(want))
	}
	for i, w := range want {
		if texts[i] != w.text || cats[i] != w.cat {
			t.Errorf("token %d = (%q, %s), want (%q, %s)", i, texts[i], cats[i], w.text, w.cat)
		}
	}
}

func TestPythonFString(t *testing.T) {
	src := `f"hello {name}"`
	toks := collect(Python(), src)
	if len(toks) != 1 {
		t.Fatalf("expected one token for f-string, got %d: %v", len(toks), toks)
	}
	if toks[0].Category != token.StringInterpolated {
		t.Fatalf("category = %s, want StringInterpolated", toks[0].Category)
	}
	if toks[0].Text != src {
		t.Fatalf("text = %q, want %q", toks[0].Text, src)
	}
}

func TestPythonRawString(t *testing.T) {
	src := `r"raw\nstring"`
	toks := collect(Python(), src)
	if len(toks) != 1 || toks[0].Category != token.StringRaw {
		t.Fatalf("unexpected tokens for raw string: %v", toks)
	}
}

func TestPythonTripleQuotedString(t *testing.T) {
	src := `"""triple
quoted"""`
	toks := collect(Python(), src)
	if len(toks) != 1 || toks[0].Category != token.StringTriple {
		t.Fatalf("unexpected tokens for triple-quoted string: %v", toks)
	}
	if toks[0].Text != src {
		t.Fatalf("text = %q, want %q", toks[0].Text, src)
	}
}

func TestPythonBuiltinCallSiteIsFunction(t *testing.T) {
	src := "print(x)"
	toks := collect(Python(), src)
	if toks[0].Text != "print" || toks[0].Category != token.NameFunction {
		t.Fatalf("print(...) call site should be NameFunction, got %v", toks[0])
	}
}

func TestPythonEmptyStringIsNotMistakenForTriple(t *testing.T) {
	for _, src := range []string{`""`, `''`} {
		toks := collect(Python(), src)
		if len(toks) != 1 {
			t.Fatalf("%s: expected one token for an empty string, got %d: %v", src, len(toks), toks)
		}
		if toks[0].Category == token.Error {
			t.Fatalf("%s: empty string mis-scanned as Error: %v", src, toks[0])
		}
		if toks[0].Text != src {
			t.Fatalf("%s: text = %q, want %q", src, toks[0].Text, src)
		}
	}
}

func TestPythonEmptyStringFollowedByMoreSource(t *testing.T) {
	// Regression: an earlier bug treated any two leading quotes as the start
	// of a triple-quoted string, so "" followed by more code would consume
	// everything up to the next """ (or EOF) instead of stopping at the
	// second quote.
	src := `x = ""
y = 1`
	toks := collect(Python(), src)
	for _, tok := range toks {
		if tok.Category == token.Error {
			t.Fatalf("unexpected Error token in %q: %v", src, tok)
		}
	}
	lastText := toks[len(toks)-1].Text
	if lastText != "1" {
		t.Fatalf("last token = %q, want %q (string should not have swallowed the rest of input)", lastText, "1")
	}
}

func TestPythonUnterminatedString(t *testing.T) {
	src := `"never closes`
	toks := collect(Python(), src)
	if len(toks) != 1 || toks[0].Category != token.Error {
		t.Fatalf("unterminated string should yield a single Error token, got %v", toks)
	}
}
