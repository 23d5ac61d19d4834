package lexer

import (
	"testing"

	"github.com/lbliii/rosettes/pkg/token"
)

func TestGoRawString(t *testing.T) {
	src := "`raw\nstring with \\n literal backslash`"
	toks := collect(Go(), src)
	if len(toks) != 1 || toks[0].Category != token.StringRaw {
		t.Fatalf("expected single StringRaw token, got %v", toks)
	}
	if toks[0].Text != src {
		t.Fatalf("text = %q, want %q", toks[0].Text, src)
	}
}

func TestGoHexOctalBinaryLiterals(t *testing.T) {
	src := "0xFF 0o17 0b1010 1_000_000"
	var cats []token.Category
	for _, tok := range collect(Go(), src) {
		if tok.Category != token.Whitespace {
			cats = append(cats, tok.Category)
		}
	}
	want := []token.Category{token.NumberHex, token.NumberOctal, token.NumberBinary, token.NumberInteger}
	if len(cats) != len(want) {
		t.Fatalf("got %v, want %v", cats, want)
	}
	for i := range want {
		if cats[i] != want[i] {
			t.Errorf("token %d = %s, want %s", i, cats[i], want[i])
		}
	}
}

func TestGoBarePrefixWithoutDigitsIsNotHex(t *testing.T) {
	// "0x" with nothing valid after it must not commit to a hex literal:
	// the '0' is its own Number.Integer and "x" is a separate identifier.
	src := "0x"
	toks := collect(Go(), src)
	if len(toks) != 2 {
		t.Fatalf("got %d tokens %v, want 2", len(toks), toks)
	}
	if toks[0].Category != token.NumberInteger || toks[0].Text != "0" {
		t.Fatalf("first token = %v, want Number.Integer \"0\"", toks[0])
	}
	if toks[1].Category == token.NumberHex {
		t.Fatalf("second token wrongly classified as hex: %v", toks[1])
	}
	if toks[1].Text != "x" {
		t.Fatalf("second token text = %q, want %q", toks[1].Text, "x")
	}
}

func TestGoBareOctalAndBinaryPrefixesWithoutDigits(t *testing.T) {
	for _, src := range []string{"0o", "0b"} {
		toks := collect(Go(), src)
		if len(toks) != 2 {
			t.Fatalf("%s: got %d tokens %v, want 2", src, len(toks), toks)
		}
		if toks[0].Category != token.NumberInteger || toks[0].Text != "0" {
			t.Fatalf("%s: first token = %v, want Number.Integer \"0\"", src, toks[0])
		}
		if toks[1].Category == token.NumberOctal || toks[1].Category == token.NumberBinary {
			t.Fatalf("%s: second token wrongly classified as a prefixed number: %v", src, toks[1])
		}
	}
}

func TestGoFuncDeclarationKeyword(t *testing.T) {
	src := "func main() {}"
	toks := collect(Go(), src)
	if toks[0].Category != token.KeywordDeclaration || toks[0].Text != "func" {
		t.Fatalf("first token = %v, want func keyword", toks[0])
	}
}

func TestGoRuneLiteral(t *testing.T) {
	src := "'a'"
	toks := collect(Go(), src)
	if len(toks) != 1 || toks[0].Category != token.StringSingle {
		t.Fatalf("expected single rune literal token, got %v", toks)
	}
}
