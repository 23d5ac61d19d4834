package lexer

import (
	"testing"

	"github.com/lbliii/rosettes/pkg/token"
)

func TestCUnterminatedBlockCommentConsumesToEOF(t *testing.T) {
	src := "/* incomplete"
	toks := collect(C(), src)
	if len(toks) != 1 {
		t.Fatalf("expected exactly one token, got %d: %v", len(toks), toks)
	}
	if toks[0].Category != token.CommentMultiline {
		t.Fatalf("category = %s, want CommentMultiline", toks[0].Category)
	}
	if toks[0].Text != src {
		t.Fatalf("text = %q, want %q", toks[0].Text, src)
	}
	for _, tok := range toks {
		if tok.Category == token.Error {
			t.Fatal("unterminated block comment must not produce an Error token")
		}
	}
}

func TestCTerminatedBlockComment(t *testing.T) {
	src := "/* done */ int x;"
	toks := collect(C(), src)
	if toks[0].Category != token.CommentMultiline || toks[0].Text != "/* done */" {
		t.Fatalf("unexpected first token: %v", toks[0])
	}
}

func TestCPreprocessorDirectiveIsOneToken(t *testing.T) {
	src := "#include <stdio.h>\nint main() {}"
	toks := collect(C(), src)
	if toks[0].Text != "#include <stdio.h>" {
		t.Fatalf("preprocessor directive = %q", toks[0].Text)
	}
}

func TestCFunctionCallSite(t *testing.T) {
	src := "printf(\"hi\");"
	toks := collect(C(), src)
	if toks[0].Category != token.NameFunction {
		t.Fatalf("call-site identifier should be NameFunction, got %v", toks[0])
	}
}
