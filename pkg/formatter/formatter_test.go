package formatter

import (
	"strings"
	"testing"

	"github.com/lbliii/rosettes/pkg/lexer"
	"github.com/lbliii/rosettes/pkg/token"
)

func allFormatters() []Formatter {
	return []Formatter{HTML(), Terminal(), Null()}
}

func TestNullFormatterRoundTrips(t *testing.T) {
	src := "def hello(): pass\n"
	got, err := FormatString(Null(), lexer.Python().Tokenize(src, 0, len(src)), HighlightConfig{})
	if err != nil {
		t.Fatal(err)
	}
	if got != src {
		t.Fatalf("got %q, want %q", got, src)
	}
}

func TestNullFormatterFastPathRoundTrips(t *testing.T) {
	src := "def hello(): pass\n"
	got, err := FormatStringFast(Null(), lexer.Python().TokenizeFast(src, 0, len(src)), FormatConfig{})
	if err != nil {
		t.Fatal(err)
	}
	if got != src {
		t.Fatalf("got %q, want %q", got, src)
	}
}

func TestHTMLFormatterEscapesReservedCharacters(t *testing.T) {
	src := `<script>alert("x")</script>`
	out, err := FormatStringFast(HTML(), lexer.Plaintext().TokenizeFast(src, 0, len(src)), FormatConfig{})
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(out, "<script>") {
		t.Fatalf("unescaped script tag leaked into output: %s", out)
	}
	if !strings.Contains(out, "&lt;script&gt;") {
		t.Fatalf("expected escaped tag, got: %s", out)
	}
}

func TestHTMLFormatterContainerClassStyles(t *testing.T) {
	out, err := FormatStringFast(HTML(), lexer.Python().TokenizeFast("x", 0, 1), FormatConfig{ClassStyle: token.Semantic})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, `class="rosettes"`) {
		t.Fatalf("expected default semantic container class, got: %s", out)
	}
}

func TestHTMLFormatterCustomContainerAndLanguage(t *testing.T) {
	out, err := FormatStringFast(HTML(), lexer.Python().TokenizeFast("x", 0, 1), FormatConfig{
		ContainerClass: "my-code",
		DataLanguage:   "python",
	})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, `class="my-code"`) || !strings.Contains(out, `data-language="python"`) {
		t.Fatalf("missing custom container attributes: %s", out)
	}
}

func TestHTMLFormatterWhitespaceIsNotWrappedInASpan(t *testing.T) {
	src := "a b"
	out, err := FormatStringFast(HTML(), lexer.Plaintext().TokenizeFast(src, 0, len(src)), FormatConfig{})
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(out, "syntax-whitespace") || strings.Contains(out, `<span class="w">`) {
		t.Fatalf("whitespace token should not be wrapped in a span, got: %s", out)
	}
	if !strings.Contains(out, "a b") {
		t.Fatalf("expected bare whitespace text to survive, got: %s", out)
	}
}

func TestHTMLFormatterLineNumbersAndHighlightedLines(t *testing.T) {
	src := "a\nb\nc"
	out, err := FormatString(HTML(), lexer.Plaintext().Tokenize(src, 0, len(src)), HighlightConfig{
		ShowLineNumbers:  true,
		HighlightedLines: map[int]struct{}{2: {}},
	})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, `class="line hll"`) {
		t.Fatalf("expected highlighted line wrapper, got: %s", out)
	}
	if strings.Count(out, `<span class="ln">`) != 3 {
		t.Fatalf("expected 3 line-number spans, got: %s", out)
	}
}

func TestTerminalFormatterAppliesAndResetsColor(t *testing.T) {
	src := "def hello(): pass"
	out, err := FormatString(Terminal(), lexer.Python().Tokenize(src, 0, len(src)), HighlightConfig{})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "\x1b[") {
		t.Fatalf("expected at least one SGR escape, got: %q", out)
	}
	if !strings.Contains(out, reset) {
		t.Fatalf("expected a reset sequence, got: %q", out)
	}
}

func TestAllFormattersHandleEmptyInput(t *testing.T) {
	for _, f := range allFormatters() {
		if _, err := FormatString(f, lexer.Plaintext().Tokenize("", 0, 0), HighlightConfig{}); err != nil {
			t.Errorf("%s: error on empty input: %v", f.Name(), err)
		}
	}
}

func TestFormatterNamesAndAliasesNonEmpty(t *testing.T) {
	for _, f := range allFormatters() {
		if f.Name() == "" {
			t.Errorf("formatter with empty Name(): %#v", f)
		}
		if len(f.Aliases()) == 0 {
			t.Errorf("%s: formatter with no Aliases()", f.Name())
		}
	}
}
