package engine

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/lbliii/rosettes/pkg/registry"
)

func TestHighlightDefaultsToHTML(t *testing.T) {
	out, err := Highlight("def hello(): pass", "python")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "<div") || !strings.Contains(out, "</div>") {
		t.Fatalf("expected HTML container, got: %s", out)
	}
}

func TestHighlightUnknownLanguageFallsBackToPlaintext(t *testing.T) {
	out, err := Highlight("some text", "not-a-real-language", WithFormatter("null"))
	if err != nil {
		t.Fatal(err)
	}
	if out != "some text" {
		t.Fatalf("got %q, want %q", out, "some text")
	}
}

func TestHighlightUnknownFormatterReturnsError(t *testing.T) {
	_, err := Highlight("x", "python", WithFormatter("pdf"))
	if !errors.Is(err, registry.ErrUnknownFormatter) {
		t.Fatalf("expected ErrUnknownFormatter, got %v", err)
	}
}

func TestHighlightWithLineNumbersForcesSlowPath(t *testing.T) {
	out, err := Highlight("a\nb", "plaintext", WithLineNumbers(true))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, `class="ln"`) {
		t.Fatalf("expected line-number markup, got: %s", out)
	}
}

func TestTokenizeReturnsRawTokens(t *testing.T) {
	count := 0
	for range Tokenize("def f(): pass", "python") {
		count++
	}
	if count == 0 {
		t.Fatal("expected at least one token")
	}
}

func TestWithRangeRestrictsInput(t *testing.T) {
	out, err := Highlight("abc def ghi", "plaintext", WithFormatter("null"), WithRange(4, 7))
	if err != nil {
		t.Fatal(err)
	}
	if out != "def" {
		t.Fatalf("got %q, want %q", out, "def")
	}
}

func TestHighlightManySequentialBelowThreshold(t *testing.T) {
	items := []HighlightItem{
		{Input: "a", Language: "plaintext", Opts: []Option{WithFormatter("null")}},
		{Input: "b", Language: "plaintext", Opts: []Option{WithFormatter("null")}},
	}
	results := HighlightMany(context.Background(), items)
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	if results[0].Output != "a" || results[1].Output != "b" {
		t.Fatalf("order not preserved: %+v", results)
	}
}

func TestHighlightManyAboveThresholdPreservesOrder(t *testing.T) {
	items := make([]HighlightItem, 0, 20)
	for i := 0; i < 20; i++ {
		items = append(items, HighlightItem{
			Input:    string(rune('a' + i)),
			Language: "plaintext",
			Opts:     []Option{WithFormatter("null")},
		})
	}
	results := HighlightMany(context.Background(), items)
	if len(results) != 20 {
		t.Fatalf("got %d results, want 20", len(results))
	}
	for i, r := range results {
		want := string(rune('a' + i))
		if r.Err != nil || r.Output != want {
			t.Errorf("result[%d] = %+v, want output %q", i, r, want)
		}
	}
}

func TestTokenizeManyPreservesOrder(t *testing.T) {
	items := make([]TokenizeItem, 0, 10)
	for i := 0; i < 10; i++ {
		items = append(items, TokenizeItem{Input: "x", Language: "plaintext"})
	}
	results := TokenizeMany(context.Background(), items)
	if len(results) != 10 {
		t.Fatalf("got %d results, want 10", len(results))
	}
	for i, r := range results {
		if r.Err != nil || len(r.Tokens) != 1 || r.Tokens[0].Text != "x" {
			t.Errorf("result[%d] = %+v", i, r)
		}
	}
}

func TestWithMaxWorkersIsRespected(t *testing.T) {
	items := make([]HighlightItem, 0, 16)
	for i := 0; i < 16; i++ {
		items = append(items, HighlightItem{Input: "x", Language: "plaintext", Opts: []Option{WithFormatter("null")}})
	}
	results := HighlightMany(context.Background(), items, WithMaxWorkers(2))
	for i, r := range results {
		if r.Err != nil || r.Output != "x" {
			t.Errorf("result[%d] = %+v", i, r)
		}
	}
}
