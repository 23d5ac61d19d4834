package registry

import (
	"errors"
	"testing"
)

func TestGetLexerByCanonicalNameAndAlias(t *testing.T) {
	lx, err := GetLexer("python")
	if err != nil {
		t.Fatal(err)
	}
	if lx.Name() != "python" {
		t.Fatalf("Name() = %q", lx.Name())
	}
	byAlias, err := GetLexer("PY")
	if err != nil {
		t.Fatal(err)
	}
	if byAlias.Name() != "python" {
		t.Fatalf("alias resolved to %q, want python", byAlias.Name())
	}
}

func TestGetLexerUnknownReturnsSentinel(t *testing.T) {
	_, err := GetLexer("cobol-77")
	if !errors.Is(err, ErrUnknownLanguage) {
		t.Fatalf("expected ErrUnknownLanguage, got %v", err)
	}
}

func TestGetLexerOrFallback(t *testing.T) {
	lx := GetLexerOrFallback("does-not-exist")
	if lx.Name() != "plaintext" {
		t.Fatalf("fallback = %q, want plaintext", lx.Name())
	}
}

func TestSupportsLanguageAndListLanguages(t *testing.T) {
	if !SupportsLanguage("go") {
		t.Fatal("expected go to be supported")
	}
	if SupportsLanguage("not-a-real-language") {
		t.Fatal("did not expect unknown language to be supported")
	}
	names := ListLanguages()
	if len(names) == 0 {
		t.Fatal("expected at least one language")
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] > names[i] {
			t.Fatalf("ListLanguages() not sorted: %v", names)
		}
	}
}

func TestGetFormatterByCanonicalNameAndAlias(t *testing.T) {
	f, err := GetFormatter("ansi")
	if err != nil {
		t.Fatal(err)
	}
	if f.Name() != "terminal" {
		t.Fatalf("alias resolved to %q, want terminal", f.Name())
	}
}

func TestGetFormatterUnknownReturnsSentinel(t *testing.T) {
	_, err := GetFormatter("pdf")
	if !errors.Is(err, ErrUnknownFormatter) {
		t.Fatalf("expected ErrUnknownFormatter, got %v", err)
	}
}

func TestRegistryIsMemoized(t *testing.T) {
	r := New[int](nil)
	calls := 0
	r.Register("x", nil, func() int { calls++; return 42 })
	for i := 0; i < 5; i++ {
		v, ok := r.Get("x")
		if !ok || v != 42 {
			t.Fatalf("Get(%d) = %v, %v", i, v, ok)
		}
	}
	if calls != 1 {
		t.Fatalf("constructor called %d times, want 1", calls)
	}
}

func TestRegistryNormalizesNames(t *testing.T) {
	r := New[int](nil)
	r.Register("  Foo  ", []string{" BAR "}, func() int { return 1 })
	if _, ok := r.Get("foo"); !ok {
		t.Fatal("expected normalized canonical lookup to succeed")
	}
	if _, ok := r.Get("bar"); !ok {
		t.Fatal("expected normalized alias lookup to succeed")
	}
}
