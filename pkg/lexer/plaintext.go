package lexer

import (
	"iter"

	"github.com/lbliii/rosettes/pkg/token"
)

// plaintextLexer is the always-present fallback lexer (spec §4.2): it
// performs no classification beyond separating whitespace runs from
// everything else, so it can never fail to register for a language name
// the registry doesn't recognize.
type plaintextLexer struct{}

// Plaintext returns the fallback lexer. The registry binds it to the
// "plaintext" name and its one alias, "text", and also hands it back
// whenever a requested language is unknown, per spec §5.
func Plaintext() Lexer { return plaintextLexer{} }

func (plaintextLexer) Name() string     { return "plaintext" }
func (plaintextLexer) Aliases() []string { return []string{"text"} }

func (l plaintextLexer) Tokenize(input string, start, end int) iter.Seq[token.Token] {
	start, end = resolveRange(input, start, end)
	return func(yield func(token.Token) bool) {
		c := newCursor(input, start, end)
		for !c.atEnd() {
			line, col := c.line, c.column
			var text string
			var cat token.Category
			if isSpace(c.ch) {
				text = scanWhitespaceRun(c)
				cat = token.Whitespace
			} else {
				text = scanPlainRun(c)
				cat = token.Text
			}
			if text == "" {
				// Defensive against a zero-width scan; cannot currently
				// happen but would otherwise loop forever.
				c.step()
				continue
			}
			if !yield(token.Token{Category: cat, Text: text, Line: line, Column: col}) {
				return
			}
		}
	}
}

func (l plaintextLexer) TokenizeFast(input string, start, end int) iter.Seq2[token.Category, string] {
	return fastFromFull(l.Tokenize(input, start, end))
}

// scanPlainRun consumes a maximal run of non-whitespace text.
func scanPlainRun(c *cursor) string {
	start := c.pos
	for !c.atEnd() && !isSpace(c.ch) {
		c.step()
	}
	return c.slice(start)
}
