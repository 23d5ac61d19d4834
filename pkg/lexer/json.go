package lexer

import (
	"iter"

	"github.com/lbliii/rosettes/pkg/token"
)

type jsonLexer struct{}

// JSON returns the JSON lexer. JSON has no identifiers, no comments, and
// exactly three keyword literals (true/false/null), making it the smallest
// complete grammar in the set — useful as a floor-case alongside python.go's
// exemplar for a richer grammar.
func JSON() Lexer { return jsonLexer{} }

func (jsonLexer) Name() string      { return "json" }
func (jsonLexer) Aliases() []string { return []string{} }

func (l jsonLexer) Tokenize(input string, start, end int) iter.Seq[token.Token] {
	start, end = resolveRange(input, start, end)
	return func(yield func(token.Token) bool) {
		c := newCursor(input, start, end)
		for !c.atEnd() {
			line, col := c.line, c.column
			ch := c.ch

			switch {
			case isSpace(ch):
				text := scanWhitespaceRun(c)
				if !yield(token.Token{Category: token.Whitespace, Text: text, Line: line, Column: col}) {
					return
				}

			case ch == '"':
				text, cat := scanString(c, ch, stringOptions{AllowEscapes: true})
				if !yield(token.Token{Category: cat, Text: text, Line: line, Column: col}) {
					return
				}

			case isDigit(ch) || (ch == '-' && isDigit(c.peek())):
				negStart := c.pos
				if ch == '-' {
					c.step()
				}
				_, cat := scanNumber(c, numberOptions{AllowFloat: true, AllowScientific: true})
				full := c.slice(negStart)
				if !yield(token.Token{Category: cat, Text: full, Line: line, Column: col}) {
					return
				}

			case isIdentStart(ch):
				word := scanIdentifier(c)
				cat := token.Error
				switch word {
				case "true", "false":
					cat = token.LiteralBoolean
				case "null":
					cat = token.KeywordConstant
				}
				if !yield(token.Token{Category: cat, Text: word, Line: line, Column: col}) {
					return
				}

			case isPunct(ch) || ch == ':':
				c.step()
				if !yield(token.Token{Category: token.Punctuation, Text: string(ch), Line: line, Column: col}) {
					return
				}

			default:
				c.step()
				if !yield(token.Token{Category: token.Error, Text: string(ch), Line: line, Column: col}) {
					return
				}
			}
		}
	}
}

func (l jsonLexer) TokenizeFast(input string, start, end int) iter.Seq2[token.Category, string] {
	return fastFromFull(l.Tokenize(input, start, end))
}
