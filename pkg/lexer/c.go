package lexer

import (
	"iter"

	"github.com/lbliii/rosettes/pkg/token"
)

type cLexer struct{}

// C returns the C lexer. It is the exemplar for spec §8 scenario 4: a
// truncated input like `/* incomplete` must still tokenize to completion,
// yielding the entire unterminated tail as a single CommentMultiline token
// and nothing else — no Error token, per the asymmetric open-question
// resolution documented in scan_comment.go.
func C() Lexer { return cLexer{} }

func (cLexer) Name() string      { return "c" }
func (cLexer) Aliases() []string { return []string{"h", "c99", "c11"} }

var cKeywords = map[string]token.Category{
	"int": token.KeywordType, "char": token.KeywordType, "float": token.KeywordType, "double": token.KeywordType,
	"void": token.KeywordType, "long": token.KeywordType, "short": token.KeywordType, "unsigned": token.KeywordType,
	"signed": token.KeywordType, "struct": token.KeywordType, "union": token.KeywordType, "enum": token.KeywordType,
	"typedef": token.KeywordDeclaration, "static": token.KeywordDeclaration, "extern": token.KeywordDeclaration,
	"const": token.KeywordDeclaration, "volatile": token.KeywordDeclaration, "register": token.KeywordDeclaration, "inline": token.KeywordDeclaration,
	"if": token.KeywordPlain, "else": token.KeywordPlain, "for": token.KeywordPlain, "while": token.KeywordPlain, "do": token.KeywordPlain,
	"switch": token.KeywordPlain, "case": token.KeywordPlain, "default": token.KeywordPlain, "break": token.KeywordPlain, "continue": token.KeywordPlain,
	"return": token.KeywordPlain, "goto": token.KeywordPlain, "sizeof": token.OperatorWord,
}

func (l cLexer) Tokenize(input string, start, end int) iter.Seq[token.Token] {
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

			case ch == '#':
				// Preprocessor directives are scanned as a single Text token
				// spanning to end of line: rosettes does not implement a
				// macro-aware sub-grammar (out of scope for a tokenizer that
				// never evaluates code), matching the spirit of carv's lexer
				// treating anything it doesn't specifically classify as a
				// single opaque run.
				text := scanLineComment(c)
				if !yield(token.Token{Category: token.Text, Text: text, Line: line, Column: col}) {
					return
				}

			case ch == '/' && c.peek() == '/':
				text := scanLineComment(c)
				if !yield(token.Token{Category: token.CommentSingle, Text: text, Line: line, Column: col}) {
					return
				}

			case ch == '/' && c.peek() == '*':
				start := c.pos
				c.step()
				c.step()
				text, cat := scanBlockComment(c, start, '*', '/')
				if !yield(token.Token{Category: cat, Text: text, Line: line, Column: col}) {
					return
				}

			case ch == '"':
				text, cat := scanString(c, ch, stringOptions{AllowEscapes: true})
				if !yield(token.Token{Category: cat, Text: text, Line: line, Column: col}) {
					return
				}

			case ch == '\'':
				text, cat := scanCharLiteral(c)
				if !yield(token.Token{Category: cat, Text: text, Line: line, Column: col}) {
					return
				}

			case isDigit(ch):
				text, cat := scanNumber(c, numberOptions{AllowHex: true, AllowOctal: true, AllowBinary: true, AllowFloat: true, AllowScientific: true})
				if !yield(token.Token{Category: cat, Text: text, Line: line, Column: col}) {
					return
				}

			case isIdentStart(ch):
				word := scanIdentifier(c)
				cat, known := classifyWord(word, cKeywords)
				if !known {
					if isAtCallParen(c) {
						cat = token.NameFunction
					} else {
						cat = token.Name
					}
				}
				if !yield(token.Token{Category: cat, Text: word, Line: line, Column: col}) {
					return
				}

			case isCOperatorRune(ch):
				text := scanCOperator(c)
				if !yield(token.Token{Category: token.OperatorSymbolic, Text: text, Line: line, Column: col}) {
					return
				}

			case isPunct(ch):
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

func (l cLexer) TokenizeFast(input string, start, end int) iter.Seq2[token.Category, string] {
	return fastFromFull(l.Tokenize(input, start, end))
}

// scanCharLiteral scans a 'c' rune literal. Unterminated (input ends before
// the closing quote) yields token.Error for the tail, the same policy as
// scanString.
func scanCharLiteral(c *cursor) (string, token.Category) {
	start := c.pos
	c.step() // opening quote
	for {
		switch {
		case c.atEnd() || c.ch == '\n':
			return c.slice(start), token.Error
		case c.ch == '\\':
			c.step()
			if c.atEnd() {
				return c.slice(start), token.Error
			}
			c.step()
		case c.ch == '\'':
			c.step()
			return c.slice(start), token.StringSingle
		default:
			c.step()
		}
	}
}

func isCOperatorRune(r rune) bool {
	switch r {
	case '+', '-', '*', '/', '%', '=', '<', '>', '!', '&', '|', '^', '~':
		return true
	default:
		return false
	}
}

func scanCOperator(c *cursor) string {
	start := c.pos
	first := c.ch
	c.step()

	switch {
	case (first == '=' || first == '!' || first == '<' || first == '>') && c.ch == '=':
		c.step()
	case first == '+' && c.ch == '+':
		c.step()
	case first == '-' && (c.ch == '-' || c.ch == '>'):
		c.step()
	case first == '&' && c.ch == '&':
		c.step()
	case first == '|' && c.ch == '|':
		c.step()
	case first == '<' && c.ch == '<':
		c.step()
	case first == '>' && c.ch == '>':
		c.step()
	}
	return c.slice(start)
}
