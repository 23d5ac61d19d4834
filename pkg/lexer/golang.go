package lexer

import (
	"iter"

	"github.com/lbliii/rosettes/pkg/token"
)

type goLexer struct{}

// Go returns the Go lexer: raw backtick strings, rune literals, and
// 0x/0o/0b numeric literals with underscore separators, the forms the
// other lexers in this package don't individually exercise.
func Go() Lexer { return goLexer{} }

func (goLexer) Name() string      { return "go" }
func (goLexer) Aliases() []string { return []string{"golang"} }

var goKeywords = map[string]token.Category{
	"true": token.KeywordConstant, "false": token.KeywordConstant, "nil": token.KeywordConstant, "iota": token.KeywordConstant,
	"func": token.KeywordDeclaration, "type": token.KeywordDeclaration, "struct": token.KeywordDeclaration, "interface": token.KeywordDeclaration,
	"var": token.KeywordDeclaration, "const": token.KeywordDeclaration, "map": token.KeywordType, "chan": token.KeywordType,
	"package": token.KeywordNamespace, "import": token.KeywordNamespace,
	"if": token.KeywordPlain, "else": token.KeywordPlain, "for": token.KeywordPlain, "range": token.OperatorWord,
	"switch": token.KeywordPlain, "case": token.KeywordPlain, "default": token.KeywordPlain, "select": token.KeywordPlain,
	"return": token.KeywordPlain, "break": token.KeywordPlain, "continue": token.KeywordPlain, "goto": token.KeywordPlain, "fallthrough": token.KeywordPlain,
	"go": token.KeywordPlain, "defer": token.KeywordPlain,
	"int": token.KeywordType, "int8": token.KeywordType, "int16": token.KeywordType, "int32": token.KeywordType, "int64": token.KeywordType,
	"uint": token.KeywordType, "uint8": token.KeywordType, "uint16": token.KeywordType, "uint32": token.KeywordType, "uint64": token.KeywordType,
	"byte": token.KeywordType, "rune": token.KeywordType, "string": token.KeywordType, "bool": token.KeywordType,
	"float32": token.KeywordType, "float64": token.KeywordType, "error": token.KeywordType, "any": token.KeywordType,
}

func (l goLexer) Tokenize(input string, start, end int) iter.Seq[token.Token] {
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

			case ch == '`':
				text, cat := scanRawString(c)
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
				text, cat := scanNumber(c, numberOptions{AllowHex: true, AllowOctal: true, AllowBinary: true, AllowFloat: true, AllowScientific: true, AllowUnderscore: true})
				if !yield(token.Token{Category: cat, Text: text, Line: line, Column: col}) {
					return
				}

			case isIdentStart(ch):
				word := scanIdentifier(c)
				cat, known := classifyWord(word, goKeywords)
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

func (l goLexer) TokenizeFast(input string, start, end int) iter.Seq2[token.Category, string] {
	return fastFromFull(l.Tokenize(input, start, end))
}

// scanRawString scans a `...` raw string literal. Backslashes are not
// escapes inside a Go raw string; only the closing backtick terminates it.
// Unterminated input yields token.Error for the tail, same policy as other
// quoted forms.
func scanRawString(c *cursor) (string, token.Category) {
	start := c.pos
	c.step() // opening backtick
	for {
		switch {
		case c.atEnd():
			return c.slice(start), token.Error
		case c.ch == '`':
			c.step()
			return c.slice(start), token.StringRaw
		default:
			c.step()
		}
	}
}
