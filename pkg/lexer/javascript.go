package lexer

import (
	"iter"

	"github.com/lbliii/rosettes/pkg/token"
)

type javascriptLexer struct{}

// JavaScript returns the JavaScript lexer. It is the interpolation exemplar
// described in spec §8 scenario 2: a template literal like
// `` `hello ${name}` `` must tokenize as StringInterpolated text around a
// recursively-scanned expression, not as one opaque string.
func JavaScript() Lexer { return javascriptLexer{} }

func (javascriptLexer) Name() string      { return "javascript" }
func (javascriptLexer) Aliases() []string { return []string{"js", "node", "jsx"} }

var javascriptKeywords = map[string]token.Category{
	"true": token.KeywordConstant, "false": token.KeywordConstant, "null": token.KeywordConstant, "undefined": token.KeywordConstant, "NaN": token.KeywordConstant,
	"function": token.KeywordDeclaration, "class": token.KeywordDeclaration, "const": token.KeywordDeclaration, "let": token.KeywordDeclaration, "var": token.KeywordDeclaration,
	"import": token.KeywordNamespace, "export": token.KeywordNamespace, "from": token.KeywordNamespace, "as": token.KeywordNamespace, "default": token.KeywordNamespace,
	"if": token.KeywordPlain, "else": token.KeywordPlain, "for": token.KeywordPlain, "while": token.KeywordPlain, "do": token.KeywordPlain,
	"switch": token.KeywordPlain, "case": token.KeywordPlain, "break": token.KeywordPlain, "continue": token.KeywordPlain,
	"return": token.KeywordPlain, "throw": token.KeywordPlain, "try": token.KeywordPlain, "catch": token.KeywordPlain, "finally": token.KeywordPlain,
	"new": token.KeywordPlain, "delete": token.KeywordPlain, "typeof": token.OperatorWord, "instanceof": token.OperatorWord, "in": token.OperatorWord, "of": token.OperatorWord,
	"async": token.KeywordPlain, "await": token.KeywordPlain, "yield": token.KeywordPlain, "static": token.KeywordPlain,
	"extends": token.KeywordPlain, "super": token.KeywordConstant, "this": token.KeywordConstant, "void": token.OperatorWord,
}

func (l javascriptLexer) Tokenize(input string, start, end int) iter.Seq[token.Token] {
	start, end = resolveRange(input, start, end)
	return func(yield func(token.Token) bool) {
		yieldJS(newCursor(input, start, end), yield, 0)
	}
}

// yieldJS is the shared scan loop, callable recursively at an increased
// templateDepth so `${...}` interpolation bodies reuse the exact same
// scanner instead of a separate expression-only grammar. depth bounds
// recursion implicitly through the cursor's own position monotonically
// advancing; it is only used to decide when a bare '}' should end an
// interpolation rather than being punctuation.
func yieldJS(c *cursor, yield func(token.Token) bool, templateDepth int) bool {
	for !c.atEnd() {
		line, col := c.line, c.column
		ch := c.ch

		switch {
		case isSpace(ch):
			text := scanWhitespaceRun(c)
			if !yield(token.Token{Category: token.Whitespace, Text: text, Line: line, Column: col}) {
				return false
			}

		case ch == '/' && c.peek() == '/':
			text := scanLineComment(c)
			if !yield(token.Token{Category: token.CommentSingle, Text: text, Line: line, Column: col}) {
				return false
			}

		case ch == '/' && c.peek() == '*':
			start := c.pos
			c.step()
			c.step()
			text, cat := scanBlockComment(c, start, '*', '/')
			if !yield(token.Token{Category: cat, Text: text, Line: line, Column: col}) {
				return false
			}

		case ch == '`':
			if !yieldTemplateLiteral(c, yield) {
				return false
			}

		case ch == '"' || ch == '\'':
			text, cat := scanString(c, ch, stringOptions{AllowEscapes: true})
			if !yield(token.Token{Category: cat, Text: text, Line: line, Column: col}) {
				return false
			}

		case isDigit(ch):
			text, cat := scanNumber(c, numberOptions{AllowHex: true, AllowOctal: true, AllowBinary: true, AllowFloat: true, AllowScientific: true, AllowUnderscore: true})
			if !yield(token.Token{Category: cat, Text: text, Line: line, Column: col}) {
				return false
			}

		case isIdentStart(ch) || ch == '$':
			word := scanJSIdentifier(c)
			cat, known := classifyWord(word, javascriptKeywords)
			if !known {
				if isAtCallParen(c) {
					cat = token.NameFunction
				} else {
					cat = token.Name
				}
			}
			if !yield(token.Token{Category: cat, Text: word, Line: line, Column: col}) {
				return false
			}

		case ch == '}' && templateDepth > 0:
			// Let the caller (yieldTemplateLiteral) consume the closing
			// brace; returning here hands control back up one level.
			return true

		case isJSOperatorRune(ch):
			text := scanJSOperator(c)
			if !yield(token.Token{Category: token.OperatorSymbolic, Text: text, Line: line, Column: col}) {
				return false
			}

		case isPunct(ch):
			c.step()
			if !yield(token.Token{Category: token.Punctuation, Text: string(ch), Line: line, Column: col}) {
				return false
			}

		default:
			c.step()
			if !yield(token.Token{Category: token.Error, Text: string(ch), Line: line, Column: col}) {
				return false
			}
		}
	}
	return true
}

// yieldTemplateLiteral scans a backtick template literal, alternating
// StringInterpolated text segments with recursive expression scans inside
// each `${...}`. This is the concrete mechanism spec §4.2 calls for:
// interpolation is handled by recursively invoking the lexer's own
// top-level scanner on the embedded expression, not a separate grammar.
func yieldTemplateLiteral(c *cursor, yield func(token.Token) bool) bool {
	line, col := c.line, c.column
	start := c.pos
	c.step() // opening backtick

	flush := func(from int) bool {
		if c.pos == from {
			return true
		}
		return yield(token.Token{Category: token.StringInterpolated, Text: c.slice(from), Line: line, Column: col})
	}

	segStart := start
	for {
		switch {
		case c.atEnd():
			return flush(segStart)
		case c.ch == '\\':
			c.step()
			if !c.atEnd() {
				c.step()
			}
		case c.ch == '`':
			c.step()
			if !flush(segStart) {
				return false
			}
			return true
		case c.ch == '$' && c.peek() == '{':
			if !flush(segStart) {
				return false
			}
			braceLine, braceCol := c.line, c.column
			braceStart := c.pos
			c.step() // '$'
			c.step() // '{'
			if !yield(token.Token{Category: token.StringInterpol, Text: c.slice(braceStart), Line: braceLine, Column: braceCol}) {
				return false
			}
			if !yieldJS(c, yield, 1) {
				return false
			}
			if c.ch == '}' {
				closeLine, closeCol := c.line, c.column
				closeStart := c.pos
				c.step()
				if !yield(token.Token{Category: token.StringInterpol, Text: c.slice(closeStart), Line: closeLine, Column: closeCol}) {
					return false
				}
			}
			segStart = c.pos
			line, col = c.line, c.column
		default:
			c.step()
		}
	}
}

func (l javascriptLexer) TokenizeFast(input string, start, end int) iter.Seq2[token.Category, string] {
	return fastFromFull(l.Tokenize(input, start, end))
}

func scanJSIdentifier(c *cursor) string {
	start := c.pos
	for isIdentPart(c.ch) || c.ch == '$' {
		c.step()
	}
	return c.slice(start)
}

func isJSOperatorRune(r rune) bool {
	switch r {
	case '+', '-', '*', '/', '%', '=', '<', '>', '!', '&', '|', '^', '~', '?', ':':
		return true
	default:
		return false
	}
}

// scanJSOperator greedily extends to the common two/three-rune JS operators
// (===, !==, **, =>, &&, ||, ??, ?., <<, >>, >>>) using single-rune
// lookahead steps, never backtracking.
func scanJSOperator(c *cursor) string {
	start := c.pos
	first := c.ch
	c.step()

	switch {
	case (first == '=' || first == '!') && c.ch == '=':
		c.step()
		if c.ch == '=' {
			c.step()
		}
	case first == '*' && c.ch == '*':
		c.step()
	case first == '=' && c.ch == '>':
		c.step()
	case first == '&' && c.ch == '&':
		c.step()
	case first == '|' && c.ch == '|':
		c.step()
	case first == '?' && (c.ch == '?' || c.ch == '.'):
		c.step()
	case first == '<' && c.ch == '<':
		c.step()
	case first == '>' && c.ch == '>':
		c.step()
		if c.ch == '>' {
			c.step()
		}
	}
	return c.slice(start)
}
