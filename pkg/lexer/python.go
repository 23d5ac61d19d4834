package lexer

import (
	"iter"

	"github.com/lbliii/rosettes/pkg/token"
)

type pythonLexer struct{}

// Python returns the Python 3 lexer. It is the exemplar lexer described in
// spec §8 scenario 1 (`def hello(): pass` must classify `def` as a
// declaration keyword and `hello`, the name it defines, as NameFunction).
func Python() Lexer { return pythonLexer{} }

func (pythonLexer) Name() string      { return "python" }
func (pythonLexer) Aliases() []string { return []string{"py", "python3"} }

var pythonKeywords = map[string]token.Category{
	"False": token.KeywordConstant, "None": token.KeywordConstant, "True": token.KeywordConstant,
	"and": token.OperatorWord, "or": token.OperatorWord, "not": token.OperatorWord, "in": token.OperatorWord, "is": token.OperatorWord,
	"def": token.KeywordDeclaration, "class": token.KeywordDeclaration, "lambda": token.KeywordDeclaration,
	"import": token.KeywordNamespace, "from": token.KeywordNamespace, "as": token.KeywordNamespace,
	"global": token.KeywordNamespace, "nonlocal": token.KeywordNamespace,
	"if": token.KeywordPlain, "elif": token.KeywordPlain, "else": token.KeywordPlain,
	"for": token.KeywordPlain, "while": token.KeywordPlain, "break": token.KeywordPlain, "continue": token.KeywordPlain,
	"try": token.KeywordPlain, "except": token.KeywordPlain, "finally": token.KeywordPlain, "raise": token.KeywordPlain,
	"with": token.KeywordPlain, "return": token.KeywordPlain, "yield": token.KeywordPlain, "pass": token.KeywordPlain,
	"assert": token.KeywordPlain, "del": token.KeywordPlain, "async": token.KeywordPlain, "await": token.KeywordPlain,
}

var pythonBuiltins = map[string]struct{}{
	"print": {}, "len": {}, "range": {}, "str": {}, "int": {}, "float": {}, "bool": {}, "list": {}, "dict": {},
	"set": {}, "tuple": {}, "object": {}, "isinstance": {}, "super": {}, "open": {}, "enumerate": {}, "zip": {},
	"map": {}, "filter": {}, "sorted": {}, "reversed": {}, "type": {}, "getattr": {}, "setattr": {}, "hasattr": {},
}

func (l pythonLexer) Tokenize(input string, start, end int) iter.Seq[token.Token] {
	start, end = resolveRange(input, start, end)
	return func(yield func(token.Token) bool) {
		c := newCursor(input, start, end)
		// prevWasDef/prevWasClass remember whether the last keyword token
		// was def/class, surviving across whitespace and comments, so the
		// identifier immediately following is classified NameFunction even
		// when it isn't itself followed by '(' (e.g. a class name).
		var prevWasDef, prevWasClass bool

		for !c.atEnd() {
			line, col := c.line, c.column
			ch := c.ch

			switch {
			case isSpace(ch):
				text := scanWhitespaceRun(c)
				if !yield(token.Token{Category: token.Whitespace, Text: text, Line: line, Column: col}) {
					return
				}
				continue

			case ch == '#':
				text := scanLineComment(c)
				if !yield(token.Token{Category: token.CommentSingle, Text: text, Line: line, Column: col}) {
					return
				}
				continue

			case isRawPrefix(c) || isByteOrFPrefix(c):
				text, cat := scanPythonPrefixedString(c)
				if !yield(token.Token{Category: cat, Text: text, Line: line, Column: col}) {
					return
				}

			case ch == '"' || ch == '\'':
				text, cat := scanString(c, ch, stringOptions{AllowEscapes: true, Triple: true})
				if !yield(token.Token{Category: cat, Text: text, Line: line, Column: col}) {
					return
				}

			case isDigit(ch):
				text, cat := scanNumber(c, numberOptions{AllowHex: true, AllowOctal: true, AllowBinary: true, AllowFloat: true, AllowScientific: true, AllowUnderscore: true})
				if !yield(token.Token{Category: cat, Text: text, Line: line, Column: col}) {
					return
				}

			case ch == '@' && isIdentStart(c.peek()):
				start := c.pos
				c.step() // '@'
				scanIdentifier(c)
				for c.ch == '.' && isIdentStart(c.peek()) {
					c.step()
					scanIdentifier(c)
				}
				text := c.slice(start)
				if !yield(token.Token{Category: token.NameDecorator, Text: text, Line: line, Column: col}) {
					return
				}

			case isIdentStart(ch):
				word := scanIdentifier(c)
				cat, known := classifyWord(word, pythonKeywords)
				switch {
				case known:
					// no further lookup needed
				case isAtCallParen(c):
					cat = token.NameFunction
				case prevWasClassOrFuncName(prevWasDef, prevWasClass):
					cat = token.NameFunction
				default:
					if _, ok := pythonBuiltins[word]; ok {
						cat = token.NameBuiltin
					} else {
						cat = token.Name
					}
				}
				prevWasDef = word == "def"
				prevWasClass = word == "class"
				if !yield(token.Token{Category: cat, Text: word, Line: line, Column: col}) {
					return
				}
				continue

			case isPythonOperatorRune(ch):
				text := scanPythonOperator(c)
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
			prevWasDef, prevWasClass = false, false
		}
	}
}

func (l pythonLexer) TokenizeFast(input string, start, end int) iter.Seq2[token.Category, string] {
	return fastFromFull(l.Tokenize(input, start, end))
}

// prevWasClassOrFuncName reports whether the previous keyword was def/class,
// meaning the identifier just scanned is a definition-site name, which spec
// §8 scenario 1 requires be classified as NameFunction when following def.
func prevWasClassOrFuncName(prevWasDef, prevWasClass bool) bool {
	return prevWasDef || prevWasClass
}

func isRawPrefix(c *cursor) bool {
	if c.ch != 'r' && c.ch != 'R' {
		return false
	}
	p := c.peek()
	return p == '"' || p == '\''
}

func isByteOrFPrefix(c *cursor) bool {
	switch c.ch {
	case 'b', 'B', 'f', 'F', 'u', 'U':
		p := c.peek()
		return p == '"' || p == '\''
	default:
		return false
	}
}

// scanPythonPrefixedString handles r"...", b"...", f"...", u"...": the
// prefix letter is consumed, then the string body is scanned normally.
// f-strings are tagged StringInterpolated so a formatter can tell them
// apart, even though the `{expr}` bodies themselves are not separately
// tokenized (javascript.go's template literals are the interpolating
// exemplar, per the scenario requiring recursive expression scanning).
func scanPythonPrefixedString(c *cursor) (string, token.Category) {
	start := c.pos
	raw := c.ch == 'r' || c.ch == 'R'
	isF := c.ch == 'f' || c.ch == 'F'
	c.step() // prefix letter
	quote := c.ch
	scanString(c, quote, stringOptions{AllowEscapes: !raw, Raw: raw, Triple: true})
	full := c.slice(start)
	if isF {
		return full, token.StringInterpolated
	}
	if raw {
		return full, token.StringRaw
	}
	if quote == '\'' {
		return full, token.StringSingle
	}
	return full, token.StringDouble
}

func isPythonOperatorRune(r rune) bool {
	switch r {
	case '+', '-', '*', '/', '%', '=', '<', '>', '!', '&', '|', '^', '~', ':':
		return true
	default:
		return false
	}
}

// scanPythonOperator consumes one operator, greedily extending to two runes
// for the compound forms (**, //, ==, !=, <=, >=, ->, :=) and a third for
// **= and //=, using only the one rune of lookahead the cursor offers.
func scanPythonOperator(c *cursor) string {
	start := c.pos
	first := c.ch
	c.step()

	switch {
	case (first == '*' && c.ch == '*') || (first == '/' && c.ch == '/'):
		c.step()
		if c.ch == '=' {
			c.step()
		}
	case first == '-' && c.ch == '>':
		c.step()
	case c.ch == '=' && isPythonOperatorRune(first):
		c.step()
	}
	return c.slice(start)
}

func isPunct(r rune) bool {
	switch r {
	case '(', ')', '[', ']', '{', '}', ',', '.', ';':
		return true
	default:
		return false
	}
}
