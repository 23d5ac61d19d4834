package lexer

import "github.com/lbliii/rosettes/pkg/token"

// scanIdentifier consumes an identifier starting at c.ch (caller has already
// checked isIdentStart(c.ch)) and returns its text. Grounded on carv's
// readIdentifier, generalized to run on code points instead of bytes.
func scanIdentifier(c *cursor) string {
	start := c.pos
	for isIdentPart(c.ch) {
		c.step()
	}
	return c.slice(start)
}

// classifyWord looks up word (already lowercase-normalized by the caller if
// the language is case-insensitive) in a per-language keyword table and
// reports whether it matched. Every concrete lexer builds its own
// map[string]token.Category literal and calls this helper rather than
// repeating the lookup-or-default shape inline.
func classifyWord(word string, table map[string]token.Category) (token.Category, bool) {
	cat, ok := table[word]
	return cat, ok
}

// isAtCallParen reports whether the cursor, positioned right after an
// identifier, is immediately at '(' — a call site, classified NameFunction
// by the C, Go, JavaScript, and Python identifier classifiers (JSON has no
// identifiers and does not use it).
func isAtCallParen(c *cursor) bool {
	return c.ch == '('
}
