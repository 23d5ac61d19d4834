package lexer

import "github.com/lbliii/rosettes/pkg/token"

// stringOptions parameterizes quoted-string scanning per language: whether
// a backslash escapes the next code point, whether strings are raw, and
// whether triple-quoted strings exist (Python). The quote rune itself is
// passed to scanString separately.
type stringOptions struct {
	AllowEscapes bool
	Raw          bool // if true, backslash never escapes (Python r"...")
	Triple       bool // if true and the string opens with quote*3, scan to closing quote*3
}

// scanString consumes a quoted string literal starting at the opening
// quote rune (c.ch == quote) and returns its full text (quotes included)
// and a category. An unterminated string — input ends before the closing
// quote is found — yields token.Error for the whole unterminated tail
// rather than a String token; this is the open-question resolution
// recorded in DESIGN.md: unterminated strings are reported, unterminated
// block comments are not.
func scanString(c *cursor, quote rune, opt stringOptions) (string, token.Category) {
	start := c.pos

	if opt.Triple && c.peek() == quote {
		// Confirm a genuine third quote before committing to the triple
		// path: step past quote 1 and 2, then check c.ch (now the would-be
		// third quote) rather than assuming it. An empty string like "" or
		// '' only has two quotes total and must fall through to the normal,
		// possibly-empty string path below instead of being swallowed as a
		// one-sided triple-quote scan.
		c.step() // consume quote 1, c.ch is now quote 2
		c.step() // consume quote 2, c.ch is now whatever follows
		if c.ch == quote {
			c.step() // consume quote 3, now inside the string body
			return scanTripleBody(c, start, quote)
		}
		// Only two quotes total: an empty string, already fully consumed.
		cat := token.StringDouble
		if quote == '\'' {
			cat = token.StringSingle
		}
		return c.slice(start), cat
	}

	c.step() // consume opening quote
	for {
		switch {
		case c.atEnd():
			return c.slice(start), token.Error
		case c.ch == '\n':
			// Unterminated: most single-line string grammars forbid a bare
			// newline inside the literal.
			return c.slice(start), token.Error
		case opt.AllowEscapes && !opt.Raw && c.ch == '\\':
			c.step() // backslash
			if c.atEnd() {
				return c.slice(start), token.Error
			}
			c.step() // escaped code point, consumed verbatim
		case opt.Raw && c.ch == '\\':
			// Raw strings consume the backslash and the next rune together
			// as literal text, so a quote right after a backslash does not
			// close the string (as in Python's r"\"").
			c.step()
			if !c.atEnd() {
				c.step()
			}
		case c.ch == quote:
			c.step() // consume closing quote
			cat := token.StringDouble
			if quote == '\'' {
				cat = token.StringSingle
			}
			return c.slice(start), cat
		default:
			c.step()
		}
	}
}

func scanTripleBody(c *cursor, start int, quote rune) (string, token.Category) {
	for {
		if c.atEnd() {
			return c.slice(start), token.Error
		}
		if c.ch == '\\' {
			c.step()
			if !c.atEnd() {
				c.step()
			}
			continue
		}
		if c.ch == quote {
			// Need two more of the same quote to close; step past each
			// quote and check the rune that follows. Quotes stepped past
			// without completing a triple stay part of the string body.
			c.step()
			if c.ch == quote {
				c.step()
				if c.ch == quote {
					c.step()
					return c.slice(start), token.StringTriple
				}
			}
			continue
		}
		c.step()
	}
}
