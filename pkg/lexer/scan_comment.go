package lexer

import "github.com/lbliii/rosettes/pkg/token"

// scanLineComment consumes from the comment-start marker (already verified
// by the caller) to end of line or end of input, and is always total: a
// line comment can never be "unterminated" since end-of-input terminates it
// implicitly.
func scanLineComment(c *cursor) string {
	start := c.pos
	for !c.atEnd() && c.ch != '\n' {
		c.step()
	}
	return c.slice(start)
}

// scanBlockComment consumes from an opening delimiter (already consumed by
// the caller) looking for closeFirst+closeSecond (e.g. '*' '/'). If input
// ends first, the whole remainder is still returned as one
// token.CommentMultiline with no Error token — the deliberately asymmetric
// open-question resolution recorded in DESIGN.md (unterminated strings do
// produce an Error, unterminated block comments do not, because an
// unterminated comment has an unambiguous total reading — "everything to
// EOF is a comment" — while an unterminated string does not know its own
// extent).
func scanBlockComment(c *cursor, start int, closeFirst, closeSecond rune) (string, token.Category) {
	for {
		if c.atEnd() {
			return c.slice(start), token.CommentMultiline
		}
		if c.ch == closeFirst && c.peek() == closeSecond {
			c.step()
			c.step()
			return c.slice(start), token.CommentMultiline
		}
		c.step()
	}
}
