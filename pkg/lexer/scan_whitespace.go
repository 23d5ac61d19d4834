package lexer

// scanWhitespaceRun consumes a maximal run of non-newline whitespace, or a
// single '\n' (optionally preceded by '\r', counted as one line break per
// spec §4.2), and returns its text. Whitespace collapses to one token per
// run, but a newline always ends the run and is emitted as its own token —
// the open-question resolution recorded in DESIGN.md, so line-oriented
// formatters can split on Whitespace tokens containing "\n" without
// re-scanning token text.
func scanWhitespaceRun(c *cursor) string {
	start := c.pos

	if c.ch == '\r' && c.peek() == '\n' {
		c.step()
		c.step()
		return c.slice(start)
	}
	if c.ch == '\n' {
		c.step()
		return c.slice(start)
	}
	if c.ch == '\r' {
		// A lone '\r' (classic-Mac line ending, or a trailing '\r' not
		// followed by '\n') is consumed as its own token rather than falling
		// into the non-newline run below, which excludes '\r' and would
		// otherwise return an empty, non-advancing token here. It does not
		// start a new line: step() advances the line count only on '\n'.
		c.step()
		return c.slice(start)
	}

	for isSpace(c.ch) && c.ch != '\n' && c.ch != '\r' {
		c.step()
	}
	return c.slice(start)
}
