package lexer

import "github.com/lbliii/rosettes/pkg/token"

// numberOptions lets each language enable the numeric literal forms it
// actually has, instead of every lexer re-implementing its own number
// scanner (carv's readNumber only ever handles decimal integers; rosettes
// generalizes it once here for the languages that need hex/octal/binary/
// float/scientific/underscore-separated forms).
type numberOptions struct {
	AllowHex        bool // 0x...
	AllowOctal      bool // 0o... (Go, Python 3)
	AllowBinary     bool // 0b...
	AllowFloat      bool // 1.5
	AllowScientific bool // 1e10, 1.5e-10
	AllowUnderscore bool // 1_000_000
}

// scanNumber consumes a numeric literal starting at c.ch (caller has
// already checked isDigit(c.ch)) and returns its text and category.
// Single-pass: one code point of lookahead (c.peek) decides a following
// '.'/'e'; a hex/octal/binary prefix additionally uses c.peekAfter to see
// the rune after the prefix letter, so lookahead never exceeds two code
// points.
func scanNumber(c *cursor, opt numberOptions) (string, token.Category) {
	start := c.pos

	// A base prefix only commits if at least one base digit follows it;
	// otherwise the ambiguity tie-break applies: emit the lone '0' as an
	// integer and leave the prefix letter for the identifier scanner (e.g.
	// "0x" with nothing after it is Number.Integer "0" followed by Name "x",
	// not a malformed hex literal).
	if c.ch == '0' && opt.AllowHex && (c.peek() == 'x' || c.peek() == 'X') && isHexDigit(c.peekAfter()) {
		c.step()
		c.step()
		consumeDigits(c, isHexDigit, opt.AllowUnderscore)
		return c.slice(start), token.NumberHex
	}
	if c.ch == '0' && opt.AllowOctal && (c.peek() == 'o' || c.peek() == 'O') && isOctalDigit(c.peekAfter()) {
		c.step()
		c.step()
		consumeDigits(c, isOctalDigit, opt.AllowUnderscore)
		return c.slice(start), token.NumberOctal
	}
	if c.ch == '0' && opt.AllowBinary && (c.peek() == 'b' || c.peek() == 'B') && isBinaryDigit(c.peekAfter()) {
		c.step()
		c.step()
		consumeDigits(c, isBinaryDigit, opt.AllowUnderscore)
		return c.slice(start), token.NumberBinary
	}

	consumeDigits(c, isDigit, opt.AllowUnderscore)
	cat := token.NumberInteger

	if opt.AllowFloat && c.ch == '.' && isDigit(c.peek()) {
		cat = token.NumberFloat
		c.step() // consume '.'
		consumeDigits(c, isDigit, opt.AllowUnderscore)
	}

	if opt.AllowScientific && (c.ch == 'e' || c.ch == 'E') {
		lookahead := c.peek()
		if isDigit(lookahead) || ((lookahead == '+' || lookahead == '-')) {
			cat = token.NumberScientific
			c.step() // consume 'e'/'E'
			if c.ch == '+' || c.ch == '-' {
				c.step()
			}
			consumeDigits(c, isDigit, opt.AllowUnderscore)
		}
	}

	return c.slice(start), cat
}

func consumeDigits(c *cursor, isDigitRune func(rune) bool, allowUnderscore bool) {
	for isDigitRune(c.ch) || (allowUnderscore && c.ch == '_' && isDigitRune(c.peek())) {
		c.step()
	}
}
