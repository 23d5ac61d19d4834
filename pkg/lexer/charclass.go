package lexer

import "unicode"

// isSpace reports whether r is ASCII or Unicode whitespace. Newline is
// included here; callers that need to treat '\n' specially check for it
// before falling back to isSpace (see scanWhitespaceRun).
func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\r', '\n', '\v', '\f':
		return true
	default:
		return r != eof && unicode.IsSpace(r)
	}
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isHexDigit(r rune) bool {
	return isDigit(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

func isOctalDigit(r rune) bool {
	return r >= '0' && r <= '7'
}

func isBinaryDigit(r rune) bool {
	return r == '0' || r == '1'
}

func isLetter(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

// isIdentStart and isIdentPart cover the common case (ASCII identifiers
// plus Unicode letters, C/Python/JS/Go all agree on this shape); a lexer
// that needs a narrower rule (e.g. JSON has no bare identifiers at all)
// simply never calls these.
func isIdentStart(r rune) bool {
	return isLetter(r)
}

func isIdentPart(r rune) bool {
	return isLetter(r) || isDigit(r) || unicode.IsDigit(r)
}
