// Package lexer implements the hand-written, single-pass, single-lookahead
// scanner family shared by every language in rosettes.
//
// Design decisions:
//   - Every scanner is a finite automaton over a shared cursor (cursor.go):
//     a rune-at-a-time reader with exactly one code point of lookahead and no
//     backtracking, so tokenizing is linear in input length by construction
//     (no regular expressions appear anywhere in this package).
//   - Common sub-scanners (identifiers, numbers, quoted strings, comments)
//     live in their own scan_*.go files and are parameterized per language
//     instead of duplicated, the way dev-dami/carv's single lexer inlines
//     them for one language; rosettes factors them once because it hosts
//     several languages.
//   - Column counting is in code points, not bytes or UTF-16 units: the
//     cursor decodes with unicode/utf8 rather than indexing l.input[i] as
//     carv's ASCII-only lexer does.
//
// Usage pattern:
//
//	lx := lexer.Python()
//	for tok := range lx.Tokenize(src, 0, len(src)) {
//	    // consume token stream; see pkg/registry to resolve lexers by name
//	}
package lexer
