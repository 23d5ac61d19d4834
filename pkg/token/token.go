package token

import "fmt"

// Token is an immutable, classified fragment of source text.
//
// Text is always a contiguous substring of the input a lexer was asked to
// tokenize; concatenating Text over every token emitted for one tokenize
// call, in emission order, reproduces that input exactly (the round-trip
// invariant, spec §3/§8).
type Token struct {
	Category Category
	Text     string
	Line     int // 1-based
	Column   int // 1-based, in code points
}

// Pos formats the token's position as "line:column", in the style of
// dev-dami/carv's Token.Pos.
func (t Token) Pos() string {
	return fmt.Sprintf("%d:%d", t.Line, t.Column)
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%q)@%s", t.Category, t.Text, t.Pos())
}
