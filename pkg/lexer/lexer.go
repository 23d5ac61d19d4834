package lexer

import (
	"iter"

	"github.com/lbliii/rosettes/pkg/token"
)

// Config is reserved for future per-lexer tuning. It is currently empty and
// frozen, per spec §3.
type Config struct{}

// Lexer is the contract every per-language scanner implements (spec §4.2).
//
// Implementations must satisfy, for any UTF-8 input and any valid
// [start, end) byte range:
//   - Reconstruction: concatenating Text over every emitted Token equals
//     input[start:end].
//   - Linear time: total work is O(end-start).
//   - Totality: tokenize never aborts; any code point it cannot classify is
//     emitted as a single-code-point token.Error token.
//   - Determinism: the same input always produces the same token sequence.
type Lexer interface {
	// Name is the lexer's canonical language name.
	Name() string
	// Aliases are additional names the registry should resolve to this lexer.
	Aliases() []string
	// Tokenize returns a finite, lazy sequence of fully classified,
	// position-tracked tokens over input[start:end]. The sequence is not
	// restartable once exhausted.
	Tokenize(input string, start, end int) iter.Seq[token.Token]
	// TokenizeFast returns the same classification, without position
	// tracking, as (category, text) pairs — the representation consumed by
	// a formatter's fast path.
	TokenizeFast(input string, start, end int) iter.Seq2[token.Category, string]
}

// fastFromFull derives a TokenizeFast sequence from a Tokenize sequence by
// dropping position information. Every lexer in this package is built this
// way: the cursor tracks line/column unconditionally (it is two integer
// increments per rune, not a meaningful cost), so there is no separate
// position-free scan loop to maintain per language.
func fastFromFull(seq iter.Seq[token.Token]) iter.Seq2[token.Category, string] {
	return func(yield func(token.Category, string) bool) {
		for tok := range seq {
			if !yield(tok.Category, tok.Text) {
				return
			}
		}
	}
}

// resolveRange normalizes a possibly-open-ended [start, end) range against
// len(input), the way the engine façade's start/end parameters default.
func resolveRange(input string, start, end int) (int, int) {
	if start < 0 {
		start = 0
	}
	if end < 0 || end > len(input) {
		end = len(input)
	}
	if start > end {
		start = end
	}
	return start, end
}
