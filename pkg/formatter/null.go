package formatter

import (
	"io"
	"iter"

	"github.com/lbliii/rosettes/pkg/token"
)

type nullFormatter struct{}

// Null returns the identity formatter: it writes token text verbatim with
// no markup. Useful for verifying the round-trip invariant end to end
// through the engine, and for measuring lexer cost independent of any
// formatting work (spec §4.4's "formatter that performs no transformation").
func Null() Formatter { return nullFormatter{} }

func (nullFormatter) Name() string      { return "null" }
func (nullFormatter) Aliases() []string { return []string{"text", "none", "raw"} }

func (nullFormatter) SupportsFastPath() bool { return true }

func (nullFormatter) FormatFast(w io.Writer, tokens iter.Seq2[token.Category, string], _ FormatConfig) error {
	for _, text := range tokens {
		if _, err := io.WriteString(w, text); err != nil {
			return err
		}
	}
	return nil
}

func (nullFormatter) Format(w io.Writer, tokens iter.Seq[token.Token], _ HighlightConfig) error {
	for tok := range tokens {
		if _, err := io.WriteString(w, tok.Text); err != nil {
			return err
		}
	}
	return nil
}
