package formatter

import (
	"io"
	"iter"
	"strings"

	"github.com/lbliii/rosettes/pkg/token"
)

// FormatConfig carries the options every formatter accepts, spec §4.4.
type FormatConfig struct {
	// ContainerClass overrides the formatter's default wrapping CSS class
	// (HTML only; ignored by the terminal and null formatters).
	ContainerClass string
	// DataLanguage, if non-empty, is emitted as a data-language attribute on
	// the HTML container so client-side code can identify the highlighted
	// language without re-parsing class names.
	DataLanguage string
	// ClassStyle selects semantic ("syntax-function") vs. compatibility
	// ("nf") CSS class names (HTML only).
	ClassStyle token.ClassStyle
}

// HighlightConfig adds the line-oriented options that force a formatter
// onto its slow path: line numbers and per-line highlighting.
type HighlightConfig struct {
	FormatConfig
	ShowLineNumbers      bool
	HighlightedLines     map[int]struct{}
	HighlightedLineClass string
	LineNumberClass      string
	LineClass            string
}

// Formatter is the contract every output renderer implements (spec §4.4).
type Formatter interface {
	// Name is the formatter's canonical name.
	Name() string
	// Aliases are additional names the registry should resolve to this
	// formatter.
	Aliases() []string
	// SupportsFastPath reports whether FormatFast is meaningful for this
	// formatter. The null formatter and the terminal formatter both support
	// it; the HTML formatter does too, but only when line-oriented features
	// are unused by the caller (the engine decides that, not the formatter).
	SupportsFastPath() bool
	// Format renders a full Token stream, honoring HighlightConfig's
	// line-oriented options.
	Format(w io.Writer, tokens iter.Seq[token.Token], cfg HighlightConfig) error
	// FormatFast renders a (category, text) stream with no line grouping.
	FormatFast(w io.Writer, tokens iter.Seq2[token.Category, string], cfg FormatConfig) error
}

// FormatString and FormatStringFast are convenience wrappers returning a
// string instead of requiring an io.Writer, the shape most CLI and test
// call sites want.
func FormatString(f Formatter, tokens iter.Seq[token.Token], cfg HighlightConfig) (string, error) {
	var sb strings.Builder
	if err := f.Format(&sb, tokens, cfg); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func FormatStringFast(f Formatter, tokens iter.Seq2[token.Category, string], cfg FormatConfig) (string, error) {
	var sb strings.Builder
	if err := f.FormatFast(&sb, tokens, cfg); err != nil {
		return "", err
	}
	return sb.String(), nil
}
