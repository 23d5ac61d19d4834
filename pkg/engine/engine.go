package engine

import (
	"iter"

	"github.com/lbliii/rosettes/pkg/formatter"
	"github.com/lbliii/rosettes/pkg/lexer"
	"github.com/lbliii/rosettes/pkg/registry"
	"github.com/lbliii/rosettes/pkg/token"
)

type options struct {
	formatterName    string
	highlightedLines map[int]struct{}
	showLineNumbers  bool
	containerClass   string
	dataLanguage     string
	classStyle       token.ClassStyle
	start, end       int
}

func defaultOptions() options {
	return options{
		formatterName: "html",
		end:           -1, // resolved against input length by the lexer
	}
}

// Option configures Highlight and Tokenize, standing in for spec §4.5's
// Python keyword arguments.
type Option func(*options)

func WithFormatter(name string) Option {
	return func(o *options) { o.formatterName = name }
}

func WithHighlightedLines(lines ...int) Option {
	return func(o *options) {
		if o.highlightedLines == nil {
			o.highlightedLines = make(map[int]struct{}, len(lines))
		}
		for _, l := range lines {
			o.highlightedLines[l] = struct{}{}
		}
	}
}

func WithLineNumbers(show bool) Option {
	return func(o *options) { o.showLineNumbers = show }
}

func WithContainerClass(class string) Option {
	return func(o *options) { o.containerClass = class }
}

func WithDataLanguage(lang string) Option {
	return func(o *options) { o.dataLanguage = lang }
}

func WithClassStyle(style token.ClassStyle) Option {
	return func(o *options) { o.classStyle = style }
}

// WithRange restricts tokenizing/highlighting to input[start:end], spec
// §4.5/§4.6's partial-range parameter. A negative end means "to the end of
// input."
func WithRange(start, end int) Option {
	return func(o *options) { o.start, o.end = start, end }
}

// Highlight resolves language to a lexer (falling back to plaintext for an
// unrecognized name, spec §5) and name to a formatter, then renders the
// formatted output as a string.
func Highlight(input, language string, opts ...Option) (string, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	lx := registry.GetLexerOrFallback(language)
	f, err := registry.GetFormatter(o.formatterName)
	if err != nil {
		return "", err
	}

	fcfg := formatter.FormatConfig{
		ContainerClass: o.containerClass,
		DataLanguage:   o.dataLanguage,
		ClassStyle:     o.classStyle,
	}

	if usesFastPath(o, f) {
		return formatter.FormatStringFast(f, lx.TokenizeFast(input, o.start, o.end), fcfg)
	}

	hcfg := formatter.HighlightConfig{
		FormatConfig:     fcfg,
		ShowLineNumbers:  o.showLineNumbers,
		HighlightedLines: o.highlightedLines,
	}
	return formatter.FormatString(f, lx.Tokenize(input, o.start, o.end), hcfg)
}

// Tokenize resolves language to a lexer and returns its raw token sequence,
// bypassing formatting entirely — spec §4.5's lower-level sibling to
// Highlight, useful for callers that want the classified tokens themselves
// (editors, static analysis) rather than rendered output.
func Tokenize(input, language string, opts ...Option) iter.Seq[token.Token] {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	lx := registry.GetLexerOrFallback(language)
	return lx.Tokenize(input, o.start, o.end)
}

// usesFastPath mirrors spec §4.5's dispatch rule: the fast, position-free
// path is used exactly when no line-oriented feature is requested and the
// formatter supports it.
func usesFastPath(o options, f formatter.Formatter) bool {
	return f.SupportsFastPath() && !o.showLineNumbers && len(o.highlightedLines) == 0
}
