package formatter

import (
	"fmt"
	"io"
	"iter"
	"strings"

	"github.com/lbliii/rosettes/pkg/token"
)

type htmlFormatter struct{}

// HTML returns the HTML formatter (spec §4.4): a container div wrapping a
// pre/code block, one span per token with classes drawn from pkg/token's
// tag tables, except Text and Whitespace tokens, which are written as bare
// escaped text.
func HTML() Formatter { return htmlFormatter{} }

func (htmlFormatter) Name() string      { return "html" }
func (htmlFormatter) Aliases() []string { return []string{"html4", "htmlinline"} }

func (htmlFormatter) SupportsFastPath() bool { return true }

func (htmlFormatter) FormatFast(w io.Writer, tokens iter.Seq2[token.Category, string], cfg FormatConfig) error {
	container, class := resolveContainer(cfg)
	if _, err := fmt.Fprintf(w, "<%s%s><pre><code>", container, class); err != nil {
		return err
	}
	for cat, text := range tokens {
		if err := writeSpan(w, cat, text, cfg.ClassStyle); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "</code></pre></%s>\n", container)
	return err
}

func (htmlFormatter) Format(w io.Writer, tokens iter.Seq[token.Token], cfg HighlightConfig) error {
	container, class := resolveContainer(cfg.FormatConfig)
	if _, err := fmt.Fprintf(w, "<%s%s><pre><code>", container, class); err != nil {
		return err
	}

	lineNo := 1
	if err := openLine(w, cfg, lineNo); err != nil {
		return err
	}

	for tok := range tokens {
		// A Whitespace token containing '\n' ends the current line; the
		// newline itself is still emitted inside the closing line wrapper,
		// matching the round-trip invariant (every byte of input appears in
		// the output, just wrapped).
		if tok.Category == token.Whitespace && strings.Contains(tok.Text, "\n") {
			if err := writeSpan(w, tok.Category, tok.Text, cfg.ClassStyle); err != nil {
				return err
			}
			if err := closeLine(w, cfg); err != nil {
				return err
			}
			lineNo++
			if err := openLine(w, cfg, lineNo); err != nil {
				return err
			}
			continue
		}
		if err := writeSpan(w, tok.Category, tok.Text, cfg.ClassStyle); err != nil {
			return err
		}
	}
	if err := closeLine(w, cfg); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "</code></pre></%s>\n", container)
	return err
}

func resolveContainer(cfg FormatConfig) (tag, classAttr string) {
	class := cfg.ContainerClass
	if class == "" {
		class = token.DefaultContainerClass(cfg.ClassStyle)
	}
	attr := fmt.Sprintf(` class="%s"`, class)
	if cfg.DataLanguage != "" {
		attr += fmt.Sprintf(` data-language="%s"`, escapeHTML(cfg.DataLanguage))
	}
	return "div", attr
}

func writeSpan(w io.Writer, cat token.Category, text string, style token.ClassStyle) error {
	if cat == token.Text || cat == token.Whitespace {
		_, err := io.WriteString(w, escapeHTML(text))
		return err
	}
	class := token.Tag(cat, style)
	_, err := fmt.Fprintf(w, `<span class="%s">%s</span>`, class, escapeHTML(text))
	return err
}

func openLine(w io.Writer, cfg HighlightConfig, lineNo int) error {
	classes := lineClasses(cfg, lineNo)
	if classes == "" && !cfg.ShowLineNumbers {
		return nil
	}
	if _, err := fmt.Fprintf(w, `<span class="%s">`, strings.TrimSpace(classes)); err != nil {
		return err
	}
	if cfg.ShowLineNumbers {
		numberClass := cfg.LineNumberClass
		if numberClass == "" {
			numberClass = "ln"
		}
		if _, err := fmt.Fprintf(w, `<span class="%s">%d</span>`, numberClass, lineNo); err != nil {
			return err
		}
	}
	return nil
}

func closeLine(w io.Writer, cfg HighlightConfig) error {
	if !needsLineWrapper(cfg) {
		return nil
	}
	_, err := io.WriteString(w, "</span>")
	return err
}

func needsLineWrapper(cfg HighlightConfig) bool {
	return cfg.ShowLineNumbers || len(cfg.HighlightedLines) > 0
}

func lineClasses(cfg HighlightConfig, lineNo int) string {
	if !needsLineWrapper(cfg) {
		return ""
	}
	lineClass := cfg.LineClass
	if lineClass == "" {
		lineClass = "line"
	}
	classes := lineClass
	if _, highlighted := cfg.HighlightedLines[lineNo]; highlighted {
		hlClass := cfg.HighlightedLineClass
		if hlClass == "" {
			hlClass = "hll"
		}
		classes += " " + hlClass
	}
	return classes
}
