package formatter

import (
	"fmt"
	"io"
	"iter"

	"github.com/lbliii/rosettes/pkg/token"
)

type terminalFormatter struct {
	codes map[token.Role]string
}

// Terminal returns the ANSI/SGR terminal formatter (spec §4.4). SGR escape
// codes are precomputed once per role at construction time rather than
// recomputed per token, since the role table is fixed-size and known ahead
// of any input.
func Terminal() Formatter {
	return terminalFormatter{codes: buildRoleCodes()}
}

func (terminalFormatter) Name() string      { return "terminal" }
func (terminalFormatter) Aliases() []string { return []string{"ansi", "256", "terminal256"} }

func (terminalFormatter) SupportsFastPath() bool { return true }

const reset = "\x1b[0m"

func buildRoleCodes() map[token.Role]string {
	sgr := func(code int) string { return fmt.Sprintf("\x1b[%dm", code) }
	bold := func(code int) string { return fmt.Sprintf("\x1b[1;%dm", code) }
	return map[token.Role]string{
		token.RoleText:            "",
		token.RoleKeyword:         bold(34), // bold blue
		token.RoleKeywordConstant: bold(35), // bold magenta
		token.RoleNamespace:       sgr(36),  // cyan
		token.RoleType:            sgr(34),  // blue
		token.RoleName:            "",
		token.RoleFunction:        sgr(32), // green
		token.RoleClass:           bold(32),
		token.RoleDecorator:       sgr(35),
		token.RoleBuiltin:         sgr(35), // magenta
		token.RoleVariable:        "",
		token.RoleAttribute:       sgr(33), // yellow
		token.RoleTag:             bold(34),
		token.RoleString:          sgr(31), // red
		token.RoleEscape:          bold(31),
		token.RoleInterpolation:   sgr(33),
		token.RoleNumber:          sgr(35), // magenta
		token.RoleBoolean:         bold(35),
		token.RoleComment:         sgr(90), // bright black
		token.RoleDoc:             sgr(90),
		token.RoleOperator:        sgr(37), // white
		token.RolePunctuation:     "",
		token.RoleWhitespace:      "",
		token.RoleError:           bold(31),
	}
}

func (f terminalFormatter) FormatFast(w io.Writer, tokens iter.Seq2[token.Category, string], _ FormatConfig) error {
	for cat, text := range tokens {
		if err := f.writeColored(w, cat, text); err != nil {
			return err
		}
	}
	return nil
}

func (f terminalFormatter) Format(w io.Writer, tokens iter.Seq[token.Token], cfg HighlightConfig) error {
	lineNo := 1
	showNumbers := cfg.ShowLineNumbers
	if showNumbers {
		if _, err := fmt.Fprintf(w, "%4d | ", lineNo); err != nil {
			return err
		}
	}
	for tok := range tokens {
		if err := f.writeColored(w, tok.Category, tok.Text); err != nil {
			return err
		}
		if tok.Category == token.Whitespace && containsNewline(tok.Text) {
			lineNo++
			if showNumbers {
				if _, err := fmt.Fprintf(w, "%4d | ", lineNo); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func (f terminalFormatter) writeColored(w io.Writer, cat token.Category, text string) error {
	code := f.codes[token.RoleOf(cat)]
	if code == "" {
		_, err := io.WriteString(w, text)
		return err
	}
	_, err := fmt.Fprintf(w, "%s%s%s", code, text, reset)
	return err
}

func containsNewline(s string) bool {
	for _, r := range s {
		if r == '\n' {
			return true
		}
	}
	return false
}
