package registry

import (
	"github.com/go-extras/errx"
	errxtrace "github.com/go-extras/errx/stacktrace"

	"github.com/lbliii/rosettes/internal/xlog"
	"github.com/lbliii/rosettes/pkg/lexer"
)

var lexers = New[lexer.Lexer](func(name string) {
	xlog.Debugf("registry: constructed lexer %q", name)
})

func init() {
	register(lexer.Plaintext())
	register(lexer.Python())
	register(lexer.JavaScript())
	register(lexer.C())
	register(lexer.JSON())
	register(lexer.Go())
}

// register binds a lexer under its own Name() plus every Aliases() entry.
func register(lx lexer.Lexer) {
	lexers.Register(lx.Name(), lx.Aliases(), func() lexer.Lexer { return lx })
}

// GetLexer resolves name to a registered lexer. Per spec §5, an unknown name
// is reported via ErrUnknownLanguage rather than silently substituting the
// plaintext fallback — callers that want the fallback behavior call
// GetLexerOrFallback.
func GetLexer(name string) (lexer.Lexer, error) {
	if lx, ok := lexers.Get(name); ok {
		return lx, nil
	}
	return nil, errxtrace.Classify(ErrUnknownLanguage, errx.Attrs("name", name))
}

// GetLexerOrFallback resolves name, falling back to the always-present
// plaintext lexer for an unrecognized name, the degrade-gracefully behavior
// spec §5 describes for the engine façade's default.
func GetLexerOrFallback(name string) lexer.Lexer {
	if lx, ok := lexers.Get(name); ok {
		return lx
	}
	return lexer.Plaintext()
}

// SupportsLanguage reports whether name resolves to a registered lexer,
// without constructing it.
func SupportsLanguage(name string) bool {
	return lexers.Has(name)
}

// ListLanguages returns every canonical registered language name, sorted.
func ListLanguages() []string {
	return lexers.Names()
}
