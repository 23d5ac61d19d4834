package registry

import (
	"github.com/go-extras/errx"
	errxtrace "github.com/go-extras/errx/stacktrace"

	"github.com/lbliii/rosettes/internal/xlog"
	"github.com/lbliii/rosettes/pkg/formatter"
)

var formatters = New[formatter.Formatter](func(name string) {
	xlog.Debugf("registry: constructed formatter %q", name)
})

func init() {
	registerFormatter(formatter.HTML())
	registerFormatter(formatter.Terminal())
	registerFormatter(formatter.Null())
}

func registerFormatter(f formatter.Formatter) {
	formatters.Register(f.Name(), f.Aliases(), func() formatter.Formatter { return f })
}

// GetFormatter resolves name to a registered formatter, reporting
// ErrUnknownFormatter for anything unrecognized.
func GetFormatter(name string) (formatter.Formatter, error) {
	if f, ok := formatters.Get(name); ok {
		return f, nil
	}
	return nil, errxtrace.Classify(ErrUnknownFormatter, errx.Attrs("name", name))
}

// SupportsFormatter reports whether name resolves to a registered
// formatter, without constructing it.
func SupportsFormatter(name string) bool {
	return formatters.Has(name)
}

// ListFormatters returns every canonical registered formatter name, sorted.
func ListFormatters() []string {
	return formatters.Names()
}
