package registry

import "github.com/go-extras/errx"

// ErrUnknownLanguage and ErrUnknownFormatter are the two lookup-failure
// sentinels the library ever returns for a name that has no registered
// implementation, classified with the offending name via errx.Attrs the
// way denisvmedia/inventario's apiserver/errors.go classifies its own
// sentinel errors.
var (
	ErrUnknownLanguage  = errx.NewSentinel("registry: unknown language")
	ErrUnknownFormatter = errx.NewSentinel("registry: unknown formatter")
)
