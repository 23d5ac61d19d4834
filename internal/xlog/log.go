// Package xlog is rosettes' internal logging seam: a package-level logger
// variable with a SetLogger escape hatch, trimmed from
// denisvmedia/inventario's internal/log to a handful of level helpers.
// rosettes itself emits Debug for registry cache misses and Warn for
// contained batch worker panics; Infof and Errorf have no caller in this
// module (the CLI prints its errors to stderr). It is deliberately never called
// from inside a lexer's Tokenize loop — see pkg/lexer's doc comment on the
// determinism invariant.
package xlog

import "github.com/sirupsen/logrus"

var log logrus.FieldLogger = logrus.StandardLogger()

// SetLogger replaces the package-level logger, the way a host application
// embedding rosettes can route its logs into its own structured logger.
func SetLogger(l logrus.FieldLogger) {
	log = l
}

func Debugf(format string, args ...any) {
	log.Debugf(format, args...)
}

func Warnf(format string, args ...any) {
	log.Warnf(format, args...)
}

func Infof(format string, args ...any) {
	log.Infof(format, args...)
}

func Errorf(format string, args ...any) {
	log.Errorf(format, args...)
}
