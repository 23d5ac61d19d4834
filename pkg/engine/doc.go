// Package engine is rosettes' public façade: Highlight and Tokenize resolve
// a language and formatter by name and run the full lex-then-format
// pipeline, and HighlightMany/TokenizeMany do the same over a batch of
// inputs with bounded worker concurrency.
//
// Design decisions:
//   - Options are functional (Option values applied over a private options
//     struct) because spec §4.5 describes a Python keyword-argument
//     signature and Go has no equivalent; this is the idiomatic
//     translation, not a new invention — see DESIGN.md.
//   - The façade picks the lexer's/formatter's fast path automatically
//     whenever no line-oriented feature is requested, rather than exposing
//     "fast" as something the caller asks for directly.
package engine
