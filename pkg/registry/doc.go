// Package registry resolves a language or formatter name to the singleton
// implementation that handles it, constructing each implementation lazily
// on first lookup and caching it thereafter.
//
// Design decisions:
//   - One generic Registry[T] type backs both the lexer and the formatter
//     registries instead of two hand-duplicated lookup structures.
//   - Names are normalized (trimmed, lowercased) before lookup, and aliases
//     resolve to the same cached singleton as the canonical name.
//   - An unknown name is reported through the package's sentinel errors
//     rather than silently falling back — callers that want the plaintext
//     fallback behavior (spec §5) ask for it explicitly.
package registry
