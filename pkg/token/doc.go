// Package token defines the closed token taxonomy shared by every lexer and
// formatter in rosettes.
//
// Design decisions:
//   - Category is a flat enum, not a tree: the hierarchy implied by names like
//     Literal.String.Raw is captured by naming convention and three parallel
//     lookup tables (short tag, long tag, role), never by a runtime type tree.
//   - Tag and role are deliberately separate tables so new categories can be
//     added without touching any color theme, and so themes can change
//     without touching the category set.
//
// Usage pattern:
//
//	tok := token.Token{Category: token.NameFunction, Text: "hello", Line: 1, Column: 5}
//	tag := token.ShortTag(tok.Category)   // "nf"
//	r := token.RoleOf(tok.Category)       // token.RoleFunction
package token
