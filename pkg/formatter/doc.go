// Package formatter renders a token stream produced by pkg/lexer into a
// presentation format (HTML, ANSI terminal escapes, or plain text).
//
// Design decisions:
//   - Every formatter supports a "fast path" over (category, text) pairs,
//     used whenever no line-oriented feature (line numbers, highlighted
//     lines) is requested, and a "slow path" over full Token values, used
//     when line grouping is needed. This mirrors pkg/lexer's Tokenize/
//     TokenizeFast split so the engine can choose the cheaper path without
//     either side knowing about the other's existence.
//   - Escaping and color tables are built once per formatter value, not
//     recomputed per token, the way pkg/lexer precomputes nothing (it can't,
//     since input is unbounded) but pkg/formatter's tables are fixed size
//     and known up front.
package formatter
