// Package token defines the lexical token model for TypeScript source files.
// Invariants:
//   - Token.Raw is the exact source text of the token (no normalization).
//   - Token.Line is 1-based and matches the line numbers reported by the
//     compiler in its diagnostics.
//   - Token.Column is 0-based: the compiler reports 1-based columns, so a
//     diagnostic column maps onto tokens after subtracting one.
//   - Comments and whitespace never appear in the token stream.
package token
