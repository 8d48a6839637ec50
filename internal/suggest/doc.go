// Package suggest synthesizes human-readable fix suggestions from classified
// compiler diagnostics.
//
// Build dispatches on the diagnostic kind to exactly one handler. Handlers
// are pure functions of the diagnostic and the token stream of its source
// file, and fall into four patterns:
//
//   - message extraction: values pulled from the quoted parts of the message
//     by fixed position, degrading to generic placeholders when absent;
//   - position lookup: the token covering the error column names the subject
//     when the message alone under-identifies it;
//   - object-type diff: the two object literals in an argument-mismatch
//     message are parsed into property maps and diffed property by property;
//   - fixed advisory text for categories with no extractable context.
//
// Handlers mark extracted values with backticks; terminal emphasis is
// applied by the renderer (internal/diagfmt), never here.
//
// Kinds without a handler (object-is-unknown, object-possibly-null, and
// unsupported codes) yield no suggestion on purpose rather than a guess.
package suggest
