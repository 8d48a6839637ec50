// Package tserr converts raw compiler diagnostic lines into structured,
// classified error records.
//
// # Purpose
//
//   - Parse one line of tsc output (`<file>(<line>,<column>): error <code>:
//     <message>`) into a Diagnostic value, rejecting lines that do not match
//     the grammar.
//   - Classify the raw diagnostic code into a closed Kind. Classification is
//     total: unrecognized codes map to KindUnsupported and the original code
//     string is preserved verbatim on the Diagnostic.
//
// # Scope
//
// Package tserr performs no I/O, no rendering, and no semantic validation of
// the extracted names: it only carries what the compiler already said.
// Suggestion synthesis lives in internal/suggest; batch orchestration lives
// in internal/driver.
//
// Known limitation: file paths containing '(' before the coordinate group
// mis-split, because the grammar cuts at the first '('.
package tserr
