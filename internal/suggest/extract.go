package suggest

import (
	"strings"

	"tsplain/internal/token"
)

// quoted returns the n-th part of msg after splitting on the quote
// character, or fallback when the message has no such part. Compiler
// messages quote their subjects ('x', 'SomeType', ...), so index 1 is the
// first quoted value, index 3 the second, and so on. The index per category
// is a versioned contract with the compiler's message templates.
func quoted(msg string, n int, fallback string) string {
	parts := strings.Split(msg, "'")
	if n < len(parts) {
		return parts[n]
	}
	return fallback
}

// subjectAt returns the raw text of the first token covering the error
// position, or name when no token does. column is the 1-based value from
// the diagnostic; tokens carry 0-based columns.
func subjectAt(tokens []token.Token, line, column uint32, name string) string {
	if column == 0 {
		return name
	}
	col := column - 1
	for _, t := range tokens {
		if t.Covers(line, col) {
			return t.Raw
		}
	}
	return name
}

// assignabilityPair extracts the two type names from a message shaped like
// "Type 'X' is not assignable to type 'Y'.". Matching starts at "ype '" so
// both the leading "Type" and the inner "type" spelling anchor it.
func assignabilityPair(msg string) (from, to string, ok bool) {
	const marker = "ype '"
	i := strings.Index(msg, marker)
	if i < 0 {
		return "", "", false
	}
	rest := msg[i+len(marker):]

	from, rest, ok = strings.Cut(rest, "'")
	if !ok {
		return "", "", false
	}
	// Skip to the opening quote of the second type name.
	_, rest, ok = strings.Cut(rest, "'")
	if !ok {
		return "", "", false
	}
	to, _, ok = strings.Cut(rest, "'")
	if !ok {
		return "", "", false
	}
	return from, to, true
}

// lastTypeName extracts the type name from the final "type '...'" clause of
// the message. Property-missing messages name the variable's annotated type
// last, after the required-property list.
func lastTypeName(msg string) (string, bool) {
	const marker = "type '"
	start := strings.LastIndex(msg, marker)
	if start < 0 {
		return "", false
	}
	rest := msg[start+len(marker):]
	name, _, ok := strings.Cut(rest, "'")
	if !ok {
		return "", false
	}
	return name, true
}
