package token

import "unicode/utf8"

// Token represents a single source token with its position.
type Token struct {
	Kind   Kind
	Raw    string
	Line   uint32 // 1-based
	Column uint32 // 0-based
}

// Width returns the token width in characters, not bytes.
func (t Token) Width() uint32 {
	return uint32(utf8.RuneCountInString(t.Raw)) // #nosec G115 -- token text is short
}

// Covers reports whether the 0-based column col falls inside the token's
// half-open [Column, Column+Width) span on the given line.
func (t Token) Covers(line, col uint32) bool {
	return t.Line == line && col >= t.Column && col < t.Column+t.Width()
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }

// IsLiteral reports whether the token is a numeric, string, or template literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case Number, String, Template:
		return true
	default:
		return false
	}
}

// IsPunctOrOp reports whether the token is punctuation or an operator.
func (t Token) IsPunctOrOp() bool { return t.Kind == Punct }
