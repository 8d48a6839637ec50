// Package lexer produces the token stream the suggestion engine uses for
// position-based lookups. It is a tolerant scanner, not a conforming one:
// scanning never fails, and anything it does not recognize degrades to a
// single-character punctuation token.
package lexer

import (
	"unicode/utf8"

	"tsplain/internal/source"
	"tsplain/internal/token"
)

// Scan tokenizes the file into a flat token stream.
// Whitespace and comments are skipped.
func Scan(f *source.File) []token.Token {
	c := newCursor(f)
	toks := make([]token.Token, 0, len(f.Content)/8)

	for !c.eof() {
		b := c.peek()
		switch {
		case b == ' ' || b == '\t' || b == '\n' || b == '\r':
			c.bump()
		case b == '/' && c.peekAt(1) == '/':
			skipLineComment(&c)
		case b == '/' && c.peekAt(1) == '*':
			skipBlockComment(&c)
		case isIdentStart(b):
			toks = append(toks, scanIdent(&c))
		case isDigit(b) || (b == '.' && isDigit(c.peekAt(1))):
			toks = append(toks, scanNumber(&c))
		case b == '"' || b == '\'':
			toks = append(toks, scanString(&c))
		case b == '`':
			toks = append(toks, scanTemplate(&c))
		default:
			toks = append(toks, scanOp(&c))
		}
	}
	return toks
}

func skipLineComment(c *cursor) {
	for !c.eof() && c.peek() != '\n' {
		c.bump()
	}
}

func skipBlockComment(c *cursor) {
	c.bump() // /
	c.bump() // *
	for !c.eof() {
		if c.peek() == '*' && c.peekAt(1) == '/' {
			c.bump()
			c.bump()
			return
		}
		c.bump()
	}
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isIdentStart(b byte) bool {
	return b == '_' || b == '$' ||
		(b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') ||
		b >= utf8.RuneSelf // non-ASCII identifiers
}

func isIdentContinue(b byte) bool {
	return isIdentStart(b) || isDigit(b)
}
