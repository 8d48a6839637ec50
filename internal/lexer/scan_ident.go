package lexer

import "tsplain/internal/token"

func scanIdent(c *cursor) token.Token {
	line, col, start := c.line, c.col, c.off
	for !c.eof() && isIdentContinue(c.peek()) {
		c.bump()
	}
	raw := string(c.src[start:c.off])
	return token.Token{Kind: token.LookupIdent(raw), Raw: raw, Line: line, Column: col}
}
