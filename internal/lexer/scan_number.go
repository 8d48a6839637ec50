package lexer

import "tsplain/internal/token"

func scanNumber(c *cursor) token.Token {
	line, col, start := c.line, c.col, c.off

	if c.peek() == '0' && isRadixPrefix(c.peekAt(1)) {
		c.bump()
		c.bump()
		for !c.eof() && (isHexDigit(c.peek()) || c.peek() == '_') {
			c.bump()
		}
	} else {
		scanDigits(c)
		if c.peek() == '.' && isDigit(c.peekAt(1)) {
			c.bump()
			scanDigits(c)
		}
		if c.peek() == 'e' || c.peek() == 'E' {
			next := c.peekAt(1)
			if isDigit(next) || ((next == '+' || next == '-') && isDigit(c.peekAt(2))) {
				c.bump()
				c.bump()
				scanDigits(c)
			}
		}
	}

	// bigint suffix
	if c.peek() == 'n' {
		c.bump()
	}

	raw := string(c.src[start:c.off])
	return token.Token{Kind: token.Number, Raw: raw, Line: line, Column: col}
}

func scanDigits(c *cursor) {
	for !c.eof() && (isDigit(c.peek()) || c.peek() == '_') {
		c.bump()
	}
}

func isRadixPrefix(b byte) bool {
	switch b {
	case 'x', 'X', 'o', 'O', 'b', 'B':
		return true
	default:
		return false
	}
}

func isHexDigit(b byte) bool {
	return isDigit(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}
