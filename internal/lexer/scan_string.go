package lexer

import "tsplain/internal/token"

// scanString reads a single- or double-quoted string literal. An unterminated
// literal ends at the newline or EOF; the partial text is kept.
func scanString(c *cursor) token.Token {
	line, col, start := c.line, c.col, c.off
	quote := c.peek()
	c.bump()

	for !c.eof() {
		b := c.peek()
		if b == '\n' {
			break
		}
		if b == '\\' {
			c.bump()
			if !c.eof() {
				c.bump()
			}
			continue
		}
		c.bump()
		if b == quote {
			break
		}
	}

	raw := string(c.src[start:c.off])
	return token.Token{Kind: token.String, Raw: raw, Line: line, Column: col}
}

// scanTemplate reads a backtick template literal, newlines included.
// Interpolation is not tokenized separately: for position lookup the whole
// literal is one unit.
func scanTemplate(c *cursor) token.Token {
	line, col, start := c.line, c.col, c.off
	c.bump() // `

	for !c.eof() {
		b := c.peek()
		if b == '\\' {
			c.bump()
			if !c.eof() {
				c.bump()
			}
			continue
		}
		c.bump()
		if b == '`' {
			break
		}
	}

	raw := string(c.src[start:c.off])
	return token.Token{Kind: token.Template, Raw: raw, Line: line, Column: col}
}
