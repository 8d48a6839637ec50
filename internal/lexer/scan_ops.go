package lexer

import (
	"bytes"

	"tsplain/internal/token"
)

// operators is probed longest-first so compound operators win over their
// prefixes.
var operators = []string{
	">>>=",
	"...", "===", "!==", "**=", "<<=", ">>=", ">>>", "&&=", "||=", "??=",
	"=>", "==", "!=", "<=", ">=", "&&", "||", "??", "?.",
	"++", "--", "+=", "-=", "*=", "/=", "%=", "&=", "|=", "^=", "<<", ">>", "**",
}

func scanOp(c *cursor) token.Token {
	line, col := c.line, c.col

	rest := c.src[c.off:]
	for _, op := range operators {
		if bytes.HasPrefix(rest, []byte(op)) {
			for range op {
				c.bump()
			}
			return token.Token{Kind: token.Punct, Raw: op, Line: line, Column: col}
		}
	}

	r := c.bump()
	return token.Token{Kind: token.Punct, Raw: string(r), Line: line, Column: col}
}
