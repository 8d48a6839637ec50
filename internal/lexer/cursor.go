package lexer

import (
	"unicode/utf8"

	"tsplain/internal/source"
)

// cursor walks file content while tracking the 1-based line and 0-based
// character column of the current position. Columns count runes, matching
// the compiler's column convention minus one.
type cursor struct {
	src  []byte
	off  int
	line uint32
	col  uint32
}

func newCursor(f *source.File) cursor {
	return cursor{src: f.Content, line: 1}
}

func (c *cursor) eof() bool {
	return c.off >= len(c.src)
}

// peek returns the current byte, or 0 at EOF.
func (c *cursor) peek() byte {
	if c.eof() {
		return 0
	}
	return c.src[c.off]
}

// peekAt returns the byte n positions ahead, or 0 past EOF.
func (c *cursor) peekAt(n int) byte {
	if c.off+n >= len(c.src) {
		return 0
	}
	return c.src[c.off+n]
}

// bump consumes one rune and returns it, updating line/column bookkeeping.
func (c *cursor) bump() rune {
	r, size := utf8.DecodeRune(c.src[c.off:])
	c.off += size
	if r == '\n' {
		c.line++
		c.col = 0
	} else {
		c.col++
	}
	return r
}
