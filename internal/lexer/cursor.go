package lexer

import "nmscript/internal/source"

// cursor tracks a byte position in a file together with the 1-based
// line/column of that position.
type cursor struct {
	file *source.File
	off  int
	line uint32
	col  uint32
}

func newCursor(f *source.File) cursor {
	return cursor{file: f, line: 1, col: 1}
}

func (c *cursor) eof() bool {
	return c.off >= len(c.file.Content)
}

// peek returns the current byte without consuming it, or 0 at EOF.
func (c *cursor) peek() byte {
	if c.eof() {
		return 0
	}
	return c.file.Content[c.off]
}

// peekAt returns the byte n positions ahead, or 0 past EOF.
func (c *cursor) peekAt(n int) byte {
	if c.off+n >= len(c.file.Content) {
		return 0
	}
	return c.file.Content[c.off+n]
}

// bump consumes one byte, updating line/column bookkeeping.
func (c *cursor) bump() byte {
	if c.eof() {
		return 0
	}
	b := c.file.Content[c.off]
	c.off++
	if b == '\n' {
		c.line++
		c.col = 1
	} else {
		c.col++
	}
	return b
}

func (c *cursor) loc() source.Location {
	return c.file.LocationFor(c.line, c.col)
}
