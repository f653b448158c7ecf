package stl

import (
	"fmt"
	"strconv"
	"strings"
)

// cursor is a forward-only reader over a fully buffered file. Every STL
// field has a fixed width and a fixed position, so bounds-checked
// fixed-size reads are all the parser needs.
type cursor struct {
	data []byte
	off  int
}

func newCursor(data []byte) *cursor {
	return &cursor{data: data}
}

func (c *cursor) remaining() int {
	return len(c.data) - c.off
}

func (c *cursor) take(n int) ([]byte, error) {
	if c.remaining() < n {
		return nil, ErrIncomplete
	}
	b := c.data[c.off : c.off+n]
	c.off += n
	return b, nil
}

func (c *cursor) takeByte() (byte, error) {
	b, err := c.take(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (c *cursor) takeUint16LE() (uint16, error) {
	b, err := c.take(2)
	if err != nil {
		return 0, err
	}
	return uint16(b[0]) | uint16(b[1])<<8, nil
}

// takeASCIIUint reads an n-byte fixed-width ASCII decimal field. Writers
// zero-pad these on output, but space padding appears in the wild, so
// surrounding spaces are tolerated.
func (c *cursor) takeASCIIUint(field string, n int) (int, error) {
	b, err := c.take(n)
	if err != nil {
		return 0, err
	}
	value, err := strconv.Atoi(strings.TrimSpace(string(b)))
	if err != nil || value < 0 {
		return 0, fmt.Errorf("stl: %s: not a decimal field: %q", field, string(b))
	}
	return value, nil
}
