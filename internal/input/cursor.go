package input

import (
	"fmt"
	"strconv"
	"strings"
)

// Cursor walks a single line left to right. Parsers describe their grammar
// as a sequence of Expect/Int/Digits calls and finish with Done.
type Cursor struct {
	s   string
	pos int
}

// NewCursor returns a cursor positioned at the start of s.
func NewCursor(s string) *Cursor {
	return &Cursor{s: s}
}

// Pos is the current byte offset.
func (c *Cursor) Pos() int { return c.pos }

// Rest returns the unconsumed remainder.
func (c *Cursor) Rest() string { return c.s[c.pos:] }

// Peek reports whether the remainder starts with lit without consuming it.
func (c *Cursor) Peek(lit string) bool {
	return strings.HasPrefix(c.s[c.pos:], lit)
}

// Expect consumes lit or fails.
func (c *Cursor) Expect(lit string) error {
	if !c.Peek(lit) {
		return fmt.Errorf("expected %q at column %d", lit, c.pos+1)
	}
	c.pos += len(lit)
	return nil
}

// Int consumes an optionally signed run of decimal digits.
func (c *Cursor) Int() (int, error) {
	start := c.pos
	if c.pos < len(c.s) && (c.s[c.pos] == '+' || c.s[c.pos] == '-') {
		c.pos++
	}
	digits := c.pos
	for c.pos < len(c.s) && isDigit(c.s[c.pos]) {
		c.pos++
	}
	if c.pos == digits {
		c.pos = start
		return 0, fmt.Errorf("expected integer at column %d", start+1)
	}
	n, err := strconv.Atoi(c.s[start:c.pos])
	if err != nil {
		c.pos = start
		return 0, fmt.Errorf("integer at column %d: %w", start+1, err)
	}
	return n, nil
}

// Uint consumes one or more decimal digits with no sign.
func (c *Cursor) Uint() (int, error) {
	if c.pos >= len(c.s) || !isDigit(c.s[c.pos]) {
		return 0, fmt.Errorf("expected digits at column %d", c.pos+1)
	}
	return c.Int()
}

// Digits consumes exactly n decimal digits.
func (c *Cursor) Digits(n int) (int, error) {
	if c.pos+n > len(c.s) {
		return 0, fmt.Errorf("expected %d digits at column %d", n, c.pos+1)
	}
	v := 0
	for i := 0; i < n; i++ {
		b := c.s[c.pos+i]
		if !isDigit(b) {
			return 0, fmt.Errorf("expected %d digits at column %d", n, c.pos+1)
		}
		v = v*10 + int(b-'0')
	}
	c.pos += n
	return v, nil
}

// Done fails if anything is left unconsumed.
func (c *Cursor) Done() error {
	if c.pos != len(c.s) {
		return fmt.Errorf("unexpected trailing text %q", c.s[c.pos:])
	}
	return nil
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
