package http

import (
	"http-arena/application/util/rule"

	"github.com/pkg/errors"
)

// cursor is a forward-only position in the request buffer.
type cursor struct {
	buf []byte
	pos int
}

func (c *cursor) eof() bool      { return c.pos >= len(c.buf) }
func (c *cursor) peek() byte     { return c.buf[c.pos] }
func (c *cursor) remaining() int { return len(c.buf) - c.pos }

func (c *cursor) fail(code Code) error {
	return errors.Wrapf(code, "offset %d", c.pos)
}

// run consumes the maximal run of bytes accepted by pred and returns it.
func (c *cursor) run(pred func(byte) bool) []byte {
	start := c.pos
	for !c.eof() && pred(c.peek()) {
		c.pos++
	}
	return c.buf[start:c.pos]
}

// token consumes a token. It fails with EmptyToken when none starts at the cursor.
func (c *cursor) token() ([]byte, error) {
	tok := c.run(rule.IsTchar)
	if len(tok) == 0 {
		return nil, c.fail(EmptyToken)
	}
	return tok, nil
}

// expect consumes b, failing with code when the next byte differs.
func (c *cursor) expect(b byte, code Code) error {
	if c.eof() {
		return c.fail(EndOfContent)
	}
	if c.peek() != b {
		return c.fail(code)
	}
	c.pos++
	return nil
}

// expectCRLF consumes a line terminator. Once CR was seen, anything but LF,
// including the end of the buffer, is CrlfExpected.
func (c *cursor) expectCRLF() error {
	for i, b := range rule.CRLF {
		if c.eof() && i == 0 {
			return c.fail(EndOfContent)
		}
		if c.eof() || c.peek() != b {
			return c.fail(CrlfExpected)
		}
		c.pos++
	}
	return nil
}
