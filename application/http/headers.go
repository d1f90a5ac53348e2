package http

import (
	"http-arena/application/util/rule"
	"http-arena/lib/arena"
	"http-arena/lib/ds/sequence"

	"github.com/pkg/errors"
)

type headerState uint8

const (
	parsingName headerState = iota
	parsingColon
	parsingOWS
	parsingValue
	headerDone
)

// parseHeaders parses field lines up to and including the empty line ending the block.
//
// Reference: https://datatracker.ietf.org/doc/html/rfc9112#section-5
func parseHeaders(c *cursor, a *arena.Arena, r *Request) error {
	r.Headers = sequence.Make[Field](a, fieldCodec{a: a})

	for {
		if c.eof() {
			return c.fail(EndOfContent)
		}

		if c.peek() == rule.CR {
			return errors.Wrap(c.expectCRLF(), "parsing end of headers")
		}

		f, err := parseFieldLine(c, a)
		if err != nil {
			return errors.Wrapf(err, "parsing header %d", r.Headers.Len())
		}

		if err := r.Headers.Append(f); err != nil {
			return allocFailed(err, "storing header")
		}
	}
}

func parseFieldLine(c *cursor, a *arena.Arena) (Field, error) {
	var name, value []byte
	for state := parsingName; state != headerDone; state++ {
		var err error
		switch state {
		case parsingName:
			name, err = c.token()
			if errors.Is(err, EmptyToken) {
				err = c.fail(HeaderExpected)
			}
		case parsingColon:
			err = c.expect(rule.COLON, ColonExpected)
		case parsingOWS:
			c.run(rule.IsWhitespace)
		case parsingValue:
			value, err = parseFieldValue(c)
		}

		if err != nil {
			return Field{}, err
		}
	}

	var (
		f   Field
		err error
	)
	if f.Name, err = a.Copy(name); err != nil {
		return Field{}, allocFailed(err, "copying header name")
	}
	if f.Value, err = a.Copy(value); err != nil {
		return Field{}, allocFailed(err, "copying header value")
	}

	return f, nil
}

// parseFieldValue consumes a field value and its CRLF.
// Whitespace between visible bytes is kept; trailing whitespace is not part of the value.
//
// Reference: https://datatracker.ietf.org/doc/html/rfc7230#section-3.2
func parseFieldValue(c *cursor) ([]byte, error) {
	start, end := c.pos, c.pos
	for {
		if c.eof() {
			return nil, c.fail(EndOfContent)
		}

		b := c.peek()
		switch {
		case b == rule.CR:
			if err := c.expectCRLF(); err != nil {
				return nil, err
			}
			return c.buf[start:end], nil
		case rule.IsFieldVchar(b):
			c.pos++
			end = c.pos
		case rule.IsWhitespace(b):
			c.pos++
		default:
			return nil, c.fail(InvalidHeaderByte)
		}
	}
}
