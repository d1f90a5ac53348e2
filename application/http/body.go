package http

import (
	"math"

	"http-arena/lib/arena"
)

// parseBody copies the content delimited by the first Content-Length field.
// Without the field the request has no body.
//
// Reference: https://datatracker.ietf.org/doc/html/rfc9112#section-6.2
func parseBody(c *cursor, a *arena.Arena, r *Request) error {
	v, ok := r.Header("Content-Length")
	if !ok {
		return nil
	}

	n, ok := parseContentLength(v)
	if !ok {
		return c.fail(InvalidBodyLength)
	}
	if n > c.remaining() {
		return c.fail(EndOfContent)
	}

	body, err := a.Copy(c.buf[c.pos : c.pos+n])
	if err != nil {
		return allocFailed(err, "copying body")
	}
	c.pos += n

	r.Body = body
	r.BodyLength = n
	return nil
}

// parseContentLength accepts a positive decimal that fits an int.
func parseContentLength(v []byte) (int, bool) {
	if len(v) == 0 {
		return 0, false
	}

	n := 0
	for _, b := range v {
		if b < '0' || b > '9' {
			return 0, false
		}
		d := int(b - '0')
		if n > (math.MaxInt-d)/10 {
			return 0, false
		}
		n = n*10 + d
	}

	return n, n > 0
}
