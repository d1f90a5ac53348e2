package http

import (
	"http-arena/lib/arena"

	"github.com/pkg/errors"
)

// ParseRequest parses the request held in buf into r, allocating from a.
//
// On success the header fields and the body of r point into a. On failure a is
// rolled back to its state before the call, r is zeroed and the returned error
// carries the [Code] of the first violation found.
func ParseRequest(buf []byte, a *arena.Arena, r *Request) (err error) {
	r.Reset()
	if !a.Valid() {
		return errors.Wrap(OutOfMemory, "arena is not usable")
	}

	cp := a.Checkpoint()
	defer func() {
		if err != nil {
			a.Rollback(cp)
			r.Reset()
		}
	}()

	c := cursor{buf: buf}
	if err := parseStartLine(&c, r); err != nil {
		return errors.Wrap(err, "parsing start line")
	}
	if err := parseHeaders(&c, a, r); err != nil {
		return errors.Wrap(err, "parsing headers")
	}
	if err := parseBody(&c, a, r); err != nil {
		return errors.Wrap(err, "parsing body")
	}

	return nil
}
