package http

import (
	"http-arena/application/util/rule"

	"github.com/pkg/errors"
)

type startLineState uint8

// The start line is parsed strictly in this order.
const (
	parsingMethod startLineState = iota
	firstWhitespace
	parsingTarget
	secondWhitespace
	parsingVersion
	parsingCRLF
	startLineDone
)

var startLineStateNames = [...]string{
	parsingMethod:    "parsing method",
	firstWhitespace:  "parsing whitespace after method",
	parsingTarget:    "parsing target",
	secondWhitespace: "parsing whitespace after target",
	parsingVersion:   "parsing version",
	parsingCRLF:      "parsing start line terminator",
}

func (s startLineState) String() string { return startLineStateNames[s] }

// Reference: https://datatracker.ietf.org/doc/html/rfc9112#section-3
func parseStartLine(c *cursor, r *Request) error {
	for state := parsingMethod; state != startLineDone; state++ {
		var err error
		switch state {
		case parsingMethod:
			err = parseMethod(c, &r.Method)
		case firstWhitespace, secondWhitespace:
			err = c.expect(rule.SP, WhitespaceExpected)
		case parsingTarget:
			err = parseTarget(c, &r.Target)
		case parsingVersion:
			r.Version, err = parseVersion(c)
		case parsingCRLF:
			err = c.expectCRLF()
		}

		if err != nil {
			return errors.Wrap(err, state.String())
		}
	}

	return nil
}

func parseMethod(c *cursor, m *Method) error {
	if c.eof() {
		return c.fail(EndOfContent)
	}

	start := c.pos
	tok, err := c.token()
	if err != nil {
		if errors.Is(err, EmptyToken) {
			return c.fail(EmptyMethod)
		}
		return err
	}
	if len(tok) > MaxMethodLength {
		c.pos = start
		return c.fail(MethodTooLarge)
	}

	m.set(tok)
	return nil
}

func parseTarget(c *cursor, t *Target) error {
	if c.eof() {
		return c.fail(EndOfContent)
	}
	// Only origin-form is accepted.
	if c.peek() != rule.SLASH {
		return c.fail(TargetExpected)
	}

	start := c.pos
	target := c.run(rule.IsURIChar)
	if len(target) == 0 {
		return c.fail(EmptyTarget)
	}
	if len(target) > MaxTargetLength {
		c.pos = start
		return c.fail(TargetTooLong)
	}

	t.set(target)
	return nil
}

var versionPrefix = []byte("HTTP/")

// maxVersionDigits bounds each version component.
const maxVersionDigits = 3

// parseVersion parses HTTP-version. Components that do not fit a uint8 are rejected.
func parseVersion(c *cursor) (Version, error) {
	for _, b := range versionPrefix {
		if err := c.expect(b, VersionExpected); err != nil {
			return Version{}, err
		}
	}

	major, err := parseVersionNumber(c)
	if err != nil {
		return Version{}, err
	}
	if err := c.expect(rule.DOT, VersionExpected); err != nil {
		return Version{}, err
	}
	minor, err := parseVersionNumber(c)
	if err != nil {
		return Version{}, err
	}

	return Version{major, minor}, nil
}

func parseVersionNumber(c *cursor) (uint8, error) {
	start := c.pos
	digits := c.run(rule.IsDigit)
	if len(digits) == 0 {
		if c.eof() {
			return 0, c.fail(EndOfContent)
		}
		return 0, c.fail(VersionExpected)
	}
	if len(digits) > maxVersionDigits {
		c.pos = start
		return 0, c.fail(VersionExpected)
	}

	n := 0
	for _, d := range digits {
		n = n*10 + int(d-'0')
	}
	if n > 0xFF {
		c.pos = start
		return 0, c.fail(VersionExpected)
	}

	return uint8(n), nil
}
