package http

import (
	"http-arena/lib/arena"

	"github.com/pkg/errors"
)

// Code identifies the first grammar violation found in a request.
// Every error returned by this package carries exactly one Code, see [CodeOf].
type Code uint8

const (
	OK Code = iota
	EmptyToken
	EmptyMethod
	MethodTooLarge
	WhitespaceExpected
	TargetExpected
	EmptyTarget
	TargetTooLong
	VersionExpected
	CrlfExpected
	EndOfContent
	HeaderExpected
	ColonExpected
	InvalidHeaderByte
	InvalidBodyLength
	OutOfMemory

	// Unknown is reported by CodeOf for errors that did not come from this package.
	Unknown Code = 0xFF
)

type codeInfo struct{ name, text string }

var codeInfos = [...]codeInfo{
	OK:                 {"ok", "no errors found"},
	EmptyToken:         {"empty_token", "found empty token"},
	EmptyMethod:        {"empty_method", "found empty method"},
	MethodTooLarge:     {"method_too_large", "HTTP method too large (>7)"},
	WhitespaceExpected: {"whitespace_expected", "expected single space"},
	TargetExpected:     {"target_expected", "expected origin-form request target"},
	EmptyTarget:        {"empty_target", "found empty request target"},
	TargetTooLong:      {"target_too_long", "request target too long (>255)"},
	VersionExpected:    {"version_expected", "expected HTTP version"},
	CrlfExpected:       {"crlf_expected", "expected CRLF"},
	EndOfContent:       {"end_of_content", "unexpected end of content"},
	HeaderExpected:     {"header_expected", "expected header field name"},
	ColonExpected:      {"colon_expected", "expected colon after header field name"},
	InvalidHeaderByte:  {"invalid_header_byte", "invalid byte in header field value"},
	InvalidBodyLength:  {"invalid_body_length", "invalid Content-Length"},
	OutOfMemory:        {"out_of_memory", "arena out of memory"},
}

var unknownInfo = codeInfo{"unknown", "unknown error"}

func (c Code) info() codeInfo {
	if int(c) < len(codeInfos) {
		return codeInfos[c]
	}
	return unknownInfo
}

// Text returns the human readable message of c.
func Text(c Code) string { return c.info().text }

func (c Code) String() string { return c.info().text }

// Name returns a short snake_case identifier of c, used as a metric label.
func (c Code) Name() string { return c.info().name }

func (c Code) Error() string { return c.info().text }

// Is makes errors.Is(err, arena.ErrOutOfMemory) hold for OutOfMemory.
func (c Code) Is(target error) bool {
	return c == OutOfMemory && target == arena.ErrOutOfMemory
}

// CodeOf returns the Code carried by err.
// It returns OK for a nil error and Unknown when err carries no Code.
func CodeOf(err error) Code {
	if err == nil {
		return OK
	}

	var c Code
	if errors.As(err, &c) {
		return c
	}
	return Unknown
}

// allocFailed reports an arena failure as OutOfMemory.
func allocFailed(err error, what string) error {
	if !errors.Is(err, arena.ErrOutOfMemory) {
		return errors.Wrap(err, what)
	}
	return errors.Wrap(OutOfMemory, what)
}
