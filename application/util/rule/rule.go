package rule

// Character classes of the HTTP/1.1 message grammar.
//
// Reference: https://datatracker.ietf.org/doc/html/rfc7230#section-1.2

// IsWhitespace reports whether c is SP or HTAB, the bytes allowed in OWS.
func IsWhitespace(c byte) bool {
	for _, ws := range OWS {
		if c == ws {
			return true
		}
	}
	return false
}

func IsAlpha(c byte) bool { return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') }
func IsDigit(c byte) bool { return '0' <= c && c <= '9' }

// IsVchar reports whether c is a visible US-ASCII character.
func IsVchar(c byte) bool { return 0x21 <= c && c <= 0x7E }

// IsObsText reports whether c is an obsolete 8-bit byte, kept opaque in field values.
//
// Reference: https://datatracker.ietf.org/doc/html/rfc7230#section-3.2.6
func IsObsText(c byte) bool { return c >= 0x80 }

// IsFieldVchar reports whether c may appear as a non-whitespace byte of a field value.
func IsFieldVchar(c byte) bool { return IsVchar(c) || IsObsText(c) }

// IsURIChar reports whether c may appear in an origin-form request target.
//
// Reference: https://datatracker.ietf.org/doc/html/rfc7230#section-5.3.1
func IsURIChar(c byte) bool {
	if IsAlpha(c) || IsDigit(c) {
		return true
	}

	switch c {
	case '-', '.', '_', ':', '/', '?', '#', '[', ']', '@',
		'!', '$', '&', '\'', '(', ')', '*', '+', ',', ';', '%', '=':
		return true
	}

	return false
}
