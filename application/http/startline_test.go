package http

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStartLine(t *testing.T) {
	type expected struct {
		method, target string
		version        Version
	}

	testcases := []struct {
		desc     string
		input    string
		expected expected
		wantErr  Code
	}{
		{
			desc:     "simple",
			input:    "GET /hello.txt HTTP/1.1\r\n",
			expected: expected{"GET", "/hello.txt", Version{1, 1}},
		},
		{
			desc:     "root target",
			input:    "POST / HTTP/1.0\r\n",
			expected: expected{"POST", "/", Version{1, 0}},
		},
		{
			desc:     "longest method",
			input:    "OPTIONS /x HTTP/1.1\r\n",
			expected: expected{"OPTIONS", "/x", Version{1, 1}},
		},
		{
			desc:     "target with query and reserved characters",
			input:    "GET /a/b?c=d&e=%20;f,g:h@i!$'()*+[]# HTTP/1.1\r\n",
			expected: expected{"GET", "/a/b?c=d&e=%20;f,g:h@i!$'()*+[]#", Version{1, 1}},
		},
		{
			desc:     "three digit versions",
			input:    "GET / HTTP/255.001\r\n",
			expected: expected{"GET", "/", Version{255, 1}},
		},
		{
			desc:    "empty input",
			input:   "",
			wantErr: EndOfContent,
		},
		{
			desc:    "empty method",
			input:   " / HTTP/1.1\r\n",
			wantErr: EmptyMethod,
		},
		{
			desc:    "method too large",
			input:   "CONNECTS / HTTP/1.1\r\n",
			wantErr: MethodTooLarge,
		},
		{
			desc:    "method too large up to the end",
			input:   "GETTTTTTTTTTT",
			wantErr: MethodTooLarge,
		},
		{
			desc:    "non-token method",
			input:   "GE@T / HTTP/1.1\r\n",
			wantErr: WhitespaceExpected,
		},
		{
			desc:    "tab instead of space",
			input:   "GET\t/ HTTP/1.1\r\n",
			wantErr: WhitespaceExpected,
		},
		{
			desc:    "method only",
			input:   "GET",
			wantErr: EndOfContent,
		},
		{
			desc:    "double space",
			input:   "GET  / HTTP/1.1\r\n",
			wantErr: TargetExpected,
		},
		{
			desc:    "absolute-form target",
			input:   "GET http://example.com/ HTTP/1.1\r\n",
			wantErr: TargetExpected,
		},
		{
			desc:    "asterisk-form target",
			input:   "OPTIONS * HTTP/1.1\r\n",
			wantErr: TargetExpected,
		},
		{
			desc:    "end after method space",
			input:   "GET ",
			wantErr: EndOfContent,
		},
		{
			desc:     "longest target",
			input:    "GET /" + strings.Repeat("a", MaxTargetLength-1) + " HTTP/1.1\r\n",
			expected: expected{"GET", "/" + strings.Repeat("a", MaxTargetLength-1), Version{1, 1}},
		},
		{
			desc:    "target too long",
			input:   "GET /" + strings.Repeat("a", MaxTargetLength) + " HTTP/1.1\r\n",
			wantErr: TargetTooLong,
		},
		{
			desc:    "non-uri byte in target",
			input:   "GET /a\"b HTTP/1.1\r\n",
			wantErr: WhitespaceExpected,
		},
		{
			desc:    "end after target",
			input:   "GET /",
			wantErr: EndOfContent,
		},
		{
			desc:    "version with leading garbage",
			input:   "GET / XHTTP/1.1\r\n",
			wantErr: VersionExpected,
		},
		{
			desc:    "lowercase version",
			input:   "GET / http/1.1\r\n",
			wantErr: VersionExpected,
		},
		{
			desc:    "missing slash after HTTP",
			input:   "GET / HTTP1.1\r\n",
			wantErr: VersionExpected,
		},
		{
			desc:    "minor version too long",
			input:   "GET / HTTP/1.1999\r\n",
			wantErr: VersionExpected,
		},
		{
			desc:    "major version too long",
			input:   "GET / HTTP/0001.1\r\n",
			wantErr: VersionExpected,
		},
		{
			desc:    "missing major version",
			input:   "GET / HTTP/.1\r\n",
			wantErr: VersionExpected,
		},
		{
			desc:    "missing dot",
			input:   "GET / HTTP/1\r\n",
			wantErr: VersionExpected,
		},
		{
			desc:    "missing minor version",
			input:   "GET / HTTP/1.\r\n",
			wantErr: VersionExpected,
		},
		{
			desc:    "version does not fit a byte",
			input:   "GET / HTTP/256.0\r\n",
			wantErr: VersionExpected,
		},
		{
			desc:    "minor version does not fit a byte",
			input:   "GET / HTTP/1.999\r\n",
			wantErr: VersionExpected,
		},
		{
			desc:    "partial version literal",
			input:   "GET / HTT",
			wantErr: EndOfContent,
		},
		{
			desc:    "end after dot",
			input:   "GET / HTTP/1.",
			wantErr: EndOfContent,
		},
		{
			desc:    "end before terminator",
			input:   "GET / HTTP/1.1",
			wantErr: EndOfContent,
		},
		{
			desc:    "bare LF",
			input:   "GET / HTTP/1.1\n",
			wantErr: CrlfExpected,
		},
		{
			desc:    "CR at end of buffer",
			input:   "GET / HTTP/1.1\r",
			wantErr: CrlfExpected,
		},
		{
			desc:    "CR followed by other byte",
			input:   "GET / HTTP/1.1\rX",
			wantErr: CrlfExpected,
		},
		{
			desc:    "trailing space",
			input:   "GET / HTTP/1.1 \r\n",
			wantErr: CrlfExpected,
		},
	}
	for _, tc := range testcases {
		t.Run(tc.desc, func(t *testing.T) {
			c := cursor{buf: []byte(tc.input)}
			var r Request

			err := parseStartLine(&c, &r)
			if tc.wantErr != OK {
				assert.ErrorIs(t, err, tc.wantErr)
				assert.Equal(t, tc.wantErr, CodeOf(err))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.expected.method, r.Method.String())
			assert.Equal(t, tc.expected.target, r.Target.String())
			assert.Equal(t, tc.expected.version, r.Version)
			assert.Equal(t, len(tc.input), c.pos)
		})
	}
}

func TestParseStartLineErrorContext(t *testing.T) {
	c := cursor{buf: []byte("CONNECTS / HTTP/1.1\r\n")}
	var r Request

	err := parseStartLine(&c, &r)
	assert.EqualError(t, err, "parsing method: offset 0: HTTP method too large (>7)")

	c = cursor{buf: []byte("GET / HTTP/1.x\r\n")}
	err = parseStartLine(&c, &r)
	assert.EqualError(t, err, "parsing version: offset 13: expected HTTP version")
}
