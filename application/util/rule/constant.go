package rule

const (
	CR    byte = '\r'
	LF    byte = '\n'
	SP    byte = ' '
	HTAB  byte = '\t'
	COLON byte = ':'
	SLASH byte = '/'
	DOT   byte = '.'
)

var (
	OWS  = []byte{SP, HTAB}
	CRLF = []byte{CR, LF}
)
