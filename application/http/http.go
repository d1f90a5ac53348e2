package http

import (
	"encoding/binary"
	"strconv"

	"http-arena/lib/arena"
	"http-arena/lib/ds/sequence"

	"github.com/pkg/errors"
)

const (
	MaxMethodLength = 7
	MaxTargetLength = 255
)

// Method holds a request method of at most MaxMethodLength bytes.
type Method struct {
	b [MaxMethodLength]byte
	n uint8
}

func (m *Method) set(b []byte) { m.n = uint8(copy(m.b[:], b)) }

func (m *Method) Bytes() []byte { return m.b[:m.n] }
func (m *Method) Len() int      { return int(m.n) }
func (m Method) String() string { return string(m.b[:m.n]) }

// Target holds an origin-form request target of at most MaxTargetLength bytes.
type Target struct {
	b [MaxTargetLength]byte
	n uint8
}

func (t *Target) set(b []byte) { t.n = uint8(copy(t.b[:], b)) }

func (t *Target) Bytes() []byte { return t.b[:t.n] }
func (t *Target) Len() int      { return int(t.n) }
func (t Target) String() string { return string(t.b[:t.n]) }

// [Major, Minor]
type Version [2]uint8

func (ver Version) Major() uint8 { return ver[0] }
func (ver Version) Minor() uint8 { return ver[1] }

func (ver Version) String() string {
	return "HTTP/" + strconv.Itoa(int(ver[0])) + "." + strconv.Itoa(int(ver[1]))
}

// Field is a header field line. Name and Value point into the arena the
// request was parsed with and are valid until that arena is rolled back past
// them or destroyed.
type Field struct{ Name, Value []byte }

var errFieldNotInArena = errors.New("field is not owned by the arena")

// fieldCodec stores a Field as two (offset, length) pairs into its arena.
type fieldCodec struct{ a *arena.Arena }

func (fieldCodec) Size() int { return 16 }

func (fc fieldCodec) Encode(dst []byte, f Field) error {
	nameOff, ok := fc.offset(f.Name)
	if !ok {
		return errFieldNotInArena
	}
	valueOff, ok := fc.offset(f.Value)
	if !ok {
		return errFieldNotInArena
	}

	binary.LittleEndian.PutUint32(dst[0:], uint32(nameOff))
	binary.LittleEndian.PutUint32(dst[4:], uint32(len(f.Name)))
	binary.LittleEndian.PutUint32(dst[8:], uint32(valueOff))
	binary.LittleEndian.PutUint32(dst[12:], uint32(len(f.Value)))
	return nil
}

func (fc fieldCodec) offset(b []byte) (int, bool) {
	if len(b) == 0 {
		return 0, true
	}
	return fc.a.Offset(b)
}

func (fc fieldCodec) Decode(src []byte) Field {
	nameOff := int(binary.LittleEndian.Uint32(src[0:]))
	nameLen := int(binary.LittleEndian.Uint32(src[4:]))
	valueOff := int(binary.LittleEndian.Uint32(src[8:]))
	valueLen := int(binary.LittleEndian.Uint32(src[12:]))

	return Field{
		Name:  fc.a.Slice(nameOff, nameLen),
		Value: fc.a.Slice(valueOff, valueLen),
	}
}

type Request struct {
	Method  Method
	Target  Target
	Version Version

	// Headers keeps field lines in the order they were received.
	Headers sequence.Sequence[Field]

	// Body is nil when the request has no Content-Length field.
	Body       []byte
	BodyLength int
}

// Header returns the value of the first field whose name matches name case-insensitively.
func (r *Request) Header(name string) (value []byte, ok bool) {
	for _, f := range r.Headers.All() {
		if equalFold(f.Name, name) {
			return f.Value, true
		}
	}
	return nil, false
}

// Fields copies the header fields into a new slice.
// The names and values still point into the arena.
func (r *Request) Fields() []Field {
	fields := make([]Field, 0, r.Headers.Len())
	for _, f := range r.Headers.All() {
		fields = append(fields, f)
	}
	return fields
}

// Reset zeroes the request.
func (r *Request) Reset() { *r = Request{} }

// equalFold reports whether b and s are equal under ASCII case folding.
func equalFold(b []byte, s string) bool {
	if len(b) != len(s) {
		return false
	}
	for i := 0; i < len(b); i++ {
		if lower(b[i]) != lower(s[i]) {
			return false
		}
	}
	return true
}

func lower(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}
