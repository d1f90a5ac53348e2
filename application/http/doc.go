// Package http parses fully buffered HTTP/1.1 requests into arena-backed records.
//
// Every byte the parser keeps (header names and values, the body) is copied into a
// caller-supplied [arena.Arena]. A failed parse rolls the arena back to where it was
// before the call and zeroes the request record.
//
// Reference:
//
// - https://datatracker.ietf.org/doc/html/rfc7230
//
// - https://datatracker.ietf.org/doc/html/rfc9110
//
// - https://datatracker.ietf.org/doc/html/rfc9112
package http
