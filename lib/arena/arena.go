// Package arena implements a fixed-size bump allocator with checkpoint and rollback.
//
// All memory handed out by an [Arena] lives inside one region obtained at [New].
// Nothing is freed individually: callers take a [Checkpoint] before a unit of work
// and [Arena.Rollback] to it when the work is abandoned.
//
// An Arena is not safe for concurrent use.
package arena

import (
	"unsafe"

	"github.com/pkg/errors"
)

var (
	ErrOutOfMemory     = errors.New("arena out of memory")
	ErrInvalidCapacity = errors.New("arena capacity must be positive")
)

// Checkpoint marks an allocation position of an arena.
type Checkpoint int

type Arena struct {
	buf []byte

	head int // Next free offset.
	last int // Offset of the most recent allocation.
}

func New(capacity int) (*Arena, error) {
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}

	return &Arena{buf: make([]byte, capacity)}, nil
}

// Valid reports whether the arena still owns a region.
func (a *Arena) Valid() bool { return a != nil && a.buf != nil }

func (a *Arena) Cap() int {
	if !a.Valid() {
		return 0
	}
	return len(a.buf)
}

// Len returns the number of bytes in use.
func (a *Arena) Len() int {
	if !a.Valid() {
		return 0
	}
	return a.head
}

func (a *Arena) Available() int { return a.Cap() - a.Len() }

// Allocate reserves n bytes. The returned memory is not zeroed.
func (a *Arena) Allocate(n int) ([]byte, error) {
	if !a.Valid() || n <= 0 || n > a.Available() {
		return nil, ErrOutOfMemory
	}

	a.last = a.head
	a.head += n

	return a.buf[a.last:a.head:a.head], nil
}

// Reallocate resizes ptr, which holds current bytes, to target bytes.
//
// When ptr is the most recent allocation it is resized in place and the returned
// slice shares its start with ptr. Otherwise a fresh region is allocated and
// min(current, target) bytes are copied over.
func (a *Arena) Reallocate(ptr []byte, current, target int) ([]byte, error) {
	if !a.Valid() || target <= 0 {
		return nil, ErrOutOfMemory
	}

	if off, ok := a.Offset(ptr); ok && len(ptr) > 0 && off == a.last && a.head-a.last == current {
		newHead := a.last + target
		if newHead > len(a.buf) {
			return nil, ErrOutOfMemory
		}

		a.head = newHead
		return a.buf[a.last:a.head:a.head], nil
	}

	b, err := a.Allocate(target)
	if err != nil {
		return nil, err
	}

	n := min(current, target, len(ptr))
	if n > 0 {
		copy(b, ptr[:n])
	}

	return b, nil
}

// Copy allocates len(src) bytes and copies src into them.
// An empty src yields an empty slice without allocating.
func (a *Arena) Copy(src []byte) ([]byte, error) {
	if len(src) == 0 {
		if !a.Valid() {
			return nil, ErrOutOfMemory
		}
		return a.buf[a.head:a.head:a.head], nil
	}

	b, err := a.Allocate(len(src))
	if err != nil {
		return nil, err
	}
	copy(b, src)

	return b, nil
}

// Offset returns the position of b inside the arena region.
// ok is false when b does not lie entirely inside the region.
func (a *Arena) Offset(b []byte) (off int, ok bool) {
	if !a.Valid() || cap(b) == 0 {
		return 0, false
	}

	base := uintptr(unsafe.Pointer(unsafe.SliceData(a.buf)))
	p := uintptr(unsafe.Pointer(unsafe.SliceData(b)))
	if p < base || p+uintptr(len(b)) > base+uintptr(len(a.buf)) {
		return 0, false
	}

	return int(p - base), true
}

// Slice returns the n bytes starting at off.
func (a *Arena) Slice(off, n int) []byte {
	return a.buf[off : off+n : off+n]
}

func (a *Arena) Checkpoint() Checkpoint {
	if !a.Valid() {
		return 0
	}
	return Checkpoint(a.head)
}

// Rollback discards every allocation made after c was taken.
// It does nothing when c does not lie inside the allocated extent.
// The in-place reallocation target is reset to c so that a discarded
// allocation can not be grown again.
func (a *Arena) Rollback(c Checkpoint) {
	if !a.Valid() || c < 0 || int(c) > a.head {
		return
	}

	a.head = int(c)
	a.last = int(c)
}

// Reset discards every allocation.
func (a *Arena) Reset() { a.Rollback(0) }

// Destroy releases the region. No memory handed out by a may be used afterwards.
func (a *Arena) Destroy() {
	if a == nil {
		return
	}
	a.buf = nil
	a.head, a.last = 0, 0
}
