// Package sequence implements an append-only sequence stored inside an arena.
package sequence

import (
	"iter"

	"http-arena/lib/arena"

	"github.com/pkg/errors"
)

// MinCapacity is the number of elements reserved by the first growth.
const MinCapacity = 16

// Codec converts elements to and from their fixed-size encoding.
//
// Elements are kept encoded so that arena memory never holds Go pointers.
type Codec[T any] interface {
	// Size returns the encoded size of one element in bytes.
	Size() int
	Encode(dst []byte, v T) error
	Decode(src []byte) T
}

// Sequence is an append-only list of T whose storage is owned by an arena.
// Its capacity doubles whenever it runs full.
type Sequence[T any] struct {
	arena *arena.Arena
	codec Codec[T]

	items    []byte
	count    int
	capacity int
}

func Make[T any](a *arena.Arena, c Codec[T]) Sequence[T] {
	return Sequence[T]{arena: a, codec: c}
}

func (s *Sequence[T]) Len() int { return s.count }
func (s *Sequence[T]) Cap() int { return s.capacity }

func (s *Sequence[T]) Append(v T) error {
	if s.codec == nil {
		return errors.New("sequence has no codec")
	}

	size := s.codec.Size()
	if s.count == s.capacity {
		newCap := max(MinCapacity, s.capacity*2)

		items, err := s.arena.Reallocate(s.items, s.capacity*size, newCap*size)
		if err != nil {
			return errors.Wrapf(err, "growing sequence to %d elements", newCap)
		}

		s.items = items
		s.capacity = newCap
	}

	off := s.count * size
	if err := s.codec.Encode(s.items[off:off+size], v); err != nil {
		return errors.Wrap(err, "encoding element")
	}
	s.count++

	return nil
}

// At returns the i-th element. It panics if i is out of range.
func (s *Sequence[T]) At(i int) T {
	if i < 0 || i >= s.count {
		panic(errors.Errorf("sequence index %d out of range [0:%d]", i, s.count))
	}

	size := s.codec.Size()
	return s.codec.Decode(s.items[i*size : (i+1)*size])
}

// All iterates over the elements in insertion order.
func (s *Sequence[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < s.count; i++ {
			if !yield(i, s.At(i)) {
				return
			}
		}
	}
}
