package http

import (
	"testing"

	"http-arena/lib/arena"

	"github.com/stretchr/testify/require"
)

func newArena(t *testing.T, capacity int) *arena.Arena {
	t.Helper()

	a, err := arena.New(capacity)
	require.NoError(t, err)
	t.Cleanup(a.Destroy)

	return a
}

// field builds a header field for comparisons.
func field(name, value string) Field { return Field{Name: []byte(name), Value: []byte(value)} }
