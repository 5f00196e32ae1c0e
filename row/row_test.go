package row

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlice(t *testing.T) {
	r := Slice[string]{"a", "b", "c"}

	require.Equal(t, 3, r.Columns())
	assert.Equal(t, "a", r.Value(0))
	assert.Equal(t, "c", r.Value(2))

	assert.Panics(t, func() { r.Value(3) })
	assert.Panics(t, func() { r.Value(-1) })
}

func TestShared(t *testing.T) {
	r := NewShared([]string{"a", "b"})

	require.Equal(t, 2, r.Columns())
	assert.Equal(t, "a", r.Value(0))
	assert.Equal(t, "b", r.Value(1))

	// Copies alias the same storage.
	cp := r
	assert.Equal(t, r.Value(1), cp.Value(1))

	assert.Panics(t, func() { r.Value(2) })
}

func TestSharedZero(t *testing.T) {
	var r Shared[int]

	assert.Equal(t, 0, r.Columns())
	assert.Panics(t, func() { r.Value(0) })
}
