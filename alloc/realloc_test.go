package alloc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heapkit/heapkit/alloc"
)

func TestReallocNullIsAlloc(t *testing.T) {
	h := newTestHeap(t)
	p := h.Realloc(alloc.Null, 64)
	require.NotEqual(t, alloc.Null, p)
	assert.GreaterOrEqual(t, h.PayloadCapacity(p), 64)
}

func TestReallocZeroSizeFrees(t *testing.T) {
	h := newTestHeap(t)
	p := h.Alloc(64)
	require.NotEqual(t, alloc.Null, p)
	before := h.Stats()

	r := h.Realloc(p, 0)
	assert.Equal(t, alloc.Null, r)

	after := h.Stats()
	assert.Less(t, after.AllocatedBytes, before.AllocatedBytes)
	require.NoError(t, h.Check())
}

// a and b are adjacent; freeing b then growing a absorbs it without
// moving a.
func TestReallocGrowInPlace(t *testing.T) {
	h := newTestHeap(t)

	a := h.Alloc(64)
	b := h.Alloc(64)
	require.NotEqual(t, alloc.Null, a)
	require.NotEqual(t, alloc.Null, b)

	h.Free(b)

	buf := h.Bytes(a)
	for i := range buf {
		buf[i] = byte(i)
	}

	c := h.Realloc(a, 128)
	require.Equal(t, a, c, "grow-in-place must not relocate the block")
	require.NoError(t, h.Check())

	grown := h.Bytes(c)
	for i := 0; i < 64; i++ {
		assert.Equal(t, byte(i), grown[i], "byte %d corrupted by grow-in-place", i)
	}
}

// Growing far beyond what any adjacent free block can supply forces a
// relocate-and-copy; the live prefix of the payload survives the move.
func TestReallocCopyFallback(t *testing.T) {
	h := newTestHeap(t)

	a := h.Alloc(64)
	_ = h.Alloc(64) // keep a's neighbour allocated so grow-in-place can't apply
	require.NotEqual(t, alloc.Null, a)

	buf := h.Bytes(a)
	for i := range buf {
		buf[i] = byte(i + 1)
	}

	c := h.Realloc(a, 4096)
	require.NotEqual(t, alloc.Null, c)
	assert.NotEqual(t, a, c)
	require.NoError(t, h.Check())

	grown := h.Bytes(c)
	for i := 0; i < 64; i++ {
		assert.Equal(t, byte(i+1), grown[i], "byte %d lost across copy fallback", i)
	}
}

func TestReallocShrinkInPlace(t *testing.T) {
	h := newTestHeap(t)
	p := h.Alloc(4000)
	require.NotEqual(t, alloc.Null, p)

	q := h.Realloc(p, 16)
	assert.Equal(t, p, q, "shrink never needs to relocate")
	require.NoError(t, h.Check())
	assert.Less(t, h.PayloadCapacity(q), 4000)
}

func TestReallocSameSizeIsIdentity(t *testing.T) {
	h := newTestHeap(t)
	p := h.Alloc(100)
	require.NotEqual(t, alloc.Null, p)
	buf := h.Bytes(p)
	for i := range buf {
		buf[i] = byte(i)
	}

	q := h.Realloc(p, h.PayloadCapacity(p))
	assert.Equal(t, p, q)
	got := h.Bytes(q)
	for i := 0; i < 100; i++ {
		assert.Equal(t, byte(i), got[i])
	}
}
