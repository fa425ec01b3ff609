package alloc

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArena_SimpleAllocate(t *testing.T) {
	a, err := NewArena(4096)
	require.NoError(t, err, "NewArena should not error")
	defer a.Close()

	buf, err := a.Allocate(60)
	require.NoError(t, err)
	require.Len(t, buf, 60)

	st := a.Stats()
	assert.Equal(t, uint64(1), st.Allocs)
	assert.Equal(t, 64, st.LiveBytes, "live bytes should reflect 8-byte alignment")
	assert.Equal(t, 1, st.Slabs)
}

func TestArena_Alignment(t *testing.T) {
	a, err := NewArena(4096)
	require.NoError(t, err)
	defer a.Close()

	for _, size := range []int{1, 5, 7, 9, 13, 17, 25} {
		buf, err := a.Allocate(size)
		require.NoError(t, err, "Allocate(%d) should succeed", size)
		assert.Zero(t, cap(buf)%8, "aligned size for %d should be a multiple of 8", size)
		assert.Zero(t, uintptr(unsafe.Pointer(&buf[0]))%8, "storage for %d should start 8-byte aligned", size)
	}
}

func TestArena_BumpWithinSlab(t *testing.T) {
	a, err := NewArena(4096)
	require.NoError(t, err)
	defer a.Close()

	b1, err := a.Allocate(16)
	require.NoError(t, err)
	b2, err := a.Allocate(16)
	require.NoError(t, err)

	p1 := uintptr(unsafe.Pointer(&b1[0]))
	p2 := uintptr(unsafe.Pointer(&b2[0]))
	assert.Equal(t, uintptr(16), p2-p1, "second allocation should bump directly after the first")
}

func TestArena_GrowsNewSlab(t *testing.T) {
	a, err := NewArena(128)
	require.NoError(t, err)
	defer a.Close()

	for range 4 {
		_, err := a.Allocate(64)
		require.NoError(t, err)
	}
	assert.Greater(t, a.Stats().Slabs, 1, "arena should have grown past its first slab")
}

func TestArena_OversizeGetsDedicatedSlab(t *testing.T) {
	a, err := NewArena(256)
	require.NoError(t, err)
	defer a.Close()

	buf, err := a.Allocate(4096)
	require.NoError(t, err, "oversize request should still succeed")
	require.Len(t, buf, 4096)
	assert.Equal(t, 2, a.Stats().Slabs)
}

// TestArena_RewindOnTailFree frees the most recent allocation and checks the
// space is immediately reused.
func TestArena_RewindOnTailFree(t *testing.T) {
	a, err := NewArena(4096)
	require.NoError(t, err)
	defer a.Close()

	_, err = a.Allocate(32)
	require.NoError(t, err)

	b, err := a.Allocate(32)
	require.NoError(t, err)
	a.Deallocate(b, 32)

	c, err := a.Allocate(32)
	require.NoError(t, err)
	assert.Same(t, &b[0], &c[0], "tail free should rewind the bump pointer")
	assert.Equal(t, 64, a.Stats().LiveBytes)
}

func TestArena_NonTailFreeIsDeferred(t *testing.T) {
	a, err := NewArena(4096)
	require.NoError(t, err)
	defer a.Close()

	b1, err := a.Allocate(32)
	require.NoError(t, err)
	_, err = a.Allocate(32)
	require.NoError(t, err)

	a.Deallocate(b1, 32)
	c, err := a.Allocate(32)
	require.NoError(t, err)
	assert.NotSame(t, &b1[0], &c[0], "non-tail free must not be reused before Reset")
}

func TestArena_Reset(t *testing.T) {
	a, err := NewArena(128)
	require.NoError(t, err)
	defer a.Close()

	var first []byte
	for i := range 8 {
		buf, err := a.Allocate(64)
		require.NoError(t, err)
		if i == 0 {
			first = buf
		}
	}

	a.Reset()
	st := a.Stats()
	assert.Equal(t, 1, st.Slabs, "reset should drop all but the first slab")
	assert.Zero(t, st.LiveBytes)

	buf, err := a.Allocate(64)
	require.NoError(t, err)
	assert.Same(t, &first[0], &buf[0], "reset should rewind to the start of the first slab")
}

func TestArena_Close(t *testing.T) {
	a, err := NewArena(0)
	require.NoError(t, err)

	require.NoError(t, a.Close())
	_, err = a.Allocate(8)
	assert.ErrorIs(t, err, ErrClosed)
	assert.ErrorIs(t, a.Close(), ErrClosed)
}

func TestArena_BadSize(t *testing.T) {
	_, err := NewArena(-1)
	require.ErrorIs(t, err, ErrBadSize)

	a, err := NewArena(0)
	require.NoError(t, err)
	defer a.Close()

	_, err = a.Allocate(0)
	assert.ErrorIs(t, err, ErrBadSize)
}
