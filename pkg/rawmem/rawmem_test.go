package rawmem

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewZeroCapacityHoldsNoBlock(t *testing.T) {
	b, err := New[int](0)
	require.NoError(t, err)
	require.Zero(t, b.Capacity())
	require.Nil(t, b.block)
	require.Empty(t, b.Offset(0))
	require.Zero(t, b.Bytes())
}

func TestNewRejectsBadCapacities(t *testing.T) {
	_, err := New[int](-3)
	require.ErrorIs(t, err, ErrInvalidCapacity)

	_, err = New[int64](math.MaxInt)
	require.ErrorIs(t, err, ErrOutOfMemory)
	assert.Contains(t, err.Error(), "slots")

	_, err = New[[1 << 20]byte](math.MaxInt >> 10)
	require.ErrorIs(t, err, ErrOutOfMemory)
}

func TestSlotsAreAddressable(t *testing.T) {
	b, err := New[uint32](4)
	require.NoError(t, err)
	require.Equal(t, 4, b.Capacity())
	require.Equal(t, uint64(16), b.Bytes())

	for i := 0; i < b.Capacity(); i++ {
		*b.Index(i) = uint32(i * 10)
	}
	require.Equal(t, []uint32{10, 20, 30}, b.Offset(1))
	require.Empty(t, b.Offset(4))
	w := b.Slice(1, 3)
	require.Equal(t, []uint32{10, 20}, w)
	require.Equal(t, 2, cap(w))
}

func TestSwapExchangesBlocksOnly(t *testing.T) {
	a, err := New[string](2)
	require.NoError(t, err)
	b, err := New[string](5)
	require.NoError(t, err)
	*a.Index(0) = "a"
	*b.Index(4) = "b"
	pa, pb := a.Index(0), b.Index(4)

	a.Swap(&b)
	require.Equal(t, 5, a.Capacity())
	require.Equal(t, 2, b.Capacity())
	require.Same(t, pb, a.Index(4))
	require.Same(t, pa, b.Index(0))
}

func TestMoveFromTransfersOwnership(t *testing.T) {
	src, err := New[int](3)
	require.NoError(t, err)
	*src.Index(2) = 7
	p := src.Index(2)

	dst, err := New[int](8)
	require.NoError(t, err)
	dst.MoveFrom(&src)
	require.Equal(t, 3, dst.Capacity())
	require.Same(t, p, dst.Index(2))
	require.Zero(t, src.Capacity())
	require.Nil(t, src.block)

	dst.MoveFrom(&dst)
	require.Equal(t, 3, dst.Capacity())

	src.Release()
	dst.Release()
	require.Zero(t, dst.Capacity())
}

func TestZeroSizeSlots(t *testing.T) {
	b, err := New[struct{}](math.MaxInt32)
	require.NoError(t, err)
	require.Equal(t, math.MaxInt32, b.Capacity())
	require.Zero(t, b.Bytes())
}
