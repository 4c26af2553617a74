// Package rawmem owns blocks of element slots without giving them any
// lifetime. A Buffer never constructs, reads or destroys the values it
// holds; that bookkeeping belongs to whoever owns the Buffer.
package rawmem

import (
	"runtime"

	"github.com/pkg/errors"

	"github.com/rawbytedev/vector/internal/common"
)

var (
	ErrOutOfMemory     = errors.New("rawmem: out of memory")
	ErrInvalidCapacity = errors.New("rawmem: negative capacity")
)

// Buffer is an exclusively owned block of capacity slots of T.
// The zero value holds no block.
type Buffer[T any] struct {
	block []T // len(block) == cap(block) == capacity
}

// New allocates a block able to hold capacity slots.
// A zero capacity allocates nothing.
func New[T any](capacity int) (Buffer[T], error) {
	block, err := allocate[T](capacity)
	if err != nil {
		return Buffer[T]{}, err
	}
	return Buffer[T]{block: block}, nil
}

func allocate[T any](n int) (block []T, err error) {
	if n < 0 {
		return nil, errors.Wrapf(ErrInvalidCapacity, "allocate %d slots", n)
	}
	if n == 0 {
		return nil, nil
	}
	size, ok := common.SlotBytes[T](n)
	if !ok {
		return nil, errors.Wrapf(ErrOutOfMemory, "allocate %d slots of %d bytes", n, common.SlotSize[T]())
	}
	defer func() {
		// makeslice reports requests the heap cannot satisfy as a runtime error
		if r := recover(); r != nil {
			if _, isRuntime := r.(runtime.Error); !isRuntime {
				panic(r)
			}
			block, err = nil, errors.Wrapf(ErrOutOfMemory, "allocate %d slots (%d bytes)", n, size)
		}
	}()
	return make([]T, n), nil
}

// Release drops the block. Live values still sitting in it are not
// destroyed; the owner must have ended their lifetimes first.
func (b *Buffer[T]) Release() {
	b.block = nil
}

func (b *Buffer[T]) Capacity() int {
	return len(b.block)
}

// Bytes reports the footprint of the block.
func (b *Buffer[T]) Bytes() uint64 {
	n, _ := common.SlotBytes[T](len(b.block))
	return n
}

// Index returns the location of slot i. The slot may or may not hold a live value.
func (b *Buffer[T]) Index(i int) *T {
	common.Assert(i >= 0 && i < len(b.block), "rawmem: index %d out of capacity %d", i, len(b.block))
	return &b.block[i]
}

// Offset returns the slots from i to the end of the block.
// i == Capacity() is allowed and yields an empty window.
func (b *Buffer[T]) Offset(i int) []T {
	common.Assert(i >= 0 && i <= len(b.block), "rawmem: offset %d past capacity %d", i, len(b.block))
	return b.block[i:]
}

// Slice returns the slots [lo, hi).
func (b *Buffer[T]) Slice(lo, hi int) []T {
	common.Assert(0 <= lo && lo <= hi && hi <= len(b.block), "rawmem: window [%d:%d] outside capacity %d", lo, hi, len(b.block))
	return b.block[lo:hi:hi]
}

// Swap exchanges the blocks of b and other. No slot is touched.
func (b *Buffer[T]) Swap(other *Buffer[T]) {
	b.block, other.block = other.block, b.block
}

// MoveFrom transfers ownership of src's block to b. b's previous block is
// released and src is left empty, so releasing it again is a no-op.
func (b *Buffer[T]) MoveFrom(src *Buffer[T]) {
	if b == src {
		return
	}
	b.block = src.block
	src.block = nil
}
