package common

import (
	"fmt"
	"math/bits"
	"unsafe"
)

// MaxAllocBytes is the largest single block the runtime can hand out
// (2^47 on 64-bit platforms, 2^31-1 on 32-bit ones).
const MaxAllocBytes = 1<<(bits.UintSize/64*16+31) - 1

// SlotSize returns the byte width of one T slot.
func SlotSize[T any]() uintptr {
	var zero T
	return unsafe.Sizeof(zero)
}

// SlotBytes returns n*sizeof(T) and whether it fits in a single allocation.
func SlotBytes[T any](n int) (uint64, bool) {
	if n < 0 {
		return 0, false
	}
	hi, lo := bits.Mul64(uint64(n), uint64(SlotSize[T]()))
	if hi != 0 || lo > MaxAllocBytes {
		return lo, false
	}
	return lo, true
}

// Assert panics with a formatted message when Debug is on and cond is false.
// Release builds compile the check away.
func Assert(cond bool, format string, args ...any) {
	if Debug && !cond {
		panic(fmt.Sprintf(format, args...))
	}
}
