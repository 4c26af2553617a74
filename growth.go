package vector

import (
	"github.com/rawbytedev/vector/internal/common"
	"github.com/rawbytedev/vector/pkg/rawmem"
)

// Reserve makes room for at least n elements. It never shrinks. On growth
// the block is reallocated to exactly n slots and the elements are
// relocated; a failure leaves v unchanged.
func (v *Vector[T, O]) Reserve(n int) error {
	if n <= v.data.Capacity() {
		return nil
	}
	data, err := rawmem.New[T](n)
	if err != nil {
		return err
	}
	if err := v.relocate(data.Slice(0, v.size), v.live()); err != nil {
		return err
	}
	v.adopt(&data)
	return nil
}

// Resize sets Len to n. Shrinking destroys the tail; growing reserves n
// slots and default-constructs the new tail. Capacity is never reduced.
func (v *Vector[T, O]) Resize(n int) error {
	common.Assert(n >= 0, "vector: negative size %d", n)
	if n <= v.size {
		v.destroyRange(v.data.Slice(n, v.size))
		v.size = n
		return nil
	}
	if err := v.Reserve(n); err != nil {
		return err
	}
	if err := v.initRange(v.data.Slice(v.size, n)); err != nil {
		return err
	}
	v.size = n
	return nil
}

// PushBack appends a copy of val. Types without a Copier are moved from val instead.
func (v *Vector[T, O]) PushBack(val T) error {
	_, err := v.EmplaceBack(v.fromValue(&val))
	return err
}

// PushBackMove appends by move-constructing from src. src stays live.
func (v *Vector[T, O]) PushBackMove(src *T) error {
	_, err := v.EmplaceBack(func(dst *T) error { return v.ops.Move(dst, src) })
	return err
}

// EmplaceBack constructs a new last element with ctor and returns a
// reference to it. ctor receives an empty slot.
//
// When the vector is full, the storage doubles. The new element is built in
// the new block before anything is relocated, so a failing ctor, a failing
// relocation or a failed allocation leaves v exactly as it was.
func (v *Vector[T, O]) EmplaceBack(ctor func(dst *T) error) (*T, error) {
	if v.size < v.data.Capacity() {
		slot := v.data.Index(v.size)
		if err := ctor(slot); err != nil {
			vacate(slot)
			return nil, err
		}
		v.size++
		return slot, nil
	}

	data, err := rawmem.New[T](v.grown())
	if err != nil {
		return nil, err
	}
	slot := data.Index(v.size)
	if err := ctor(slot); err != nil {
		return nil, err
	}
	if err := v.relocate(data.Slice(0, v.size), v.live()); err != nil {
		v.destroy(slot)
		return nil, err
	}
	v.adopt(&data)
	v.size++
	return slot, nil
}

// PopBack destroys the last element. Calling it on an empty vector is a
// programming error; debug builds assert, release builds panic on the
// out-of-range slot.
func (v *Vector[T, O]) PopBack() {
	common.Assert(v.size > 0, "vector: PopBack on empty vector")
	v.destroy(v.data.Index(v.size - 1))
	v.size--
}

func (v *Vector[T, O]) grown() int {
	return max(1, 2*v.data.Capacity())
}

// fromValue returns a ctor that copies val, or moves from it when T cannot be copied.
func (v *Vector[T, O]) fromValue(val *T) func(dst *T) error {
	if c, ok := asCopier[T](v.ops); ok {
		return func(dst *T) error { return c.Copy(dst, val) }
	}
	return func(dst *T) error { return v.ops.Move(dst, val) }
}

// relocate constructs dst from src, moving when that cannot fail or when no
// copy exists, copying otherwise. On failure every slot built in dst is
// destroyed again and src keeps its elements.
func (v *Vector[T, O]) relocate(dst, src []T) error {
	c, _ := asCopier[T](v.ops)
	byMove := relocatesByMove[T](v.ops)
	for i := range src {
		var err error
		if byMove {
			err = v.ops.Move(&dst[i], &src[i])
		} else {
			err = c.Copy(&dst[i], &src[i])
		}
		if err != nil {
			vacate(&dst[i])
			v.destroyRange(dst[:i])
			return err
		}
	}
	return nil
}

// adopt destroys the live elements of the current block and takes data as
// the new storage. data is left empty.
func (v *Vector[T, O]) adopt(data *rawmem.Buffer[T]) {
	v.destroyRange(v.live())
	v.data.MoveFrom(data)
}
