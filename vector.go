// Package vector implements a growable, contiguous sequence with value
// semantics over an arbitrary element type.
//
// A Vector owns one rawmem.Buffer. Slots [0, Len()) hold live elements,
// slots [Len(), Cap()) hold nothing and are never read. Element lifetimes
// are driven through the Ops type parameter, so types with resources,
// copy restrictions or fallible construction are handled the same way as
// plain values (see Plain and Of).
//
// A Vector is not safe for concurrent use.
package vector

import (
	"errors"
	"iter"

	"github.com/rawbytedev/vector/internal/common"
	"github.com/rawbytedev/vector/pkg/rawmem"
)

var (
	ErrNotCopyable = errors.New("vector: element type is not copyable")
)

type Vector[T any, O Ops[T]] struct {
	data rawmem.Buffer[T]
	size int
	ops  O
}

// New returns an empty vector with no storage. The zero Vector is equivalent.
func New[T any, O Ops[T]]() *Vector[T, O] {
	return &Vector[T, O]{}
}

// NewSized returns a vector holding n default-constructed elements with
// capacity exactly n. If an element fails to construct, the ones built
// before it are destroyed and the error is returned.
func NewSized[T any, O Ops[T]](n int) (*Vector[T, O], error) {
	v := &Vector[T, O]{}
	data, err := rawmem.New[T](n)
	if err != nil {
		return nil, err
	}
	if err := v.initRange(data.Slice(0, n)); err != nil {
		return nil, err
	}
	v.data, v.size = data, n
	return v, nil
}

// Clone returns an independent copy with capacity equal to v.Len().
func (v *Vector[T, O]) Clone() (*Vector[T, O], error) {
	c, ok := asCopier[T](v.ops)
	if !ok {
		return nil, ErrNotCopyable
	}
	data, err := rawmem.New[T](v.size)
	if err != nil {
		return nil, err
	}
	dst := data.Slice(0, v.size)
	src := v.live()
	for i := range dst {
		if err := c.Copy(&dst[i], &src[i]); err != nil {
			vacate(&dst[i])
			v.destroyRange(dst[:i])
			return nil, err
		}
	}
	return &Vector[T, O]{data: data, size: v.size, ops: v.ops}, nil
}

// Take moves v's contents into a new vector in O(1). v is left empty.
func (v *Vector[T, O]) Take() *Vector[T, O] {
	out := &Vector[T, O]{ops: v.ops}
	out.data.MoveFrom(&v.data)
	out.size, v.size = v.size, 0
	return out
}

// Assign replaces v's contents with a copy of rhs.
//
// When v lacks the capacity for rhs, a full copy is built first and swapped
// in; a failure leaves v untouched. Otherwise v's storage is reused: the
// common prefix is copy-assigned, then the tail is either destroyed or
// copy-constructed. A failure on that path leaves v valid but partially
// updated.
func (v *Vector[T, O]) Assign(rhs *Vector[T, O]) error {
	if v == rhs {
		return nil
	}
	c, ok := asCopier[T](v.ops)
	if !ok {
		return ErrNotCopyable
	}
	if rhs.size > v.data.Capacity() {
		tmp, err := rhs.Clone()
		if err != nil {
			return err
		}
		v.Swap(tmp)
		tmp.Destroy()
		return nil
	}

	dst, src := v.data.Offset(0), rhs.live()
	prefix := min(v.size, rhs.size)
	for i := 0; i < prefix; i++ {
		if err := c.CopyAssign(&dst[i], &src[i]); err != nil {
			return err
		}
	}
	if v.size > rhs.size {
		v.destroyRange(dst[rhs.size:v.size])
		v.size = rhs.size
		return nil
	}
	for ; v.size < rhs.size; v.size++ {
		if err := c.Copy(&dst[v.size], &src[v.size]); err != nil {
			vacate(&dst[v.size])
			return err
		}
	}
	return nil
}

// MoveAssign exchanges v's contents with rhs unless they are the same vector.
func (v *Vector[T, O]) MoveAssign(rhs *Vector[T, O]) {
	if v != rhs {
		v.Swap(rhs)
	}
}

// Swap exchanges contents with other in O(1).
func (v *Vector[T, O]) Swap(other *Vector[T, O]) {
	v.data.Swap(&other.data)
	v.size, other.size = other.size, v.size
}

// Destroy ends every live element, in index order, then releases the
// storage. The vector is empty afterwards and may be reused.
func (v *Vector[T, O]) Destroy() {
	v.destroyRange(v.live())
	v.size = 0
	v.data.Release()
}

// Clear destroys every live element but keeps the storage.
func (v *Vector[T, O]) Clear() {
	v.destroyRange(v.live())
	v.size = 0
}

func (v *Vector[T, O]) Len() int { return v.size }
func (v *Vector[T, O]) Cap() int { return v.data.Capacity() }
func (v *Vector[T, O]) Empty() bool { return v.size == 0 }

// Footprint is the size in bytes of the storage block, live or not.
func (v *Vector[T, O]) Footprint() uint64 { return v.data.Bytes() }

// At returns a reference to element i. The reference is invalidated by
// any operation that reallocates.
func (v *Vector[T, O]) At(i int) *T {
	common.Assert(i >= 0 && i < v.size, "vector: index %d out of range [0:%d]", i, v.size)
	return v.data.Index(i)
}

func (v *Vector[T, O]) Front() *T { return v.At(0) }

func (v *Vector[T, O]) Back() *T { return v.At(v.size - 1) }

// Slice returns the live elements as a slice sharing v's storage.
// Appending to it does not grow v.
func (v *Vector[T, O]) Slice() []T {
	return v.live()
}

// All yields index and reference for each live element in order.
func (v *Vector[T, O]) All() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(i, v.data.Index(i)) {
				return
			}
		}
	}
}

// Values yields a copy of each live element in order.
func (v *Vector[T, O]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(*v.data.Index(i)) {
				return
			}
		}
	}
}

func (v *Vector[T, O]) live() []T {
	return v.data.Slice(0, v.size)
}

// initRange default-constructs every slot of dst, or none of them.
func (v *Vector[T, O]) initRange(dst []T) error {
	for i := range dst {
		if err := v.ops.Init(&dst[i]); err != nil {
			vacate(&dst[i])
			v.destroyRange(dst[:i])
			return err
		}
	}
	return nil
}

// destroyRange ends each live value in s and leaves the slots zeroed.
func (v *Vector[T, O]) destroyRange(s []T) {
	for i := range s {
		v.destroy(&s[i])
	}
}

func (v *Vector[T, O]) destroy(p *T) {
	v.ops.Destroy(p)
	vacate(p)
}

// vacate returns a slot to the empty state without running any hook.
func vacate[T any](p *T) {
	var zero T
	*p = zero
}
