package vector_test

import (
	"fmt"

	"github.com/rawbytedev/vector"
)

func Example() {
	var v vector.Of[int]
	for _, x := range []int{1, 2, 3} {
		_ = v.PushBack(x)
	}
	_, _ = v.Insert(1, 42)
	_, _ = v.Erase(0)
	fmt.Println(v.Slice(), v.Len(), v.Cap())

	_ = v.Resize(5)
	fmt.Println(v.Slice())
	// Output:
	// [42 2 3] 3 4
	// [42 2 3 0 0]
}

// handle owns an external resource; copies are forbidden.
type handle struct {
	fd     int
	closed *[]int
}

type handleOps struct{}

func (handleOps) Init(dst *handle) error {
	*dst = handle{fd: -1}
	return nil
}

func (handleOps) Move(dst, src *handle) error {
	*dst = *src
	src.fd = -1
	return nil
}

func (o handleOps) MoveAssign(dst, src *handle) error {
	o.Destroy(dst)
	return o.Move(dst, src)
}

func (handleOps) Destroy(h *handle) {
	if h.fd >= 0 && h.closed != nil {
		*h.closed = append(*h.closed, h.fd)
	}
}

func (handleOps) MoveNeverFails() {}

func Example_moveOnly() {
	var closed []int
	v := vector.New[handle, handleOps]()
	for fd := 3; fd < 6; fd++ {
		_, _ = v.EmplaceBack(func(dst *handle) error {
			*dst = handle{fd: fd, closed: &closed}
			return nil
		})
	}
	_, err := v.Clone()
	fmt.Println(err)

	_, _ = v.Erase(0)
	v.Destroy()
	fmt.Println(closed)
	// Output:
	// vector: element type is not copyable
	// [3 4 5]
}
