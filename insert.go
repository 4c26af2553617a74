package vector

import (
	"github.com/rawbytedev/vector/internal/common"
	"github.com/rawbytedev/vector/pkg/rawmem"
)

// Insert places a copy of val before position pos, 0 <= pos <= Len(), and
// returns pos. Types without a Copier are moved from val instead.
func (v *Vector[T, O]) Insert(pos int, val T) (int, error) {
	return v.Emplace(pos, v.fromValue(&val))
}

// InsertMove places an element move-constructed from src before pos.
func (v *Vector[T, O]) InsertMove(pos int, src *T) (int, error) {
	return v.Emplace(pos, func(dst *T) error { return v.ops.Move(dst, src) })
}

// Emplace constructs a new element with ctor at position pos and returns pos.
//
// With spare capacity the element is built in a temporary first, then the
// tail is shifted one slot right and the temporary is move-assigned into
// place. If a shift step fails, the element already constructed past the
// old end is kept so Len grows by one and nothing leaks; contents are then
// partially shifted.
//
// When full, the storage doubles: the element is built at pos in the new
// block, then the prefix and suffix are relocated around it. Any failure
// destroys what was built in the new block and leaves v as it was. A
// successful reallocation invalidates every reference into v.
func (v *Vector[T, O]) Emplace(pos int, ctor func(dst *T) error) (int, error) {
	common.Assert(pos >= 0 && pos <= v.size, "vector: insert position %d out of range [0:%d]", pos, v.size)
	if v.size < v.data.Capacity() {
		return pos, v.emplaceInPlace(pos, ctor)
	}

	data, err := rawmem.New[T](v.grown())
	if err != nil {
		return pos, err
	}
	slot := data.Index(pos)
	if err := ctor(slot); err != nil {
		vacate(slot)
		return pos, err
	}
	src := v.live()
	if err := v.relocate(data.Slice(0, pos), src[:pos]); err != nil {
		v.destroy(slot)
		return pos, err
	}
	if err := v.relocate(data.Slice(pos+1, v.size+1), src[pos:]); err != nil {
		v.destroyRange(data.Slice(0, pos+1))
		return pos, err
	}
	v.adopt(&data)
	v.size++
	return pos, nil
}

func (v *Vector[T, O]) emplaceInPlace(pos int, ctor func(dst *T) error) error {
	s := v.data.Slice(0, v.size+1)
	if pos == v.size {
		if err := ctor(&s[pos]); err != nil {
			vacate(&s[pos])
			return err
		}
		v.size++
		return nil
	}

	var tmp T
	if err := ctor(&tmp); err != nil {
		return err
	}
	defer v.ops.Destroy(&tmp)

	last := v.size
	if err := v.ops.Move(&s[last], &s[last-1]); err != nil {
		vacate(&s[last])
		return err
	}
	v.size++
	for i := last - 1; i > pos; i-- {
		if err := v.ops.MoveAssign(&s[i], &s[i-1]); err != nil {
			return err
		}
	}
	return v.ops.MoveAssign(&s[pos], &tmp)
}

// Erase removes the element at pos, 0 <= pos < Len(), and returns pos,
// which now indexes the element that followed it. The tail is shifted left
// by move-assignment; a failing step stops the shift and is returned with
// no rollback.
func (v *Vector[T, O]) Erase(pos int) (int, error) {
	common.Assert(pos >= 0 && pos < v.size, "vector: erase position %d out of range [0:%d]", pos, v.size)
	s := v.live()
	for i := pos; i < len(s)-1; i++ {
		if err := v.ops.MoveAssign(&s[i], &s[i+1]); err != nil {
			return pos, err
		}
	}
	v.PopBack()
	return pos, nil
}
