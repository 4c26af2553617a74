package vector

// Ops is the set of lifecycle primitives a Vector runs on its elements.
// Implementations are normally zero-size types; the Vector never stores one.
//
// Init and Move construct into a slot that holds no live value. MoveAssign
// writes into a live slot. Move leaves src live, in whatever moved-from state
// the type defines; its owner still destroys it. Destroy ends the lifetime of
// a live value.
type Ops[T any] interface {
	Init(dst *T) error
	Move(dst, src *T) error
	MoveAssign(dst, src *T) error
	Destroy(p *T)
}

// Copier is implemented by ops types whose elements can be copied.
type Copier[T any] interface {
	Copy(dst, src *T) error
	CopyAssign(dst, src *T) error
}

// NoFailMover marks ops types whose Move never returns an error.
type NoFailMover interface {
	MoveNeverFails()
}

// Plain runs ordinary Go values: the zero value is both the default and the
// moved-from state, and copying is a bit copy.
type Plain[T any] struct{}

func (Plain[T]) Init(dst *T) error {
	var zero T
	*dst = zero
	return nil
}

func (Plain[T]) Move(dst, src *T) error {
	var zero T
	*dst, *src = *src, zero
	return nil
}

func (p Plain[T]) MoveAssign(dst, src *T) error {
	return p.Move(dst, src)
}

func (Plain[T]) Copy(dst, src *T) error {
	*dst = *src
	return nil
}

func (Plain[T]) CopyAssign(dst, src *T) error {
	*dst = *src
	return nil
}

func (Plain[T]) Destroy(*T) {}

func (Plain[T]) MoveNeverFails() {}

// Of is a Vector of plain values.
type Of[T any] = Vector[T, Plain[T]]

func asCopier[T any, O Ops[T]](o O) (Copier[T], bool) {
	c, ok := any(o).(Copier[T])
	return c, ok
}

// relocatesByMove reports whether growth moves elements into the new block.
// Moving is chosen only when Move cannot fail or there is no copy to fall back on.
func relocatesByMove[T any, O Ops[T]](o O) bool {
	if _, ok := any(o).(NoFailMover); ok {
		return true
	}
	_, ok := asCopier[T](o)
	return !ok
}
