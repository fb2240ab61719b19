package arraylist

import "unsafe"

// Mutable marks a cursor that may write through to the element it references.
type Mutable struct{}

// Const marks a read-only cursor.
type Const struct{}

// Mode is the capability parameter of a Cursor.
type Mode interface {
	Mutable | Const
}

// Cursor is a random-access position inside a list's storage. It never owns
// the storage; copying a cursor is cheap and unrestricted.
//
// A cursor is invalidated by any operation that reallocates, clears or
// replaces the list's buffer (Insert or Add that grows, Clear, Assign,
// MoveFrom, Swap). An invalidated cursor still compares, but it aliases the
// old block and reading through it yields stale or zero values.
// Moving a cursor outside [Begin, End] and then dereferencing it panics.
type Cursor[T any, M Mode] struct {
	data []T
	pos  int
}

// Iterator is a cursor that can modify the referenced element.
type Iterator[T any] = Cursor[T, Mutable]

// ConstIterator is a cursor that can only read the referenced element.
type ConstIterator[T any] = Cursor[T, Const]

func cursorAt[M Mode, T any](data []T, pos int) Cursor[T, M] {
	return Cursor[T, M]{data: data, pos: pos}
}

// Pos returns the cursor's offset from the first slot of its block.
func (c Cursor[T, M]) Pos() int {
	return c.pos
}

// Equal reports whether c and o refer to the same position of the same block.
func (c Cursor[T, M]) Equal(o Cursor[T, M]) bool {
	return c.pos == o.pos && unsafe.SliceData(c.data) == unsafe.SliceData(o.data)
}

// Less reports whether c precedes o. Both must come from the same block.
func (c Cursor[T, M]) Less(o Cursor[T, M]) bool {
	return c.pos < o.pos
}

// Value returns the referenced element.
func (c Cursor[T, M]) Value() T {
	return c.data[c.pos]
}

// Index returns the element n positions away; c.Index(n) == c.Add(n).Value().
func (c Cursor[T, M]) Index(n int) T {
	return c.data[c.pos+n]
}

// Add returns a cursor n positions forward (backward for negative n).
func (c Cursor[T, M]) Add(n int) Cursor[T, M] {
	c.pos += n
	return c
}

// Sub returns a cursor n positions backward.
func (c Cursor[T, M]) Sub(n int) Cursor[T, M] {
	return c.Add(-n)
}

// Next returns the cursor one position forward.
func (c Cursor[T, M]) Next() Cursor[T, M] {
	return c.Add(1)
}

// Prev returns the cursor one position backward.
func (c Cursor[T, M]) Prev() Cursor[T, M] {
	return c.Add(-1)
}

// Advance moves c forward by n and returns it.
func (c *Cursor[T, M]) Advance(n int) *Cursor[T, M] {
	c.pos += n
	return c
}

// Retreat moves c backward by n and returns it.
func (c *Cursor[T, M]) Retreat(n int) *Cursor[T, M] {
	return c.Advance(-n)
}

// Inc moves c forward by one and returns it.
func (c *Cursor[T, M]) Inc() *Cursor[T, M] {
	return c.Advance(1)
}

// Dec moves c backward by one and returns it.
func (c *Cursor[T, M]) Dec() *Cursor[T, M] {
	return c.Advance(-1)
}

// PostInc moves c forward by one and returns its previous position.
func (c *Cursor[T, M]) PostInc() Cursor[T, M] {
	prev := *c
	c.pos++
	return prev
}

// PostDec moves c backward by one and returns its previous position.
func (c *Cursor[T, M]) PostDec() Cursor[T, M] {
	prev := *c
	c.pos--
	return prev
}

// Distance returns the signed number of positions from o to c.
func (c Cursor[T, M]) Distance(o Cursor[T, M]) int {
	return c.pos - o.pos
}

// Const returns a read-only cursor at the same position.
func (c Cursor[T, M]) Const() Cursor[T, Const] {
	return Cursor[T, Const]{data: c.data, pos: c.pos}
}

// Offset returns c moved n positions; Offset(n, c) equals c.Add(n).
func Offset[T any, M Mode](n int, c Cursor[T, M]) Cursor[T, M] {
	return c.Add(n)
}

// Ptr returns a pointer to the element referenced by c.
func Ptr[T any](c Iterator[T]) *T {
	return &c.data[c.pos]
}

// PtrAt returns a pointer to the element n positions away from c.
func PtrAt[T any](c Iterator[T], n int) *T {
	return Ptr(c.Add(n))
}

// Store overwrites the element referenced by c.
func Store[T any](c Iterator[T], v T) {
	*Ptr(c) = v
}
