package arraylist

import (
	"fmt"
	"iter"
	"slices"

	"github.com/cockroachdb/errors"
)

// List is an array-backed list whose elements live in one contiguous block
// owned by a Buffer.
//
// Every method either completes or returns an error with the list unchanged.
// The zero value is an empty list ready to use. A List must not be copied;
// use Clone, Assign, Move or MoveFrom. List is not safe for concurrent use.
type List[T any] struct {
	buf      Buffer[T]
	size     int
	capacity int
	opts     options
}

// New creates an empty list. No storage is allocated until the first insert.
func New[T any](opts ...Option) *List[T] {
	l := &List[T]{opts: newOptions(opts)}
	l.buf.tracker = l.opts.tracker
	return l
}

// NewFilled creates a list of count elements, each a copy of value.
// Capacity equals count.
func NewFilled[T any](count int, value T, opts ...Option) (*List[T], error) {
	l := New[T](opts...)
	data, err := allocate[T](count, l.opts.limit(), l.opts.tracker)
	if err != nil {
		return nil, err
	}
	l.buf.Reset(data)
	built := false
	defer func() {
		if !built {
			l.buf.Reset(nil)
		}
	}()
	if err := fillClone(l.buf.Get(), value); err != nil {
		return nil, errors.Wrap(err, "arraylist: fill")
	}
	built = true
	l.size, l.capacity = count, count
	return l, nil
}

// Clone returns a deep copy of l with the same capacity and options.
func (l *List[T]) Clone() (*List[T], error) {
	return l.cloneWith(l.opts)
}

func (l *List[T]) cloneWith(o options) (*List[T], error) {
	c := &List[T]{opts: o}
	c.buf.tracker = o.tracker
	data, err := allocate[T](l.capacity, o.limit(), o.tracker)
	if err != nil {
		return nil, err
	}
	c.buf.Reset(data)
	built := false
	defer func() {
		// Also runs when Clone panics, so the block is never leaked.
		if !built {
			c.buf.Reset(nil)
		}
	}()
	if err := copyClone(c.buf.Get(), l.buf.Get()[:l.size]); err != nil {
		return nil, errors.Wrap(err, "arraylist: copy")
	}
	built = true
	c.size, c.capacity = l.size, l.capacity
	return c, nil
}

// Move returns a list that has taken over src's storage. src is left empty.
// No allocation or copying takes place.
func Move[T any](src *List[T]) *List[T] {
	l := &List[T]{opts: src.opts}
	l.buf.tracker = src.buf.tracker
	l.buf.Swap(&src.buf)
	l.size, l.capacity = src.size, src.capacity
	src.size, src.capacity = 0, 0
	return l
}

// Assign makes l a deep copy of src. The copy is built first and then
// swapped in, so on error l is left exactly as it was.
// Assigning a list to itself is a no-op.
func (l *List[T]) Assign(src *List[T]) error {
	if l == src {
		return nil
	}
	tmp, err := src.cloneWith(l.opts)
	if err != nil {
		return err
	}
	l.Swap(tmp)
	tmp.Clear()
	return nil
}

// MoveFrom frees l's storage and takes over src's. src is left empty.
// Moving a list into itself is a no-op.
func (l *List[T]) MoveFrom(src *List[T]) {
	if l == src {
		return
	}
	l.buf.Reset(nil)
	l.buf.Swap(&src.buf)
	l.size, l.capacity = src.size, src.capacity
	src.size, src.capacity = 0, 0
}

// Swap exchanges the contents of l and o in constant time.
func (l *List[T]) Swap(o *List[T]) {
	if l == o {
		return
	}
	l.buf.Swap(&o.buf)
	l.size, o.size = o.size, l.size
	l.capacity, o.capacity = o.capacity, l.capacity
}

// Add appends value and returns the capacity afterwards.
func (l *List[T]) Add(value T) (int, error) {
	return l.Insert(l.size, value)
}

// Insert places value at index, shifting later elements right, and returns
// the capacity afterwards. Inserting past the end fills the gap with zero
// values and makes index the last element.
//
// When the list must grow, capacity doubles (starting from 1) until it
// exceeds both index and the current size. The new block is fully built
// before it replaces the old one.
func (l *List[T]) Insert(index int, value T) (int, error) {
	if index < 0 {
		return l.capacity, rangeError("insert", index, l.size)
	}
	v, err := copyElem(value)
	if err != nil {
		return l.capacity, errors.Wrap(err, "arraylist: insert")
	}

	if index < l.capacity && l.size < l.capacity {
		data := l.buf.Get()
		if index < l.size {
			Copy(cursorAt[Const](data, index), cursorAt[Const](data, l.size), cursorAt[Mutable](data, index+1))
			data[index] = v
			l.size++
		} else {
			Fill(cursorAt[Mutable](data, l.size), cursorAt[Mutable](data, index), *new(T))
			data[index] = v
			l.size = index + 1
		}
		return l.capacity, nil
	}

	newCap, err := l.grownCapacity(index)
	if err != nil {
		return l.capacity, err
	}
	tmp, err := allocate[T](newCap, l.opts.limit(), l.buf.tracker)
	if err != nil {
		return l.capacity, err
	}

	old := l.buf.Get()
	split := min(index, l.size)
	Copy(cursorAt[Const](old, 0), cursorAt[Const](old, split), cursorAt[Mutable](tmp, 0))
	size := index + 1
	if index < l.size {
		Copy(cursorAt[Const](old, index), cursorAt[Const](old, l.size), cursorAt[Mutable](tmp, index+1))
		size = l.size + 1
	} else {
		Fill(cursorAt[Mutable](tmp, split), cursorAt[Mutable](tmp, index), *new(T))
	}
	tmp[index] = v

	l.buf.Reset(tmp)
	l.size, l.capacity = size, newCap
	return l.capacity, nil
}

// grownCapacity doubles the capacity until it exceeds both index and size.
func (l *List[T]) grownCapacity(index int) (int, error) {
	limit := l.opts.limit()
	c := l.capacity
	if c == 0 {
		c = 1
	}
	for index >= c || l.size >= c {
		if c > limit-c {
			return 0, errors.Wrapf(ErrCapacityExceeded, "insert at %d (size %d, limit %d)", index, l.size, limit)
		}
		c *= 2
	}
	return c, nil
}

// Clear frees the storage and leaves the list empty.
func (l *List[T]) Clear() {
	l.buf.Reset(nil)
	l.size, l.capacity = 0, 0
}

func (l *List[T]) checkRange(op string, index int) error {
	if index < 0 || index >= l.size {
		return rangeError(op, index, l.size)
	}
	return nil
}

// slot is the single indexing path shared by all accessors.
func (l *List[T]) slot(index int) *T {
	return l.buf.At(index)
}

// Get returns the element at index, or a *RangeError if index is outside
// [0, Len()).
func (l *List[T]) Get(index int) (T, error) {
	if err := l.checkRange("get", index); err != nil {
		var zero T
		return zero, err
	}
	return *l.slot(index), nil
}

// GetRef returns a pointer to the element at index, or a *RangeError if
// index is outside [0, Len()). The pointer is invalidated by growth.
func (l *List[T]) GetRef(index int) (*T, error) {
	if err := l.checkRange("get", index); err != nil {
		return nil, err
	}
	return l.slot(index), nil
}

// At returns the element at index without range checking against Len().
func (l *List[T]) At(index int) T {
	return *l.slot(index)
}

// Ref returns a pointer to the element at index without range checking
// against Len().
func (l *List[T]) Ref(index int) *T {
	return l.slot(index)
}

// Set overwrites the element at index with a copy of value.
func (l *List[T]) Set(index int, value T) error {
	if err := l.checkRange("set", index); err != nil {
		return err
	}
	v, err := copyElem(value)
	if err != nil {
		return errors.Wrap(err, "arraylist: set")
	}
	*l.slot(index) = v
	return nil
}

// Remove deletes the element at index, shifting later elements left.
func (l *List[T]) Remove(index int) error {
	if err := l.checkRange("remove", index); err != nil {
		return err
	}
	data := l.buf.Get()
	Copy(cursorAt[Const](data, index+1), cursorAt[Const](data, l.size), cursorAt[Mutable](data, index))
	l.size--
	var zero T
	data[l.size] = zero
	return nil
}

// IsEmpty reports whether the list has no elements.
func (l *List[T]) IsEmpty() bool {
	return l.size == 0
}

// Len returns the logical size of the list.
func (l *List[T]) Len() int {
	return l.size
}

// Cap returns the number of allocated slots.
func (l *List[T]) Cap() int {
	return l.capacity
}

// Begin returns a cursor to the first element.
func (l *List[T]) Begin() Iterator[T] {
	return cursorAt[Mutable](l.buf.Get(), 0)
}

// End returns the past-the-end cursor.
func (l *List[T]) End() Iterator[T] {
	return cursorAt[Mutable](l.buf.Get(), l.size)
}

// CBegin returns a read-only cursor to the first element.
func (l *List[T]) CBegin() ConstIterator[T] {
	return cursorAt[Const](l.buf.Get(), 0)
}

// CEnd returns the read-only past-the-end cursor.
func (l *List[T]) CEnd() ConstIterator[T] {
	return cursorAt[Const](l.buf.Get(), l.size)
}

// Values returns a copy of the elements in order.
func (l *List[T]) Values() []T {
	return slices.Clone(l.buf.Get()[:l.size])
}

// All returns an iterator over index/element pairs.
func (l *List[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < l.size; i++ {
			if !yield(i, *l.slot(i)) {
				return
			}
		}
	}
}

func (l *List[T]) String() string {
	return fmt.Sprint(l.Values())
}
