package arraylist

import "unsafe"

// noCopy may be embedded in structs which must not be copied after first use.
// go vet's copylocks check reports copies of any struct containing it.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Buffer is the sole owner of a contiguous block of T slots.
//
// A Buffer must not be copied: ownership moves only through Swap, Release
// and Reset. Freeing a block zeroes its slots and records the free on the
// buffer's Tracker exactly once.
type Buffer[T any] struct {
	noCopy  noCopy
	data    []T
	tracker *Tracker
}

// NewBuffer takes ownership of data (which may be nil). No allocation is
// performed; the block is not attributed to any tracker.
func NewBuffer[T any](data []T) *Buffer[T] {
	return &Buffer[T]{data: data}
}

// newTrackedBuffer takes ownership of data already recorded on t.
func newTrackedBuffer[T any](data []T, t *Tracker) *Buffer[T] {
	return &Buffer[T]{data: data, tracker: t}
}

// Get returns the owned block without transferring ownership.
func (b *Buffer[T]) Get() []T {
	return b.data
}

// Len returns the number of slots in the owned block.
func (b *Buffer[T]) Len() int {
	return len(b.data)
}

// NonEmpty reports whether the buffer owns a block.
func (b *Buffer[T]) NonEmpty() bool {
	return b.data != nil
}

// At returns a pointer to slot i. No range checking is performed beyond
// Go's own bounds check.
func (b *Buffer[T]) At(i int) *T {
	return &b.data[i]
}

// Swap exchanges the owned blocks of b and o. Tracker attribution follows
// the blocks. Never fails.
func (b *Buffer[T]) Swap(o *Buffer[T]) {
	if b == o {
		return
	}
	if b.tracker != o.tracker {
		if b.data != nil {
			b.tracker.transfer(o.tracker, cap(b.data))
		}
		if o.data != nil {
			o.tracker.transfer(b.tracker, cap(o.data))
		}
	}
	b.data, o.data = o.data, b.data
}

// Reset frees the owned block and takes ownership of data.
// If data is a view of the block already owned, the buffer adopts the view
// and nothing is freed.
func (b *Buffer[T]) Reset(data []T) {
	old := b.data
	b.data = data
	if old == nil || sameBlock(old, data) {
		return
	}
	clear(old[:cap(old)])
	b.tracker.recordFree(cap(old))
}

// Release relinquishes ownership of the block without freeing it.
// The buffer is empty afterwards.
func (b *Buffer[T]) Release() []T {
	data := b.data
	b.data = nil
	return data
}

// sameBlock reports whether a and b start at the same allocation. Their
// lengths may differ.
func sameBlock[T any](a, b []T) bool {
	if unsafe.SliceData(a) != unsafe.SliceData(b) {
		return false
	}
	// Zero-size elements share one address across allocations.
	var zero T
	return unsafe.Sizeof(zero) != 0 || cap(a) == cap(b)
}
