// Package arraylist implements a dynamically-resizable array list for Go
// with all-or-nothing mutations and explicit storage ownership.
//
// # Overview
//
// A List keeps its elements in one contiguous block owned by a Buffer. The
// Buffer is the only place storage changes hands: it adopts a block, frees
// it exactly once, releases it to a caller, or swaps it with another Buffer.
// Every List method either completes or leaves the list exactly as it was,
// including when an allocation limit is hit or an element's Clone fails.
//
// # Basic Usage
//
//	l := arraylist.New[int]()
//	defer l.Clear() // Free the storage when done
//
//	l.Add(10)        // [10]
//	l.Add(20)        // [10 20]
//	l.Insert(1, 15)  // [10 15 20]
//	l.Insert(5, 99)  // [10 15 20 0 0 99], gap filled with zero values
//
//	v, err := l.Get(7) // err is a *RangeError carrying index 7
//
// # Growth
//
// Storage is allocated lazily. When an insert does not fit, capacity doubles
// (starting from 1) until it exceeds both the target index and the current
// size. The new block is fully built before it replaces the old one, so a
// failure leaves the old block untouched. Capacity never shrinks except
// through Clear.
//
// # Copying and Moving
//
// Lists must not be copied by value. Use:
//
//   - Clone for a deep copy
//   - Assign to replace contents with a deep copy (copy-and-swap)
//   - Move or MoveFrom to transfer storage without copying
//   - Swap to exchange contents in constant time
//
// Elements implementing Cloner are deep-copied whenever a value enters a
// list; other elements are copied by assignment.
//
// # Cursors
//
// Begin/End and CBegin/CEnd return random-access cursors for use with Fill,
// Copy, Equal and Distance. Iterator cursors can write through Ptr and Store;
// ConstIterator cursors are read-only. Cursors do not own storage and are
// invalidated by any operation that reallocates, clears or replaces it.
//
// # Allocation Accounting
//
// A Tracker shared through WithTracker records every allocation and free:
//
//	tr := arraylist.NewTracker()
//	l := arraylist.New[string](arraylist.WithTracker(tr))
//	...
//	l.Clear()
//	fmt.Println(tr.Metrics().Balanced()) // true
//
// The prommetrics subpackage exports a Tracker to Prometheus.
//
// # Thread Safety
//
// List is not safe for concurrent use. Tracker is.
package arraylist
