package arraylist

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

var (
	// ErrOutOfRange is returned by checked accessors for an index outside [0, Len()).
	ErrOutOfRange = errors.New("arraylist: index out of range")

	// ErrCapacityExceeded is returned when an allocation would exceed the
	// list's maximum capacity. The list is left unmodified.
	ErrCapacityExceeded = errors.New("arraylist: capacity exceeded")
)

// RangeError reports a checked access outside the logical size of a list.
type RangeError struct {
	Op    string // Operation that failed (e.g. "get", "remove")
	Index int    // Offending index
	Size  int    // Logical size at the time of the call
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("arraylist: %s: index %d out of range [0,%d)", e.Op, e.Index, e.Size)
}

// Unwrap makes errors.Is(err, ErrOutOfRange) hold for every RangeError.
func (e *RangeError) Unwrap() error {
	return ErrOutOfRange
}

func rangeError(op string, index, size int) error {
	return &RangeError{Op: op, Index: index, Size: size}
}
