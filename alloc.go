package arraylist

import "github.com/cockroachdb/errors"

// Cloner is implemented by element types that need a deep copy when a value
// enters a list. A Clone error aborts the operation and leaves the list
// unmodified.
type Cloner[T any] interface {
	Clone() (T, error)
}

// allocate returns a zeroed block of n slots recorded on t.
// It fails with ErrCapacityExceeded if n exceeds limit.
func allocate[T any](n, limit int, t *Tracker) ([]T, error) {
	if n < 0 || n > limit {
		return nil, errors.Wrapf(ErrCapacityExceeded, "allocate %d slots (limit %d)", n, limit)
	}
	if n == 0 {
		return nil, nil
	}
	data := make([]T, n)
	t.recordAlloc(n)
	return data, nil
}

// copyElem returns a copy of v suitable for storing in a list.
func copyElem[T any](v T) (T, error) {
	if c, ok := any(v).(Cloner[T]); ok {
		return c.Clone()
	}
	return v, nil
}

// fillClone stores a copy of v in every slot of dst.
func fillClone[T any](dst []T, v T) error {
	if _, ok := any(v).(Cloner[T]); !ok {
		for i := range dst {
			dst[i] = v
		}
		return nil
	}
	for i := range dst {
		c, err := copyElem(v)
		if err != nil {
			return errors.Wrapf(err, "clone element %d", i)
		}
		dst[i] = c
	}
	return nil
}

// copyClone stores a copy of every element of src into dst.
// len(dst) must be at least len(src).
func copyClone[T any](dst, src []T) error {
	for i := range src {
		c, err := copyElem(src[i])
		if err != nil {
			return errors.Wrapf(err, "clone element %d", i)
		}
		dst[i] = c
	}
	return nil
}
