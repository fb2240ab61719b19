package arraylist

// Fill assigns v to every position in [first, last).
func Fill[T any](first, last Iterator[T], v T) {
	for it := first; it.Less(last); it.Inc() {
		Store(it, v)
	}
}

// Copy copies [first, last) to the range starting at dst and returns the
// cursor one past the last element written. Overlapping ranges are handled
// like memmove.
func Copy[T any, M Mode](first, last Cursor[T, M], dst Iterator[T]) Iterator[T] {
	n := last.Distance(first)
	if n <= 0 {
		return dst
	}
	copy(dst.data[dst.pos:dst.pos+n], first.data[first.pos:last.pos])
	return dst.Add(n)
}

// Equal reports whether [first1, last1) and the range of the same length
// starting at first2 hold equal elements.
func Equal[T comparable, M1, M2 Mode](first1, last1 Cursor[T, M1], first2 Cursor[T, M2]) bool {
	for it := first1; it.Less(last1); it.Inc() {
		if it.Value() != first2.Value() {
			return false
		}
		first2.Inc()
	}
	return true
}

// Distance returns the number of positions in [first, last).
func Distance[T any, M Mode](first, last Cursor[T, M]) int {
	return last.Distance(first)
}
