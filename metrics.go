package arraylist

// TrackerMetrics contains allocation statistics recorded by a Tracker.
type TrackerMetrics struct {
	Allocations int // Allocations performed
	Frees       int // Allocations freed
	SlotsAlloc  int // Element slots allocated in total
	SlotsFreed  int // Element slots freed in total
	Live        int // Allocations not yet freed
	LiveSlots   int // Element slots in live allocations
}

// Balanced reports whether every recorded allocation has been freed.
func (m TrackerMetrics) Balanced() bool {
	return m.Live == 0 && m.LiveSlots == 0
}

// ListMetrics contains statistical information about a list.
type ListMetrics struct {
	Size        int     // Logically valid elements
	Capacity    int     // Allocated slots
	Utilization float64 // Ratio of size to capacity (0.0-1.0)
}

// Utilization returns the ratio of logical size to capacity (0.0 to 1.0).
// Returns 0.0 if the list has no capacity.
func (l *List[T]) Utilization() float64 {
	if l.capacity == 0 {
		return 0
	}
	return float64(l.size) / float64(l.capacity)
}

// Metrics returns a snapshot of list statistics.
func (l *List[T]) Metrics() ListMetrics {
	return ListMetrics{
		Size:        l.size,
		Capacity:    l.capacity,
		Utilization: l.Utilization(),
	}
}
