package arraylist

import "sync"

// Tracker counts buffer allocations and frees. A single Tracker may be shared
// by lists owned by different goroutines, so all operations are
// mutex-protected. A nil *Tracker is valid and records nothing.
type Tracker struct {
	mu sync.Mutex

	allocs     int // allocations performed
	frees      int // allocations freed
	slotsAlloc int // slots handed out
	slotsFreed int // slots returned

	live      int // allocations currently owned by buffers attributed to this tracker
	liveSlots int
}

// NewTracker creates an empty Tracker.
func NewTracker() *Tracker {
	return &Tracker{}
}

func (t *Tracker) recordAlloc(slots int) {
	if t == nil {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.allocs++
	t.slotsAlloc += slots
	t.live++
	t.liveSlots += slots
}

func (t *Tracker) recordFree(slots int) {
	if t == nil {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.frees++
	t.slotsFreed += slots
	t.live--
	t.liveSlots -= slots
}

// transfer moves a live allocation of the given size from t to dst.
// Used when a Swap hands an allocation to a buffer attributed elsewhere.
func (t *Tracker) transfer(dst *Tracker, slots int) {
	if t == dst {
		return
	}
	if t != nil {
		t.mu.Lock()
		t.live--
		t.liveSlots -= slots
		t.mu.Unlock()
	}
	if dst != nil {
		dst.mu.Lock()
		dst.live++
		dst.liveSlots += slots
		dst.mu.Unlock()
	}
}

// Allocations returns the number of allocations recorded so far.
func (t *Tracker) Allocations() int {
	if t == nil {
		return 0
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.allocs
}

// Frees returns the number of frees recorded so far.
func (t *Tracker) Frees() int {
	if t == nil {
		return 0
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.frees
}

// Live returns the number of allocations currently owned by tracked buffers
// (or released to callers and not yet freed).
func (t *Tracker) Live() int {
	if t == nil {
		return 0
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.live
}

// LiveSlots returns the number of element slots in live allocations.
func (t *Tracker) LiveSlots() int {
	if t == nil {
		return 0
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.liveSlots
}

// Metrics returns a snapshot of tracker statistics.
func (t *Tracker) Metrics() TrackerMetrics {
	if t == nil {
		return TrackerMetrics{}
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	return TrackerMetrics{
		Allocations: t.allocs,
		Frees:       t.frees,
		SlotsAlloc:  t.slotsAlloc,
		SlotsFreed:  t.slotsFreed,
		Live:        t.live,
		LiveSlots:   t.liveSlots,
	}
}
