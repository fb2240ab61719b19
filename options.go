package arraylist

import "math"

// DefaultMaxCapacity is the default upper bound on a list's capacity.
const DefaultMaxCapacity = math.MaxInt32

type options struct {
	tracker     *Tracker
	maxCapacity int
}

// Option configures a List.
type Option func(*options)

// WithTracker records the list's allocations and frees on t.
func WithTracker(t *Tracker) Option {
	return func(o *options) {
		o.tracker = t
	}
}

// WithMaxCapacity limits the number of slots the list may allocate.
// If n <= 0, DefaultMaxCapacity is used.
//
// Growth by Add or Insert doubles the capacity from 1, so it stops at the
// largest power of two not above n. Only NewFilled, Clone and Assign can
// allocate exactly n slots.
func WithMaxCapacity(n int) Option {
	return func(o *options) {
		if n <= 0 {
			n = DefaultMaxCapacity
		}
		o.maxCapacity = n
	}
}

func newOptions(opts []Option) options {
	o := options{maxCapacity: DefaultMaxCapacity}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// limit returns the effective capacity bound; the zero options value means
// DefaultMaxCapacity.
func (o options) limit() int {
	if o.maxCapacity <= 0 {
		return DefaultMaxCapacity
	}
	return o.maxCapacity
}
