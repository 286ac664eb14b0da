package core

import "time"

// DefaultResizeDelay is the trailing-edge delay applied to window resizes.
const DefaultResizeDelay = 150 * time.Millisecond

// Debouncer collapses a burst of updates into the last one, delivered once
// the burst has been quiet for the configured delay.
type Debouncer[T any] struct {
	delay    time.Duration
	pending  bool
	value    T
	deadline time.Time
}

// NewDebouncer constructs a Debouncer with the given trailing delay.
func NewDebouncer[T any](delay time.Duration) *Debouncer[T] {
	if delay < 0 {
		delay = 0
	}
	return &Debouncer[T]{delay: delay}
}

// Trigger records v and pushes the deadline out to now+delay.
func (d *Debouncer[T]) Trigger(now time.Time, v T) {
	d.value = v
	d.pending = true
	d.deadline = now.Add(d.delay)
}

// Poll returns the latest value once the deadline has passed. It reports
// false while the burst is still active or nothing is pending.
func (d *Debouncer[T]) Poll(now time.Time) (T, bool) {
	var zero T
	if !d.pending || now.Before(d.deadline) {
		return zero, false
	}
	d.pending = false
	v := d.value
	d.value = zero
	return v, true
}

// Pending reports whether an update is waiting for its deadline.
func (d *Debouncer[T]) Pending() bool { return d.pending }
