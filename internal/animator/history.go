package animator

import "time"

// IntervalRing is a circular buffer of recent tick intervals.
type IntervalRing struct {
	buf   []time.Duration
	pos   int
	count int
}

// NewIntervalRing creates a ring holding up to capacity intervals, at
// least one.
func NewIntervalRing(capacity int) *IntervalRing {
	if capacity < 1 {
		capacity = 1
	}
	return &IntervalRing{
		buf: make([]time.Duration, capacity),
	}
}

// Push records an interval, overwriting the oldest once full.
func (r *IntervalRing) Push(d time.Duration) {
	r.buf[r.pos] = d
	r.pos = (r.pos + 1) % len(r.buf)
	if r.count < len(r.buf) {
		r.count++
	}
}

// Values returns the stored intervals oldest first.
func (r *IntervalRing) Values() []time.Duration {
	if r.count == 0 {
		return nil
	}
	result := make([]time.Duration, r.count)
	if r.count < len(r.buf) {
		copy(result, r.buf[:r.count])
	} else {
		n := copy(result, r.buf[r.pos:])
		copy(result[n:], r.buf[:r.pos])
	}
	return result
}

// Mean returns the average interval, or 0 if empty.
func (r *IntervalRing) Mean() time.Duration {
	if r.count == 0 {
		return 0
	}
	var sum time.Duration
	for _, d := range r.buf[:r.count] {
		sum += d
	}
	return sum / time.Duration(r.count)
}

// Reset empties the ring.
func (r *IntervalRing) Reset() {
	r.pos = 0
	r.count = 0
}

// Len returns the number of stored intervals.
func (r *IntervalRing) Len() int {
	return r.count
}
