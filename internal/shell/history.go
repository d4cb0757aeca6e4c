package shell

import "time"

// FrameRing is a circular buffer of frame intervals for the performance
// monitor readout.
type FrameRing struct {
	buf   []time.Duration
	pos   int
	count int
}

// NewFrameRing creates a new circular buffer with the given capacity.
func NewFrameRing(capacity int) *FrameRing {
	return &FrameRing{
		buf: make([]time.Duration, capacity),
	}
}

// Push adds an interval to the ring buffer.
func (r *FrameRing) Push(d time.Duration) {
	r.buf[r.pos] = d
	r.pos = (r.pos + 1) % len(r.buf)
	if r.count < len(r.buf) {
		r.count++
	}
}

// Avg returns the mean stored interval, or 0 if empty.
func (r *FrameRing) Avg() time.Duration {
	if r.count == 0 {
		return 0
	}
	var sum time.Duration
	if r.count < len(r.buf) {
		for _, d := range r.buf[:r.count] {
			sum += d
		}
	} else {
		for _, d := range r.buf {
			sum += d
		}
	}
	return sum / time.Duration(r.count)
}

// Len returns the number of stored intervals.
func (r *FrameRing) Len() int {
	return r.count
}
