package ui

import "time"

// frameRing keeps the most recent frame intervals for the fps readout.
type frameRing struct {
	buf  []time.Duration
	size int
	w    int // write position
	len  int // current fill level
	sum  time.Duration
}

func newFrameRing(size int) *frameRing {
	if size < 1 {
		size = 1
	}
	return &frameRing{
		buf:  make([]time.Duration, size),
		size: size,
	}
}

// Push records one frame interval, dropping the oldest once full.
func (r *frameRing) Push(d time.Duration) {
	if d <= 0 {
		return
	}
	if r.len == r.size {
		r.sum -= r.buf[r.w]
	} else {
		r.len++
	}
	r.buf[r.w] = d
	r.sum += d
	r.w = (r.w + 1) % r.size
}

// FPS returns the average frame rate over the buffered intervals.
func (r *frameRing) FPS() float64 {
	if r.len == 0 || r.sum <= 0 {
		return 0
	}
	return float64(r.len) / r.sum.Seconds()
}

// Clear resets the buffer.
func (r *frameRing) Clear() {
	r.w = 0
	r.len = 0
	r.sum = 0
}
