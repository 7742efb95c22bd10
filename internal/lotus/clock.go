package lotus

import (
	"sync/atomic"
	"time"
)

// Clock is the shared animation time source. It keeps running while the
// flower is paused; pausing freezes poses, not time.
type Clock interface {
	Elapsed() time.Duration
}

// WallClock measures time since it was created.
type WallClock struct {
	start time.Time
}

// NewWallClock starts a clock at the current instant.
func NewWallClock() *WallClock {
	return &WallClock{start: time.Now()}
}

func (c *WallClock) Elapsed() time.Duration {
	return time.Since(c.start)
}

// ManualClock only moves when told to.
type ManualClock struct {
	now atomic.Int64
}

// Set moves the clock to d.
func (c *ManualClock) Set(d time.Duration) {
	c.now.Store(int64(d))
}

// Advance moves the clock forward by d.
func (c *ManualClock) Advance(d time.Duration) {
	c.now.Add(int64(d))
}

func (c *ManualClock) Elapsed() time.Duration {
	return time.Duration(c.now.Load())
}
