package core

import "time"

// Clock supplies monotonic timestamps and blocking delays.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

// SystemClock is the wall clock backed by package time. time.Now carries a
// monotonic reading, so durations between its values are safe to compare.
type SystemClock struct{}

// Now returns the current time.
func (SystemClock) Now() time.Time { return time.Now() }

// Sleep pauses the calling goroutine for at least d.
func (SystemClock) Sleep(d time.Duration) { time.Sleep(d) }

// FixedDelay paces a loop by sleeping off whatever is left of the target
// frame duration. Overrunning frames are not compensated for later.
type FixedDelay struct {
	frame time.Duration
	clock Clock
}

// NewFixedDelay constructs a pacer for the given frame duration. A nil clock
// selects SystemClock.
func NewFixedDelay(frame time.Duration, clock Clock) *FixedDelay {
	if clock == nil {
		clock = SystemClock{}
	}
	f := &FixedDelay{clock: clock}
	f.SetFrame(frame)
	return f
}

// SetFrame changes the target frame duration. Non-positive values disable
// sleeping entirely.
func (f *FixedDelay) SetFrame(frame time.Duration) {
	if frame < 0 {
		frame = 0
	}
	f.frame = frame
}

// Frame reports the target frame duration.
func (f *FixedDelay) Frame() time.Duration { return f.frame }

// Clock exposes the clock used for timestamps and sleeping.
func (f *FixedDelay) Clock() Clock { return f.clock }

// Wait sleeps for the part of the frame that started at start which has not
// elapsed yet, and returns the duration slept.
func (f *FixedDelay) Wait(start time.Time) time.Duration {
	elapsed := f.clock.Now().Sub(start)
	if elapsed >= f.frame {
		return 0
	}
	remaining := f.frame - elapsed
	f.clock.Sleep(remaining)
	return remaining
}

// FrameCounter tallies frames and reports the count once per second.
type FrameCounter struct {
	window time.Duration
	count  int
	last   time.Time
}

// NewFrameCounter returns a counter that reports once per second.
func NewFrameCounter() *FrameCounter {
	return &FrameCounter{window: time.Second}
}

// Reset starts a fresh window at now.
func (c *FrameCounter) Reset(now time.Time) {
	c.count = 0
	c.last = now
}

// Tick records a frame finishing at now. When at least a full window has
// passed since the previous report it returns the frames counted in that
// window and resets.
func (c *FrameCounter) Tick(now time.Time) (int, bool) {
	if c.last.IsZero() {
		c.last = now
	}
	c.count++
	if now.Sub(c.last) < c.window {
		return 0, false
	}
	fps := c.count
	c.count = 0
	c.last = now
	return fps, true
}
