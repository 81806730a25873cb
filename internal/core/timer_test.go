package core

import (
	"testing"
	"time"
)

type fakeClock struct {
	now   time.Time
	slept []time.Duration
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Sleep(d time.Duration) {
	c.slept = append(c.slept, d)
	c.now = c.now.Add(d)
}

func TestFixedDelaySleepsRemainder(t *testing.T) {
	clock := &fakeClock{now: time.Unix(100, 0)}
	pacer := NewFixedDelay(16*time.Millisecond, clock)

	start := clock.now
	clock.now = clock.now.Add(5 * time.Millisecond)

	if got := pacer.Wait(start); got != 11*time.Millisecond {
		t.Fatalf("expected 11ms sleep, got %v", got)
	}
	if len(clock.slept) != 1 || clock.slept[0] != 11*time.Millisecond {
		t.Fatalf("unexpected sleeps %v", clock.slept)
	}
}

func TestFixedDelayDoesNotCatchUp(t *testing.T) {
	clock := &fakeClock{now: time.Unix(100, 0)}
	pacer := NewFixedDelay(16*time.Millisecond, clock)

	start := clock.now
	clock.now = clock.now.Add(40 * time.Millisecond)
	if got := pacer.Wait(start); got != 0 {
		t.Fatalf("overrun frame must not sleep, slept %v", got)
	}

	// The next frame gets the full budget again, not a shortened one.
	start = clock.now
	clock.now = clock.now.Add(1 * time.Millisecond)
	if got := pacer.Wait(start); got != 15*time.Millisecond {
		t.Fatalf("expected 15ms after overrun, got %v", got)
	}
	if len(clock.slept) != 1 {
		t.Fatalf("expected exactly one sleep, got %v", clock.slept)
	}
}

func TestFixedDelayExactFrameDoesNotSleep(t *testing.T) {
	clock := &fakeClock{now: time.Unix(0, 0)}
	pacer := NewFixedDelay(10*time.Millisecond, clock)
	start := clock.now
	clock.now = clock.now.Add(10 * time.Millisecond)
	if got := pacer.Wait(start); got != 0 {
		t.Fatalf("expected no sleep, got %v", got)
	}
}

func TestFixedDelayNegativeFrame(t *testing.T) {
	pacer := NewFixedDelay(-time.Second, &fakeClock{})
	if pacer.Frame() != 0 {
		t.Fatalf("expected frame to clamp to 0, got %v", pacer.Frame())
	}
}

func TestFrameCounterReportsOncePerSecond(t *testing.T) {
	base := time.Unix(50, 0)
	c := NewFrameCounter()
	c.Reset(base)

	for i := 1; i < 60; i++ {
		if _, ok := c.Tick(base.Add(time.Duration(i) * 16 * time.Millisecond)); ok {
			t.Fatalf("unexpected report at frame %d", i)
		}
	}
	fps, ok := c.Tick(base.Add(time.Second))
	if !ok {
		t.Fatal("expected a report once a full second elapsed")
	}
	if fps != 60 {
		t.Fatalf("expected 60 frames, got %d", fps)
	}
	if _, ok := c.Tick(base.Add(time.Second + 16*time.Millisecond)); ok {
		t.Fatal("counter must reset after reporting")
	}
}
