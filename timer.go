package nom

import (
	"math"
	"time"
)

// Clock is a monotonic time source. Now reports the time elapsed since an
// arbitrary fixed origin.
type Clock interface {
	Now() time.Duration
}

type systemClock struct{ origin time.Time }

func (c systemClock) Now() time.Duration { return time.Since(c.origin) }

var defaultClock Clock = systemClock{origin: time.Now()}

// SystemClock returns the process-wide monotonic wall clock.
func SystemClock() Clock { return defaultClock }

// FrameClock is a Clock that only moves when advanced. An ActionPlayer
// configured with a FrameClock advances it by the host's delta at the start
// of every Update, so action timers follow game time exactly.
type FrameClock struct {
	now time.Duration
}

// NewFrameClock returns a FrameClock at time zero.
func NewFrameClock() *FrameClock { return &FrameClock{} }

// Now returns the accumulated time.
func (c *FrameClock) Now() time.Duration { return c.now }

// Advance moves the clock forward by dt seconds. Negative, NaN and infinite
// values are ignored.
func (c *FrameClock) Advance(dt float64) {
	if !(dt > 0) || math.IsInf(dt, 1) {
		return
	}
	c.now += seconds(dt)
}

// seconds converts fractional seconds to a Duration, rounding to the nearest
// nanosecond so that e.g. ten steps of 0.1 add up to exactly one second.
func seconds(s float64) time.Duration {
	return time.Duration(math.Round(s * float64(time.Second)))
}

// Timer measures elapsed time on a Clock and can be paused. The zero value
// uses SystemClock.
type Timer struct {
	clock    Clock
	start    time.Duration
	pausedAt time.Duration
	started  bool
	paused   bool
}

// NewTimer returns a stopped timer reading the given clock.
func NewTimer(clock Clock) Timer {
	return Timer{clock: clock}
}

func (t *Timer) now() time.Duration {
	if t.clock == nil {
		return defaultClock.Now()
	}
	return t.clock.Now()
}

// SetClock switches the timer to another clock, preserving elapsed time if
// the timer is running.
func (t *Timer) SetClock(clock Clock) {
	if !t.started {
		t.clock = clock
		return
	}
	elapsed := t.Ticks()
	t.clock = clock
	now := t.now()
	t.start = now - elapsed
	if t.paused {
		t.pausedAt = now
	}
}

// Start starts (or restarts) the timer from zero.
func (t *Timer) Start() {
	t.StartAt(t.now())
}

// StartAt starts the timer as if it had been started at the given clock
// reading. A reading in the past credits the timer with the difference.
func (t *Timer) StartAt(at time.Duration) {
	t.start = at
	t.started = true
	t.paused = false
	t.pausedAt = 0
}

// Stop stops the timer and resets elapsed time to zero.
func (t *Timer) Stop() {
	t.start = 0
	t.pausedAt = 0
	t.started = false
	t.paused = false
}

// Pause freezes elapsed time. No-op if the timer is stopped or already paused.
func (t *Timer) Pause() {
	if !t.started || t.paused {
		return
	}
	t.paused = true
	t.pausedAt = t.now()
}

// Unpause resumes a paused timer. Time spent paused is not counted.
func (t *Timer) Unpause() {
	if !t.paused {
		return
	}
	t.start += t.now() - t.pausedAt
	t.paused = false
	t.pausedAt = 0
}

// Started reports whether the timer is running or paused.
func (t *Timer) Started() bool { return t.started }

// Paused reports whether the timer is paused.
func (t *Timer) Paused() bool { return t.paused }

// Ticks returns the elapsed time, or zero if the timer is stopped.
func (t *Timer) Ticks() time.Duration {
	switch {
	case !t.started:
		return 0
	case t.paused:
		return t.pausedAt - t.start
	default:
		return t.now() - t.start
	}
}

// Seconds returns Ticks in fractional seconds.
func (t *Timer) Seconds() float64 {
	return t.Ticks().Seconds()
}
