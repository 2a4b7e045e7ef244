// Package timer provides the frame-driven countdown used by cooldowns and mode
// progression. Timers never read the wall clock; they only advance by the delta
// they are ticked with.
package timer

import "time"

// Mode selects what happens when a timer reaches its duration.
type Mode int

const (
	// Once timers stop at their duration and stay finished.
	Once Mode = iota
	// Repeating timers wrap around and report how many periods completed.
	Repeating
)

// Timer counts elapsed time toward a fixed duration.
type Timer struct {
	duration time.Duration
	elapsed  time.Duration
	mode     Mode
	finished bool
	laps     int // periods completed during the last Tick
}

// New creates a timer of the given duration. Negative durations are treated as zero.
func New(d time.Duration, mode Mode) Timer {
	return Timer{duration: max(d, 0), mode: mode}
}

// Tick advances the timer by dt. Negative deltas are ignored.
func (t *Timer) Tick(dt time.Duration) {
	t.laps = 0
	if dt < 0 {
		dt = 0
	}

	switch t.mode {
	case Repeating:
		if t.duration == 0 {
			t.laps = 1
			t.finished = true
			return
		}
		t.elapsed += dt
		t.laps = int(t.elapsed / t.duration)
		t.elapsed %= t.duration
		t.finished = t.laps > 0

	default:
		if t.finished {
			return
		}
		t.elapsed += dt
		if t.elapsed >= t.duration {
			t.elapsed = t.duration
			t.finished = true
			t.laps = 1
		}
	}
}

// Finished reports whether a Once timer has reached its duration, or whether a
// Repeating timer completed at least one period during the last Tick.
func (t Timer) Finished() bool {
	return t.finished
}

// JustFinished reports whether the last Tick crossed the duration.
func (t Timer) JustFinished() bool {
	return t.laps > 0
}

// Laps returns how many periods completed during the last Tick.
func (t Timer) Laps() int {
	return t.laps
}

// Remaining returns the time left in the current period, never below zero.
func (t Timer) Remaining() time.Duration {
	return max(t.duration-t.elapsed, 0)
}

// Elapsed returns the time accumulated in the current period.
func (t Timer) Elapsed() time.Duration {
	return t.elapsed
}

// Duration returns the configured period.
func (t Timer) Duration() time.Duration {
	return t.duration
}

// Fraction returns elapsed/duration in [0, 1].
func (t Timer) Fraction() float64 {
	if t.duration == 0 {
		return 1
	}
	return float64(t.elapsed) / float64(t.duration)
}

// Reset rewinds the timer to zero elapsed time.
func (t *Timer) Reset() {
	t.elapsed = 0
	t.finished = false
	t.laps = 0
}
