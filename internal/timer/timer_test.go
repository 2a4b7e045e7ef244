package timer

import (
	"testing"
	"time"
)

func TestOnceTimer(t *testing.T) {
	tm := New(100*time.Millisecond, Once)

	tm.Tick(60 * time.Millisecond)
	if tm.Finished() {
		t.Fatal("timer finished early")
	}
	if tm.Remaining() != 40*time.Millisecond {
		t.Errorf("Remaining() = %v, expected 40ms", tm.Remaining())
	}

	tm.Tick(60 * time.Millisecond)
	if !tm.Finished() || !tm.JustFinished() {
		t.Fatal("timer should finish on the tick crossing the duration")
	}
	if tm.Remaining() != 0 {
		t.Errorf("Remaining() = %v, expected 0 (never negative)", tm.Remaining())
	}

	tm.Tick(10 * time.Millisecond)
	if !tm.Finished() {
		t.Error("Once timer must stay finished")
	}
	if tm.JustFinished() {
		t.Error("JustFinished should only be true on the crossing tick")
	}
}

func TestOnceTimerExactBoundary(t *testing.T) {
	tm := New(50*time.Millisecond, Once)
	tm.Tick(50 * time.Millisecond)
	if !tm.Finished() {
		t.Error("timer should finish when elapsed equals duration")
	}
}

func TestRepeatingTimer(t *testing.T) {
	tm := New(time.Second, Repeating)

	tm.Tick(2500 * time.Millisecond)
	if tm.Laps() != 2 {
		t.Errorf("Laps() = %d, expected 2", tm.Laps())
	}
	if tm.Elapsed() != 500*time.Millisecond {
		t.Errorf("Elapsed() = %v, expected 500ms", tm.Elapsed())
	}

	tm.Tick(100 * time.Millisecond)
	if tm.Finished() {
		t.Error("repeating timer should not report finished without a completed lap")
	}
}

func TestNegativeInputs(t *testing.T) {
	tm := New(-time.Second, Once)
	if tm.Duration() != 0 {
		t.Errorf("Duration() = %v, expected 0", tm.Duration())
	}

	tm = New(time.Second, Once)
	tm.Tick(-time.Second)
	if tm.Elapsed() != 0 {
		t.Errorf("negative delta advanced the timer to %v", tm.Elapsed())
	}
}

func TestReset(t *testing.T) {
	tm := New(time.Second, Once)
	tm.Tick(2 * time.Second)
	tm.Reset()
	if tm.Finished() || tm.Elapsed() != 0 {
		t.Error("Reset should rewind the timer")
	}
}
