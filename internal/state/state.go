// Package state implements the queued state values that drive the game
// lifecycle. A request made with SetNext is only committed when the scheduler
// calls Apply at its state-transition point, so every system in a frame
// observes the same current value.
package state

import (
	"errors"
	"fmt"
)

// ErrIllegalTransition is returned by Apply when the installed Rules reject a request.
var ErrIllegalTransition = errors.New("state: illegal transition")

// Transition describes a committed change from one value to another.
type Transition[S comparable] struct {
	From S
	To   S
}

// State holds the committed value of one state dimension and at most one
// pending request for it.
type State[S comparable] struct {
	current S
	next    S
	pending bool
	rules   *Rules[S]
}

// New creates a state starting at initial with no transition rules.
func New[S comparable](initial S) *State[S] {
	return &State[S]{current: initial}
}

// WithRules installs a legality table. A nil table accepts every request.
func (s *State[S]) WithRules(r *Rules[S]) *State[S] {
	s.rules = r
	return s
}

// Current returns the committed value.
func (s *State[S]) Current() S {
	return s.current
}

// SetNext queues a request, replacing any request queued earlier in the frame.
func (s *State[S]) SetNext(v S) {
	s.next = v
	s.pending = true
}

// Pending returns the queued request, if any.
func (s *State[S]) Pending() (S, bool) {
	return s.next, s.pending
}

// Apply commits the pending request. It reports whether the value changed.
// Requests for the current value are consumed without a transition. Requests
// rejected by the rules are consumed and reported as ErrIllegalTransition.
func (s *State[S]) Apply() (Transition[S], bool, error) {
	if !s.pending {
		return Transition[S]{}, false, nil
	}

	next := s.next
	s.pending = false
	var zero S
	s.next = zero

	if next == s.current {
		return Transition[S]{}, false, nil
	}
	if s.rules != nil && !s.rules.Allowed(s.current, next) {
		return Transition[S]{From: s.current, To: next}, false,
			fmt.Errorf("%w: %v -> %v", ErrIllegalTransition, s.current, next)
	}

	tr := Transition[S]{From: s.current, To: next}
	s.current = next
	return tr, true, nil
}
