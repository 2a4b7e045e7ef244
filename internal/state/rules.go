package state

// Rules is a transition legality table keyed by (current, requested).
type Rules[S comparable] struct {
	allowed map[S]map[S]bool
	anyTo   map[S]bool
}

// NewRules creates an empty table that rejects every transition.
func NewRules[S comparable]() *Rules[S] {
	return &Rules[S]{
		allowed: make(map[S]map[S]bool),
		anyTo:   make(map[S]bool),
	}
}

// Allow permits transitions from one value to each of the given targets.
func (r *Rules[S]) Allow(from S, to ...S) *Rules[S] {
	m, ok := r.allowed[from]
	if !ok {
		m = make(map[S]bool, len(to))
		r.allowed[from] = m
	}
	for _, t := range to {
		m[t] = true
	}
	return r
}

// AllowFromAny permits reaching the target from every value.
func (r *Rules[S]) AllowFromAny(to S) *Rules[S] {
	r.anyTo[to] = true
	return r
}

// Allowed reports whether from -> to is legal.
func (r *Rules[S]) Allowed(from, to S) bool {
	if r.anyTo[to] {
		return true
	}
	return r.allowed[from][to]
}
