// Package registry provides append-only lookup tables for content
// descriptors. Content packs register into them while the app is built, and
// gameplay and console code only read them afterwards.
package registry

import (
	"errors"
	"fmt"
	"strings"
	"sync"
)

var (
	// ErrNotFound is returned when an identifier was never registered.
	ErrNotFound = errors.New("not found")
	// ErrDuplicate is returned when an identifier is registered twice.
	ErrDuplicate = errors.New("already registered")
	// ErrInvalidID is returned for identifiers that are empty or not lowercase.
	ErrInvalidID = errors.New("invalid identifier")
)

// Descriptor is anything with a stable identifier.
type Descriptor interface {
	ID() string
}

// Registry maps lowercase identifiers to descriptors, preserving registration order.
type Registry[D Descriptor] struct {
	kind  string
	mu    sync.RWMutex
	byID  map[string]D
	order []string
}

// New creates an empty registry. kind names the descriptor type in errors.
func New[D Descriptor](kind string) *Registry[D] {
	return &Registry[D]{
		kind: kind,
		byID: make(map[string]D),
	}
}

// Kind returns the descriptor type name.
func (r *Registry[D]) Kind() string { return r.kind }

// Register adds d under d.ID().
func (r *Registry[D]) Register(d D) error {
	id := d.ID()
	if !validID(id) {
		return fmt.Errorf("registry: %s %q: %w", r.kind, id, ErrInvalidID)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[id]; exists {
		return fmt.Errorf("registry: %s %q: %w", r.kind, id, ErrDuplicate)
	}
	r.byID[id] = d
	r.order = append(r.order, id)
	return nil
}

// MustRegister is Register for build-time content; it panics on error.
func (r *Registry[D]) MustRegister(ds ...D) {
	for _, d := range ds {
		if err := r.Register(d); err != nil {
			panic(err)
		}
	}
}

// Get returns the descriptor for id. Lookup is case-insensitive so that
// user-typed identifiers resolve.
func (r *Registry[D]) Get(id string) (D, error) {
	key := strings.ToLower(strings.TrimSpace(id))

	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.byID[key]
	if !ok {
		var zero D
		return zero, fmt.Errorf("%s %q: %w", r.kind, id, ErrNotFound)
	}
	return d, nil
}

// Exists checks if id is registered.
func (r *Registry[D]) Exists(id string) bool {
	_, err := r.Get(id)
	return err == nil
}

// List returns all descriptors in registration order.
func (r *Registry[D]) List() []D {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]D, 0, len(r.order))
	for _, id := range r.order {
		result = append(result, r.byID[id])
	}
	return result
}

// IDs returns all identifiers in registration order.
func (r *Registry[D]) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]string(nil), r.order...)
}

// Len returns the number of registered descriptors.
func (r *Registry[D]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.order)
}

// validID accepts lowercase ASCII letters, digits, '-' and '_'.
func validID(id string) bool {
	if id == "" {
		return false
	}
	for _, c := range id {
		switch {
		case c >= 'a' && c <= 'z', c >= '0' && c <= '9', c == '-', c == '_':
		default:
			return false
		}
	}
	return true
}
