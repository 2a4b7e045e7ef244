// Package ecs is the entity/component/resource container the game runs on.
//
// The world is owned by a single frame loop: systems run one after another and
// never concurrently, so stores carry no locks. Component stores and resources
// are both keyed by Go type, which lets generic wrappers such as
// cooldown.Cooldown[T] or mode.GameMode[M] coexist per type parameter.
package ecs

import (
	"reflect"
)

// World owns entities, their component stores and the global resources.
type World struct {
	pool      *entityPool
	stores    map[reflect.Type]removable
	resources map[reflect.Type]any
}

// NewWorld creates an empty world.
func NewWorld() *World {
	return &World{
		pool:      newEntityPool(),
		stores:    make(map[reflect.Type]removable),
		resources: make(map[reflect.Type]any),
	}
}

// Spawn reserves a new entity without components.
func (w *World) Spawn() Entity {
	return w.pool.create()
}

// Alive reports whether the entity handle still refers to a live entity.
func (w *World) Alive(e Entity) bool {
	return w.pool.isAlive(e)
}

// Despawn removes the entity and every component attached to it.
// Stale or already despawned handles are ignored.
func (w *World) Despawn(e Entity) {
	if !w.pool.destroy(e) {
		return
	}
	for _, s := range w.stores {
		s.Remove(e)
	}
}

// EntityCount returns the number of live entities.
func (w *World) EntityCount() int {
	return w.pool.alive
}

// StoreOf returns the store for component type T, creating it on first use.
func StoreOf[T any](w *World) *Store[T] {
	key := reflect.TypeFor[T]()
	if s, ok := w.stores[key]; ok {
		return s.(*Store[T])
	}
	s := NewStore[T]()
	w.stores[key] = s
	return s
}

// InsertResource stores r as the world's resource of type T, replacing any previous one.
func InsertResource[T any](w *World, r *T) {
	w.resources[reflect.TypeFor[T]()] = r
}

// Resource returns the world's resource of type T.
func Resource[T any](w *World) (*T, bool) {
	r, ok := w.resources[reflect.TypeFor[T]()]
	if !ok {
		return nil, false
	}
	return r.(*T), true
}

// MustResource returns the resource of type T or panics when it was never inserted.
// Use it only for resources a plugin installs unconditionally at build time.
func MustResource[T any](w *World) *T {
	r, ok := Resource[T](w)
	if !ok {
		panic("ecs: required resource not found: " + reflect.TypeFor[T]().String())
	}
	return r
}

// HasResource reports whether a resource of type T exists.
func HasResource[T any](w *World) bool {
	_, ok := w.resources[reflect.TypeFor[T]()]
	return ok
}

// RemoveResource deletes the resource of type T and reports whether it existed.
func RemoveResource[T any](w *World) bool {
	key := reflect.TypeFor[T]()
	if _, ok := w.resources[key]; !ok {
		return false
	}
	delete(w.resources, key)
	return true
}
