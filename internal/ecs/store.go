package ecs

// removable is implemented by every Store so the World can strip a despawned
// entity from all component types without knowing them.
type removable interface {
	Remove(e Entity)
	Clear()
}

// Store is a typed component container for component type T.
// Iteration follows insertion order so every run with the same seed replays identically.
type Store[T any] struct {
	components map[Entity]T
	entities   []Entity
}

// NewStore creates an empty component store.
func NewStore[T any]() *Store[T] {
	return &Store[T]{
		components: make(map[Entity]T),
		entities:   make([]Entity, 0, 64),
	}
}

// Set inserts or overwrites the component for an entity.
func (s *Store[T]) Set(e Entity, val T) {
	if _, exists := s.components[e]; !exists {
		s.entities = append(s.entities, e)
	}
	s.components[e] = val
}

// Get returns the component for an entity.
func (s *Store[T]) Get(e Entity) (T, bool) {
	val, ok := s.components[e]
	return val, ok
}

// Has reports whether the entity carries this component.
func (s *Store[T]) Has(e Entity) bool {
	_, ok := s.components[e]
	return ok
}

// Update applies fn to the entity's component in place.
// It returns false when the entity has no such component.
func (s *Store[T]) Update(e Entity, fn func(*T)) bool {
	val, ok := s.components[e]
	if !ok {
		return false
	}
	fn(&val)
	s.components[e] = val
	return true
}

// Remove deletes the component from an entity. Absent components are ignored.
func (s *Store[T]) Remove(e Entity) {
	if _, exists := s.components[e]; !exists {
		return
	}
	delete(s.components, e)
	for i, entity := range s.entities {
		if entity == e {
			s.entities = append(s.entities[:i], s.entities[i+1:]...)
			break
		}
	}
}

// Entities returns a snapshot of the entities carrying this component.
// Callers may add or remove components while ranging over the result.
func (s *Store[T]) Entities() []Entity {
	result := make([]Entity, len(s.entities))
	copy(result, s.entities)
	return result
}

// Each calls fn for every entity with a pointer to its component; writes
// through the pointer are stored back.
func (s *Store[T]) Each(fn func(Entity, *T)) {
	for _, e := range s.Entities() {
		val, ok := s.components[e]
		if !ok {
			continue
		}
		fn(e, &val)
		if _, still := s.components[e]; still {
			s.components[e] = val
		}
	}
}

// Len returns the number of entities with this component.
func (s *Store[T]) Len() int {
	return len(s.entities)
}

// Clear removes every component from the store.
func (s *Store[T]) Clear() {
	s.components = make(map[Entity]T)
	s.entities = s.entities[:0]
}
