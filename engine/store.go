package engine

import (
	"reflect"

	"github.com/kamstrup/intmap"

	"github.com/lixenwraith/termunator/core"
)

// Store is the kind-bucket for component type T: entity -> component
// Components live in a dense slice kept in insertion order so iteration is stable across calls
type Store[T any] struct {
	index    *intmap.Map[core.Entity, int] // entity -> slot in entities/data
	entities []core.Entity
	data     []T
}

// NewStore creates a new empty kind-bucket for type T
func NewStore[T any]() *Store[T] {
	return &Store[T]{
		index:    intmap.New[core.Entity, int](64),
		entities: make([]core.Entity, 0, 64),
		data:     make([]T, 0, 64),
	}
}

// Kind returns the component kind held by this bucket
func (s *Store[T]) Kind() reflect.Type {
	return KindOf[T]()
}

// Set inserts or overwrites the component for an entity
// An overwrite keeps the entity's original iteration slot
func (s *Store[T]) Set(e core.Entity, val T) {
	if i, ok := s.index.Get(e); ok {
		s.data[i] = val
		return
	}
	s.index.Put(e, len(s.entities))
	s.entities = append(s.entities, e)
	s.data = append(s.data, val)
}

// Get retrieves a copy of the component for an entity
func (s *Store[T]) Get(e core.Entity) (T, bool) {
	if i, ok := s.index.Get(e); ok {
		return s.data[i], true
	}
	var zero T
	return zero, false
}

// Ptr returns a pointer to the stored component, nil when absent
// The pointer is valid until the next insertion or removal in this bucket
func (s *Store[T]) Ptr(e core.Entity) *T {
	if i, ok := s.index.Get(e); ok {
		return &s.data[i]
	}
	return nil
}

// Ref is the type-erased form of Ptr; returns nil interface when absent
func (s *Store[T]) Ref(e core.Entity) any {
	if p := s.Ptr(e); p != nil {
		return p
	}
	return nil
}

// Has checks if entity has this component
func (s *Store[T]) Has(e core.Entity) bool {
	_, ok := s.index.Get(e)
	return ok
}

// Remove deletes the component of an entity, preserving the order of the remaining entries
// Returns false when the entity had no component of this kind
func (s *Store[T]) Remove(e core.Entity) bool {
	i, ok := s.index.Get(e)
	if !ok {
		return false
	}
	s.index.Del(e)

	copy(s.entities[i:], s.entities[i+1:])
	s.entities = s.entities[:len(s.entities)-1]

	var zero T
	copy(s.data[i:], s.data[i+1:])
	s.data[len(s.data)-1] = zero
	s.data = s.data[:len(s.data)-1]

	// Shift indices of everything after the removed slot
	for j := i; j < len(s.entities); j++ {
		s.index.Put(s.entities[j], j)
	}
	return true
}

// Len returns number of entities with this component
func (s *Store[T]) Len() int {
	return len(s.entities)
}

// Entities returns all entities with this component type in insertion order
func (s *Store[T]) Entities() []core.Entity {
	result := make([]core.Entity, len(s.entities))
	copy(result, s.entities)
	return result
}

// Each visits every (entity, component) pair in insertion order
// fn must not insert into or remove from this bucket
func (s *Store[T]) Each(fn func(e core.Entity, val *T)) {
	for i, e := range s.entities {
		fn(e, &s.data[i])
	}
}

// Clear removes all components from this bucket
func (s *Store[T]) Clear() {
	s.index.Clear()
	s.entities = s.entities[:0]
	clear(s.data)
	s.data = s.data[:0]
}
