package engine

import (
	"reflect"

	"github.com/lixenwraith/termunator/core"
)

// AnyStore provides type-erased operations over a kind-bucket
// ComponentStore manages all buckets uniformly through it, e.g. when an entity is deleted
type AnyStore interface {
	// Kind returns the component type held by the bucket
	Kind() reflect.Type

	// Remove deletes the component of an entity
	Remove(e core.Entity) bool

	// Has checks if an entity has this component
	Has(e core.Entity) bool

	// Len returns the number of entities with this component
	Len() int

	// Entities returns all entities with this component in insertion order
	Entities() []core.Entity

	// Ref returns a pointer to the component as any, nil when absent
	Ref(e core.Entity) any

	// Clear removes all components from the bucket
	Clear()
}

// KindOf returns the kind identifier for component type T
func KindOf[T any]() reflect.Type {
	return reflect.TypeFor[T]()
}
