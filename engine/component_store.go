package engine

import (
	"fmt"
	"reflect"
	"sort"

	"github.com/lixenwraith/termunator/core"
)

// lease records a bucket detached by Take
type lease struct {
	store   AnyStore
	existed bool // bucket was present before Take
}

// ComponentStore maps each component kind to its kind-bucket
// Buckets are created lazily on the first insertion of a kind; an absent bucket means
// no entity has that kind and is never an error
type ComponentStore struct {
	buckets map[reflect.Type]AnyStore
	taken   map[reflect.Type]lease
}

// NewComponentStore creates an empty store
func NewComponentStore() *ComponentStore {
	return &ComponentStore{
		buckets: make(map[reflect.Type]AnyStore),
		taken:   make(map[reflect.Type]lease),
	}
}

// Insert stores c under its kind for entity e, overwriting any previous component of that kind
func Insert[T any](cs *ComponentStore, e core.Entity, c T) {
	bucketFor[T](cs).Set(e, c)
}

// Get returns a copy of the component of kind T for e
func Get[T any](cs *ComponentStore, e core.Entity) (T, bool) {
	if s := Bucket[T](cs); s != nil {
		return s.Get(e)
	}
	var zero T
	return zero, false
}

// GetMut returns a pointer to the stored component of kind T for e, nil when absent
// The pointer is valid until the next insertion or removal of kind T
func GetMut[T any](cs *ComponentStore, e core.Entity) *T {
	if s := Bucket[T](cs); s != nil {
		return s.Ptr(e)
	}
	return nil
}

// Remove deletes the component of kind T for e; no-op when absent
func Remove[T any](cs *ComponentStore, e core.Entity) {
	if s := Bucket[T](cs); s != nil {
		s.Remove(e)
	}
}

// Has reports whether e has a component of kind T
func Has[T any](cs *ComponentStore, e core.Entity) bool {
	if s := Bucket[T](cs); s != nil {
		return s.Has(e)
	}
	return false
}

// Bucket returns the attached bucket for kind T, nil when the kind has never been inserted or is taken
// Several buckets can be held at once; each is an independent mutable view
func Bucket[T any](cs *ComponentStore) *Store[T] {
	if s, ok := cs.buckets[KindOf[T]()]; ok {
		return s.(*Store[T])
	}
	return nil
}

// bucketFor returns the bucket for kind T, creating it on first use
func bucketFor[T any](cs *ComponentStore) *Store[T] {
	kind := KindOf[T]()
	if s, ok := cs.buckets[kind]; ok {
		return s.(*Store[T])
	}
	if _, ok := cs.taken[kind]; ok {
		panic(fmt.Sprintf("component kind %s is taken by a running system", kind))
	}
	s := NewStore[T]()
	cs.buckets[kind] = s
	return s
}

// Take detaches the bucket for kind T and hands exclusive ownership to the caller
// An empty detached bucket is returned when the kind is absent
// The caller must hand it back with Put before yielding control
// Taking a kind that is already taken panics
func Take[T any](cs *ComponentStore) *Store[T] {
	kind := KindOf[T]()
	if _, ok := cs.taken[kind]; ok {
		panic(fmt.Sprintf("component kind %s is already taken", kind))
	}

	s, existed := cs.buckets[kind]
	if !existed {
		s = NewStore[T]()
	}
	delete(cs.buckets, kind)
	cs.taken[kind] = lease{store: s, existed: existed}
	return s.(*Store[T])
}

// Put reattaches a bucket previously detached by Take
// An empty bucket for a kind that had no bucket before Take leaves the kind absent
func Put[T any](cs *ComponentStore, s *Store[T]) {
	cs.reattach(KindOf[T](), s)
}

func (cs *ComponentStore) reattach(kind reflect.Type, s AnyStore) {
	l, ok := cs.taken[kind]
	delete(cs.taken, kind)
	if ok && !l.existed && s.Len() == 0 {
		return
	}
	cs.buckets[kind] = s
}

// Restore reattaches every bucket still taken and returns the kinds it had to restore
// Called by the world after each system so later systems observe a consistent store
func (cs *ComponentStore) Restore() []reflect.Type {
	if len(cs.taken) == 0 {
		return nil
	}
	kinds := make([]reflect.Type, 0, len(cs.taken))
	for kind, l := range cs.taken {
		kinds = append(kinds, kind)
		cs.reattach(kind, l.store)
	}
	sortKinds(kinds)
	return kinds
}

// Taken reports whether any bucket is currently detached
func (cs *ComponentStore) Taken() bool {
	return len(cs.taken) > 0
}

// RemoveEntity deletes e from every kind-bucket, including buckets currently taken
func (cs *ComponentStore) RemoveEntity(e core.Entity) {
	for _, s := range cs.buckets {
		s.Remove(e)
	}
	for _, l := range cs.taken {
		l.store.Remove(e)
	}
}

// Kinds returns the kinds with an attached bucket, sorted by name
func (cs *ComponentStore) Kinds() []reflect.Type {
	kinds := make([]reflect.Type, 0, len(cs.buckets))
	for kind := range cs.buckets {
		kinds = append(kinds, kind)
	}
	sortKinds(kinds)
	return kinds
}

// Len returns the number of components of the given kind, zero when absent
func (cs *ComponentStore) Len(kind reflect.Type) int {
	if s, ok := cs.buckets[kind]; ok {
		return s.Len()
	}
	return 0
}

// lookup returns the attached type-erased bucket for kind
func (cs *ComponentStore) lookup(kind reflect.Type) (AnyStore, bool) {
	s, ok := cs.buckets[kind]
	return s, ok
}

// Clear removes every bucket
func (cs *ComponentStore) Clear() {
	clear(cs.buckets)
	clear(cs.taken)
}

func sortKinds(kinds []reflect.Type) {
	sort.Slice(kinds, func(i, j int) bool {
		return kinds[i].String() < kinds[j].String()
	})
}
