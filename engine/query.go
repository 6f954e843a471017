package engine

import (
	"reflect"

	"github.com/lixenwraith/termunator/core"
)

// Match1 pairs an entity with its component of a single kind
type Match1[A any] struct {
	Entity core.Entity
	First  *A
}

// Match2 pairs an entity with its components of two kinds, in request order
type Match2[A, B any] struct {
	Entity core.Entity
	First  *A
	Second *B
}

// Match3 pairs an entity with its components of three kinds, in request order
type Match3[A, B, C any] struct {
	Entity core.Entity
	First  *A
	Second *B
	Third  *C
}

// QuerySingle returns every (entity, component) pair of kind A in insertion order
func QuerySingle[A any](cs *ComponentStore) []Match1[A] {
	base := Bucket[A](cs)
	if base == nil {
		return nil
	}
	results := make([]Match1[A], 0, base.Len())
	base.Each(func(e core.Entity, a *A) {
		results = append(results, Match1[A]{Entity: e, First: a})
	})
	return results
}

// Query2 returns entities having both A and B
// A is the iteration base; put the most selective kind first
func Query2[A, B any](cs *ComponentStore) []Match2[A, B] {
	base, sb := Bucket[A](cs), Bucket[B](cs)
	if base == nil || sb == nil {
		return nil
	}
	results := make([]Match2[A, B], 0, min(base.Len(), sb.Len()))
	base.Each(func(e core.Entity, a *A) {
		b := sb.Ptr(e)
		if b == nil {
			return
		}
		results = append(results, Match2[A, B]{Entity: e, First: a, Second: b})
	})
	return results
}

// Query3 returns entities having A, B and C, iterating from A
func Query3[A, B, C any](cs *ComponentStore) []Match3[A, B, C] {
	base, sb, sc := Bucket[A](cs), Bucket[B](cs), Bucket[C](cs)
	if base == nil || sb == nil || sc == nil {
		return nil
	}
	results := make([]Match3[A, B, C], 0, base.Len())
	base.Each(func(e core.Entity, a *A) {
		b := sb.Ptr(e)
		if b == nil {
			return
		}
		c := sc.Ptr(e)
		if c == nil {
			return
		}
		results = append(results, Match3[A, B, C]{Entity: e, First: a, Second: b, Third: c})
	})
	return results
}

// Row is one result of a dynamic query: the entity and one component pointer per requested kind
type Row struct {
	Entity     core.Entity
	Components []any
}

// QueryBuilder queries entities by an ordered list of kinds
// The first kind is the iteration base; results are in that bucket's insertion order
type QueryBuilder struct {
	store    *ComponentStore
	kinds    []reflect.Type
	executed bool
	results  []Row
}

// Query creates a new QueryBuilder
// Use With() to add kinds, then Execute() to get the results.
//
// Example:
//
//	rows := store.Query().
//	    With(engine.KindOf[components.Position]()).
//	    With(engine.KindOf[components.Velocity]()).
//	    Execute()
func (cs *ComponentStore) Query() *QueryBuilder {
	return &QueryBuilder{
		store: cs,
		kinds: make([]reflect.Type, 0, 4),
	}
}

// With appends a kind to the query
// Panics if called after Execute()
func (qb *QueryBuilder) With(kind reflect.Type) *QueryBuilder {
	if qb.executed {
		panic("query already executed - cannot modify after Execute()")
	}
	qb.kinds = append(qb.kinds, kind)
	return qb
}

// Execute runs the query and returns entities having every requested kind
// Calling Execute() multiple times returns the cached result
func (qb *QueryBuilder) Execute() []Row {
	if qb.executed {
		return qb.results
	}
	qb.executed = true

	if len(qb.kinds) == 0 {
		return nil
	}

	stores := make([]AnyStore, len(qb.kinds))
	for i, kind := range qb.kinds {
		s, ok := qb.store.lookup(kind)
		if !ok {
			return nil
		}
		stores[i] = s
	}

	base := stores[0].Entities()
	qb.results = make([]Row, 0, len(base))

next:
	for _, e := range base {
		refs := make([]any, len(stores))
		for i, s := range stores {
			ref := s.Ref(e)
			if ref == nil {
				continue next
			}
			refs[i] = ref
		}
		qb.results = append(qb.results, Row{Entity: e, Components: refs})
	}

	return qb.results
}
