package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/termunator/core"
)

func entitiesOf2[A, B any](ms []Match2[A, B]) []core.Entity {
	out := make([]core.Entity, len(ms))
	for i, m := range ms {
		out[i] = m.Entity
	}
	return out
}

func TestQuerySingle(t *testing.T) {
	cs := NewComponentStore()
	assert.Empty(t, QuerySingle[position](cs), "absent kind")

	Insert(cs, 3, position{X: 3})
	Insert(cs, 1, position{X: 1})

	ms := QuerySingle[position](cs)
	require.Len(t, ms, 2)
	assert.Equal(t, core.Entity(3), ms[0].Entity)
	assert.Equal(t, core.Entity(1), ms[1].Entity)

	ms[0].First.Y = 7
	v, _ := Get[position](cs, 3)
	assert.Equal(t, 7.0, v.Y, "results are mutable views")
}

func TestQuery2Intersection(t *testing.T) {
	cs := NewComponentStore()
	// 1: pos+vel, 2: pos only, 3: vel only, 4: pos+vel
	Insert(cs, 1, position{})
	Insert(cs, 2, position{})
	Insert(cs, 4, position{})
	Insert(cs, 3, velocity{})
	Insert(cs, 4, velocity{})
	Insert(cs, 1, velocity{})

	assert.Equal(t, []core.Entity{1, 4}, entitiesOf2(Query2[position, velocity](cs)),
		"ordered by the first kind's insertion order")
	assert.Equal(t, []core.Entity{4, 1}, entitiesOf2(Query2[velocity, position](cs)),
		"same set, base order follows the first kind")
}

func TestQuery2AbsentKind(t *testing.T) {
	cs := NewComponentStore()
	Insert(cs, 1, position{})

	assert.Empty(t, Query2[position, velocity](cs))
	assert.Empty(t, Query2[velocity, position](cs))
}

func TestQuery3(t *testing.T) {
	cs := NewComponentStore()
	for e := core.Entity(1); e <= 4; e++ {
		Insert(cs, e, position{X: float64(e)})
		if e%2 == 0 {
			Insert(cs, e, velocity{VX: 1})
		}
		if e != 2 {
			Insert(cs, e, label{Name: "x"})
		}
	}

	ms := Query3[position, velocity, label](cs)
	require.Len(t, ms, 1)
	assert.Equal(t, core.Entity(4), ms[0].Entity)
	assert.Equal(t, 4.0, ms[0].First.X)
	assert.Equal(t, 1.0, ms[0].Second.VX)
	assert.Equal(t, "x", ms[0].Third.Name)
}

func TestQueryDeterministic(t *testing.T) {
	build := func() []core.Entity {
		cs := NewComponentStore()
		for _, e := range []core.Entity{5, 2, 9, 7, 1} {
			Insert(cs, e, position{})
			Insert(cs, e, velocity{})
		}
		Remove[position](cs, 9)
		return entitiesOf2(Query2[position, velocity](cs))
	}

	first := build()
	assert.Equal(t, []core.Entity{5, 2, 7, 1}, first)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, build())
	}
}

func TestQueryBuilder(t *testing.T) {
	cs := NewComponentStore()
	Insert(cs, 1, position{X: 1})
	Insert(cs, 1, velocity{VX: 2})
	Insert(cs, 2, position{X: 3})

	rows := cs.Query().
		With(KindOf[velocity]()).
		With(KindOf[position]()).
		Execute()

	require.Len(t, rows, 1)
	assert.Equal(t, core.Entity(1), rows[0].Entity)
	require.Len(t, rows[0].Components, 2)

	vel, ok := rows[0].Components[0].(*velocity)
	require.True(t, ok, "components follow request order")
	assert.Equal(t, 2.0, vel.VX)
	pos, ok := rows[0].Components[1].(*position)
	require.True(t, ok)
	assert.Equal(t, 1.0, pos.X)
}

func TestQueryBuilderEdgeCases(t *testing.T) {
	cs := NewComponentStore()
	Insert(cs, 1, position{})

	assert.Empty(t, cs.Query().Execute(), "no kinds")
	assert.Empty(t, cs.Query().With(KindOf[position]()).With(KindOf[label]()).Execute(), "absent kind")

	q := cs.Query().With(KindOf[position]())
	first := q.Execute()
	Insert(cs, 2, position{})
	assert.Equal(t, first, q.Execute(), "cached")
	assert.Panics(t, func() { q.With(KindOf[velocity]()) })
}
