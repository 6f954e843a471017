package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/termunator/components"
	"github.com/lixenwraith/termunator/engine"
)

func TestMovementSystem(t *testing.T) {
	w := engine.NewWorld()
	ship := w.CreateEntity()
	engine.AddComponent(w, ship, components.Position{X: 0, Y: 5})
	engine.AddComponent(w, ship, components.Velocity{VX: 1, VY: 1})

	w.AddSystem("movement", NewMovementSystem())
	w.Update(0)

	pos, ok := engine.GetComponent[components.Position](w, ship)
	require.True(t, ok)
	assert.Equal(t, components.Position{X: 1, Y: 6}, pos)
}

func TestMovementSkipsEntitiesWithoutVelocity(t *testing.T) {
	w := engine.NewWorld()
	moving := w.CreateEntity()
	still := w.CreateEntity()
	velocityOnly := w.CreateEntity()
	engine.AddComponent(w, moving, components.Position{X: 2, Y: 2})
	engine.AddComponent(w, moving, components.Velocity{VX: -1, VY: 0.5})
	engine.AddComponent(w, still, components.Position{X: 3, Y: 3})
	engine.AddComponent(w, velocityOnly, components.Velocity{VX: 9, VY: 9})

	w.AddSystem("movement", NewMovementSystem())
	for i := 0; i < 2; i++ {
		w.Update(0)
	}

	pos, _ := engine.GetComponent[components.Position](w, moving)
	assert.Equal(t, components.Position{X: 0, Y: 3}, pos)
	pos, _ = engine.GetComponent[components.Position](w, still)
	assert.Equal(t, components.Position{X: 3, Y: 3}, pos)
	_, ok := engine.GetComponent[components.Position](w, velocityOnly)
	assert.False(t, ok)
}

func TestMovementWithoutAnyVelocityBucket(t *testing.T) {
	w := engine.NewWorld()
	e := w.CreateEntity()
	engine.AddComponent(w, e, components.Position{X: 1})

	w.AddSystem("movement", NewMovementSystem())
	w.Update(0)

	pos, ok := engine.GetComponent[components.Position](w, e)
	require.True(t, ok, "position bucket handed back")
	assert.Equal(t, 1.0, pos.X)
	assert.False(t, w.Store().Taken())
}

func TestMovementOnEmptyWorld(t *testing.T) {
	w := engine.NewWorld()
	w.AddSystem("movement", NewMovementSystem())
	w.Update(0)

	assert.Nil(t, engine.Bucket[components.Position](w.Store()), "no bucket materialized")
}
