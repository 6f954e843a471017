// @focus: #sys { movement }
package systems

import (
	"github.com/lixenwraith/termunator/components"
	"github.com/lixenwraith/termunator/core"
	"github.com/lixenwraith/termunator/engine"
)

// MovementSystem adds Velocity to Position for every entity that has both
type MovementSystem struct{}

// NewMovementSystem creates a movement system
func NewMovementSystem() *MovementSystem {
	return &MovementSystem{}
}

// Update takes the position bucket exclusively while integrating; entities without a velocity are skipped
func (s *MovementSystem) Update(cs *engine.ComponentStore) {
	positions := engine.Take[components.Position](cs)
	defer engine.Put(cs, positions)

	velocities := engine.Bucket[components.Velocity](cs)
	if velocities == nil {
		return
	}

	positions.Each(func(e core.Entity, pos *components.Position) {
		vel := velocities.Ptr(e)
		if vel == nil {
			return
		}
		pos.X += vel.VX
		pos.Y += vel.VY
	})
}
