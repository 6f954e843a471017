// @focus: #sys { player, input }
package systems

import (
	"github.com/lixenwraith/termunator/components"
	"github.com/lixenwraith/termunator/engine"
)

// Movement keys
const (
	KeyUp    = 'w'
	KeyDown  = 's'
	KeyLeft  = 'a'
	KeyRight = 'd'
)

// PlayerSystem steps entities controlled by a KeyState by their Velocity
type PlayerSystem struct{}

// NewPlayerSystem creates the player control system
func NewPlayerSystem() *PlayerSystem {
	return &PlayerSystem{}
}

func (s *PlayerSystem) Update(cs *engine.ComponentStore) {
	for _, m := range engine.Query3[components.KeyState, components.Position, components.Velocity](cs) {
		keys, pos, vel := m.First, m.Second, m.Third
		startX, startY := pos.X, pos.Y

		if keys.IsPressed(KeyUp) {
			pos.Y -= vel.VY
		}
		if keys.IsPressed(KeyDown) {
			pos.Y += vel.VY
		}
		if keys.IsPressed(KeyLeft) {
			pos.X -= vel.VX
		}
		if keys.IsPressed(KeyRight) {
			pos.X += vel.VX
		}

		if pos.X == startX && pos.Y == startY {
			continue
		}
		// Sound is optional
		if sound := engine.GetMut[components.Sound](cs, m.Entity); sound != nil {
			sound.Pending = components.CueStep
		}
	}
}
