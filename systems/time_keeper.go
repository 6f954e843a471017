package systems

import (
	"github.com/lixenwraith/termunator/components"
	"github.com/lixenwraith/termunator/engine"
)

// TimeKeeperSystem advances GameState.Time by one tick of simulated time
type TimeKeeperSystem struct{}

// NewTimeKeeperSystem creates a new timekeeper system
func NewTimeKeeperSystem() *TimeKeeperSystem {
	return &TimeKeeperSystem{}
}

func (s *TimeKeeperSystem) Update(cs *engine.ComponentStore) {
	for _, m := range engine.QuerySingle[components.GameState](cs) {
		state := m.First
		if state.Paused || state.TickRate <= 0 {
			continue
		}
		state.Time += 1 / float64(state.TickRate)
	}
}
