// @focus: #sys { input }
package systems

import (
	"github.com/lixenwraith/termunator/components"
	"github.com/lixenwraith/termunator/engine"
)

// InputSource yields the keys pressed since the last poll without blocking
type InputSource interface {
	PollKeys() []rune
}

// HandleEventsSystem refreshes every KeyState once per tick
// All marks are cleared, then every key polled this tick is marked pressed,
// so a key reads pressed for exactly one tick unless pressed again
type HandleEventsSystem struct {
	source InputSource
}

// NewHandleEventsSystem creates the input system reading from source
func NewHandleEventsSystem(source InputSource) *HandleEventsSystem {
	return &HandleEventsSystem{source: source}
}

func (s *HandleEventsSystem) Update(cs *engine.ComponentStore) {
	var keys []rune
	if s.source != nil {
		keys = s.source.PollKeys()
	}

	for _, m := range engine.QuerySingle[components.KeyState](cs) {
		m.First.Release()
		for _, key := range keys {
			m.First.SetKey(key, true)
		}
	}
}
