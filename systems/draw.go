// @focus: #sys { render }
package systems

import (
	"github.com/lixenwraith/termunator/components"
	"github.com/lixenwraith/termunator/core"
	"github.com/lixenwraith/termunator/engine"
	"github.com/lixenwraith/termunator/render"
)

// DrawSystem renders every entity with Position, Body and GameState into the work area
type DrawSystem struct {
	canvas render.Canvas
	buffer *core.Buffer
	border bool

	// Caption is written on the row below the work area when non-empty
	Caption string
}

// NewDrawSystem creates a draw system for a width x height work area
func NewDrawSystem(canvas render.Canvas, width, height int, border bool) *DrawSystem {
	return &DrawSystem{
		canvas: canvas,
		buffer: core.NewBuffer(width, height),
		border: border,
	}
}

// Buffer exposes the composed frame, used by tests
func (s *DrawSystem) Buffer() *core.Buffer {
	return s.buffer
}

// Resize changes the work area
func (s *DrawSystem) Resize(width, height int) {
	s.buffer.Resize(width, height)
}

func (s *DrawSystem) Update(cs *engine.ComponentStore) {
	s.buffer.Clear()
	if s.border {
		render.Border(s.buffer)
	}

	for _, m := range engine.Query3[components.Position, components.Body, components.GameState](cs) {
		render.Blit(s.buffer, m.Entity, *m.Second, *m.First, m.Third.WindowW, m.Third.WindowH)
	}

	if s.canvas == nil {
		return
	}
	s.canvas.Clear()
	render.Flush(s.buffer, s.canvas)
	if s.Caption != "" {
		render.Text(s.canvas, 0, s.buffer.Height(), s.Caption)
	}
}
