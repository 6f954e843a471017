package systems

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/termunator/audio"
)

// scriptedInput returns one batch of keys per poll
type scriptedInput struct {
	batches [][]rune
	polls   int
}

func (s *scriptedInput) PollKeys() []rune {
	s.polls++
	if len(s.batches) == 0 {
		return nil
	}
	keys := s.batches[0]
	s.batches = s.batches[1:]
	return keys
}

type recordingPlayer struct {
	played []audio.SoundType
}

func (p *recordingPlayer) Play(s audio.SoundType) {
	p.played = append(p.played, s)
}

// gridCanvas is an in-memory render.Canvas
type gridCanvas struct {
	cells  map[[2]int]rune
	clears int
}

func newGridCanvas() *gridCanvas {
	return &gridCanvas{cells: make(map[[2]int]rune)}
}

func (c *gridCanvas) SetContent(x, y int, r rune, _ tcell.Style) {
	c.cells[[2]int{x, y}] = r
}

func (c *gridCanvas) Clear() {
	c.clears++
	clear(c.cells)
}

func (c *gridCanvas) at(x, y int) rune {
	return c.cells[[2]int{x, y}]
}
