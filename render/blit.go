package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/termunator/components"
	"github.com/lixenwraith/termunator/constants"
	"github.com/lixenwraith/termunator/core"
)

// BorderRune outlines the work area
const BorderRune = constants.BorderChar

// Blit draws body with its origin at pos into buf
// The origin is truncated toward zero; cells outside [0,clipW) x [0,clipH) or outside buf are skipped
func Blit(buf *core.Buffer, e core.Entity, body components.Body, pos components.Position, clipW, clipH int) {
	startX := int(pos.X)
	startY := int(pos.Y)

	for row, glyphs := range body.Glyphs {
		y := startY + row
		if y < 0 || y >= clipH {
			continue
		}
		for col, r := range glyphs {
			x := startX + col
			if x < 0 || x >= clipW {
				continue
			}
			buf.SetContent(x, y, r, body.Style, e)
		}
	}
}

// Border draws the outer ring of the buffer
func Border(buf *core.Buffer) {
	w, h := buf.Width(), buf.Height()
	if w == 0 || h == 0 {
		return
	}
	for x := 0; x < w; x++ {
		buf.SetContent(x, 0, BorderRune, tcell.StyleDefault, core.NoEntity)
		buf.SetContent(x, h-1, BorderRune, tcell.StyleDefault, core.NoEntity)
	}
	for y := 0; y < h; y++ {
		buf.SetContent(0, y, BorderRune, tcell.StyleDefault, core.NoEntity)
		buf.SetContent(w-1, y, BorderRune, tcell.StyleDefault, core.NoEntity)
	}
}

// Flush copies every cell of buf to the canvas at the same coordinates
func Flush(buf *core.Buffer, canvas Canvas) {
	for y := 0; y < buf.Height(); y++ {
		for x, cell := range buf.GetLine(y) {
			canvas.SetContent(x, y, cell.Rune, cell.Style)
		}
	}
}

// Text writes s left to right starting at (x, y)
func Text(canvas Canvas, x, y int, s string) {
	for _, r := range s {
		canvas.SetContent(x, y, r, tcell.StyleDefault)
		x++
	}
}
