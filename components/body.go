package components

import "github.com/gdamore/tcell/v2"

// Body is the rectangular glyph grid drawn at an entity's Position
// Rows may differ in length; Size reports the width of the first row like the renderer expects
type Body struct {
	Glyphs [][]rune
	Style  tcell.Style
}

// NewBody builds a body from text rows, one rune per cell
func NewBody(rows ...string) Body {
	glyphs := make([][]rune, len(rows))
	for i, row := range rows {
		glyphs[i] = []rune(row)
	}
	return Body{Glyphs: glyphs, Style: tcell.StyleDefault}
}

// Size returns the body width (first row) and height
func (b Body) Size() (width, height int) {
	height = len(b.Glyphs)
	if height > 0 {
		width = len(b.Glyphs[0])
	}
	return width, height
}
