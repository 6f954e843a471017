package render

import "github.com/gdamore/tcell/v2"

// Canvas is the drawing surface a frame is flushed to
// terminal.Screen implements it over tcell
type Canvas interface {
	SetContent(x, y int, r rune, style tcell.Style)
	Clear()
}
