package core

import "github.com/gdamore/tcell/v2"

// Point represents a 2D coordinate
type Point struct {
	X, Y int
}

// Cell represents a single cell in the buffer
type Cell struct {
	Rune   rune
	Style  tcell.Style
	Entity Entity // Owning entity (NoEntity for background and border cells)
}

// emptyCell is the cleared state of every cell
var emptyCell = Cell{Rune: ' ', Style: tcell.StyleDefault}

// Buffer represents the work area as a 2D grid of cells
// All writes are clipped to [0,width) x [0,height)
type Buffer struct {
	width  int
	height int
	lines  [][]Cell
}

// NewBuffer creates a new buffer with the given dimensions
// Negative dimensions are treated as zero
func NewBuffer(width, height int) *Buffer {
	b := &Buffer{}
	b.Resize(width, height)
	return b
}

// Width returns the buffer width
func (b *Buffer) Width() int {
	return b.width
}

// Height returns the buffer height
func (b *Buffer) Height() int {
	return b.height
}

// Contains reports whether (x, y) lies inside the work area
func (b *Buffer) Contains(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Resize resizes the buffer, preserving existing content where possible
func (b *Buffer) Resize(newWidth, newHeight int) {
	newWidth = max(newWidth, 0)
	newHeight = max(newHeight, 0)

	newLines := make([][]Cell, newHeight)
	for y := 0; y < newHeight; y++ {
		newLines[y] = make([]Cell, newWidth)
		for x := 0; x < newWidth; x++ {
			if y < b.height && x < b.width {
				newLines[y][x] = b.lines[y][x]
			} else {
				newLines[y][x] = emptyCell
			}
		}
	}

	b.width = newWidth
	b.height = newHeight
	b.lines = newLines
}

// GetCell returns the cell at the given position
func (b *Buffer) GetCell(x, y int) (Cell, bool) {
	if !b.Contains(x, y) {
		return Cell{}, false
	}
	return b.lines[y][x], true
}

// SetCell sets the cell at the given position
// Returns false and leaves the buffer untouched when the position is clipped
func (b *Buffer) SetCell(x, y int, cell Cell) bool {
	if !b.Contains(x, y) {
		return false
	}
	b.lines[y][x] = cell
	return true
}

// SetContent sets the content at the given position
func (b *Buffer) SetContent(x, y int, r rune, style tcell.Style, entity Entity) bool {
	return b.SetCell(x, y, Cell{
		Rune:   r,
		Style:  style,
		Entity: entity,
	})
}

// Clear resets every cell to a blank
func (b *Buffer) Clear() {
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			b.lines[y][x] = emptyCell
		}
	}
}

// GetEntityAt returns the entity drawn at the given position (NoEntity if none)
func (b *Buffer) GetEntityAt(x, y int) Entity {
	if !b.Contains(x, y) {
		return NoEntity
	}
	return b.lines[y][x].Entity
}

// GetLine returns all cells in a given row
func (b *Buffer) GetLine(y int) []Cell {
	if y < 0 || y >= b.height {
		return nil
	}
	// Copy to prevent external modification
	line := make([]Cell, b.width)
	copy(line, b.lines[y])
	return line
}

// String renders the buffer rows joined by newlines, used by tests and debug dumps
func (b *Buffer) String() string {
	out := make([]rune, 0, (b.width+1)*b.height)
	for y := 0; y < b.height; y++ {
		if y > 0 {
			out = append(out, '\n')
		}
		for x := 0; x < b.width; x++ {
			out = append(out, b.lines[y][x].Rune)
		}
	}
	return string(out)
}
