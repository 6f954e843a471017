package components

// Position is the floating-point origin of an entity in work-area cells
type Position struct {
	X, Y float64
}
