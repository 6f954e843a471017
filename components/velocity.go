package components

// Velocity is the per-tick displacement of an entity
type Velocity struct {
	VX, VY float64
}
