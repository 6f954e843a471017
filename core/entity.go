package core

import "strconv"

// Entity is an opaque identifier grouping zero or more components
// IDs are assigned by engine.World and never reused while the entity is alive
type Entity uint64

// NoEntity is the zero identifier, never allocated
const NoEntity Entity = 0

// String renders the entity for logs
func (e Entity) String() string {
	return "entity(" + strconv.FormatUint(uint64(e), 10) + ")"
}
