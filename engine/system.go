package engine

// System is a unit of logic run once per tick
// It borrows the component store for the duration of Update and must leave it consistent:
// every bucket taken with Take is handed back with Put before returning
type System interface {
	Update(cs *ComponentStore)
}

// SystemFunc adapts a plain function to System
type SystemFunc func(cs *ComponentStore)

// Update calls f(cs)
func (f SystemFunc) Update(cs *ComponentStore) {
	f(cs)
}
