package components

// GameState carries session-wide values for the entities that need them
type GameState struct {
	Running  bool
	Paused   bool
	TickRate int
	Time     float64 // seconds of simulated time
	WindowW  int     // negotiated work-area width
	WindowH  int     // negotiated work-area height
}

// NewGameState returns the defaults of a fresh session
func NewGameState(tickRate, width, height int) GameState {
	return GameState{
		Running:  true,
		TickRate: tickRate,
		WindowW:  width,
		WindowH:  height,
	}
}
