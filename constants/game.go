package constants

// Window defaults requested by a game before scaling to the terminal
const (
	DefaultWidth  = 32
	DefaultHeight = 9

	// DefaultTickRate is the target updates per second
	DefaultTickRate = 60
	// MaxTickRate bounds configured rates
	MaxTickRate = 1000
)

// Keys with fixed meaning across games
const (
	KeyQuit = 'q'
)

// Ship starting state
const (
	ShipStartX = 0
	ShipStartY = 5
	ShipSpeedX = 1
	ShipSpeedY = 1
)
