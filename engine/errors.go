package engine

import "github.com/rotisserie/eris"

// Setup errors; lookups never fail with an error
var (
	ErrInit          = eris.New("environment initialization failed")
	ErrNoEnvironment = eris.New("world has no environment attached")
	ErrAlreadyActive = eris.New("world is already active")
	ErrWorldClosed   = eris.New("world is closed")
)
