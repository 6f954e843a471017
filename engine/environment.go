package engine

// Environment is the external display/input resource a World claims while Active
// terminal.Screen is the tcell implementation; tests use fakes
type Environment interface {
	// Claim enters the exclusive display mode (raw input, alternate screen)
	Claim() error

	// Capacity reports the environment's usable width and height; valid after Claim
	Capacity() (width, height int, err error)

	// Show flushes the frame drawn during the tick
	Show()

	// Drain discards input events nobody consumed this tick
	Drain()

	// Release restores the environment to its pre-claim state
	Release() error
}

// ScaleDimensions fits a requested work area into the environment capacity
// When either requested dimension exceeds capacity, both are scaled by
// min(capW/reqW, capH/reqH), preserving aspect ratio, then truncated
// Integer arithmetic keeps the truncation exact
func ScaleDimensions(reqW, reqH, capW, capH int) (int, int) {
	if reqW <= 0 || reqH <= 0 {
		return reqW, reqH
	}
	if reqW <= capW && reqH <= capH {
		return reqW, reqH
	}
	capW = max(capW, 0)
	capH = max(capH, 0)

	// capW/reqW <= capH/reqH  <=>  capW*reqH <= capH*reqW
	if capW*reqH <= capH*reqW {
		return capW, reqH * capW / reqW
	}
	return reqW * capH / reqH, capH
}
