package engine

import "time"

// Clock provides time and sleeping for frame pacing
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

// SystemClock is the real wall clock with monotonic readings
type SystemClock struct{}

// NewSystemClock creates the real clock
func NewSystemClock() *SystemClock {
	return &SystemClock{}
}

// Now returns the current time with monotonic clock reading
func (SystemClock) Now() time.Time {
	return time.Now()
}

// Sleep blocks for d
func (SystemClock) Sleep(d time.Duration) {
	time.Sleep(d)
}

// FrameDuration returns the tick budget for a tick rate; zero disables pacing
func FrameDuration(ticksPerSecond int) time.Duration {
	if ticksPerSecond <= 0 {
		return 0
	}
	return time.Second / time.Duration(ticksPerSecond)
}
