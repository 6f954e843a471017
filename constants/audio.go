package constants

import "time"

// AudioBufferDuration is the speaker buffer length; larger values add latency
const AudioBufferDuration = 100 * time.Millisecond

// Step Sound Timing
const (
	StepSoundDuration = 40 * time.Millisecond
	StepSoundAttack   = 2 * time.Millisecond
	StepSoundRelease  = 20 * time.Millisecond
)

// Start Sound Timing
const (
	StartSoundNote1Duration = 90 * time.Millisecond
	StartSoundNote2Duration = 250 * time.Millisecond
	StartSoundAttack        = 5 * time.Millisecond
	StartSoundNote1Release  = 40 * time.Millisecond
	StartSoundNote2Release  = 180 * time.Millisecond
)
