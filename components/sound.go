package components

// SoundCue identifies a sound effect requested by gameplay
type SoundCue int

const (
	CueNone SoundCue = iota
	CueStep          // entity moved
	CueStart         // session started
)

// Sound holds the cue an entity wants played this tick
// AudioSystem plays it and resets it to CueNone
type Sound struct {
	Pending SoundCue
}
