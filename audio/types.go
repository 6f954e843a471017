package audio

// SoundType identifies a synthesized sound effect
type SoundType int

const (
	SoundStep  SoundType = iota // Short tick when the player moves
	SoundStart                  // Rising chime when a game starts
	soundTypeCount
)

// String returns the lowercase effect name used in logs
func (s SoundType) String() string {
	switch s {
	case SoundStep:
		return "step"
	case SoundStart:
		return "start"
	default:
		return "unknown"
	}
}

// AudioConfig holds playback settings
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64 // 0.0 to 1.0
	SampleRate    int
	EffectVolumes map[SoundType]float64
}

// DefaultAudioConfig returns audio settings with every effect at full relative volume
func DefaultAudioConfig() *AudioConfig {
	cfg := &AudioConfig{
		Enabled:       true,
		MasterVolume:  0.5,
		SampleRate:    44100,
		EffectVolumes: make(map[SoundType]float64, soundTypeCount),
	}
	cfg.EffectVolumes[SoundStep] = 0.4
	cfg.EffectVolumes[SoundStart] = 0.8
	return cfg
}

// effectVolume resolves the final gain for a sound, defaulting missing entries to 1
func (c *AudioConfig) effectVolume(s SoundType) float64 {
	v, ok := c.EffectVolumes[s]
	if !ok {
		v = 1
	}
	return v * c.MasterVolume
}
