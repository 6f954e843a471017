// @focus: #sys { audio }
package systems

import (
	"github.com/lixenwraith/termunator/audio"
	"github.com/lixenwraith/termunator/components"
	"github.com/lixenwraith/termunator/engine"
)

// SoundPlayer plays synthesized effects
type SoundPlayer interface {
	Play(sound audio.SoundType)
}

// AudioSystem plays pending sound cues and resets them
type AudioSystem struct {
	player SoundPlayer
}

// NewAudioSystem creates the audio system; a nil player silently drops cues
func NewAudioSystem(player SoundPlayer) *AudioSystem {
	return &AudioSystem{player: player}
}

func (s *AudioSystem) Update(cs *engine.ComponentStore) {
	for _, m := range engine.QuerySingle[components.Sound](cs) {
		cue := m.First.Pending
		if cue == components.CueNone {
			continue
		}
		m.First.Pending = components.CueNone

		if s.player == nil {
			continue
		}
		if sound, ok := soundFor(cue); ok {
			s.player.Play(sound)
		}
	}
}

func soundFor(cue components.SoundCue) (audio.SoundType, bool) {
	switch cue {
	case components.CueStep:
		return audio.SoundStep, true
	case components.CueStart:
		return audio.SoundStart, true
	default:
		return 0, false
	}
}
