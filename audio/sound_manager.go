package audio

import (
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/termunator/constants"
)

// SoundManager owns the speaker and mixes one-shot effects into it
type SoundManager struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	mixer       *beep.Mixer
	initialized bool
	played      int
	logger      zerolog.Logger

	initSpeaker  func(rate beep.SampleRate, bufferSize int) error
	startMixer   func(s beep.Streamer)
	closeSpeaker func()
}

// NewSoundManager creates a manager; nil cfg uses DefaultAudioConfig
func NewSoundManager(cfg *AudioConfig, logger zerolog.Logger) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	return &SoundManager{
		cfg:    cfg,
		mixer:  &beep.Mixer{},
		logger: logger.With().Str("component", "audio").Logger(),
		initSpeaker: func(rate beep.SampleRate, bufferSize int) error {
			return speaker.Init(rate, bufferSize)
		},
		startMixer:   func(s beep.Streamer) { speaker.Play(s) },
		closeSpeaker: speaker.Close,
	}
}

// Initialize opens the speaker; a disabled config leaves the manager silent
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.cfg.Enabled {
		return nil
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := sm.initSpeaker(rate, rate.N(constants.AudioBufferDuration)); err != nil {
		return eris.Wrap(err, "initialize speaker")
	}

	sm.startMixer(sm.mixer)
	sm.initialized = true
	sm.logger.Debug().Int("sample_rate", sm.cfg.SampleRate).Float64("volume", sm.cfg.MasterVolume).Msg("speaker ready")
	return nil
}

// Play queues a one-shot effect; no-op before Initialize
func (sm *SoundManager) Play(sound SoundType) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	s := CreateSound(sound, sm.cfg)
	if s == nil {
		sm.logger.Warn().Int("sound", int(sound)).Msg("unknown sound")
		return
	}

	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
	sm.played++
}

// Played returns how many effects were queued
func (sm *SoundManager) Played() int {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.played
}

// Initialized reports whether the speaker is open
func (sm *SoundManager) Initialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// Cleanup silences all queued effects and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.closeSpeaker()
	sm.initialized = false
	sm.logger.Debug().Msg("speaker closed")
}
