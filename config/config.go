// Package config loads termunator settings from defaults, an optional file and the environment
package config

import (
	"os"

	jlconfig "github.com/JeremyLoy/config"
	"github.com/rotisserie/eris"

	"github.com/lixenwraith/termunator/constants"
)

// EnvPrefix namespaces every environment key
const EnvPrefix = "TERMUNATOR_"

// Config holds settings shared by the launcher and the games
// Keys in the file and the environment are the tag names, e.g. TERMUNATOR_TICK_RATE=30
type Config struct {
	Width    int  `config:"TERMUNATOR_WIDTH"`
	Height   int  `config:"TERMUNATOR_HEIGHT"`
	TickRate int  `config:"TERMUNATOR_TICK_RATE"`
	Border   bool `config:"TERMUNATOR_BORDER"`

	Debug  bool   `config:"TERMUNATOR_DEBUG"`
	LogDir string `config:"TERMUNATOR_LOG_DIR"`

	AudioEnabled bool    `config:"TERMUNATOR_AUDIO_ENABLED"`
	MasterVolume float64 `config:"TERMUNATOR_MASTER_VOLUME"`
	SampleRate   int     `config:"TERMUNATOR_SAMPLE_RATE"`

	GamesDir string `config:"TERMUNATOR_GAMES_DIR"`
	Runner   string `config:"TERMUNATOR_RUNNER"`
}

// Default returns the built-in settings
func Default() Config {
	return Config{
		Width:        constants.DefaultWidth,
		Height:       constants.DefaultHeight,
		TickRate:     constants.DefaultTickRate,
		Border:       true,
		LogDir:       "logs",
		AudioEnabled: false,
		MasterVolume: 0.5,
		SampleRate:   44100,
		GamesDir:     "games",
		Runner:       "go run .",
	}
}

// Load applies, in order: defaults, the key=value file at path when it exists, then the environment
// An empty path skips the file
func Load(path string) (Config, error) {
	cfg := Default()

	b := jlconfig.FromEnv()
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			b = jlconfig.From(path).FromEnv()
		} else if !os.IsNotExist(err) {
			return cfg, eris.Wrapf(err, "stat config file %s", path)
		}
	}

	if err := b.To(&cfg); err != nil {
		return cfg, eris.Wrap(err, "load config")
	}
	cfg.Normalize()
	return cfg, nil
}

// Normalize resets out-of-range values to defaults and clamps the volume
func (c *Config) Normalize() {
	d := Default()
	if c.Width <= 0 {
		c.Width = d.Width
	}
	if c.Height <= 0 {
		c.Height = d.Height
	}
	if c.TickRate <= 0 {
		c.TickRate = d.TickRate
	}
	if c.TickRate > constants.MaxTickRate {
		c.TickRate = constants.MaxTickRate
	}
	if c.SampleRate <= 0 {
		c.SampleRate = d.SampleRate
	}
	if c.MasterVolume < 0 {
		c.MasterVolume = 0
	}
	if c.MasterVolume > 1 {
		c.MasterVolume = 1
	}
	if c.LogDir == "" {
		c.LogDir = d.LogDir
	}
	if c.GamesDir == "" {
		c.GamesDir = d.GamesDir
	}
	if c.Runner == "" {
		c.Runner = d.Runner
	}
}
