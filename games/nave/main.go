// Command nave flies a small ship around the terminal with w/a/s/d; q quits
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/pkg/profile"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/termunator/audio"
	"github.com/lixenwraith/termunator/config"
	"github.com/lixenwraith/termunator/core"
	"github.com/lixenwraith/termunator/engine"
	"github.com/lixenwraith/termunator/terminal"
)

var (
	configFlag  = flag.String("config", "termunator.conf", "Path to key=value config file")
	debugFlag   = flag.Bool("debug", false, "Write debug log to the log directory")
	profileFlag = flag.Bool("profile", false, "Write a CPU profile to the log directory")
	borderFlag  = flag.Bool("border", true, "Draw a border around the work area")
	audioFlag   = flag.Bool("audio", false, "Enable sound effects")
	widthFlag   = flag.Int("width", 0, "Requested work area width")
	heightFlag  = flag.Int("height", 0, "Requested work area height")
	tpsFlag     = flag.Int("tps", 0, "Ticks per second")
)

func main() {
	os.Exit(run())
}

// run plays one session and returns the process exit code
// Deferred teardown runs before main exits
func run() int {
	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		return 1
	}
	applyFlags(&cfg)

	logger, logFile := setupLogging(cfg.Debug, cfg.LogDir)
	if logFile != nil {
		defer logFile.Close()
	}

	var prof interface{ Stop() }
	if *profileFlag {
		prof = profile.Start(profile.CPUProfile, profile.ProfilePath(cfg.LogDir), profile.Quiet)
		defer prof.Stop()
	}

	screen := terminal.New()
	world := engine.NewWorld(engine.WithEnvironment(screen), engine.WithLogger(logger))

	sounds := audio.NewSoundManager(&audio.AudioConfig{
		Enabled:      cfg.AudioEnabled,
		MasterVolume: cfg.MasterVolume,
		SampleRate:   cfg.SampleRate,
	}, logger)
	if err := sounds.Initialize(); err != nil {
		logger.Warn().Err(err).Msg("audio unavailable, continuing without sound")
	}
	defer sounds.Cleanup()

	// A panic must never leave the terminal in raw mode
	// HandleCrash exits, so the restore hook repeats the deferred teardown
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r, func() {
				closeWorld(world, logger, os.Stderr)
				sounds.Cleanup()
				if prof != nil {
					prof.Stop()
				}
				if logFile != nil {
					_ = logFile.Sync()
					_ = logFile.Close()
				}
			})
		}
	}()

	g := newGame(world, screen, cfg, sounds)
	if err := g.start(); err != nil {
		closeWorld(world, logger, os.Stderr)
		logger.Error().Err(err).Msg("start failed")
		fmt.Fprintf(os.Stderr, "Failed to start: %v\n", err)
		return 1
	}

	g.run()

	engine.LogWorld(&logger, world, zerolog.InfoLevel)
	if err := closeWorld(world, logger, os.Stderr); err != nil {
		return 1
	}
	return 0
}

// closeWorld restores the terminal; a failed restore is logged and reported on w
func closeWorld(world *engine.World, logger zerolog.Logger, w io.Writer) error {
	err := world.Close()
	if err != nil {
		logger.Error().Err(err).Msg("terminal teardown failed")
		fmt.Fprintf(w, "Failed to restore terminal: %v\n", err)
	}
	return err
}

// applyFlags overrides loaded values with flags given on the command line
func applyFlags(cfg *config.Config) {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "debug":
			cfg.Debug = *debugFlag
		case "border":
			cfg.Border = *borderFlag
		case "audio":
			cfg.AudioEnabled = *audioFlag
		case "width":
			cfg.Width = *widthFlag
		case "height":
			cfg.Height = *heightFlag
		case "tps":
			cfg.TickRate = *tpsFlag
		}
	})
	cfg.Normalize()
}
