// Command termunator lists the games in the games directory and runs the chosen one
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"golang.org/x/term"

	"github.com/lixenwraith/termunator/config"
)

var (
	configFlag = flag.String("config", "termunator.conf", "Path to key=value config file")
	gamesFlag  = flag.String("games", "", "Games directory (overrides config)")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *gamesFlag != "" {
		cfg.GamesDir = *gamesFlag
	}

	level := zerolog.WarnLevel
	if cfg.Debug {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()

	color := term.IsTerminal(int(os.Stdout.Fd()))
	l := NewLauncher(os.Stdin, os.Stdout, cfg.GamesDir, cfg.Runner, color, logger)
	if err := l.Run(); err != nil {
		if errors.Is(err, ErrNoGames) {
			return
		}
		logger.Error().Err(err).Msg("launcher failed")
		os.Exit(1)
	}
}
