package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

const (
	logFileName = "termunator.log"
	maxLogSize  = 10 * 1024 * 1024
)

// setupLogging returns a file logger when debug is set, otherwise a logger that discards
// The terminal is in raw mode while playing, so stdout and stderr are never log targets
// An oversized previous log is rotated aside with a timestamp suffix
func setupLogging(debug bool, dir string) (zerolog.Logger, *os.File) {
	if !debug {
		return zerolog.New(io.Discard).Level(zerolog.Disabled), nil
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return zerolog.New(io.Discard).Level(zerolog.Disabled), nil
	}

	logPath := filepath.Join(dir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(dir, fmt.Sprintf("termunator_%s.log", time.Now().Format("20060102_150405")))
		_ = os.Rename(logPath, rotated)
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.New(io.Discard).Level(zerolog.Disabled), nil
	}

	logger := zerolog.New(f).With().Timestamp().Str("game", "nave").Logger().Level(zerolog.DebugLevel)
	return logger, f
}
