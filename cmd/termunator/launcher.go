package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/termunator/constants"
)

// ErrNoGames is returned when the games directory has no subdirectories
var ErrNoGames = eris.New("no games found")

// RunFunc starts a game's runner in dir and waits for it
type RunFunc func(dir string, command []string) error

// Launcher is the interactive game menu
type Launcher struct {
	in       *bufio.Reader
	out      io.Writer
	gamesDir string
	runner   []string
	color    bool
	run      RunFunc
	logger   zerolog.Logger
}

// NewLauncher creates a launcher; runner is split on whitespace, e.g. "go run ."
func NewLauncher(in io.Reader, out io.Writer, gamesDir, runner string, color bool, logger zerolog.Logger) *Launcher {
	return &Launcher{
		in:       bufio.NewReader(in),
		out:      out,
		gamesDir: gamesDir,
		runner:   strings.Fields(runner),
		color:    color,
		run:      execRunner,
		logger:   logger.With().Str("component", "launcher").Logger(),
	}
}

// ListGames returns the names of the subdirectories of dir, sorted
func ListGames(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, eris.Wrapf(err, "read games directory %s", dir)
	}

	var games []string
	for _, e := range entries {
		if e.IsDir() {
			games = append(games, e.Name())
		}
	}
	sort.Strings(games)
	return games, nil
}

// Run shows the menu until the user picks exit or input ends
func (l *Launcher) Run() error {
	games, err := ListGames(l.gamesDir)
	if err != nil {
		return err
	}
	if len(games) == 0 {
		fmt.Fprintf(l.out, "No games found in %s.\n", l.gamesDir)
		return ErrNoGames
	}

	for {
		l.menu(games)

		line, err := l.in.ReadString('\n')
		if err != nil && line == "" {
			fmt.Fprintln(l.out, "Exiting...")
			return nil
		}

		choice, convErr := strconv.Atoi(strings.TrimSpace(line))
		switch {
		case convErr != nil:
			fmt.Fprintln(l.out, "Invalid choice!")
		case choice == constants.LauncherExitItem:
			fmt.Fprintln(l.out, "Exiting...")
			return nil
		case choice > 0 && choice <= len(games):
			l.launch(games[choice-1])
		case choice == len(games)+1:
			l.help()
		default:
			fmt.Fprintln(l.out, "Invalid choice!")
		}
	}
}

func (l *Launcher) menu(games []string) {
	fmt.Fprintf(l.out, "\n%s%s launcher:%s\n", l.paint(constants.ANSIBold), constants.LauncherTitle, l.paint(constants.ANSIReset))
	fmt.Fprintf(l.out, "%d. exit\n", constants.LauncherExitItem)
	for i, g := range games {
		fmt.Fprintf(l.out, "%s%d. %s%s\n", l.paint(constants.ANSICyan), i+1, g, l.paint(constants.ANSIReset))
	}
	fmt.Fprintf(l.out, "%d. how to make a game\n", len(games)+1)
	fmt.Fprint(l.out, "Enter your choice number: ")
}

func (l *Launcher) launch(name string) {
	fmt.Fprintf(l.out, "Starting %s...\n", name)
	dir := filepath.Join(l.gamesDir, name)
	if err := l.run(dir, l.runner); err != nil {
		l.logger.Warn().Err(err).Str("game", name).Msg("game exited with error")
		fmt.Fprintf(l.out, "Error running %s: %v\n", name, err)
	}
}

func (l *Launcher) help() {
	fmt.Fprintf(l.out, "Each subdirectory of %s is a game.\n", l.gamesDir)
	fmt.Fprintln(l.out, "Create a main package there that builds an engine.World, registers systems and calls Update in a loop.")
	fmt.Fprintf(l.out, "The launcher starts it with: %s\n", strings.Join(l.runner, " "))
	fmt.Fprintln(l.out, "\nPress Enter to continue.")
	_, _ = l.in.ReadString('\n')
}

func (l *Launcher) paint(code string) string {
	if !l.color {
		return ""
	}
	return code
}

// execRunner runs command in dir attached to the launcher's terminal
func execRunner(dir string, command []string) error {
	if len(command) == 0 {
		return eris.New("empty runner command")
	}
	cmd := exec.Command(command[0], command[1:]...)
	cmd.Dir = dir
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return eris.Wrapf(err, "run %s", strings.Join(command, " "))
	}
	return nil
}
