package terminal

import (
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/rotisserie/eris"
)

// ErrNotClaimed is returned when the screen is used before Claim
var ErrNotClaimed = eris.New("terminal not claimed")

// Screen is the terminal environment: engine.Environment, systems.InputSource and render.Canvas
// It is driven from the game loop goroutine; Release may also be called from a crash handler
type Screen struct {
	mu        sync.Mutex
	screen    tcell.Screen
	newScreen func() (tcell.Screen, error)
	claimed   bool
	resized   bool
}

// New creates a screen that opens the controlling terminal on Claim
func New() *Screen {
	return &Screen{newScreen: tcell.NewScreen}
}

// NewWithScreen wraps an existing tcell screen, e.g. tcell.NewSimulationScreen in tests
func NewWithScreen(s tcell.Screen) *Screen {
	return &Screen{screen: s}
}

// Claim initializes tcell: raw input, alternate screen, hidden cursor
func (t *Screen) Claim() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.claimed {
		return nil
	}
	if t.screen == nil {
		s, err := t.newScreen()
		if err != nil {
			return eris.Wrap(err, "open terminal")
		}
		t.screen = s
	}
	if err := t.screen.Init(); err != nil {
		return eris.Wrap(err, "enter raw mode")
	}
	t.screen.HideCursor()
	t.screen.Clear()
	t.claimed = true
	return nil
}

// Capacity reports the terminal size in cells
func (t *Screen) Capacity() (int, int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.claimed {
		return 0, 0, ErrNotClaimed
	}
	w, h := t.screen.Size()
	if w <= 0 || h <= 0 {
		return 0, 0, eris.Errorf("terminal reported invalid size %dx%d", w, h)
	}
	return w, h, nil
}

// Show flushes the drawn frame
func (t *Screen) Show() {
	if s := t.active(); s != nil {
		s.Show()
	}
}

// Drain discards every pending event
func (t *Screen) Drain() {
	s := t.active()
	if s == nil {
		return
	}
	for s.HasPendingEvent() {
		if ev := s.PollEvent(); ev == nil {
			return
		}
	}
}

// PollKeys returns the keys pressed since the last poll without blocking
// Resize events are consumed and flagged; other events are dropped
func (t *Screen) PollKeys() []rune {
	s := t.active()
	if s == nil {
		return nil
	}

	var keys []rune
	for s.HasPendingEvent() {
		switch ev := s.PollEvent().(type) {
		case nil:
			return keys
		case *tcell.EventKey:
			if r, ok := keyRune(ev); ok {
				keys = append(keys, r)
			}
		case *tcell.EventResize:
			s.Sync()
			t.mu.Lock()
			t.resized = true
			t.mu.Unlock()
		}
	}
	return keys
}

// Resized reports and clears whether the terminal was resized since the last call
func (t *Screen) Resized() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	r := t.resized
	t.resized = false
	return r
}

// Size returns the current terminal size, zero before Claim
func (t *Screen) Size() (int, int) {
	if s := t.active(); s != nil {
		return s.Size()
	}
	return 0, 0
}

// SetContent draws one cell; out-of-range coordinates are ignored by tcell
func (t *Screen) SetContent(x, y int, r rune, style tcell.Style) {
	if s := t.active(); s != nil {
		s.SetContent(x, y, r, nil, style)
	}
}

// Clear blanks the back buffer
func (t *Screen) Clear() {
	if s := t.active(); s != nil {
		s.Clear()
	}
}

// Release restores the terminal: cursor, cooked mode, primary screen
// Only the first call after Claim has an effect
func (t *Screen) Release() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.claimed {
		return nil
	}
	t.claimed = false
	t.screen.ShowCursor(0, 0)
	t.screen.Fini()
	return nil
}

// Claimed reports whether the terminal is currently held
func (t *Screen) Claimed() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.claimed
}

func (t *Screen) active() tcell.Screen {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.claimed {
		return nil
	}
	return t.screen
}
