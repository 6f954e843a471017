package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/termunator/components"
)

// KeyEscape is the key recorded for Escape
const KeyEscape rune = 0x1b

// keyRune maps a key event to the rune recorded in a KeyState
// tcell key codes are not control codes, Ctrl-C and Escape are mapped explicitly
func keyRune(ev *tcell.EventKey) (rune, bool) {
	switch ev.Key() {
	case tcell.KeyRune:
		return ev.Rune(), true
	case tcell.KeyCtrlC:
		return components.KeyInterrupt, true
	case tcell.KeyEscape:
		return KeyEscape, true
	default:
		return 0, false
	}
}
