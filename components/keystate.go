package components

// KeyInterrupt is the key recorded for Ctrl-C
const KeyInterrupt rune = 0x03

// KeyState records which keys were observed this tick
// A key reads pressed for exactly the tick in which it was observed
type KeyState struct {
	Keys map[rune]bool
}

// NewKeyState creates an empty key state
func NewKeyState() KeyState {
	return KeyState{Keys: make(map[rune]bool)}
}

// SetKey records the pressed state of a key
func (k *KeyState) SetKey(key rune, pressed bool) {
	if k.Keys == nil {
		k.Keys = make(map[rune]bool)
	}
	k.Keys[key] = pressed
}

// IsPressed returns whether key is marked pressed
func (k KeyState) IsPressed(key rune) bool {
	return k.Keys[key]
}

// Release clears every key mark
func (k *KeyState) Release() {
	for key := range k.Keys {
		k.Keys[key] = false
	}
}
