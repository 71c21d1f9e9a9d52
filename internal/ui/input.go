package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/diegok/pong/internal/game"
)

// Terminals report key presses and autorepeats but no releases, so a binding
// counts as held for this many frames after its last press.
const KeyHoldTicks = 10

// KeyToBinding maps a key event to a paddle binding.
// W/S drive the left paddle, the arrow keys drive the right one.
func KeyToBinding(key tcell.Key, r rune) (game.Key, bool) {
	switch key {
	case tcell.KeyUp:
		return game.KeyRightUp, true
	case tcell.KeyDown:
		return game.KeyRightDown, true
	case tcell.KeyRune:
		switch r {
		case 'w', 'W':
			return game.KeyLeftUp, true
		case 's', 'S':
			return game.KeyLeftDown, true
		}
	}
	return 0, false
}

// IsQuitKey returns true if the key should quit the application
func IsQuitKey(key tcell.Key, r rune) bool {
	if key == tcell.KeyEscape || key == tcell.KeyCtrlC {
		return true
	}
	if key == tcell.KeyRune && (r == 'q' || r == 'Q') {
		return true
	}
	return false
}

// KeyTracker turns a stream of key presses into per-frame held keys
type KeyTracker struct {
	held map[game.Key]int
}

func NewKeyTracker() *KeyTracker {
	return &KeyTracker{held: make(map[game.Key]int)}
}

// Press marks key as held and releases the opposite direction of the same
// paddle at once.
func (k *KeyTracker) Press(key game.Key) {
	k.held[key] = KeyHoldTicks
	delete(k.held, opposite(key))
}

// Tick counts one frame down on every held key
func (k *KeyTracker) Tick() {
	for key, ticks := range k.held {
		if ticks <= 1 {
			delete(k.held, key)
			continue
		}
		k.held[key] = ticks - 1
	}
}

// Keys returns the bindings held this frame
func (k *KeyTracker) Keys() game.Keys {
	var keys game.Keys
	for key := range k.held {
		keys = keys.With(key)
	}
	return keys
}

func opposite(key game.Key) game.Key {
	switch key {
	case game.KeyLeftUp:
		return game.KeyLeftDown
	case game.KeyLeftDown:
		return game.KeyLeftUp
	case game.KeyRightUp:
		return game.KeyRightDown
	case game.KeyRightDown:
		return game.KeyRightUp
	}
	return 0
}
