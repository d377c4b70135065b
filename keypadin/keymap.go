package keypadin

import "unicode"

// Keymap places the COSMAC VIP keypad on the left of a QWERTY keyboard:
//
//	1 2 3 4        1 2 3 C
//	q w e r   ->   4 5 6 D
//	a s d f        7 8 9 E
//	z x c v        A 0 B F
var Keymap = map[rune]uint8{
	'1': 0x1, '2': 0x2, '3': 0x3, '4': 0xC,
	'q': 0x4, 'w': 0x5, 'e': 0x6, 'r': 0xD,
	'a': 0x7, 's': 0x8, 'd': 0x9, 'f': 0xE,
	'z': 0xA, 'x': 0x0, 'c': 0xB, 'v': 0xF,
}

// KeyFor returns the keypad key for a host character.
func KeyFor(r rune) (uint8, bool) {
	k, ok := Keymap[unicode.ToLower(r)]
	return k, ok
}

// DefaultHoldFrames is how many polls a terminal key stays down after
// it was last seen, about 100ms at 60Hz.
const DefaultHoldFrames = 6

// holder simulates key releases for input sources which only report
// presses.
type holder struct {
	frames int
	left   [16]int
}

// press marks the key as down, restarting its countdown.
func (h *holder) press(k uint8) {
	if k < 16 {
		h.left[k] = h.frames
	}
}

// apply updates the keypad, and counts every held key down by one poll.
func (h *holder) apply(keys KeySetter) {
	for k := range h.left {
		if h.left[k] > 0 {
			keys.Set(uint8(k), true)
			h.left[k]--
		} else {
			keys.Set(uint8(k), false)
		}
	}
}

// release lets go of every key.
func (h *holder) release(keys KeySetter) {
	h.left = [16]int{}
	h.apply(keys)
}
