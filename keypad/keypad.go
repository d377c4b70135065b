// Package keypad holds the state of the sixteen-key hexadecimal keypad.
//
// Only the current state of each key is recorded; there is no queue of
// events, the CPU polls the keys when it needs them.
package keypad

// Keys is the number of keys on the pad.
const Keys = 16

// Keypad records which keys are held down.
type Keypad struct {
	keys [Keys]bool
}

// New returns a keypad with no keys pressed.
func New() *Keypad {
	return new(Keypad)
}

// Get returns true if the given key is held down.
//
// Keys outside the range 0x0-0xF are never pressed.
func (k *Keypad) Get(key uint8) bool {
	if int(key) >= Keys {
		return false
	}
	return k.keys[key]
}

// Set records the state of a key, out of range keys are ignored.
func (k *Keypad) Set(key uint8, pressed bool) {
	if int(key) >= Keys {
		return
	}
	k.keys[key] = pressed
}

// Reset releases every key.
func (k *Keypad) Reset() {
	k.keys = [Keys]bool{}
}

// Pressed returns the keys currently held down, in ascending order.
func (k *Keypad) Pressed() []uint8 {
	var ret []uint8
	for i, down := range k.keys {
		if down {
			ret = append(ret, uint8(i))
		}
	}
	return ret
}
