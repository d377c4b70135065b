//go:build unix

// drv_stty creates an input-driver which puts the terminal into raw
// mode itself, and reads whatever bytes are pending on STDIN.
//
// This is obviously not portable outwith Unix-like systems.

package keypadin

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// STTYInput is an input-driver that reads STDIN directly.
type STTYInput struct {

	// oldState contains the state of the terminal, before switching to RAW mode
	oldState *term.State

	// held turns presses into presses-with-release.
	held holder

	// stuffed holds fake input which is consumed before STDIN.
	stuffed string
}

// Setup switches STDIN into raw mode.
func (si *STTYInput) Setup() error {
	if si.held.frames == 0 {
		si.held.frames = DefaultHoldFrames
	}

	state, err := term.MakeRaw(int(os.Stdin.Fd()))
	if err != nil {
		return fmt.Errorf("error making raw terminal: %w", err)
	}
	si.oldState = state
	return nil
}

// TearDown resets the state of the terminal.
func (si *STTYInput) TearDown() error {
	if si.oldState == nil {
		return nil
	}
	err := term.Restore(int(os.Stdin.Fd()), si.oldState)
	si.oldState = nil
	if err != nil {
		return fmt.Errorf("error restoring terminal state: %w", err)
	}
	return nil
}

// StuffInput inserts fake values into our input-buffer.
func (si *STTYInput) StuffInput(input string) {
	si.stuffed = input
}

// pending returns the bytes waiting to be read.
func (si *STTYInput) pending() []byte {
	if len(si.stuffed) > 0 {
		b := []byte(si.stuffed)
		si.stuffed = ""
		return b
	}

	var out []byte
	buf := make([]byte, 16)
	for canSelect() {
		n, err := os.Stdin.Read(buf)
		if n <= 0 || err != nil {
			break
		}
		out = append(out, buf[:n]...)
	}
	return out
}

// Poll processes any pending keystrokes.
//
// Escape, or Ctrl-C, quits.
func (si *STTYInput) Poll(keys KeySetter) error {
	if si.held.frames == 0 {
		si.held.frames = DefaultHoldFrames
	}

	for _, c := range si.pending() {
		if c == 0x1b || c == 0x03 {
			return ErrQuit
		}
		if k, ok := KeyFor(rune(c)); ok {
			si.held.press(k)
		}
	}

	si.held.apply(keys)
	return nil
}

// GetName is part of the module API, and returns the name of this driver.
func (si *STTYInput) GetName() string {
	return "stty"
}

// init registers our driver, by name.
func init() {
	Register("stty", func() KeypadInput {
		return new(STTYInput)
	})
}
