// Package gui runs the emulator in a window, rather than a terminal.
//
// Windowed input sees real key releases, so there is no need for the
// hold-down emulation the terminal drivers use.  Building with the
// "headless" tag removes the dependency upon a display server.
package gui

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	"github.com/skx/chip8ulator/display"
)

// ErrUnavailable is returned by Run when the binary was built without
// window support.
var ErrUnavailable = errors.New("window support not available in this build")

// Machine is the part of the emulator the window drives.
type Machine interface {
	RunFrame() error
	SetKey(key uint8, pressed bool)
	Pressed() []uint8
	Snapshot() display.Frame
	Halted() bool
	AwaitingKey() bool
	TimerSpeed() int
}

// Config holds the window settings.
type Config struct {
	// Scale is the size of each CHIP-8 pixel, in screen pixels.
	Scale int

	// Title is shown in the window decoration.
	Title string

	// On and Off are the pixel colours.
	On  color.RGBA
	Off color.RGBA
}

// DefaultConfig returns green-on-black at ten times scale.
func DefaultConfig() Config {
	return Config{
		Scale: 10,
		Title: "chip8ulator",
		On:    color.RGBA{R: 0x33, G: 0xFF, B: 0x66, A: 0xFF},
		Off:   color.RGBA{A: 0xFF},
	}
}

// FrameToRGBA converts a frame to RGBA bytes, four per pixel, row-major.
func FrameToRGBA(frame *display.Frame, on, off color.RGBA) []byte {
	out := make([]byte, display.Width*display.Height*4)
	for y := 0; y < display.Height; y++ {
		for x := 0; x < display.Width; x++ {
			c := off
			if frame[y][x] {
				c = on
			}
			i := (y*display.Width + x) * 4
			out[i+0] = c.R
			out[i+1] = c.G
			out[i+2] = c.B
			out[i+3] = c.A
		}
	}
	return out
}

// status returns the text shown over the display.
func status(m Machine) string {
	switch {
	case m.Halted():
		return "HALTED"
	case m.AwaitingKey():
		return "waiting for key"
	}

	held := m.Pressed()
	if len(held) == 0 {
		return ""
	}
	keys := make([]string, len(held))
	for i, k := range held {
		keys[i] = fmt.Sprintf("%X", k)
	}
	return "keys: " + strings.Join(keys, " ")
}
