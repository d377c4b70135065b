package gui

import (
	"image/color"
	"testing"

	"github.com/skx/chip8ulator/display"
)

func TestFrameToRGBA(t *testing.T) {
	d := display.New()
	d.SetPixel(1, 0, true)
	d.SetPixel(63, 31, true)
	f := d.Snapshot()

	on := color.RGBA{R: 1, G: 2, B: 3, A: 4}
	off := color.RGBA{R: 9, G: 9, B: 9, A: 9}

	out := FrameToRGBA(&f, on, off)
	if len(out) != display.Width*display.Height*4 {
		t.Fatalf("unexpected size %d", len(out))
	}

	// pixel 0 is off, pixel 1 is on
	if out[0] != 9 || out[3] != 9 {
		t.Fatalf("pixel 0 should be off")
	}
	if out[4] != 1 || out[5] != 2 || out[6] != 3 || out[7] != 4 {
		t.Fatalf("pixel 1 should be on")
	}
	last := len(out) - 4
	if out[last] != 1 {
		t.Fatalf("last pixel should be on")
	}
}

// fake is a Machine for testing.
type fake struct {
	halted  bool
	waiting bool
	held    []uint8
}

func (f *fake) RunFrame() error              { return nil }
func (f *fake) SetKey(k uint8, pressed bool) {}
func (f *fake) Pressed() []uint8             { return f.held }
func (f *fake) Snapshot() display.Frame      { return display.Frame{} }
func (f *fake) Halted() bool                 { return f.halted }
func (f *fake) AwaitingKey() bool            { return f.waiting }
func (f *fake) TimerSpeed() int              { return 60 }

func TestStatus(t *testing.T) {
	m := &fake{}
	if status(m) != "" {
		t.Fatalf("unexpected status")
	}
	m.held = []uint8{0x1, 0xA}
	if status(m) != "keys: 1 A" {
		t.Fatalf("unexpected status %s", status(m))
	}
	m.waiting = true
	if status(m) != "waiting for key" {
		t.Fatalf("unexpected status %s", status(m))
	}
	m.halted = true
	if status(m) != "HALTED" {
		t.Fatalf("unexpected status %s", status(m))
	}
}

func TestDefaultConfig(t *testing.T) {
	c := DefaultConfig()
	if c.Scale <= 0 || c.Title == "" || c.On == c.Off {
		t.Fatalf("bogus default config %+v", c)
	}
}
