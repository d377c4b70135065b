//go:build !headless

package gui

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/skx/chip8ulator/display"
	"github.com/skx/chip8ulator/keypadin"
)

// keys maps the host keyboard onto the keypad, with the same layout the
// terminal drivers use.
var keys = map[ebiten.Key]uint8{
	ebiten.KeyDigit1: 0x1, ebiten.KeyDigit2: 0x2, ebiten.KeyDigit3: 0x3, ebiten.KeyDigit4: 0xC,
	ebiten.KeyQ: 0x4, ebiten.KeyW: 0x5, ebiten.KeyE: 0x6, ebiten.KeyR: 0xD,
	ebiten.KeyA: 0x7, ebiten.KeyS: 0x8, ebiten.KeyD: 0x9, ebiten.KeyF: 0xE,
	ebiten.KeyZ: 0xA, ebiten.KeyX: 0x0, ebiten.KeyC: 0xB, ebiten.KeyV: 0xF,
}

// game implements ebiten.Game.
type game struct {
	machine Machine
	config  Config

	// frame is copied in Update, and drawn in Draw.
	frame  display.Frame
	screen *ebiten.Image
	err    error
}

// Update runs one frame of the emulator.
func (g *game) Update() error {
	if ebiten.IsWindowBeingClosed() || ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	for k, v := range keys {
		g.machine.SetKey(v, ebiten.IsKeyPressed(k))
	}

	err := g.machine.RunFrame()
	switch {
	case errors.Is(err, keypadin.ErrQuit):
		return ebiten.Termination
	case err != nil && !g.machine.Halted():
		g.err = err
		return ebiten.Termination
	}

	g.frame = g.machine.Snapshot()
	return nil
}

// Draw scales the frame up to the window.
func (g *game) Draw(screen *ebiten.Image) {
	if g.screen == nil {
		g.screen = ebiten.NewImage(display.Width, display.Height)
	}
	g.screen.WritePixels(FrameToRGBA(&g.frame, g.config.On, g.config.Off))

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(g.config.Scale), float64(g.config.Scale))
	screen.DrawImage(g.screen, op)

	if msg := status(g.machine); msg != "" {
		ebitenutil.DebugPrint(screen, msg)
	}
}

// Layout returns the fixed window size.
func (g *game) Layout(_, _ int) (int, int) {
	return display.Width * g.config.Scale, display.Height * g.config.Scale
}

// Run opens a window and runs the machine until it is closed.
func Run(m Machine, config Config) error {
	if config.Scale <= 0 {
		config.Scale = DefaultConfig().Scale
	}
	if config.On.A == 0 && config.Off.A == 0 {
		def := DefaultConfig()
		config.On, config.Off = def.On, def.Off
	}

	ebiten.SetWindowSize(display.Width*config.Scale, display.Height*config.Scale)
	ebiten.SetWindowTitle(config.Title)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetRunnableOnUnfocused(true)
	ebiten.SetTPS(m.TimerSpeed())

	g := &game{machine: m, config: config}
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("window failed: %w", err)
	}
	return g.err
}
