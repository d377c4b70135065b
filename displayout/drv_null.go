package displayout

import (
	"io"
	"os"

	"github.com/skx/chip8ulator/display"
)

// NullOutputDriver holds our state.
type NullOutputDriver struct {

	// writer is where we send our output
	writer io.Writer
}

// GetName returns the name of this driver.
//
// This is part of the DisplayOutput interface.
func (no *NullOutputDriver) GetName() string {
	return "null"
}

// Render discards the frame.
func (no *NullOutputDriver) Render(frame display.Frame) {
	// NOTHING happens
}

// SetWriter will update the writer.
func (no *NullOutputDriver) SetWriter(w io.Writer) {
	no.writer = w
}

// init registers our driver, by name.
func init() {
	Register("null", func() DisplayOutput {
		return &NullOutputDriver{
			writer: os.Stdout,
		}
	})
}
