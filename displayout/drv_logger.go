package displayout

import (
	"io"
	"os"

	"github.com/skx/chip8ulator/display"
)

// OutputLoggingDriver holds our state.
type OutputLoggingDriver struct {

	// writer is where we send our output
	writer io.Writer

	// last holds the most recent frame.
	last display.Frame

	// frames counts the calls to Render.
	frames int
}

// GetName returns the name of this driver.
//
// This is part of the DisplayOutput interface.
func (ol *OutputLoggingDriver) GetName() string {
	return "logger"
}

// Render records the frame, as this is a recording-driver nothing is
// displayed.
//
// This is part of the DisplayOutput interface.
func (ol *OutputLoggingDriver) Render(frame display.Frame) {
	ol.last = frame
	ol.frames++
}

// SetWriter will update the writer.
func (ol *OutputLoggingDriver) SetWriter(w io.Writer) {
	ol.writer = w
}

// GetOutput returns the most recent frame, as text.
//
// This is part of the DisplayRecorder interface
func (ol *OutputLoggingDriver) GetOutput() string {
	return ol.last.String()
}

// Frames returns the number of frames rendered.
//
// This is part of the DisplayRecorder interface
func (ol *OutputLoggingDriver) Frames() int {
	return ol.frames
}

// Reset forgets the frames.
//
// This is part of the DisplayRecorder interface
func (ol *OutputLoggingDriver) Reset() {
	ol.last = display.Frame{}
	ol.frames = 0
}

// init registers our driver, by name.
func init() {
	Register("logger", func() DisplayOutput {
		return &OutputLoggingDriver{
			writer: os.Stdout,
		}
	})
}
