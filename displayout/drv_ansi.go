package displayout

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/skx/chip8ulator/display"
)

// AnsiOutputDriver holds our state.
type AnsiOutputDriver struct {
	// writer is where we send our output
	writer io.Writer
}

// GetName returns the name of this driver.
//
// This is part of the DisplayOutput interface.
func (ad *AnsiOutputDriver) GetName() string {
	return "ansi"
}

// Render homes the cursor and redraws the whole frame.
//
// This is part of the DisplayOutput interface.
func (ad *AnsiOutputDriver) Render(frame display.Frame) {
	var sb strings.Builder
	sb.WriteString("\033[H")
	for _, line := range halfBlocks(&frame) {
		sb.WriteString(line)
		sb.WriteString("\r\n")
	}
	fmt.Fprint(ad.writer, sb.String())
}

// Setup clears the screen and hides the cursor.
func (ad *AnsiOutputDriver) Setup() error {
	_, err := fmt.Fprint(ad.writer, "\033[2J\033[?25l")
	return err
}

// TearDown shows the cursor again.
func (ad *AnsiOutputDriver) TearDown() error {
	_, err := fmt.Fprint(ad.writer, "\033[?25h\r\n")
	return err
}

// SetWriter will update the writer.
func (ad *AnsiOutputDriver) SetWriter(w io.Writer) {
	ad.writer = w
}

// init registers our driver, by name.
func init() {
	Register("ansi", func() DisplayOutput {
		return &AnsiOutputDriver{
			writer: os.Stdout,
		}
	})
}
