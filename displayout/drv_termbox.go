package displayout

import (
	"fmt"
	"io"
	"os"

	"github.com/nsf/termbox-go"
	"github.com/skx/chip8ulator/display"
)

// TermboxOutputDriver draws frames via termbox.
//
// termbox writes to the controlling terminal itself, the writer is
// accepted for interface compatibility only.
type TermboxOutputDriver struct {
	writer io.Writer
}

// GetName returns the name of this driver.
func (to *TermboxOutputDriver) GetName() string {
	return "termbox"
}

// Setup initializes termbox.  The term input driver may already have
// done so, termbox.Init copes with that.
func (to *TermboxOutputDriver) Setup() error {
	if err := termbox.Init(); err != nil {
		return fmt.Errorf("failed to initialize termbox: %w", err)
	}
	termbox.HideCursor()
	return termbox.Clear(termbox.ColorDefault, termbox.ColorDefault)
}

// TearDown closes termbox.
func (to *TermboxOutputDriver) TearDown() error {
	if termbox.IsInit {
		termbox.Close()
	}
	return nil
}

// Render writes every cell then flushes.
func (to *TermboxOutputDriver) Render(frame display.Frame) {
	if !termbox.IsInit {
		return
	}
	for row := 0; row < Rows; row++ {
		for x := 0; x < display.Width; x++ {
			termbox.SetCell(x, row, cell(&frame, x, row), termbox.ColorWhite, termbox.ColorBlack)
		}
	}
	termbox.Flush()
}

// SetWriter will update the writer.
func (to *TermboxOutputDriver) SetWriter(w io.Writer) {
	to.writer = w
}

func init() {
	Register("termbox", func() DisplayOutput {
		return &TermboxOutputDriver{
			writer: os.Stdout,
		}
	})
}
