// drv_file creates an input-driver which reads scripted key presses
// from a file named "input.txt".
//
// The intent is that this driver will be useful for scripted
// automation, and for tests which need a program to see input.

package keypadin

import (
	"fmt"
	"os"
	"time"
)

// FileInput is an input-driver that returns fake key presses by
// reading the content of the file "input.txt".
//
// Each mapped character presses its key for a single poll.  A "#"
// character pauses the script for a second, a "." idles for one poll,
// and an escape character quits.  Anything else is ignored, so the
// script may be split over lines.  Once the script is exhausted all
// keys stay released.
type FileInput struct {

	// offset shows the offset into the buffer we're at
	offset int

	// content contains the content of the script
	content []byte

	// delayUntil is used to see if we're in the middle of a delay,
	// where we pretend we have no input.
	delayUntil time.Time

	// delayLarge is the pause caused by a "#".
	delayLarge time.Duration
}

// Setup reads the contents of the file specified by the
// environmental variable $INPUT_FILE, and saves it away as
// a source of fake input.
//
// If no filename is chosen "input.txt" will be used as a default.
func (fi *FileInput) Setup() error {

	fileName := os.Getenv("INPUT_FILE")
	if fileName == "" {
		fileName = "input.txt"
	}

	dat, err := os.ReadFile(fileName)
	if err != nil {
		return fmt.Errorf("failed to read input script: %w", err)
	}

	fi.load(dat)
	return nil
}

// load resets the script to the given content.
func (fi *FileInput) load(dat []byte) {
	fi.offset = 0
	fi.content = dat
	fi.delayUntil = time.Now()
	if fi.delayLarge == 0 {
		fi.delayLarge = time.Second
	}
}

// TearDown is a NOP.
func (fi *FileInput) TearDown() error {
	return nil
}

// Pending returns true if the script still holds input.
func (fi *FileInput) Pending() bool {
	return fi.offset < len(fi.content)
}

// Poll releases every key, then consumes the next script character.
func (fi *FileInput) Poll(keys KeySetter) error {
	for k := uint8(0); k < 16; k++ {
		keys.Set(k, false)
	}

	// Pretend nothing is happening during a delay.
	if time.Now().Before(fi.delayUntil) {
		return nil
	}

	for fi.offset < len(fi.content) {
		x := fi.content[fi.offset]
		fi.offset++

		switch x {
		case '#':
			fi.delayUntil = time.Now().Add(fi.delayLarge)
			return nil
		case '.':
			return nil
		case 0x1b:
			return ErrQuit
		}

		if k, ok := KeyFor(rune(x)); ok {
			keys.Set(k, true)
			return nil
		}
	}
	return nil
}

// GetName is part of the module API, and returns the name of this driver.
func (fi *FileInput) GetName() string {
	return "file"
}

// init registers our driver, by name.
func init() {
	Register("file", func() KeypadInput {
		return new(FileInput)
	})
}
