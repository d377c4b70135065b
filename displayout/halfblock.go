package displayout

import "github.com/skx/chip8ulator/display"

// Each text cell shows two pixel rows, using the half-block characters.
const (
	upperHalf = '▀'
	lowerHalf = '▄'
	fullBlock = '█'
	blank     = ' '
)

// Rows is the number of text lines a frame occupies.
const Rows = display.Height / 2

// cell returns the character showing the pixels at (x, 2*row) and
// (x, 2*row+1).
func cell(frame *display.Frame, x, row int) rune {
	top := frame.At(x, row*2)
	bottom := frame.At(x, row*2+1)

	switch {
	case top && bottom:
		return fullBlock
	case top:
		return upperHalf
	case bottom:
		return lowerHalf
	}
	return blank
}

// halfBlocks converts a frame to Rows lines of display.Width characters.
func halfBlocks(frame *display.Frame) []string {
	lines := make([]string, Rows)
	for row := 0; row < Rows; row++ {
		line := make([]rune, display.Width)
		for x := 0; x < display.Width; x++ {
			line[x] = cell(frame, x, row)
		}
		lines[row] = string(line)
	}
	return lines
}
