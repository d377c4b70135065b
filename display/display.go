// Package display implements the monochrome 64x32 bit-plane.
//
// Pixels are plotted by XOR, and plotting reports a collision when a lit
// pixel is turned off.  Coordinates wrap around both edges.
//
// The display does no locking, the machine is expected to take a
// Snapshot only between batches of instructions.
package display

import "strings"

const (
	// Width is the number of pixels in each row.
	Width = 64

	// Height is the number of rows.
	Height = 32
)

// Frame is a copy of the display contents, indexed [y][x].
type Frame [Height][Width]bool

// At returns the pixel at the given coordinates, wrapping them
// the way the display does.
func (f *Frame) At(x, y int) bool {
	return f[wrap(y, Height)][wrap(x, Width)]
}

// Equal returns true if both frames have identical pixels.
func (f *Frame) Equal(other *Frame) bool {
	return *f == *other
}

// Lit returns the number of pixels which are on.
func (f *Frame) Lit() int {
	n := 0
	for y := range f {
		for x := range f[y] {
			if f[y][x] {
				n++
			}
		}
	}
	return n
}

// String renders the frame as text, one line per row, with "#" for
// lit pixels and "." for dark ones.
func (f *Frame) String() string {
	var sb strings.Builder
	sb.Grow(Height * (Width + 1))
	for y := range f {
		for x := range f[y] {
			if f[y][x] {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Display holds the pixel plane.
type Display struct {
	pixels Frame

	// version is bumped whenever the contents change.
	version uint64
}

// New returns a blank display.
func New() *Display {
	return new(Display)
}

// wrap reduces v into [0,n).
func wrap(v, n int) int {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}

// SetPixel XORs the given value into the pixel at (x,y), wrapping the
// coordinates.
//
// The return value is true if a lit pixel was turned off.
func (d *Display) SetPixel(x, y int, on bool) bool {
	x = wrap(x, Width)
	y = wrap(y, Height)

	old := d.pixels[y][x]
	d.pixels[y][x] = old != on
	if on {
		d.version++
	}
	return old && on
}

// GetPixel returns the state of the pixel at (x,y), wrapping the coordinates.
func (d *Display) GetPixel(x, y int) bool {
	return d.pixels.At(x, y)
}

// Clear turns off every pixel.
func (d *Display) Clear() {
	d.pixels = Frame{}
	d.version++
}

// Snapshot returns a copy of the current pixels.
func (d *Display) Snapshot() Frame {
	return d.pixels
}

// Version returns a counter which changes whenever the pixels might
// have changed.
func (d *Display) Version() uint64 {
	return d.version
}
