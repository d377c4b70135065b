// Package memory provides the 4k of RAM within which the emulator
// executes its programs.
//
// The low region of memory holds the hexadecimal font, which is
// written on every Reset, and programs are loaded at ProgramStart.
package memory

import (
	"errors"
	"fmt"
	"os"
)

const (
	// Size is the number of bytes of RAM the machine has.
	Size = 4096

	// FontBase is the address of the first font glyph.
	FontBase = 0x000

	// GlyphSize is the number of bytes in each font glyph.
	GlyphSize = 5

	// ProgramStart is the address programs are loaded at.
	ProgramStart = 0x200

	// MaxProgramSize is the largest program which can be loaded.
	MaxProgramSize = Size - ProgramStart
)

var (
	// ErrProgramTooLarge is returned when a program will not fit
	// between ProgramStart and the top of RAM.
	ErrProgramTooLarge = errors.New("program too large")

	// ErrEmptyProgram is returned when loading a zero-length program.
	ErrEmptyProgram = errors.New("program is empty")
)

// font contains the sprites for the hexadecimal digits 0-F,
// each of which is 4 pixels wide and 5 pixels high.
var font = [16 * GlyphSize]uint8{
	0xF0, 0x90, 0x90, 0x90, 0xF0, // 0
	0x20, 0x60, 0x20, 0x20, 0x70, // 1
	0xF0, 0x10, 0xF0, 0x80, 0xF0, // 2
	0xF0, 0x10, 0xF0, 0x10, 0xF0, // 3
	0x90, 0x90, 0xF0, 0x10, 0x10, // 4
	0xF0, 0x80, 0xF0, 0x10, 0xF0, // 5
	0xF0, 0x80, 0xF0, 0x90, 0xF0, // 6
	0xF0, 0x10, 0x20, 0x40, 0x40, // 7
	0xF0, 0x90, 0xF0, 0x90, 0xF0, // 8
	0xF0, 0x90, 0xF0, 0x10, 0xF0, // 9
	0xF0, 0x90, 0xF0, 0x90, 0x90, // A
	0xE0, 0x90, 0xE0, 0x90, 0xE0, // B
	0xF0, 0x80, 0x80, 0x80, 0xF0, // C
	0xE0, 0x90, 0x90, 0x90, 0xE0, // D
	0xF0, 0x80, 0xF0, 0x80, 0xF0, // E
	0xF0, 0x80, 0xF0, 0x80, 0x80, // F
}

// Memory provides 4K bytes array memory.
//
// All addresses wrap at Size, so no access can fall outside
// the array.
type Memory struct {
	buf [Size]uint8
}

// New returns memory which has been Reset.
func New() *Memory {
	m := new(Memory)
	m.Reset()
	return m
}

// Reset clears RAM and installs the font.
func (m *Memory) Reset() {
	m.FillRange(0, Size, 0x00)
	m.SetRange(FontBase, font[:]...)
}

// Set sets a byte at addr of memory.
func (m *Memory) Set(addr uint16, value uint8) {
	m.buf[addr%Size] = value
}

// Get returns a byte at addr of memory.
func (m *Memory) Get(addr uint16) uint8 {
	return m.buf[addr%Size]
}

// GetU16 returns the big-endian word stored at the given address.
func (m *Memory) GetU16(addr uint16) uint16 {
	h := m.Get(addr)
	l := m.Get(addr + 1)
	return (uint16(h) << 8) | uint16(l)
}

// SetRange copies bytes from the given data to the specified
// starting address in RAM.
func (m *Memory) SetRange(addr uint16, data ...uint8) {
	for _, d := range data {
		m.Set(addr, d)
		addr++
	}
}

// FillRange fills an area of memory with the given byte
func (m *Memory) FillRange(addr uint16, size int, char uint8) {
	for size > 0 {
		m.Set(addr, char)
		addr++
		size--
	}
}

// GetRange returns the contents of a given range
func (m *Memory) GetRange(addr uint16, size int) []uint8 {
	var ret []uint8
	for size > 0 {
		ret = append(ret, m.Get(addr))
		addr++
		size--
	}
	return ret
}

// LoadProgram resets RAM and places the given program at ProgramStart.
func (m *Memory) LoadProgram(prog []uint8) error {
	if len(prog) == 0 {
		return ErrEmptyProgram
	}
	if len(prog) > MaxProgramSize {
		return fmt.Errorf("%d bytes, maximum is %d: %w", len(prog), MaxProgramSize, ErrProgramTooLarge)
	}

	m.Reset()
	m.SetRange(ProgramStart, prog...)
	return nil
}

// LoadFile loads a raw ROM image from disk, as a program.
func (m *Memory) LoadFile(name string) error {
	prog, err := os.ReadFile(name)
	if err != nil {
		return err
	}

	return m.LoadProgram(prog)
}
