// Package displayout is an abstraction over the presentation of the
// CHIP-8 display.
//
// We have an ANSI renderer, a termbox renderer and a couple of drivers
// used for testing, so we want a factory that can instantiate and change
// a driver given just a name.
package displayout

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/skx/chip8ulator/display"
)

// DisplayOutput is the interface that must be implemented by anything
// that wishes to be used as a display driver.
//
// Providing this interface is implemented an object may register itself,
// by name, via the Register method.
type DisplayOutput interface {

	// Render presents the given frame.
	//
	// The writer will default to STDOUT, but can be changed, via SetWriter.
	Render(frame display.Frame)

	// GetName will return the name of the driver.
	GetName() string

	// SetWriter will update the writer.
	SetWriter(io.Writer)
}

// Lifecycle is implemented by drivers which must prepare, and restore,
// the terminal.
type Lifecycle interface {
	Setup() error
	TearDown() error
}

// DisplayRecorder is an interface that allows returning the frames that
// have been previously rendered.
//
// This is used solely for integration tests.
type DisplayRecorder interface {

	// GetOutput returns the text form of the most recent frame.
	GetOutput() string

	// Frames returns the number of frames rendered.
	Frames() int

	// Reset removes any stored state.
	Reset()
}

// This is a map of known-drivers
var handlers = struct {
	m map[string]Constructor
}{m: make(map[string]Constructor)}

// Constructor is the signature of a constructor-function
// which is used to instantiate an instance of a driver.
type Constructor func() DisplayOutput

// Register makes a display driver available, by name.
func Register(name string, obj Constructor) {
	name = strings.ToLower(name)
	handlers.m[name] = obj
}

// DisplayOut holds our state, which is basically just a
// pointer to the object handling our output.
type DisplayOut struct {

	// driver is the thing that actually draws our frames.
	driver DisplayOutput
}

// New creates an output device which uses the specified driver.
func New(name string) (*DisplayOut, error) {
	name = strings.ToLower(name)

	ctor, ok := handlers.m[name]
	if !ok {
		return nil, fmt.Errorf("failed to lookup display driver by name '%s'", name)
	}

	return &DisplayOut{
		driver: ctor(),
	}, nil
}

// GetDriver allows getting our driver at runtime.
func (do *DisplayOut) GetDriver() DisplayOutput {
	return do.driver
}

// ChangeDriver allows changing our driver at runtime.
func (do *DisplayOut) ChangeDriver(name string) error {
	ctor, ok := handlers.m[strings.ToLower(name)]
	if !ok {
		return fmt.Errorf("failed to lookup display driver by name '%s'", name)
	}

	do.driver = ctor()
	return nil
}

// GetName returns the name of our selected driver.
func (do *DisplayOut) GetName() string {
	return do.driver.GetName()
}

// GetDrivers returns all available driver-names, sorted.
//
// We hide the internal "null", and "logger" drivers.
func (do *DisplayOut) GetDrivers() []string {
	valid := []string{}

	for x := range handlers.m {
		if x != "null" && x != "logger" {
			valid = append(valid, x)
		}
	}
	sort.Strings(valid)
	return valid
}

// Setup prepares the driver, if it needs that.
func (do *DisplayOut) Setup() error {
	if lc, ok := do.driver.(Lifecycle); ok {
		return lc.Setup()
	}
	return nil
}

// TearDown restores the terminal, if the driver changed it.
func (do *DisplayOut) TearDown() error {
	if lc, ok := do.driver.(Lifecycle); ok {
		return lc.TearDown()
	}
	return nil
}

// Render draws a frame, using our selected driver.
func (do *DisplayOut) Render(frame display.Frame) {
	do.driver.Render(frame)
}
