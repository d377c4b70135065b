// Package keypadin handles the reading of keypad input for our
// emulator.
//
// Input drivers translate host keystrokes into presses of the sixteen
// CHIP-8 keys.  Terminals only report key-down events, so the terminal
// drivers hold each key down for a few polls after it was last seen.
//
// Note that no output functions are handled by this package,
// it is exclusively used for input.
package keypadin

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrQuit is returned by Poll when the user asks to leave.
	//
	// It should be handled and expected by callers.
	ErrQuit = errors.New("QUIT")
)

// KeySetter receives key state changes, it is implemented by the
// keypad.
type KeySetter interface {
	Set(key uint8, pressed bool)
}

// KeypadInput is the interface that must be implemented by anything
// that wishes to be used as an input driver.
//
// Providing this interface is implemented an object may register itself,
// by name, via the Register method.
type KeypadInput interface {

	// Setup performs any specific setup which is required.
	Setup() error

	// TearDown performs any specific cleanup which is required.
	TearDown() error

	// Poll updates the keypad with any input received since the
	// last call.  It never blocks.
	Poll(keys KeySetter) error

	// GetName will return the name of the driver.
	GetName() string
}

// This is a map of known-drivers
var handlers = struct {
	m map[string]Constructor
}{m: make(map[string]Constructor)}

// Constructor is the signature of a constructor-function
// which is used to instantiate an instance of a driver.
type Constructor func() KeypadInput

// Register makes an input driver available, by name.
func Register(name string, obj Constructor) {
	name = strings.ToLower(name)
	handlers.m[name] = obj
}

// KeypadIn holds our state, which is basically just a
// pointer to the object handling our input.
type KeypadIn struct {

	// driver is the thing that actually reads our input.
	driver KeypadInput
}

// New creates an input device which uses the specified driver.
func New(name string) (*KeypadIn, error) {
	name = strings.ToLower(name)

	ctor, ok := handlers.m[name]
	if !ok {
		return nil, fmt.Errorf("failed to lookup input driver by name '%s'", name)
	}

	return &KeypadIn{
		driver: ctor(),
	}, nil
}

// GetDriver allows getting our driver at runtime.
func (ki *KeypadIn) GetDriver() KeypadInput {
	return ki.driver
}

// ChangeDriver allows changing our driver at runtime.
func (ki *KeypadIn) ChangeDriver(name string) error {
	ctor, ok := handlers.m[strings.ToLower(name)]
	if !ok {
		return fmt.Errorf("failed to lookup input driver by name '%s'", name)
	}

	ki.driver = ctor()
	return nil
}

// GetName returns the name of our selected driver.
func (ki *KeypadIn) GetName() string {
	return ki.driver.GetName()
}

// GetDrivers returns all available driver-names, sorted.
//
// We hide the internal "error", and "null" drivers.
func (ki *KeypadIn) GetDrivers() []string {
	valid := []string{}

	for x := range handlers.m {
		if x != ErrorInputName && x != "null" {
			valid = append(valid, x)
		}
	}
	sort.Strings(valid)
	return valid
}

// Setup proxies into our registered input driver.
func (ki *KeypadIn) Setup() error {
	return ki.driver.Setup()
}

// TearDown proxies into our registered input driver.
func (ki *KeypadIn) TearDown() error {
	return ki.driver.TearDown()
}

// Poll proxies into our registered input driver.
func (ki *KeypadIn) Poll(keys KeySetter) error {
	return ki.driver.Poll(keys)
}
