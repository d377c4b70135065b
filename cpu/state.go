package cpu

import "fmt"

// Mode is the state the interpreter is in.
type Mode int

const (
	// Running means Step will fetch and execute instructions.
	Running Mode = iota

	// AwaitingKey means an Fx0A instruction is waiting for a key, each
	// Step scans the keypad once.
	AwaitingKey

	// Halted means an invalid instruction was executed, Step does nothing
	// until Reset is called.
	Halted
)

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	switch m {
	case Running:
		return "running"
	case AwaitingKey:
		return "awaiting-key"
	case Halted:
		return "halted"
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

// StackPolicy controls what happens when the call stack overflows, or
// a return is executed with nothing on the stack.
type StackPolicy int

const (
	// StackWrap lets the stack pointer wrap around, silently overwriting
	// earlier frames.
	StackWrap StackPolicy = iota

	// StackFault halts the CPU instead.
	StackFault
)

// String returns the name of the policy, as used on the command-line.
func (p StackPolicy) String() string {
	if p == StackFault {
		return "fault"
	}
	return "wrap"
}

// ParseStackPolicy converts a name to a policy.
func ParseStackPolicy(name string) (StackPolicy, error) {
	switch name {
	case "wrap", "":
		return StackWrap, nil
	case "fault":
		return StackFault, nil
	}
	return StackWrap, fmt.Errorf("unknown stack policy '%s'", name)
}

const (
	// NumRegisters is the number of V registers.
	NumRegisters = 16

	// StackSize is the number of call stack slots.
	StackSize = 16

	// AddressLimit is the first address beyond the end of RAM, the program
	// counter stops advancing once it reaches this.
	AddressLimit = 0x1000

	// ProgramStart is the initial value of the program counter.
	ProgramStart = 0x200

	// glyphSize is the number of bytes per font glyph, the font is
	// at address zero.
	glyphSize = 5
)

// State is the register file of the CPU.
type State struct {
	// V holds the general purpose registers, VF doubles as the flag register.
	V [NumRegisters]uint8

	// I is the index register, always kept within 12 bits.
	I uint16

	// PC is the program counter.
	PC uint16

	// SP is the stack pointer, it indexes the most recently pushed slot.
	SP uint8

	// Stack holds return addresses.
	Stack [StackSize]uint16

	// Depth is the number of outstanding calls, only used by StackFault.
	Depth int

	// Delay and Sound are the two timers.
	Delay uint8
	Sound uint8

	// Mode is the current interpreter state.
	Mode Mode

	// WaitReg is the register an Fx0A instruction will store a key in,
	// when Mode is AwaitingKey.
	WaitReg uint8
}

// reset puts the registers back to their power-on values.
func (s *State) reset() {
	*s = State{PC: ProgramStart}
}

// String shows a dump of the registers, for tracing.
func (s State) String() string {
	return fmt.Sprintf("PC:%04X I:%03X SP:%X DT:%02X ST:%02X V:% 02X %s",
		s.PC, s.I, s.SP, s.Delay, s.Sound, s.V[:], s.Mode)
}
