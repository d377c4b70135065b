// Package cpu contains the CHIP-8 interpreter.
//
// The CPU owns the register file, the stack and the timers.  Memory, the
// display and the keypad are supplied by the caller, via the small
// interfaces below, and the CPU mutates them as instructions execute.
//
// Nothing here runs in the background: Step executes one instruction and
// TickTimers counts the timers down, and it is up to the caller to invoke
// them at the desired rates.
package cpu

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
)

// Memory is the RAM the CPU fetches instructions from, and reads and
// writes data to.
type Memory interface {
	Get(addr uint16) uint8
	Set(addr uint16, value uint8)
	GetU16(addr uint16) uint16
}

// Display is the bit-plane the CPU draws sprites upon.
type Display interface {
	SetPixel(x, y int, on bool) bool
	Clear()
}

// Keypad is the input device the CPU polls.
type Keypad interface {
	Get(key uint8) bool
}

// TraceFunc is invoked before each instruction is executed, with the
// address it was fetched from.
type TraceFunc func(pc uint16, ins Instruction)

// HandlerType contains the signature of the function implementing
// an operation.
type HandlerType func(c *CPU, ins Instruction)

// Handler contains details of a specific operation we implement.
//
// While we mostly need an "operation to function" mapping, having a
// name is useful for the logs we produce.
type Handler struct {
	// Desc contains the human-readable description of the operation.
	Desc string

	// Handler contains the function which implements the operation.
	Handler HandlerType
}

// CPU is the object that holds our interpreter state.
type CPU struct {
	// state holds the registers, stack, timers and mode.
	state State

	// fetched is the address of the instruction being executed.
	fetched uint16

	// Handlers contains the operations we know how to execute, indexed
	// by their decoded operation.
	Handlers map[Op]Handler

	mem  Memory
	disp Display
	keys Keypad

	rng    *rand.Rand
	policy StackPolicy
	trace  TraceFunc
	logger *slog.Logger
}

// Option is used to configure the CPU.
type Option func(c *CPU)

// WithLogger sets the logger which is used for diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(c *CPU) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithRandom sets the random number source used by Cxkk.
func WithRandom(r *rand.Rand) Option {
	return func(c *CPU) {
		c.rng = r
	}
}

// WithStackPolicy sets the behaviour of stack overflow and underflow.
func WithStackPolicy(p StackPolicy) Option {
	return func(c *CPU) {
		c.policy = p
	}
}

// WithTrace installs a function which is called before every instruction.
func WithTrace(fn TraceFunc) Option {
	return func(c *CPU) {
		c.trace = fn
	}
}

// New returns a CPU attached to the given devices, which has been Reset.
func New(mem Memory, disp Display, keys Keypad, options ...Option) *CPU {
	c := &CPU{
		mem:      mem,
		disp:     disp,
		keys:     keys,
		Handlers: handlers(),
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range options {
		opt(c)
	}
	if c.rng == nil {
		c.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	c.Reset()
	return c
}

// Reset reinitialises the registers, stack and timers, and sets the
// program counter to the start of the program area.
func (c *CPU) Reset() {
	c.state.reset()
	c.fetched = ProgramStart
}

// State returns a copy of the registers.
func (c *CPU) State() State {
	return c.state
}

// Mode returns the interpreter state.
func (c *CPU) Mode() Mode {
	return c.state.Mode
}

// Halted returns true if an invalid instruction stopped the CPU.
func (c *CPU) Halted() bool {
	return c.state.Mode == Halted
}

// AwaitingKey returns true if the CPU is blocked upon an Fx0A instruction.
func (c *CPU) AwaitingKey() bool {
	return c.state.Mode == AwaitingKey
}

// SoundActive returns true while the sound timer is non-zero.
func (c *CPU) SoundActive() bool {
	return c.state.Sound > 0
}

// Step executes a single instruction.
//
// Nothing happens if the CPU has halted, or if the program counter has
// run off the end of memory.  While waiting for a key the keypad is
// scanned once instead.
func (c *CPU) Step() {
	switch c.state.Mode {
	case Halted:
		return
	case AwaitingKey:
		c.scanForKey()
		return
	}

	if c.state.PC >= AddressLimit {
		return
	}

	c.fetched = c.state.PC
	word := c.mem.GetU16(c.state.PC)
	c.state.PC += 2

	ins, ok := Decode(word)
	if !ok {
		c.halt(ins)
		return
	}

	handler, exists := c.Handlers[ins.Op]
	if !exists {
		c.halt(ins)
		return
	}

	if c.trace != nil {
		c.trace(c.fetched, ins)
	}
	handler.Handler(c, ins)
}

// Exec runs a single opcode without fetching it, the program counter is
// only changed if the instruction itself changes it.  It returns false
// for invalid opcodes, which are ignored rather than halting the CPU.
func (c *CPU) Exec(word uint16) bool {
	ins, ok := Decode(word)
	if !ok {
		return false
	}
	handler, exists := c.Handlers[ins.Op]
	if !exists {
		return false
	}
	c.fetched = c.state.PC
	handler.Handler(c, ins)
	return true
}

// TickTimers decrements the delay and sound timers, stopping at zero.
//
// This runs regardless of the CPU mode.
func (c *CPU) TickTimers() {
	if c.state.Delay > 0 {
		c.state.Delay--
	}
	if c.state.Sound > 0 {
		c.state.Sound--
		if c.state.Sound == 0 {
			c.logger.Debug("sound timer expired")
		}
	}
}

// halt stops the CPU, following an invalid instruction.
func (c *CPU) halt(ins Instruction) {
	c.state.Mode = Halted
	c.logger.Error("Unimplemented opcode",
		slog.String("opcode", fmt.Sprintf("0x%04X", ins.Word)),
		slog.String("pc", fmt.Sprintf("0x%03X", c.fetched)))
}

// fault halts the CPU because of a stack error.
func (c *CPU) fault(reason string) {
	c.state.Mode = Halted
	c.logger.Error("Stack fault",
		slog.String("reason", reason),
		slog.String("pc", fmt.Sprintf("0x%03X", c.fetched)),
		slog.Int("depth", c.state.Depth))
}

// scanForKey looks for a pressed key, for Fx0A.
//
// Only keys 0x0-0xE are examined, key 0xF never satisfies the wait.
func (c *CPU) scanForKey() bool {
	for k := uint8(0x0); k < 0xF; k++ {
		if c.keys.Get(k) {
			c.state.V[c.state.WaitReg] = k
			if c.state.Mode == AwaitingKey {
				// move past the Fx0A we were held upon
				c.state.PC = c.fetched + 2
				c.state.Mode = Running
			}
			return true
		}
	}
	return false
}
