// Package chip8 is the main package for our emulator, it wires the CPU
// to memory, the display and the keypad, and drives them at the right
// speeds.
//
// The package also owns the input and output drivers, so that a caller
// only needs to load a program and call Run.
package chip8

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/skx/chip8ulator/cpu"
	"github.com/skx/chip8ulator/disasm"
	"github.com/skx/chip8ulator/display"
	"github.com/skx/chip8ulator/displayout"
	"github.com/skx/chip8ulator/keypad"
	"github.com/skx/chip8ulator/keypadin"
	"github.com/skx/chip8ulator/memory"
	"github.com/skx/chip8ulator/static"
)

var (
	// ErrHalted is returned by RunFrame once the CPU has stopped, after
	// executing an invalid instruction.
	//
	// It should be handled and expected by callers.
	ErrHalted = errors.New("HALTED")

	// ErrQuit is returned when the input driver reports the user wishes
	// to leave.
	//
	// It should be handled and expected by callers.
	ErrQuit = keypadin.ErrQuit
)

const (
	// DefaultCPUSpeed is the number of instructions executed per second.
	DefaultCPUSpeed = 500

	// DefaultTimerSpeed is the rate the timers count down, and frames
	// are rendered, per second.
	DefaultTimerSpeed = 60
)

// CHIP8 is the object that holds our emulator state.
type CHIP8 struct {

	// Memory contains the memory the system runs with.
	Memory *memory.Memory

	// Display contains the bit-plane the CPU draws upon.
	Display *display.Display

	// Keypad holds the state of the sixteen keys.
	Keypad *keypad.Keypad

	// CPU contains a pointer to the interpreter.
	CPU *cpu.CPU

	// input is our keypad input driver.
	input *keypadin.KeypadIn

	// output is our display driver.
	output *displayout.DisplayOut

	// cpuSpeed and timerSpeed are the rates, in Hz.
	cpuSpeed   int
	timerSpeed int

	// carry holds the fraction of a cycle left over from the previous
	// frame, when the CPU speed isn't a multiple of the timer speed.
	carry float64

	// policy is passed to the CPU.
	policy cpu.StackPolicy

	// seed, if set, makes the random number generator repeatable.
	seed *uint64

	// program holds the bytes most recently loaded, for Reset.
	program []byte

	// rendered is the display version most recently rendered, and
	// drawn records that a frame has been rendered at all.
	rendered uint64
	drawn    bool

	// haltLogged is set once a halt has been reported.
	haltLogged bool

	// Logger holds a logger which we use for debugging and diagnostics.
	Logger *slog.Logger
}

// Option defines a function-type which can be passed to the constructor,
// to configure the machine.
type Option func(c *CHIP8) error

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *CHIP8) error {
		c.Logger = l
		return nil
	}
}

// WithOutputDriver allows the default display driver to be changed.
func WithOutputDriver(name string) Option {
	return func(c *CHIP8) error {
		driver, err := displayout.New(name)
		if err != nil {
			return err
		}
		c.output = driver
		return nil
	}
}

// WithInputDriver allows the default keypad driver to be changed.
func WithInputDriver(name string) Option {
	return func(c *CHIP8) error {
		driver, err := keypadin.New(name)
		if err != nil {
			return err
		}
		c.input = driver
		return nil
	}
}

// WithCPUSpeed sets the number of instructions executed per second.
func WithCPUSpeed(hz int) Option {
	return func(c *CHIP8) error {
		if hz <= 0 {
			return fmt.Errorf("invalid CPU speed %d", hz)
		}
		c.cpuSpeed = hz
		return nil
	}
}

// WithTimerSpeed sets the rate at which the timers tick, and frames are
// rendered.
func WithTimerSpeed(hz int) Option {
	return func(c *CHIP8) error {
		if hz <= 0 {
			return fmt.Errorf("invalid timer speed %d", hz)
		}
		c.timerSpeed = hz
		return nil
	}
}

// WithStackPolicy chooses what happens when the call stack overflows.
func WithStackPolicy(p cpu.StackPolicy) Option {
	return func(c *CHIP8) error {
		c.policy = p
		return nil
	}
}

// WithRandomSeed makes the random numbers produced by the program
// repeatable.
func WithRandomSeed(seed uint64) Option {
	return func(c *CHIP8) error {
		c.seed = &seed
		return nil
	}
}

// New returns a new emulation object, with no program loaded.
func New(options ...Option) (*CHIP8, error) {

	c := &CHIP8{
		Memory:     memory.New(),
		Display:    display.New(),
		Keypad:     keypad.New(),
		cpuSpeed:   DefaultCPUSpeed,
		timerSpeed: DefaultTimerSpeed,
		Logger:     slog.New(slog.DiscardHandler),
	}

	// Default drivers
	var err error
	c.output, err = displayout.New("ansi")
	if err != nil {
		return nil, err
	}
	c.input, err = keypadin.New("term")
	if err != nil {
		return nil, err
	}

	for _, opt := range options {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	if c.Logger == nil {
		c.Logger = slog.New(slog.DiscardHandler)
	}

	cpuOptions := []cpu.Option{
		cpu.WithLogger(c.Logger),
		cpu.WithStackPolicy(c.policy),
	}
	if c.seed != nil {
		cpuOptions = append(cpuOptions,
			cpu.WithRandom(rand.New(rand.NewPCG(*c.seed, *c.seed))))
	}
	if c.Logger.Enabled(context.Background(), slog.LevelDebug) {
		cpuOptions = append(cpuOptions, cpu.WithTrace(c.trace))
	}

	c.CPU = cpu.New(c.Memory, c.Display, c.Keypad, cpuOptions...)

	c.Logger.Debug("Machine created",
		slog.String("output", c.output.GetName()),
		slog.String("input", c.input.GetName()),
		slog.Int("cpu_hz", c.cpuSpeed),
		slog.Int("timer_hz", c.timerSpeed),
		slog.String("stack", c.policy.String()))

	return c, nil
}

// trace logs each instruction as it is executed.
func (c *CHIP8) trace(pc uint16, ins cpu.Instruction) {
	c.Logger.Debug("Instruction",
		slog.String("pc", fmt.Sprintf("0x%03X", pc)),
		slog.String("opcode", fmt.Sprintf("0x%04X", ins.Word)),
		slog.String("name", c.CPU.Handlers[ins.Op].Desc),
		slog.String("asm", disasm.Mnemonic(ins.Word)))
}

// GetOutputDriver returns the configured display driver.
func (c *CHIP8) GetOutputDriver() displayout.DisplayOutput {
	return c.output.GetDriver()
}

// GetInputDriver returns the configured keypad driver.
func (c *CHIP8) GetInputDriver() keypadin.KeypadInput {
	return c.input.GetDriver()
}

// Setup prepares both drivers, for example placing the terminal into
// raw mode.
func (c *CHIP8) Setup() error {
	if err := c.input.Setup(); err != nil {
		return fmt.Errorf("failed to setup input driver %s: %w", c.input.GetName(), err)
	}
	if err := c.output.Setup(); err != nil {
		return fmt.Errorf("failed to setup output driver %s: %w", c.output.GetName(), err)
	}
	return nil
}

// TearDown restores the terminal, errors from both drivers are joined.
//
// Input goes first, so that a termbox input driver stops polling before
// a termbox output driver closes the library.
func (c *CHIP8) TearDown() error {
	errIn := c.input.TearDown()
	errOut := c.output.TearDown()
	return errors.Join(errIn, errOut)
}

// LoadProgram resets the machine, then copies the program into memory
// at 0x200.
func (c *CHIP8) LoadProgram(program []byte) error {
	if err := c.Memory.LoadProgram(program); err != nil {
		return err
	}
	c.program = append([]byte(nil), program...)
	c.restart()

	c.Logger.Info("Loaded program",
		slog.Int("size", len(program)))
	return nil
}

// LoadFile loads a program from disk.
//
// The whole program area is kept for Reset, as the file length isn't
// known here.
func (c *CHIP8) LoadFile(path string) error {
	if err := c.Memory.LoadFile(path); err != nil {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	c.program = c.Memory.GetRange(memory.ProgramStart, memory.MaxProgramSize)
	c.restart()

	c.Logger.Info("Loaded program",
		slog.String("path", path))
	return nil
}

// LoadStatic loads one of the embedded programs, by name.
func (c *CHIP8) LoadStatic(name string) error {
	data, err := static.Get(name)
	if err != nil {
		return err
	}
	return c.LoadProgram(data)
}

// Reset restarts the most recently loaded program, from a clean state.
func (c *CHIP8) Reset() {
	if len(c.program) > 0 {
		// the program fitted once, it will fit again
		_ = c.Memory.LoadProgram(c.program)
	} else {
		c.Memory.Reset()
	}
	c.restart()
}

// restart resets everything but memory.
func (c *CHIP8) restart() {
	c.Display.Clear()
	c.Keypad.Reset()
	c.CPU.Reset()
	c.carry = 0
	c.drawn = false
	c.haltLogged = false
}

// Step executes a single instruction.
func (c *CHIP8) Step() {
	c.CPU.Step()
}

// TickTimers counts the delay and sound timers down.
func (c *CHIP8) TickTimers() {
	c.CPU.TickTimers()
}

// SetKey updates the state of a key.
func (c *CHIP8) SetKey(key uint8, pressed bool) {
	c.Keypad.Set(key, pressed)
}

// Pressed returns the keys currently held down.
func (c *CHIP8) Pressed() []uint8 {
	return c.Keypad.Pressed()
}

// Snapshot returns a copy of the display.
func (c *CHIP8) Snapshot() display.Frame {
	return c.Display.Snapshot()
}

// Halted returns true if the CPU has stopped.
func (c *CHIP8) Halted() bool {
	return c.CPU.Halted()
}

// AwaitingKey returns true if the program is waiting for a key press.
func (c *CHIP8) AwaitingKey() bool {
	return c.CPU.AwaitingKey()
}

// CyclesPerFrame returns the whole number of instructions the next frame
// would execute, without consuming the fraction.
func (c *CHIP8) CyclesPerFrame() int {
	return int(c.carry + float64(c.cpuSpeed)/float64(c.timerSpeed))
}

// TimerSpeed returns the configured frame rate.
func (c *CHIP8) TimerSpeed() int {
	return c.timerSpeed
}

// RunFrame runs the machine for one timer period: the keypad is polled,
// a batch of instructions is executed, the timers are ticked and then the
// display is rendered if it changed.
//
// ErrHalted is returned once the CPU has halted, the timers and display
// keep going regardless.
func (c *CHIP8) RunFrame() error {
	if err := c.input.Poll(c.Keypad); err != nil {
		if errors.Is(err, ErrQuit) {
			return ErrQuit
		}
		return fmt.Errorf("failed to poll input: %w", err)
	}

	c.carry += float64(c.cpuSpeed) / float64(c.timerSpeed)
	cycles := int(c.carry)
	c.carry -= float64(cycles)

	for i := 0; i < cycles; i++ {
		c.CPU.Step()
	}
	c.CPU.TickTimers()

	if v := c.Display.Version(); !c.drawn || v != c.rendered {
		c.output.Render(c.Display.Snapshot())
		c.rendered = v
		c.drawn = true
	}

	if c.CPU.Halted() {
		if !c.haltLogged {
			c.haltLogged = true
			st := c.CPU.State()
			c.Logger.Error("CPU halted",
				slog.String("pc", fmt.Sprintf("0x%03X", st.PC)))
		}
		return ErrHalted
	}
	return nil
}

// Run calls RunFrame at the timer rate, until the context is cancelled or
// the user quits.  A halted CPU doesn't end the loop.
func (c *CHIP8) Run(ctx context.Context) error {
	ticker := time.NewTicker(time.Second / time.Duration(c.timerSpeed))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}

		err := c.RunFrame()
		if err == nil || errors.Is(err, ErrHalted) {
			continue
		}
		return err
	}
}

// DrawFontTest draws all sixteen glyphs, stepping diagonally across the
// display.  It uses the registers V0-V2, and leaves I at zero.
func (c *CHIP8) DrawFontTest() {
	for i := uint16(0); i < 16; i++ {
		x := i * 4
		y := (i * 3) / 2

		c.CPU.Exec(0x6000 | i) // LD V0, i
		c.CPU.Exec(0x6100 | x) // LD V1, x
		c.CPU.Exec(0x6200 | y) // LD V2, y
		c.CPU.Exec(0xF029)     // LD F, V0
		c.CPU.Exec(0xD125)     // DRW V1, V2, 5
	}
	c.CPU.Exec(0xA000) // LD I, 0
}
