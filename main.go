// entry point

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/retroenv/retrogolib/app"
	"github.com/skx/chip8ulator/chip8"
	"github.com/skx/chip8ulator/cpu"
	"github.com/skx/chip8ulator/disasm"
	"github.com/skx/chip8ulator/displayout"
	"github.com/skx/chip8ulator/gui"
	"github.com/skx/chip8ulator/keypadin"
	"github.com/skx/chip8ulator/memory"
	"github.com/skx/chip8ulator/static"
	"github.com/skx/chip8ulator/statsview"
	"github.com/skx/chip8ulator/version"
)

// errUsage is returned when the command-line could not be used.
var errUsage = errors.New("usage")

// options holds the parsed command-line flags.
type options struct {
	output   string
	input    string
	window   bool
	cpuHz    int
	timerHz  int
	stack    string
	seed     uint64
	disasm   bool
	list     bool
	fonts    bool
	embedded string
	stats    bool
	version  bool
	logLevel string
	rom      string
}

// parseFlags reads our options from the given arguments.
func parseFlags(args []string, output io.Writer) (*options, error) {
	opts := &options{}

	fs := flag.NewFlagSet("chip8ulator", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&opts.output, "output", "ansi", "The name of the display output driver.")
	fs.StringVar(&opts.input, "input", "term", "The name of the keypad input driver.")
	fs.BoolVar(&opts.window, "gui", false, "Run in a window, rather than the terminal.")
	fs.IntVar(&opts.cpuHz, "cpu-hz", chip8.DefaultCPUSpeed, "Instructions to execute per second.")
	fs.IntVar(&opts.timerHz, "timer-hz", chip8.DefaultTimerSpeed, "Timer ticks, and frames, per second.")
	fs.StringVar(&opts.stack, "stack", "wrap", "Stack overflow behaviour, 'wrap' or 'fault'.")
	fs.Uint64Var(&opts.seed, "seed", 0, "Seed for the random number generator, zero for a random seed.")
	fs.BoolVar(&opts.disasm, "disasm", false, "Disassemble the program, rather than running it.")
	fs.BoolVar(&opts.list, "list", false, "List the available drivers and embedded programs.")
	fs.BoolVar(&opts.fonts, "fonts", false, "Draw the built-in font, and exit.")
	fs.StringVar(&opts.embedded, "embedded", "", "Run the named embedded program.")
	fs.BoolVar(&opts.stats, "statsview", false, "Serve runtime statistics over HTTP.")
	fs.BoolVar(&opts.version, "version", false, "Report our version, and exit.")
	fs.StringVar(&opts.logLevel, "log-level", "", "Logging level: debug, info, warn, or error.")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("%w: %w", errUsage, err)
	}

	switch fs.NArg() {
	case 0:
	case 1:
		opts.rom = fs.Arg(0)
	default:
		return nil, fmt.Errorf("%w: too many arguments", errUsage)
	}
	return opts, nil
}

// newLogger creates our structured logger.
//
// We default to warnings or higher, but show everything if $DEBUG is
// non-empty.  An explicit level wins over both.
func newLogger(level string, output io.Writer) (*slog.Logger, error) {
	lvl := new(slog.LevelVar)
	lvl.Set(slog.LevelWarn)

	if os.Getenv("DEBUG") != "" {
		lvl.Set(slog.LevelDebug)
	}
	if level != "" {
		if err := lvl.UnmarshalText([]byte(level)); err != nil {
			return nil, fmt.Errorf("%w: invalid log level '%s'", errUsage, level)
		}
	}

	return slog.New(slog.NewJSONHandler(output, &slog.HandlerOptions{
		Level: lvl,
	})), nil
}

// program returns the bytes of the program we've been asked to
// disassemble.
func program(opts *options) ([]byte, error) {
	if opts.embedded != "" {
		return static.Get(opts.embedded)
	}
	data, err := os.ReadFile(opts.rom)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", opts.rom, err)
	}
	return data, nil
}

// load places the program we've been asked to run into the machine.
func load(machine *chip8.CHIP8, opts *options) error {
	if opts.embedded != "" {
		return machine.LoadStatic(opts.embedded)
	}
	return machine.LoadFile(opts.rom)
}

// list shows the drivers and programs we know about.
func list(stdout io.Writer) error {
	out, err := displayout.New("null")
	if err != nil {
		return err
	}
	in, err := keypadin.New("null")
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "Output drivers: %s\n", strings.Join(out.GetDrivers(), ", "))
	fmt.Fprintf(stdout, "Input drivers: %s\n", strings.Join(in.GetDrivers(), ", "))
	fmt.Fprintf(stdout, "Embedded programs: %s\n", strings.Join(static.Names(), ", "))
	return nil
}

// run does the real work, it is split from main for testing.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	if opts.version {
		fmt.Fprint(stdout, version.GetVersionBanner())
		return nil
	}
	if opts.list {
		return list(stdout)
	}

	log, err := newLogger(opts.logLevel, stderr)
	if err != nil {
		return err
	}

	policy, err := cpu.ParseStackPolicy(opts.stack)
	if err != nil {
		return fmt.Errorf("%w: %w", errUsage, err)
	}

	// The window reads its own keys, and draws its own frames.
	if opts.window {
		opts.input = "null"
		opts.output = "null"
	}

	machineOptions := []chip8.Option{
		chip8.WithLogger(log),
		chip8.WithOutputDriver(opts.output),
		chip8.WithInputDriver(opts.input),
		chip8.WithCPUSpeed(opts.cpuHz),
		chip8.WithTimerSpeed(opts.timerHz),
		chip8.WithStackPolicy(policy),
	}
	if opts.seed != 0 {
		machineOptions = append(machineOptions, chip8.WithRandomSeed(opts.seed))
	}

	machine, err := chip8.New(machineOptions...)
	if err != nil {
		return err
	}

	if opts.fonts {
		machine.DrawFontTest()
		out := machine.GetOutputDriver()
		out.SetWriter(stdout)
		if lc, ok := out.(displayout.Lifecycle); ok {
			if err := lc.Setup(); err != nil {
				return err
			}
			defer lc.TearDown()
		}
		out.Render(machine.Snapshot())
		return nil
	}

	if opts.embedded == "" && opts.rom == "" {
		return fmt.Errorf("%w: no program specified", errUsage)
	}

	if opts.disasm {
		data, err := program(opts)
		if err != nil {
			return err
		}
		return disasm.Disassemble(stdout, data, memory.ProgramStart)
	}

	if err := load(machine, opts); err != nil {
		return err
	}

	if opts.stats {
		statsview.Launch(stderr)
	}

	if opts.window {
		return gui.Run(machine, gui.DefaultConfig())
	}

	if err := machine.Setup(); err != nil {
		return err
	}

	err = machine.Run(ctx)

	if tErr := machine.TearDown(); tErr != nil && err == nil {
		err = tErr
	}
	if errors.Is(err, chip8.ErrQuit) {
		return nil
	}
	return err
}

func main() {
	ctx := app.Context()

	err := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	switch {
	case err == nil, errors.Is(err, context.Canceled):
		return
	case errors.Is(err, flag.ErrHelp):
		return
	case errors.Is(err, errUsage):
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		fmt.Fprintf(os.Stderr, "Usage: chip8ulator [flags] path/to/program.ch8\n")
		os.Exit(2)
	default:
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
