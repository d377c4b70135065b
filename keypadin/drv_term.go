// drv_term.go uses the Termbox library to handle keyboard input.
//
// A goroutine is launched which collects any keyboard input and
// saves that to a buffer where it can be peeled off on-demand.
//
// The portability of this solution is unknown, however this driver
// _seems_ reasonable and is the default.

package keypadin

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/nsf/termbox-go"
	"golang.org/x/term"
)

// TermboxInput is our input-driver, using termbox
type TermboxInput struct {

	// oldState contains the state of the terminal, before switching to RAW mode
	oldState *term.State

	// Cancel holds a context which can be used to close our polling goroutine
	Cancel context.CancelFunc

	// done is closed when the polling goroutine has returned.
	done chan struct{}

	// mu guards keyBuffer, which is filled by the polling goroutine.
	mu sync.Mutex

	// keyBuffer builds up keys read "in the background", via termbox
	keyBuffer []termbox.Event

	// held turns presses into presses-with-release.
	held holder
}

// Setup ensures that the termbox init functions are called, and our
// terminal is set into RAW mode.
func (ti *TermboxInput) Setup() error {

	var err error

	// switch STDIN into 'raw' mode - we must do this before
	// we setup termbox.
	ti.oldState, err = term.MakeRaw(int(os.Stdin.Fd()))
	if err != nil {
		return fmt.Errorf("error making raw terminal: %w", err)
	}

	err = termbox.Init()
	if err != nil {
		return fmt.Errorf("failed to initialize termbox: %w", err)
	}

	if ti.held.frames == 0 {
		ti.held.frames = DefaultHoldFrames
	}

	// Allow our polling of keyboard to be canceled
	ctx, cancel := context.WithCancel(context.Background())
	ti.Cancel = cancel
	ti.done = make(chan struct{})

	// Start polling for keyboard input "in the background".
	go ti.pollKeyboard(ctx)
	return nil
}

// pollKeyboard runs in a goroutine and collects keyboard input
// into a buffer where it will be read from in the future.
func (ti *TermboxInput) pollKeyboard(ctx context.Context) {
	defer close(ti.done)

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		ev := termbox.PollEvent()
		if ev.Type == termbox.EventKey {
			ti.mu.Lock()
			ti.keyBuffer = append(ti.keyBuffer, ev)
			ti.mu.Unlock()
		}
	}
}

// stopPolling wakes the polling goroutine, if it is blocked inside
// termbox.PollEvent, and waits for it to return.
//
// termbox.Interrupt blocks until PollEvent receives it, so it is sent
// from its own goroutine in case the poller has already gone.
func (ti *TermboxInput) stopPolling() {
	if ti.done == nil {
		return
	}
	select {
	case <-ti.done:
		return
	default:
	}

	sent := make(chan struct{})
	go func() {
		termbox.Interrupt()
		close(sent)
	}()

	select {
	case <-ti.done:
	case <-sent:
		<-ti.done
	}
}

// TearDown resets the state of the terminal, disables the background polling of characters
// and generally gets us ready for exit.
func (ti *TermboxInput) TearDown() error {
	if ti.Cancel != nil {
		ti.Cancel()
		ti.stopPolling()
		ti.Cancel = nil
	}

	if termbox.IsInit {
		termbox.Close()
	}

	if ti.oldState != nil {
		if err := term.Restore(int(os.Stdin.Fd()), ti.oldState); err != nil {
			return fmt.Errorf("error restoring terminal state: %w", err)
		}
		ti.oldState = nil
	}
	return nil
}

// Poll drains the events collected since the last call.
func (ti *TermboxInput) Poll(keys KeySetter) error {
	ti.mu.Lock()
	events := ti.keyBuffer
	ti.keyBuffer = nil
	ti.mu.Unlock()

	for _, ev := range events {
		if quit(ev) {
			return ErrQuit
		}
		if k, ok := KeyFor(ev.Ch); ok {
			ti.held.press(k)
		}
	}

	ti.held.apply(keys)
	return nil
}

// quit returns true for the events which end the session.
func quit(ev termbox.Event) bool {
	return ev.Ch == 0 && (ev.Key == termbox.KeyEsc || ev.Key == termbox.KeyCtrlC)
}

// GetName is part of the module API, and returns the name of this driver.
func (ti *TermboxInput) GetName() string {
	return "term"
}

// init registers our driver, by name.
func init() {
	Register("term", func() KeypadInput {
		return new(TermboxInput)
	})
}
