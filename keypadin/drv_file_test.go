package keypadin

import (
	"errors"
	"os"
	"testing"
	"time"
)

func TestFileSetup(t *testing.T) {

	// Create a temporary file
	file, err := os.CreateTemp("", "in.txt")
	if err != nil {
		t.Fatalf("failed to create temporary file")
	}
	defer os.Remove(file.Name())

	_, err = file.Write([]byte("w.\ns#x"))
	if err != nil {
		t.Fatalf("failed to write to temporary file")
	}
	file.Close()

	t.Setenv("INPUT_FILE", file.Name())

	ki, err := New("file")
	if err != nil {
		t.Fatalf("failed to create driver %s", err)
	}
	fi := ki.GetDriver().(*FileInput)
	fi.delayLarge = 20 * time.Millisecond

	if err := ki.Setup(); err != nil {
		t.Fatalf("failed to setup driver %s", err)
	}

	r := &recorder{}

	// "w" presses key 5 for one poll
	if err := ki.Poll(r); err != nil {
		t.Fatalf("poll failed %s", err)
	}
	if h := r.held(); len(h) != 1 || h[0] != 0x5 {
		t.Fatalf("expected key 5, got %v", h)
	}

	// "." idles, and releases the key
	ki.Poll(r)
	if len(r.held()) != 0 {
		t.Fatalf("key wasn't released")
	}

	// the newline is skipped, "s" presses key 8
	ki.Poll(r)
	if h := r.held(); len(h) != 1 || h[0] != 0x8 {
		t.Fatalf("expected key 8, got %v", h)
	}

	// "#" starts a delay, during which nothing happens
	ki.Poll(r)
	ki.Poll(r)
	if len(r.held()) != 0 {
		t.Fatalf("keys pressed during a delay")
	}
	if !fi.Pending() {
		t.Fatalf("script ended early")
	}

	time.Sleep(30 * time.Millisecond)
	ki.Poll(r)
	if h := r.held(); len(h) != 1 || h[0] != 0x0 {
		t.Fatalf("expected key 0, got %v", h)
	}

	// the script is over, every poll leaves all keys up
	for i := 0; i < 5; i++ {
		if err := ki.Poll(r); err != nil {
			t.Fatalf("poll after EOF failed %s", err)
		}
		if len(r.held()) != 0 {
			t.Fatalf("keys held after EOF")
		}
	}

	if err := ki.TearDown(); err != nil {
		t.Fatalf("failed to teardown")
	}
}

func TestFileQuit(t *testing.T) {
	fi := &FileInput{}
	fi.load([]byte("1\x1b2"))

	r := &recorder{}
	if err := fi.Poll(r); err != nil {
		t.Fatalf("unexpected error %s", err)
	}
	if err := fi.Poll(r); !errors.Is(err, ErrQuit) {
		t.Fatalf("expected quit, got %v", err)
	}
}

func TestSetupFail(t *testing.T) {
	t.Setenv("INPUT_FILE", "/this/file/does/not/exist")

	fi := &FileInput{}
	if err := fi.Setup(); err == nil {
		t.Fatalf("expected an error reading a missing file")
	}
}
