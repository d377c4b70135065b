//go:build unix

package keypadin

import (
	"errors"
	"testing"
)

func TestStuffedInput(t *testing.T) {
	si := &STTYInput{}
	si.StuffInput("qZ")

	r := &recorder{}
	if err := si.Poll(r); err != nil {
		t.Fatalf("poll failed %s", err)
	}
	held := r.held()
	if len(held) != 2 || held[0] != 0x4 || held[1] != 0xA {
		t.Fatalf("unexpected keys %v", held)
	}

	si.StuffInput("1\x1b")
	if err := si.Poll(r); !errors.Is(err, ErrQuit) {
		t.Fatalf("expected quit, got %v", err)
	}
}
