package keypadin

import (
	"errors"
	"testing"
	"time"
)

// FuzzFileInput does some simple fuzz-testing of the script reader.
func FuzzFileInput(f *testing.F) {

	// empty + whitespace
	f.Add([]byte(nil))
	f.Add([]byte(""))
	f.Add([]byte("\n\r\t"))

	// keys and pauses
	f.Add([]byte("1234qwerasdfzxcv"))
	f.Add([]byte("w.w.w#s"))
	f.Add([]byte("#"))
	f.Add([]byte("##"))
	f.Add([]byte("...."))
	f.Add([]byte("\x1b"))

	f.Fuzz(func(t *testing.T, input []byte) {

		tmp := new(FileInput)

		// We don't want to deal with long-sleeps
		tmp.delayLarge = time.Nanosecond
		tmp.load(input)

		r := &recorder{}
		for i := 0; i <= len(input); i++ {
			err := tmp.Poll(r)
			if err != nil && !errors.Is(err, ErrQuit) {
				t.Fatalf("failed to poll %v:%v", input, err)
			}

			// at most one key is ever down
			if len(r.held()) > 1 {
				t.Fatalf("more than one key held %v", r.held())
			}
		}
	})
}
