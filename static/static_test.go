package static

import (
	"strings"
	"testing"
)

// TestStatic just ensures we have some files.
func TestStatic(t *testing.T) {

	files, err := GetContent().ReadDir("roms")
	if err != nil {
		t.Fatalf("error reading contents")
	}

	for _, entry := range files {
		name := entry.Name()
		if !strings.HasSuffix(name, ".ch8") {
			t.Fatalf("file '%s' is not a .ch8 file", name)
		}
	}

	if strings.Join(Names(), ",") != "COUNTER,FONTS,KEYTEST" {
		t.Fatalf("unexpected ROMs %v", Names())
	}
}

// TestGet ensures every ROM is readable, and holds whole instructions.
func TestGet(t *testing.T) {
	for _, name := range Names() {
		data, err := Get(strings.ToLower(name))
		if err != nil {
			t.Fatalf("failed to read %s: %s", name, err)
		}
		if len(data) == 0 || len(data)%2 != 0 {
			t.Fatalf("%s has a bogus size %d", name, len(data))
		}
	}

	if _, err := Get("missing"); err == nil {
		t.Fatalf("expected an error for a missing ROM")
	}
}
