package display

import (
	"strings"
	"testing"
)

// TestXOR plots the same pixel twice, the second plot collides and
// restores the pixel to off.
func TestXOR(t *testing.T) {
	d := New()

	if d.SetPixel(3, 4, true) {
		t.Fatalf("first plot reported a collision")
	}
	if !d.GetPixel(3, 4) {
		t.Fatalf("pixel should be lit")
	}
	if !d.SetPixel(3, 4, true) {
		t.Fatalf("second plot should collide")
	}
	if d.GetPixel(3, 4) {
		t.Fatalf("pixel should be off again")
	}

	// Plotting an off bit changes nothing and never collides.
	d.SetPixel(5, 5, true)
	if d.SetPixel(5, 5, false) {
		t.Fatalf("plotting an off bit collided")
	}
	if !d.GetPixel(5, 5) {
		t.Fatalf("plotting an off bit changed the pixel")
	}
}

// TestWrap ensures coordinates wrap around, rather than clip.
func TestWrap(t *testing.T) {
	d := New()

	d.SetPixel(64, 0, true)
	if !d.GetPixel(0, 0) {
		t.Fatalf("x=64 should wrap to x=0")
	}

	d.SetPixel(70, 33, true)
	if !d.GetPixel(6, 1) {
		t.Fatalf("(70,33) should wrap to (6,1)")
	}

	d.SetPixel(-1, -1, true)
	if !d.GetPixel(Width-1, Height-1) {
		t.Fatalf("negative coordinates should wrap")
	}
	if !d.GetPixel(-1, 31) {
		t.Fatalf("GetPixel should wrap too")
	}

	// and the wrapped plot collides with the original
	if !d.SetPixel(128, 64, true) {
		t.Fatalf("(128,64) should collide with (0,0)")
	}
}

// TestSnapshot ensures snapshots are copies.
func TestSnapshot(t *testing.T) {
	d := New()
	v := d.Version()

	d.SetPixel(1, 1, true)
	if d.Version() == v {
		t.Fatalf("version didn't change after a plot")
	}

	f := d.Snapshot()
	d.SetPixel(2, 2, true)

	if !f.At(1, 1) {
		t.Fatalf("snapshot missing pixel")
	}
	if f.At(2, 2) {
		t.Fatalf("snapshot changed after a later plot")
	}
	if f.Lit() != 1 {
		t.Fatalf("snapshot has %d lit pixels", f.Lit())
	}

	g := d.Snapshot()
	if f.Equal(&g) {
		t.Fatalf("different frames compare equal")
	}

	d.Clear()
	blank := d.Snapshot()
	if blank.Lit() != 0 {
		t.Fatalf("clear left pixels lit")
	}
	var empty Frame
	if !blank.Equal(&empty) {
		t.Fatalf("cleared display isn't blank")
	}
}

// TestString ensures the text form has the right shape.
func TestString(t *testing.T) {
	d := New()
	d.SetPixel(0, 0, true)
	d.SetPixel(63, 31, true)

	f := d.Snapshot()
	lines := strings.Split(strings.TrimSuffix(f.String(), "\n"), "\n")
	if len(lines) != Height {
		t.Fatalf("expected %d lines, got %d", Height, len(lines))
	}
	for _, l := range lines {
		if len(l) != Width {
			t.Fatalf("line has the wrong width: %q", l)
		}
	}
	if lines[0][0] != '#' || lines[0][1] != '.' {
		t.Fatalf("unexpected first line %q", lines[0])
	}
	if lines[31][63] != '#' {
		t.Fatalf("unexpected last line %q", lines[31])
	}
}
