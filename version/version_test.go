package version

import (
	"strings"
	"testing"
)

// TestVersion ensures the banner names us, and holds our version.
func TestVersion(t *testing.T) {
	x := GetVersionString()
	y := GetVersionBanner()

	if !strings.Contains(y, x) {
		t.Fatalf("banner doesn't contain our version")
	}
	if !strings.HasPrefix(y, "chip8ulator ") {
		t.Fatalf("banner doesn't contain our name: %q", y)
	}
}
