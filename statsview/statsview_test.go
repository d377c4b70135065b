package statsview

import "testing"

func TestURL(t *testing.T) {
	if URL() != "http://localhost:12600/debug/statsview" {
		t.Fatalf("unexpected URL %s", URL())
	}
}
