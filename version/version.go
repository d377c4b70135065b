// Package version exists solely so that we can store the version of this application
// in one location.
//
// The version is shown by the -version flag, and logged when the emulator
// starts, so it lives here rather than in main.
package version

import "fmt"

var (
	// version is populated with our release tag, via the linker.
	//
	//   go build -ldflags "-X github.com/skx/chip8ulator/version.version=v1.2.3"
	version = "unreleased"
)

// GetVersionBanner returns a banner which is suitable for printing, to show our name,
// version, and homepage link.
func GetVersionBanner() string {
	return fmt.Sprintf("chip8ulator %s\n%s\n", version, "https://github.com/skx/chip8ulator/")
}

// GetVersionString returns our version number as a string.
func GetVersionString() string {
	return version
}
