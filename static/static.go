// Package static contains the ROMs which are bundled within the
// emulator binary.
//
// The intention is that we can demonstrate, and test, the emulator
// without needing any external files.  The ROMs are:
//
//	FONTS   draws the sixteen built-in glyphs, in two rows.
//	KEYTEST waits for a key, then shows its hex digit.
//	COUNTER counts upwards once a second, in decimal.
package static

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"
)

//go:embed roms/*.ch8
var content embed.FS

// extension is the suffix of every embedded ROM.
const extension = ".ch8"

// GetContent returns the embedded filesystem we store within this package.
func GetContent() embed.FS {
	return content
}

// Names returns the names of the embedded ROMs, sorted.
func Names() []string {
	entries, err := fs.ReadDir(content, "roms")
	if err != nil {
		return nil
	}

	var names []string
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), extension))
	}
	sort.Strings(names)
	return names
}

// Get returns the bytes of the named ROM, the name is case-insensitive.
func Get(name string) ([]byte, error) {
	name = strings.ToUpper(strings.TrimSuffix(name, extension))

	data, err := content.ReadFile("roms/" + name + extension)
	if err != nil {
		return nil, fmt.Errorf("no embedded ROM named '%s': %w", name, err)
	}
	return data, nil
}
