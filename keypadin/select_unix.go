//go:build unix

package keypadin

import (
	"os"

	"golang.org/x/sys/unix"
)

// canSelect returns true if STDIN has input ready to read.
func canSelect() bool {
	fd := int(os.Stdin.Fd())

	fds := &unix.FdSet{}
	fds.Set(fd)

	// See if input is pending, without waiting.
	tv := unix.Timeval{}

	nRead, err := unix.Select(fd+1, fds, nil, nil, &tv)
	if err != nil {
		return false
	}

	return nRead > 0
}
