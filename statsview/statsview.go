// Package statsview offers a HTTP server, running locally, showing the
// runtime statistics of the emulator.
//
// After launch graphical statistics are viewable at:
//
//	localhost:12600/debug/statsview
//
// And the standard Go pprof statistics are available at:
//
//	localhost:12600/debug/pprof/
package statsview

import (
	"fmt"
	"io"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
)

// Address is where the server listens.
const Address = "localhost:12600"

const path = "/debug/statsview"

// URL returns the address of the statistics page.
func URL() string {
	return fmt.Sprintf("http://%s%s", Address, path)
}

// Launch starts the statistics server in a new goroutine, and reports
// where it can be found to the given writer.
func Launch(output io.Writer) {
	go func() {
		viewer.SetConfiguration(viewer.WithAddr(Address))
		mgr := statsview.New()
		mgr.Start()
	}()

	fmt.Fprintf(output, "stats server available at %s\n", URL())
}
