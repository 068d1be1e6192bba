//go:build windows

package daemon

import "os"

// StopSignals contains all the signals which make the server shut down
// gracefully and remove its PID file.
var StopSignals = []os.Signal{
	os.Interrupt,
}
