package telemetry

import (
	"io"

	"go.bug.st/serial"
)

// OpenPort opens the serial endpoint. A failure here is fatal at
// startup and is not retried.
func OpenPort(name string, baudRate int) (io.ReadCloser, error) {
	return serial.Open(name, &serial.Mode{BaudRate: baudRate})
}
