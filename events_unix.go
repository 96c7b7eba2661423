//go:build unix

package pollset

import (
	"golang.org/x/sys/unix"
)

const (
	// EventRead indicates the handle is ready for reading.
	EventRead Events = unix.POLLIN
	// EventWrite indicates the handle is ready for writing.
	EventWrite Events = unix.POLLOUT
	// EventError indicates an error condition on the handle.
	EventError Events = unix.POLLERR
)
