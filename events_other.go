//go:build !unix

package pollset

// Mirrors the poll(2) values used on unix platforms.
const (
	// EventRead indicates the handle is ready for reading.
	EventRead Events = 0x1
	// EventWrite indicates the handle is ready for writing.
	EventWrite Events = 0x4
	// EventError indicates an error condition on the handle.
	EventError Events = 0x8
)
