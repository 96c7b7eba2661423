package pollset

import (
	"time"
)

type (
	// Item is one native descriptor passed to a Waiter: either a raw
	// message-queue socket handle, or an OS file descriptor, never both.
	// Events is the requested interest mask, and Ready is written by the
	// Waiter, with the subset of Events that is actually ready.
	Item struct {
		// Socket is a raw message-queue socket handle, or 0.
		Socket uintptr
		// FD is an OS file descriptor, meaningful only if Socket is 0.
		FD int
		// Events is the requested interest mask.
		Events Events
		// Ready is the subset of Events actually ready, written by Wait.
		Ready Events
	}

	// Waiter is the external multiplexing primitive: a single blocking wait
	// over a flat descriptor list. Wait blocks until at least one item is
	// ready, or timeout elapses, writing per-item ready bits into
	// items[i].Ready, and returning the number of ready items.
	//
	// Timeout semantics: negative blocks indefinitely, zero returns
	// immediately with whatever is already ready, positive bounds the wait.
	//
	// Failures, including an interrupted wait, must be reported as a
	// non-nil error, never as a zero-ready result.
	Waiter interface {
		Wait(items []Item, timeout time.Duration) (int, error)
	}
)
