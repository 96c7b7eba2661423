package pollset

import (
	"errors"
)

// Standard errors.
var (
	// ErrNilHandle is returned by Register when the handle is nil.
	ErrNilHandle = errors.New(`pollset: nil handle`)

	// ErrHandleNotComparable is returned by Register when the handle's type
	// cannot be used as a lookup key, i.e. it does not support Go's equality
	// operators. Registrations are keyed by identity, so handles are
	// typically pointers.
	ErrHandleNotComparable = errors.New(`pollset: handle type is not comparable`)

	// ErrNoEvents is returned by Register when the requested mask contains
	// none of EventRead, EventWrite, or EventError.
	ErrNoEvents = errors.New(`pollset: no events requested`)

	// ErrNotPollable is returned by Register when the handle exposes none of
	// the recognized capabilities, see QueueSocket, StreamWrapper, and
	// Descriptor.
	ErrNotPollable = errors.New(`pollset: handle is not pollable`)

	// ErrNotRegistered is returned by Deregister when the handle has no
	// registration.
	ErrNotRegistered = errors.New(`pollset: handle not registered`)

	// ErrEventsNotRegistered is returned by Deregister when none of the
	// requested events were registered for the handle. The registration is
	// left unchanged.
	ErrEventsNotRegistered = errors.New(`pollset: events not registered for handle`)

	// ErrHandleChanged is returned by Register when a handle that is already
	// registered resolves to a different native handle or descriptor than it
	// did originally. The existing registration is left unchanged.
	ErrHandleChanged = errors.New(`pollset: handle resolved differently since registration`)

	// ErrBadDescriptor is returned by Poll when the native wait reports an
	// invalid file descriptor, e.g. one closed out-of-band, without any
	// closed-state query to detect it.
	ErrBadDescriptor = errors.New(`pollset: invalid file descriptor`)

	// ErrQueueSocketUnsupported is returned by Poll when a message-queue
	// socket registration reaches the native waiter, which can only wait on
	// file descriptors. See WithWaiter.
	ErrQueueSocketUnsupported = errors.New(`pollset: native waiter cannot wait on message-queue sockets`)

	// ErrWaiterUnsupported is returned by Poll on platforms without a native
	// waiter implementation. See WithWaiter.
	ErrWaiterUnsupported = errors.New(`pollset: no native waiter on this platform`)
)
