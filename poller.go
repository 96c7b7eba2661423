package pollset

import (
	"reflect"
	"time"

	"github.com/joeycumines/logiface"
)

// Poller multiplexes readiness across registered handles. Use New. Not safe
// for concurrent use: a single logical control flow drives register, poll,
// read results, deregister, in sequence.
type Poller struct {
	waiter Waiter
	logger *logiface.Logger[logiface.Event]
	table  table
	// scratch for Poll, reused across calls
	items []Item
	live  []*entry
}

// New initializes a Poller. Without options it waits on file descriptors via
// the platform's native primitive, and logging is disabled.
func New(options ...Option) (*Poller, error) {
	cfg, err := resolvePollerOptions(options)
	if err != nil {
		return nil, err
	}
	return &Poller{
		waiter: cfg.waiter,
		logger: cfg.logger,
	}, nil
}

// Register adds events to the handle's interest mask, resolving how to wait
// on the handle if it isn't already registered, and returns the resulting
// total mask. Bits outside EventRead, EventWrite, and EventError are
// ignored.
//
// Registering an already-registered handle unions the masks, the table
// keeps at most one entry per identity. If the handle meanwhile resolves to
// a different native handle or descriptor, Register fails with
// ErrHandleChanged, leaving the registration unchanged.
func (x *Poller) Register(handle any, events Events) (Events, error) {
	if handle == nil {
		return 0, ErrNilHandle
	}
	if !reflect.TypeOf(handle).Comparable() {
		return 0, ErrHandleNotComparable
	}
	events &= eventMask
	if events == 0 {
		return 0, ErrNoEvents
	}

	p, err := resolvePollable(handle)
	if err != nil {
		return 0, err
	}
	if e := x.table.get(handle); e != nil && !e.handle.equal(p) {
		return 0, ErrHandleChanged
	}

	total := x.table.upsert(handle, p, events)
	x.logger.Debug().
		Str(`kind`, p.kind.String()).
		Int(`events`, int(total)).
		Int(`size`, x.table.len()).
		Log(`handle registered`)
	return total, nil
}

// RegisterReadable registers the handle for readability, unioned with any
// existing mask.
func (x *Poller) RegisterReadable(handle any) (Events, error) {
	return x.Register(handle, EventRead)
}

// RegisterWritable registers the handle for writability, unioned with any
// existing mask.
func (x *Poller) RegisterWritable(handle any) (Events, error) {
	return x.Register(handle, EventWrite)
}

// Deregister clears events from the handle's interest mask, removing the
// registration if the mask empties.
//
// The handle's closed state is re-checked first: a closed handle is removed
// unconditionally, and Deregister succeeds regardless of events, closure is
// an implicit full deregistration. Otherwise ErrNotRegistered is returned
// for an untracked handle, and ErrEventsNotRegistered if none of the
// requested bits were set, leaving the registration unchanged.
func (x *Poller) Deregister(handle any, events Events) error {
	if handle == nil {
		return ErrNilHandle
	}
	if !reflect.TypeOf(handle).Comparable() {
		return ErrNotRegistered
	}
	e := x.table.get(handle)
	if e == nil {
		return ErrNotRegistered
	}

	if e.handle.isClosed() {
		x.table.delete(handle)
		x.logger.Debug().
			Str(`kind`, e.handle.kind.String()).
			Int(`size`, x.table.len()).
			Log(`closed handle deregistered`)
		return nil
	}

	switch x.table.removeInterest(handle, events&eventMask) {
	case removalNone:
		return ErrEventsNotRegistered
	case removalFull:
		x.logger.Debug().
			Str(`kind`, e.handle.kind.String()).
			Int(`size`, x.table.len()).
			Log(`handle deregistered`)
	default:
		x.logger.Debug().
			Str(`kind`, e.handle.kind.String()).
			Int(`events`, int(e.events)).
			Log(`interest removed`)
	}
	return nil
}

// DeregisterReadable clears the handle's readability interest.
func (x *Poller) DeregisterReadable(handle any) error {
	return x.Deregister(handle, EventRead)
}

// DeregisterWritable clears the handle's writability interest.
func (x *Poller) DeregisterWritable(handle any) error {
	return x.Deregister(handle, EventWrite)
}

// Delete removes the handle's registration unconditionally, irrespective of
// its interest mask, or closed state, reporting whether it was registered.
// Unlike Register, it never resolves the handle, so it succeeds against
// handles that are no longer, or never were, resolvable.
func (x *Poller) Delete(handle any) bool {
	if handle == nil {
		return false
	}
	if !reflect.TypeOf(handle).Comparable() {
		return false
	}
	if !x.table.delete(handle) {
		return false
	}
	x.logger.Debug().
		Int(`size`, x.table.len()).
		Log(`handle deleted`)
	return true
}

// Size returns the count of live registrations.
func (x *Poller) Size() int {
	return x.table.len()
}

// Poll blocks, in a single native wait, until any registered handle becomes
// ready for a registered interest, or timeout elapses, and returns the
// number of handles with at least one ready interest. Multiple ready
// interests on one handle count once.
//
// Timeout semantics: negative blocks indefinitely, zero returns immediately
// with whatever is already ready, positive bounds the wait.
//
// Handles whose closed check reports true are skipped for this call, not
// removed, removal only happens via Deregister or Delete. If nothing is
// pollable, Poll returns 0 immediately, without blocking. A failure of the
// underlying wait, including an interrupted wait, is returned as a non-nil
// error, distinct from a zero-ready result, and leaves every handle
// reported not ready.
func (x *Poller) Poll(timeout time.Duration) (int, error) {
	x.items = x.items[:0]
	x.live = x.live[:0]
	for _, identity := range x.table.order {
		e := x.table.entries[identity]
		e.ready = 0
		if e.handle.isClosed() {
			continue
		}
		x.items = append(x.items, Item{
			Socket: e.handle.sock,
			FD:     e.handle.fd,
			Events: e.events,
		})
		x.live = append(x.live, e)
	}
	if len(x.items) == 0 {
		return 0, nil
	}

	if _, err := x.waiter.Wait(x.items, timeout); err != nil {
		x.logger.Err().
			Err(err).
			Int(`items`, len(x.items)).
			Log(`wait failed`)
		return 0, err
	}

	var ready int
	for i, e := range x.live {
		e.ready = x.items[i].Ready & e.events
		if e.ready != 0 {
			ready++
		}
	}
	x.logger.Trace().
		Int(`items`, len(x.items)).
		Int(`ready`, ready).
		Dur(`timeout`, timeout).
		Log(`poll completed`)
	return ready, nil
}

// Readables returns the handles reported readable by the most recent Poll,
// in registration order. Empty before the first Poll.
func (x *Poller) Readables() []any {
	return x.ready(EventRead)
}

// Writables returns the handles reported writable by the most recent Poll,
// in registration order. Empty before the first Poll.
func (x *Poller) Writables() []any {
	return x.ready(EventWrite)
}

func (x *Poller) ready(events Events) []any {
	var out []any
	for _, identity := range x.table.order {
		if x.table.entries[identity].ready&events != 0 {
			out = append(out, identity)
		}
	}
	return out
}
