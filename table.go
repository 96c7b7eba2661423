package pollset

type (
	// entry is one registration: the resolved native representation, the
	// currently requested interests, and the readiness observed by the most
	// recent Poll.
	entry struct {
		handle pollable
		events Events
		ready  Events
	}

	// table keys registrations by handle identity. Insertion order is
	// preserved, so descriptor lists and ready sets come out deterministic,
	// in registration order, regardless of how the native primitive orders
	// its results.
	table struct {
		entries map[any]*entry
		order   []any
	}
)

// removalOutcome reports the effect of table.removeInterest.
type removalOutcome uint8

const (
	// removalNone means none of the requested bits were set, the entry, if
	// any, is unchanged.
	removalNone removalOutcome = iota
	// removalPartial means some bits were cleared, and the entry remains.
	removalPartial
	// removalFull means the mask emptied, and the entry was erased.
	removalFull
)

func (x *table) get(identity any) *entry {
	return x.entries[identity]
}

// upsert unions events into the identity's mask, inserting a new entry if
// absent, and returns the resulting total mask. The caller is responsible
// for validating events, and for checking that handle matches any existing
// resolution.
func (x *table) upsert(identity any, handle pollable, events Events) Events {
	if e := x.entries[identity]; e != nil {
		e.events |= events
		return e.events
	}
	if x.entries == nil {
		x.entries = make(map[any]*entry)
	}
	x.entries[identity] = &entry{handle: handle, events: events}
	x.order = append(x.order, identity)
	return events
}

// removeInterest clears events from the identity's mask, erasing the entry
// if the mask empties. An identity that is untracked, or that had none of
// the requested bits set, is left unchanged, reported as removalNone.
func (x *table) removeInterest(identity any, events Events) removalOutcome {
	e := x.entries[identity]
	if e == nil || e.events&events == 0 {
		return removalNone
	}
	e.events &^= events
	if e.events != 0 {
		return removalPartial
	}
	x.delete(identity)
	return removalFull
}

// delete erases the identity unconditionally, reporting whether it was
// tracked.
func (x *table) delete(identity any) bool {
	if _, ok := x.entries[identity]; !ok {
		return false
	}
	delete(x.entries, identity)
	for i, v := range x.order {
		if v == identity {
			x.order = append(x.order[:i], x.order[i+1:]...)
			break
		}
	}
	return true
}

func (x *table) len() int {
	return len(x.entries)
}
