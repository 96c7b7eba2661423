package pollset

import (
	"testing"
)

func TestTable_upsert(t *testing.T) {
	var x table
	a := &fdHandle{fd: 1}

	if total := x.upsert(a, pollable{kind: pollableRaw, fd: 1}, EventRead); total != EventRead {
		t.Fatalf("expected EventRead, got %v", total)
	}
	if x.len() != 1 {
		t.Fatalf("expected 1 entry, got %d", x.len())
	}

	// same identity unions, it does not duplicate
	if total := x.upsert(a, pollable{kind: pollableRaw, fd: 1}, EventWrite); total != EventRead|EventWrite {
		t.Fatalf("expected EventRead|EventWrite, got %v", total)
	}
	if x.len() != 1 {
		t.Fatalf("expected 1 entry, got %d", x.len())
	}
}

func TestTable_upsertOrder(t *testing.T) {
	var x table
	a, b, c := &fdHandle{fd: 1}, &fdHandle{fd: 2}, &fdHandle{fd: 3}
	for _, h := range []*fdHandle{a, b, c} {
		x.upsert(h, pollable{kind: pollableRaw, fd: int(h.fd)}, EventRead)
	}

	// re-registering does not move an identity
	x.upsert(b, pollable{kind: pollableRaw, fd: 2}, EventWrite)

	want := []any{a, b, c}
	if len(x.order) != len(want) {
		t.Fatalf("expected %d identities, got %d", len(want), len(x.order))
	}
	for i := range want {
		if x.order[i] != want[i] {
			t.Fatalf("order mismatch at %d", i)
		}
	}
}

func TestTable_removeInterest(t *testing.T) {
	var x table
	a := &fdHandle{fd: 1}
	x.upsert(a, pollable{kind: pollableRaw, fd: 1}, EventRead|EventWrite)

	if outcome := x.removeInterest(&fdHandle{fd: 1}, EventRead); outcome != removalNone {
		t.Fatalf("expected removalNone for a different identity, got %v", outcome)
	}
	if outcome := x.removeInterest(a, EventError); outcome != removalNone {
		t.Fatalf("expected removalNone for unset bits, got %v", outcome)
	}
	if e := x.get(a); e == nil || e.events != EventRead|EventWrite {
		t.Fatal("expected entry unchanged")
	}

	if outcome := x.removeInterest(a, EventRead); outcome != removalPartial {
		t.Fatalf("expected removalPartial, got %v", outcome)
	}
	if e := x.get(a); e == nil || e.events != EventWrite {
		t.Fatal("expected EventWrite remaining")
	}

	// clearing the last bit erases the entry
	if outcome := x.removeInterest(a, EventWrite); outcome != removalFull {
		t.Fatalf("expected removalFull, got %v", outcome)
	}
	if x.len() != 0 {
		t.Fatalf("expected empty table, got %d", x.len())
	}
	if len(x.order) != 0 {
		t.Fatalf("expected empty order, got %d", len(x.order))
	}
}

func TestTable_delete(t *testing.T) {
	var x table
	a, b := &fdHandle{fd: 1}, &fdHandle{fd: 2}
	x.upsert(a, pollable{kind: pollableRaw, fd: 1}, EventRead)
	x.upsert(b, pollable{kind: pollableRaw, fd: 2}, EventRead)

	if !x.delete(a) {
		t.Fatal("expected delete to report tracked")
	}
	if x.delete(a) {
		t.Fatal("expected delete to report untracked")
	}
	if x.len() != 1 || len(x.order) != 1 || x.order[0] != b {
		t.Fatal("expected only b to remain, in order")
	}
}
