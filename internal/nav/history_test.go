package nav

import (
	"errors"
	"fmt"
	"testing"
)

func loc(i int) Location {
	return LocalFile(fmt.Sprintf("/docs/page-%d.md", i))
}

func TestHistory_Empty(t *testing.T) {
	h := NewHistory()

	if _, ok := h.Location(); ok {
		t.Error("empty history should have no current location")
	}
	if h.Back() {
		t.Error("Back on empty history should report no change")
	}
	if h.Forward() {
		t.Error("Forward on empty history should report no change")
	}
	if _, ok := h.Cursor(); ok {
		t.Error("empty history should have no cursor")
	}
}

func TestHistory_RememberSetsCurrent(t *testing.T) {
	h := NewHistory()

	h.Remember(loc(1))
	h.Remember(loc(2))

	current, ok := h.Location()
	if !ok {
		t.Fatal("history with entries should have a current location")
	}
	if current != loc(2) {
		t.Errorf("Location() = %v, want %v", current, loc(2))
	}
	if h.Len() != 2 {
		t.Errorf("Len() = %d, want 2", h.Len())
	}
}

func TestHistory_BackForwardRoundTrip(t *testing.T) {
	h := NewHistory()
	h.Remember(loc(1))
	h.Remember(loc(2))
	h.Remember(loc(3))

	before, _ := h.Location()

	if !h.Back() {
		t.Fatal("Back should succeed with cursor > 0")
	}
	mid, _ := h.Location()
	if mid != loc(2) {
		t.Errorf("after Back, Location() = %v, want %v", mid, loc(2))
	}

	if !h.Forward() {
		t.Fatal("Forward should succeed after Back")
	}
	after, _ := h.Location()
	if after != before {
		t.Errorf("Back then Forward should restore %v, got %v", before, after)
	}
}

func TestHistory_BackAtOldestIsNoOp(t *testing.T) {
	h := NewHistory()
	h.Remember(loc(1))

	if h.Back() {
		t.Error("Back at cursor 0 should report no change")
	}
	current, _ := h.Location()
	if current != loc(1) {
		t.Errorf("Location() = %v, want %v", current, loc(1))
	}
}

func TestHistory_ForwardAtNewestIsNoOp(t *testing.T) {
	h := NewHistory()
	h.Remember(loc(1))
	h.Remember(loc(2))

	if h.Forward() {
		t.Error("Forward at the newest entry should report no change")
	}
}

func TestHistory_RememberDoesNotTruncateForward(t *testing.T) {
	h := NewHistory()
	h.Remember(loc(1))
	h.Remember(loc(2))
	h.Remember(loc(3))
	h.Back()
	h.Back()

	// Remembering from a non-tail cursor appends; the old forward
	// entries stay put.
	h.Remember(loc(4))

	if h.Len() != 4 {
		t.Errorf("Len() = %d, want 4 (no forward truncation)", h.Len())
	}
	current, _ := h.Location()
	if current != loc(4) {
		t.Errorf("Location() = %v, want %v", current, loc(4))
	}
}

func TestHistory_BoundedAtMaxEntries(t *testing.T) {
	h := NewHistory()
	total := MaxEntries + 50
	for i := 0; i < total; i++ {
		h.Remember(loc(i))
	}

	if h.Len() != MaxEntries {
		t.Fatalf("Len() = %d, want %d", h.Len(), MaxEntries)
	}

	// Survivors are exactly the most recent MaxEntries, oldest first.
	locations := h.Locations()
	if locations[0] != loc(total-MaxEntries) {
		t.Errorf("oldest survivor = %v, want %v", locations[0], loc(total-MaxEntries))
	}
	if locations[len(locations)-1] != loc(total-1) {
		t.Errorf("newest survivor = %v, want %v", locations[len(locations)-1], loc(total-1))
	}
}

func TestHistory_Delete(t *testing.T) {
	h := NewHistory()
	h.Remember(loc(1))
	h.Remember(loc(2))
	h.Remember(loc(3))

	if err := h.Delete(1); err != nil {
		t.Fatalf("Delete(1) returned error: %v", err)
	}
	if h.Len() != 2 {
		t.Errorf("Len() = %d, want 2", h.Len())
	}

	locations := h.Locations()
	if locations[0] != loc(1) || locations[1] != loc(3) {
		t.Errorf("Locations() = %v, want [%v %v]", locations, loc(1), loc(3))
	}
}

func TestHistory_DeleteClampsCursor(t *testing.T) {
	h := NewHistory()
	h.Remember(loc(1))
	h.Remember(loc(2))

	// Cursor is at the last index; deleting it must clamp back.
	if err := h.Delete(1); err != nil {
		t.Fatalf("Delete(1) returned error: %v", err)
	}
	current, ok := h.Location()
	if !ok {
		t.Fatal("history should still have a current location")
	}
	if current != loc(1) {
		t.Errorf("Location() = %v, want %v", current, loc(1))
	}
}

func TestHistory_DeleteOutOfRange(t *testing.T) {
	h := NewHistory()
	h.Remember(loc(1))

	for _, index := range []int{-1, 1, 99} {
		if err := h.Delete(index); !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("Delete(%d) = %v, want ErrIndexOutOfRange", index, err)
		}
	}
	if h.Len() != 1 {
		t.Errorf("failed Delete must not mutate; Len() = %d, want 1", h.Len())
	}
}

func TestHistory_DeleteLastEntryEmptiesHistory(t *testing.T) {
	h := NewHistory()
	h.Remember(loc(1))

	if err := h.Delete(0); err != nil {
		t.Fatalf("Delete(0) returned error: %v", err)
	}
	if _, ok := h.Location(); ok {
		t.Error("emptied history should have no current location")
	}
	// A later Remember must behave like a fresh history.
	h.Remember(loc(2))
	current, _ := h.Location()
	if current != loc(2) {
		t.Errorf("Location() = %v, want %v", current, loc(2))
	}
}

func TestHistory_Clear(t *testing.T) {
	h := NewHistory()
	h.Remember(loc(1))
	h.Remember(loc(2))

	h.Clear()

	if h.Len() != 0 {
		t.Errorf("Len() = %d, want 0", h.Len())
	}
	if _, ok := h.Location(); ok {
		t.Error("cleared history should have no current location")
	}
}

func TestHistory_Replace(t *testing.T) {
	h := NewHistory()
	h.Remember(loc(99))

	h.Replace([]Location{loc(1), loc(2), loc(3)})

	if h.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", h.Len())
	}
	current, _ := h.Location()
	if current != loc(3) {
		t.Errorf("Location() = %v, want %v (cursor on last entry)", current, loc(3))
	}
}

func TestHistory_ReplaceEmpty(t *testing.T) {
	h := NewHistory()
	h.Remember(loc(1))

	h.Replace(nil)

	if _, ok := h.Location(); ok {
		t.Error("Replace(nil) should leave no current location")
	}
}

func TestHistory_ReplaceOverCapKeepsNewest(t *testing.T) {
	locations := make([]Location, MaxEntries+10)
	for i := range locations {
		locations[i] = loc(i)
	}

	h := NewHistory()
	h.Replace(locations)

	if h.Len() != MaxEntries {
		t.Fatalf("Len() = %d, want %d", h.Len(), MaxEntries)
	}
	if got := h.Locations()[0]; got != loc(10) {
		t.Errorf("oldest kept entry = %v, want %v", got, loc(10))
	}
}
