package nav

import "errors"

// MaxEntries is the maximum number of locations kept in history. Once
// the bound is exceeded the oldest entry is evicted first.
const MaxEntries = 256

// ErrIndexOutOfRange is returned by Delete for an index that does not
// identify an existing entry. It is recoverable: the history is left
// untouched and the caller simply takes no further action.
var ErrIndexOutOfRange = errors.New("history index out of range")

// History is the bounded browsing log with a movable cursor. Navigating
// back and forward only moves the cursor; entries are removed only by
// Delete, Clear, or FIFO eviction at the capacity bound.
//
// Remembering a new location always appends at the end, even when the
// cursor sits somewhere in the middle - the forward branch is kept, not
// truncated. That matches the observed behaviour of every revision of
// this viewer and is intentional.
type History struct {
	entries []Location
	cursor  int // -1 when entries is empty
}

// NewHistory creates an empty history.
func NewHistory() *History {
	return &History{cursor: -1}
}

// Remember appends a location, evicting the oldest entry if the bound
// is exceeded, and moves the cursor to the new last entry.
func (h *History) Remember(location Location) {
	h.entries = append(h.entries, location)
	if len(h.entries) > MaxEntries {
		h.entries = h.entries[1:]
	}
	h.cursor = len(h.entries) - 1
}

// Location returns the entry at the cursor, or false if the history is
// empty.
func (h *History) Location() (Location, bool) {
	if h.cursor < 0 || h.cursor >= len(h.entries) {
		return Location{}, false
	}
	return h.entries[h.cursor], true
}

// Back moves the cursor one step towards the oldest entry. It reports
// whether the cursor moved.
func (h *History) Back() bool {
	if h.cursor > 0 {
		h.cursor--
		return true
	}
	return false
}

// Forward moves the cursor one step towards the newest entry. It
// reports whether the cursor moved.
func (h *History) Forward() bool {
	if h.cursor < len(h.entries)-1 {
		h.cursor++
		return true
	}
	return false
}

// Delete removes the entry at index. The cursor is clamped so that it
// still points at a valid entry afterwards (or becomes undefined when
// the history empties). An out-of-range index returns
// ErrIndexOutOfRange without mutating anything.
func (h *History) Delete(index int) error {
	if index < 0 || index >= len(h.entries) {
		return ErrIndexOutOfRange
	}
	h.entries = append(h.entries[:index], h.entries[index+1:]...)
	if h.cursor > len(h.entries)-1 {
		h.cursor = len(h.entries) - 1
	}
	return nil
}

// Clear removes every entry and resets the cursor.
func (h *History) Clear() {
	h.entries = nil
	h.cursor = -1
}

// Replace discards the current state and loads the given locations,
// keeping only the newest MaxEntries when the list is longer. The
// cursor lands on the last entry.
func (h *History) Replace(locations []Location) {
	if len(locations) > MaxEntries {
		locations = locations[len(locations)-MaxEntries:]
	}
	h.entries = append([]Location(nil), locations...)
	h.cursor = len(h.entries) - 1
}

// Locations returns a copy of the entries, oldest first.
func (h *History) Locations() []Location {
	out := make([]Location, len(h.entries))
	copy(out, h.entries)
	return out
}

// Cursor returns the current cursor index, or false when the history is
// empty.
func (h *History) Cursor() (int, bool) {
	if h.cursor < 0 {
		return 0, false
	}
	return h.cursor, true
}

// Len returns the number of entries.
func (h *History) Len() int {
	return len(h.entries)
}

// CanGoBack reports whether Back would move the cursor.
func (h *History) CanGoBack() bool {
	return h.cursor > 0
}

// CanGoForward reports whether Forward would move the cursor.
func (h *History) CanGoForward() bool {
	return h.cursor < len(h.entries)-1
}
