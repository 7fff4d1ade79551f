// Package state holds the console's interaction history.
package state

// Kind tells the renderer how to draw an entry.
type Kind int

// Entry kinds
const (
	KindNormal Kind = iota
	KindInput
	KindDinkus
)

func (k Kind) String() string {
	switch k {
	case KindNormal:
		return "normal"
	case KindInput:
		return "input"
	case KindDinkus:
		return "dinkus"
	default:
		return "unknown"
	}
}

// Entry is one unit of console history
type Entry struct {
	Text string
	Kind Kind

	// Color is an optional escape sequence applied to a normal entry.
	Color string
}

// History is the ordered record of everything written to the console, oldest
// first. Entries are never removed. It is not safe for concurrent use; the
// console serializes access.
type History struct {
	entries []Entry
}

// NewHistory creates an empty history
func NewHistory() *History {
	return &History{
		entries: make([]Entry, 0),
	}
}

// Append adds an entry and returns its index
func (h *History) Append(e Entry) int {
	h.entries = append(h.entries, e)
	return len(h.entries) - 1
}

// Len returns the number of entries
func (h *History) Len() int {
	return len(h.entries)
}

// At returns the entry at index i
func (h *History) At(i int) (Entry, bool) {
	if i < 0 || i >= len(h.entries) {
		return Entry{}, false
	}
	return h.entries[i], true
}

// SetText rewrites the text of the entry at index i in place, keeping its
// position and kind. It reports whether i was valid.
func (h *History) SetText(i int, text string) bool {
	if i < 0 || i >= len(h.entries) {
		return false
	}
	h.entries[i].Text = text
	return true
}

// ReplaceLast overwrites the most recent entry. It reports false, leaving the
// history untouched, when there is nothing to replace.
func (h *History) ReplaceLast(e Entry) bool {
	if len(h.entries) == 0 {
		return false
	}
	h.entries[len(h.entries)-1] = e
	return true
}

// Entries returns a copy of the history
func (h *History) Entries() []Entry {
	out := make([]Entry, len(h.entries))
	copy(out, h.entries)
	return out
}
