package history

import (
	"github.com/lixenwraith/readline/line"
)

// Store holds previously entered and in-progress lines in entry order.
// Entries are appended at the tail and never removed or reordered while
// the store is live; recall moves an index kept by the editor, never the
// entries themselves. The store exclusively owns every entry's backing
// storage; callers receive borrowed views.
type Store struct {
	entries []*line.Buffer
}

// New creates an empty store
func New() *Store {
	return &Store{}
}

// StartEntry appends a new owned entry cloned from initial, with the
// given capacity, and returns its index.
func (s *Store) StartEntry(initial []byte, capacity int) int {
	s.entries = append(s.entries, line.NewFrom(initial, capacity))
	return len(s.entries) - 1
}

// Get returns a borrowed view of the entry at index i.
// The second return is false when i is out of range.
func (s *Store) Get(i int) (*line.Buffer, bool) {
	if i < 0 || i >= len(s.entries) {
		return nil, false
	}
	return s.entries[i], true
}

// Tail returns the most recent entry, or nil if the store is empty
func (s *Store) Tail() *line.Buffer {
	if len(s.entries) == 0 {
		return nil
	}
	return s.entries[len(s.entries)-1]
}

// Len returns the current entry count
func (s *Store) Len() int {
	return len(s.entries)
}

// ReleaseAll drops every entry and the backing container.
// Safe to call multiple times and on a store that was never used.
func (s *Store) ReleaseAll() {
	s.entries = nil
}
