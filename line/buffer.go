package line

import "errors"

var (
	// ErrOutOfRange indicates an index outside the valid content range
	ErrOutOfRange = errors.New("line: index out of range")

	// ErrFull indicates the buffer is at capacity
	ErrFull = errors.New("line: buffer full")
)

// Buffer is a bounded byte sequence with checked index operations.
// Capacity is fixed at construction; content length never exceeds it.
type Buffer struct {
	data []byte
}

// New creates an empty buffer with the given capacity
func New(capacity int) *Buffer {
	if capacity < 0 {
		capacity = 0
	}
	return &Buffer{data: make([]byte, 0, capacity)}
}

// NewFrom creates a buffer with the given capacity, cloned from initial.
// Initial content longer than the capacity is truncated.
func NewFrom(initial []byte, capacity int) *Buffer {
	b := New(capacity)
	n := len(initial)
	if n > capacity {
		n = capacity
	}
	b.data = b.data[:n]
	copy(b.data, initial[:n])
	return b
}

// Len returns the current content length
func (b *Buffer) Len() int {
	return len(b.data)
}

// Cap returns the fixed capacity
func (b *Buffer) Cap() int {
	return cap(b.data)
}

// Bytes returns a borrowed view of the content.
// The view is invalidated by the next mutation.
func (b *Buffer) Bytes() []byte {
	return b.data
}

// String returns a copy of the content as a string
func (b *Buffer) String() string {
	return string(b.data)
}

// InsertAt inserts c at index i, shifting the tail right.
// Valid insertion points are 0..Len() inclusive.
func (b *Buffer) InsertAt(i int, c byte) error {
	if i < 0 || i > len(b.data) {
		return ErrOutOfRange
	}
	if len(b.data) >= cap(b.data) {
		return ErrFull
	}
	b.data = b.data[:len(b.data)+1]
	copy(b.data[i+1:], b.data[i:])
	b.data[i] = c
	return nil
}

// RemoveAt removes the byte at index i, shifting the tail left
func (b *Buffer) RemoveAt(i int) error {
	if i < 0 || i >= len(b.data) {
		return ErrOutOfRange
	}
	copy(b.data[i:], b.data[i+1:])
	b.data = b.data[:len(b.data)-1]
	return nil
}

// CopyFrom replaces the content with a copy of src, truncating to capacity
func (b *Buffer) CopyFrom(src *Buffer) {
	n := src.Len()
	if n > cap(b.data) {
		n = cap(b.data)
	}
	b.data = b.data[:n]
	copy(b.data, src.data[:n])
}

// Reset clears the content, keeping capacity
func (b *Buffer) Reset() {
	b.data = b.data[:0]
}
