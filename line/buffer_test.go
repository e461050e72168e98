package line

import (
	"errors"
	"testing"
)

func TestNewFromTruncates(t *testing.T) {
	b := NewFrom([]byte("hello world"), 5)
	if b.Len() != 5 {
		t.Errorf("Expected length 5, got %d", b.Len())
	}
	if b.Cap() != 5 {
		t.Errorf("Expected capacity 5, got %d", b.Cap())
	}
	if b.String() != "hello" {
		t.Errorf("Expected %q, got %q", "hello", b.String())
	}
}

func TestInsertAtSequential(t *testing.T) {
	b := New(16)
	for i, c := range []byte("abc") {
		if err := b.InsertAt(i, c); err != nil {
			t.Fatalf("InsertAt(%d) failed: %v", i, err)
		}
	}
	if b.String() != "abc" {
		t.Errorf("Expected %q, got %q", "abc", b.String())
	}
}

func TestInsertAtMiddleShiftsTail(t *testing.T) {
	b := NewFrom([]byte("hi"), 16)
	if err := b.InsertAt(1, 'X'); err != nil {
		t.Fatalf("InsertAt failed: %v", err)
	}
	if b.String() != "hXi" {
		t.Errorf("Expected %q, got %q", "hXi", b.String())
	}
}

func TestInsertAtBounds(t *testing.T) {
	b := NewFrom([]byte("ab"), 16)
	if err := b.InsertAt(-1, 'x'); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("Expected ErrOutOfRange for index -1, got %v", err)
	}
	if err := b.InsertAt(3, 'x'); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("Expected ErrOutOfRange for index 3, got %v", err)
	}
	// Len() itself is a valid insertion point
	if err := b.InsertAt(2, 'c'); err != nil {
		t.Errorf("Expected insert at end to succeed, got %v", err)
	}
}

func TestInsertAtFull(t *testing.T) {
	b := NewFrom([]byte("ab"), 2)
	if err := b.InsertAt(0, 'x'); !errors.Is(err, ErrFull) {
		t.Errorf("Expected ErrFull, got %v", err)
	}
	if b.String() != "ab" {
		t.Errorf("Expected content unchanged, got %q", b.String())
	}
}

func TestRemoveAt(t *testing.T) {
	b := NewFrom([]byte("abc"), 16)
	if err := b.RemoveAt(1); err != nil {
		t.Fatalf("RemoveAt failed: %v", err)
	}
	if b.String() != "ac" {
		t.Errorf("Expected %q, got %q", "ac", b.String())
	}
}

func TestRemoveAtBounds(t *testing.T) {
	b := NewFrom([]byte("ab"), 16)
	if err := b.RemoveAt(2); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("Expected ErrOutOfRange for index 2, got %v", err)
	}
	if err := b.RemoveAt(-1); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("Expected ErrOutOfRange for index -1, got %v", err)
	}
	empty := New(4)
	if err := empty.RemoveAt(0); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("Expected ErrOutOfRange on empty buffer, got %v", err)
	}
}

// Remove is the exact inverse of the immediately preceding insert
func TestInsertRemoveInverse(t *testing.T) {
	for pos := 0; pos <= 4; pos++ {
		b := NewFrom([]byte("wxyz"), 16)
		if err := b.InsertAt(pos, 'Q'); err != nil {
			t.Fatalf("InsertAt(%d) failed: %v", pos, err)
		}
		if err := b.RemoveAt(pos); err != nil {
			t.Fatalf("RemoveAt(%d) failed: %v", pos, err)
		}
		if b.String() != "wxyz" {
			t.Errorf("Expected %q after insert+remove at %d, got %q", "wxyz", pos, b.String())
		}
	}
}

func TestCopyFromTruncates(t *testing.T) {
	src := NewFrom([]byte("longer content"), 32)
	dst := New(6)
	dst.CopyFrom(src)
	if dst.String() != "longer" {
		t.Errorf("Expected %q, got %q", "longer", dst.String())
	}
	if dst.Cap() != 6 {
		t.Errorf("Expected capacity unchanged at 6, got %d", dst.Cap())
	}
}

func TestReset(t *testing.T) {
	b := NewFrom([]byte("abc"), 8)
	b.Reset()
	if b.Len() != 0 {
		t.Errorf("Expected empty buffer after Reset, got length %d", b.Len())
	}
	if b.Cap() != 8 {
		t.Errorf("Expected capacity kept after Reset, got %d", b.Cap())
	}
}
