package terminal

import (
	"errors"
	"fmt"
)

// ErrCursorReport indicates the device status reply was malformed or
// never arrived
var ErrCursorReport = errors.New("terminal: malformed cursor position report")

// CursorPosition queries the device for the cursor's 1-based screen
// coordinates using the DSR/CPR exchange (write ESC [ 6 n, parse
// ESC [ row ; col R). Must be called with raw mode active, since the
// reply arrives on the input stream.
func (t *Terminal) CursorPosition() (row, col int, err error) {
	if err := t.backend.Write(csiCursorQuery); err != nil {
		return 0, 0, err
	}

	// Collect the reply up to the 'R' terminator. A timeout mid-reply
	// leaves the buffer short and fails the parse below.
	var resp [16]byte
	n := 0
	for n < len(resp) {
		b, ok, err := t.backend.ReadByte()
		if err != nil {
			return 0, 0, err
		}
		if !ok || b == 'R' {
			break
		}
		resp[n] = b
		n++
	}

	if n < 2 || resp[0] != keyEsc || resp[1] != '[' {
		return 0, 0, ErrCursorReport
	}
	if _, err := fmt.Sscanf(string(resp[2:n]), "%d;%d", &row, &col); err != nil {
		return 0, 0, ErrCursorReport
	}
	return row, col, nil
}

// MoveTo positions the cursor at 1-based row/col
func (t *Terminal) MoveTo(row, col int) error {
	seq := appendCursorPos(make([]byte, 0, 16), row, col)
	return t.backend.Write(seq)
}

// MoveLeft moves the cursor one column left
func (t *Terminal) MoveLeft() error {
	return t.backend.Write(csiCursorLeft)
}

// MoveRight moves the cursor one column right
func (t *Terminal) MoveRight() error {
	return t.backend.Write(csiCursorRight)
}

// RepaintLine repositions the cursor to the origin, clears to the end of
// the line and rewrites text. This is the canonical resynchronization of
// the screen with the buffer after any edit that is not a plain append.
func (t *Terminal) RepaintLine(originRow, originCol int, text []byte) error {
	if err := t.MoveTo(originRow, originCol); err != nil {
		return err
	}
	if err := t.backend.Write(csiClearToEOL); err != nil {
		return err
	}
	if len(text) == 0 {
		return nil
	}
	return t.backend.Write(text)
}
