package terminal

// Pre-allocated ANSI sequence fragments. The byte values are the wire
// contract with the device and must not be altered.
var (
	// Cursor control
	csiCursorQuery = []byte("\x1b[6n") // DSR: reply is ESC [ row ; col R
	csiCursorLeft  = []byte("\x1b[D")
	csiCursorRight = []byte("\x1b[C")
	csiCursorPos   = []byte("\x1b[") // followed by row;colH

	// Erase
	csiClearToEOL = []byte("\x1b[K")

	crlf = []byte("\r\n")
)

// appendInt appends the decimal form of n without allocation
// Optimized for terminal coordinates (0-999 typical)
func appendInt(dst []byte, n int) []byte {
	if n < 0 {
		n = 0
	}
	if n < 10 {
		return append(dst, byte(n)+'0')
	}
	if n < 100 {
		return append(dst, byte(n/10)+'0', byte(n%10)+'0')
	}
	if n < 1000 {
		return append(dst, byte(n/100)+'0', byte(n/10%10)+'0', byte(n%10)+'0')
	}
	// Fallback for >999 (rare)
	var buf [8]byte
	i := 7
	for n > 0 {
		buf[i] = byte(n%10) + '0'
		n /= 10
		i--
	}
	return append(dst, buf[i+1:]...)
}

// appendCursorPos appends the positioning sequence for 1-based row/col
func appendCursorPos(dst []byte, row, col int) []byte {
	dst = append(dst, csiCursorPos...)
	dst = appendInt(dst, row)
	dst = append(dst, ';')
	dst = appendInt(dst, col)
	return append(dst, 'H')
}
