package terminal

import "time"

// DefaultPollTimeout is the bounded wait applied to each read attempt.
// It mirrors a VTIME of 1 (100ms) on a classic termios setup.
const DefaultPollTimeout = 100 * time.Millisecond

// Backend abstracts the terminal device. The production implementation
// drives a Unix tty; tests substitute scripted fakes.
type Backend interface {
	// Lifecycle
	// Init saves the device attributes and enters raw mode.
	// Calling Init on an already-raw backend is a no-op.
	Init() error
	// Fini restores the saved attributes. Safe to call multiple times.
	Fini() error

	// I/O
	// Write writes raw bytes to the terminal output.
	Write(p []byte) error

	// ReadByte waits up to the poll timeout for a single input byte.
	// ok is false when the wait timed out without data.
	ReadByte() (b byte, ok bool, err error)
}
