//go:build unix

package terminal

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// ErrNotTerminal indicates the input stream is not an interactive tty
var ErrNotTerminal = errors.New("terminal: stdin is not a terminal")

type unixBackend struct {
	in    *os.File
	out   *os.File
	inFd  int
	outFd int

	// Saved attributes; non-nil exactly while raw mode is active
	oldTerm *term.State

	pollTimeout time.Duration
}

// NewBackend creates a backend over stdin/stdout with the given read
// timeout. A zero or negative timeout falls back to DefaultPollTimeout.
func NewBackend(pollTimeout time.Duration) Backend {
	if pollTimeout <= 0 {
		pollTimeout = DefaultPollTimeout
	}
	return &unixBackend{
		in:          os.Stdin,
		out:         os.Stdout,
		inFd:        int(os.Stdin.Fd()),
		outFd:       int(os.Stdout.Fd()),
		pollTimeout: pollTimeout,
	}
}

func (b *unixBackend) Init() error {
	if b.oldTerm != nil {
		return nil
	}
	if !term.IsTerminal(b.inFd) {
		return ErrNotTerminal
	}

	// MakeRaw disables canonical input, echo, signal keys and output
	// post-processing, and captures the previous attributes in one call
	old, err := term.MakeRaw(b.inFd)
	if err != nil {
		return fmt.Errorf("terminal: enable raw mode: %w", err)
	}
	b.oldTerm = old
	return nil
}

func (b *unixBackend) Fini() error {
	if b.oldTerm == nil {
		return nil
	}
	old := b.oldTerm
	b.oldTerm = nil
	if err := term.Restore(b.inFd, old); err != nil {
		return fmt.Errorf("terminal: restore mode: %w", err)
	}
	return nil
}

func (b *unixBackend) Write(p []byte) error {
	if _, err := b.out.Write(p); err != nil {
		return fmt.Errorf("terminal: write: %w", err)
	}
	return nil
}

// ReadByte waits up to the poll timeout for one byte. The bounded wait
// keeps the caller's retry loop responsive instead of parking in read.
func (b *unixBackend) ReadByte() (byte, bool, error) {
	fds := []unix.PollFd{
		{Fd: int32(b.inFd), Events: unix.POLLIN},
	}

	n, err := unix.Poll(fds, int(b.pollTimeout.Milliseconds()))
	if err != nil {
		if err == unix.EINTR {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("terminal: poll: %w", err)
	}
	if n == 0 {
		return 0, false, nil // Timeout
	}

	var buf [1]byte
	rn, err := unix.Read(b.inFd, buf[:])
	if err != nil {
		if err == unix.EINTR || err == unix.EAGAIN {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("terminal: read: %w", err)
	}
	if rn == 0 {
		// The tty went away; an interactive session cannot continue
		return 0, false, fmt.Errorf("terminal: read: %w", io.EOF)
	}
	return buf[0], true, nil
}
