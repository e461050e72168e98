package editor

import (
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/lixenwraith/readline/history"
	"github.com/lixenwraith/readline/terminal"
)

var (
	// ErrClosed indicates the session was already closed
	ErrClosed = errors.New("editor: session closed")

	// ErrNoBuffer indicates an empty destination buffer
	ErrNoBuffer = errors.New("editor: destination buffer must not be empty")
)

// Result is the completion status of one ReadLine call
type Result int

const (
	ResultSuccess Result = iota
	ResultEOF
	ResultInterrupted
)

func (r Result) String() string {
	switch r {
	case ResultSuccess:
		return "success"
	case ResultEOF:
		return "eof"
	case ResultInterrupted:
		return "interrupted"
	}
	return "unknown"
}

// Session is the context for interactive line reads: it owns the
// terminal, the history store and the trace logger. All former
// process-wide state lives here; construct once, pass by reference,
// close exactly once.
type Session struct {
	term   *terminal.Terminal
	hist   *history.Store
	logger *log.Logger

	backend     terminal.Backend
	pollTimeout time.Duration

	closed bool
}

// Option configures a Session
type Option func(*Session)

// WithLogger sets a trace logger. The logger must not write to the
// terminal being edited; point it at a file.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		s.logger = l
	}
}

// WithPollTimeout overrides the bounded per-read wait
func WithPollTimeout(d time.Duration) Option {
	return func(s *Session) {
		s.pollTimeout = d
	}
}

// WithBackend substitutes the terminal backend, for embedding and tests
func WithBackend(b terminal.Backend) Option {
	return func(s *Session) {
		s.backend = b
	}
}

// New creates a session over stdin/stdout
func New(opts ...Option) *Session {
	s := &Session{
		pollTimeout: terminal.DefaultPollTimeout,
		logger:      log.New(io.Discard),
	}
	for _, o := range opts {
		o(s)
	}
	if s.backend == nil {
		s.backend = terminal.NewBackend(s.pollTimeout)
	}
	s.term = terminal.New(s.backend)
	s.hist = history.New()
	return s
}

// Close releases the history and restores the terminal mode.
// Safe to call multiple times; only the first call does work.
func (s *Session) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	s.hist.ReleaseAll()
	s.logger.Debug("session closed")
	return s.term.DisableRaw()
}
