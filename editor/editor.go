package editor

import (
	"github.com/lixenwraith/readline/terminal"
)

// Edit states for one ReadLine call
type state int

const (
	statePrompted state = iota
	stateEditing
	stateSubmitted
	stateEOF
	stateInterrupted
)

// ReadLine reads one line interactively: prompt, raw mode, edit loop,
// restore. On ResultSuccess up to len(buf) bytes of the submitted line
// are copied into buf (silently truncated to fit) and n is the count.
//
// A non-nil error is a device failure; the terminal mode has already
// been restored best-effort and the caller chooses the shutdown policy.
// Raw mode is never left enabled on any return path.
func (s *Session) ReadLine(buf []byte, prompt string) (n int, res Result, err error) {
	if s.closed {
		return 0, ResultSuccess, ErrClosed
	}
	if len(buf) == 0 {
		return 0, ResultSuccess, ErrNoBuffer
	}

	// PROMPTED: prompt goes out before raw mode so it benefits from
	// normal output processing
	if prompt != "" {
		if err := s.term.WriteString(prompt); err != nil {
			return 0, ResultSuccess, err
		}
	}

	// Open this read's history slot. The entry is seeded from the
	// caller's buffer, then cleared: the slot exists for the whole
	// attempt regardless of outcome.
	histIdx := s.hist.StartEntry(buf, len(buf))
	live, _ := s.hist.Get(histIdx)
	live.Reset()

	if err := s.term.EnableRaw(); err != nil {
		return 0, ResultSuccess, err
	}
	s.logger.Debug("edit started", "history", s.hist.Len())

	// The origin is the only stable screen reference in a scrolling
	// terminal; every repaint is relative to it
	originRow, originCol, err := s.term.CursorPosition()
	if err != nil {
		return 0, ResultSuccess, s.fail(err)
	}

	cur := 0
	st := stateEditing

	for st == stateEditing {
		// A full buffer ends the read as if submitted
		if live.Len() >= len(buf)-1 {
			st = stateSubmitted
			break
		}

		ev, err := s.term.ReadKey()
		if err != nil {
			return 0, ResultSuccess, s.fail(err)
		}

		switch ev.Key {
		case terminal.KeyRune:
			// Echo first; raw mode suppressed the device's own echo
			if err := s.term.Write([]byte{ev.Ch}); err != nil {
				return 0, ResultSuccess, s.fail(err)
			}
			if err := live.InsertAt(cur, ev.Ch); err != nil {
				break
			}
			if cur+1 < live.Len() {
				// Mid-line insert: rewrite the shifted tail and pull
				// the cursor back to just after the new character
				if err := s.term.Write(live.Bytes()[cur+1:]); err != nil {
					return 0, ResultSuccess, s.fail(err)
				}
				if err := s.term.MoveTo(originRow, originCol+cur+1); err != nil {
					return 0, ResultSuccess, s.fail(err)
				}
			}
			cur++

		case terminal.KeyEnter:
			if err := s.term.WriteCRLF(); err != nil {
				return 0, ResultSuccess, s.fail(err)
			}
			st = stateSubmitted

		case terminal.KeyCtrlC:
			st = stateInterrupted

		case terminal.KeyCtrlD:
			if live.Len() == 0 {
				st = stateEOF
			} else {
				st = stateSubmitted
			}

		case terminal.KeyBackspace:
			if cur == 0 {
				break
			}
			cur--
			if err := live.RemoveAt(cur); err != nil {
				break
			}
			if err := s.term.RepaintLine(originRow, originCol, live.Bytes()); err != nil {
				return 0, ResultSuccess, s.fail(err)
			}

		case terminal.KeyUp, terminal.KeyDown:
			if ev.Key == terminal.KeyUp && histIdx == 0 {
				break
			}
			if ev.Key == terminal.KeyDown && histIdx == s.hist.Len()-1 {
				break
			}
			if ev.Key == terminal.KeyUp {
				histIdx--
			} else {
				histIdx++
			}
			live, _ = s.hist.Get(histIdx)
			if err := s.term.RepaintLine(originRow, originCol, live.Bytes()); err != nil {
				return 0, ResultSuccess, s.fail(err)
			}
			// Cursor lands at the end of the recalled text
			cur = live.Len()
			s.logger.Debug("history recall", "index", histIdx, "len", live.Len())

		case terminal.KeyLeft, terminal.KeyCtrlB:
			if cur == 0 {
				break
			}
			if err := s.term.MoveLeft(); err != nil {
				return 0, ResultSuccess, s.fail(err)
			}
			cur--

		case terminal.KeyRight, terminal.KeyCtrlF:
			if cur == live.Len() {
				break
			}
			if err := s.term.MoveRight(); err != nil {
				return 0, ResultSuccess, s.fail(err)
			}
			cur++

		default:
			// Home/End/Delete/PageUp/PageDown and remaining control
			// keys decode but have no editing action
		}
	}

	switch st {
	case stateInterrupted:
		s.logger.Debug("edit interrupted")
		if err := s.term.DisableRaw(); err != nil {
			return 0, ResultInterrupted, err
		}
		return 0, ResultInterrupted, nil

	case stateEOF:
		s.logger.Debug("edit eof")
		if err := s.term.DisableRaw(); err != nil {
			return 0, ResultEOF, err
		}
		return 0, ResultEOF, nil
	}

	// SUBMITTED
	n = copy(buf, live.Bytes())

	// A read that ends on a recalled entry mirrors its final content
	// onto the tail, so the most-recent slot reflects what was submitted
	if histIdx != s.hist.Len()-1 {
		s.hist.Tail().CopyFrom(live)
	}

	s.logger.Debug("edit submitted", "len", n)
	if err := s.term.DisableRaw(); err != nil {
		return n, ResultSuccess, err
	}
	return n, ResultSuccess, nil
}

// fail restores the terminal best-effort and passes the original error
// through; continuing with an unknown terminal state is not an option.
func (s *Session) fail(err error) error {
	_ = s.term.DisableRaw()
	return err
}
