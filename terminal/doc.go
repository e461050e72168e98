// Package terminal provides direct ANSI terminal control for single-line
// interactive editing.
//
// Features:
//   - Raw mode switching with guaranteed restoration of saved attributes
//   - Bounded (~100ms) single-byte reads so callers never block forever
//   - Synchronous key decoding with CSI/SS3 escape sequence handling
//   - Cursor position report (CPR) query and minimal repaint primitives
//
// This package bypasses terminfo/termcap entirely, emitting direct ANSI
// sequences. Target environments: Linux, macOS, BSDs with xterm-compatible
// terminals.
package terminal
