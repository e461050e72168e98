package terminal

// Terminal provides synchronous raw-mode access to one interactive
// device: mode switching, key decoding and cursor/repaint primitives.
// All operations run on the caller's goroutine; there is no internal
// buffering or parallelism.
type Terminal struct {
	backend Backend
}

// New creates a Terminal over the given backend
func New(b Backend) *Terminal {
	return &Terminal{backend: b}
}

// EnableRaw switches the device to raw mode, saving its attributes.
// Idempotent while raw mode is active.
func (t *Terminal) EnableRaw() error {
	return t.backend.Init()
}

// DisableRaw restores the saved device attributes. Safe to call
// repeatedly and when raw mode was never enabled.
func (t *Terminal) DisableRaw() error {
	return t.backend.Fini()
}

// Write writes raw bytes to the device
func (t *Terminal) Write(p []byte) error {
	return t.backend.Write(p)
}

// WriteString writes s to the device
func (t *Terminal) WriteString(s string) error {
	return t.backend.Write([]byte(s))
}

// WriteCRLF emits a carriage return + line feed.
// Raw mode disables output post-processing, so a bare \n does not
// return the carriage.
func (t *Terminal) WriteCRLF() error {
	return t.backend.Write(crlf)
}
