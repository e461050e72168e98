package terminal

// ReadKey blocks until one keystroke is decoded, retrying the bounded
// read until a byte actually arrives. Escape sequences are resolved with
// a short lookahead; a timeout or unknown pattern mid-sequence degrades
// to a plain Escape event, discarding the bytes already consumed.
func (t *Terminal) ReadKey() (Event, error) {
	var b byte
	for {
		var ok bool
		var err error
		b, ok, err = t.backend.ReadByte()
		if err != nil {
			return Event{}, err
		}
		if ok {
			break
		}
	}

	if b != keyEsc {
		if b >= 0x20 && b < 0x7f {
			return Event{Key: KeyRune, Ch: b}, nil
		}
		return parseControl(b), nil
	}
	return t.readEscape()
}

// readEscape resolves the bytes following an ESC. Lookahead reads make a
// single bounded attempt each; no byte within the timeout means the user
// pressed a bare Escape.
func (t *Terminal) readEscape() (Event, error) {
	for {
		b, ok, err := t.backend.ReadByte()
		if err != nil {
			return Event{}, err
		}
		if !ok {
			return Event{Key: KeyEscape}, nil
		}

		// ESC immediately followed by ESC collapses: the common case is
		// an escape pressed together with an arrow key, so keep reading
		// one more sequence
		if b == keyEsc {
			continue
		}

		switch b {
		case '[':
			return t.readCSI()
		case 'O':
			return t.readSS3()
		}
		return Event{Key: KeyEscape}, nil
	}
}

func (t *Terminal) readCSI() (Event, error) {
	b1, ok, err := t.backend.ReadByte()
	if err != nil {
		return Event{}, err
	}
	if !ok {
		return Event{Key: KeyEscape}, nil
	}

	if b1 >= '0' && b1 <= '9' {
		b2, ok, err := t.backend.ReadByte()
		if err != nil {
			return Event{}, err
		}
		if !ok {
			return Event{Key: KeyEscape}, nil
		}

		if b2 != '~' {
			// Unrecognized numeric payload. Drain up to two more bytes
			// so a longer sequence does not leak into the edit loop;
			// drained bytes are lost.
			if _, ok, err := t.backend.ReadByte(); err != nil {
				return Event{}, err
			} else if ok {
				if _, _, err := t.backend.ReadByte(); err != nil {
					return Event{}, err
				}
			}
			return Event{Key: KeyEscape}, nil
		}

		if key, ok := lookupCSI([]byte{b1, '~'}); ok {
			return Event{Key: key}, nil
		}
		return Event{Key: KeyEscape}, nil
	}

	if key, ok := lookupCSI([]byte{b1}); ok {
		return Event{Key: key}, nil
	}
	return Event{Key: KeyEscape}, nil
}

func (t *Terminal) readSS3() (Event, error) {
	b1, ok, err := t.backend.ReadByte()
	if err != nil {
		return Event{}, err
	}
	if !ok {
		return Event{Key: KeyEscape}, nil
	}
	if key, ok := lookupSS3([]byte{b1}); ok {
		return Event{Key: key}, nil
	}
	return Event{Key: KeyEscape}, nil
}
