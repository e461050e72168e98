package terminal

// Key represents a parsed input key
type Key uint16

// Key constants - designed for expansion
const (
	KeyNone Key = iota
	KeyRune     // Printable character (check Event.Ch)

	// Control keys
	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	KeyDelete

	// Navigation
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown

	// Ctrl+letter (Ctrl+A = 0x01, Ctrl+Z = 0x1A)
	KeyCtrlA
	KeyCtrlB
	KeyCtrlC
	KeyCtrlD
	KeyCtrlE
	KeyCtrlF
	KeyCtrlG
	KeyCtrlH // Often same as Backspace
	KeyCtrlI // Often same as Tab
	KeyCtrlJ // Often same as Enter
	KeyCtrlK
	KeyCtrlL
	KeyCtrlM // Often same as Enter
	KeyCtrlN
	KeyCtrlO
	KeyCtrlP
	KeyCtrlQ
	KeyCtrlR
	KeyCtrlS
	KeyCtrlT
	KeyCtrlU
	KeyCtrlV
	KeyCtrlW
	KeyCtrlX
	KeyCtrlY
	KeyCtrlZ
)

var keyNames = map[Key]string{
	KeyNone:      "none",
	KeyRune:      "rune",
	KeyEscape:    "escape",
	KeyEnter:     "enter",
	KeyTab:       "tab",
	KeyBackspace: "backspace",
	KeyDelete:    "delete",
	KeyUp:        "up",
	KeyDown:      "down",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyHome:      "home",
	KeyEnd:       "end",
	KeyPageUp:    "pgup",
	KeyPageDown:  "pgdn",
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	if k >= KeyCtrlA && k <= KeyCtrlZ {
		return "ctrl+" + string(rune('a'+k-KeyCtrlA))
	}
	return "unknown"
}

// Event is one decoded keystroke
type Event struct {
	Key Key
	Ch  byte // Valid when Key == KeyRune
}

const keyEsc byte = 0x1b

// escapeSequence maps escape payloads to keys.
// seq is the sequence after ESC [ or ESC O.
type escapeSequence struct {
	seq string
	key Key
}

// Known CSI sequences (ESC [ ...)
var csiSequences = []escapeSequence{
	// Arrow keys
	{"A", KeyUp},
	{"B", KeyDown},
	{"C", KeyRight},
	{"D", KeyLeft},

	// Navigation
	{"H", KeyHome},
	{"F", KeyEnd},
	{"1~", KeyHome},
	{"7~", KeyHome},
	{"4~", KeyEnd},
	{"8~", KeyEnd},
	{"3~", KeyDelete},
	{"5~", KeyPageUp},
	{"6~", KeyPageDown},
}

// SS3 sequences (ESC O ...)
var ss3Sequences = []escapeSequence{
	{"A", KeyUp},
	{"B", KeyDown},
	{"C", KeyRight},
	{"D", KeyLeft},
	{"H", KeyHome},
	{"F", KeyEnd},
}

var csiMap = buildSequenceMap(csiSequences)
var ss3Map = buildSequenceMap(ss3Sequences)

func buildSequenceMap(seqs []escapeSequence) map[string]Key {
	m := make(map[string]Key, len(seqs))
	for _, s := range seqs {
		m[s.seq] = s.key
	}
	return m
}

// lookupCSI performs zero-alloc map lookup via compiler optimization
// The string([]byte) conversion inline in map access does not allocate
func lookupCSI(seq []byte) (Key, bool) {
	k, ok := csiMap[string(seq)]
	return k, ok
}

// lookupSS3 performs zero-alloc map lookup
func lookupSS3(seq []byte) (Key, bool) {
	k, ok := ss3Map[string(seq)]
	return k, ok
}

// parseControl maps single-byte control codes to keys
func parseControl(b byte) Event {
	switch b {
	case 0x08, 0x7f: // Ctrl+H, DEL
		return Event{Key: KeyBackspace}
	case 0x09:
		return Event{Key: KeyTab}
	case 0x0a, 0x0d: // LF, CR (Enter)
		return Event{Key: KeyEnter}
	case keyEsc:
		return Event{Key: KeyEscape}
	}
	if b >= 0x01 && b <= 0x1a {
		return Event{Key: KeyCtrlA + Key(b-0x01)}
	}
	return Event{Key: KeyNone}
}
