package vterm

// Key identifies a non-printable key the input front-end has recognized.
// Printable Unicode input bypasses this table entirely and is encoded as
// its own UTF-8 bytes.
type Key int

const (
	KeyEnter Key = iota
	KeyBackspace
	KeyTab
	KeyEscape
	KeyUp
	KeyDown
	KeyRight
	KeyLeft
	KeyHome
	KeyEnd
	KeyInsert
	KeyDelete
	KeyPageUp
	KeyPageDown
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyCtrlC
	KeyCtrlD
	KeyCtrlL
	KeyCtrlZ
)

var keyBytes = map[Key]string{
	KeyEnter:     "\r",
	KeyBackspace: "\x7F",
	KeyTab:       "\t",
	KeyEscape:    "\x1B",
	KeyUp:        "\x1B[A",
	KeyDown:      "\x1B[B",
	KeyRight:     "\x1B[C",
	KeyLeft:      "\x1B[D",
	KeyHome:      "\x1B[H",
	KeyEnd:       "\x1B[F",
	KeyInsert:    "\x1B[2~",
	KeyDelete:    "\x1B[3~",
	KeyPageUp:    "\x1B[5~",
	KeyPageDown:  "\x1B[6~",
	KeyF1:        "\x1BOP",
	KeyF2:        "\x1BOQ",
	KeyF3:        "\x1BOR",
	KeyF4:        "\x1BOS",
	KeyF5:        "\x1B[15~",
	KeyF6:        "\x1B[17~",
	KeyF7:        "\x1B[18~",
	KeyF8:        "\x1B[19~",
	KeyF9:        "\x1B[20~",
	KeyF10:       "\x1B[21~",
	KeyF11:       "\x1B[23~",
	KeyF12:       "\x1B[24~",
	KeyCtrlC:     "\x03",
	KeyCtrlD:     "\x04",
	KeyCtrlL:     "\x0C",
	KeyCtrlZ:     "\x1A",
}

// applicationCursorBytes overrides the arrow-key encodings when the
// grid's application_cursor_keys mode (DECCKM) is set, switching the
// final-byte-identical sequence from CSI to SS3 form.
var applicationCursorBytes = map[Key]string{
	KeyUp:    "\x1BOA",
	KeyDown:  "\x1BOB",
	KeyRight: "\x1BOC",
	KeyLeft:  "\x1BOD",
}

// EncodeKey returns the PTY-bound byte sequence for key, consulting
// applicationCursorKeys to select the arrow-key variant.
func EncodeKey(key Key, applicationCursorKeys bool) string {
	if applicationCursorKeys {
		if s, ok := applicationCursorBytes[key]; ok {
			return s
		}
	}
	return keyBytes[key]
}

// EncodeRune returns the UTF-8 bytes for a printable keystroke.
func EncodeRune(r rune) string {
	return string(r)
}
