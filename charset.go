package vterm

// CharsetSlot selects one of the four ISO-2022 designator registers.
type CharsetSlot int

const (
	CharsetG0 CharsetSlot = iota
	CharsetG1
	CharsetG2
	CharsetG3
)

// DECSpecialGraphics is the designator byte selecting the DEC Special
// Graphics (box-drawing) table: the only designator with a non-identity
// translation.
const DECSpecialGraphics byte = '0'

// CharsetState is the ISO-2022 character-set bookkeeping: four one-byte
// designators, a GL active index (0 or
// 1, selecting G0/G1), a GR active index (2 or 3, selecting G2/G3), and
// an optional one-shot single-shift override consumed by the next
// translated character.
type CharsetState struct {
	G           [4]byte
	GL          int
	GR          int
	singleShift int
	hasSS       bool
}

// NewCharsetState returns the power-on charset state: all designators
// ASCII, GL selecting G0, GR selecting G2.
func NewCharsetState() CharsetState {
	return CharsetState{G: [4]byte{'B', 'B', 'B', 'B'}, GL: 0, GR: 2}
}

// Designate sets the designator byte for the named slot.
func (c *CharsetState) Designate(slot CharsetSlot, designator byte) {
	c.G[slot] = designator
}

// SetSingleShift arms a one-shot override selecting slot for the next
// translated character only.
func (c *CharsetState) SetSingleShift(slot CharsetSlot) {
	c.singleShift = int(slot)
	c.hasSS = true
}

// Translate maps r through the currently-active designator, consuming
// any armed single-shift override. ASCII (<0x80) uses GL; everything
// else uses GR. Only the DEC Special Graphics designator has a
// non-identity mapping.
func (c *CharsetState) Translate(r rune) rune {
	slot := CharsetSlot(c.GL)
	if r >= 0x80 {
		slot = CharsetSlot(c.GR)
	}
	if c.hasSS {
		slot = CharsetSlot(c.singleShift)
		c.hasSS = false
	}
	if c.G[slot] != DECSpecialGraphics {
		return r
	}
	if mapped, ok := decSpecialGraphicsTable[r]; ok {
		return mapped
	}
	return r
}

// decSpecialGraphicsTable remaps ASCII '`'..'~' to the DEC Special
// Graphics line-drawing codepoints (VT100 alternate character set).
var decSpecialGraphicsTable = map[rune]rune{
	'`': '◆', // diamond
	'a': '▒', // checkerboard
	'b': '␉', // HT symbol
	'c': '␌', // FF symbol
	'd': '␍', // CR symbol
	'e': '␊', // LF symbol
	'f': '°', // degree
	'g': '±', // plus/minus
	'h': '␤', // NL symbol
	'i': '␋', // VT symbol
	'j': '┘', // bottom-right corner
	'k': '┐', // top-right corner
	'l': '┌', // top-left corner
	'm': '└', // bottom-left corner
	'n': '┼', // crossing lines
	'o': '⎺', // scan line 1
	'p': '⎻', // scan line 3
	'q': '─', // horizontal line
	'r': '⎼', // scan line 7
	's': '⎽', // scan line 9
	't': '├', // left T
	'u': '┤', // right T
	'v': '┴', // bottom T
	'w': '┬', // top T
	'x': '│', // vertical line
	'y': '≤', // less-than-or-equal
	'z': '≥', // greater-than-or-equal
	'{': 'π', // pi
	'|': '≠', // not-equal
	'}': '£', // pound sterling
	'~': '·', // centered dot
}
