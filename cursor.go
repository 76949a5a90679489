package vterm

// Cursor tracks position and visibility, 0-based, always within grid
// bounds.
type Cursor struct {
	Row, Col int
	Visible  bool
}

// NewCursor returns a cursor at (0,0), visible.
func NewCursor() Cursor {
	return Cursor{Row: 0, Col: 0, Visible: true}
}

// Attrs is the pending attribute set applied to subsequent put() calls:
// current fg/bg and the four boolean attributes.
type Attrs struct {
	Fg, Bg                       Color
	Bold, Italic, Underline, Dim bool
}

// DefaultAttrs returns the power-on pending attribute set.
func DefaultAttrs() Attrs {
	return Attrs{Fg: DefaultForeground, Bg: DefaultBackground}
}

// Cell builds a Cell carrying ch and the current attributes.
func (a Attrs) Cell(ch rune) Cell {
	var flags CellFlags
	if a.Bold {
		flags |= CellFlagBold
	}
	if a.Italic {
		flags |= CellFlagItalic
	}
	if a.Underline {
		flags |= CellFlagUnderline
	}
	if a.Dim {
		flags |= CellFlagDim
	}
	return Cell{Char: ch, Fg: a.Fg, Bg: a.Bg, Flags: flags}
}

// SavedCursor captures cursor position, pending attributes, and charset
// state for the CSI s/u, ESC 7/8, and alternate-screen-switch save/
// restore operations.
type SavedCursor struct {
	Row, Col   int
	Attrs      Attrs
	OriginMode bool
	Charset    CharsetState
}
