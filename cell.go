package vterm

// CellFlags is a bitmask of cell rendering attributes.
type CellFlags uint8

const (
	CellFlagBold CellFlags = 1 << iota
	CellFlagDim
	CellFlagItalic
	CellFlagUnderline
	CellFlagWideChar       // first column of a double-wide glyph
	CellFlagWideCharSpacer // second (spacer) column of a double-wide glyph
	CellFlagDirty
)

// Cell is the value stored at one grid position: a character plus
// foreground/background color and the four boolean attributes the
// parser's SGR dispatch can set. Cells are value-typed and trivially
// copyable; Grid stores them contiguously per row.
type Cell struct {
	Char  rune
	Fg    Color
	Bg    Color
	Flags CellFlags
}

// NewCell returns the default cell: null character, default colors, no
// attributes.
func NewCell() Cell {
	return Cell{Char: 0, Fg: DefaultForeground, Bg: DefaultBackground}
}

// Reset restores c to the default cell in place.
func (c *Cell) Reset() {
	c.Char = 0
	c.Fg = DefaultForeground
	c.Bg = DefaultBackground
	c.Flags = 0
}

func (c *Cell) HasFlag(flag CellFlags) bool { return c.Flags&flag != 0 }
func (c *Cell) SetFlag(flag CellFlags)      { c.Flags |= flag }
func (c *Cell) ClearFlag(flag CellFlags)    { c.Flags &^= flag }

func (c *Cell) Bold() bool      { return c.HasFlag(CellFlagBold) }
func (c *Cell) Dim() bool       { return c.HasFlag(CellFlagDim) }
func (c *Cell) Italic() bool    { return c.HasFlag(CellFlagItalic) }
func (c *Cell) Underline() bool { return c.HasFlag(CellFlagUnderline) }

func (c *Cell) IsDirty() bool { return c.HasFlag(CellFlagDirty) }
func (c *Cell) MarkDirty()    { c.SetFlag(CellFlagDirty) }
func (c *Cell) ClearDirty()   { c.ClearFlag(CellFlagDirty) }

// IsWide reports whether this cell holds a double-wide glyph's first column.
func (c *Cell) IsWide() bool { return c.HasFlag(CellFlagWideChar) }

// IsWideSpacer reports whether this cell is the trailing spacer column of
// a double-wide glyph and should be skipped by renderers/selection.
func (c *Cell) IsWideSpacer() bool { return c.HasFlag(CellFlagWideCharSpacer) }

// Rune returns the character to display, substituting a space for the
// null (default) character.
func (c Cell) Rune() rune {
	if c.Char == 0 {
		return ' '
	}
	return c.Char
}
