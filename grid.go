package vterm

import (
	"strings"
	"unicode"
)

// MouseReportingMode enumerates the DEC private mouse-tracking variants
// the CSI dispatch table names (1000/1002/1005/1006); the Grid
// only stores which one is active, since decoding mouse events is an
// input-front-end concern out of scope for the core.
type MouseReportingMode int

const (
	MouseReportingNone MouseReportingMode = iota
	MouseReportingX10
	MouseReportingButtonEvent
	MouseReportingUTF8
	MouseReportingSGR
)

// Grid is the mutable screen state: dual cell buffers, scrollback,
// cursor, pending attributes, selection, charset translation, and
// screen-level mode flags. Only one concrete implementation of the grid
// ever exists at runtime, so it is a single concrete type with inherent
// methods rather than an interface.
type Grid struct {
	cfg *Config

	cols, rows int
	primary    *Buffer
	alternate  *Buffer
	onPrimary  bool

	cursor Cursor
	attrs  Attrs

	savedPrimary   SavedCursor
	savedAlternate SavedCursor
	cursorStack    []SavedCursor

	charset CharsetState

	insertMode            bool
	autoWrap              bool
	bracketedPasteMode    bool
	originMode            bool
	applicationCursorKeys bool
	keypadApplication     bool
	mouseReporting        MouseReportingMode
	focusReporting        bool
	synchronizedOutput    bool
	scrollOffset          int

	selection Selection

	title string

	Title      TitleProvider
	Clipboard  ClipboardProvider
	Hyperlink  HyperlinkProvider
	Directory  DirectoryProvider
}

// NewGrid allocates a grid of cols x rows cells with the given shared
// configuration. Cells start zero-initialized; the parser is not owned
// here (it is created fresh per Terminal Coordinator).
func NewGrid(cols, rows int, cfg *Config) *Grid {
	if cfg == nil {
		cfg = NewConfig()
	}
	g := &Grid{
		cfg:       cfg,
		cols:      cols,
		rows:      rows,
		primary:   NewBuffer(rows, cols, NewRingScrollback(cfg.ScrollbackLimit)),
		alternate: NewBuffer(rows, cols, NoopScrollback{}),
		onPrimary: true,
		cursor:    NewCursor(),
		attrs:     DefaultAttrs(),
		charset:   NewCharsetState(),
		autoWrap:  true,
		Title:     NoopTitle{},
		Clipboard: NoopClipboard{},
		Hyperlink: NoopHyperlink{},
		Directory: NoopDirectory{},
	}
	return g
}

func (g *Grid) active() *Buffer {
	if g.onPrimary {
		return g.primary
	}
	return g.alternate
}

func (g *Grid) Cols() int { return g.cols }
func (g *Grid) Rows() int { return g.rows }

func (g *Grid) Cursor() Cursor { return g.cursor }
func (g *Grid) Attrs() Attrs   { return g.attrs }

func (g *Grid) clampCursor() {
	if g.cursor.Row < 0 {
		g.cursor.Row = 0
	}
	if g.cursor.Row >= g.rows {
		g.cursor.Row = g.rows - 1
	}
	if g.cursor.Col < 0 {
		g.cursor.Col = 0
	}
	if g.cursor.Col >= g.cols {
		g.cursor.Col = g.cols - 1
	}
}

// --- character output ---

// Put translates ch through the active charset and writes it at the
// cursor (shifting right first under insert mode). It does not advance.
func (g *Grid) Put(ch rune) {
	ch = g.charset.Translate(ch)
	buf := g.active()
	if g.insertMode {
		buf.InsertBlanks(g.cursor.Row, g.cursor.Col, 1)
	}
	buf.SetCell(g.cursor.Row, g.cursor.Col, g.attrs.Cell(ch))
}

// Advance moves the cursor right one column, wrapping to a new line
// when auto_wrap is enabled and the cursor has reached the last column.
func (g *Grid) Advance() {
	g.cursor.Col++
	if g.cursor.Col >= g.cols {
		if g.autoWrap {
			g.active().SetWrapped(g.cursor.Row, true)
			g.Newline()
		} else {
			g.cursor.Col = g.cols - 1
		}
	}
}

func (g *Grid) Left(n int) {
	g.cursor.Col -= n
	if g.cursor.Col < 0 {
		g.cursor.Col = 0
	}
}

func (g *Grid) Right(n int) {
	g.cursor.Col += n
	if g.cursor.Col >= g.cols {
		g.cursor.Col = g.cols - 1
	}
}

func (g *Grid) Up(n int) {
	g.cursor.Row -= n
	if g.cursor.Row < 0 {
		g.cursor.Row = 0
	}
}

func (g *Grid) Down(n int) {
	g.cursor.Row += n
	if g.cursor.Row >= g.rows {
		g.cursor.Row = g.rows - 1
	}
}

// Newline moves to the start of the next line, scrolling the active
// buffer (and evicting into scrollback, primary only) when the cursor
// would leave the bottom row.
func (g *Grid) Newline() {
	g.cursor.Col = 0
	g.cursor.Row++
	if g.cursor.Row >= g.rows {
		g.active().ScrollUp(0, g.rows, 1)
		g.cursor.Row = g.rows - 1
	}
}

func (g *Grid) CarriageReturn() { g.cursor.Col = 0 }

func (g *Grid) Backspace() {
	if g.cursor.Col > 0 {
		g.cursor.Col--
	}
}

func (g *Grid) MoveAbs(row, col int) {
	g.cursor.Row, g.cursor.Col = row, col
	g.clampCursor()
}

func (g *Grid) MoveRel(dr, dc int) {
	g.cursor.Row += dr
	g.cursor.Col += dc
	g.clampCursor()
}

// --- clearing ---

func (g *Grid) ClearScreen() {
	g.active().ClearAll()
	g.cursor.Row, g.cursor.Col = 0, 0
	g.primary.ClearScrollback()
	g.scrollOffset = 0
	g.selection.Clear()
}

func (g *Grid) ClearLine() {
	g.active().ClearRow(g.cursor.Row)
}

func (g *Grid) ClearLineLeft() {
	g.active().ClearRowRange(g.cursor.Row, 0, g.cursor.Col+1)
}

func (g *Grid) ClearLineRight() {
	g.active().ClearRowRange(g.cursor.Row, g.cursor.Col, g.cols)
}

func (g *Grid) ClearScreenUp() {
	buf := g.active()
	for r := 0; r < g.cursor.Row; r++ {
		buf.ClearRow(r)
	}
	buf.ClearRowRange(g.cursor.Row, 0, g.cursor.Col+1)
}

func (g *Grid) ClearScreenDown() {
	buf := g.active()
	buf.ClearRowRange(g.cursor.Row, g.cursor.Col, g.cols)
	for r := g.cursor.Row + 1; r < g.rows; r++ {
		buf.ClearRow(r)
	}
}

// --- scrolling / line & char edits ---

func (g *Grid) ScrollUp(n int) {
	if n >= g.rows {
		g.ClearScreen()
		return
	}
	g.active().ScrollUp(0, g.rows, n)
}

func (g *Grid) ScrollDown(n int) {
	if n >= g.rows {
		g.ClearScreen()
		return
	}
	g.active().ScrollDown(0, g.rows, n)
}

func (g *Grid) InsertLines(n int) {
	if n > g.rows-g.cursor.Row {
		n = g.rows - g.cursor.Row
	}
	g.active().InsertLines(g.cursor.Row, n, g.rows)
}

func (g *Grid) DeleteLines(n int) {
	if n > g.rows-g.cursor.Row {
		n = g.rows - g.cursor.Row
	}
	g.active().DeleteLines(g.cursor.Row, n, g.rows)
}

func (g *Grid) InsertChars(n int) {
	g.active().InsertBlanks(g.cursor.Row, g.cursor.Col, n)
}

func (g *Grid) DeleteChars(n int) {
	g.active().DeleteChars(g.cursor.Row, g.cursor.Col, n)
}

func (g *Grid) EraseChars(n int) {
	g.active().EraseChars(g.cursor.Row, g.cursor.Col, n)
}

// --- attributes ---

func (g *Grid) SetFg(c Color) { g.attrs.Fg = c }
func (g *Grid) SetBg(c Color) { g.attrs.Bg = c }

// SetBold applies the bold attribute, promoting palette[0..7] to
// palette[8..15] when BoldIsBright is configured. The promotion is
// one-way: SetBold(false) does not demote the foreground back.
func (g *Grid) SetBold(b bool) {
	g.attrs.Bold = b
	if b && g.cfg.BoldIsBright {
		for i := 0; i < 8; i++ {
			if g.attrs.Fg == Palette[i] {
				g.attrs.Fg = Palette[i+8]
				break
			}
		}
	}
}

func (g *Grid) SetItalic(b bool)    { g.attrs.Italic = b }
func (g *Grid) SetUnderline(b bool) { g.attrs.Underline = b }
func (g *Grid) SetDim(b bool)       { g.attrs.Dim = b }

func (g *Grid) ResetAttrs() { g.attrs = DefaultAttrs() }

// --- cursor save/restore stack (CSI s/u, ESC 7/8) ---

func (g *Grid) SaveCursor() {
	sc := SavedCursor{Row: g.cursor.Row, Col: g.cursor.Col, Attrs: g.attrs, OriginMode: g.originMode, Charset: g.charset}
	g.cursorStack = append(g.cursorStack, sc)
	if len(g.cursorStack) > CursorStackLimit {
		g.cursorStack = g.cursorStack[len(g.cursorStack)-CursorStackLimit:]
	}
}

func (g *Grid) RestoreCursor() {
	if len(g.cursorStack) == 0 {
		return
	}
	sc := g.cursorStack[len(g.cursorStack)-1]
	g.cursorStack = g.cursorStack[:len(g.cursorStack)-1]
	g.applySavedCursor(sc)
}

func (g *Grid) applySavedCursor(sc SavedCursor) {
	g.cursor.Row, g.cursor.Col = sc.Row, sc.Col
	g.attrs = sc.Attrs
	g.originMode = sc.OriginMode
	g.charset = sc.Charset
	g.clampCursor()
}

// --- mode flags ---

func (g *Grid) SetCursorVisible(b bool)         { g.cursor.Visible = b }
func (g *Grid) SetInsertMode(b bool)            { g.insertMode = b }
func (g *Grid) SetAutoWrap(b bool)              { g.autoWrap = b }
func (g *Grid) SetBracketedPasteMode(b bool)    { g.bracketedPasteMode = b }
func (g *Grid) BracketedPasteMode() bool        { return g.bracketedPasteMode }
func (g *Grid) SetOriginMode(b bool)            { g.originMode = b }
func (g *Grid) SetKeypadMode(app bool)          { g.keypadApplication = app }
func (g *Grid) SetApplicationCursorKeys(b bool) { g.applicationCursorKeys = b }
func (g *Grid) ApplicationCursorKeys() bool     { return g.applicationCursorKeys }
func (g *Grid) SetMouseReportingMode(mode MouseReportingMode, b bool) {
	if b {
		g.mouseReporting = mode
	} else if g.mouseReporting == mode {
		g.mouseReporting = MouseReportingNone
	}
}
func (g *Grid) SetFocusReporting(b bool)     { g.focusReporting = b }
func (g *Grid) SetSynchronizedOutput(b bool) { g.synchronizedOutput = b }

// UseAlternateScreen swaps the active buffer between primary and
// alternate, saving/restoring per-screen cursor and attributes. A no-op
// if already in the requested state. Scrollback is never touched.
func (g *Grid) UseAlternateScreen(enable bool) {
	if enable == !g.onPrimary {
		return
	}
	if enable {
		g.savedPrimary = SavedCursor{Row: g.cursor.Row, Col: g.cursor.Col, Attrs: g.attrs, OriginMode: g.originMode, Charset: g.charset}
		g.onPrimary = false
		g.applySavedCursor(g.savedAlternate)
		g.active().ClearAll()
	} else {
		g.savedAlternate = SavedCursor{Row: g.cursor.Row, Col: g.cursor.Col, Attrs: g.attrs, OriginMode: g.originMode, Charset: g.charset}
		g.onPrimary = true
		g.applySavedCursor(g.savedPrimary)
	}
}

func (g *Grid) OnPrimary() bool { return g.onPrimary }

// --- forwarded, opaque-to-core operations ---

func (g *Grid) SetTitle(s string) {
	g.title = s
	g.Title.SetTitle(s)
}

func (g *Grid) TitleString() string { return g.title }

func (g *Grid) HandleClipboardData(selector byte, data []byte) {
	g.Clipboard.Write(selector, data)
}

func (g *Grid) HandleHyperlink(params, uri string) {
	g.Hyperlink.SetHyperlink(params, uri)
}

func (g *Grid) SetCurrentDirectory(path string) {
	g.Directory.SetCurrentDirectory(path)
}

// --- charset designation ---

func (g *Grid) Designate(slot CharsetSlot, designator byte) {
	g.charset.Designate(slot, designator)
}

func (g *Grid) SetSingleShift(slot CharsetSlot) {
	g.charset.SetSingleShift(slot)
}

// --- selection ---

func (g *Grid) scrollbackRows() int {
	if !g.onPrimary {
		return 0
	}
	return g.primary.ScrollbackLen()
}

// combinedRow returns the cells of combined row idx (idx < scrollbackRows
// addresses scrollback, else the visible buffer), or nil if out of range.
func (g *Grid) combinedRow(idx int) []Cell {
	sb := g.scrollbackRows()
	if idx < sb {
		return g.primary.ScrollbackLine(idx)
	}
	row := idx - sb
	buf := g.active()
	if row < 0 || row >= buf.Rows() {
		return nil
	}
	out := make([]Cell, buf.Cols())
	for c := 0; c < buf.Cols(); c++ {
		out[c] = *buf.Cell(row, c)
	}
	return out
}

func (g *Grid) SelectionStart(r, c int, t int64)     { g.selection.Start(r, c, t) }
func (g *Grid) SelectionUpdate(r, c int)             { g.selection.Update(r, c) }
func (g *Grid) SelectionComplete(r, c int, t int64) bool { return g.selection.Complete(r, c, t) }
func (g *Grid) SelectionClear()                      { g.selection.Clear() }
func (g *Grid) SelectionBounds() (SelectionPoint, SelectionPoint, bool) {
	return g.selection.NormalizedBounds()
}

// SelectWord expands the selection around (r,c) to the maximal run of
// alphanumeric characters containing it, within the row's non-null
// prefix. No selection if (r,c) itself is not alphanumeric.
func (g *Grid) SelectWord(r, c int) {
	cells := g.combinedRow(r)
	end := -1
	for end+1 < len(cells) && cells[end+1].Char != 0 {
		end++
	}
	if c < 0 || c > end {
		return
	}
	if !unicode.IsLetter(cells[c].Char) && !unicode.IsDigit(cells[c].Char) {
		return
	}
	start := c
	for start > 0 && isAlnumCell(cells[start-1]) {
		start--
	}
	stop := c
	for stop < end && isAlnumCell(cells[stop+1]) {
		stop++
	}
	g.selection.createComplete(SelectionPoint{r, start}, SelectionPoint{r, stop})
}

func isAlnumCell(c Cell) bool {
	return unicode.IsLetter(c.Char) || unicode.IsDigit(c.Char)
}

// SelectLine selects row r from its first to its last non-null column;
// no-op if the row is empty.
func (g *Grid) SelectLine(r int) {
	cells := g.combinedRow(r)
	end := lastNonNull(cells)
	if end < 0 {
		return
	}
	start := 0
	for cells[start].Char == 0 {
		start++
	}
	g.selection.createComplete(SelectionPoint{r, start}, SelectionPoint{r, end})
}

func lastNonNull(cells []Cell) int {
	for i := len(cells) - 1; i >= 0; i-- {
		if cells[i].Char != 0 {
			return i
		}
	}
	return -1
}

// GetSelectedText extracts the text spanned by the current selection,
// normalizing bounds and emitting one line per row (null cells render
// as spaces), newline-joined.
func (g *Grid) GetSelectedText() string {
	start, end, ok := g.selection.NormalizedBounds()
	if !ok {
		return ""
	}
	var b strings.Builder
	for r := start.Row; r <= end.Row; r++ {
		cells := g.combinedRow(r)
		from, to := 0, len(cells)-1
		if r == start.Row {
			from = start.Col
		}
		if r == end.Row {
			to = end.Col
		}
		if to > len(cells)-1 {
			to = len(cells) - 1
		}
		for c := from; c <= to && c < len(cells); c++ {
			if cells[c].IsWideSpacer() {
				continue
			}
			b.WriteRune(cells[c].Rune())
		}
		if r != end.Row {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// --- resize ---

// Resize reallocates both buffers to newCols x newRows. If reflow is
// false, content is preserved top-left with no rewrap (both buffers
// always follow this path). If reflow is true, the primary buffer is
// reflowed (see reflow.go) regardless of which screen is active; the
// alternate buffer always gets the simple resize; it never reflows.
func (g *Grid) Resize(newCols, newRows int, reflow bool) {
	if newCols <= 0 || newRows <= 0 {
		return
	}
	if reflow {
		g.resizePrimaryWithReflow(newCols, newRows)
		g.alternate.Resize(newRows, newCols)
	} else {
		g.primary.Resize(newRows, newCols)
		g.alternate.Resize(newRows, newCols)
	}
	g.cols, g.rows = newCols, newRows
	g.clampCursor()
	g.selection.Clear()
}
