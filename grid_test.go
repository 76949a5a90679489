package vterm

import "testing"

func newTestGrid(cols, rows int) *Grid {
	return NewGrid(cols, rows, NewConfig(WithScrollbackLimit(100)))
}

func TestGridPutAndAdvance(t *testing.T) {
	g := newTestGrid(10, 5)
	g.Put('A')
	g.Advance()
	g.Put('B')
	g.Advance()
	if g.active().Cell(0, 0).Char != 'A' || g.active().Cell(0, 1).Char != 'B' {
		t.Error("expected A then B written at row 0")
	}
	if g.Cursor().Col != 2 {
		t.Errorf("expected cursor col 2, got %d", g.Cursor().Col)
	}
}

func TestGridPutDoesNotAdvance(t *testing.T) {
	g := newTestGrid(10, 5)
	g.Put('A')
	if g.Cursor().Col != 0 {
		t.Error("Put must not move the cursor")
	}
}

func TestGridInsertMode(t *testing.T) {
	g := newTestGrid(5, 1)
	g.Put('A')
	g.Advance()
	g.Put('C')
	g.SetInsertMode(true)
	g.MoveAbs(0, 1)
	g.Put('B')
	if rowString(g.active(), 0)[:3] != "ABC" {
		t.Errorf("expected insert to shift, got %q", rowString(g.active(), 0))
	}
}

func TestGridAdvanceWrapsAtLastColumn(t *testing.T) {
	g := newTestGrid(3, 2)
	g.MoveAbs(0, 2)
	g.Advance()
	if g.Cursor().Row != 1 || g.Cursor().Col != 0 {
		t.Errorf("expected wrap to (1,0), got (%d,%d)", g.Cursor().Row, g.Cursor().Col)
	}
}

func TestGridAdvanceSticksWithoutAutoWrap(t *testing.T) {
	g := newTestGrid(3, 2)
	g.SetAutoWrap(false)
	g.MoveAbs(0, 2)
	g.Advance()
	if g.Cursor().Row != 0 || g.Cursor().Col != 2 {
		t.Errorf("expected cursor to stick at (0,2), got (%d,%d)", g.Cursor().Row, g.Cursor().Col)
	}
}

func TestGridNewlineScrollsAtBottom(t *testing.T) {
	g := newTestGrid(5, 2)
	g.Put('A')
	g.Newline()
	g.Put('B')
	g.Newline() // should scroll, evicting row with 'A'
	if g.Cursor().Row != 1 {
		t.Errorf("expected cursor clamped to bottom row, got %d", g.Cursor().Row)
	}
	if g.primary.ScrollbackLen() != 1 {
		t.Fatalf("expected 1 evicted line, got %d", g.primary.ScrollbackLen())
	}
}

func TestGridCarriageReturnAndBackspace(t *testing.T) {
	g := newTestGrid(5, 2)
	g.MoveAbs(0, 3)
	g.CarriageReturn()
	if g.Cursor().Col != 0 {
		t.Error("expected carriage return to reset column")
	}
	g.MoveAbs(0, 2)
	g.Backspace()
	if g.Cursor().Col != 1 {
		t.Error("expected backspace to decrement column")
	}
	g.MoveAbs(0, 0)
	g.Backspace()
	if g.Cursor().Col != 0 {
		t.Error("expected backspace to clamp at column 0")
	}
}

func TestGridClearScreen(t *testing.T) {
	g := newTestGrid(5, 2)
	g.Put('A')
	g.Newline()
	g.Put('B')
	g.Newline()
	g.MoveAbs(1, 2)
	g.ClearScreen()
	if g.Cursor().Row != 0 || g.Cursor().Col != 0 {
		t.Error("expected cursor reset to (0,0)")
	}
	if g.primary.ScrollbackLen() != 0 {
		t.Error("expected scrollback cleared")
	}
	if g.active().Cell(0, 0).Char != 0 {
		t.Error("expected screen cleared")
	}
}

func TestGridClearLineVariants(t *testing.T) {
	g := newTestGrid(5, 1)
	for c := 0; c < 5; c++ {
		g.active().SetCell(0, c, Cell{Char: rune('A' + c)})
	}
	g.MoveAbs(0, 2)
	g.ClearLineLeft()
	if rowString(g.active(), 0) != "\x00\x00\x00DE" {
		t.Errorf("ClearLineLeft: got %q", rowString(g.active(), 0))
	}

	g2 := newTestGrid(5, 1)
	for c := 0; c < 5; c++ {
		g2.active().SetCell(0, c, Cell{Char: rune('A' + c)})
	}
	g2.MoveAbs(0, 2)
	g2.ClearLineRight()
	if rowString(g2.active(), 0) != "AB\x00\x00\x00" {
		t.Errorf("ClearLineRight: got %q", rowString(g2.active(), 0))
	}
}

func TestGridScrollUpBeyondRowsClears(t *testing.T) {
	g := newTestGrid(5, 3)
	g.Put('A')
	g.ScrollUp(100)
	if g.active().Cell(0, 0).Char != 0 {
		t.Error("expected n>=rows scroll to clear the screen")
	}
}

func TestGridInsertAndDeleteLines(t *testing.T) {
	g := newTestGrid(5, 3)
	g.active().SetCell(0, 0, Cell{Char: 'A'})
	g.active().SetCell(1, 0, Cell{Char: 'B'})
	g.active().SetCell(2, 0, Cell{Char: 'C'})
	g.MoveAbs(1, 0)
	g.InsertLines(1)
	if g.active().Cell(1, 0).Char != 0 {
		t.Error("expected row 1 cleared by InsertLines")
	}
	if g.active().Cell(2, 0).Char != 'B' {
		t.Errorf("expected B shifted to row 2, got %q", g.active().Cell(2, 0).Char)
	}
	g.DeleteLines(1)
	if g.active().Cell(1, 0).Char != 'B' {
		t.Errorf("expected B shifted back to row 1 by DeleteLines, got %q", g.active().Cell(1, 0).Char)
	}
	if g.active().Cell(2, 0).Char != 0 {
		t.Error("expected row 2 cleared by DeleteLines")
	}
}

func TestGridAttributesAndReset(t *testing.T) {
	g := newTestGrid(5, 1)
	g.SetFg(Palette[1])
	g.SetBold(true)
	if g.Attrs().Fg != Palette[1] || !g.Attrs().Bold {
		t.Error("expected attrs applied")
	}
	g.ResetAttrs()
	if g.Attrs().Fg != DefaultForeground || g.Attrs().Bold {
		t.Error("expected attrs reset to defaults")
	}
}

func TestGridBoldIsBrightPromotion(t *testing.T) {
	g := NewGrid(5, 1, NewConfig(WithBoldIsBright(true)))
	g.SetFg(Palette[1])
	g.SetBold(true)
	if g.Attrs().Fg != Palette[9] {
		t.Errorf("expected promotion to bright red, got %+v", g.Attrs().Fg)
	}
}

func TestGridBoldFalseDoesNotDemote(t *testing.T) {
	// Decided: bold-is-bright promotion does not auto-demote on unbold.
	g := NewGrid(5, 1, NewConfig(WithBoldIsBright(true)))
	g.SetFg(Palette[1])
	g.SetBold(true)
	g.SetBold(false)
	if g.Attrs().Fg != Palette[9] {
		t.Error("expected the bright promotion to persist after unbolding")
	}
}

func TestGridSaveRestoreCursor(t *testing.T) {
	g := newTestGrid(10, 10)
	g.MoveAbs(3, 4)
	g.SetFg(Palette[2])
	g.SaveCursor()
	g.MoveAbs(0, 0)
	g.SetFg(Palette[3])
	g.RestoreCursor()
	if g.Cursor().Row != 3 || g.Cursor().Col != 4 {
		t.Errorf("expected restored cursor (3,4), got (%d,%d)", g.Cursor().Row, g.Cursor().Col)
	}
	if g.Attrs().Fg != Palette[2] {
		t.Error("expected restored attrs")
	}
}

func TestGridRestoreCursorEmptyStackIsNoop(t *testing.T) {
	g := newTestGrid(10, 10)
	g.MoveAbs(2, 2)
	g.RestoreCursor()
	if g.Cursor().Row != 2 || g.Cursor().Col != 2 {
		t.Error("expected RestoreCursor on empty stack to be a no-op")
	}
}

// TestGridAlternateScreenRoundTrip checks the alternate-screen round trip.
func TestGridAlternateScreenRoundTrip(t *testing.T) {
	g := newTestGrid(10, 10)
	g.MoveAbs(2, 3)
	g.SetFg(Palette[4])
	beforeRow, beforeCol, beforeFg := g.Cursor().Row, g.Cursor().Col, g.Attrs().Fg

	g.UseAlternateScreen(true)
	if g.OnPrimary() {
		t.Fatal("expected alternate screen active")
	}
	g.MoveAbs(5, 5)
	g.SetFg(Palette[5])

	g.UseAlternateScreen(false)
	if !g.OnPrimary() {
		t.Fatal("expected primary screen restored")
	}
	if g.Cursor().Row != beforeRow || g.Cursor().Col != beforeCol {
		t.Errorf("expected cursor restored to (%d,%d), got (%d,%d)", beforeRow, beforeCol, g.Cursor().Row, g.Cursor().Col)
	}
	if g.Attrs().Fg != beforeFg {
		t.Error("expected attrs restored")
	}
}

func TestGridAlternateScreenNoopWhenAlreadyInState(t *testing.T) {
	g := newTestGrid(5, 5)
	g.UseAlternateScreen(false) // already on primary
	if !g.OnPrimary() {
		t.Error("expected no-op to leave primary active")
	}
}

func TestGridAlternateScreenNeverTouchesScrollback(t *testing.T) {
	g := newTestGrid(5, 2)
	g.Put('A')
	g.Newline()
	g.Put('B')
	g.Newline() // evicts one line into scrollback
	before := g.primary.ScrollbackLen()

	g.UseAlternateScreen(true)
	g.Put('X')
	g.Newline()
	g.Newline()
	g.UseAlternateScreen(false)

	if g.primary.ScrollbackLen() != before {
		t.Errorf("expected scrollback untouched by alternate screen, got %d want %d", g.primary.ScrollbackLen(), before)
	}
}

func TestGridSelectWord(t *testing.T) {
	g := newTestGrid(20, 2)
	for i, ch := range "Hello World!" {
		g.active().SetCell(1, i, Cell{Char: ch})
	}
	g.SelectWord(1, 8) // 'r' in World
	start, end, ok := g.SelectionBounds()
	if !ok {
		t.Fatal("expected a selection")
	}
	if start != (SelectionPoint{1, 6}) || end != (SelectionPoint{1, 10}) {
		t.Errorf("got start=%+v end=%+v", start, end)
	}
}

func TestGridSelectWordOnPunctuationIsNoop(t *testing.T) {
	g := newTestGrid(20, 1)
	for i, ch := range "Hi!" {
		g.active().SetCell(0, i, Cell{Char: ch})
	}
	g.SelectWord(0, 2) // '!'
	if _, _, ok := g.SelectionBounds(); ok {
		t.Error("expected no selection on punctuation")
	}
}

func TestGridSelectLine(t *testing.T) {
	g := newTestGrid(10, 1)
	for i, ch := range "Hi" {
		g.active().SetCell(0, i, Cell{Char: ch})
	}
	g.SelectLine(0)
	start, end, ok := g.SelectionBounds()
	if !ok || start.Col != 0 || end.Col != 1 {
		t.Errorf("got start=%+v end=%+v ok=%v", start, end, ok)
	}
}

func TestGridSelectLineEmptyRowIsNoop(t *testing.T) {
	g := newTestGrid(10, 1)
	g.SelectLine(0)
	if _, _, ok := g.SelectionBounds(); ok {
		t.Error("expected no selection on an empty row")
	}
}

func TestGridGetSelectedText(t *testing.T) {
	g := newTestGrid(5, 2)
	for i, ch := range "Hello" {
		g.active().SetCell(0, i, Cell{Char: ch})
	}
	for i, ch := range "World" {
		g.active().SetCell(1, i, Cell{Char: ch})
	}
	g.SelectionStart(0, 1, 0)
	g.SelectionUpdate(1, 3)
	g.SelectionComplete(1, 3, 500)
	got := g.GetSelectedText()
	if got != "ello\nWorl" {
		t.Errorf("got %q", got)
	}
}

func TestGridResizeWithoutReflowPreservesTopLeft(t *testing.T) {
	g := newTestGrid(5, 3)
	g.active().SetCell(0, 0, Cell{Char: 'A'})
	g.Resize(8, 5, false)
	if g.Cols() != 8 || g.Rows() != 5 {
		t.Fatalf("expected 8x5, got %dx%d", g.Cols(), g.Rows())
	}
	if g.active().Cell(0, 0).Char != 'A' {
		t.Error("expected content preserved top-left")
	}
}

func TestGridResizeClampsCursor(t *testing.T) {
	g := newTestGrid(10, 10)
	g.MoveAbs(9, 9)
	g.Resize(5, 5, false)
	if g.Cursor().Row >= 5 || g.Cursor().Col >= 5 {
		t.Errorf("expected cursor clamped to new bounds, got (%d,%d)", g.Cursor().Row, g.Cursor().Col)
	}
}

func TestGridResizeClearsSelection(t *testing.T) {
	g := newTestGrid(10, 10)
	g.SelectionStart(0, 0, 0)
	g.SelectionUpdate(1, 1)
	g.Resize(5, 5, false)
	if _, _, ok := g.SelectionBounds(); ok {
		t.Error("expected selection cleared by resize")
	}
}

// TestGridCursorAlwaysInBounds checks the cursor-bounds invariant.
func TestGridCursorAlwaysInBounds(t *testing.T) {
	g := newTestGrid(4, 3)
	g.MoveRel(-100, -100)
	if g.Cursor().Row < 0 || g.Cursor().Col < 0 {
		t.Error("expected clamped to non-negative")
	}
	g.MoveRel(100, 100)
	if g.Cursor().Row >= g.Rows() || g.Cursor().Col >= g.Cols() {
		t.Error("expected clamped within bounds")
	}
}

// TestGridBufferSizeInvariant checks the buffer-size invariant.
func TestGridBufferSizeInvariant(t *testing.T) {
	g := newTestGrid(7, 4)
	if g.primary.Rows()*g.primary.Cols() != 7*4 {
		t.Error("expected primary buffer size == cols*rows")
	}
	if g.alternate.Rows()*g.alternate.Cols() != 7*4 {
		t.Error("expected alternate buffer size == cols*rows")
	}
}
