package vterm

// resizePrimaryWithReflow rewraps the primary buffer regardless of
// which screen is currently active (the alternate screen never
// reflows), so
// the cursor position fed into and recovered from the reflow is the
// primary screen's own — either the live cursor (primary active) or the
// saved-on-switch cursor (alternate active).
//
// Logical-line extraction walks the buffer's per-row wrapped bit
// (Buffer.IsWrapped), concatenating row N into row N-1's logical line
// only when row N-1 is marked wrapped (soft-wrapped by Grid.Advance),
// rather than stopping at the first null cell in each row. This is the
// resolution of the reflow open question: a continuation bit
// survives trailing spaces that pure null-termination would collapse.
func (g *Grid) resizePrimaryWithReflow(newCols, newRows int) {
	cursorRow, cursorCol := g.cursor.Row, g.cursor.Col
	if !g.onPrimary {
		cursorRow, cursorCol = g.savedPrimary.Row, g.savedPrimary.Col
	}

	newBuf, newCursorRow, newCursorCol := reflowBuffer(g.primary, cursorRow, cursorCol, newCols, newRows)
	g.primary = newBuf

	if g.onPrimary {
		g.cursor.Row, g.cursor.Col = newCursorRow, newCursorCol
	} else {
		g.savedPrimary.Row, g.savedPrimary.Col = newCursorRow, newCursorCol
	}
}

// reflowBuffer rewraps buf's logical lines to newCols x newRows,
// tracking cursorRow/cursorCol's approximate position in the logical
// character stream and mapping it back into the new grid.
func reflowBuffer(buf *Buffer, cursorRow, cursorCol, newCols, newRows int) (*Buffer, int, int) {
	oldRows, oldCols := buf.Rows(), buf.Cols()

	var lines [][]Cell
	var cur []Cell
	cursorLine, cursorOffsetInLine := -1, 0

	for r := 0; r < oldRows; r++ {
		if r == cursorRow {
			cursorLine = len(lines)
			cursorOffsetInLine = len(cur) + cursorCol
		}
		for c := 0; c < oldCols; c++ {
			cur = append(cur, *buf.Cell(r, c))
		}
		if !buf.IsWrapped(r) {
			lines = append(lines, cur)
			cur = nil
		}
	}
	if len(cur) > 0 {
		lines = append(lines, cur)
	}

	var destRows [][]Cell
	var destWrapped []bool
	newCursorRow, newCursorCol := 0, 0
	cursorPlaced := false

	for li, line := range lines {
		if len(line) == 0 {
			destRows = append(destRows, makeBlankRow(newCols))
			destWrapped = append(destWrapped, false)
			if li == cursorLine {
				newCursorRow, newCursorCol = len(destRows)-1, 0
				cursorPlaced = true
			}
			continue
		}
		for start := 0; start < len(line); start += newCols {
			end := start + newCols
			if end > len(line) {
				end = len(line)
			}
			row := make([]Cell, newCols)
			for c := start; c < end; c++ {
				row[c-start] = line[c]
			}
			for c := end - start; c < newCols; c++ {
				row[c] = NewCell()
			}
			wraps := end < len(line)
			destRows = append(destRows, row)
			destWrapped = append(destWrapped, wraps)

			if li == cursorLine && !cursorPlaced && cursorOffsetInLine < end {
				newCursorRow = len(destRows) - 1
				newCursorCol = cursorOffsetInLine - start
				if newCursorCol < 0 {
					newCursorCol = 0
				}
				cursorPlaced = true
			}
		}
	}

	if len(destRows) > newRows {
		destRows = destRows[:newRows] // lines beyond the new height are dropped
		destWrapped = destWrapped[:newRows]
		if newCursorRow >= newRows {
			newCursorRow = newRows - 1
		}
	}

	newBuf := NewBuffer(newRows, newCols, buf.Scrollback())
	for r, row := range destRows {
		for c, cell := range row {
			*newBuf.Cell(r, c) = cell
		}
		newBuf.SetWrapped(r, destWrapped[r])
	}

	if !cursorPlaced {
		newCursorRow, newCursorCol = 0, 0
	}
	if newCursorRow < 0 {
		newCursorRow = 0
	}
	if newCursorRow >= newRows {
		newCursorRow = newRows - 1
	}
	if newCursorCol < 0 {
		newCursorCol = 0
	}
	if newCursorCol >= newCols {
		newCursorCol = newCols - 1
	}
	return newBuf, newCursorRow, newCursorCol
}

func makeBlankRow(cols int) []Cell {
	row := make([]Cell, cols)
	for i := range row {
		row[i] = NewCell()
	}
	return row
}
