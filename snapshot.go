package vterm

// Snapshot is a read-only, renderer-facing view of a Grid at one
// instant: dimensions, active cells, cursor, scroll position,
// scrollback rows, selection bounds, title, and mode flags. It is a
// plain value copy, safe to hold and read after the grid that produced
// it has mutated further.
type Snapshot struct {
	Cols, Rows int
	Cells      [][]Cell // Rows rows of Cols cells each, the active buffer only

	CursorRow, CursorCol int
	CursorVisible        bool

	ScrollOffset   int
	ScrollbackRows [][]Cell

	HasSelection       bool
	SelectionStart     SelectionPoint
	SelectionEnd       SelectionPoint

	Title string

	InsertMode            bool
	AutoWrap              bool
	BracketedPasteMode    bool
	OriginMode            bool
	OnPrimaryScreen       bool
	ApplicationCursorKeys bool
	MouseReporting        MouseReportingMode
	FocusReporting        bool
	SynchronizedOutput    bool
}

// Snapshot copies out everything a renderer needs to paint one frame.
// Callers typically invoke this while holding the grid's read lock (the
// Terminal Coordinator's responsibility, not the Grid's).
func (g *Grid) Snapshot() Snapshot {
	buf := g.active()
	cells := make([][]Cell, g.rows)
	for r := 0; r < g.rows; r++ {
		row := make([]Cell, g.cols)
		for c := 0; c < g.cols; c++ {
			row[c] = *buf.Cell(r, c)
		}
		cells[r] = row
	}

	var scrollback [][]Cell
	if g.onPrimary {
		n := g.primary.ScrollbackLen()
		scrollback = make([][]Cell, n)
		for i := 0; i < n; i++ {
			scrollback[i] = g.primary.ScrollbackLine(i)
		}
	}

	start, end, has := g.selection.NormalizedBounds()

	return Snapshot{
		Cols:                  g.cols,
		Rows:                  g.rows,
		Cells:                 cells,
		CursorRow:             g.cursor.Row,
		CursorCol:             g.cursor.Col,
		CursorVisible:         g.cursor.Visible,
		ScrollOffset:          g.scrollOffset,
		ScrollbackRows:        scrollback,
		HasSelection:          has,
		SelectionStart:        start,
		SelectionEnd:          end,
		Title:                 g.title,
		InsertMode:            g.insertMode,
		AutoWrap:              g.autoWrap,
		BracketedPasteMode:    g.bracketedPasteMode,
		OriginMode:            g.originMode,
		OnPrimaryScreen:       g.onPrimary,
		ApplicationCursorKeys: g.applicationCursorKeys,
		MouseReporting:        g.mouseReporting,
		FocusReporting:        g.focusReporting,
		SynchronizedOutput:    g.synchronizedOutput,
	}
}

// SetScrollOffset adjusts how many lines back the user has scrolled;
// 0 means live (bottom). Clamped to available scrollback.
func (g *Grid) SetScrollOffset(n int) {
	max := 0
	if g.onPrimary {
		max = g.primary.ScrollbackLen()
	}
	if n < 0 {
		n = 0
	}
	if n > max {
		n = max
	}
	g.scrollOffset = n
}

func (g *Grid) ScrollOffset() int { return g.scrollOffset }
