package vterm

// ScrollbackProvider stores lines evicted from the top of the primary
// buffer. Implementations can back this with memory, disk, or anything
// else; the default is a bounded in-memory ring.
type ScrollbackProvider interface {
	// Push appends a line, evicting the oldest line if MaxLines() is
	// exceeded.
	Push(line []Cell)
	// Len returns the number of stored lines.
	Len() int
	// Line returns the line at index (0 = oldest); nil if out of range.
	Line(index int) []Cell
	// Clear removes all stored lines.
	Clear()
	// SetMaxLines sets the capacity, trimming the oldest lines if the
	// new cap is smaller than the current length.
	SetMaxLines(max int)
	// MaxLines returns the current capacity.
	MaxLines() int
}

// NoopScrollback discards everything; used for the alternate screen,
// which never contributes to scrollback.
type NoopScrollback struct{}

func (NoopScrollback) Push(line []Cell)    {}
func (NoopScrollback) Len() int            { return 0 }
func (NoopScrollback) Line(int) []Cell     { return nil }
func (NoopScrollback) Clear()              {}
func (NoopScrollback) SetMaxLines(max int) {}
func (NoopScrollback) MaxLines() int       { return 0 }

var _ ScrollbackProvider = NoopScrollback{}

// RingScrollback is the default ScrollbackProvider: a capacity-bounded
// FIFO of lines, each a copy of the cells evicted from the grid.
type RingScrollback struct {
	lines [][]Cell
	max   int
}

// NewRingScrollback returns a ring bounded at max lines; max <= 0 gives
// a ring that retains nothing.
func NewRingScrollback(max int) *RingScrollback {
	if max < 0 {
		max = 0
	}
	return &RingScrollback{max: max}
}

func (r *RingScrollback) Push(line []Cell) {
	if r.max <= 0 {
		return
	}
	cp := make([]Cell, len(line))
	copy(cp, line)
	r.lines = append(r.lines, cp)
	if len(r.lines) > r.max {
		r.lines = r.lines[len(r.lines)-r.max:]
	}
}

func (r *RingScrollback) Len() int { return len(r.lines) }

func (r *RingScrollback) Line(index int) []Cell {
	if index < 0 || index >= len(r.lines) {
		return nil
	}
	return r.lines[index]
}

func (r *RingScrollback) Clear() { r.lines = nil }

func (r *RingScrollback) SetMaxLines(max int) {
	if max < 0 {
		max = 0
	}
	r.max = max
	if max == 0 {
		r.lines = nil
		return
	}
	if len(r.lines) > max {
		r.lines = r.lines[len(r.lines)-max:]
	}
}

func (r *RingScrollback) MaxLines() int { return r.max }

// Shrink drops any backing capacity beyond the current length, used by
// the coordinator's periodic memory-cap enforcement.
func (r *RingScrollback) Shrink() {
	if len(r.lines) == cap(r.lines) {
		return
	}
	trimmed := make([][]Cell, len(r.lines))
	copy(trimmed, r.lines)
	r.lines = trimmed
}

var _ ScrollbackProvider = (*RingScrollback)(nil)
