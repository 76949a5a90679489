package vterm

import (
	"io"
	"os"
	"os/exec"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/creack/pty"
	"github.com/rivo/uniseg"
)

// Terminal owns a PTY, a Grid, and a Parser, and is the only place in
// this module where a goroutine is spawned. The reader goroutine is the Grid's exclusive
// parser-feeding writer; Resize also takes the write lock, and all other
// access goes through RLock/Snapshot.
type Terminal struct {
	mu       sync.RWMutex
	grid     *Grid
	parser   *Parser
	cfg      *Config
	pty      *os.File
	cmd      *exec.Cmd
	writeMu  sync.Mutex
	redraw   chan struct{}
	resizeRL *RateLimiter

	connected bool
	readErrs  int
}

// StartTerminal spawns name (with args) attached to a new PTY sized
// cols x rows, and starts the reader goroutine. The caller owns the
// returned Terminal's lifetime and must call Close when done.
func StartTerminal(name string, args []string, cols, rows int, cfg *Config) (*Terminal, error) {
	if cfg == nil {
		cfg = NewConfig()
	}
	cmd := exec.Command(name, args...)
	f, err := pty.StartWithSize(cmd, &pty.Winsize{Rows: uint16(rows), Cols: uint16(cols)})
	if err != nil {
		return nil, err
	}
	t := &Terminal{
		grid:      NewGrid(cols, rows, cfg),
		parser:    NewParser(),
		cfg:       cfg,
		pty:       f,
		cmd:       cmd,
		redraw:    make(chan struct{}, 1),
		resizeRL:  NewRateLimiter(cfg.ResizeMinInterval),
		connected: true,
	}
	go t.readLoop()
	return t, nil
}

// Redraw returns the coalescing redraw-signal channel: a receive
// indicates the grid has changed since the last signal; multiple
// mutations between receives collapse into one signal.
func (t *Terminal) Redraw() <-chan struct{} { return t.redraw }

func (t *Terminal) signalRedraw() {
	select {
	case t.redraw <- struct{}{}:
	default:
	}
}

// readLoop pumps PTY output through grapheme-cluster segmentation and
// the parser, one cluster at a time so multi-rune graphemes (e.g.
// combining marks, some emoji) occupy one advance rather than one per
// rune. Three consecutive read errors mark the terminal disconnected
// and end the loop.
func (t *Terminal) readLoop() {
	buf := make([]byte, 4096)
	var pending []byte
	for {
		n, err := t.pty.Read(buf)
		if n > 0 {
			pending = append(pending, buf[:n]...)
			pending = t.feedGraphemes(pending)
			t.signalRedraw()
			t.readErrs = 0
		}
		if err != nil {
			if err == io.EOF {
				t.markDisconnected()
				return
			}
			t.readErrs++
			if t.readErrs >= 3 {
				t.markDisconnected()
				return
			}
			time.Sleep(time.Duration(t.readErrs) * 10 * time.Millisecond)
			continue
		}
	}
}

// feedGraphemes consumes complete grapheme clusters from data, feeding
// each to the parser under the grid's write lock, and returns the
// unconsumed remainder: an incomplete UTF-8 sequence at the end of data
// is held back for the next read. A cluster whose complete runes arrive
// in separate reads is fed as separate clusters.
//
// A cluster's base rune is fed through the parser normally (one Put,
// one Advance). Combining runes within the same cluster modify how the
// base glyph renders but the grid has no multi-rune cell storage, so
// they are not fed separately — feeding them would double-advance the
// cursor for what the user perceives as one character cell. A cluster
// that starts with a control character (such as CR LF) is fed whole. A
// cluster whose base rune has display width 2 gets one extra Advance,
// since the parser's normal path only accounts for width-1 glyphs.
func (t *Terminal) feedGraphemes(data []byte) []byte {
	t.mu.Lock()
	defer t.mu.Unlock()

	complete := len(data)
	for k := 1; k < utf8.UTFMax && k <= len(data); k++ {
		if utf8.RuneStart(data[len(data)-k]) {
			if !utf8.FullRune(data[len(data)-k:]) {
				complete = len(data) - k
			}
			break
		}
	}
	gr := uniseg.NewGraphemes(string(data[:complete]))
	for gr.Next() {
		start, end := gr.Positions()
		runes := gr.Runes()
		if len(runes) == 0 {
			continue
		}
		if runes[0] < 0x20 || runes[0] == 0x7F {
			t.parser.Feed(data[start:end], t.grid)
			continue
		}
		t.parser.Feed([]byte(string(runes[0])), t.grid)
		if runeWidth(runes[0]) == 2 {
			t.grid.Advance()
		}
	}
	if complete == len(data) {
		return nil
	}
	return data[complete:]
}

func (t *Terminal) markDisconnected() {
	t.mu.Lock()
	t.connected = false
	t.mu.Unlock()
	t.signalRedraw()
}

// Connected reports whether the PTY reader is still running.
func (t *Terminal) Connected() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.connected
}

// Write sends bytes to the PTY (keystrokes, pastes). Serialized against
// concurrent writers by writeMu, independent of the grid's RWMutex.
func (t *Terminal) Write(p []byte) (int, error) {
	t.writeMu.Lock()
	defer t.writeMu.Unlock()
	return t.pty.Write(p)
}

// WriteKey encodes and writes a non-printable keystroke.
func (t *Terminal) WriteKey(k Key) error {
	t.mu.RLock()
	app := t.grid.ApplicationCursorKeys()
	t.mu.RUnlock()
	_, err := t.Write([]byte(EncodeKey(k, app)))
	return err
}

// WritePaste sanitizes and writes pasted text, honoring the grid's
// current bracketed-paste mode.
func (t *Terminal) WritePaste(text string) error {
	t.mu.RLock()
	bracketed := t.grid.BracketedPasteMode()
	t.mu.RUnlock()
	_, err := t.Write([]byte(SanitizePaste(text, bracketed)))
	return err
}

// Resize propagates a new size to both the PTY and the grid, rate
// limited to at most once per cfg.ResizeMinInterval; excess calls are
// dropped silently (the next one that lands after the interval wins).
func (t *Terminal) Resize(cols, rows int, reflow bool) {
	if !t.resizeRL.Allow() {
		return
	}
	t.mu.Lock()
	t.grid.Resize(cols, rows, reflow)
	t.mu.Unlock()
	_ = pty.Setsize(t.pty, &pty.Winsize{Rows: uint16(rows), Cols: uint16(cols)})
	t.signalRedraw()
}

// Snapshot returns a read-only copy of the grid's current state under a
// read lock.
func (t *Terminal) Snapshot() Snapshot {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.grid.Snapshot()
}

// EnforceScrollbackCap trims the primary buffer's backing scrollback
// storage, reclaiming memory from evicted-but-still-allocated capacity
// (the row cap itself is applied on every push). It lives on Terminal,
// not the parser or grid, since it is a resource-policy decision rather
// than a grid operation. Nothing in Terminal calls it on a schedule; it
// runs only when a caller invokes it.
func (t *Terminal) EnforceScrollbackCap() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if rb, ok := t.grid.primary.Scrollback().(*RingScrollback); ok {
		rb.Shrink()
	}
}

// Close terminates the child process and releases the PTY.
func (t *Terminal) Close() error {
	_ = t.pty.Close()
	if t.cmd.Process != nil {
		_ = t.cmd.Process.Kill()
	}
	return nil
}
