// Package vterm implements the core of a virtual terminal emulator: the
// ANSI/VT escape-sequence parser and the grid it drives.
//
// The package consumes an untrusted byte stream (typically the read side
// of a PTY) and turns it into mutations of a two-dimensional cell grid
// with cursor, attributes, scrollback, selection, and an alternate
// screen buffer. It does not render anything; rendering, font handling,
// and window-system integration are left to callers.
//
// # Quick Start
//
//	g := vterm.NewGrid(80, 24, nil)
//	p := vterm.NewParser()
//	p.FeedString("\x1b[31mHello\x1b[0m", g)
//
//	snap := g.Snapshot()
//	fmt.Printf("%c\n", snap.Cells[0][0].Rune())
//
// # Architecture
//
//   - [Grid]: dual cell buffers (primary/alternate), scrollback,
//     cursor, pending attributes, selection, and screen-level modes.
//   - [Parser]: the byte-oriented state machine that decodes CSI, OSC,
//     ESC-final, and ISO-2022 charset sequences and dispatches them as
//     calls on a Grid.
//   - [Cell] / [Color]: the value types a Grid is built from.
//   - [Terminal]: an optional coordinator that owns a PTY, a Grid, and
//     a Parser, and pumps bytes from the former through the latter.
//
// # Feeding the parser
//
// [Parser.Feed] and [Parser.FeedString] are the two entry points. Both
// are safe to call repeatedly with arbitrary chunk boundaries: the same
// byte stream produces the same Grid state no matter how it is split
// across calls, since all parser state (param list, OSC buffer, current
// state) is carried between calls rather than assumed to complete
// within one.
//
//	p.Feed([]byte("\x1b["), g)
//	p.Feed([]byte("31m"), g)
//	// equivalent to p.Feed([]byte("\x1b[31m"), g) in one call
//
// # Dual buffers and scrollback
//
// A Grid holds a primary and an alternate buffer; exactly one is active
// at a time ([Grid.OnPrimary]). Full-screen applications switch via
// CSI ?1049h/l ([Grid.UseAlternateScreen]); the alternate buffer never
// contributes to scrollback. Lines evicted off the top of the primary
// buffer accumulate in a bounded [ScrollbackProvider] ([RingScrollback]
// by default).
//
// # Selection
//
// Selection is a tagged state machine ([Grid.SelectionStart],
// [Grid.SelectionUpdate], [Grid.SelectionComplete]) rather than a pair
// of cursor-like fields, so click-vs-drag and word/line selection
// ([Grid.SelectWord], [Grid.SelectLine]) compose cleanly.
// [Grid.GetSelectedText] extracts the spanned text, addressing rows in
// the combined scrollback-then-visible coordinate space.
//
// # Resize and reflow
//
// [Grid.Resize] either preserves content top-left with no rewrap, or
// (when reflow is requested) rewraps the primary buffer's logical lines
// to the new width, whichever screen is active, tracking a per-row soft-wrap bit so trailing spaces
// are not mistaken for line breaks. The alternate buffer always resizes
// without reflow.
//
// # Providers
//
// A handful of operations are opaque to the core and forwarded to
// caller-supplied providers, each with a no-op default so a Grid works
// standalone: [TitleProvider] (OSC 0/2), [ClipboardProvider] (OSC 52),
// [HyperlinkProvider] (OSC 8), [DirectoryProvider] (OSC 7).
//
// # Terminal Coordinator
//
// [Terminal] is the optional concurrency layer: it spawns a child
// process on a PTY ([StartTerminal]), runs a reader goroutine that
// segments PTY output into grapheme clusters and feeds them to a
// Parser/Grid pair behind a single RWMutex, and exposes a coalescing
// redraw-signal channel ([Terminal.Redraw]) for renderers. Resize is
// rate-limited to guard against SIGWINCH storms.
//
// # Thread safety
//
// A bare Grid and Parser are not safe for concurrent use — the parser
// is meant to be owned exclusively by whichever goroutine reads input.
// [Terminal] adds the locking needed to share a Grid between a reader
// goroutine and renderer/input goroutines.
package vterm
