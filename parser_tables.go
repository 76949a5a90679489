package vterm

import (
	"encoding/base64"
	"strconv"
	"strings"
)

// param returns params[i] if present, else def. CSI parameters default to
// 1 for cursor-motion and line/char-edit ops; callers that need a
// different default (e.g. 0) pass it.
func (p *Parser) param(i int, def uint16) int {
	if i >= len(p.params) {
		return int(def)
	}
	if p.params[i] == 0 {
		return int(def)
	}
	return int(p.params[i])
}

// paramOrZero is like param but treats an explicit 0 as 0, not def; used
// by SGR and mode-setting dispatch where 0 is meaningful.
func (p *Parser) paramOrZero(i int, def uint16) int {
	if i >= len(p.params) {
		return int(def)
	}
	return int(p.params[i])
}

// dispatchCsiFinal applies the final byte of a complete CSI sequence to
// g, per the CSI dispatch table. Unknown final bytes are
// silently ignored, matching the table's explicit "ignored" entries.
func (p *Parser) dispatchCsiFinal(final byte, g *Grid) {
	switch final {
	case 'A':
		g.Up(p.param(0, 1))
	case 'B':
		g.Down(p.param(0, 1))
	case 'C':
		g.Right(p.param(0, 1))
	case 'D':
		g.Left(p.param(0, 1))
	case 'H', 'f':
		row := p.param(0, 1) - 1
		col := p.param(1, 1) - 1
		g.MoveAbs(row, col)
	case 'J':
		switch p.paramOrZero(0, 0) {
		case 0:
			g.ClearScreenDown()
		case 1:
			g.ClearScreenUp()
		case 2, 3:
			g.ClearScreen()
		}
	case 'K':
		switch p.paramOrZero(0, 0) {
		case 0:
			g.ClearLineRight()
		case 1:
			g.ClearLineLeft()
		case 2:
			g.ClearLine()
		}
	case 'L':
		g.InsertLines(p.param(0, 1))
	case 'M':
		g.DeleteLines(p.param(0, 1))
	case '@':
		g.InsertChars(p.param(0, 1))
	case 'P':
		g.DeleteChars(p.param(0, 1))
	case 'X':
		g.EraseChars(p.param(0, 1))
	case 'S':
		g.ScrollUp(p.param(0, 1))
	case 'T':
		g.ScrollDown(p.param(0, 1))
	case 's':
		g.SaveCursor()
	case 'u':
		g.RestoreCursor()
	case 'm':
		p.dispatchSGR(g)
	case 'h':
		p.dispatchModes(g, true)
	case 'l':
		p.dispatchModes(g, false)
	default:
		// unrecognized final byte: ignored per dispatch table
	}
}

// dispatchModes applies CSI h/l, interpreting params as DEC private
// modes when p.private is set (the '?' marker byte was seen), else as
// ANSI modes (only insert mode, code 4, is in scope here).
func (p *Parser) dispatchModes(g *Grid, enable bool) {
	if !p.private {
		for _, raw := range p.params {
			if raw == 4 {
				g.SetInsertMode(enable)
			}
		}
		return
	}
	for _, raw := range p.params {
		switch raw {
		case 1:
			g.SetApplicationCursorKeys(enable)
		case 7:
			g.SetAutoWrap(enable)
		case 25:
			g.SetCursorVisible(enable)
		case 47, 1049:
			g.UseAlternateScreen(enable)
		case 1000:
			g.SetMouseReportingMode(MouseReportingX10, enable)
		case 1002:
			g.SetMouseReportingMode(MouseReportingButtonEvent, enable)
		case 1005:
			g.SetMouseReportingMode(MouseReportingUTF8, enable)
		case 1006:
			g.SetMouseReportingMode(MouseReportingSGR, enable)
		case 1004:
			g.SetFocusReporting(enable)
		case 2004:
			g.SetBracketedPasteMode(enable)
		case 2026:
			g.SetSynchronizedOutput(enable)
		}
	}
}

// dispatchSGR walks the parameter list applying Select Graphic Rendition
// per the SGR table, including the extended 38 (foreground)
// and 48 (background) color forms' ;5;n (256-color) and ;2;r;g;b
// (truecolor) sub-forms. An empty parameter list means reset (code 0).
func (p *Parser) dispatchSGR(g *Grid) {
	if len(p.params) == 0 {
		g.ResetAttrs()
		return
	}
	params := p.params
	for i := 0; i < len(params); i++ {
		code := params[i]
		switch {
		case code == 0:
			g.ResetAttrs()
		case code == 1:
			g.SetBold(true)
		case code == 22:
			g.SetBold(false)
		case code == 2:
			g.SetDim(true)
		case code == 3:
			g.SetItalic(true)
		case code == 23:
			g.SetItalic(false)
		case code == 4:
			g.SetUnderline(true)
		case code == 24:
			g.SetUnderline(false)
		case code >= 30 && code <= 37:
			g.SetFg(PaletteColor(int(code - 30)))
		case code == 38:
			c, adv, ok := p.readExtendedColor(params[i+1:])
			if ok {
				g.SetFg(c)
			}
			i += adv
		case code == 39:
			g.SetFg(DefaultForeground)
		case code >= 40 && code <= 47:
			g.SetBg(PaletteColor(int(code - 40)))
		case code == 48:
			c, adv, ok := p.readExtendedColor(params[i+1:])
			if ok {
				g.SetBg(c)
			}
			i += adv
		case code == 49:
			// literal palette[0], not the conceptual "default background"
			g.SetBg(Palette[0])
		case code >= 90 && code <= 97:
			g.SetFg(BrightPaletteColor(int(code - 90)))
		case code >= 100 && code <= 107:
			g.SetBg(BrightPaletteColor(int(code - 100)))
		default:
			// unknown SGR code: ignored
		}
	}
}

// readExtendedColor decodes the sub-parameters following an SGR 38 or 48
// code: either "5;n" (256-color palette index) or "2;r;g;b" (truecolor).
// It returns the decoded color, how many extra params were consumed, and
// whether the form was recognized.
func (p *Parser) readExtendedColor(rest []uint16) (Color, int, bool) {
	if len(rest) == 0 {
		return Color{}, 0, false
	}
	switch rest[0] {
	case 5:
		if len(rest) < 2 {
			return Color{}, len(rest), false
		}
		return Color256(int(rest[1])), 2, true
	case 2:
		if len(rest) < 4 {
			return Color{}, len(rest), false
		}
		return RGBColor(int(rest[1]), int(rest[2]), int(rest[3])), 4, true
	default:
		return Color{}, 0, false
	}
}

// dispatchOSC interprets a complete OSC payload (everything between
// "ESC ]" and its BEL/ST terminator) per the OSC dispatch table:
// "Ps;Pt" where Ps selects the operation.
func dispatchOSC(payload string, g *Grid) {
	semi := strings.IndexByte(payload, ';')
	if semi < 0 {
		return
	}
	ps, pt := payload[:semi], payload[semi+1:]
	code, err := strconv.Atoi(ps)
	if err != nil {
		return
	}
	switch code {
	case 0, 2:
		g.SetTitle(pt)
	case 7:
		if dir := sanitizeOSCPath(pt); dir != "" {
			g.SetCurrentDirectory(dir)
		}
	case 8:
		parts := strings.SplitN(pt, ";", 2)
		if len(parts) == 2 && ValidateHyperlinkURI(parts[1]) {
			g.HandleHyperlink(parts[0], parts[1])
		}
	case 52:
		handleClipboardOSC(pt, g)
	default:
		// unrecognized Ps: ignored
	}
}

// handleClipboardOSC implements OSC 52's "Pc;Pd" form: Pc selects the
// clipboard selector byte(s), Pd is base64-encoded payload (or "?" for a
// query, which the core has no transport to answer and so ignores).
func handleClipboardOSC(pt string, g *Grid) {
	parts := strings.SplitN(pt, ";", 2)
	if len(parts) != 2 {
		return
	}
	selector, data := parts[0], parts[1]
	if data == "?" {
		return
	}
	decoded, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return
	}
	sel := byte('c')
	if len(selector) > 0 {
		sel = selector[0]
	}
	g.HandleClipboardData(sel, decoded)
}
