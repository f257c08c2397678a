package cellbuf

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/tessui/tessui/pkg/style"
	"github.com/tessui/tessui/pkg/vnode"
)

// WriteDiff renders updates as the minimal ANSI byte sequence that
// transforms the previous frame's grid into this one (spec §8's "Buffer
// correctness" property): consecutive same-row updates are grouped into
// a single run so the cursor advances naturally instead of re-homing for
// every cell, and SGR codes are only re-emitted when the style actually
// changes between consecutive cells.
func WriteDiff(w *strings.Builder, updates []Update) {
	if len(updates) == 0 {
		return
	}

	var cur styleState
	curRow, curCol := -1, -1

	for i := 0; i < len(updates); i++ {
		u := updates[i]
		if u.Y != curRow || u.X != curCol {
			fmt.Fprintf(w, "\x1b[%d;%dH", u.Y+1, u.X+1)
			curRow, curCol = u.Y, u.X
		}
		writeCell(w, &cur, u.Cell)
		curCol++
	}
	w.WriteString("\x1b[0m")
}

// styleState tracks the last-emitted SGR attributes so writeCell can
// skip re-emitting a code that's already active.
type styleState struct {
	set       bool
	fg        *style.Color
	bg        *style.Color
	bold      bool
	italic    bool
	underline bool
	strike    bool
}

func writeCell(w *strings.Builder, cur *styleState, c vnode.Cell) {
	if styleChanged(cur, c) {
		w.WriteString("\x1b[0m")
		writeSGR(w, c)
		cur.set = true
		cur.fg, cur.bg = c.Fg, c.Bg
		cur.bold = boolPtr(c.Text.Bold)
		cur.italic = boolPtr(c.Text.Italic)
		cur.underline = boolPtr(c.Text.Underline)
		cur.strike = boolPtr(c.Text.Strikethrough)
	}
	// Strip defends against a stray control sequence smuggled into a
	// component's text content from corrupting the cursor/style state
	// of everything written after it.
	w.WriteString(ansi.Strip(string(c.Char)))
}

func styleChanged(cur *styleState, c vnode.Cell) bool {
	if !cur.set {
		return true
	}
	if !colorEqual(cur.fg, c.Fg) || !colorEqual(cur.bg, c.Bg) {
		return true
	}
	return cur.bold != boolPtr(c.Text.Bold) ||
		cur.italic != boolPtr(c.Text.Italic) ||
		cur.underline != boolPtr(c.Text.Underline) ||
		cur.strike != boolPtr(c.Text.Strikethrough)
}

func colorEqual(a, b *style.Color) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return a.Equal(*b)
}

func boolPtr(b *bool) bool { return b != nil && *b }

func writeSGR(w *strings.Builder, c vnode.Cell) {
	var codes []string
	if boolPtr(c.Text.Bold) {
		codes = append(codes, "1")
	}
	if boolPtr(c.Text.Italic) {
		codes = append(codes, "3")
	}
	if boolPtr(c.Text.Underline) {
		codes = append(codes, "4")
	}
	if boolPtr(c.Text.Strikethrough) {
		codes = append(codes, "9")
	}
	if c.Fg != nil {
		codes = append(codes, fgCode(*c.Fg))
	}
	if c.Bg != nil {
		codes = append(codes, bgCode(*c.Bg))
	}
	if len(codes) == 0 {
		return
	}
	w.WriteString("\x1b[" + strings.Join(codes, ";") + "m")
}

func fgCode(c style.Color) string {
	if c.Kind == style.ColorRGB {
		return fmt.Sprintf("38;2;%d;%d;%d", c.R, c.G, c.B)
	}
	return fmt.Sprintf("%d", ansiFgBase(c.ANSI)+int(c.ANSI)%8)
}

func bgCode(c style.Color) string {
	if c.Kind == style.ColorRGB {
		return fmt.Sprintf("48;2;%d;%d;%d", c.R, c.G, c.B)
	}
	return fmt.Sprintf("%d", ansiBgBase(c.ANSI)+int(c.ANSI)%8)
}

func ansiFgBase(idx uint8) int {
	if idx >= 8 {
		return 90
	}
	return 30
}

func ansiBgBase(idx uint8) int {
	if idx >= 8 {
		return 100
	}
	return 40
}
