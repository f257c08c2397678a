package app

import (
	"context"
	"strings"
	"time"

	"github.com/tessui/tessui/internal/term"
	"github.com/tessui/tessui/pkg/layout"
)

// cursorQueryTimeout bounds the DSR cursor-position round-trip spec §7
// allows for: "if the terminal does not answer... fall back to treating
// the cursor as already at the bottom of the screen."
const cursorQueryTimeout = 100 * time.Millisecond

// initInline establishes the reserved region's starting row before the
// first frame draws, by querying the real cursor position (falling back
// to the last row when the terminal doesn't answer, per spec §7) and
// reserving the configured policy's initial height below it. Newlines are
// emitted only for the part of the reservation that would run past the
// bottom of the screen, scrolling the terminal up to make room.
func (a *App) initInline(w, h int) {
	ctx, cancel := context.WithTimeout(context.Background(), cursorQueryTimeout)
	row, ok := a.term.QueryCursorPosition(ctx)
	cancel()
	if !ok {
		row = h - 1
	}

	want := resolveHeight(a.cfg.inlineHeight, 1, h)
	if want < 1 {
		want = 1
	}
	reserved := growReservation(0, want, h)

	origin := row
	overflow := origin + reserved - h
	if overflow > 0 {
		// The reservation would run past the bottom of the screen: scroll
		// the terminal up by printing blank lines, then anchor the
		// reservation at the new, higher-up origin.
		a.term.Write([]byte(strings.Repeat("\n", overflow)))
		origin -= overflow
		if origin < 0 {
			origin = 0
		}
	}

	a.inline = inlineState{originRow: origin, reservedLines: reserved}
}

// layoutInline runs the two-pass inline measurement spec §6 implies for
// Content/Fill policies: an unconstrained pass to learn the content's
// natural height, then the real pass at the resolved, grown reservation
// height. Fixed policies skip the measurement pass since their height
// never depends on content.
func (a *App) layoutInline(w, h int) {
	if a.cfg.inlineHeight.Kind == HeightFixed {
		want := resolveHeight(a.cfg.inlineHeight, 0, h)
		a.growInlineReservation(want, h)
		layout.Layout(a.root, w, a.inline.reservedLines)
		return
	}

	layout.Layout(a.root, w, measureHeight)
	// IntrinsicH, not ContentHeight: Auto-sized children fill the whole
	// sentinel height, so ContentHeight would report measureHeight itself.
	contentHeight := a.root.IntrinsicH
	want := resolveHeight(a.cfg.inlineHeight, contentHeight, h)
	a.growInlineReservation(want, h)
	layout.Layout(a.root, w, a.inline.reservedLines)
}

// growInlineReservation grows the reserved region to fit want, shifting
// originRow upward (and scrolling the terminal to make room) when the
// growth would otherwise run past the bottom of the screen.
func (a *App) growInlineReservation(want, h int) {
	grown := growReservation(a.inline.reservedLines, want, h)
	extra := grown - a.inline.reservedLines
	if extra <= 0 {
		a.inline.reservedLines = grown
		return
	}

	overflow := a.inline.originRow + grown - h
	if overflow > 0 {
		a.term.Write([]byte(strings.Repeat("\n", overflow)))
		a.inline.originRow -= overflow
		if a.inline.originRow < 0 {
			a.inline.originRow = 0
		}
	}
	a.inline.reservedLines = grown
}

// finishInline implements the exit-time behavior spec §6 describes:
// clearing the reserved lines when inlineClear is set, or otherwise
// leaving the last frame in place and moving the cursor below it.
func (a *App) finishInline() {
	var sb strings.Builder
	if a.cfg.inlineClear {
		for i := 0; i < a.inline.reservedLines; i++ {
			sb.WriteString(term.CursorTo(a.inline.originRow+i, 0))
			sb.WriteString("\x1b[2K")
		}
		sb.WriteString(term.CursorTo(a.inline.originRow, 0))
	} else {
		sb.WriteString(term.CursorTo(a.inline.originRow+a.inline.reservedLines, 0))
	}
	a.term.Write([]byte(sb.String()))
}
