// Package term wraps the raw terminal device: raw mode, size queries,
// alternate-screen/cursor control sequences, and a cancellable input
// reader, grounded on the pack's speier-smith/pkg/lotus/tty screen
// manager and generalized into an interface the app loop (pkg/app) can
// fake in tests.
package term

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/x/term"
	"github.com/mattn/go-isatty"
	"github.com/muesli/cancelreader"
)

// Terminal is the minimal surface the app loop needs from the real
// terminal device. Only I/O errors from this interface are fatal to a
// running app (spec §7).
type Terminal interface {
	// Init switches the terminal into raw mode and, unless inline is
	// true, the alternate screen buffer, hiding the cursor.
	Init(inline bool) error
	// Restore undoes everything Init did; safe to call multiple times.
	Restore() error
	// Size returns the current terminal dimensions in cells.
	Size() (width, height int, err error)
	// ReadEvent blocks for the next decoded input event, or returns
	// ctx.Err() once ctx is cancelled.
	ReadEvent(ctx context.Context) (Event, error)
	// Write sends raw bytes (the cell writer's output) to the terminal.
	Write(p []byte) (int, error)
	// QueryCursorPosition asks the terminal for its cursor's current
	// row, used by inline rendering to find the reservation origin.
	// Per spec §9: a failed or negative answer means "assume last row".
	QueryCursorPosition(ctx context.Context) (row int, ok bool)
}

// Real is the production Terminal, backed by an *os.File (stdout for
// writes, stdin for reads).
type Real struct {
	in  *os.File
	out *os.File

	state  *term.State
	reader cancelreader.CancelReader

	inline    bool
	altScreen bool
}

// New wraps the given input/output files (os.Stdin / os.Stdout in
// production).
func New(in, out *os.File) *Real {
	return &Real{in: in, out: out}
}

// IsInteractive reports whether out is attached to a real TTY; a
// non-interactive output (piped, redirected) should not attempt raw
// mode or cursor control.
func (t *Real) IsInteractive() bool {
	return isatty.IsTerminal(t.out.Fd()) || isatty.IsCygwinTerminal(t.out.Fd())
}

func (t *Real) Init(inline bool) error {
	t.inline = inline

	state, err := term.MakeRaw(int(t.in.Fd()))
	if err != nil {
		return fmt.Errorf("term: enter raw mode: %w", err)
	}
	t.state = state

	r, err := cancelreader.NewReader(t.in)
	if err != nil {
		_ = term.Restore(int(t.in.Fd()), t.state)
		return fmt.Errorf("term: wrap input reader: %w", err)
	}
	t.reader = r

	if !inline {
		t.writeString(seqAltScreenEnter)
		t.altScreen = true
	}
	t.writeString(seqHideCursor)
	t.writeString(seqMouseEnable)
	t.writeString(seqFocusReportEnable)
	return nil
}

func (t *Real) Restore() error {
	t.writeString(seqFocusReportDisable)
	t.writeString(seqMouseDisable)
	t.writeString(seqShowCursor)
	if t.altScreen {
		t.writeString(seqAltScreenExit)
		t.altScreen = false
	}
	if t.reader != nil {
		t.reader.Cancel()
		_ = t.reader.Close()
	}
	if t.state != nil {
		if err := term.Restore(int(t.in.Fd()), t.state); err != nil {
			return fmt.Errorf("term: restore cooked mode: %w", err)
		}
	}
	return nil
}

func (t *Real) Size() (int, int, error) {
	w, h, err := term.GetSize(int(t.out.Fd()))
	if err != nil {
		return 0, 0, fmt.Errorf("term: query size: %w", err)
	}
	return w, h, nil
}

func (t *Real) Write(p []byte) (int, error) {
	n, err := t.out.Write(p)
	if err != nil {
		return n, fmt.Errorf("term: write: %w", err)
	}
	return n, nil
}

func (t *Real) writeString(s string) {
	_, _ = io.WriteString(t.out, s)
}

// ReadEvent reads and decodes the next input event. It races the
// cancellable reader against ctx so a shutdown can interrupt a blocked
// read (cancelreader.Cancel() unblocks the in-flight Read call).
func (t *Real) ReadEvent(ctx context.Context) (Event, error) {
	type result struct {
		buf []byte
		err error
	}
	ch := make(chan result, 1)
	go func() {
		buf := make([]byte, 256)
		n, err := t.reader.Read(buf)
		ch <- result{buf: buf[:n], err: err}
	}()

	select {
	case <-ctx.Done():
		t.reader.Cancel()
		return Event{}, ctx.Err()
	case r := <-ch:
		if r.err != nil {
			return Event{}, fmt.Errorf("term: read input: %w", r.err)
		}
		return decode(r.buf), nil
	}
}

func (t *Real) QueryCursorPosition(ctx context.Context) (int, bool) {
	t.writeString(seqQueryCursorPosition)
	ev, err := t.ReadEvent(ctx)
	if err != nil || ev.Kind != EventCursorPosition {
		return 0, false
	}
	if ev.CursorRow < 0 {
		return 0, false
	}
	return ev.CursorRow, true
}

const (
	seqAltScreenEnter      = "\x1b[?1049h\x1b[3J\x1b[2J\x1b[H"
	seqAltScreenExit       = "\x1b[?1049l"
	seqHideCursor          = "\x1b[?25l"
	seqShowCursor          = "\x1b[?25h"
	seqMouseEnable         = "\x1b[?1000h\x1b[?1002h\x1b[?1003h\x1b[?1006h"
	seqMouseDisable        = "\x1b[?1000l\x1b[?1002l\x1b[?1003l\x1b[?1006l"
	seqFocusReportEnable   = "\x1b[?1004h"
	seqFocusReportDisable  = "\x1b[?1004l"
	seqQueryCursorPosition = "\x1b[6n"
)

// CursorTo returns the CUP sequence moving the cursor to the given
// 0-indexed row/col.
func CursorTo(row, col int) string {
	return fmt.Sprintf("\x1b[%d;%dH", row+1, col+1)
}
