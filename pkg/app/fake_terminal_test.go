package app

import (
	"context"
	"errors"
	"sync"

	"github.com/tessui/tessui/internal/term"
)

// fakeTerminal is a scriptable term.Terminal double, grounded on the
// pattern of feeding canned input into a run loop rather than driving a
// real TTY: events and size report are supplied by the test, writes are
// captured for assertions.
type fakeTerminal struct {
	mu sync.Mutex

	width, height int
	cursorRow     int
	cursorOK      bool

	events   []term.Event
	eventPos int
	readErr  error
	initErr  error

	writes        [][]byte
	initCalled    bool
	restoreCalled bool
}

func newFakeTerminal(w, h int) *fakeTerminal {
	return &fakeTerminal{width: w, height: h, cursorRow: h - 1, cursorOK: true}
}

func (f *fakeTerminal) Init(inline bool) error {
	f.initCalled = true
	return f.initErr
}

func (f *fakeTerminal) Restore() error {
	f.restoreCalled = true
	return nil
}

func (f *fakeTerminal) Size() (int, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.width, f.height, nil
}

func (f *fakeTerminal) ReadEvent(ctx context.Context) (term.Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.readErr != nil {
		return term.Event{}, f.readErr
	}
	if f.eventPos >= len(f.events) {
		return term.Event{}, context.DeadlineExceeded
	}
	ev := f.events[f.eventPos]
	f.eventPos++
	return ev, nil
}

func (f *fakeTerminal) Write(p []byte) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := make([]byte, len(p))
	copy(cp, p)
	f.writes = append(f.writes, cp)
	return len(p), nil
}

func (f *fakeTerminal) QueryCursorPosition(ctx context.Context) (int, bool) {
	return f.cursorRow, f.cursorOK
}

// failReadsWith makes every subsequent ReadEvent call fail with err,
// once the currently queued events are exhausted.
func (f *fakeTerminal) failReadsWith(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = nil
	f.eventPos = 0
	f.readErr = err
}

var errFakeDisconnected = errors.New("fake terminal: disconnected")
