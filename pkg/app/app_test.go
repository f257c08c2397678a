package app

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tessui/tessui/internal/devtools"
	"github.com/tessui/tessui/internal/term"
	"github.com/tessui/tessui/pkg/cellbuf"
	"github.com/tessui/tessui/pkg/render"
	"github.com/tessui/tessui/pkg/runtime"
	"github.com/tessui/tessui/pkg/style"
	"github.com/tessui/tessui/pkg/vnode"
)

// exitOnKey is a minimal Component whose Update returns Exit as soon as
// it sees a "quit" message, letting tests drive Run to a clean stop.
func exitOnKey() runtime.Component {
	return runtime.ComponentFunc{
		UpdateFn: func(ctx *runtime.Context, msg any, topic *string) runtime.Action {
			if msg == "quit" {
				return runtime.Exit()
			}
			return runtime.None()
		},
		ViewFn: func(ctx *runtime.Context) *runtime.Node {
			root := runtime.ContainerNode(
				runtime.TextNode("hello"),
			).WithStyle(style.Style{})
			root.Bindings = append(root.Bindings, vnode.Binding{
				Kind:     vnode.EventKeyPress,
				IsGlobal: true,
				Handler:  ctx.Handler("quit"),
			})
			return root
		},
	}
}

func TestRunProducesAFrameThenExits(t *testing.T) {
	ft := newFakeTerminal(20, 5)
	// The first event lands before the tree exists (dispatched against a
	// nil root, a no-op); the keypress that actually reaches the bound
	// handler is the second, once frame one has built the tree.
	ft.events = []term.Event{
		{Kind: term.EventFocusGained},
		{Kind: term.EventKey, Runes: []rune("q")},
	}

	a := New(ft)
	err := a.Run(exitOnKey())
	require.NoError(t, err)
	assert.True(t, ft.initCalled)
	assert.True(t, ft.restoreCalled)
	assert.NotEmpty(t, ft.writes)
}

func TestRunPropagatesTerminalIOError(t *testing.T) {
	ft := newFakeTerminal(20, 5)
	ft.failReadsWith(errFakeDisconnected)

	a := New(ft)
	err := a.Run(exitOnKey())
	assert.Error(t, err)
}

// focusCycleComponent builds two focusable siblings so Tab/Shift+Tab
// cycling can be observed on the resulting render tree.
func focusCycleComponent() runtime.Component {
	return runtime.ComponentFunc{
		UpdateFn: func(ctx *runtime.Context, msg any, topic *string) runtime.Action {
			if msg == "quit" {
				return runtime.Exit()
			}
			return runtime.None()
		},
		ViewFn: func(ctx *runtime.Context) *runtime.Node {
			first := runtime.ContainerNode().WithFocusable(true)
			second := runtime.ContainerNode().WithFocusable(true)
			root := runtime.ContainerNode(first, second)
			root.Bindings = append(root.Bindings, vnode.Binding{
				Kind:     vnode.EventKeyPress,
				IsGlobal: true,
				Handler: func(payload any) {
					ev, ok := payload.(term.Event)
					if ok && ev.Code == term.KeyCtrlC {
						ctx.Send("quit")
					}
				},
			})
			return root
		},
	}
}

func TestTabCyclesFocusAcrossFrames(t *testing.T) {
	ft := newFakeTerminal(20, 5)
	ft.events = []term.Event{
		{Kind: term.EventKey, Code: term.KeyTab},
		{Kind: term.EventKey, Code: term.KeyTab},
		{Kind: term.EventKey, Code: term.KeyCtrlC},
	}

	a := New(ft)
	err := a.Run(focusCycleComponent())
	require.NoError(t, err)
}

func TestInlineReservationGrowsWithContent(t *testing.T) {
	grown := 1
	component := runtime.ComponentFunc{
		UpdateFn: func(ctx *runtime.Context, msg any, topic *string) runtime.Action {
			if msg == "quit" {
				return runtime.Exit()
			}
			return runtime.None()
		},
		ViewFn: func(ctx *runtime.Context) *runtime.Node {
			lines := make([]*runtime.Node, grown)
			for i := range lines {
				lines[i] = runtime.TextNode("line")
			}
			return runtime.ContainerNode(lines...)
		},
	}

	ft := newFakeTerminal(20, 10)
	ft.cursorRow = 2
	a := New(ft, WithInline(Content(0)))
	a.buf = cellbuf.New(20, 10)

	// Drive two frames manually via frame() to observe reservation growth
	// without needing a real event stream.
	require.NoError(t, ft.Init(true))
	a.initInline(20, 10)

	_, err := a.frame(component, 20, 10)
	require.NoError(t, err)
	assert.Equal(t, 1, a.inline.reservedLines)

	grown = 5
	_, err = a.frame(component, 20, 10)
	require.NoError(t, err)
	assert.Equal(t, 5, a.inline.reservedLines, "reservation should grow to fit new content")
	assert.LessOrEqual(t, a.inline.originRow, 2, "origin should shift up (or stay put), never down")
}

func TestResolveHeightAndGrowReservation(t *testing.T) {
	assert.Equal(t, 3, resolveHeight(Fixed(3), 100, 20))
	assert.Equal(t, 4, resolveHeight(Content(4), 10, 20), "content height is capped at Max")
	assert.Equal(t, 2, resolveHeight(Fill(2), 1, 20), "Fill never goes below its floor")
	assert.Equal(t, 6, resolveHeight(Fill(2), 6, 20), "Fill grows past its floor with content")
	assert.Equal(t, 3, growReservation(3, 2, 20), "a reservation never shrinks")
	assert.Equal(t, 20, growReservation(3, 50, 20), "a reservation is clamped to terminal height")
}

func TestDumpDevtoolsWritesSnapshotToStderr(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	old := os.Stderr
	os.Stderr = w
	defer func() { os.Stderr = old }()

	ft := newFakeTerminal(10, 3)
	a := New(ft, WithDevtoolsDump(true))
	a.root = render.NewNode(vnode.KindContainer)

	a.dumpDevtools()
	require.NoError(t, w.Close())

	out, err := io.ReadAll(r)
	require.NoError(t, err)

	var snap devtools.Snapshot
	require.NoError(t, json.Unmarshal(out, &snap))
	require.NotNil(t, snap.Tree)
	assert.Equal(t, "Container", snap.Tree.Kind)
}

func TestPollTimeoutIsNotFatal(t *testing.T) {
	ft := newFakeTerminal(10, 3)
	a := New(ft, WithPollInterval(time.Millisecond))
	ctx, cancel := context.WithTimeout(context.Background(), a.cfg.pollInterval)
	defer cancel()
	_, err := ft.ReadEvent(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
