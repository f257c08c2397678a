// Package app implements the run loop: the single-threaded frame
// sequence spec §5 describes (drain events, drain messages, expand,
// diff, patch, layout, draw, flush), inline-rendering mode (spec §6),
// and the cleanup-on-every-exit-path guarantee of spec §7. Grounded on
// the teacher's runner.go/runner_options.go (pkg/bubbly) for the overall
// shape, generalized from a bubbletea Program to this spec's own
// component/vdom/layout/render pipeline.
package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/tessui/tessui/internal/devtools"
	"github.com/tessui/tessui/internal/errs"
	"github.com/tessui/tessui/internal/obs"
	"github.com/tessui/tessui/internal/term"
	"github.com/tessui/tessui/pkg/cellbuf"
	"github.com/tessui/tessui/pkg/layout"
	"github.com/tessui/tessui/pkg/render"
	"github.com/tessui/tessui/pkg/runtime"
	"github.com/tessui/tessui/pkg/vdom"
)

// measureHeight is the sentinel root height used for the unconstrained
// layout pass that measures a Content/Fill inline reservation's natural
// size before the real, bounded layout pass runs.
const measureHeight = 1 << 20

// App is a running instance of the framework: the terminal backend, the
// component runtime, the persistent render tree, and the double-buffered
// cell grid, wired together by Run's frame loop.
type App struct {
	term term.Terminal
	cfg  RenderConfig
	rt   *runtime.Runtime

	buf    *cellbuf.Buffer
	root   *render.Node
	inline inlineState

	metrics  *obs.Metrics
	reporter *obs.Reporter
}

// New creates an App over the given terminal backend. Pass
// internal/term.New(os.Stdin, os.Stdout) in production, or a fake in
// tests.
func New(t term.Terminal, opts ...Option) *App {
	cfg := defaultRenderConfig()
	for _, o := range opts {
		o(&cfg)
	}
	a := &App{term: t, cfg: cfg, rt: runtime.NewRuntime()}
	a.rt.OnEffectPanic = func(owner runtime.Identity, index int, err error) {
		a.metrics.RecordEffectPanic()
		a.reporter.ReportEffectPanic(owner, index, err)
	}
	return a
}

// WithMetrics attaches a Prometheus metrics recorder; nil (the default)
// makes frame recording a no-op.
func (a *App) WithMetrics(m *obs.Metrics) *App {
	a.metrics = m
	return a
}

// WithReporter attaches a Sentry reporter; nil (the default) makes panic
// and fatal-error reporting a no-op.
func (a *App) WithReporter(r *obs.Reporter) *App {
	a.reporter = r
	return a
}

// Run starts the event loop and blocks until any component's Update
// returns an Exit action or a fatal terminal I/O error occurs (spec §6).
// Only terminal I/O errors are returned; every other failure kind is
// absorbed per spec §7.
func (a *App) Run(root runtime.Component) (err error) {
	// Init skips the alternate screen when told inline; WithAltScreen(false)
	// asks for the same.
	if initErr := a.term.Init(a.cfg.inline || !a.cfg.altScreen); initErr != nil {
		return fmt.Errorf("app: init terminal: %w: %w", errs.ErrTerminalIO, initErr)
	}
	defer func() {
		if a.cfg.inline {
			a.finishInline()
		}
		if restoreErr := a.term.Restore(); restoreErr != nil && err == nil {
			wrapped := fmt.Errorf("app: restore terminal: %w: %w", errs.ErrTerminalIO, restoreErr)
			a.reporter.ReportFatal(wrapped)
			err = wrapped
		}
		a.reporter.Flush()
	}()

	w, h, sizeErr := a.term.Size()
	if sizeErr != nil {
		return fmt.Errorf("app: query size: %w: %w", errs.ErrTerminalIO, sizeErr)
	}
	a.buf = cellbuf.New(w, h)

	if a.cfg.inline {
		a.initInline(w, h)
	}

	for {
		ctx, cancel := context.WithTimeout(context.Background(), a.cfg.pollInterval)
		ev, readErr := a.term.ReadEvent(ctx)
		cancel()
		if readErr != nil && !errors.Is(readErr, context.DeadlineExceeded) {
			wrapped := fmt.Errorf("app: read event: %w: %w", errs.ErrTerminalIO, readErr)
			a.reporter.ReportFatal(wrapped)
			return wrapped
		}
		if readErr == nil {
			dispatch(a.root, ev)
		}

		if nw, nh, sizeErr := a.term.Size(); sizeErr == nil && (nw != w || nh != h) {
			w, h = nw, nh
			a.buf.Resize(w, h)
		}

		exit, frameErr := a.frame(root, w, h)
		if frameErr != nil {
			wrapped := fmt.Errorf("app: write frame: %w: %w", errs.ErrTerminalIO, frameErr)
			a.reporter.ReportFatal(wrapped)
			return wrapped
		}
		if exit {
			return nil
		}
	}
}

// frame runs one full pipeline pass: expand, diff, patch, layout, draw,
// flush (spec §5's deterministic per-frame ordering).
func (a *App) frame(root runtime.Component, w, h int) (exit bool, err error) {
	start := time.Now()

	view, result := vdom.Expand(a.rt, root)

	var patches []vdom.Patch
	if a.cfg.diffing {
		patches = vdom.Diff(a.root, view)
		a.root = vdom.Apply(a.root, patches)
	} else {
		a.root = render.FromVNode(view)
	}

	a.rt.ReconcileEffects(result.Live, result.NewEffects)

	if req, ok := a.rt.TakeFocusRequest(); ok {
		a.applyFocusRequest(req)
	}

	if a.cfg.inline {
		a.layoutInline(w, h)
	} else {
		layout.Layout(a.root, w, h)
	}

	render.Draw(a.buf, a.root)

	var sb strings.Builder
	if a.cfg.inline {
		sb.WriteString(term.CursorTo(a.inline.originRow, 0))
	}
	var updates []cellbuf.Update
	if a.cfg.doubleBuffer {
		updates = a.buf.Diff()
	} else {
		updates = a.buf.FullPaint()
	}
	cellbuf.WriteDiff(&sb, updates)

	if sb.Len() > 0 {
		if _, writeErr := a.term.Write([]byte(sb.String())); writeErr != nil {
			return false, writeErr
		}
	}
	a.buf.Swap()

	a.metrics.RecordFrame(time.Since(start), len(patches))

	if a.cfg.devtoolsDump || os.Getenv("TESSUI_DEVTOOLS_DUMP") != "" {
		a.dumpDevtools()
	}

	return result.Exit, nil
}

// dumpDevtools writes the current frame's devtools.Snapshot as one line of
// JSON to stderr (spec §4.9's env-gated introspection hook). Marshal
// errors are swallowed: a malformed dump must never interrupt the run
// loop or corrupt the terminal it's writing cells to.
func (a *App) dumpDevtools() {
	snap := devtools.Take(a.root, a.rt)
	b, err := json.Marshal(snap)
	if err != nil {
		return
	}
	b = append(b, '\n')
	_, _ = os.Stderr.Write(b)
}

// applyFocusRequest resolves a pending Context focus helper against the
// just-patched render tree (spec §4.6: "applied after the next layout").
func (a *App) applyFocusRequest(req runtime.FocusRequest) {
	switch req.Kind {
	case runtime.FocusRequestSelf:
		subtreeRoot := findByPrefix(a.root, req.Root)
		render.SetFocus(a.root, render.FirstFocusable(subtreeRoot))
	case runtime.FocusRequestFirst:
		render.SetFocus(a.root, render.FirstFocusable(a.root))
	case runtime.FocusRequestBlur:
		render.SetFocus(a.root, nil)
	}
}

// findByPrefix is a best-effort placeholder: the render tree carries no
// identity labels of its own (those live on the pre-expansion Component
// tree), so FocusRequestSelf degrades to "first focusable in the whole
// tree" until render nodes carry their originating identity. Noted as
// an open item in DESIGN.md rather than silently mis-scoping focus.
func findByPrefix(root *render.Node, _ runtime.Identity) *render.Node {
	return root
}
