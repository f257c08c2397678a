package app

import (
	"github.com/tessui/tessui/internal/term"
	"github.com/tessui/tessui/pkg/render"
	"github.com/tessui/tessui/pkg/vnode"
)

// wheelLinesPerNotch is the scroll delta per wheel notch (spec §4.6:
// "the wheel delta is 3 lines per notch").
const wheelLinesPerNotch = 3

// dispatch routes one decoded terminal event into the render tree,
// following spec §4.6's delivery order: global handlers first, then
// the focused/hit node's local handlers, then (if still unhandled)
// scrollable-ancestor consumption.
func dispatch(root *render.Node, ev term.Event) {
	if root == nil {
		return
	}
	switch ev.Kind {
	case term.EventKey:
		dispatchKey(root, ev)
	case term.EventMouse:
		dispatchMouse(root, ev)
	}
}

func dispatchKey(root *render.Node, ev term.Event) {
	// Tab/Shift+Tab are runtime-level focus navigation, not a binding
	// kind components subscribe to (spec §4.6: "Tab advances focus to
	// the next focusable node... Shift+Tab reverses").
	switch ev.Code {
	case term.KeyTab:
		cycleFocus(root, true)
		return
	case term.KeyShiftTab:
		cycleFocus(root, false)
		return
	}

	handled := false
	render.Walk(root, func(n *render.Node) {
		for _, b := range n.Bindings {
			if b.IsGlobal && b.Kind == vnode.EventKeyPress {
				b.Handler(ev)
				handled = true
			}
		}
	})

	focused := render.FindFocused(root)
	if focused != nil {
		for _, b := range focused.Bindings {
			if !b.IsGlobal && b.Kind == vnode.EventKeyPress {
				b.Handler(ev)
				handled = true
			}
		}
	}

	if handled {
		return
	}

	consumeScrollKey(focused, root, ev)
}

func cycleFocus(root *render.Node, forward bool) {
	cur := render.FindFocused(root)
	var next *render.Node
	if forward {
		next = render.FocusNext(root, cur)
	} else {
		next = render.FocusPrev(root, cur)
	}
	render.SetFocus(root, next)
}

// consumeScrollKey lets an unhandled arrow/page/home/end key adjust the
// nearest scrollable ancestor of the focused node (spec §4.6).
func consumeScrollKey(focused, root *render.Node, ev term.Event) {
	start := focused
	if start == nil {
		start = root
	}
	target := nearestScrollable(start)
	if target == nil {
		return
	}
	switch ev.Code {
	case term.KeyUp:
		target.ScrollY--
	case term.KeyDown:
		target.ScrollY++
	case term.KeyPageUp:
		target.ScrollY -= target.H
	case term.KeyPageDown:
		target.ScrollY += target.H
	case term.KeyHome:
		target.ScrollY = 0
	case term.KeyEnd:
		target.ScrollY = target.MaxScrollY()
	default:
		return
	}
	target.ClampScroll()
	target.MarkDirty()
}

func nearestScrollable(n *render.Node) *render.Node {
	for p := n; p != nil; p = p.Parent {
		if p.Scrollable {
			return p
		}
	}
	return nil
}

func dispatchMouse(root *render.Node, ev term.Event) {
	kind := mouseEventKind(ev)
	handled := false

	render.Walk(root, func(n *render.Node) {
		for _, b := range n.Bindings {
			if b.IsGlobal && b.Kind == kind {
				b.Handler(ev)
				handled = true
			}
		}
	})

	hit := render.HitTest(root, ev.MouseX, ev.MouseY)
	if hit != nil {
		for _, b := range hit.Bindings {
			if b.IsGlobal {
				continue
			}
			if b.Kind == kind {
				b.Handler(ev)
				handled = true
			}
			if ev.MouseAction == term.MousePress && b.Kind == vnode.EventClick {
				b.Handler(ev)
				handled = true
			}
		}
		if ev.MouseAction == term.MousePress && hit.Focusable {
			render.SetFocus(root, hit)
		}
	}

	if handled {
		return
	}

	if ev.MouseAction != term.MouseWheelUp && ev.MouseAction != term.MouseWheelDown {
		return
	}
	start := hit
	if start == nil {
		start = root
	}
	target := nearestScrollable(start)
	if target == nil {
		return
	}
	if ev.MouseAction == term.MouseWheelUp {
		target.ScrollY -= wheelLinesPerNotch
	} else {
		target.ScrollY += wheelLinesPerNotch
	}
	target.ClampScroll()
	target.MarkDirty()
}

func mouseEventKind(ev term.Event) vnode.EventKind {
	switch ev.MouseAction {
	case term.MousePress:
		return vnode.EventMouseDown
	case term.MouseRelease:
		return vnode.EventMouseUp
	case term.MouseMotion:
		return vnode.EventMouseMove
	case term.MouseWheelUp:
		return vnode.EventWheelUp
	case term.MouseWheelDown:
		return vnode.EventWheelDown
	default:
		return vnode.EventMouseMove
	}
}
