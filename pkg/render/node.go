// Package render implements the persistent render tree: positioned,
// styled nodes with parent/child links and dirty flags (spec §3, "Render
// node"), plus the draw walk that turns them into cells.
package render

import (
	"github.com/tessui/tessui/pkg/style"
	"github.com/tessui/tessui/pkg/vnode"
)

// Node is the persistent, mutable counterpart of a vnode.VNode. It
// survives across frames; the diff/patch step in pkg/vdom mutates it in
// place rather than replacing it wholesale, so event handler identity and
// parent back-links are preserved where possible (spec §4.2).
type Node struct {
	Kind vnode.Kind

	Parent   *Node // non-owning back-link; nil only for the root
	Children []*Node

	// Authored content, mirroring the VNode that produced this node.
	Text      string
	TextStyle style.TextStyle
	Spans     []vnode.Span
	Style     style.Style
	Focusable bool
	FocusStyle *style.Style
	HoverStyle *style.Style
	Bindings  []vnode.Binding

	// Resolved geometry, written by the layout engine (pkg/layout).
	X, Y          int
	W, H          int
	IntrinsicW    int
	IntrinsicH    int
	ContentHeight int // full content height, independent of scroll clipping
	ScrollY       int
	Scrollable    bool

	// Resolved style after focus/hover overlay (spec §9: base -> focus ->
	// hover, last field wins).
	Resolved style.Style

	Focused bool
	Hovered bool
	Dirty   bool
}

// NewNode creates a detached Node of the given kind.
func NewNode(kind vnode.Kind) *Node {
	return &Node{Kind: kind, Dirty: true}
}

// MarkDirty flags n and propagates dirtiness upward to the nearest
// scrollable ancestor, so its clip/scroll recomputation picks up the
// change (spec §4.2: "dirty bits propagate upward to the nearest scroll
// container").
func (n *Node) MarkDirty() {
	n.Dirty = true
	p := n.Parent
	for p != nil {
		p.Dirty = true
		if p.Scrollable {
			return
		}
		p = p.Parent
	}
}

// ClearDirty resets the dirty bit on n and its whole subtree, called once
// a frame's draw has consumed it.
func (n *Node) ClearDirty() {
	n.Dirty = false
	for _, c := range n.Children {
		c.ClearDirty()
	}
}

// MaxScrollY returns the furthest down a scrollable node's content can be
// scrolled: max(0, content_height - height) per spec §4.3.
func (n *Node) MaxScrollY() int {
	max := n.ContentHeight - n.H
	if max < 0 {
		return 0
	}
	return max
}

// ClampScroll clamps ScrollY into [0, MaxScrollY()] per spec §8 ("Scroll
// clamp").
func (n *Node) ClampScroll() {
	max := n.MaxScrollY()
	if n.ScrollY < 0 {
		n.ScrollY = 0
	}
	if n.ScrollY > max {
		n.ScrollY = max
	}
}
