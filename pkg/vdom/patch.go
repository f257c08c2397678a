// Package vdom implements expansion (Component -> VNode), diffing
// (VNode vs. the persistent render tree -> Patch list), and patch
// application (Patch list -> mutated render tree), per spec §4.2.
package vdom

import (
	"github.com/tessui/tessui/pkg/render"
	"github.com/tessui/tessui/pkg/style"
	"github.com/tessui/tessui/pkg/vnode"
)

// PatchKind discriminates the patch vocabulary spec §4.2 names.
type PatchKind uint8

const (
	PatchReplace PatchKind = iota
	PatchUpdateText
	PatchUpdateRichText
	PatchUpdateProps
	PatchAddChild
	PatchRemoveChild
	PatchReorderChildren
)

func (k PatchKind) String() string {
	switch k {
	case PatchReplace:
		return "Replace"
	case PatchUpdateText:
		return "UpdateText"
	case PatchUpdateRichText:
		return "UpdateRichText"
	case PatchUpdateProps:
		return "UpdateProps"
	case PatchAddChild:
		return "AddChild"
	case PatchRemoveChild:
		return "RemoveChild"
	case PatchReorderChildren:
		return "ReorderChildren"
	default:
		return "Unknown"
	}
}

// Patch is one atomic edit to the persistent render tree. Each patch is
// self-contained: it carries whatever values Apply needs, so Apply never
// has to consult the vnode.VNode that produced the patch.
type Patch struct {
	Kind PatchKind

	// Parent is the render node whose Children slice this patch indexes
	// into (AddChild, RemoveChild) or whose child is being replaced
	// (Replace). Nil when Parent itself is the tree root being replaced.
	Parent *render.Node

	// Target is the existing render node being mutated in place
	// (UpdateText, UpdateRichText, UpdateProps) or the old node a
	// Replace is discarding (may be nil when mounting for the first time).
	Target *render.Node

	// NewVNode is the freshly mounted subtree's source, for Replace and
	// AddChild.
	NewVNode *vnode.VNode

	// Index is the child position for AddChild/RemoveChild.
	Index int

	// UpdateText payload.
	Text      string
	TextStyle style.TextStyle

	// UpdateRichText payload.
	Spans []vnode.Span

	// UpdateProps payload.
	Style      style.Style
	Focusable  bool
	FocusStyle *style.Style
	HoverStyle *style.Style
	Bindings   []vnode.Binding

	// Moves is reserved for a future keyed-reorder diff; the positional
	// diff in diff.go never emits PatchReorderChildren (spec §9's
	// "initial version may encode [reorder] as Replace").
	Moves []int
}
