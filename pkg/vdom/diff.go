package vdom

import (
	"reflect"

	"github.com/tessui/tessui/pkg/render"
	"github.com/tessui/tessui/pkg/vnode"
)

// Diff compares a persistent render tree (nil if nothing is mounted yet)
// against a freshly expanded VNode tree and produces the minimal patch
// list that transforms old into new (spec §4.2, §8 "Diff minimality").
func Diff(old *render.Node, new *vnode.VNode) []Patch {
	return diffNode(nil, old, new)
}

func diffNode(parent *render.Node, old *render.Node, new *vnode.VNode) []Patch {
	if new == nil {
		return nil
	}
	if old == nil || old.Kind != new.Kind {
		return []Patch{{Kind: PatchReplace, Parent: parent, Target: old, NewVNode: new}}
	}

	var patches []Patch
	switch new.Kind {
	case vnode.KindText:
		if old.Text != new.Text || !reflect.DeepEqual(old.TextStyle, new.TextStyle) {
			patches = append(patches, Patch{
				Kind:      PatchUpdateText,
				Target:    old,
				Text:      new.Text,
				TextStyle: new.TextStyle,
			})
		}
	case vnode.KindRichText:
		if !reflect.DeepEqual(old.Spans, new.Spans) {
			patches = append(patches, Patch{Kind: PatchUpdateRichText, Target: old, Spans: new.Spans})
		}
	case vnode.KindContainer:
		if containerPropsChanged(old, new) {
			patches = append(patches, Patch{
				Kind:       PatchUpdateProps,
				Target:     old,
				Style:      new.Style,
				Focusable:  new.Focusable,
				FocusStyle: new.FocusStyle,
				HoverStyle: new.HoverStyle,
				Bindings:   new.Bindings,
			})
		}
		patches = append(patches, diffChildren(old, old.Children, new.Children)...)
	}
	return patches
}

func containerPropsChanged(old *render.Node, new *vnode.VNode) bool {
	if !reflect.DeepEqual(old.Style, new.Style) {
		return true
	}
	if old.Focusable != new.Focusable {
		return true
	}
	if !reflect.DeepEqual(old.FocusStyle, new.FocusStyle) {
		return true
	}
	if !reflect.DeepEqual(old.HoverStyle, new.HoverStyle) {
		return true
	}
	// Bindings carry closures that are recreated every render (they
	// capture per-frame state via ctx.Handler), so any non-empty
	// bindings list is always considered "changed": there is no way to
	// meaningfully compare func identity, and re-binding every frame is
	// cheap and correct.
	if len(old.Bindings) != 0 || len(new.Bindings) != 0 {
		return true
	}
	return false
}

// diffChildren diffs two child lists positionally (spec §9: "choose
// positional for the initial implementation" — no keys). The shared
// prefix is diffed node-by-node; excess old children are removed in
// descending index order so each RemoveChild's Index is still valid
// against the not-yet-mutated slice, and excess new children are
// appended in ascending order.
func diffChildren(parent *render.Node, oldChildren []*render.Node, newChildren []*vnode.VNode) []Patch {
	var patches []Patch
	shared := len(oldChildren)
	if len(newChildren) < shared {
		shared = len(newChildren)
	}

	for i := 0; i < shared; i++ {
		patches = append(patches, diffNode(parent, oldChildren[i], newChildren[i])...)
	}

	for i := len(oldChildren) - 1; i >= shared; i-- {
		patches = append(patches, Patch{Kind: PatchRemoveChild, Parent: parent, Index: i})
	}

	for i := shared; i < len(newChildren); i++ {
		patches = append(patches, Patch{Kind: PatchAddChild, Parent: parent, NewVNode: newChildren[i], Index: i})
	}

	return patches
}
