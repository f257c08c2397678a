package vdom

import (
	"github.com/tessui/tessui/pkg/runtime"
	"github.com/tessui/tessui/pkg/vnode"
)

// ExpandResult carries the side information expansion produces alongside
// the VNode tree: which identities are live this frame (for
// Runtime.ReconcileEffects), the effects newly-mounted components
// returned, and whether any Update call returned Exit.
type ExpandResult struct {
	Live       map[runtime.Identity]bool
	NewEffects map[runtime.Identity][]runtime.Effect
	Exit       bool
}

// Expand drains every live component's pending messages, applies the
// resulting actions, and walks the Component tree down to a pure VNode
// tree (spec §4.2). It must be called once per frame; it calls
// Runtime.BeginFrame itself before visiting any component, so callers
// must not call BeginFrame separately.
func Expand(rt *runtime.Runtime, root runtime.Component) (*vnode.VNode, ExpandResult) {
	rt.BeginFrame()
	result := ExpandResult{
		Live:       make(map[runtime.Identity]bool),
		NewEffects: make(map[runtime.Identity][]runtime.Effect),
	}
	v := expandComponent(rt, runtime.RootIdentity, root, &result)
	return v, result
}

func expandComponent(rt *runtime.Runtime, id runtime.Identity, comp runtime.Component, result *ExpandResult) *vnode.VNode {
	result.Live[id] = true
	firstRender := !rt.WasLive(id)
	ctx := rt.NewContext(id, firstRender)

	for _, msg := range rt.DrainDirect(id) {
		if rt.ApplyAction(id, comp.Update(ctx, msg, nil)) {
			result.Exit = true
		}
	}
	for _, tm := range rt.TopicMessagesFor(id) {
		topic := tm.Topic
		if rt.ApplyAction(id, comp.Update(ctx, tm.Payload, &topic)) {
			result.Exit = true
		}
	}

	if firstRender {
		if effs := comp.Effects(ctx); len(effs) > 0 {
			result.NewEffects[id] = effs
		}
	}

	view := comp.View(ctx)
	counter := 0
	return convert(rt, id, view, &counter, result)
}

// convert walks a pre-expansion Node tree, replacing every Component node
// with the VNode its expansion produces and assigning each a child
// identity in document order (spec §3: "0.k" for the k-th component
// child within its parent's own view scope).
func convert(rt *runtime.Runtime, parentID runtime.Identity, n *runtime.Node, counter *int, result *ExpandResult) *vnode.VNode {
	if n == nil {
		return nil
	}
	switch n.Kind {
	case runtime.NodeComponent:
		childID := parentID.Child(*counter)
		*counter++
		return expandComponent(rt, childID, n.Component, result)

	case runtime.NodeText:
		return vnode.Text(n.Text).WithTextStyle(n.TextStyle)

	case runtime.NodeRichText:
		return vnode.RichText(n.Spans...)

	case runtime.NodeContainer:
		v := vnode.Container()
		v.Style = n.Style
		v.Focusable = n.Focusable
		v.FocusStyle = n.FocusStyle
		v.HoverStyle = n.HoverStyle
		v.Bindings = n.Bindings
		for _, c := range n.Children {
			if child := convert(rt, parentID, c, counter, result); child != nil {
				v.Children = append(v.Children, child)
			}
		}
		return v

	default:
		return nil
	}
}
