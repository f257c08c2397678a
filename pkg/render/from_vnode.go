package render

import "github.com/tessui/tessui/pkg/vnode"

// FromVNode builds a fresh render subtree from a vnode.VNode, used when
// mounting a brand-new node: the first frame's root, or an AddChild /
// Replace patch target (pkg/vdom).
func FromVNode(v *vnode.VNode) *Node {
	if v == nil {
		return nil
	}
	n := NewNode(v.Kind)
	switch v.Kind {
	case vnode.KindText:
		n.Text = v.Text
		n.TextStyle = v.TextStyle
	case vnode.KindRichText:
		n.Spans = v.Spans
	case vnode.KindContainer:
		n.Style = v.Style
		n.Focusable = v.Focusable
		n.FocusStyle = v.FocusStyle
		n.HoverStyle = v.HoverStyle
		n.Bindings = v.Bindings
		for _, c := range v.Children {
			child := FromVNode(c)
			child.Parent = n
			n.Children = append(n.Children, child)
		}
	}
	return n
}
