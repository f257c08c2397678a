package vdom

import "github.com/tessui/tessui/pkg/render"

// Apply mutates the render tree rooted at root according to patches, in
// order, and returns the (possibly new) root. A Replace patch whose
// Parent is nil replaces the root itself; Apply returns the new node in
// that case rather than mutating through a nil parent.
func Apply(root *render.Node, patches []Patch) *render.Node {
	for _, p := range patches {
		root = applyOne(root, p)
	}
	return root
}

func applyOne(root *render.Node, p Patch) *render.Node {
	switch p.Kind {
	case PatchReplace:
		mounted := render.FromVNode(p.NewVNode)
		if p.Parent == nil {
			return mounted
		}
		mounted.Parent = p.Parent
		for i, c := range p.Parent.Children {
			if c == p.Target {
				p.Parent.Children[i] = mounted
				break
			}
		}
		p.Parent.MarkDirty()
		return root

	case PatchUpdateText:
		p.Target.Text = p.Text
		p.Target.TextStyle = p.TextStyle
		p.Target.MarkDirty()

	case PatchUpdateRichText:
		p.Target.Spans = p.Spans
		p.Target.MarkDirty()

	case PatchUpdateProps:
		p.Target.Style = p.Style
		p.Target.Focusable = p.Focusable
		p.Target.FocusStyle = p.FocusStyle
		p.Target.HoverStyle = p.HoverStyle
		p.Target.Bindings = p.Bindings
		p.Target.MarkDirty()

	case PatchAddChild:
		child := render.FromVNode(p.NewVNode)
		child.Parent = p.Parent
		p.Parent.Children = append(p.Parent.Children, child)
		p.Parent.MarkDirty()

	case PatchRemoveChild:
		if p.Index < 0 || p.Index >= len(p.Parent.Children) {
			break
		}
		p.Parent.Children = append(p.Parent.Children[:p.Index], p.Parent.Children[p.Index+1:]...)
		p.Parent.MarkDirty()

	case PatchReorderChildren:
		// Never emitted by the positional diff in diff.go; reserved for a
		// future keyed diff.
	}
	return root
}
