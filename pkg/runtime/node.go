package runtime

import (
	"github.com/tessui/tessui/pkg/style"
	"github.com/tessui/tessui/pkg/vnode"
)

// NodeKind discriminates the pre-expansion Node sum type: every vnode.Kind
// plus Component.
type NodeKind uint8

const (
	NodeContainer NodeKind = iota
	NodeText
	NodeRichText
	NodeComponent
)

// Node is the pre-expansion counterpart of vnode.VNode: identical in shape
// plus a Component variant carrying a shared reference to a component
// object (spec §3, "Node (pre-expansion)"). Expansion replaces each
// Component node with the VNode its view produces.
type Node struct {
	Kind NodeKind

	// Container fields.
	Children   []*Node
	Style      style.Style
	Focusable  bool
	FocusStyle *style.Style
	HoverStyle *style.Style
	Bindings   []vnode.Binding

	// Text fields.
	Text      string
	TextStyle style.TextStyle

	// RichText fields.
	Spans []vnode.Span

	// Component field.
	Component Component
}

// ContainerNode builds a Container Node.
func ContainerNode(children ...*Node) *Node {
	return &Node{Kind: NodeContainer, Children: children}
}

// TextNode builds a Text Node.
func TextNode(s string) *Node {
	return &Node{Kind: NodeText, Text: s}
}

// RichTextNode builds a RichText Node.
func RichTextNode(spans ...vnode.Span) *Node {
	return &Node{Kind: NodeRichText, Spans: spans}
}

// ComponentNode wraps a Component so it can sit in a Node tree; expansion
// replaces it with the VNode the component's View returns.
func ComponentNode(c Component) *Node {
	return &Node{Kind: NodeComponent, Component: c}
}

// WithStyle sets the container style.
func (n *Node) WithStyle(s style.Style) *Node {
	n.Style = s
	return n
}

// WithFocusable marks a container focusable.
func (n *Node) WithFocusable(f bool) *Node {
	n.Focusable = f
	return n
}

// On attaches an event binding to a container node.
func (n *Node) On(kind vnode.EventKind, h vnode.Handler) *Node {
	n.Bindings = append(n.Bindings, vnode.Binding{Kind: kind, Handler: h})
	return n
}
