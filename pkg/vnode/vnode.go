package vnode

import "github.com/tessui/tessui/pkg/style"

// Kind discriminates the VNode sum type.
type Kind uint8

const (
	KindContainer Kind = iota
	KindText
	KindRichText
)

func (k Kind) String() string {
	switch k {
	case KindContainer:
		return "Container"
	case KindText:
		return "Text"
	case KindRichText:
		return "RichText"
	default:
		return "Unknown"
	}
}

// EventKind names the standard events a node can bind handlers for.
type EventKind string

const (
	EventClick      EventKind = "click"
	EventMouseDown  EventKind = "mousedown"
	EventMouseUp    EventKind = "mouseup"
	EventMouseMove  EventKind = "mousemove"
	EventMouseEnter EventKind = "mouseenter"
	EventMouseLeave EventKind = "mouseleave"
	EventWheelUp    EventKind = "wheelup"
	EventWheelDown  EventKind = "wheeldown"
	EventKeyPress   EventKind = "keypress"
)

// Handler is invoked when a bound event fires. It receives an opaque
// event payload (e.g. a key or mouse event decoded by the terminal
// backend) and is free to ignore it.
type Handler func(payload any)

// Binding pairs an event kind with its handler and whether it should be
// delivered globally (fires for every node bound to it, before targeted
// delivery) per spec §4.6.
type Binding struct {
	Kind     EventKind
	Handler  Handler
	IsGlobal bool
}

// Span is one run of a RichText node: a string sharing one TextStyle.
type Span struct {
	Text  string
	Style style.TextStyle
}

// VNode is the recursive sum type `Container | Text | RichText`.
//
// Only the fields relevant to Kind are meaningful; callers use the
// constructors below rather than building a VNode by hand so irrelevant
// fields stay zeroed.
type VNode struct {
	Kind Kind

	// Container fields.
	Children  []*VNode
	Style     style.Style
	Focusable bool
	FocusStyle *style.Style
	HoverStyle *style.Style
	Bindings  []Binding

	// Text fields.
	Text      string
	TextStyle style.TextStyle

	// RichText fields.
	Spans []Span
}

// Container builds a Container VNode.
func Container(children ...*VNode) *VNode {
	return &VNode{Kind: KindContainer, Children: children}
}

// Text builds a Text VNode.
func Text(s string) *VNode {
	return &VNode{Kind: KindText, Text: s}
}

// RichText builds a RichText VNode from spans.
func RichText(spans ...Span) *VNode {
	return &VNode{Kind: KindRichText, Spans: spans}
}

// WithStyle sets the container style (no-op on non-containers).
func (n *VNode) WithStyle(s style.Style) *VNode {
	n.Style = s
	return n
}

// WithTextStyle sets the text style (no-op on RichText/Container).
func (n *VNode) WithTextStyle(s style.TextStyle) *VNode {
	n.TextStyle = s
	return n
}

// WithFocusable marks a container focusable.
func (n *VNode) WithFocusable(focusable bool) *VNode {
	n.Focusable = focusable
	return n
}

// On attaches an event binding to a container node.
func (n *VNode) On(kind EventKind, h Handler) *VNode {
	n.Bindings = append(n.Bindings, Binding{Kind: kind, Handler: h})
	return n
}

// OnGlobal attaches a global event binding (fires before targeted delivery).
func (n *VNode) OnGlobal(kind EventKind, h Handler) *VNode {
	n.Bindings = append(n.Bindings, Binding{Kind: kind, Handler: h, IsGlobal: true})
	return n
}

// SameKind reports whether two VNodes are structurally comparable without a
// Replace patch: matching Kind is the prerequisite the diff checks first.
func (n *VNode) SameKind(o *VNode) bool {
	if n == nil || o == nil {
		return n == o
	}
	return n.Kind == o.Kind
}
