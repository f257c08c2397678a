// Package devtools is the trimmed introspection surface kept from the
// teacher's devtools package (pkg/bubbly/devtools, aliased at
// devtools/devtools.go): a single-shot dump of the render tree and the
// live component identities (not their state values), with the teacher's
// MCP transport and event-replay
// machinery dropped (see DESIGN.md) since they serve a debugging
// side-channel this spec never asked for.
package devtools

import (
	"github.com/tessui/tessui/pkg/render"
	"github.com/tessui/tessui/pkg/runtime"
)

// NodeSnapshot is one render node's inspectable state.
type NodeSnapshot struct {
	Kind          string         `json:"kind"`
	Text          string         `json:"text,omitempty"`
	X             int            `json:"x"`
	Y             int            `json:"y"`
	W             int            `json:"w"`
	H             int            `json:"h"`
	Focused       bool           `json:"focused"`
	Hovered       bool           `json:"hovered"`
	Scrollable    bool           `json:"scrollable,omitempty"`
	ScrollY       int            `json:"scroll_y,omitempty"`
	ContentHeight int            `json:"content_height,omitempty"`
	Children      []NodeSnapshot `json:"children,omitempty"`
}

// Snapshot is a single frame's introspectable state: the render tree plus
// the set of live component identities (state keys themselves are
// opaque `any` values owned by pkg/runtime, so only identity and
// liveness are surfaced here — dumping arbitrary state values risks
// leaking sensitive application data into a debug log).
type Snapshot struct {
	Tree *NodeSnapshot `json:"tree,omitempty"`
	Live []string      `json:"live"`
}

// Take captures a Snapshot of root (nil if nothing has been mounted yet)
// and rt's currently live identity set.
func Take(root *render.Node, rt *runtime.Runtime) Snapshot {
	snap := Snapshot{}
	if root != nil {
		t := snapshotNode(root)
		snap.Tree = &t
	}
	for id := range rt.LiveIdentities() {
		snap.Live = append(snap.Live, id.String())
	}
	return snap
}

func snapshotNode(n *render.Node) NodeSnapshot {
	s := NodeSnapshot{
		Kind:          n.Kind.String(),
		Text:          n.Text,
		X:             n.X,
		Y:             n.Y,
		W:             n.W,
		H:             n.H,
		Focused:       n.Focused,
		Hovered:       n.Hovered,
		Scrollable:    n.Scrollable,
		ScrollY:       n.ScrollY,
		ContentHeight: n.ContentHeight,
	}
	for _, c := range n.Children {
		s.Children = append(s.Children, snapshotNode(c))
	}
	return s
}
