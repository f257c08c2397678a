package devtools

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tessui/tessui/pkg/render"
	"github.com/tessui/tessui/pkg/runtime"
	"github.com/tessui/tessui/pkg/vnode"
)

func TestTakeNilRootYieldsNilTree(t *testing.T) {
	rt := runtime.NewRuntime()
	snap := Take(nil, rt)
	assert.Nil(t, snap.Tree)
}

func TestTakeSnapshotsTreeShape(t *testing.T) {
	root := render.NewNode(vnode.KindContainer)
	root.W, root.H = 10, 4
	child := render.NewNode(vnode.KindText)
	child.Text = "hi"
	root.Children = []*render.Node{child}

	rt := runtime.NewRuntime()
	snap := Take(root, rt)

	require.NotNil(t, snap.Tree)
	assert.Equal(t, "Container", snap.Tree.Kind)
	require.Len(t, snap.Tree.Children, 1)
	assert.Equal(t, "hi", snap.Tree.Children[0].Text)
}
