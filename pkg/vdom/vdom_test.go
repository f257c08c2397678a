package vdom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tessui/tessui/pkg/render"
	"github.com/tessui/tessui/pkg/runtime"
	"github.com/tessui/tessui/pkg/vnode"
)

// TestDiffCounterEmitsSingleUpdateText implements spec §8's Counter
// scenario: a label text changing from "0" to "1" diffs to exactly one
// UpdateText patch, nothing else.
func TestDiffCounterEmitsSingleUpdateText(t *testing.T) {
	old := render.FromVNode(vnode.Container(vnode.Text("0")))
	newTree := vnode.Container(vnode.Text("1"))

	patches := Diff(old, newTree)

	require.Len(t, patches, 1)
	assert.Equal(t, PatchUpdateText, patches[0].Kind)
	assert.Equal(t, "1", patches[0].Text)
	assert.Same(t, old.Children[0], patches[0].Target)
}

func TestDiffMinimalityNoChangeYieldsNoPatches(t *testing.T) {
	old := render.FromVNode(vnode.Container(vnode.Text("same")))
	newTree := vnode.Container(vnode.Text("same"))

	patches := Diff(old, newTree)

	assert.Empty(t, patches)
}

// TestIdempotenceAfterApply implements spec §8's idempotence property:
// applying a patch set and re-diffing against the same target yields no
// further patches.
func TestIdempotenceAfterApply(t *testing.T) {
	old := render.FromVNode(vnode.Container(vnode.Text("0")))
	newTree := vnode.Container(vnode.Text("1"))

	patches := Diff(old, newTree)
	require.NotEmpty(t, patches)

	patched := Apply(old, patches)
	again := Diff(patched, newTree)

	assert.Empty(t, again)
}

func TestDiffKindMismatchReplaces(t *testing.T) {
	old := render.FromVNode(vnode.Text("hi"))
	newTree := vnode.Container()

	patches := Diff(old, newTree)

	require.Len(t, patches, 1)
	assert.Equal(t, PatchReplace, patches[0].Kind)
	assert.Same(t, old, patches[0].Target)
}

func TestDiffChildrenAddAndRemove(t *testing.T) {
	old := render.FromVNode(vnode.Container(vnode.Text("a"), vnode.Text("b"), vnode.Text("c")))
	newTree := vnode.Container(vnode.Text("a"))

	patches := Diff(old, newTree)

	// Two RemoveChild patches, descending index order (2 then 1).
	require.Len(t, patches, 2)
	assert.Equal(t, PatchRemoveChild, patches[0].Kind)
	assert.Equal(t, 2, patches[0].Index)
	assert.Equal(t, PatchRemoveChild, patches[1].Kind)
	assert.Equal(t, 1, patches[1].Index)

	patched := Apply(old, patches)
	require.Len(t, patched.Children, 1)
	assert.Equal(t, "a", patched.Children[0].Text)
}

func TestDiffChildrenGrowAppends(t *testing.T) {
	old := render.FromVNode(vnode.Container(vnode.Text("a")))
	newTree := vnode.Container(vnode.Text("a"), vnode.Text("b"))

	patches := Diff(old, newTree)

	require.Len(t, patches, 1)
	assert.Equal(t, PatchAddChild, patches[0].Kind)
	assert.Equal(t, 1, patches[0].Index)

	patched := Apply(old, patches)
	require.Len(t, patched.Children, 2)
	assert.Equal(t, "b", patched.Children[1].Text)
}

func TestApplyRootReplace(t *testing.T) {
	old := render.FromVNode(vnode.Text("hi"))
	newTree := vnode.Container(vnode.Text("child"))

	patches := Diff(old, newTree)
	require.Len(t, patches, 1)
	require.Nil(t, patches[0].Parent)

	newRoot := Apply(old, patches)
	require.NotSame(t, old, newRoot)
	assert.Equal(t, vnode.KindContainer, newRoot.Kind)
}

type counterState struct{ n int }

func counterComponent() runtime.Component {
	return runtime.ComponentFunc{
		UpdateFn: func(ctx *runtime.Context, msg any, topic *string) runtime.Action {
			s := runtime.GetState[counterState](ctx)
			if msg == "inc" {
				s.n++
			}
			return runtime.Update(s)
		},
		ViewFn: func(ctx *runtime.Context) *runtime.Node {
			s := runtime.GetState[counterState](ctx)
			return runtime.ContainerNode(runtime.TextNode(itoa(s.n)))
		},
	}
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	digits := ""
	neg := n < 0
	if neg {
		n = -n
	}
	for n > 0 {
		digits = string(rune('0'+n%10)) + digits
		n /= 10
	}
	if neg {
		return "-" + digits
	}
	return digits
}

// TestExpandAndDiffCounterFrame exercises the full expand -> diff loop
// across two frames: a direct "inc" message should change only the
// label's text.
func TestExpandAndDiffCounterFrame(t *testing.T) {
	rt := runtime.NewRuntime()
	comp := counterComponent()

	v1, res1 := Expand(rt, comp)
	require.False(t, res1.Exit)
	tree := render.FromVNode(v1)
	rt.ReconcileEffects(res1.Live, res1.NewEffects)

	rt.EnqueueDirect(runtime.RootIdentity, "inc")

	v2, res2 := Expand(rt, comp)
	patches := Diff(tree, v2)

	require.Len(t, patches, 1)
	assert.Equal(t, PatchUpdateText, patches[0].Kind)
	assert.Equal(t, "1", patches[0].Text)

	tree = Apply(tree, patches)
	assert.Equal(t, "1", tree.Children[0].Text)
	rt.ReconcileEffects(res2.Live, res2.NewEffects)
}
