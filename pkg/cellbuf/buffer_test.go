package cellbuf

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tessui/tessui/pkg/vnode"
)

func TestDiffEmptyWhenBuffersMatch(t *testing.T) {
	b := New(4, 2)
	assert.Empty(t, b.Diff())
}

func TestDiffReportsChangedCellsOnly(t *testing.T) {
	b := New(4, 2)
	b.Set(1, 0, vnode.Cell{Char: 'x'})
	b.Set(3, 1, vnode.Cell{Char: 'y'})

	updates := b.Diff()

	require.Len(t, updates, 2)
	assert.Equal(t, Update{X: 1, Y: 0, Cell: vnode.Cell{Char: 'x'}}, updates[0])
	assert.Equal(t, Update{X: 3, Y: 1, Cell: vnode.Cell{Char: 'y'}}, updates[1])
}

func TestSwapThenDiffIsEmpty(t *testing.T) {
	b := New(4, 2)
	b.Set(0, 0, vnode.Cell{Char: 'x'})
	require.Len(t, b.Diff(), 1)

	b.Swap()
	assert.Empty(t, b.Diff())
}

func TestSetClipsOutOfBoundsWrites(t *testing.T) {
	b := New(2, 2)
	b.Set(5, 5, vnode.Cell{Char: 'z'}) // silently clipped
	assert.Empty(t, b.Diff())
}

func TestWriteDiffGroupsConsecutiveRunIntoOneCursorMove(t *testing.T) {
	updates := []Update{
		{X: 0, Y: 0, Cell: vnode.Cell{Char: 'a'}},
		{X: 1, Y: 0, Cell: vnode.Cell{Char: 'b'}},
		{X: 2, Y: 0, Cell: vnode.Cell{Char: 'c'}},
	}
	var sb strings.Builder
	WriteDiff(&sb, updates)

	out := sb.String()
	assert.Equal(t, 1, strings.Count(out, "\x1b[1;1H"))
	assert.Contains(t, out, "abc")
}
