package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tessui/tessui/pkg/cellbuf"
	"github.com/tessui/tessui/pkg/style"
	"github.com/tessui/tessui/pkg/vnode"
)

func TestDrawFillsBackground(t *testing.T) {
	n := NewNode(vnode.KindContainer)
	n.W, n.H = 3, 2
	bg := style.RGB(10, 20, 30)
	n.Style.Background = &bg

	buf := cellbuf.New(3, 2)
	Draw(buf, n)

	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			c := buf.At(x, y)
			assert.Equal(t, ' ', c.Char)
			require.NotNil(t, c.Bg)
			assert.True(t, c.Bg.Equal(bg))
		}
	}
}

func TestDrawBorderDrawsAllFourEdgesAndCorners(t *testing.T) {
	n := NewNode(vnode.KindContainer)
	n.W, n.H = 4, 3
	n.Style.Border = &style.Border{Enabled: true, Kind: style.BorderSingle, Edges: style.BorderAll}

	buf := cellbuf.New(4, 3)
	Draw(buf, n)

	assert.Equal(t, '┌', buf.At(0, 0).Char)
	assert.Equal(t, '┐', buf.At(3, 0).Char)
	assert.Equal(t, '└', buf.At(0, 2).Char)
	assert.Equal(t, '┘', buf.At(3, 2).Char)
	assert.Equal(t, '─', buf.At(1, 0).Char)
	assert.Equal(t, '│', buf.At(0, 1).Char)
}

func TestDrawTextCentersWithinWidth(t *testing.T) {
	n := NewNode(vnode.KindText)
	n.W, n.H = 5, 1
	n.Text = "hi"
	align := style.AlignTextCenter
	n.TextStyle.Align = &align

	buf := cellbuf.New(5, 1)
	Draw(buf, n)

	// free = 5-2 = 3, left pad = 1
	assert.Equal(t, ' ', buf.At(0, 0).Char)
	assert.Equal(t, 'h', buf.At(1, 0).Char)
	assert.Equal(t, 'i', buf.At(2, 0).Char)
}

// TestDrawTextInheritsAncestorBackground implements spec §4.4 step 5: a
// text node with no background of its own picks up the nearest ancestor's
// resolved background instead of rendering with the terminal default.
func TestDrawTextInheritsAncestorBackground(t *testing.T) {
	parent := NewNode(vnode.KindContainer)
	parent.W, parent.H = 4, 1
	bg := style.RGB(5, 5, 5)
	parent.Style.Background = &bg

	child := NewNode(vnode.KindText)
	child.Text = "hi"
	child.X, child.Y = 0, 0
	child.W, child.H = 4, 1
	parent.Children = []*Node{child}
	child.Parent = parent

	buf := cellbuf.New(4, 1)
	Draw(buf, parent)

	cell := buf.At(0, 0)
	require.NotNil(t, cell.Bg)
	assert.True(t, cell.Bg.Equal(bg))
}

// TestDrawTextOwnBackgroundWinsOverInherited confirms a text node's own
// background is never overridden by an ancestor's.
func TestDrawTextOwnBackgroundWinsOverInherited(t *testing.T) {
	parent := NewNode(vnode.KindContainer)
	parent.W, parent.H = 4, 1
	parentBg := style.RGB(5, 5, 5)
	parent.Style.Background = &parentBg

	child := NewNode(vnode.KindText)
	child.Text = "hi"
	child.X, child.Y = 0, 0
	child.W, child.H = 4, 1
	ownBg := style.RGB(9, 9, 9)
	child.TextStyle.Background = &ownBg
	parent.Children = []*Node{child}
	child.Parent = parent

	buf := cellbuf.New(4, 1)
	Draw(buf, parent)

	cell := buf.At(0, 0)
	require.NotNil(t, cell.Bg)
	assert.True(t, cell.Bg.Equal(ownBg))
}

func TestDrawRichTextAdvancesCursorAcrossSpans(t *testing.T) {
	n := NewNode(vnode.KindRichText)
	n.W, n.H = 10, 1
	n.Spans = []vnode.Span{
		{Text: "ab"},
		{Text: "cd"},
	}

	buf := cellbuf.New(10, 1)
	Draw(buf, n)

	assert.Equal(t, 'a', buf.At(0, 0).Char)
	assert.Equal(t, 'b', buf.At(1, 0).Char)
	assert.Equal(t, 'c', buf.At(2, 0).Char)
	assert.Equal(t, 'd', buf.At(3, 0).Char)
}

func TestDrawClipsScrolledChildOutsideContainer(t *testing.T) {
	parent := NewNode(vnode.KindContainer)
	parent.W, parent.H = 5, 2
	parent.Scrollable = true
	parent.ScrollY = 3
	parent.ContentHeight = 10

	child := NewNode(vnode.KindText)
	child.Text = "x"
	child.X, child.Y = 0, 0
	child.W, child.H = 1, 1
	parent.Children = []*Node{child}
	child.Parent = parent

	buf := cellbuf.New(5, 2)
	Draw(buf, parent)

	// child's screen row is 0 - 3 = -3, entirely above the visible area.
	for y := 0; y < 2; y++ {
		assert.Equal(t, ' ', buf.At(0, y).Char)
	}
}

func TestDrawScrollbarThumbProportionalToVisibleFraction(t *testing.T) {
	n := NewNode(vnode.KindContainer)
	n.W, n.H = 3, 4
	n.Scrollable = true
	n.ContentHeight = 8
	n.ScrollY = 0
	show := true
	n.Style.ShowScrollbar = &show

	buf := cellbuf.New(3, 4)
	Draw(buf, n)

	col := n.X + n.W - 1
	thumbCells := 0
	for y := 0; y < n.H; y++ {
		if buf.At(col, y).Char == '█' {
			thumbCells++
		}
	}
	assert.Greater(t, thumbCells, 0)
	assert.Less(t, thumbCells, n.H)
}

func TestDrawFocusHoverStylePrecedence(t *testing.T) {
	n := NewNode(vnode.KindContainer)
	n.W, n.H = 2, 2
	n.Focused = true
	n.Hovered = true

	focusBg := style.RGB(1, 1, 1)
	hoverBg := style.RGB(2, 2, 2)
	n.FocusStyle = &style.Style{Background: &focusBg}
	n.HoverStyle = &style.Style{Background: &hoverBg}

	buf := cellbuf.New(2, 2)
	Draw(buf, n)

	// hover applied last, so it wins over focus.
	require.NotNil(t, n.Resolved.Background)
	assert.True(t, n.Resolved.Background.Equal(hoverBg))
}

func TestDrawNilRootIsNoOp(t *testing.T) {
	buf := cellbuf.New(2, 2)
	Draw(buf, nil)
	assert.Empty(t, buf.Diff())
}
