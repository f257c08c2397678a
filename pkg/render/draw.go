package render

import (
	"github.com/tessui/tessui/pkg/cellbuf"
	"github.com/tessui/tessui/pkg/layout"
	"github.com/tessui/tessui/pkg/style"
	"github.com/tessui/tessui/pkg/vnode"
)

// clip is a screen-space rectangle; cells outside it are never written.
type clip struct{ X, Y, W, H int }

func (c clip) contains(x, y int) bool {
	return x >= c.X && x < c.X+c.W && y >= c.Y && y < c.Y+c.H
}

func intersect(a, b clip) clip {
	x0, y0 := max(a.X, b.X), max(a.Y, b.Y)
	x1, y1 := min(a.X+a.W, b.X+b.W), min(a.Y+a.H, b.Y+b.H)
	if x1 < x0 {
		x1 = x0
	}
	if y1 < y0 {
		y1 = y0
	}
	return clip{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Draw walks the render tree in the order spec §4.4 describes, writing
// cells into buf's back buffer. It is the sole place focus/hover style
// overlay resolution, border/background/text glyph layout, clipping, and
// scrollbar overlay happen.
func Draw(buf *cellbuf.Buffer, root *Node) {
	buf.Clear()
	if root == nil {
		return
	}
	draw(buf, root, clip{X: 0, Y: 0, W: buf.W, H: buf.H}, 0, style.TextStyle{}, nil)
}

// draw walks one node, threading the text style and background resolved so
// far down from its ancestors (spec §4.4's closing sentence: "Text style on
// a node inherits from the nearest ancestor text style for unset fields;
// background inherits from the nearest ancestor with a background").
func draw(buf *cellbuf.Buffer, n *Node, parentClip clip, dy int, inheritedTS style.TextStyle, inheritedBg *style.Color) {
	screenY := n.Y - dy
	box := clip{X: n.X, Y: screenY, W: n.W, H: n.H}
	c := intersect(parentClip, box)
	if c.W <= 0 || c.H <= 0 {
		// Still resolve the focus/hover style overlay so Resolved stays
		// current even while the node is fully clipped.
		n.Resolved = resolvedStyle(n)
		return
	}

	resolved := resolvedStyle(n)
	n.Resolved = resolved

	switch n.Kind {
	case vnode.KindText:
		drawText(buf, n, screenY, c, inheritedTS, inheritedBg)
	case vnode.KindRichText:
		drawRichText(buf, n, screenY, c, inheritedTS, inheritedBg)
	case vnode.KindContainer:
		drawContainer(buf, n, screenY, c, dy, resolved, inheritedTS, inheritedBg)
	}
}

func resolvedStyle(n *Node) style.Style {
	s := n.Style
	if n.Focused && n.FocusStyle != nil {
		s = s.Merge(*n.FocusStyle)
	}
	if n.Hovered && n.HoverStyle != nil {
		s = s.Merge(*n.HoverStyle)
	}
	return s
}

func drawContainer(buf *cellbuf.Buffer, n *Node, screenY int, c clip, dy int, resolved style.Style, inheritedTS style.TextStyle, inheritedBg *style.Color) {
	fillBackground(buf, n, screenY, c, resolved)
	contentClip := drawBorder(buf, n, screenY, c, resolved)

	childBg := inheritedBg
	if resolved.Background != nil {
		childBg = resolved.Background
	}

	pad := style.Edges{}
	if resolved.Padding != nil {
		pad = *resolved.Padding
	}
	contentClip = intersect(contentClip, clip{
		X: n.X + pad.Left, Y: screenY + pad.Top,
		W: maxInt(0, n.W-pad.Left-pad.Right), H: maxInt(0, n.H-pad.Top-pad.Bottom),
	})

	showScrollbar := n.Scrollable && resolved.ShowScrollbar != nil && *resolved.ShowScrollbar
	if showScrollbar {
		contentClip.W = maxInt(0, contentClip.W-1)
	}

	childDy := dy
	if n.Scrollable {
		childDy = dy + n.ScrollY
	}
	for _, child := range drawOrder(n) {
		draw(buf, child, contentClip, childDy, inheritedTS, childBg)
	}

	if showScrollbar {
		drawScrollbar(buf, n, screenY, c)
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func fillBackground(buf *cellbuf.Buffer, n *Node, screenY int, c clip, resolved style.Style) {
	if resolved.Background == nil {
		return
	}
	blank := vnode.Cell{Char: ' ', Bg: resolved.Background}
	for y := n.Y; y < n.Y+n.H; y++ {
		sy := y - (n.Y - screenY)
		for x := n.X; x < n.X+n.W; x++ {
			if c.contains(x, sy) {
				buf.Set(x, sy, blank)
			}
		}
	}
}

// drawBorder draws the border (if enabled) and returns the clip rect for
// the content area inside it (shrunk by one cell per drawn edge).
func drawBorder(buf *cellbuf.Buffer, n *Node, screenY int, c clip, resolved style.Style) clip {
	inner := clip{X: n.X, Y: screenY, W: n.W, H: n.H}
	if resolved.Border == nil || !resolved.Border.Enabled {
		return inner
	}
	b := *resolved.Border
	top, bottom, left, right, topLeft, topRight, bottomLeft, bottomRight := b.Glyphs()

	set := func(x, y int, r rune) {
		if c.contains(x, y) {
			buf.Set(x, y, vnode.Cell{Char: r, Fg: colorOf(b.Color)})
		}
	}

	x0, y0 := n.X, screenY
	x1, y1 := n.X+n.W-1, screenY+n.H-1

	if b.Edges.HasEdge(style.BorderTop) {
		for x := x0; x <= x1; x++ {
			set(x, y0, top)
		}
	}
	if b.Edges.HasEdge(style.BorderBottom) {
		for x := x0; x <= x1; x++ {
			set(x, y1, bottom)
		}
	}
	if b.Edges.HasEdge(style.BorderLeft) {
		for y := y0; y <= y1; y++ {
			set(x0, y, left)
		}
	}
	if b.Edges.HasEdge(style.BorderRight) {
		for y := y0; y <= y1; y++ {
			set(x1, y, right)
		}
	}
	if b.Edges.HasEdge(style.BorderTop) && b.Edges.HasEdge(style.BorderLeft) {
		set(x0, y0, topLeft)
	}
	if b.Edges.HasEdge(style.BorderTop) && b.Edges.HasEdge(style.BorderRight) {
		set(x1, y0, topRight)
	}
	if b.Edges.HasEdge(style.BorderBottom) && b.Edges.HasEdge(style.BorderLeft) {
		set(x0, y1, bottomLeft)
	}
	if b.Edges.HasEdge(style.BorderBottom) && b.Edges.HasEdge(style.BorderRight) {
		set(x1, y1, bottomRight)
	}

	dTop, dBottom, dLeft, dRight := 0, 0, 0, 0
	if b.Edges.HasEdge(style.BorderTop) {
		dTop = 1
	}
	if b.Edges.HasEdge(style.BorderBottom) {
		dBottom = 1
	}
	if b.Edges.HasEdge(style.BorderLeft) {
		dLeft = 1
	}
	if b.Edges.HasEdge(style.BorderRight) {
		dRight = 1
	}
	return clip{
		X: n.X + dLeft, Y: screenY + dTop,
		W: maxInt(0, n.W-dLeft-dRight), H: maxInt(0, n.H-dTop-dBottom),
	}
}

func colorOf(c style.Color) *style.Color {
	cc := c
	return &cc
}

func drawScrollbar(buf *cellbuf.Buffer, n *Node, screenY int, c clip) {
	col := n.X + n.W - 1
	trackHeight := n.H
	if trackHeight <= 0 {
		return
	}
	thumbHeight := maxInt(1, (n.H*n.H)/maxInt(1, n.ContentHeight))
	if thumbHeight > trackHeight {
		thumbHeight = trackHeight
	}
	maxScroll := n.MaxScrollY()
	thumbTop := 0
	if maxScroll > 0 {
		thumbTop = ((trackHeight - thumbHeight) * n.ScrollY) / maxScroll
	}
	for y := 0; y < trackHeight; y++ {
		sy := screenY + y
		if !c.contains(col, sy) {
			continue
		}
		ch := '│'
		if y >= thumbTop && y < thumbTop+thumbHeight {
			ch = '█'
		}
		buf.Set(col, sy, vnode.Cell{Char: ch})
	}
}

func drawText(buf *cellbuf.Buffer, n *Node, screenY int, c clip, inheritedTS style.TextStyle, inheritedBg *style.Color) {
	ts := inheritedTS.Merge(n.TextStyle)
	if ts.Background == nil {
		ts.Background = inheritedBg
	}

	mode := style.WrapNone
	if ts.Wrap != nil {
		mode = *ts.Wrap
	}
	align := style.AlignLeft
	if ts.Align != nil {
		align = *ts.Align
	}
	lines := layout.WrapText(n.Text, mode, n.W)

	for row, line := range lines {
		y := n.Y + row
		sy := y - (n.Y - screenY)
		if !rowVisible(c, sy) {
			continue
		}
		padLeft := layout.AlignLine(align, line.Width, n.W)
		drawGlyphLine(buf, n.X, sy, c, padLeft, line.Text, ts)
	}
}

func drawRichText(buf *cellbuf.Buffer, n *Node, screenY int, c clip, inheritedTS style.TextStyle, inheritedBg *style.Color) {
	if !rowVisible(c, screenY) {
		return
	}
	x := n.X
	for _, span := range n.Spans {
		ts := inheritedTS.Merge(span.Style)
		if ts.Background == nil {
			ts.Background = inheritedBg
		}
		x = drawGlyphLine(buf, x, screenY, c, 0, span.Text, ts)
	}
}

func rowVisible(c clip, y int) bool {
	return y >= c.Y && y < c.Y+c.H
}

// drawGlyphLine writes s starting at (x, y), padLeft blank cells first,
// clipped to c, and returns the x position just past the last written
// glyph (for RichText's span-by-span cursor).
func drawGlyphLine(buf *cellbuf.Buffer, x, y int, c clip, padLeft int, s string, ts style.TextStyle) int {
	cursor := x
	for i := 0; i < padLeft; i++ {
		if c.contains(cursor, y) {
			buf.Set(cursor, y, vnode.Cell{Char: ' ', Bg: ts.Background})
		}
		cursor++
	}
	for _, r := range s {
		if c.contains(cursor, y) {
			buf.Set(cursor, y, vnode.Cell{Char: r, Fg: ts.Foreground, Bg: ts.Background, Text: ts})
		}
		cursor++
	}
	return cursor
}
