// Package layout implements the two-pass flexbox-like solver spec §4.3
// describes: a bottom-up intrinsic-size pass followed by a top-down
// resolve-and-position pass over the persistent render tree, grounded on
// the pack's flex.go layout engine (wwsheng009-yao/tui/runtime/layout)
// generalized to Dimension's Fixed/Fraction/Auto/Content sum type, gap,
// wrapping, and vertical-only scrolling.
package layout

import (
	"github.com/tessui/tessui/pkg/render"
	"github.com/tessui/tessui/pkg/style"
	"github.com/tessui/tessui/pkg/vnode"
)

// Layout resolves every node's (x, y, w, h) under a root viewport of
// width x height, starting at the origin (spec §4.3: "Layout is a
// two-pass solver over the render tree rooted at the viewport rectangle
// (0, 0, W, H)").
func Layout(root *render.Node, width, height int) {
	if root == nil {
		return
	}
	measureIntrinsic(root)
	root.X, root.Y = 0, 0
	root.W, root.H = width, height
	resolve(root)
}

func isRow(n *render.Node) bool {
	return n.Style.Direction != nil && *n.Style.Direction == style.DirectionRow
}

func gapOf(n *render.Node) int {
	if n.Style.Gap != nil {
		return *n.Style.Gap
	}
	return 0
}

func paddingOf(n *render.Node) style.Edges {
	if n.Style.Padding != nil {
		return *n.Style.Padding
	}
	return style.Edges{}
}

func mainCross(row bool, w, h int) (main, cross int) {
	if row {
		return w, h
	}
	return h, w
}

func fromMainCross(row bool, main, cross int) (w, h int) {
	if row {
		return main, cross
	}
	return cross, main
}

// ---- Pass 1: intrinsic size (bottom-up) ----

func measureIntrinsic(n *render.Node) {
	switch n.Kind {
	case vnode.KindText:
		lines := WrapText(n.Text, textWrapMode(n.TextStyle), 0)
		w := 0
		for _, l := range lines {
			if l.Width > w {
				w = l.Width
			}
		}
		n.IntrinsicW, n.IntrinsicH = w, len(lines)

	case vnode.KindRichText:
		w := 0
		for _, s := range n.Spans {
			w += lineWidth(s.Text)
		}
		n.IntrinsicW, n.IntrinsicH = w, 1

	case vnode.KindContainer:
		for _, c := range n.Children {
			measureIntrinsic(c)
		}
		row := isRow(n)
		gap := gapOf(n)
		pad := paddingOf(n)

		mainSum, crossMax := 0, 0
		for _, c := range n.Children {
			cm, cc := mainCross(row, c.IntrinsicW, c.IntrinsicH)
			mainSum += cm
			if cc > crossMax {
				crossMax = cc
			}
		}
		if len(n.Children) > 1 {
			mainSum += gap * (len(n.Children) - 1)
		}

		w, h := fromMainCross(row, mainSum, crossMax)
		w += pad.Left + pad.Right
		h += pad.Top + pad.Bottom

		if dim := n.Style.Width; dim != nil && dim.Kind == style.DimFixed {
			w = dim.Cells
		}
		if dim := n.Style.Height; dim != nil && dim.Kind == style.DimFixed {
			h = dim.Cells
		}
		n.IntrinsicW, n.IntrinsicH = w, h
	}
}

func textWrapMode(t style.TextStyle) style.WrapMode {
	if t.Wrap != nil {
		return *t.Wrap
	}
	return style.WrapNone
}

func lineWidth(s string) int {
	lines := WrapText(s, style.WrapNone, 0)
	if len(lines) == 0 {
		return 0
	}
	return lines[0].Width
}

// ---- Pass 2: resolve + position (top-down) ----

// resolve assumes n.X, n.Y, n.W, n.H already hold the box this node was
// allocated, and lays out its children within it.
func resolve(n *render.Node) {
	n.Resolved = n.Style

	switch n.Kind {
	case vnode.KindText:
		n.ContentHeight = n.IntrinsicH
	case vnode.KindRichText:
		n.ContentHeight = 1
	case vnode.KindContainer:
		resolveContainer(n)
	}
}

// resolvedCross resolves a child's cross-axis size against availCross,
// per spec §4.3's Dimension semantics: Fixed is literal, Fraction scales
// availCross (minimum 1), Content fits intrinsic size, Auto takes the
// whole remaining cross space, since there is only one child occupying
// that axis slot. An unset (nil) dimension fits intrinsic size, like
// Content.
func resolvedCross(dim *style.Dimension, intrinsicCross, availCross int) int {
	switch {
	case dim == nil:
		return intrinsicCross
	case dim.Kind == style.DimFixed:
		return dim.Cells
	case dim.Kind == style.DimFraction:
		return max(1, int(dim.Ratio*float64(availCross)))
	case dim.Kind == style.DimContent:
		return intrinsicCross
	default: // DimAuto
		return availCross
	}
}

func crossDimOf(n *render.Node, row bool) *style.Dimension {
	if row {
		return n.Style.Height
	}
	return n.Style.Width
}

func mainDimOf(n *render.Node, row bool) *style.Dimension {
	if row {
		return n.Style.Width
	}
	return n.Style.Height
}

// isAbsolute reports whether n's own style positions it outside the normal
// flow (spec §4.3 item 6: "Absolute children ignore flow").
func isAbsolute(n *render.Node) bool {
	return n.Style.Position != nil && *n.Style.Position == style.PositionAbsolute
}

func offsetsOf(n *render.Node) style.Edges {
	if n.Style.Offsets != nil {
		return *n.Style.Offsets
	}
	return style.Edges{}
}

// resolveAbsolute sizes and positions an absolute child at the parent's
// content origin plus its explicit offsets, against the parent's full
// content box rather than remaining flow space (spec §4.3 item 6: "They
// still resolve size via the same rules against the parent's box").
func resolveAbsolute(n *render.Node, c *render.Node, pad style.Edges, innerW, innerH int) {
	off := offsetsOf(c)
	row := isRow(n)

	innerMain, innerCross := mainCross(row, innerW, innerH)
	intrinsicMain, intrinsicCross := mainCross(row, c.IntrinsicW, c.IntrinsicH)

	mainSize := innerMain
	if dim := mainDimOf(c, row); dim != nil {
		switch dim.Kind {
		case style.DimFixed:
			mainSize = dim.Cells
		case style.DimFraction:
			mainSize = max(1, int(dim.Ratio*float64(innerMain)))
		case style.DimContent:
			mainSize = intrinsicMain
		}
	}
	crossSize := resolvedCross(crossDimOf(c, row), intrinsicCross, innerCross)

	c.W, c.H = fromMainCross(row, mainSize, crossSize)
	c.X = n.X + pad.Left + off.Left
	c.Y = n.Y + pad.Top + off.Top
	resolve(c)
}

func resolveContainer(n *render.Node) {
	row := isRow(n)
	gap := gapOf(n)
	pad := paddingOf(n)

	innerW, innerH := n.W-pad.Left-pad.Right, n.H-pad.Top-pad.Bottom
	if innerW < 0 {
		innerW = 0
	}
	if innerH < 0 {
		innerH = 0
	}
	availMain, availCross := mainCross(row, innerW, innerH)

	var flowChildren []*render.Node
	for _, c := range n.Children {
		if isAbsolute(c) {
			resolveAbsolute(n, c, pad, innerW, innerH)
			continue
		}
		flowChildren = append(flowChildren, c)
	}

	wrap := n.Style.Wrap != nil && *n.Style.Wrap == style.WrapLines
	lines := splitIntoLines(flowChildren, row, availMain, gap, wrap)

	justify := style.JustifyStart
	if n.Style.Justify != nil {
		justify = *n.Style.Justify
	}
	alignItems := style.AlignStart
	if n.Style.AlignItems != nil {
		alignItems = *n.Style.AlignItems
	}

	lineCross := make([]int, len(lines))
	for li, line := range lines {
		lineCross[li] = layoutLine(line, row, availMain, availCross, gap, justify)
	}
	// A single (unwrapped) line claims the container's full cross space,
	// so align-items has room to work with; multiple lines stack using
	// their own natural extents per spec §4.3.
	if len(lines) == 1 && lineCross[0] < availCross {
		lineCross[0] = availCross
	}

	crossCursor := 0
	for li, line := range lines {
		extent := lineCross[li]
		for _, c := range line {
			_, childCross := mainCross(row, c.W, c.H)
			effAlign := alignItems
			if c.Style.AlignSelf != nil && *c.Style.AlignSelf != style.AlignAuto {
				effAlign = *c.Style.AlignSelf
			}
			offset := alignOffset(effAlign, childCross, extent)

			// c.X/c.Y currently hold the line-relative main-axis
			// position written by layoutLine; translate to the parent's
			// content origin plus the cross-axis line position.
			if row {
				c.X = n.X + pad.Left + c.X
				c.Y = n.Y + pad.Top + crossCursor + offset
			} else {
				c.X = n.X + pad.Left + crossCursor + offset
				c.Y = n.Y + pad.Top + c.Y
			}
			resolve(c)
		}
		crossCursor += extent + gap
	}

	n.ContentHeight = contentHeight(n, pad)

	overflow := style.OverflowVisible
	if n.Style.Overflow != nil {
		overflow = *n.Style.Overflow
	}
	n.Scrollable = (overflow == style.OverflowScroll || overflow == style.OverflowAuto) &&
		n.ContentHeight > n.H
	n.ClampScroll()
}

// contentHeight derives a scrollable container's full content height from
// its children's resolved positions, independent of direction: the
// furthest any child's bottom edge extends past n's own top edge.
func contentHeight(n *render.Node, pad style.Edges) int {
	maxBottom := 0
	for _, c := range n.Children {
		if bottom := (c.Y - n.Y) + c.H; bottom > maxBottom {
			maxBottom = bottom
		}
	}
	return maxBottom + pad.Bottom
}

func alignOffset(align style.Align, childCross, lineCross int) int {
	free := lineCross - childCross
	if free <= 0 {
		return 0
	}
	switch align {
	case style.AlignCenter:
		return free / 2
	case style.AlignEnd:
		return free
	default:
		return 0
	}
}

// splitIntoLines partitions children into wrap lines by main-axis
// intrinsic size (spec §4.3: "if wrap = Wrap and the next child would
// exceed the main axis, start a new line"). A line always holds at least
// one child even if that child alone exceeds availMain.
func splitIntoLines(children []*render.Node, row bool, availMain, gap int, wrap bool) [][]*render.Node {
	if !wrap || len(children) == 0 {
		return [][]*render.Node{children}
	}
	var lines [][]*render.Node
	var cur []*render.Node
	used := 0
	for _, c := range children {
		cm, _ := mainCross(row, c.IntrinsicW, c.IntrinsicH)
		want := cm
		if len(cur) > 0 {
			want += gap
		}
		if len(cur) > 0 && used+want > availMain {
			lines = append(lines, cur)
			cur, used = nil, 0
		}
		if len(cur) > 0 {
			used += gap
		}
		cur = append(cur, c)
		used += cm
	}
	if len(cur) > 0 {
		lines = append(lines, cur)
	}
	return lines
}

// layoutLine sizes and positions one wrap line's children along the main
// axis: fixed/fraction/content children are sized first, the remaining
// main-axis space divides equally among Auto children (remainder cells
// to the leading ones), then justify-content distributes any leftover
// space. Each child's main-axis position is written into its X (row) or
// Y (column) field as a line-relative offset; its cross-axis size is
// resolved and stored into W/H. The caller translates position into
// parent-relative coordinates and applies the cross-axis alignment
// offset. Returns the line's cross-axis extent.
func layoutLine(line []*render.Node, row bool, availMain, availCross, gap int, justify style.Justify) int {
	mains := make([]int, len(line))
	crosses := make([]int, len(line))
	autos := make([]bool, len(line))
	fixedTotal, autoCount, crossMax := 0, 0, 0

	for i, c := range line {
		intrinsicMain, intrinsicCross := mainCross(row, c.IntrinsicW, c.IntrinsicH)

		dim := mainDimOf(c, row)
		switch {
		case dim == nil, dim.Kind == style.DimAuto:
			autos[i] = true
			autoCount++
		case dim.Kind == style.DimFixed:
			mains[i] = dim.Cells
			fixedTotal += mains[i]
		case dim.Kind == style.DimFraction:
			mains[i] = max(1, int(dim.Ratio*float64(availMain)))
			fixedTotal += mains[i]
		case dim.Kind == style.DimContent:
			mains[i] = intrinsicMain
			fixedTotal += mains[i]
		}

		crosses[i] = resolvedCross(crossDimOf(c, row), intrinsicCross, availCross)
		if crosses[i] > crossMax {
			crossMax = crosses[i]
		}
	}

	gapTotal := 0
	if len(line) > 1 {
		gapTotal = gap * (len(line) - 1)
	}
	remaining := availMain - fixedTotal - gapTotal
	if remaining < 0 {
		remaining = 0
	}
	if autoCount > 0 {
		share, extra := remaining/autoCount, remaining%autoCount
		assigned := 0
		for i := range line {
			if !autos[i] {
				continue
			}
			mains[i] = share
			if assigned < extra {
				mains[i]++
			}
			assigned++
		}
	}

	usedMain := fixedTotal + gapTotal
	for i := range line {
		if autos[i] {
			usedMain += mains[i]
		}
	}
	free := availMain - usedMain
	if free < 0 {
		free = 0
	}

	cursor, between := justifyOffsets(justify, free, len(line))
	for i, c := range line {
		w, h := fromMainCross(row, mains[i], crosses[i])
		c.W, c.H = w, h
		if row {
			c.X, c.Y = cursor, 0
		} else {
			c.X, c.Y = 0, cursor
		}
		cursor += mains[i]
		if i < len(line)-1 {
			cursor += gap + between
		}
	}

	return crossMax
}

// justifyOffsets returns the starting cursor offset and the extra
// inter-child gap for SpaceBetween/Around/Evenly, given the free
// main-axis space and child count (spec §4.3's six justify-content
// modes).
func justifyOffsets(justify style.Justify, free, n int) (start, between int) {
	if n == 0 {
		return 0, 0
	}
	switch justify {
	case style.JustifyCenter:
		return free / 2, 0
	case style.JustifyEnd:
		return free, 0
	case style.JustifySpaceBetween:
		if n > 1 {
			return 0, free / (n - 1)
		}
		return 0, 0
	case style.JustifySpaceAround:
		half := free / n
		return half / 2, half
	case style.JustifySpaceEvenly:
		share := free / (n + 1)
		return share, share
	default: // JustifyStart
		return 0, 0
	}
}
