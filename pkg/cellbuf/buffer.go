// Package cellbuf implements the double-buffered terminal cell grid: a
// front/back pair of vnode.Cell grids, a cell-by-cell diff, and a
// run-grouped ANSI writer that emits the minimal byte sequence needed to
// transform one frame's grid into the next (spec §4.5, §8's "Buffer
// correctness" property).
package cellbuf

import "github.com/tessui/tessui/pkg/vnode"

// Update is one cell that differs between the front and back buffers.
type Update struct {
	X, Y int
	Cell vnode.Cell
}

// Buffer holds the currently-displayed grid (Front) and the grid the
// current frame is drawing into (Back). Diff compares them; Swap commits
// Back as the new Front.
type Buffer struct {
	W, H   int
	Front  []vnode.Cell
	Back   []vnode.Cell
}

// New creates a Buffer of the given size, both grids blank.
func New(w, h int) *Buffer {
	b := &Buffer{}
	b.Resize(w, h)
	return b
}

// Resize changes the buffer's dimensions, discarding old content (a
// resize always triggers a full relayout and redraw, per spec §4.6).
func (b *Buffer) Resize(w, h int) {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	b.W, b.H = w, h
	n := w * h
	b.Front = make([]vnode.Cell, n)
	b.Back = make([]vnode.Cell, n)
	for i := range b.Front {
		b.Front[i] = vnode.Blank()
		b.Back[i] = vnode.Blank()
	}
}

// Clear resets the back buffer to all-blank, called at the start of each
// frame's draw.
func (b *Buffer) Clear() {
	for i := range b.Back {
		b.Back[i] = vnode.Blank()
	}
}

func (b *Buffer) index(x, y int) (int, bool) {
	if x < 0 || y < 0 || x >= b.W || y >= b.H {
		return 0, false
	}
	return y*b.W + x, true
}

// Set writes a cell into the back buffer at (x, y); out-of-bounds writes
// are silently clipped.
func (b *Buffer) Set(x, y int, c vnode.Cell) {
	if i, ok := b.index(x, y); ok {
		b.Back[i] = c
	}
}

// At returns the back buffer's cell at (x, y).
func (b *Buffer) At(x, y int) vnode.Cell {
	if i, ok := b.index(x, y); ok {
		return b.Back[i]
	}
	return vnode.Blank()
}

// Diff returns every cell position where Back differs from Front, in
// row-major (top-to-bottom, left-to-right) order, so a writer can emit
// them with monotonically increasing cursor moves.
func (b *Buffer) Diff() []Update {
	var updates []Update
	for y := 0; y < b.H; y++ {
		for x := 0; x < b.W; x++ {
			i := y*b.W + x
			if !b.Front[i].Equal(b.Back[i]) {
				updates = append(updates, Update{X: x, Y: y, Cell: b.Back[i]})
			}
		}
	}
	return updates
}

// FullPaint returns every cell of Back as an Update regardless of what
// Front holds, for when diffing is disabled and each frame is meant to
// be a full repaint.
func (b *Buffer) FullPaint() []Update {
	updates := make([]Update, 0, len(b.Back))
	for y := 0; y < b.H; y++ {
		for x := 0; x < b.W; x++ {
			updates = append(updates, Update{X: x, Y: y, Cell: b.Back[y*b.W+x]})
		}
	}
	return updates
}

// Swap commits the back buffer as the new front buffer, ready for the
// next frame's Clear+draw+Diff cycle.
func (b *Buffer) Swap() {
	b.Front, b.Back = b.Back, b.Front
	copy(b.Back, b.Front)
}
