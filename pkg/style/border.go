package style

import "github.com/charmbracelet/lipgloss"

// borderSet is the glyph table for one border kind: the four edges plus
// four corners, in the same shape lipgloss's own border tables use
// (Border.Top/Right/Bottom/Left/TopLeft/...).
type borderSet struct {
	Top, Bottom, Left, Right                   rune
	TopLeft, TopRight, BottomLeft, BottomRight rune
}

// firstRune takes the leading rune of one of lipgloss's border-edge
// strings (they're strings, not runes, so a border edge could in
// principle be a multi-byte sequence; our cell grid is one rune per
// cell, so only the first is kept).
func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return ' '
}

// fromLipgloss converts a lipgloss.Border into our rune-based borderSet,
// reusing lipgloss's own glyph tables instead of hand-rolling a second
// set of box-drawing constants.
func fromLipgloss(b lipgloss.Border) borderSet {
	return borderSet{
		Top: firstRune(b.Top), Bottom: firstRune(b.Bottom),
		Left: firstRune(b.Left), Right: firstRune(b.Right),
		TopLeft: firstRune(b.TopLeft), TopRight: firstRune(b.TopRight),
		BottomLeft: firstRune(b.BottomLeft), BottomRight: firstRune(b.BottomRight),
	}
}

var borderSets = map[BorderStyleKind]borderSet{
	BorderSingle:  fromLipgloss(lipgloss.NormalBorder()),
	BorderDouble:  fromLipgloss(lipgloss.DoubleBorder()),
	BorderRounded: fromLipgloss(lipgloss.RoundedBorder()),
	BorderThick:   fromLipgloss(lipgloss.ThickBorder()),
}

// Glyphs returns the rune table for the border's Kind. Unknown kinds fall
// back to BorderSingle.
func (b Border) Glyphs() (top, bottom, left, right, topLeft, topRight, bottomLeft, bottomRight rune) {
	set, ok := borderSets[b.Kind]
	if !ok {
		set = borderSets[BorderSingle]
	}
	return set.Top, set.Bottom, set.Left, set.Right, set.TopLeft, set.TopRight, set.BottomLeft, set.BottomRight
}

// HasEdge reports whether the given edge bit is set.
func (e BorderEdges) HasEdge(edge BorderEdges) bool {
	return e&edge != 0
}
