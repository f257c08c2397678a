package layout

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
	"golang.org/x/text/width"

	"github.com/tessui/tessui/pkg/style"
)

// Line is one wrapped line of text: its display cells plus its rendered
// width, used both to compute intrinsic size and to pad for horizontal
// alignment at draw time.
type Line struct {
	Text  string
	Width int
}

// WrapText splits s into lines no wider than maxWidth cells, honoring the
// four wrap modes spec §4.3 names. maxWidth <= 0 means unbounded (used for
// intrinsic measurement).
func WrapText(s string, mode style.WrapMode, maxWidth int) []Line {
	// Fold fullwidth/halfwidth compatibility variants (e.g. fullwidth
	// Latin letters, halfwidth katakana) to their canonical form before
	// measuring, so a pasted fullwidth "Ａ" occupies one cell like the
	// plain "A" it's equivalent to. Ordinary CJK ideographs (East Asian
	// Wide, not a compatibility variant) are untouched.
	s = width.Fold.String(s)
	if maxWidth <= 0 {
		return []Line{{Text: s, Width: runewidth.StringWidth(s)}}
	}
	switch mode {
	case style.WrapCharacter:
		return wrapCharacter(s, maxWidth)
	case style.WrapWord:
		return wrapWord(s, maxWidth, false)
	case style.WrapWordBreak:
		return wrapWord(s, maxWidth, true)
	default: // style.WrapNone
		return []Line{clip(s, maxWidth)}
	}
}

func clip(s string, maxWidth int) Line {
	if runewidth.StringWidth(s) <= maxWidth {
		return Line{Text: s, Width: runewidth.StringWidth(s)}
	}
	var b strings.Builder
	w := 0
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		cluster := gr.Str()
		cw := runewidth.StringWidth(cluster)
		if w+cw > maxWidth {
			break
		}
		b.WriteString(cluster)
		w += cw
	}
	return Line{Text: b.String(), Width: w}
}

// wrapCharacter breaks at grapheme-cluster boundaries wherever the line
// would otherwise exceed maxWidth.
func wrapCharacter(s string, maxWidth int) []Line {
	var lines []Line
	var b strings.Builder
	w := 0
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		cluster := gr.Str()
		cw := runewidth.StringWidth(cluster)
		if w > 0 && w+cw > maxWidth {
			lines = append(lines, Line{Text: b.String(), Width: w})
			b.Reset()
			w = 0
		}
		b.WriteString(cluster)
		w += cw
	}
	lines = append(lines, Line{Text: b.String(), Width: w})
	return lines
}

// wrapWord breaks on whitespace boundaries. A token longer than the line
// is clipped (Word mode) or broken at the character level (WordBreak
// mode, per spec §4.3: "fall back to character breaks for oversize
// tokens").
func wrapWord(s string, maxWidth int, breakOversize bool) []Line {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return []Line{{Text: "", Width: 0}}
	}

	var lines []Line
	var cur strings.Builder
	curWidth := 0

	flush := func() {
		lines = append(lines, Line{Text: cur.String(), Width: curWidth})
		cur.Reset()
		curWidth = 0
	}

	for _, tok := range fields {
		tokWidth := runewidth.StringWidth(tok)

		if tokWidth > maxWidth {
			if curWidth > 0 {
				flush()
			}
			if breakOversize {
				for _, sub := range wrapCharacter(tok, maxWidth) {
					lines = append(lines, sub)
				}
			} else {
				lines = append(lines, clip(tok, maxWidth))
			}
			continue
		}

		sep := 0
		if curWidth > 0 {
			sep = 1
		}
		if curWidth+sep+tokWidth > maxWidth {
			flush()
			sep = 0
		}
		if sep == 1 {
			cur.WriteByte(' ')
			curWidth++
		}
		cur.WriteString(tok)
		curWidth += tokWidth
	}
	if curWidth > 0 || len(lines) == 0 {
		flush()
	}
	return lines
}

// AlignLine returns the left padding (in cells) to apply before a line of
// the given width when the text node's resolved width is boxWidth, per
// spec §4.3's horizontal-alignment rule.
func AlignLine(align style.HorizontalAlign, lineWidth, boxWidth int) int {
	free := boxWidth - lineWidth
	if free <= 0 {
		return 0
	}
	switch align {
	case style.AlignTextCenter:
		return free / 2
	case style.AlignRight:
		return free
	default:
		return 0
	}
}
