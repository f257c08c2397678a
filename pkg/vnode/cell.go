// Package vnode defines the post-expansion declarative UI tree, VNode
// (Container/Text/RichText), its event bindings, and the Cell that the
// renderer ultimately produces. The pre-expansion Node, which can carry a
// Component reference, lives in pkg/runtime.
package vnode

import "github.com/tessui/tessui/pkg/style"

// Cell is the smallest renderable unit: one terminal grid position.
type Cell struct {
	Char rune
	Fg   *style.Color
	Bg   *style.Color
	Text style.TextStyle
}

// Blank returns the empty cell: a space with no explicit colors.
func Blank() Cell {
	return Cell{Char: ' '}
}

// Equal reports whether two cells render identically.
func (c Cell) Equal(o Cell) bool {
	if c.Char != o.Char {
		return false
	}
	if !colorPtrEqual(c.Fg, o.Fg) || !colorPtrEqual(c.Bg, o.Bg) {
		return false
	}
	return textStyleEqual(c.Text, o.Text)
}

func colorPtrEqual(a, b *style.Color) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return a.Equal(*b)
}

func textStyleEqual(a, b style.TextStyle) bool {
	return boolPtrEqual(a.Bold, b.Bold) &&
		boolPtrEqual(a.Italic, b.Italic) &&
		boolPtrEqual(a.Underline, b.Underline) &&
		boolPtrEqual(a.Strikethrough, b.Strikethrough)
}

func boolPtrEqual(a, b *bool) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return *a == *b
}
