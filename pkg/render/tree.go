package render

import "github.com/tessui/tessui/pkg/style"

// Walk visits n and every descendant in document order (depth-first,
// children in slice order), calling fn on each.
func Walk(n *Node, fn func(*Node)) {
	if n == nil {
		return
	}
	fn(n)
	for _, c := range n.Children {
		Walk(c, fn)
	}
}

// Focusables returns every focusable node under root, in document order.
func Focusables(root *Node) []*Node {
	var out []*Node
	Walk(root, func(n *Node) {
		if n.Focusable {
			out = append(out, n)
		}
	})
	return out
}

// FirstFocusable returns the first focusable node in document order under
// root, or nil.
func FirstFocusable(root *Node) *Node {
	fs := Focusables(root)
	if len(fs) == 0 {
		return nil
	}
	return fs[0]
}

// FindFocused returns the currently focused node under root, or nil.
func FindFocused(root *Node) *Node {
	var found *Node
	Walk(root, func(n *Node) {
		if n.Focused {
			found = n
		}
	})
	return found
}

// SetFocus clears any existing focus under root and focuses target
// (target may be nil to simply blur). Focus uniqueness (spec §8) is
// maintained by always clearing the whole tree first.
func SetFocus(root *Node, target *Node) {
	Walk(root, func(n *Node) {
		n.Focused = false
	})
	if target != nil {
		target.Focused = true
		target.MarkDirty()
	}
}

// FocusNext returns the focusable node after current in document order,
// wrapping to the first. If current is nil, it returns the first
// focusable node.
func FocusNext(root *Node, current *Node) *Node {
	fs := Focusables(root)
	if len(fs) == 0 {
		return nil
	}
	if current == nil {
		return fs[0]
	}
	for i, n := range fs {
		if n == current {
			return fs[(i+1)%len(fs)]
		}
	}
	return fs[0]
}

// FocusPrev returns the focusable node before current in document order,
// wrapping to the last.
func FocusPrev(root *Node, current *Node) *Node {
	fs := Focusables(root)
	if len(fs) == 0 {
		return nil
	}
	if current == nil {
		return fs[len(fs)-1]
	}
	for i, n := range fs {
		if n == current {
			return fs[(i-1+len(fs))%len(fs)]
		}
	}
	return fs[len(fs)-1]
}

// drawOrder returns n's children ordered for drawing: lower z-index
// first, absolute children drawn over flow siblings when z is equal
// (spec §4.4). The sort is stable so same-z document order is preserved
// otherwise.
func drawOrder(n *Node) []*Node {
	children := make([]*Node, len(n.Children))
	copy(children, n.Children)
	// Stable insertion sort on (z, isAbsolute): small N per container in
	// practice, and stability matters more than asymptotic complexity.
	for i := 1; i < len(children); i++ {
		for j := i; j > 0; j-- {
			if lessDrawOrder(children[j], children[j-1]) {
				children[j], children[j-1] = children[j-1], children[j]
			} else {
				break
			}
		}
	}
	return children
}

func lessDrawOrder(a, b *Node) bool {
	az, bz := zIndexOf(a), zIndexOf(b)
	if az != bz {
		return az < bz
	}
	aAbs, bAbs := isAbsolute(a), isAbsolute(b)
	if aAbs != bAbs {
		return !aAbs // flow before absolute when z is equal
	}
	return false
}

func zIndexOf(n *Node) int {
	if n.Style.ZIndex != nil {
		return *n.Style.ZIndex
	}
	return 0
}

func isAbsolute(n *Node) bool {
	return n.Style.Position != nil && *n.Style.Position == style.PositionAbsolute
}

// HitTest returns the topmost (highest z-index, document-order tiebreak)
// node whose resolved box contains (x, y), or nil. Only considers nodes
// within root's own box.
func HitTest(root *Node, x, y int) *Node {
	if root == nil || !contains(root, x, y) {
		return nil
	}
	var best *Node
	order := drawOrder(root)
	for _, c := range order {
		if hit := HitTest(c, x, y); hit != nil {
			best = hit
		}
	}
	if best != nil {
		return best
	}
	return root
}

func contains(n *Node, x, y int) bool {
	return x >= n.X && x < n.X+n.W && y >= n.Y && y < n.Y+n.H
}
