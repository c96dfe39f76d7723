// Package layout turns layout trees into cell geometry and rendered text.
package layout

import (
	"math"

	"github.com/bnema/mosaic/internal/domain/entity"
)

// Rect is an area measured in terminal cells.
type Rect struct {
	X, Y int
	W, H int
}

// Empty reports whether the rect has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// SplitSize returns the cells given to a branch's first child out of total.
// Both sides keep at least one cell when total allows it.
func SplitSize(total int, percentage float64) int {
	if total <= 0 {
		return 0
	}
	size := int(math.Round(float64(total) * entity.ClampPercentage(percentage) / 100))
	if total >= 2 {
		size = max(1, min(size, total-1))
	}
	return size
}

// Rects maps every leaf of tree to the area it occupies inside area.
func Rects(tree entity.LayoutNode, area Rect) map[entity.WindowID]Rect {
	out := make(map[entity.WindowID]Rect)
	rectsForNode(tree, area, out)
	return out
}

// WindowRects returns the leaf areas of tree in left-to-right leaf order.
func WindowRects(tree entity.LayoutNode, area Rect) []entity.WindowRect {
	rects := Rects(tree, area)
	ids := entity.LeafIDs(tree)
	out := make([]entity.WindowRect, 0, len(ids))
	for _, id := range ids {
		r, ok := rects[id]
		if !ok {
			continue
		}
		out = append(out, entity.WindowRect{WindowID: id, X: r.X, Y: r.Y, W: r.W, H: r.H})
	}
	return out
}

func rectsForNode(node entity.LayoutNode, rect Rect, out map[entity.WindowID]Rect) {
	if node == nil || rect.Empty() {
		return
	}
	switch n := node.(type) {
	case entity.Leaf:
		out[n.ID] = rect
	case entity.Branch:
		first, second := splitRect(n, rect)
		rectsForNode(n.First, first, out)
		rectsForNode(n.Second, second, out)
	}
}

func splitRect(b entity.Branch, rect Rect) (Rect, Rect) {
	if b.Direction == entity.DirectionColumn {
		h := SplitSize(rect.H, b.SplitPercentage)
		return Rect{X: rect.X, Y: rect.Y, W: rect.W, H: h},
			Rect{X: rect.X, Y: rect.Y + h, W: rect.W, H: rect.H - h}
	}
	w := SplitSize(rect.W, b.SplitPercentage)
	return Rect{X: rect.X, Y: rect.Y, W: w, H: rect.H},
		Rect{X: rect.X + w, Y: rect.Y, W: rect.W - w, H: rect.H}
}
