package layout

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/mosaic/internal/domain/entity"
)

// LeafRenderer draws one window into exactly width x height cells.
// path is the window's position in the tree being rendered.
type LeafRenderer func(id entity.WindowID, path entity.Path, width, height int) string

// Render draws tree into a width x height block, asking render for each leaf.
// Leaf output is padded or cropped to its area so the block stays rectangular.
func Render(tree entity.LayoutNode, width, height int, render LeafRenderer) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	if tree == nil || render == nil {
		return blank(width, height)
	}
	return renderNode(tree, entity.Path{}, width, height, render)
}

func renderNode(node entity.LayoutNode, path entity.Path, width, height int, render LeafRenderer) string {
	switch n := node.(type) {
	case entity.Leaf:
		return fit(render(n.ID, path, width, height), width, height)
	case entity.Branch:
		first, second := splitRect(n, Rect{W: width, H: height})
		parts := make([]string, 0, 2)
		if !first.Empty() {
			parts = append(parts, renderNode(n.First, path.Child(entity.SideFirst), first.W, first.H, render))
		}
		if !second.Empty() {
			parts = append(parts, renderNode(n.Second, path.Child(entity.SideSecond), second.W, second.H, render))
		}
		if n.Direction == entity.DirectionColumn {
			return lipgloss.JoinVertical(lipgloss.Left, parts...)
		}
		return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	default:
		return blank(width, height)
	}
}

func fit(s string, width, height int) string {
	placed := lipgloss.Place(width, height, lipgloss.Left, lipgloss.Top, s)
	return lipgloss.NewStyle().MaxWidth(width).MaxHeight(height).Render(placed)
}

func blank(width, height int) string {
	line := strings.Repeat(" ", width)
	lines := make([]string, height)
	for i := range lines {
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}
