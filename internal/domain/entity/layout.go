package entity

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidPath is returned when a path does not address a node of the tree.
var ErrInvalidPath = errors.New("path does not address a node in the layout")

// Direction indicates how a branch splits its area between its children.
type Direction int

const (
	DirectionRow    Direction = iota // Left/right split
	DirectionColumn                  // Top/bottom split
)

func (d Direction) String() string {
	switch d {
	case DirectionRow:
		return "row"
	case DirectionColumn:
		return "column"
	default:
		return "unknown"
	}
}

// ParseDirection converts "row" or "column" into a Direction.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "row":
		return DirectionRow, nil
	case "column", "col":
		return DirectionColumn, nil
	default:
		return DirectionRow, fmt.Errorf("unknown direction %q", s)
	}
}

// Side selects one child of a branch.
type Side int

const (
	SideFirst  Side = iota // Left/top child
	SideSecond             // Right/bottom child
)

func (s Side) String() string {
	if s == SideSecond {
		return "second"
	}
	return "first"
}

// Other returns the opposite side.
func (s Side) Other() Side {
	if s == SideFirst {
		return SideSecond
	}
	return SideFirst
}

// Path addresses a node by the sides taken from the root.
// The empty path is the root itself.
type Path []Side

// IsRoot reports whether the path addresses the root.
func (p Path) IsRoot() bool {
	return len(p) == 0
}

// Parent returns the path of the enclosing branch. The root has no parent.
func (p Path) Parent() (Path, bool) {
	if len(p) == 0 {
		return nil, false
	}
	return p.clone()[:len(p)-1], true
}

// Last returns the final side of the path.
func (p Path) Last() (Side, bool) {
	if len(p) == 0 {
		return SideFirst, false
	}
	return p[len(p)-1], true
}

// Child returns a new path extended by one side. The receiver is not modified.
func (p Path) Child(s Side) Path {
	out := make(Path, len(p), len(p)+1)
	copy(out, p)
	return append(out, s)
}

// Equal reports whether both paths select the same node.
func (p Path) Equal(other Path) bool {
	if len(p) != len(other) {
		return false
	}
	for i := range p {
		if p[i] != other[i] {
			return false
		}
	}
	return true
}

func (p Path) String() string {
	if len(p) == 0 {
		return "root"
	}
	parts := make([]string, len(p))
	for i, s := range p {
		parts[i] = s.String()
	}
	return strings.Join(parts, "/")
}

func (p Path) clone() Path {
	out := make(Path, len(p))
	copy(out, p)
	return out
}

// LayoutNode is a node of the layout tree: either a Leaf or a Branch.
// Nodes are values; every change to a tree produces a new tree.
type LayoutNode interface {
	isLayoutNode()
}

// Leaf holds exactly one window.
type Leaf struct {
	ID WindowID
}

func (Leaf) isLayoutNode() {}

// Branch splits its area between two children along Direction.
// SplitPercentage is the share (0-100) given to First.
type Branch struct {
	Direction       Direction
	First           LayoutNode
	Second          LayoutNode
	SplitPercentage float64
}

func (Branch) isLayoutNode() {}

// Child returns the child on the given side.
func (b Branch) Child(s Side) LayoutNode {
	if s == SideSecond {
		return b.Second
	}
	return b.First
}

// WithChild returns a copy of the branch with the child on side s replaced.
func (b Branch) WithChild(s Side, n LayoutNode) Branch {
	if s == SideSecond {
		b.Second = n
	} else {
		b.First = n
	}
	return b
}

// ClampPercentage bounds a split percentage to [0, 100].
func ClampPercentage(p float64) float64 {
	switch {
	case p < 0:
		return 0
	case p > 100:
		return 100
	default:
		return p
	}
}

// NodeAtPath walks path from the root. It returns false when the path
// runs past a leaf or the tree is empty.
func NodeAtPath(tree LayoutNode, path Path) (LayoutNode, bool) {
	node := tree
	for _, side := range path {
		branch, ok := node.(Branch)
		if !ok {
			return nil, false
		}
		node = branch.Child(side)
	}
	if node == nil {
		return nil, false
	}
	return node, true
}

// TreePatch replaces the subtree at Path with Replacement.
type TreePatch struct {
	Path        Path
	Replacement LayoutNode
}

// UpdateTree returns a new tree with each patch applied in order.
// The input tree is never modified.
func UpdateTree(tree LayoutNode, patches ...TreePatch) (LayoutNode, error) {
	out := tree
	for _, patch := range patches {
		var err error
		out, err = replaceAt(out, patch.Path, patch.Replacement)
		if err != nil {
			return tree, fmt.Errorf("update at %s: %w", patch.Path, err)
		}
	}
	return out, nil
}

func replaceAt(node LayoutNode, path Path, replacement LayoutNode) (LayoutNode, error) {
	if len(path) == 0 {
		return replacement, nil
	}
	branch, ok := node.(Branch)
	if !ok {
		return nil, ErrInvalidPath
	}
	side := path[0]
	child, err := replaceAt(branch.Child(side), path[1:], replacement)
	if err != nil {
		return nil, err
	}
	return branch.WithChild(side, child), nil
}

// CountLeaves returns the number of leaves below node. CountLeaves(nil) is 0.
func CountLeaves(node LayoutNode) int {
	switch n := node.(type) {
	case Leaf:
		return 1
	case Branch:
		return CountLeaves(n.First) + CountLeaves(n.Second)
	default:
		return 0
	}
}

// Walk visits every node in pre-order, first child before second.
// fn receives a path it may keep. Returning false skips the node's children.
func Walk(tree LayoutNode, fn func(node LayoutNode, path Path) bool) {
	walk(tree, Path{}, fn)
}

func walk(node LayoutNode, path Path, fn func(LayoutNode, Path) bool) {
	if node == nil {
		return
	}
	if !fn(node, path.clone()) {
		return
	}
	if branch, ok := node.(Branch); ok {
		walk(branch.First, path.Child(SideFirst), fn)
		walk(branch.Second, path.Child(SideSecond), fn)
	}
}

// LeafIDs returns the window IDs of all leaves in left-to-right order.
func LeafIDs(tree LayoutNode) []WindowID {
	var ids []WindowID
	Walk(tree, func(node LayoutNode, _ Path) bool {
		if leaf, ok := node.(Leaf); ok {
			ids = append(ids, leaf.ID)
		}
		return true
	})
	return ids
}

// PathTo returns the path of the leaf holding id.
func PathTo(tree LayoutNode, id WindowID) (Path, bool) {
	var found Path
	ok := false
	Walk(tree, func(node LayoutNode, path Path) bool {
		if ok {
			return false
		}
		if leaf, isLeaf := node.(Leaf); isLeaf && leaf.ID == id {
			found = path
			ok = true
			return false
		}
		return true
	})
	return found, ok
}

// Depth returns the number of levels in the tree; a single leaf has depth 1.
func Depth(tree LayoutNode) int {
	switch n := tree.(type) {
	case Leaf:
		return 1
	case Branch:
		return 1 + max(Depth(n.First), Depth(n.Second))
	default:
		return 0
	}
}

// Equal reports whether two trees are identical, split percentages included.
func Equal(a, b LayoutNode) bool {
	return equalNodes(a, b, true)
}

// SameShape reports whether two trees have the same structure and leaves,
// ignoring split percentages.
func SameShape(a, b LayoutNode) bool {
	return equalNodes(a, b, false)
}

func equalNodes(a, b LayoutNode, withSplit bool) bool {
	switch x := a.(type) {
	case nil:
		return b == nil
	case Leaf:
		y, ok := b.(Leaf)
		return ok && x.ID == y.ID
	case Branch:
		y, ok := b.(Branch)
		if !ok || x.Direction != y.Direction {
			return false
		}
		if withSplit && x.SplitPercentage != y.SplitPercentage {
			return false
		}
		return equalNodes(x.First, y.First, withSplit) && equalNodes(x.Second, y.Second, withSplit)
	default:
		return false
	}
}

// FormatTree renders a tree as a compact single-line expression,
// e.g. "row(window1, row(window2, window3 @50) @33)".
func FormatTree(tree LayoutNode) string {
	var sb strings.Builder
	formatNode(&sb, tree)
	return sb.String()
}

func formatNode(sb *strings.Builder, node LayoutNode) {
	switch n := node.(type) {
	case Leaf:
		sb.WriteString(string(n.ID))
	case Branch:
		sb.WriteString(n.Direction.String())
		sb.WriteByte('(')
		formatNode(sb, n.First)
		sb.WriteString(", ")
		formatNode(sb, n.Second)
		fmt.Fprintf(sb, " @%g)", n.SplitPercentage)
	default:
		sb.WriteString("<empty>")
	}
}
