package entity

import (
	"errors"
	"testing"
)

func sampleTree() LayoutNode {
	return Branch{
		Direction: DirectionRow,
		First:     Leaf{ID: "window1"},
		Second: Branch{
			Direction:       DirectionColumn,
			First:           Leaf{ID: "window2"},
			Second:          Leaf{ID: "window3"},
			SplitPercentage: 50,
		},
		SplitPercentage: 33,
	}
}

func TestNodeAtPath(t *testing.T) {
	tree := sampleTree()

	tests := []struct {
		name   string
		path   Path
		want   LayoutNode
		wantOK bool
	}{
		{name: "root", path: Path{}, want: tree, wantOK: true},
		{name: "first leaf", path: Path{SideFirst}, want: Leaf{ID: "window1"}, wantOK: true},
		{name: "nested leaf", path: Path{SideSecond, SideSecond}, want: Leaf{ID: "window3"}, wantOK: true},
		{name: "past a leaf", path: Path{SideFirst, SideFirst}, wantOK: false},
		{name: "too deep", path: Path{SideSecond, SideFirst, SideSecond}, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NodeAtPath(tree, tt.path)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && !Equal(got, tt.want) {
				t.Fatalf("node = %s, want %s", FormatTree(got), FormatTree(tt.want))
			}
		})
	}
}

func TestNodeAtPath_EmptyTree(t *testing.T) {
	if _, ok := NodeAtPath(nil, Path{}); ok {
		t.Fatal("expected not found for nil tree")
	}
}

func TestUpdateTree_ReplacesSubtreeWithoutTouchingInput(t *testing.T) {
	tree := sampleTree()
	before := FormatTree(tree)

	replacement := Branch{
		Direction:       DirectionRow,
		First:           Leaf{ID: "window2"},
		Second:          Leaf{ID: "window4"},
		SplitPercentage: 50,
	}
	got, err := UpdateTree(tree, TreePatch{Path: Path{SideSecond, SideFirst}, Replacement: replacement})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if FormatTree(tree) != before {
		t.Fatalf("input tree changed: %s", FormatTree(tree))
	}
	node, ok := NodeAtPath(got, Path{SideSecond, SideFirst})
	if !ok || !Equal(node, replacement) {
		t.Fatalf("replacement not found at path, tree = %s", FormatTree(got))
	}
	if CountLeaves(got) != 4 {
		t.Fatalf("leaf count = %d, want 4", CountLeaves(got))
	}
}

func TestUpdateTree_RootAndMultiplePatches(t *testing.T) {
	tree := sampleTree()

	got, err := UpdateTree(tree,
		TreePatch{Path: Path{SideFirst}, Replacement: Leaf{ID: "window5"}},
		TreePatch{Path: Path{SideSecond}, Replacement: Leaf{ID: "window4"}},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := "row(window5, window4 @33)"; FormatTree(got) != want {
		t.Fatalf("tree = %s, want %s", FormatTree(got), want)
	}

	root, err := UpdateTree(tree, TreePatch{Path: nil, Replacement: Leaf{ID: "window1"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !Equal(root, Leaf{ID: "window1"}) {
		t.Fatalf("root replacement = %s", FormatTree(root))
	}
}

func TestUpdateTree_InvalidPath(t *testing.T) {
	tree := sampleTree()

	got, err := UpdateTree(tree, TreePatch{Path: Path{SideFirst, SideSecond}, Replacement: Leaf{ID: "window4"}})
	if !errors.Is(err, ErrInvalidPath) {
		t.Fatalf("expected ErrInvalidPath, got %v", err)
	}
	if !Equal(got, tree) {
		t.Fatalf("tree changed on error: %s", FormatTree(got))
	}
}

func TestCountLeaves(t *testing.T) {
	if got := CountLeaves(nil); got != 0 {
		t.Fatalf("CountLeaves(nil) = %d, want 0", got)
	}
	if got := CountLeaves(Leaf{ID: "window1"}); got != 1 {
		t.Fatalf("CountLeaves(leaf) = %d, want 1", got)
	}
	if got := CountLeaves(sampleTree()); got != 3 {
		t.Fatalf("CountLeaves(tree) = %d, want 3", got)
	}
}

func TestLeafIDsAndPathTo(t *testing.T) {
	tree := sampleTree()

	ids := LeafIDs(tree)
	want := []WindowID{"window1", "window2", "window3"}
	if len(ids) != len(want) {
		t.Fatalf("ids = %v, want %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("ids = %v, want %v", ids, want)
		}
	}

	path, ok := PathTo(tree, "window3")
	if !ok || !path.Equal(Path{SideSecond, SideSecond}) {
		t.Fatalf("PathTo(window3) = %s, %v", path, ok)
	}
	if _, ok := PathTo(tree, "window5"); ok {
		t.Fatal("expected window5 to be missing")
	}
}

func TestPath_ParentAndChildDoNotAlias(t *testing.T) {
	base := make(Path, 1, 4)
	base[0] = SideSecond

	a := base.Child(SideFirst)
	b := base.Child(SideSecond)
	if a.Equal(b) {
		t.Fatalf("child paths alias each other: %s, %s", a, b)
	}

	parent, ok := a.Parent()
	if !ok || !parent.Equal(base) {
		t.Fatalf("parent = %s, want %s", parent, base)
	}
	if _, ok := (Path{}).Parent(); ok {
		t.Fatal("root must not have a parent")
	}
	if last, _ := b.Last(); last != SideSecond {
		t.Fatalf("last = %s, want second", last)
	}
}

func TestSameShapeIgnoresSplitPercentage(t *testing.T) {
	a := sampleTree()
	b, err := UpdateTree(a, TreePatch{Path: Path{}, Replacement: a.(Branch).withSplit(80)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if Equal(a, b) {
		t.Fatal("Equal should see the split change")
	}
	if !SameShape(a, b) {
		t.Fatal("SameShape should ignore the split change")
	}
}

func (b Branch) withSplit(p float64) Branch {
	b.SplitPercentage = p
	return b
}

func TestDepth(t *testing.T) {
	if got := Depth(nil); got != 0 {
		t.Fatalf("Depth(nil) = %d", got)
	}
	if got := Depth(sampleTree()); got != 3 {
		t.Fatalf("Depth = %d, want 3", got)
	}
}

func TestParseDirection(t *testing.T) {
	if d, err := ParseDirection("Column"); err != nil || d != DirectionColumn {
		t.Fatalf("ParseDirection(Column) = %v, %v", d, err)
	}
	if d, err := ParseDirection(""); err != nil || d != DirectionRow {
		t.Fatalf("ParseDirection(\"\") = %v, %v", d, err)
	}
	if _, err := ParseDirection("diagonal"); err == nil {
		t.Fatal("expected error for unknown direction")
	}
}
