package entity

import (
	"errors"
	"fmt"
	"slices"
)

var (
	// ErrEmptyDashboard is returned when the dashboard has no layout.
	ErrEmptyDashboard = errors.New("dashboard has no layout")
	// ErrDuplicateWindow is returned when a window appears in more than one leaf.
	ErrDuplicateWindow = errors.New("window appears more than once in the layout")
	// ErrLeafCountMismatch is returned when leaves and active windows disagree.
	ErrLeafCountMismatch = errors.New("layout leaves do not match active windows")
	// ErrTooManyWindows is returned when more than MaxWindows are open.
	ErrTooManyWindows = errors.New("too many windows")
)

// MaximizeState records the window shown alone and the layout to restore.
type MaximizeState struct {
	WindowID    WindowID
	SavedLayout LayoutNode
}

// Dashboard is the full state of the tiled layout.
// A Dashboard value is never modified in place by the use cases; each
// accepted action yields a new value with Revision incremented.
type Dashboard struct {
	Layout    LayoutNode
	Active    []WindowID          // Insertion order, used by auto-arrange
	Bindings  map[WindowID]string // Window -> content key
	Maximized *MaximizeState      // nil when no window is maximized
	Revision  uint64
}

// NewDefaultDashboard returns the initial three-window dashboard:
// window1 on the left third, window2 and window3 sharing the rest.
func NewDefaultDashboard(defaultContent func(WindowID) string) Dashboard {
	w1, w2, w3 := WindowIDForSlot(1), WindowIDForSlot(2), WindowIDForSlot(3)
	d := Dashboard{
		Layout: Branch{
			Direction: DirectionRow,
			First:     Leaf{ID: w1},
			Second: Branch{
				Direction:       DirectionRow,
				First:           Leaf{ID: w2},
				Second:          Leaf{ID: w3},
				SplitPercentage: 50,
			},
			SplitPercentage: 33,
		},
		Active:   []WindowID{w1, w2, w3},
		Bindings: make(map[WindowID]string, MaxWindows),
	}
	if defaultContent != nil {
		for _, id := range d.Active {
			d.Bindings[id] = defaultContent(id)
		}
	}
	return d
}

// Clone returns a copy that shares no mutable memory with d.
// Layout nodes are immutable values and are shared.
func (d Dashboard) Clone() Dashboard {
	out := d
	out.Active = slices.Clone(d.Active)
	out.Bindings = make(map[WindowID]string, len(d.Bindings))
	for k, v := range d.Bindings {
		out.Bindings[k] = v
	}
	if d.Maximized != nil {
		m := *d.Maximized
		out.Maximized = &m
	}
	return out
}

// IsMaximized reports whether a single window is currently shown alone.
func (d Dashboard) IsMaximized() bool {
	return d.Maximized != nil
}

// IsMaximizedWindow reports whether id is the maximized window.
func (d Dashboard) IsMaximizedWindow(id WindowID) bool {
	return d.Maximized != nil && d.Maximized.WindowID == id
}

// FullLayout returns the layout holding every active window: the saved
// layout while maximized, the visible one otherwise.
func (d Dashboard) FullLayout() LayoutNode {
	if d.Maximized != nil {
		return d.Maximized.SavedLayout
	}
	return d.Layout
}

// WindowCount returns the number of open windows.
func (d Dashboard) WindowCount() int {
	return CountLeaves(d.FullLayout())
}

// CanAddWindow reports whether another window fits under MaxWindows.
func (d Dashboard) CanAddWindow() bool {
	return d.WindowCount() < MaxWindows
}

// IsActive reports whether id is bound to a leaf.
func (d Dashboard) IsActive(id WindowID) bool {
	return slices.Contains(d.Active, id)
}

// NextFreeWindowID returns the lowest-numbered pool ID not in use.
func (d Dashboard) NextFreeWindowID() (WindowID, bool) {
	for _, id := range WindowPool() {
		if !d.IsActive(id) {
			return id, true
		}
	}
	return "", false
}

// ContentFor returns the content key bound to id.
func (d Dashboard) ContentFor(id WindowID) (string, bool) {
	key, ok := d.Bindings[id]
	return key, ok
}

// Validate checks that the full layout and the active set describe the
// same windows, with no duplicates and no more than MaxWindows.
func (d Dashboard) Validate() error {
	layout := d.FullLayout()
	if layout == nil {
		return ErrEmptyDashboard
	}
	ids := LeafIDs(layout)
	if len(ids) > MaxWindows {
		return fmt.Errorf("%w: %d open, limit %d", ErrTooManyWindows, len(ids), MaxWindows)
	}
	seen := make(map[WindowID]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			return fmt.Errorf("%w: %s", ErrDuplicateWindow, id)
		}
		seen[id] = struct{}{}
	}
	if len(ids) != len(d.Active) {
		return fmt.Errorf("%w: %d leaves, %d active", ErrLeafCountMismatch, len(ids), len(d.Active))
	}
	for _, id := range d.Active {
		if _, ok := seen[id]; !ok {
			return fmt.Errorf("%w: %s is active but has no leaf", ErrLeafCountMismatch, id)
		}
	}
	if err := validateBranches(layout); err != nil {
		return err
	}
	if d.Maximized != nil {
		if !Equal(d.Layout, Leaf{ID: d.Maximized.WindowID}) {
			return fmt.Errorf("%w: maximized view does not show %s", ErrLeafCountMismatch, d.Maximized.WindowID)
		}
	}
	return nil
}

func validateBranches(tree LayoutNode) error {
	var err error
	Walk(tree, func(node LayoutNode, path Path) bool {
		if err != nil {
			return false
		}
		branch, ok := node.(Branch)
		if !ok {
			return true
		}
		if branch.First == nil || branch.Second == nil {
			err = fmt.Errorf("%w: branch at %s has a missing child", ErrInvalidPath, path)
			return false
		}
		if branch.SplitPercentage < 0 || branch.SplitPercentage > 100 {
			err = fmt.Errorf("branch at %s has split percentage %g outside [0, 100]", path, branch.SplitPercentage)
			return false
		}
		return true
	})
	return err
}
