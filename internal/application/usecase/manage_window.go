package usecase

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/bnema/mosaic/internal/domain/entity"
	"github.com/bnema/mosaic/internal/logging"
)

var (
	ErrCapacityExceeded        = errors.New("maximum number of windows reached")
	ErrLastWindow              = errors.New("cannot close the last remaining window")
	ErrStructuralInconsistency = errors.New("layout is structurally inconsistent")
	ErrStalePath               = errors.New("path does not address the window in the current layout")
	ErrWindowNotActive         = errors.New("window is not open")
	ErrWindowMaximized         = errors.New("a window is maximized")
	ErrAnotherWindowMaximized  = errors.New("another window is already maximized")
	ErrEmptyLayout             = errors.New("layout has no windows")
	ErrLayoutMismatch          = errors.New("layout does not hold exactly the open windows")
	ErrEmptyContentKey         = errors.New("content key is empty")
)

const (
	defaultSplitPercentage       = 50
	defaultCornerSplitPercentage = 80
	defaultFallbackContent       = "TSLA"
)

// LayoutPolicy holds the tunables applied when windows are created.
type LayoutPolicy struct {
	SplitPercentage       float64 // Share kept by the split window
	CornerSplitPercentage float64 // Share kept by the existing layout on corner add
	DefaultContent        map[entity.WindowID]string
	FallbackContent       string // Used when a slot has no default
}

// DefaultLayoutPolicy returns the stock split ratios and per-slot tickers.
func DefaultLayoutPolicy() LayoutPolicy {
	return LayoutPolicy{
		SplitPercentage:       defaultSplitPercentage,
		CornerSplitPercentage: defaultCornerSplitPercentage,
		DefaultContent: map[entity.WindowID]string{
			"window1": "AAPL",
			"window2": "NVDA",
			"window3": "MSFT",
			"window4": "GOOGL",
			"window5": "AMZN",
		},
		FallbackContent: defaultFallbackContent,
	}
}

// ContentFor returns the default content key for a new window.
func (p LayoutPolicy) ContentFor(id entity.WindowID) string {
	if key := p.DefaultContent[id]; key != "" {
		return key
	}
	if p.FallbackContent != "" {
		return p.FallbackContent
	}
	return defaultFallbackContent
}

// ManageWindowsUseCase implements the layout engine operations.
// Every method takes a Dashboard value and returns a new one; the input is
// never modified. On error the caller keeps its current Dashboard.
type ManageWindowsUseCase struct {
	mu     sync.RWMutex
	policy LayoutPolicy
}

// NewManageWindowsUseCase creates a new window management use case.
func NewManageWindowsUseCase(policy LayoutPolicy) *ManageWindowsUseCase {
	return &ManageWindowsUseCase{policy: policy}
}

// Policy returns the current layout policy.
func (uc *ManageWindowsUseCase) Policy() LayoutPolicy {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.policy
}

// SetPolicy swaps the layout policy, e.g. after a config reload.
func (uc *ManageWindowsUseCase) SetPolicy(policy LayoutPolicy) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.policy = policy
}

// NewDashboard returns the initial three-window dashboard bound to the
// policy's default content.
func (uc *ManageWindowsUseCase) NewDashboard() entity.Dashboard {
	return entity.NewDefaultDashboard(uc.Policy().ContentFor)
}

// SplitWindowInput contains parameters for splitting a window.
type SplitWindowInput struct {
	Dashboard entity.Dashboard
	TargetID  entity.WindowID
	Path      entity.Path // Path of TargetID in Dashboard.Layout
	Direction entity.Direction
}

// AddWindowOutput contains the result of a split or corner add.
type AddWindowOutput struct {
	Dashboard   entity.Dashboard
	NewWindowID entity.WindowID
	NewPath     entity.Path // Path of the new window in the new layout
}

// Split replaces the target leaf with a branch holding the target and a new
// window, the new window second.
func (uc *ManageWindowsUseCase) Split(ctx context.Context, input SplitWindowInput) (*AddWindowOutput, error) {
	log := logging.FromContext(ctx)
	log.Debug().
		Str("target_id", string(input.TargetID)).
		Str("path", input.Path.String()).
		Str("direction", input.Direction.String()).
		Msg("splitting window")

	d := input.Dashboard
	if d.IsMaximized() {
		return nil, ErrWindowMaximized
	}
	if !d.IsActive(input.TargetID) {
		return nil, fmt.Errorf("%w: %s", ErrWindowNotActive, input.TargetID)
	}
	if !d.CanAddWindow() {
		return nil, fmt.Errorf("%w (%d)", ErrCapacityExceeded, entity.MaxWindows)
	}
	if err := checkLeafAt(d.Layout, input.Path, input.TargetID); err != nil {
		return nil, err
	}

	policy := uc.Policy()
	next, newID, err := allocateWindow(d, policy)
	if err != nil {
		return nil, err
	}

	replacement := entity.Branch{
		Direction:       input.Direction,
		First:           entity.Leaf{ID: input.TargetID},
		Second:          entity.Leaf{ID: newID},
		SplitPercentage: entity.ClampPercentage(policy.SplitPercentage),
	}
	next.Layout, err = entity.UpdateTree(d.Layout, entity.TreePatch{Path: input.Path, Replacement: replacement})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStructuralInconsistency, err)
	}
	if err := commit(&next); err != nil {
		return nil, err
	}

	log.Info().
		Str("new_window_id", string(newID)).
		Str("target_id", string(input.TargetID)).
		Int("windows", len(next.Active)).
		Msg("window split completed")

	return &AddWindowOutput{
		Dashboard:   next,
		NewWindowID: newID,
		NewPath:     input.Path.Child(entity.SideSecond),
	}, nil
}

// AddCorner wraps the whole layout as the first child of a new root whose
// second child is a new window.
func (uc *ManageWindowsUseCase) AddCorner(ctx context.Context, d entity.Dashboard) (*AddWindowOutput, error) {
	log := logging.FromContext(ctx)
	log.Debug().Msg("adding window to corner")

	if d.IsMaximized() {
		return nil, ErrWindowMaximized
	}
	if d.Layout == nil {
		return nil, ErrEmptyLayout
	}
	if !d.CanAddWindow() {
		return nil, fmt.Errorf("%w (%d)", ErrCapacityExceeded, entity.MaxWindows)
	}

	policy := uc.Policy()
	next, newID, err := allocateWindow(d, policy)
	if err != nil {
		return nil, err
	}
	next.Layout = entity.Branch{
		Direction:       entity.DirectionRow,
		First:           d.Layout,
		Second:          entity.Leaf{ID: newID},
		SplitPercentage: entity.ClampPercentage(policy.CornerSplitPercentage),
	}
	if err := commit(&next); err != nil {
		return nil, err
	}

	log.Info().
		Str("new_window_id", string(newID)).
		Int("windows", len(next.Active)).
		Msg("window added to corner")

	return &AddWindowOutput{
		Dashboard:   next,
		NewWindowID: newID,
		NewPath:     entity.Path{entity.SideSecond},
	}, nil
}

// CloseWindowOutput contains the result of a close.
type CloseWindowOutput struct {
	Dashboard entity.Dashboard
	Promoted  entity.LayoutNode // Sibling subtree that took the parent's place
}

// Close removes the window at path and promotes its sibling into the
// parent's position. The last remaining window cannot be closed.
func (uc *ManageWindowsUseCase) Close(
	ctx context.Context,
	d entity.Dashboard,
	id entity.WindowID,
	path entity.Path,
) (*CloseWindowOutput, error) {
	log := logging.FromContext(ctx)
	log.Debug().Str("window_id", string(id)).Str("path", path.String()).Msg("closing window")

	if d.IsMaximized() {
		return nil, ErrWindowMaximized
	}
	if !d.IsActive(id) {
		return nil, fmt.Errorf("%w: %s", ErrWindowNotActive, id)
	}
	if err := checkLeafAt(d.Layout, path, id); err != nil {
		return nil, err
	}

	parentPath, ok := path.Parent()
	if !ok {
		return nil, ErrLastWindow
	}
	parentNode, ok := entity.NodeAtPath(d.Layout, parentPath)
	if !ok {
		return nil, fmt.Errorf("%w: no node at %s", ErrStructuralInconsistency, parentPath)
	}
	parent, ok := parentNode.(entity.Branch)
	if !ok {
		return nil, fmt.Errorf("%w: parent at %s is not a branch", ErrStructuralInconsistency, parentPath)
	}

	last, _ := path.Last()
	sibling := parent.Child(last.Other())

	next := d.Clone()
	var err error
	next.Layout, err = entity.UpdateTree(d.Layout, entity.TreePatch{Path: parentPath, Replacement: sibling})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStructuralInconsistency, err)
	}
	next.Active = slices.DeleteFunc(next.Active, func(active entity.WindowID) bool { return active == id })
	delete(next.Bindings, id)
	if err := commit(&next); err != nil {
		return nil, err
	}

	log.Info().
		Str("closed_window_id", string(id)).
		Int("windows", len(next.Active)).
		Msg("window closed, sibling promoted")

	return &CloseWindowOutput{Dashboard: next, Promoted: sibling}, nil
}

// MaximizeOutput contains the result of a maximize toggle.
type MaximizeOutput struct {
	Dashboard entity.Dashboard
	Maximized bool // true when the toggle entered the maximized state
}

// ToggleMaximize shows id alone, or restores the saved layout when id is
// already maximized. Maximizing a second window is rejected.
func (uc *ManageWindowsUseCase) ToggleMaximize(ctx context.Context, d entity.Dashboard, id entity.WindowID) (*MaximizeOutput, error) {
	log := logging.FromContext(ctx)

	if !d.IsActive(id) {
		return nil, fmt.Errorf("%w: %s", ErrWindowNotActive, id)
	}

	next := d.Clone()
	switch {
	case d.Maximized == nil:
		next.Maximized = &entity.MaximizeState{WindowID: id, SavedLayout: d.Layout}
		next.Layout = entity.Leaf{ID: id}
	case d.Maximized.WindowID == id:
		next.Layout = d.Maximized.SavedLayout
		next.Maximized = nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrAnotherWindowMaximized, d.Maximized.WindowID)
	}
	if err := commit(&next); err != nil {
		return nil, err
	}

	log.Info().
		Str("window_id", string(id)).
		Bool("maximized", next.IsMaximized()).
		Msg("window maximize toggled")

	return &MaximizeOutput{Dashboard: next, Maximized: next.IsMaximized()}, nil
}

// AutoArrange rebuilds the layout from the active windows in opening order,
// discarding the previous nesting and ratios.
func (uc *ManageWindowsUseCase) AutoArrange(ctx context.Context, d entity.Dashboard) (entity.Dashboard, error) {
	log := logging.FromContext(ctx)

	if d.IsMaximized() {
		return d, ErrWindowMaximized
	}
	layout := ArrangeRow(d.Active)
	if layout == nil {
		return d, ErrEmptyLayout
	}

	next := d.Clone()
	next.Layout = layout
	if err := commit(&next); err != nil {
		return d, err
	}

	log.Info().Int("windows", len(next.Active)).Msg("layout auto-arranged")
	return next, nil
}

// ArrangeRow folds ids into a row: the first id takes 1/n of the width and
// the rest are arranged recursively in the remaining space, so every window
// ends up with an equal column.
func ArrangeRow(ids []entity.WindowID) entity.LayoutNode {
	switch len(ids) {
	case 0:
		return nil
	case 1:
		return entity.Leaf{ID: ids[0]}
	default:
		return entity.Branch{
			Direction:       entity.DirectionRow,
			First:           entity.Leaf{ID: ids[0]},
			Second:          ArrangeRow(ids[1:]),
			SplitPercentage: float64(100 / len(ids)),
		}
	}
}

// SelectContent binds a new content key to a window.
func (uc *ManageWindowsUseCase) SelectContent(
	ctx context.Context,
	d entity.Dashboard,
	id entity.WindowID,
	key string,
) (entity.Dashboard, error) {
	log := logging.FromContext(ctx)

	if !d.IsActive(id) {
		return d, fmt.Errorf("%w: %s", ErrWindowNotActive, id)
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return d, ErrEmptyContentKey
	}

	next := d.Clone()
	next.Bindings[id] = key
	next.Revision++

	log.Debug().Str("window_id", string(id)).Str("content", key).Msg("content selected")
	return next, nil
}

// ReplaceLayout accepts a tree edited outside the engine, such as a divider
// drag. A nil tree is ignored. The tree must hold exactly the open windows.
func (uc *ManageWindowsUseCase) ReplaceLayout(
	ctx context.Context,
	d entity.Dashboard,
	layout entity.LayoutNode,
) (entity.Dashboard, error) {
	log := logging.FromContext(ctx)

	if layout == nil {
		return d, nil
	}
	if d.IsMaximized() {
		return d, ErrWindowMaximized
	}

	next := d.Clone()
	next.Layout = layout
	if err := next.Validate(); err != nil {
		return d, fmt.Errorf("%w: %w", ErrLayoutMismatch, err)
	}
	next.Revision++

	log.Debug().Str("layout", entity.FormatTree(layout)).Msg("layout replaced")
	return next, nil
}

// checkLeafAt verifies that path still addresses Leaf(id), which rejects
// paths computed against an earlier layout.
func checkLeafAt(layout entity.LayoutNode, path entity.Path, id entity.WindowID) error {
	node, ok := entity.NodeAtPath(layout, path)
	if !ok {
		return fmt.Errorf("%w: no node at %s", ErrStalePath, path)
	}
	leaf, ok := node.(entity.Leaf)
	if !ok || leaf.ID != id {
		return fmt.Errorf("%w: %s is not at %s", ErrStalePath, id, path)
	}
	return nil
}

func allocateWindow(d entity.Dashboard, policy LayoutPolicy) (entity.Dashboard, entity.WindowID, error) {
	newID, ok := d.NextFreeWindowID()
	if !ok {
		return d, "", fmt.Errorf("%w (%d)", ErrCapacityExceeded, entity.MaxWindows)
	}
	next := d.Clone()
	next.Active = append(next.Active, newID)
	next.Bindings[newID] = policy.ContentFor(newID)
	return next, newID, nil
}

// commit validates a candidate dashboard and bumps its revision.
// A candidate that breaks the invariants is refused rather than stored.
func commit(next *entity.Dashboard) error {
	if err := next.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrStructuralInconsistency, err)
	}
	next.Revision++
	return nil
}
