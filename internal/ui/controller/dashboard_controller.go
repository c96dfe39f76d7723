// Package controller provides controllers that bridge domain state and UI widgets.
package controller

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/bnema/mosaic/internal/application/port"
	"github.com/bnema/mosaic/internal/application/usecase"
	"github.com/bnema/mosaic/internal/domain/entity"
	"github.com/bnema/mosaic/internal/logging"
	"github.com/bnema/mosaic/internal/ui/layout"
)

// ErrNoContentSource is returned by Refresh when no content lookup is wired.
var ErrNoContentSource = errors.New("no content source")

// ResizeSettings bounds keyboard divider moves.
type ResizeSettings struct {
	StepPercent float64
	MinPercent  float64
}

// DashboardController owns the current dashboard state. Every user request
// goes through the window use case; rejected requests leave the state as it
// was and are reported through the notifier.
type DashboardController struct {
	windowsUC *usecase.ManageWindowsUseCase
	focusUC   *usecase.NavigateFocusUseCase
	contentUC *usecase.LookupContentUseCase
	notifier  port.Notification
	clipboard port.Clipboard

	dashboard entity.Dashboard
	focused   entity.WindowID
	resize    ResizeSettings

	// Called after every accepted change, outside the lock
	onChange func(entity.Dashboard)

	ctx    context.Context
	logger *zerolog.Logger
	mu     sync.RWMutex
}

// NewDashboardController creates a controller starting from the default
// dashboard of windowsUC. contentUC and notifier may be nil.
func NewDashboardController(
	ctx context.Context,
	windowsUC *usecase.ManageWindowsUseCase,
	contentUC *usecase.LookupContentUseCase,
	notifier port.Notification,
) *DashboardController {
	ctx = logging.WithComponent(ctx, "dashboard-controller")
	d := windowsUC.NewDashboard()

	dc := &DashboardController{
		windowsUC: windowsUC,
		focusUC:   usecase.NewNavigateFocusUseCase(),
		contentUC: contentUC,
		notifier:  notifier,
		dashboard: d,
		ctx:       ctx,
		logger:    logging.FromContext(ctx),
	}
	if ids := entity.LeafIDs(d.Layout); len(ids) > 0 {
		dc.focused = ids[0]
	}
	return dc
}

// SetOnChange sets the callback invoked with the new state after every
// accepted change.
func (dc *DashboardController) SetOnChange(fn func(entity.Dashboard)) {
	dc.mu.Lock()
	defer dc.mu.Unlock()
	dc.onChange = fn
}

// SetResizeSettings changes the step and lower bound used by Resize.
func (dc *DashboardController) SetResizeSettings(settings ResizeSettings) {
	dc.mu.Lock()
	defer dc.mu.Unlock()
	dc.resize = settings
}

// SetClipboard enables Copy.
func (dc *DashboardController) SetClipboard(clipboard port.Clipboard) {
	dc.mu.Lock()
	defer dc.mu.Unlock()
	dc.clipboard = clipboard
}

// Dashboard returns the current state.
func (dc *DashboardController) Dashboard() entity.Dashboard {
	dc.mu.RLock()
	defer dc.mu.RUnlock()
	return dc.dashboard
}

// Focused returns the window keyboard actions apply to.
func (dc *DashboardController) Focused() entity.WindowID {
	dc.mu.RLock()
	defer dc.mu.RUnlock()
	return dc.focused
}

// SetFocus focuses id if it is visible.
func (dc *DashboardController) SetFocus(id entity.WindowID) bool {
	dc.mu.Lock()
	defer dc.mu.Unlock()
	if _, ok := entity.PathTo(dc.dashboard.Layout, id); !ok {
		return false
	}
	dc.focused = id
	return true
}

// FocusNext moves focus delta steps through the visible windows in leaf
// order, wrapping around.
func (dc *DashboardController) FocusNext(delta int) entity.WindowID {
	dc.mu.Lock()
	defer dc.mu.Unlock()

	ids := entity.LeafIDs(dc.dashboard.Layout)
	if len(ids) == 0 {
		return dc.focused
	}
	idx := 0
	for i, id := range ids {
		if id == dc.focused {
			idx = i
			break
		}
	}
	n := len(ids)
	dc.focused = ids[((idx+delta)%n+n)%n]
	return dc.focused
}

// FocusDirection moves focus to the nearest window in direction, measured
// on the layout as drawn into area.
func (dc *DashboardController) FocusDirection(direction usecase.NavigateDirection, area layout.Rect) bool {
	dc.mu.Lock()
	defer dc.mu.Unlock()

	out, err := dc.focusUC.Navigate(dc.ctx, usecase.FocusMoveInput{
		ActiveWindowID: dc.focused,
		WindowRects:    layout.WindowRects(dc.dashboard.Layout, area),
		Direction:      direction,
	})
	if err != nil || !out.Found {
		return false
	}
	dc.focused = out.TargetWindowID
	return true
}

// Dispatch applies action to the current state.
func (dc *DashboardController) Dispatch(action usecase.Action) error {
	_, err := dc.apply(action, nil)
	return err
}

// SelectContent binds key to id.
func (dc *DashboardController) SelectContent(id entity.WindowID, key string) error {
	return dc.Dispatch(usecase.SelectContentAction{WindowID: id, Key: key})
}

// CycleContent binds the catalog entry delta steps away from id's current
// content.
func (dc *DashboardController) CycleContent(id entity.WindowID, delta int) error {
	if dc.contentUC == nil {
		return nil
	}
	current, _ := dc.Dashboard().ContentFor(id)
	next, err := dc.contentUC.Cycle(dc.ctx, current, delta)
	if err != nil {
		dc.reject("cycle_content", err)
		return err
	}
	return dc.SelectContent(id, next)
}

// Split splits id, deriving its path from the current tree. The new window
// takes focus.
func (dc *DashboardController) Split(id entity.WindowID, direction entity.Direction) error {
	d := dc.Dashboard()
	path, _ := entity.PathTo(d.Layout, id)
	next, err := dc.apply(usecase.AddSplitAction{TargetID: id, Path: path, Direction: direction}, nil)
	if err != nil {
		return err
	}
	dc.focusNewest(d, next)
	return nil
}

// AddCorner adds a window beside the whole layout. The new window takes focus.
func (dc *DashboardController) AddCorner() error {
	d := dc.Dashboard()
	next, err := dc.apply(usecase.AddCornerAction{}, nil)
	if err != nil {
		return err
	}
	dc.focusNewest(d, next)
	return nil
}

// Close closes id, deriving its path from the current tree. Focus moves into
// the promoted sibling when id had focus.
func (dc *DashboardController) Close(id entity.WindowID) error {
	d := dc.Dashboard()
	path, _ := entity.PathTo(d.Layout, id)
	heir := siblingLeaf(d.Layout, path)

	_, err := dc.apply(usecase.CloseWindowAction{WindowID: id, Path: path}, func() {
		if dc.focused == id && heir != "" {
			dc.focused = heir
		}
	})
	return err
}

// ToggleMaximize maximizes or restores id.
func (dc *DashboardController) ToggleMaximize(id entity.WindowID) error {
	_, err := dc.apply(usecase.ToggleMaximizeAction{WindowID: id}, func() {
		dc.focused = id
	})
	return err
}

// AutoArrange rebuilds the layout into equal columns.
func (dc *DashboardController) AutoArrange() error {
	return dc.Dispatch(usecase.AutoArrangeAction{})
}

// LayoutChanged accepts a tree edited by the rendering layer.
func (dc *DashboardController) LayoutChanged(tree entity.LayoutNode) error {
	return dc.Dispatch(usecase.LayoutChangedAction{Layout: tree})
}

// Resize moves the divider next to id and feeds the resulting tree back
// through LayoutChanged.
func (dc *DashboardController) Resize(id entity.WindowID, direction usecase.ResizeDirection) error {
	dc.mu.RLock()
	d := dc.dashboard
	settings := dc.resize
	dc.mu.RUnlock()

	if d.IsMaximized() {
		dc.reject("resize", usecase.ErrWindowMaximized)
		return usecase.ErrWindowMaximized
	}
	tree, err := usecase.ResizedLayout(usecase.ResizeWindowInput{
		Layout:      d.Layout,
		WindowID:    id,
		Direction:   direction,
		StepPercent: settings.StepPercent,
		MinPercent:  settings.MinPercent,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrNothingToResize) {
			dc.logger.Debug().Err(err).Msg("resize ignored")
			return err
		}
		dc.reject("resize", err)
		return err
	}
	return dc.LayoutChanged(tree)
}

// Refresh looks up id's content again and reports the outcome.
func (dc *DashboardController) Refresh(id entity.WindowID) (*entity.Company, error) {
	key, ok := dc.Dashboard().ContentFor(id)
	if !ok {
		err := fmt.Errorf("%w: %s", usecase.ErrWindowNotActive, id)
		dc.reject("refresh", err)
		return nil, err
	}
	if dc.contentUC == nil {
		dc.notify("No content source configured", port.NotificationWarning)
		return nil, ErrNoContentSource
	}

	company, err := dc.contentUC.Describe(dc.ctx, key)
	if err != nil {
		if errors.Is(err, port.ErrContentNotFound) {
			dc.notify(fmt.Sprintf("No data for %s", key), port.NotificationWarning)
		} else {
			dc.reject("refresh", err)
		}
		return nil, err
	}
	dc.notify(fmt.Sprintf("Refreshed %s", company.Ticker), port.NotificationInfo)
	return company, nil
}

// Copy puts id's company name and URL on the clipboard, or just its ticker
// when the catalog has no record.
func (dc *DashboardController) Copy(id entity.WindowID) error {
	dc.mu.RLock()
	clipboard := dc.clipboard
	key, ok := dc.dashboard.ContentFor(id)
	dc.mu.RUnlock()

	if !ok {
		err := fmt.Errorf("%w: %s", usecase.ErrWindowNotActive, id)
		dc.reject("copy", err)
		return err
	}
	if clipboard == nil {
		dc.notify("Clipboard unavailable", port.NotificationWarning)
		return nil
	}

	text := key
	if dc.contentUC != nil {
		if company, err := dc.contentUC.Describe(dc.ctx, key); err == nil {
			text = strings.TrimSpace(company.DisplayName() + " " + company.CompanyURL)
		}
	}
	ctx := logging.WithWindowID(dc.ctx, string(id))
	if err := clipboard.WriteText(ctx, text); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("copy failed")
		dc.notify(fmt.Sprintf("Copy failed: %v", err), port.NotificationError)
		return err
	}
	dc.notify(fmt.Sprintf("Copied %s", key), port.NotificationSuccess)
	return nil
}

// Reset returns to the initial three-window dashboard.
func (dc *DashboardController) Reset() {
	d := dc.windowsUC.NewDashboard()

	dc.mu.Lock()
	d.Revision = dc.dashboard.Revision + 1
	dc.dashboard = d
	if ids := entity.LeafIDs(d.Layout); len(ids) > 0 {
		dc.focused = ids[0]
	}
	callback := dc.onChange
	dc.mu.Unlock()

	dc.logger.Info().Msg("dashboard reset")
	if callback != nil {
		callback(d)
	}
}

// apply runs action against the current state under the lock. onAccept runs
// with the lock held after the new state is stored.
func (dc *DashboardController) apply(action usecase.Action, onAccept func()) (entity.Dashboard, error) {
	dc.mu.Lock()
	current := dc.dashboard
	next, err := dc.windowsUC.Apply(dc.ctx, current, action)
	if err != nil {
		dc.mu.Unlock()
		dc.reject(actionName(action), err)
		return current, err
	}
	dc.dashboard = next
	if onAccept != nil {
		onAccept()
	}
	if _, ok := entity.PathTo(next.Layout, dc.focused); !ok {
		if ids := entity.LeafIDs(next.Layout); len(ids) > 0 {
			dc.focused = ids[0]
		}
	}
	callback := dc.onChange
	dc.mu.Unlock()

	dc.logger.Debug().
		Str("action", actionName(action)).
		Uint64("revision", next.Revision).
		Str("layout", entity.FormatTree(next.Layout)).
		Msg("action applied")

	if callback != nil {
		callback(next)
	}
	return next, nil
}

func actionName(action usecase.Action) string {
	if action == nil {
		return "nil"
	}
	return action.ActionName()
}

func (dc *DashboardController) focusNewest(before, after entity.Dashboard) {
	for _, id := range after.Active {
		if !before.IsActive(id) {
			dc.SetFocus(id)
			return
		}
	}
}

func (dc *DashboardController) reject(action string, err error) {
	dc.logger.Warn().Err(err).Str("action", action).Msg("action rejected")

	notifType := port.NotificationWarning
	if errors.Is(err, usecase.ErrStructuralInconsistency) || errors.Is(err, usecase.ErrUnknownAction) {
		notifType = port.NotificationError
	}
	dc.notify(usecase.RejectionMessage(err), notifType)
}

func (dc *DashboardController) notify(message string, notifType port.NotificationType) {
	if dc.notifier == nil {
		return
	}
	dc.notifier.Show(dc.ctx, port.Notice{Message: message, Type: notifType})
}

// siblingLeaf returns the first leaf of the subtree that would be promoted
// if the node at path were closed.
func siblingLeaf(tree entity.LayoutNode, path entity.Path) entity.WindowID {
	parentPath, ok := path.Parent()
	if !ok {
		return ""
	}
	node, ok := entity.NodeAtPath(tree, parentPath)
	if !ok {
		return ""
	}
	branch, ok := node.(entity.Branch)
	if !ok {
		return ""
	}
	last, _ := path.Last()
	ids := entity.LeafIDs(branch.Child(last.Other()))
	if len(ids) == 0 {
		return ""
	}
	return ids[0]
}
