package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/mosaic/internal/domain/entity"
)

// ErrUnknownAction is returned by Apply for an action type it does not handle.
var ErrUnknownAction = errors.New("unknown action")

// Action is a single user request against the dashboard.
type Action interface {
	ActionName() string
}

// SelectContentAction binds Key to WindowID.
type SelectContentAction struct {
	WindowID entity.WindowID
	Key      string
}

// AddSplitAction splits TargetID, found at Path, adding a new window beside it.
type AddSplitAction struct {
	TargetID  entity.WindowID
	Path      entity.Path
	Direction entity.Direction
}

// AddCornerAction adds a new window beside the whole layout.
type AddCornerAction struct{}

// CloseWindowAction closes WindowID, found at Path.
type CloseWindowAction struct {
	WindowID entity.WindowID
	Path     entity.Path
}

// ToggleMaximizeAction maximizes or restores WindowID.
type ToggleMaximizeAction struct {
	WindowID entity.WindowID
}

// AutoArrangeAction rebuilds the layout into equal columns.
type AutoArrangeAction struct{}

// LayoutChangedAction carries a tree edited by the rendering layer.
type LayoutChangedAction struct {
	Layout entity.LayoutNode
}

func (SelectContentAction) ActionName() string  { return "select_content" }
func (AddSplitAction) ActionName() string       { return "add_split" }
func (AddCornerAction) ActionName() string      { return "add_corner" }
func (CloseWindowAction) ActionName() string    { return "close_window" }
func (ToggleMaximizeAction) ActionName() string { return "toggle_maximize" }
func (AutoArrangeAction) ActionName() string    { return "auto_arrange" }
func (LayoutChangedAction) ActionName() string  { return "layout_changed" }

// Apply is the single transition function of the engine: it returns the
// dashboard that results from action, or d itself together with the reason
// the action was rejected.
func (uc *ManageWindowsUseCase) Apply(ctx context.Context, d entity.Dashboard, action Action) (entity.Dashboard, error) {
	switch a := action.(type) {
	case SelectContentAction:
		return uc.SelectContent(ctx, d, a.WindowID, a.Key)
	case AddSplitAction:
		out, err := uc.Split(ctx, SplitWindowInput{
			Dashboard: d,
			TargetID:  a.TargetID,
			Path:      a.Path,
			Direction: a.Direction,
		})
		if err != nil {
			return d, err
		}
		return out.Dashboard, nil
	case AddCornerAction:
		out, err := uc.AddCorner(ctx, d)
		if err != nil {
			return d, err
		}
		return out.Dashboard, nil
	case CloseWindowAction:
		out, err := uc.Close(ctx, d, a.WindowID, a.Path)
		if err != nil {
			return d, err
		}
		return out.Dashboard, nil
	case ToggleMaximizeAction:
		out, err := uc.ToggleMaximize(ctx, d, a.WindowID)
		if err != nil {
			return d, err
		}
		return out.Dashboard, nil
	case AutoArrangeAction:
		return uc.AutoArrange(ctx, d)
	case LayoutChangedAction:
		return uc.ReplaceLayout(ctx, d, a.Layout)
	case nil:
		return d, fmt.Errorf("%w: nil", ErrUnknownAction)
	default:
		return d, fmt.Errorf("%w: %s", ErrUnknownAction, action.ActionName())
	}
}

// RejectionMessage turns an Apply error into the notice shown to the user.
func RejectionMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrCapacityExceeded):
		return fmt.Sprintf("Maximum number of windows (%d) reached!", entity.MaxWindows)
	case errors.Is(err, ErrLastWindow):
		return "Cannot close the last remaining window"
	case errors.Is(err, ErrWindowMaximized):
		return "Restore the maximized window first"
	case errors.Is(err, ErrAnotherWindowMaximized):
		return "Another window is already maximized"
	case errors.Is(err, ErrStalePath):
		return "Layout changed, please retry"
	default:
		return err.Error()
	}
}
