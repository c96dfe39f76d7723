package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/mosaic/internal/application/usecase"
	"github.com/bnema/mosaic/internal/domain/entity"
	"github.com/bnema/mosaic/internal/ui/controller"
)

// ErrInvalidStep is returned for a script step that cannot be parsed.
var ErrInvalidStep = errors.New("invalid layout step")

// StepKind names a scripted dashboard operation.
type StepKind string

const (
	StepSelect   StepKind = "select"   // select:<window>:<ticker>
	StepSplit    StepKind = "split"    // split:<window>[:row|column]
	StepCorner   StepKind = "corner"   // corner
	StepClose    StepKind = "close"    // close:<window>
	StepMaximize StepKind = "maximize" // maximize:<window> (toggles)
	StepArrange  StepKind = "arrange"  // arrange
	StepResize   StepKind = "resize"   // resize:<window>:<grow|shrink|left|right|up|down>
	StepReset    StepKind = "reset"    // reset
)

// Step is one parsed operation of a layout script.
type Step struct {
	Kind      StepKind
	Window    entity.WindowID
	Key       string
	Direction entity.Direction
	Resize    usecase.ResizeDirection
}

// ParseStep parses "kind[:window[:arg]]". Window ids accept the short form
// "2" for "window2".
func ParseStep(input string) (Step, error) {
	parts := strings.Split(strings.TrimSpace(input), ":")
	kind := StepKind(strings.ToLower(parts[0]))
	args := parts[1:]

	step := Step{Kind: kind}
	var err error
	switch kind {
	case StepCorner, StepArrange, StepReset:
		err = wantArgs(input, args, 0, 0)
	case StepClose, StepMaximize:
		if err = wantArgs(input, args, 1, 1); err == nil {
			step.Window, err = parseWindow(args[0])
		}
	case StepSplit:
		if err = wantArgs(input, args, 1, 2); err != nil {
			break
		}
		if step.Window, err = parseWindow(args[0]); err != nil {
			break
		}
		if len(args) == 2 {
			step.Direction, err = entity.ParseDirection(args[1])
		}
	case StepSelect:
		if err = wantArgs(input, args, 2, 2); err != nil {
			break
		}
		step.Window, err = parseWindow(args[0])
		step.Key = entity.NormalizeTicker(args[1])
		if err == nil && step.Key == "" {
			err = fmt.Errorf("%w: %q has an empty ticker", ErrInvalidStep, input)
		}
	case StepResize:
		if err = wantArgs(input, args, 2, 2); err != nil {
			break
		}
		if step.Window, err = parseWindow(args[0]); err != nil {
			break
		}
		step.Resize, err = parseResize(args[1])
	default:
		err = fmt.Errorf("%w: unknown kind %q", ErrInvalidStep, parts[0])
	}
	if err != nil {
		return Step{}, err
	}
	return step, nil
}

// ParseSteps parses each action, stopping at the first error.
func ParseSteps(inputs []string) ([]Step, error) {
	steps := make([]Step, 0, len(inputs))
	for _, input := range inputs {
		step, err := ParseStep(input)
		if err != nil {
			return nil, err
		}
		steps = append(steps, step)
	}
	return steps, nil
}

// Run applies the step through ctrl. Paths are derived from the current
// layout, the same way keyboard input is handled.
func (s Step) Run(ctrl *controller.DashboardController) error {
	switch s.Kind {
	case StepSelect:
		return ctrl.SelectContent(s.Window, s.Key)
	case StepSplit:
		return ctrl.Split(s.Window, s.Direction)
	case StepCorner:
		return ctrl.AddCorner()
	case StepClose:
		return ctrl.Close(s.Window)
	case StepMaximize:
		return ctrl.ToggleMaximize(s.Window)
	case StepArrange:
		return ctrl.AutoArrange()
	case StepResize:
		return ctrl.Resize(s.Window, s.Resize)
	case StepReset:
		ctrl.Reset()
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrInvalidStep, s.Kind)
	}
}

func (s Step) String() string {
	switch s.Kind {
	case StepSelect:
		return fmt.Sprintf("%s:%s:%s", s.Kind, s.Window, s.Key)
	case StepSplit:
		return fmt.Sprintf("%s:%s:%s", s.Kind, s.Window, s.Direction)
	case StepClose, StepMaximize:
		return fmt.Sprintf("%s:%s", s.Kind, s.Window)
	case StepResize:
		return fmt.Sprintf("%s:%s:%s", s.Kind, s.Window, s.Resize)
	default:
		return string(s.Kind)
	}
}

func wantArgs(input string, args []string, minArgs, maxArgs int) error {
	if len(args) < minArgs || len(args) > maxArgs {
		return fmt.Errorf("%w: %q takes %d to %d arguments", ErrInvalidStep, input, minArgs, maxArgs)
	}
	return nil
}

func parseWindow(s string) (entity.WindowID, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	id := entity.WindowID(s)
	if !strings.HasPrefix(s, "window") {
		id = entity.WindowID("window" + s)
	}
	if !id.Valid() {
		return "", fmt.Errorf("%w: unknown window %q", ErrInvalidStep, s)
	}
	return id, nil
}

func parseResize(s string) (usecase.ResizeDirection, error) {
	dir := usecase.ResizeDirection(strings.ToLower(strings.TrimSpace(s)))
	switch dir {
	case usecase.ResizeGrow, usecase.ResizeShrink,
		usecase.ResizeLeft, usecase.ResizeRight, usecase.ResizeUp, usecase.ResizeDown:
		return dir, nil
	default:
		return "", fmt.Errorf("%w: unknown resize direction %q", ErrInvalidStep, s)
	}
}
