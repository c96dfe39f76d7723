package usecase

import (
	"errors"
	"fmt"
	"math"

	"github.com/bnema/mosaic/internal/domain/entity"
)

// ResizeDirection indicates how a window's divider should move.
type ResizeDirection string

const (
	// ResizeGrow and ResizeShrink act on the nearest enclosing split.
	ResizeGrow   ResizeDirection = "grow"
	ResizeShrink ResizeDirection = "shrink"

	// The remaining directions move the nearest divider on their axis.
	ResizeLeft  ResizeDirection = "left"
	ResizeRight ResizeDirection = "right"
	ResizeUp    ResizeDirection = "up"
	ResizeDown  ResizeDirection = "down"
)

var ErrNothingToResize = errors.New("nothing to resize")

const (
	defaultResizeStepPercent = 5
	defaultMinSplitPercent   = 10
	splitRoundFactor         = 100.0
)

// ResizeWindowInput describes a keyboard divider move.
type ResizeWindowInput struct {
	Layout      entity.LayoutNode
	WindowID    entity.WindowID
	Direction   ResizeDirection
	StepPercent float64 // Defaults to 5 when zero
	MinPercent  float64 // Smallest share either side may keep; defaults to 10
}

// ResizedLayout returns a copy of the layout with one divider moved. It does
// not touch any dashboard: the caller feeds the result through
// LayoutChangedAction like any other externally edited tree.
func ResizedLayout(input ResizeWindowInput) (entity.LayoutNode, error) {
	path, ok := entity.PathTo(input.Layout, input.WindowID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrWindowNotActive, input.WindowID)
	}

	step := math.Abs(input.StepPercent)
	if step == 0 {
		step = defaultResizeStepPercent
	}
	minPct := input.MinPercent
	if minPct <= 0 || minPct >= 50 {
		minPct = defaultMinSplitPercent
	}

	branchPath, branch, side, ok := nearestSplit(input.Layout, path, input.Direction)
	if !ok {
		return nil, fmt.Errorf("%w: %s %s", ErrNothingToResize, input.WindowID, input.Direction)
	}

	// SplitPercentage is the share of the first child (left/top).
	var delta float64
	switch input.Direction {
	case ResizeGrow:
		delta = step
		if side == entity.SideSecond {
			delta = -step
		}
	case ResizeShrink:
		delta = -step
		if side == entity.SideSecond {
			delta = step
		}
	case ResizeRight, ResizeDown:
		delta = step
	case ResizeLeft, ResizeUp:
		delta = -step
	}

	branch.SplitPercentage = roundSplit(clampFloat64(branch.SplitPercentage+delta, minPct, 100-minPct))
	return entity.UpdateTree(input.Layout, entity.TreePatch{Path: branchPath, Replacement: branch})
}

// nearestSplit walks up from the leaf at path and returns the first branch
// that can move in direction, with the side the leaf's subtree occupies.
func nearestSplit(
	tree entity.LayoutNode,
	path entity.Path,
	direction ResizeDirection,
) (entity.Path, entity.Branch, entity.Side, bool) {
	for i := len(path) - 1; i >= 0; i-- {
		prefix := path[:i:i]
		node, ok := entity.NodeAtPath(tree, prefix)
		if !ok {
			return nil, entity.Branch{}, 0, false
		}
		branch, ok := node.(entity.Branch)
		if !ok {
			continue
		}
		if axis, constrained := axisForResize(direction); constrained && branch.Direction != axis {
			continue
		}
		return prefix, branch, path[i], true
	}
	return nil, entity.Branch{}, 0, false
}

func axisForResize(dir ResizeDirection) (entity.Direction, bool) {
	switch dir {
	case ResizeLeft, ResizeRight:
		return entity.DirectionRow, true
	case ResizeUp, ResizeDown:
		return entity.DirectionColumn, true
	default:
		return entity.DirectionRow, false
	}
}

func roundSplit(p float64) float64 {
	return math.Round(p*splitRoundFactor) / splitRoundFactor
}

func clampFloat64(v, minVal, maxVal float64) float64 {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}
