package usecase

import (
	"cmp"
	"context"
	"errors"
	"slices"

	"github.com/bnema/mosaic/internal/domain/entity"
	"github.com/bnema/mosaic/internal/logging"
)

// NavigateDirection is a screen direction for focus moves.
type NavigateDirection string

const (
	NavLeft  NavigateDirection = "left"
	NavRight NavigateDirection = "right"
	NavUp    NavigateDirection = "up"
	NavDown  NavigateDirection = "down"
)

type FocusMoveInput struct {
	ActiveWindowID entity.WindowID
	// WindowRects are the rendered rectangles of every visible window.
	WindowRects []entity.WindowRect
	Direction   NavigateDirection
}

type FocusMoveOutput struct {
	TargetWindowID entity.WindowID
	Found          bool
}

// NavigateFocusUseCase moves focus between windows by screen position.
type NavigateFocusUseCase struct{}

func NewNavigateFocusUseCase() *NavigateFocusUseCase {
	return &NavigateFocusUseCase{}
}

// Navigate picks the nearest window in the given direction.
// Windows sharing a row (left/right) or column (up/down) with the active one
// come first; ties go to the shortest distance along the direction, then
// across it.
func (uc *NavigateFocusUseCase) Navigate(ctx context.Context, input FocusMoveInput) (*FocusMoveOutput, error) {
	if uc == nil {
		return nil, errors.New("navigate focus use case is nil")
	}
	log := logging.FromContext(ctx)

	i := slices.IndexFunc(input.WindowRects, func(r entity.WindowRect) bool {
		return r.WindowID == input.ActiveWindowID
	})
	if i < 0 {
		log.Debug().Str("active", string(input.ActiveWindowID)).Msg("focus move: active window not visible")
		return &FocusMoveOutput{}, nil
	}
	active := input.WindowRects[i]

	var hits []focusHit
	for _, rect := range input.WindowRects {
		if rect.WindowID == active.WindowID || rect.Empty() {
			continue
		}
		if hit, ok := measure(active, rect, input.Direction); ok {
			hits = append(hits, hit)
		}
	}
	if len(hits) == 0 {
		return &FocusMoveOutput{}, nil
	}

	best := slices.MinFunc(hits, compareHits)
	log.Debug().
		Str("direction", string(input.Direction)).
		Str("from", string(active.WindowID)).
		Str("to", string(best.windowID)).
		Msg("focus move")
	return &FocusMoveOutput{TargetWindowID: best.windowID, Found: true}, nil
}

// focusHit is a window lying in the requested direction.
type focusHit struct {
	windowID entity.WindowID
	aligned  bool
	along    int
	across   int
}

func compareHits(a, b focusHit) int {
	if a.aligned != b.aligned {
		if a.aligned {
			return -1
		}
		return 1
	}
	return cmp.Or(cmp.Compare(a.along, b.along), cmp.Compare(a.across, b.across))
}

// measure reports where rect sits relative to active, center to center.
// ok is false when rect is not in direction d.
func measure(active, rect entity.WindowRect, d NavigateDirection) (focusHit, bool) {
	ax, ay := active.Center()
	rx, ry := rect.Center()
	dx, dy := rx-ax, ry-ay

	hit := focusHit{windowID: rect.WindowID}
	var ahead bool
	switch d {
	case NavLeft, NavRight:
		ahead = (d == NavLeft && dx < 0) || (d == NavRight && dx > 0)
		hit.along, hit.across = abs(dx), abs(dy)
		hit.aligned = active.OverlapsVertically(rect)
	case NavUp, NavDown:
		ahead = (d == NavUp && dy < 0) || (d == NavDown && dy > 0)
		hit.along, hit.across = abs(dy), abs(dx)
		hit.aligned = active.OverlapsHorizontally(rect)
	}
	return hit, ahead
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
