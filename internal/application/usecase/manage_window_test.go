package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/mosaic/internal/domain/entity"
)

func newTestUseCase() *ManageWindowsUseCase {
	return NewManageWindowsUseCase(DefaultLayoutPolicy())
}

func mustPath(t *testing.T, d entity.Dashboard, id entity.WindowID) entity.Path {
	t.Helper()
	path, ok := entity.PathTo(d.Layout, id)
	require.True(t, ok, "window %s not in layout %s", id, entity.FormatTree(d.Layout))
	return path
}

func fiveWindowDashboard(t *testing.T, uc *ManageWindowsUseCase) entity.Dashboard {
	t.Helper()
	ctx := context.Background()
	d := uc.NewDashboard()
	for d.WindowCount() < entity.MaxWindows {
		out, err := uc.AddCorner(ctx, d)
		require.NoError(t, err)
		d = out.Dashboard
	}
	return d
}

func TestManageWindows_SplitThenCloseRestoresLayout(t *testing.T) {
	uc := newTestUseCase()
	ctx := context.Background()
	d := uc.NewDashboard()

	w2Path := mustPath(t, d, "window2")
	out, err := uc.Split(ctx, SplitWindowInput{Dashboard: d, TargetID: "window2", Path: w2Path})
	require.NoError(t, err)

	assert.Equal(t, entity.WindowID("window4"), out.NewWindowID)
	assert.Equal(t, 4, entity.CountLeaves(out.Dashboard.Layout))
	assert.Equal(t, []entity.WindowID{"window1", "window2", "window3", "window4"}, out.Dashboard.Active)
	assert.Equal(t, "GOOGL", out.Dashboard.Bindings["window4"])

	node, ok := entity.NodeAtPath(out.Dashboard.Layout, w2Path)
	require.True(t, ok)
	assert.Equal(t, entity.Branch{
		Direction:       entity.DirectionRow,
		First:           entity.Leaf{ID: "window2"},
		Second:          entity.Leaf{ID: "window4"},
		SplitPercentage: 50,
	}, node)
	assert.True(t, out.NewPath.Equal(mustPath(t, out.Dashboard, "window4")))

	// Input is untouched.
	assert.Len(t, d.Active, 3)
	assert.NotContains(t, d.Bindings, entity.WindowID("window4"))

	closed, err := uc.Close(ctx, out.Dashboard, "window4", out.NewPath)
	require.NoError(t, err)

	assert.True(t, entity.SameShape(d.Layout, closed.Dashboard.Layout),
		"got %s", entity.FormatTree(closed.Dashboard.Layout))
	assert.Equal(t, []entity.WindowID{"window1", "window2", "window3"}, closed.Dashboard.Active)
	assert.NotContains(t, closed.Dashboard.Bindings, entity.WindowID("window4"))
	assert.Equal(t, entity.Leaf{ID: "window2"}, closed.Promoted)
	require.NoError(t, closed.Dashboard.Validate())
}

func TestManageWindows_SplitInactiveWindow(t *testing.T) {
	uc := newTestUseCase()
	d := uc.NewDashboard()

	_, err := uc.Split(context.Background(), SplitWindowInput{Dashboard: d, TargetID: "window5", Path: entity.Path{}})
	require.ErrorIs(t, err, ErrWindowNotActive)
	assert.NotErrorIs(t, err, ErrStalePath)
	assert.NotEqual(t, RejectionMessage(ErrStalePath), RejectionMessage(err))
}

func TestManageWindows_SplitColumn(t *testing.T) {
	uc := newTestUseCase()
	d := uc.NewDashboard()

	out, err := uc.Split(context.Background(), SplitWindowInput{
		Dashboard: d,
		TargetID:  "window1",
		Path:      mustPath(t, d, "window1"),
		Direction: entity.DirectionColumn,
	})
	require.NoError(t, err)

	node, ok := entity.NodeAtPath(out.Dashboard.Layout, entity.Path{entity.SideFirst})
	require.True(t, ok)
	assert.Equal(t, entity.DirectionColumn, node.(entity.Branch).Direction)
}

func TestManageWindows_CapacityExceeded(t *testing.T) {
	uc := newTestUseCase()
	ctx := context.Background()
	d := fiveWindowDashboard(t, uc)

	require.Equal(t, entity.MaxWindows, entity.CountLeaves(d.Layout))
	assert.False(t, d.CanAddWindow())

	_, err := uc.Split(ctx, SplitWindowInput{Dashboard: d, TargetID: "window1", Path: mustPath(t, d, "window1")})
	require.ErrorIs(t, err, ErrCapacityExceeded)

	_, err = uc.AddCorner(ctx, d)
	require.ErrorIs(t, err, ErrCapacityExceeded)

	after, err := uc.Apply(ctx, d, AddCornerAction{})
	require.ErrorIs(t, err, ErrCapacityExceeded)
	assert.Equal(t, d, after)
	assert.Equal(t, "Maximum number of windows (5) reached!", RejectionMessage(err))
}

func TestManageWindows_AddCorner(t *testing.T) {
	uc := newTestUseCase()
	d := uc.NewDashboard()

	out, err := uc.AddCorner(context.Background(), d)
	require.NoError(t, err)

	root, ok := out.Dashboard.Layout.(entity.Branch)
	require.True(t, ok)
	assert.Equal(t, float64(80), root.SplitPercentage)
	assert.True(t, entity.Equal(d.Layout, root.First))
	assert.Equal(t, entity.Leaf{ID: "window4"}, root.Second)
	assert.True(t, out.NewPath.Equal(entity.Path{entity.SideSecond}))
}

func TestManageWindows_NewWindowTakesLowestFreeSlot(t *testing.T) {
	uc := newTestUseCase()
	ctx := context.Background()
	d := uc.NewDashboard()

	closed, err := uc.Close(ctx, d, "window1", mustPath(t, d, "window1"))
	require.NoError(t, err)
	d = closed.Dashboard

	out, err := uc.AddCorner(ctx, d)
	require.NoError(t, err)
	assert.Equal(t, entity.WindowID("window1"), out.NewWindowID)
	assert.Equal(t, "AAPL", out.Dashboard.Bindings["window1"])
	assert.Equal(t, []entity.WindowID{"window2", "window3", "window1"}, out.Dashboard.Active)
}

func TestManageWindows_FallbackContent(t *testing.T) {
	policy := DefaultLayoutPolicy()
	delete(policy.DefaultContent, "window4")
	uc := NewManageWindowsUseCase(policy)

	out, err := uc.AddCorner(context.Background(), uc.NewDashboard())
	require.NoError(t, err)
	assert.Equal(t, "TSLA", out.Dashboard.Bindings["window4"])
}

func TestManageWindows_ClosePromotesSiblingSubtree(t *testing.T) {
	uc := newTestUseCase()
	d := uc.NewDashboard()

	out, err := uc.Close(context.Background(), d, "window1", mustPath(t, d, "window1"))
	require.NoError(t, err)

	assert.Equal(t, "row(window2, window3 @50)", entity.FormatTree(out.Dashboard.Layout))
	assert.Equal(t, entity.Depth(d.Layout)-1, entity.Depth(out.Dashboard.Layout))
	assert.Equal(t, []entity.WindowID{"window2", "window3"}, out.Dashboard.Active)
}

func TestManageWindows_CloseRejections(t *testing.T) {
	uc := newTestUseCase()
	ctx := context.Background()
	d := uc.NewDashboard()

	single := entity.Dashboard{
		Layout:   entity.Leaf{ID: "window1"},
		Active:   []entity.WindowID{"window1"},
		Bindings: map[entity.WindowID]string{"window1": "AAPL"},
	}

	tests := []struct {
		name    string
		d       entity.Dashboard
		id      entity.WindowID
		path    entity.Path
		wantErr error
	}{
		{name: "last window", d: single, id: "window1", path: entity.Path{}, wantErr: ErrLastWindow},
		{name: "stale path", d: d, id: "window3", path: entity.Path{entity.SideFirst}, wantErr: ErrStalePath},
		{name: "path past leaf", d: d, id: "window1", path: entity.Path{entity.SideFirst, entity.SideFirst}, wantErr: ErrStalePath},
		{name: "inactive window", d: d, id: "window5", path: entity.Path{entity.SideFirst}, wantErr: ErrWindowNotActive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			after, err := uc.Apply(ctx, tt.d, CloseWindowAction{WindowID: tt.id, Path: tt.path})
			require.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, tt.d, after)
			assert.Equal(t, entity.CountLeaves(tt.d.Layout), entity.CountLeaves(after.Layout))
		})
	}
}

func TestManageWindows_StalePathAfterMutation(t *testing.T) {
	uc := newTestUseCase()
	ctx := context.Background()
	d := uc.NewDashboard()

	w3Path := mustPath(t, d, "window3")
	closed, err := uc.Close(ctx, d, "window1", mustPath(t, d, "window1"))
	require.NoError(t, err)

	_, err = uc.Close(ctx, closed.Dashboard, "window3", w3Path)
	require.ErrorIs(t, err, ErrStalePath)

	_, err = uc.Split(ctx, SplitWindowInput{Dashboard: closed.Dashboard, TargetID: "window3", Path: w3Path})
	require.ErrorIs(t, err, ErrStalePath)
}

func TestManageWindows_MaximizeRestore(t *testing.T) {
	uc := newTestUseCase()
	ctx := context.Background()
	d := uc.NewDashboard()

	maxed, err := uc.ToggleMaximize(ctx, d, "window2")
	require.NoError(t, err)
	assert.True(t, maxed.Maximized)
	assert.Equal(t, entity.Leaf{ID: "window2"}, maxed.Dashboard.Layout)
	require.NoError(t, maxed.Dashboard.Validate())

	_, err = uc.ToggleMaximize(ctx, maxed.Dashboard, "window3")
	require.ErrorIs(t, err, ErrAnotherWindowMaximized)

	restored, err := uc.ToggleMaximize(ctx, maxed.Dashboard, "window2")
	require.NoError(t, err)
	assert.False(t, restored.Maximized)
	assert.Equal(t, d.Layout, restored.Dashboard.Layout)
	assert.Nil(t, restored.Dashboard.Maximized)
	assert.Equal(t, d.Revision+2, restored.Dashboard.Revision)
}

func TestManageWindows_StructuralActionsBlockedWhileMaximized(t *testing.T) {
	uc := newTestUseCase()
	ctx := context.Background()
	d := uc.NewDashboard()

	out, err := uc.ToggleMaximize(ctx, d, "window1")
	require.NoError(t, err)
	maxed := out.Dashboard

	actions := []Action{
		AddSplitAction{TargetID: "window1", Path: entity.Path{}},
		AddCornerAction{},
		CloseWindowAction{WindowID: "window1", Path: entity.Path{}},
		AutoArrangeAction{},
		LayoutChangedAction{Layout: d.Layout},
	}
	for _, action := range actions {
		t.Run(action.ActionName(), func(t *testing.T) {
			after, err := uc.Apply(ctx, maxed, action)
			require.ErrorIs(t, err, ErrWindowMaximized)
			assert.Equal(t, maxed, after)
		})
	}

	selected, err := uc.Apply(ctx, maxed, SelectContentAction{WindowID: "window3", Key: "META"})
	require.NoError(t, err)
	assert.Equal(t, "META", selected.Bindings["window3"])
}

func TestArrangeRow(t *testing.T) {
	tests := []struct {
		name string
		ids  []entity.WindowID
		want string
	}{
		{name: "empty", ids: nil, want: "<empty>"},
		{name: "one", ids: []entity.WindowID{"window1"}, want: "window1"},
		{name: "two", ids: []entity.WindowID{"window1", "window2"}, want: "row(window1, window2 @50)"},
		{
			name: "three matches default",
			ids:  []entity.WindowID{"window1", "window2", "window3"},
			want: "row(window1, row(window2, window3 @50) @33)",
		},
		{
			name: "five",
			ids:  []entity.WindowID{"window1", "window2", "window3", "window4", "window5"},
			want: "row(window1, row(window2, row(window3, row(window4, window5 @50) @33) @25) @20)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, entity.FormatTree(ArrangeRow(tt.ids)))
		})
	}
}

func TestManageWindows_AutoArrangeIgnoresPreviousShape(t *testing.T) {
	uc := newTestUseCase()
	ctx := context.Background()
	d := uc.NewDashboard()

	skewed := entity.Branch{
		Direction: entity.DirectionColumn,
		First: entity.Branch{
			Direction:       entity.DirectionColumn,
			First:           entity.Leaf{ID: "window3"},
			Second:          entity.Leaf{ID: "window1"},
			SplitPercentage: 90,
		},
		Second:          entity.Leaf{ID: "window2"},
		SplitPercentage: 10,
	}
	d, err := uc.ReplaceLayout(ctx, d, skewed)
	require.NoError(t, err)

	arranged, err := uc.AutoArrange(ctx, d)
	require.NoError(t, err)
	assert.Equal(t, uc.NewDashboard().Layout, arranged.Layout)
}

func TestManageWindows_ReplaceLayout(t *testing.T) {
	uc := newTestUseCase()
	ctx := context.Background()
	d := uc.NewDashboard()

	same, err := uc.ReplaceLayout(ctx, d, nil)
	require.NoError(t, err)
	assert.Equal(t, d, same)

	_, err = uc.ReplaceLayout(ctx, d, entity.Branch{
		First:           entity.Leaf{ID: "window1"},
		Second:          entity.Leaf{ID: "window2"},
		SplitPercentage: 50,
	})
	require.ErrorIs(t, err, ErrLayoutMismatch)

	dragged := d.Layout.(entity.Branch)
	dragged.SplitPercentage = 60
	next, err := uc.ReplaceLayout(ctx, d, dragged)
	require.NoError(t, err)
	assert.Equal(t, float64(60), next.Layout.(entity.Branch).SplitPercentage)
	assert.Equal(t, d.Revision+1, next.Revision)
}

func TestManageWindows_SelectContent(t *testing.T) {
	uc := newTestUseCase()
	ctx := context.Background()
	d := uc.NewDashboard()

	next, err := uc.SelectContent(ctx, d, "window1", "  IBM ")
	require.NoError(t, err)
	assert.Equal(t, "IBM", next.Bindings["window1"])
	assert.Equal(t, "AAPL", d.Bindings["window1"])

	_, err = uc.SelectContent(ctx, d, "window5", "IBM")
	require.ErrorIs(t, err, ErrWindowNotActive)

	_, err = uc.SelectContent(ctx, d, "window1", " ")
	require.ErrorIs(t, err, ErrEmptyContentKey)
}

func TestManageWindows_SetPolicy(t *testing.T) {
	uc := newTestUseCase()
	policy := DefaultLayoutPolicy()
	policy.CornerSplitPercentage = 70
	uc.SetPolicy(policy)

	out, err := uc.AddCorner(context.Background(), uc.NewDashboard())
	require.NoError(t, err)
	assert.Equal(t, float64(70), out.Dashboard.Layout.(entity.Branch).SplitPercentage)
}
