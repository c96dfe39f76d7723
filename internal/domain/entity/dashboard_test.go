package entity

import (
	"errors"
	"testing"
)

func tickerFor(id WindowID) string {
	return map[WindowID]string{"window1": "AAPL", "window2": "NVDA", "window3": "MSFT"}[id]
}

func TestNewDefaultDashboard(t *testing.T) {
	d := NewDefaultDashboard(tickerFor)

	if err := d.Validate(); err != nil {
		t.Fatalf("default dashboard invalid: %v", err)
	}
	if want := "row(window1, row(window2, window3 @50) @33)"; FormatTree(d.Layout) != want {
		t.Fatalf("layout = %s, want %s", FormatTree(d.Layout), want)
	}
	if key, _ := d.ContentFor("window2"); key != "NVDA" {
		t.Fatalf("window2 content = %q, want NVDA", key)
	}
	if !d.CanAddWindow() {
		t.Fatal("expected room for more windows")
	}
	if id, ok := d.NextFreeWindowID(); !ok || id != "window4" {
		t.Fatalf("next free = %s, %v", id, ok)
	}
}

func TestDashboard_CloneIsIndependent(t *testing.T) {
	d := NewDefaultDashboard(tickerFor)
	d.Maximized = &MaximizeState{WindowID: "window1", SavedLayout: d.Layout}

	c := d.Clone()
	c.Active[0] = "window5"
	c.Bindings["window1"] = "TSLA"
	c.Maximized.WindowID = "window2"

	if d.Active[0] != "window1" || d.Bindings["window1"] != "AAPL" || d.Maximized.WindowID != "window1" {
		t.Fatal("clone shares memory with original")
	}
}

func TestDashboard_Validate(t *testing.T) {
	base := NewDefaultDashboard(tickerFor)

	tests := []struct {
		name    string
		mutate  func(d *Dashboard)
		wantErr error
	}{
		{
			name:    "empty layout",
			mutate:  func(d *Dashboard) { d.Layout = nil },
			wantErr: ErrEmptyDashboard,
		},
		{
			name: "duplicate leaf",
			mutate: func(d *Dashboard) {
				d.Layout = Branch{First: Leaf{ID: "window1"}, Second: Leaf{ID: "window1"}, SplitPercentage: 50}
				d.Active = []WindowID{"window1"}
			},
			wantErr: ErrDuplicateWindow,
		},
		{
			name:    "orphan active window",
			mutate:  func(d *Dashboard) { d.Active = append(d.Active, "window4") },
			wantErr: ErrLeafCountMismatch,
		},
		{
			name:    "active set names a different window",
			mutate:  func(d *Dashboard) { d.Active = []WindowID{"window1", "window2", "window5"} },
			wantErr: ErrLeafCountMismatch,
		},
		{
			name: "maximized view shows wrong window",
			mutate: func(d *Dashboard) {
				d.Maximized = &MaximizeState{WindowID: "window2", SavedLayout: d.Layout}
				d.Layout = Leaf{ID: "window1"}
			},
			wantErr: ErrLeafCountMismatch,
		},
		{
			name: "missing child",
			mutate: func(d *Dashboard) {
				d.Layout = Branch{First: Leaf{ID: "window1"}}
				d.Active = []WindowID{"window1"}
			},
			wantErr: ErrInvalidPath,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := base.Clone()
			tt.mutate(&d)
			if err := d.Validate(); !errors.Is(err, tt.wantErr) {
				t.Fatalf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestDashboard_MaximizedUsesSavedLayoutForCounts(t *testing.T) {
	d := NewDefaultDashboard(tickerFor)
	d.Maximized = &MaximizeState{WindowID: "window2", SavedLayout: d.Layout}
	d.Layout = Leaf{ID: "window2"}

	if err := d.Validate(); err != nil {
		t.Fatalf("maximized dashboard invalid: %v", err)
	}
	if got := d.WindowCount(); got != 3 {
		t.Fatalf("WindowCount = %d, want 3", got)
	}
	if !d.IsMaximizedWindow("window2") || d.IsMaximizedWindow("window1") {
		t.Fatal("IsMaximizedWindow mismatch")
	}
}

func TestWindowID_Slot(t *testing.T) {
	tests := []struct {
		id   WindowID
		want int
	}{
		{"window1", 1},
		{"window5", 5},
		{"window6", 0},
		{"window0", 0},
		{"pane1", 0},
		{"window", 0},
	}
	for _, tt := range tests {
		if got := tt.id.Slot(); got != tt.want {
			t.Errorf("%s.Slot() = %d, want %d", tt.id, got, tt.want)
		}
	}
	if pool := WindowPool(); len(pool) != MaxWindows || pool[0] != "window1" {
		t.Fatalf("pool = %v", pool)
	}
}
