package styles

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// KeyMap defines keybindings that can be rendered as help.
type KeyMap interface {
	ShortHelp() []key.Binding
	FullHelp() [][]key.Binding
}

// DashboardKeyMap defines keybindings for the window dashboard.
type DashboardKeyMap struct {
	FocusNext  key.Binding
	FocusPrev  key.Binding
	FocusLeft  key.Binding
	FocusRight key.Binding
	FocusUp    key.Binding
	FocusDown  key.Binding

	SplitRow    key.Binding
	SplitColumn key.Binding
	AddCorner   key.Binding
	Close       key.Binding
	Maximize    key.Binding
	Arrange     key.Binding

	NextContent key.Binding
	PrevContent key.Binding
	Refresh     key.Binding
	Copy        key.Binding

	Grow        key.Binding
	Shrink      key.Binding
	ResizeLeft  key.Binding
	ResizeRight key.Binding
	ResizeUp    key.Binding
	ResizeDown  key.Binding

	Reset key.Binding
	Help  key.Binding
	Quit  key.Binding
}

// AddBindings returns the bindings that open a window.
func (k DashboardKeyMap) AddBindings() []key.Binding {
	return []key.Binding{k.SplitRow, k.SplitColumn, k.AddCorner}
}

// ShortHelp returns keybindings to show in compact help.
func (k DashboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.FocusNext, k.SplitRow, k.AddCorner, k.Close, k.Maximize, k.Help, k.Quit}
}

// FullHelp returns keybindings for expanded help view.
func (k DashboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.FocusNext, k.FocusPrev, k.FocusLeft, k.FocusRight, k.FocusUp, k.FocusDown},
		{k.SplitRow, k.SplitColumn, k.AddCorner, k.Close, k.Maximize, k.Arrange},
		{k.NextContent, k.PrevContent, k.Refresh, k.Copy, k.Reset},
		{k.Grow, k.Shrink, k.ResizeLeft, k.ResizeRight, k.ResizeUp, k.ResizeDown},
		{k.Help, k.Quit},
	}
}

// DefaultDashboardKeyMap returns default dashboard keybindings.
func DefaultDashboardKeyMap() DashboardKeyMap {
	return DashboardKeyMap{
		FocusNext: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next window"),
		),
		FocusPrev: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev window"),
		),
		FocusLeft: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "focus left"),
		),
		FocusRight: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "focus right"),
		),
		FocusUp: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "focus up"),
		),
		FocusDown: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "focus down"),
		),
		SplitRow: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "split"),
		),
		SplitColumn: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "split below"),
		),
		AddCorner: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add window"),
		),
		Close: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "close"),
		),
		Maximize: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "maximize"),
		),
		Arrange: key.NewBinding(
			key.WithKeys("="),
			key.WithHelp("=", "auto-arrange"),
		),
		NextContent: key.NewBinding(
			key.WithKeys("n", "]"),
			key.WithHelp("n", "next company"),
		),
		PrevContent: key.NewBinding(
			key.WithKeys("p", "["),
			key.WithHelp("p", "prev company"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy"),
		),
		Grow: key.NewBinding(
			key.WithKeys("+"),
			key.WithHelp("+", "grow"),
		),
		Shrink: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "shrink"),
		),
		ResizeLeft: key.NewBinding(
			key.WithKeys("H"),
			key.WithHelp("H", "divider left"),
		),
		ResizeRight: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "divider right"),
		),
		ResizeUp: key.NewBinding(
			key.WithKeys("K"),
			key.WithHelp("K", "divider up"),
		),
		ResizeDown: key.NewBinding(
			key.WithKeys("J"),
			key.WithHelp("J", "divider down"),
		),
		Reset: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", "reset"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// TableKeyMap defines keybindings for read-only tables.
type TableKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Quit key.Binding
}

// ShortHelp returns keybindings to show in compact help.
func (k TableKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Quit}
}

// FullHelp returns keybindings for expanded help view.
func (k TableKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Quit}}
}

// DefaultTableKeyMap returns default table keybindings.
func DefaultTableKeyMap() TableKeyMap {
	return TableKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// NewStyledHelp creates a themed help model.
func NewStyledHelp(theme *Theme) help.Model {
	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().Foreground(theme.Accent)
	h.Styles.ShortDesc = lipgloss.NewStyle().Foreground(theme.Muted)
	h.Styles.ShortSeparator = lipgloss.NewStyle().Foreground(theme.Border)
	h.Styles.FullKey = lipgloss.NewStyle().Foreground(theme.Accent)
	h.Styles.FullDesc = lipgloss.NewStyle().Foreground(theme.Text)
	h.Styles.FullSeparator = lipgloss.NewStyle().Foreground(theme.Border)
	return h
}
