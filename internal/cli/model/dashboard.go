// Package model holds the bubbletea models behind the CLI commands.
package model

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/mosaic/internal/application/port"
	"github.com/bnema/mosaic/internal/application/usecase"
	"github.com/bnema/mosaic/internal/cli/styles"
	"github.com/bnema/mosaic/internal/domain/entity"
	"github.com/bnema/mosaic/internal/infrastructure/config"
	"github.com/bnema/mosaic/internal/infrastructure/notify"
	"github.com/bnema/mosaic/internal/logging"
	"github.com/bnema/mosaic/internal/ui/controller"
	"github.com/bnema/mosaic/internal/ui/layout"
)

const toastTickInterval = 250 * time.Millisecond

// ConfigChangedMsg carries a reloaded configuration into the model.
type ConfigChangedMsg struct {
	Config *config.Config
}

type toastTickMsg time.Time

// contentEntry caches a lookup; a nil company means the key has no record.
type contentEntry struct {
	company *entity.Company
}

// DashboardModel is the interactive tiled dashboard.
type DashboardModel struct {
	ctrl      *controller.DashboardController
	contentUC *usecase.LookupContentUseCase
	toaster   *notify.Toaster

	theme *styles.Theme
	keys  styles.DashboardKeyMap
	help  help.Model

	content map[string]contentEntry
	ticking bool
	width   int
	height  int

	ctx context.Context
}

// NewDashboardModel creates the dashboard model. contentUC and toaster may be nil.
func NewDashboardModel(
	ctx context.Context,
	theme *styles.Theme,
	ctrl *controller.DashboardController,
	contentUC *usecase.LookupContentUseCase,
	toaster *notify.Toaster,
) DashboardModel {
	m := DashboardModel{
		ctrl:      ctrl,
		contentUC: contentUC,
		toaster:   toaster,
		theme:     theme,
		keys:      styles.DefaultDashboardKeyMap(),
		help:      styles.NewStyledHelp(theme),
		content:   make(map[string]contentEntry),
		width:     80,
		height:    24,
		ctx:       logging.WithComponent(ctx, "dashboard-tui"),
	}
	m.syncContent()
	return m
}

// Init implements tea.Model.
func (DashboardModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		m.handleKey(msg)
		m.syncContent()
		return m, m.scheduleTick()

	case ConfigChangedMsg:
		if msg.Config != nil {
			showAll := m.help.ShowAll
			m.theme = styles.NewTheme(msg.Config)
			m.help = styles.NewStyledHelp(m.theme)
			m.help.ShowAll = showAll
			m.help.Width = m.width
		}

	case toastTickMsg:
		m.ticking = false
		return m, m.scheduleTick()
	}

	return m, nil
}

func (m *DashboardModel) handleKey(msg tea.KeyMsg) {
	focused := m.ctrl.Focused()
	k := m.keys

	switch {
	case key.Matches(msg, k.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, k.FocusNext):
		m.ctrl.FocusNext(1)
	case key.Matches(msg, k.FocusPrev):
		m.ctrl.FocusNext(-1)
	case key.Matches(msg, k.FocusLeft):
		m.ctrl.FocusDirection(usecase.NavLeft, m.bodyRect())
	case key.Matches(msg, k.FocusRight):
		m.ctrl.FocusDirection(usecase.NavRight, m.bodyRect())
	case key.Matches(msg, k.FocusUp):
		m.ctrl.FocusDirection(usecase.NavUp, m.bodyRect())
	case key.Matches(msg, k.FocusDown):
		m.ctrl.FocusDirection(usecase.NavDown, m.bodyRect())

	// Rejections are reported through the toaster by the controller
	case key.Matches(msg, k.SplitRow):
		_ = m.ctrl.Split(focused, entity.DirectionRow)
	case key.Matches(msg, k.SplitColumn):
		_ = m.ctrl.Split(focused, entity.DirectionColumn)
	case key.Matches(msg, k.AddCorner):
		_ = m.ctrl.AddCorner()
	case key.Matches(msg, k.Close):
		_ = m.ctrl.Close(focused)
	case key.Matches(msg, k.Maximize):
		_ = m.ctrl.ToggleMaximize(focused)
	case key.Matches(msg, k.Arrange):
		_ = m.ctrl.AutoArrange()

	case key.Matches(msg, k.NextContent):
		_ = m.ctrl.CycleContent(focused, 1)
	case key.Matches(msg, k.PrevContent):
		_ = m.ctrl.CycleContent(focused, -1)
	case key.Matches(msg, k.Refresh):
		m.refresh(focused)
	case key.Matches(msg, k.Copy):
		_ = m.ctrl.Copy(focused)

	case key.Matches(msg, k.Grow):
		_ = m.ctrl.Resize(focused, usecase.ResizeGrow)
	case key.Matches(msg, k.Shrink):
		_ = m.ctrl.Resize(focused, usecase.ResizeShrink)
	case key.Matches(msg, k.ResizeLeft):
		_ = m.ctrl.Resize(focused, usecase.ResizeLeft)
	case key.Matches(msg, k.ResizeRight):
		_ = m.ctrl.Resize(focused, usecase.ResizeRight)
	case key.Matches(msg, k.ResizeUp):
		_ = m.ctrl.Resize(focused, usecase.ResizeUp)
	case key.Matches(msg, k.ResizeDown):
		_ = m.ctrl.Resize(focused, usecase.ResizeDown)

	case key.Matches(msg, k.Reset):
		m.ctrl.Reset()
	}
}

func (m *DashboardModel) refresh(id entity.WindowID) {
	key, ok := m.ctrl.Dashboard().ContentFor(id)
	if !ok {
		return
	}
	company, err := m.ctrl.Refresh(id)
	switch {
	case err == nil && company != nil:
		m.content[key] = contentEntry{company: company}
	case errors.Is(err, port.ErrContentNotFound):
		m.content[key] = contentEntry{}
	}
}

// syncContent looks up every bound key not seen yet.
func (m *DashboardModel) syncContent() {
	if m.contentUC == nil {
		return
	}
	log := logging.FromContext(m.ctx)
	for _, key := range m.ctrl.Dashboard().Bindings {
		if _, seen := m.content[key]; seen {
			continue
		}
		company, err := m.contentUC.Describe(m.ctx, key)
		if err != nil && !errors.Is(err, port.ErrContentNotFound) {
			log.Warn().Err(err).Str("content", key).Msg("content lookup failed")
			continue
		}
		m.content[key] = contentEntry{company: company}
	}
}

func (m DashboardModel) companyFor(key string) *entity.Company {
	return m.content[key].company
}

// scheduleTick keeps the view refreshing while toasts are on screen so
// they disappear once expired.
func (m *DashboardModel) scheduleTick() tea.Cmd {
	if m.ticking || m.toaster == nil || len(m.toaster.Active()) == 0 {
		return nil
	}
	m.ticking = true
	return tea.Tick(toastTickInterval, func(t time.Time) tea.Msg {
		return toastTickMsg(t)
	})
}

func (m DashboardModel) activeToasts() []notify.Toast {
	if m.toaster == nil {
		return nil
	}
	return m.toaster.Active()
}

// bodyRect is the area the window layout is drawn into.
func (m DashboardModel) bodyRect() layout.Rect {
	chrome := lipgloss.Height(m.statusView()) + lipgloss.Height(m.help.View(m.keys)) + len(m.activeToasts())
	h := m.height - chrome
	if h < 0 {
		h = 0
	}
	return layout.Rect{W: m.width, H: h}
}

// View implements tea.Model.
func (m DashboardModel) View() string {
	d := m.ctrl.Dashboard()
	body := m.bodyRect()

	sections := []string{}
	if !body.Empty() {
		sections = append(sections, RenderDashboard(m.theme, d, m.ctrl.Focused(), m.companyFor, body.W, body.H))
	}
	for _, toast := range m.activeToasts() {
		sections = append(sections, m.theme.RenderToast(toast.Message, toast.Type))
	}
	sections = append(sections, m.statusView(), m.help.View(m.keys))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m DashboardModel) statusView() string {
	t := m.theme
	d := m.ctrl.Dashboard()

	count := fmt.Sprintf("%s %d/%d", styles.IconPane, d.WindowCount(), entity.MaxWindows)
	countBadge := t.Badge.Render(count)
	if !d.CanAddWindow() {
		countBadge = t.BadgeMuted.Render(count)
	}

	parts := []string{t.Badge.Render(styles.IconChart + " mosaic"), " ", countBadge}
	if d.IsMaximized() {
		parts = append(parts, " ", t.BadgeMuted.Render(styles.IconExpand+" maximized"))
	}

	focused := m.ctrl.Focused()
	ticker, _ := d.ContentFor(focused)
	parts = append(parts, " ", t.Normal.Render(fmt.Sprintf("%s %s", focused, ticker)))
	parts = append(parts, "  ", m.addHints(d))

	return t.StatusBar.MaxWidth(m.width).Render(lipgloss.JoinHorizontal(lipgloss.Top, parts...))
}

// addHints lists the window-opening keys, greyed out once the dashboard is full.
func (m DashboardModel) addHints(d entity.Dashboard) string {
	hints := make([]string, 0, 3)
	for _, b := range m.keys.AddBindings() {
		h := b.Help()
		hints = append(hints, h.Key+" "+h.Desc)
	}
	text := strings.Join(hints, " · ")
	if !d.CanAddWindow() {
		return m.theme.Subtle.Strikethrough(true).Render(text)
	}
	return m.theme.HelpKey.Render(text)
}
