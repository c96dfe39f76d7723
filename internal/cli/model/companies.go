package model

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/mosaic/internal/application/usecase"
	"github.com/bnema/mosaic/internal/cli/styles"
	"github.com/bnema/mosaic/internal/domain/entity"
)

// CompaniesModel lists the catalog in a table with a detail pane.
type CompaniesModel struct {
	companies []entity.Company
	table     table.Model
	loading   bool
	err       error
	width     int
	height    int

	contentUC *usecase.LookupContentUseCase
	theme     *styles.Theme
	keys      styles.TableKeyMap
	help      help.Model
}

// NewCompaniesModel creates a new catalog browser.
func NewCompaniesModel(theme *styles.Theme, contentUC *usecase.LookupContentUseCase) CompaniesModel {
	return CompaniesModel{
		contentUC: contentUC,
		theme:     theme,
		keys:      styles.DefaultTableKeyMap(),
		help:      styles.NewStyledHelp(theme),
		loading:   true,
		width:     80,
		height:    24,
	}
}

// companiesLoadedMsg is sent when the catalog is listed.
type companiesLoadedMsg struct {
	companies []entity.Company
	err       error
}

// Init implements tea.Model.
func (m CompaniesModel) Init() tea.Cmd {
	return m.loadCompanies
}

func (m CompaniesModel) loadCompanies() tea.Msg {
	companies, err := m.contentUC.Choices(context.Background())
	return companiesLoadedMsg{companies: companies, err: err}
}

// Update implements tea.Model.
func (m CompaniesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateTable()

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return m, cmd

	case companiesLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
		} else {
			m.companies = msg.companies
			m.updateTable()
		}
	}

	return m, nil
}

func (m *CompaniesModel) updateTable() {
	if len(m.companies) == 0 {
		return
	}

	rows := make([]table.Row, len(m.companies))
	for i, c := range m.companies {
		rows[i] = styles.CompanyRow(c)
	}

	// The table height includes its header line.
	tableHeight := min(len(rows), m.height-12)
	tableHeight = max(tableHeight, 3) + 1

	cursor := m.table.Cursor()
	m.table = styles.NewStyledTable(m.theme, styles.CompanyTableColumns(m.width-4), rows, m.width-4, tableHeight)
	if cursor > 0 && cursor < len(rows) {
		m.table.SetCursor(cursor)
	}
}

// Selected returns the company under the cursor.
func (m CompaniesModel) Selected() (entity.Company, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.companies) {
		return entity.Company{}, false
	}
	return m.companies[i], true
}

// View implements tea.Model.
func (m CompaniesModel) View() string {
	t := m.theme

	if m.loading {
		return t.Box.Render(t.Subtle.Render("Loading companies..."))
	}
	if m.err != nil {
		return t.Box.Render(t.ErrorStyle.Render("Error: " + m.err.Error()))
	}
	if len(m.companies) == 0 {
		return t.Box.Render(t.Subtle.Render("No companies in the catalog"))
	}

	header := lipgloss.JoinHorizontal(
		lipgloss.Top,
		t.Title.Render(styles.IconBuilding+" Companies"),
		" ",
		t.Badge.Render(fmt.Sprintf("%d", len(m.companies))),
	)

	content := lipgloss.JoinVertical(lipgloss.Left, header, "", m.table.View())
	if c, ok := m.Selected(); ok {
		detail := lipgloss.NewStyle().Width(m.width - 4).Render(
			t.Normal.Render(c.ShortDescription),
		)
		content = lipgloss.JoinVertical(lipgloss.Left, content, "", t.Subtitle.Render(c.DisplayName()), detail)
	}

	return lipgloss.JoinVertical(lipgloss.Left, content, "", m.help.View(m.keys))
}
