package model

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/mosaic/internal/application/usecase"
	"github.com/bnema/mosaic/internal/cli/styles"
	"github.com/bnema/mosaic/internal/infrastructure/catalog"
	"github.com/bnema/mosaic/internal/infrastructure/config"
)

func TestCompaniesModel_LoadsAndSelects(t *testing.T) {
	companies, err := catalog.NewBuiltin()
	require.NoError(t, err)

	theme := styles.NewTheme(config.DefaultConfig())
	m := NewCompaniesModel(theme, usecase.NewLookupContentUseCase(companies))
	assert.Contains(t, m.View(), "Loading")

	msg := m.Init()()
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	next, _ = next.Update(msg)
	m = next.(CompaniesModel)

	view := m.View()
	assert.Contains(t, view, "AAPL")
	assert.Contains(t, view, "TSLA")
	selected, ok := m.Selected()
	require.True(t, ok)
	assert.Equal(t, "AAPL", selected.Ticker)

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(CompaniesModel)
	selected, ok = m.Selected()
	require.True(t, ok)
	assert.Equal(t, "AMZN", selected.Ticker)
	assert.Contains(t, m.View(), "AMZN: Amazon.com, Inc.")
}

func TestCompaniesModel_QuitKey(t *testing.T) {
	theme := styles.NewTheme(config.DefaultConfig())
	m := NewCompaniesModel(theme, nil)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}
