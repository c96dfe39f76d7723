package cmd

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/mosaic/internal/cli/model"
	"github.com/bnema/mosaic/internal/infrastructure/config"
	"github.com/bnema/mosaic/internal/logging"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Open the interactive dashboard",
	Long: `Open the tiled dashboard in the terminal.

The dashboard starts with three windows. Press ? for the full list of keys.
Config file changes (palette, default companies, split ratios) apply live.`,
	Annotations: map[string]string{annotationTUI: "true"},
	RunE:        runDashboard,
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}

func runDashboard(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return errors.New("app not initialized")
	}
	log := logging.FromContext(app.Ctx())

	m := model.NewDashboardModel(app.Ctx(), app.Theme, app.Controller, app.ContentUC, app.Toaster)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(cmd.Context()))

	err := app.WatchConfig(func(cfg *config.Config) {
		p.Send(model.ConfigChangedMsg{Config: cfg})
	})
	if err != nil {
		log.Warn().Err(err).Msg("config watch unavailable")
	}

	log.Info().Msg("dashboard started")
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run dashboard: %w", err)
	}
	log.Info().Msg("dashboard closed")
	return nil
}
