package cmd

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/mosaic/internal/cli/model"
)

var companiesPlain bool

var companiesCmd = &cobra.Command{
	Use:     "companies",
	Aliases: []string{"catalog"},
	Short:   "Browse the company catalog",
	Long: `List every company a window can show.

The builtin catalog is used unless catalog.path points at a JSON file.`,
	Annotations: map[string]string{annotationTUI: "true"},
	RunE:        runCompanies,
}

func init() {
	rootCmd.AddCommand(companiesCmd)
	companiesCmd.Flags().BoolVar(&companiesPlain, "plain", false, "print ticker and name per line instead of the table")
}

func runCompanies(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return errors.New("app not initialized")
	}

	if companiesPlain {
		companies, err := app.ContentUC.Choices(app.Ctx())
		if err != nil {
			return err
		}
		for _, c := range companies {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", c.Ticker, c.Name)
		}
		return nil
	}

	p := tea.NewProgram(model.NewCompaniesModel(app.Theme, app.ContentUC), tea.WithContext(cmd.Context()))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run companies browser: %w", err)
	}
	return nil
}
