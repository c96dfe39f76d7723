// Package cmd provides Cobra CLI commands for mosaic.
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/mosaic/internal/cli"
	"github.com/bnema/mosaic/internal/domain/build"
)

// Command annotations read by the root pre-run hook.
const (
	// annotationTUI marks commands that take over the terminal; their logs
	// go to the log file instead of stderr.
	annotationTUI = "mosaic/tui"
	// annotationStandalone marks commands that run without config, catalog
	// or logger.
	annotationStandalone = "mosaic/standalone"
)

var (
	app       *cli.App
	buildInfo build.Info
)

var rootCmd = &cobra.Command{
	Use:   "mosaic",
	Short: "A tiling window dashboard for company profiles",
	Long: `Mosaic is a keyboard-driven tiling dashboard for the terminal.

Up to five windows share the screen, each showing one company from the
catalog. Windows are split, closed, maximized and auto-arranged like panes
in a terminal multiplexer.

Run 'mosaic' without arguments to open the dashboard. 'mosaic layout'
scripts the same actions without a terminal.`,
	SilenceUsage:       true,
	SilenceErrors:      true,
	PersistentPreRunE:  setupApp,
	PersistentPostRunE: teardownApp,
	Annotations:        map[string]string{annotationTUI: "true"},
	RunE:               runDashboard,
}

func hasAnnotation(cmd *cobra.Command, key string) bool {
	return cmd.Annotations[key] == "true"
}

func setupApp(cmd *cobra.Command, _ []string) error {
	if hasAnnotation(cmd, annotationStandalone) || cmd.Name() == "help" || cmd.Name() == cobra.ShellCompRequestCmd {
		return nil
	}
	if parent := cmd.Parent(); parent != nil && parent.Name() == "completion" {
		return nil
	}

	var err error
	app, err = cli.NewApp(cli.Options{FileLog: hasAnnotation(cmd, annotationTUI)})
	if err != nil {
		return fmt.Errorf("initialize app: %w", err)
	}
	app.BuildInfo = buildInfo
	return nil
}

func teardownApp(_ *cobra.Command, _ []string) error {
	if app == nil {
		return nil
	}
	err := app.Close()
	app = nil
	return err
}

// ExecuteContext runs the root command and exits non-zero on error.
// Cancelling ctx stops a running TUI.
func ExecuteContext(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the app built for the running command, or nil for
// standalone commands.
func GetApp() *cli.App {
	return app
}

// SetBuildInfo records ldflags values; call it before ExecuteContext.
func SetBuildInfo(info build.Info) {
	buildInfo = info
}
