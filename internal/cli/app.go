// Package cli wires the dashboard dependencies shared by the CLI commands.
package cli

import (
	"context"
	"fmt"
	"os"
	"slices"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/bnema/mosaic/internal/application/usecase"
	"github.com/bnema/mosaic/internal/cli/styles"
	"github.com/bnema/mosaic/internal/domain/build"
	"github.com/bnema/mosaic/internal/domain/entity"
	"github.com/bnema/mosaic/internal/infrastructure/catalog"
	"github.com/bnema/mosaic/internal/infrastructure/clipboard"
	"github.com/bnema/mosaic/internal/infrastructure/config"
	"github.com/bnema/mosaic/internal/infrastructure/notify"
	"github.com/bnema/mosaic/internal/logging"
	"github.com/bnema/mosaic/internal/ui/controller"
)

// App holds CLI dependencies.
type App struct {
	Config        *config.Config
	ConfigManager *config.Manager // nil when the config file could not be loaded
	Theme         *styles.Theme
	BuildInfo     build.Info
	Catalog       *catalog.Catalog

	// Use cases
	WindowsUC *usecase.ManageWindowsUseCase
	ContentUC *usecase.LookupContentUseCase

	Toaster    *notify.Toaster
	Controller *controller.DashboardController

	// Context with logger
	ctx        context.Context
	logCleanup func()

	mu        sync.Mutex
	callbacks []func(*config.Config)
}

// Options tunes NewApp.
type Options struct {
	// FileLog writes logs to the rotated file instead of stderr. The TUI
	// sets it so log lines never land on the alternate screen.
	FileLog bool
}

// NewApp creates a new CLI application with all dependencies.
func NewApp(opts Options) (*App, error) {
	mgr, cfg, cfgErr := loadConfig()

	logger, logCleanup, logErr := newLogger(cfg, opts.FileLog)
	ctx := logging.WithContext(context.Background(), logger)
	ctx = logging.With(ctx, map[string]any{"run_id": uuid.NewString()})
	logger = *logging.FromContext(ctx)
	if logErr != nil {
		logger.Warn().Err(logErr).Msg("file logging unavailable")
	}
	if cfgErr != nil {
		logger.Warn().Err(cfgErr).Msg("config file unavailable, using defaults")
	}

	companies, err := catalog.Open(ctx, cfg.Catalog.Path)
	if err != nil {
		logCleanup()
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	logger.Debug().Int("companies", companies.Len()).Str("path", cfg.Catalog.Path).Msg("catalog loaded")

	windowsUC := usecase.NewManageWindowsUseCase(LayoutPolicyFromConfig(cfg))
	contentUC := usecase.NewLookupContentUseCase(companies)
	toaster := notify.NewToaster()

	ctrl := controller.NewDashboardController(ctx, windowsUC, contentUC, toaster)
	ctrl.SetResizeSettings(ResizeSettingsFromConfig(cfg))
	ctrl.SetClipboard(clipboard.New(os.Stderr))

	app := &App{
		Config:        cfg,
		ConfigManager: mgr,
		Theme:         styles.NewTheme(cfg),
		Catalog:       companies,
		WindowsUC:     windowsUC,
		ContentUC:     contentUC,
		Toaster:       toaster,
		Controller:    ctrl,
		ctx:           ctx,
		logCleanup:    logCleanup,
	}
	if mgr != nil {
		mgr.OnConfigChange(app.applyConfig)
	}
	return app, nil
}

// Close releases all resources.
func (a *App) Close() error {
	if a.logCleanup != nil {
		a.logCleanup()
	}
	return nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// CurrentConfig returns the latest loaded configuration.
func (a *App) CurrentConfig() *config.Config {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.Config
}

// WatchConfig reloads the config file on change. Layout tunables apply to
// windows created afterwards; fn, when set, runs after every reload.
func (a *App) WatchConfig(fn func(*config.Config)) error {
	if a.ConfigManager == nil {
		return nil
	}
	if fn != nil {
		a.mu.Lock()
		a.callbacks = append(a.callbacks, fn)
		a.mu.Unlock()
	}
	return a.ConfigManager.Watch()
}

func (a *App) applyConfig(cfg *config.Config) {
	log := logging.FromContext(a.ctx)

	a.WindowsUC.SetPolicy(LayoutPolicyFromConfig(cfg))
	a.Controller.SetResizeSettings(ResizeSettingsFromConfig(cfg))

	a.mu.Lock()
	a.Config = cfg
	callbacks := slices.Clone(a.callbacks)
	a.mu.Unlock()

	log.Info().Msg("config reloaded")
	for _, fn := range callbacks {
		fn(cfg)
	}
}

// LayoutPolicyFromConfig converts the layout section into engine tunables.
func LayoutPolicyFromConfig(cfg *config.Config) usecase.LayoutPolicy {
	policy := usecase.DefaultLayoutPolicy()
	if cfg == nil {
		return policy
	}
	if cfg.Layout.SplitPercentage > 0 {
		policy.SplitPercentage = cfg.Layout.SplitPercentage
	}
	if cfg.Layout.CornerSplitPercentage > 0 {
		policy.CornerSplitPercentage = cfg.Layout.CornerSplitPercentage
	}
	if cfg.Layout.FallbackContent != "" {
		policy.FallbackContent = entity.NormalizeTicker(cfg.Layout.FallbackContent)
	}
	if len(cfg.Layout.DefaultContent) > 0 {
		content := make(map[entity.WindowID]string, len(cfg.Layout.DefaultContent))
		for id, ticker := range cfg.Layout.DefaultContent {
			content[entity.WindowID(id)] = entity.NormalizeTicker(ticker)
		}
		policy.DefaultContent = content
	}
	return policy
}

// ResizeSettingsFromConfig converts the resize tunables for the controller.
func ResizeSettingsFromConfig(cfg *config.Config) controller.ResizeSettings {
	if cfg == nil {
		return controller.ResizeSettings{}
	}
	return controller.ResizeSettings{
		StepPercent: cfg.Layout.ResizeStepPercent,
		MinPercent:  cfg.Layout.MinSplitPercentage,
	}
}

// loadConfig loads configuration from standard locations, falling back to
// defaults when the file cannot be read or is invalid.
func loadConfig() (*config.Manager, *config.Config, error) {
	mgr, err := config.NewManager()
	if err != nil {
		return nil, config.DefaultConfig(), err
	}
	if err := mgr.Load(); err != nil {
		return nil, config.DefaultConfig(), err
	}
	return mgr, mgr.Get(), nil
}

func newLogger(cfg *config.Config, fileLog bool) (zerolog.Logger, func(), error) {
	logDir := cfg.Logging.LogDir
	if logDir == "" {
		logDir, _ = config.GetLogDir()
	}

	return logging.NewWithFile(
		logging.Config{
			Level:      logging.ParseLevel(cfg.Logging.Level),
			Format:     cfg.Logging.Format,
			TimeFormat: "15:04:05",
		},
		logging.FileConfig{
			Enabled: fileLog && cfg.Logging.EnableFileLog && logDir != "",
			LogDir:  logDir,
			Rotate: logging.RotateOptions{
				MaxSizeMB:  cfg.Logging.MaxSizeMB,
				MaxBackups: cfg.Logging.MaxBackups,
				MaxAgeDays: cfg.Logging.MaxAgeDays,
				Compress:   cfg.Logging.Compress,
			},
			WriteToStderr: !fileLog,
		},
	)
}
