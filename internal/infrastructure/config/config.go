// Package config loads, validates and watches the mosaic configuration file.
package config

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Config represents the complete configuration for mosaic.
type Config struct {
	// Layout controls how windows are split and what they show by default.
	Layout LayoutConfig `mapstructure:"layout" yaml:"layout" toml:"layout"`
	// Logging controls log level, format and optional file output.
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging" toml:"logging"`
	// Appearance holds the terminal color palette.
	Appearance AppearanceConfig `mapstructure:"appearance" yaml:"appearance" toml:"appearance"`
	// Catalog points at an optional company catalog file.
	Catalog CatalogConfig `mapstructure:"catalog" yaml:"catalog" toml:"catalog"`
}

// LayoutConfig holds the layout engine tunables.
type LayoutConfig struct {
	// SplitPercentage is the share the split window keeps (0-100).
	SplitPercentage float64 `mapstructure:"split_percentage" yaml:"split_percentage" toml:"split_percentage"`
	// CornerSplitPercentage is the share the existing layout keeps when a
	// window is added at the corner (0-100).
	CornerSplitPercentage float64 `mapstructure:"corner_split_percentage" yaml:"corner_split_percentage" toml:"corner_split_percentage"`
	// DefaultContent maps window ids (window1..window5) to the ticker shown
	// when the window opens.
	DefaultContent map[string]string `mapstructure:"default_content" yaml:"default_content" toml:"default_content"`
	// FallbackContent is shown by windows without a DefaultContent entry.
	FallbackContent string `mapstructure:"fallback_content" yaml:"fallback_content" toml:"fallback_content"`
	// MinSplitPercentage is the smallest share keyboard resizing leaves either side.
	MinSplitPercentage float64 `mapstructure:"min_split_percentage" yaml:"min_split_percentage" toml:"min_split_percentage"`
	// ResizeStepPercent is how far one resize key press moves a divider.
	ResizeStepPercent float64 `mapstructure:"resize_step_percent" yaml:"resize_step_percent" toml:"resize_step_percent"`
}

// LoggingConfig controls logging output.
type LoggingConfig struct {
	Level         string `mapstructure:"level" yaml:"level" toml:"level"`
	Format        string `mapstructure:"format" yaml:"format" toml:"format"`
	EnableFileLog bool   `mapstructure:"enable_file_log" yaml:"enable_file_log" toml:"enable_file_log"`
	// LogDir defaults to $XDG_STATE_HOME/mosaic/logs when empty.
	LogDir     string `mapstructure:"log_dir" yaml:"log_dir" toml:"log_dir"`
	MaxSizeMB  int    `mapstructure:"max_size_mb" yaml:"max_size_mb" toml:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups" yaml:"max_backups" toml:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days" yaml:"max_age_days" toml:"max_age_days"`
	Compress   bool   `mapstructure:"compress" yaml:"compress" toml:"compress"`
}

// AppearanceConfig holds UI colors.
type AppearanceConfig struct {
	Palette ColorPalette `mapstructure:"palette" yaml:"palette" toml:"palette"`
}

// ColorPalette holds the semantic colors used by the terminal UI.
type ColorPalette struct {
	Background     string `mapstructure:"background" yaml:"background" toml:"background"`
	Surface        string `mapstructure:"surface" yaml:"surface" toml:"surface"`
	SurfaceVariant string `mapstructure:"surface_variant" yaml:"surface_variant" toml:"surface_variant"`
	Text           string `mapstructure:"text" yaml:"text" toml:"text"`
	Muted          string `mapstructure:"muted" yaml:"muted" toml:"muted"`
	Accent         string `mapstructure:"accent" yaml:"accent" toml:"accent"`
	Border         string `mapstructure:"border" yaml:"border" toml:"border"`
}

// CatalogConfig selects the company catalog.
type CatalogConfig struct {
	// Path to a JSON array of companies. Empty uses the builtin catalog.
	Path string `mapstructure:"path" yaml:"path" toml:"path"`
}
