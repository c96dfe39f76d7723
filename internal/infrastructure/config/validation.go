package config

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/bnema/mosaic/internal/domain/entity"
	domainvalidation "github.com/bnema/mosaic/internal/domain/validation"
)

var validLogLevels = []string{"trace", "debug", "info", "warn", "warning", "error", "disabled", "off"}

// validateConfig performs comprehensive validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateLayout(config)...)
	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validateAppearance(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}
	return nil
}

// Validate checks cfg the way Load does.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}
	return validateConfig(cfg)
}

func validateLayout(config *Config) []string {
	var validationErrors []string
	l := config.Layout

	if l.SplitPercentage <= 0 || l.SplitPercentage >= 100 {
		validationErrors = append(validationErrors, "layout.split_percentage must be between 0 and 100 (exclusive)")
	}
	if l.CornerSplitPercentage <= 0 || l.CornerSplitPercentage >= 100 {
		validationErrors = append(validationErrors, "layout.corner_split_percentage must be between 0 and 100 (exclusive)")
	}
	if l.MinSplitPercentage <= 0 || l.MinSplitPercentage >= 50 {
		validationErrors = append(validationErrors, "layout.min_split_percentage must be between 0 and 50 (exclusive)")
	}
	if l.ResizeStepPercent <= 0 || l.ResizeStepPercent > 50 {
		validationErrors = append(validationErrors, "layout.resize_step_percent must be between 0 (exclusive) and 50")
	}

	ids := make([]string, 0, len(l.DefaultContent))
	for id := range l.DefaultContent {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		if !entity.WindowID(id).Valid() {
			validationErrors = append(validationErrors,
				fmt.Sprintf("layout.default_content key %q is not a window id (window1..window%d)", id, entity.MaxWindows))
		}
		if l.DefaultContent[id] == "" {
			validationErrors = append(validationErrors, fmt.Sprintf("layout.default_content.%s must not be empty", id))
		}
	}
	return validationErrors
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	if !slices.Contains(validLogLevels, config.Logging.Level) {
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.level must be one of: %s", strings.Join(validLogLevels, ", ")))
	}
	if config.Logging.MaxSizeMB < 0 {
		validationErrors = append(validationErrors, "logging.max_size_mb must be non-negative")
	}
	if config.Logging.MaxBackups < 0 {
		validationErrors = append(validationErrors, "logging.max_backups must be non-negative")
	}
	if config.Logging.MaxAgeDays < 0 {
		validationErrors = append(validationErrors, "logging.max_age_days must be non-negative")
	}
	return validationErrors
}

func validateAppearance(config *Config) []string {
	p := config.Appearance.Palette
	return domainvalidation.ValidateHexColors("appearance.palette",
		domainvalidation.NamedColor{Field: "background", Value: p.Background},
		domainvalidation.NamedColor{Field: "surface", Value: p.Surface},
		domainvalidation.NamedColor{Field: "surface_variant", Value: p.SurfaceVariant},
		domainvalidation.NamedColor{Field: "text", Value: p.Text},
		domainvalidation.NamedColor{Field: "muted", Value: p.Muted},
		domainvalidation.NamedColor{Field: "accent", Value: p.Accent},
		domainvalidation.NamedColor{Field: "border", Value: p.Border},
	)
}
