package config

const (
	defaultSplitPercentage       = 50
	defaultCornerSplitPercentage = 80
	defaultMinSplitPercentage    = 10
	defaultResizeStepPercent     = 5
	defaultFallbackContent       = "TSLA"
	defaultLogMaxSizeMB          = 10
	defaultLogMaxBackups         = 3
	defaultLogMaxAgeDays         = 7
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Layout: LayoutConfig{
			SplitPercentage:       defaultSplitPercentage,
			CornerSplitPercentage: defaultCornerSplitPercentage,
			DefaultContent:        DefaultContent(),
			FallbackContent:       defaultFallbackContent,
			MinSplitPercentage:    defaultMinSplitPercentage,
			ResizeStepPercent:     defaultResizeStepPercent,
		},
		Logging: LoggingConfig{
			Level:         "info",
			Format:        "console",
			EnableFileLog: true,
			MaxSizeMB:     defaultLogMaxSizeMB,
			MaxBackups:    defaultLogMaxBackups,
			MaxAgeDays:    defaultLogMaxAgeDays,
			Compress:      true,
		},
		Appearance: AppearanceConfig{
			Palette: DefaultPalette(),
		},
	}
}

// DefaultContent returns the stock ticker for each window slot.
func DefaultContent() map[string]string {
	return map[string]string{
		"window1": "AAPL",
		"window2": "NVDA",
		"window3": "MSFT",
		"window4": "GOOGL",
		"window5": "AMZN",
	}
}

// DefaultPalette returns the dark palette used when none is configured.
func DefaultPalette() ColorPalette {
	return ColorPalette{
		Background:     "#0a0a0b",
		Surface:        "#1a1a1b",
		SurfaceVariant: "#2d2d2d",
		Text:           "#ffffff",
		Muted:          "#909090",
		Accent:         "#4ade80",
		Border:         "#333333",
	}
}
