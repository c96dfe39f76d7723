package config

import (
	"strings"
)

// normalizeConfig canonicalizes case and fills blank colors so validation
// only has to reject real mistakes.
func normalizeConfig(config *Config) {
	content := make(map[string]string, len(config.Layout.DefaultContent))
	for id, ticker := range config.Layout.DefaultContent {
		content[strings.ToLower(strings.TrimSpace(id))] = strings.ToUpper(strings.TrimSpace(ticker))
	}
	config.Layout.DefaultContent = content
	config.Layout.FallbackContent = strings.ToUpper(strings.TrimSpace(config.Layout.FallbackContent))
	if config.Layout.FallbackContent == "" {
		config.Layout.FallbackContent = defaultFallbackContent
	}

	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	if config.Logging.Level == "" {
		config.Logging.Level = "info"
	}
	switch strings.ToLower(strings.TrimSpace(config.Logging.Format)) {
	case "json":
		config.Logging.Format = "json"
	default:
		config.Logging.Format = "console"
	}

	config.Catalog.Path = strings.TrimSpace(config.Catalog.Path)
	normalizePalette(&config.Appearance.Palette)
}

func normalizePalette(p *ColorPalette) {
	d := DefaultPalette()
	fill := func(value *string, fallback string) {
		*value = strings.TrimSpace(*value)
		if *value == "" {
			*value = fallback
		}
	}
	fill(&p.Background, d.Background)
	fill(&p.Surface, d.Surface)
	fill(&p.SurfaceVariant, d.SurfaceVariant)
	fill(&p.Text, d.Text)
	fill(&p.Muted, d.Muted)
	fill(&p.Accent, d.Accent)
	fill(&p.Border, d.Border)
}
