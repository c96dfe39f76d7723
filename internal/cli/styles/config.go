package styles

import (
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ConfigRenderer formats the output of the config subcommands.
type ConfigRenderer struct {
	theme *Theme
}

func NewConfigRenderer(theme *Theme) *ConfigRenderer {
	return &ConfigRenderer{theme: theme}
}

// block indents lines under a leading blank line, the layout every config
// message shares.
func (r *ConfigRenderer) block(lines ...string) string {
	return "\n  " + strings.Join(lines, "\n  ") + "\n"
}

func (r *ConfigRenderer) icon(glyph string, color lipgloss.Color) string {
	return lipgloss.NewStyle().Foreground(color).Render(glyph)
}

// RenderConfigInfo shows where the config file lives.
func (r *ConfigRenderer) RenderConfigInfo(path string) string {
	return r.block(
		r.icon(IconConfig, r.theme.Accent) + " Config " + r.theme.Subtle.Render(path),
	)
}

// RenderNoConfigFile is shown before the first run has written the file.
func (r *ConfigRenderer) RenderNoConfigFile(path string) string {
	return r.block(
		r.icon(IconConfig, r.theme.Accent)+" Config "+r.theme.Subtle.Render(path),
		r.theme.Subtle.Render("Not created yet; the first dashboard run writes it with the defaults."),
	)
}

// RenderSchemaWritten confirms the JSON schema was written.
func (r *ConfigRenderer) RenderSchemaWritten(path string) string {
	return r.block(
		r.icon(IconCheck, r.theme.Success)+" Wrote "+r.theme.Highlight.Render(filepath.Base(path)),
		r.icon(IconFolder, r.theme.Muted)+" "+r.theme.Subtle.Render(filepath.Dir(path)),
	)
}

func (r *ConfigRenderer) RenderError(err error) string {
	return r.block(r.icon(IconX, r.theme.Error) + " " + r.theme.ErrorStyle.Render("Config error: "+err.Error()))
}
