// Package styles holds the lipgloss theme, key maps and small renderers
// shared by the mosaic commands.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/mosaic/internal/application/port"
	"github.com/bnema/mosaic/internal/infrastructure/config"
)

// Fixed status colours; the palette only themes the surfaces.
const (
	errorHex   = "#ef4444"
	warningHex = "#f59e0b"
)

// Theme is the palette from config plus the styles derived from it.
type Theme struct {
	Background     lipgloss.Color
	Surface        lipgloss.Color
	SurfaceVariant lipgloss.Color
	Text           lipgloss.Color
	Muted          lipgloss.Color
	Accent         lipgloss.Color
	Border         lipgloss.Color
	Error          lipgloss.Color
	Warning        lipgloss.Color
	Success        lipgloss.Color

	Title        lipgloss.Style
	Subtitle     lipgloss.Style
	Normal       lipgloss.Style
	Subtle       lipgloss.Style
	Highlight    lipgloss.Style
	ErrorStyle   lipgloss.Style
	WarningStyle lipgloss.Style
	SuccessStyle lipgloss.Style

	// Window is the unfocused chrome; use WindowStyle for the focused one.
	Window      lipgloss.Style
	WindowTitle lipgloss.Style
	Placeholder lipgloss.Style

	StatusBar  lipgloss.Style
	Badge      lipgloss.Style
	BadgeMuted lipgloss.Style
	Toast      lipgloss.Style
	HelpKey    lipgloss.Style
	HelpDesc   lipgloss.Style
	Box        lipgloss.Style
}

// NewTheme uses the configured palette, or the default one when the config
// carries none.
func NewTheme(cfg *config.Config) *Theme {
	if cfg == nil || cfg.Appearance.Palette.Background == "" {
		return NewThemeFromPalette(config.DefaultPalette())
	}
	return NewThemeFromPalette(cfg.Appearance.Palette)
}

func NewThemeFromPalette(p config.ColorPalette) *Theme {
	t := &Theme{
		Background:     lipgloss.Color(p.Background),
		Surface:        lipgloss.Color(p.Surface),
		SurfaceVariant: lipgloss.Color(p.SurfaceVariant),
		Text:           lipgloss.Color(p.Text),
		Muted:          lipgloss.Color(p.Muted),
		Accent:         lipgloss.Color(p.Accent),
		Border:         lipgloss.Color(p.Border),
		Error:          lipgloss.Color(errorHex),
		Warning:        lipgloss.Color(warningHex),
		Success:        lipgloss.Color(p.Accent),
	}

	fg := func(c lipgloss.Color) lipgloss.Style { return lipgloss.NewStyle().Foreground(c) }

	t.Title = fg(t.Text).Bold(true)
	t.Subtitle = fg(t.Muted).Bold(true)
	t.Normal = fg(t.Text)
	t.Subtle = fg(t.Muted)
	t.Highlight = fg(t.Accent).Bold(true)
	t.ErrorStyle = fg(t.Error)
	t.WarningStyle = fg(t.Warning)
	t.SuccessStyle = fg(t.Success)

	t.Window = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(0, 1)
	t.WindowTitle = t.Highlight
	t.Placeholder = fg(t.Muted).Italic(true)

	t.StatusBar = fg(t.Muted).Background(t.Surface)
	t.Badge = fg(t.Background).Background(t.Accent).Padding(0, 1)
	t.BadgeMuted = fg(t.Text).Background(t.SurfaceVariant).Padding(0, 1)
	t.Toast = fg(t.Text).
		Background(t.SurfaceVariant).
		BorderStyle(lipgloss.ThickBorder()).
		BorderLeft(true).
		Padding(0, 1)
	t.HelpKey = fg(t.Accent)
	t.HelpDesc = fg(t.Muted)
	t.Box = t.Window.Padding(1, 2)

	return t
}

// WindowStyle returns the chrome for a window. Focus only recolours the
// border so the content area never shifts.
func (t *Theme) WindowStyle(focused bool) lipgloss.Style {
	if focused {
		return t.Window.BorderForeground(t.Accent)
	}
	return t.Window
}

// RenderToast renders one notice with an icon and an edge coloured by type.
func (t *Theme) RenderToast(message string, notifType port.NotificationType) string {
	color := t.Accent
	switch notifType {
	case port.NotificationError:
		color = t.Error
	case port.NotificationWarning:
		color = t.Warning
	case port.NotificationSuccess:
		color = t.Success
	}
	icon := lipgloss.NewStyle().Foreground(color).Render(NotificationIcon(notifType))
	return t.Toast.BorderForeground(color).Render(icon + " " + message)
}
