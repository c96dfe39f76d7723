package model

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/mosaic/internal/cli/styles"
	"github.com/bnema/mosaic/internal/domain/entity"
	"github.com/bnema/mosaic/internal/ui/layout"
)

// WindowContent is what one window shows.
type WindowContent struct {
	ID        entity.WindowID
	Key       string
	Company   *entity.Company // nil renders the "no data" placeholder
	Focused   bool
	Maximized bool
}

// CompanyFunc resolves a content key; nil means no record.
type CompanyFunc func(key string) *entity.Company

// RenderDashboard draws the visible layout of d into width x height cells.
func RenderDashboard(
	theme *styles.Theme,
	d entity.Dashboard,
	focused entity.WindowID,
	company CompanyFunc,
	width, height int,
) string {
	return layout.Render(d.Layout, width, height, func(id entity.WindowID, _ entity.Path, w, h int) string {
		key, _ := d.ContentFor(id)
		content := WindowContent{
			ID:        id,
			Key:       key,
			Focused:   id == focused,
			Maximized: d.IsMaximizedWindow(id),
		}
		if company != nil && key != "" {
			content.Company = company(key)
		}
		return RenderWindow(theme, content, w, h)
	})
}

// RenderWindow draws a bordered window exactly width x height cells large.
// Lines that do not fit are dropped from the bottom.
func RenderWindow(theme *styles.Theme, w WindowContent, width, height int) string {
	style := theme.WindowStyle(w.Focused)
	boxW := width - style.GetHorizontalBorderSize()
	boxH := height - style.GetVerticalBorderSize()
	innerW := boxW - style.GetHorizontalPadding()
	if innerW < 1 || boxH < 1 {
		return theme.WindowTitle.MaxWidth(width).Render(w.Key)
	}

	lines := wrapLines(windowLines(theme, w), innerW)
	if len(lines) > boxH {
		lines = lines[:boxH]
	}
	return style.Width(boxW).Height(boxH).Render(strings.Join(lines, "\n"))
}

func windowLines(theme *styles.Theme, w WindowContent) []string {
	title := theme.WindowTitle.Render(w.Key) + " " + theme.Subtle.Render(w.ID.String())
	if w.Maximized {
		title += " " + theme.Highlight.Render(styles.IconExpand)
	}
	lines := []string{title}

	c := w.Company
	if c == nil {
		return append(lines, "", theme.Placeholder.Render("No data for "+w.Key))
	}

	lines = append(lines, theme.Title.Render(c.Name))
	if meta := joinNonEmpty(" · ", c.StockExchange, c.Sector, c.HQCountry); meta != "" {
		lines = append(lines, theme.Subtle.Render(meta))
	}
	if c.ShortDescription != "" {
		lines = append(lines, "", theme.Normal.Render(c.ShortDescription))
	}
	if c.LongDescription != "" {
		lines = append(lines, "", theme.Subtle.Render(c.LongDescription))
	}
	if c.CompanyURL != "" {
		lines = append(lines, "", theme.Subtle.Render(c.CompanyURL))
	}
	return lines
}

// wrapLines wraps every line to width and flattens the result.
func wrapLines(lines []string, width int) []string {
	wrap := lipgloss.NewStyle().Width(width)
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if line == "" {
			out = append(out, "")
			continue
		}
		out = append(out, strings.Split(wrap.Render(line), "\n")...)
	}
	return out
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
