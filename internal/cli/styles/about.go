package styles

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/mosaic/internal/domain/build"
	"github.com/bnema/mosaic/internal/domain/entity"
)

// Five tiles, one per window slot.
const aboutLogo = `███ ██
███ ██
    ██
██ ███
██ ███`

// AboutRenderer renders build info next to the tiled logo.
type AboutRenderer struct {
	theme *Theme
}

func NewAboutRenderer(theme *Theme) *AboutRenderer {
	return &AboutRenderer{theme: theme}
}

type aboutRow struct {
	icon, label, value string
}

func (r *AboutRenderer) Render(info build.Info) string {
	logo := lipgloss.NewStyle().
		Foreground(r.theme.Accent).
		Bold(true).
		MarginTop(1).
		MarginLeft(2).
		Render(aboutLogo)

	rows := []aboutRow{
		{IconVersion, "Version", info.Version},
		{IconGitBranch, "Commit", info.Commit},
		{IconCalendar, "Built", info.BuildDate},
		{IconGo, "Go", info.GoVersion},
		{IconPane, "Windows", "up to " + strconv.Itoa(entity.MaxWindows)},
	}

	labelWidth := 0
	for _, row := range rows {
		labelWidth = max(labelWidth, lipgloss.Width(row.label))
	}

	icon := lipgloss.NewStyle().Foreground(r.theme.Accent)
	label := r.theme.Subtle.Width(labelWidth + 1)

	lines := make([]string, 0, len(rows)+3)
	for _, row := range rows {
		lines = append(lines, icon.Render(row.icon)+" "+label.Render(row.label)+r.theme.Highlight.Render(row.value))
	}
	lines = append(lines,
		"",
		icon.Render(IconGithub)+" "+r.theme.Subtle.Render(build.RepoURL()),
		icon.Render(IconHeart)+" "+r.theme.Subtle.Render("Made with love by ")+
			r.theme.Highlight.Render(strings.Join(build.Contributors(), ", ")),
	)

	return lipgloss.JoinHorizontal(lipgloss.Top, logo, "   ", strings.Join(lines, "\n"))
}
