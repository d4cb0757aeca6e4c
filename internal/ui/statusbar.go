package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"haloboard.dev/internal/idle"
)

// RenderStatusBar renders the bottom status bar.
func RenderStatusBar(width int, presence idle.State, timezone string, modules int, perf string, p Palette) string {
	status := ""
	if presence == idle.Active {
		status = p.BarKey().Render("[" + presence.String() + "]")
	} else {
		status = p.CountdownUrgent().Render("[" + presence.String() + "]")
	}

	info := fmt.Sprintf(" TZ: %s  Modules: %d", timezone, modules)
	content := status + p.Bar().Foreground(p.Mid).Render(info)
	if perf != "" {
		content += p.Help().Render("  " + perf)
	}

	gap := width - lipgloss.Width(content)
	if gap < 0 {
		gap = 0
	}
	padding := ""
	for i := 0; i < gap; i++ {
		padding += " "
	}

	return p.Bar().Width(width).Render(content + padding)
}
