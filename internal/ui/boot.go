package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"haloboard.dev/internal/config"
)

// RenderBoot renders one frame of the boot animation: the app name sweeps
// in left to right over a progress rail. progress runs 0..1.
func RenderBoot(progress float64, width, height int, p Palette) string {
	if progress < 0 {
		progress = 0
	}
	if progress > 1 {
		progress = 1
	}

	name := config.AppName
	shown := int(progress * float64(len(name)))
	revealed := p.Clock().Render(name[:shown]) + p.Help().Render(strings.Repeat("·", len(name)-shown))

	railW := len(name) * 2
	filled := int(progress * float64(railW))
	rail := p.BarKey().Render(strings.Repeat("━", filled)) +
		p.Help().Render(strings.Repeat("─", railW-filled))

	body := lipgloss.JoinVertical(lipgloss.Center, revealed, "", rail)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}
