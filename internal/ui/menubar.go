package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"haloboard.dev/internal/config"
)

// RenderMenuBar renders the top menu bar.
func RenderMenuBar(width int, nightShift bool, p Palette) string {
	title := fmt.Sprintf(" %s v%s ", config.AppName, config.AppVersion)

	keys := []struct{ key, label string }{
		{"+", "time"},
		{"Space", "start/pause"},
		{"C", "lear"},
		{"S", "ettings"},
		{"Q", "uit"},
	}

	menu := ""
	for _, k := range keys {
		menu += "  " + p.BarKey().Render("["+k.key+"]") + p.BarLabel().Render(k.label)
	}

	right := ""
	if nightShift {
		right = p.CountdownUrgent().Render("NIGHT SHIFT") + " "
	}

	left := p.BarKey().Render(title) + menu

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}
	padding := ""
	for i := 0; i < gap; i++ {
		padding += " "
	}

	return p.Bar().Width(width).Render(left + padding + right)
}
