package ui

import "github.com/charmbracelet/lipgloss"

// RenderBanner renders the non-blocking flash update notification line.
func RenderBanner(fileName string, width int, p Palette) string {
	msg := "Flash update ready: " + fileName
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, p.Banner().Render(msg))
}
