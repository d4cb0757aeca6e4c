package ui

import "github.com/charmbracelet/lipgloss"

// ComposeLayout stacks the kiosk face: menu bar on top, the centered body
// (clock, countdown, ticker or overlay), status bar on the bottom.
func ComposeLayout(menuBar, body, statusBar string, width, bodyHeight int) string {
	centered := lipgloss.Place(width, bodyHeight, lipgloss.Center, lipgloss.Center, body)
	return lipgloss.JoinVertical(lipgloss.Left, menuBar, centered, statusBar)
}
