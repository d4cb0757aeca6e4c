package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RenderTicker renders the idle marquee line. offset advances one cell per
// frame tick so the text crawls while the display is dimmed.
func RenderTicker(text string, width, offset int, p Palette) string {
	if text == "" || width <= 0 {
		return ""
	}

	loop := text + "   •   "
	runes := []rune(loop)
	start := offset % len(runes)

	var b strings.Builder
	for i := 0; i < width; i++ {
		b.WriteRune(runes[(start+i)%len(runes)])
	}

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, p.Ticker().Render(b.String()))
}
