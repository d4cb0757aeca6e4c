package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"haloboard.dev/internal/config"
)

// RenderSettings renders the settings overlay: a scrollable list of every
// setting with the cursor row highlighted. editBuffer, when non-empty, is
// the in-progress text entry for the cursor row; errMsg is the last
// rejected value's reason.
func RenderSettings(cfg config.Config, cursor int, editBuffer, errMsg string, width, height int, p Palette) string {
	innerW := width - 4
	if innerW < 24 {
		innerW = 24
	}

	title := p.Title().Render("SETTINGS")
	separator := p.Help().Render(strings.Repeat("-", innerW))
	header := []string{title, separator}

	innerH := height - 2
	rowSpace := innerH - len(header) - 2 // footer hint + possible error line
	if rowSpace < 1 {
		rowSpace = 1
	}

	viewStart := 0
	if cursor >= rowSpace {
		viewStart = cursor - rowSpace + 1
	}

	var rows []string
	for i := viewStart; i < len(config.All) && len(rows) < rowSpace; i++ {
		s := config.All[i]
		value := s.Value(cfg)
		if i == cursor && editBuffer != "" {
			value = editBuffer + "_"
		}

		label := fmt.Sprintf(" %-22s %s", s.Name(), value)
		if lipgloss.Width(label) < innerW {
			label += strings.Repeat(" ", innerW-lipgloss.Width(label))
		}

		if i == cursor {
			rows = append(rows, p.CursorRow().Render(label))
		} else {
			rows = append(rows, p.BarLabel().Render(label))
		}
	}

	lines := append(header, rows...)
	if errMsg != "" {
		lines = append(lines, p.CountdownCritical().Render(" "+errMsg))
	}
	lines = append(lines, p.Help().Render(" arrows adjust  enter edit  esc close"))

	content := strings.Join(lines, "\n")
	return p.PanelActive().Width(width - 2).Height(innerH).Render(content)
}
