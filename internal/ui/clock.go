package ui

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// 5-row block font for the clock face and countdown readout.
var bigFont = map[rune][5]string{
	'0': {"█████", "█   █", "█   █", "█   █", "█████"},
	'1': {"   ██", "   ██", "   ██", "   ██", "   ██"},
	'2': {"█████", "    █", "█████", "█    ", "█████"},
	'3': {"█████", "    █", " ████", "    █", "█████"},
	'4': {"█   █", "█   █", "█████", "    █", "    █"},
	'5': {"█████", "█    ", "█████", "    █", "█████"},
	'6': {"█████", "█    ", "█████", "█   █", "█████"},
	'7': {"█████", "    █", "   █ ", "  █  ", "  █  "},
	'8': {"█████", "█   █", "█████", "█   █", "█████"},
	'9': {"█████", "█   █", "█████", "    █", "█████"},
	':': {"     ", "  █  ", "     ", "  █  ", "     "},
	' ': {"     ", "     ", "     ", "     ", "     "},
}

// BigDigits renders s in the block font, one string per row.
func BigDigits(s string) []string {
	rows := make([]string, 5)
	for i := range rows {
		var b strings.Builder
		for _, r := range s {
			glyph, ok := bigFont[r]
			if !ok {
				glyph = bigFont[' ']
			}
			b.WriteString(glyph[i])
			b.WriteString(" ")
		}
		rows[i] = strings.TrimRight(b.String(), " ")
	}
	return rows
}

// FormatClock splits now into the big face text and a small suffix
// (seconds plus the meridiem in 12h mode).
func FormatClock(now time.Time, format string) (face, suffix string) {
	if format == "12h" {
		return now.Format("3:04"), now.Format(":05 PM")
	}
	return now.Format("15:04"), now.Format(":05")
}

// RenderClock renders the big clock face centered in width.
func RenderClock(now time.Time, format string, width int, p Palette) string {
	face, suffix := FormatClock(now, format)
	rows := BigDigits(face)

	styled := make([]string, 0, len(rows)+1)
	for _, row := range rows {
		styled = append(styled, p.Clock().Render(row))
	}
	block := strings.Join(styled, "\n")
	block = lipgloss.JoinHorizontal(lipgloss.Bottom, block, p.ClockSuffix().Render(suffix))

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, block)
}

// RenderDate renders the long-form date line under the clock.
func RenderDate(now time.Time, width int, p Palette) string {
	line := now.Format("Monday, January 2")
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, p.BarLabel().Render(line))
}
