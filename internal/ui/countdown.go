package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"haloboard.dev/internal/timer"
)

// FormatRemaining renders seconds as M:SS (or H:MM:SS past an hour).
func FormatRemaining(seconds int) string {
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}

// RenderCountdown renders the countdown pane. pulse alternates on frame
// ticks to drive the critical-phase blink.
func RenderCountdown(c *timer.Countdown, width int, pulse bool, p Palette) string {
	if c.Phase() == timer.PhaseIdle {
		hint := p.Help().Render("[+] add time   [space] start")
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, hint)
	}

	sty := p.Countdown()
	switch c.Phase() {
	case timer.PhaseUrgent:
		sty = p.CountdownUrgent()
	case timer.PhaseCritical:
		sty = p.CountdownCritical()
		if pulse {
			sty = sty.Reverse(true)
		}
	}

	rows := BigDigits(FormatRemaining(c.Remaining()))
	styled := make([]string, 0, len(rows)+1)
	for _, row := range rows {
		styled = append(styled, sty.Render(row))
	}

	state := "PAUSED"
	if c.Running() {
		state = "RUNNING"
	}
	styled = append(styled, p.BarLabel().Render(state))

	block := strings.Join(styled, "\n")
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, block)
}
